package scaffold

import (
	"strings"
	"testing"

	"dojo/internal/platform"
)

func TestRenderSolutionHeader(t *testing.T) {
	rec := mustRecord(t, platform.Codeforces, "1500", "C", "https://codeforces.com/problemset/problem/1500/C")
	rec.Difficulty = "1700"
	rec.Tags = []string{"dp", "greedy"}

	out := RenderSolution(mustLang(t, "C++"), rec)

	for _, want := range []string{
		"// Problem: C",
		"// Platform: Codeforces",
		"// Contest: 1500",
		"// URL: https://codeforces.com/problemset/problem/1500/C",
		"// Difficulty: 1700",
		"// Tags: dp, greedy",
		"void solve()",
		"while (t--)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("solution text missing %q\n%s", want, out)
		}
	}
}

func TestRenderSolutionCommentSyntaxPerLanguage(t *testing.T) {
	rec := mustRecord(t, platform.Leetcode, "leetcode", "two_sum", "https://leetcode.com/problems/two-sum/")

	out := RenderSolution(mustLang(t, "Python"), rec)
	if !strings.Contains(out, "# Problem: two_sum") {
		t.Errorf("python header not using # comments:\n%s", out)
	}
	if !strings.Contains(out, "def solve():") {
		t.Errorf("python skeleton missing:\n%s", out)
	}
}

func TestRenderSolutionStubFallback(t *testing.T) {
	// Kotlin has no registered skeleton; the header alone must come back.
	rec := mustRecord(t, platform.AtCoder, "abc123", "a", "https://atcoder.jp/contests/abc123/tasks/abc123_a")

	out := RenderSolution(mustLang(t, "Kotlin"), rec)
	if !strings.Contains(out, "// Problem: a") {
		t.Errorf("stub missing metadata header:\n%s", out)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasPrefix(line, "//") {
			t.Errorf("stub contains non-comment line %q", line)
		}
	}
}

func TestRenderNotesPlaceholders(t *testing.T) {
	// Empty difficulty and tags render as Unknown/None, never empty fields.
	rec := mustRecord(t, platform.CodeChef, "START100", "CHEFTWO", "https://www.codechef.com/START100/problems/CHEFTWO")

	out, err := RenderNotes(rec)
	if err != nil {
		t.Fatalf("RenderNotes failed: %v", err)
	}

	for _, want := range []string{
		"# CHEFTWO (CodeChef / START100)",
		"[https://www.codechef.com/START100/problems/CHEFTWO](https://www.codechef.com/START100/problems/CHEFTWO)",
		"**Difficulty**: Unknown",
		"## Initial Thoughts",
		"## Approach",
		"## Complexity Analysis",
		"## Key Learnings",
		"## Tags",
		"None",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("notes missing %q\n%s", want, out)
		}
	}
}
