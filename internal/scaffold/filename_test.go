package scaffold

import (
	"errors"
	"testing"

	"dojo/internal/language"
	"dojo/internal/platform"
	"dojo/internal/problem"
)

func mustRecord(t *testing.T, p platform.Platform, contest, prob, url string) problem.Record {
	t.Helper()
	rec, err := problem.New(p, contest, prob, url)
	if err != nil {
		t.Fatalf("problem.New failed: %v", err)
	}
	return rec
}

func mustLang(t *testing.T, name string) language.Language {
	t.Helper()
	l, ok := language.Lookup(name)
	if !ok {
		t.Fatalf("language %s not registered", name)
	}
	return l
}

func TestFilename(t *testing.T) {
	rec := mustRecord(t, platform.Codeforces, "1500", "C", "https://codeforces.com/problemset/problem/1500/C")
	cpp := mustLang(t, "C++")

	tests := []struct {
		kind FileKind
		want string
	}{
		{KindSolution, "codeforces_1500_c.cpp"},
		{KindLink, "codeforces_1500_c.txt"},
		{KindThought, "codeforces_1500_c.md"},
	}
	for _, tt := range tests {
		got, err := Filename(rec, cpp, tt.kind)
		if err != nil {
			t.Fatalf("Filename(kind=%d) failed: %v", tt.kind, err)
		}
		if got != tt.want {
			t.Errorf("Filename(kind=%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFilenameDeterministic(t *testing.T) {
	rec := mustRecord(t, platform.AtCoder, "abc123", "a", "https://atcoder.jp/contests/abc123/tasks/abc123_a")
	py := mustLang(t, "Python")

	first, err := Filename(rec, py, KindSolution)
	if err != nil {
		t.Fatalf("Filename failed: %v", err)
	}
	second, err := Filename(rec, py, KindSolution)
	if err != nil {
		t.Fatalf("Filename failed: %v", err)
	}
	if first != second {
		t.Errorf("Filename not deterministic: %q vs %q", first, second)
	}
}

func TestFilenameLanguageOnlyChangesSolutionExt(t *testing.T) {
	rec := mustRecord(t, platform.Leetcode, "leetcode", "two_sum", "https://leetcode.com/problems/two-sum/")

	py := mustLang(t, "Python")
	rs := mustLang(t, "Rust")

	pySol, _ := Filename(rec, py, KindSolution)
	rsSol, _ := Filename(rec, rs, KindSolution)
	if pySol != "leetcode_leetcode_two_sum.py" {
		t.Errorf("python solution name = %q", pySol)
	}
	if rsSol != "leetcode_leetcode_two_sum.rs" {
		t.Errorf("rust solution name = %q", rsSol)
	}

	for _, kind := range []FileKind{KindLink, KindThought} {
		pyName, _ := Filename(rec, py, kind)
		rsName, _ := Filename(rec, rs, kind)
		if pyName != rsName {
			t.Errorf("kind %d name depends on language: %q vs %q", kind, pyName, rsName)
		}
	}
}

func TestFilenameInvalidKind(t *testing.T) {
	rec := mustRecord(t, platform.Codeforces, "1500", "C", "u")
	_, err := Filename(rec, mustLang(t, "Go"), FileKind(99))
	if !errors.Is(err, ErrInvalidFileKind) {
		t.Fatalf("error = %v, want ErrInvalidFileKind", err)
	}
}
