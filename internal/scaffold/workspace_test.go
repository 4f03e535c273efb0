package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojo/internal/platform"
)

func TestMaterialize(t *testing.T) {
	ws := Workspace{BaseDir: t.TempDir()}
	rec := mustRecord(t, platform.Codeforces, "1500", "C", "https://codeforces.com/problemset/problem/1500/C")

	paths, err := ws.Materialize(rec, mustLang(t, "C++"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(ws.BaseDir, "Solutions", "Codeforces", "codeforces_1500_c.cpp"), paths.Solution)
	assert.Equal(t, filepath.Join(ws.BaseDir, "Practiced-Problems", "Codeforces", "Questions", "codeforces_1500_c.txt"), paths.Link)
	assert.Equal(t, filepath.Join(ws.BaseDir, "Practiced-Problems", "Codeforces", "Thought-Process", "codeforces_1500_c.md"), paths.Thought)

	link, err := os.ReadFile(paths.Link)
	require.NoError(t, err)
	assert.Equal(t, rec.SourceURL+"\n", string(link))

	solution, err := os.ReadFile(paths.Solution)
	require.NoError(t, err)
	assert.Contains(t, string(solution), "// Problem: C")
}

func TestMaterializeIdempotentNaming(t *testing.T) {
	ws := Workspace{BaseDir: t.TempDir()}
	rec := mustRecord(t, platform.Leetcode, "leetcode", "two_sum", "https://leetcode.com/problems/two-sum/")
	py := mustLang(t, "Python")

	first, err := ws.Materialize(rec, py)
	require.NoError(t, err)

	// Scribble over the solution, then materialize again: same paths, prior
	// content overwritten, no duplicates.
	require.NoError(t, os.WriteFile(first.Solution, []byte("stale"), 0644))

	second, err := ws.Materialize(rec, py)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	content, err := os.ReadFile(second.Solution)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(content))

	entries, err := os.ReadDir(filepath.Dir(first.Solution))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMaterializeWriteError(t *testing.T) {
	base := t.TempDir()
	// A file where the Solutions branch should be forces MkdirAll to fail.
	require.NoError(t, os.WriteFile(filepath.Join(base, "Solutions"), []byte("x"), 0644))

	ws := Workspace{BaseDir: base}
	rec := mustRecord(t, platform.Codeforces, "1500", "C", "u")

	_, err := ws.Materialize(rec, mustLang(t, "C++"))
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.True(t, strings.Contains(writeErr.Path, "Solutions"))
	assert.Error(t, writeErr.Unwrap())
}
