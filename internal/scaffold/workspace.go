package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"dojo/internal/language"
	"dojo/internal/problem"
)

// Paths holds the three artifact locations produced by one Materialize call.
type Paths struct {
	Solution string
	Link     string
	Thought  string
}

// WriteError reports a failed directory creation or file write, carrying the
// path and the underlying filesystem error.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Workspace writes problem artifacts under a fixed three-branch layout
// rooted at BaseDir:
//
//	Solutions/<Platform>/
//	Practiced-Problems/<Platform>/Questions/
//	Practiced-Problems/<Platform>/Thought-Process/
type Workspace struct {
	BaseDir string
}

// SolutionsDir returns the per-platform solutions directory. The editor is
// launched here after a successful session.
func (w Workspace) SolutionsDir(p string) string {
	return filepath.Join(w.BaseDir, "Solutions", p)
}

func (w Workspace) questionsDir(p string) string {
	return filepath.Join(w.BaseDir, "Practiced-Problems", p, "Questions")
}

func (w Workspace) thoughtsDir(p string) string {
	return filepath.Join(w.BaseDir, "Practiced-Problems", p, "Thought-Process")
}

// Materialize ensures the directory tree exists and writes the three
// artifact files. Directory creation is idempotent and writes overwrite any
// existing file (last write wins). On failure it returns a *WriteError;
// files already written in the same call stay on disk.
func (w Workspace) Materialize(rec problem.Record, lang language.Language) (Paths, error) {
	p := string(rec.Platform)
	for _, dir := range []string{w.SolutionsDir(p), w.questionsDir(p), w.thoughtsDir(p)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Paths{}, &WriteError{Path: dir, Err: err}
		}
	}

	solutionName, err := Filename(rec, lang, KindSolution)
	if err != nil {
		return Paths{}, err
	}
	linkName, err := Filename(rec, lang, KindLink)
	if err != nil {
		return Paths{}, err
	}
	thoughtName, err := Filename(rec, lang, KindThought)
	if err != nil {
		return Paths{}, err
	}

	notes, err := RenderNotes(rec)
	if err != nil {
		return Paths{}, err
	}

	paths := Paths{
		Solution: filepath.Join(w.SolutionsDir(p), solutionName),
		Link:     filepath.Join(w.questionsDir(p), linkName),
		Thought:  filepath.Join(w.thoughtsDir(p), thoughtName),
	}

	writes := []struct {
		path    string
		content string
	}{
		{paths.Solution, RenderSolution(lang, rec)},
		{paths.Link, rec.SourceURL + "\n"},
		{paths.Thought, notes},
	}
	for _, wr := range writes {
		if err := os.WriteFile(wr.path, []byte(wr.content), 0644); err != nil {
			return paths, &WriteError{Path: wr.path, Err: err}
		}
	}

	return paths, nil
}
