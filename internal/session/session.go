// Package session sequences one practice-scaffolding run: extract
// identifiers from the URL, materialize the workspace artifacts, record the
// attempt in the ledger, then hand the solutions directory to the editor.
//
// The pipeline is linear with a single failure exit. Extraction failures
// abort before any I/O; artifact or ledger failures abort the remaining
// stages but leave whatever was already written on disk. Nothing is retried.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dojo/internal/editor"
	"dojo/internal/language"
	"dojo/internal/ledger"
	"dojo/internal/platform"
	"dojo/internal/problem"
	"dojo/internal/scaffold"
)

// Input is everything the user supplies for one session.
type Input struct {
	Platform   platform.Platform
	Language   language.Language
	URL        string
	Difficulty string
	Tags       []string
}

// Result summarizes a successful session. EditorWarning is set when the
// editor launch failed; the session still counts as successful.
type Result struct {
	Record        problem.Record
	Paths         scaffold.Paths
	SolutionsDir  string
	EditorWarning error
}

// Session wires the pipeline's collaborators. All of them are injected so
// tests can substitute temp workspaces, in-memory catalogs and spy editors.
type Session struct {
	Workspace scaffold.Workspace
	Log       ledger.Log
	Catalog   *ledger.Catalog
	Editor    editor.Launcher
	Logger    *zap.Logger
}

// Run executes the pipeline for one problem.
func (s *Session) Run(ctx context.Context, in Input) (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session_id", uuid.NewString()))

	logger.Info("session started",
		zap.String("platform", string(in.Platform)),
		zap.String("language", in.Language.Name),
		zap.String("url", in.URL),
	)

	// Extract. Any failure here aborts before a single byte is written.
	contestID, problemID, err := platform.Extract(in.Platform, in.URL)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return nil, fmt.Errorf("extract: %w", err)
	}
	logger.Debug("identifiers extracted",
		zap.String("contest_id", contestID),
		zap.String("problem_id", problemID),
	)

	rec, err := problem.New(in.Platform, contestID, problemID, in.URL)
	if err != nil {
		logger.Error("record construction failed", zap.Error(err))
		return nil, fmt.Errorf("extract: %w", err)
	}
	rec.Difficulty = in.Difficulty
	rec.Tags = in.Tags

	// Generate artifacts. Files written before a failure stay on disk.
	paths, err := s.Workspace.Materialize(rec, in.Language)
	if err != nil {
		logger.Error("artifact generation failed", zap.Error(err))
		return nil, fmt.Errorf("generate artifacts: %w", err)
	}
	logger.Info("artifacts written",
		zap.String("solution", paths.Solution),
		zap.String("link", paths.Link),
		zap.String("thought", paths.Thought),
	)

	// Persist. The two sinks are independent; neither rolls the other back.
	if err := s.Log.Append(rec); err != nil {
		logger.Error("log append failed", zap.Error(err))
		return nil, fmt.Errorf("persist: %w", err)
	}
	if err := s.Catalog.Insert(rec); err != nil {
		logger.Error("catalog insert failed", zap.Error(err))
		return nil, fmt.Errorf("persist: %w", err)
	}
	logger.Info("ledger updated")

	result := &Result{
		Record:       rec,
		Paths:        paths,
		SolutionsDir: s.Workspace.SolutionsDir(string(rec.Platform)),
	}

	// Editor launch is best-effort: failure is reported as a warning, never
	// as a session failure.
	if s.Editor != nil {
		if err := s.Editor.Open(ctx, result.SolutionsDir); err != nil {
			logger.Warn("editor launch failed", zap.Error(err))
			result.EditorWarning = fmt.Errorf("editor launch: %w", err)
		}
	}

	logger.Info("session complete")
	return result, nil
}
