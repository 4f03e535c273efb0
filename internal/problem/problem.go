// Package problem defines the single domain entity of the tool: one
// attempted problem, as captured at scaffold time.
package problem

import (
	"fmt"
	"strings"
	"time"

	"dojo/internal/platform"
)

// Status tracks where a problem sits in the practice workflow. Records are
// written once with StatusPending; no update path exists.
type Status string

const (
	StatusPending Status = "pending"
	StatusSolved  Status = "solved"
)

// Record captures one attempted problem. A Record is assembled in memory by
// the session orchestrator, persisted once to the ledger, and never mutated
// afterwards.
type Record struct {
	Platform   platform.Platform `json:"platform"`
	ContestID  string            `json:"contest_id"`
	ProblemID  string            `json:"problem_id"`
	SourceURL  string            `json:"source_url"` // preserved verbatim
	Difficulty string            `json:"difficulty,omitempty"`
	Tags       []string          `json:"tags,omitempty"` // display order preserved
	CreatedAt  time.Time         `json:"created_at"`
	Status     Status            `json:"status"`
}

// New builds a Record with CreatedAt set to now and Status defaulted to
// pending. ContestID and ProblemID are normalized to filesystem-safe tokens.
func New(p platform.Platform, contestID, problemID, sourceURL string) (Record, error) {
	contestID = NormalizeToken(contestID)
	problemID = NormalizeToken(problemID)
	if contestID == "" || problemID == "" {
		return Record{}, fmt.Errorf("empty identifier after normalization (contest=%q problem=%q)", contestID, problemID)
	}

	return Record{
		Platform:  p,
		ContestID: contestID,
		ProblemID: problemID,
		SourceURL: sourceURL,
		CreatedAt: time.Now(),
		Status:    StatusPending,
	}, nil
}

// NormalizeToken reduces an identifier to the characters safe for file
// names: alphanumerics, underscore and hyphen. Everything else becomes an
// underscore, and runs collapse to one.
func NormalizeToken(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case r == '_':
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
		default:
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// DifficultyOrUnknown returns the difficulty, or "Unknown" when unset.
func (r Record) DifficultyOrUnknown() string {
	if strings.TrimSpace(r.Difficulty) == "" {
		return "Unknown"
	}
	return r.Difficulty
}

// TagsOrNone renders the tags as a comma-separated list, or "None" when the
// record has no tags.
func (r Record) TagsOrNone() string {
	if len(r.Tags) == 0 {
		return "None"
	}
	return strings.Join(r.Tags, ", ")
}
