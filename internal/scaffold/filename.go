// Package scaffold turns a problem record into its on-disk artifacts: the
// canonical file names, the rendered solution and notes text, and the
// three-branch workspace layout they land in.
package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"dojo/internal/language"
	"dojo/internal/problem"
)

// FileKind selects which of the three artifacts a name is generated for.
type FileKind int

const (
	KindSolution FileKind = iota
	KindLink
	KindThought
)

// ErrInvalidFileKind flags a FileKind outside the three artifacts. This is a
// programming-contract violation, unreachable from the CLI surface.
var ErrInvalidFileKind = errors.New("invalid file kind")

// Filename builds the canonical artifact name for a record. Names join the
// lower-cased platform, contest and problem tokens with underscores, so two
// distinct (platform, contest, problem) triples never collide and the same
// problem always maps to the same name. Pure; no I/O.
func Filename(rec problem.Record, lang language.Language, kind FileKind) (string, error) {
	stem := fmt.Sprintf("%s_%s_%s",
		strings.ToLower(string(rec.Platform)),
		strings.ToLower(rec.ContestID),
		strings.ToLower(rec.ProblemID),
	)

	switch kind {
	case KindSolution:
		return stem + lang.Ext, nil
	case KindLink:
		return stem + ".txt", nil
	case KindThought:
		return stem + ".md", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidFileKind, kind)
	}
}
