// Package ledger records every processed problem in two independent sinks:
// an append-only markdown practice log and a SQLite catalog. The sinks share
// no transaction; a failure in one never rolls back the other.
package ledger

import (
	"fmt"
	"os"

	"dojo/internal/problem"
)

// Error reports a failed ledger write, naming the sink that failed.
type Error struct {
	Sink string // "log" or "catalog"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger %s write failed: %v", e.Sink, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Log appends dated practice entries to a markdown document. The file is
// created on first append and only ever appended to.
type Log struct {
	Path string
}

// Append writes one block for the record. Blocks are a fixed-order labeled
// list so N sessions leave exactly N blocks in call order.
func (l Log) Append(rec problem.Record) error {
	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &Error{Sink: "log", Err: err}
	}
	defer f.Close()

	entry := fmt.Sprintf(
		"### %s\n- **Platform**: %s\n- **Contest Code**: %s\n- **Problem Code**: %s\n- **Difficulty**: %s\n- **Tags**: %s\n- [Problem Link](%s)\n\n",
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
		rec.Platform,
		rec.ContestID,
		rec.ProblemID,
		rec.DifficultyOrUnknown(),
		rec.TagsOrNone(),
		rec.SourceURL,
	)

	if _, err := f.WriteString(entry); err != nil {
		return &Error{Sink: "log", Err: err}
	}
	return nil
}
