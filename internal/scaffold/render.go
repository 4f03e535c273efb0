package scaffold

import (
	"fmt"
	"strings"
	"text/template"

	"dojo/internal/language"
	"dojo/internal/problem"
)

// RenderSolution produces the solution file text: a metadata header in the
// language's comment syntax, then the registered skeleton. Languages with no
// skeleton get the header alone; rendering never fails.
func RenderSolution(lang language.Language, rec problem.Record) string {
	var b strings.Builder

	header := []struct{ label, value string }{
		{"Problem", rec.ProblemID},
		{"Platform", string(rec.Platform)},
		{"Contest", rec.ContestID},
		{"URL", rec.SourceURL},
		{"Difficulty", rec.DifficultyOrUnknown()},
		{"Tags", rec.TagsOrNone()},
		{"Created", rec.CreatedAt.Format("2006-01-02 15:04:05")},
	}
	for _, line := range header {
		fmt.Fprintf(&b, "%s %s: %s\n", lang.LineComment, line.label, line.value)
	}

	if lang.Skeleton != "" {
		b.WriteString("\n")
		b.WriteString(lang.Skeleton)
	}
	return b.String()
}

// notesTemplate is the fixed outline for the thought-process file. It is the
// same markup for every language.
var notesTemplate = template.Must(template.New("notes").Parse(`# {{.ProblemID}} ({{.Platform}} / {{.ContestID}})

## Problem Link

[{{.SourceURL}}]({{.SourceURL}})

- **Difficulty**: {{.DifficultyOrUnknown}}
- **Practiced**: {{.CreatedAt.Format "2006-01-02 15:04:05"}}

## Initial Thoughts

- [ ] Understood the statement
- [ ] Worked through the samples by hand
- [ ] Identified the constraints that matter

## Approach

Describe your approach and reasoning here.

## Complexity Analysis

- Time:
- Space:

## Key Learnings

-

## Tags

{{.TagsOrNone}}
`))

// RenderNotes produces the thought-process outline interpolated with the
// record's metadata.
func RenderNotes(rec problem.Record) (string, error) {
	var b strings.Builder
	if err := notesTemplate.Execute(&b, rec); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return b.String(), nil
}
