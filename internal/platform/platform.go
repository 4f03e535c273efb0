// Package platform defines the supported problem sources and the URL
// identifier extraction rules for each of them.
//
// Every platform owns exactly one rule: a compiled pattern plus a projection
// from the matched groups to a (contest, problem) pair. Adding a platform is
// a new entry in the rule table, not a new branch in a conditional chain.
package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Platform identifies a supported online judge.
type Platform string

const (
	AtCoder    Platform = "AtCoder"
	CodeChef   Platform = "CodeChef"
	Codeforces Platform = "Codeforces"
	Leetcode   Platform = "Leetcode"
)

// LeetcodeContest is the sentinel contest identifier for platforms with no
// contest concept.
const LeetcodeContest = "leetcode"

// All lists the supported platforms in menu order.
func All() []Platform {
	return []Platform{AtCoder, CodeChef, Codeforces, Leetcode}
}

// ErrUnsupportedPlatform is returned when the requested platform is outside
// the supported set.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ExtractionError reports a URL that did not match its platform's expected
// shape. The offending URL is carried for diagnostics.
type ExtractionError struct {
	Platform Platform
	URL      string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract contest and problem codes for %s from URL: %s", e.Platform, e.URL)
}

// rule pairs a URL pattern with a projection from its capture groups to the
// (contest, problem) identifier pair.
type rule struct {
	pattern *regexp.Regexp
	project func(groups []string) (contestID, problemID string)
}

var rules = map[Platform]rule{
	Codeforces: {
		pattern: regexp.MustCompile(`/problemset/problem/(\d+)/([A-Za-z0-9]+)`),
		project: func(g []string) (string, string) {
			return g[1], g[2]
		},
	},
	Leetcode: {
		pattern: regexp.MustCompile(`/problems/([a-z0-9-]+)/`),
		project: func(g []string) (string, string) {
			return LeetcodeContest, strings.ReplaceAll(g[1], "-", "_")
		},
	},
	CodeChef: {
		pattern: regexp.MustCompile(`/([A-Z0-9]+)/problems/([A-Z0-9]+)`),
		project: func(g []string) (string, string) {
			return g[1], g[2]
		},
	},
	AtCoder: {
		pattern: regexp.MustCompile(`/contests/([a-z0-9]+)/tasks/([a-z0-9_]+)`),
		project: func(g []string) (string, string) {
			// Task tokens embed the contest prefix (abc123_a); the problem
			// code is the final underscore-delimited segment.
			parts := strings.Split(g[2], "_")
			return g[1], parts[len(parts)-1]
		},
	},
}

// Supported reports whether p belongs to the supported set.
func Supported(p Platform) bool {
	_, ok := rules[p]
	return ok
}

// Extract maps a problem URL to its platform-scoped (contest, problem)
// identifier pair. It fails fast: an unknown platform yields
// ErrUnsupportedPlatform before any matching, and a URL that does not match
// the platform's pattern yields an *ExtractionError. No sentinel pair is
// ever returned.
func Extract(p Platform, url string) (contestID, problemID string, err error) {
	r, ok := rules[p]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}

	groups := r.pattern.FindStringSubmatch(url)
	if groups == nil {
		return "", "", &ExtractionError{Platform: p, URL: url}
	}

	contestID, problemID = r.project(groups)
	return contestID, problemID, nil
}
