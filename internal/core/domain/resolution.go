package domain

import (
	"fmt"
	"strings"
)

// Resolution is the outcome of resolving a snapshot: which rules matched and the colors they produce.
type Resolution struct {
	Indexes MatchingIndexes
	Profile string
	Colors  ThemeColors
}

// Summary describes which rules produced the resolution.
func (r Resolution) Summary() string {
	if r.Indexes.RepoRule == NoMatch {
		return "no matching repo rule"
	}

	parts := []string{fmt.Sprintf("repo rule %d", r.Indexes.RepoRule)}
	if r.Indexes.BranchRule != NoMatch {
		parts = append(parts, fmt.Sprintf("branch rule %d in %s", r.Indexes.BranchRule, r.Indexes.Table))
	}
	if r.Profile != "" {
		parts = append(parts, "profile "+r.Profile)
	}
	return strings.Join(parts, ", ")
}

// Issue is an authoring problem found in a configuration snapshot.
type Issue struct {
	// Path locates the problem, e.g. "repoRules[2].primaryColor".
	Path string
	Err  error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %v", i.Path, i.Err)
}
