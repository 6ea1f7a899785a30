// Package resolver turns rule lists, profiles and a workspace context into theme colors.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultMatchTimeout bounds a single branch pattern evaluation.
const DefaultMatchTimeout = 50 * time.Millisecond

// compiledPattern is a cached compile result. A nil re means the pattern is invalid.
type compiledPattern struct {
	re  *regexp2.Regexp
	err error
}

// Matcher finds the first enabled rule matching a context.
// Branch patterns use JavaScript regular expression syntax.
type Matcher struct {
	timeout    time.Duration
	expandPath func(string) string
	patterns   sync.Map // pattern string -> *compiledPattern
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMatchTimeout sets the per-pattern evaluation timeout.
func WithMatchTimeout(d time.Duration) MatcherOption {
	return func(m *Matcher) {
		m.timeout = d
	}
}

// WithPathExpander replaces the environment and home directory expansion of local path qualifiers.
func WithPathExpander(fn func(string) string) MatcherOption {
	return func(m *Matcher) {
		m.expandPath = fn
	}
}

// NewMatcher creates a Matcher.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		timeout:    DefaultMatchTimeout,
		expandPath: ExpandPath,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ExpandPath expands a leading ~ and $VAR references.
func ExpandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// MatchRepoRule returns the index of the first enabled rule whose qualifier holds for ctx, or domain.NoMatch.
func (m *Matcher) MatchRepoRule(rules []domain.RepoRule, ctx domain.Context) int {
	for i, rule := range rules {
		if rule.IsEnabled() && m.repoRuleMatches(rule, ctx) {
			return i
		}
	}
	return domain.NoMatch
}

func (m *Matcher) repoRuleMatches(rule domain.RepoRule, ctx domain.Context) bool {
	if rule.IsLocalPath() {
		if !ctx.IsLocalFolder || ctx.WorkspacePath == "" {
			return false
		}
		want := m.expandPath(rule.LocalPath())
		if want == "" {
			return false
		}
		return filepath.Clean(want) == filepath.Clean(ctx.WorkspacePath)
	}
	if rule.RepoQualifier == "" {
		return false
	}
	return strings.Contains(ctx.RepositoryURL, rule.RepoQualifier)
}

// MatchBranchRule returns the index of the first enabled rule whose pattern matches branch, or domain.NoMatch.
// Invalid patterns and patterns that time out count as non-matching.
func (m *Matcher) MatchBranchRule(rules []domain.BranchRule, branch string) int {
	for i, rule := range rules {
		if !rule.IsEnabled() {
			continue
		}
		if m.matchPattern(rule.Pattern, branch) {
			return i
		}
	}
	return domain.NoMatch
}

func (m *Matcher) matchPattern(pattern, branch string) bool {
	c := m.compile(pattern)
	if c.err != nil {
		return false
	}
	ok, err := c.re.MatchString(branch)
	return err == nil && ok
}

// CheckPattern reports whether pattern compiles. The returned error carries the
// domain.ErrInvalidPattern message and the compiler's reason; errors.Is does not match it.
func (m *Matcher) CheckPattern(pattern string) error {
	return m.compile(pattern).err
}

func (m *Matcher) compile(pattern string) *compiledPattern {
	if v, ok := m.patterns.Load(pattern); ok {
		return v.(*compiledPattern)
	}

	c := &compiledPattern{}
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		c.err = zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
	} else {
		re.MatchTimeout = m.timeout
		c.re = re
	}

	v, _ := m.patterns.LoadOrStore(pattern, c)
	return v.(*compiledPattern)
}
