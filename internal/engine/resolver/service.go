package resolver

import (
	"context"
	"maps"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
)

// KnobStep is the lightness change, in percentage points, per unit of the activity bar knob.
const KnobStep = 3.0

var _ ports.ThemeResolver = (*Service)(nil)

// Input is everything ResolveTheme needs. It is read, never modified.
type Input struct {
	Context      domain.Context
	RepoRules    []domain.RepoRule
	BranchTables map[string]domain.BranchTable
	Profiles     domain.AdvancedProfileMap
	Settings     domain.Settings
}

// InputFrom builds the resolution input from a configuration snapshot.
func InputFrom(cfg *domain.Configuration) Input {
	return Input{
		Context:      cfg.WorkspaceInfo.Context(),
		RepoRules:    cfg.RepoRules,
		BranchTables: cfg.SharedBranchTables,
		Profiles:     cfg.AdvancedProfiles,
		Settings:     cfg.OtherSettings,
	}
}

// Service composes the matcher and the palette resolver into final theme colors.
type Service struct {
	matcher *Matcher
	tracer  ports.Tracer
	cache   *Cache
}

// NewService creates a Service. A nil tracer disables spans; a nil cache disables memoization.
func NewService(matcher *Matcher, tracer ports.Tracer, cache *Cache) *Service {
	if matcher == nil {
		matcher = NewMatcher()
	}
	return &Service{matcher: matcher, tracer: tracer, cache: cache}
}

// Matcher returns the matcher used by the service.
func (s *Service) Matcher() *Matcher {
	return s.matcher
}

// Resolve implements ports.ThemeResolver.
func (s *Service) Resolve(ctx context.Context, cfg *domain.Configuration) domain.Resolution {
	var span ports.Span
	if s.tracer != nil {
		_, span = s.tracer.Start(ctx, "resolve", ports.WithAttribute("rules", len(cfg.RepoRules)))
		defer span.End()
	}

	res, cached := s.resolveCached(InputFrom(cfg))
	if span != nil {
		span.SetAttribute("repo_rule", res.Indexes.RepoRule)
		span.SetAttribute("branch_rule", res.Indexes.BranchRule)
		span.SetAttribute("cached", cached)
	}
	return res
}

func (s *Service) resolveCached(in Input) (domain.Resolution, bool) {
	if s.cache == nil {
		return s.ResolveInput(in), false
	}

	key, ok := s.cache.Key(in)
	if !ok {
		return s.ResolveInput(in), false
	}
	if res, hit := s.cache.Get(key); hit {
		return res, true
	}
	res := s.ResolveInput(in)
	s.cache.Put(key, res)
	return res, false
}

// Match returns the matching rule indexes for the snapshot's workspace.
func (s *Service) Match(cfg *domain.Configuration) domain.MatchingIndexes {
	return s.match(InputFrom(cfg))
}

func (s *Service) match(in Input) domain.MatchingIndexes {
	idx := domain.NoMatches()
	idx.RepoRule = s.matcher.MatchRepoRule(in.RepoRules, in.Context)
	if idx.RepoRule == domain.NoMatch {
		return idx
	}

	name, ok := in.RepoRules[idx.RepoRule].BranchTable()
	if !ok {
		return idx
	}
	table, ok := in.BranchTables[name]
	if !ok {
		return idx
	}
	idx.Table = name
	idx.BranchRule = s.matcher.MatchBranchRule(table.Rules, in.Context.BranchName)
	return idx
}

// ResolveTheme returns the theme key to color map for the input. It never fails:
// unparsable colors, missing profiles and bad patterns leave the affected keys uncolored.
func (s *Service) ResolveTheme(in Input) domain.ThemeColors {
	return s.ResolveInput(in).Colors
}

// ResolveInput is ResolveTheme that also reports the matched rules.
func (s *Service) ResolveInput(in Input) domain.Resolution {
	settings := in.Settings.Clamp()
	kind := settings.ThemeKind
	res := domain.Resolution{Indexes: s.match(in), Colors: domain.ThemeColors{}}
	if res.Indexes.RepoRule == domain.NoMatch {
		return res
	}

	repo := in.RepoRules[res.Indexes.RepoRule]

	var branch *domain.BranchRule
	if res.Indexes.BranchRule != domain.NoMatch {
		b := in.BranchTables[res.Indexes.Table].Rules[res.Indexes.BranchRule]
		branch = &b
	}

	src := SlotSources{}
	if c, ok := literalColor(repo.PrimaryColor, in.Profiles, kind); ok {
		src.Repo = &c
	} else if _, isProfile := repo.ProfileRef(in.Profiles); !isProfile {
		// A plain rule without a color still colors the window.
		c := domain.DefaultColor
		src.Repo = &c
	}
	if branch != nil {
		if c, ok := literalColor(branch.Color, in.Profiles, kind); ok {
			src.Branch = &c
		}
	} else if c, ok := repo.BranchColor.For(kind); ok {
		src.Branch = &c
	}

	// Repo level.
	var base *domain.Color
	if name, ok := repo.ProfileRef(in.Profiles); ok {
		res.Profile = name
		if p, exists := in.Profiles[name]; exists {
			maps.Copy(res.Colors, profileColors(p, src, settings))
			if c, ok := resolveSlot(domain.SlotPrimaryActiveBg, p.Palette, src, true); ok {
				base = &c
			}
		}
	} else if src.Repo != nil {
		maps.Copy(res.Colors, simpleColors(*src.Repo, settings))
		base = src.Repo
	}

	// Branch level overrides the activity bar only.
	switch {
	case branch != nil:
		if override, ok := s.branchColors(*branch, in.Profiles, src, settings); ok {
			replaceActivityBar(res.Colors, override)
		}
	case s.autoBranch(repo, in.Context.BranchName):
		c, ok := repo.BranchColor.For(kind)
		if !ok && base != nil {
			c, ok = base.RotateHue(float64(settings.AutomaticBranchIndicatorColorKnob)), true
		}
		if ok {
			replaceActivityBar(res.Colors, activityBarColors(c, settings))
		}
	}

	return res
}

func (s *Service) branchColors(
	rule domain.BranchRule,
	profiles domain.AdvancedProfileMap,
	src SlotSources,
	settings domain.Settings,
) (domain.ThemeColors, bool) {
	if name, ok := rule.ProfileRef(profiles); ok {
		p, exists := profiles[name]
		if !exists {
			return nil, false
		}
		return profileColors(p, src, settings), true
	}
	if src.Branch == nil {
		return nil, false
	}
	return activityBarColors(*src.Branch, settings), true
}

// autoBranch reports whether the repo rule asks for a synthesized branch indicator.
func (s *Service) autoBranch(repo domain.RepoRule, branch string) bool {
	return repo.DefaultBranch != "" && branch != "" && branch != repo.DefaultBranch
}

// literalColor returns the rule color when it is not a profile reference.
func literalColor(tc domain.ThemedColor, profiles domain.AdvancedProfileMap, kind domain.ThemeKind) (domain.Color, bool) {
	if s, ok := tc.Literal(); ok {
		if _, isProfile := profiles[s]; isProfile {
			return domain.Color{}, false
		}
	}
	return tc.For(kind)
}

func profileColors(p domain.AdvancedProfile, src SlotSources, settings domain.Settings) domain.ThemeColors {
	out := ResolveProfile(p, src)
	for key, c := range out {
		if domain.IsKnobScopedKey(key) {
			out[key] = applyKnob(c, settings.ActivityBarColorKnob)
		}
	}
	return out
}

func applyKnob(c domain.Color, knob int) domain.Color {
	if knob == 0 {
		return c
	}
	return c.Lighten(float64(knob) * KnobStep)
}

// simpleColors assigns a single color to the simple-mode keys enabled by settings.
// Foregrounds contrast with their final, knob-adjusted backgrounds.
func simpleColors(c domain.Color, settings domain.Settings) domain.ThemeColors {
	out := domain.ThemeColors{
		domain.KeyTitleBarActiveBackground: c,
		domain.KeyTitleBarActiveForeground: c.ContrastingText(),
	}
	if settings.ColorInactiveTitlebar {
		out[domain.KeyTitleBarInactiveBackground] = c
		out[domain.KeyTitleBarInactiveForeground] = c.ContrastingText().WithOpacity(domain.InactiveForegroundOpacity)
	}

	maps.Copy(out, activityBarColors(c, settings))

	adjusted := applyKnob(c, settings.ActivityBarColorKnob)
	if settings.ColorEditorTabs {
		out[domain.KeyTabActiveBackground] = adjusted
		out[domain.KeyTabActiveForeground] = adjusted.ContrastingText()
		out[domain.KeyEditorGroupHeaderTabsBg] = adjusted
	}
	if settings.ColorStatusBar {
		out[domain.KeyStatusBarBackground] = adjusted
		out[domain.KeyStatusBarForeground] = adjusted.ContrastingText()
	}
	return out
}

func activityBarColors(c domain.Color, settings domain.Settings) domain.ThemeColors {
	adjusted := applyKnob(c, settings.ActivityBarColorKnob)
	fg := adjusted.ContrastingText()
	return domain.ThemeColors{
		domain.KeyActivityBarBackground: adjusted,
		domain.KeyActivityBarForeground: fg,
		domain.KeyActivityBarInactiveFg: fg.WithOpacity(domain.InactiveForegroundOpacity),
	}
}

// replaceActivityBar drops every activity bar key from dst and copies the activity bar keys of src.
func replaceActivityBar(dst, src domain.ThemeColors) {
	maps.DeleteFunc(dst, func(key string, _ domain.Color) bool {
		return domain.IsActivityBarKey(key)
	})
	for key, c := range src {
		if domain.IsActivityBarKey(key) {
			dst[key] = c
		}
	}
}
