package domain

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// NoBranchTableName is the table name meaning "no branch coloring for this repo".
const NoBranchTableName = "__none__"

// NoMatch is the matching index reported when no enabled rule matches.
const NoMatch = -1

// LocalPathPrefix marks a repo qualifier as a literal local folder path.
const LocalPathPrefix = "!"

// ThemeKind is the active VS Code theme family.
type ThemeKind string

// Theme kinds.
const (
	ThemeDark         ThemeKind = "dark"
	ThemeLight        ThemeKind = "light"
	ThemeHighContrast ThemeKind = "highContrast"
)

// IsDark reports whether the theme kind uses a dark background.
func (k ThemeKind) IsDark() bool {
	return k != ThemeLight
}

// Valid reports whether k is a known theme kind.
func (k ThemeKind) Valid() bool {
	switch k {
	case ThemeDark, ThemeLight, ThemeHighContrast:
		return true
	default:
		return false
	}
}

// ThemedValue is one theme variant of a ThemedColor.
type ThemedValue struct {
	Value string `yaml:"value,omitempty"`
	Auto  bool   `yaml:"auto,omitempty"`
}

// ThemedColor is a color that may differ per theme kind.
// A plain string in configuration is a ThemedColor with the same value for every kind.
type ThemedColor struct {
	Dark         ThemedValue `yaml:"dark"`
	Light        ThemedValue `yaml:"light"`
	HighContrast ThemedValue `yaml:"highContrast"`
}

// LiteralColor returns a ThemedColor that yields s for every theme kind.
func LiteralColor(s string) ThemedColor {
	v := ThemedValue{Value: s}
	return ThemedColor{Dark: v, Light: v, HighContrast: v}
}

// IsZero reports whether no variant carries a value.
func (t ThemedColor) IsZero() bool {
	return t.Dark.Value == "" && t.Light.Value == "" && t.HighContrast.Value == ""
}

// IsLiteral reports whether all variants are the same explicit string.
func (t ThemedColor) IsLiteral() bool {
	return !t.Dark.Auto && !t.Light.Auto && !t.HighContrast.Auto &&
		t.Dark.Value == t.Light.Value && t.Light.Value == t.HighContrast.Value
}

// Literal returns the plain string when the color is literal.
func (t ThemedColor) Literal() (string, bool) {
	if !t.IsLiteral() || t.Dark.Value == "" {
		return "", false
	}
	return t.Dark.Value, true
}

func (t ThemedColor) variant(kind ThemeKind) ThemedValue {
	switch kind {
	case ThemeLight:
		return t.Light
	case ThemeHighContrast:
		return t.HighContrast
	default:
		return t.Dark
	}
}

// authored returns the first explicitly authored variant, preferring dark.
func (t ThemedColor) authored() (ThemeKind, string, bool) {
	for _, kind := range []ThemeKind{ThemeDark, ThemeLight, ThemeHighContrast} {
		v := t.variant(kind)
		if !v.Auto && strings.TrimSpace(v.Value) != "" {
			return kind, v.Value, true
		}
	}
	return "", "", false
}

// For returns the color for the given theme kind.
// Auto variants are derived from the authored one by lightness inversion when
// the two kinds differ in darkness. Unparsable values fall back to DefaultColor.
// It reports false when nothing is authored.
func (t ThemedColor) For(kind ThemeKind) (Color, bool) {
	v := t.variant(kind)
	if !v.Auto && strings.TrimSpace(v.Value) != "" {
		return ParseColorOrDefault(v.Value), true
	}

	srcKind, raw, ok := t.authored()
	if !ok {
		return Color{}, false
	}
	c := ParseColorOrDefault(raw)
	if srcKind.IsDark() != kind.IsDark() {
		c = c.InvertLightness()
	}
	return c, true
}

// Raw returns the stored string for kind without parsing, used for profile-name lookups.
func (t ThemedColor) Raw(kind ThemeKind) string {
	if s, ok := t.Literal(); ok {
		return s
	}
	return t.variant(kind).Value
}

// Rename replaces every explicit variant equal to from with to. It reports whether anything changed.
func (t *ThemedColor) Rename(from, to string) bool {
	changed := false
	for _, v := range []*ThemedValue{&t.Dark, &t.Light, &t.HighContrast} {
		if !v.Auto && v.Value == from {
			v.Value = to
			changed = true
		}
	}
	return changed
}

// UnmarshalYAML accepts a color string or a {dark, light, highContrast} object.
func (t *ThemedColor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = LiteralColor(s)
		return nil
	case yaml.MappingNode:
		type plain ThemedColor
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*t = ThemedColor(p)
		return nil
	default:
		return zerr.With(ErrConfigParseFailed, "line", node.Line)
	}
}

// MarshalYAML writes literal colors back as plain strings.
func (t ThemedColor) MarshalYAML() (any, error) {
	if s, ok := t.Literal(); ok {
		return s, nil
	}
	type plain ThemedColor
	return plain(t), nil
}

// RepoRule maps a repository URL substring or a local folder path to a color or profile.
type RepoRule struct {
	RepoQualifier   string      `yaml:"repoQualifier"`
	PrimaryColor    ThemedColor `yaml:"primaryColor,omitempty"`
	BranchColor     ThemedColor `yaml:"branchColor,omitempty"`
	ProfileName     string      `yaml:"profileName,omitempty"`
	DefaultBranch   string      `yaml:"defaultBranch,omitempty"`
	Enabled         *bool       `yaml:"enabled,omitempty"`
	BranchTableName string      `yaml:"branchTableName,omitempty"`
}

// IsEnabled reports whether the rule takes part in matching. Omission means enabled.
func (r RepoRule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// IsLocalPath reports whether the qualifier names a local folder.
func (r RepoRule) IsLocalPath() bool {
	return strings.HasPrefix(r.RepoQualifier, LocalPathPrefix)
}

// LocalPath returns the qualifier without its local path marker.
func (r RepoRule) LocalPath() string {
	return strings.TrimPrefix(r.RepoQualifier, LocalPathPrefix)
}

// BranchTable returns the referenced branch table name, if any.
func (r RepoRule) BranchTable() (string, bool) {
	if r.BranchTableName == "" || r.BranchTableName == NoBranchTableName {
		return "", false
	}
	return r.BranchTableName, true
}

// ProfileRef returns the profile this rule refers to: profileName when set,
// otherwise a literal primaryColor naming an existing profile.
func (r RepoRule) ProfileRef(profiles AdvancedProfileMap) (string, bool) {
	return profileRef(r.ProfileName, r.PrimaryColor, profiles)
}

// BranchRule maps a branch-name pattern to a color or profile.
type BranchRule struct {
	Pattern     string      `yaml:"pattern"`
	Color       ThemedColor `yaml:"color,omitempty"`
	ProfileName string      `yaml:"profileName,omitempty"`
	Enabled     *bool       `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the rule takes part in matching. Omission means enabled.
func (r BranchRule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// ProfileRef returns the profile this rule refers to.
func (r BranchRule) ProfileRef(profiles AdvancedProfileMap) (string, bool) {
	return profileRef(r.ProfileName, r.Color, profiles)
}

func profileRef(profileName string, color ThemedColor, profiles AdvancedProfileMap) (string, bool) {
	if profileName != "" {
		return profileName, true
	}
	if s, ok := color.Literal(); ok {
		if _, exists := profiles[s]; exists {
			return s, true
		}
	}
	return "", false
}

// BranchTable is a named, ordered list of branch rules shared across repo rules.
type BranchTable struct {
	Rules []BranchRule `yaml:"rules"`
}

// MatchingIndexes holds the first enabled matching rule indexes, or NoMatch.
type MatchingIndexes struct {
	RepoRule   int    `json:"repoRule" yaml:"repoRule"`
	BranchRule int    `json:"branchRule" yaml:"branchRule"`
	Table      string `json:"table,omitempty" yaml:"table,omitempty"`
}

// NoMatches returns indexes with neither list matched.
func NoMatches() MatchingIndexes {
	return MatchingIndexes{RepoRule: NoMatch, BranchRule: NoMatch}
}

// Bool returns a pointer to b, for the optional enabled flags.
func Bool(b bool) *bool {
	return &b
}
