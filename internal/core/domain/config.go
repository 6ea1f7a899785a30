package domain

import (
	"maps"
	"slices"
)

// Knob ranges.
const (
	MinActivityBarKnob    = -10
	MaxActivityBarKnob    = 10
	MinBranchHueRotation  = -179
	MaxBranchHueRotation  = 179
	DefaultBranchRotation = 60
)

// Configuration is the complete snapshot the resolver works from.
type Configuration struct {
	RepoRules          []RepoRule             `yaml:"repoRules"`
	SharedBranchTables map[string]BranchTable `yaml:"sharedBranchTables,omitempty"`
	AdvancedProfiles   AdvancedProfileMap     `yaml:"advancedProfiles,omitempty"`
	OtherSettings      Settings               `yaml:"otherSettings"`
	WorkspaceInfo      WorkspaceInfo          `yaml:"workspaceInfo"`
}

// Settings holds the flags and knobs that shape simple-mode output.
type Settings struct {
	ColorStatusBar                    bool      `yaml:"colorStatusBar"`
	ColorEditorTabs                   bool      `yaml:"colorEditorTabs"`
	ColorInactiveTitlebar             bool      `yaml:"colorInactiveTitlebar"`
	ActivityBarColorKnob              int       `yaml:"activityBarColorKnob"`
	AutomaticBranchIndicatorColorKnob int       `yaml:"automaticBranchIndicatorColorKnob"`
	ThemeKind                         ThemeKind `yaml:"themeKind"`
}

// DefaultSettings returns the settings applied when the snapshot omits them.
func DefaultSettings() Settings {
	return Settings{
		ColorInactiveTitlebar:             true,
		AutomaticBranchIndicatorColorKnob: DefaultBranchRotation,
		ThemeKind:                         ThemeDark,
	}
}

// Clamp returns a copy with knobs forced into their ranges and an unknown theme kind replaced by dark.
func (s Settings) Clamp() Settings {
	s.ActivityBarColorKnob = max(MinActivityBarKnob, min(MaxActivityBarKnob, s.ActivityBarColorKnob))
	s.AutomaticBranchIndicatorColorKnob = max(MinBranchHueRotation, min(MaxBranchHueRotation, s.AutomaticBranchIndicatorColorKnob))
	if !s.ThemeKind.Valid() {
		s.ThemeKind = ThemeDark
	}
	return s
}

// WorkspaceInfo describes the open workspace as reported by the host.
type WorkspaceInfo struct {
	RepositoryURL string `yaml:"repositoryUrl"`
	BranchName    string `yaml:"branchName"`
	IsGitRepo     bool   `yaml:"isGitRepo"`
	HasWorkspace  bool   `yaml:"hasWorkspace"`
	IsLocalFolder bool   `yaml:"isLocalFolder,omitempty"`
	WorkspacePath string `yaml:"workspacePath,omitempty"`
}

// Context is the matching input derived from the workspace.
type Context struct {
	RepositoryURL string
	BranchName    string
	IsLocalFolder bool
	WorkspacePath string
}

// Context derives the matching context from the workspace.
func (w WorkspaceInfo) Context() Context {
	return Context{
		RepositoryURL: w.RepositoryURL,
		BranchName:    w.BranchName,
		IsLocalFolder: w.IsLocalFolder,
		WorkspacePath: w.WorkspacePath,
	}
}

// Normalize fills defaults and migrates palettes in place.
func (c *Configuration) Normalize() {
	c.OtherSettings = c.OtherSettings.Clamp()
	for name, p := range c.AdvancedProfiles {
		p.Palette = p.Palette.Migrate()
		if p.Mappings == nil {
			p.Mappings = SectionMappings{}
		}
		c.AdvancedProfiles[name] = p
	}
}

// BranchTableNames returns the table names in sorted order.
func (c *Configuration) BranchTableNames() []string {
	return slices.Sorted(maps.Keys(c.SharedBranchTables))
}

// ProfileNames returns the profile names in sorted order.
func (c *Configuration) ProfileNames() []string {
	return slices.Sorted(maps.Keys(c.AdvancedProfiles))
}

// Clone returns a deep copy so callers can edit without touching the original snapshot.
func (c *Configuration) Clone() *Configuration {
	out := *c
	out.RepoRules = make([]RepoRule, len(c.RepoRules))
	for i, r := range c.RepoRules {
		r.Enabled = cloneBool(r.Enabled)
		out.RepoRules[i] = r
	}
	if c.SharedBranchTables != nil {
		out.SharedBranchTables = make(map[string]BranchTable, len(c.SharedBranchTables))
		for name, t := range c.SharedBranchTables {
			rules := make([]BranchRule, len(t.Rules))
			for i, r := range t.Rules {
				r.Enabled = cloneBool(r.Enabled)
				rules[i] = r
			}
			out.SharedBranchTables[name] = BranchTable{Rules: rules}
		}
	}
	if c.AdvancedProfiles != nil {
		out.AdvancedProfiles = make(AdvancedProfileMap, len(c.AdvancedProfiles))
		for name, p := range c.AdvancedProfiles {
			out.AdvancedProfiles[name] = p.Clone()
		}
	}
	return &out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// ThemeColors is the resolved theme key to color map. Keys without a color are absent.
type ThemeColors map[string]Color

// Hex renders every color for the editor settings, as #RRGGBB or #RRGGBBAA.
func (t ThemeColors) Hex() map[string]string {
	out := make(map[string]string, len(t))
	for k, c := range t {
		out[k] = c.HexA()
	}
	return out
}

// Keys returns the theme keys in sorted order.
func (t ThemeColors) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}
