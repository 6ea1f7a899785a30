package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// AdvancedProfile is a reusable palette plus a mapping from theme keys to palette slots.
type AdvancedProfile struct {
	Palette  Palette         `yaml:"palette"`
	Mappings SectionMappings `yaml:"mappings"`
}

// AdvancedProfileMap holds profiles by name.
type AdvancedProfileMap map[string]AdvancedProfile

// Clone returns a deep copy of the profile.
func (p AdvancedProfile) Clone() AdvancedProfile {
	return AdvancedProfile{
		Palette:  p.Palette.Clone(),
		Mappings: cloneMappings(p.Mappings),
	}
}

// DefaultProfile returns the built-in template new profiles start from.
func DefaultProfile() AdvancedProfile {
	return AdvancedProfile{
		Palette: DefaultPalette(),
		Mappings: SectionMappings{
			"titleBar.activeBackground":        MapTo(SlotPrimaryActiveBg),
			"titleBar.activeForeground":        MapTo(SlotPrimaryActiveFg),
			"titleBar.inactiveBackground":      MapTo(SlotPrimaryInactiveBg),
			"titleBar.inactiveForeground":      MapTo(SlotPrimaryInactiveFg),
			"activityBar.background":           MapTo(SlotSecondaryActiveBg),
			"activityBar.foreground":           MapTo(SlotSecondaryActiveFg),
			"activityBar.inactiveForeground":   MapToWithOpacity(SlotSecondaryActiveFg, InactiveForegroundOpacity),
			"statusBar.background":             MapTo(SlotSecondaryInactiveBg),
			"statusBar.foreground":             MapTo(SlotSecondaryInactiveFg),
			"tab.activeBackground":             MapTo(SlotTertiaryBg),
			"tab.activeForeground":             MapTo(SlotTertiaryFg),
			"tab.inactiveBackground":           MapTo(SlotQuaternaryBg),
			"tab.inactiveForeground":           MapTo(SlotQuaternaryFg),
			"editorGroupHeader.tabsBackground": MapTo(SlotQuaternaryBg),
		},
	}
}

// ValidateProfileName checks a candidate name against the existing profiles.
// current is the name being renamed, if any, and is allowed to collide with itself.
func ValidateProfileName(name, current string, profiles AdvancedProfileMap) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name {
		return zerr.With(ErrInvalidProfileName, "name", name)
	}
	if IsValidColor(name) {
		return zerr.With(ErrReservedProfileName, "name", name)
	}
	if _, exists := profiles[name]; exists && name != current {
		return zerr.With(ErrDuplicateProfileName, "name", name)
	}
	return nil
}

// CreateProfile adds a profile built from the default template.
func (c *Configuration) CreateProfile(name string) error {
	if err := ValidateProfileName(name, "", c.AdvancedProfiles); err != nil {
		return err
	}
	if c.AdvancedProfiles == nil {
		c.AdvancedProfiles = AdvancedProfileMap{}
	}
	c.AdvancedProfiles[name] = DefaultProfile()
	return nil
}

// RenameProfile renames a profile and rewrites every rule reference to it,
// including legacy references through primaryColor and branch colors.
func (c *Configuration) RenameProfile(from, to string) error {
	profile, ok := c.AdvancedProfiles[from]
	if !ok {
		return zerr.With(ErrMissingProfile, "name", from)
	}
	if from == to {
		return nil
	}
	if err := ValidateProfileName(to, from, c.AdvancedProfiles); err != nil {
		return err
	}

	delete(c.AdvancedProfiles, from)
	c.AdvancedProfiles[to] = profile

	for i := range c.RepoRules {
		r := &c.RepoRules[i]
		if r.ProfileName == from {
			r.ProfileName = to
		}
		r.PrimaryColor.Rename(from, to)
	}
	for name, table := range c.SharedBranchTables {
		for i := range table.Rules {
			r := &table.Rules[i]
			if r.ProfileName == from {
				r.ProfileName = to
			}
			r.Color.Rename(from, to)
		}
		c.SharedBranchTables[name] = table
	}
	return nil
}

// DuplicateProfile deep-clones a profile under a fresh "<name> Copy" name and returns that name.
func (c *Configuration) DuplicateProfile(name string) (string, error) {
	profile, ok := c.AdvancedProfiles[name]
	if !ok {
		return "", zerr.With(ErrMissingProfile, "name", name)
	}

	candidate := name + " Copy"
	for n := 2; ; n++ {
		if _, exists := c.AdvancedProfiles[candidate]; !exists {
			break
		}
		candidate = fmt.Sprintf("%s Copy %d", name, n)
	}

	c.AdvancedProfiles[candidate] = profile.Clone()
	return candidate, nil
}

// DeleteProfile removes a profile that no rule references.
func (c *Configuration) DeleteProfile(name string) error {
	if _, ok := c.AdvancedProfiles[name]; !ok {
		return zerr.With(ErrMissingProfile, "name", name)
	}
	if users := c.ProfileUsers(name); len(users) > 0 {
		return zerr.With(zerr.With(ErrProfileInUse, "name", name), "rules", strings.Join(users, ", "))
	}
	delete(c.AdvancedProfiles, name)
	return nil
}

// ProfileUsers lists the rules referencing a profile, as "repo[i]" and "table/name[i]".
func (c *Configuration) ProfileUsers(name string) []string {
	var users []string
	for i, r := range c.RepoRules {
		if ref, ok := r.ProfileRef(c.AdvancedProfiles); ok && ref == name {
			users = append(users, fmt.Sprintf("repo[%d]", i))
		}
	}
	for _, tableName := range c.BranchTableNames() {
		for i, r := range c.SharedBranchTables[tableName].Rules {
			if ref, ok := r.ProfileRef(c.AdvancedProfiles); ok && ref == name {
				users = append(users, fmt.Sprintf("table/%s[%d]", tableName, i))
			}
		}
	}
	return users
}
