package resolver

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validate reports authoring problems in cfg: unparsable colors, invalid branch
// patterns, dangling profile and table references, bad profile names, unknown
// slots and opacities outside [0,1]. Issues are ordered by location.
func (s *Service) Validate(cfg *domain.Configuration) []domain.Issue {
	v := &validator{matcher: s.matcher, cfg: cfg}

	for i, rule := range cfg.RepoRules {
		v.repoRule(fmt.Sprintf("repoRules[%d]", i), rule)
	}
	for _, name := range cfg.BranchTableNames() {
		for i, rule := range cfg.SharedBranchTables[name].Rules {
			v.branchRule(fmt.Sprintf("sharedBranchTables.%s.rules[%d]", name, i), rule)
		}
	}
	for _, name := range cfg.ProfileNames() {
		v.profile(fmt.Sprintf("advancedProfiles.%s", name), name, cfg.AdvancedProfiles[name])
	}
	return v.issues
}

type validator struct {
	matcher *Matcher
	cfg     *domain.Configuration
	issues  []domain.Issue
}

func (v *validator) add(path string, err error) {
	v.issues = append(v.issues, domain.Issue{Path: path, Err: err})
}

func (v *validator) repoRule(path string, rule domain.RepoRule) {
	v.ruleColor(path+".primaryColor", rule.ProfileName, rule.PrimaryColor)
	v.themedColor(path+".branchColor", rule.BranchColor)

	if name, ok := rule.BranchTable(); ok {
		if _, exists := v.cfg.SharedBranchTables[name]; !exists {
			v.add(path+".branchTableName", zerr.With(domain.ErrMissingBranchTable, "table", name))
		}
	}
}

func (v *validator) branchRule(path string, rule domain.BranchRule) {
	if err := v.matcher.CheckPattern(rule.Pattern); err != nil {
		v.add(path+".pattern", err)
	}
	v.ruleColor(path+".color", rule.ProfileName, rule.Color)
}

// ruleColor checks a rule's profile reference, or its literal color when it references none.
func (v *validator) ruleColor(path, profileName string, color domain.ThemedColor) {
	if profileName != "" {
		if _, ok := v.cfg.AdvancedProfiles[profileName]; !ok {
			v.add(path, zerr.With(domain.ErrMissingProfile, "profile", profileName))
		}
		return
	}
	if s, ok := color.Literal(); ok {
		if _, isProfile := v.cfg.AdvancedProfiles[s]; isProfile || domain.IsValidColor(s) {
			return
		}
		if looksLikeColor(s) {
			v.add(path, zerr.With(domain.ErrInvalidColor, "value", s))
		} else {
			v.add(path, zerr.With(domain.ErrMissingProfile, "profile", s))
		}
		return
	}
	v.themedColor(path, color)
}

// looksLikeColor reports whether s was meant as a color literal rather than a profile name.
func looksLikeColor(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(lower, "#") || strings.HasPrefix(lower, "rgb")
}

func (v *validator) themedColor(path string, color domain.ThemedColor) {
	if s, ok := color.Literal(); ok {
		if !domain.IsValidColor(s) {
			v.add(path, zerr.With(domain.ErrInvalidColor, "value", s))
		}
		return
	}

	variants := []struct {
		name  string
		value domain.ThemedValue
	}{
		{"dark", color.Dark},
		{"light", color.Light},
		{"highContrast", color.HighContrast},
	}
	for _, variant := range variants {
		if variant.value.Auto || variant.value.Value == "" {
			continue
		}
		if !domain.IsValidColor(variant.value.Value) {
			v.add(path+"."+variant.name, zerr.With(domain.ErrInvalidColor, "value", variant.value.Value))
		}
	}
}

func (v *validator) profile(path, name string, p domain.AdvancedProfile) {
	if err := domain.ValidateProfileName(name, name, v.cfg.AdvancedProfiles); err != nil {
		v.add(path, err)
	}

	for _, slotName := range domain.PaletteSlots {
		slot, ok := p.Palette[slotName]
		if !ok {
			continue
		}
		slotPath := fmt.Sprintf("%s.palette.%s", path, slotName)
		if slot.Source == domain.SourceFixed && !domain.IsValidColor(slot.Value) {
			v.add(slotPath+".value", zerr.With(domain.ErrInvalidColor, "value", slot.Value))
		}
		if slot.Opacity != nil && !inUnitRange(*slot.Opacity) {
			v.add(slotPath+".opacity", zerr.With(domain.ErrInvalidOpacity, "opacity", *slot.Opacity))
		}
	}

	for _, key := range slices.Sorted(maps.Keys(p.Mappings)) {
		mv := p.Mappings[key]
		keyPath := fmt.Sprintf("%s.mappings.%s", path, key)
		switch mv.Ref.Kind {
		case domain.RefPalette:
			if !domain.IsPaletteSlot(string(mv.Ref.Slot)) {
				v.add(keyPath, zerr.With(domain.ErrInvalidSlot, "slot", string(mv.Ref.Slot)))
			}
		case domain.RefFixed:
			if !domain.IsValidColor(mv.Ref.Color) {
				v.add(keyPath, zerr.With(domain.ErrInvalidColor, "value", mv.Ref.Color))
			}
		}
		if mv.Opacity != nil && !inUnitRange(*mv.Opacity) {
			v.add(keyPath+".opacity", zerr.With(domain.ErrInvalidOpacity, "opacity", *mv.Opacity))
		}
	}
}

func inUnitRange(f float64) bool {
	return f >= 0 && f <= 1
}
