package resolver

import (
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
)

// SlotSources supplies the current rule colors for palette slots sourced from
// the repo or branch instead of a fixed value. Nil fields fall back to the slot value.
type SlotSources struct {
	Repo   *domain.Color
	Branch *domain.Color
}

// Resolve returns the color for a theme key, or false when the key gets no color.
func Resolve(key string, mappings domain.SectionMappings, palette domain.Palette) (domain.Color, bool) {
	return ResolveWith(key, mappings, palette, SlotSources{})
}

// ResolveWith is Resolve with repo and branch colors available to the palette.
func ResolveWith(key string, mappings domain.SectionMappings, palette domain.Palette, src SlotSources) (domain.Color, bool) {
	mv, ok := mappings[key]
	if !ok {
		return domain.Color{}, false
	}

	var c domain.Color
	switch mv.Ref.Kind {
	case domain.RefFixed:
		parsed, err := domain.ParseColor(mv.Ref.Color)
		if err != nil {
			return domain.Color{}, false
		}
		c = parsed
	case domain.RefPalette:
		slotColor, ok := resolveSlot(mv.Ref.Slot, palette, src, true)
		if !ok {
			return domain.Color{}, false
		}
		c = slotColor
	default:
		return domain.Color{}, false
	}

	return c.WithOpacity(c.A * mv.EffectiveOpacity()), true
}

// resolveSlot computes a palette slot's color including its own adjustments and opacity.
// contrast enables the highContrast derivation, which itself resolves the paired slot without it.
func resolveSlot(name domain.SlotName, palette domain.Palette, src SlotSources, contrast bool) (domain.Color, bool) {
	slot, ok := palette[name]
	if !ok {
		return domain.Color{}, false
	}

	if contrast && slot.HighContrast {
		if bg, ok := domain.SwapFgBg(name); ok && domain.IsForegroundKey(string(name)) {
			if bgColor, ok := resolveSlot(bg, palette, src, false); ok {
				return bgColor.ContrastingText(), true
			}
		}
	}

	c, ok := slotBase(slot, src)
	if !ok {
		return domain.Color{}, false
	}
	if slot.Lighten != nil {
		c = c.Lighten(*slot.Lighten)
	}
	if slot.Darken != nil {
		c = c.Darken(*slot.Darken)
	}
	if slot.Opacity != nil {
		c = c.WithOpacity(c.A * *slot.Opacity)
	}
	return c, true
}

func slotBase(slot domain.PaletteSlot, src SlotSources) (domain.Color, bool) {
	switch slot.Source {
	case domain.SourceTransparent:
		return domain.Transparent, true
	case domain.SourceRepoColor:
		if src.Repo != nil {
			return *src.Repo, true
		}
	case domain.SourceBranchColor:
		if src.Branch != nil {
			return *src.Branch, true
		}
		if src.Repo != nil {
			return *src.Repo, true
		}
	}

	if slot.Value == "" {
		return domain.Color{}, false
	}
	c, err := domain.ParseColor(slot.Value)
	if err != nil {
		return domain.Color{}, false
	}
	return c, true
}

// ResolveProfile resolves every mapped key of a profile. Keys without a color are omitted.
func ResolveProfile(p domain.AdvancedProfile, src SlotSources) domain.ThemeColors {
	out := make(domain.ThemeColors, len(p.Mappings))
	for key := range p.Mappings {
		if c, ok := ResolveWith(key, p.Mappings, p.Palette, src); ok {
			out[key] = c
		}
	}
	return out
}
