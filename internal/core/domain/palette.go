package domain

import "maps"

// SlotName identifies one of the twelve palette slots.
type SlotName string

// Palette slot names.
const (
	SlotPrimaryActiveBg     SlotName = "primaryActiveBg"
	SlotPrimaryActiveFg     SlotName = "primaryActiveFg"
	SlotPrimaryInactiveBg   SlotName = "primaryInactiveBg"
	SlotPrimaryInactiveFg   SlotName = "primaryInactiveFg"
	SlotSecondaryActiveBg   SlotName = "secondaryActiveBg"
	SlotSecondaryActiveFg   SlotName = "secondaryActiveFg"
	SlotSecondaryInactiveBg SlotName = "secondaryInactiveBg"
	SlotSecondaryInactiveFg SlotName = "secondaryInactiveFg"
	SlotTertiaryBg          SlotName = "tertiaryBg"
	SlotTertiaryFg          SlotName = "tertiaryFg"
	SlotQuaternaryBg        SlotName = "quaternaryBg"
	SlotQuaternaryFg        SlotName = "quaternaryFg"
)

// PaletteSlots lists every slot in display order.
var PaletteSlots = []SlotName{
	SlotPrimaryActiveBg,
	SlotPrimaryActiveFg,
	SlotPrimaryInactiveBg,
	SlotPrimaryInactiveFg,
	SlotSecondaryActiveBg,
	SlotSecondaryActiveFg,
	SlotSecondaryInactiveBg,
	SlotSecondaryInactiveFg,
	SlotTertiaryBg,
	SlotTertiaryFg,
	SlotQuaternaryBg,
	SlotQuaternaryFg,
}

// IsPaletteSlot reports whether name is one of the twelve slots.
func IsPaletteSlot(name string) bool {
	for _, s := range PaletteSlots {
		if string(s) == name {
			return true
		}
	}
	return false
}

// SlotSource tells where a palette slot takes its color from.
type SlotSource string

// Slot sources.
const (
	SourceFixed       SlotSource = "fixed"
	SourceRepoColor   SlotSource = "repoColor"
	SourceBranchColor SlotSource = "branchColor"
	SourceTransparent SlotSource = "transparent"
)

// PaletteSlot is one named color in a palette.
type PaletteSlot struct {
	Source       SlotSource `yaml:"source"`
	Value        string     `yaml:"value,omitempty"`
	Opacity      *float64   `yaml:"opacity,omitempty"`
	Lighten      *float64   `yaml:"lighten,omitempty"`
	Darken       *float64   `yaml:"darken,omitempty"`
	HighContrast bool       `yaml:"highContrast,omitempty"`
}

// Palette maps every slot name to its definition.
type Palette map[SlotName]PaletteSlot

var defaultPaletteValues = map[SlotName]string{
	SlotPrimaryActiveBg:     "#4A90E2",
	SlotPrimaryActiveFg:     "#FFFFFF",
	SlotPrimaryInactiveBg:   "#2E5C8A",
	SlotPrimaryInactiveFg:   "#CCCCCC",
	SlotSecondaryActiveBg:   "#5FA3E8",
	SlotSecondaryActiveFg:   "#FFFFFF",
	SlotSecondaryInactiveBg: "#4278B0",
	SlotSecondaryInactiveFg: "#CCCCCC",
	SlotTertiaryBg:          "#1E1E1E",
	SlotTertiaryFg:          "#CCCCCC",
	SlotQuaternaryBg:        "#2D2D30",
	SlotQuaternaryFg:        "#D4D4D4",
}

// DefaultPalette returns a fresh palette with all twelve slots set to fixed defaults.
func DefaultPalette() Palette {
	p := make(Palette, len(PaletteSlots))
	for _, name := range PaletteSlots {
		p[name] = PaletteSlot{Source: SourceFixed, Value: defaultPaletteValues[name]}
	}
	return p
}

// Migrate returns a copy with missing slots filled from DefaultPalette.
// Slots with no source are treated as fixed.
func (p Palette) Migrate() Palette {
	out := DefaultPalette()
	for name, slot := range p {
		if slot.Source == "" {
			slot.Source = SourceFixed
		}
		out[name] = slot
	}
	return out
}

// Clone returns a deep copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for name, slot := range p {
		out[name] = slot.clone()
	}
	return out
}

func (s PaletteSlot) clone() PaletteSlot {
	s.Opacity = cloneFloat(s.Opacity)
	s.Lighten = cloneFloat(s.Lighten)
	s.Darken = cloneFloat(s.Darken)
	return s
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// cloneMappings deep-copies a mapping table.
func cloneMappings(m SectionMappings) SectionMappings {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		v.Opacity = cloneFloat(v.Opacity)
		out[k] = v
	}
	return out
}
