package domain

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Sentinel slot names as they appear in configuration files.
const (
	SlotNoneName  = "none"
	SlotFixedName = "__fixed__"
)

// RefKind discriminates SlotReference.
type RefKind uint8

const (
	// RefNone leaves the theme key uncolored.
	RefNone RefKind = iota
	// RefFixed uses a literal color, bypassing the palette.
	RefFixed
	// RefPalette points at a palette slot.
	RefPalette
)

// SlotReference is what a theme key is mapped to: nothing, a fixed color, or a palette slot.
type SlotReference struct {
	Kind  RefKind
	Slot  SlotName
	Color string
}

// NoSlot returns the "do not color" reference.
func NoSlot() SlotReference {
	return SlotReference{Kind: RefNone}
}

// FixedRef returns a reference to a literal color.
func FixedRef(color string) SlotReference {
	return SlotReference{Kind: RefFixed, Color: color}
}

// PaletteRef returns a reference to a palette slot.
func PaletteRef(slot SlotName) SlotReference {
	return SlotReference{Kind: RefPalette, Slot: slot}
}

// ParseSlotReference converts the on-disk slot string into a SlotReference.
// An empty slot is treated as "none".
func ParseSlotReference(slot, fixedColor string) SlotReference {
	switch slot {
	case "", SlotNoneName:
		return NoSlot()
	case SlotFixedName:
		return FixedRef(fixedColor)
	default:
		return PaletteRef(SlotName(slot))
	}
}

// SlotString returns the on-disk slot string for the reference.
func (r SlotReference) SlotString() string {
	switch r.Kind {
	case RefFixed:
		return SlotFixedName
	case RefPalette:
		return string(r.Slot)
	default:
		return SlotNoneName
	}
}

// MappingValue binds a theme key to a slot reference with an optional opacity.
type MappingValue struct {
	Ref     SlotReference
	Opacity *float64
}

// MapTo returns a fully opaque mapping to a palette slot.
func MapTo(slot SlotName) MappingValue {
	return MappingValue{Ref: PaletteRef(slot)}
}

// MapToWithOpacity returns a mapping to a palette slot with the given opacity.
func MapToWithOpacity(slot SlotName, opacity float64) MappingValue {
	return MappingValue{Ref: PaletteRef(slot), Opacity: &opacity}
}

// MapFixed returns a mapping to a literal color.
func MapFixed(color string) MappingValue {
	return MappingValue{Ref: FixedRef(color)}
}

// EffectiveOpacity returns the opacity clamped to [0,1]; omission means 1.
func (m MappingValue) EffectiveOpacity() float64 {
	if m.Opacity == nil {
		return 1
	}
	return clamp01(*m.Opacity)
}

type mappingValueDTO struct {
	Slot       string   `yaml:"slot"`
	Opacity    *float64 `yaml:"opacity,omitempty"`
	FixedColor string   `yaml:"fixedColor,omitempty"`
}

// UnmarshalYAML accepts either a bare slot name or a {slot, opacity, fixedColor} object.
func (m *MappingValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var slot string
		if err := node.Decode(&slot); err != nil {
			return err
		}
		*m = MappingValue{Ref: ParseSlotReference(slot, "")}
		return nil
	case yaml.MappingNode:
		var dto mappingValueDTO
		if err := node.Decode(&dto); err != nil {
			return err
		}
		*m = MappingValue{
			Ref:     ParseSlotReference(dto.Slot, dto.FixedColor),
			Opacity: dto.Opacity,
		}
		return nil
	default:
		return zerr.With(ErrConfigParseFailed, "line", node.Line)
	}
}

// MarshalYAML writes the shorthand string form when no opacity or fixed color is set.
func (m MappingValue) MarshalYAML() (any, error) {
	if m.Opacity == nil && m.Ref.Kind != RefFixed {
		return m.Ref.SlotString(), nil
	}
	return mappingValueDTO{
		Slot:       m.Ref.SlotString(),
		Opacity:    m.Opacity,
		FixedColor: m.Ref.Color,
	}, nil
}

// SectionMappings maps VS Code theme keys to mapping values. Absent keys mean "none".
type SectionMappings map[string]MappingValue
