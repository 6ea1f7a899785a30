package resolver

import (
	"maps"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
)

// SyncOptions selects which counterpart keys follow an edited mapping.
type SyncOptions struct {
	FgBg           bool
	ActiveInactive bool
}

// SyncMapping sets key to value and returns the updated copy of mappings.
// When value points at a palette slot, the counterpart keys selected by opts are
// pointed at the swapped slot, but only if that slot is congruous with the counterpart.
// Counterparts keep their own opacity.
func SyncMapping(mappings domain.SectionMappings, key string, value domain.MappingValue, opts SyncOptions) domain.SectionMappings {
	out := maps.Clone(mappings)
	if out == nil {
		out = domain.SectionMappings{}
	}
	out[key] = value

	if value.Ref.Kind != domain.RefPalette {
		return out
	}

	if opts.FgBg {
		syncCounterpart(out, value.Ref.Slot, domain.CorrespondingFgBgKey, domain.SwapFgBg, key)
	}
	if opts.ActiveInactive {
		syncCounterpart(out, value.Ref.Slot, domain.CorrespondingActiveInactiveKey, domain.SwapActiveInactive, key)
	}
	return out
}

func syncCounterpart(
	out domain.SectionMappings,
	slot domain.SlotName,
	counterpartKey func(string) (string, bool),
	swap func(domain.SlotName) (domain.SlotName, bool),
	key string,
) {
	other, ok := counterpartKey(key)
	if !ok {
		return
	}
	swapped, ok := swap(slot)
	if !ok || !domain.IsPaletteSlot(string(swapped)) || !domain.IsCongruous(swapped, other) {
		return
	}
	out[other] = domain.MappingValue{Ref: domain.PaletteRef(swapped), Opacity: out[other].Opacity}
}

// CongruousSlots lists the palette slots that fit a theme key, in palette order.
func CongruousSlots(key string) []domain.SlotName {
	var slots []domain.SlotName
	for _, s := range domain.PaletteSlots {
		if domain.IsCongruous(s, key) {
			slots = append(slots, s)
		}
	}
	return slots
}
