package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// edit loads the configuration, applies fn to a copy and saves the copy.
// Nothing is written when fn fails.
func (a *App) edit(ctx context.Context, fn func(cfg *domain.Configuration) error) error {
	path, cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}

	updated := cfg.Clone()
	if err := fn(updated); err != nil {
		return err
	}
	return a.configLoader.Save(path, updated)
}

// CreateProfile adds a profile built from the default template.
func (a *App) CreateProfile(ctx context.Context, name string) error {
	if err := a.edit(ctx, func(cfg *domain.Configuration) error {
		return cfg.CreateProfile(name)
	}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("created profile %q", name))
	return nil
}

// RenameProfile renames a profile and every rule reference to it.
func (a *App) RenameProfile(ctx context.Context, from, to string) error {
	if err := a.edit(ctx, func(cfg *domain.Configuration) error {
		return cfg.RenameProfile(from, to)
	}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("renamed profile %q to %q", from, to))
	return nil
}

// DuplicateProfile copies a profile and prints the name of the copy.
func (a *App) DuplicateProfile(ctx context.Context, name string) error {
	var created string
	if err := a.edit(ctx, func(cfg *domain.Configuration) error {
		var err error
		created, err = cfg.DuplicateProfile(name)
		return err
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.stdout, created)
	return err
}

// DeleteProfile removes a profile no rule references.
func (a *App) DeleteProfile(ctx context.Context, name string) error {
	if err := a.edit(ctx, func(cfg *domain.Configuration) error {
		return cfg.DeleteProfile(name)
	}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("deleted profile %q", name))
	return nil
}

// MapOptions configuration for the MapProfile method.
type MapOptions struct {
	Profile            string
	Key                string
	Slot               string
	FixedColor         string
	Opacity            *float64
	SyncFgBg           bool
	SyncActiveInactive bool
}

// value builds the mapping the options describe.
func (o MapOptions) value() (domain.MappingValue, error) {
	slot := o.Slot
	if o.FixedColor != "" {
		slot = domain.SlotFixedName
	}

	ref := domain.ParseSlotReference(slot, o.FixedColor)
	switch ref.Kind {
	case domain.RefFixed:
		if !domain.IsValidColor(ref.Color) {
			return domain.MappingValue{}, zerr.With(domain.ErrInvalidColor, "value", ref.Color)
		}
	case domain.RefPalette:
		if !domain.IsPaletteSlot(string(ref.Slot)) {
			return domain.MappingValue{}, zerr.With(domain.ErrInvalidSlot, "slot", string(ref.Slot))
		}
	}

	if o.Opacity != nil && (*o.Opacity < 0 || *o.Opacity > 1) {
		return domain.MappingValue{}, zerr.With(domain.ErrInvalidOpacity, "opacity", *o.Opacity)
	}
	return domain.MappingValue{Ref: ref, Opacity: o.Opacity}, nil
}

// MapProfile points a theme key of a profile at a slot, a fixed color or nothing.
// Counterpart keys follow when the sync options ask for it and their swapped slot fits.
// A slot that does not fit the key is applied with a warning.
func (a *App) MapProfile(ctx context.Context, opts MapOptions) error {
	value, err := opts.value()
	if err != nil {
		return err
	}

	err = a.edit(ctx, func(cfg *domain.Configuration) error {
		p, ok := cfg.AdvancedProfiles[opts.Profile]
		if !ok {
			return zerr.With(domain.ErrMissingProfile, "name", opts.Profile)
		}
		p.Mappings = resolver.SyncMapping(p.Mappings, opts.Key, value, resolver.SyncOptions{
			FgBg:           opts.SyncFgBg,
			ActiveInactive: opts.SyncActiveInactive,
		})
		cfg.AdvancedProfiles[opts.Profile] = p
		return nil
	})
	if err != nil {
		return err
	}

	if value.Ref.Kind == domain.RefPalette && !domain.IsCongruous(value.Ref.Slot, opts.Key) {
		a.logger.Warn(fmt.Sprintf("slot %s does not fit %s; fitting slots: %s",
			value.Ref.Slot, opts.Key, joinSlots(resolver.CongruousSlots(opts.Key))))
	}
	a.logger.Info(fmt.Sprintf("mapped %s in profile %q to %s", opts.Key, opts.Profile, describeRef(value.Ref)))
	return nil
}

func joinSlots(slots []domain.SlotName) string {
	if len(slots) == 0 {
		return "none"
	}
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func describeRef(ref domain.SlotReference) string {
	if ref.Kind == domain.RefFixed {
		return ref.Color
	}
	return ref.SlotString()
}

// MoveOptions configuration for the MoveRule method.
type MoveOptions struct {
	From int
	To   int
	// Up and Down move the rule at From by one position and ignore To.
	Up    bool
	Down  bool
	Table string
}

// target returns the index the rule ends up at.
func (o MoveOptions) target() int {
	switch {
	case o.Up:
		return o.From - 1
	case o.Down:
		return o.From + 1
	default:
		return o.To
	}
}

func reorder[T any](items []T, opts MoveOptions) ([]T, error) {
	switch {
	case opts.Up:
		return domain.MoveUp(items, opts.From)
	case opts.Down:
		return domain.MoveDown(items, opts.From)
	default:
		return domain.MoveTo(items, opts.From, opts.To)
	}
}

// MoveRule reorders the repo rules, or the rules of a shared branch table when Table is set.
func (a *App) MoveRule(ctx context.Context, opts MoveOptions) error {
	if err := a.edit(ctx, func(cfg *domain.Configuration) error {
		if opts.Table == "" {
			rules, err := reorder(cfg.RepoRules, opts)
			if err != nil {
				return err
			}
			cfg.RepoRules = rules
			return nil
		}

		table, ok := cfg.SharedBranchTables[opts.Table]
		if !ok {
			return zerr.With(domain.ErrMissingBranchTable, "table", opts.Table)
		}
		rules, err := reorder(table.Rules, opts)
		if err != nil {
			return err
		}
		cfg.SharedBranchTables[opts.Table] = domain.BranchTable{Rules: rules}
		return nil
	}); err != nil {
		return err
	}

	target := "repo rules"
	if opts.Table != "" {
		target = "branch table " + opts.Table
	}
	a.logger.Info(fmt.Sprintf("moved rule %d to %d in %s", opts.From, opts.target(), target))
	return nil
}

// AddRuleOptions configuration for the AddRule method.
type AddRuleOptions struct {
	Qualifier string
	// Color is a color or the name of an existing profile.
	Color string
}

// AddRule inserts a repo rule just before the rule matching the current workspace,
// so the new rule takes over. Without a match the rule is appended.
func (a *App) AddRule(ctx context.Context, opts AddRuleOptions) error {
	qualifier := strings.TrimSpace(opts.Qualifier)
	if qualifier == "" {
		return domain.ErrEmptyQualifier
	}

	var index int
	if err := a.edit(ctx, func(cfg *domain.Configuration) error {
		if _, isProfile := cfg.AdvancedProfiles[opts.Color]; !isProfile && !domain.IsValidColor(opts.Color) {
			return zerr.With(domain.ErrInvalidColor, "color", opts.Color)
		}

		match := a.resolver.Match(cfg).RepoRule
		rule := domain.RepoRule{RepoQualifier: qualifier, PrimaryColor: domain.LiteralColor(opts.Color)}
		cfg.RepoRules = domain.InsertRepoRule(cfg.RepoRules, rule, match)

		index = len(cfg.RepoRules) - 1
		if match >= 0 {
			index = match
		}
		return nil
	}); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("added rule %q at %d", qualifier, index))
	return nil
}
