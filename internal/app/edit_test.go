package app_test

import (
	"context"
	"testing"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApp_CreateProfile(t *testing.T) {
	t.Run("saves template", func(t *testing.T) {
		f := newFixture(t)
		original := sampleConfig()
		f.loader.EXPECT().Load(testConfigPath).Return(original, nil)
		saved := f.expectSave()

		require.NoError(t, f.app.CreateProfile(context.Background(), "Forest"))
		assert.Equal(t, domain.DefaultProfile(), saved.AdvancedProfiles["Forest"])
		assert.NotContains(t, original.AdvancedProfiles, "Forest", "the loaded snapshot is not modified")
	})

	t.Run("invalid names are not saved", func(t *testing.T) {
		tests := []struct {
			name    string
			profile string
			wantErr error
		}{
			{name: "color name", profile: "red", wantErr: domain.ErrReservedProfileName},
			{name: "duplicate", profile: "Ocean", wantErr: domain.ErrDuplicateProfileName},
			{name: "empty", profile: "", wantErr: domain.ErrInvalidProfileName},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

				err := f.app.CreateProfile(context.Background(), tt.profile)
				require.ErrorContains(t, err, tt.wantErr.Error())
			})
		}
	})
}

func TestApp_RenameProfile(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
	saved := f.expectSave()

	require.NoError(t, f.app.RenameProfile(context.Background(), "Ocean", "Deep"))
	assert.Contains(t, saved.AdvancedProfiles, "Deep")
	assert.NotContains(t, saved.AdvancedProfiles, "Ocean")
	assert.Equal(t, "Deep", saved.RepoRules[1].ProfileName)
}

func TestApp_DuplicateProfile(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
	saved := f.expectSave()

	require.NoError(t, f.app.DuplicateProfile(context.Background(), "Ocean"))
	assert.Equal(t, "Ocean Copy\n", f.stdout.String())
	assert.Equal(t, saved.AdvancedProfiles["Ocean"], saved.AdvancedProfiles["Ocean Copy"])
}

func TestApp_DeleteProfile(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

		err := f.app.DeleteProfile(context.Background(), "Ocean")
		require.ErrorContains(t, err, domain.ErrProfileInUse.Error())
	})

	t.Run("unused", func(t *testing.T) {
		f := newFixture(t)
		cfg := sampleConfig()
		cfg.RepoRules = cfg.RepoRules[:1]
		f.loader.EXPECT().Load(testConfigPath).Return(cfg, nil)
		saved := f.expectSave()

		require.NoError(t, f.app.DeleteProfile(context.Background(), "Ocean"))
		assert.Empty(t, saved.AdvancedProfiles)
	})
}

func TestApp_MapProfile(t *testing.T) {
	t.Run("syncs foreground", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		saved := f.expectSave()

		require.NoError(t, f.app.MapProfile(context.Background(), app.MapOptions{
			Profile:  "Ocean",
			Key:      domain.KeyTitleBarActiveBackground,
			Slot:     string(domain.SlotSecondaryActiveBg),
			SyncFgBg: true,
		}))

		mappings := saved.AdvancedProfiles["Ocean"].Mappings
		assert.Equal(t, domain.MapTo(domain.SlotSecondaryActiveBg), mappings[domain.KeyTitleBarActiveBackground])
		assert.Equal(t, domain.MapTo(domain.SlotSecondaryActiveFg), mappings[domain.KeyTitleBarActiveForeground])
	})

	t.Run("fixed color with opacity", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		saved := f.expectSave()

		opacity := 0.5
		require.NoError(t, f.app.MapProfile(context.Background(), app.MapOptions{
			Profile:    "Ocean",
			Key:        domain.KeyStatusBarBackground,
			FixedColor: "#123456",
			Opacity:    &opacity,
		}))

		got := saved.AdvancedProfiles["Ocean"].Mappings[domain.KeyStatusBarBackground]
		assert.Equal(t, domain.FixedRef("#123456"), got.Ref)
		assert.InDelta(t, 0.5, got.EffectiveOpacity(), 1e-9)
	})

	t.Run("none", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		saved := f.expectSave()

		require.NoError(t, f.app.MapProfile(context.Background(), app.MapOptions{
			Profile: "Ocean",
			Key:     domain.KeyStatusBarBackground,
			Slot:    domain.SlotNoneName,
		}))
		assert.Equal(t, domain.NoSlot(), saved.AdvancedProfiles["Ocean"].Mappings[domain.KeyStatusBarBackground].Ref)
	})

	t.Run("incongruous slot warns", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		f.expectSave()

		var warned string
		f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warned = msg })

		require.NoError(t, f.app.MapProfile(context.Background(), app.MapOptions{
			Profile: "Ocean",
			Key:     domain.KeyTitleBarActiveBackground,
			Slot:    string(domain.SlotTertiaryFg),
		}))
		assert.Equal(t,
			"slot tertiaryFg does not fit titleBar.activeBackground; fitting slots: primaryActiveBg, secondaryActiveBg",
			warned)
	})

	t.Run("rejected before loading", func(t *testing.T) {
		opacity := 1.5
		tests := []struct {
			name    string
			opts    app.MapOptions
			wantErr error
		}{
			{
				name:    "unknown slot",
				opts:    app.MapOptions{Profile: "Ocean", Key: domain.KeyStatusBarBackground, Slot: "octonaryBg"},
				wantErr: domain.ErrInvalidSlot,
			},
			{
				name:    "bad fixed color",
				opts:    app.MapOptions{Profile: "Ocean", Key: domain.KeyStatusBarBackground, FixedColor: "#12"},
				wantErr: domain.ErrInvalidColor,
			},
			{
				name: "opacity out of range",
				opts: app.MapOptions{
					Profile: "Ocean", Key: domain.KeyStatusBarBackground,
					Slot: string(domain.SlotTertiaryBg), Opacity: &opacity,
				},
				wantErr: domain.ErrInvalidOpacity,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				err := f.app.MapProfile(context.Background(), tt.opts)
				require.ErrorContains(t, err, tt.wantErr.Error())
			})
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

		err := f.app.MapProfile(context.Background(), app.MapOptions{
			Profile: "Nope",
			Key:     domain.KeyStatusBarBackground,
			Slot:    string(domain.SlotTertiaryBg),
		})
		require.ErrorContains(t, err, domain.ErrMissingProfile.Error())
	})
}

func TestApp_MoveRule(t *testing.T) {
	t.Run("repo rules", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		saved := f.expectSave()

		require.NoError(t, f.app.MoveRule(context.Background(), app.MoveOptions{From: 2, To: 0}))
		assert.Equal(t, []string{"acme/forest", "acme/widgets", "acme/ocean"}, qualifiersOf(*saved))
	})

	t.Run("branch table", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		saved := f.expectSave()

		require.NoError(t, f.app.MoveRule(context.Background(), app.MoveOptions{From: 1, To: 0, Table: "main"}))
		assert.Equal(t, "fix/.*", saved.SharedBranchTables["main"].Rules[0].Pattern)
	})

	t.Run("out of range", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

		err := f.app.MoveRule(context.Background(), app.MoveOptions{From: 0, To: 3})
		require.ErrorContains(t, err, domain.ErrIndexOutOfRange.Error())
	})

	t.Run("missing table", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

		err := f.app.MoveRule(context.Background(), app.MoveOptions{From: 0, To: 1, Table: "release"})
		require.ErrorContains(t, err, domain.ErrMissingBranchTable.Error())
	})

	t.Run("step", func(t *testing.T) {
		tests := []struct {
			name string
			opts app.MoveOptions
			want []string
		}{
			{"up", app.MoveOptions{From: 2, Up: true}, []string{"acme/widgets", "acme/forest", "acme/ocean"}},
			{"down", app.MoveOptions{From: 0, Down: true}, []string{"acme/ocean", "acme/widgets", "acme/forest"}},
			{"up ignores to", app.MoveOptions{From: 1, To: 2, Up: true}, []string{"acme/ocean", "acme/widgets", "acme/forest"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
				saved := f.expectSave()

				require.NoError(t, f.app.MoveRule(context.Background(), tt.opts))
				assert.Equal(t, tt.want, qualifiersOf(*saved))
			})
		}
	})

	t.Run("step past the edge", func(t *testing.T) {
		for _, opts := range []app.MoveOptions{{From: 0, Up: true}, {From: 1, Down: true, Table: "main"}} {
			f := newFixture(t)
			f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

			err := f.app.MoveRule(context.Background(), opts)
			require.ErrorContains(t, err, domain.ErrIndexOutOfRange.Error())
		}
	})
}

func TestApp_AddRule(t *testing.T) {
	t.Run("inserts before the matching rule", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		saved := f.expectSave()

		require.NoError(t, f.app.AddRule(context.Background(), app.AddRuleOptions{
			Qualifier: "widgets",
			Color:     "#228B22",
		}))
		assert.Equal(t, []string{"widgets", "acme/widgets", "acme/ocean", "acme/forest"}, qualifiersOf(*saved))
		assert.Equal(t, domain.LiteralColor("#228B22"), saved.RepoRules[0].PrimaryColor)
	})

	t.Run("appends without a match", func(t *testing.T) {
		cfg := sampleConfig()
		cfg.WorkspaceInfo.RepositoryURL = "https://github.com/other/tool.git"

		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(cfg, nil)
		saved := f.expectSave()

		require.NoError(t, f.app.AddRule(context.Background(), app.AddRuleOptions{Qualifier: "other/tool", Color: "Ocean"}))
		assert.Equal(t, []string{"acme/widgets", "acme/ocean", "acme/forest", "other/tool"}, qualifiersOf(*saved))
	})

	t.Run("invalid color", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)

		err := f.app.AddRule(context.Background(), app.AddRuleOptions{Qualifier: "widgets", Color: "not-a-color"})
		require.ErrorContains(t, err, domain.ErrInvalidColor.Error())
	})

	t.Run("empty qualifier", func(t *testing.T) {
		f := newFixture(t)

		err := f.app.AddRule(context.Background(), app.AddRuleOptions{Qualifier: "  ", Color: "#228B22"})
		require.ErrorIs(t, err, domain.ErrEmptyQualifier)
	})
}

func qualifiersOf(cfg domain.Configuration) []string {
	var qualifiers []string
	for _, r := range cfg.RepoRules {
		qualifiers = append(qualifiers, r.RepoQualifier)
	}
	return qualifiers
}

func TestApp_SaveError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
	f.loader.EXPECT().Save(testConfigPath, gomock.Any()).Return(domain.ErrConfigWriteFailed)

	err := f.app.CreateProfile(context.Background(), "Forest")
	require.ErrorIs(t, err, domain.ErrConfigWriteFailed)
}
