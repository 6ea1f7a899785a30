package resolver_test

import (
	"testing"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuePaths(issues []domain.Issue) []string {
	paths := make([]string, len(issues))
	for i, issue := range issues {
		paths[i] = issue.Path
	}
	return paths
}

func TestValidate_Clean(t *testing.T) {
	t.Parallel()

	cfg := newConfig(widgetsURL, "main",
		domain.RepoRule{RepoQualifier: "acme/widgets", PrimaryColor: domain.LiteralColor("#4A90E2"), BranchTableName: "t"},
		domain.RepoRule{RepoQualifier: "acme", PrimaryColor: domain.LiteralColor("Ocean")},
		domain.RepoRule{RepoQualifier: "other", ProfileName: "Ocean", BranchTableName: domain.NoBranchTableName},
	)
	cfg.SharedBranchTables = map[string]domain.BranchTable{
		"t": {Rules: []domain.BranchRule{{Pattern: "feature/.*", Color: domain.LiteralColor("rgb(0, 255, 0)")}}},
	}
	cfg.AdvancedProfiles = domain.AdvancedProfileMap{"Ocean": domain.DefaultProfile()}

	assert.Empty(t, resolver.NewService(nil, nil, nil).Validate(cfg))
}

func TestValidate_ReportsProblems(t *testing.T) {
	t.Parallel()

	bad := domain.DefaultProfile()
	bad.Palette[domain.SlotTertiaryBg] = domain.PaletteSlot{Source: domain.SourceFixed, Value: "nope"}
	bad.Palette[domain.SlotTertiaryFg] = domain.PaletteSlot{Source: domain.SourceFixed, Value: "#FFFFFF", Opacity: float(1.5)}
	bad.Mappings["sideBar.background"] = domain.MapTo("ultraviolet")
	bad.Mappings["sideBar.foreground"] = domain.MapFixed("#12")
	bad.Mappings["panel.background"] = domain.MapToWithOpacity(domain.SlotTertiaryBg, -1)

	cfg := newConfig(widgetsURL, "main",
		domain.RepoRule{RepoQualifier: "a", PrimaryColor: domain.LiteralColor("#ZZZZZZ")},
		domain.RepoRule{RepoQualifier: "b", PrimaryColor: domain.LiteralColor("Nowhere"), BranchTableName: "gone"},
		domain.RepoRule{RepoQualifier: "c", ProfileName: "Ghost", BranchColor: domain.ThemedColor{
			Dark:  domain.ThemedValue{Value: "#00FF00"},
			Light: domain.ThemedValue{Value: "blurple"},
		}},
	)
	cfg.SharedBranchTables = map[string]domain.BranchTable{
		"t": {Rules: []domain.BranchRule{{Pattern: "(", Color: domain.LiteralColor("#00FF00")}}},
	}
	cfg.AdvancedProfiles = domain.AdvancedProfileMap{"Bad": bad, "red": domain.DefaultProfile()}

	issues := resolver.NewService(nil, nil, nil).Validate(cfg)

	assert.Equal(t, []string{
		"repoRules[0].primaryColor",
		"repoRules[1].primaryColor",
		"repoRules[1].branchTableName",
		"repoRules[2].primaryColor",
		"repoRules[2].branchColor.light",
		"sharedBranchTables.t.rules[0].pattern",
		"advancedProfiles.Bad.palette.tertiaryBg.value",
		"advancedProfiles.Bad.palette.tertiaryFg.opacity",
		"advancedProfiles.Bad.mappings.panel.background.opacity",
		"advancedProfiles.Bad.mappings.sideBar.background",
		"advancedProfiles.Bad.mappings.sideBar.foreground",
		"advancedProfiles.red",
	}, issuePaths(issues))

	want := []error{
		domain.ErrInvalidColor,
		domain.ErrMissingProfile,
		domain.ErrMissingBranchTable,
		domain.ErrMissingProfile,
		domain.ErrInvalidColor,
		domain.ErrInvalidPattern,
		domain.ErrInvalidColor,
		domain.ErrInvalidOpacity,
		domain.ErrInvalidOpacity,
		domain.ErrInvalidSlot,
		domain.ErrInvalidColor,
		domain.ErrReservedProfileName,
	}
	require.Len(t, issues, len(want))
	for i, sentinel := range want {
		// Note: ErrorIs may fail with zerr wrapping, so the sentinel message is matched.
		require.ErrorContains(t, issues[i].Err, sentinel.Error(), issues[i].Path)
	}
}
