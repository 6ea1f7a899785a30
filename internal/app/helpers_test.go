package app_test

import (
	"bytes"
	"testing"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports/mocks"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const testConfigPath = "grwc.yaml"

type fixture struct {
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	watcher *mocks.MockWatcher
	app     *app.App
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

// newFixture builds an App on mocked ports and the real resolver, reading testConfigPath.
// Info logs are accepted; warnings must be expected by the test.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		stdout:  new(bytes.Buffer),
		stderr:  new(bytes.Buffer),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(f.loader, resolver.NewService(nil, nil, nil), f.logger, f.watcher, nil).
		WithOutput(f.stdout, f.stderr)
	f.app.Configure(app.GlobalOptions{ConfigPath: testConfigPath})
	return f
}

// expectSave captures the configuration written back to testConfigPath.
func (f *fixture) expectSave() *domain.Configuration {
	saved := &domain.Configuration{}
	f.loader.EXPECT().Save(testConfigPath, gomock.Any()).DoAndReturn(func(_ string, cfg *domain.Configuration) error {
		*saved = *cfg
		return nil
	})
	return saved
}

var (
	widgetsURL = "https://github.com/acme/widgets.git"
	blueHex    = "#4A90E2"
)

func sampleConfig() *domain.Configuration {
	return &domain.Configuration{
		RepoRules: []domain.RepoRule{
			{RepoQualifier: "acme/widgets", PrimaryColor: domain.LiteralColor(blueHex)},
			{RepoQualifier: "acme/ocean", ProfileName: "Ocean", BranchTableName: "main"},
			{RepoQualifier: "acme/forest", PrimaryColor: domain.LiteralColor("#228B22")},
		},
		SharedBranchTables: map[string]domain.BranchTable{
			"main": {Rules: []domain.BranchRule{
				{Pattern: "feature/.*", Color: domain.LiteralColor("#FF0000")},
				{Pattern: "fix/.*", Color: domain.LiteralColor("#00FF00")},
			}},
		},
		AdvancedProfiles: domain.AdvancedProfileMap{"Ocean": domain.DefaultProfile()},
		OtherSettings:    domain.DefaultSettings(),
		WorkspaceInfo: domain.WorkspaceInfo{
			RepositoryURL: widgetsURL,
			BranchName:    "main",
			IsGitRepo:     true,
			HasWorkspace:  true,
		},
	}
}
