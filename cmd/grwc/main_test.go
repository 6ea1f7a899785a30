package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports/mocks"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	prov   ComponentProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
	}
	env.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	application := app.New(env.loader, resolver.NewService(nil, nil, nil), env.logger, mocks.NewMockWatcher(ctrl), nil)
	env.prov = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: env.logger}, func() {}, nil
	}
	return env
}

func (e *testEnv) run(args ...string) int {
	return run(context.Background(), args, e.stdout, e.stderr, e.prov)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, 0, env.run("version"))
	assert.Contains(t, env.stdout.String(), "grwc version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command failures are logged and exit 1.
func TestRun_ExecutionError(t *testing.T) {
	env := newTestEnv(t)
	loadErr := errors.New("load failed")
	env.loader.EXPECT().Load("grwc.yaml").Return(nil, loadErr)
	env.logger.EXPECT().Error(loadErr)

	assert.Equal(t, 1, env.run("resolve", "--config", "grwc.yaml"))
}

// TestRun_ValidationFailed verifies that validation failures exit 1 without an extra error log.
func TestRun_ValidationFailed(t *testing.T) {
	env := newTestEnv(t)
	env.loader.EXPECT().Load("grwc.yaml").Return(&domain.Configuration{
		RepoRules: []domain.RepoRule{
			{RepoQualifier: "acme/widgets", PrimaryColor: domain.LiteralColor("#GGGGGG")},
		},
		OtherSettings: domain.DefaultSettings(),
	}, nil)
	env.logger.EXPECT().Warn(gomock.Any())

	assert.Equal(t, 1, env.run("validate", "--config", "grwc.yaml"))
	assert.Contains(t, env.stdout.String(), "repoRules[0].primaryColor")
}
