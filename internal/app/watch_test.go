package app_test

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/app"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeEvents wires the mock watcher to a channel the test feeds.
// The iterator ends when the watch context is done.
func (f *fixture) fakeEvents(events <-chan ports.WatchEvent) {
	var watchCtx context.Context
	f.watcher.EXPECT().Start(gomock.Any(), testConfigPath).DoAndReturn(func(ctx context.Context, _ string) error {
		watchCtx = ctx
		return nil
	})
	f.watcher.EXPECT().Events().DoAndReturn(func() iter.Seq[ports.WatchEvent] {
		return func(yield func(ports.WatchEvent) bool) {
			for {
				select {
				case <-watchCtx.Done():
					return
				case e := <-events:
					if !yield(e) {
						return
					}
				}
			}
		}
	})
	f.watcher.EXPECT().Stop().Return(nil)
}

func withPrimary(hex string) *domain.Configuration {
	cfg := sampleConfig()
	cfg.RepoRules[0].PrimaryColor = domain.LiteralColor(hex)
	return cfg
}

func TestApp_Watch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.app.WithDebounce(100 * time.Millisecond)

		events := make(chan ports.WatchEvent)
		f.fakeEvents(events)

		f.loader.EXPECT().Load(testConfigPath).Return(withPrimary(blueHex), nil)
		f.loader.EXPECT().Load(testConfigPath).Return(withPrimary("#228B22"), nil)
		f.loader.EXPECT().Load(testConfigPath).Return(withPrimary("#228B22"), nil)
		f.loader.EXPECT().Load(testConfigPath).Return(nil, domain.ErrConfigParseFailed)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- f.app.Watch(ctx, app.WatchOptions{OutputMode: "linear"})
		}()

		synctest.Wait()
		assert.Contains(t, f.stdout.String(), blueHex, "initial resolution is rendered")

		save := func() {
			events <- ports.WatchEvent{Path: testConfigPath, Operation: ports.OpWrite}
			events <- ports.WatchEvent{Path: testConfigPath, Operation: ports.OpRename}
			time.Sleep(150 * time.Millisecond)
			synctest.Wait()
		}

		save()
		assert.Contains(t, f.stdout.String(), "#228B22", "a settled change is re-resolved")

		save()
		assert.Equal(t, 2, strings.Count(f.stdout.String(), "[grwc.yaml]"), "unchanged resolutions are not rendered")

		save()
		assert.Contains(t, f.stderr.String(), domain.ErrConfigParseFailed.Error())

		cancel()
		require.NoError(t, <-done)
	})
}

func TestApp_WatchErrors(t *testing.T) {
	t.Run("invalid override", func(t *testing.T) {
		f := newFixture(t)
		err := f.app.Watch(context.Background(), app.WatchOptions{
			OutputMode: "linear",
			Overrides:  app.Overrides{ThemeKind: "sepia"},
		})
		require.ErrorContains(t, err, domain.ErrInvalidThemeKind.Error())
	})

	t.Run("watcher fails to start", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(testConfigPath).Return(sampleConfig(), nil)
		errWatch := errors.New("too many open files")
		f.watcher.EXPECT().Start(gomock.Any(), testConfigPath).Return(errWatch)

		err := f.app.Watch(context.Background(), app.WatchOptions{OutputMode: "linear"})
		require.ErrorIs(t, err, errWatch)
		assert.Contains(t, f.stdout.String(), blueHex)
	})
}
