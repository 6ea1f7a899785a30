package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/watcher"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(ev ports.WatchEvent) {
			received = append(received, ev)
		})

		d.Add(ports.WatchEvent{Path: "/cfg/grwc.yaml", Operation: ports.OpCreate})
		time.Sleep(100 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/cfg/grwc.yaml", Operation: ports.OpWrite})
		time.Sleep(100 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/cfg/grwc.yaml", Operation: ports.OpRename})

		// Still inside the window of the last event.
		time.Sleep(400 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, received)

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		require.Len(t, received, 1)
		assert.Equal(t, ports.OpRename, received[0].Operation)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchEvent) {
			calls++
		})

		d.Add(ports.WatchEvent{Operation: ports.OpWrite})
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add(ports.WatchEvent{Operation: ports.OpWrite})
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0
		d := watcher.NewDebouncer(time.Second, func(ports.WatchEvent) {
			calls++
		})

		d.Flush()
		assert.Equal(t, 0, calls, "nothing pending")

		d.Add(ports.WatchEvent{Operation: ports.OpWrite})
		d.Flush()
		assert.Equal(t, 1, calls)

		// The cancelled timer must not deliver again.
		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchEvent) {
			calls++
		})

		d.Add(ports.WatchEvent{Operation: ports.OpWrite})
		d.Stop()

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 0, calls)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add(ports.WatchEvent{Operation: ports.OpWrite})
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
