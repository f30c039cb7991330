package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/adapters/watcher"
	"go.trai.ch/exsd/internal/core/ports"
)

type batches struct {
	mu  sync.Mutex
	got [][]ports.WatchEvent
}

func (b *batches) record(events []ports.WatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, events)
}

func (b *batches) all() [][]ports.WatchEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/project/schema/a.exsd"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{write("/project/schema/a.exsd")}, b.all()[0])
	})
}

func TestDebouncer_CoalescesSortedByPath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/project/schema/c.exsd"))
		d.Add(write("/project/schema/a.exsd"))
		d.Add(write("/project/schema/b.exsd"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{
			write("/project/schema/a.exsd"),
			write("/project/schema/b.exsd"),
			write("/project/schema/c.exsd"),
		}, b.all()[0])
	})
}

func TestDebouncer_LatestOperationWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(ports.WatchEvent{Path: "/p/a.exsd", Operation: ports.OpCreate})
		d.Add(ports.WatchEvent{Path: "/p/a.exsd", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/p/a.exsd", Operation: ports.OpRemove})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{{Path: "/p/a.exsd", Operation: ports.OpRemove}}, b.all()[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/p/a.exsd"))
		time.Sleep(60 * time.Millisecond)
		d.Add(write("/p/b.exsd"))
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, b.all(), "quiet period restarts on every event")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Len(t, b.all()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(time.Hour, b.record)

		d.Add(write("/p/a.exsd"))
		d.Flush()

		require.Len(t, b.all(), 1, "flush delivers synchronously")

		time.Sleep(2 * time.Hour)
		synctest.Wait()

		assert.Len(t, b.all(), 1, "flushed events are not delivered twice")
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	var b batches
	d := watcher.NewDebouncer(time.Second, b.record)

	d.Flush()

	assert.Empty(t, b.all())
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/p/a.exsd"))
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(100*time.Millisecond, nil)

		require.NotPanics(t, func() {
			d.Add(write("/p/a.exsd"))
			time.Sleep(150 * time.Millisecond)
			synctest.Wait()
			d.Flush()
		})
	})
}

func TestDebouncer_AddAfterFlush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/p/a.exsd"))
		d.Flush()
		d.Add(write("/p/b.exsd"))
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		got := b.all()
		require.Len(t, got, 2)
		assert.Equal(t, []ports.WatchEvent{write("/p/b.exsd")}, got[1])
	})
}
