package dispatch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/app/dispatch"
	"github.com/bnema/takemehome/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func startDispatcher(t *testing.T, d *dispatch.Dispatcher) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(testContext())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = d.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return cancel
}

func TestDispatcher_RunsTasksSerially(t *testing.T) {
	d := dispatch.New(64)
	startDispatcher(t, d)

	var running, overlaps atomic.Int32
	var wg sync.WaitGroup
	order := make([]int, 0, 20)

	for i := range 20 {
		wg.Add(1)
		require.True(t, d.Post("task", func(context.Context) {
			defer wg.Done()
			if running.Add(1) > 1 {
				overlaps.Add(1)
			}
			order = append(order, i)
			time.Sleep(time.Millisecond)
			running.Add(-1)
		}))
	}
	wg.Wait()

	assert.Zero(t, overlaps.Load())
	require.Len(t, order, 20)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestDispatcher_SurvivesPanics(t *testing.T) {
	d := dispatch.New(8)
	startDispatcher(t, d)

	ran := make(chan struct{})
	require.True(t, d.Post("boom", func(context.Context) { panic("bad event") }))
	require.True(t, d.Post("after", func(context.Context) { close(ran) }))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task after panic did not run")
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := dispatch.New(1)

	assert.True(t, d.Post("a", func(context.Context) {}))
	assert.False(t, d.Post("b", func(context.Context) {}))
	assert.Equal(t, int64(1), d.Dropped())
	assert.False(t, d.Post("nil", nil))
}

func TestDispatcher_AfterFuncCoalescesByName(t *testing.T) {
	d := dispatch.New(8)

	// Block the loop so both timers fire before either task runs.
	gate := make(chan struct{})
	require.True(t, d.Post("gate", func(context.Context) { <-gate }))
	startDispatcher(t, d)

	var runs atomic.Int32
	done := make(chan struct{}, 2)
	task := func(context.Context) {
		runs.Add(1)
		done <- struct{}{}
	}
	d.AfterFunc(5*time.Millisecond, "recover", task)
	d.AfterFunc(10*time.Millisecond, "recover", task)

	time.Sleep(50 * time.Millisecond)
	close(gate)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("delayed task did not run")
	}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestDispatcher_RejectsAfterStop(t *testing.T) {
	d := dispatch.New(8)
	cancel := startDispatcher(t, d)
	cancel()

	assert.Eventually(t, func() bool {
		return !d.Post("late", func(context.Context) {})
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcher_TaskContextCarriesLogger(t *testing.T) {
	d := dispatch.New(8)
	startDispatcher(t, d)

	got := make(chan context.Context, 1)
	require.True(t, d.Post("ctx", func(ctx context.Context) { got <- ctx }))

	select {
	case ctx := <-got:
		assert.NotNil(t, logging.FromContext(ctx))
		assert.NoError(t, ctx.Err())
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}
