package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdssystems/UniStyle-sub001/internal/lock"
)

func TestLocalLocker_MutualExclusion(t *testing.T) {
	t.Parallel()

	locker := lock.NewLocalLocker()
	key := lock.ScheduleKey(1, 7)

	var (
		wg      sync.WaitGroup
		holders int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := locker.Acquire(context.Background(), key)
			require.NoError(t, err)
			defer release()

			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, maxSeen, "mais de uma goroutine segurou o lock")
}

func TestLocalLocker_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	locker := lock.NewLocalLocker()

	releaseA, err := locker.Acquire(context.Background(), lock.ScheduleKey(1, 7))
	require.NoError(t, err)
	defer releaseA()

	// outro profissional não espera pelo lock do primeiro
	done := make(chan struct{})
	go func() {
		releaseB, err := locker.Acquire(context.Background(), lock.ScheduleKey(1, 8))
		assert.NoError(t, err)
		releaseB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock de outra chave bloqueou")
	}
}

func TestLocalLocker_CancelledContext(t *testing.T) {
	t.Parallel()

	locker := lock.NewLocalLocker()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locker.Acquire(ctx, lock.ScheduleKey(1, 7))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScheduleKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "schedule:3:12", lock.ScheduleKey(3, 12))
	assert.NotEqual(t, lock.ScheduleKey(1, 23), lock.ScheduleKey(12, 3))
}
