package registry

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-natqueue/logger"
	"github.com/arloliu/go-natqueue/strqueue"
)

func newMockLogger() *logger.MockLogger {
	m := logger.NewMockLogger()
	m.On("Debug", mock.Anything, mock.Anything).Return()
	m.On("Warn", mock.Anything, mock.Anything).Return()
	m.On("Level").Return(logger.InfoLevel)
	return m
}

func TestRegistry_CreateAndDo(t *testing.T) {
	require := require.New(t)
	mockLogger := newMockLogger()

	r, err := New(WithLogger(mockLogger))
	require.NoError(err)

	require.NoError(r.Create("jobs"))
	require.ErrorIs(r.Create("jobs"), ErrQueueExists)
	require.Equal(1, r.Len())

	err = r.Do("jobs", func(q *strqueue.Queue) {
		q.InsertTail("img10")
		q.InsertTail("img2")
		q.InsertTail("img1")
		q.Sort()
	})
	require.NoError(err)

	var values []string
	require.NoError(r.Do("jobs", func(q *strqueue.Queue) {
		values = q.Values()
	}))
	require.Equal([]string{"img1", "img2", "img10"}, values)

	require.ErrorIs(r.Do("missing", func(*strqueue.Queue) {}), ErrQueueNotFound)
	mockLogger.AssertCalled(t, "Debug", "registry: queue created", []any{"name", "jobs"})
}

func TestRegistry_Destroy(t *testing.T) {
	require := require.New(t)

	alloc := strqueue.NewTrackingAllocator()
	r, err := New(WithLogger(newMockLogger()), WithQueueOptions(strqueue.WithAllocator(alloc)))
	require.NoError(err)

	require.NoError(r.Create("a"))
	require.NoError(r.Do("a", func(q *strqueue.Queue) {
		for i := 0; i < 10; i++ {
			q.InsertTail(strconv.Itoa(i))
		}
	}))
	require.True(alloc.InUse())

	require.NoError(r.Destroy("a"))
	require.False(alloc.InUse())
	require.Equal(0, r.Len())
	require.ErrorIs(r.Destroy("a"), ErrQueueNotFound)
	require.ErrorIs(r.Do("a", func(*strqueue.Queue) {}), ErrQueueNotFound)

	// name can be reused
	require.NoError(r.Create("a"))
	require.NoError(r.Do("a", func(q *strqueue.Queue) {
		require.Equal(0, q.Size())
	}))
}

func TestRegistry_CreateFailure(t *testing.T) {
	require := require.New(t)

	alloc := strqueue.NewTrackingAllocator()
	alloc.FailAfter(strqueue.HeaderStorage, 1)
	r, err := New(WithLogger(newMockLogger()), WithQueueOptions(strqueue.WithAllocator(alloc)))
	require.NoError(err)

	require.NoError(r.Create("first"))
	err = r.Create("second")
	require.ErrorIs(err, strqueue.ErrOutOfMemory)
	require.Equal(1, r.Len())
	require.Equal([]string{"first"}, r.Names())
}

func TestRegistry_InvalidQueueOptions(t *testing.T) {
	r, err := New(WithQueueOptions(strqueue.WithSortStrategy(strqueue.SortStrategy(7))))
	require.NoError(t, err)

	err = r.Create("q")
	assert.ErrorIs(t, err, strqueue.ErrInvalidSortStrategy)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Names(t *testing.T) {
	require := require.New(t)

	r, err := New(WithLogger(newMockLogger()))
	require.NoError(err)
	for _, name := range []string{"queue10", "Queue2", "queue1", "queue20"} {
		require.NoError(r.Create(name))
	}

	require.Equal([]string{"queue1", "Queue2", "queue10", "queue20"}, r.Names())

	r.DestroyAll()
	require.Equal(0, r.Len())
	require.Empty(r.Names())
}

func TestRegistry_Concurrency(t *testing.T) {
	require := require.New(t)

	r, err := New(WithLogger(newMockLogger()))
	require.NoError(err)
	require.NoError(r.Create("shared"))
	require.NoError(r.Create("other"))

	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "shared"
			if i%2 == 1 {
				name = "other"
			}
			_ = r.Do(name, func(q *strqueue.Queue) {
				q.InsertTail(strconv.Itoa(i))
			})
		}(i)
	}
	wg.Wait()

	for _, name := range []string{"shared", "other"} {
		require.NoError(r.Do(name, func(q *strqueue.Queue) {
			require.Equal(500, q.Size())
			q.Sort()
			require.Equal(500, q.Size())
		}))
	}

	wg.Add(500)
	for i := 0; i < 500; i++ {
		go func() {
			defer wg.Done()
			_ = r.Do("shared", func(q *strqueue.Queue) {
				q.RemoveHead(nil)
			})
		}()
	}
	wg.Wait()

	require.NoError(r.Do("shared", func(q *strqueue.Queue) {
		require.True(q.IsEmpty())
	}))
}

func TestRegistry_DestroyWhileWaiting(t *testing.T) {
	require := require.New(t)

	r, err := New(WithLogger(newMockLogger()))
	require.NoError(err)
	require.NoError(r.Create("q"))

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- r.Do("q", func(q *strqueue.Queue) {
			close(entered)
			<-release
			q.InsertTail("x")
		})
	}()
	<-entered

	e, ok := r.queues.Load("q")
	require.True(ok)

	destroyed := make(chan error, 1)
	go func() { destroyed <- r.Destroy("q") }()

	close(release)
	require.NoError(<-done)
	require.NoError(<-destroyed)

	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	require.True(closed)
	require.ErrorIs(r.Do("q", func(*strqueue.Queue) {}), ErrQueueNotFound)
}
