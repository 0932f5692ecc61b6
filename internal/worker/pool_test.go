package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camchamb/custom-chess-server/internal/engine"
)

// rootItems builds one work item per legal move of fen, each searching
// depth further plies.
func rootItems(t *testing.T, fen string, depth int) []WorkItem {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	require.NoError(t, err)

	var items []WorkItem
	for i, m := range g.AllLegalMoves() {
		items = append(items, WorkItem{Game: g.After(m), Move: m, Depth: depth, Index: i})
	}
	return items
}

// drain runs items through pool and returns the results keyed by Index.
func drain(pool *Pool, items []WorkItem) map[int]Result {
	pool.Start()
	go func() {
		for _, item := range items {
			if !pool.Submit(item) {
				break
			}
		}
		pool.Close()
	}()

	got := make(map[int]Result)
	for r := range pool.Results() {
		got[r.Index] = r
	}
	return got
}

func TestPool_SubtreeCounts(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
	}{
		{"initial one worker", engine.InitialFEN, 1, 1},
		{"initial four workers", engine.InitialFEN, 2, 4},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 3},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2, 2},
		{"leaf items", engine.InitialFEN, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := rootItems(t, tt.fen, tt.depth)
			pool := NewPool(countSubtree, WithWorkers(tt.workers), WithBufferSize(len(items)))

			got := drain(pool, items)
			require.Len(t, got, len(items))
			for _, item := range items {
				r := got[item.Index]
				assert.Equal(t, item.Move, r.Move, "index %d", item.Index)
				assert.Equal(t, engine.Perft(item.Game, item.Depth), r.Nodes, "move %s", item.Move)
			}
		})
	}
}

func TestPool_WorkerLimit(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		maxBusy int32
	}{
		{"default", WithWorkers(0), 1},
		{"two", WithWorkers(2), 2},
		{"negative ignored", WithWorkers(-3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var busy, peak int32
			count := func(item WorkItem) Result {
				n := atomic.AddInt32(&busy, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&busy, -1)
				return countSubtree(item)
			}

			items := rootItems(t, engine.InitialFEN, 1)
			got := drain(NewPool(count, tt.opt, WithBufferSize(len(items))), items)

			assert.Len(t, got, len(items))
			assert.LessOrEqual(t, atomic.LoadInt32(&peak), tt.maxBusy)
		})
	}
}

func TestPool_StopSkipsQueuedItems(t *testing.T) {
	items := rootItems(t, engine.InitialFEN, 1)

	var pool *Pool
	count := func(item WorkItem) Result {
		pool.Stop()
		return countSubtree(item)
	}
	pool = NewPool(count, WithBufferSize(len(items)))

	for _, item := range items {
		require.True(t, pool.Submit(item))
	}
	pool.Start()
	pool.Close()

	var results []Result
	for r := range pool.Results() {
		results = append(results, r)
	}
	require.Len(t, results, 1, "only the item in flight is counted")
	assert.Equal(t, items[0].Move, results[0].Move)
	assert.True(t, pool.Stopped())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	items := rootItems(t, engine.InitialFEN, 1)
	pool := NewPool(countSubtree, WithWorkers(2))
	pool.Start()

	assert.False(t, pool.Stopped())
	pool.Stop()
	assert.False(t, pool.Submit(items[0]))

	pool.Close()
	_, open := <-pool.Results()
	assert.False(t, open, "results closed after Close")
}

func TestPool_CloseWithoutItems(t *testing.T) {
	pool := NewPool(countSubtree, WithWorkers(4), WithBufferSize(-1))
	pool.Start()
	pool.Close()

	n := 0
	for range pool.Results() {
		n++
	}
	assert.Zero(t, n)
}
