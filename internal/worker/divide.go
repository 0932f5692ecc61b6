package worker

import (
	"context"

	"github.com/camchamb/custom-chess-server/internal/engine"
)

// countSubtree is the CountFunc used by Divide.
func countSubtree(item WorkItem) Result {
	return Result{
		Move:  item.Move,
		Nodes: engine.Perft(item.Game, item.Depth),
		Index: item.Index,
	}
}

// Divide counts the leaf nodes below each legal root move of g to the given
// depth, spreading the root moves over workers goroutines. The entries come
// back in move generation order, matching engine.Divide. If ctx is cancelled
// the pool stops taking new subtrees and ctx.Err() is returned.
func Divide(ctx context.Context, g *engine.Game, depth, workers int) ([]engine.DivideEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		return nil, nil
	}

	pool := NewPool(countSubtree, WithWorkers(workers), WithBufferSize(len(moves)))
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	pool.Start()
	go func() {
		for i, m := range moves {
			if !pool.Submit(WorkItem{Game: g.After(m), Move: m, Depth: depth - 1, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, len(moves))
	received := 0
	for result := range pool.Results() {
		entries[result.Index] = engine.DivideEntry{Move: result.Move, Nodes: result.Nodes}
		received++
	}

	if received < len(moves) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Perft is the parallel counterpart of engine.Perft.
func Perft(ctx context.Context, g *engine.Game, depth, workers int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if depth <= 1 {
		return engine.Perft(g, depth), nil
	}
	entries, err := Divide(ctx, g, depth, workers)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, e := range entries {
		nodes += e.Nodes
	}
	return nodes, nil
}
