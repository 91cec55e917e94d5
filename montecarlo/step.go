package montecarlo

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cayley/state"
)

// ctxCheckEvery is how many nodes a worker evaluates between context checks.
const ctxCheckEvery = 256

// Step advances the run by one synchronous time unit under rule and returns
// the updated history. On error (including cancellation) nothing is
// committed.
func (e *Engine) Step(ctx context.Context, rule Rule) (state.History, error) {
	if len(e.history) == 0 {
		return nil, fmt.Errorf("Step: %w", ErrNotInitialized)
	}
	if rule == nil {
		return nil, fmt.Errorf("Step: nil rule: %w", ErrInvalidParams)
	}
	prev := e.history.Latest()
	prob, err := rule.Bind(e.net, prev)
	if err != nil {
		return nil, fmt.Errorf("Step: %w", err)
	}

	// One engine draw per step; node i then reads stream (base, i).
	base := e.rng.Uint64()
	next := make([]state.State, len(e.ids))
	if err = e.evaluate(ctx, prev, prob, base, next); err != nil {
		return nil, fmt.Errorf("Step: %s: %w", rule.Name(), err)
	}

	snap := make(state.Snapshot, len(e.ids))
	flips, filled := 0, 0
	for i, id := range e.ids {
		snap[id] = next[i]
		if next[i] != prev[id] {
			flips++
		}
		if next[i] == state.Filled {
			filled++
		}
	}
	e.commit(snap)

	e.log.Debug("step",
		zap.String("run", e.runID),
		zap.String("rule", rule.Name()),
		zap.Int("t", e.Time()),
		zap.Int("filled", filled),
		zap.Int("flips", flips),
	)

	return e.History(), nil
}

// commit appends snap and enforces the retention window.
func (e *Engine) commit(snap state.Snapshot) {
	e.history = append(e.history, snap)
	if e.retention > 0 && len(e.history) > e.retention {
		drop := len(e.history) - e.retention
		e.history = append(state.History(nil), e.history[drop:]...)
		e.offset += drop
	}
}

// evaluate fills next[i] for every node, splitting the evaluation order
// into one contiguous chunk per worker.
func (e *Engine) evaluate(ctx context.Context, prev state.Snapshot, prob ProbFunc, base uint64, next []state.State) error {
	order := e.order
	if order == nil {
		order = make([]int, len(e.ids))
		for i := range order {
			order[i] = i
		}
	}

	workers := min(e.workers, max(len(order), 1))
	chunk := (len(order) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, len(order))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for k, i := range order[lo:hi] {
				if k%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				id := e.ids[i]
				cur := prev[id]
				p, err := prob(id, cur, e.nbrs[i])
				if err != nil {
					return fmt.Errorf("node %q: %w", id, err)
				}
				if nodeDraw(base, i) <= p {
					next[i] = cur.Flip()
				} else {
					next[i] = cur
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// nodeDraw returns the uniform [0,1) draw of node i for a step seeded with base.
func nodeDraw(base uint64, i int) float64 {
	var src rand.PCG
	src.Seed(base, splitmix(uint64(i)))

	return float64(src.Uint64()>>11) / (1 << 53)
}

// splitmix scatters consecutive node indices across the PCG seed space.
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
