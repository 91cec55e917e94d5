package montecarlo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/cayley/builder"
	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/density"
	"github.com/katalvlaran/cayley/state"
)

// Engine evolves and records the state of one network.
type Engine struct {
	net  core.Network
	ids  []string
	nbrs [][]string
	pos  map[string]int

	params    Params
	rng       *rand.Rand
	workers   int
	log       *zap.Logger
	retention int

	runID   string
	history state.History
	offset  int

	// order is the node evaluation order; nil means insertion order.
	order []int
}

// New binds an engine to net. Node IDs and neighbor lists are read once
// here; the network must not change afterwards.
func New(net core.Network, opts ...Option) (*Engine, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := newEngineConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	ids := net.NodeIDs()
	e := &Engine{
		net:       net,
		ids:       ids,
		nbrs:      make([][]string, len(ids)),
		pos:       make(map[string]int, len(ids)),
		params:    cfg.params,
		rng:       cfg.rng,
		workers:   cfg.workers,
		log:       cfg.logger,
		retention: cfg.retention,
	}
	for i, id := range ids {
		nb, err := net.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		e.nbrs[i] = nb
		e.pos[id] = i
	}

	return e, nil
}

// InitPolicy selects the initial snapshot.
type InitPolicy uint8

const (
	// InitEmpty sets every node to 0.
	InitEmpty InitPolicy = iota
	// InitRandom fills a random share of the population.
	InitRandom
	// InitCenter fills node "0" only.
	InitCenter
)

var initNames = [...]string{InitEmpty: "empty", InitRandom: "random", InitCenter: "center"}

// String returns the lowercase policy name.
func (p InitPolicy) String() string {
	if int(p) < len(initNames) {
		return initNames[p]
	}

	return fmt.Sprintf("InitPolicy(%d)", uint8(p))
}

// ParseInitPolicy maps "empty", "random" or "center" to an InitPolicy.
func ParseInitPolicy(name string) (InitPolicy, error) {
	for i, n := range initNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return InitPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("ParseInitPolicy: %q: %w", name, ErrUnknownPolicy)
}

// Init discards any history, starts a new run and records snapshot 0
// according to policy.
func (e *Engine) Init(policy InitPolicy) error {
	var snap state.Snapshot
	switch policy {
	case InitEmpty:
		snap = state.Fill(e.ids, state.Empty)
	case InitRandom:
		snap = e.randomSnapshot()
	case InitCenter:
		if _, ok := e.pos[builder.RootID]; !ok {
			return fmt.Errorf("CenterState: node %q: %w", builder.RootID, core.ErrUnknownNode)
		}
		snap = state.Fill(e.ids, state.Empty)
		snap[builder.RootID] = state.Filled
	default:
		return fmt.Errorf("Init: %v: %w", policy, ErrUnknownPolicy)
	}

	e.history = state.History{snap}
	e.offset = 0
	e.runID = uuid.NewString()
	e.log.Info("run started",
		zap.String("run", e.runID),
		zap.Stringer("policy", policy),
		zap.Int("nodes", len(e.ids)),
		zap.Int("filled", snap.Count(state.Filled)),
		zap.Int("workers", e.workers),
	)

	return nil
}

// randomSnapshot draws a threshold in [0, NodeNumber()] and then, per node,
// a value in the same range; values ≤ threshold leave the node empty.
func (e *Engine) randomSnapshot() state.Snapshot {
	n := e.net.NodeNumber() + 1
	threshold := e.rng.IntN(n)
	snap := make(state.Snapshot, len(e.ids))
	for _, id := range e.ids {
		if e.rng.IntN(n) <= threshold {
			snap[id] = state.Empty
		} else {
			snap[id] = state.Filled
		}
	}

	return snap
}

// EmptyState records an all-empty snapshot 0.
func (e *Engine) EmptyState() error { return e.Init(InitEmpty) }

// RandomState records a randomly filled snapshot 0.
func (e *Engine) RandomState() error { return e.Init(InitRandom) }

// CenterState records snapshot 0 with only node "0" filled.
// Fails with core.ErrUnknownNode when the network has no node "0".
func (e *Engine) CenterState() error { return e.Init(InitCenter) }

// SimulateNN advances one step with the NN rule and the engine parameters.
func (e *Engine) SimulateNN() (state.History, error) {
	return e.Step(context.Background(), NN{Params: e.params})
}

// SimulateTL advances one step with the TL rule at time index t.
func (e *Engine) SimulateTL(t int) (state.History, error) {
	return e.Step(context.Background(), TL{Params: e.params, T: t})
}

// SimulateEI advances one step with the EI rule.
func (e *Engine) SimulateEI() (state.History, error) {
	return e.Step(context.Background(), EI{Params: e.params})
}

// SimulateVote advances one step with the Vote rule for issue polarity issue.
func (e *Engine) SimulateVote(issue float64) (state.History, error) {
	return e.Step(context.Background(), Vote{Issue: issue, Scale: DefaultVoteScale})
}

// Run advances steps times; next supplies the rule for each step given the
// time index of the snapshot it starts from.
func (e *Engine) Run(ctx context.Context, steps int, next func(t int) Rule) (state.History, error) {
	for i := 0; i < steps; i++ {
		if _, err := e.Step(ctx, next(e.Time())); err != nil {
			return nil, err
		}
	}

	return e.History(), nil
}

// Params returns the rule parameters.
func (e *Engine) Params() Params { return e.params }

// Network returns the network the engine reads.
func (e *Engine) Network() core.Network { return e.net }

// RunID identifies the current run; empty before the first Init.
func (e *Engine) RunID() string { return e.runID }

// Offset returns the time index of the oldest retained snapshot.
func (e *Engine) Offset() int { return e.offset }

// Time returns the time index of the latest snapshot, or -1 without history.
func (e *Engine) Time() int { return e.offset + len(e.history) - 1 }

// History returns the retained snapshots, oldest first. Snapshots are
// shared with the engine and must not be modified.
func (e *Engine) History() state.History { return slices.Clone(e.history) }

// States returns a copy of the latest snapshot, or nil without history.
func (e *Engine) States() state.Snapshot { return e.history.Latest().Clone() }

// Snapshot returns the snapshot at absolute time index t.
func (e *Engine) Snapshot(t int) (state.Snapshot, error) {
	if len(e.history) == 0 {
		return nil, fmt.Errorf("Snapshot(%d): %w", t, ErrNoHistory)
	}
	if t < e.offset || t > e.Time() {
		return nil, fmt.Errorf("Snapshot(%d): retained %d..%d: %w", t, e.offset, e.Time(), ErrBadTimestep)
	}

	return e.history[t-e.offset], nil
}

// Zeros returns the number of empty nodes in the latest snapshot.
func (e *Engine) Zeros() (int, error) {
	if len(e.history) == 0 {
		return 0, fmt.Errorf("Zeros: %w", ErrNoHistory)
	}

	return density.Zeros(e.history.Latest()), nil
}

// Ones returns the number of filled nodes at time index t.
func (e *Engine) Ones(t int) (int, error) {
	snap, err := e.Snapshot(t)
	if err != nil {
		return 0, err
	}

	return density.Ones(snap), nil
}

// DensityCalculator returns the filled count of generation gen at time
// index t. The network must be core.Generational.
func (e *Engine) DensityCalculator(gen, t int) (int, error) {
	snap, err := e.Snapshot(t)
	if err != nil {
		return 0, err
	}

	return density.Generation(e.net, gen, snap)
}

// Table aggregates the retained history.
func (e *Engine) Table() (*density.Table, error) {
	return density.Tabulate(e.net, e.history, density.WithOffset(e.offset))
}

// Clear discards the history; an initial policy must be applied again
// before the next step.
func (e *Engine) Clear() {
	if e.runID != "" {
		e.log.Info("run cleared", zap.String("run", e.runID), zap.Int("time", e.Time()))
	}
	e.history = nil
	e.offset = 0
	e.runID = ""
}
