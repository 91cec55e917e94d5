package montecarlo_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/cayley/builder"
	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/montecarlo"
	"github.com/katalvlaran/cayley/state"
)

func newTree(t testing.TB, generations, links int) *builder.Tree {
	t.Helper()
	tree, err := builder.CayleyTree(generations, links)
	require.NoError(t, err)

	return tree
}

func newEngine(t testing.TB, net core.Network, opts ...montecarlo.Option) *montecarlo.Engine {
	t.Helper()
	e, err := montecarlo.New(net, opts...)
	require.NoError(t, err)

	return e
}

func TestNewErrors(t *testing.T) {
	_, err := montecarlo.New(nil)
	require.ErrorIs(t, err, montecarlo.ErrNilNetwork)

	_, err = montecarlo.New(newTree(t, 1, 3), montecarlo.WithParams(montecarlo.Params{Alpha: -1}))
	require.ErrorIs(t, err, montecarlo.ErrInvalidParams)

	assert.Panics(t, func() { montecarlo.WithWorkers(0) })
	assert.Panics(t, func() { montecarlo.WithRetention(0) })
	assert.Panics(t, func() { montecarlo.WithLogger(nil) })
	assert.Panics(t, func() { montecarlo.WithRand(nil) })
}

func TestEmptyState(t *testing.T) {
	tree := newTree(t, 2, 3)
	e := newEngine(t, tree)
	require.NoError(t, e.EmptyState())

	zeros, err := e.Zeros()
	require.NoError(t, err)
	assert.Equal(t, tree.NodeNumber(), zeros)

	ones, err := e.Ones(0)
	require.NoError(t, err)
	assert.Zero(t, ones)

	assert.Len(t, e.History(), 1)
	assert.Equal(t, 0, e.Time())
	_, err = uuid.Parse(e.RunID())
	require.NoError(t, err)
}

func TestCenterState(t *testing.T) {
	e := newEngine(t, newTree(t, 3, 3))
	require.NoError(t, e.CenterState())

	snap := e.States()
	assert.Equal(t, 1, snap.Count(state.Filled))
	assert.Equal(t, state.Filled, snap[builder.RootID])

	members := []builder.Member{{Name: "a", Rank: 1, Ideology: 0.2}, {Name: "b", Rank: 2, Ideology: 0.4}}
	net, err := builder.Ideology(members, builder.PolicyLinear)
	require.NoError(t, err)
	e = newEngine(t, net)
	require.ErrorIs(t, e.CenterState(), core.ErrUnknownNode)
	assert.Empty(t, e.History())
}

func TestRandomState(t *testing.T) {
	tree := newTree(t, 4, 3)
	a := newEngine(t, tree, montecarlo.WithSeed(11))
	b := newEngine(t, tree, montecarlo.WithSeed(11))
	require.NoError(t, a.RandomState())
	require.NoError(t, b.RandomState())

	assert.Empty(t, cmp.Diff(a.States(), b.States()))
	assert.Len(t, a.States(), tree.Len())
	for _, s := range a.States() {
		assert.Contains(t, []state.State{state.Empty, state.Filled}, s)
	}
}

func TestInitPolicyParse(t *testing.T) {
	for _, p := range []montecarlo.InitPolicy{montecarlo.InitEmpty, montecarlo.InitRandom, montecarlo.InitCenter} {
		got, err := montecarlo.ParseInitPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := montecarlo.ParseInitPolicy("full")
	require.ErrorIs(t, err, montecarlo.ErrUnknownPolicy)

	e := newEngine(t, newTree(t, 1, 2))
	require.ErrorIs(t, e.Init(montecarlo.InitPolicy(9)), montecarlo.ErrUnknownPolicy)
}

func TestLifecycleErrors(t *testing.T) {
	e := newEngine(t, newTree(t, 2, 3))

	_, err := e.SimulateNN()
	require.ErrorIs(t, err, montecarlo.ErrNotInitialized)
	_, err = e.Zeros()
	require.ErrorIs(t, err, montecarlo.ErrNoHistory)
	_, err = e.Ones(0)
	require.ErrorIs(t, err, montecarlo.ErrNoHistory)
	_, err = e.Table()
	require.ErrorIs(t, err, montecarlo.ErrNoHistory)

	require.NoError(t, e.EmptyState())
	_, err = e.SimulateNN()
	require.NoError(t, err)
	_, err = e.Ones(2)
	require.ErrorIs(t, err, montecarlo.ErrBadTimestep)
	_, err = e.Step(context.Background(), nil)
	require.ErrorIs(t, err, montecarlo.ErrInvalidParams)

	e.Clear()
	assert.Empty(t, e.History())
	assert.Empty(t, e.RunID())
	_, err = e.SimulateNN()
	require.ErrorIs(t, err, montecarlo.ErrNotInitialized)
}

// TestSaturatingStep runs one step with every probability equal to 1:
// all empty nodes fill and the seeded root empties.
func TestSaturatingStep(t *testing.T) {
	tree := newTree(t, 2, 3)
	e := newEngine(t, tree, montecarlo.WithSeed(1),
		montecarlo.WithParams(montecarlo.Params{Alpha: 1, Beta: 1, Gamma: 1}))
	require.NoError(t, e.CenterState())

	hist, err := e.SimulateNN()
	require.NoError(t, err)
	require.Len(t, hist, 2)

	want := state.Fill(tree.NodeIDs(), state.Filled)
	want[builder.RootID] = state.Empty
	assert.Empty(t, cmp.Diff(want, hist[1]))

	for gen, n := range []int{0, 3, 6} {
		got, err := e.DensityCalculator(gen, 1)
		require.NoError(t, err)
		assert.Equal(t, n, got, "generation %d", gen)
	}
	// snapshot 0 is untouched by the step
	assert.Equal(t, 1, hist[0].Count(state.Filled))
}

// TestFilledNodeKeepsStateWithoutGamma: with γ=0 a filled node has p=0.
func TestFilledNodeKeepsStateWithoutGamma(t *testing.T) {
	tree := newTree(t, 2, 3)
	e := newEngine(t, tree, montecarlo.WithParams(montecarlo.Params{Alpha: 1, Beta: 1}))
	require.NoError(t, e.CenterState())

	_, err := e.SimulateNN()
	require.NoError(t, err)
	ones, err := e.Ones(1)
	require.NoError(t, err)
	assert.Equal(t, tree.NodeNumber(), ones)
}

func TestZeroProbabilityIsFrozen(t *testing.T) {
	e := newEngine(t, newTree(t, 3, 3), montecarlo.WithSeed(5),
		montecarlo.WithParams(montecarlo.Params{Beta: 0.5}))
	require.NoError(t, e.RandomState())
	initial := e.States()
	for i := 0; i < 5; i++ {
		_, err := e.SimulateNN()
		require.NoError(t, err)
	}
	assert.Empty(t, cmp.Diff(initial, e.States()))
}

func simulate(t *testing.T, e *montecarlo.Engine, steps int) state.History {
	t.Helper()
	require.NoError(t, e.CenterState())
	for i := 0; i < steps; i++ {
		_, err := e.SimulateNN()
		require.NoError(t, err)
	}

	return e.History()
}

func TestSeededDeterminism(t *testing.T) {
	tree := newTree(t, 4, 3)
	a := simulate(t, newEngine(t, tree, montecarlo.WithSeed(42)), 20)
	b := simulate(t, newEngine(t, tree, montecarlo.WithSeed(42)), 20)
	assert.Empty(t, cmp.Diff(a, b))

	c := simulate(t, newEngine(t, tree, montecarlo.WithRand(rand.New(rand.NewPCG(42, 42^0x9e3779b97f4a7c15)))), 20)
	assert.Empty(t, cmp.Diff(a, c))
}

func TestWorkerCountIndependence(t *testing.T) {
	tree := newTree(t, 5, 3)
	want := simulate(t, newEngine(t, tree, montecarlo.WithSeed(9)), 15)
	for _, w := range []int{2, 3, 8, 1000} {
		got := simulate(t, newEngine(t, tree, montecarlo.WithSeed(9), montecarlo.WithWorkers(w)), 15)
		assert.Empty(t, cmp.Diff(want, got), "workers=%d", w)
	}
}

// TestEvaluationOrderIndependence shuffles the per-node evaluation order:
// the outcome only depends on the prior snapshot and the per-node draws.
func TestEvaluationOrderIndependence(t *testing.T) {
	tree := newTree(t, 4, 3)
	want := simulate(t, newEngine(t, tree, montecarlo.WithSeed(3)), 10)

	shuffled := newEngine(t, tree, montecarlo.WithSeed(3))
	order := rand.New(rand.NewPCG(1, 2)).Perm(tree.Len())
	montecarlo.SetEvalOrder(shuffled, order)
	assert.Empty(t, cmp.Diff(want, simulate(t, shuffled, 10)))

	reversed := newEngine(t, tree, montecarlo.WithSeed(3), montecarlo.WithWorkers(4))
	rev := make([]int, tree.Len())
	for i := range rev {
		rev[i] = len(rev) - 1 - i
	}
	montecarlo.SetEvalOrder(reversed, rev)
	assert.Empty(t, cmp.Diff(want, simulate(t, reversed, 10)))
}

func TestNodeDrawRange(t *testing.T) {
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		u := montecarlo.NodeDraw(77, i)
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
		seen[u] = true
	}
	assert.Len(t, seen, 1000)
	assert.Equal(t, montecarlo.NodeDraw(5, 3), montecarlo.NodeDraw(5, 3))
}

func TestRetention(t *testing.T) {
	e := newEngine(t, newTree(t, 2, 3), montecarlo.WithSeed(2), montecarlo.WithRetention(3))
	require.NoError(t, e.CenterState())
	for i := 0; i < 5; i++ {
		_, err := e.SimulateNN()
		require.NoError(t, err)
	}
	assert.Len(t, e.History(), 3)
	assert.Equal(t, 3, e.Offset())
	assert.Equal(t, 5, e.Time())

	_, err := e.Ones(0)
	require.ErrorIs(t, err, montecarlo.ErrBadTimestep)
	_, err = e.Ones(5)
	require.NoError(t, err)

	tbl, err := e.Table()
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, 3, tbl.Rows[0].Step)
	assert.Equal(t, 5, tbl.Rows[2].Step)
	assert.Equal(t, []int{1, 3, 6}, tbl.Sizes)
}

func TestCancelledStepCommitsNothing(t *testing.T) {
	e := newEngine(t, newTree(t, 3, 3), montecarlo.WithWorkers(2))
	require.NoError(t, e.EmptyState())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Step(ctx, montecarlo.NN{Params: montecarlo.Defaults()})
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, e.History(), 1)
}

// timeRecorder captures the time index Run hands to each step.
type timeRecorder struct {
	seen []int
}

func (r *timeRecorder) next(t int) montecarlo.Rule {
	r.seen = append(r.seen, t)
	return montecarlo.TL{Params: montecarlo.TLDefaults(), T: t}
}

func TestRunPassesTimeIndex(t *testing.T) {
	e := newEngine(t, newTree(t, 2, 3), montecarlo.WithSeed(4))
	require.NoError(t, e.CenterState())

	rec := &timeRecorder{}
	hist, err := e.Run(context.Background(), 4, rec.next)
	require.NoError(t, err)
	assert.Len(t, hist, 5)
	assert.Equal(t, []int{0, 1, 2, 3}, rec.seen)
}

// failingRule errors on one node.
type failingRule struct{ bad string }

func (failingRule) Name() string { return "failing" }

func (r failingRule) Bind(core.Network, state.Snapshot) (montecarlo.ProbFunc, error) {
	return func(id string, _ state.State, _ []string) (float64, error) {
		if id == r.bad {
			return 0, errors.New("boom")
		}
		return 0.5, nil
	}, nil
}

func TestRuleErrorCommitsNothing(t *testing.T) {
	e := newEngine(t, newTree(t, 2, 3), montecarlo.WithWorkers(3))
	require.NoError(t, e.EmptyState())
	_, err := e.Step(context.Background(), failingRule{bad: "7"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `node "7": boom`)
	assert.Len(t, e.History(), 1)
}

func TestLogging(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	e := newEngine(t, newTree(t, 2, 3), montecarlo.WithLogger(zap.New(obs)))
	require.NoError(t, e.CenterState())
	for i := 0; i < 3; i++ {
		_, err := e.SimulateNN()
		require.NoError(t, err)
	}
	e.Clear()

	assert.Equal(t, 1, logs.FilterMessage("run started").Len())
	assert.Equal(t, 3, logs.FilterMessage("step").Len())
	assert.Equal(t, 1, logs.FilterMessage("run cleared").Len())
	started := logs.FilterMessage("run started").All()[0].ContextMap()
	assert.Equal(t, "center", started["policy"])
	assert.EqualValues(t, 10, started["nodes"])
}
