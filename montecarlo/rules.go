package montecarlo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/state"
)

// ProbFunc returns the flip probability of node id, currently in state cur,
// with ordered neighbors nbrs. It must only read data bound before the step.
type ProbFunc func(id string, cur state.State, nbrs []string) (float64, error)

// Rule is a transition rule. Bind is called once per step with the
// network and the latest committed snapshot; the returned ProbFunc is then
// called concurrently for every node.
type Rule interface {
	Name() string
	Bind(net core.Network, prev state.Snapshot) (ProbFunc, error)
}

// NN is the nearest-neighbor rule:
//
//	p = γ·S + (1−S)·α·β^sum
//
// where S is the node's state and sum the number of filled neighbors.
type NN struct {
	Params Params
}

// Name implements Rule.
func (NN) Name() string { return "nn" }

// Bind implements Rule.
func (r NN) Bind(_ core.Network, prev state.Snapshot) (ProbFunc, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, fmt.Errorf("NN: %w", err)
	}
	p := r.Params

	return func(_ string, cur state.State, nbrs []string) (float64, error) {
		s := cur.Float()
		sum := float64(prev.CountIn(nbrs, state.Filled))

		return p.Gamma*s + (1-s)*p.Alpha*math.Pow(p.Beta, sum), nil
	}, nil
}

// TL is the density rule with an explicit time index T:
//
//	p = γ·S + (1−S)·α·f(T)·β^D,  f(T) = r1 + (r2−r1)·(1−e^{−μT})
//
// D counts the other filled nodes of the node's generation on generational
// networks and of the whole network otherwise.
type TL struct {
	Params Params
	T      int
}

// Name implements Rule.
func (TL) Name() string { return "tl" }

// Ramp returns f(T).
func (r TL) Ramp() float64 {
	p := r.Params
	return p.R1 + (p.R2-p.R1)*(1-math.Exp(-p.Mu*float64(r.T)))
}

// Bind implements Rule.
func (r TL) Bind(net core.Network, prev state.Snapshot) (ProbFunc, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, fmt.Errorf("TL: %w", err)
	}
	if r.T < 0 {
		return nil, fmt.Errorf("TL: t=%d: %w", r.T, ErrBadTimestep)
	}
	p, ramp := r.Params, r.Ramp()

	// filled count per group; non-generational networks form one group
	group := map[string]int{}
	var filled []int
	if gn, ok := net.(core.Generational); ok {
		filled = make([]int, gn.Generations()+1)
		for g := range filled {
			ids := gn.NodesInGeneration(g)
			for _, id := range ids {
				group[id] = g
			}
			filled[g] = prev.CountIn(ids, state.Filled)
		}
	} else {
		filled = []int{prev.Count(state.Filled)}
	}

	return func(id string, cur state.State, _ []string) (float64, error) {
		s := cur.Float()
		d := filled[group[id]] - int(cur)

		return p.Gamma*s + (1-s)*p.Alpha*ramp*math.Pow(p.Beta, float64(d)), nil
	}, nil
}

// EI is the empty-interval rule:
//
//	p = γ·S + (1−S)·α·r·β^(k−E)
//
// E is the longest run of consecutive empty nodes in the ordered neighbor
// list, k the degree, and r = r2 when every neighbor is empty, r1 otherwise.
type EI struct {
	Params Params
}

// Name implements Rule.
func (EI) Name() string { return "ei" }

// Bind implements Rule.
func (r EI) Bind(_ core.Network, prev state.Snapshot) (ProbFunc, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, fmt.Errorf("EI: %w", err)
	}
	p := r.Params

	return func(_ string, cur state.State, nbrs []string) (float64, error) {
		s := cur.Float()
		k := len(nbrs)
		e := EmptyInterval(prev, nbrs)
		rate := p.R1
		if e == k {
			rate = p.R2
		}

		return p.Gamma*s + (1-s)*p.Alpha*rate*math.Pow(p.Beta, float64(k-e)), nil
	}, nil
}

// EmptyInterval returns the longest run of consecutive empty IDs in nbrs.
func EmptyInterval(snap state.Snapshot, nbrs []string) int {
	best, run := 0, 0
	for _, id := range nbrs {
		if snap[id] == state.Empty {
			run++
			best = max(best, run)
			continue
		}
		run = 0
	}

	return best
}

// DefaultVoteScale is the rate-constant scale of the Vote rule.
const DefaultVoteScale = 300.0

// Vote is the ideology-network rule. Each node x needs beta and phi
// coefficients; the issue polarity in [0,1] sets the rate
//
//	K = 1/(Scale·(|Issue−0.5|+0.01))
//	p = S·K·φx^(k−sum) + (1−S)·K·βx^sum,  clamped to [0,1]
type Vote struct {
	Issue float64
	Scale float64
}

// Name implements Rule.
func (Vote) Name() string { return "vote" }

// Rate returns K.
func (r Vote) Rate() float64 {
	return 1 / (r.Scale * (math.Abs(r.Issue-0.5) + 0.01))
}

// Bind implements Rule. It fails with core.ErrMissingAttribute when the
// network lacks per-node coefficients.
func (r Vote) Bind(net core.Network, prev state.Snapshot) (ProbFunc, error) {
	if r.Scale <= 0 || math.IsNaN(r.Scale) || math.IsNaN(r.Issue) || math.IsInf(r.Issue, 0) {
		return nil, fmt.Errorf("Vote: issue=%v scale=%v: %w", r.Issue, r.Scale, ErrInvalidParams)
	}
	an, ok := net.(core.Attributed)
	if !ok {
		return nil, fmt.Errorf("Vote: %T has no attributes: %w", net, core.ErrMissingAttribute)
	}

	type coef struct{ beta, phi float64 }
	coefs := make(map[string]coef, net.Len())
	for _, id := range net.NodeIDs() {
		a, err := an.Attrs(id)
		if err != nil {
			return nil, fmt.Errorf("Vote: %w", err)
		}
		if !a.Has(core.FeatureBeta | core.FeaturePhi) {
			return nil, fmt.Errorf("Vote: node %q: %w", id, core.ErrMissingAttribute)
		}
		coefs[id] = coef{a.Beta, a.Phi}
	}
	rate := r.Rate()

	return func(id string, cur state.State, nbrs []string) (float64, error) {
		s := cur.Float()
		c := coefs[id]
		sum := prev.CountIn(nbrs, state.Filled)
		p := s*rate*math.Pow(c.phi, float64(len(nbrs)-sum)) + (1-s)*rate*math.Pow(c.beta, float64(sum))

		return min(max(p, 0), 1), nil
	}, nil
}
