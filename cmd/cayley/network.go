package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cayley/builder"
	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/internal/config"
	"github.com/katalvlaran/cayley/montecarlo"
)

// buildNetwork constructs the configured topology. Lattices and the generic
// index graphs are wrapped in a BFS layered view so per-generation density
// stays available.
func buildNetwork(t config.TopologyConfig) (core.Network, error) {
	var cons builder.Constructor
	root := builder.RootID
	switch t.Kind {
	case config.KindTree:
		tree, err := builder.CayleyTree(t.Generations, t.Links)
		if err != nil {
			return nil, err
		}
		return tree, nil
	case config.KindIdeology:
		return buildIdeology(t)
	case config.KindLattice:
		cons, root = builder.Grid(t.Rows, t.Cols), builder.GridID(0, 0)
	case config.KindPath:
		cons = builder.Path(t.N)
	case config.KindCycle:
		cons = builder.Cycle(t.N)
	case config.KindStar:
		cons = builder.Star(t.N)
	case config.KindComplete:
		cons = builder.Complete(t.N)
	default:
		return nil, fmt.Errorf("topology %q: %w", t.Kind, config.ErrInvalidConfig)
	}

	g, err := builder.BuildGraph(nil, nil, cons)
	if err != nil {
		return nil, err
	}

	layered, err := builder.Layered(g, root)
	if err != nil {
		return nil, err
	}

	return layered, nil
}

func buildIdeology(t config.TopologyConfig) (core.Network, error) {
	policy, err := builder.ParsePolicy(t.Policy)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(t.Roster)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	members, err := builder.LoadRoster(f)
	if err != nil {
		return nil, err
	}
	var opts []builder.BuilderOption
	if t.Radius != nil {
		opts = append(opts, builder.WithRadius(*t.Radius))
	}
	if t.Scale != nil {
		opts = append(opts, builder.WithScale(*t.Scale))
	}

	net, err := builder.Ideology(members, policy, opts...)
	if err != nil {
		return nil, err
	}

	return net, nil
}

// ruleFor returns the per-step rule factory of the configured variant.
func ruleFor(cfg *config.RunConfig) func(t int) montecarlo.Rule {
	p := cfg.RuleParams()
	switch cfg.Variant {
	case config.VariantTL:
		return func(t int) montecarlo.Rule { return montecarlo.TL{Params: p, T: t} }
	case config.VariantEI:
		return func(int) montecarlo.Rule { return montecarlo.EI{Params: p} }
	case config.VariantVote:
		vote := montecarlo.Vote{Issue: cfg.Issue, Scale: montecarlo.DefaultVoteScale}
		return func(int) montecarlo.Rule { return vote }
	default:
		return func(int) montecarlo.Rule { return montecarlo.NN{Params: p} }
	}
}
