package density

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/state"
)

// Row aggregates one snapshot.
type Row struct {
	// Step is the time index of the snapshot.
	Step int `yaml:"step"`
	// Filled[g] is the filled count of generation g; nil for
	// non-generational networks.
	Filled []int `yaml:"filled,flow,omitempty"`
	Ones   int   `yaml:"ones"`
	Zeros  int   `yaml:"zeros"`
}

// Table is the per-step occupancy series consumed by export and plotting
// collaborators.
type Table struct {
	// Sizes[g] is the node count of generation g; nil for non-generational
	// networks.
	Sizes []int `yaml:"sizes,flow,omitempty"`
	Rows  []Row `yaml:"rows"`
}

// TableOption customizes Tabulate.
type TableOption func(*tableConfig)

type tableConfig struct {
	offset int
}

// WithOffset shifts row step indices by n, for histories whose oldest
// snapshots were dropped. Panics if n < 0.
func WithOffset(n int) TableOption {
	if n < 0 {
		panic("density: WithOffset(n<0)")
	}
	return func(c *tableConfig) { c.offset = n }
}

// Tabulate aggregates every snapshot of history. Generation columns are
// filled only when net is core.Generational.
// Complexity: O(len(history) · V).
func Tabulate(net core.Network, history state.History, opts ...TableOption) (*Table, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("Tabulate: %w", ErrNoHistory)
	}
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var gens [][]string
	if gn, ok := net.(core.Generational); ok {
		gens = make([][]string, gn.Generations()+1)
		for g := range gens {
			gens[g] = gn.NodesInGeneration(g)
		}
	}

	t := &Table{Rows: make([]Row, len(history))}
	if gens != nil {
		t.Sizes = make([]int, len(gens))
		for g, ids := range gens {
			t.Sizes[g] = len(ids)
		}
	}
	for i, snap := range history {
		row := Row{Step: cfg.offset + i, Ones: Ones(snap), Zeros: Zeros(snap)}
		if gens != nil {
			row.Filled = make([]int, len(gens))
			for g, ids := range gens {
				row.Filled[g] = snap.CountIn(ids, state.Filled)
			}
		}
		t.Rows[i] = row
	}

	return t, nil
}

// Fraction returns the filled fraction of generation gen at row i, or 0
// when the row, the generation or the generation size is out of range.
func (t *Table) Fraction(i, gen int) float64 {
	if i < 0 || i >= len(t.Rows) || gen < 0 || gen >= len(t.Sizes) || t.Sizes[gen] == 0 {
		return 0
	}

	return float64(t.Rows[i].Filled[gen]) / float64(t.Sizes[gen])
}
