// Package config loads and validates cayley run configurations.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cayley/builder"
	"github.com/katalvlaran/cayley/montecarlo"
)

// ErrInvalidConfig indicates a configuration that cannot describe a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Topology kinds.
const (
	KindTree     = "tree"
	KindLattice  = "lattice"
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindComplete = "complete"
	KindIdeology = "ideology"
)

// Rule variants.
const (
	VariantNN   = "nn"
	VariantTL   = "tl"
	VariantEI   = "ei"
	VariantVote = "vote"
)

// RunConfig describes one simulation run.
type RunConfig struct {
	Topology TopologyConfig `yaml:"topology"`

	// Variant is the transition rule: nn, tl, ei or vote.
	Variant string `yaml:"variant"`

	// Params overrides individual rule parameters; unset fields keep the
	// variant defaults.
	Params ParamsConfig `yaml:"params,omitempty"`

	// Issue is the polarity in [0,1] of the vote variant.
	Issue float64 `yaml:"issue"`

	// Initial is the initial-state policy: empty, random or center. Empty
	// means center, or empty on ideology networks, which have no node "0".
	Initial string `yaml:"initial,omitempty"`

	// Steps is the number of steps; 0 means one per node.
	Steps int `yaml:"steps"`

	Seed     uint64 `yaml:"seed"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

// TopologyConfig selects and sizes the network.
type TopologyConfig struct {
	Kind string `yaml:"kind"`

	// tree
	Generations int `yaml:"generations,omitempty"`
	Links       int `yaml:"links,omitempty"`

	// lattice
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`

	// path, cycle, star, complete
	N int `yaml:"n,omitempty"`

	// ideology
	Roster string `yaml:"roster,omitempty"`
	Policy string `yaml:"policy,omitempty"`
	// Radius and Scale keep the builder defaults when unset; an explicit
	// radius of 0 is honored.
	Radius *float64 `yaml:"radius,omitempty"`
	Scale  *float64 `yaml:"scale,omitempty"`
}

// ParamsConfig holds optional rule parameter overrides.
type ParamsConfig struct {
	Alpha *float64 `yaml:"alpha,omitempty"`
	Beta  *float64 `yaml:"beta,omitempty"`
	Gamma *float64 `yaml:"gamma,omitempty"`
	Mu    *float64 `yaml:"mu,omitempty"`
	R1    *float64 `yaml:"r1,omitempty"`
	R2    *float64 `yaml:"r2,omitempty"`
}

// Default returns the configuration of the reference experiment: a
// 5-generation ternary tree seeded at the root, nearest-neighbor rule.
func Default() *RunConfig {
	return &RunConfig{
		Topology: TopologyConfig{
			Kind:        KindTree,
			Generations: 5,
			Links:       3,
		},
		Variant:  VariantNN,
		Issue:    0.5,
		Seed:     1,
		Workers:  1,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults, applies environment overrides
// (CAYLEY_SEED, CAYLEY_WORKERS, CAYLEY_LOG_LEVEL) and validates the result.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err = cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown fields are rejected; an
// empty document yields the defaults.
func Parse(data []byte) (*RunConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %v: %w", err, ErrInvalidConfig)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (c *RunConfig) applyEnvOverrides() error {
	if v := os.Getenv("CAYLEY_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("CAYLEY_SEED=%q: %v: %w", v, err, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if v := os.Getenv("CAYLEY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CAYLEY_WORKERS=%q: %v: %w", v, err, ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v := os.Getenv("CAYLEY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	return nil
}

// InitPolicy resolves Initial, falling back to the topology default when
// it is unset.
func (c *RunConfig) InitPolicy() (montecarlo.InitPolicy, error) {
	if strings.TrimSpace(c.Initial) == "" {
		if c.Topology.Kind == KindIdeology {
			return montecarlo.InitEmpty, nil
		}
		return montecarlo.InitCenter, nil
	}

	return montecarlo.ParseInitPolicy(c.Initial)
}

// RuleParams returns the variant defaults with the configured overrides.
func (c *RunConfig) RuleParams() montecarlo.Params {
	p := montecarlo.Defaults()
	if c.Variant == VariantTL || c.Variant == VariantEI {
		p = montecarlo.TLDefaults()
	}
	for _, o := range []struct {
		src *float64
		dst *float64
	}{
		{c.Params.Alpha, &p.Alpha}, {c.Params.Beta, &p.Beta}, {c.Params.Gamma, &p.Gamma},
		{c.Params.Mu, &p.Mu}, {c.Params.R1, &p.R1}, {c.Params.R2, &p.R2},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}

	return p
}

// Validate checks that the configuration describes a runnable experiment.
func (c *RunConfig) Validate() error {
	if err := c.Topology.validate(); err != nil {
		return err
	}

	switch c.Variant {
	case VariantNN, VariantTL, VariantEI:
	case VariantVote:
		if c.Topology.Kind != KindIdeology {
			return fmt.Errorf("variant vote needs an ideology topology, got %q: %w", c.Topology.Kind, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("invalid variant %q (valid: nn, tl, ei, vote): %w", c.Variant, ErrInvalidConfig)
	}
	if err := c.RuleParams().Validate(); err != nil {
		return fmt.Errorf("params: %v: %w", err, ErrInvalidConfig)
	}
	if c.Issue < 0 || c.Issue > 1 || math.IsNaN(c.Issue) {
		return fmt.Errorf("issue must be between 0 and 1, got %v: %w", c.Issue, ErrInvalidConfig)
	}
	policy, err := c.InitPolicy()
	if err != nil {
		return fmt.Errorf("initial: %v: %w", err, ErrInvalidConfig)
	}
	if policy == montecarlo.InitCenter && c.Topology.Kind == KindIdeology {
		return fmt.Errorf("initial center needs a node %q, ideology networks use member names (use empty or random): %w",
			builder.RootID, ErrInvalidConfig)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d: %w", c.Steps, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error): %w", c.LogLevel, ErrInvalidConfig)
	}

	return nil
}

func (t TopologyConfig) validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("topology %s: %s: %w", t.Kind, fmt.Sprintf(format, args...), ErrInvalidConfig)
	}
	switch t.Kind {
	case KindTree:
		if builder.TreeSize(t.Generations, t.Links) < 0 {
			return bad("generations=%d links=%d", t.Generations, t.Links)
		}
	case KindLattice:
		if t.Rows < builder.MinGridDim || t.Cols < builder.MinGridDim {
			return bad("rows=%d cols=%d", t.Rows, t.Cols)
		}
	case KindPath, KindCycle, KindStar, KindComplete:
		if t.N < 1 {
			return bad("n=%d", t.N)
		}
	case KindIdeology:
		if t.Roster == "" {
			return bad("roster path is required")
		}
		if _, err := builder.ParsePolicy(t.Policy); err != nil {
			return bad("%v", err)
		}
		if t.Radius != nil && (*t.Radius < 0 || math.IsNaN(*t.Radius)) {
			return bad("radius=%v", *t.Radius)
		}
		if t.Scale != nil && (*t.Scale <= 0 || math.IsNaN(*t.Scale)) {
			return bad("scale=%v", *t.Scale)
		}
	default:
		return fmt.Errorf("invalid topology kind %q: %w", t.Kind, ErrInvalidConfig)
	}

	return nil
}
