package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cayley/density"
	"github.com/katalvlaran/cayley/internal/config"
	"github.com/katalvlaran/cayley/montecarlo"
)

// runSummary is the YAML report of a finished run.
type runSummary struct {
	RunID    string            `yaml:"run_id"`
	Topology string            `yaml:"topology"`
	Nodes    int               `yaml:"nodes"`
	Variant  string            `yaml:"variant"`
	Initial  string            `yaml:"initial"`
	Seed     uint64            `yaml:"seed"`
	Steps    int               `yaml:"steps"`
	Params   montecarlo.Params `yaml:"params,flow"`
	Ones     int               `yaml:"ones"`
	Zeros    int               `yaml:"zeros"`
	Table    *density.Table    `yaml:"table,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print its summary",
		Long: `Build the configured network, apply the initial policy and advance the
engine the configured number of steps (default: one per node).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger, err := newLogger(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			sum, err := runExperiment(cmd, cfg, logger)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(sum)
			if err != nil {
				return fmt.Errorf("encoding summary: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().Int("steps", 0, "Number of steps (0: one per node)")
	cmd.Flags().Uint64("seed", 0, "Random seed")
	cmd.Flags().Int("workers", 0, "Goroutines per step")
	cmd.Flags().String("variant", "", "Rule variant: nn, tl, ei, vote")
	cmd.Flags().String("initial", "", "Initial policy: empty, random, center")
	cmd.Flags().Bool("table", false, "Include the per-step density table")

	return cmd
}

// loadConfig reads --config (or the defaults) and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.RunConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Steps, _ = flags.GetInt("steps")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("variant") {
		cfg.Variant, _ = flags.GetString("variant")
	}
	if flags.Changed("initial") {
		cfg.Initial, _ = flags.GetString("initial")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runExperiment(cmd *cobra.Command, cfg *config.RunConfig, logger *zap.Logger) (*runSummary, error) {
	net, err := buildNetwork(cfg.Topology)
	if err != nil {
		return nil, err
	}
	eng, err := montecarlo.New(net,
		montecarlo.WithParams(cfg.RuleParams()),
		montecarlo.WithSeed(cfg.Seed),
		montecarlo.WithWorkers(cfg.Workers),
		montecarlo.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	policy, err := cfg.InitPolicy()
	if err != nil {
		return nil, err
	}
	if err = eng.Init(policy); err != nil {
		return nil, err
	}

	steps := cfg.Steps
	if steps == 0 {
		steps = net.NodeNumber()
	}
	if _, err = eng.Run(cmd.Context(), steps, ruleFor(cfg)); err != nil {
		return nil, err
	}

	zeros, err := eng.Zeros()
	if err != nil {
		return nil, err
	}
	ones, err := eng.Ones(eng.Time())
	if err != nil {
		return nil, err
	}
	sum := &runSummary{
		RunID:    eng.RunID(),
		Topology: cfg.Topology.Kind,
		Nodes:    net.NodeNumber(),
		Variant:  cfg.Variant,
		Initial:  policy.String(),
		Seed:     cfg.Seed,
		Steps:    steps,
		Params:   eng.Params(),
		Ones:     ones,
		Zeros:    zeros,
	}
	if withTable, _ := cmd.Flags().GetBool("table"); withTable {
		if sum.Table, err = eng.Table(); err != nil {
			return nil, err
		}
	}
	logger.Info("run finished",
		zap.String("run", sum.RunID),
		zap.Int("steps", steps),
		zap.Int("ones", ones),
	)

	return sum, nil
}
