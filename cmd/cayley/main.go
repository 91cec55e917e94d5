// Command cayley runs state-diffusion experiments on Cayley trees,
// lattices and ideology networks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cayley",
		Short: "Monte Carlo state diffusion over graph populations",
		Long: `cayley simulates binary state diffusion on Cayley trees, square
lattices and ideology networks, and reports the occupancy series.

Runs are described by a YAML file (--config); flags override file values.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Run configuration YAML file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every step (debug level)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newTreeCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cayley version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
