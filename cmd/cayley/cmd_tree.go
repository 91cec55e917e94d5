package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cayley/builder"
)

type treeReport struct {
	Generations int        `yaml:"generations"`
	Links       int        `yaml:"links"`
	Nodes       int        `yaml:"nodes"`
	Edges       int        `yaml:"edges"`
	Layers      [][]string `yaml:"layers,flow,omitempty"`
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Describe a Cayley tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			gens, _ := cmd.Flags().GetInt("generations")
			links, _ := cmd.Flags().GetInt("links")
			layers, _ := cmd.Flags().GetBool("layers")

			tree, err := builder.CayleyTree(gens, links)
			if err != nil {
				return err
			}
			rep := treeReport{
				Generations: tree.Generations(),
				Links:       tree.Branching(),
				Nodes:       tree.NodeNumber(),
				Edges:       tree.LinkCount(),
			}
			if layers {
				for g := 0; g <= tree.Generations(); g++ {
					rep.Layers = append(rep.Layers, tree.NodesInGeneration(g))
				}
			}

			out, err := yaml.Marshal(rep)
			if err != nil {
				return fmt.Errorf("encoding tree: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().Int("generations", 3, "Tree depth")
	cmd.Flags().Int("links", 3, "Branching factor (root degree)")
	cmd.Flags().Bool("layers", false, "List node IDs per generation")

	return cmd
}
