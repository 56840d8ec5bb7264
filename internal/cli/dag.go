package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hgubler/BNForest/pkg/graph"
)

// NewDAGCommand creates the dag command.
func NewDAGCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dag <dag.yaml>",
		Short: "Print the edges and topological order of a DAG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rootOpts.Logger(cmd.ErrOrStderr())
			dag, err := graph.LoadSpec(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded DAG", "path", args[0], "nodes", dag.Len())
			order, err := dag.TopologicalSort()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			edges := dag.Edges()
			fmt.Fprintf(w, "nodes: %d\n", dag.Len())
			fmt.Fprintf(w, "edges: %d\n", len(edges))
			for _, e := range edges {
				fmt.Fprintf(w, "  %s -> %s\n", e.From, e.To)
			}
			fmt.Fprintf(w, "order: %s\n", strings.Join(order, ", "))
			return nil
		},
	}
	return cmd
}
