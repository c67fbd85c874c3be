package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sfas/pkg/fas"
	pkgio "github.com/matzehuels/sfas/pkg/io"
)

// orderOpts holds the command-line flags for the order command.
type orderOpts struct {
	output string // output file path (stdout if empty)
	seed   uint64 // random seed for tie-breaking
}

// newOrderCmd creates the order command. It reads a weighted directed graph
// from a JSON or TOML edge list, computes a linear order minimizing backward
// edge weight, and writes the result as JSON.
func newOrderCmd() *cobra.Command {
	var opts orderOpts

	cmd := &cobra.Command{
		Use:   "order [file]",
		Short: "Compute a linear order and feedback edge set for a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for tie-breaking")

	return cmd
}

// runOrder loads the graph from input, orders it, and writes the result.
func runOrder(ctx context.Context, input string, opts *orderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Ordering %s", input)

	g, err := pkgio.ImportFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	prog := newProgress(logger)
	res, err := fas.Order(g, fas.Options{Seed: opts.seed, Logger: logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ordered %d nodes: feedback weight %d across %d edges",
		len(res.Order), res.FeedbackWeight, len(res.FeedbackEdges)))
	if res.SelfLoops > 0 {
		logger.Warnf("Graph has %d self-loops; they always stay backward and are excluded from the feedback set", res.SelfLoops)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteResult(res, out); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer so it satisfies io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
