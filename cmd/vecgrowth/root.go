package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanmanishd/vector"
)

type options struct {
	count   int
	width   int
	factor  float64
	policy  string
	all     bool
	verbose bool
}

var policies = map[string][]string{
	"push":    {"push"},
	"emplace": {"emplace"},
	"both":    {"push", "emplace"},
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "vecgrowth",
		Short:        "Trace buffer relocations of the vector growth policies",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return errors.Wrap(err, "creating logger")
				}
				defer func() { _ = log.Sync() }()
				vector.SetLogger(log)
				defer vector.SetLogger(nil)
			}
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 100, "number of elements to append")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 32, "counter width in bits (8, 16, 32 or 64)")
	cmd.Flags().Float64VarP(&opts.factor, "factor", "f", vector.DefaultGrowthFactor, "growth factor for push")
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "both", "push, emplace or both")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "list every append, not only those that relocate")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log relocations to stderr")

	return cmd
}

func run(w io.Writer, opts *options) error {
	if opts.count < 0 {
		return errors.Errorf("count must not be negative, got %d", opts.count)
	}
	names, ok := policies[opts.policy]
	if !ok {
		return errors.Errorf("unknown policy %q", opts.policy)
	}

	for _, name := range names {
		var (
			t   *trace
			err error
		)
		switch opts.width {
		case 8:
			t, err = runTrace[uint8](name, opts)
		case 16:
			t, err = runTrace[uint16](name, opts)
		case 32:
			t, err = runTrace[uint32](name, opts)
		case 64:
			t, err = runTrace[uint64](name, opts)
		default:
			return errors.Errorf("unsupported counter width %d", opts.width)
		}
		if t != nil {
			if rerr := t.render(w); rerr != nil {
				return errors.Wrap(rerr, "rendering table")
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
