// Command bstdemo drives the trees in Trees: it replays a walkthrough of every
// operation, answers queries over a key list given on the command line, and
// measures how insertion order shapes the tree.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	log      zerolog.Logger
	logLevel string
	arena    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "bstdemo",
		Short:         "Exercise an unbalanced binary search tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(lvl).With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.arena, "arena", false, "use the index arena tree instead of the pointer tree")
	root.AddCommand(a.demoCmd(), a.queryCmd(), a.benchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
