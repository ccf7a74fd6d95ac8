package cli

import (
	"fmt"

	"github.com/sadopc/habitr/internal/output"
	"github.com/sadopc/habitr/internal/streak"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "check HABIT",
		Short: "Check off a habit",
		Long: `Record a completion for a habit, identified by ID or by name
(case-insensitive). A habit can be checked off once per calendar day.`,
		Example: `  habitr check 1
  habitr check "drink water" --at 2025-10-14T21:30:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when := o.now()
			if at != "" {
				t, err := streak.ParseTimestamp(at)
				if err != nil {
					return err
				}
				when = t
			}

			e, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			h, err := e.store.LookupHabit(args[0])
			if err != nil {
				return err
			}
			c, err := e.store.CheckOff(h.ID, when)
			if err != nil {
				return err
			}
			e.log.Info("check", zap.Int64("habit_id", h.ID), zap.String("completed_at", c.CompletedAt))

			cur, err := e.analyzer.CurrentStreak(*h)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s checked off at %s, current streak %s\n",
				output.Mark(true), h.Name, c.CompletedAt, output.Count(cur))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Completion time (default now), e.g. 2025-10-14T21:30:00")
	return cmd
}
