package cli

import (
	"fmt"

	"github.com/sadopc/habitr/internal/streak"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAddCmd(o *rootOptions) *cobra.Command {
	var (
		description string
		priority    int
		periodicity string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a habit",
		Long: `Create a new habit. Priority runs from 1 (highest) to 5 (lowest).
Priority and periodicity fall back to the defaults stored in settings.`,
		Example: `  habitr add "Drink water"
  habitr add Review --periodicity weekly --priority 2 -d "Plan next week"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			p := e.store.DefaultPeriodicity()
			if cmd.Flags().Changed("periodicity") {
				if p, err = streak.ParsePeriodicity(periodicity); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("priority") {
				priority = e.store.DefaultPriority()
			}

			h, err := e.store.CreateHabit(args[0], description, priority, p)
			if err != nil {
				return err
			}
			e.log.Info("add", zap.Int64("habit_id", h.ID))

			fmt.Fprintf(cmd.OutOrStdout(), "Created habit #%d %s (%s, priority %d)\n",
				h.ID, h.Name, h.Periodicity, h.Priority)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What the habit involves")
	cmd.Flags().IntVarP(&priority, "priority", "p", 3, "Priority from 1 (highest) to 5 (lowest)")
	cmd.Flags().StringVar(&periodicity, "periodicity", "daily", "daily, weekly or monthly")
	return cmd
}
