package cli

import (
	"fmt"

	"github.com/sadopc/habitr/internal/output"
	"github.com/spf13/cobra"
)

func newStreakCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak HABIT",
		Short: "Show the longest and current streak of a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			h, err := e.store.LookupHabit(args[0])
			if err != nil {
				return err
			}
			longest, err := e.analyzer.LongestStreak(*h)
			if err != nil {
				return err
			}
			current, err := e.analyzer.CurrentStreak(*h)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, output.StyleHeader.Render(fmt.Sprintf("%s (%s)", h.Name, h.Periodicity)))
			fmt.Fprintf(w, "%s %s\n", output.StyleLabel.Render("Current streak"), output.Count(current))
			fmt.Fprintf(w, "%s %d\n", output.StyleLabel.Render("Longest streak"), longest)
			return nil
		},
	}
}
