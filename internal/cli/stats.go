package cli

import (
	"fmt"
	"strconv"

	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/output"
	"github.com/sadopc/habitr/internal/streak"
	"github.com/spf13/cobra"
)

func newStatsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize streaks across all habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			best, err := e.analyzer.MaxOverallStreak()
			if err != nil {
				return err
			}
			counts, err := e.store.CompletionCounts()
			if err != nil {
				return err
			}
			total := 0
			for _, n := range counts {
				total += n
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, output.StyleHeader.Render("Overview"))
			fmt.Fprintf(w, "%s %s\n", output.StyleLabel.Render("Longest streak"), output.Count(best))
			fmt.Fprintf(w, "%s %d\n", output.StyleLabel.Render("Completions"), total)
			for _, p := range streak.Periodicities() {
				names, err := e.analyzer.HabitNamesByPeriodicity(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %d\n", output.StyleLabel.Render(p.String()+" habits"), len(names))
			}

			reports, err := e.analyzer.Reports(nil)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				return nil
			}
			analytics.ByLongest(reports)

			fmt.Fprintln(w)
			tbl := output.NewTable("Habit", "Every", "Longest", "Current", "Completions")
			for _, r := range reports {
				tbl.AddRow(
					r.Habit.Name,
					r.Habit.Periodicity.String(),
					strconv.Itoa(r.Longest),
					output.Count(r.Current),
					strconv.Itoa(counts[r.Habit.ID]),
				)
			}
			tbl.Fprint(w)
			return nil
		},
	}
}
