package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/output"
	"github.com/sadopc/habitr/internal/streak"
	"github.com/spf13/cobra"
)

// listItem is the JSON-serializable output for one habit.
type listItem struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Priority       int    `json:"priority"`
	Periodicity    string `json:"periodicity"`
	CreatedAt      string `json:"created_at"`
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	Completions    int    `json:"completions"`
	LastCompletion string `json:"last_completion,omitempty"`
	DoneThisPeriod bool   `json:"done_this_period"`
}

func newListCmd(o *rootOptions) *cobra.Command {
	var (
		periodicity string
		asJSON      bool
		namesOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with their streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *streak.Periodicity
			if periodicity != "" {
				p, err := streak.ParsePeriodicity(periodicity)
				if err != nil {
					return err
				}
				filter = &p
			}

			e, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			w := cmd.OutOrStdout()
			switch {
			case namesOnly:
				return printNames(w, e.analyzer, filter)
			case asJSON:
				return printHabitJSON(w, e, filter)
			}
			return printHabitTable(w, e, filter)
		},
	}

	cmd.Flags().StringVar(&periodicity, "periodicity", "", "Only habits with this periodicity")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print habit names only, one per line")
	cmd.MarkFlagsMutuallyExclusive("json", "names")
	return cmd
}

func printNames(w io.Writer, an *analytics.Analyzer, filter *streak.Periodicity) error {
	var names []string
	var err error
	if filter != nil {
		names, err = an.HabitNamesByPeriodicity(*filter)
	} else {
		names, err = an.AllHabitNames()
	}
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func printHabitTable(w io.Writer, e *env, filter *streak.Periodicity) error {
	reports, err := e.analyzer.Reports(filter)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render("No habits yet. Add one with: habitr add NAME"))
		return nil
	}

	tbl := output.NewTable("", "ID", "Habit", "Every", "Priority", "Current", "Longest", "Last")
	for _, r := range reports {
		last := "never"
		if r.LastCompletion != nil {
			last = streak.FormatTimestamp(*r.LastCompletion)
		}
		tbl.AddRow(
			output.Mark(r.DoneThisPeriod),
			strconv.FormatInt(r.Habit.ID, 10),
			r.Habit.Name,
			r.Habit.Periodicity.String(),
			strconv.Itoa(r.Habit.Priority),
			output.Count(r.Current),
			strconv.Itoa(r.Longest),
			last,
		)
	}
	tbl.Fprint(w)
	return nil
}

func printHabitJSON(w io.Writer, e *env, filter *streak.Periodicity) error {
	reports, err := e.analyzer.Reports(filter)
	if err != nil {
		return err
	}

	items := make([]listItem, 0, len(reports))
	for _, r := range reports {
		item := listItem{
			ID:             r.Habit.ID,
			Name:           r.Habit.Name,
			Description:    r.Habit.Description,
			Priority:       r.Habit.Priority,
			Periodicity:    r.Habit.Periodicity.String(),
			CreatedAt:      streak.FormatTimestamp(r.Habit.CreatedAt),
			CurrentStreak:  r.Current,
			LongestStreak:  r.Longest,
			Completions:    r.Completions,
			DoneThisPeriod: r.DoneThisPeriod,
		}
		if r.LastCompletion != nil {
			item.LastCompletion = streak.FormatTimestamp(*r.LastCompletion)
		}
		items = append(items, item)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
