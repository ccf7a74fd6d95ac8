package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/store"
)

// ToCSV writes one row per completion, grouped by habit in report order.
func ToCSV(reports []analytics.Report, completions map[int64][]store.Completion, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Habit ID", "Habit", "Periodicity", "Priority", "Completed At"}); err != nil {
		return err
	}

	for _, r := range reports {
		h := r.Habit
		for _, c := range completions[h.ID] {
			row := []string{
				strconv.FormatInt(h.ID, 10),
				h.Name,
				string(h.Periodicity),
				strconv.Itoa(h.Priority),
				c.CompletedAt,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
