package cli

import (
	"fmt"

	"github.com/sadopc/habitr/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(o *rootOptions) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export habits and completions to CSV or JSON",
		Long: `Write every habit with its completions and streak figures to a file.
Without --out the file goes to export_dir as habitr-export-YYYY-MM-DD.<format>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			e, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			path := out
			if path == "" {
				path = export.DefaultPath(e.cfg.ExportDir, f, o.now())
			}

			reports, err := e.analyzer.Reports(nil)
			if err != nil {
				return err
			}
			if err := export.Write(e.store, reports, f, path); err != nil {
				return fmt.Errorf("export %s: %w", f, err)
			}
			e.log.Info("export", zap.String("format", string(f)), zap.String("path", path), zap.Int("habits", len(reports)))

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d habits to %s\n", len(reports), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file path")
	return cmd
}
