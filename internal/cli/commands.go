package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/sentimiento/internal/report"
	"github.com/spacesedan/sentimiento/internal/sentiment"
	"github.com/spf13/cobra"
)

func (a *App) textCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text <text...>",
		Short: "Analyze a single text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.engine.AnalyzeText(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to analyze text: %w", err)
			}
			a.history.Add(record)
			return report.WriteResult(cmd.OutOrStdout(), record)
		},
	}
}

func (a *App) fileCommand() *cobra.Command {
	var details, full bool

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Analyze a file with one text per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			slog.Info("[CLI] Analyzing file", slog.String("path", args[0]))
			records := sentiment.CollectRecords(a.engine.AnalyzeReader(f))
			a.history.Add(records...)

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, err := fmt.Fprintln(out, "No valid texts found in the file")
				return err
			}
			slog.Info("[CLI] File analysis completed", slog.Int("records", len(records)))

			if full {
				return report.WriteSession(out, records, a.clock.Now())
			}
			if err := report.WriteSummary(out, records); err != nil {
				return err
			}
			if !details {
				return nil
			}
			for i, r := range records {
				fmt.Fprintf(out, "\n--- Result %d/%d ---\n", i+1, len(records))
				if err := report.WriteResult(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "print every result after the summary")
	cmd.Flags().BoolVar(&full, "report", false, "print a full session report")
	return cmd
}
