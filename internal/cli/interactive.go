package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentimiento/internal/report"
	"github.com/spf13/cobra"
)

const (
	selfCheckText = "Texto de prueba"
	historyLimit  = 10
)

func (a *App) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Analyze texts typed line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.RunSession(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// RunSession reads one text per line from in until EOF or ":quit". Lines
// starting with ":" are session commands; every analyzed text is appended to
// the history.
func (a *App) RunSession(in io.Reader, out io.Writer) error {
	if _, err := a.engine.AnalyzeText(selfCheckText); err != nil {
		return fmt.Errorf("analyzer self-check failed: %w", err)
	}
	slog.Info("[Session] Analyzer ready")

	fmt.Fprint(out, report.Header("SENTIMENT DETECTOR"))
	fmt.Fprintln(out, "Type a text to analyze, or :history, :summary, :quit")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if quit := a.handleLine(out, strings.TrimSpace(line)); quit {
			break
		}
		if err != nil {
			break
		}
	}

	a.history.LogSize()
	fmt.Fprintln(out, "Bye!")
	return nil
}

func (a *App) handleLine(out io.Writer, line string) bool {
	switch line {
	case "":
		return false
	case ":quit", ":q", ":exit":
		return true
	case ":summary":
		if err := report.WriteSummary(out, a.history.Records()); err != nil {
			slog.Error("[Session] Failed to render summary", slog.String("error", err.Error()))
		}
		return false
	case ":history":
		a.printHistory(out)
		return false
	}

	record, err := a.engine.AnalyzeText(line)
	if err != nil {
		slog.Warn("[Session] Failed to analyze text", slog.String("error", err.Error()))
		fmt.Fprintf(out, "Could not analyze text: %v\n", err)
		return false
	}
	a.history.Add(record)
	if err := report.WriteResult(out, record); err != nil {
		slog.Error("[Session] Failed to render result", slog.String("error", err.Error()))
	}
	return false
}

func (a *App) printHistory(out io.Writer) {
	records := a.history.Last(historyLimit)
	if len(records) == 0 {
		fmt.Fprintln(out, "No analyses yet")
		return
	}
	fmt.Fprintf(out, "Last %d of %d analyses:\n", len(records), a.history.Len())
	for _, r := range records {
		fmt.Fprintf(out, "%s  %-8s %+.3f  %s\n",
			r.Timestamp.Format("15:04:05"), r.Label, r.Polarity, truncate(r.Text, 48))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
