package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spacesedan/sentimiento/internal/sentiment"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	ruleWidth       = 50
)

// WriteResult renders a single analysis.
func WriteResult(w io.Writer, r sentiment.AnalysisRecord) error {
	var b strings.Builder
	writeRecord(&b, r)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary renders batch statistics for records, or a notice when there is
// nothing to summarize.
func WriteSummary(w io.Writer, records []sentiment.AnalysisRecord) error {
	var b strings.Builder
	if err := writeSummary(&b, records); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSession renders a full session report: header, every record in order
// and the summary.
func WriteSession(w io.Writer, records []sentiment.AnalysisRecord, now time.Time) error {
	var b strings.Builder
	fmt.Fprintln(&b, "=== SENTIMENT ANALYSIS ===")
	fmt.Fprintf(&b, "Date: %s\n", now.Format(timestampLayout))
	fmt.Fprintf(&b, "Texts analyzed: %d\n\n", len(records))

	for i, r := range records {
		fmt.Fprintf(&b, "--- Analysis #%d ---\n", i+1)
		writeRecord(&b, r)
		b.WriteString("\n")
	}

	if err := writeSummary(&b, records); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Header renders a centered banner.
func Header(title string) string {
	rule := strings.Repeat("=", ruleWidth)
	pad := max((ruleWidth-len([]rune(title)))/2, 0)
	return rule + "\n" + strings.Repeat(" ", pad) + title + "\n" + rule + "\n"
}

func writeRecord(b *strings.Builder, r sentiment.AnalysisRecord) {
	fmt.Fprintf(b, "Text: %q\n", r.Text)
	fmt.Fprintf(b, "Sentiment: %s\n", r.Label)
	fmt.Fprintf(b, "Polarity: %.3f (%s)\n", r.Polarity, r.PolarityDescription())
	fmt.Fprintf(b, "Subjectivity: %.3f (%s)\n", r.Subjectivity, r.SubjectivityDescription())
	if r.Line > 0 {
		fmt.Fprintf(b, "Line: %d\n", r.Line)
	}
	fmt.Fprintf(b, "Timestamp: %s\n", r.Timestamp.Format(timestampLayout))
}

func writeSummary(b *strings.Builder, records []sentiment.AnalysisRecord) error {
	s, err := sentiment.Summarize(records)
	if errors.Is(err, sentiment.ErrEmptyBatch) {
		b.WriteString("No data to summarize\n")
		return nil
	}
	if err != nil {
		return err
	}

	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(b, "Texts analyzed: %d\n", s.Total)
	fmt.Fprintf(b, "Positive: %d (%.1f%%)\n", s.Positive.Count, s.Positive.Percentage)
	fmt.Fprintf(b, "Negative: %d (%.1f%%)\n", s.Negative.Count, s.Negative.Percentage)
	fmt.Fprintf(b, "Neutral: %d (%.1f%%)\n", s.Neutral.Count, s.Neutral.Percentage)
	fmt.Fprintf(b, "Average polarity: %.3f\n", s.AveragePolarity)
	fmt.Fprintf(b, "Average subjectivity: %.3f\n", s.AverageSubjectivity)
	return nil
}
