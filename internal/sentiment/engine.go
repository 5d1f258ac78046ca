package sentiment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"
)

// Engine runs the analysis pipeline: lexical score, keyword adjustment,
// classification and record assembly. It holds no per-call state and is safe
// for concurrent use when its scorer is.
type Engine struct {
	scorer     LexicalScorer
	adjuster   *KeywordAdjuster
	thresholds Thresholds
	clock      clockwork.Clock
}

type EngineOption func(*Engine)

// WithThresholds replaces DefaultThresholds for every classification the
// engine makes.
func WithThresholds(t Thresholds) EngineOption {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// LineResult is the outcome of one non-blank input line: either Record or Err
// is set. Line is 1-based and counts blank lines too.
type LineResult struct {
	Line   int
	Record AnalysisRecord
	Err    error
}

func NewEngine(scorer LexicalScorer, lexicon *Lexicon, clock clockwork.Clock, opts ...EngineOption) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	e := &Engine{
		scorer:     scorer,
		adjuster:   NewKeywordAdjuster(lexicon),
		thresholds: DefaultThresholds(),
		clock:      clock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// AnalyzeText scores a single text. Blank text is rejected with
// ErrInvalidInput; scorer failures come back wrapping ErrLexicalScoreUnavailable.
func (e *Engine) AnalyzeText(text string) (AnalysisRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AnalysisRecord{}, ErrInvalidInput
	}

	score, err := e.scorer.Score(text)
	if err != nil {
		if errors.Is(err, ErrLexicalScoreUnavailable) {
			return AnalysisRecord{}, err
		}
		return AnalysisRecord{}, fmt.Errorf("%w: %w", ErrLexicalScoreUnavailable, err)
	}
	if !inRange(score.Polarity, -1, 1) || !inRange(score.Subjectivity, 0, 1) {
		return AnalysisRecord{}, fmt.Errorf("%w: scorer returned out of range values (polarity=%v subjectivity=%v)",
			ErrLexicalScoreUnavailable, score.Polarity, score.Subjectivity)
	}

	adjusted := e.adjuster.Adjust(score.Polarity, text)
	return NewRecord(text, score, adjusted, e.thresholds.Classify(adjusted), e.thresholds, e.clock.Now())
}

// AnalyzeLines yields one LineResult per non-blank line. A failing line does
// not stop the sequence.
func (e *Engine) AnalyzeLines(lines iter.Seq[string]) iter.Seq[LineResult] {
	return func(yield func(LineResult) bool) {
		n := 0
		for line := range lines {
			n++
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(e.analyzeLine(n, line)) {
				return
			}
		}
	}
}

// AnalyzeReader reads UTF-8 text one unit per line, with no limit on line
// length, and analyzes it like AnalyzeLines. A read error is yielded once and
// ends the sequence.
func (e *Engine) AnalyzeReader(r io.Reader) iter.Seq[LineResult] {
	return func(yield func(LineResult) bool) {
		br := bufio.NewReader(r)
		n := 0
		for {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield(LineResult{Line: n + 1, Err: fmt.Errorf("[Engine] failed to read line: %w", err)})
				return
			}
			if line == "" && err != nil {
				return
			}

			n++
			if n == 1 {
				line = strings.TrimPrefix(line, "\uFEFF")
			}
			if strings.TrimSpace(line) != "" {
				if !yield(e.analyzeLine(n, line)) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// AnalyzeFile returns the records of every line that analyzed cleanly, in
// input order. Failed lines are logged and skipped.
func (e *Engine) AnalyzeFile(lines []string) []AnalysisRecord {
	return CollectRecords(e.AnalyzeLines(slices.Values(lines)))
}

// CollectRecords drains results, keeping records and logging failures.
func CollectRecords(results iter.Seq[LineResult]) []AnalysisRecord {
	var records []AnalysisRecord
	for res := range results {
		if res.Err != nil {
			slog.Warn("[Engine] Skipping line",
				slog.Int("line", res.Line),
				slog.String("error", res.Err.Error()))
			continue
		}
		records = append(records, res.Record)
	}
	return records
}

func (e *Engine) analyzeLine(n int, line string) LineResult {
	record, err := e.AnalyzeText(line)
	if err != nil {
		return LineResult{Line: n, Err: err}
	}
	record.Line = n
	return LineResult{Line: n, Record: record}
}
