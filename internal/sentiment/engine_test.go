package sentiment

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScorer returns fixed scores per text, zero for unknown texts, and an
// error for texts listed in fail.
type stubScorer struct {
	scores map[string]LexicalScore
	fail   map[string]bool
	calls  int
}

func (s *stubScorer) Score(text string) (LexicalScore, error) {
	s.calls++
	if s.fail[text] {
		return LexicalScore{}, errors.New("model not loaded")
	}
	return s.scores[text], nil
}

func newTestEngine(scorer LexicalScorer) (*Engine, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 31, 10, 30, 0, 0, time.UTC))
	return NewEngine(scorer, DefaultLexicon(), clock), clock
}

func TestEngine_AnalyzeText_Scenarios(t *testing.T) {
	scorer := &stubScorer{scores: map[string]LexicalScore{
		"Me encanta este producto, es fantástico": {Polarity: 0.05, Subjectivity: 0.6},
		"Es terrible y horrible":                  {Polarity: -0.1, Subjectivity: 0.9},
		"El cielo es azul":                        {Polarity: 0.0, Subjectivity: 0.0},
	}}
	engine, clock := newTestEngine(scorer)

	tests := []struct {
		text        string
		wantLabel   Label
		minPolarity float64
		maxPolarity float64
	}{
		{"Me encanta este producto, es fantástico", LabelPositive, 0.55, 0.7},
		{"Es terrible y horrible", LabelNegative, -1, -0.05},
		{"El cielo es azul", LabelNeutral, -0.05, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, err := engine.AnalyzeText(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLabel, r.Label)
			assert.GreaterOrEqual(t, r.Polarity, tt.minPolarity)
			assert.LessOrEqual(t, r.Polarity, tt.maxPolarity)
			assert.Equal(t, scorer.scores[tt.text].Subjectivity, r.Subjectivity)
			assert.Equal(t, clock.Now(), r.Timestamp)
			assert.Equal(t, Classify(r.Polarity), r.Label)
		})
	}
}

func TestEngine_AnalyzeText_TrimsInput(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{})

	r, err := engine.AnalyzeText("\t genial \n")
	require.NoError(t, err)
	assert.Equal(t, "genial", r.Text)
	assert.InDelta(t, 0.3, r.Polarity, 1e-9)
}

func TestEngine_AnalyzeText_RejectsBlank(t *testing.T) {
	scorer := &stubScorer{}
	engine, _ := newTestEngine(scorer)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := engine.AnalyzeText(text)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Zero(t, scorer.calls)
}

func TestEngine_AnalyzeText_ScorerFailure(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{fail: map[string]bool{"hola": true}})

	r, err := engine.AnalyzeText("hola")
	assert.ErrorIs(t, err, ErrLexicalScoreUnavailable)
	assert.ErrorContains(t, err, "model not loaded")
	assert.Equal(t, AnalysisRecord{}, r)
}

func TestEngine_AnalyzeText_ScorerSentinelNotDoubleWrapped(t *testing.T) {
	scorer := ScorerFunc(func(string) (LexicalScore, error) {
		return LexicalScore{}, ErrLexicalScoreUnavailable
	})
	engine, _ := newTestEngine(scorer)

	_, err := engine.AnalyzeText("hola")
	assert.Equal(t, ErrLexicalScoreUnavailable, err)
}

func TestEngine_AnalyzeText_MalformedScore(t *testing.T) {
	scores := []LexicalScore{
		{Polarity: 1.5, Subjectivity: 0.5},
		{Polarity: 0, Subjectivity: 2},
		{Polarity: 0, Subjectivity: -0.5},
	}

	for _, score := range scores {
		engine, _ := newTestEngine(ScorerFunc(func(string) (LexicalScore, error) { return score, nil }))
		_, err := engine.AnalyzeText("hola")
		assert.ErrorIs(t, err, ErrLexicalScoreUnavailable)
	}
}

func TestEngine_AnalyzeLines_IsolatesFailures(t *testing.T) {
	scorer := &stubScorer{fail: map[string]bool{"roto": true}}
	engine, _ := newTestEngine(scorer)

	lines := []string{"genial", "", "roto", "   ", "terrible", "El cielo es azul"}
	results := slices.Collect(engine.AnalyzeLines(slices.Values(lines)))

	require.Len(t, results, 4)
	assert.Equal(t, 1, results[0].Line)
	assert.Equal(t, LabelPositive, results[0].Record.Label)
	assert.Equal(t, 1, results[0].Record.Line)

	assert.Equal(t, 3, results[1].Line)
	assert.ErrorIs(t, results[1].Err, ErrLexicalScoreUnavailable)

	assert.Equal(t, 5, results[2].Line)
	assert.Equal(t, LabelNegative, results[2].Record.Label)

	assert.Equal(t, 6, results[3].Line)
	assert.Equal(t, LabelNeutral, results[3].Record.Label)
}

func TestEngine_AnalyzeLines_StopsWhenConsumerStops(t *testing.T) {
	scorer := &stubScorer{}
	engine, _ := newTestEngine(scorer)

	for range engine.AnalyzeLines(slices.Values([]string{"a", "b", "c"})) {
		break
	}
	assert.Equal(t, 1, scorer.calls)
}

func TestEngine_AnalyzeFile(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{fail: map[string]bool{"roto": true}})

	records := engine.AnalyzeFile([]string{"excelente", "roto", "", "pésimo"})

	require.Len(t, records, 2)
	assert.Equal(t, "excelente", records[0].Text)
	assert.Equal(t, 1, records[0].Line)
	assert.Equal(t, "pésimo", records[1].Text)
	assert.Equal(t, 4, records[1].Line)
}

func TestEngine_AnalyzeFile_AllBlank(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{})

	records := engine.AnalyzeFile([]string{"", "  "})
	assert.Empty(t, records)

	_, err := Summarize(records)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestEngine_AnalyzeReader(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{})

	input := "\uFEFFgenial\r\n\r\nterrible\nsin salto final"
	records := CollectRecords(engine.AnalyzeReader(strings.NewReader(input)))

	require.Len(t, records, 3)
	assert.Equal(t, "genial", records[0].Text)
	assert.Equal(t, 1, records[0].Line)
	assert.Equal(t, "terrible", records[1].Text)
	assert.Equal(t, 3, records[1].Line)
	assert.Equal(t, "sin salto final", records[2].Text)
	assert.Equal(t, 4, records[2].Line)
}

func TestEngine_AnalyzeReader_LongLines(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{})

	long := strings.Repeat("bueno ", 50_000)
	records := CollectRecords(engine.AnalyzeReader(strings.NewReader(long + "\nfin\n")))

	require.Len(t, records, 2)
	assert.Equal(t, 1.0, records[0].Polarity)
	assert.Equal(t, 2, records[1].Line)
}

func TestEngine_AnalyzeReader_ReadError(t *testing.T) {
	engine, _ := newTestEngine(&stubScorer{})

	results := slices.Collect(engine.AnalyzeReader(iotest.ErrReader(errors.New("disk gone"))))

	require.Len(t, results, 1)
	assert.ErrorContains(t, results[0].Err, "disk gone")
}

func TestEngine_TenTextBatchSummary(t *testing.T) {
	scorer := &stubScorer{}
	engine, _ := newTestEngine(scorer)

	texts := []string{
		"Me encanta este producto", "Es terrible", "Qué maravilloso día", "Odio este servicio",
		"Todo salió perfecto", "Estoy muy decepcionado", "Estoy feliz", "Es un problema",
		"Una experiencia genial", "Excelente atención",
	}
	records := engine.AnalyzeFile(texts)
	require.Len(t, records, 10)

	s, err := Summarize(records)
	require.NoError(t, err)
	assert.Equal(t, LabelStats{Count: 6, Percentage: 60}, s.Positive)
	assert.Equal(t, LabelStats{Count: 4, Percentage: 40}, s.Negative)
	assert.Equal(t, LabelStats{Count: 0, Percentage: 0}, s.Neutral)
}

func TestEngine_WithThresholds(t *testing.T) {
	scorer := &stubScorer{scores: map[string]LexicalScore{
		"casi": {Polarity: 0.08, Subjectivity: 0.2},
	}}
	clock := clockwork.NewFakeClock()

	wide := NewEngine(scorer, DefaultLexicon(), clock, WithThresholds(Thresholds{Positive: 0.1, Negative: -0.1}))
	r, err := wide.AnalyzeText("casi")
	require.NoError(t, err)
	assert.Equal(t, LabelNeutral, r.Label)
	assert.Equal(t, 0.1, wide.Thresholds().Positive)

	tuned := NewEngine(scorer, DefaultLexicon(), clock)
	r, err = tuned.AnalyzeText("casi")
	require.NoError(t, err)
	assert.Equal(t, LabelPositive, r.Label)
	assert.Equal(t, DefaultThresholds(), tuned.Thresholds())
}
