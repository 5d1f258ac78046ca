package sentiment

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// VaderScorer is the LexicalScorer backed by the VADER lexicon. Polarity is the
// compound score; subjectivity is the share of the text carrying sentiment
// (positive plus negative proportions).
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(text string) (LexicalScore, error) {
	plainText := ConvertMarkdownToText(text)
	if plainText == "" {
		return LexicalScore{}, fmt.Errorf("%w: no scorable text left after cleanup", ErrLexicalScoreUnavailable)
	}

	sentiment := v.analyzer.PolarityScores(plainText)
	if math.IsNaN(sentiment.Compound) {
		return LexicalScore{}, fmt.Errorf("%w: model returned NaN", ErrLexicalScoreUnavailable)
	}

	return LexicalScore{
		Polarity:     clamp(sentiment.Compound, -1, 1),
		Subjectivity: clamp(sentiment.Positive+sentiment.Negative, 0, 1),
	}, nil
}

// RemoveLinks keeps markdown link text and drops bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips the markup and links,
// leaving whitespace-normalized plain text.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(plainText), " ")
}
