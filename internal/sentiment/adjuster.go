package sentiment

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Per-keyword boosts. A single keyword is enough to move a near-zero lexical
// score past either classification threshold.
const (
	PositiveWeight = 0.3
	NegativeWeight = 0.3
)

// Keywords this short only match a whole word or its plural, so "mala" does
// not fire on "malaga".
const shortKeywordLen = 4

type KeywordMatches struct {
	Positive int
	Negative int
}

// KeywordAdjuster corrects lexical polarity with lexicon keyword hits. The
// lexical model under-detects colloquial Spanish, so the boost is added to the
// base score rather than replacing it.
type KeywordAdjuster struct {
	lexicon *Lexicon
}

func NewKeywordAdjuster(lexicon *Lexicon) *KeywordAdjuster {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &KeywordAdjuster{lexicon: lexicon}
}

// Matches counts keyword occurrences in text. Every word is compared after
// folding, and a word counts once, for the first set with a matching keyword.
func (a *KeywordAdjuster) Matches(text string) KeywordMatches {
	var m KeywordMatches
	for _, token := range tokenize(foldText(text)) {
		switch {
		case matchesKeyword(token, a.lexicon.positive):
			m.Positive++
		case matchesKeyword(token, a.lexicon.negative):
			m.Negative++
		}
	}
	return m
}

// Adjust returns rawPolarity plus the keyword boost, clamped to [-1, 1].
// Positive and negative hits combine additively and may cancel out.
func (a *KeywordAdjuster) Adjust(rawPolarity float64, text string) float64 {
	m := a.Matches(text)
	boost := float64(m.Positive)*PositiveWeight - float64(m.Negative)*NegativeWeight
	return clamp(rawPolarity+boost, -1.0, 1.0)
}

func matchesKeyword(token string, keywords []string) bool {
	for _, kw := range keywords {
		if utf8.RuneCountInString(kw) <= shortKeywordLen {
			if token == kw || token == kw+"s" || token == kw+"es" {
				return true
			}
			continue
		}
		if strings.HasPrefix(token, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
