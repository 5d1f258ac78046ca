package sentiment

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon/es.yaml
var defaultLexiconYAML []byte

var defaultLexicon = mustParseLexicon(defaultLexiconYAML)

// Lexicon holds two disjoint keyword sets. Keywords are stored folded
// (lowercase, no accents) and the value is never modified after construction,
// so a single *Lexicon can be shared across goroutines.
type Lexicon struct {
	language string
	positive []string
	negative []string
}

type lexiconFile struct {
	Language string   `yaml:"language"`
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// DefaultLexicon returns the embedded Spanish lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

func NewLexicon(language string, positive, negative []string) (*Lexicon, error) {
	pos, err := foldKeywords(positive)
	if err != nil {
		return nil, err
	}
	neg, err := foldKeywords(negative)
	if err != nil {
		return nil, err
	}
	if len(pos) == 0 || len(neg) == 0 {
		return nil, fmt.Errorf("%w: both keyword sets must be non-empty", ErrInvalidLexicon)
	}
	for _, kw := range pos {
		if _, found := slices.BinarySearch(neg, kw); found {
			return nil, fmt.Errorf("%w: %q is both positive and negative", ErrInvalidLexicon, kw)
		}
	}

	return &Lexicon{language: language, positive: pos, negative: neg}, nil
}

func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	return NewLexicon(f.Language, f.Positive, f.Negative)
}

// LoadLexicon reads a YAML lexicon from path. An empty path yields the
// embedded default.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to read %s: %w", path, err)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("[Lexicon] %s: %w", path, err)
	}
	return lex, nil
}

func mustParseLexicon(data []byte) *Lexicon {
	lex, err := ParseLexicon(data)
	if err != nil {
		panic(err)
	}
	return lex
}

func (l *Lexicon) Language() string {
	return l.language
}

func (l *Lexicon) Positive() []string {
	return slices.Clone(l.positive)
}

func (l *Lexicon) Negative() []string {
	return slices.Clone(l.negative)
}

// foldKeywords folds, sorts and dedupes keywords. Every keyword must be a
// single word, since matching happens token by token.
func foldKeywords(keywords []string) ([]string, error) {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		tokens := tokenize(foldText(kw))
		if len(tokens) != 1 {
			return nil, fmt.Errorf("%w: keyword %q must be a single word", ErrInvalidLexicon, kw)
		}
		out = append(out, tokens[0])
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
