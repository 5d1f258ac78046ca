package history

import (
	"log/slog"
	"sync"

	"github.com/spacesedan/sentimiento/internal/sentiment"
)

const initialCapacity = 16

// Store is the append-only, in-memory history of a session. Appends are
// serialized; readers get copies and never see later writes.
type Store struct {
	records []sentiment.AnalysisRecord
	mu      sync.Mutex
}

func NewStore() *Store {
	return &Store{
		records: make([]sentiment.AnalysisRecord, 0, initialCapacity),
	}
}

func (s *Store) Add(records ...sentiment.AnalysisRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, records...)
}

// Records returns a snapshot of the history in insertion order.
func (s *Store) Records() []sentiment.AnalysisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]sentiment.AnalysisRecord(nil), s.records...)
}

// Last returns up to n of the most recent records, oldest first.
func (s *Store) Last(n int) []sentiment.AnalysisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return nil
	}
	start := max(len(s.records)-n, 0)
	return append([]sentiment.AnalysisRecord(nil), s.records[start:]...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store) HasData() bool {
	return s.Len() > 0
}

// Summary summarizes the whole history. It returns sentiment.ErrEmptyBatch
// while the history is empty.
func (s *Store) Summary() (sentiment.Summary, error) {
	return sentiment.Summarize(s.Records())
}

func (s *Store) LogSize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	slog.Info("[History] Session history",
		slog.Int("records", len(s.records)))
}
