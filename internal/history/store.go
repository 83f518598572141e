package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-grader/internal/analyses"
)

// DefaultCapacity bounds the history to the most recent entries.
const DefaultCapacity = 50

// ErrNotFound is returned when no item matches the requested ID.
var ErrNotFound = errors.New("history item not found")

// Store records completed analyses, newest first, bounded by capacity.
type Store interface {
	Add(ctx context.Context, analysis analyses.ResumeAnalysis, fileName string) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Clear(ctx context.Context) error
}

var _ analyses.HistorySaver = (*MemoryStore)(nil)

// MemoryStore keeps history in memory and is safe for concurrent use. It is
// process-local on purpose: the service does not persist user data.
type MemoryStore struct {
	mu       sync.RWMutex
	items    []Item
	capacity int
	now      func() time.Time
}

// NewMemoryStore constructs a MemoryStore with the default capacity.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithCapacity(DefaultCapacity, nil)
}

// NewMemoryStoreWithCapacity constructs a MemoryStore with an explicit
// capacity and an injectable clock for tests.
func NewMemoryStoreWithCapacity(capacity int, now func() time.Time) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		capacity: capacity,
		now:      now,
	}
}

// Add prepends a new item, evicting the oldest beyond capacity. IDs are
// UUIDv7, so they sort monotonically by creation time.
func (s *MemoryStore) Add(ctx context.Context, analysis analyses.ResumeAnalysis, fileName string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Item{}, err
	}
	item := Item{
		ID:           id.String(),
		FileName:     fileName,
		AnalysisDate: s.now().UTC(),
		Analysis:     analysis,
	}

	s.mu.Lock()
	s.items = append([]Item{item}, s.items...)
	if len(s.items) > s.capacity {
		s.items = s.items[:s.capacity]
	}
	s.mu.Unlock()

	return item, nil
}

// SaveAnalysis records a completed analysis and returns the stored item's id.
// It satisfies the saver seam the analysis handler persists through.
func (s *MemoryStore) SaveAnalysis(ctx context.Context, analysis analyses.ResumeAnalysis, fileName string) (string, error) {
	item, err := s.Add(ctx, analysis, fileName)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// List returns all items, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Get returns the item with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Clear removes all items.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	return nil
}
