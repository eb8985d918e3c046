package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

const (
	// StorageKey is the versioned key the history list is persisted under.
	StorageKey = "dictionary.history.v1"

	// DefaultLimit caps the number of remembered words.
	DefaultLimit = 10
)

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Service keeps the recent-search list: normalized words, most recent first,
// unique and capped. The list is loaded once and written back after every
// mutation. Storage problems are logged, never returned.
type Service struct {
	store kvStore
	limit int
	log   *slog.Logger

	mu    sync.Mutex
	items []string
}

// NewService creates a history service. A limit outside 1..DefaultLimit
// falls back to DefaultLimit.
func NewService(log *slog.Logger, store kvStore, limit int) *Service {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	return &Service{
		store: store,
		limit: limit,
		log:   log.With("service", "history"),
		items: []string{},
	}
}

// Load reads the stored list. Missing, unreadable or corrupt values degrade
// to an empty list.
func (s *Service) Load(ctx context.Context) []string {
	items := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return clone(s.items)
}

func (s *Service) read(ctx context.Context) []string {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		s.log.WarnContext(ctx, "load history failed", slog.String("error", err.Error()))
		return []string{}
	}
	if !ok || len(raw) == 0 {
		return []string{}
	}

	var stored []string
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.WarnContext(ctx, "stored history is corrupt, starting empty",
			slog.String("error", err.Error()),
		)
		return []string{}
	}

	// Re-apply the list invariants to whatever was stored.
	items := []string{}
	for i := len(stored) - 1; i >= 0; i-- {
		items = PushFront(items, stored[i], s.limit)
	}
	return items
}

// Record moves word to the front of the list and persists the result.
// Empty words are ignored.
func (s *Service) Record(ctx context.Context, word string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = PushFront(s.items, word, s.limit)
	s.persist(ctx, s.items)
	return clone(s.items)
}

// Clear empties the list and deletes the stored value.
func (s *Service) Clear(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []string{}
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		s.log.WarnContext(ctx, "delete history failed", slog.String("error", err.Error()))
	}
	s.log.InfoContext(ctx, "history cleared")
	return []string{}
}

// Items returns a copy of the current list.
func (s *Service) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

// persist must be called with mu held so writes reach the store in order.
func (s *Service) persist(ctx context.Context, items []string) {
	data, err := json.Marshal(items)
	if err != nil {
		s.log.WarnContext(ctx, "encode history failed", slog.String("error", err.Error()))
		return
	}
	if err := s.store.Put(ctx, StorageKey, data); err != nil {
		s.log.WarnContext(ctx, "persist history failed", slog.String("error", err.Error()))
	}
}

// PushFront returns a new list with the normalized word at the front, any
// earlier occurrence removed and the result truncated to limit. The input
// list is not modified.
func PushFront(list []string, word string, limit int) []string {
	w := domain.NormalizeWord(word)
	if w == "" {
		return clone(list)
	}

	out := make([]string, 0, len(list)+1)
	out = append(out, w)
	for _, item := range list {
		if domain.NormalizeWord(item) == w {
			continue
		}
		out = append(out, item)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
