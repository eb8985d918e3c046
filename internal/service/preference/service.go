package preference

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// StorageKey is the versioned key the display theme is persisted under.
const StorageKey = "dictionary.theme.v1"

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Service holds the display theme preference.
type Service struct {
	store kvStore
	log   *slog.Logger

	mu    sync.Mutex
	theme domain.Theme
}

// NewService creates a preference service starting at domain.DefaultTheme.
func NewService(log *slog.Logger, store kvStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "preference"),
		theme: domain.DefaultTheme,
	}
}

// Load reads the stored theme. Missing or malformed values yield the default.
func (s *Service) Load(ctx context.Context) domain.Theme {
	theme := domain.DefaultTheme

	raw, ok, err := s.store.Get(ctx, StorageKey)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "load theme failed", slog.String("error", err.Error()))
	case ok:
		t := domain.Theme(strings.TrimSpace(string(raw)))
		if t.IsValid() {
			theme = t
		} else {
			s.log.WarnContext(ctx, "stored theme is invalid, using default",
				slog.String("value", string(raw)),
			)
		}
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return theme
}

// Theme returns the current theme.
func (s *Service) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Set validates and stores a theme given as raw text.
func (s *Service) Set(ctx context.Context, raw string) (domain.Theme, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return s.Theme(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.persist(ctx, theme)
	return theme, nil
}

// Toggle switches between dark and light and returns the new theme.
func (s *Service) Toggle(ctx context.Context) domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggled()
	s.persist(ctx, s.theme)
	return s.theme
}

func (s *Service) persist(ctx context.Context, theme domain.Theme) {
	if err := s.store.Put(ctx, StorageKey, []byte(theme)); err != nil {
		s.log.WarnContext(ctx, "persist theme failed",
			slog.String("theme", string(theme)),
			slog.String("error", err.Error()),
		)
	}
}
