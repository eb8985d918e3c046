// Package session owns the lookup lifecycle: it turns triggers into lexicon
// requests, shapes the results, records history and exposes one current
// SearchState.
//
// The last trigger wins. Every trigger bumps a generation counter; a lookup
// commits its result only if the counter still holds the value captured when
// it started. Older lookups are not cancelled, their results are dropped.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/service/shaper"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lexicon interface {
	Lookup(ctx context.Context, word string) ([]domain.LexicalEntry, error)
}

type historyStore interface {
	Record(ctx context.Context, word string) []string
	Clear(ctx context.Context) []string
	Items() []string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is a single search session.
type Service struct {
	lexicon lexicon
	history historyStore
	cfg     config.SessionConfig
	log     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	gen      uint64
	state    domain.SearchState
	query    string
	timer    *time.Timer
	timerSeq uint64
	subs     map[uint64]chan domain.SearchState
	nextSub  uint64
	closed   bool
}

// NewService creates an idle session. Call Close to release it.
func NewService(
	log *slog.Logger,
	lex lexicon,
	history historyStore,
	cfg config.SessionConfig,
) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		lexicon: lex,
		history: history,
		cfg:     cfg,
		log:     log.With("service", "session"),
		ctx:     ctx,
		cancel:  cancel,
		state:   domain.Idle{},
		subs:    make(map[uint64]chan domain.SearchState),
	}
}

// State returns the current state.
func (s *Service) State() domain.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Query returns the current query text.
func (s *Service) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// History returns the recent-search list.
func (s *Service) History() []string {
	return s.history.Items()
}

// Submit sets the query text and looks it up. The returned channel is closed
// once the lookup has resolved, whether its result was committed or dropped.
// Ineligible input returns an already closed channel and changes nothing.
func (s *Service) Submit(text string) <-chan struct{} {
	s.setQueryText(text)
	return s.trigger(text, domain.TriggerSubmit)
}

// PickHistoryItem re-runs the full lookup for a history word.
func (s *Service) PickHistoryItem(word string) <-chan struct{} {
	s.setQueryText(word)
	return s.trigger(word, domain.TriggerSubmit)
}

// ClearHistory empties the recent-search list.
func (s *Service) ClearHistory(ctx context.Context) []string {
	return s.history.Clear(ctx)
}

// SetQuery updates the query text as the user types. With live search on,
// a lookup fires once the text has been stable for the debounce interval.
// Text too short for a live lookup returns the session to Idle.
func (s *Service) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = text
	if !s.cfg.LiveSearch || s.closed {
		return
	}
	s.stopTimerLocked()

	word := domain.NormalizeWord(text)
	if !domain.IsEligible(word, domain.TriggerLive.MinLength()) {
		s.gen++
		if _, idle := s.state.(domain.Idle); !idle {
			s.commitLocked(domain.Idle{})
		}
		return
	}

	seq := s.timerSeq
	s.timer = time.AfterFunc(s.cfg.Debounce, func() {
		s.mu.Lock()
		if seq != s.timerSeq {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		gen, ok := s.startLocked(word, domain.TriggerLive)
		s.mu.Unlock()
		if ok {
			s.launch(gen, word, domain.TriggerLive, nil)
		}
	})
}

// Subscribe returns a channel receiving every committed state and a function
// that cancels the subscription. A slow reader only misses intermediate
// states: the newest state always replaces an unread one.
func (s *Service) Subscribe() (<-chan domain.SearchState, func()) {
	ch := make(chan domain.SearchState, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// Close stops the debounce timer, drops in-flight results and closes all
// subscriptions. It waits for running lookups to return.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.gen++
	s.stopTimerLocked()
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (s *Service) setQueryText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = text
	s.stopTimerLocked()
}

func (s *Service) trigger(raw string, kind domain.TriggerKind) <-chan struct{} {
	done := make(chan struct{})
	word := domain.NormalizeWord(raw)

	s.mu.Lock()
	gen, ok := s.startLocked(word, kind)
	s.mu.Unlock()

	if !ok {
		close(done)
		return done
	}
	s.launch(gen, word, kind, done)
	return done
}

// startLocked claims a new generation and commits Loading. It reports false,
// changing nothing, for ineligible words or a closed session.
func (s *Service) startLocked(word string, kind domain.TriggerKind) (uint64, bool) {
	if s.closed || !domain.IsEligible(word, kind.MinLength()) {
		return 0, false
	}
	s.gen++
	s.commitLocked(domain.Loading{Word: word})
	s.wg.Add(1)
	return s.gen, true
}

// launch runs the lookup for a generation claimed by startLocked. done, if
// non-nil, is closed once the lookup has resolved.
func (s *Service) launch(gen uint64, word string, kind domain.TriggerKind, done chan struct{}) {
	s.log.DebugContext(s.ctx, "lookup started",
		slog.String("word", word),
		slog.String("trigger", string(kind)),
		slog.Uint64("generation", gen),
	)

	go func() {
		defer s.wg.Done()
		if done != nil {
			defer close(done)
		}
		s.run(gen, word)
	}()
}

func (s *Service) run(gen uint64, word string) {
	ctx := s.ctx
	if s.cfg.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.LookupTimeout)
		defer cancel()
	}

	entries, err := s.lexicon.Lookup(ctx, word)

	var next domain.SearchState
	if err != nil {
		next = domain.Failure{
			Word:    word,
			Message: domain.FailureMessage(err),
			Kind:    domain.KindOf(err),
		}
	} else {
		res := shaper.Shape(entries, word)
		next = domain.Success{
			Word:         word,
			Entries:      res.Entries,
			PrimaryAudio: res.PrimaryAudio,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.DebugContext(ctx, "stale lookup result dropped",
			slog.String("word", word),
			slog.Uint64("generation", gen),
			slog.Uint64("current", s.gen),
		)
		return
	}

	s.commitLocked(next)

	if err != nil {
		s.log.WarnContext(ctx, "lookup failed",
			slog.String("word", word),
			slog.String("kind", domain.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return
	}

	// History is written under the lock so it follows the order of commits.
	s.history.Record(context.WithoutCancel(ctx), word)
	s.log.InfoContext(ctx, "lookup succeeded",
		slog.String("word", word),
		slog.Int("entries", len(next.(domain.Success).Entries)),
	)
}

func (s *Service) commitLocked(state domain.SearchState) {
	s.state = state
	for _, ch := range s.subs {
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- state
		}
	}
}

func (s *Service) stopTimerLocked() {
	s.timerSeq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
