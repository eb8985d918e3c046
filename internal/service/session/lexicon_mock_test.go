package session

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

var _ lexicon = &lexiconMock{}

type lexiconMock struct {
	LookupFunc func(ctx context.Context, word string) ([]domain.LexicalEntry, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *lexiconMock) Lookup(ctx context.Context, word string) ([]domain.LexicalEntry, error) {
	if mock.LookupFunc == nil {
		panic("lexiconMock.LookupFunc: method is nil but lexicon.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, word)
}

func (mock *lexiconMock) LookupCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
