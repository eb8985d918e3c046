package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

var _ searchSession = &searchSessionMock{}

type searchSessionMock struct {
	ClearHistoryFunc    func(ctx context.Context) []string
	HistoryFunc         func() []string
	PickHistoryItemFunc func(word string) <-chan struct{}
	QueryFunc           func() string
	SetQueryFunc        func(text string)
	StateFunc           func() domain.SearchState
	SubmitFunc          func(text string) <-chan struct{}

	calls struct {
		ClearHistory []struct {
			Ctx context.Context
		}
		History []struct{}
		PickHistoryItem []struct {
			Word string
		}
		Query []struct{}
		SetQuery []struct {
			Text string
		}
		State []struct{}
		Submit []struct {
			Text string
		}
	}
	lockClearHistory    sync.RWMutex
	lockHistory         sync.RWMutex
	lockPickHistoryItem sync.RWMutex
	lockQuery           sync.RWMutex
	lockSetQuery        sync.RWMutex
	lockState           sync.RWMutex
	lockSubmit          sync.RWMutex
}

func (mock *searchSessionMock) ClearHistory(ctx context.Context) []string {
	if mock.ClearHistoryFunc == nil {
		panic("searchSessionMock.ClearHistoryFunc: method is nil but searchSession.ClearHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClearHistory.Lock()
	mock.calls.ClearHistory = append(mock.calls.ClearHistory, callInfo)
	mock.lockClearHistory.Unlock()
	return mock.ClearHistoryFunc(ctx)
}

func (mock *searchSessionMock) ClearHistoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockClearHistory.RLock()
	calls := mock.calls.ClearHistory
	mock.lockClearHistory.RUnlock()
	return calls
}

func (mock *searchSessionMock) History() []string {
	if mock.HistoryFunc == nil {
		panic("searchSessionMock.HistoryFunc: method is nil but searchSession.History was just called")
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, struct{}{})
	mock.lockHistory.Unlock()
	return mock.HistoryFunc()
}

func (mock *searchSessionMock) HistoryCalls() []struct{} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *searchSessionMock) PickHistoryItem(word string) <-chan struct{} {
	if mock.PickHistoryItemFunc == nil {
		panic("searchSessionMock.PickHistoryItemFunc: method is nil but searchSession.PickHistoryItem was just called")
	}
	callInfo := struct {
		Word string
	}{Word: word}
	mock.lockPickHistoryItem.Lock()
	mock.calls.PickHistoryItem = append(mock.calls.PickHistoryItem, callInfo)
	mock.lockPickHistoryItem.Unlock()
	return mock.PickHistoryItemFunc(word)
}

func (mock *searchSessionMock) PickHistoryItemCalls() []struct {
	Word string
} {
	mock.lockPickHistoryItem.RLock()
	calls := mock.calls.PickHistoryItem
	mock.lockPickHistoryItem.RUnlock()
	return calls
}

func (mock *searchSessionMock) Query() string {
	if mock.QueryFunc == nil {
		panic("searchSessionMock.QueryFunc: method is nil but searchSession.Query was just called")
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, struct{}{})
	mock.lockQuery.Unlock()
	return mock.QueryFunc()
}

func (mock *searchSessionMock) QueryCalls() []struct{} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *searchSessionMock) SetQuery(text string) {
	if mock.SetQueryFunc == nil {
		panic("searchSessionMock.SetQueryFunc: method is nil but searchSession.SetQuery was just called")
	}
	callInfo := struct {
		Text string
	}{Text: text}
	mock.lockSetQuery.Lock()
	mock.calls.SetQuery = append(mock.calls.SetQuery, callInfo)
	mock.lockSetQuery.Unlock()
	mock.SetQueryFunc(text)
}

func (mock *searchSessionMock) SetQueryCalls() []struct {
	Text string
} {
	mock.lockSetQuery.RLock()
	calls := mock.calls.SetQuery
	mock.lockSetQuery.RUnlock()
	return calls
}

func (mock *searchSessionMock) State() domain.SearchState {
	if mock.StateFunc == nil {
		panic("searchSessionMock.StateFunc: method is nil but searchSession.State was just called")
	}
	mock.lockState.Lock()
	mock.calls.State = append(mock.calls.State, struct{}{})
	mock.lockState.Unlock()
	return mock.StateFunc()
}

func (mock *searchSessionMock) StateCalls() []struct{} {
	mock.lockState.RLock()
	calls := mock.calls.State
	mock.lockState.RUnlock()
	return calls
}

func (mock *searchSessionMock) Submit(text string) <-chan struct{} {
	if mock.SubmitFunc == nil {
		panic("searchSessionMock.SubmitFunc: method is nil but searchSession.Submit was just called")
	}
	callInfo := struct {
		Text string
	}{Text: text}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(text)
}

func (mock *searchSessionMock) SubmitCalls() []struct {
	Text string
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
