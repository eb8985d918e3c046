package session

import (
	"context"
	"sync"
)

var _ historyStore = &historyStoreMock{}

type historyStoreMock struct {
	ClearFunc  func(ctx context.Context) []string
	ItemsFunc  func() []string
	RecordFunc func(ctx context.Context, word string) []string

	calls struct {
		Clear []struct {
			Ctx context.Context
		}
		Items  []struct{}
		Record []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockClear  sync.RWMutex
	lockItems  sync.RWMutex
	lockRecord sync.RWMutex
}

func (mock *historyStoreMock) Clear(ctx context.Context) []string {
	if mock.ClearFunc == nil {
		panic("historyStoreMock.ClearFunc: method is nil but historyStore.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *historyStoreMock) ClearCalls() []struct {
	Ctx context.Context
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *historyStoreMock) Items() []string {
	if mock.ItemsFunc == nil {
		panic("historyStoreMock.ItemsFunc: method is nil but historyStore.Items was just called")
	}
	mock.lockItems.Lock()
	mock.calls.Items = append(mock.calls.Items, struct{}{})
	mock.lockItems.Unlock()
	return mock.ItemsFunc()
}

func (mock *historyStoreMock) ItemsCalls() []struct{} {
	mock.lockItems.RLock()
	calls := mock.calls.Items
	mock.lockItems.RUnlock()
	return calls
}

func (mock *historyStoreMock) Record(ctx context.Context, word string) []string {
	if mock.RecordFunc == nil {
		panic("historyStoreMock.RecordFunc: method is nil but historyStore.Record was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, word)
}

func (mock *historyStoreMock) RecordCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
