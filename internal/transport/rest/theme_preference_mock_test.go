package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

var _ themePreference = &themePreferenceMock{}

type themePreferenceMock struct {
	SetFunc    func(ctx context.Context, raw string) (domain.Theme, error)
	ThemeFunc  func() domain.Theme
	ToggleFunc func(ctx context.Context) domain.Theme

	calls struct {
		Set []struct {
			Ctx context.Context
			Raw string
		}
		Theme []struct{}
		Toggle []struct {
			Ctx context.Context
		}
	}
	lockSet    sync.RWMutex
	lockTheme  sync.RWMutex
	lockToggle sync.RWMutex
}

func (mock *themePreferenceMock) Set(ctx context.Context, raw string) (domain.Theme, error) {
	if mock.SetFunc == nil {
		panic("themePreferenceMock.SetFunc: method is nil but themePreference.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Raw string
	}{Ctx: ctx, Raw: raw}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, raw)
}

func (mock *themePreferenceMock) SetCalls() []struct {
	Ctx context.Context
	Raw string
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *themePreferenceMock) Theme() domain.Theme {
	if mock.ThemeFunc == nil {
		panic("themePreferenceMock.ThemeFunc: method is nil but themePreference.Theme was just called")
	}
	mock.lockTheme.Lock()
	mock.calls.Theme = append(mock.calls.Theme, struct{}{})
	mock.lockTheme.Unlock()
	return mock.ThemeFunc()
}

func (mock *themePreferenceMock) ThemeCalls() []struct{} {
	mock.lockTheme.RLock()
	calls := mock.calls.Theme
	mock.lockTheme.RUnlock()
	return calls
}

func (mock *themePreferenceMock) Toggle(ctx context.Context) domain.Theme {
	if mock.ToggleFunc == nil {
		panic("themePreferenceMock.ToggleFunc: method is nil but themePreference.Toggle was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx)
}

func (mock *themePreferenceMock) ToggleCalls() []struct {
	Ctx context.Context
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}
