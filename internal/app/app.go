package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordlookup/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/service/history"
	"github.com/heartmarshall/wordlookup/internal/service/preference"
	"github.com/heartmarshall/wordlookup/internal/service/session"
)

// App holds the wired components of one process.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Store   Store
	History *history.Service
	Theme   *preference.Service
	Session *session.Service
}

// New opens storage, restores history and theme, and creates an idle
// search session. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, err := OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	hist := history.NewService(logger, store, cfg.Session.HistoryLimit)
	hist.Load(ctx)

	theme := preference.NewService(logger, store)
	theme.Load(ctx)

	lexCfg := cfg.Lexicon
	if lexCfg.UserAgent == "" {
		lexCfg.UserAgent = UserAgent()
	}
	lexicon := freedict.NewClient(lexCfg, logger)

	return &App{
		Config:  cfg,
		Log:     logger,
		Store:   store,
		History: hist,
		Theme:   theme,
		Session: session.NewService(logger, lexicon, hist, cfg.Session),
	}, nil
}

// Close stops the session and closes storage.
func (a *App) Close() {
	a.Session.Close()
	if err := a.Store.Close(); err != nil {
		a.Log.Warn("close storage", slog.String("error", err.Error()))
	}
}
