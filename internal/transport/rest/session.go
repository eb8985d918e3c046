package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

const maxBodyBytes = 4 << 10

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type searchSession interface {
	Submit(text string) <-chan struct{}
	PickHistoryItem(word string) <-chan struct{}
	SetQuery(text string)
	Query() string
	State() domain.SearchState
	History() []string
	ClearHistory(ctx context.Context) []string
}

type themePreference interface {
	Theme() domain.Theme
	Set(ctx context.Context, raw string) (domain.Theme, error)
	Toggle(ctx context.Context) domain.Theme
}

// ---------------------------------------------------------------------------
// Handler
// ---------------------------------------------------------------------------

// SessionHandler exposes a search session and the theme preference as JSON
// endpoints.
type SessionHandler struct {
	session searchSession
	theme   themePreference
	log     *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(session searchSession, theme themePreference, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		theme:   theme,
		log:     logger.With("handler", "session"),
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

type pickRequest struct {
	Word string `json:"word"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// State handles GET /api/state.
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewStateResponse(h.session.State()))
}

// Search handles POST /api/search.
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.respondTriggered(w, r, h.session.Submit(req.Query))
}

// PickHistory handles POST /api/history/pick.
func (h *SessionHandler) PickHistory(w http.ResponseWriter, r *http.Request) {
	var req pickRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if domain.NormalizeWord(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	h.respondTriggered(w, r, h.session.PickHistoryItem(req.Word))
}

// GetQuery handles GET /api/query.
func (h *SessionHandler) GetQuery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QueryResponse{Query: h.session.Query()})
}

// SetQuery handles PUT /api/query.
func (h *SessionHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.session.SetQuery(req.Query)
	writeJSON(w, http.StatusAccepted, NewStateResponse(h.session.State()))
}

// History handles GET /api/history.
func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newHistoryResponse(h.session.History()))
}

// ClearHistory handles DELETE /api/history.
func (h *SessionHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newHistoryResponse(h.session.ClearHistory(r.Context())))
}

// GetTheme handles GET /api/theme.
func (h *SessionHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: h.theme.Theme().String()})
}

// SetTheme handles PUT /api/theme.
func (h *SessionHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	theme, err := h.theme.Set(r.Context(), req.Theme)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: theme.String()})
}

// ToggleTheme handles POST /api/theme/toggle.
func (h *SessionHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: h.theme.Toggle(r.Context()).String()})
}

// respondTriggered answers 202 with the state committed by the trigger, or
// with ?wait=true blocks until the lookup resolves and answers 200.
func (h *SessionHandler) respondTriggered(w http.ResponseWriter, r *http.Request, done <-chan struct{}) {
	if r.URL.Query().Get("wait") != "true" {
		writeJSON(w, http.StatusAccepted, NewStateResponse(h.session.State()))
		return
	}

	select {
	case <-done:
		writeJSON(w, http.StatusOK, NewStateResponse(h.session.State()))
	case <-r.Context().Done():
		h.log.DebugContext(r.Context(), "client gave up waiting for lookup")
		writeJSON(w, http.StatusAccepted, NewStateResponse(h.session.State()))
	}
}

func (h *SessionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "unexpected error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
