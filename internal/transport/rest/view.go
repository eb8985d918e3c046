package rest

import (
	"github.com/heartmarshall/wordlookup/internal/domain"
)

// StateResponse is the JSON form of a SearchState. Status is one of idle,
// loading, success or error; the other fields depend on it. Entries is
// always an array on success, possibly empty, and null otherwise.
type StateResponse struct {
	Status       string          `json:"status"`
	Word         string          `json:"word,omitempty"`
	Entries      []EntryResponse `json:"entries"`
	PrimaryAudio *string         `json:"primaryAudio,omitempty"`
	Message      string          `json:"message,omitempty"`
	Kind         string          `json:"kind,omitempty"`
}

// EntryResponse is a shaped entry with the values a renderer needs already
// resolved.
type EntryResponse struct {
	domain.LexicalEntry
	DisplayPhonetic string `json:"displayPhonetic,omitempty"`
	Audio           string `json:"audio,omitempty"`
	SourceURL       string `json:"sourceUrl"`
	SourceDomain    string `json:"sourceDomain"`
}

// NewStateResponse renders a state.
func NewStateResponse(s domain.SearchState) StateResponse {
	resp := StateResponse{Status: domain.StateName(s)}

	switch st := s.(type) {
	case domain.Loading:
		resp.Word = st.Word
	case domain.Success:
		resp.Word = st.Word
		resp.PrimaryAudio = st.PrimaryAudio
		resp.Entries = make([]EntryResponse, len(st.Entries))
		for i, e := range st.Entries {
			resp.Entries[i] = EntryResponse{
				LexicalEntry:    e,
				DisplayPhonetic: e.DisplayPhonetic(),
				Audio:           st.AudioFor(i),
				SourceURL:       e.SourceURL(),
				SourceDomain:    e.SourceDomain(),
			}
		}
	case domain.Failure:
		resp.Word = st.Word
		resp.Message = st.Message
		resp.Kind = st.Kind.String()
	}

	return resp
}

// QueryResponse carries the current query text.
type QueryResponse struct {
	Query string `json:"query"`
}

// HistoryResponse carries the recent-search list, most recent first.
type HistoryResponse struct {
	Items []string `json:"items"`
}

// ThemeResponse carries the active theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

func newHistoryResponse(items []string) HistoryResponse {
	if items == nil {
		items = []string{}
	}
	return HistoryResponse{Items: items}
}
