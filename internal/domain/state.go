package domain

import "fmt"

// SearchState is the current state of a lookup session. It is a closed sum
// type: Idle, Loading, Success, and Failure are its only implementations.
// Consumers switch on the concrete type.
type SearchState interface {
	searchState()
}

// Idle means no lookup has been attempted, or live search was reset.
type Idle struct{}

// Loading means a lookup for Word is in flight.
type Loading struct {
	Word string
}

// Success holds the shaped entries for Word. PrimaryAudio is the shared
// pronunciation offered to entries without audio of their own.
type Success struct {
	Word         string
	Entries      []LexicalEntry
	PrimaryAudio *string
}

// Failure holds the user-facing message of a failed lookup.
type Failure struct {
	Word    string
	Message string
	Kind    ErrorKind
}

func (Idle) searchState()    {}
func (Loading) searchState() {}
func (Success) searchState() {}
func (Failure) searchState() {}

// AudioFor returns the audio URL to play for entry i: its own audio, or the
// shared PrimaryAudio, or "".
func (s Success) AudioFor(i int) string {
	if i >= 0 && i < len(s.Entries) {
		if a := s.Entries[i].AudioURL(); a != "" {
			return a
		}
	}
	if s.PrimaryAudio != nil {
		return *s.PrimaryAudio
	}
	return ""
}

// State names as exposed to rendering layers.
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateSuccess = "success"
	StateError   = "error"
)

// StateName returns the status name of a state.
// It panics on an implementation it does not know about.
func StateName(s SearchState) string {
	switch s.(type) {
	case Idle:
		return StateIdle
	case Loading:
		return StateLoading
	case Success:
		return StateSuccess
	case Failure:
		return StateError
	default:
		panic(fmt.Sprintf("domain: unknown search state %T", s))
	}
}
