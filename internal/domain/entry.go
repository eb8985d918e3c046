package domain

import (
	"net/url"
	"strings"
)

const wiktionaryBaseURL = "https://en.wiktionary.org/wiki/"

// LexicalEntry is one dictionary record for a queried word, as returned by
// the lexical data source. The headword may differ from the query in case
// or surrounding whitespace.
type LexicalEntry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is a transcription paired with an optional pronunciation audio URL.
// Region ("US", "UK", "AU") is inferred from the audio file name when possible.
type Phonetic struct {
	Text   string `json:"text,omitempty"`
	Audio  string `json:"audio,omitempty"`
	Region string `json:"region,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// AudioURL returns the first non-empty pronunciation audio of the entry,
// or "" if none of its phonetics carry audio.
func (e LexicalEntry) AudioURL() string {
	for _, ph := range e.Phonetics {
		if a := strings.TrimSpace(ph.Audio); a != "" {
			return a
		}
	}
	return ""
}

// HasAudio reports whether any phonetic of the entry has audio.
func (e LexicalEntry) HasAudio() bool {
	return e.AudioURL() != ""
}

// DisplayPhonetic returns the top-level phonetic, falling back to the first
// phonetic with text.
func (e LexicalEntry) DisplayPhonetic() string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, ph := range e.Phonetics {
		if ph.Text != "" {
			return ph.Text
		}
	}
	return ""
}

// SourceURL returns the first non-empty attribution URL. Entries without one
// point at the Wiktionary page of the headword.
func (e LexicalEntry) SourceURL() string {
	for _, u := range e.SourceURLs {
		if u != "" {
			return u
		}
	}
	return wiktionaryBaseURL + url.PathEscape(e.Word)
}

// SourceDomain returns the host of SourceURL without a leading "www.".
// Unparsable URLs are returned as is.
func (e LexicalEntry) SourceDomain() string {
	raw := e.SourceURL()
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
