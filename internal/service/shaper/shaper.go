// Package shaper turns the raw entry list returned for a query into the list
// presented to the user: exact headword matches first filtered in, then
// ranked by how common their senses are, plus one shared pronunciation.
//
// Every function is pure: inputs are never mutated and new slices are
// returned.
package shaper

import (
	"sort"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// AudioBonus is added to the score of an entry that carries its own audio.
const AudioBonus = 5

// posWeights scores each meaning by part of speech. Common usages (the
// interjection "hi") outrank rare homograph senses (the adjective "high").
var posWeights = map[domain.PartOfSpeech]int{
	domain.PartOfSpeechInterjection: 50,
	domain.PartOfSpeechNoun:         30,
	domain.PartOfSpeechVerb:         25,
	domain.PartOfSpeechAdjective:    10,
	domain.PartOfSpeechAdverb:       10,
	domain.PartOfSpeechPreposition:  5,
	domain.PartOfSpeechConjunction:  5,
	domain.PartOfSpeechPronoun:      5,
	domain.PartOfSpeechDeterminer:   5,
}

// Result is the shaped entry list for one query.
type Result struct {
	Entries      []domain.LexicalEntry
	PrimaryAudio *string
}

// Shape applies FilterExact, Rank and PickAudio in that order. The shared
// audio is picked from the ranked list.
func Shape(entries []domain.LexicalEntry, word string) Result {
	ranked := Rank(FilterExact(entries, word))
	return Result{
		Entries:      ranked,
		PrimaryAudio: PickAudio(ranked),
	}
}

// FilterExact keeps the entries whose headword normalizes to the same string
// as word. When nothing matches, the unfiltered list is returned instead so a
// non-empty source response is never presented as empty.
func FilterExact(entries []domain.LexicalEntry, word string) []domain.LexicalEntry {
	target := domain.NormalizeWord(word)

	out := make([]domain.LexicalEntry, 0, len(entries))
	for _, e := range entries {
		if domain.NormalizeWord(e.Word) == target {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return append([]domain.LexicalEntry(nil), entries...)
	}
	return out
}

// PartOfSpeechWeight returns the weight of a raw part-of-speech label;
// unknown labels weigh 0.
func PartOfSpeechWeight(raw string) int {
	return posWeights[domain.ParsePartOfSpeech(raw)]
}

// Score sums the part-of-speech weights of the entry's meanings and adds
// AudioBonus when any of its phonetics has audio. An entry without meanings
// scores only the bonus.
func Score(e domain.LexicalEntry) int {
	score := 0
	for _, m := range e.Meanings {
		score += PartOfSpeechWeight(m.PartOfSpeech)
	}
	if e.HasAudio() {
		score += AudioBonus
	}
	return score
}

// Rank returns the entries sorted by descending Score. The sort is stable:
// equal scores keep their input order.
func Rank(entries []domain.LexicalEntry) []domain.LexicalEntry {
	type scored struct {
		entry domain.LexicalEntry
		score int
	}

	items := make([]scored, len(entries))
	for i, e := range entries {
		items[i] = scored{entry: e, score: Score(e)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	out := make([]domain.LexicalEntry, len(items))
	for i, it := range items {
		out[i] = it.entry
	}
	return out
}

// PickAudio returns the first non-empty pronunciation audio found scanning
// entries in order, or nil when no entry has audio.
func PickAudio(entries []domain.LexicalEntry) *string {
	for _, e := range entries {
		if a := e.AudioURL(); a != "" {
			return &a
		}
	}
	return nil
}
