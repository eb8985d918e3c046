package domain

// PartOfSpeech is the grammatical category reported by the lexical source.
// Values are the lowercase strings the source uses.
type PartOfSpeech string

const (
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechDeterminer   PartOfSpeech = "determiner"
)

func (p PartOfSpeech) String() string { return string(p) }

// ParsePartOfSpeech normalizes a raw part-of-speech label. Unknown labels are
// returned normalized but fail IsValid.
func ParsePartOfSpeech(raw string) PartOfSpeech {
	return PartOfSpeech(NormalizeWord(raw))
}

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechInterjection, PartOfSpeechNoun, PartOfSpeechVerb,
		PartOfSpeechAdjective, PartOfSpeechAdverb, PartOfSpeechPreposition,
		PartOfSpeechConjunction, PartOfSpeechPronoun, PartOfSpeechDeterminer:
		return true
	}
	return false
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when no valid preference is stored.
const DefaultTheme = ThemeDark

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	}
	return false
}

// Toggled returns the other theme. Invalid themes toggle from the default.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme parses a stored or user-supplied theme value.
func ParseTheme(raw string) (Theme, error) {
	t := Theme(NormalizeWord(raw))
	if !t.IsValid() {
		return DefaultTheme, NewValidationError("theme", "must be dark or light")
	}
	return t, nil
}

// TriggerKind identifies what started a lookup.
type TriggerKind string

const (
	// TriggerSubmit is an explicit submission or a history pick.
	TriggerSubmit TriggerKind = "SUBMIT"
	// TriggerLive is a debounced search fired while the user types.
	TriggerLive TriggerKind = "LIVE"
)

func (k TriggerKind) String() string { return string(k) }

// MinLength is the eligibility threshold for the trigger kind. Explicit
// submissions accept single-character words; live search waits for two.
func (k TriggerKind) MinLength() int {
	if k == TriggerLive {
		return 2
	}
	return 1
}
