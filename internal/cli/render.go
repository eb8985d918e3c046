package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// maxDefinitions is how many definitions are printed per meaning.
const maxDefinitions = 3

// RenderState writes a human-readable form of s.
func RenderState(w io.Writer, s domain.SearchState) {
	switch st := s.(type) {
	case domain.Idle:
	case domain.Loading:
		fmt.Fprintf(w, "Looking up %q...\n", st.Word)
	case domain.Success:
		for i, e := range st.Entries {
			if i > 0 {
				fmt.Fprintln(w)
			}
			renderEntry(w, e, st.AudioFor(i))
		}
	case domain.Failure:
		fmt.Fprintln(w, st.Message)
	default:
		panic(fmt.Sprintf("cli: unknown search state %T", s))
	}
}

func renderEntry(w io.Writer, e domain.LexicalEntry, audio string) {
	head := strings.TrimSpace(e.Word)
	if ph := e.DisplayPhonetic(); ph != "" {
		head += "  " + ph
	}
	fmt.Fprintln(w, head)

	if audio != "" {
		fmt.Fprintf(w, "  audio: %s\n", audio)
	} else {
		fmt.Fprintln(w, "  audio: none")
	}

	for _, m := range e.Meanings {
		fmt.Fprintf(w, "  %s\n", m.PartOfSpeech)
		for i, d := range m.Definitions {
			if i == maxDefinitions {
				fmt.Fprintf(w, "    (+%d more)\n", len(m.Definitions)-maxDefinitions)
				break
			}
			fmt.Fprintf(w, "    %d. %s\n", i+1, d.Definition)
			if d.Example != "" {
				fmt.Fprintf(w, "       %q\n", d.Example)
			}
		}
		if len(m.Synonyms) > 0 {
			fmt.Fprintf(w, "    synonyms: %s\n", strings.Join(m.Synonyms, ", "))
		}
	}

	fmt.Fprintf(w, "  source: %s\n", e.SourceDomain())
}

// RenderHistory writes the history list numbered from 1.
func RenderHistory(w io.Writer, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No recent searches.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(w, "%2d. %s\n", i+1, item)
	}
}
