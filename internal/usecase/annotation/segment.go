package annotation

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

var (
	// a boundary is whitespace after terminal punctuation or a run of newlines;
	// the punctuation itself stays with the sentence it ends
	boundaryRe = regexp.MustCompile(`[.!?]\s+|\n+`)
	tokenRe    = regexp.MustCompile(`[a-z][a-z']+`)
)

// SplitSentences segments cleaned text into indexed sentences.
// Lone speaker labels on their own line become sentences of their own.
func SplitSentences(text string) []entities.Sentence {
	text = strings.ReplaceAll(text, "\r", "")
	sentences := make([]entities.Sentence, 0)

	appendFragment := func(fragment string) {
		s := strings.TrimSpace(fragment)
		if s == "" {
			return
		}
		sentences = append(sentences, entities.Sentence{Index: len(sentences), Text: s})
	}

	start := 0
	for _, loc := range boundaryRe.FindAllStringIndex(text, -1) {
		end := loc[0]
		if text[loc[0]] != '\n' {
			end++ // keep the punctuation
		}
		appendFragment(text[start:end])
		start = loc[1]
	}
	appendFragment(text[start:])

	return sentences
}

// Tokenize returns the lower-cased word tokens of text
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}
