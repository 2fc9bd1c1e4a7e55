package annotation

import (
	"math"
	"sort"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// TermCount is a token with its number of occurrences
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// FrequencyTable counts stopword-filtered tokens and remembers the order in
// which each token was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

func (t *FrequencyTable) addText(text string) {
	for _, tok := range Tokenize(text) {
		if Stopwords.Contains(tok) {
			continue
		}
		if _, ok := t.counts[tok]; !ok {
			t.order = append(t.order, tok)
		}
		t.counts[tok]++
	}
}

// BuildFrequencies counts content tokens across a sentence collection
func BuildFrequencies(sentences []entities.Sentence) *FrequencyTable {
	t := newFrequencyTable()
	for _, s := range sentences {
		t.addText(s.Text)
	}
	return t
}

// CountTerms counts content tokens across a whole document
func CountTerms(text string) *FrequencyTable {
	t := newFrequencyTable()
	t.addText(text)
	return t
}

// Count returns the occurrences of term, 0 when absent
func (t *FrequencyTable) Count(term string) int {
	return t.counts[term]
}

// Len returns the number of distinct terms
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Max returns the highest count in the table, or 1 when the table is empty
func (t *FrequencyTable) Max() int {
	highest := 0
	for _, c := range t.counts {
		if c > highest {
			highest = c
		}
	}
	if highest == 0 {
		return 1
	}
	return highest
}

// MostCommon returns up to n terms by descending count. Equal counts keep
// first-seen order. n < 0 returns every term.
func (t *FrequencyTable) MostCommon(n int) []TermCount {
	ranked := make([]TermCount, 0, len(t.order))
	for _, term := range t.order {
		ranked = append(ranked, TermCount{Term: term, Count: t.counts[term]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// ScoreSentences rates each sentence by the normalized frequency of its
// content tokens, damped by sqrt(tokens+1).
func ScoreSentences(sentences []entities.Sentence, table *FrequencyTable) []entities.ScoredSentence {
	scored := make([]entities.ScoredSentence, 0, len(sentences))
	if len(sentences) == 0 {
		return scored
	}

	maxCount := float64(table.Max())
	for _, s := range sentences {
		words := contentTokens(s.Text)
		if len(words) == 0 {
			scored = append(scored, entities.ScoredSentence{Index: s.Index, Score: 0})
			continue
		}
		sum := 0.0
		for _, w := range words {
			sum += float64(table.Count(w)) / maxCount
		}
		scored = append(scored, entities.ScoredSentence{
			Index: s.Index,
			Score: sum / math.Sqrt(float64(len(words))+1),
		})
	}
	return scored
}

func contentTokens(text string) []string {
	tokens := Tokenize(text)
	words := tokens[:0]
	for _, tok := range tokens {
		if !Stopwords.Contains(tok) {
			words = append(words, tok)
		}
	}
	return words
}
