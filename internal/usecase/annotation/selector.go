package annotation

import (
	"sort"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// SelectTopK returns the texts of the k best scored sentences in their
// document order. k is clamped to [0, len(sentences)]; equal scores keep
// index order.
func SelectTopK(sentences []entities.Sentence, scored []entities.ScoredSentence, k int) []string {
	if k > len(sentences) {
		k = len(sentences)
	}
	if k <= 0 {
		return []string{}
	}

	ranked := make([]entities.ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Index < ranked[j].Index
	})

	texts := make([]string, 0, len(ranked))
	for _, r := range ranked {
		if r.Index >= 0 && r.Index < len(sentences) {
			texts = append(texts, sentences[r.Index].Text)
		}
	}
	return texts
}
