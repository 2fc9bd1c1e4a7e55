package annotation

import (
	"math"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

const (
	DefaultSummarySentences    = 5
	DefaultKeyPointsMultiplier = 1.6
	// key points never drop below this many, transcript length permitting
	minKeyPoints = 3
	maxTopics    = 5
)

// Options tunes the size of the summary and key point lists
type Options struct {
	MaxSummarySentences int
	KeyPointsMultiplier float64
}

// DefaultOptions returns the default pipeline options
func DefaultOptions() Options {
	return Options{
		MaxSummarySentences: DefaultSummarySentences,
		KeyPointsMultiplier: DefaultKeyPointsMultiplier,
	}
}

// KeyPointsCount returns how many key points to select for a transcript of
// numSentences sentences. Halves round to even.
func (o Options) KeyPointsCount(numSentences int) int {
	k := int(math.RoundToEven(float64(o.MaxSummarySentences) * o.KeyPointsMultiplier))
	if numSentences < k {
		k = numSentences
	}
	if k < minKeyPoints {
		k = minKeyPoints
	}
	return k
}

// Annotate runs the extractive pipeline over already normalized text.
// It is deterministic and never fails.
func Annotate(cleaned string, opts Options) entities.AnnotationResult {
	result := entities.NewAnnotationResult()

	sentences := SplitSentences(cleaned)
	result.Stats.NumSentences = len(sentences)
	for _, s := range sentences {
		result.Stats.NumWords += len(Tokenize(s.Text))
	}

	freq := BuildFrequencies(sentences)
	scored := ScoreSentences(sentences, freq)

	summary := SelectTopK(sentences, scored, opts.MaxSummarySentences)
	result.Summary = strings.Join(summary, " ")
	result.KeyPoints = SelectTopK(sentences, scored, opts.KeyPointsCount(len(sentences)))

	result.Keywords = ExtractKeywords(cleaned, DefaultMaxKeywords)
	result.Actions = ExtractMatching(sentences, ActionCues, MaxActions)
	result.Decisions = ExtractMatching(sentences, DecisionCues, MaxDecisions)

	n := len(result.Keywords)
	if n > maxTopics {
		n = maxTopics
	}
	result.Topics = append([]string{}, result.Keywords[:n]...)

	return result
}
