package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Label thresholds on the VADER compound score
const (
	PositiveThreshold = 0.20
	NegativeThreshold = -0.20
)

// VaderAnalyzer scores transcript tone with the VADER lexicon
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer loads the VADER lexicon
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze averages the compound score of each non-empty sentence
func (v *VaderAnalyzer) Analyze(sentences []string) entities.Tone {
	var (
		sum float64
		n   int
	)
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sum += v.analyzer.PolarityScores(s).Compound
		n++
	}
	if n == 0 {
		return entities.Tone{Score: 0, Label: entities.ToneLabelNeutral}
	}
	score := sum / float64(n)
	return entities.Tone{Score: score, Label: Label(score)}
}

// Label maps a compound score to positive, negative or neutral
func Label(score float64) string {
	switch {
	case score >= PositiveThreshold:
		return entities.ToneLabelPositive
	case score <= NegativeThreshold:
		return entities.ToneLabelNegative
	default:
		return entities.ToneLabelNeutral
	}
}
