package annotation

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Extraction caps
const (
	MaxActions   = 12
	MaxDecisions = 10
)

var actionCuePatterns = []string{
	`\bwill\b`,
	`\bneed to\b`,
	`\bshould\b`,
	`\bassign\b`,
	`\btodo\b`,
	`\bby (?:monday|tuesday|wednesday|thursday|friday|eow|eod|\d{1,2}/(?:\d{1,2}|\d{4}))\b`,
	`\bowner\b`,
	`\baction\b`,
	`\bnext step\b`,
}

// Alternatives without a group bind loosely: `\bchoose|chose|chosen\b` is
// three patterns, only the outer two anchored. Matching relies on that.
var decisionCuePatterns = []string{
	`\bdecided\b`,
	`\bagreed\b`,
	`\bconsensus\b`,
	`\bchoose|chose|chosen\b`,
	`\bconclude|conclusion\b`,
	`\bwe'll go with\b`,
	`\bfinal|finalize|finalised|finalized\b`,
}

var (
	// ActionCues matches sentences that assign work or set a deadline
	ActionCues = compileCues(actionCuePatterns)
	// DecisionCues matches sentences that record an outcome
	DecisionCues = compileCues(decisionCuePatterns)
)

func compileCues(patterns []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + strings.Join(patterns, "|"))
}

// ExtractMatching returns the distinct trimmed sentences matched by cues, in
// order. Scanning stops once maxItems sentences are collected, so later
// matches are never looked at.
func ExtractMatching(sentences []entities.Sentence, cues *regexp.Regexp, maxItems int) []string {
	matches := make([]string, 0)
	if maxItems <= 0 {
		return matches
	}

	seen := make(map[string]struct{})
	for _, s := range sentences {
		if cues.MatchString(s.Text) {
			text := strings.TrimSpace(s.Text)
			if _, ok := seen[text]; !ok {
				seen[text] = struct{}{}
				matches = append(matches, text)
			}
		}
		if len(matches) >= maxItems {
			break
		}
	}
	return matches
}
