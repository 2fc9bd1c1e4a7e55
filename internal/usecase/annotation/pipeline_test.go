package annotation

import (
	"reflect"
	"testing"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

const budgetMeetingSRT = `1
00:00:01,000 --> 00:00:04,000
Alice: Welcome everyone. Today we review the budget.

2
00:00:04,500 --> 00:00:08,000
Bob: The budget for marketing is too high. [laughs]

3
00:00:08,500 --> 00:00:12,000
Alice: We decided to cut the marketing budget by ten percent.

4
00:00:12,500 --> 00:00:15,000
Bob: I will send the revised budget by Friday.

5
00:00:15,500 --> 00:00:18,000
Alice: Great. Next step is hiring.
`

func TestAnnotate_SRTMeeting(t *testing.T) {
	if got := DetectFormat(budgetMeetingSRT); got != entities.FormatSRT {
		t.Fatalf("DetectFormat() = %q, want srt", got)
	}

	cleaned := Normalize(budgetMeetingSRT)
	wantCleaned := "Alice: Welcome everyone. Today we review the budget.\n" +
		"Bob: The budget for marketing is too high.\n" +
		"Alice: We decided to cut the marketing budget by ten percent.\n" +
		"Bob: I will send the revised budget by Friday.\n" +
		"Alice: Great. Next step is hiring."
	if cleaned != wantCleaned {
		t.Fatalf("Normalize() = %q, want %q", cleaned, wantCleaned)
	}

	result := Annotate(cleaned, Options{MaxSummarySentences: 3, KeyPointsMultiplier: DefaultKeyPointsMultiplier})

	wantSummary := "Bob: The budget for marketing is too high. " +
		"Alice: We decided to cut the marketing budget by ten percent. " +
		"Bob: I will send the revised budget by Friday."
	if result.Summary != wantSummary {
		t.Errorf("Summary = %q, want %q", result.Summary, wantSummary)
	}

	wantKeyPoints := []string{
		"Alice: Welcome everyone.",
		"Today we review the budget.",
		"Bob: The budget for marketing is too high.",
		"Alice: We decided to cut the marketing budget by ten percent.",
		"Bob: I will send the revised budget by Friday.",
	}
	if !reflect.DeepEqual(result.KeyPoints, wantKeyPoints) {
		t.Errorf("KeyPoints = %q, want %q", result.KeyPoints, wantKeyPoints)
	}

	wantKeywords := []string{
		"budget", "alice", "bob", "marketing", "welcome", "everyone",
		"today", "review", "high", "decided", "cut", "ten",
	}
	if !reflect.DeepEqual(result.Keywords, wantKeywords) {
		t.Errorf("Keywords = %q, want %q", result.Keywords, wantKeywords)
	}
	if !reflect.DeepEqual(result.Topics, wantKeywords[:5]) {
		t.Errorf("Topics = %q, want %q", result.Topics, wantKeywords[:5])
	}

	wantActions := []string{"Bob: I will send the revised budget by Friday.", "Next step is hiring."}
	if !reflect.DeepEqual(result.Actions, wantActions) {
		t.Errorf("Actions = %q, want %q", result.Actions, wantActions)
	}
	wantDecisions := []string{"Alice: We decided to cut the marketing budget by ten percent."}
	if !reflect.DeepEqual(result.Decisions, wantDecisions) {
		t.Errorf("Decisions = %q, want %q", result.Decisions, wantDecisions)
	}

	if result.Stats.NumSentences != 7 || result.Stats.NumWords != 41 {
		t.Errorf("Stats = %+v, want {7 41}", result.Stats)
	}
}

func TestAnnotate_Deterministic(t *testing.T) {
	cleaned := Normalize(budgetMeetingSRT)
	first := Annotate(cleaned, DefaultOptions())
	second := Annotate(cleaned, DefaultOptions())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Annotate is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestAnnotate_ZeroSummarySentences(t *testing.T) {
	result := Annotate(Normalize(budgetMeetingSRT), Options{MaxSummarySentences: 0, KeyPointsMultiplier: DefaultKeyPointsMultiplier})
	if result.Summary != "" {
		t.Errorf("Summary = %q, want empty", result.Summary)
	}
	want := []string{
		"Bob: The budget for marketing is too high.",
		"Alice: We decided to cut the marketing budget by ten percent.",
		"Bob: I will send the revised budget by Friday.",
	}
	if !reflect.DeepEqual(result.KeyPoints, want) {
		t.Errorf("KeyPoints = %q, want %q", result.KeyPoints, want)
	}
}

func TestAnnotate_Empty(t *testing.T) {
	result := Annotate("", DefaultOptions())
	if result.Summary != "" {
		t.Errorf("Summary = %q, want empty", result.Summary)
	}
	lists := map[string][]string{
		"key_points": result.KeyPoints,
		"keywords":   result.Keywords,
		"actions":    result.Actions,
		"decisions":  result.Decisions,
		"topics":     result.Topics,
	}
	for name, list := range lists {
		if list == nil || len(list) != 0 {
			t.Errorf("%s = %#v, want empty non-nil slice", name, list)
		}
	}
	if result.Stats.NumSentences != 0 || result.Stats.NumWords != 0 {
		t.Errorf("Stats = %+v, want zero", result.Stats)
	}
}

func TestAnnotate_ListsWithinBounds(t *testing.T) {
	result := Annotate("One short line.", DefaultOptions())
	if len(result.KeyPoints) != 1 {
		t.Errorf("KeyPoints = %q, want the single sentence", result.KeyPoints)
	}
	if result.Summary != "One short line." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if len(result.Topics) > len(result.Keywords) {
		t.Errorf("more topics than keywords: %q vs %q", result.Topics, result.Keywords)
	}
}

func TestOptions_KeyPointsCount(t *testing.T) {
	tests := []struct {
		opts         Options
		numSentences int
		want         int
	}{
		{Options{9, 0.5}, 100, 4},
		{Options{7, 0.5}, 100, 4},
		{Options{11, 0.5}, 100, 6},
		{Options{5, 1.6}, 100, 8},
		{Options{5, 1.6}, 4, 4},
		{Options{5, 1.6}, 2, 3},
		{Options{0, 1.6}, 100, 3},
	}
	for _, tt := range tests {
		if got := tt.opts.KeyPointsCount(tt.numSentences); got != tt.want {
			t.Errorf("%+v.KeyPointsCount(%d) = %d, want %d", tt.opts, tt.numSentences, got, tt.want)
		}
	}
}
