package annotation

import (
	"fmt"
	"reflect"
	"testing"
)

func TestActionCues(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"I will send the deck.", true},
		{"We NEED TO fix the build.", true},
		{"Dana is the owner of onboarding.", true},
		{"Ship it by Friday.", true},
		{"Report due by 12/2024.", true},
		{"Review by 3/14.", true},
		{"Next step is hiring.", true},
		{"TODO: update the wiki.", true},
		{"The willow tree is tall.", false},
		{"Byfriday is not a day.", false},
		{"We shipped the release.", false},
	}
	for _, tt := range tests {
		if got := ActionCues.MatchString(tt.sentence); got != tt.want {
			t.Errorf("ActionCues.MatchString(%q) = %v, want %v", tt.sentence, got, tt.want)
		}
	}
}

func TestDecisionCues(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"We decided to cut scope.", true},
		{"Everyone agreed.", true},
		{"We'll go with vendor B.", true},
		{"Finally we shipped.", true},
		{"The team chose badly.", true},
		{"That option went unchosen.", true},
		{"Let us finalize the plan.", true},
		{"In conclusion, good work.", true},
		{"We reached the semifinal.", false},
		{"Nothing was settled.", false},
	}
	for _, tt := range tests {
		if got := DecisionCues.MatchString(tt.sentence); got != tt.want {
			t.Errorf("DecisionCues.MatchString(%q) = %v, want %v", tt.sentence, got, tt.want)
		}
	}
}

func TestExtractMatching_Cap(t *testing.T) {
	texts := make([]string, 15)
	for i := range texts {
		texts[i] = fmt.Sprintf("Task %d will be done.", i+1)
	}
	got := ExtractMatching(sentencesOf(texts...), ActionCues, MaxActions)
	if !reflect.DeepEqual(got, texts[:MaxActions]) {
		t.Errorf("ExtractMatching() = %q, want first %d", got, MaxActions)
	}
}

func TestExtractMatching_DedupAndOrder(t *testing.T) {
	sentences := sentencesOf(
		"We will ship.",
		"Nothing here.",
		"We will ship.",
		"Alex should review.",
		"Sam will test.",
	)
	got := ExtractMatching(sentences, ActionCues, 2)
	want := []string{"We will ship.", "Alex should review."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractMatching() = %q, want %q", got, want)
	}

	if got := ExtractMatching(sentences, DecisionCues, MaxDecisions); got == nil || len(got) != 0 {
		t.Errorf("ExtractMatching without matches = %#v, want empty slice", got)
	}
}
