package validator

import "testing"

type sample struct {
	Transcript string `validate:"notblank"`
	Length     string `validate:"summary_length"`
	Sentences  *int   `validate:"omitempty,min=0,max=50"`
}

func intPtr(v int) *int { return &v }

func TestCustomValidator(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{Transcript: "hello", Length: "short"}, false},
		{"empty length", sample{Transcript: "hello"}, false},
		{"mixed case length", sample{Transcript: "hello", Length: "Long"}, false},
		{"blank transcript", sample{Transcript: " \n\t"}, true},
		{"unknown length", sample{Transcript: "hello", Length: "tiny"}, true},
		{"sentences in range", sample{Transcript: "hello", Sentences: intPtr(0)}, false},
		{"sentences too large", sample{Transcript: "hello", Sentences: intPtr(51)}, true},
		{"negative sentences", sample{Transcript: "hello", Sentences: intPtr(-1)}, true},
	}

	cv := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
