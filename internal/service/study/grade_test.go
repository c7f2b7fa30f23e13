package study

import "testing"

func TestIsAnswerCorrect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		want     bool
	}{
		{name: "exact match", input: "kucing", expected: "kucing", want: true},
		{name: "case insensitive", input: "KuCing", expected: "Kucing", want: true},
		{name: "surrounding whitespace ignored", input: "  kucing  ", expected: "kucing", want: true},
		{name: "wrong answer", input: "anjing", expected: "kucing", want: false},
		{name: "empty input", input: "", expected: "kucing", want: false},
		{name: "whitespace only input", input: "   ", expected: "kucing", want: false},
		{name: "parenthetical stripped", input: "watashi", expected: "Watashi (私)", want: true},
		{name: "full form with parenthetical", input: "watashi (私)", expected: "Watashi (私)", want: true},
		{name: "full-width parenthetical stripped", input: "watashi", expected: "Watashi （私）", want: true},
		{name: "infinitive marker stripped", input: "eat", expected: "To eat", want: true},
		{name: "infinitive full form", input: "to eat", expected: "To eat", want: true},
		{name: "marker stripping not applied to input", input: "to kucing", expected: "kucing", want: false},
		{name: "parenthetical then marker", input: "run", expected: "To run (movement)", want: true},
		{name: "partial answer rejected", input: "kuc", expected: "kucing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsAnswerCorrect(tt.input, tt.expected); got != tt.want {
				t.Errorf("IsAnswerCorrect(%q, %q) = %v, want %v", tt.input, tt.expected, got, tt.want)
			}
		})
	}
}
