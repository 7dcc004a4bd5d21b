package sentence

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello", []string{"Hello"}},
		{"Hello.", []string{"Hello"}},
		{"Hello. Bye.", []string{"Hello", "Bye"}},
		{"what?!", []string{"what"}},
		{"one... two", []string{"one", "two"}},
		{"", nil},
		{"   ", nil},
		{"...", nil},
	}
	for _, tt := range tests {
		if got := Split(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"Hello", 1},
		{"Hello.", 1},
		{"Hello. Bye", 2},
		{"a. b. c.", 3},
	}
	for _, tt := range tests {
		if got := Count(tt.input); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dogs.", "dogs"},
		{"  how are you?? ", "how are you"},
		{"no punctuation", "no punctuation"},
		{"!?.", ""},
	}
	for _, tt := range tests {
		if got := Strip(tt.input); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
