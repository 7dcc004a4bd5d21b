package postprocess

import "testing"

func TestSurface(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"me", "dɔ", "papa", "kraman"}, "Me dɔ papa kraman"},
		{[]string{"", "kɔ", " ", "dwam"}, "Kɔ dwam"},
		{[]string{"ɛte", "sɛn"}, "Ɛte sɛn"},
		{[]string{"Kofi", "ne", "Kwame"}, "Kofi ne Kwame"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Surface(tt.tokens); got != tt.want {
			t.Errorf("Surface(%v) = %q, want %q", tt.tokens, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"me ho yɛ", "Me ho yɛ"},
		{"ɛte sɛn", "Ɛte sɛn"},
		{"Already upper", "Already upper"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Me dɔ wo", "Me dɔ wo"},
		{"thinking block", "<think>hmm, Twi word order</think>Me dɔ wo", "Me dɔ wo"},
		{"truncated thinking", "Me dɔ wo <thinking>and then", "Me dɔ wo"},
		{"echo prefix", "Here is the translation: Me dɔ wo", "Me dɔ wo"},
		{"quoted", `"Me dɔ wo"`, "Me dɔ wo"},
		{"single quoted", "'Me dɔ wo'", "Me dɔ wo"},
		{"whitespace", "  Me dɔ wo \n", "Me dɔ wo"},
		{"only thinking", "<think>nothing useful</think>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
