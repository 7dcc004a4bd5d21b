package names

import (
	"reflect"
	"testing"
)

func TestSingle(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Kofi ne Kwame are going to Accra", []string{"Accra", "Kofi", "Kwame"}},
		{"I met Ama", []string{"Ama"}},
		{"I love good dogs", nil},
		{"The dog barks", nil},
		{"Kofi met Kofi", []string{"Kofi"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := Single(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Single(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMultiWord(t *testing.T) {
	tests := []struct {
		input string
		want  [][]string
	}{
		{"Kofi ne Kwame are going to Accra", [][]string{{"Kofi", "ne", "Kwame"}}},
		{"He visited Bank of Ghana", [][]string{{"Bank", "of", "Ghana"}}},
		{"I met Ama", nil},
		{"no names here", nil},
	}
	for _, tt := range tests {
		got := MultiWord(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("MultiWord(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
