package layout

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{LTR, "LTR"},
		{RTL, "RTL"},
		{Neutral, "Neutral"},
		{Direction(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(tt.dir), got, tt.want)
		}
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want Direction
	}{
		{"empty", "", Neutral},
		{"latin", "hello", LTR},
		{"kanji", "東京", LTR},
		{"hiragana gloss", "とうきょう", LTR},
		{"hebrew", "שלום", RTL},
		{"arabic", "مرحبا", RTL},
		{"digits only", "12345", Neutral},
		{"punctuation only", "!?(),", Neutral},
		{"mostly rtl", "abمرحبا", RTL},
		{"mostly ltr", "hello עם", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.s); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
