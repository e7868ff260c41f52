package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Street Food", "street-food"},
		{"accents", "Côte d'Azur Guide", "cote-d-azur-guide"},
		{"punctuation", "  Bangkok: 3 Days (Budget)!  ", "bangkok-3-days-budget"},
		{"already slug", "chiang-mai", "chiang-mai"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	long := strings.Repeat("island hopping ", 20)
	got := Make(long)

	if len(got) > MaxLength {
		t.Errorf("expected slug of at most %d bytes, got %d", MaxLength, len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("slug should not end with a hyphen: %q", got)
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Évasion À Phuket"); got != "evasion a phuket" {
		t.Errorf("unexpected fold: %q", got)
	}
}

func TestFoldKeepsThaiMarks(t *testing.T) {
	// เต่า carries the tone mark U+0E48, น้ำ carries U+0E49.
	in := "เกาะเต่า น้ำตก"
	if got := Fold(in); got != in {
		t.Errorf("Fold(%q) = %q, want unchanged", in, got)
	}
}

func TestMakeThai(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"เกาะเต่า ดำน้ำ", "เกาะเต่า-ดำน้ำ"},
		{"Koh Tao: เกาะเต่า!", "koh-tao-เกาะเต่า"},
		{"ที่พักราคาถูก", "ที่พักราคาถูก"},
	}

	for _, tt := range tests {
		if got := Make(tt.input); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFoldDecomposedLatin(t *testing.T) {
	if got := Fold("Cafe\u0301 q\u0303"); got != "cafe q" {
		t.Errorf("unexpected fold: %q", got)
	}
}
