package catalog

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii lowercase", "RADWIMPS", "radwimps"},
		{"mixed case", "YoAsObI", "yoasobi"},
		{"japanese passthrough", "ヨルシカ", "ヨルシカ"},
		// が as base kana + combining dakuten composes to the single codepoint.
		{"nfc composition", "が", "が"},
		{"already composed", "が", "が"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_DecomposedEqualsComposed(t *testing.T) {
	if Normalize("バルーン") != Normalize("バルーン") {
		t.Error("decomposed and composed spellings should normalize identically")
	}
}
