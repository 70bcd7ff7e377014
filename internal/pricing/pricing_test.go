package pricing

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"plain amount", "249.99", 249.99, true},
		{"pound sign and thousands separator", "£1,234.56", 1234.56, true},
		{"whitespace and label", "  We pay £80.00  ", 80, true},
		{"integer amount", "£305", 305, true},
		{"no digits at all", "Check back soon", 0, false},
		{"empty text", "", 0, false},
		{"stray punctuation only", "£-.", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
