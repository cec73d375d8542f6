package congress

import "testing"

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"BRK.B", "BRK-B"},
		{"DUK$A", "DUK"},
		{"AAPL", "AAPL"},
		{"BRK-B", "BRK-B"},
		{"PSA$H.X", "PSA"},
		{"BF.B$", "BF-B"},
		{"A.B.C", "A-B-C"},
		{"", ""},
		{"$", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeTicker(tt.raw); got != tt.want {
				t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeTicker_Idempotent(t *testing.T) {
	for _, raw := range []string{"BRK.B", "DUK$A", "AAPL", "A.B.C", "X$Y.Z", "..", "$$", "BRK-B"} {
		once := NormalizeTicker(raw)
		if twice := NormalizeTicker(once); twice != once {
			t.Errorf("NormalizeTicker(NormalizeTicker(%q)) = %q, want %q", raw, twice, once)
		}
	}
}
