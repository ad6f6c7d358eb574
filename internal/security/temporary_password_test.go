package security

import (
	"strings"
	"testing"
)

func TestTemporaryPasswordLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		length  int
		wantLen int
	}{
		{name: "requested length", length: 12, wantLen: 12},
		{name: "short request padded to minimum", length: 3, wantLen: 8},
		{name: "negative request padded to minimum", length: -1, wantLen: 8},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := TemporaryPassword(test.length)
			if err != nil {
				t.Fatalf("TemporaryPassword(%d) returned error: %v", test.length, err)
			}
			if len(got) != test.wantLen {
				t.Fatalf("TemporaryPassword(%d) len = %d, want %d", test.length, len(got), test.wantLen)
			}
			for _, char := range got {
				if !strings.ContainsRune(passwordAlphabet, char) {
					t.Fatalf("TemporaryPassword(%d) produced char %q outside alphabet", test.length, char)
				}
			}
		})
	}
}
