package builder_test

import (
	"testing"

	"github.com/katalvlaran/mstnet/builder"
	"github.com/stretchr/testify/assert"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"LetterIDFn_first", builder.LetterIDFn, 0, "A", false},
		{"LetterIDFn_Z", builder.LetterIDFn, 25, "Z", false},
		{"LetterIDFn_AA", builder.LetterIDFn, 26, "AA", false},
		{"LetterIDFn_AZ", builder.LetterIDFn, 51, "AZ", false},
		{"LetterIDFn_BA", builder.LetterIDFn, 52, "BA", false},
		{"LetterIDFn_ZZ", builder.LetterIDFn, 701, "ZZ", false},
		{"LetterIDFn_AAA", builder.LetterIDFn, 702, "AAA", false},
		{"LetterIDFn_negative", builder.LetterIDFn, -1, "", true},

		{"SymbolNumber_v", builder.SymbolNumberIDFn("v"), 7, "v7", false},
		{"SymbolNumber_negative", builder.SymbolNumberIDFn("v"), -2, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestLetterIDFn_Unique verifies the first thousand letter IDs are distinct.
func TestLetterIDFn_Unique(t *testing.T) {
	seen := make(map[string]int, 1000)
	for i := 0; i < 1000; i++ {
		id := builder.LetterIDFn(i)
		if prev, dup := seen[id]; dup {
			t.Fatalf("LetterIDFn(%d) == LetterIDFn(%d) == %q", i, prev, id)
		}
		seen[id] = i
	}
}
