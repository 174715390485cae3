// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstnet/builder"
	"github.com/stretchr/testify/assert"
)

// TestWeightFnConstructors verifies that constructors and options panic on
// meaningless parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.WithWeightRange(5, 4) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.NotPanics(t, func() { builder.ConstantWeightFn(-3) })
}

// TestWeightFnValues checks ranges, degenerate intervals and the nil-rng fallback.
func TestWeightFnValues(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(-3), builder.ConstantWeightFn(-3)(rng))
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rng))
	assert.Equal(t, int64(1), builder.UniformWeightFn(1, 50)(nil))

	uni := builder.UniformWeightFn(1, 50)
	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(50))
		seenMin = seenMin || w == 1
		seenMax = seenMax || w == 50
	}
	assert.True(t, seenMin && seenMax, "both bounds are inclusive")
}
