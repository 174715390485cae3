// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// suite.go — the standard benchmark batch.
//
// The batch spans four size classes so the operation counts of Prim and Kruskal
// can be compared as graphs grow:
//   • small:  ids 1..5,   V ∈ {4,4,5,5,6}, E targets {5,10,15,20,25}
//   • medium: ids 6..15,  V = 10+i, E = 15+4i
//   • large:  ids 16..25, V = 20+i, E = 30+5i
//   • extra:  ids 26..28, (30,60), (40,90), (50,120)
// Targets above n(n-1)/2 are clamped by SpanningTreePlus.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstnet/converters"
)

// Suite weights are drawn from [SuiteMinWeight, SuiteMaxWeight].
const (
	SuiteMinWeight int64 = 1
	SuiteMaxWeight int64 = 50
)

// SuiteEntry is one planned graph of the standard batch.
type SuiteEntry struct {
	ID          int
	Vertices    int
	TargetEdges int
}

// SuitePlan returns the 28 entries of the standard batch in id order.
func SuitePlan() []SuiteEntry {
	plan := make([]SuiteEntry, 0, 28)
	add := func(v, e int) {
		plan = append(plan, SuiteEntry{ID: len(plan) + 1, Vertices: v, TargetEdges: e})
	}

	smallV := []int{4, 4, 5, 5, 6}
	smallE := []int{5, 10, 15, 20, 25}
	for i := range smallV {
		add(smallV[i], smallE[i])
	}
	for i := 0; i < 10; i++ {
		add(10+i, 15+4*i)
	}
	for i := 0; i < 10; i++ {
		add(20+i, 30+5*i)
	}
	add(30, 60)
	add(40, 90)
	add(50, 120)

	return plan
}

// Suite generates the standard batch. One RNG seeded with seed is shared by every
// graph in plan order, so the whole batch is reproducible from a single seed.
// Vertices are labelled A..Z, AA, AB, ...; weights are uniform in [1, 50].
func Suite(seed int64) ([]converters.GraphInput, error) {
	return SuiteFrom(SuitePlan(), seed)
}

// SuiteFrom generates graphs for an arbitrary plan with the Suite conventions.
func SuiteFrom(plan []SuiteEntry, seed int64) ([]converters.GraphInput, error) {
	rng := rand.New(rand.NewSource(seed))
	opts := []BuilderOption{
		WithRand(rng),
		WithLetterIDs(),
		WithWeightRange(SuiteMinWeight, SuiteMaxWeight),
	}

	out := make([]converters.GraphInput, 0, len(plan))
	for _, e := range plan {
		gi, err := BuildInput(e.ID, opts, SpanningTreePlus(e.Vertices, e.TargetEdges))
		if err != nil {
			return nil, fmt.Errorf("Suite: graph %d: %w", e.ID, err)
		}
		out = append(out, gi)
	}

	return out, nil
}
