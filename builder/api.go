// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildInput(id, bopts, cons...). Creates a draft, resolves cfg,
//     runs cons in order, freezes the result. BuildGraph wraps it for core.Graph callers.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstnet/converters"
	"github.com/katalvlaran/mstnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices before the edges that use them.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(d *draft, cfg builderConfig) error

// BuildInput resolves the builder configuration from bopts, applies all constructors
// in order, and returns the result as a wire-ready GraphInput with the given id.
// Any constructor error is wrapped with "BuildInput: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) via %w.
func BuildInput(id int, bopts []BuilderOption, cons ...Constructor) (converters.GraphInput, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return converters.GraphInput{}, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildInput, i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return converters.GraphInput{}, fmt.Errorf("%s: %w", methodBuildInput, err)
		}
	}

	return d.input(id), nil
}

// BuildGraph is BuildInput followed by GraphInput.Graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	gi, err := BuildInput(0, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return gi.Graph()
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except the documented CenterVertexID and grid IDs).
//   - Emit edges in a stable, documented order, weights from cfg.weightFn.
//   - Return only sentinel errors; NEVER panic at runtime.

// SpanningTreePlus builds a random spanning tree over n vertices, then adds unique
// random edges until the graph holds min(targetEdges, n(n-1)/2) edges.
//func SpanningTreePlus(n, targetEdges int) Constructor

// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Star builds a star with center CenterVertexID and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Wheel builds W_n = C_{n-1} + center CenterVertexID (n ≥ 4).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
//func Complete(n int) Constructor

// CompleteBipartite builds simple K_{n1,n2} using cfg.leftPrefix/cfg.rightPrefix.
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse graph (0 ≤ p ≤ 1, rng for 0<p<1).
//func RandomSparse(n int, p float64) Constructor
