// Package builder provides reusable “functional‐options”‐style building blocks for
// generating MST inputs: random connected graphs, classic topologies and the standard
// benchmark batch.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildInput(id, bopts, cons...):  run constructors, get a converters.GraphInput.
//     – BuildGraph(bopts, cons...):      same, materialised as *core.Graph[string].
//     – Suite(seed) / SuiteFrom(plan, seed): the 28-graph benchmark batch.
//   - Constructors (Constructor closures):
//     – SpanningTreePlus(n, e): random tree plus unique random edges (always connected).
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RandomSparse(n, p): G(n,p), possibly disconnected.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed, WithRand, WithIDScheme, WithWeightFn, WithWeightRange, WithPartitionPrefix.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – LetterIDFn:        spreadsheet columns ("A",…,"Z","AA","AB",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order yield identical graphs,
//     with vertices in first-seen order and edges in emission order.
//   - Composition: constructors share vertices with equal IDs, so Path(4) followed by
//     Cycle(4) overlays the two edge sets on one vertex set.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrBadSize) wrapped with constructor context.
package builder
