// Package mstnet computes minimum spanning trees of weighted undirected
// transport networks and cross-validates two classic algorithms against each
// other.
//
// What is inside?
//
//	A small batch toolchain built around one question: what is the cheapest set
//	of links that keeps every node reachable?
//		• Graph model: generic, insertion-ordered, parallel edges and loops allowed
//		• Union–find: path compression + union by rank
//		• Prim (lazy priority queue) and Kruskal (sort + union–find)
//		• Results with total cost, operation counts and wall time
//		• Cross-check and independent verification of every tree
//		• Deterministic benchmark suites, JSON I/O, PNG/DOT pictures
//
// Packages:
//
//	core/          — Graph[V], Edge[V], connectivity
//	disjointset/   — DisjointSet[V]
//	prim_kruskal/  — Prim, Kruskal, Result, Compare, CrossCheck, Verify
//	builder/       — graph constructors and the 28-graph Suite
//	converters/    — input and result JSON documents
//	render/        — PNG and Graphviz renderers
//	runner/        — concurrent per-graph pipeline
//	cmd/mstnet/    — the CLI (generate, run, config init, version)
//
// Quick ASCII example:
//
//	    A──1──B
//	    │   ╱ │
//	    4  2  5
//	    │ ╱   │
//	    C──3──D
//
//	Both algorithms pick A-B, B-C, C-D for a total of 6.
//
//	go install github.com/katalvlaran/mstnet/cmd/mstnet@latest
package mstnet
