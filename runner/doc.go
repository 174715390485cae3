// Package runner is the per-graph pipeline behind `mstnet run`.
//
// For every GraphInput it:
//
//  1. Materialises the core.Graph (bad vertex references fail the graph).
//  2. Runs Prim and Kruskal concurrently on the same graph. Both only take the
//     graph's read lock, so no copy is made.
//  3. Compares the two trees and, when enabled, verifies each one.
//  4. Notifies the Observer (metrics) and renders Prim's tree to
//     <output dir>/graph_NN.<ext>.
//
// Run applies Process to a batch with at most Workers graphs in flight, returns
// outcomes in input order and stops at the first error. Cancellation is checked
// between graphs; a single algorithm run is never interrupted.
//
// Logging goes through the logger carried in the context
// (internal/logging.WithLogger).
package runner
