// Package converters provides two-way adapters between core.Graph / prim_kruskal.Result
// and the JSON documents exchanged with the outside world:
//
//   - the input document, a batch of graphs:
//     {"graphs":[{"id":1,"nodes":["A","B"],"edges":[{"from":"A","to":"B","weight":3}]}]}
//   - the results document, one record per graph with both algorithms side by side:
//     {"run_id":"...","results":[{"graph_id":1,"input_stats":{"vertices":2,"edges":1},
//     "connected":true,"cost_match":true,"prim":{...},"kruskal":{...}}]}
//
// Each algorithm block carries mst_edges, total_cost, operations_count and
// execution_time_ms (milliseconds rounded to two decimals).
//
// Encoding uses github.com/goccy/go-json, a drop-in for encoding/json. Decoding is strict:
// unknown fields and a missing top-level array are reported as ErrMalformedDocument.
package converters
