// Package metrics counts runner outcomes in a private Prometheus registry.
//
// The CLI is a batch job, so nothing is served over HTTP: the registry is dumped
// in the text exposition format with WriteTextfile, ready for the node_exporter
// textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mstnet/prim_kruskal"
	"github.com/katalvlaran/mstnet/runner"
)

const namespace = "mstnet"

// Recorder implements runner.Observer.
type Recorder struct {
	reg *prometheus.Registry

	graphs       prometheus.Counter
	disconnected prometheus.Counter
	mismatches   prometheus.Counter
	operations   *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	treeEdges    prometheus.Histogram
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		graphs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_processed_total",
			Help:      "Graphs that went through both algorithms",
		}),
		disconnected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_disconnected_total",
			Help:      "Processed graphs whose result is a spanning forest",
		}),
		mismatches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cost_mismatches_total",
			Help:      "Graphs where Prim and Kruskal disagreed on total cost",
		}),
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Abstract operations counted by each algorithm",
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "algorithm_duration_seconds",
			Help:      "Wall time of a single MST computation",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"algorithm"}),
		treeEdges: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tree_edges",
			Help:      "Edges in the selected spanning tree or forest",
			Buckets:   []float64{1, 10, 100, 1000, 10000},
		}),
	}
}

// Observe implements runner.Observer.
func (r *Recorder) Observe(o runner.Outcome) {
	r.graphs.Inc()
	if !o.Connected {
		r.disconnected.Inc()
	}
	if !o.Comparison.CostMatch {
		r.mismatches.Inc()
	}
	r.observeResult(string(prim_kruskal.MethodPrim), o.Prim)
	r.observeResult(string(prim_kruskal.MethodKruskal), o.Kruskal)
	r.treeEdges.Observe(float64(o.Prim.EdgeCount()))
}

func (r *Recorder) observeResult(algorithm string, res prim_kruskal.Result[string]) {
	r.operations.WithLabelValues(algorithm).Add(float64(res.Operations()))
	r.duration.WithLabelValues(algorithm).Observe(res.Elapsed().Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
