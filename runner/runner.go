package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstnet/converters"
	"github.com/katalvlaran/mstnet/core"
	"github.com/katalvlaran/mstnet/internal/logging"
	"github.com/katalvlaran/mstnet/prim_kruskal"
	"github.com/katalvlaran/mstnet/render"
)

// ErrVerify wraps a tree that failed prim_kruskal.Verify.
var ErrVerify = errors.New("runner: verification failed")

// Observer receives every successfully processed graph. Implementations must be
// safe for concurrent use: Run calls Observe from several goroutines.
type Observer interface {
	Observe(o Outcome)
}

// Outcome is everything Process learned about one graph.
type Outcome struct {
	ID         int
	Graph      *core.Graph[string]
	Connected  bool
	Prim       prim_kruskal.Result[string]
	Kruskal    prim_kruskal.Result[string]
	Comparison prim_kruskal.Comparison
	// Artifact is the rendered file, empty when rendering is off.
	Artifact string
}

// Record converts o into its JSON result entry.
func (o Outcome) Record() converters.GraphResult {
	return converters.NewGraphResult(o.ID, o.Graph, o.Prim, o.Kruskal)
}

// Runner holds the pipeline configuration. It is immutable after New and safe
// for concurrent use.
type Runner struct {
	workers   int
	verify    bool
	renderer  render.Renderer
	outputDir string
	observers []Observer
	mstOpts   []prim_kruskal.Option
}

// New returns a Runner with DefaultWorkers, verification on, no renderer and
// output dir ".".
func New(opts ...Option) *Runner {
	r := &Runner{workers: DefaultWorkers, verify: true, outputDir: "."}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Process runs the full pipeline for one graph.
func (r *Runner) Process(ctx context.Context, in converters.GraphInput) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	log := logging.FromContext(ctx).With("graph", in.ID)

	g, err := in.Graph()
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{ID: in.ID, Graph: g, Connected: g.IsConnected()}
	log.Debug("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "connected", out.Connected)

	// Both algorithms only read g.
	var eg errgroup.Group
	eg.Go(func() error {
		res, err := prim_kruskal.Prim(g, r.mstOpts...)
		out.Prim = res
		return err
	})
	eg.Go(func() error {
		res, err := prim_kruskal.Kruskal(g, r.mstOpts...)
		out.Kruskal = res
		return err
	})
	if err := eg.Wait(); err != nil {
		return Outcome{}, fmt.Errorf("graph %d: %w", in.ID, err)
	}

	out.Comparison = prim_kruskal.Compare(out.Prim, out.Kruskal)
	if !out.Comparison.CostMatch {
		log.Warn("cost mismatch", "prim", out.Prim.TotalCost(), "kruskal", out.Kruskal.TotalCost())
	}

	if r.verify {
		for _, res := range []prim_kruskal.Result[string]{out.Prim, out.Kruskal} {
			if err := prim_kruskal.Verify(g, res); err != nil {
				return Outcome{}, fmt.Errorf("graph %d: %s: %w: %w", in.ID, res.Algorithm(), ErrVerify, err)
			}
		}
	}

	if r.renderer != nil {
		path, err := r.render(out)
		if err != nil {
			return Outcome{}, err
		}
		out.Artifact = path
		log.Debug("rendered", "file", path)
	}

	for _, o := range r.observers {
		o.Observe(out)
	}

	log.Info("graph processed",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"cost", out.Prim.TotalCost(),
		"cost_match", out.Comparison.CostMatch,
		"prim_ops", out.Prim.Operations(),
		"kruskal_ops", out.Kruskal.Operations(),
	)

	return out, nil
}

// Run processes inputs with at most Workers graphs in flight. Outcomes are in
// input order. The first error cancels the remaining graphs and is returned
// together with a nil slice.
func (r *Runner) Run(ctx context.Context, inputs []converters.GraphInput) ([]Outcome, error) {
	outcomes := make([]Outcome, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i := range inputs {
		i := i
		eg.Go(func() error {
			out, err := r.Process(ctx, inputs[i])
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// render writes Prim's tree for out into the output dir.
func (r *Runner) render(out Outcome) (path string, err error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("graph %d: render: %w", out.ID, err)
	}
	path = filepath.Join(r.outputDir, render.FileName(out.ID, r.renderer.Ext()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("graph %d: render: %w", out.ID, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graph %d: render: %w", out.ID, cerr)
		}
	}()

	scene := render.Scene{ID: out.ID, Graph: out.Graph, Tree: out.Prim.Edges()}
	if err := r.renderer.Render(f, scene); err != nil {
		return "", fmt.Errorf("graph %d: %w", out.ID, err)
	}

	return path, nil
}

// Document collects outcomes into the results file shape.
func Document(runID string, outcomes []Outcome) converters.ResultDocument {
	doc := converters.ResultDocument{RunID: runID, Results: make([]converters.GraphResult, 0, len(outcomes))}
	for _, o := range outcomes {
		doc.Results = append(doc.Results, o.Record())
	}

	return doc
}
