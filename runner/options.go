package runner

import (
	"fmt"

	"github.com/katalvlaran/mstnet/prim_kruskal"
	"github.com/katalvlaran/mstnet/render"
)

// DefaultWorkers bounds Run when WithWorkers is not given.
const DefaultWorkers = 4

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets how many graphs Run processes at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("runner: WithWorkers(%d): need at least 1", n))
	}
	return func(r *Runner) { r.workers = n }
}

// WithVerify turns per-result verification on or off.
func WithVerify(on bool) Option {
	return func(r *Runner) { r.verify = on }
}

// WithRenderer sets the renderer. nil disables rendering.
func WithRenderer(rd render.Renderer) Option {
	return func(r *Runner) { r.renderer = rd }
}

// WithOutputDir sets where rendered files go. Panics on an empty dir.
func WithOutputDir(dir string) Option {
	if dir == "" {
		panic("runner: WithOutputDir: empty dir")
	}
	return func(r *Runner) { r.outputDir = dir }
}

// WithObserver registers o to see every successful Outcome. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("runner: WithObserver(nil)")
	}
	return func(r *Runner) { r.observers = append(r.observers, o) }
}

// WithMSTOptions forwards options to both algorithms (e.g. WithClock in tests).
func WithMSTOptions(opts ...prim_kruskal.Option) Option {
	return func(r *Runner) { r.mstOpts = append(r.mstOpts, opts...) }
}
