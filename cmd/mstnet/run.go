package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstnet/converters"
	"github.com/katalvlaran/mstnet/internal/config"
	"github.com/katalvlaran/mstnet/internal/logging"
	"github.com/katalvlaran/mstnet/internal/metrics"
	"github.com/katalvlaran/mstnet/render"
	"github.com/katalvlaran/mstnet/runner"
)

type runFlags struct {
	input, output, outputDir, render, metricsFile string
	workers                                       int
	verify, print                                 bool
}

func (a *app) runCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute Prim and Kruskal trees for every graph in an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := a.runConfig(cmd, f)
			if err != nil {
				return err
			}
			return a.run(cmd, rc, f.print)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "input graphs file")
	fl.StringVarP(&f.output, "output", "o", "", "results file to write")
	fl.StringVar(&f.outputDir, "output-dir", "", "directory for rendered graphs")
	fl.StringVar(&f.render, "render", "", "png, dot or none")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus text metrics here")
	fl.IntVarP(&f.workers, "workers", "w", 0, "graphs processed in parallel")
	fl.BoolVar(&f.verify, "verify", true, "verify every tree (acyclic, spanning, cost)")
	fl.BoolVar(&f.print, "print", false, "print both results for every graph")

	return cmd
}

// runConfig overlays changed flags on the loaded config and revalidates.
func (a *app) runConfig(cmd *cobra.Command, f runFlags) (config.RunConfig, error) {
	cfg := a.cfg
	rc := &cfg.Run
	changed := cmd.Flags().Changed
	if changed("input") {
		rc.Input = f.input
	}
	if changed("output") {
		rc.Output = f.output
	}
	if changed("output-dir") {
		rc.OutputDir = f.outputDir
	}
	if changed("render") {
		rc.Render = f.render
	}
	if changed("metrics-file") {
		rc.MetricsFile = f.metricsFile
	}
	if changed("workers") {
		rc.Workers = f.workers
	}
	if changed("verify") {
		rc.Verify = f.verify
	}
	if err := cfg.Validate(); err != nil {
		return config.RunConfig{}, err
	}

	return cfg.Run, nil
}

func (a *app) run(cmd *cobra.Command, rc config.RunConfig, verbose bool) error {
	ctx := cmd.Context()
	runID := uuid.NewString()
	log := logging.FromContext(ctx).With("run_id", runID)
	ctx = logging.WithLogger(ctx, log)

	inputs, err := converters.ReadInputsFile(rc.Input)
	if err != nil {
		return err
	}
	rd, err := render.New(rc.Render, render.WithSize(rc.Width, rc.Height))
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	opts := []runner.Option{
		runner.WithWorkers(rc.Workers),
		runner.WithVerify(rc.Verify),
		runner.WithRenderer(rd),
		runner.WithObserver(rec),
	}
	if rc.OutputDir != "" {
		opts = append(opts, runner.WithOutputDir(rc.OutputDir))
	}

	log.Info("run started", "input", rc.Input, "graphs", len(inputs), "workers", rc.Workers, "render", rc.Render)
	start := time.Now()
	outs, err := runner.New(opts...).Run(ctx, inputs)
	if err != nil {
		return err
	}
	took := time.Since(start)

	if err := converters.WriteResultsFile(rc.Output, runner.Document(runID, outs)); err != nil {
		return err
	}
	if rc.MetricsFile != "" {
		if err := rec.WriteTextfile(rc.MetricsFile); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	w := cmd.OutOrStdout()
	if verbose {
		printOutcomes(w, outs)
	}
	printSummary(w, runID, rc, outs, took)
	log.Info("run finished", "graphs", len(outs), "took", took)

	return nil
}

// printOutcomes mirrors the per-graph console report: stats, both results and
// the cost check.
func printOutcomes(w io.Writer, outs []runner.Outcome) {
	for _, o := range outs {
		fmt.Fprintf(w, "Graph #%d\n  Vertices: %d\n  Edges: %d\n  Connected: %t\n",
			o.ID, o.Graph.VertexCount(), o.Graph.EdgeCount(), o.Connected)
		fmt.Fprint(w, o.Prim.String())
		fmt.Fprint(w, o.Kruskal.String())
		mark := "✓"
		if !o.Comparison.CostMatch {
			mark = "✗"
		}
		fmt.Fprintf(w, "  Cost Match: %s\n\n", mark)
	}
}

func printSummary(w io.Writer, runID string, rc config.RunConfig, outs []runner.Outcome, took time.Duration) {
	var primOps, kruskalOps int64
	var connected, mismatches int
	for _, o := range outs {
		primOps += o.Prim.Operations()
		kruskalOps += o.Kruskal.Operations()
		if o.Connected {
			connected++
		}
		if !o.Comparison.CostMatch {
			mismatches++
		}
	}

	fmt.Fprintf(w, "Run %s\n", runID)
	fmt.Fprintf(w, "  Graphs:        %d (%d connected, %d cost mismatches)\n", len(outs), connected, mismatches)
	fmt.Fprintf(w, "  Prim ops:      %s\n", humanize.Comma(primOps))
	fmt.Fprintf(w, "  Kruskal ops:   %s\n", humanize.Comma(kruskalOps))
	fmt.Fprintf(w, "  Wall time:     %s\n", took.Round(time.Microsecond))
	if fi, err := os.Stat(rc.Output); err == nil {
		fmt.Fprintf(w, "  Results:       %s (%s)\n", rc.Output, humanize.Bytes(uint64(fi.Size())))
	}
	if rc.Render != "" && rc.Render != render.FormatNone {
		fmt.Fprintf(w, "  Pictures:      %s/\n", rc.OutputDir)
	}
	if rc.MetricsFile != "" {
		fmt.Fprintf(w, "  Metrics:       %s\n", rc.MetricsFile)
	}
}
