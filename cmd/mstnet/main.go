// Command mstnet generates benchmark graphs, computes their minimum spanning
// trees with Prim and Kruskal, cross-checks the two and writes results,
// metrics and pictures.
//
//	mstnet generate --seed 42 -o input_graphs.json
//	mstnet run -i input_graphs.json -o results.json --render png
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := newApp(os.Stdout, os.Stderr)
	err := a.root().ExecuteContext(ctx)
	stop()
	if err != nil {
		a.logger().Error("mstnet failed", "error", err)
	}
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
