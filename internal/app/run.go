package app

import (
	"context"
	"fmt"

	"github.com/vk/tracegraph/internal/ctxlog"
	"github.com/vk/tracegraph/internal/funcspec"
	"github.com/vk/tracegraph/internal/graph"
	"github.com/vk/tracegraph/internal/manifest"
)

// Run executes the main application logic: load every function manifest,
// build each declared input spec into a fresh graph, and print the
// resulting placeholder plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	descriptors, err := manifest.NewLoader().Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load function manifests: %w", err)
	}
	if len(descriptors) == 0 {
		a.logger.Warn("No traced functions declared, nothing to plan.")
		return nil
	}

	a.logger.Info("🚀 Planning placeholders for traced functions.", "count", len(descriptors))
	for _, d := range descriptors {
		if err := a.planFunction(ctx, d); err != nil {
			return fmt.Errorf("failed to plan function %q: %w", d.FunctionName(), err)
		}
	}
	a.logger.Info("🏁 Placeholder planning finished.")

	return nil
}

// planFunction builds the declared input spec of one function into a fresh
// graph and prints the feed nodes it produced.
func (a *App) planFunction(ctx context.Context, d *funcspec.Descriptor) error {
	a.printf("%s\n", d)

	declared := d.InputSpec()
	if declared == nil {
		a.printf("  (no input spec declared; inputs will be derived per call)\n")
		return nil
	}

	g := graph.New()
	if _, err := d.BuildInputs(ctx, declared, g); err != nil {
		return err
	}

	for _, node := range g.Feeds() {
		a.printf("  %s\n", node)
	}
	return nil
}
