// Package domain holds the check catalog, the detector and the advisor.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"wpprep.dev/pkg/wpprep/internal/adapter"
	"wpprep.dev/pkg/wpprep/internal/controller"
	m "wpprep.dev/pkg/wpprep/internal/model"
)

// DetectArgs holds the arguments of a detection run.
type DetectArgs struct {
	Target   m.Target
	Format   m.Format
	Parallel int
}

// Workflow coordinates detection, advice and output for the CLI commands.
type Workflow interface {
	Detect(ctx context.Context, args DetectArgs) error
	Catalog(ctx context.Context) error
}

type workflow struct {
	adapter.ProjectFSAdapter
	controller.UI
	catalog Catalog
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.ProjectFSAdapter, ui controller.UI, catalog Catalog) Workflow {
	return &workflow{
		ProjectFSAdapter: fsAdapter,
		UI:               ui,
		catalog:          catalog,
	}
}

// Detect runs the catalog once against the target, prints the snapshot and
// then the advisory block.
func (w *workflow) Detect(ctx context.Context, args DetectArgs) error {
	if err := w.catalog.Validate(); err != nil {
		return err
	}

	slog.Info("detecting project state", "root", args.Target.Root, "parallel", args.Parallel)

	state := NewDetector(w.ProjectFSAdapter, w.catalog, args.Parallel).Detect(args.Target)
	advice := Advise(w.catalog, state)

	if err := w.DisplayState(ctx, state, args.Format); err != nil {
		slog.Error("Failed to display state", "error", err)
		return fmt.Errorf("display state: %w", err)
	}

	if err := w.DisplayAdvice(ctx, args.Target.Root, advice); err != nil {
		slog.Error("Failed to display advice", "error", err)
		return fmt.Errorf("display advice: %w", err)
	}

	slog.Info("detection finished", "root", args.Target.Root, "advice", len(advice))

	return nil
}

// Catalog prints the checks the detector runs.
func (w *workflow) Catalog(ctx context.Context) error {
	if err := w.catalog.Validate(); err != nil {
		return err
	}

	if err := w.DisplayCatalog(ctx, w.catalog.Entries()); err != nil {
		return fmt.Errorf("display catalog: %w", err)
	}

	return nil
}
