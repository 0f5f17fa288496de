package domain

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"wpprep.dev/pkg/wpprep/internal/adapter"
	m "wpprep.dev/pkg/wpprep/internal/model"
)

// Detector runs a catalog against a target and assembles the state snapshot.
type Detector interface {
	Detect(target m.Target) m.State
}

type detector struct {
	adapter.ProjectFSAdapter
	catalog  Catalog
	parallel int
}

// NewDetector creates a Detector. A parallel value above one fans the checks
// out over that many goroutines; the snapshot is identical either way.
func NewDetector(fsAdapter adapter.ProjectFSAdapter, catalog Catalog, parallel int) Detector {
	if parallel < 1 {
		parallel = 1
	}

	return &detector{
		ProjectFSAdapter: fsAdapter,
		catalog:          catalog,
		parallel:         parallel,
	}
}

// Detect runs every check exactly once. It never fails: probes report false
// on any error, so the worst case is an all-false snapshot.
func (d *detector) Detect(target m.Target) m.State {
	results := make([][]m.CheckResult, len(d.catalog))
	for i, category := range d.catalog {
		results[i] = make([]m.CheckResult, len(category.Checks))
	}

	if d.parallel == 1 {
		for i, category := range d.catalog {
			for j, check := range category.Checks {
				results[i][j] = d.run(target, category.Key, check)
			}
		}
	} else {
		var group errgroup.Group
		group.SetLimit(d.parallel)

		for i, category := range d.catalog {
			for j, check := range category.Checks {
				i, j, category, check := i, j, category, check
				group.Go(func() error {
					// Each goroutine owns one pre-allocated slot.
					results[i][j] = d.run(target, category.Key, check)
					return nil
				})
			}
		}

		_ = group.Wait()
	}

	categories := make([]m.CategoryState, 0, len(d.catalog))
	for i, category := range d.catalog {
		categories = append(categories, m.CategoryState{
			Key:    category.Key,
			Leaf:   category.Leaf,
			Checks: results[i],
		})
	}

	return m.NewState(categories)
}

func (d *detector) run(target m.Target, categoryKey string, check Check) m.CheckResult {
	ok := d.evaluate(target, check.Probe)

	slog.Debug("check evaluated",
		"category", categoryKey,
		"check", check.Name,
		"probe", check.Probe.Kind.String(),
		"target", check.Probe.Describe(),
		"ok", ok,
	)

	return m.CheckResult{Name: check.Name, OK: ok}
}

func (d *detector) evaluate(target m.Target, probe Probe) bool {
	switch probe.Kind {
	case ProbePath:
		for _, path := range probe.Paths {
			if d.PathExists(target.Root, path) {
				return true
			}
		}

		return false
	case ProbeContains:
		if len(probe.Paths) == 0 {
			return false
		}

		return d.FileContains(target.Root, probe.Paths[0], probe.Needle)
	case ProbeManifestKey:
		return d.ManifestHasKey(target.Root, probe.Manifest, probe.Key, probe.Sections...)
	case ProbeManifestScript:
		return d.ManifestHasScript(target.Root, probe.Manifest, probe.Key)
	case ProbeUserAsset:
		return d.UserAssetExists(target.Home, probe.Key)
	default:
		slog.Warn("unknown probe kind", "kind", int(probe.Kind))
		return false
	}
}
