package domain

import (
	"errors"
	"fmt"
	"strings"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

// Manifest file names.
const (
	PackageManifest  = "package.json"
	ComposerManifest = "composer.json"
)

// ErrInvalidCatalog is wrapped by Catalog.Validate failures.
var ErrInvalidCatalog = errors.New("invalid check catalog")

// ProbeKind selects which adapter predicate a Probe runs.
type ProbeKind int

const (
	// ProbePath passes when any of Paths exists.
	ProbePath ProbeKind = iota
	// ProbeContains passes when the file at Paths[0] contains Needle.
	ProbeContains
	// ProbeManifestKey passes when Key is a member of one of Sections in Manifest.
	ProbeManifestKey
	// ProbeManifestScript passes when Manifest declares the script Key.
	ProbeManifestScript
	// ProbeUserAsset passes when the skill Key is installed for the user.
	ProbeUserAsset
)

// String returns the probe kind name.
func (k ProbeKind) String() string {
	switch k {
	case ProbePath:
		return "path"
	case ProbeContains:
		return "contains"
	case ProbeManifestKey:
		return "manifest-key"
	case ProbeManifestScript:
		return "manifest-script"
	case ProbeUserAsset:
		return "user-asset"
	default:
		return "unknown"
	}
}

// Probe is a declarative description of one boolean question.
type Probe struct {
	Kind     ProbeKind
	Paths    []string
	Needle   string
	Manifest string
	Key      string
	Sections []string
}

// PathProbe passes when any of the relative paths exists.
func PathProbe(paths ...string) Probe {
	return Probe{Kind: ProbePath, Paths: paths}
}

// ContainsProbe passes when the file at path contains needle.
func ContainsProbe(path, needle string) Probe {
	return Probe{Kind: ProbeContains, Paths: []string{path}, Needle: needle}
}

// ManifestKeyProbe passes when key is declared in any of the manifest sections.
func ManifestKeyProbe(manifest, key string, sections ...string) Probe {
	return Probe{Kind: ProbeManifestKey, Manifest: manifest, Key: key, Sections: sections}
}

// ScriptProbe passes when the manifest declares the named script.
func ScriptProbe(manifest, script string) Probe {
	return Probe{Kind: ProbeManifestScript, Manifest: manifest, Key: script}
}

// SkillProbe passes when the named skill is installed in a user skill directory.
func SkillProbe(name string) Probe {
	return Probe{Kind: ProbeUserAsset, Key: name}
}

// Describe renders the probe target for listings.
func (p Probe) Describe() string {
	switch p.Kind {
	case ProbePath:
		return strings.Join(p.Paths, " | ")
	case ProbeContains:
		return fmt.Sprintf("%s contains %q", strings.Join(p.Paths, ""), p.Needle)
	case ProbeManifestKey:
		return fmt.Sprintf("%s %s in %s", p.Manifest, p.Key, strings.Join(p.Sections, "/"))
	case ProbeManifestScript:
		return fmt.Sprintf("%s scripts.%s", p.Manifest, p.Key)
	case ProbeUserAsset:
		return fmt.Sprintf("skills/%s", p.Key)
	default:
		return ""
	}
}

// Check is a named probe inside a category.
type Check struct {
	Name  string
	Probe Probe
}

// Rule selects how the advisor classifies a category.
type Rule int

const (
	// RuleWarnIfMissing warns when a leaf is missing and stays silent otherwise.
	RuleWarnIfMissing Rule = iota
	// RuleInventory lists missing and present checks on separate lines.
	RuleInventory
	// RuleMissingList lists every missing check, or a single all-present line.
	RuleMissingList
	// RuleMissingOnly lists missing checks and stays silent otherwise.
	RuleMissingOnly
	// RuleStaged is absent when the first check fails, partial when a later
	// one fails and complete when all pass.
	RuleStaged
	// RuleCreate advises creation when missing and nothing when present.
	RuleCreate
	// RuleCreateOrMerge advises creation when missing and a merge when present.
	RuleCreateOrMerge
	// RuleGate is complete only when every gate check passes.
	RuleGate
)

// Messages holds the advice texts of a category. Missing and Present may
// carry one %s verb receiving a comma separated list of check names for the
// list based rules.
type Messages struct {
	Missing string
	Partial string
	Present string
}

// Category groups checks under one snapshot key.
type Category struct {
	Key    string
	Leaf   bool
	Checks []Check
	Rule   Rule
	Gate   []string // check names the RuleGate decision depends on
	Gap    bool     // separate the category's advice from the previous one
	Advice Messages
}

// Catalog is the ordered table of categories. Order drives both the snapshot
// field order and the advice order.
type Catalog []Category

// leaf declares a single-check category keyed and named alike.
func leaf(key string, probe Probe, rule Rule, advice Messages) Category {
	return Category{
		Key:    key,
		Leaf:   true,
		Checks: []Check{{Name: key, Probe: probe}},
		Rule:   rule,
		Advice: advice,
	}
}

func skills(names ...string) []Check {
	checks := make([]Check, 0, len(names))
	for _, name := range names {
		checks = append(checks, Check{Name: name, Probe: SkillProbe(name)})
	}

	return checks
}

var composerSections = []string{"require", "require-dev"}

var packageSections = []string{"devDependencies", "dependencies"}

// DefaultCatalog is the closed detection taxonomy for a WordPress project.
var DefaultCatalog = Catalog{
	leaf("git", PathProbe(".git"), RuleWarnIfMissing, Messages{
		Missing: "No git repo — will run git init",
	}),
	leaf("packageJson", PathProbe(PackageManifest), RuleWarnIfMissing, Messages{
		Missing: "No package.json — will run npm init -y",
	}),
	leaf("composerJson", PathProbe(ComposerManifest), RuleWarnIfMissing, Messages{
		Missing: "No composer.json — will run composer init",
	}),
	{
		Key: "skills",
		Checks: skills(
			"wp-plugin-development",
			"wp-block-development",
			"wordpress-router",
			"wp-performance",
			"wp-wpcli-and-ops",
			"wordpress-pro",
		),
		Rule: RuleInventory,
		Gap:  true,
		Advice: Messages{
			Missing: "Skills to install: %s",
			Present: "Skills already present: %s",
		},
	},
	{
		Key: "composer",
		Checks: []Check{
			{Name: "phpunit", Probe: ManifestKeyProbe(ComposerManifest, "phpunit/phpunit", composerSections...)},
			{Name: "wpcs", Probe: ManifestKeyProbe(ComposerManifest, "wp-coding-standards/wpcs", composerSections...)},
			{Name: "phpcsInstaller", Probe: ManifestKeyProbe(ComposerManifest, "dealerdirect/phpcodesniffer-composer-installer", composerSections...)},
			{Name: "pest", Probe: ManifestKeyProbe(ComposerManifest, "pestphp/pest", composerSections...)},
		},
		Rule: RuleMissingList,
		Gap:  true,
		Advice: Messages{
			Missing: "Composer packages to install: %s",
			Present: "All Composer dev packages present",
		},
	},
	{
		Key: "composerScripts",
		Checks: []Check{
			{Name: "test", Probe: ScriptProbe(ComposerManifest, "test")},
			{Name: "lint", Probe: ScriptProbe(ComposerManifest, "lint")},
		},
		Rule:   RuleMissingOnly,
		Advice: Messages{Missing: "Composer scripts to add: %s"},
	},
	{
		Key: "husky",
		Checks: []Check{
			{Name: "installed", Probe: PathProbe(".husky")},
			{Name: "prePush", Probe: PathProbe(".husky/pre-push")},
		},
		Rule: RuleStaged,
		Gap:  true,
		Advice: Messages{
			Missing: "Husky — will install and configure",
			Partial: "Husky exists but pre-push hook missing — will add",
			Present: "Husky fully configured",
		},
	},
	leaf("editorconfig", PathProbe(".editorconfig"), RuleCreate, Messages{
		Missing: ".editorconfig — will create",
		Present: ".editorconfig exists",
	}),
	leaf("gitignore", PathProbe(".gitignore"), RuleCreateOrMerge, Messages{
		Missing: ".gitignore — will create",
		Present: ".gitignore — will merge missing entries",
	}),
	{
		Key: "vitest",
		Checks: []Check{
			{Name: "config", Probe: PathProbe("vitest.config.js", "vitest.config.ts", "vitest.config.mjs")},
			{Name: "setupFile", Probe: PathProbe("tests/setup.js")},
			{Name: "devDep", Probe: ManifestKeyProbe(PackageManifest, "vitest", packageSections...)},
		},
		Rule: RuleGate,
		Gate: []string{"config", "devDep"},
		Gap:  true,
		Advice: Messages{
			Missing: "Vitest — will install and configure",
			Present: "Vitest already configured",
		},
	},
	{
		Key: "i18n",
		Checks: []Check{
			{Name: "mapJson", Probe: PathProbe("i18n-map.json")},
			{Name: "languagesDir", Probe: PathProbe("languages")},
			{Name: "npmScripts", Probe: ScriptProbe(PackageManifest, "i18n")},
		},
		Rule: RuleGate,
		Gate: []string{"mapJson", "npmScripts"},
		Advice: Messages{
			Missing: "i18n — will scaffold",
			Present: "i18n already configured",
		},
	},
}

// Validate checks the structural invariants the detector and advisor rely on.
func (c Catalog) Validate() error {
	keys := make(map[string]bool, len(c))

	for _, category := range c {
		if category.Key == "" {
			return fmt.Errorf("%w: category without key", ErrInvalidCatalog)
		}

		if keys[category.Key] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, category.Key)
		}

		keys[category.Key] = true

		if err := category.validate(); err != nil {
			return fmt.Errorf("%w: category %q: %w", ErrInvalidCatalog, category.Key, err)
		}
	}

	return nil
}

func (c Category) validate() error {
	if len(c.Checks) == 0 {
		return errors.New("no checks")
	}

	if c.Leaf && len(c.Checks) != 1 {
		return fmt.Errorf("leaf category has %d checks", len(c.Checks))
	}

	names := make(map[string]bool, len(c.Checks))

	for _, check := range c.Checks {
		if check.Name == "" {
			return errors.New("check without name")
		}

		if names[check.Name] {
			return fmt.Errorf("duplicate check %q", check.Name)
		}

		names[check.Name] = true
	}

	for _, name := range c.Gate {
		if !names[name] {
			return fmt.Errorf("gate refers to unknown check %q", name)
		}
	}

	if c.Advice.Missing == "" {
		return errors.New("missing advice text is required")
	}

	switch c.Rule {
	case RuleStaged:
		if c.Advice.Partial == "" || c.Advice.Present == "" {
			return errors.New("staged rule needs partial and present advice")
		}
	case RuleGate:
		if len(c.Gate) == 0 || c.Advice.Present == "" {
			return errors.New("gate rule needs gate checks and present advice")
		}
	case RuleInventory, RuleMissingList, RuleCreate, RuleCreateOrMerge:
		if c.Advice.Present == "" {
			return errors.New("present advice text is required")
		}
	case RuleWarnIfMissing, RuleMissingOnly:
	default:
		return fmt.Errorf("unknown rule %d", c.Rule)
	}

	return nil
}

// Entries flattens the catalog for listings.
func (c Catalog) Entries() []m.CatalogEntry {
	var entries []m.CatalogEntry

	for _, category := range c {
		for _, check := range category.Checks {
			entries = append(entries, m.CatalogEntry{
				Category: category.Key,
				Check:    check.Name,
				Probe:    check.Probe.Kind.String(),
				Target:   check.Probe.Describe(),
			})
		}
	}

	return entries
}
