package domain

import (
	"os"
	"path/filepath"
	"testing"

	"wpprep.dev/pkg/wpprep/internal/adapter"
	m "wpprep.dev/pkg/wpprep/internal/model"
)

var allSkills = []string{
	"wp-plugin-development",
	"wp-block-development",
	"wordpress-router",
	"wp-performance",
	"wp-wpcli-and-ops",
	"wordpress-pro",
}

const completeComposer = `{
  "require": {"pestphp/pest": "^2.0"},
  "require-dev": {
    "phpunit/phpunit": "^10.5",
    "wp-coding-standards/wpcs": "^3.0",
    "dealerdirect/phpcodesniffer-composer-installer": "^1.0"
  },
  "scripts": {"test": "pest", "lint": "phpcs"}
}`

const completePackage = `{
  "scripts": {"i18n": "node scripts/i18n.mjs"},
  "devDependencies": {"vitest": "^2.0.0"}
}`

// newTarget returns an empty project root and home directory.
func newTarget(t *testing.T) m.Target {
	t.Helper()

	return m.Target{Root: m.Path(t.TempDir()), Home: m.Path(t.TempDir())}
}

// completeTarget returns a target where every catalog check passes.
func completeTarget(t *testing.T) m.Target {
	t.Helper()

	target := newTarget(t)
	root := string(target.Root)

	mkdir(t, root, ".git")
	mkdir(t, root, ".husky")
	mkdir(t, root, "languages")
	writeFile(t, root, "package.json", completePackage)
	writeFile(t, root, "composer.json", completeComposer)
	writeFile(t, root, ".husky/pre-push", "npm test\n")
	writeFile(t, root, ".editorconfig", "root = true\n")
	writeFile(t, root, ".gitignore", "vendor/\n")
	writeFile(t, root, "vitest.config.mjs", "export default {}\n")
	writeFile(t, root, "tests/setup.js", "\n")
	writeFile(t, root, "i18n-map.json", "{}\n")

	for i, skill := range allSkills {
		dir := ".copilot"
		if i%2 == 1 {
			dir = ".agents"
		}

		writeFile(t, string(target.Home), filepath.Join(dir, "skills", skill, adapter.SkillMarker), "# skill\n")
	}

	return target
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	mkdir(t, filepath.Dir(path), "")

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mkdir(t *testing.T, root, rel string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(root, rel), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
}

// texts flattens advice to the printed strings.
func texts(advice []m.Advice) []string {
	out := make([]string, 0, len(advice))
	for _, a := range advice {
		out = append(out, a.String())
	}

	return out
}
