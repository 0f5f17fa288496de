// Package adapter contains the filesystem probes the detector relies on.
package adapter

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

// ScriptsSection is the manifest section holding named scripts.
const ScriptsSection = "scripts"

// SkillMarker is the file whose presence identifies an installed skill.
const SkillMarker = "SKILL.md"

// skillDirs are the per-user skill directories, relative to the home
// directory, in lookup order.
var skillDirs = [][]string{
	{".copilot", "skills"},
	{".agents", "skills"},
}

// ProjectFSAdapter answers yes/no questions about a project directory. Every
// method is total: read failures, permission errors, malformed manifests and
// paths escaping the root all report false.
type ProjectFSAdapter interface {
	// PathExists reports whether any entry (file or directory) exists at rel.
	PathExists(root m.Path, rel string) bool

	// FileContains reports whether the text file at rel contains needle.
	FileContains(root m.Path, rel, needle string) bool

	// ManifestHasKey reports whether key is a direct member of any of the
	// given top-level sections of the JSON manifest at rel.
	ManifestHasKey(root m.Path, manifest, key string, sections ...string) bool

	// ManifestHasScript reports whether the manifest declares the named script.
	ManifestHasScript(root m.Path, manifest, script string) bool

	// UserAssetExists reports whether the named skill is installed under one
	// of the per-user skill directories of home.
	UserAssetExists(home m.Path, asset string) bool
}

// LocalProjectFSAdapter implements ProjectFSAdapter on the local disk.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// PathExists implements ProjectFSAdapter.
func (a *LocalProjectFSAdapter) PathExists(root m.Path, rel string) bool {
	path, ok := resolve(root, rel)
	if !ok {
		return false
	}

	return statExists(path)
}

// FileContains implements ProjectFSAdapter. Binary files never match.
func (a *LocalProjectFSAdapter) FileContains(root m.Path, rel, needle string) bool {
	data, ok := readFile(root, rel)
	if !ok {
		return false
	}

	if bytes.IndexByte(data, 0) >= 0 {
		slog.Debug("skipping binary file", "root", root, "path", rel)
		return false
	}

	return bytes.Contains(data, []byte(needle))
}

// ManifestHasKey implements ProjectFSAdapter.
func (a *LocalProjectFSAdapter) ManifestHasKey(root m.Path, manifest, key string, sections ...string) bool {
	data, ok := readFile(root, manifest)
	if !ok {
		return false
	}

	if !gjson.ValidBytes(data) {
		slog.Debug("manifest is not valid JSON", "root", root, "manifest", manifest)
		return false
	}

	document := gjson.ParseBytes(data)
	if !document.IsObject() {
		return false
	}

	for _, section := range sections {
		if hasMember(document, section, key) {
			return true
		}
	}

	return false
}

// ManifestHasScript implements ProjectFSAdapter.
func (a *LocalProjectFSAdapter) ManifestHasScript(root m.Path, manifest, script string) bool {
	return a.ManifestHasKey(root, manifest, script, ScriptsSection)
}

// UserAssetExists implements ProjectFSAdapter.
func (a *LocalProjectFSAdapter) UserAssetExists(home m.Path, asset string) bool {
	if strings.TrimSpace(string(home)) == "" || !filepath.IsLocal(asset) {
		return false
	}

	for _, dir := range skillDirs {
		elems := append([]string{string(home)}, dir...)
		elems = append(elems, asset, SkillMarker)

		if statExists(filepath.Join(elems...)) {
			return true
		}
	}

	return false
}

// hasMember iterates the section instead of building a gjson path so keys
// containing path syntax ("phpunit/phpunit", dots, wildcards) match literally.
// When the section name is repeated, the last occurrence wins.
func hasMember(document gjson.Result, section, key string) bool {
	var last gjson.Result

	document.ForEach(func(name, value gjson.Result) bool {
		if name.String() == section {
			last = value
		}

		return true
	})

	if !last.IsObject() {
		return false
	}

	found := false

	last.ForEach(func(member, _ gjson.Result) bool {
		if member.String() == key {
			found = true
			return false
		}

		return true
	})

	return found
}

func resolve(root m.Path, rel string) (string, bool) {
	if strings.TrimSpace(string(root)) == "" || !filepath.IsLocal(rel) {
		slog.Debug("path outside project root", "root", root, "path", rel)
		return "", false
	}

	return filepath.Join(string(root), rel), true
}

func readFile(root m.Path, rel string) ([]byte, bool) {
	path, ok := resolve(root, rel)
	if !ok {
		return nil, false
	}

	// #nosec G304 - path is confined to the project root by resolve
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("read failed", "path", path, "error", err)
		return nil, false
	}

	return data, true
}

func statExists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("stat failed", "path", path, "error", err)
		}

		return false
	}

	return true
}
