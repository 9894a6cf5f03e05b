package nlptour

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/future-architect/nlptour/nlp"
)

// RequiredModels lists the model files the enabled routines read, including
// data files referenced from manifests that can be parsed.
func (t *Tour) RequiredModels() []string {
	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}
	for _, routine := range t.Routines() {
		for _, model := range requiredModels[routine] {
			path := t.ModelPath(model)
			add(path)
			if manifest, err := nlp.LoadManifest(path); err == nil && manifest.DataPath() != "" {
				add(manifest.DataPath())
			}
		}
	}
	sort.Strings(result)
	return result
}

// CheckModels verifies every required model before anything runs. All
// problems are reported together.
func (t *Tour) CheckModels() error {
	errs := &CombinedError{Message: "model check failed"}
	for _, path := range t.RequiredModels() {
		if _, err := os.Stat(path); err != nil {
			errs.append(fmt.Errorf("missing %s", path))
			continue
		}
		if filepath.Ext(path) == ".yaml" {
			manifest, err := nlp.LoadManifest(path)
			errs.appendIfError(err)
			if err == nil {
				errs.appendIfError(checkEngine(manifest))
			}
		}
	}
	return errs.errorOrNil()
}

func checkEngine(manifest *nlp.Manifest) error {
	for _, engine := range nlp.Engines(manifest.Kind) {
		if engine == manifest.Engine {
			return nil
		}
	}
	return fmt.Errorf("%s: %s engine %q is not available: %w", manifest.Path(), manifest.Kind, manifest.Engine, nlp.ErrUnknownEngine)
}
