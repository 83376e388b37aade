package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/zjrosen/curator/internal/document"
	"github.com/zjrosen/curator/internal/log"
	"github.com/zjrosen/curator/internal/specs"
)

// buildManager constructs the spec registry and loads every spec document
// found under the configured directories.
func buildManager() (*specs.Manager, *document.CachingReader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	reader := document.NewCachingReader(document.NewFileReader(), cfg.Cache.TTL, !cfg.Cache.Enabled)
	mgr := specs.NewManager(reader)

	paths, err := findSpecFiles(cfg.SpecDirs)
	if err != nil {
		return nil, nil, err
	}

	for _, path := range paths {
		if _, err := mgr.CreateObjectFromFile(path, true); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
		}
	}
	log.Info(log.CatCLI, "spec directories loaded", "dirs", cfg.SpecDirs, "registered", mgr.NumObjects())

	if err := applyProtections(mgr); err != nil {
		return nil, nil, err
	}

	return mgr, reader, nil
}

// applyProtections installs the configured default spec and protected
// handles after loading.
func applyProtections(mgr *specs.Manager) error {
	if cfg.DefaultSpec != "" {
		obj, err := mgr.GetObjectCopyByHandle(cfg.DefaultSpec)
		if err != nil {
			return fmt.Errorf("default spec: %w", err)
		}
		mgr.SetDefaultObject(obj)
		if err := mgr.SetUndeletable(cfg.DefaultSpec); err != nil {
			return fmt.Errorf("default spec: %w", err)
		}
	}
	for _, handle := range cfg.Protected.Undeletable {
		if err := mgr.SetUndeletable(handle); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	for _, handle := range cfg.Protected.Locked {
		if err := mgr.SetLock(handle, true); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return nil
}

// findSpecFiles walks the spec directories collecting document paths.
func findSpecFiles(dirs []string) ([]string, error) {
	var paths []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch filepath.Ext(path) {
			case ".yaml", ".yml", ".json":
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
