package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/curator/internal/log"
	"github.com/zjrosen/curator/internal/specs"
	"github.com/zjrosen/curator/internal/watcher"
)

var specsWatchCmd = &cobra.Command{
	Use:   "specs:watch",
	Short: "Watch spec directories and live-reload changed documents",
	Long: `Load the configured spec directories, then watch them for changes.
Changed documents are re-parsed and re-registered in place, preserving
their registry IDs. New documents are registered as they appear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, reader, err := buildManager()
		if err != nil {
			return err
		}

		mgr.SetUpdateHook(func(obj specs.Spec) {
			fmt.Printf("updated %s (id %d)\n", obj.GetHandle(), obj.GetID())
		})

		w, err := watcher.New(watcher.Config{
			Dirs:        cfg.SpecDirs,
			DebounceDur: cfg.Watch.Debounce,
		})
		if err != nil {
			return err
		}
		changes, err := w.Start()
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Printf("watching %v (%d spec(s) registered)\n", cfg.SpecDirs, mgr.NumObjects())
		for {
			select {
			case paths := <-changes:
				reader.Invalidate(paths...)
				for _, path := range paths {
					reloadSpec(mgr, path)
				}
			case <-sig:
				return nil
			}
		}
	},
}

// reloadSpec re-registers a changed document, or registers it fresh if it
// was not previously known.
func reloadSpec(mgr *specs.Manager, path string) {
	if !mgr.HasObject(path) {
		if _, err := mgr.CreateObjectFromFile(path, true); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
			return
		}
		id := mgr.GetObjectIDByHandle(path)
		fmt.Printf("registered %s (id %d)\n", path, id)
		return
	}

	obj, err := mgr.CreateObjectFromFile(path, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
		return
	}
	if _, err := mgr.RegisterObjectAndUpdate(obj); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
		return
	}
	log.Debug(log.CatWatcher, "spec reloaded", "path", path, "id", obj.GetID())
}
