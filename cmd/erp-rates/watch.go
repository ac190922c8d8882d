package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/theoremus-urban-solutions/erp-rates/api"
	"github.com/theoremus-urban-solutions/erp-rates/config"
)

// watchFiles reloads store whenever one of the dataset files is replaced.
// Directories are watched rather than files so atomic renames are seen.
func watchFiles(ctx context.Context, store *api.Store, out config.OutputConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	targets := map[string]struct{}{}
	for _, p := range []string{out.FeaturesPath, out.SplitsPath, out.StatusPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return err
		}
		targets[abs] = struct{}{}
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("failed watching %s: %w", p, err)
		}
	}

	go func() {
		defer watcher.Close()
		// Writers touch the files back to back; wait for them to settle.
		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if _, hit := targets[ev.Name]; !hit {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					debounce = time.After(250 * time.Millisecond)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watch error: %v", err)
			case <-debounce:
				debounce = nil
				if err := store.LoadFiles(out.FeaturesPath, out.SplitsPath); err != nil {
					log.Printf("reload failed, keeping previous dataset: %v", err)
					continue
				}
				if out.StatusPath != "" {
					if err := store.LoadStatusFile(out.StatusPath); err != nil {
						log.Printf("status reload failed: %v", err)
					}
				}
				d, _ := store.Get()
				log.Printf("reloaded %d gantries", d.Len())
			}
		}
	}()
	return nil
}
