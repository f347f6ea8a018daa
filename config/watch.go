// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch loads the document at path and loads it again every time the
// file is written or recreated. Loaded configurations are sent on the
// first channel, load failures on the second; a failed load leaves the
// previous configuration in place. Both channels are closed once ctx is
// done or the watcher fails.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file over path are followed.
func Watch(ctx context.Context, path string) (<-chan *Config, <-chan error, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	configs := make(chan *Config)
	errs := make(chan error)
	go func() {
		defer close(errs)
		defer close(configs)
		defer w.Close()

		load := func() bool {
			cfg, err := Load(path)
			if err != nil {
				select {
				case errs <- err:
					return true
				case <-ctx.Done():
					return false
				}
			}
			select {
			case configs <- cfg:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !load() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != path || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
					continue
				}
				if !load() {
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				select {
				case errs <- fmt.Errorf("config: watch %s: %w", path, err):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return configs, errs, nil
}
