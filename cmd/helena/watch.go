package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/helena-lang/helena/ast"
)

// debounceInterval swallows the bursts of write events editors emit for a
// single save.
const debounceInterval = 100 * time.Millisecond

// watchAndParse parses filename once, then re-parses on every change until
// the watcher is torn down. Parse failures are reported and watching
// continues.
func watchAndParse(filename, outputFormat string, generator ast.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	// Watch the directory, not the file: editors that replace the file on
	// save would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	report := func() {
		if err := parseFile(filename, outputFormat, generator); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	report()

	var lastChange time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, err := filepath.Abs(event.Name)
			if err != nil || path != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastChange) < debounceInterval {
				continue
			}
			lastChange = time.Now()
			report()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}
