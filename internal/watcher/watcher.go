package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlenopires/dartls-mcp/pkg/types"

	"github.com/fsnotify/fsnotify"
)

const (
	debounceDelay    = 500 * time.Millisecond
	reanalyzeTimeout = 30 * time.Second
)

// Watcher forwards filesystem changes under the workspace root to the
// analysis server, so declaration searches stay in sync with edits made
// outside the host editor
type Watcher struct {
	client types.Client
	root   string
	fsw    *fsnotify.Watcher
	done   chan struct{}
}

// New creates a watcher for the given workspace root
func New(client types.Client, root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	return &Watcher{
		client: client,
		root:   root,
		fsw:    fsw,
		done:   make(chan struct{}),
	}, nil
}

// Start begins watching the workspace tree
func (w *Watcher) Start() error {
	if err := w.addTree(w.root); err != nil {
		return err
	}

	go w.loop()
	slog.Debug("Workspace watcher started", "root", w.root)
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsw.Close()
}

// addTree registers the directory and all its subdirectories
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDir(d.Name()) && path != root {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// skipDir filters directories the analysis server manages itself
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "build"
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			if !relevant(event.Name) {
				continue
			}
			slog.Debug("Workspace file changed", "file", event.Name, "op", event.Op.String())
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			pending = debounce.C
		case <-pending:
			pending = nil
			w.reanalyze()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("Filesystem watcher error", "error", err)
		}
	}
}

// maybeWatchNewDir adds newly created directories to the watch set
func (w *Watcher) maybeWatchNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skipDir(filepath.Base(path)) {
		return
	}
	if err := w.fsw.Add(path); err == nil {
		slog.Debug("Watching new directory", "path", path)
	}
}

// relevant reports whether a change to the file should trigger reanalysis
func relevant(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".dart") || base == "pubspec.yaml" || base == "pubspec.lock"
}

func (w *Watcher) reanalyze() {
	ctx, cancel := context.WithTimeout(context.Background(), reanalyzeTimeout)
	defer cancel()

	if err := w.client.Reanalyze(ctx); err != nil {
		slog.Warn("Reanalysis request failed", "error", err)
		return
	}
	slog.Debug("Requested workspace reanalysis")
}
