// Package framewatch reloads a frame sequence when its files change on disk.
package framewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period after the last change before OnChange
// runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a frame directory and calls OnChange once per burst of
// writes to files with the frame extension.
type Watcher struct {
	Dir      string
	Format   string
	Debounce time.Duration
	Log      zerolog.Logger
	// OnChange receives the base names changed during the burst. It runs on
	// a timer goroutine.
	OnChange func(names []string)

	mu       sync.Mutex
	debounce *time.Timer
	changed  map[string]struct{}
}

// New creates a watcher for dir. Only files ending in "."+format are
// considered.
func New(dir, format string, log zerolog.Logger, onChange func([]string)) *Watcher {
	return &Watcher{
		Dir:      dir,
		Format:   format,
		Debounce: DefaultDebounce,
		Log:      log,
		OnChange: onChange,
	}
}

// PrefixDir returns the directory holding frames named by a path prefix,
// such as "frames/" or "frames/img_".
func PrefixDir(prefix string) string {
	return filepath.Dir(prefix + "0000")
}

// Run watches until ctx is done. It returns an error only if the watch could
// not be established.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("frame watcher: create: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.Dir); err != nil {
		return fmt.Errorf("frame watcher: watch %s: %w", w.Dir, err)
	}
	w.Log.Info().Str("dir", w.Dir).Str("format", w.Format).Msg("watching frame directory")

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.Matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(filepath.Base(event.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Log.Warn().Err(err).Msg("frame watcher error")
		}
	}
}

// Matches reports whether name has the frame extension.
func (w *Watcher) Matches(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return ext != "" && strings.EqualFold(ext, w.Format)
}

func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.changed == nil {
		w.changed = make(map[string]struct{})
	}
	w.changed[name] = struct{}{}

	if w.debounce != nil {
		w.debounce.Stop()
	}
	delay := w.Debounce
	if delay <= 0 {
		delay = DefaultDebounce
	}
	w.debounce = time.AfterFunc(delay, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	names := make([]string, 0, len(w.changed))
	for n := range w.changed {
		names = append(names, n)
	}
	clear(w.changed)
	w.mu.Unlock()

	if len(names) == 0 || w.OnChange == nil {
		return
	}
	w.Log.Info().Int("files", len(names)).Msg("frames changed on disk")
	w.OnChange(names)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
