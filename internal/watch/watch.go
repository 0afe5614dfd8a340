// Package watch reloads a settings store when its file changes on disk.
//
// All reloads and callbacks run on the goroutine that called Run, so the
// store is never touched concurrently as long as the caller leaves it alone
// while Run is active.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	xlog "catconf/internal/log"
	"catconf/internal/store"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces bursts of writes (editors often write twice).
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a store after its file changes.
type Watcher struct {
	store    *store.Store
	debounce time.Duration
	onReload func(*store.Store, error)
	logger   zerolog.Logger
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits after the last change.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// OnReload registers fn to run after every reload attempt.
func OnReload(fn func(*store.Store, error)) Option {
	return func(w *Watcher) { w.onReload = fn }
}

// WithLogger replaces the default component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a Watcher for s.
func New(s *store.Store, opts ...Option) *Watcher {
	w := &Watcher{
		store:    s,
		debounce: DefaultDebounce,
		logger:   xlog.WithComponent("watch"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches the store's file until ctx is done. It returns nil on
// cancellation and an error if the watch could not be established.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors and Save may replace the file, which
	// drops a watch held on the file itself.
	path := filepath.Clean(w.store.Path())
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w.logger.Info().
		Str("event", "watch.started").
		Str("path", path).
		Msg("watching settings file for changes")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("event", "watch.stopped").Msg("settings watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug().
				Str("event", "watch.file_changed").
				Str("op", event.Op.String()).
				Msg("settings file changed")
			timer.Reset(w.debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().
				Err(err).
				Str("event", "watch.error").
				Msg("settings watcher error")
		}
	}
}

func (w *Watcher) reload() {
	err := w.store.Reload()
	if err != nil {
		w.logger.Error().
			Err(err).
			Str("event", "watch.reload_failed").
			Msg("automatic reload failed")
	} else {
		w.logger.Info().
			Str("event", "watch.reloaded").
			Int("settings", w.store.Len()).
			Msg("settings reloaded")
	}
	if w.onReload != nil {
		w.onReload(w.store, err)
	}
}
