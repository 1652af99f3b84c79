package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period Watch waits for before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watch reloads path whenever it changes on disk and hands the result to
// fn. The parent directory is watched so that editors replacing the file
// by rename are seen. Bursts of events within debounce collapse into one
// reload. Watcher and reload errors are logged to log (slog.Default when
// nil); reload errors are also passed to fn. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, log *slog.Logger, fn func(*File, error)) error {
	if log == nil {
		log = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config watch %s: %w", path, err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config: watch error", slog.String("path", path), slog.Any("err", err))
		case <-timer.C:
			f, err := Load(abs)
			if err != nil {
				log.Warn("config: reload", slog.String("path", path), slog.Any("err", err))
			}
			fn(f, err)
		}
	}
}
