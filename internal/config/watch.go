package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change to the file
// before reloading it.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fsw   *fsnotify.Watcher
	path  string
	fn    func(Config, error)
	delay time.Duration

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Watch starts watching path and calls fn with every reloaded config, or with
// the load error. fn runs on the watcher goroutine.
//
// The parent directory is watched rather than the file so that editors which
// save by rename are picked up, and so that a file created after startup is
// noticed. Bursts of events, such as a truncate followed by a write, are
// coalesced into one reload DefaultDebounce after the last of them. The
// watcher stops when ctx is done or Close is called.
func Watch(ctx context.Context, path string, fn func(Config, error)) (*Watcher, error) {
	return WatchDebounced(ctx, path, DefaultDebounce, fn)
}

// WatchDebounced is Watch with an explicit debounce delay. A delay <= 0 uses
// DefaultDebounce.
func WatchDebounced(ctx context.Context, path string, delay time.Duration, fn func(Config, error)) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:   fsw,
		path:  abs,
		fn:    fn,
		delay: delay,
		done:  make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop(ctx)
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				timer.Reset(w.delay)
			}
		case <-timer.C:
			cfg, err := Load(w.path)
			if w.fn != nil {
				w.fn(cfg, err)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.fn != nil {
				w.fn(Config{}, fmt.Errorf("config: watch: %w", err))
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
