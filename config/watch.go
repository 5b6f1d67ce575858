package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reports edits to a tuning file. The directory is watched
// rather than the file so editors that replace on save are still seen.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changed chan struct{}
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// debounce collapses the burst of events a single save produces.
const debounce = 100 * time.Millisecond

func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Changed: make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll reports whether the file changed since the last call without blocking.
func (w *TuningWatcher) Poll() bool {
	select {
	case <-w.Changed:
		return true
	default:
		return false
	}
}

func (w *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < debounce {
				continue
			}
			last = now
			select {
			case w.Changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
