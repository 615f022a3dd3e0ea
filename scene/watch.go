// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"path/filepath"
	"sync"

	"cogentcore.org/meshview/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the files that scene entries were
// opened from. It never touches a scene itself: the goroutine that
// owns the scene receives the changed file names from
// [Watcher.Changed] and passes them to [Scene.ReloadSource].
type Watcher struct {
	fw      *fsnotify.Watcher
	changed chan string
	stop    chan struct{}
	done    chan struct{}

	mu sync.Mutex

	// files maps the absolute path of each watched file
	// to the name it was added with.
	files map[string]string

	// dirs are the watched directories.
	dirs map[string]bool
}

// NewWatcher returns a new watcher that is not watching any file yet.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:      fw,
		changed: make(chan string, 16),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		files:   map[string]string{},
		dirs:    map[string]bool{},
	}
	go w.run()
	return w, nil
}

// Add starts watching the given file. The directory of the file is
// watched, so that files replaced by editors keep being reported.
func (w *Watcher) Add(filename string) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[dir] {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = filename
	return nil
}

// AddScene starts watching the source files of all entries of the scene.
func (w *Watcher) AddScene(sc *Scene) error {
	var errs []error
	for _, e := range sc.entries {
		if e.Source != "" {
			errs = append(errs, w.Add(e.Source))
		}
	}
	return errors.Join(errs...)
}

// Changed returns the channel on which the names of changed files
// are sent, as they were passed to [Watcher.Add]. It is closed
// when the watcher is closed.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Close stops watching. It must be called only once.
func (w *Watcher) Close() error {
	close(w.stop)
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changed)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.mu.Lock()
			name, watched := w.files[filepath.Clean(ev.Name)]
			w.mu.Unlock()
			if !watched {
				continue
			}
			slog.Debug("mesh file changed", "file", name, "op", ev.Op.String())
			select {
			case w.changed <- name:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Error("watching mesh files", "err", err)
		}
	}
}
