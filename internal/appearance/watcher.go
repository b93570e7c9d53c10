package appearance

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads the appearance file when it changes on disk.
type Watcher struct {
	path     string
	logger   *slog.Logger
	onChange func(Appearance)

	fsw    *fsnotify.Watcher
	doneCh chan struct{}
}

// NewWatcher creates a watcher for the appearance file at path. The callback
// receives the freshly loaded appearance; it is invoked from the watcher
// goroutine, so UI callers must marshal back to the UI thread themselves.
func NewWatcher(path string, logger *slog.Logger, onChange func(Appearance)) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
	}
}

// Start begins watching. Editors typically replace the file via rename, so
// the containing directory is watched and events filtered by name.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.doneCh = make(chan struct{})

	go w.run()
	return nil
}

// Stop ends watching and waits for the watcher goroutine to exit.
func (w *Watcher) Stop() {
	if w.fsw == nil {
		return
	}
	w.fsw.Close()
	<-w.doneCh
	w.fsw = nil
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			a, err := Load(w.path)
			if err != nil {
				w.logger.Warn("appearance reload failed, keeping defaults", "path", w.path, "error", err)
			} else {
				w.logger.Info("appearance reloaded", "path", w.path)
			}
			if w.onChange != nil {
				w.onChange(a)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("appearance watcher error", "error", err)
		}
	}
}
