package theme

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/jbshell/jbshell/internal/config"
	"github.com/jbshell/jbshell/internal/logging"
	"github.com/jbshell/jbshell/internal/models"
)

// Watcher reloads theme.yaml when it changes on disk and delivers the new
// theme on a channel. Editors and config managers replace the file with a
// write-tmp-then-rename dance, so rename events count as writes here, and
// rapid event bursts are debounced before the reload.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	themes    chan *models.Theme
	done      chan struct{}
	log       *logrus.Entry

	debounceMu sync.Mutex
	debounce   *time.Timer
}

const reloadDebounce = 100 * time.Millisecond

// NewWatcher creates a watcher; call Start to begin watching.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		themes:    make(chan *models.Theme, 1),
		done:      make(chan struct{}),
		log:       logging.NewLogger("theme"),
	}, nil
}

// Themes returns the channel carrying reloaded themes.
func (w *Watcher) Themes() <-chan *models.Theme {
	return w.themes
}

// Start watches the config directory. Watching the directory rather than
// the file survives the file being deleted and recreated.
func (w *Watcher) Start() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != config.ThemeFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("theme watcher error")
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(reloadDebounce, func() {
		theme, err := config.LoadTheme()
		if err != nil {
			w.log.WithError(err).Debug("theme reload skipped")
			return
		}
		select {
		case w.themes <- theme:
		case <-w.done:
		}
	})
}
