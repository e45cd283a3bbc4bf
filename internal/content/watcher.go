package content

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
)

// ChangeCallback receives the full rescan after pages change.
type ChangeCallback func(*ScanResult) error

// Watcher rescans a docs tree whenever a page changes.
type Watcher struct {
	dir            string
	exts           []string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
	stopped        bool
	wg             sync.WaitGroup
	rescans        sync.WaitGroup // in-flight rescans
}

// NewWatcher watches dir and every directory below it.
func NewWatcher(dir string, exts []string, debounce time.Duration) (*Watcher, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		dir:            dir,
		exts:           exts,
		watcher:        fw,
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}
	if err := w.addTree(dir); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// addTree registers dir and its subdirectories; fsnotify is not recursive.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		return nil
	})
}

// OnChange registers a callback.
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins watching in the background.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()
	log := logger.Named("watcher")

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipDir(info.Name()) {
					if err := w.addTree(event.Name); err != nil {
						log.Warnw("Failed to watch new directory", logger.FieldPath, event.Name, logger.FieldError, err)
					}
					w.scheduleRescan()
					continue
				}
			}

			if !hasExtension(event.Name, w.exts) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			log.Debugw("Page changed", logger.FieldFile, event.Name, "op", event.Op.String())
			w.scheduleRescan()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("Watcher error", logger.FieldError, err)

		case <-w.done:
			return
		}
	}
}

// scheduleRescan debounces bursts of events from editors saving a file.
func (w *Watcher) scheduleRescan() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.rescan)
}

func (w *Watcher) rescan() {
	log := logger.Named("watcher")

	// A timer that fired before Stop may still get here; Stop waits for
	// rescans registered before it set stopped.
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.rescans.Add(1)
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()
	defer w.rescans.Done()

	res, err := Scan(w.dir, w.exts)
	if err != nil {
		log.Errorw("Rescan failed", logger.FieldPath, w.dir, logger.FieldError, err)
		return
	}

	for _, cb := range callbacks {
		if err := cb(res); err != nil {
			log.Warnw("Change callback error", logger.FieldError, err)
		}
	}
}

// Stop stops watching. A pending rescan is cancelled and a running one is
// waited for, so no callback runs after Stop returns.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	w.rescans.Wait()
	return err
}
