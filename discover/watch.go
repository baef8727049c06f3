package discover

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultSettle is how long a Watcher waits for udev to finish creating
// nodes and symlinks before reporting a change.
const DefaultSettle = 250 * time.Millisecond

// Watcher reports when device nodes matching its patterns appear or
// disappear.
type Watcher struct {
	fw       *fsnotify.Watcher
	patterns []string
	dirs     map[string]bool
	settle   time.Duration
	log      zerolog.Logger
	changes  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithLogger sets where watch errors are logged.
func WithLogger(log zerolog.Logger) WatchOption {
	return func(w *Watcher) { w.log = log }
}

// NewWatcher watches the directories of patterns plus /dev/input itself.
func NewWatcher(patterns []string, settle time.Duration, opts ...WatchOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := map[string]bool{devInputDir: true}
	for _, p := range patterns {
		dirs[filepath.Dir(p)] = true
	}
	watched := 0
	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			// by-id only exists while a matching device is plugged in.
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		watched++
	}
	if watched == 0 {
		fw.Close()
		return nil, os.ErrNotExist
	}

	w := &Watcher{
		fw:       fw,
		patterns: patterns,
		dirs:     dirs,
		settle:   settle,
		log:      zerolog.Nop(),
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(w)
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes receives a value after matching nodes were created or removed.
// Bursts are coalesced into one notification.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) && w.dirs[ev.Name] {
				// A pattern directory such as by-id appeared with its first device.
				w.fw.Add(ev.Name)
			}
			if !w.relevant(ev.Name) {
				continue
			}
			timer.Reset(w.settle)
		case <-timer.C:
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// An overflow means create or remove events were dropped, so
			// the device set may have changed without notice.
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.Warn().Err(err).Msg("device_watch_overflow")
				timer.Reset(w.settle)
				continue
			}
			w.log.Warn().Err(err).Msg("device_watch_error")
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	for _, p := range w.patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return filepath.Dir(name) == devInputDir && strings.HasPrefix(filepath.Base(name), "event")
}
