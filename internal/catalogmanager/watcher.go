package catalogmanager

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher calls reload when documents under a directory change. Bursts of
// events are collapsed into one reload.
type Watcher struct {
	dir      string
	reload   func(context.Context) error
	debounce time.Duration

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	done    chan struct{}

	// mu guards started and stopped and is held for the length of a reload,
	// so no reload runs once Stop has returned.
	mu      sync.Mutex
	started bool
	stopped bool
}

func NewWatcher(dir string, debounce time.Duration, reload func(context.Context) error) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	w := &Watcher{
		dir:      dir,
		reload:   reload,
		debounce: debounce,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	if err := w.addTree(dir); err != nil {
		fw.Close()
		return nil, ErrUnableToLoad.Err(err)
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}

// Start runs the watch loop until Stop is called or ctx is done. Starting
// twice, or after Stop, does nothing.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped {
		return
	}
	w.started = true
	go w.watchLoop(ctx)
	log.Ctx(ctx).Info().Str("dir", w.dir).Msg("watching catalog directory")
}

// Stop ends the watch loop and waits for it. It is safe to call more than
// once and without Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.stopCh)
		if !w.started {
			w.watcher.Close()
			close(w.done)
		}
	}
	w.mu.Unlock()
	<-w.done
}

func (w *Watcher) reloadNow(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || ctx.Err() != nil {
		return
	}
	if err := w.reload(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("catalog reload failed; keeping previous catalogs")
		return
	}
	log.Ctx(ctx).Info().Str("dir", w.dir).Msg("catalogs reloaded")
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ctx, event) {
				continue
			}
			log.Ctx(ctx).Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("catalog file changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() { w.reloadNow(ctx) })

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Ctx(ctx).Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) relevant(ctx context.Context, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if event.Op&fsnotify.Create != 0 {
		// new subdirectories are watched too
		if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("dir", event.Name).Msg("unable to watch directory")
			}
			return true
		}
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if !IsDocumentFile(event.Name) {
		log.Ctx(ctx).Debug().Str("file", event.Name).Msg("ignoring non catalog file")
		return false
	}
	return true
}
