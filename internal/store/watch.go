package store

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pressnav/pressnav/core"
)

// Sender is the subset of tea.Program the watcher needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Watcher invalidates the store when the database file changes on disk,
// e.g. when another pressnav process or a sqlite shell writes to it.
// Events are debounced because sqlite emits bursts per transaction.
type Watcher struct {
	fsw   *fsnotify.Watcher
	store *Store
	path  string
	log   *zap.Logger
	done  chan struct{}
}

func NewWatcher(store *Store, dbPath string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: sqlite journal rotation replaces
	// inodes and a file-level watch goes stale after the first checkpoint.
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:   fsw,
		store: store,
		path:  filepath.Base(dbPath),
		log:   log,
		done:  make(chan struct{}),
	}, nil
}

// Start runs the event loop until Close. Each settled burst invalidates the
// store and nudges the program to refetch.
func (w *Watcher) Start(p Sender) {
	go func() {
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if !w.relevant(ev) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(200 * time.Millisecond)
					fire = timer.C
				} else {
					if !timer.Stop() {
						<-fire
					}
					timer.Reset(200 * time.Millisecond)
				}
			case <-fire:
				timer = nil
				fire = nil
				w.log.Debug("database changed on disk, invalidating store")
				w.store.Invalidate()
				if p != nil {
					p.Send(core.StoreChangedMsg{})
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				w.log.Warn("file watch error", zap.Error(err))
			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	base := filepath.Base(ev.Name)
	if base != w.path && base != w.path+"-wal" && base != w.path+"-journal" {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
