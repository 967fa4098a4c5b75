package prefabs

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses the double write most editors produce when
// saving a file.
const debounceWindow = 100 * time.Millisecond

// Watcher reports palette file changes so the editor can hot-reload.
// Events carries the changed path. Both channels close after Close,
// once the pump goroutine has drained out.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan string
	Errors chan error

	once     sync.Once
	closeErr error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fsw,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
	}
	go w.run()
	return w, nil
}

// Close stops watching. The pump goroutine closes Events and Errors on
// its way out, so Close never races a pending send.
func (w *Watcher) Close() error {
	w.once.Do(func() { w.closeErr = w.fs.Close() })
	return w.closeErr
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(ev.Name) {
				continue
			}
			now := time.Now()
			if t, seen := last[ev.Name]; seen && now.Sub(t) < debounceWindow {
				continue
			}
			last[ev.Name] = now
			// Any queued event already forces a full palette reload,
			// so dropping on a full buffer loses nothing.
			select {
			case w.Events <- ev.Name:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}
