package prefabs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileKind says which part of the game a changed file feeds.
type FileKind string

const (
	FileUnknown FileKind = ""
	FileSpec    FileKind = "spec"
	FileScript  FileKind = "script"
	FileLevel   FileKind = "level"
)

var kindsByExt = map[string]FileKind{
	".yaml":  FileSpec,
	".yml":   FileSpec,
	".tengo": FileScript,
	".lvl":   FileLevel,
}

// Classify names the kind of file a watcher event refers to.
func Classify(path string) FileKind {
	return kindsByExt[strings.ToLower(filepath.Ext(path))]
}

const debounce = 100 * time.Millisecond

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher reports changed spec, script and level files. Editors tend to
// write a file several times per save, so repeats of one path within
// debounce are dropped.
type Watcher struct {
	fs *fsnotify.Watcher

	// Events carries changed paths. It is closed after Close.
	Events chan string
	// Errors carries watch errors; errors are dropped while one is pending.
	Errors chan error

	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewWatcher watches every dir (not recursively).
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: new watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.stopped
	})
	return err
}

// Poll returns the next changed path without blocking.
func (w *Watcher) Poll() (string, bool) {
	if w == nil {
		return "", false
	}
	select {
	case name, ok := <-w.Events:
		return name, ok
	default:
		return "", false
	}
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer close(w.Errors)
	defer close(w.Events)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&changeOps == 0 {
				continue
			}
			if Classify(ev.Name) == FileUnknown {
				continue
			}
			now := time.Now()
			if now.Sub(seen[ev.Name]) < debounce {
				continue
			}
			seen[ev.Name] = now

			select {
			case w.Events <- ev.Name:
			case <-w.stop:
				return
			}
		}
	}
}
