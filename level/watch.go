package level

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period a file must see before its change is reported.
const debounce = 100 * time.Millisecond

// Watcher reports changes to level files. Paths may name files or
// directories; a directory matches every .yaml or .yml file inside it.
// Files are watched through their parent directory so that editors which
// replace the file on save are still seen. A burst of writes to one file
// is reported once, debounce after the last of them.
type Watcher struct {
	watcher   *fsnotify.Watcher
	files     map[string]struct{} // level files named explicitly
	wholeDirs map[string]struct{} // directories whose every level file matches
	Events    chan string
	Errors    chan error
	closeCh   chan struct{}
	done      chan struct{}
	once      sync.Once
}

// NewWatcher starts watching paths.
func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]struct{})
	wholeDirs := make(map[string]struct{})
	watched := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		dir := abs
		if isLevelFile(abs) {
			files[abs] = struct{}{}
			dir = filepath.Dir(abs)
		} else {
			wholeDirs[abs] = struct{}{}
		}
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
		watched[dir] = struct{}{}
	}

	watcher := &Watcher{
		watcher:   w,
		files:     files,
		wholeDirs: wholeDirs,
		Events:    make(chan string, 16),
		Errors:    make(chan error, 1),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Events and Errors. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	// pending holds the time each changed file goes quiet.
	pending := make(map[string]time.Time)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.match(event.Name) {
				continue
			}
			pending[event.Name] = time.Now().Add(debounce)
			timer.Reset(debounce)
		case <-timer.C:
			if !w.flush(pending, timer) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// flush reports every pending file that has gone quiet, in name order, and
// rearms timer for the rest. It returns false once the watcher is closing.
func (w *Watcher) flush(pending map[string]time.Time, timer *time.Timer) bool {
	now := time.Now()
	var due []string
	var next time.Duration
	for name, quiet := range pending {
		if left := quiet.Sub(now); left > 0 {
			if next == 0 || left < next {
				next = left
			}
			continue
		}
		due = append(due, name)
	}
	sort.Strings(due)
	for _, name := range due {
		delete(pending, name)
		select {
		case w.Events <- name:
		case <-w.closeCh:
			return false
		}
	}
	if next > 0 {
		timer.Reset(next)
	}

	return true
}

func (w *Watcher) match(name string) bool {
	if !isLevelFile(name) {
		return false
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if _, ok := w.files[abs]; ok {
		return true
	}
	_, ok := w.wholeDirs[filepath.Dir(abs)]
	return ok
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
