package catalog

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changes to sprite documents and frame images on disk so the
// catalog can be reloaded. File names arrive on Events; the consumer does the
// reload on its own goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Add starts watching another directory, e.g. a sprite type that appeared
// after a reload. Adding a directory twice is harmless.
func (w *Watcher) Add(dir string) error {
	return w.watcher.Add(dir)
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run reports a file once it has been quiet for the debounce interval, so a
// save made of several writes yields one event after the last write.
func (w *Watcher) run() {
	pending := make(map[string]*time.Timer)
	fired := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isDocFile(event.Name) && !isImageFile(event.Name) {
				continue
			}
			name := event.Name
			if t, ok := pending[name]; ok && t.Stop() {
				t.Reset(debounce)
				continue
			}
			pending[name] = time.AfterFunc(debounce, func() {
				select {
				case fired <- name:
				case <-w.closeCh:
				}
			})
		case name := <-fired:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// WatchDirs lists the directories holding the documents and images of c:
// the list document's directory and one directory per sprite type.
func WatchDirs(root string, c *Catalog) []string {
	dirs := []string{root}
	if c == nil {
		return dirs
	}
	for _, name := range c.Names() {
		dirs = append(dirs, filepath.Join(root, name))
	}
	return dirs
}

func isDocFile(path string) bool {
	return formatOf(filepath.ToSlash(path)) != formatUnknown
}

func isImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp":
		return true
	}
	return false
}
