package kv

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	debounceDelay = 50 * time.Millisecond
	// selfWriteWindow suppresses watch events caused by our own Set.
	selfWriteWindow = 250 * time.Millisecond
)

// File is a Store persisted as a single JSON object on disk.
// Writes replace the file atomically (temp file + rename).
type File struct {
	path string

	mu        sync.RWMutex
	closed    bool
	lastWrite time.Time
}

// NewFile creates a file store at path. The file is created on first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Get retrieves a value by key.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return "", false, ErrClosed
	}

	data, err := f.load()
	if err != nil {
		return "", false, err
	}
	val, ok := data[key]
	return val, ok, nil
}

// Set stores a value by key.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	data, err := f.load()
	switch {
	case isMalformed(err):
		// Corrupt contents are replaced; other read failures must not wipe the keys.
		data = make(map[string]string)
	case err != nil:
		return err
	}
	data[key] = value

	if err := f.save(data); err != nil {
		return err
	}
	f.lastWrite = time.Now()
	return nil
}

// Close marks the store closed.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Watch reports changes to the backing file made by other processes.
// The channel is closed when ctx is done or the watcher fails.
func (f *File) Watch(ctx context.Context) (<-chan struct{}, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: atomic renames replace the file inode.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	ch := make(chan struct{}, 1)
	go f.watch(ctx, watcher, ch)
	return ch, nil
}

func (f *File) watch(ctx context.Context, watcher *fsnotify.Watcher, ch chan<- struct{}) {
	defer close(ch)
	defer watcher.Close() //nolint:errcheck

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(f.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if f.recentlyWritten() {
				continue
			}
			select {
			case ch <- struct{}{}:
			default:
				// Receiver has not consumed the previous notification yet.
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (f *File) recentlyWritten() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return time.Since(f.lastWrite) < selfWriteWindow
}

// load reads the file. A missing or empty file is an empty store.
func (f *File) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// save writes the file atomically.
func (f *File) save(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
