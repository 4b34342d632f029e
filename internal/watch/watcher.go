// Package watch reports debounced changes to target and configuration files.
package watch

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

// Change is one debounced batch of events.
type Change struct {
	Files  []string // changed target files, sorted
	Config bool     // a configuration file changed
}

type Config struct {
	Files       []string
	ConfigFiles []string
	DebounceDur time.Duration
}

func DefaultConfig(files, configFiles []string) Config {
	return Config{
		Files:       files,
		ConfigFiles: configFiles,
		DebounceDur: 200 * time.Millisecond,
	}
}

// Watcher watches the parent directories of every file and filters events
// down to the files it was given; editors that save through a rename are
// still seen that way.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{}
	configs   map[string]struct{}
	debounce  time.Duration
	onChange  chan Change
	done      chan struct{}
}

func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		files:     toSet(cfg.Files),
		configs:   toSet(cfg.ConfigFiles),
		debounce:  cfg.DebounceDur,
		onChange:  make(chan Change, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching. The returned channel receives one Change per quiet
// period following a burst of relevant events.
func (w *Watcher) Start() (<-chan Change, error) {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for f := range w.configs {
		dirs[filepath.Dir(f)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending = Change{}
		touched = make(map[string]struct{})
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			name := filepath.Clean(event.Name)
			switch {
			case has(w.configs, name):
				pending.Config = true
			case has(w.files, name):
				touched[name] = struct{}{}
			default:
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			for f := range touched {
				pending.Files = append(pending.Files, f)
			}
			slices.Sort(pending.Files)

			select {
			case w.onChange <- pending:
			case <-w.done:
				return
			}

			pending = Change{}
			touched = make(map[string]struct{})
			timer = nil

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Debug("watcher error: %v", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func toSet(paths []string) map[string]struct{} {
	m := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			m[abs] = struct{}{}
		}
	}
	return m
}

func has(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}
