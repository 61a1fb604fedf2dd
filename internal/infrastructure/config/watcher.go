package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file. A change is read and swapped into
// the snapshot on the watcher goroutine, under the same lock as Load and
// Reload, before callbacks registered with OnConfigChange run. Callbacks
// should hand the event to the UI loop rather than do work there.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		return nil
	}
	// A file rejected by Load is still watched so fixing it takes effect.
	file := m.ConfigFile()
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("nothing to watch: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	// The directory is watched so editors that save by rename keep firing.
	if err := w.Add(filepath.Dir(file)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(file), err)
	}

	m.watcher = w
	go m.watchLoop(w, filepath.Clean(file))
	return nil
}

// Close stops the watcher, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

// OnConfigChange registers a callback function to be called when the
// config file changes on disk.
func (m *Manager) OnConfigChange(callback func(fsnotify.Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) watchLoop(w *fsnotify.Watcher, file string) {
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != file || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			m.handleChange(e)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			m.log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// handleChange re-reads the file and notifies. Callbacks run even when the
// new contents were rejected, so the UI can report it.
func (m *Manager) handleChange(e fsnotify.Event) {
	m.log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	m.mu.Lock()
	err := m.reloadLocked()
	callbacks := make([]func(fsnotify.Event), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	if err != nil {
		m.log.Warn().Err(err).Msg("changed config rejected, keeping previous")
	}
	for _, callback := range callbacks {
		callback(e)
	}
}
