package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogRotator is a size-bounded log file writer. When the current file
// would grow past maxSize it is renamed with a timestamp suffix and only
// the newest maxBackups renamed files are kept.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) baseDir/baseName for appending.
func NewLogRotator(baseDir, baseName string, maxSizeMB, maxBackups int) (*LogRotator, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}

	r := &LogRotator{
		baseDir:    baseDir,
		baseName:   baseName,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the file currently written to.
func (r *LogRotator) Path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) open() error {
	logPath := r.Path()

	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.currentSize+int64(len(p)) > r.maxSize && r.currentSize > 0 {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if r.currentFile != nil {
		_ = r.currentFile.Close()
		r.currentFile = nil
	}

	backup := fmt.Sprintf("%s.%s", r.baseName, time.Now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), filepath.Join(r.baseDir, backup)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	r.prune()
	r.currentSize = 0
	return r.open()
}

// prune removes the oldest backups beyond maxBackups.
func (r *LogRotator) prune() {
	if r.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.baseName+".") {
			continue
		}
		backups = append(backups, entry.Name())
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamp suffixes sort lexically in chronological order.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.baseDir, name))
	}
}

// Close closes the current file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
