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

const logFilePerm = 0o600

// RotatingFile is an io.Writer appending to <dir>/<name> and rolling it over
// to a timestamped backup once maxSize bytes would be exceeded.
type RotatingFile struct {
	mu         sync.Mutex
	dir        string
	name       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewRotatingFile opens (or creates) the log file. maxSizeMB <= 0 disables rotation.
func NewRotatingFile(dir, name string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	const logDirPerm = 0o750

	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &RotatingFile{
		dir:        dir,
		name:       name,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *RotatingFile) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *RotatingFile) open() error {
	path := r.Path()
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, fmt.Sprintf("%s.%s", r.name, time.Now().Format("20060102-150405.000")))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	r.prune()
	r.size = 0
	return r.open()
}

// prune keeps the newest maxBackups rotated files.
func (r *RotatingFile) prune() {
	if r.maxBackups <= 0 {
		return
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var backups []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), r.name+".") {
			backups = append(backups, entry.Name())
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamp suffixes sort lexically in creation order.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, name))
	}
}

// Close closes the active file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
