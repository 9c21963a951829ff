package logging

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	runLogPrefix = "run_"
	runLogSuffix = ".log"
)

// NewRunID returns an identifier for one daemon run, e.g. 20251217_205106_a7b3.
func NewRunID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// RunLogFilename is the log file name for a run ID.
func RunLogFilename(runID string) string {
	return runLogPrefix + runID + runLogSuffix
}

// ParseRunLogFilename extracts the run ID from a run log file name.
func ParseRunLogFilename(name string) (string, bool) {
	if !strings.HasPrefix(name, runLogPrefix) || !strings.HasSuffix(name, runLogSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, runLogPrefix), runLogSuffix)
	return id, id != ""
}

// LatestRunLog returns the newest run log in dir. Run IDs sort by start time.
func LatestRunLog(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var ids []string
	for _, e := range entries {
		if id, ok := ParseRunLogFilename(e.Name()); ok && !e.IsDir() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", false
	}
	sort.Strings(ids)
	return filepath.Join(dir, RunLogFilename(ids[len(ids)-1])), true
}
