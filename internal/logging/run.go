package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// RunIDField is the field every line of a run is tagged with.
const RunIDField = "run_id"

// GenerateRunID returns a new run identifier of the form
// YYYYMMDD_HHMMSS_xxxx, e.g. 20251217_205106_a7b3.
func GenerateRunID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// RunIDFromLine extracts the run id of a log line written in either the
// console (run_id=...) or JSON encoding.
func RunIDFromLine(line string) (string, bool) {
	for _, marker := range []string{RunIDField + "=", `"` + RunIDField + `":"`} {
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		id := line[idx+len(marker):]
		if end := strings.IndexAny(id, "\" \t"); end >= 0 {
			id = id[:end]
		}
		if id != "" {
			return id, true
		}
	}
	return "", false
}
