package output

import (
	"os"
	"path/filepath"
	"time"

	"menuexport/internal/errors"
	"menuexport/internal/logging"
)

const (
	// LatestFileName is the single mutable artifact reflecting the newest document
	LatestFileName = "latest.json"
	// SnapshotDirName holds the append-only timestamped history
	SnapshotDirName = "snapshots"

	// snapshotTimeLayout yields sortable, second-granularity, filesystem-safe
	// names, e.g. 2024-01-15T143000Z.json
	snapshotTimeLayout = "2006-01-02T150405Z"
)

// Writer persists a document as the latest-state file plus one immutable
// snapshot per content change.
type Writer struct {
	outDir string
	logger *logging.Logger
}

// NewWriter creates a writer rooted at outDir
func NewWriter(outDir string, logger *logging.Logger) *Writer {
	return &Writer{outDir: outDir, logger: logger}
}

// LatestPath returns the location of the latest-state file
func (w *Writer) LatestPath() string {
	return filepath.Join(w.outDir, LatestFileName)
}

// WriteResult reports what a Write call did
type WriteResult struct {
	Changed      bool
	LatestPath   string
	SnapshotPath string
	Prior        PriorState
}

// Write compares fingerprint against the prior latest-state file and, on any
// difference (or absent/malformed prior), writes the latest-state file first
// and then one new snapshot. Changed is reported only after both writes
// succeed. Snapshots are write-once: an existing file with the same
// second-granularity name fails the run rather than being clobbered.
func (w *Writer) Write(doc interface{}, fingerprint string, now time.Time) (*WriteResult, error) {
	snapDir := filepath.Join(w.outDir, SnapshotDirName)
	if err := os.MkdirAll(snapDir, 0o755); err != nil {
		return nil, errors.New(errors.WriteFailed, "cannot create output directories", err)
	}

	latestPath := w.LatestPath()
	state, prior := ReadPriorFingerprint(latestPath)
	w.logger.Debug("Read prior fingerprint", map[string]interface{}{
		"state": state.String(),
		"path":  latestPath,
	})

	if state == PriorPresent && prior == fingerprint {
		return &WriteResult{Changed: false, LatestPath: latestPath, Prior: state}, nil
	}

	data, err := PrettyEncode(doc)
	if err != nil {
		return nil, errors.New(errors.InternalError, "cannot encode document", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(latestPath, data, 0o644); err != nil {
		return nil, errors.New(errors.WriteFailed, "cannot write "+LatestFileName, err)
	}

	snapshotPath := filepath.Join(snapDir, now.UTC().Format(snapshotTimeLayout)+".json")
	f, err := os.OpenFile(snapshotPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, errors.New(errors.WriteFailed, "cannot create snapshot "+snapshotPath, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return nil, errors.New(errors.WriteFailed, "cannot write snapshot "+snapshotPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, errors.New(errors.WriteFailed, "cannot finalize snapshot "+snapshotPath, err)
	}

	return &WriteResult{
		Changed:      true,
		LatestPath:   latestPath,
		SnapshotPath: snapshotPath,
		Prior:        state,
	}, nil
}
