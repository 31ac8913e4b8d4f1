// Package export orchestrates one full run: fetch rows, build the document,
// persist the outputs. Pure single pass, no retries; any failure aborts the
// run and propagates to the caller.
package export

import (
	"context"
	"time"

	"github.com/google/uuid"

	"menuexport/internal/logging"
	"menuexport/internal/menu"
	"menuexport/internal/output"
	"menuexport/internal/sheet"
)

// Options control a single export run
type Options struct {
	// SpreadsheetID addresses the source document
	SpreadsheetID string
	// Tab is the worksheet name holding the menu rows
	Tab string
	// DryRun fetches and builds but skips the writer entirely
	DryRun bool
}

// Result describes what a run produced
type Result struct {
	RunID        string `json:"runId"`
	GeneratedAt  string `json:"generatedAt"`
	Fingerprint  string `json:"fingerprint"`
	Categories   int    `json:"categories"`
	Items        int    `json:"items"`
	Changed      bool   `json:"changed"`
	LatestPath   string `json:"latestPath,omitempty"`
	SnapshotPath string `json:"snapshotPath,omitempty"`
	DurationMs   int64  `json:"durationMs"`
}

// Exporter ties a row source to the output writer
type Exporter struct {
	source sheet.Source
	writer *output.Writer
	logger *logging.Logger
	now    func() time.Time
}

// NewExporter creates an exporter over the given source and writer
func NewExporter(source sheet.Source, writer *output.Writer, logger *logging.Logger) *Exporter {
	return &Exporter{
		source: source,
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the exporter's clock. Tests pin it so generated_at and
// snapshot names are stable.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// Run executes the pipeline once. A single clock reading feeds both the
// document's generated_at and the snapshot filename, so the two artifacts of
// one run can never disagree on their timestamp.
func (e *Exporter) Run(ctx context.Context, opts Options) (*Result, error) {
	began := time.Now()
	runTime := e.now()
	runID := uuid.NewString()

	logger := e.logger.With(map[string]interface{}{
		"run_id":   runID,
		"sheet_id": opts.SpreadsheetID,
		"tab":      opts.Tab,
	})

	rows, err := e.source.Rows(ctx, opts.SpreadsheetID, opts.Tab)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fetched rows", map[string]interface{}{"rows": len(rows)})

	doc, err := menu.BuildDocument(rows, runTime)
	if err != nil {
		return nil, err
	}

	itemCount := 0
	for _, category := range doc.Categories {
		itemCount += len(category.Items)
	}

	result := &Result{
		RunID:       runID,
		GeneratedAt: doc.GeneratedAt,
		Fingerprint: doc.Hash,
		Categories:  len(doc.Categories),
		Items:       itemCount,
	}

	if opts.DryRun {
		logger.Info("Dry run complete", map[string]interface{}{
			"categories":  result.Categories,
			"items":       result.Items,
			"fingerprint": shortHash(doc.Hash),
		})
		result.DurationMs = time.Since(began).Milliseconds()
		return result, nil
	}

	written, err := e.writer.Write(doc, doc.Hash, runTime)
	if err != nil {
		return nil, err
	}

	result.Changed = written.Changed
	result.LatestPath = written.LatestPath
	result.SnapshotPath = written.SnapshotPath

	if written.Changed {
		logger.Info("Wrote outputs", map[string]interface{}{
			"latest":      written.LatestPath,
			"snapshot":    written.SnapshotPath,
			"prior":       written.Prior.String(),
			"fingerprint": shortHash(doc.Hash),
		})
	} else {
		logger.Info("No content change", map[string]interface{}{
			"fingerprint": shortHash(doc.Hash),
		})
	}

	result.DurationMs = time.Since(began).Milliseconds()
	return result, nil
}

// shortHash truncates a fingerprint for log fields
func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
