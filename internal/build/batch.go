// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RunRecord describes one completed generation for the history store.
type RunRecord struct {
	Title        string
	Source       string
	Output       string
	Matched      int
	Placeholders int
	Bytes        int
}

// Recorder receives a record of each successful generation. A nil Recorder
// disables recording.
type Recorder interface {
	RecordRun(r RunRecord) error
}

// BatchResult holds the outcome of a batch generation run.
type BatchResult struct {
	Generated int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Generated + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed generation.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// GenerateFile converts one PRD text file into a PDF at outPath, writing a
// status line to w and recording the run when rec is non-nil. Recording
// failures do not fail the generation; they are reported on w.
func GenerateFile(b *Builder, inPath, outPath string, rec Recorder, w io.Writer) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	buf, stats, err := b.Generate(string(data))
	if err != nil {
		return fmt.Errorf("generating %s: %w", filepath.Base(inPath), err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(w, "generated: %s (%d sections matched, %d placeholders)\n",
		filepath.Base(outPath), stats.Matched, stats.Placeholders)

	if rec != nil {
		record := RunRecord{
			Title:        stats.Title,
			Source:       inPath,
			Output:       outPath,
			Matched:      stats.Matched,
			Placeholders: stats.Placeholders,
			Bytes:        buf.Len(),
		}
		if err := rec.RecordRun(record); err != nil {
			fmt.Fprintf(w, "history: %v\n", err)
		}
	}
	return nil
}

// GenerateBatch converts every .txt file in dir, skipping files whose PDF
// already exists, printing per-file status to w and a summary at the end.
func GenerateBatch(b *Builder, dir string, rec Recorder, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var result BatchResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		inPath := filepath.Join(dir, entry.Name())
		outPath := strings.TrimSuffix(inPath, ".txt") + ".pdf"

		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", filepath.Base(outPath))
			result.Skipped++
			continue
		}

		if err := GenerateFile(b, inPath, outPath, rec, w); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", entry.Name(), err)
			result.Failed++
			continue
		}
		result.Generated++
	}

	fmt.Fprintf(w, "\nBatch summary: %d generated, %d skipped, %d failed (total: %d)\n",
		result.Generated, result.Skipped, result.Failed, result.Total())
	return result, nil
}
