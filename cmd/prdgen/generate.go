// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prdgen/internal/build"
	"github.com/pdiddy/prdgen/internal/history"
	"github.com/pdiddy/prdgen/internal/render"
	"github.com/pdiddy/prdgen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input.txt]",
	Short: "Generate a formatted PDF from a plain-text PRD",
	Long: `Generate reads a plain-text Product Requirements Document, extracts its
title and sixteen numbered sections, and renders a paginated PDF with a
cover page, table of contents, headings, paragraphs, bullet lists, and the
functional-requirements table.

Pass "-" to read the PRD from stdin (requires --output). With --batch, every
.txt file in the given directory is converted, skipping files whose PDF
already exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("output", "", "destination PDF path (default: input name with .pdf)")
	generateCmd.Flags().String("batch", "", "convert every .txt file in this directory")
	generateCmd.Flags().String("history-dir", "history", "directory for the generation history database")
	generateCmd.Flags().Bool("no-history", false, "do not record this run in the history store")

	viper.BindPFlag("history_dir", generateCmd.Flags().Lookup("history-dir"))

	rootCmd.AddCommand(generateCmd)
}

// historyRecorder adapts the history store to the builder's Recorder.
type historyRecorder struct {
	store *history.Store
}

func (h historyRecorder) RecordRun(r build.RunRecord) error {
	return h.store.Record(history.Entry{
		Title:        r.Title,
		Source:       r.Source,
		Output:       r.Output,
		Matched:      r.Matched,
		Placeholders: r.Placeholders,
		Bytes:        r.Bytes,
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := types.GenerationConfig{
		HistoryDir: viper.GetString("history_dir"),
	}
	cfg.OutputPath, _ = cmd.Flags().GetString("output")
	cfg.NoHistory, _ = cmd.Flags().GetBool("no-history")
	batchDir, _ := cmd.Flags().GetString("batch")

	style := types.DefaultStyle()
	builder := build.New(style, render.New(style))

	var rec build.Recorder
	if !cfg.NoHistory {
		store, err := history.Open(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer store.Close()
		rec = historyRecorder{store: store}
	}

	if batchDir != "" {
		result, err := build.GenerateBatch(builder, batchDir, rec, os.Stderr)
		if err != nil {
			return err
		}
		if result.HasFailures() {
			return fmt.Errorf("%d of %d files failed", result.Failed, result.Total())
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("input file required (or use --batch)")
	}
	input := args[0]

	if input == "-" {
		if cfg.OutputPath == "" {
			return fmt.Errorf("--output is required when reading from stdin")
		}
		return generateStdin(builder, rec, cfg.OutputPath)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = strings.TrimSuffix(input, ".txt") + ".pdf"
	}
	return build.GenerateFile(builder, input, cfg.OutputPath, rec, os.Stderr)
}

// generateStdin builds a PDF from text on stdin and writes it to outPath.
func generateStdin(builder *build.Builder, rec build.Recorder, outPath string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	buf, stats, err := builder.Generate(string(data))
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stderr, "generated: %s (%d sections matched, %d placeholders)\n",
		outPath, stats.Matched, stats.Placeholders)

	if rec != nil {
		record := build.RunRecord{
			Title:        stats.Title,
			Source:       "stdin",
			Output:       outPath,
			Matched:      stats.Matched,
			Placeholders: stats.Placeholders,
			Bytes:        buf.Len(),
		}
		if err := rec.RecordRun(record); err != nil {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
		}
	}
	return nil
}
