// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/prdgen/pkg/types"
)

// stubRenderer captures the block sequence and returns a fixed artifact.
type stubRenderer struct {
	blocks []types.Block
	err    error
}

func (s *stubRenderer) Render(blocks []types.Block) (*bytes.Buffer, error) {
	s.blocks = blocks
	if s.err != nil {
		return nil, s.err
	}
	return bytes.NewBufferString("%PDF-stub"), nil
}

// testBuilder returns a Builder with a pinned clock and the given renderer.
func testBuilder(r Renderer) *Builder {
	b := New(types.DefaultStyle(), r)
	b.now = func() time.Time { return time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC) }
	return b
}

func samplePRD() string {
	var sb strings.Builder
	sb.WriteString("Product Requirements Document: Acme Portal\n\n")
	for n := 1; n <= types.SectionCount; n++ {
		fmt.Fprintf(&sb, "%d. %s\nBody of section %d.\n\n", n, types.SectionTitles[n], n)
	}
	return sb.String()
}

func TestGenerate_StoryOrder(t *testing.T) {
	r := &stubRenderer{}
	b := testBuilder(r)

	buf, stats, err := b.Generate(samplePRD())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if buf.String() != "%PDF-stub" {
		t.Errorf("artifact = %q", buf.String())
	}
	if stats.Title != "Acme Portal" {
		t.Errorf("stats.Title = %q", stats.Title)
	}
	if stats.Matched != types.SectionCount || stats.Placeholders != 0 {
		t.Errorf("stats = %+v, want all sections matched", stats)
	}

	blocks := r.blocks

	// Cover: title heading, subtitle, spacer, date paragraph, large spacer.
	if h, ok := blocks[0].(types.Heading); !ok || h.Level != 1 || h.Text != "Product Requirements Document:" {
		t.Errorf("blocks[0] = %#v", blocks[0])
	}
	if h, ok := blocks[1].(types.Heading); !ok || h.Level != 2 || h.Text != "Acme Portal" {
		t.Errorf("blocks[1] = %#v", blocks[1])
	}
	if p, ok := blocks[3].(types.Paragraph); !ok || p.Text != "Generated on: March 05, 2026" {
		t.Errorf("blocks[3] = %#v", blocks[3])
	}

	// Table of contents: heading, spacer, sixteen entries.
	if h, ok := blocks[5].(types.Heading); !ok || h.Text != "Table of Contents" {
		t.Errorf("blocks[5] = %#v", blocks[5])
	}
	tocFirst, ok := blocks[7].(types.Paragraph)
	if !ok || tocFirst.Text != "1. Introduction" || tocFirst.Style != types.StyleTOC {
		t.Errorf("blocks[7] = %#v", blocks[7])
	}

	// Page break after the ToC block run (5 cover + 2 + 16 entries).
	if _, ok := blocks[23].(types.PageBreak); !ok {
		t.Errorf("blocks[23] = %#v, want PageBreak", blocks[23])
	}

	// First section heading follows the page break.
	if h, ok := blocks[24].(types.Heading); !ok || h.Level != 3 || h.Text != "1. Introduction" {
		t.Errorf("blocks[24] = %#v", blocks[24])
	}

	// Each section contributes heading + one paragraph (or table) + spacer.
	var headings, tables int
	for _, blk := range blocks[24:] {
		switch b := blk.(type) {
		case types.Heading:
			headings++
		case types.Table:
			tables++
			if !b.HeaderRow {
				t.Error("requirements table missing header flag")
			}
		}
	}
	if headings != types.SectionCount {
		t.Errorf("section headings = %d, want %d", headings, types.SectionCount)
	}
	if tables != 1 {
		t.Errorf("tables = %d, want exactly 1 (functional requirements)", tables)
	}

	// The story ends with the last section's spacer.
	if _, ok := blocks[len(blocks)-1].(types.Spacer); !ok {
		t.Errorf("last block = %#v, want Spacer", blocks[len(blocks)-1])
	}
}

func TestGenerate_RequirementsSectionBecomesTable(t *testing.T) {
	r := &stubRenderer{}
	b := testBuilder(r)

	text := "4. Functional Requirements\nFR01|Login|High|None\nFR02|Logout|Low|FR01"
	if _, _, err := b.Generate(text); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var table types.Table
	found := false
	for _, blk := range r.blocks {
		if tb, ok := blk.(types.Table); ok {
			table = tb
			found = true
		}
	}
	if !found {
		t.Fatal("no table block in story")
	}
	if len(table.Rows) != 3 {
		t.Fatalf("table rows = %d, want header + 2 data rows", len(table.Rows))
	}
	if table.Rows[1][1] != "Login" || table.Rows[2][3] != "FR01" {
		t.Errorf("table data rows = %#v", table.Rows[1:])
	}
}

func TestGenerate_EmptyInputDegradesToPlaceholders(t *testing.T) {
	r := &stubRenderer{}
	b := testBuilder(r)

	_, stats, err := b.Generate("")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if stats.Title != types.DefaultTitle {
		t.Errorf("stats.Title = %q, want default", stats.Title)
	}
	if stats.Placeholders != types.SectionCount {
		t.Errorf("stats.Placeholders = %d, want %d", stats.Placeholders, types.SectionCount)
	}
}

func TestGenerate_RendererErrorPropagates(t *testing.T) {
	r := &stubRenderer{err: errors.New("out of pages")}
	b := testBuilder(r)

	_, _, err := b.Generate(samplePRD())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "out of pages") {
		t.Errorf("error = %v, want wrapped renderer error", err)
	}
}

// recorderSpy captures run records.
type recorderSpy struct {
	records []RunRecord
	err     error
}

func (r *recorderSpy) RecordRun(rec RunRecord) error {
	r.records = append(r.records, rec)
	return r.err
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "portal.txt")
	outPath := filepath.Join(dir, "portal.pdf")
	if err := os.WriteFile(inPath, []byte(samplePRD()), 0o644); err != nil {
		t.Fatal(err)
	}

	b := testBuilder(&stubRenderer{})
	rec := &recorderSpy{}
	var out bytes.Buffer

	if err := GenerateFile(b, inPath, outPath, rec, &out); err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "%PDF-stub" {
		t.Errorf("output = %q", data)
	}
	if len(rec.records) != 1 {
		t.Fatalf("records = %d, want 1", len(rec.records))
	}
	if rec.records[0].Title != "Acme Portal" || rec.records[0].Bytes != len(data) {
		t.Errorf("record = %+v", rec.records[0])
	}
	if !strings.Contains(out.String(), "generated: portal.pdf") {
		t.Errorf("status output = %q", out.String())
	}
}

func TestGenerateBatch(t *testing.T) {
	dir := t.TempDir()
	writeInput := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeInput("one.txt", samplePRD())
	writeInput("two.txt", "2. Goals and Objectives\nGoal body.")
	writeInput("two.pdf", "pre-existing")
	writeInput("notes.md", "not an input")

	b := testBuilder(&stubRenderer{})
	var out bytes.Buffer

	result, err := GenerateBatch(b, dir, nil, &out)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if result.Generated != 1 || result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("result = %+v", result)
	}
	if result.Total() != 2 {
		t.Errorf("Total() = %d, want 2", result.Total())
	}
	if result.HasFailures() {
		t.Error("HasFailures() = true")
	}
	if !strings.Contains(out.String(), "skipped: two.pdf (already exists)") {
		t.Errorf("status output = %q", out.String())
	}
	if !strings.Contains(out.String(), "Batch summary: 1 generated, 1 skipped, 0 failed") {
		t.Errorf("summary output = %q", out.String())
	}

	// The pre-existing PDF is untouched.
	data, err := os.ReadFile(filepath.Join(dir, "two.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "pre-existing" {
		t.Errorf("two.pdf was overwritten: %q", data)
	}
}
