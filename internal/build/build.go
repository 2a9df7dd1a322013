// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build assembles the ordered block sequence ("story") for a PRD
// document and drives the renderer.
package build

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pdiddy/prdgen/internal/extract"
	"github.com/pdiddy/prdgen/internal/format"
	"github.com/pdiddy/prdgen/pkg/types"
)

// requirementsSection is the ordinal of the Functional Requirements section,
// which is rendered as a table rather than prose.
const requirementsSection = 4

// Renderer lays out a finished block sequence into a paginated artifact.
// The gofpdf implementation lives in internal/render; tests supply a stub.
type Renderer interface {
	Render(blocks []types.Block) (*bytes.Buffer, error)
}

// Builder assembles one document per Generate call. The style value is fixed
// at construction and never mutated. A Builder is not safe for concurrent
// generations.
type Builder struct {
	style    types.StyleConfig
	renderer Renderer

	// now is the build clock; tests pin it for a stable cover date.
	now func() time.Time
}

// New returns a Builder using the given style and renderer.
func New(style types.StyleConfig, r Renderer) *Builder {
	return &Builder{style: style, renderer: r, now: time.Now}
}

// Stats reports how extraction went for one build.
type Stats struct {
	// Title is the extracted (or defaulted) document title.
	Title string
	// Matched counts sections recovered from the input.
	Matched int
	// Placeholders counts sections synthesized because the input had no
	// match for them.
	Placeholders int
}

// Generate converts raw PRD text into the rendered artifact. Extraction
// misses never fail the build; they degrade to placeholder content. The only
// error source is the renderer.
func (b *Builder) Generate(text string) (*bytes.Buffer, Stats, error) {
	blocks, stats := b.story(text)
	buf, err := b.renderer.Render(blocks)
	if err != nil {
		return nil, stats, fmt.Errorf("rendering document: %w", err)
	}
	return buf, stats, nil
}

// story builds the full block sequence: cover, table of contents, page
// break, then the sixteen sections in order. The sequence is append-only and
// owned by this call.
func (b *Builder) story(text string) ([]types.Block, Stats) {
	title := extract.Title(text)
	generated := b.now().Format("January 02, 2006")
	stats := Stats{Title: title}

	var blocks []types.Block
	blocks = append(blocks, b.cover(title, generated)...)
	blocks = append(blocks, b.tableOfContents()...)
	blocks = append(blocks, types.PageBreak{})

	sections := extract.Sections(text)
	for n := 1; n <= types.SectionCount; n++ {
		sec := sections[n]
		if sec.Placeholder {
			stats.Placeholders++
		} else {
			stats.Matched++
		}

		blocks = append(blocks, types.Heading{Level: 3, Text: fmt.Sprintf("%d. %s", n, sec.Title)})
		if n == requirementsSection {
			blocks = append(blocks, format.RequirementsTable(sec.Body))
		} else {
			blocks = append(blocks, format.Blocks(sec.Body)...)
		}
		blocks = append(blocks, types.Spacer{Height: b.style.SmallSpacer})
	}
	return blocks, stats
}

// cover emits the cover-page blocks. The generation date is captured once at
// build start.
func (b *Builder) cover(title, generated string) []types.Block {
	return []types.Block{
		types.Heading{Level: 1, Text: "Product Requirements Document:"},
		types.Heading{Level: 2, Text: title},
		types.Spacer{Height: b.style.SmallSpacer},
		types.Paragraph{Text: "Generated on: " + generated, Style: types.StyleBody},
		types.Spacer{Height: b.style.LargeSpacer},
	}
}

// tableOfContents emits the fixed sixteen-entry table of contents.
func (b *Builder) tableOfContents() []types.Block {
	blocks := []types.Block{
		types.Heading{Level: 2, Text: "Table of Contents"},
		types.Spacer{Height: b.style.SmallSpacer},
	}
	for n := 1; n <= types.SectionCount; n++ {
		blocks = append(blocks, types.Paragraph{
			Text:  fmt.Sprintf("%d. %s", n, types.SectionTitles[n]),
			Style: types.StyleTOC,
		})
	}
	return blocks
}
