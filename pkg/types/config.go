// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StyleConfig holds the fixed styling and page-geometry constants for a
// document. It is built once (normally via DefaultStyle), injected into the
// builder and renderer, and never mutated during a build.
type StyleConfig struct {
	// PageSize is the gofpdf page size string (e.g. "A4").
	PageSize string `json:"page_size" yaml:"page_size"`

	// Margin is the uniform page margin in points.
	Margin float64 `json:"margin" yaml:"margin"`

	// FontFamily is the base font family (e.g. "Helvetica").
	FontFamily string `json:"font_family" yaml:"font_family"`

	// HeadingSizes maps heading level (1..4) to font size in points.
	HeadingSizes map[int]float64 `json:"heading_sizes" yaml:"heading_sizes"`

	// BodySize is the body and bullet text size in points.
	BodySize float64 `json:"body_size" yaml:"body_size"`

	// TOCSize is the table-of-contents entry size in points.
	TOCSize float64 `json:"toc_size" yaml:"toc_size"`

	// LineHeight is the body line height in points.
	LineHeight float64 `json:"line_height" yaml:"line_height"`

	// BulletIndent is the left indent applied to bullet list items, in points.
	BulletIndent float64 `json:"bullet_indent" yaml:"bullet_indent"`

	// SmallSpacer and LargeSpacer are the two fixed vertical gaps used by
	// the builder, in points (0.2in and 1in in the default style).
	SmallSpacer float64 `json:"small_spacer" yaml:"small_spacer"`
	LargeSpacer float64 `json:"large_spacer" yaml:"large_spacer"`

	// TableHeaderFill is the RGB fill color for table header rows.
	TableHeaderFill [3]int `json:"table_header_fill" yaml:"table_header_fill"`
}

// DefaultStyle returns the standard PRD document style: A4 page, one-inch
// margins, Helvetica, 18/16/14/12pt headings, 11pt justified body.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		PageSize:   "A4",
		Margin:     72,
		FontFamily: "Helvetica",
		HeadingSizes: map[int]float64{
			1: 18,
			2: 16,
			3: 14,
			4: 12,
		},
		BodySize:        11,
		TOCSize:         12,
		LineHeight:      14,
		BulletIndent:    20,
		SmallSpacer:     14.4,
		LargeSpacer:     72,
		TableHeaderFill: [3]int{211, 211, 211},
	}
}

// GenerationConfig holds settings for the generate stage.
type GenerationConfig struct {
	// OutputPath is the destination PDF path. Empty means derive from the
	// input filename.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// HistoryDir is the directory holding the generation history database.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// NoHistory disables recording runs in the history store.
	NoHistory bool `json:"no_history" yaml:"no_history"`
}
