// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures passed between the
// prdgen pipeline stages: extracted sections, typed content blocks, and
// configuration values.
package types

// SectionCount is the fixed number of top-level sections in the PRD template.
const SectionCount = 16

// PlaceholderBody is the body text used for sections absent from the input.
const PlaceholderBody = "No content provided for this section."

// DefaultTitle is the document title used when the input carries no
// recognizable title line.
const DefaultTitle = "Project Requirements Document"

// SectionTitles holds the canonical title for each section ordinal 1..16.
var SectionTitles = map[int]string{
	1:  "Introduction",
	2:  "Goals and Objectives",
	3:  "User Personas and Roles",
	4:  "Functional Requirements",
	5:  "Non-Functional Requirements",
	6:  "User Interface (UI) / User Experience (UX) Considerations",
	7:  "Data Requirements",
	8:  "System Architecture & Technical Considerations",
	9:  "Release Criteria & Success Metrics",
	10: "Timeline & Milestones",
	11: "Team Structure",
	12: "User Stories",
	13: "Cost Estimation",
	14: "Open Issues & Future Considerations",
	15: "Appendix",
	16: "Points Requiring Further Clarification",
}

// Section is one of the sixteen top-level PRD sections. Placeholder reports
// whether the section was synthesized because the input had no match for it.
type Section struct {
	Number      int    `json:"number" yaml:"number"`
	Title       string `json:"title" yaml:"title"`
	Body        string `json:"body" yaml:"body"`
	Placeholder bool   `json:"placeholder" yaml:"placeholder"`
}

// TextStyle selects the paragraph style applied by the renderer.
type TextStyle string

const (
	// StyleBody is the justified body-text style.
	StyleBody TextStyle = "body"
	// StyleTOC is the table-of-contents entry style.
	StyleTOC TextStyle = "toc"
)

// Block is one element of the ordered sequence handed to the renderer.
// Blocks are immutable after creation: the builder appends them and the
// renderer reads them, nothing else touches them.
type Block interface {
	block()
}

// Paragraph is a single run of prose.
type Paragraph struct {
	Text  string
	Style TextStyle
}

// BulletList is an ordered run of bullet items.
type BulletList struct {
	Items []string
}

// Heading is a styled heading. Levels 1..4 map to progressively smaller
// heading styles (document title, subtitle, section, subsection).
type Heading struct {
	Level int
	Text  string
}

// Table is a grid-lined table. When HeaderRow is set, row 0 is rendered
// with the header style.
type Table struct {
	Rows      [][]string
	HeaderRow bool
}

// Spacer is a fixed vertical gap, in points.
type Spacer struct {
	Height float64
}

// PageBreak forces a new page.
type PageBreak struct{}

func (Paragraph) block()  {}
func (BulletList) block() {}
func (Heading) block()    {}
func (Table) block()      {}
func (Spacer) block()     {}
func (PageBreak) block()  {}
