// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out content blocks into a paginated PDF document.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/prdgen/pkg/types"
)

// cellPad is the inner padding of table cells, in points.
const cellPad = 3

// PDF renders block sequences into PDF bytes using a fixed style.
type PDF struct {
	style types.StyleConfig
}

// New returns a PDF renderer for the given style.
func New(style types.StyleConfig) *PDF {
	return &PDF{style: style}
}

// Render lays out the block sequence and returns the finished PDF in a
// buffer positioned at its start.
func (p *PDF) Render(blocks []types.Block) (*bytes.Buffer, error) {
	doc := gofpdf.New("P", "pt", p.style.PageSize, "")
	doc.SetMargins(p.style.Margin, p.style.Margin, p.style.Margin)
	doc.SetAutoPageBreak(true, p.style.Margin)
	doc.AddPage()

	j := &job{
		doc:   doc,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
		style: p.style,
	}

	for _, block := range blocks {
		switch b := block.(type) {
		case types.Heading:
			j.heading(b)
		case types.Paragraph:
			j.paragraph(b)
		case types.BulletList:
			j.bulletList(b)
		case types.Table:
			j.table(b)
		case types.Spacer:
			doc.Ln(b.Height)
		case types.PageBreak:
			doc.AddPage()
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return &buf, nil
}

// job carries per-render state: the document, the text encoder, and the
// style constants.
type job struct {
	doc   *gofpdf.Fpdf
	tr    func(string) string
	style types.StyleConfig
}

func (j *job) heading(h types.Heading) {
	size, ok := j.style.HeadingSizes[h.Level]
	if !ok {
		size = j.style.BodySize
	}
	j.doc.SetFont(j.style.FontFamily, "B", size)
	j.doc.MultiCell(0, size+4, j.tr(h.Text), "", "L", false)
	j.doc.Ln(6)
}

func (j *job) paragraph(para types.Paragraph) {
	size := j.style.BodySize
	align := "J"
	spacing := 6.0
	if para.Style == types.StyleTOC {
		size = j.style.TOCSize
		align = "L"
		spacing = 3.0
	}
	j.doc.SetFont(j.style.FontFamily, "", size)
	j.doc.MultiCell(0, j.style.LineHeight, j.tr(para.Text), "", align, false)
	j.doc.Ln(spacing)
}

func (j *job) bulletList(list types.BulletList) {
	j.doc.SetFont(j.style.FontFamily, "", j.style.BodySize)
	pageW, _ := j.doc.GetPageSize()
	left := j.style.Margin + j.style.BulletIndent
	width := pageW - left - j.style.Margin

	for _, item := range list.Items {
		j.doc.SetX(left)
		j.doc.CellFormat(12, j.style.LineHeight, j.tr("•"), "", 0, "L", false, 0, "")
		j.doc.MultiCell(width-12, j.style.LineHeight, j.tr(item), "", "L", false)
	}
	j.doc.Ln(3)
}

func (j *job) table(t types.Table) {
	if len(t.Rows) == 0 {
		return
	}
	pageW, _ := j.doc.GetPageSize()
	widths := columnWidths(len(t.Rows[0]), pageW-2*j.style.Margin)

	for i, row := range t.Rows {
		j.tableRow(row, widths, t.HeaderRow && i == 0)
	}
	j.doc.Ln(6)
}

// tableRow draws one grid-lined row, wrapping cell text and sizing the row
// to its tallest cell. Rows are kept whole across page breaks.
func (j *job) tableRow(cells []string, widths []float64, header bool) {
	fontStyle := ""
	if header {
		fontStyle = "B"
	}
	j.doc.SetFont(j.style.FontFamily, fontStyle, j.style.BodySize)

	lineHt := j.style.LineHeight
	lines := 1
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if n := len(j.doc.SplitLines([]byte(j.tr(cell)), widths[i]-2*cellPad)); n > lines {
			lines = n
		}
	}
	rowHt := float64(lines)*lineHt + 2*cellPad

	_, pageH := j.doc.GetPageSize()
	if j.doc.GetY()+rowHt > pageH-j.style.Margin {
		j.doc.AddPage()
	}

	x := j.style.Margin
	y := j.doc.GetY()
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		w := widths[i]
		if header {
			fill := j.style.TableHeaderFill
			j.doc.SetFillColor(fill[0], fill[1], fill[2])
			j.doc.Rect(x, y, w, rowHt, "FD")
		} else {
			j.doc.Rect(x, y, w, rowHt, "D")
		}
		j.doc.SetXY(x+cellPad, y+cellPad)
		j.doc.MultiCell(w-2*cellPad, lineHt, j.tr(cell), "", "L", false)
		x += w
	}
	j.doc.SetXY(j.style.Margin, y+rowHt)
}

// columnWidths distributes the usable width across columns. The four-column
// case uses the requirement-table proportions; anything else divides evenly.
func columnWidths(cols int, usable float64) []float64 {
	if cols == 4 {
		return []float64{0.12 * usable, 0.52 * usable, 0.16 * usable, 0.20 * usable}
	}
	widths := make([]float64, cols)
	for i := range widths {
		widths[i] = usable / float64(cols)
	}
	return widths
}
