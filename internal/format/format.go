// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format classifies raw section text into typed content blocks:
// paragraphs, bullet lists, and the functional-requirements table.
package format

import (
	"regexp"
	"strings"

	"github.com/pdiddy/prdgen/pkg/types"
)

// bulletLine detects whether a body contains any bullet-marker line, which
// switches classification into mixed bullet/paragraph mode.
var bulletLine = regexp.MustCompile(`(?m)^\s*[-*]\s`)

// Blocks converts one section body into its ordered block sequence. Bodies
// with at least one bullet-marker line go through the mixed-mode scanner;
// everything else is split into paragraphs on blank lines. Malformed input
// never fails; it just yields fewer blocks.
func Blocks(body string) []types.Block {
	if bulletLine.MatchString(body) {
		return mixedBlocks(body)
	}
	return paragraphBlocks(body)
}

// mixedBlocks walks the body line by line with two pending buffers. Each
// transition between prose and bullets flushes the opposite buffer, so runs
// come out in input order: one Paragraph per prose line, one BulletList per
// bullet run.
func mixedBlocks(body string) []types.Block {
	var blocks []types.Block
	var pending []string
	var items []string

	flushParagraphs := func() {
		for _, p := range pending {
			blocks = append(blocks, types.Paragraph{Text: p, Style: types.StyleBody})
		}
		pending = nil
	}
	flushItems := func() {
		if len(items) > 0 {
			blocks = append(blocks, types.BulletList{Items: items})
			items = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			flushParagraphs()
			items = append(items, strings.TrimSpace(line[1:]))
		} else {
			flushItems()
			pending = append(pending, line)
		}
	}
	flushItems()
	flushParagraphs()
	return blocks
}

// paragraphBlocks splits the body on blank-line separators; each non-empty
// trimmed chunk becomes one Paragraph.
func paragraphBlocks(body string) []types.Block {
	var blocks []types.Block
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		blocks = append(blocks, types.Paragraph{Text: chunk, Style: types.StyleBody})
	}
	return blocks
}
