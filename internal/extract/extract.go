// Package extract recovers the document title and the sixteen PRD template
// sections from loosely structured input text. Every lookup degrades to a
// deterministic fallback; no extraction path returns an error.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/prdgen/pkg/types"
)

// titlePattern matches the document title line: the literal template name,
// an optional colon, and the trailing title text.
var titlePattern = regexp.MustCompile(`Product Requirements Document:?\s*([^\n]+)`)

// subsectionMarker matches a "N.M " subsection marker and captures both
// ordinals.
var subsectionMarker = regexp.MustCompile(`(\d+)\.(\d+)\s+`)

// subsectionBoundary matches the start of any following subsection marker.
var subsectionBoundary = regexp.MustCompile(`\d+\.\d+`)

// markers[n] matches the "n. " ordinal marker. Index 17 exists because
// section 16's capture is bounded by a (normally absent) ordinal-17 marker.
var markers [types.SectionCount + 2]*regexp.Regexp

// headers[n] matches section n's full header: ordinal, period, whitespace,
// and the exact canonical title.
var headers [types.SectionCount + 1]*regexp.Regexp

// titleLines[n] isolates the header-line text of a captured section.
var titleLines [types.SectionCount + 1]*regexp.Regexp

func init() {
	for n := 1; n <= types.SectionCount+1; n++ {
		markers[n] = regexp.MustCompile(fmt.Sprintf(`%d\.\s+`, n))
	}
	for n := 1; n <= types.SectionCount; n++ {
		headers[n] = regexp.MustCompile(fmt.Sprintf(`%d\.\s+%s`, n, regexp.QuoteMeta(types.SectionTitles[n])))
		titleLines[n] = regexp.MustCompile(fmt.Sprintf(`^%d\.\s+([^\n]+)`, n))
	}
}

// Title returns the project title found on the template's title line, or the
// fixed default when the input has no recognizable title.
func Title(text string) string {
	if m := titlePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return types.DefaultTitle
}

// resolver attempts to capture one section's raw text (header line included).
type resolver func(text string, n int) (string, bool)

// resolvers is the ordered fallback chain for section capture: exact
// canonical header, then any "n. " marker, then a synthesized placeholder.
// The placeholder resolver always matches.
var resolvers = []resolver{strictSection, looseSection, placeholderSection}

// Sections extracts all sixteen sections from the input. The result always
// contains exactly SectionCount entries keyed 1..16; sections absent from the
// input become placeholders. Results are computed fresh on every call.
func Sections(text string) map[int]types.Section {
	sections := make(map[int]types.Section, types.SectionCount)
	for n := 1; n <= types.SectionCount; n++ {
		for i, resolve := range resolvers {
			raw, ok := resolve(text, n)
			if !ok {
				continue
			}
			sec := decompose(n, raw)
			sec.Placeholder = i == len(resolvers)-1
			sections[n] = sec
			break
		}
	}
	return sections
}

// strictSection captures from section n's canonical header up to the next
// ordinal's marker or end of text.
func strictSection(text string, n int) (string, bool) {
	loc := headers[n].FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:boundary(text, loc[1], n+1)], true
}

// looseSection captures from the first "n. " marker up to the next ordinal's
// marker or end of text. It tolerates a reworded header line, at the known
// cost of latching onto body lines that happen to start with "n. ".
func looseSection(text string, n int) (string, bool) {
	loc := markers[n].FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:boundary(text, loc[1], n+1)], true
}

// placeholderSection synthesizes a section with the canonical title and the
// fixed placeholder body.
func placeholderSection(_ string, n int) (string, bool) {
	return fmt.Sprintf("%d. %s\n\n%s", n, types.SectionTitles[n], types.PlaceholderBody), true
}

// boundary returns the end index of a capture whose header match ends at
// from: the start of the first following "next. " marker, or len(text).
func boundary(text string, from, next int) int {
	if loc := markers[next].FindStringIndex(text[from:]); loc != nil {
		return from + loc[0]
	}
	return len(text)
}

// decompose splits a raw section capture into its title (first-line text
// after the ordinal, falling back to the canonical title) and body (the
// remainder, trimmed; empty when the section consists of a header only).
func decompose(n int, raw string) types.Section {
	sec := types.Section{Number: n, Title: types.SectionTitles[n]}
	if m := titleLines[n].FindStringSubmatch(raw); m != nil {
		sec.Title = strings.TrimSpace(m[1])
	}
	if _, rest, found := strings.Cut(raw, "\n"); found {
		sec.Body = strings.TrimSpace(rest)
	}
	return sec
}

// Subsections scans a section body for "N.M" markers and captures from each
// marker up to the next marker or end of body, keyed by the minor ordinal.
// Minor ordinals are not required to be contiguous; duplicates keep the last
// capture.
func Subsections(body string) map[int]string {
	subs := make(map[int]string)
	pos := 0
	for pos < len(body) {
		m := subsectionMarker.FindStringSubmatchIndex(body[pos:])
		if m == nil {
			break
		}
		start := pos + m[0]
		contentStart := pos + m[1]
		end := len(body)
		if loc := subsectionBoundary.FindStringIndex(body[contentStart:]); loc != nil {
			end = contentStart + loc[0]
		}
		minor, err := strconv.Atoi(body[pos+m[4] : pos+m[5]])
		if err == nil {
			subs[minor] = body[start:end]
		}
		pos = end
	}
	return subs
}
