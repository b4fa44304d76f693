package detect

import (
	"regexp"
	"strings"

	"github.com/coolbeans/citelint/pkg/style"
)

// BibliographySection returns the reference list portion of a document
// for the given style, or an empty string when none is found. The
// section starts at a bibliography header line when one exists;
// otherwise the trailing run of lines shaped like full citations is
// taken.
func (d *Detector) BibliographySection(text string, s style.Style) string {
	start := d.sectionStart(text, s)
	if start < 0 {
		return ""
	}
	return text[start:]
}

// MainText returns the document body with the bibliography section
// removed, so in-text extraction does not run over the reference list.
func (d *Detector) MainText(text string, s style.Style) string {
	start := d.sectionStart(text, s)
	if start < 0 {
		return text
	}
	return text[:start]
}

// sectionStart locates the byte offset where the bibliography section
// begins, or -1.
func (d *Detector) sectionStart(text string, s style.Style) int {
	// Header keywords take precedence.
	for _, re := range d.catalog.Headers(s) {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc[0]
		}
	}

	// No header found. Scan backward for the last line that looks like
	// a full citation, then extend upward through the contiguous run.
	lines := strings.Split(text, "\n")
	offsets := lineOffsets(text, lines)
	patterns := d.catalog.FullCitation(s)

	for i := len(lines) - 1; i >= 0; i-- {
		if !matchesAtLineStart(lines[i], patterns) {
			continue
		}
		start := i
		for start > 0 && strings.TrimSpace(lines[start-1]) != "" {
			start--
			if d.lineIsHeader(lines[start]) {
				break
			}
		}
		return offsets[start]
	}

	return -1
}

// lineIsHeader recognizes bibliography headers of any style, so the
// backward scan stops at a header even when it belongs to a different
// style than the one being split for.
func (d *Detector) lineIsHeader(line string) bool {
	for _, re := range d.catalog.AllHeaders() {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func matchesAtLineStart(line string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if loc := re.FindStringIndex(line); loc != nil && loc[0] == 0 {
			return true
		}
	}
	return false
}

// lineOffsets maps each line index to its byte offset in text.
func lineOffsets(text string, lines []string) []int {
	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1
	}
	return offsets
}
