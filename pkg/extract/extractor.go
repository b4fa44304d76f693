// Package extract pulls citation spans and structured keys out of
// academic text once a style is known.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/coolbeans/citelint/pkg/catalog"
	"github.com/coolbeans/citelint/pkg/detect"
	"github.com/coolbeans/citelint/pkg/style"
)

// Extractor extracts citations for a given style using the shared
// pattern catalog. It is safe for concurrent use.
type Extractor struct {
	catalog  *catalog.Catalog
	detector *detect.Detector
}

// NewExtractor creates an extractor backed by the given catalog. A nil
// catalog gets the builtin pattern set.
func NewExtractor(cat *catalog.Catalog) *Extractor {
	if cat == nil {
		cat = catalog.New()
	}
	return &Extractor{catalog: cat, detector: detect.NewDetector(cat)}
}

// Citations groups extracted spans by kind.
type Citations struct {
	InText       []string `json:"in_text"`
	Bibliography []string `json:"bibliography"`
}

// All extracts both in-text citations and bibliography entries. When
// the style is empty or None it is detected first.
func (e *Extractor) All(text string, s style.Style) Citations {
	if s == "" || s == style.None {
		s = e.detector.Primary(text).Style
	}
	return Citations{
		InText:       e.InText(text, s),
		Bibliography: e.Bibliography(text, s),
	}
}

// InText extracts in-text citation spans for a style, in order of first
// appearance with exact duplicates removed. The bibliography section is
// excluded from the scan so reference entries do not surface as
// in-text matches.
func (e *Extractor) InText(text string, s style.Style) []string {
	mainText := e.detector.MainText(text, s)

	patterns := e.catalog.InText(s)
	if len(patterns) == 0 {
		// Unknown style: best effort with every style's patterns.
		for _, known := range style.ScoringOrder {
			patterns = append(patterns, e.catalog.InText(known)...)
		}
	}

	var spans []string
	for _, re := range patterns {
		for _, match := range re.FindAllString(mainText, -1) {
			if validInText(match, s) {
				spans = append(spans, match)
			}
		}
	}

	return dedupe(spans)
}

// Bibliography extracts reference entries from the document's
// bibliography section, validated and deduplicated preserving order.
func (e *Extractor) Bibliography(text string, s style.Style) []string {
	section := e.detector.BibliographySection(text, s)
	if section == "" {
		return nil
	}

	// Strip the header line so it is not grouped into the first entry.
	for _, re := range e.catalog.Headers(s) {
		if loc := re.FindStringIndex(section); loc != nil && loc[0] == 0 {
			section = section[loc[1]:]
			break
		}
	}

	// Structural patterns first; the line-grouping heuristic only runs
	// when none of them produce an entry, which happens with wrapped
	// lines and nonstandard formatting.
	var entries []string
	for _, re := range e.catalog.FullCitation(s) {
		for _, match := range re.FindAllString(section, -1) {
			match = strings.TrimSpace(match)
			if match != "" && validBibliography(match, s) {
				entries = append(entries, match)
			}
		}
	}
	if len(entries) > 0 {
		return dedupe(entries)
	}

	for _, entry := range groupEntries(section, s) {
		entry = strings.TrimSpace(entry)
		if entry != "" && validBibliography(entry, s) {
			entries = append(entries, entry)
		}
	}

	return dedupe(entries)
}

var (
	surnameLeading = regexp.MustCompile(`^[A-Za-z\-]+,`)
	numberLeading  = regexp.MustCompile(`^\[\d+\]|^\d+\.`)
	cseLeading     = regexp.MustCompile(`^\[\d+\]|^\d+\.|^\w+\s\w+\s\d{4}\.`)
)

// groupEntries splits a bibliography section into entries. A blank line
// always ends the current entry; a line shaped like an entry opening
// for the style starts a new one; anything else continues the current
// entry across wrapped lines.
func groupEntries(section string, s style.Style) []string {
	opener := surnameLeading
	switch style.Fused(s) {
	case style.IEEE, style.Vancouver:
		opener = numberLeading
	case style.CSE:
		opener = cseLeading
	}

	var entries []string
	current := ""
	flush := func() {
		if strings.TrimSpace(current) != "" {
			entries = append(entries, strings.TrimSpace(current))
		}
		current = ""
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case opener.MatchString(line):
			flush()
			current = line
		default:
			if current == "" {
				current = line
			} else {
				current += " " + line
			}
		}
	}
	flush()

	return entries
}

var (
	fourDigitYear = regexp.MustCompile(`\d{4}`)
	anyDigit      = regexp.MustCompile(`\d+`)
	terminalPunct = regexp.MustCompile(`[.!?]$`)
)

// validInText filters obvious false positives from in-text matches.
func validInText(span string, s style.Style) bool {
	if n := utf8.RuneCountInString(span); n < 3 || n > 100 {
		return false
	}

	switch style.Fused(s) {
	case style.APA, style.Chicago, style.Harvard, style.CSE:
		if !fourDigitYear.MatchString(span) {
			return false
		}
		if strings.HasPrefix(span, "(") && !strings.HasSuffix(span, ")") {
			return false
		}
	case style.MLA:
		if strings.Contains(span, "(") && strings.Contains(span, ")") && !anyDigit.MatchString(span) {
			return false
		}
	case style.IEEE, style.Vancouver:
		if !anyDigit.MatchString(span) {
			return false
		}
	}

	return true
}

// validBibliography filters fragments and run-on text from entry
// candidates.
func validBibliography(entry string, s style.Style) bool {
	if n := utf8.RuneCountInString(entry); n < 20 || n > 1000 {
		return false
	}
	if !terminalPunct.MatchString(entry) {
		return false
	}

	fused := style.Fused(s)
	if fused != style.MLA && !fourDigitYear.MatchString(entry) {
		return false
	}
	switch fused {
	case style.IEEE, style.Vancouver:
		if !numberLeading.MatchString(entry) {
			return false
		}
	case style.APA, style.MLA, style.Chicago, style.Harvard:
		if !surnameLeading.MatchString(entry) {
			return false
		}
	}

	return true
}

// dedupe removes exact duplicates preserving first-occurrence order.
func dedupe(spans []string) []string {
	seen := make(map[string]struct{}, len(spans))
	var unique []string
	for _, span := range spans {
		if _, ok := seen[span]; ok {
			continue
		}
		seen[span] = struct{}{}
		unique = append(unique, span)
	}
	return unique
}
