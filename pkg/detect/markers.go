package detect

import (
	"regexp"

	"github.com/coolbeans/citelint/pkg/catalog"
	"github.com/coolbeans/citelint/pkg/style"
)

// Markers counts secondary evidence for a style: bibliography headers
// present in the document and style-specific formatting habits.
type Markers struct {
	Headers  int `json:"headers"`
	Specific int `json:"specific"`
}

var (
	apaAmpersand    = regexp.MustCompile(`\([A-Za-z\-]+ & [A-Za-z\-]+,`)
	apaPageWithYear = regexp.MustCompile(`\d{4}, p\. \d+`)
	mlaAndAuthors   = regexp.MustCompile(`\([A-Za-z\-]+ and [A-Za-z\-]+ \d+`)
	mlaBarePage     = regexp.MustCompile(`\([A-Za-z\-]+ \d+\)`)
	chicagoFootnote = regexp.MustCompile(`(?m)^\d+\.\s`)
	chicagoLatin    = regexp.MustCompile(`Ibid\.|Op\. cit\.|Loc\. cit\.`)
	harvardColon    = regexp.MustCompile(`\d{4}: \d+`)
	ieeeBracket     = regexp.MustCompile(`\[\d+\]`)
	vancouverParen  = regexp.MustCompile(`\(\d+\)`)
	cseNameYear     = regexp.MustCompile(`[A-Za-z\-]+ [A-Z]{1,2}\. \d{4}\.`)
)

// StyleMarkers scans a document for style-specific habits that pattern
// counting alone would not surface, such as "&" in APA parentheticals
// or Latin continuation terms in Chicago notes. Repeating markers are
// capped so a single habit cannot dominate.
func (d *Detector) StyleMarkers(text string) map[style.Style]Markers {
	markers := make(map[style.Style]Markers, len(style.ReportOrder))

	for _, s := range style.ReportOrder {
		m := Markers{}
		for _, re := range d.catalog.Headers(s) {
			if re.MatchString(text) {
				m.Headers++
			}
		}
		markers[s] = m
	}

	bump := func(s style.Style, n int) {
		m := markers[s]
		m.Specific += n
		markers[s] = m
	}

	if apaAmpersand.MatchString(text) {
		bump(style.APA, 1)
	}
	if apaPageWithYear.MatchString(text) {
		bump(style.APA, 1)
	}
	if mlaAndAuthors.MatchString(text) {
		bump(style.MLA, 1)
	}
	if mlaBarePage.MatchString(text) {
		bump(style.MLA, 1)
	}
	if n := len(chicagoFootnote.FindAllStringIndex(text, -1)); n > 0 {
		bump(style.Chicago, min(n, 5))
	}
	if n := len(chicagoLatin.FindAllStringIndex(text, -1)); n > 0 {
		bump(style.Chicago, min(n, 3))
	}
	if harvardColon.MatchString(text) {
		bump(style.Harvard, 1)
	}
	if n := len(ieeeBracket.FindAllStringIndex(text, -1)); n > 0 {
		bump(style.IEEE, min(n, 5))
	}
	if vancouverParen.MatchString(text) {
		bump(style.Vancouver, 1)
	}
	if cseNameYear.MatchString(text) {
		bump(style.CSE, 1)
	}

	return markers
}

// SpecialMarkers counts occurrences of a special marker group's terms,
// such as Latin scholarly terms or digital identifiers.
func (d *Detector) SpecialMarkers(text string, group catalog.SpecialGroup) map[string]int {
	counts := make(map[string]int)
	for term, re := range d.catalog.SpecialGroupPatterns(group) {
		if n := len(re.FindAllStringIndex(text, -1)); n > 0 {
			counts[term] = n
		}
	}
	return counts
}
