// Package style defines the citation style identifiers shared by the
// detection, extraction, and cross-reference packages.
package style

import "strings"

// Style identifies an academic citation style.
type Style string

const (
	// APA is American Psychological Association author-year style.
	APA Style = "APA"
	// MLA is Modern Language Association author-page style.
	MLA Style = "MLA"
	// Chicago is the fused Chicago style reported to callers. Scoring
	// happens against the author-date and notes variants separately.
	Chicago Style = "CHICAGO"
	// ChicagoAuthorDate is the Chicago author-date variant.
	ChicagoAuthorDate Style = "CHICAGO_AUTHOR_DATE"
	// ChicagoNotes is the Chicago notes-bibliography variant.
	ChicagoNotes Style = "CHICAGO_NOTES"
	// Harvard is Harvard author-year style.
	Harvard Style = "HARVARD"
	// IEEE is bracketed numeric style.
	IEEE Style = "IEEE"
	// Vancouver is numeric style used in biomedical publishing.
	Vancouver Style = "VANCOUVER"
	// CSE is Council of Science Editors style (name-year or numeric).
	CSE Style = "CSE"
	// None is reported when a document contains no recognizable citations.
	None Style = "none"
)

// ScoringOrder is the deterministic order in which styles are scored and
// in which ties are broken. The Chicago variants are scored separately
// and fused into Chicago before results are reported.
var ScoringOrder = []Style{APA, MLA, ChicagoAuthorDate, ChicagoNotes, Harvard, IEEE, Vancouver, CSE}

// ReportOrder is the deterministic order of styles as surfaced to
// callers, with the Chicago variants fused.
var ReportOrder = []Style{APA, MLA, Chicago, Harvard, IEEE, Vancouver, CSE}

// Fused maps a scoring style to the style reported to callers. The two
// Chicago variants fuse into Chicago; every other style maps to itself.
func Fused(s Style) Style {
	if s == ChicagoAuthorDate || s == ChicagoNotes {
		return Chicago
	}
	return s
}

// Numeric reports whether the style cites by reference number rather
// than author and year.
func Numeric(s Style) bool {
	return s == IEEE || s == Vancouver
}

// Parse resolves a user-supplied style name. It accepts any case and
// the "chicago" shorthand for the fused style. The boolean is false for
// unknown names.
func Parse(name string) (Style, bool) {
	switch Style(strings.ToUpper(strings.TrimSpace(name))) {
	case APA:
		return APA, true
	case MLA:
		return MLA, true
	case Chicago:
		return Chicago, true
	case ChicagoAuthorDate:
		return ChicagoAuthorDate, true
	case ChicagoNotes:
		return ChicagoNotes, true
	case Harvard:
		return Harvard, true
	case IEEE:
		return IEEE, true
	case Vancouver:
		return Vancouver, true
	case CSE:
		return CSE, true
	}
	if strings.EqualFold(strings.TrimSpace(name), string(None)) {
		return None, true
	}
	return "", false
}
