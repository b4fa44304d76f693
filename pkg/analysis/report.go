// Package analysis assembles document-level citation reports: primary
// style, extracted citations, cross-reference audit, format issues, and
// usage statistics.
package analysis

import (
	"fmt"

	"github.com/coolbeans/citelint/pkg/catalog"
	"github.com/coolbeans/citelint/pkg/crossref"
	"github.com/coolbeans/citelint/pkg/detect"
	"github.com/coolbeans/citelint/pkg/extract"
	"github.com/coolbeans/citelint/pkg/style"
	"github.com/coolbeans/citelint/pkg/validate"
)

// Report is the full result of analyzing one document.
type Report struct {
	PrimaryStyle    style.Style            `json:"primary_style"`
	Confidence      float64                `json:"confidence"`
	Counts          detect.Counts          `json:"counts"`
	Citations       extract.Citations      `json:"citations"`
	MissingRefs     []extract.Key          `json:"citations_without_references,omitempty"`
	UncitedRefs     []extract.ReferenceKey `json:"references_without_citations,omitempty"`
	Issues          []validate.Issue       `json:"issues,omitempty"`
	Recommendations []string               `json:"recommendations,omitempty"`
	Stats           Stats                  `json:"stats"`
}

// Analyzer runs the full pipeline over documents. It is safe for
// concurrent use.
type Analyzer struct {
	detector  *detect.Detector
	extractor *extract.Extractor
	matcher   *crossref.Matcher
	validator *validate.Validator
}

// New creates an analyzer backed by the given catalog. A nil catalog
// gets the builtin pattern set.
func New(cat *catalog.Catalog) *Analyzer {
	if cat == nil {
		cat = catalog.New()
	}
	return &Analyzer{
		detector:  detect.NewDetector(cat),
		extractor: extract.NewExtractor(cat),
		matcher:   crossref.New(),
		validator: validate.New(),
	}
}

// Detector exposes the analyzer's detector for callers that only need
// style identification.
func (a *Analyzer) Detector() *detect.Detector { return a.detector }

// Extractor exposes the analyzer's extractor.
func (a *Analyzer) Extractor() *extract.Extractor { return a.extractor }

// Analyze runs detection, extraction, cross-referencing, validation,
// and statistics over one document.
func (a *Analyzer) Analyze(text string) Report {
	detection := a.detector.Primary(text)
	report := Report{
		PrimaryStyle: detection.Style,
		Confidence:   detection.Confidence,
		Counts:       detection.Counts,
	}

	if detection.Style == style.None {
		report.Recommendations = []string{"no citations were detected in the document"}
		report.Stats = computeStats(text, nil)
		return report
	}

	citations := a.extractor.All(text, detection.Style)
	report.Citations = citations

	cites := a.extractor.CitationKeys(text, detection.Style)
	refs := a.extractor.ReferenceKeys(citations.Bibliography, detection.Style)
	report.MissingRefs = a.matcher.CitationsWithoutReferences(cites, refs, detection.Style)
	report.UncitedRefs = a.matcher.ReferencesWithoutCitations(cites, refs, detection.Style)

	report.Issues = a.validator.ValidateAll(citations, detection.Style)
	report.Recommendations = a.recommendations(detection, citations, report)
	report.Stats = computeStats(text, citations.InText)

	return report
}

// recommendations derives human-readable advice from the detection and
// audit results.
func (a *Analyzer) recommendations(detection detect.Detection, citations extract.Citations, report Report) []string {
	var recs []string

	inText := len(citations.InText)
	bib := len(citations.Bibliography)

	if detection.Confidence < 0.7 {
		recs = append(recs, fmt.Sprintf("multiple citation styles detected; unify on the dominant style %s (confidence %.2f)", detection.Style, detection.Confidence))
	}
	if inText > 0 && bib == 0 {
		recs = append(recs, "add a complete reference list at the end of the document")
	}
	if inText == 0 && bib > 0 {
		recs = append(recs, "cite the listed references in the body text")
	}
	if n := len(report.MissingRefs); n > 0 {
		recs = append(recs, fmt.Sprintf("add reference entries for the %d citation(s) that have none", n))
	}
	if n := len(report.UncitedRefs); n > 0 {
		recs = append(recs, fmt.Sprintf("%d reference(s) are never cited in the text", n))
	}

	if detection.Confidence > 0.7 {
		switch detection.Style {
		case style.APA:
			recs = append(recs, `for multiple authors in APA, use "&" in parenthetical and "and" in narrative citations`)
		case style.MLA:
			recs = append(recs, `in MLA, give the bare page number without "p." in parenthetical citations`)
		case style.Chicago:
			notes := detection.Counts.InText[style.ChicagoNotes]
			authorDate := detection.Counts.InText[style.ChicagoAuthorDate]
			if notes > 0 && authorDate > 0 {
				recs = append(recs, "pick one Chicago system, footnotes or author-date, instead of mixing both")
			}
		}
	}

	return recs
}
