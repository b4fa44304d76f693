// Package detect scores a document against the citation pattern catalog
// and identifies its predominant citation style.
package detect

import (
	"github.com/coolbeans/citelint/pkg/catalog"
	"github.com/coolbeans/citelint/pkg/style"
)

// Counts holds per-style match counts split by pattern category. The
// in-text map is keyed by scoring style, so the two Chicago variants
// appear separately.
type Counts struct {
	InText       map[style.Style]int `json:"in_text"`
	FullCitation map[style.Style]int `json:"full_citation"`
}

// Total returns the grand total of matches across both categories.
func (c Counts) Total() int {
	total := 0
	for _, n := range c.InText {
		total += n
	}
	for _, n := range c.FullCitation {
		total += n
	}
	return total
}

// Combined fuses the per-category counts into one count per reported
// style. The Chicago variants merge into the fused Chicago style.
func (c Counts) Combined() map[style.Style]int {
	combined := make(map[style.Style]int, len(style.ReportOrder))
	for s, n := range c.InText {
		combined[style.Fused(s)] += n
	}
	for s, n := range c.FullCitation {
		combined[style.Fused(s)] += n
	}
	return combined
}

// Detection is the result of primary style identification.
type Detection struct {
	Style      style.Style `json:"style"`
	Confidence float64     `json:"confidence"`
	Counts     Counts      `json:"counts"`
}

// Detector scores text against a pattern catalog. It is safe for
// concurrent use.
type Detector struct {
	catalog *catalog.Catalog
}

// NewDetector creates a detector backed by the given catalog. A nil
// catalog gets the builtin pattern set.
func NewDetector(cat *catalog.Catalog) *Detector {
	if cat == nil {
		cat = catalog.New()
	}
	return &Detector{catalog: cat}
}

// Catalog returns the catalog backing this detector.
func (d *Detector) Catalog() *catalog.Catalog { return d.catalog }

// Score counts non-overlapping pattern matches per style and category.
// A single citation may be counted by several styles; the relative
// counts are what disambiguates.
func (d *Detector) Score(text string) Counts {
	counts := Counts{
		InText:       make(map[style.Style]int, len(style.ScoringOrder)),
		FullCitation: make(map[style.Style]int, len(style.ReportOrder)),
	}

	for _, s := range style.ScoringOrder {
		n := 0
		for _, re := range d.catalog.InText(s) {
			n += len(re.FindAllStringIndex(text, -1))
		}
		counts.InText[s] = n
	}

	for _, s := range style.ReportOrder {
		n := 0
		for _, re := range d.catalog.FullCitation(s) {
			n += len(re.FindAllStringIndex(text, -1))
		}
		counts.FullCitation[s] = n
	}

	return counts
}

// Primary identifies the predominant citation style of a document.
// Confidence is the winning style's share of all matches, so it is 1.0
// only when every match belongs to a single style and 0.0 only when no
// citations were detected at all.
func (d *Detector) Primary(text string) Detection {
	counts := d.Score(text)
	total := counts.Total()
	if total == 0 {
		return Detection{Style: style.None, Confidence: 0.0, Counts: counts}
	}

	combined := counts.Combined()

	winner := style.None
	best := -1
	for _, s := range style.ReportOrder {
		if combined[s] > best {
			winner = s
			best = combined[s]
		}
	}

	confidence := float64(best) / float64(total)
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}

	return Detection{Style: winner, Confidence: confidence, Counts: counts}
}
