// Package catalog holds the per-style regular expression catalog used to
// detect, extract, and validate academic citations. Patterns are grouped
// by style and category: in-text citations, full bibliography entries,
// bibliography section headers, and special markers such as Latin
// scholarly terms and digital identifiers.
package catalog

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/coolbeans/citelint/pkg/style"
)

// Category identifies a group of patterns within the catalog.
type Category string

const (
	// CategoryInText covers in-text citation patterns such as
	// "(Smith, 2020)" or "[1]".
	CategoryInText Category = "in_text"
	// CategoryFullCitation covers complete bibliography entry patterns.
	CategoryFullCitation Category = "full_citation"
	// CategoryHeaders covers bibliography section header patterns.
	CategoryHeaders Category = "headers"
)

// SpecialGroup identifies a group of special marker patterns.
type SpecialGroup string

const (
	// LatinTerms matches scholarly Latin terms (Ibid., op. cit., et al.).
	LatinTerms SpecialGroup = "latin_terms"
	// Abbreviations matches common citation abbreviations (p., vol., ed.).
	Abbreviations SpecialGroup = "abbreviations"
	// DigitalIdentifiers matches URLs, DOIs, and access-date markers.
	DigitalIdentifiers SpecialGroup = "digital_identifiers"
)

// Catalog is a thread-safe collection of compiled citation patterns.
// The zero value is not usable; construct with New.
type Catalog struct {
	mu           sync.RWMutex
	inText       map[style.Style][]*regexp.Regexp
	fullCitation map[style.Style][]*regexp.Regexp
	headers      map[style.Style][]*regexp.Regexp
	special      map[SpecialGroup]map[string]*regexp.Regexp
}

// New builds a catalog populated with the builtin pattern set for all
// supported styles.
func New() *Catalog {
	return &Catalog{
		inText:       builtinInText(),
		fullCitation: builtinFullCitation(),
		headers:      builtinHeaders(),
		special:      builtinSpecial(),
	}
}

// compile compiles a catalog pattern with multiline semantics so that ^
// and $ anchor at line boundaries, which entry-anchored bibliography
// patterns rely on.
func compile(expr string) (*regexp.Regexp, error) {
	return regexp.Compile("(?m)" + expr)
}

func mustCompile(expr string) *regexp.Regexp {
	re, err := compile(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// inTextBucket maps the fused Chicago tag onto a variant bucket, since
// scoring iterates the variants and would never consult a pattern
// stored under the fused key. Config files speak the fused tag only.
func inTextBucket(s style.Style) style.Style {
	if s == style.Chicago {
		return style.ChicagoAuthorDate
	}
	return s
}

// InText returns the in-text citation patterns for a scoring style. The
// fused Chicago style returns the union of both Chicago variants.
func (c *Catalog) InText(s style.Style) []*regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s == style.Chicago {
		merged := append([]*regexp.Regexp{}, c.inText[style.ChicagoAuthorDate]...)
		return append(merged, c.inText[style.ChicagoNotes]...)
	}
	return c.inText[s]
}

// FullCitation returns the bibliography entry patterns for a style.
// The Chicago variants share the fused style's full-citation patterns.
func (c *Catalog) FullCitation(s style.Style) []*regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fullCitation[style.Fused(s)]
}

// Headers returns the bibliography section header patterns for a style.
func (c *Catalog) Headers(s style.Style) []*regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers[style.Fused(s)]
}

// AllHeaders returns the header patterns of every style in report order.
func (c *Catalog) AllHeaders() []*regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var all []*regexp.Regexp
	for _, s := range style.ReportOrder {
		all = append(all, c.headers[s]...)
	}
	return all
}

// Special returns one special marker pattern, or nil when the group or
// term is unknown.
func (c *Catalog) Special(group SpecialGroup, term string) *regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.special[group][term]
}

// SpecialGroupPatterns returns all patterns of a special marker group.
func (c *Catalog) SpecialGroupPatterns(group SpecialGroup) map[string]*regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]*regexp.Regexp, len(c.special[group]))
	for term, re := range c.special[group] {
		out[term] = re
	}
	return out
}

// InTextStyles returns the styles that carry in-text patterns, in
// deterministic scoring order.
func (c *Catalog) InTextStyles() []style.Style {
	return append([]style.Style{}, style.ScoringOrder...)
}

// FullCitationStyles returns the styles that carry full-citation
// patterns, in deterministic report order.
func (c *Catalog) FullCitationStyles() []style.Style {
	return append([]style.Style{}, style.ReportOrder...)
}

// AddCustom compiles and appends a custom pattern to a style's pattern
// list. Invalid expressions and unknown styles leave the catalog
// untouched.
func (c *Catalog) AddCustom(s style.Style, category Category, expr string) error {
	target, ok := style.Parse(string(s))
	if !ok || target == style.None {
		return fmt.Errorf("unknown style %q", s)
	}

	re, err := compile(expr)
	if err != nil {
		return fmt.Errorf("compiling pattern for %s: %w", target, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch category {
	case CategoryInText:
		bucket := inTextBucket(target)
		c.inText[bucket] = append(c.inText[bucket], re)
	case CategoryFullCitation:
		c.fullCitation[style.Fused(target)] = append(c.fullCitation[style.Fused(target)], re)
	case CategoryHeaders:
		c.headers[style.Fused(target)] = append(c.headers[style.Fused(target)], re)
	default:
		return fmt.Errorf("unknown pattern category %q", category)
	}
	return nil
}
