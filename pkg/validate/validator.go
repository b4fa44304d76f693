package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/coolbeans/citelint/pkg/crossref"
	"github.com/coolbeans/citelint/pkg/extract"
	"github.com/coolbeans/citelint/pkg/style"
)

// Issue is a single problem found in a citation or in the document's
// overall citation usage.
type Issue struct {
	Rule           string `json:"rule"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Citation       string `json:"citation,omitempty"`
}

// Validator applies format and consistency rules.
type Validator struct{}

// New creates a Validator.
func New() *Validator { return &Validator{} }

// ValidateFormat checks one citation span against the style's format
// rules and returns the violations found.
func (v *Validator) ValidateFormat(citation string, s style.Style, kind Kind) []Issue {
	var issues []Issue
	for _, rule := range RulesFor(s, kind) {
		if rule.Pattern.MatchString(citation) {
			issues = append(issues, Issue{
				Rule:           rule.ID,
				Description:    rule.Description,
				Recommendation: rule.Recommendation,
				Citation:       citation,
			})
		}
	}
	return issues
}

// ValidateAll runs format rules over every extracted citation and adds
// the document-level consistency checks.
func (v *Validator) ValidateAll(citations extract.Citations, s style.Style) []Issue {
	var issues []Issue
	for _, span := range citations.InText {
		issues = append(issues, v.ValidateFormat(span, s, KindInText)...)
	}
	for _, entry := range citations.Bibliography {
		issues = append(issues, v.ValidateFormat(entry, s, KindBibliography)...)
	}
	issues = append(issues, v.CheckConsistency(citations, s)...)
	return issues
}

var (
	authorYearShape = regexp.MustCompile(`\([A-Za-z].*\d{4}`)
	numericShape    = regexp.MustCompile(`[\[\(]\d+[\]\)]`)
	lastFirstShape  = regexp.MustCompile(`^[A-Za-z\-]+,\s[A-Za-z]`)
	firstLastShape  = regexp.MustCompile(`^[A-Z]\.\s[A-Za-z\-]+`)
	numberedEntry   = regexp.MustCompile(`^\d+\.|^\[\d+\]`)
	letterEntry     = regexp.MustCompile(`^[A-Za-z]`)
	footnoteOpen    = regexp.MustCompile(`^(\d+)\.\s`)
)

// CheckConsistency flags mixtures that point at more than one citation
// system inside a single document.
func (v *Validator) CheckConsistency(citations extract.Citations, s style.Style) []Issue {
	var issues []Issue

	inText := citations.InText
	if len(inText) > 0 {
		hasParen := false
		hasBracket := false
		hasAuthorYear := false
		hasNumeric := false
		for _, span := range inText {
			if strings.Contains(span, "(") && strings.Contains(span, ")") {
				hasParen = true
			}
			if strings.Contains(span, "[") && strings.Contains(span, "]") {
				hasBracket = true
			}
			if authorYearShape.MatchString(span) {
				hasAuthorYear = true
			}
			if numericShape.MatchString(span) {
				hasNumeric = true
			}
		}

		if hasParen && hasBracket {
			issues = append(issues, Issue{
				Rule:           "mixed_citation_styles",
				Description:    "citations mix parentheses () and brackets []",
				Recommendation: fmt.Sprintf("in %s, settle on one delimiter for every citation", s),
			})
		}
		if hasAuthorYear && hasNumeric {
			issues = append(issues, Issue{
				Rule:           "mixed_citation_systems",
				Description:    "author-year and numeric citation systems are mixed",
				Recommendation: "choose a single citation system for the whole document",
			})
		}

		issues = append(issues, v.checkAuthorVariants(inText, s)...)
		if style.Fused(s) == style.Chicago {
			issues = append(issues, checkFootnoteSequence(inText)...)
		}
	}

	bib := citations.Bibliography
	if len(bib) > 0 {
		hasLastFirst := false
		hasFirstLast := false
		hasNumbered := false
		hasUnnumbered := false
		for _, entry := range bib {
			if lastFirstShape.MatchString(entry) {
				hasLastFirst = true
			}
			if firstLastShape.MatchString(entry) {
				hasFirstLast = true
			}
			if numberedEntry.MatchString(entry) {
				hasNumbered = true
			}
			if !numberedEntry.MatchString(entry) && letterEntry.MatchString(entry) {
				hasUnnumbered = true
			}
		}

		if hasLastFirst && hasFirstLast {
			issues = append(issues, Issue{
				Rule:           "mixed_author_formats",
				Description:    `entries mix "Surname, Name" and "I. Surname" author formats`,
				Recommendation: fmt.Sprintf("in %s, format every author the same way in the reference list", s),
			})
		}
		if hasNumbered && hasUnnumbered {
			issues = append(issues, Issue{
				Rule:           "mixed_bibliography_numbering",
				Description:    "the reference list mixes numbered and unnumbered entries",
				Recommendation: fmt.Sprintf("in %s, either number every entry or none", s),
			})
		}
	}

	return issues
}

// checkAuthorVariants flags the same author cited under different
// spellings, e.g. "Smith & Jones" alongside "Smith and Jones".
func (v *Validator) checkAuthorVariants(inText []string, s style.Style) []Issue {
	var issues []Issue
	variants := make(map[string]string)

	authorRe := regexp.MustCompile(`\(([A-Za-z\-]+(?:\s[A-Za-z&\-\.]+)*)`)
	for _, span := range inText {
		match := authorRe.FindStringSubmatch(span)
		if match == nil {
			continue
		}
		author := strings.TrimSpace(match[1])
		norm := crossref.NormalizeAuthor(author)
		if norm == "" {
			continue
		}
		if prior, ok := variants[norm]; ok {
			if prior != author {
				issues = append(issues, Issue{
					Rule:           "inconsistent_author_names",
					Description:    fmt.Sprintf("inconsistent spellings of the same author: %q and %q", author, prior),
					Recommendation: "cite each author the same way throughout",
					Citation:       span,
				})
			}
		} else {
			variants[norm] = author
		}
	}
	return issues
}

// checkFootnoteSequence verifies that Chicago footnote numbers run
// 1, 2, 3, ... in citation order.
func checkFootnoteSequence(inText []string) []Issue {
	var issues []Issue
	expected := 1
	for _, span := range inText {
		match := footnoteOpen.FindStringSubmatch(span)
		if match == nil {
			continue
		}
		num, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if num != expected {
			issues = append(issues, Issue{
				Rule:           "footnote_sequence",
				Description:    fmt.Sprintf("footnote number out of sequence: expected %d, found %d", expected, num),
				Recommendation: "renumber footnotes so they run consecutively",
				Citation:       span,
			})
		}
		expected++
	}
	return issues
}
