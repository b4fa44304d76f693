// Package validate checks extracted citations against per-style
// formatting rules and document-level consistency expectations.
package validate

import (
	"regexp"

	"github.com/coolbeans/citelint/pkg/style"
)

// Kind distinguishes the two citation shapes rules apply to.
type Kind string

const (
	// KindInText marks rules for in-text citation spans.
	KindInText Kind = "in_text"
	// KindBibliography marks rules for bibliography entries.
	KindBibliography Kind = "bibliography"
)

// Rule flags a style violation when its pattern matches a citation.
type Rule struct {
	ID             string
	Pattern        *regexp.Regexp
	Description    string
	Recommendation string
}

// formatRules maps style and kind to the violation patterns checked by
// ValidateFormat. Italics-dependent rules from the style guides are
// omitted; italics are not recoverable from plain text.
var formatRules = map[style.Style]map[Kind][]Rule{
	style.APA: {
		KindInText: {
			{
				ID:             "comma_between_author_year",
				Pattern:        regexp.MustCompile(`\([A-Za-z\-]+ \d{4}\)`),
				Description:    "missing comma between author and year",
				Recommendation: "use a comma between author and year: (Author, 2020) rather than (Author 2020)",
			},
			{
				ID:             "page_indicator",
				Pattern:        regexp.MustCompile(`\d{4}, \d+`),
				Description:    "missing page indicator",
				Recommendation: `put "p." before the page number: (Author, 2020, p. 25)`,
			},
			{
				ID:             "ampersand_in_parenthetical",
				Pattern:        regexp.MustCompile(`\([A-Za-z\-]+ and [A-Za-z\-]+,`),
				Description:    `"and" used instead of "&" in a parenthetical citation`,
				Recommendation: `use "&" inside parentheses: (Author & Author, 2020)`,
			},
			{
				ID:             "ampersand_in_narrative",
				Pattern:        regexp.MustCompile(`[A-Za-z\-]+ & [A-Za-z\-]+ \(\d{4}`),
				Description:    `"&" used instead of "and" in a narrative citation`,
				Recommendation: `spell out "and" in narrative citations: Author and Author (2020)`,
			},
		},
		KindBibliography: {
			{
				ID:             "title_capitalization",
				Pattern:        regexp.MustCompile(`\.\s+[a-z]`),
				Description:    "sentence starts lowercase after a period",
				Recommendation: "capitalize the first word of the title after the year",
			},
		},
	},
	style.MLA: {
		KindInText: {
			{
				ID:             "no_comma_author_page",
				Pattern:        regexp.MustCompile(`\([A-Za-z\-]+, \d+`),
				Description:    "comma between author and page",
				Recommendation: "drop the comma: (Author 25) rather than (Author, 25)",
			},
			{
				ID:             "no_p_indicator",
				Pattern:        regexp.MustCompile(`\([A-Za-z\-]+ p\. \d+`),
				Description:    `"p." used in an MLA citation`,
				Recommendation: `omit "p.": (Author 25) rather than (Author p. 25)`,
			},
			{
				ID:             "and_not_ampersand",
				Pattern:        regexp.MustCompile(`[A-Za-z\-]+ & [A-Za-z\-]+ \d+`),
				Description:    `"&" used instead of "and"`,
				Recommendation: `connect authors with "and": (Author and Author 25)`,
			},
		},
	},
	style.Harvard: {
		KindInText: {
			{
				ID:             "colon_for_pages",
				Pattern:        regexp.MustCompile(`\([A-Za-z\-]+, \d{4}, \d+`),
				Description:    "comma used before the page number",
				Recommendation: "use a colon before pages: (Author, 2020: 25)",
			},
			{
				ID:             "colon_for_pages_narrative",
				Pattern:        regexp.MustCompile(`[A-Za-z\-]+ \(\d{4}, \d+`),
				Description:    "comma used before the page number",
				Recommendation: "use a colon before pages: Author (2020: 25)",
			},
		},
		KindBibliography: {
			{
				ID:             "year_parentheses",
				Pattern:        regexp.MustCompile(`^[A-Za-z\-]+,\s[A-Z]\.\s\d{4}`),
				Description:    "year not enclosed in parentheses",
				Recommendation: "enclose the year: Smith, J. (2020)",
			},
		},
	},
	style.IEEE: {
		KindInText: {
			{
				ID:             "bracket_format",
				Pattern:        regexp.MustCompile(`\(\d+\)`),
				Description:    "parentheses used instead of brackets",
				Recommendation: "use [1] rather than (1)",
			},
			{
				ID:             "multiple_citations",
				Pattern:        regexp.MustCompile(`\[\d+, \d+\]`),
				Description:    "spaced list inside one bracket pair",
				Recommendation: "cite multiples as [1], [2] or [1]-[3]",
			},
		},
		KindBibliography: {
			{
				ID:             "numbering_format",
				Pattern:        regexp.MustCompile(`^\[\d+\]\s[a-z]`),
				Description:    "lowercase letter after the reference number",
				Recommendation: "capitalize after the number: [1] A. Author",
			},
		},
	},
	style.Vancouver: {
		KindInText: {
			{
				ID:             "citation_format",
				Pattern:        regexp.MustCompile(`\(\d+, \d+\)`),
				Description:    "spaces in a multiple citation",
				Recommendation: "cite multiples without spaces: (1,2) or [1,2]",
			},
		},
		KindBibliography: {
			{
				ID:             "page_format",
				Pattern:        regexp.MustCompile(`\d{4};\d+(?:\(\d+\))?;\d+`),
				Description:    "semicolon before the page range",
				Recommendation: "use year;volume(issue):pages - 2020;12(3):45-50",
			},
		},
	},
	style.CSE: {
		KindInText: {
			{
				ID:             "name_year_format",
				Pattern:        regexp.MustCompile(`\([A-Za-z\-]+, \d{4}\)`),
				Description:    "comma between author and year",
				Recommendation: "use (Smith 2020) without a comma",
			},
			{
				ID:             "citation_sequence_format",
				Pattern:        regexp.MustCompile(`\(\d+\)`),
				Description:    "parentheses used in a citation-sequence reference",
				Recommendation: "use [1] rather than (1) in the sequence system",
			},
		},
		KindBibliography: {
			{
				ID:             "author_format",
				Pattern:        regexp.MustCompile(`^[A-Za-z\-]+,\s[A-Z][A-Z]`),
				Description:    "comma between surname and initials",
				Recommendation: "write authors as Smith JA without a comma",
			},
		},
	},
}

// RulesFor returns the format rules for a style and kind. The Chicago
// variants share the fused style's rules.
func RulesFor(s style.Style, kind Kind) []Rule {
	return formatRules[style.Fused(s)][kind]
}
