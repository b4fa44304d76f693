package validate

import (
	"testing"

	"github.com/coolbeans/citelint/pkg/extract"
	"github.com/coolbeans/citelint/pkg/style"
)

func hasRule(issues []Issue, rule string) bool {
	for _, issue := range issues {
		if issue.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidateFormatInText(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		style    style.Style
		citation string
		rule     string
	}{
		{"apa missing comma", style.APA, "(Smith 2020)", "comma_between_author_year"},
		{"apa missing page indicator", style.APA, "(Smith, 2020, 45)", "page_indicator"},
		{"apa and in parenthetical", style.APA, "(Smith and Jones, 2020)", "ampersand_in_parenthetical"},
		{"apa ampersand in narrative", style.APA, "Smith & Jones (2020)", "ampersand_in_narrative"},
		{"mla comma before page", style.MLA, "(Smith, 25)", "no_comma_author_page"},
		{"mla p indicator", style.MLA, "(Smith p. 25)", "no_p_indicator"},
		{"harvard comma for pages", style.Harvard, "(Smith, 2020, 45)", "colon_for_pages"},
		{"ieee parentheses", style.IEEE, "(1)", "bracket_format"},
		{"ieee spaced list", style.IEEE, "[1, 2]", "multiple_citations"},
		{"vancouver spaced list", style.Vancouver, "(1, 2)", "citation_format"},
		{"cse comma before year", style.CSE, "(Smith, 2020)", "name_year_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := v.ValidateFormat(tt.citation, tt.style, KindInText)
			if !hasRule(issues, tt.rule) {
				t.Errorf("issues %v do not include rule %q", issues, tt.rule)
			}
		})
	}
}

func TestValidateFormatCleanCitations(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		style    style.Style
		citation string
	}{
		{"apa well formed", style.APA, "(Smith, 2020, p. 45)"},
		{"mla well formed", style.MLA, "(Smith 25)"},
		{"ieee well formed", style.IEEE, "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if issues := v.ValidateFormat(tt.citation, tt.style, KindInText); len(issues) != 0 {
				t.Errorf("issues = %v, want none", issues)
			}
		})
	}
}

func TestValidateFormatBibliography(t *testing.T) {
	v := New()

	t.Run("harvard year without parentheses", func(t *testing.T) {
		issues := v.ValidateFormat("Smith, J. 2020. A study. London: Imprint.", style.Harvard, KindBibliography)
		if !hasRule(issues, "year_parentheses") {
			t.Errorf("issues %v missing year_parentheses", issues)
		}
	})

	t.Run("cse comma before initials", func(t *testing.T) {
		issues := v.ValidateFormat("Smith, JA. 2020. A study. Journal. 1(2):3-4.", style.CSE, KindBibliography)
		if !hasRule(issues, "author_format") {
			t.Errorf("issues %v missing author_format", issues)
		}
	})
}

func TestCheckConsistencyMixedSystems(t *testing.T) {
	v := New()
	citations := extract.Citations{
		InText: []string{"(Smith, 2020)", "[3]"},
	}
	issues := v.CheckConsistency(citations, style.APA)

	if !hasRule(issues, "mixed_citation_styles") {
		t.Errorf("issues %v missing mixed_citation_styles", issues)
	}
	if !hasRule(issues, "mixed_citation_systems") {
		t.Errorf("issues %v missing mixed_citation_systems", issues)
	}
}

func TestCheckConsistencyAuthorVariants(t *testing.T) {
	v := New()
	citations := extract.Citations{
		InText: []string{"(Smith & Jones, 2020)", "(Smith and Jones, 2021)"},
	}
	issues := v.CheckConsistency(citations, style.APA)
	if !hasRule(issues, "inconsistent_author_names") {
		t.Errorf("issues %v missing inconsistent_author_names", issues)
	}
}

func TestCheckConsistencyCleanDocument(t *testing.T) {
	v := New()
	citations := extract.Citations{
		InText:       []string{"(Smith, 2020)", "(Jones, 2019)"},
		Bibliography: []string{"Smith, J. (2020). A study. Academic Press."},
	}
	if issues := v.CheckConsistency(citations, style.APA); len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestCheckConsistencyMixedAuthorFormats(t *testing.T) {
	v := New()
	citations := extract.Citations{
		Bibliography: []string{
			"Smith, John. A study of things. Academic Press, 2020.",
			"J. Smith, Another study of things, Academic Press, 2019.",
		},
	}
	issues := v.CheckConsistency(citations, style.MLA)
	if !hasRule(issues, "mixed_author_formats") {
		t.Errorf("issues %v missing mixed_author_formats", issues)
	}
}

func TestCheckConsistencyMixedNumbering(t *testing.T) {
	v := New()
	citations := extract.Citations{
		Bibliography: []string{
			"[1] A. Smith, \"A study,\" Journal, vol. 1, no. 1, pp. 1-2, 2020.",
			"Jones, K. (2019). Another study. University Press.",
		},
	}
	issues := v.CheckConsistency(citations, style.IEEE)
	if !hasRule(issues, "mixed_bibliography_numbering") {
		t.Errorf("issues %v missing mixed_bibliography_numbering", issues)
	}
}

func TestFootnoteSequence(t *testing.T) {
	v := New()

	t.Run("in order", func(t *testing.T) {
		citations := extract.Citations{
			InText: []string{"1. Smith, A study, 45.", "2. Jones, Another study, 12."},
		}
		issues := v.CheckConsistency(citations, style.ChicagoNotes)
		if hasRule(issues, "footnote_sequence") {
			t.Errorf("issues %v flag an in-order sequence", issues)
		}
	})

	t.Run("gap in sequence", func(t *testing.T) {
		citations := extract.Citations{
			InText: []string{"1. Smith, A study, 45.", "3. Jones, Another study, 12."},
		}
		issues := v.CheckConsistency(citations, style.ChicagoNotes)
		if !hasRule(issues, "footnote_sequence") {
			t.Errorf("issues %v missing footnote_sequence", issues)
		}
	})
}
