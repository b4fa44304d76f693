package catalog

import (
	"testing"

	"github.com/coolbeans/citelint/pkg/style"
)

func TestBuiltinInTextPatterns(t *testing.T) {
	cat := New()

	tests := []struct {
		name  string
		style style.Style
		text  string
		match bool
	}{
		{"apa parenthetical", style.APA, "(Smith, 2020)", true},
		{"apa with page", style.APA, "(Smith, 2020, p. 45)", true},
		{"apa two authors", style.APA, "(Smith & Jones, 2020)", true},
		{"apa rejects bare page", style.APA, "(Smith 25)", false},
		{"mla author page", style.MLA, "(Smith 25)", true},
		{"mla page range", style.MLA, "(Smith 25-30)", true},
		{"mla rejects author year", style.MLA, "(Smith, 2020)", false},
		{"harvard parenthetical", style.Harvard, "(Smith, 2020)", true},
		{"harvard page colon", style.Harvard, "(Smith, 2020: 45)", true},
		{"ieee bracket", style.IEEE, "[1]", true},
		{"ieee list", style.IEEE, "[1, 2, 3]", true},
		{"ieee rejects paren", style.IEEE, "(1)", false},
		{"vancouver paren number", style.Vancouver, "(1)", true},
		{"vancouver range", style.Vancouver, "(1-3)", true},
		{"vancouver superscript", style.Vancouver, "text¹ more", true},
		{"cse name year", style.CSE, "(Smith 2020)", true},
		{"chicago author date", style.ChicagoAuthorDate, "(Smith 2020, 45)", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := false
			for _, re := range cat.InText(tt.style) {
				if re.MatchString(tt.text) {
					matched = true
					break
				}
			}
			if matched != tt.match {
				t.Errorf("%s patterns matching %q = %v, want %v", tt.style, tt.text, matched, tt.match)
			}
		})
	}
}

func TestChicagoFusedInTextUnion(t *testing.T) {
	cat := New()
	fused := len(cat.InText(style.Chicago))
	variants := len(cat.InText(style.ChicagoAuthorDate)) + len(cat.InText(style.ChicagoNotes))
	if fused != variants {
		t.Errorf("fused Chicago has %d in-text patterns, want union of variants (%d)", fused, variants)
	}
}

func TestHeadersMatchLineStart(t *testing.T) {
	cat := New()

	tests := []struct {
		name  string
		style style.Style
		text  string
		match bool
	}{
		{"apa references", style.APA, "body text\nReferences\nSmith, J.", true},
		{"mla works cited", style.MLA, "body\nWorks Cited\n", true},
		{"chicago bibliography", style.Chicago, "body\nBibliography\n", true},
		{"spanish referencias", style.APA, "cuerpo\nReferencias\n", true},
		{"mid-line header ignored", style.APA, "see the References section", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := false
			for _, re := range cat.Headers(tt.style) {
				if re.MatchString(tt.text) {
					matched = true
					break
				}
			}
			if matched != tt.match {
				t.Errorf("%s headers matching %q = %v, want %v", tt.style, tt.text, matched, tt.match)
			}
		})
	}
}

func TestSpecialPatterns(t *testing.T) {
	cat := New()

	tests := []struct {
		group SpecialGroup
		term  string
		text  string
	}{
		{LatinTerms, "ibid", "Ibid., 45."},
		{LatinTerms, "et_al", "Smith et al. argue"},
		{Abbreviations, "page", "p. 45"},
		{DigitalIdentifiers, "doi", "doi:10.1000/182"},
		{DigitalIdentifiers, "url", "https://example.org/paper"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			re := cat.Special(tt.group, tt.term)
			if re == nil {
				t.Fatalf("no %s pattern named %q", tt.group, tt.term)
			}
			if !re.MatchString(tt.text) {
				t.Errorf("%s pattern does not match %q", tt.term, tt.text)
			}
		})
	}

	if got := cat.Special(LatinTerms, "nonexistent"); got != nil {
		t.Errorf("unknown term returned a pattern")
	}
}

func TestAddCustom(t *testing.T) {
	cat := New()

	before := len(cat.InText(style.APA))
	if err := cat.AddCustom(style.APA, CategoryInText, `\(see [A-Z][a-z]+\)`); err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	if got := len(cat.InText(style.APA)); got != before+1 {
		t.Errorf("pattern count = %d, want %d", got, before+1)
	}

	// A fused Chicago addition must land where the variant scorers and
	// InText's variant union find it.
	chicagoBefore := len(cat.InText(style.Chicago))
	if err := cat.AddCustom(style.Chicago, CategoryInText, `<<[A-Za-z]+ \d{4}>>`); err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	if got := len(cat.InText(style.Chicago)); got != chicagoBefore+1 {
		t.Errorf("fused chicago pattern count = %d, want %d", got, chicagoBefore+1)
	}
	found := false
	for _, re := range cat.InText(style.ChicagoAuthorDate) {
		if re.MatchString("As noted <<Smithson 2020>>.") {
			found = true
		}
	}
	if !found {
		t.Error("fused chicago pattern not visible to the variant styles")
	}

	if err := cat.AddCustom("KLINGON", CategoryInText, `x`); err == nil {
		t.Error("expected error for unknown style")
	}
	if err := cat.AddCustom(style.APA, CategoryInText, `([`); err == nil {
		t.Error("expected error for invalid pattern")
	}
	if err := cat.AddCustom(style.APA, "bogus", `x`); err == nil {
		t.Error("expected error for unknown category")
	}
}
