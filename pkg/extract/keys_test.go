package extract

import (
	"testing"

	"github.com/coolbeans/citelint/pkg/style"
)

func TestCitationKeysAPA(t *testing.T) {
	e := NewExtractor(nil)
	text := "First (Smith, 2020). Jones (2019) adds context. Again (Smith, 2020)."
	keys := e.CitationKeys(text, style.APA)

	want := []Key{
		{Author: "Smith", Year: "2020"},
		{Author: "Jones", Year: "2019"},
	}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys %v, want %d", len(keys), keys, len(want))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("keys[%d] = %+v, want %+v", i, keys[i], key)
		}
	}
}

func TestCitationKeysMLAHaveNoYear(t *testing.T) {
	e := NewExtractor(nil)
	keys := e.CitationKeys("First (Smith 25). Later (Smith 110).", style.MLA)

	if len(keys) != 1 {
		t.Fatalf("got %d keys %v, want 1", len(keys), keys)
	}
	if keys[0].Author != "Smith" || keys[0].Year != "" {
		t.Errorf("keys[0] = %+v, want author Smith with empty year", keys[0])
	}
}

func TestCitationKeysNumericStyles(t *testing.T) {
	e := NewExtractor(nil)
	for _, s := range []style.Style{style.IEEE, style.Vancouver} {
		if keys := e.CitationKeys("Shown in [1] and (2).", s); len(keys) != 0 {
			t.Errorf("%s keys = %v, want none", s, keys)
		}
	}
}

func TestCitationKeysEtAl(t *testing.T) {
	e := NewExtractor(nil)
	keys := e.CitationKeys("As argued (Smith et al., 2021).", style.APA)

	if len(keys) != 1 {
		t.Fatalf("got %d keys %v, want 1", len(keys), keys)
	}
	if keys[0].Author != "Smith et al." {
		t.Errorf("author = %q, want %q", keys[0].Author, "Smith et al.")
	}
	if keys[0].Year != "2021" {
		t.Errorf("year = %q, want 2021", keys[0].Year)
	}
}

func TestReferenceKeys(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name  string
		style style.Style
		entry string
		want  ReferenceKey
	}{
		{
			"apa book",
			style.APA,
			"Smith, J. (2020). A study of things. Academic Press.",
			ReferenceKey{Author: "Smith", Year: "2020", Title: "A study of things"},
		},
		{
			"apa book with two initials",
			style.APA,
			"Smith, J. A. (2020). A study of things. Academic Press.",
			ReferenceKey{Author: "Smith", Year: "2020", Title: "A study of things"},
		},
		{
			"harvard book with two initials",
			style.Harvard,
			"Smith, J. A. (2018) A concise study. London: Imprint House.",
			ReferenceKey{Author: "Smith", Year: "2018", Title: "A concise study"},
		},
		{
			"mla book",
			style.MLA,
			"Smith, John. The Big Book of Citations. Academic Press, 2019.",
			ReferenceKey{Author: "Smith", Year: "2019", Title: "The Big Book of Citations"},
		},
		{
			"harvard book",
			style.Harvard,
			"Smith, J. (2018) A concise study. London: Imprint House.",
			ReferenceKey{Author: "Smith", Year: "2018", Title: "A concise study"},
		},
		{
			"cse journal",
			style.CSE,
			"Smith JA. 2017. A study of things. Journal of Studies. 12(3):45-67.",
			ReferenceKey{Author: "Smith", Year: "2017", Title: "A study of things"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := e.ReferenceKeys([]string{tt.entry}, tt.style)
			if len(keys) != 1 {
				t.Fatalf("got %d keys, want 1", len(keys))
			}
			if keys[0] != tt.want {
				t.Errorf("key = %+v, want %+v", keys[0], tt.want)
			}
		})
	}
}

func TestReferenceKeysUnparsableEntry(t *testing.T) {
	e := NewExtractor(nil)
	keys := e.ReferenceKeys([]string{"an entry no pattern recognizes at all"}, style.APA)

	if len(keys) != 1 {
		t.Fatalf("got %d keys, want 1", len(keys))
	}
	if keys[0] != (ReferenceKey{}) {
		t.Errorf("key = %+v, want empty", keys[0])
	}
}
