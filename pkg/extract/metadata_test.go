package extract

import (
	"testing"

	"github.com/coolbeans/citelint/pkg/style"
)

func TestInTextMetadata(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name  string
		style style.Style
		span  string
		want  Fields
	}{
		{
			"apa with page",
			style.APA,
			"(Smith, 2020, p. 45)",
			Fields{Author: "Smith", Year: "2020", Pages: "p. 45"},
		},
		{
			"apa two authors",
			style.APA,
			"(Smith & Jones, 2020)",
			Fields{Author: "Smith", SecondAuthor: "Jones", Year: "2020"},
		},
		{
			"mla author page",
			style.MLA,
			"(Smith 25-30)",
			Fields{Author: "Smith", Pages: "25-30"},
		},
		{
			"ieee numbers",
			style.IEEE,
			"[1, 2]",
			Fields{Citation: "1, 2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.InTextMetadata(tt.span, tt.style)
			if got != tt.want {
				t.Errorf("fields = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBibliographyMetadata(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("apa journal article", func(t *testing.T) {
		entry := "Smith, J. (2020). A study of things. Journal of Studies, 12(3), 45-67."
		got := e.BibliographyMetadata(entry, style.APA)
		if got.Author == "" || got.Year != "2020" {
			t.Errorf("fields = %+v, want author and year 2020", got)
		}
		if got.Journal != "Journal of Studies" {
			t.Errorf("journal = %q", got.Journal)
		}
		if got.Volume != "12" || got.Issue != "3" || got.Pages != "45-67" {
			t.Errorf("volume/issue/pages = %q/%q/%q", got.Volume, got.Issue, got.Pages)
		}
	})

	t.Run("mla web resource", func(t *testing.T) {
		entry := `Smith, John. "A Study of Things." Example Site, Jan. 5, 2020, https://example.org/study.`
		got := e.BibliographyMetadata(entry, style.MLA)
		if got.URL == "" {
			t.Errorf("fields = %+v, want a URL", got)
		}
		if got.Title != "A Study of Things" {
			t.Errorf("title = %q", got.Title)
		}
	})

	t.Run("no match yields empty fields", func(t *testing.T) {
		got := e.BibliographyMetadata("nothing shaped like a citation", style.APA)
		if !got.Empty() {
			t.Errorf("fields = %+v, want empty", got)
		}
	})
}
