package extract

import (
	"regexp"

	"github.com/coolbeans/citelint/pkg/style"
)

// Fields is the partial metadata record pulled from a citation's named
// capture groups. Absent groups stay empty; extraction never fails a
// matched span.
type Fields struct {
	Author       string `json:"author,omitempty"`
	SecondAuthor string `json:"second_author,omitempty"`
	Year         string `json:"year,omitempty"`
	Title        string `json:"title,omitempty"`
	Journal      string `json:"journal,omitempty"`
	Site         string `json:"site,omitempty"`
	Volume       string `json:"volume,omitempty"`
	Issue        string `json:"issue,omitempty"`
	Pages        string `json:"pages,omitempty"`
	Publisher    string `json:"publisher,omitempty"`
	City         string `json:"city,omitempty"`
	Edition      string `json:"edition,omitempty"`
	URL          string `json:"url,omitempty"`
	Number       string `json:"number,omitempty"`
	Date         string `json:"date,omitempty"`
	AccessDate   string `json:"access_date,omitempty"`
	Citation     string `json:"citation,omitempty"`
}

// Empty reports whether no field was populated.
func (f Fields) Empty() bool {
	return f == Fields{}
}

// InTextMetadata extracts metadata from an in-text citation span. The
// first pattern of the style that matches the span wins.
func (e *Extractor) InTextMetadata(span string, s style.Style) Fields {
	return firstMatchFields(span, e.catalog.InText(s))
}

// BibliographyMetadata extracts metadata from a bibliography entry.
func (e *Extractor) BibliographyMetadata(entry string, s style.Style) Fields {
	return firstMatchFields(entry, e.catalog.FullCitation(s))
}

func firstMatchFields(text string, patterns []*regexp.Regexp) Fields {
	for _, re := range patterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		fields := fieldsFromGroups(re, match)
		if !fields.Empty() {
			return fields
		}
	}
	return Fields{}
}

// fieldsFromGroups maps the named capture groups of a match onto the
// metadata record. Group names follow the catalog's conventions.
func fieldsFromGroups(re *regexp.Regexp, match []string) Fields {
	var f Fields
	for i, name := range re.SubexpNames() {
		if i == 0 || i >= len(match) || match[i] == "" {
			continue
		}
		value := match[i]
		switch name {
		case "author", "author1":
			if f.Author == "" {
				f.Author = value
			}
		case "author2":
			f.SecondAuthor = value
		case "year":
			f.Year = value
		case "title", "chapter_title":
			if f.Title == "" {
				f.Title = value
			}
		case "journal":
			f.Journal = value
		case "site":
			f.Site = value
		case "volume":
			f.Volume = value
		case "issue":
			f.Issue = value
		case "pages", "page":
			if f.Pages == "" {
				f.Pages = value
			}
		case "publisher":
			f.Publisher = value
		case "city":
			f.City = value
		case "edition":
			f.Edition = value
		case "url":
			f.URL = value
		case "number", "ref_num":
			if f.Number == "" {
				f.Number = value
			}
		case "date":
			f.Date = value
		case "accessdate", "access_date":
			f.AccessDate = value
		case "citation":
			f.Citation = value
		}
	}
	return f
}
