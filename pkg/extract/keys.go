package extract

import (
	"regexp"

	"github.com/coolbeans/citelint/pkg/style"
)

// Key identifies an in-text citation for cross-referencing. MLA keys
// carry an empty year because MLA cites by page, not year.
type Key struct {
	Author string `json:"author"`
	Year   string `json:"year"`
}

// ReferenceKey identifies a bibliography entry for cross-referencing.
// The author is the leading surname only. An entry no pattern could
// parse yields a key with an empty author.
type ReferenceKey struct {
	Author string `json:"author"`
	Year   string `json:"year"`
	Title  string `json:"title"`
}

var (
	authorYearParen     = regexp.MustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?),\s(?P<year>\d{4})`)
	authorYearNarrative = regexp.MustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?)\s\((?P<year>\d{4})`)
	mlaAuthorParen      = regexp.MustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?)\s\d+`)
	mlaAuthorNarrative  = regexp.MustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?)\s\(\d+`)
	chicagoAuthorYear   = regexp.MustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?)\s(?P<year>\d{4})`)
)

// CitationKeys extracts (author, year) identifiers from a document's
// in-text citations. Numeric styles yield no keys because their
// citations carry reference numbers, not authors. Duplicates collapse
// preserving first-occurrence order.
func (e *Extractor) CitationKeys(text string, s style.Style) []Key {
	var keys []Key

	appendMatches := func(re *regexp.Regexp, withYear bool) {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			key := Key{Author: match[1]}
			if withYear {
				key.Year = match[2]
			}
			keys = append(keys, key)
		}
	}

	switch style.Fused(s) {
	case style.APA, style.Harvard:
		appendMatches(authorYearParen, true)
		appendMatches(authorYearNarrative, true)
	case style.MLA:
		appendMatches(mlaAuthorParen, false)
		appendMatches(mlaAuthorNarrative, false)
	case style.Chicago:
		appendMatches(chicagoAuthorYear, true)
	}

	return dedupeKeys(keys)
}

var referenceKeyPatterns = map[style.Style]*regexp.Regexp{
	// Surname, I. (Year). Title. Initials may come in pairs ("J. A.").
	style.APA: regexp.MustCompile(`^(?P<author>[A-Za-z\-]+),\s[A-Z]\.(?:\s[A-Z]\.)?(?:,\s(?:[A-Za-z\-]+),\s[A-Z]\.(?:\s[A-Z]\.)?)*(?:,?\s&\s(?:[A-Za-z\-]+),\s[A-Z]\.(?:\s[A-Z]\.)?)?(?:,\set\sal\.)?\s\((?P<year>\d{4})\)\.\s(?P<title>.+?)\.`),

	// Surname, Name. Title. Publisher, Year.
	style.MLA: regexp.MustCompile(`^(?P<author>[A-Za-z\-]+),\s[A-Za-z\-\s]+\.\s"?(?P<title>.+?)"?\.\s.+,\s(?P<year>\d{4})`),

	// Surname, Name. Title. City: Publisher, Year.
	style.Chicago: regexp.MustCompile(`^(?P<author>[A-Za-z\-]+),\s[A-Za-z\-\s]+\.\s"?(?P<title>.+?)"?\.\s.+,\s(?P<year>\d{4})`),

	// Surname, I. (Year) Title.
	style.Harvard: regexp.MustCompile(`^(?P<author>[A-Za-z\-]+),\s[A-Z]\.(?:\s[A-Z]\.)?(?:,\s(?:[A-Za-z\-]+),\s[A-Z]\.(?:\s[A-Z]\.)?)*(?:,?\sand\s(?:[A-Za-z\-]+),\s[A-Z]\.(?:\s[A-Z]\.)?)?(?:,\set\sal\.)?\s\((?P<year>\d{4})\)\s(?P<title>.+?)\.`),

	// [n] I. Surname, "Title," Journal, Year.
	style.IEEE: regexp.MustCompile(`^\[\d+\]\s(?:[A-Z]\.\s)?(?P<author>[A-Za-z\-]+)(?:,\s(?:[A-Z]\.\s)?[A-Za-z\-]+)*(?:,\sand\s(?:[A-Z]\.\s)?[A-Za-z\-]+)?,\s"(?P<title>.+?),".+,\s(?P<year>\d{4})`),

	// n. Surname AB. Title. Journal. Year.
	style.Vancouver: regexp.MustCompile(`^(?:\d+\.\s)?(?P<author>[A-Za-z\-]+)\s[A-Z]{1,2}(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})*(?:,\set\sal)?\.\s(?P<title>.+?)\.(?:.+?)\s(?P<year>\d{4})`),

	// Surname AB. Year. Title.
	style.CSE: regexp.MustCompile(`^(?P<author>[A-Za-z\-]+)\s[A-Z]{1,2}(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})*(?:,\set\sal)?\.\s(?P<year>\d{4})\.\s(?P<title>.+?)\.`),
}

// ReferenceKeys extracts (author, year, title) identifiers from
// bibliography entries using one anchored pattern per style.
func (e *Extractor) ReferenceKeys(entries []string, s style.Style) []ReferenceKey {
	re, ok := referenceKeyPatterns[style.Fused(s)]
	if !ok {
		return nil
	}

	keys := make([]ReferenceKey, 0, len(entries))
	for _, entry := range entries {
		match := re.FindStringSubmatch(entry)
		if match == nil {
			keys = append(keys, ReferenceKey{})
			continue
		}
		key := ReferenceKey{}
		for i, name := range re.SubexpNames() {
			if i == 0 || match[i] == "" {
				continue
			}
			switch name {
			case "author":
				key.Author = match[i]
			case "year":
				key.Year = match[i]
			case "title":
				key.Title = match[i]
			}
		}
		keys = append(keys, key)
	}
	return keys
}

func dedupeKeys(keys []Key) []Key {
	seen := make(map[Key]struct{}, len(keys))
	var unique []Key
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	return unique
}
