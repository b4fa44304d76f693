package catalog

import (
	"regexp"

	"github.com/coolbeans/citelint/pkg/style"
)

// builtinInText creates the default in-text citation pattern set. A
// single citation may match patterns of several styles; the scorer
// resolves the ambiguity by relative counts.
func builtinInText() map[style.Style][]*regexp.Regexp {
	return map[style.Style][]*regexp.Regexp{
		style.APA: {
			// (Author, 2020) or (Author, 2020, p. 25)
			mustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?),\s(?P<year>\d{4})(?:,\s(?P<pages>p\.?\s\d+(?:-\d+)?))?\)`),

			// (Author & Author, 2020)
			mustCompile(`\((?P<author1>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?)\s&\s(?P<author2>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?),\s(?P<year>\d{4})(?:,\s(?P<pages>p\.?\s\d+(?:-\d+)?))?\)`),

			// (Author et al., 2020)
			mustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?)\set\sal\.,\s(?P<year>\d{4})(?:,\s(?P<pages>p\.?\s\d+(?:-\d+)?))?\)`),

			// Author (2020) or Author (2020, p. 25)
			mustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?)\s\((?P<year>\d{4})(?:,\s(?P<pages>p\.?\s\d+(?:-\d+)?))?\)`),
		},
		style.MLA: {
			// (Smith 25)
			mustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) (?P<pages>\d+(?:-\d+)?)\)`),

			// (Smith and Johnson 25)
			mustCompile(`\((?P<author1>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?) and (?P<author2>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?) (?P<pages>\d+(?:-\d+)?)\)`),

			// Smith (25)
			mustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) \((?P<pages>\d+(?:-\d+)?)\)`),
		},
		style.ChicagoAuthorDate: {
			// (Author 2020, 25)
			mustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) (?P<year>\d{4})(?:, (?P<pages>\d+(?:-\d+)?))?\)`),

			// (Author and Author 2020, 25)
			mustCompile(`\((?P<author1>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?) and (?P<author2>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?) (?P<year>\d{4})(?:, (?P<pages>\d+(?:-\d+)?))?\)`),

			// Author (2020, 25)
			mustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) \((?P<year>\d{4})(?:, (?P<pages>\d+(?:-\d+)?))?\)`),
		},
		style.ChicagoNotes: {
			// Numbered footnote line
			mustCompile(`^\d+\.\s(?P<citation>.+)`),

			// Ibid., Op. cit., Loc. cit.
			mustCompile(`(?P<citation>(?:Ibid\.|Op\. cit\.|Loc\. cit\.)(?:,\s\d+(?:-\d+)?)?)`),
		},
		style.Harvard: {
			// (Author, 2020) or (Author, 2020: 25)
			mustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?),\s(?P<year>\d{4})(?:: (?P<pages>\d+(?:-\d+)?))?\)`),

			// Author (2020)
			mustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) \((?P<year>\d{4})(?:: (?P<pages>\d+(?:-\d+)?))?\)`),
		},
		style.IEEE: {
			// [1] or [1, 2, 3]
			mustCompile(`\[(?P<citation>\d+(?:,\s*\d+)*)\]`),
		},
		style.Vancouver: {
			// (1) or (1-3)
			mustCompile(`\((?P<citation>\d+(?:-\d+)?)\)`),

			// Superscript reference marks
			mustCompile(`(?P<citation>[\x{00B9}\x{00B2}\x{00B3}\x{2070}-\x{2079}]+)`),
		},
		style.CSE: {
			// (Author 2020)
			mustCompile(`\((?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) (?P<year>\d{4})\)`),

			// Author 2020
			mustCompile(`(?P<author>[A-Za-z\-]+(?:\s[A-Za-z\-]+)?(?: et al\.)?) (?P<year>\d{4})`),
		},
	}
}

// builtinFullCitation creates the default bibliography entry pattern
// set. Named groups feed metadata extraction; callers must tolerate
// absent groups.
func builtinFullCitation() map[style.Style][]*regexp.Regexp {
	return map[style.Style][]*regexp.Regexp{
		style.APA: {
			// Book: Surname, I. (Year). Title. Publisher.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)(?:,\s[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)*(?:,?\s&\s[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)?\s\((?P<year>\d{4})\)\.\s(?P<title>.+?)\.\s(?P<publisher>[A-Za-z\s]+)\.`),

			// Article: Surname, I. (Year). Title. Journal, vol(issue), pp-pp.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)(?:,\s[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)*(?:,?\s&\s[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)?\s\((?P<year>\d{4})\)\.\s(?P<title>.+?)\.\s(?P<journal>.+?),\s(?P<volume>\d+)(?:\((?P<issue>\d+)\))?,\s(?P<pages>\d+-\d+)\.`),

			// Web resource: Surname, I. (Year). Title. Retrieved from URL
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)(?:,\s[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)*(?:,?\s&\s[A-Za-z\-]+,\s[A-Z]\.(?:\s[A-Z]\.)?)?\s\((?P<year>\d{4})(?:,\s[A-Za-z]+\s\d+)?\)\.\s(?P<title>.+?)\.\s(?:Recuperado|Retrieved)(?:\son|\sde)\s(?P<url>https?://[^\s]+)`),
		},
		style.MLA: {
			// Book: Surname, Name. Title. Publisher, Year.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Za-z\s\-]+)(?:,\sand\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)*\.\s(?P<title>.+?)\.\s(?P<publisher>[A-Za-z\s]+),\s(?P<year>\d{4})\.`),

			// Article: Surname, Name. "Title." Journal, vol. N, no. N, Year, pp. xx-xx.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Za-z\s\-]+)(?:,\sand\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)*\.\s"(?P<title>.+?)\."\s(?P<journal>.+?),\svol\.\s(?P<volume>\d+)(?:,\sno\.\s(?P<issue>\d+))?,\s(?P<year>\d{4}),\spp\.\s(?P<pages>\d+-\d+)\.`),

			// Web resource: Surname, Name. "Title." Site, Date, URL. Accessed Date.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Za-z\s\-]+)(?:,\sand\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)*\.\s"(?P<title>.+?)\."\s(?P<site>.+?),\s(?P<date>[A-Za-z\.\s\d,]+),\s(?P<url>https?://[^\s]+)(?:\.\s(?:Accessed|Accedido)\s(?P<accessdate>[A-Za-z\.\s\d,]+))?.`),
		},
		style.Chicago: {
			// Book: Surname, Name. Title. City: Publisher, Year.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Za-z\s\-]+)(?:,\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)*(?:,\sand\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)?\.\s(?P<title>.+?)\.\s(?P<city>[A-Za-z\s]+):\s(?P<publisher>[A-Za-z\s]+),\s(?P<year>\d{4})\.`),

			// Article: Surname, Name. "Title." Journal vol, no. N (Year): pp-pp.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Za-z\s\-]+)(?:,\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)*(?:,\sand\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)?\.\s"(?P<title>.+?)\."\s(?P<journal>.+?)\s(?P<volume>\d+),\sno\.\s(?P<issue>\d+)\s\((?P<year>\d{4})\):\s(?P<pages>\d+-\d+)\.`),

			// Web resource: Surname, Name. "Title." Site. Date. URL.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Za-z\s\-]+)(?:,\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)*(?:,\sand\s[A-Za-z\-]+,\s[A-Za-z\s\-]+)?\.\s"(?P<title>.+?)\."\s(?P<site>.+?)\.\s(?P<date>[A-Za-z\.\s\d,]+)\.\s(?P<url>https?://[^\s]+)\.`),
		},
		style.Harvard: {
			// Book: Surname, I. (Year) Title. City: Publisher.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Z]\.)(?:,\s[A-Za-z\-]+,\s[A-Z]\.)*(?:\sand\s[A-Za-z\-]+,\s[A-Z]\.)?\s\((?P<year>\d{4})\)\s(?P<title>.+?)\.\s(?P<city>[A-Za-z\s]+):\s(?P<publisher>[A-Za-z\s]+)\.`),

			// Article: Surname, I. (Year) 'Title', Journal, Volume(Issue), pp. xx-xx.
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Z]\.)(?:,\s[A-Za-z\-]+,\s[A-Z]\.)*(?:\sand\s[A-Za-z\-]+,\s[A-Z]\.)?\s\((?P<year>\d{4})\)\s'(?P<title>.+?)',\s(?P<journal>.+?),\s(?P<volume>\d+)(?:\((?P<issue>\d+)\))?,\spp\.\s(?P<pages>\d+-\d+)\.`),

			// Web resource: Surname, I. (Year) Title [Online]. Available at: URL [Accessed: date].
			mustCompile(`(?P<author>[A-Za-z\-]+,\s[A-Z]\.)(?:,\s[A-Za-z\-]+,\s[A-Z]\.)*(?:\sand\s[A-Za-z\-]+,\s[A-Z]\.)?\s\((?P<year>\d{4})\)\s(?P<title>.+?)\s\[Online\]\.\s(?:Available|Disponible)(?:\sat|\sen):\s(?P<url>https?://[^\s]+)\s\[(?:Accessed|Accedido):\s(?P<accessdate>[A-Za-z\.\s\d,]+)\]`),
		},
		style.IEEE: {
			// [1] I. Surname, "Title," Journal, vol. x, no. x, pp. xx-xx, Date.
			mustCompile(`\[(?P<number>\d+)\]\s(?P<author>[A-Z]\.\s[A-Za-z\-]+)(?:,\s[A-Z]\.\s[A-Za-z\-]+)*(?:,\sand\s[A-Z]\.\s[A-Za-z\-]+)?,\s"(?P<title>.+?)(?:,|")(?:\s(?P<journal>.+?),\svol\.\s(?P<volume>\d+),\sno\.\s(?P<issue>\d+),\spp\.\s(?P<pages>\d+-\d+),\s(?P<date>[A-Za-z\.\s\d,]+))?`),

			// [1] I. Surname, Book title. City: Publisher, Year, pp. xx-xx.
			mustCompile(`\[(?P<number>\d+)\]\s(?P<author>[A-Z]\.\s[A-Za-z\-]+)(?:,\s[A-Z]\.\s[A-Za-z\-]+)*(?:,\sand\s[A-Z]\.\s[A-Za-z\-]+)?,\s(?P<title>.+?)\.\s(?P<city>[A-Za-z\s]+):\s(?P<publisher>[A-Za-z\s]+),\s(?P<year>\d{4})(?:,\spp\.\s(?P<pages>\d+-\d+))?`),
		},
		style.Vancouver: {
			// 1. Surname AB, Surname CD. Title. Journal. Year;Volume(Issue):Pages.
			mustCompile(`(?P<number>\d+)\.\s(?P<author>[A-Za-z\-]+\s[A-Z]{1,2})(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})*(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})?\.\s(?P<title>.+?)\.\s(?P<journal>.+?)\.\s(?P<year>\d{4});(?P<volume>\d+)(?:\((?P<issue>\d+)\))?:(?P<pages>\d+-\d+)\.`),

			// 1. Surname AB. Book title. Edition. City: Publisher; Year.
			mustCompile(`(?P<number>\d+)\.\s(?P<author>[A-Za-z\-]+\s[A-Z]{1,2})(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})*(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})?\.\s(?P<title>.+?)(?:\.\s(?P<edition>\d+)(?:rd|nd|st|th)\sed)?(?:\.\s(?P<city>[A-Za-z\s]+):\s(?P<publisher>[A-Za-z\s]+);\s(?P<year>\d{4}))?`),
		},
		style.CSE: {
			// Surname IN. Year. Title. Journal. Volume(Issue):Pages.
			mustCompile(`(?P<author>[A-Za-z\-]+\s[A-Z]{1,2})(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})*\.\s(?P<year>\d{4})\.\s(?P<title>.+?)\.\s(?P<journal>.+?)\.\s(?P<volume>\d+)(?:\((?P<issue>\d+)\))?:(?P<pages>\d+-\d+)\.`),

			// Surname IN, Surname IN. Year. Book title. City (State): Publisher. Pages p.
			mustCompile(`(?P<author>[A-Za-z\-]+\s[A-Z]{1,2})(?:,\s[A-Za-z\-]+\s[A-Z]{1,2})*\.\s(?P<year>\d{4})\.\s(?P<title>.+?)\.\s(?P<city>[A-Za-z\s]+)(?:\s\([A-Z]{2}\))?:\s(?P<publisher>[A-Za-z\s]+)(?:\.\s(?P<pages>\d+)\sp)?`),
		},
	}
}

// builtinHeaders creates the bibliography header pattern set. Headers
// cover the English and Spanish conventions for each style.
func builtinHeaders() map[style.Style][]*regexp.Regexp {
	headerTexts := map[style.Style][]string{
		style.APA:       {`Referencias`, `Referencias bibliográficas`, `Bibliografía`, `References`, `Reference List`, `Bibliography`},
		style.MLA:       {`Obras citadas`, `Works Cited`, `Bibliografía`, `Bibliography`},
		style.Chicago:   {`Bibliografía`, `Bibliography`, `Referencias`, `References`, `Notas`, `Notes`},
		style.Harvard:   {`Referencias`, `Referencias bibliográficas`, `Bibliografía`, `Reference List`, `References`},
		style.IEEE:      {`Referencias`, `References`},
		style.Vancouver: {`Referencias`, `References`, `Bibliografía`, `Bibliography`},
		style.CSE:       {`Referencias`, `References`, `Cited References`, `Referencias citadas`, `Bibliografía`, `Bibliography`},
	}

	headers := make(map[style.Style][]*regexp.Regexp, len(headerTexts))
	for s, texts := range headerTexts {
		compiled := make([]*regexp.Regexp, 0, len(texts))
		for _, text := range texts {
			// Horizontal whitespace only. In multiline mode \s would
			// swallow the preceding newline and shift the match start
			// onto the blank line above the header.
			compiled = append(compiled, mustCompile(`(?i)^[ \t]*`+text+`[ \t]*$`))
		}
		headers[s] = compiled
	}
	return headers
}

// builtinSpecial creates the special marker pattern set.
func builtinSpecial() map[SpecialGroup]map[string]*regexp.Regexp {
	return map[SpecialGroup]map[string]*regexp.Regexp{
		LatinTerms: {
			"ibid":    mustCompile(`(?i)Ibid\.(?:,\s(?:p\.|pp\.)?\s?\d+(?:-\d+)?)?`),
			"op_cit":  mustCompile(`(?i)Op\.\s?cit\.(?:,\s(?:p\.|pp\.)?\s?\d+(?:-\d+)?)?`),
			"loc_cit": mustCompile(`(?i)Loc\.\s?cit\.`),
			"et_al":   mustCompile(`(?i)et\s+al\.`),
			"cf":      mustCompile(`(?i)cf\.`),
			"sic":     mustCompile(`\[sic\]`),
		},
		Abbreviations: {
			"page":    mustCompile(`(?i)p\.\s\d+`),
			"pages":   mustCompile(`(?i)pp\.\s\d+(?:-\d+)?`),
			"volume":  mustCompile(`(?i)vol\.\s\d+`),
			"chapter": mustCompile(`(?i)cap\.\s\d+|ch\.\s\d+`),
			"edition": mustCompile(`(?i)\d+(?:st|nd|rd|th)\sed\.`),
		},
		DigitalIdentifiers: {
			"url":      mustCompile(`https?://[^\s]+`),
			"doi":      mustCompile(`(?i)(?:doi:|https?://doi\.org/)\d+\.\d+/.+`),
			"isbn":     mustCompile(`(?i)ISBN(?:-1[03])?:?\s?[\d\-X]{10,17}`),
			"issn":     mustCompile(`(?i)ISSN:?\s?\d{4}-\d{3}[\dX]`),
			"accessed": mustCompile(`(?i)(?:accessed|accedido)(?:\son|\sel)?\s\d{1,2}\s[A-Za-z]+\s\d{4}`),
		},
	}
}
