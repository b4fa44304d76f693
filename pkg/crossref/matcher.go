// Package crossref matches in-text citation keys against bibliography
// reference keys and reports the two kinds of mismatch: citations with
// no reference and references never cited.
package crossref

import (
	"regexp"
	"strings"

	"github.com/coolbeans/citelint/pkg/extract"
	"github.com/coolbeans/citelint/pkg/style"
)

// Matcher compares citation keys with reference keys using fuzzy author
// matching. The zero value is ready to use.
type Matcher struct{}

// New creates a Matcher.
func New() *Matcher { return &Matcher{} }

// CitationsWithoutReferences returns the in-text keys that no reference
// key matches, preserving input order with duplicates collapsed.
func (m *Matcher) CitationsWithoutReferences(cites []extract.Key, refs []extract.ReferenceKey, s style.Style) []extract.Key {
	var missing []extract.Key
	seen := make(map[extract.Key]struct{})

	for _, cite := range cites {
		if strings.TrimSpace(cite.Author) == "" {
			continue
		}
		if _, dup := seen[cite]; dup {
			continue
		}
		seen[cite] = struct{}{}

		found := false
		for _, ref := range refs {
			if m.Matches(cite, ref, s) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, cite)
		}
	}
	return missing
}

// ReferencesWithoutCitations returns the reference keys no in-text key
// matches. Reference keys whose author could not be parsed are never
// reported; an unparsable entry is not evidence of an uncited source.
func (m *Matcher) ReferencesWithoutCitations(cites []extract.Key, refs []extract.ReferenceKey, s style.Style) []extract.ReferenceKey {
	var uncited []extract.ReferenceKey
	seen := make(map[extract.ReferenceKey]struct{})

	for _, ref := range refs {
		if strings.TrimSpace(ref.Author) == "" {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}

		cited := false
		for _, cite := range cites {
			if m.Matches(cite, ref, s) {
				cited = true
				break
			}
		}
		if !cited {
			uncited = append(uncited, ref)
		}
	}
	return uncited
}

// Matches reports whether an in-text key and a reference key identify
// the same work. Authors match fuzzily. Years must be equal except in
// MLA, whose in-text citations carry no year, and except when either
// side lacks a year entirely. A missing year is a parse gap, not
// evidence of a different work, so the authors alone decide then.
// Callers wanting strict field equality should compare the keys
// directly instead.
func (m *Matcher) Matches(cite extract.Key, ref extract.ReferenceKey, s style.Style) bool {
	if !MatchAuthors(cite.Author, ref.Author) {
		return false
	}
	if style.Fused(s) == style.MLA {
		return true
	}
	if cite.Year == "" || ref.Year == "" {
		return true
	}
	return cite.Year == ref.Year
}

// MatchAuthors reports whether two author strings plausibly name the
// same author set. The comparison is symmetric: both sides are
// normalized, then tested by exact equality, "et al." stripping with
// containment, substring containment in either direction, and finally
// equality of the leading surname token.
func MatchAuthors(a, b string) bool {
	normA := NormalizeAuthor(a)
	normB := NormalizeAuthor(b)
	if normA == "" || normB == "" {
		return false
	}

	if normA == normB {
		return true
	}

	if lead, ok := strings.CutSuffix(normA, "et al"); ok {
		if strings.Contains(normB, strings.TrimSpace(lead)) {
			return true
		}
	}
	if lead, ok := strings.CutSuffix(normB, "et al"); ok {
		if strings.Contains(normA, strings.TrimSpace(lead)) {
			return true
		}
	}

	if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
		return true
	}

	return firstToken(normA) == firstToken(normB)
}

var punctToStrip = regexp.MustCompile(`[.,;:]`)
var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeAuthor lowercases an author string, strips sentence
// punctuation, rewrites "&" as "and", and collapses whitespace.
func NormalizeAuthor(author string) string {
	normalized := strings.ToLower(author)
	normalized = punctToStrip.ReplaceAllString(normalized, "")
	normalized = strings.ReplaceAll(normalized, "&", "and")
	normalized = multiSpace.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

func firstToken(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}
