package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// Stats summarizes how densely and where a document cites.
type Stats struct {
	TotalWords      int          `json:"total_words"`
	TotalParagraphs int          `json:"total_paragraphs"`
	TotalCitations  int          `json:"total_citations"`
	PerThousand     float64      `json:"citations_per_thousand_words"`
	PerParagraph    float64      `json:"citations_per_paragraph"`
	CitedShare      float64      `json:"paragraphs_with_citations_share"`
	MaxPerParagraph int          `json:"max_citations_in_paragraph"`
	MedianPerPara   int          `json:"median_citations_per_paragraph"`
	Distribution    Distribution `json:"distribution"`
}

// Distribution reports where citations fall across the document split
// into thirds.
type Distribution struct {
	Leading  float64 `json:"leading"`
	Middle   float64 `json:"middle"`
	Trailing float64 `json:"trailing"`
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

// computeStats derives density and positional statistics from the
// document and its extracted in-text citations.
func computeStats(text string, inText []string) Stats {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	stats := Stats{
		TotalWords:      len(wordRe.FindAllString(text, -1)),
		TotalParagraphs: len(paragraphs),
		TotalCitations:  len(inText),
	}

	if stats.TotalWords > 0 {
		stats.PerThousand = float64(stats.TotalCitations) / float64(stats.TotalWords) * 1000
	}
	if stats.TotalParagraphs == 0 {
		return stats
	}
	stats.PerParagraph = float64(stats.TotalCitations) / float64(stats.TotalParagraphs)

	perParagraph := make([]int, len(paragraphs))
	cited := 0
	for i, paragraph := range paragraphs {
		count := 0
		for _, span := range inText {
			if strings.Contains(paragraph, span) {
				count++
			}
		}
		perParagraph[i] = count
		if count > 0 {
			cited++
		}
	}
	stats.CitedShare = float64(cited) / float64(stats.TotalParagraphs)

	sorted := append([]int{}, perParagraph...)
	sort.Ints(sorted)
	stats.MedianPerPara = sorted[len(sorted)/2]
	stats.MaxPerParagraph = sorted[len(sorted)-1]

	if len(paragraphs) >= 3 && stats.TotalCitations > 0 {
		third := len(paragraphs) / 3
		sum := func(counts []int) int {
			total := 0
			for _, n := range counts {
				total += n
			}
			return total
		}
		total := float64(stats.TotalCitations)
		stats.Distribution = Distribution{
			Leading:  float64(sum(perParagraph[:third])) / total,
			Middle:   float64(sum(perParagraph[third:2*third])) / total,
			Trailing: float64(sum(perParagraph[2*third:])) / total,
		}
	}

	return stats
}
