package analysis

import (
	"fmt"
	"strings"

	"github.com/coolbeans/citelint/pkg/style"
)

// ToMarkdown renders the report as Markdown suitable for PR comments
// and documentation.
func (r *Report) ToMarkdown() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Citation Report %s\n\n", confidenceBadge(r.Confidence)))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| **Primary Style** | %s |\n", r.PrimaryStyle))
	b.WriteString(fmt.Sprintf("| **Confidence** | %.1f%% |\n", r.Confidence*100))
	b.WriteString(fmt.Sprintf("| **In-Text Citations** | %d |\n", len(r.Citations.InText)))
	b.WriteString(fmt.Sprintf("| **Reference Entries** | %d |\n", len(r.Citations.Bibliography)))
	b.WriteString(fmt.Sprintf("| **Issues** | %d |\n", len(r.Issues)))
	b.WriteString("\n")

	combined := r.Counts.Combined()
	hasCounts := false
	for _, s := range style.ReportOrder {
		if combined[s] > 0 {
			hasCounts = true
			break
		}
	}
	if hasCounts {
		b.WriteString("## Style Scores\n\n")
		b.WriteString("| Style | Matches |\n")
		b.WriteString("|-------|---------|\n")
		for _, s := range style.ReportOrder {
			if combined[s] > 0 {
				b.WriteString(fmt.Sprintf("| %s | %d |\n", s, combined[s]))
			}
		}
		b.WriteString("\n")
	}

	if len(r.MissingRefs) > 0 || len(r.UncitedRefs) > 0 {
		b.WriteString("## Cross-Reference Audit\n\n")
		if len(r.MissingRefs) > 0 {
			b.WriteString("**Citations without a reference entry:**\n\n")
			for _, key := range r.MissingRefs {
				if key.Year != "" {
					b.WriteString(fmt.Sprintf("- %s (%s)\n", key.Author, key.Year))
				} else {
					b.WriteString(fmt.Sprintf("- %s\n", key.Author))
				}
			}
			b.WriteString("\n")
		}
		if len(r.UncitedRefs) > 0 {
			b.WriteString("**References never cited:**\n\n")
			for _, ref := range r.UncitedRefs {
				b.WriteString(fmt.Sprintf("- %s (%s) %s\n", ref.Author, ref.Year, ref.Title))
			}
			b.WriteString("\n")
		}
	}

	if len(r.Issues) > 0 {
		b.WriteString("## Issues\n\n")
		b.WriteString("| Rule | Description | Citation |\n")
		b.WriteString("|------|-------------|----------|\n")
		for _, issue := range r.Issues {
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				issue.Rule, escapeTableCell(issue.Description), escapeTableCell(issue.Citation)))
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			b.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Statistics\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Words | %d |\n", r.Stats.TotalWords))
	b.WriteString(fmt.Sprintf("| Paragraphs | %d |\n", r.Stats.TotalParagraphs))
	b.WriteString(fmt.Sprintf("| Citations per 1000 Words | %.1f |\n", r.Stats.PerThousand))
	b.WriteString(fmt.Sprintf("| Paragraphs with Citations | %.1f%% |\n", r.Stats.CitedShare*100))
	b.WriteString(fmt.Sprintf("| Max Citations in a Paragraph | %d |\n", r.Stats.MaxPerParagraph))

	return b.String()
}

func confidenceBadge(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return "✅"
	case confidence > 0:
		return "⚠️"
	default:
		return "❌"
	}
}

// escapeTableCell escapes characters that would break Markdown table
// rendering.
func escapeTableCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}
