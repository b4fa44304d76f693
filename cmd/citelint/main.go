package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/citelint/pkg/analysis"
	"github.com/coolbeans/citelint/pkg/catalog"
	"github.com/coolbeans/citelint/pkg/style"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "citelint",
		Short: "Citation style detection and cross-reference checking",
		Long: `Citelint analyzes academic text for citation usage.

It detects the predominant citation style (APA, MLA, Chicago, Harvard,
IEEE, Vancouver, CSE), extracts in-text citations and reference
entries, audits the correspondence between them, and flags common
formatting problems.`,
		Version: version,
	}

	rootCmd.PersistentFlags().String("patterns", "", "Custom pattern file (YAML or JSON) appended to the builtin catalog")
	rootCmd.PersistentFlags().Bool("json", false, "Emit JSON instead of text output")

	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadAnalyzer builds the analyzer, applying a custom pattern file when
// one was given.
func loadAnalyzer(cmd *cobra.Command) (*analysis.Analyzer, error) {
	cat := catalog.New()
	patternsPath, _ := cmd.Flags().GetString("patterns")
	if patternsPath != "" {
		if err := cat.LoadFile(patternsPath); err != nil {
			return nil, err
		}
	}
	return analysis.New(cat), nil
}

// readInput reads the positional file argument, or stdin for "-" or no
// argument.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Identify the predominant citation style",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			detection := analyzer.Detector().Primary(text)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return emitJSON(detection)
			}

			fmt.Printf("Style: %s\n", detection.Style)
			fmt.Printf("Confidence: %.2f\n", detection.Confidence)
			combined := detection.Counts.Combined()
			for _, s := range style.ReportOrder {
				if combined[s] > 0 {
					fmt.Printf("  %-10s %d\n", s, combined[s])
				}
			}
			return nil
		},
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract in-text citations and reference entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			s, err := styleFlag(cmd)
			if err != nil {
				return err
			}

			citations := analyzer.Extractor().All(text, s)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return emitJSON(citations)
			}

			fmt.Printf("In-text citations (%d):\n", len(citations.InText))
			for _, span := range citations.InText {
				fmt.Printf("  - %s\n", span)
			}
			fmt.Printf("Reference entries (%d):\n", len(citations.Bibliography))
			for _, entry := range citations.Bibliography {
				fmt.Printf("  - %s\n", entry)
			}
			return nil
		},
	}
	cmd.Flags().String("style", "", "Citation style to extract for (detected when omitted)")
	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Audit citations against the reference list",
		Long: `Check cross-references between in-text citations and the reference
list: citations with no matching entry, and entries never cited.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			report := analyzer.Analyze(text)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return emitJSON(struct {
					Style       style.Style `json:"style"`
					MissingRefs any         `json:"citations_without_references"`
					UncitedRefs any         `json:"references_without_citations"`
				}{report.PrimaryStyle, report.MissingRefs, report.UncitedRefs})
			}

			fmt.Printf("Style: %s\n", report.PrimaryStyle)
			if len(report.MissingRefs) == 0 && len(report.UncitedRefs) == 0 {
				fmt.Println("All citations and references correspond.")
				return nil
			}
			for _, key := range report.MissingRefs {
				if key.Year != "" {
					fmt.Printf("No reference entry for citation: %s (%s)\n", key.Author, key.Year)
				} else {
					fmt.Printf("No reference entry for citation: %s\n", key.Author)
				}
			}
			for _, ref := range report.UncitedRefs {
				fmt.Printf("Never cited: %s (%s) %q\n", ref.Author, ref.Year, ref.Title)
			}
			return nil
		},
	}
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Report format and consistency problems",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			report := analyzer.Analyze(text)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return emitJSON(struct {
					Style  style.Style `json:"style"`
					Issues any         `json:"issues"`
				}{report.PrimaryStyle, report.Issues})
			}

			fmt.Printf("Style: %s\n", report.PrimaryStyle)
			if len(report.Issues) == 0 {
				fmt.Println("No formatting issues found.")
				return nil
			}
			for _, issue := range report.Issues {
				fmt.Printf("[%s] %s\n", issue.Rule, issue.Description)
				if issue.Citation != "" {
					fmt.Printf("  citation: %s\n", issue.Citation)
				}
				fmt.Printf("  fix: %s\n", issue.Recommendation)
			}
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Produce a full citation report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			report := analyzer.Analyze(text)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return emitJSON(report)
			}
			if asMarkdown, _ := cmd.Flags().GetBool("markdown"); asMarkdown {
				fmt.Print(report.ToMarkdown())
				return nil
			}

			fmt.Printf("Style: %s (confidence %.2f)\n", report.PrimaryStyle, report.Confidence)
			fmt.Printf("Citations: %d in text, %d references\n",
				len(report.Citations.InText), len(report.Citations.Bibliography))
			fmt.Printf("Density: %.1f citations per 1000 words\n", report.Stats.PerThousand)

			if len(report.Issues) > 0 {
				fmt.Printf("\nIssues (%d):\n", len(report.Issues))
				for _, issue := range report.Issues {
					line := fmt.Sprintf("  - [%s] %s", issue.Rule, issue.Description)
					if issue.Citation != "" {
						line += fmt.Sprintf(": %s", issue.Citation)
					}
					fmt.Println(line)
				}
			}
			if len(report.Recommendations) > 0 {
				fmt.Println("\nRecommendations:")
				for _, rec := range report.Recommendations {
					fmt.Printf("  - %s\n", rec)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("markdown", false, "Render the report as Markdown")
	return cmd
}

// styleFlag resolves an optional --style override.
func styleFlag(cmd *cobra.Command) (style.Style, error) {
	name, _ := cmd.Flags().GetString("style")
	if strings.TrimSpace(name) == "" {
		return style.None, nil
	}
	s, ok := style.Parse(name)
	if !ok {
		return style.None, fmt.Errorf("unknown citation style %q", name)
	}
	return s, nil
}
