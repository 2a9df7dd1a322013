// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/prdgen/internal/extract"
	"github.com/pdiddy/prdgen/pkg/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <input.txt>",
	Short: "Show the section extraction result as YAML",
	Long: `Sections runs title and section extraction on a plain-text PRD and prints
the result as YAML. Extraction never fails: sections absent from the input
appear as placeholders, which this command makes visible (the generated PDF
does not distinguish them from deliberate "no content" input).`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().Bool("subsections", false, "include the N.M subsection split of each body")

	rootCmd.AddCommand(sectionsCmd)
}

// sectionReport is the YAML shape printed for one section.
type sectionReport struct {
	types.Section `yaml:",inline"`
	Subsections   map[int]string `yaml:"subsections,omitempty"`
}

// extractionReport is the YAML document printed by the sections command.
type extractionReport struct {
	Title    string          `yaml:"title"`
	Sections []sectionReport `yaml:"sections"`
}

func runSections(cmd *cobra.Command, args []string) error {
	withSubsections, _ := cmd.Flags().GetBool("subsections")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	text := string(data)

	report := extractionReport{Title: extract.Title(text)}
	sections := extract.Sections(text)
	for n := 1; n <= types.SectionCount; n++ {
		r := sectionReport{Section: sections[n]}
		if withSubsections {
			if subs := extract.Subsections(sections[n].Body); len(subs) > 0 {
				r.Subsections = subs
			}
		}
		report.Sections = append(report.Sections, r)
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
