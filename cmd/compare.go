package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobsync/skillmatch/internal/skills"
)

var (
	flagCompareResume []string
	flagCompareJob    []string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare resume skills with job requirements",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringSliceVar(&flagCompareResume, "resume", nil, "Resume skills (repeatable or comma-separated)")
	compareCmd.Flags().StringSliceVar(&flagCompareJob, "job", nil, "Job skills (repeatable or comma-separated)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	c := skills.Compare(flagCompareResume, flagCompareJob)

	printSection("Skill Comparison")
	for _, s := range c.Matched {
		printOK("matched", s)
	}
	for _, s := range c.Missing {
		printMiss("missing", s)
	}
	for _, s := range c.Extra {
		printInfo("extra", s)
	}
	printInfo("", fmt.Sprintf("match: %.2f%% (%d of %d required)", c.MatchPercentage, c.TotalMatched, c.TotalRequired))
	return nil
}
