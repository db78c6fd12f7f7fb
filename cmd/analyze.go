package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/recommend"
)

var (
	flagAnalyzeFile   string
	flagAnalyzeResume []string
	flagAnalyzeK      int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [job description...]",
	Short: "Analyze a job description against resume skills and recommend courses",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagAnalyzeFile, "file", "", "Read the job description from a file")
	analyzeCmd.Flags().StringSliceVar(&flagAnalyzeResume, "resume", nil, "Resume skill (repeatable or comma-separated)")
	analyzeCmd.Flags().IntVarP(&flagAnalyzeK, "top", "k", 10, "Number of courses to recommend")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	job := strings.Join(args, " ")
	if flagAnalyzeFile != "" {
		b, err := os.ReadFile(flagAnalyzeFile)
		if err != nil {
			return fmt.Errorf("cannot read job description %s: %w", flagAnalyzeFile, err)
		}
		job = string(b)
	}
	if strings.TrimSpace(job) == "" {
		return cmd.Help()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	extractor, err := buildExtractor(cfg)
	if err != nil {
		return err
	}
	enc, err := newEncoder()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ranker, err := openRanker(ctx, cfg, enc, zap.NewNop())
	if err != nil {
		return err
	}

	svc := recommend.New(extractor, enc, ranker, zap.NewNop())
	analysis, err := svc.RecommendForJob(ctx, job, flagAnalyzeResume, flagAnalyzeK)
	if err != nil {
		return err
	}

	printSection("Skill Gap")
	for _, s := range analysis.SkillAnalysis.Matched {
		printOK("matched", s)
	}
	for _, s := range analysis.SkillAnalysis.Missing {
		printMiss("missing", s)
	}
	printInfo("", fmt.Sprintf("skill match: %.2f%%", analysis.MatchPercentage))

	printCourses("Recommended Courses", analysis.RecommendedCourses)
	return nil
}
