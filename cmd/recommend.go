package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/recommend"
)

var (
	flagRecommendSkills []string
	flagRecommendK      int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for a set of missing skills",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVar(&flagRecommendSkills, "skill", nil, "Missing skill (repeatable or comma-separated)")
	recommendCmd.Flags().IntVarP(&flagRecommendK, "top", "k", 10, "Number of courses to recommend")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if len(flagRecommendSkills) == 0 {
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
	results, err := svc.RecommendForSkillGap(ctx, flagRecommendSkills, flagRecommendK)
	if err != nil {
		return err
	}

	printCourses("Recommended Courses", results)
	return nil
}
