package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/catalog"
)

var flagSearchK int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search courses by semantic similarity to a query",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchK, "top", "k", 10, "Number of results to show")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.Join(args, " ")

	cfg, err := loadConfig()
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

	qv, err := enc.Embed(ctx, query)
	if err != nil {
		return err
	}
	results, err := ranker.Rank(qv, flagSearchK)
	if err != nil {
		return err
	}

	printCourses(fmt.Sprintf("Courses matching %q", query), results)
	return nil
}

// printCourses renders ranked courses as an aligned table.
func printCourses(title string, results []catalog.Recommendation) {
	printSection(title)
	if len(results) == 0 {
		printMiss("", "no courses found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, r := range results {
		rating := "n/a"
		if r.Rating != nil {
			rating = fmt.Sprintf("%.1f", *r.Rating)
		}
		fmt.Fprintf(w, "  %d.\t[%.3f]\t%s\t%s\t%s\n", i+1, r.Similarity, r.Name, r.Provider, rating)
		fmt.Fprintf(w, "  \t\t%s\n", r.URL)
	}
	_ = w.Flush()
}
