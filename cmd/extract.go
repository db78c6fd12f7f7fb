package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagExtractFile string

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract skills from free text (a resume or a job description)",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&flagExtractFile, "file", "", "Read the input text from a file instead of arguments")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if flagExtractFile != "" {
		b, err := os.ReadFile(flagExtractFile)
		if err != nil {
			return fmt.Errorf("cannot read input file %s: %w", flagExtractFile, err)
		}
		text = string(b)
	}
	if strings.TrimSpace(text) == "" {
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

	found, err := extractor.Extract(text)
	if err != nil {
		return err
	}

	printSection("Skills")
	if len(found) == 0 {
		printMiss("", "no skills found")
		return nil
	}
	for _, s := range found {
		printOK("", s)
	}
	printInfo("", fmt.Sprintf("%d skills extracted", len(found)))
	return nil
}
