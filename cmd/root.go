package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jobsync/skillmatch/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "skillmatch",
	Short:        "skillmatch matches skills against job requirements and ranks courses to close the gap",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `skillmatch extracts skills from resumes and job descriptions, computes the
skill gap between them, and ranks a course catalog by semantic similarity to
recommend what to learn next. Run it as a one-shot CLI or as an HTTP service
(skillmatch serve).`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default skillmatch.yaml in . or ~/.skillmatch)")
	rootCmd.PersistentFlags().Bool("json", false, "log in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("skillmatch")
		viper.AddConfigPath(".")
		if dir, err := config.SkillmatchDir(); err == nil {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("SKILLMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	// The config file is optional; env and defaults cover everything.
	_ = viper.ReadInConfig()
}
