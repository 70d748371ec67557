package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizgen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "quizgen",
	Short:         "Generate multiple-choice quizzes on any topic",
	Long:          "quizgen serves the quiz generation API and offers the same generation from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(askCmd)
}

// loadCLIConfig loads configuration for one-shot commands. Logs go to
// stderr so stdout stays clean for --json output.
func loadCLIConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.Init(cfg)
	config.Logger.SetOutput(os.Stderr)
	return cfg, nil
}
