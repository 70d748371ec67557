package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/container"
	"github.com/saulo-duarte/quizgen/internal/topics"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate five questions on a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		random, _ := cmd.Flags().GetBool("random")
		asJSON, _ := cmd.Flags().GetBool("json")
		answers, _ := cmd.Flags().GetBool("answers")

		if random {
			topic = topics.Default().Random(nil)
		}
		if topic == "" {
			return errors.New("a --topic or --random is required")
		}

		cfg, err := loadCLIConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		provider, err := container.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}

		set, err := aiquiz.NewService(provider).GenerateQuestions(ctx, topic)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(aiquiz.GenerateResponse{Success: true, Questions: set})
		}

		questions, err := set.Questions()
		if err != nil {
			return err
		}
		fmt.Print(renderQuiz(topic, questions, answers))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions about")
	generateCmd.Flags().Bool("random", false, "Pick a random topic from the catalogue")
	generateCmd.Flags().Bool("json", false, "Print the raw JSON response")
	generateCmd.Flags().Bool("answers", true, "Show correct answers, explanations and sources")
}
