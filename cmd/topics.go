package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizgen/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the built-in topic catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")

		catalog := topics.Default()
		if random {
			fmt.Println(catalog.Random(nil))
			return nil
		}
		fmt.Print(renderTopics(catalog.Categories()))
		return nil
	},
}

func init() {
	topicsCmd.Flags().Bool("random", false, "Print one random topic")
}
