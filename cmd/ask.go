package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizgen/internal/assistant"
	"github.com/saulo-duarte/quizgen/internal/container"
	"github.com/saulo-duarte/quizgen/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Send a free-form prompt to the configured model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stream, _ := cmd.Flags().GetBool("stream")
		delay, _ := cmd.Flags().GetDuration("delay")
		prompt := strings.Join(args, " ")

		cfg, err := loadCLIConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		provider, err := container.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}
		if provider == nil {
			return llm.ErrNotConfigured
		}

		if !stream {
			resp, err := provider.Generate(ctx, llm.Request{Prompt: prompt})
			if err != nil {
				return err
			}
			fmt.Println(resp.Text)
			return nil
		}

		if delay < 0 {
			return errors.New("--delay cannot be negative")
		}
		printed := 0
		err = assistant.New(provider, cfg.Stream.Delay).StreamWithTypingEffect(ctx, prompt, func(acc string) {
			fmt.Print(acc[printed:])
			printed = len(acc)
		}, delay)
		fmt.Println()
		return err
	},
}

func init() {
	askCmd.Flags().Bool("stream", false, "Relay the reply as it is generated")
	askCmd.Flags().Duration("delay", assistant.DefaultTypingDelay, "Pause between streamed chunks")
}
