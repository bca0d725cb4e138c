package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	chatmate "github.com/chatmate/chatmate/pkg/common"
)

// chatmate config
func Config() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration and its file path",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := chatmate.LoadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("\x1b[32mConfiguration File:\x1b[0m %s\n\n", chatmate.ConfigFile)
			fmt.Printf("- %-10s %s\n", "model:", config.Model)

			key := "\x1b[31mnot set\x1b[0m"
			if config.APIKey != "" {
				key = "\x1b[33mset\x1b[0m"
			}
			fmt.Printf("- %-10s %s\n", "api-key:", key)

			return nil
		},
	}
}
