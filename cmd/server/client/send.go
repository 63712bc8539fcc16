package client

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tamagotchi-api/internal/handlers/tamagotchi/v1alpha1"
)

var sendCmd = &cobra.Command{
	Use:   "send [text]",
	Short: "Send a chat message",
	Long:  `Send a message as the given user, e.g. "send /start girl Alice" or "send --user 42 /status".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deliver(cmd.OutOrStdout(), &v1alpha1.Update{
			UserID: userID,
			Text:   strings.Join(args, " "),
		})
	},
}
