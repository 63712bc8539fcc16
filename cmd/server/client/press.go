package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tamagotchi-api/internal/handlers/tamagotchi/v1alpha1"
)

var pressCmd = &cobra.Command{
	Use:   "press [callback-data]",
	Short: "Press an inline button",
	Long:  `Press a button by its callback data, e.g. "press feed" or "press gender:girl".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deliver(cmd.OutOrStdout(), &v1alpha1.Update{
			UserID:       userID,
			CallbackData: args[0],
		})
	},
}
