// Package main is the entry point for the tamagotchi bot server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tamagotchi-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "tamagotchi-api",
	Short: "Tamagotchi chat bot server",
	Long: `tamagotchi-api raises virtual children in chat. The BotService gRPC API and the
WebSocket gateway share one dispatcher, so any chat platform adapter can drive it.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
