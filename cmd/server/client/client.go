// Package client provides commands that talk to a running BotService
package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/handlers/tamagotchi/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	userID     string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Chat with a running bot over gRPC",
	Long:  `Client commands send chat updates to the BotService and print the reply with its buttons.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", "", "bot token sent as a bearer credential")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "1", "chat user id")

	ClientCmd.AddCommand(sendCmd)
	ClientCmd.AddCommand(pressCmd)
}

// createBotClient creates a BotService client and its cleanup func
func createBotClient() (v1alpha1.BotServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return v1alpha1.NewBotServiceClient(conn), cleanup, nil
}

func callContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}
	return ctx, cancel
}

// deliver sends one update and prints the reply
func deliver(out io.Writer, update *v1alpha1.Update) error {
	client, cleanup, err := createBotClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := v1alpha1.UpdateToStruct(update)
	if err != nil {
		return err
	}

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.HandleUpdate(ctx, req)
	if err != nil {
		return describeError(errors.FromGRPCError(err))
	}

	printReply(out, v1alpha1.ReplyFromStruct(resp))
	return nil
}

// describeError turns a BotService status into a readable CLI error
func describeError(err error) error {
	switch {
	case errors.IsUnauthenticated(err):
		return fmt.Errorf("the server rejected the bot token, pass --token: %w", err)
	case errors.IsResourceExhausted(err):
		if retry, ok := errors.GetMeta(err)["retry_in_seconds"].(float64); ok {
			return fmt.Errorf("%s (retry in %.0fs)", errors.UserMessage(err), retry)
		}
	}
	return fmt.Errorf("failed to handle update: %w", err)
}

func printReply(out io.Writer, reply *v1alpha1.Reply) {
	_, _ = fmt.Fprintln(out, reply.Text)
	if len(reply.Buttons) == 0 {
		return
	}

	_, _ = fmt.Fprintln(out)
	for _, row := range reply.Buttons {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			cells = append(cells, fmt.Sprintf("[%s → %s]", b.Label, b.Data))
		}
		_, _ = fmt.Fprintln(out, strings.Join(cells, " "))
	}
}
