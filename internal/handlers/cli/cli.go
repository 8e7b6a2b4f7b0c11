package cli

import (
	"context"
	"os"

	"github.com/kaiawatch/kaiawatch/internal/botproc"
	"github.com/kaiawatch/kaiawatch/internal/subscription"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the kaiawatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts the bot and the address polling pipeline.
//   - `track`: Registers an address for transaction notifications.
//   - `untrack`: Removes a tracked address.
//   - `list`: Lists a subscriber's tracked addresses.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - subs: The subscription service implementation used by the tracking commands.
//   - bp: The bot processing service implementation used by the start command.
func Run(ctx context.Context, subs subscription.Service, bp botproc.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "kaiawatch",
		Description:           "Command-line interface for running the kaiawatch Telegram bot and managing tracked addresses.",
		Usage:                 "kaiawatch [command] [flags]",
		Commands: []*cli.Command{
			startBotCommand(bp),
			trackAddressCommand(subs),
			untrackAddressCommand(subs),
			listSubscriptionsCommand(subs),
		},
	}

	return app.Run(ctx, os.Args)
}
