package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaiawatch/kaiawatch/internal/botproc"

	"github.com/urfave/cli/v3"
)

// startBotCommand returns a CLI command that starts the full bot
// pipeline: the Telegram command transport and the address poller.
//
// Usage example:
//
//	kaiawatch start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func startBotCommand(bp botproc.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the Telegram bot together with the address polling and notification pipeline.",
		Usage:       "Initializes and runs the bot. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := bp.Start(ctx); err != nil {
				return err
			}
			defer bp.Close()

			<-quit
			return nil
		},
	}
}
