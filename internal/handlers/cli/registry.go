package cli

import (
	"context"
	"fmt"

	"github.com/kaiawatch/kaiawatch/internal/subscription"

	"github.com/urfave/cli/v3"
)

// trackAddressCommand returns a CLI command that registers an address
// for transaction notifications on behalf of a subscriber chat.
//
// Usage example:
//
//	kaiawatch track --chat-id 123456 --address 0xABC123... --label savings
func trackAddressCommand(subs subscription.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Register an address to be monitored for transaction activity on behalf of a chat.",
		Usage:       "Registers an address for tracking. Must provide both chat-id and address.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chat-id",
				Usage:    "Telegram chat that receives the notifications",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start tracking",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "Optional label for the address",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chatID  = c.Int64("chat-id")
				address = c.String("address")
				label   = c.String("label")
			)

			_, err := subs.Track(ctx, chatID, address, label)
			return err
		},
	}
}

// untrackAddressCommand returns a CLI command that removes a tracked
// address, identified by either its address or its label.
//
// Usage example:
//
//	kaiawatch untrack --chat-id 123456 --key savings
func untrackAddressCommand(subs subscription.Service) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Remove a tracked address from a chat's watchlist.",
		Usage:       "Stops tracking an address. The key may be the address itself or its label.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chat-id",
				Usage:    "Telegram chat the subscription belongs to",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Address or label identifying the subscription",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chatID = c.Int64("chat-id")
				key    = c.String("key")
			)

			return subs.Untrack(ctx, chatID, key)
		},
	}
}

// listSubscriptionsCommand returns a CLI command that prints a chat's
// tracked addresses, oldest first.
//
// Usage example:
//
//	kaiawatch list --chat-id 123456
func listSubscriptionsCommand(subs subscription.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the addresses a chat is tracking.",
		Usage:       "Prints the chat's tracked addresses, oldest first.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chat-id",
				Usage:    "Telegram chat whose subscriptions are listed",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			list, err := subs.List(ctx, c.Int64("chat-id"))
			if err != nil {
				return err
			}

			for _, sub := range list {
				if sub.Label != "" {
					fmt.Fprintf(c.Root().Writer, "%s\t%s\n", sub.Address, sub.Label)
				} else {
					fmt.Fprintln(c.Root().Writer, sub.Address)
				}
			}

			return nil
		},
	}
}
