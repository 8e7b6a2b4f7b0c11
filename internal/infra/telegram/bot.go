package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/kaiawatch/kaiawatch/internal/account"
	"github.com/kaiawatch/kaiawatch/internal/botproc"
	"github.com/kaiawatch/kaiawatch/internal/pkg/logger"
	"github.com/kaiawatch/kaiawatch/internal/pkg/x/chflow"
	"github.com/kaiawatch/kaiawatch/internal/subscription"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// longPollTimeout is the Telegram long-poll timeout in seconds.
const longPollTimeout = 60

// Bot serves the chat commands over long polling.
type Bot struct {
	api           *tgbotapi.BotAPI
	subscriptions subscription.Service
	accounts      account.Service
}

var _ botproc.Transport = (*Bot)(nil)

// NewBot creates the command bot over an authenticated API handle.
func NewBot(api *tgbotapi.BotAPI, subscriptions subscription.Service, accounts account.Service) *Bot {
	return &Bot{
		api:           api,
		subscriptions: subscriptions,
		accounts:      accounts,
	}
}

// Run consumes updates until the context is canceled. Each update is
// handled inline; command handlers are fast and the heavy lifting
// happens upstream, so per-update goroutines are not worth the churn.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = longPollTimeout

	updates := b.api.GetUpdatesChan(cfg)
	defer b.api.StopReceivingUpdates()

	logger.Info(ctx, "telegram bot started", "username", b.api.Self.UserName)

	for {
		update, ok := chflow.Receive(ctx, updates)
		if !ok {
			return ctx.Err()
		}

		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		b.handleCommand(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	var (
		chatID = message.Chat.ID
		args   = strings.TrimSpace(message.CommandArguments())
	)

	var reply string
	switch message.Command() {
	case "start", "help":
		reply = welcomeMessage
	case "balance":
		reply = b.handleBalance(ctx, args)
	case "tokens":
		reply = b.handleTokens(ctx, args)
	case "nfts":
		reply = b.handleNFTs(ctx, args)
	case "track":
		reply = b.handleTrack(ctx, chatID, args)
	case "untrack":
		reply = b.handleUntrack(ctx, chatID, args)
	case "list":
		reply = b.handleList(ctx, chatID)
	default:
		reply = "❌ Unknown command. Use /start to see available commands."
	}

	msg := tgbotapi.NewMessage(chatID, reply)
	msg.ReplyToMessageID = message.MessageID
	if _, err := b.api.Send(msg); err != nil {
		logger.Error(ctx, "failed to send telegram reply", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) handleBalance(ctx context.Context, address string) string {
	if address == "" {
		return "❌ Please use the format: /balance 0x..."
	}

	balance, err := b.accounts.Balance(ctx, address)
	if err != nil {
		return describeQueryError(ctx, err)
	}

	return renderBalance(balance)
}

func (b *Bot) handleTokens(ctx context.Context, address string) string {
	if address == "" {
		return "❌ Please use the format: /tokens 0x..."
	}

	tokens, err := b.accounts.Tokens(ctx, address)
	if err != nil {
		return describeQueryError(ctx, err)
	}

	return renderTokens(strings.ToLower(strings.TrimSpace(address)), tokens)
}

func (b *Bot) handleNFTs(ctx context.Context, address string) string {
	if address == "" {
		return "❌ Please use the format: /nfts 0x..."
	}

	holdings, err := b.accounts.NFTs(ctx, address)
	if err != nil {
		return describeQueryError(ctx, err)
	}

	return renderNFTs(holdings)
}

func (b *Bot) handleTrack(ctx context.Context, chatID int64, args string) string {
	if args == "" {
		return "❌ Please use the format: /track 0x... [label]"
	}

	address, label, _ := strings.Cut(args, " ")
	sub, err := b.subscriptions.Track(ctx, chatID, address, strings.TrimSpace(label))
	switch {
	case errors.Is(err, subscription.ErrInvalidAddress):
		return "❌ Invalid wallet address. Please provide a valid 0x... address."
	case errors.Is(err, subscription.ErrDuplicateSubscription):
		return "❌ You are already tracking this address."
	case err != nil:
		logger.Error(ctx, "track command failed", "chat_id", chatID, "error", err)
		return "❌ Unexpected error. Please try again later."
	}

	return renderTracked(sub)
}

func (b *Bot) handleUntrack(ctx context.Context, chatID int64, key string) string {
	if key == "" {
		return "❌ Please use the format: /untrack 0x... or /untrack label"
	}

	err := b.subscriptions.Untrack(ctx, chatID, key)
	switch {
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		return "❌ You are not tracking that address or label."
	case errors.Is(err, subscription.ErrAmbiguousLabel):
		return "❌ Several tracked addresses share that label. Use the address instead."
	case err != nil:
		logger.Error(ctx, "untrack command failed", "chat_id", chatID, "error", err)
		return "❌ Unexpected error. Please try again later."
	}

	return "🔕 Stopped tracking. You will no longer receive notifications for it."
}

func (b *Bot) handleList(ctx context.Context, chatID int64) string {
	subs, err := b.subscriptions.List(ctx, chatID)
	if err != nil {
		logger.Error(ctx, "list command failed", "chat_id", chatID, "error", err)
		return "❌ Unexpected error. Please try again later."
	}

	return renderSubscriptions(subs)
}

func describeQueryError(ctx context.Context, err error) string {
	if errors.Is(err, account.ErrInvalidAddress) {
		return "❌ Invalid wallet address. Please provide a valid 0x... address."
	}

	logger.Error(ctx, "wallet query failed", "error", err)
	return "❌ Error: Unable to fetch data from the explorer. Please try again later."
}
