package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kaiawatch/kaiawatch/internal/notify"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sink delivers transaction notifications as Telegram messages.
type Sink struct {
	api *tgbotapi.BotAPI
}

var _ notify.NotificationSink = (*Sink)(nil)

// NewSink creates a notification sink over an authenticated API
// handle, usually the same one the command bot runs on.
func NewSink(api *tgbotapi.BotAPI) *Sink {
	return &Sink{api: api}
}

// Send posts the rendered notification to the subscriber's chat. A
// 403 from Telegram means the user blocked the bot or deleted the
// chat; that is reported as a permanent failure so the dispatcher
// deactivates the subscriber instead of retrying.
func (s *Sink) Send(ctx context.Context, subscriberID int64, notification notify.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(subscriberID, renderNotification(notification))
	if _, err := s.api.Send(msg); err != nil {
		if isUnreachableChat(err) {
			return fmt.Errorf("%w: %s", notify.ErrSinkPermanent, err)
		}

		return err
	}

	return nil
}

func isUnreachableChat(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden
}
