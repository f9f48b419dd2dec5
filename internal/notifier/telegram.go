// Package notifier delivers notifications over external channels.
package notifier

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// Telegram pushes notification messages to users who linked a chat id.
// Delivery is best-effort; the persisted notification stays the source of
// truth.
type Telegram struct {
	bot    *bot.Bot
	logger *zap.Logger
}

func NewTelegram(token string, logger *zap.Logger) (*Telegram, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{bot: b, logger: logger}, nil
}

func (t *Telegram) Push(ctx context.Context, chatID int64, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
