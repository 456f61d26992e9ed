package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const eventTimeLayout = "02.01.2006 15:04"

// TelegramNotifier pushes best-effort status updates to a channel the
// platform operators watch. Per-user delivery goes through the frontend;
// this is the ops feed.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Registration confirmed*\n\n"+"User: %s\n"+"Event: %s\n"+"Time (UTC): %s",
		user.Username, event.Name, event.EventTime.Format(eventTimeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRegistrationCanceled(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Registration canceled*\n\n"+"User: %s\n"+"Event: %s\n"+"Time (UTC): %s",
		user.Username, event.Name, event.EventTime.Format(eventTimeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyEventPublished(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Event published*\n\n"+"Event: %s\n"+"Coordinator: %s\n"+"Time (UTC): %s",
		event.Name, user.Username, event.EventTime.Format(eventTimeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
