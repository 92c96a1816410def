package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/philbirt/event-staking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts every ledger notification to one announcement
// chat. With no token or chat id configured the bot stays nil and every
// notification degrades to a debug log line.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEventCreated(ctx context.Context, event *domain.Event) {
	text := fmt.Sprintf(
		"*New event #%d: %s*\n\n"+"Capacity: %d\n"+"Stake: %d\n"+"Window (UTC): %s - %s",
		event.ID, event.Name, event.Capacity, event.Price,
		event.StartsAt.Format("02.01.2006 15:04"),
		event.EndsAt().Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReserved(ctx context.Context, event *domain.Event, participant string, amount int64) {
	text := fmt.Sprintf(
		"*Slot reserved at event #%d (%s)*\n\n"+"Participant: %s\n"+"Escrowed: %d",
		event.ID, event.Name, participant, amount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCheckedIn(ctx context.Context, event *domain.Event, participant string) {
	text := fmt.Sprintf(
		"*Check-in at event #%d (%s)*\n\n"+"Participant: %s\n"+"Stake refunded.",
		event.ID, event.Name, participant,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifySwept(ctx context.Context, event *domain.Event, amount int64) {
	text := fmt.Sprintf(
		"*Escrow swept for event #%d (%s)*\n\n"+"Forfeited stakes paid to the organizer: %d",
		event.ID, event.Name, amount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
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
