package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/successxx/punctual/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "Mon 02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, host *domain.Host, b *domain.Booking) {
	n.send(ctx, host.TelegramChatID, createdText(host, b))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, host *domain.Host, b *domain.Booking) {
	n.send(ctx, host.TelegramChatID, cancelledText(host, b))
}

func (n *TelegramNotifier) NotifyBookingRescheduled(ctx context.Context, host *domain.Host, old, next *domain.Booking) {
	n.send(ctx, host.TelegramChatID, rescheduledText(host, old, next))
}

func (n *TelegramNotifier) NotifyBookingReminder(ctx context.Context, host *domain.Host, b *domain.Booking) {
	n.send(ctx, host.TelegramChatID, reminderText(host, b))
}

func createdText(host *domain.Host, b *domain.Booking) string {
	text := fmt.Sprintf("*New booking*\n\n%s\nWhen: %s",
		guestLine(b), escape(formatInterval(host, b.Start, b.End)),
	)
	if b.Notes != "" {
		text += "\nNotes: " + escape(b.Notes)
	}
	return text
}

func cancelledText(host *domain.Host, b *domain.Booking) string {
	return fmt.Sprintf("*Booking cancelled*\n\n%s\nWas: %s",
		guestLine(b), escape(formatInterval(host, b.Start, b.End)),
	)
}

func rescheduledText(host *domain.Host, old, next *domain.Booking) string {
	return fmt.Sprintf("*Booking rescheduled*\n\n%s\nFrom: %s\nTo: %s",
		guestLine(next),
		escape(formatInterval(host, old.Start, old.End)),
		escape(formatInterval(host, next.Start, next.End)),
	)
}

func reminderText(host *domain.Host, b *domain.Booking) string {
	return fmt.Sprintf("*Upcoming meeting*\n\n%s\nWhen: %s",
		guestLine(b), escape(formatInterval(host, b.Start, b.End)),
	)
}

func guestLine(b *domain.Booking) string {
	return fmt.Sprintf("Guest: %s (%s)", escape(b.GuestName), escape(b.GuestEmail))
}

// escape quotes guest input and zone names such as America/New_York for Markdown mode.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// formatInterval renders times in the host's timezone, falling back to UTC.
func formatInterval(host *domain.Host, start, end time.Time) string {
	loc, err := host.Location()
	if err != nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%s-%s (%s)",
		start.In(loc).Format(timeLayout), end.In(loc).Format("15:04"), loc.String(),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
