package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/wenderson1/VibraTicket/internal/domain"
)

// TelegramNotifier posts order lifecycle events to the back-office
// operations channel. With an empty token it degrades to a no-op, so local
// development needs no bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOrderCompleted(ctx context.Context, o *domain.Order) {
	text := fmt.Sprintf(
		"*Order completed*\n\nOrder: %s\nTotal: %s\nCustomer: %d",
		o.OrderNumber, o.TotalAmount.String(), o.CustomerID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrderCancelled(ctx context.Context, o *domain.Order) {
	text := fmt.Sprintf(
		"*Order cancelled*\n\nOrder: %s\nTotal: %s\nCustomer: %d",
		o.OrderNumber, o.TotalAmount.String(), o.CustomerID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrdersExpired(ctx context.Context, orders []*domain.Order) {
	if len(orders) == 0 {
		return
	}

	numbers := make([]string, 0, len(orders))
	for _, o := range orders {
		numbers = append(numbers, o.OrderNumber)
	}
	text := fmt.Sprintf(
		"*Expired orders cancelled*\n\nCount: %d\nOrders: %s",
		len(orders), strings.Join(numbers, ", "),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
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
