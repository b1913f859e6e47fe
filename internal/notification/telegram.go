package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// TelegramNotifier sends attrition alerts to the operator chat. Sends go
// through a circuit breaker so a dead Telegram API is not hammered on every
// sweep.
type TelegramNotifier struct {
	bot     sender
	chatID  int64
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, bs BreakerSettings, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return newNotifier(bot, chatID, bs, logger), nil
}

func newNotifier(bot sender, chatID int64, bs BreakerSettings, log logger.Logger) *TelegramNotifier {
	if bs.MaxFailures == 0 {
		bs.MaxFailures = 5
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = time.Minute
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "telegram",
		MaxRequests: 1,
		Timeout:     bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})

	return &TelegramNotifier{
		bot:     bot,
		chatID:  chatID,
		breaker: breaker,
		logger:  log,
	}
}

func (n *TelegramNotifier) NotifyAttrition(ctx context.Context, event *domain.Event, results []domain.AttritionResult) {
	if len(results) == 0 {
		return
	}
	n.send(ctx, formatAttrition(event, results))
}

func formatAttrition(event *domain.Event, results []domain.AttritionResult) string {
	name := event.Name
	if name == "" {
		name = event.ID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Срабатывание attrition*\n\nМероприятие: %s\n",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, name))
	if !event.CheckIn.IsZero() {
		fmt.Fprintf(&b, "Заезд (UTC): %s\n", event.CheckIn.Format("02.01.2006"))
	}

	for _, r := range results {
		fmt.Fprintf(&b, "\nДата релиза: %s, %s%%\nНепроданных номеров: %d\nПод риском: %d номеров, %s\n",
			r.Rule.ReleaseDate.Format("02.01.2006"),
			r.Rule.ReleasePercent.String(),
			r.UnsoldRooms,
			r.RoomsAtRisk,
			r.RevenueAtRisk.StringFixed(2),
		)
	}
	return b.String()
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
	msg.ParseMode = tgbotapi.ModeMarkdown

	_, err := n.breaker.Execute(func() (interface{}, error) {
		return n.bot.Send(msg)
	})
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
