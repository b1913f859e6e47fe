package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func attritionFixture() (*domain.Event, []domain.AttritionResult) {
	event := &domain.Event{
		ID:      "e1",
		Name:    "Sharma wedding",
		CheckIn: time.Date(2026, 12, 1, 14, 0, 0, 0, time.UTC),
	}
	results := []domain.AttritionResult{{
		Rule: domain.AttritionRule{
			ID:             "r1",
			ReleaseDate:    time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			ReleasePercent: decimal.NewFromInt(20),
		},
		NewlyTriggered: true,
		UnsoldRooms:    12,
		RoomsAtRisk:    3,
		RevenueAtRisk:  decimal.NewFromInt(15000),
	}}
	return event, results
}

func TestTelegramNotifier_NotifyAttrition(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, 42, BreakerSettings{}, newTestLogger(t))
	event, results := attritionFixture()

	n.NotifyAttrition(context.Background(), event, results)

	require.Len(t, bot.sent, 1)
	msg := bot.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "Markdown", msg.ParseMode)
	assert.Contains(t, msg.Text, "Sharma wedding")
	assert.Contains(t, msg.Text, "01.11.2026")
	assert.Contains(t, msg.Text, "15000.00")
}

func TestTelegramNotifier_EscapesEventName(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, 42, BreakerSettings{}, newTestLogger(t))
	event, results := attritionFixture()
	event.Name = "Q4_kickoff *VIP* [Mumbai]"

	n.NotifyAttrition(context.Background(), event, results)

	require.Len(t, bot.sent, 1)
	text := bot.sent[0].Text
	assert.Contains(t, text, `Q4\_kickoff \*VIP\* \[Mumbai]`)
	assert.NotContains(t, text, "Q4_kickoff")
}

func TestTelegramNotifier_EventWithoutDetails(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, 42, BreakerSettings{}, newTestLogger(t))
	_, results := attritionFixture()

	n.NotifyAttrition(context.Background(), &domain.Event{ID: "evt_1"}, results)

	require.Len(t, bot.sent, 1)
	text := bot.sent[0].Text
	assert.Contains(t, text, `evt\_1`)
	assert.NotContains(t, text, "01.01.0001")
}

func TestTelegramNotifier_NoResultsNoMessage(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, 42, BreakerSettings{}, newTestLogger(t))
	event, _ := attritionFixture()

	n.NotifyAttrition(context.Background(), event, nil)

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, BreakerSettings{}, newTestLogger(t))
	require.NoError(t, err)
	event, results := attritionFixture()

	assert.NotPanics(t, func() {
		n.NotifyAttrition(context.Background(), event, results)
	})
}

func TestTelegramNotifier_BreakerOpensAfterFailures(t *testing.T) {
	bot := &fakeBot{err: errors.New("telegram unavailable")}
	n := newNotifier(bot, 42, BreakerSettings{MaxFailures: 2, OpenTimeout: time.Hour}, newTestLogger(t))
	event, results := attritionFixture()

	for i := 0; i < 3; i++ {
		n.NotifyAttrition(context.Background(), event, results)
	}

	assert.Equal(t, gobreaker.StateOpen, n.breaker.State())
}

func TestTelegramNotifier_CancelledContextSkipsSend(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, 42, BreakerSettings{}, newTestLogger(t))
	event, results := attritionFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyAttrition(ctx, event, results)

	assert.Empty(t, bot.sent)
}
