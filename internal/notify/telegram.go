package notify

import (
	"fmt"

	"clubmanager/internal/config"
	"clubmanager/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Notifier announces newly scheduled events to the team channel. Failures
// are logged, never propagated: scheduling must not depend on the
// messenger being up.
type Notifier interface {
	EventCreated(kind domain.EventKind, summary string)
}

type Noop struct{}

func (Noop) EventCreated(domain.EventKind, string) {}

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logrus.Entry
}

var _ Notifier = (*Telegram)(nil)

func NewTelegram(cfg config.TgBot, l *logrus.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api token: %w", err)
	}
	if _, err := bot.GetMe(); err != nil {
		return nil, err
	}
	return &Telegram{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    l.WithField("from", "tg-notify"),
	}, nil
}

func (t *Telegram) EventCreated(kind domain.EventKind, summary string) {
	text := "Nový zápas: " + summary
	if kind == domain.EventTraining {
		text = "Nový tréning: " + summary
	}
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.WithError(err).Warn("event notification failed")
	}
}
