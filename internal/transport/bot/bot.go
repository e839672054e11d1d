package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/config"
	"gopkg.in/telebot.v4"
)

// Bot - Telegram-фронтенд калькулятора
type Bot struct {
	bot     *telebot.Bot
	replies *Replies
	logger  *slog.Logger

	stopOnce sync.Once
}

// New создаёт бота и регистрирует команды
func New(cfg config.TelegramConfig, replies *Replies, logger *slog.Logger) (*Bot, error) {
	pollTimeout := cfg.LongPollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: pollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:     b,
		replies: replies,
		logger:  logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/rates", bot.handleRates)
	b.Handle("/convert", bot.handleConvert)
	b.Handle("/history", bot.handleHistory)
	return bot, nil
}

// Start запускает long polling; остановка по ctx или Stop
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
	<-ctx.Done()
	b.Stop()
}

// Stop останавливает бота. Повторный вызов ничего не делает:
// второй telebot.Bot.Stop заблокировался бы навсегда.
func (b *Bot) Stop() {
	b.stopOnce.Do(b.bot.Stop)
}
