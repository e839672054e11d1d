package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

const replyTimeout = 3 * time.Second

// handleStart - отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(b.replies.Help())
}

// handleRates - все курсы или одна пара: /rates BTC USD
func (b *Bot) handleRates(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	return b.send(c, "/rates", b.replies.Rates(ctx, c.Args()))
}

// handleConvert - /convert 0.5 BTC USD
func (b *Bot) handleConvert(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	return b.send(c, "/convert", b.replies.Convert(ctx, c.Args()))
}

// handleHistory - последние конвертации и сумма завершённых
func (b *Bot) handleHistory(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()
	return b.send(c, "/history", b.replies.History(ctx))
}

func (b *Bot) send(c telebot.Context, cmd, text string) error {
	if err := c.Send(text); err != nil {
		var chatID int64
		if chat := c.Chat(); chat != nil {
			chatID = chat.ID
		}
		b.logger.Error("bot: send failed",
			slog.String("cmd", cmd),
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
