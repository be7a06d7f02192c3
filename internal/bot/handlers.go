package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/coin {название} - годовая сводка по монете (имя, тикер или корейское название)\n" +
		"/top - топ KRW-пар биржи")
}

// handleCoin — полный цикл поиска монеты и сводка по годовому ряду
func (b *Bot) handleCoin(c telebot.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args(), " "))
	if query == "" {
		return c.Send("Укажи монету: /coin bitcoin или /coin 비트코인")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := b.coins.Lookup(ctx, query)
	if err != nil {
		b.logger.Warn("bot: lookup failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return c.Send(translateBotError(fromLookupError(err)))
	}
	return c.Send(formatLookup(res))
}

// handleTop — текстовый топ KRW-пар. При недоступности агрегатора
// деградируем заглушкой, не трогая остальные команды
func (b *Bot) handleTop(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := b.tickers.TopTickers(ctx, 0)
	if err != nil {
		b.logger.Warn("bot: top tickers failed", slog.String("error", err.Error()))
		return c.Send(translateBotError(errcode.TickersUnavailable))
	}
	if len(items) == 0 {
		return c.Send("KRW-пары не найдены")
	}
	return c.Send(formatTopTickers(items))
}
