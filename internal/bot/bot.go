package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/lookup"
	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// CoinReader — интерфейс основного поискового сценария для бота
type CoinReader interface {
	Lookup(ctx context.Context, query string) (lookup.Result, error)
}

// TickersReader — интерфейс топа KRW-пар для бота
type TickersReader interface {
	TopTickers(ctx context.Context, limit int) ([]domain.TopTicker, error)
}

// Bot — Telegram-транспорт поверх тех же сервисов, что и HTTP
type Bot struct {
	bot     *telebot.Bot
	coins   CoinReader
	tickers TickersReader
	logger  *slog.Logger
}

// New создаёт новый экземпляр бота
func New(cfg Config, coins CoinReader, tickers TickersReader, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:     b,
		coins:   coins,
		tickers: tickers,
		logger:  logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/coin", bot.handleCoin)
	b.Handle("/top", bot.handleTop)
	return bot, nil
}

// Start запускает long-poll цикл бота
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
