package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	botpkg "github.com/NastyaGoryachaya/coin-lookup-service/internal/bot"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/config"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/infra/coingecko"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/infra/upbit"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/history"
	lookupsvc "github.com/NastyaGoryachaya/coin-lookup-service/internal/service/lookup"
	tickersvc "github.com/NastyaGoryachaya/coin-lookup-service/internal/service/tickers"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/transport/httptransport"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	e    *echo.Echo
	serv *http.Server

	recent *history.Store

	lookup  lookupsvc.Service
	tickers tickersvc.Service

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	gecko := coingecko.NewClient(coingecko.Config{
		BaseURL:   cfg.CoinGecko.BaseURL,
		Timeout:   cfg.CoinGecko.Timeout,
		UserAgent: cfg.CoinGecko.UserAgent,
	})

	app.recent = history.NewStore(cfg.History.Capacity)
	app.lookup = lookupsvc.NewService(gecko, app.recent, cfg.CoinGecko.Days, log)

	// Стратегию топа KRW-пар выбираем конфигом; переключение — без
	// пересборки. Пути двух стратегий нигде не пересекаются.
	switch strings.ToLower(cfg.Aggregator.Strategy) {
	case "coingecko":
		app.tickers = tickersvc.NewGeckoListingSource(gecko, tickersvc.ListingConfig{
			Exchange: cfg.Aggregator.Exchange,
			PageSize: cfg.Aggregator.PageSize,
			MaxPages: cfg.Aggregator.MaxPages,
			Limit:    cfg.Aggregator.Limit,
		}, log)
	case "", "upbit":
		upbitClient := upbit.NewClient(upbit.Config{
			BaseURL:   cfg.Upbit.BaseURL,
			Timeout:   cfg.Upbit.Timeout,
			UserAgent: cfg.Upbit.UserAgent,
		})
		app.tickers = tickersvc.NewUpbitMarketSource(upbitClient, tickersvc.MarketConfig{
			BatchSize: cfg.Aggregator.BatchSize,
			Limit:     cfg.Aggregator.Limit,
		}, log)
	default:
		log.Error("unknown aggregator strategy", slog.String("strategy", cfg.Aggregator.Strategy))
		return nil, errors.New("unknown aggregator strategy: " + cfg.Aggregator.Strategy)
	}

	e := echo.New()
	app.e = e

	h := httptransport.NewHandler(log, app.lookup, app.tickers, app.recent, cfg.Server.HandlerTimeout)
	h.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			app.lookup,
			app.tickers,
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.String("strategy", cfg.Aggregator.Strategy),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.log.Info("application stopped")
	return nil
}
