package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Бизнес-логика основного сценария: запрос пользователя -> алиас ->
// поиск -> лучший кандидат -> годовой график -> метрики.

//go:generate mockgen -source=lookup_service.go -destination=mocks/mocks.go -package=mocks

type Service interface {
	// Lookup — полный цикл поиска монеты с годовым ценовым рядом
	Lookup(ctx context.Context, query string) (Result, error)
}

// MarketDataProvider — внешний источник рыночных данных (CoinGecko API).
type MarketDataProvider interface {
	SearchCoins(ctx context.Context, query string) ([]domain.Coin, error)
	MarketChart(ctx context.Context, coinID string, days int) ([]domain.PricePoint, error)
}

// HistoryRecorder — хранилище недавних успешных поисков.
type HistoryRecorder interface {
	Record(coin domain.Coin)
}

// Result — итог успешного поиска: монета, ряд и годовое изменение.
type Result struct {
	Coin   domain.Coin
	Series domain.Series
	Change string
}

type service struct {
	provider MarketDataProvider
	history  HistoryRecorder
	days     int
	logger   *slog.Logger
}

func NewService(provider MarketDataProvider, history HistoryRecorder, days int, logger *slog.Logger) Service {
	if days <= 0 {
		days = 365
	}
	return &service{
		provider: provider,
		history:  history,
		days:     days,
		logger:   logger,
	}
}

func (s *service) Lookup(ctx context.Context, query string) (Result, error) {
	resolved := Resolve(query)
	if resolved == "" {
		return Result{}, ErrEmptyQuery
	}

	candidates, err := s.provider.SearchCoins(ctx, resolved)
	if err != nil {
		s.logger.Error("coin search failed", slog.String("query", resolved), slog.Any("err", err))
		return Result{}, fmt.Errorf("search coins: %w", err)
	}
	if len(candidates) == 0 {
		s.logger.Warn("no search matches", slog.String("query", resolved))
		return Result{}, ErrNoMatches
	}

	coin := SelectBest(candidates, resolved)
	s.logger.Debug("best match selected",
		slog.String("query", resolved),
		slog.String("coin_id", coin.ID),
		slog.Int("candidates", len(candidates)),
	)

	points, err := s.provider.MarketChart(ctx, coin.ID, s.days)
	if err != nil {
		s.logger.Error("market chart failed", slog.String("coin_id", coin.ID), slog.Any("err", err))
		return Result{}, fmt.Errorf("market chart: %w", err)
	}

	series, err := ExtractSeries(points)
	if err != nil {
		s.logger.Warn("empty price series", slog.String("coin_id", coin.ID))
		return Result{}, err
	}

	// История пополняется только после полного успеха цикла
	s.history.Record(coin)

	s.logger.Info("lookup completed",
		slog.String("coin_id", coin.ID),
		slog.Int("points", len(series.Values)),
	)

	return Result{
		Coin:   coin,
		Series: series,
		Change: FormatChange(series.First, series.Latest),
	}, nil
}
