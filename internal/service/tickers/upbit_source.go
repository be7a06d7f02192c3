package tickers

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Стратегия прямого API биржи: полный список рынков, затем живые
// тикеры последовательными батчами фиксированного размера.

// MarketProvider — прямой API биржи.
type MarketProvider interface {
	Markets(ctx context.Context) ([]domain.Market, error)
	Tickers(ctx context.Context, codes []string) ([]domain.MarketTicker, error)
}

type MarketConfig struct {
	BatchSize int
	Limit     int
}

type UpbitMarketSource struct {
	provider MarketProvider
	cfg      MarketConfig
	logger   *slog.Logger
}

func NewUpbitMarketSource(provider MarketProvider, cfg MarketConfig, logger *slog.Logger) *UpbitMarketSource {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &UpbitMarketSource{provider: provider, cfg: cfg, logger: logger}
}

func (s *UpbitMarketSource) TopTickers(ctx context.Context, limit int) ([]domain.TopTicker, error) {
	if limit <= 0 {
		limit = s.cfg.Limit
	}

	markets, err := s.provider.Markets(ctx)
	if err != nil {
		s.logger.Error("market list failed", slog.Any("err", err))
		return nil, fmt.Errorf("market list: %w", err)
	}

	prefix := QuoteCurrency + "-"
	codes := make([]string, 0, len(markets))
	for _, m := range markets {
		if strings.HasPrefix(m.Code, prefix) {
			codes = append(codes, m.Code)
		}
	}
	if len(codes) == 0 {
		s.logger.Warn("no KRW markets listed")
		return []domain.TopTicker{}, nil
	}

	all, err := s.collectBatches(ctx, codes)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].AccTradePrice24h > all[j].AccTradePrice24h
	})
	if len(all) > limit {
		all = all[:limit]
	}

	out := make([]domain.TopTicker, 0, len(all))
	for _, t := range all {
		out = append(out, domain.TopTicker{
			Label: strings.TrimPrefix(t.Market, prefix),
			Value: t.AccTradePrice24h,
		})
	}

	s.logger.Info("top tickers aggregated",
		slog.String("strategy", "upbit"),
		slog.Int("count", len(out)),
	)
	return out, nil
}

// collectBatches — последовательные запросы тикеров батчами.
// Параллельный fan-out здесь сознательно не делаем: публичный API
// и так щедро режет слишком частые запросы.
func (s *UpbitMarketSource) collectBatches(ctx context.Context, codes []string) ([]domain.MarketTicker, error) {
	var all []domain.MarketTicker
	for start := 0; start < len(codes); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(codes) {
			end = len(codes)
		}

		batch, err := s.provider.Tickers(ctx, codes[start:end])
		if err != nil {
			s.logger.Error("ticker batch failed",
				slog.Int("offset", start),
				slog.Int("size", end-start),
				slog.Any("err", err),
			)
			return nil, fmt.Errorf("ticker batch at %d: %w", start, err)
		}
		all = append(all, batch...)
	}
	return all, nil
}
