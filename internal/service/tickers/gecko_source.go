package tickers

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Стратегия листинга биржи: постранично вычитываем тикеры биржи из
// CoinGecko, фильтруем KRW-пары и конвертируем цены через курс KRW/USD.

// ListingProvider — источник листинга тикеров и курсов валют.
type ListingProvider interface {
	ExchangeTickers(ctx context.Context, exchange string, page, perPage int) ([]domain.ExchangeTicker, error)
	ExchangeRates(ctx context.Context) (map[string]float64, error)
}

type ListingConfig struct {
	Exchange string
	PageSize int
	MaxPages int
	Limit    int
}

type GeckoListingSource struct {
	provider ListingProvider
	cfg      ListingConfig
	logger   *slog.Logger
}

func NewGeckoListingSource(provider ListingProvider, cfg ListingConfig, logger *slog.Logger) *GeckoListingSource {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	if cfg.Exchange == "" {
		cfg.Exchange = "upbit"
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &GeckoListingSource{provider: provider, cfg: cfg, logger: logger}
}

func (s *GeckoListingSource) TopTickers(ctx context.Context, limit int) ([]domain.TopTicker, error) {
	if limit <= 0 {
		limit = s.cfg.Limit
	}

	all, err := s.collectPages(ctx)
	if err != nil {
		return nil, err
	}

	krw := dedupeByAsset(filterByQuote(all, QuoteCurrency))
	if len(krw) == 0 {
		s.logger.Warn("no KRW pairs in exchange listing", slog.String("exchange", s.cfg.Exchange))
		return []domain.TopTicker{}, nil
	}

	rate, err := s.krwPerUSD(ctx)
	if err != nil {
		return nil, err
	}

	// Сортировка по USD-стоимости последней сделки; при отсутствии
	// конвертации используем сырую последнюю цену
	sort.SliceStable(krw, func(i, j int) bool {
		return sortMetric(krw[i]) > sortMetric(krw[j])
	})
	if len(krw) > limit {
		krw = krw[:limit]
	}

	out := make([]domain.TopTicker, 0, len(krw))
	for _, t := range krw {
		value := t.Last
		if t.ConvertedUSD > 0 {
			value = t.ConvertedUSD * rate
		}
		out = append(out, domain.TopTicker{
			Label: strings.ToUpper(t.Base),
			Value: value,
		})
	}

	s.logger.Info("top tickers aggregated",
		slog.String("strategy", "coingecko"),
		slog.Int("count", len(out)),
	)
	return out, nil
}

// collectPages — вычитывает листинг постранично до короткой или пустой
// страницы; MaxPages страхует от бесконечной пагинации
func (s *GeckoListingSource) collectPages(ctx context.Context) ([]domain.ExchangeTicker, error) {
	var all []domain.ExchangeTicker
	for page := 1; page <= s.cfg.MaxPages; page++ {
		batch, err := s.provider.ExchangeTickers(ctx, s.cfg.Exchange, page, s.cfg.PageSize)
		if err != nil {
			s.logger.Error("exchange listing page failed", slog.Int("page", page), slog.Any("err", err))
			return nil, fmt.Errorf("exchange listing: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < s.cfg.PageSize {
			break
		}
	}
	return all, nil
}

// krwPerUSD — курс KRW за USD из общей таблицы курсов.
// Оба курса обязаны присутствовать, иначе конвертация невозможна.
func (s *GeckoListingSource) krwPerUSD(ctx context.Context) (float64, error) {
	rates, err := s.provider.ExchangeRates(ctx)
	if err != nil {
		s.logger.Error("exchange rates failed", slog.Any("err", err))
		return 0, fmt.Errorf("exchange rates: %w", err)
	}

	krw, okKRW := rates["krw"]
	usd, okUSD := rates["usd"]
	if !okKRW || !okUSD || usd == 0 {
		s.logger.Warn("krw/usd rate missing in rates response")
		return 0, ErrRateUnavailable
	}
	return krw / usd, nil
}

func filterByQuote(in []domain.ExchangeTicker, quote string) []domain.ExchangeTicker {
	out := make([]domain.ExchangeTicker, 0, len(in))
	for _, t := range in {
		if strings.EqualFold(t.Target, quote) {
			out = append(out, t)
		}
	}
	return out
}

// dedupeByAsset — оставляет первое вхождение каждого базового актива
func dedupeByAsset(in []domain.ExchangeTicker) []domain.ExchangeTicker {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.ExchangeTicker, 0, len(in))
	for _, t := range in {
		key := t.CoinID
		if key == "" {
			key = strings.ToLower(t.Base)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func sortMetric(t domain.ExchangeTicker) float64 {
	if t.ConvertedUSD > 0 {
		return t.ConvertedUSD
	}
	return t.Last
}
