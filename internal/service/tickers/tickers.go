package tickers

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Топ KRW-пар. Две стратегии получения данных живут в отдельных
// реализациях Service и выбираются конфигом — пути кода не смешиваются.

//go:generate mockgen -source=gecko_source.go -destination=mocks/gecko_mocks.go -package=mocks
//go:generate mockgen -source=upbit_source.go -destination=mocks/upbit_mocks.go -package=mocks

type Service interface {
	// TopTickers — отсортированный по убыванию метрики топ KRW-пар
	TopTickers(ctx context.Context, limit int) ([]domain.TopTicker, error)
}

// DefaultLimit — размер топа по умолчанию
const DefaultLimit = 12

// QuoteCurrency — единственная поддерживаемая валюта котировки
const QuoteCurrency = "KRW"

var ErrRateUnavailable = errors.New("exchange rate unavailable")
