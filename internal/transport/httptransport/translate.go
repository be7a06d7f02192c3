package httptransport

import (
	"errors"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/lookup"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/tickers"
)

func FromServiceError(err error) errcode.Code {
	var reqErr *domain.RequestError
	switch {
	case errors.Is(err, lookup.ErrEmptyQuery):
		return errcode.BadRequest
	case errors.Is(err, lookup.ErrNoMatches):
		return errcode.NotFoundCoins
	case errors.Is(err, lookup.ErrEmptySeries):
		return errcode.EmptySeries
	case errors.Is(err, tickers.ErrRateUnavailable):
		return errcode.TickersUnavailable
	case errors.As(err, &reqErr):
		return errcode.Upstream
	default:
		return errcode.Internal
	}
}
