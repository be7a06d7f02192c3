package bot

import (
	"errors"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/lookup"
)

func fromLookupError(err error) errcode.Code {
	var reqErr *domain.RequestError
	switch {
	case errors.Is(err, lookup.ErrNoMatches):
		return errcode.NotFoundCoins
	case errors.Is(err, lookup.ErrEmptySeries):
		return errcode.EmptySeries
	case errors.As(err, &reqErr):
		return errcode.Upstream
	default:
		return errcode.Internal
	}
}

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.NotFoundCoins:
		return "Монета не найдена"
	case errcode.EmptySeries:
		return "Ценовой ряд пуст, попробуйте другую монету"
	case errcode.Upstream:
		return "Источник данных недоступен, попробуйте позже"
	case errcode.TickersUnavailable:
		return "Топ KRW-пар сейчас недоступен"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
