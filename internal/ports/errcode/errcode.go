package errcode

type Code string

const (
	NotFoundCoins Code = "NOT_FOUND_COINS"
	EmptySeries   Code = "EMPTY_SERIES"

	Upstream           Code = "UPSTREAM_FAILED"
	TickersUnavailable Code = "TICKERS_UNAVAILABLE"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
