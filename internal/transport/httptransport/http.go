package httptransport

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/lookup"
	"github.com/labstack/echo/v4"
)

// LookupService — абстракция основного поискового сценария.
type LookupService interface {
	Lookup(ctx context.Context, query string) (lookup.Result, error)
}

// TickersService — абстракция топа KRW-пар.
type TickersService interface {
	TopTickers(ctx context.Context, limit int) ([]domain.TopTicker, error)
}

// HistoryReader — чтение списка недавних поисков.
type HistoryReader interface {
	Recent() []domain.Coin
}

// CoinResponse — DTO ответа API с монетой.
type CoinResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank *int   `json:"market_cap_rank,omitempty"`
}

// LookupResponse — DTO полного ответа поиска: монета, ряд и метрики.
type LookupResponse struct {
	Coin   CoinResponse `json:"coin"`
	Labels []string     `json:"labels"`
	Values []float64    `json:"values"`
	Latest float64      `json:"latest"`
	First  float64      `json:"first"`
	Mean   float64      `json:"mean"`
	Change string       `json:"change"`
}

func makeCoin(c domain.Coin) CoinResponse {
	out := CoinResponse{
		ID:     c.ID,
		Name:   c.Name,
		Symbol: strings.ToUpper(c.Symbol),
	}
	// Ранг по капитализации бывает неизвестен — тогда поле опускаем
	if c.MarketCapRank > 0 {
		rank := c.MarketCapRank
		out.MarketCapRank = &rank
	}
	return out
}

// Handler — HTTP‑handler сервиса.
type Handler struct {
	logger  *slog.Logger
	lookup  LookupService
	tickers TickersService
	history HistoryReader
	timeout time.Duration
}

func NewHandler(logger *slog.Logger, lookupSvc LookupService, tickersSvc TickersService, history HistoryReader, timeout time.Duration) *Handler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if lookupSvc == nil || tickersSvc == nil || history == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 10
	}
	return &Handler{
		logger:  logger,
		lookup:  lookupSvc,
		tickers: tickersSvc,
		history: history,
		timeout: timeout,
	}
}

func (h *Handler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/healthz", h.Health)
	r.GET("/coins/search", h.SearchCoin)
	r.GET("/coins/history", h.RecentHistory)
	r.GET("/tickers/top", h.TopTickers)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) SearchCoin(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "query_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.lookup.Lookup(ctx, query)
	if err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.BadRequest:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "query_required",
			})
		case errcode.NotFoundCoins:
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "coin_not_found",
				"query": query,
			})
		case errcode.EmptySeries:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error": "series_unavailable",
				"query": query,
			})
		case errcode.Upstream:
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": "upstream_failed",
			})
		default:
			h.logger.Error("Lookup failed",
				slog.String("op", "SearchCoin"),
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "internal_server_error",
			})
		}
	}

	out := LookupResponse{
		Coin:   makeCoin(res.Coin),
		Labels: res.Series.Labels,
		Values: res.Series.Values,
		Latest: res.Series.Latest,
		First:  res.Series.First,
		Mean:   res.Series.Mean,
		Change: res.Change,
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) RecentHistory(c echo.Context) error {
	items := h.history.Recent()

	out := make([]CoinResponse, 0, len(items))
	for _, it := range items {
		out = append(out, makeCoin(it))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) TopTickers(c echo.Context) error {
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid_limit",
			})
		}
		limit = v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.tickers.TopTickers(ctx, limit)
	if err != nil {
		// Топ деградирует независимо от основного сценария:
		// фронтенд подставит заглушку вместо графика
		h.logger.Error("TopTickers failed",
			slog.String("op", "TopTickers"),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "tickers_unavailable",
		})
	}

	return c.JSON(http.StatusOK, items)
}
