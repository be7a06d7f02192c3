package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Клиент публичного API CoinGecko: поиск монет, годовой график,
// курсы валют и листинг тикеров биржи.

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient - создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// searchResponse — структура для парсинга ответа /search
type searchResponse struct {
	Coins []struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Symbol        string `json:"symbol"`
		MarketCapRank int    `json:"market_cap_rank"`
	} `json:"coins"`
}

// marketChartResponse — структура для парсинга ответа /coins/{id}/market_chart.
// prices приходит массивом пар [timestampMillis, price].
type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

type exchangeRatesResponse struct {
	Rates map[string]struct {
		Value float64 `json:"value"`
	} `json:"rates"`
}

type exchangeTickersResponse struct {
	Tickers []struct {
		Base          string  `json:"base"`
		Target        string  `json:"target"`
		CoinID        string  `json:"coin_id"`
		Last          float64 `json:"last"`
		ConvertedLast struct {
			USD float64 `json:"usd"`
		} `json:"converted_last"`
	} `json:"tickers"`
}

// SearchCoins — свободный поиск монет по строке запроса
func (c *Client) SearchCoins(ctx context.Context, query string) ([]domain.Coin, error) {
	q := url.Values{}
	q.Set("query", query)

	var data searchResponse
	if err := c.getJSON(ctx, q, &data, "search"); err != nil {
		return nil, fmt.Errorf("search coins: %w", err)
	}

	result := make([]domain.Coin, 0, len(data.Coins))
	for _, d := range data.Coins {
		result = append(result, domain.Coin{
			ID:            d.ID,
			Name:          d.Name,
			Symbol:        d.Symbol,
			MarketCapRank: d.MarketCapRank,
		})
	}
	return result, nil
}

// MarketChart — исторические цены монеты в USD за days дней
func (c *Client) MarketChart(ctx context.Context, coinID string, days int) ([]domain.PricePoint, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("days", strconv.Itoa(days))

	var data marketChartResponse
	if err := c.getJSON(ctx, q, &data, "coins", coinID, "market_chart"); err != nil {
		return nil, fmt.Errorf("market chart for %s: %w", coinID, err)
	}

	points := make([]domain.PricePoint, 0, len(data.Prices))
	for _, p := range data.Prices {
		points = append(points, domain.PricePoint{
			Timestamp: int64(p[0]),
			Price:     p[1],
		})
	}
	return points, nil
}

// ExchangeRates — курсы валют, ключи приводим к нижнему регистру
func (c *Client) ExchangeRates(ctx context.Context) (map[string]float64, error) {
	var data exchangeRatesResponse
	if err := c.getJSON(ctx, nil, &data, "exchange_rates"); err != nil {
		return nil, fmt.Errorf("exchange rates: %w", err)
	}

	rates := make(map[string]float64, len(data.Rates))
	for code, r := range data.Rates {
		rates[strings.ToLower(code)] = r.Value
	}
	return rates, nil
}

// ExchangeTickers — одна страница листинга тикеров биржи
func (c *Client) ExchangeTickers(ctx context.Context, exchange string, page, perPage int) ([]domain.ExchangeTicker, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var data exchangeTickersResponse
	if err := c.getJSON(ctx, q, &data, "exchanges", exchange, "tickers"); err != nil {
		return nil, fmt.Errorf("exchange tickers page %d: %w", page, err)
	}

	result := make([]domain.ExchangeTicker, 0, len(data.Tickers))
	for _, t := range data.Tickers {
		result = append(result, domain.ExchangeTicker{
			CoinID:       t.CoinID,
			Base:         t.Base,
			Target:       t.Target,
			Last:         t.Last,
			ConvertedUSD: t.ConvertedLast.USD,
		})
	}
	return result, nil
}

// getJSON — общий GET с проверкой статуса и декодированием JSON
func (c *Client) getJSON(ctx context.Context, query url.Values, out any, path ...string) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, _ = url.JoinPath(u.Path, path...)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "coin-lookup-service/1.0 (+https://github.com/NastyaGoryachaya/coin-lookup-service)"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.RequestError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
