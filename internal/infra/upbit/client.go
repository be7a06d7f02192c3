package upbit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Клиент прямого API биржи Upbit: полный список рынков и пакетные
// снапшоты живых тикеров.

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Markets — полный список торговых пар биржи (/v1/market/all)
func (c *Client) Markets(ctx context.Context) ([]domain.Market, error) {
	var data []domain.Market
	if err := c.getJSON(ctx, nil, &data, "v1", "market", "all"); err != nil {
		return nil, fmt.Errorf("market list: %w", err)
	}
	return data, nil
}

// Tickers — живые тикеры для списка пар. Коды передаются одним
// запросом через запятую; нарезка на батчи — забота вызывающего.
func (c *Client) Tickers(ctx context.Context, codes []string) ([]domain.MarketTicker, error) {
	if len(codes) == 0 {
		return nil, errors.New("empty market list")
	}

	q := url.Values{}
	q.Set("markets", strings.Join(codes, ","))

	var data []domain.MarketTicker
	if err := c.getJSON(ctx, q, &data, "v1", "ticker"); err != nil {
		return nil, fmt.Errorf("tickers: %w", err)
	}
	return data, nil
}

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
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

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
