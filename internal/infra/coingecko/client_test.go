package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		UserAgent: "test",
	})
}

// Поиск: проверяем query-параметр и разбор массива coins
func TestSearchCoins(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "bitcoin" {
			t.Errorf("query = %q, want bitcoin", got)
		}
		w.Write([]byte(`{"coins":[
			{"id":"bitcoin","name":"Bitcoin","symbol":"btc","market_cap_rank":1},
			{"id":"bitcoin-cash","name":"Bitcoin Cash","symbol":"bch"}
		]}`))
	}))
	defer server.Close()

	coins, err := newTestClient(server.URL).SearchCoins(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("len = %d, want 2", len(coins))
	}
	if coins[0].ID != "bitcoin" || coins[0].MarketCapRank != 1 {
		t.Errorf("unexpected first coin: %+v", coins[0])
	}
	// отсутствующий ранг остаётся нулевым
	if coins[1].MarketCapRank != 0 {
		t.Errorf("rank = %d, want 0", coins[1].MarketCapRank)
	}
}

// График: пары [timestamp, price] превращаются в PricePoint
func TestMarketChart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("vs_currency") != "usd" || q.Get("days") != "365" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"prices":[[1700000000000,35000.5],[1700086400000,36000]]}`))
	}))
	defer server.Close()

	points, err := newTestClient(server.URL).MarketChart(context.Background(), "bitcoin", 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
	if points[0].Timestamp != 1700000000000 || points[0].Price != 35000.5 {
		t.Errorf("unexpected point: %+v", points[0])
	}
}

// Курсы: ключи приводятся к нижнему регистру
func TestExchangeRates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"usd":{"value":1},"KRW":{"value":1300.5}}}`))
	}))
	defer server.Close()

	rates, err := newTestClient(server.URL).ExchangeRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["krw"] != 1300.5 || rates["usd"] != 1 {
		t.Errorf("unexpected rates: %+v", rates)
	}
}

// Листинг тикеров: converted_last.usd разворачивается в плоское поле
func TestExchangeTickers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exchanges/upbit/tickers" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("per_page") != "100" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"tickers":[
			{"base":"BTC","target":"KRW","coin_id":"bitcoin","last":95000000,"converted_last":{"usd":70000}}
		]}`))
	}))
	defer server.Close()

	tickers, err := newTestClient(server.URL).ExchangeTickers(context.Background(), "upbit", 2, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickers) != 1 {
		t.Fatalf("len = %d, want 1", len(tickers))
	}
	if tickers[0].CoinID != "bitcoin" || tickers[0].ConvertedUSD != 70000 {
		t.Errorf("unexpected ticker: %+v", tickers[0])
	}
}

// Не-2xx статус: RequestError с кодом, без ретраев
func TestRequestError(t *testing.T) {
	t.Parallel()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchCoins(context.Background(), "bitcoin")
	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", reqErr.Status)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", calls)
	}
}
