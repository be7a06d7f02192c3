package tickers_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/tickers"
	tickersmocks "github.com/NastyaGoryachaya/coin-lookup-service/internal/service/tickers/mocks"
	"github.com/golang/mock/gomock"
)

func setupUpbit(t *testing.T, batchSize int) (context.Context, *gomock.Controller, *tickersmocks.MockMarketProvider, tickers.Service) {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	provider := tickersmocks.NewMockMarketProvider(ctrl)
	src := tickers.NewUpbitMarketSource(provider, tickers.MarketConfig{BatchSize: batchSize}, slog.Default())
	return ctx, ctrl, provider, src
}

// 250 KRW-рынков при батче 100: ровно три запроса размерами 100, 100, 50
func TestUpbitMarket_BatchSizes(t *testing.T) {
	t.Parallel()
	ctx, ctrl, provider, src := setupUpbit(t, 100)
	defer ctrl.Finish()

	markets := make([]domain.Market, 0, 250)
	for i := 0; i < 250; i++ {
		markets = append(markets, domain.Market{Code: fmt.Sprintf("KRW-C%03d", i)})
	}
	provider.EXPECT().Markets(gomock.Any()).Return(markets, nil).Times(1)

	var sizes []int
	provider.EXPECT().Tickers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, codes []string) ([]domain.MarketTicker, error) {
			sizes = append(sizes, len(codes))
			out := make([]domain.MarketTicker, 0, len(codes))
			for _, c := range codes {
				out = append(out, domain.MarketTicker{Market: c, AccTradePrice24h: 1})
			}
			return out, nil
		}).
		Times(3)

	got, err := src.TopTickers(ctx, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sizes) != 3 || sizes[0] != 100 || sizes[1] != 100 || sizes[2] != 50 {
		t.Fatalf("batch sizes = %v, want [100 100 50]", sizes)
	}
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
}

// Сортировка по суточному обороту и обрезка до limit
func TestUpbitMarket_SortAndTruncate(t *testing.T) {
	t.Parallel()
	ctx, ctrl, provider, src := setupUpbit(t, 100)
	defer ctrl.Finish()

	markets := []domain.Market{
		{Code: "KRW-BTC"},
		{Code: "KRW-ETH"},
		{Code: "KRW-XRP"},
		{Code: "USDT-BTC"}, // чужая котировка — отфильтруется
	}
	tickersResp := []domain.MarketTicker{
		{Market: "KRW-BTC", AccTradePrice24h: 300},
		{Market: "KRW-ETH", AccTradePrice24h: 900},
		{Market: "KRW-XRP", AccTradePrice24h: 500},
	}

	provider.EXPECT().Markets(gomock.Any()).Return(markets, nil).Times(1)
	provider.EXPECT().Tickers(gomock.Any(), []string{"KRW-BTC", "KRW-ETH", "KRW-XRP"}).
		Return(tickersResp, nil).Times(1)

	got, err := src.TopTickers(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Label != "ETH" || got[1].Label != "XRP" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Value != 900 {
		t.Errorf("value = %v, want 900", got[0].Value)
	}
}

// Нет KRW-рынков: пустой список без ошибки, тикеры не запрашиваются
func TestUpbitMarket_NoKRWMarkets(t *testing.T) {
	t.Parallel()
	ctx, ctrl, provider, src := setupUpbit(t, 100)
	defer ctrl.Finish()

	provider.EXPECT().Markets(gomock.Any()).
		Return([]domain.Market{{Code: "BTC-ETH"}, {Code: "USDT-BTC"}}, nil).Times(1)
	provider.EXPECT().Tickers(gomock.Any(), gomock.Any()).Times(0)

	got, err := src.TopTickers(ctx, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

// Ошибка любого батча прерывает агрегацию: частичный топ не отдаём
func TestUpbitMarket_BatchErrorAborts(t *testing.T) {
	t.Parallel()
	ctx, ctrl, provider, src := setupUpbit(t, 1)
	defer ctrl.Finish()

	markets := []domain.Market{{Code: "KRW-BTC"}, {Code: "KRW-ETH"}}
	provider.EXPECT().Markets(gomock.Any()).Return(markets, nil).Times(1)

	gomock.InOrder(
		provider.EXPECT().Tickers(gomock.Any(), []string{"KRW-BTC"}).
			Return([]domain.MarketTicker{{Market: "KRW-BTC", AccTradePrice24h: 1}}, nil),
		provider.EXPECT().Tickers(gomock.Any(), []string{"KRW-ETH"}).
			Return(nil, errors.New("upstream timeout")),
	)

	_, err := src.TopTickers(ctx, 12)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
