package domain

// Coin - криптовалюта, как её отдаёт поисковый API провайдера
type Coin struct {
	ID            string `json:"id"`                        // стабильный идентификатор провайдера (bitcoin, ethereum)
	Name          string `json:"name"`                      // отображаемое имя (Bitcoin)
	Symbol        string `json:"symbol"`                    // тикер (btc)
	MarketCapRank int    `json:"market_cap_rank,omitempty"` // 0 — ранг неизвестен
}

// PricePoint - одна точка годового ценового ряда
type PricePoint struct {
	Timestamp int64   `json:"timestamp"` // epoch millis
	Price     float64 `json:"price"`     // цена в USD
}

// Series - подготовленный к отрисовке ценовой ряд с производными метриками.
// Порядок точек сохраняется как в ответе API (по возрастанию времени).
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Latest float64   `json:"latest"`
	First  float64   `json:"first"`
	Mean   float64   `json:"mean"`
}

// ExchangeTicker - тикер биржи из листинга CoinGecko (/exchanges/{id}/tickers)
type ExchangeTicker struct {
	CoinID       string  // идентификатор базового актива
	Base         string  // символ базового актива
	Target       string  // валюта котировки (KRW, USDT...)
	Last         float64 // последняя цена в валюте котировки
	ConvertedUSD float64 // converted_last.usd; 0 — конвертация отсутствует
}

// Market - торговая пара прямого API биржи ("KRW-BTC")
type Market struct {
	Code       string `json:"market"`
	KoreanName string `json:"korean_name"`
}

// MarketTicker - живой снапшот тикера прямого API биржи
type MarketTicker struct {
	Market           string  `json:"market"`
	TradePrice       float64 `json:"trade_price"`
	AccTradePrice24h float64 `json:"acc_trade_price_24h"`
}

// TopTicker - элемент итогового топа KRW-пар
type TopTicker struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
