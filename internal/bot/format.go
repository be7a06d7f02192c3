package bot

import (
	"fmt"
	"strings"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
	"github.com/NastyaGoryachaya/coin-lookup-service/internal/service/lookup"
)

// formatLookup — подробное сообщение для команды /coin {query}
func formatLookup(r lookup.Result) string {
	rank := "ранг неизвестен"
	if r.Coin.MarketCapRank > 0 {
		rank = fmt.Sprintf("ранг по капитализации %d", r.Coin.MarketCapRank)
	}
	return fmt.Sprintf(
		"[%s (%s)]\n%s\nТекущая цена: %s USD\nСредняя за год: %s USD\nИзменение за год: %s",
		r.Coin.Name,
		strings.ToUpper(r.Coin.Symbol),
		rank,
		humanPrice(r.Series.Latest),
		humanPrice(r.Series.Mean),
		r.Change,
	)
}

// formatTopTickers — текстовый топ KRW-пар, по строке на пару
func formatTopTickers(items []domain.TopTicker) string {
	var b strings.Builder
	b.WriteString("Топ KRW-пар:\n")
	for i, t := range items {
		b.WriteString(fmt.Sprintf("%d. %s — %s KRW\n", i+1, t.Label, humanPrice(t.Value)))
	}
	return b.String()
}

// humanPrice — форматирование числа с двумя знаками после запятой.
func humanPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
