package lookup

import (
	"strings"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// SelectBest — выбирает лучший результат поиска: первое точное совпадение
// имени или символа без учёта регистра, иначе первый элемент (порядок
// релевантности самого API). Пустой срез — ответственность вызывающего.
func SelectBest(candidates []domain.Coin, query string) domain.Coin {
	needle := strings.ToLower(query)
	for _, c := range candidates {
		if strings.ToLower(c.Name) == needle || strings.ToLower(c.Symbol) == needle {
			return c
		}
	}
	return candidates[0]
}
