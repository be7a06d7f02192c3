package lookup

import "strings"

// Таблица корейских названий монет. Пользователи фронтенда ищут
// по-корейски, а поисковый API понимает только канонические id.
var koreanAliases = map[string]string{
	"비트코인":    "bitcoin",
	"이더리움":    "ethereum",
	"리플":      "ripple",
	"테더":      "tether",
	"솔라나":     "solana",
	"도지코인":    "dogecoin",
	"카르다노":    "cardano",
	"에이다":     "cardano",
	"트론":      "tron",
	"폴카닷":     "polkadot",
	"체인링크":    "chainlink",
	"라이트코인":   "litecoin",
	"비트코인캐시":  "bitcoin-cash",
	"스텔라루멘":   "stellar",
}

// Resolve — переводит корейское название в канонический id провайдера.
// Неизвестные строки возвращаем как есть (после trim), без нормализации
// и нечёткого поиска.
func Resolve(query string) string {
	trimmed := strings.TrimSpace(query)
	if id, ok := koreanAliases[trimmed]; ok {
		return id
	}
	return trimmed
}
