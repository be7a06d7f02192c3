package history

import (
	"sync"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Store - ограниченный список недавних успешных поисков, последние сверху.
// Живёт только в памяти процесса: при рестарте история начинается заново.
// Mutex нужен, потому что HTTP-обработчики пишут и читают конкурентно.
type Store struct {
	mu       sync.Mutex
	capacity int
	items    []domain.Coin
}

const defaultCapacity = 6

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Store{capacity: capacity}
}

// Record — добавляет монету в начало списка. Повторный поиск уже
// известной монеты поднимает её наверх, а не создаёт дубликат.
func (s *Store) Record(coin domain.Coin) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == coin.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}

	s.items = append([]domain.Coin{coin}, s.items...)
	if len(s.items) > s.capacity {
		s.items = s.items[:s.capacity]
	}
}

// Recent — копия текущего списка в порядке от недавнего к старому
func (s *Store) Recent() []domain.Coin {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Coin, len(s.items))
	copy(out, s.items)
	return out
}
