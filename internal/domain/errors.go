package domain

import "fmt"

// RequestError - ответ внешнего API с не-2xx статусом.
// Код статуса сохраняем: транспорт по нему отличает апстрим-ошибки от наших.
type RequestError struct {
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d)", e.Status)
}
