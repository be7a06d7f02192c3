package lookup

import (
	"fmt"
	"math"
	"time"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// ExtractSeries — превращает сырой ценовой ряд в данные для графика:
// метки по оси X, значения и производные метрики. Порядок точек сохраняется.
// Пустой ряд — ошибка получения данных, а не валидный нулевой результат.
func ExtractSeries(points []domain.PricePoint) (domain.Series, error) {
	if len(points) == 0 {
		return domain.Series{}, ErrEmptySeries
	}

	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	sum := 0.0
	for _, p := range points {
		labels = append(labels, formatDateLabel(p.Timestamp))
		values = append(values, p.Price)
		sum += p.Price
	}

	return domain.Series{
		Labels: labels,
		Values: values,
		Latest: values[len(values)-1],
		First:  values[0],
		Mean:   sum / float64(len(values)),
	}, nil
}

// formatDateLabel — короткая корейская метка даты ("9월 1일") из epoch millis
func formatDateLabel(millis int64) string {
	t := time.UnixMilli(millis).UTC()
	return fmt.Sprintf("%d월 %d일", int(t.Month()), t.Day())
}

// FormatChange — процент изменения за период со знаком и двумя знаками
// после запятой. При нулевой начальной цене или неконечном результате
// отдаём "N/A" вместо Inf/NaN.
func FormatChange(first, latest float64) string {
	if first == 0 {
		return "N/A"
	}
	change := (latest - first) / first * 100
	if math.IsInf(change, 0) || math.IsNaN(change) {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f%%", change)
}
