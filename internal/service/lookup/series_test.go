package lookup

import (
	"errors"
	"testing"

	"github.com/NastyaGoryachaya/coin-lookup-service/internal/domain"
)

// Базовые метрики: последняя, первая и средняя цена в полном float64
func TestExtractSeries_Metrics(t *testing.T) {
	t.Parallel()

	points := []domain.PricePoint{
		{Timestamp: 0, Price: 100},
		{Timestamp: 1, Price: 200},
		{Timestamp: 2, Price: 300},
	}

	s, err := ExtractSeries(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Latest != 300 {
		t.Errorf("latest = %v, want 300", s.Latest)
	}
	if s.First != 100 {
		t.Errorf("first = %v, want 100", s.First)
	}
	if s.Mean != 200 {
		t.Errorf("mean = %v, want 200", s.Mean)
	}
	if len(s.Labels) != 3 || len(s.Values) != 3 {
		t.Errorf("labels/values length mismatch: %d/%d", len(s.Labels), len(s.Values))
	}
	// порядок значений сохраняется как в исходном ряду
	if s.Values[0] != 100 || s.Values[2] != 300 {
		t.Errorf("values order broken: %v", s.Values)
	}
}

// Пустой ряд — ошибка получения данных, а не нулевой результат
func TestExtractSeries_Empty(t *testing.T) {
	t.Parallel()

	_, err := ExtractSeries(nil)
	if !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

// Метки дат — короткий корейский формат "месяц일 день일" в UTC
func TestExtractSeries_KoreanLabels(t *testing.T) {
	t.Parallel()

	// 2024-03-05 00:00:00 UTC
	points := []domain.PricePoint{{Timestamp: 1709596800000, Price: 1}}

	s, err := ExtractSeries(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Labels[0] != "3월 5일" {
		t.Errorf("label = %q, want %q", s.Labels[0], "3월 5일")
	}
}

// Процент за период: знак обязателен, два знака после запятой
func TestFormatChange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		first, latest float64
		want          string
	}{
		{100, 150, "+50.00%"},
		{100, 50, "-50.00%"},
		{100, 100, "+0.00%"},
		{0, 150, "N/A"}, // деление на ноль не показываем как Inf
	}
	for _, tc := range cases {
		if got := FormatChange(tc.first, tc.latest); got != tc.want {
			t.Errorf("FormatChange(%v, %v) = %q, want %q", tc.first, tc.latest, got, tc.want)
		}
	}
}
