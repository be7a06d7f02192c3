package lookup

import "testing"

// Известные корейские названия переводятся в канонические id провайдера
func TestResolve_KnownAliases(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"비트코인":   "bitcoin",
		"이더리움":   "ethereum",
		"리플":     "ripple",
		"도지코인":   "dogecoin",
		"에이다":    "cardano",
		"카르다노":   "cardano",
		"비트코인캐시": "bitcoin-cash",
	}
	for in, want := range cases {
		if got := Resolve(in); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

// Алиас срабатывает и с окружающими пробелами
func TestResolve_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	if got := Resolve("  비트코인  "); got != "bitcoin" {
		t.Errorf("Resolve with spaces = %q, want bitcoin", got)
	}
	if got := Resolve("  dogecoin  "); got != "dogecoin" {
		t.Errorf("Resolve passthrough = %q, want dogecoin", got)
	}
}

// Неизвестные строки возвращаются как есть, без нормализации
func TestResolve_PassThrough(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"bitcoin", "BTC", "something-else", ""} {
		if got := Resolve(q); got != q {
			t.Errorf("Resolve(%q) = %q, want unchanged", q, got)
		}
	}

	// идемпотентность: повторный вызов ничего не меняет
	once := Resolve("  ethereum classic  ")
	if twice := Resolve(once); twice != once {
		t.Errorf("Resolve not idempotent: %q -> %q", once, twice)
	}
}
