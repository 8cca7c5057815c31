package wealth

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestResolveNormalizesAndBatchesPair(t *testing.T) {
	provider := &stubProvider{series: map[string]*Series{
		"SCHD":     closeOnly(28),
		"USDBRL=X": closeOnly(5.2),
	}}
	r := NewResolver(provider, "USDBRL=X")

	q := r.Resolve([]string{" schd ", "SCHD", "", "  "})

	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
	batch := provider.batches[0]
	if !slices.Contains(batch, "SCHD") || !slices.Contains(batch, "USDBRL=X") {
		t.Errorf("batch = %v, want SCHD and the reference pair", batch)
	}
	if got := len(batch); got != 2 {
		t.Errorf("batch size = %d, want 2 (deduplicated, blanks discarded)", got)
	}
	if _, ok := q.Price("SCHD"); !ok {
		t.Error("SCHD should be resolved")
	}
	if rate, ok := q.Rate(); !ok || rate.InexactFloat64() != 5.2 {
		t.Errorf("Rate() = %v, %v; want 5.2 from the same batch", rate, ok)
	}
	if q.Status() != StatusOK {
		t.Errorf("Status() = %v, want %v", q.Status(), StatusOK)
	}
}

func TestResolvePrefersAdjustedClose(t *testing.T) {
	provider := &stubProvider{series: map[string]*Series{
		"SCHD": adjustedAndClose(27.5, 28),
	}}
	r := NewResolver(provider, "")

	q := r.Resolve([]string{"SCHD"})
	price, ok := q.Price("SCHD")
	if !ok {
		t.Fatal("SCHD should be resolved")
	}
	if price.InexactFloat64() != 27.5 {
		t.Errorf("Price(SCHD) = %v, want the adjusted close 27.5", price)
	}
}

func TestResolveProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	r := NewResolver(provider, "USDBRL=X")

	q := r.Resolve([]string{"SCHD", "STAG"})

	if q.Status() != StatusProviderError {
		t.Errorf("Status() = %v, want %v", q.Status(), StatusProviderError)
	}
	if got := q.Unresolved(); !slices.Equal(got, []string{"SCHD", "STAG"}) {
		t.Errorf("Unresolved() = %v, want all requested symbols", got)
	}
	if _, ok := q.Rate(); ok {
		t.Error("Rate() should not be available on total failure")
	}
}

func TestResolveEmptyDataset(t *testing.T) {
	// Scenario: provider answers but knows none of the symbols.
	provider := &stubProvider{series: map[string]*Series{}}
	r := NewResolver(provider, "")

	q := r.Resolve([]string{"XXX"})

	if q.Status() != StatusNoData {
		t.Errorf("Status() = %v, want %v", q.Status(), StatusNoData)
	}
	if !q.IsUnresolved("XXX") {
		t.Error("XXX should be unresolved")
	}
	if _, ok := q.Price("XXX"); ok {
		t.Error("an unresolved symbol must not have a price, not even zero")
	}
}

func TestResolvePartialCoverage(t *testing.T) {
	provider := &stubProvider{series: map[string]*Series{
		"SCHD": closeOnly(28),
	}}
	r := NewResolver(provider, "")

	q := r.Resolve([]string{"SCHD", "XXX"})

	if q.Status() != StatusPartial {
		t.Errorf("Status() = %v, want %v", q.Status(), StatusPartial)
	}
	if _, ok := q.Price("SCHD"); !ok {
		t.Error("SCHD should be resolved despite XXX failing")
	}
	if !q.IsUnresolved("XXX") {
		t.Error("XXX should be reported unresolved")
	}
}

func TestResolveMemoizesPerSymbolSet(t *testing.T) {
	provider := &stubProvider{series: map[string]*Series{"SCHD": closeOnly(28)}}
	r := NewResolver(provider, "")

	r.Resolve([]string{"SCHD"})
	r.Resolve([]string{"schd"}) // same canonical set
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (memoized)", provider.calls)
	}

	// A different composition must not reuse the cached mapping.
	r.Resolve([]string{"SCHD", "STAG"})
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (different symbol set)", provider.calls)
	}
}

func TestResolveCacheExpires(t *testing.T) {
	provider := &stubProvider{series: map[string]*Series{"SCHD": closeOnly(28)}}
	r := NewResolver(provider, "")
	now := time.Now()
	r.now = func() time.Time { return now }

	r.Resolve([]string{"SCHD"})
	now = now.Add(11 * time.Minute)
	r.Resolve([]string{"SCHD"})
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 after the cache window elapsed", provider.calls)
	}
}
