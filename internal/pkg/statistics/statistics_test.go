package statistics

import (
	"testing"
	"time"
)

func TestDailyCacheKey_UsesCalendarDayOfLocation(t *testing.T) {
	t.Parallel()

	// 02:08 on the 30th in New York is already the 30th locally even though
	// it is still UTC time of the same instant that truncation to UTC
	// midnight would assign to the 29th.
	zone := time.FixedZone("America/New_York", -4*60*60)
	at := time.Date(2026, 8, 30, 2, 8, 0, 0, zone)

	if got, want := dailyCacheKey(at), "statistics:documents:daily:2026-08-30"; got != want {
		t.Fatalf("expected key %q, got %q", want, got)
	}
}

func TestDailyCacheKey_WriterAndReaderAgree(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("Asia/Kolkata", 5*60*60+30*60)
	for hour := 0; hour < 24; hour++ {
		at := time.Date(2026, 8, 30, hour, 0, 0, 0, zone)
		if dailyCacheKey(at) != dailyCacheKey(startOfDay(at)) {
			t.Fatalf("key diverges at hour %d: %q vs %q",
				hour, dailyCacheKey(at), dailyCacheKey(startOfDay(at)))
		}
	}
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("Asia/Kolkata", 5*60*60+30*60)
	at := time.Date(2026, 8, 30, 23, 45, 0, 0, zone)

	midnight := startOfDay(at)
	if midnight.Hour() != 0 || midnight.Minute() != 0 || midnight.Second() != 0 {
		t.Fatalf("expected midnight, got %v", midnight)
	}
	if midnight.Location() != at.Location() {
		t.Fatalf("expected midnight in the same location, got %v", midnight.Location())
	}
	if midnight.Day() != at.Day() {
		t.Fatalf("expected same calendar day, got %v", midnight)
	}
}

func TestUpdateStatisticsCache_RequiresRepository(t *testing.T) {
	if documentRepo != nil {
		t.Skip("repository already initialized")
	}
	if err := UpdateStatisticsCache(); err == nil {
		t.Fatal("expected error when repository is not initialized")
	}
}
