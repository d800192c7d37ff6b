package deadline_test

import (
	"testing"
	"time"

	"taskboard-api/pkg/deadline"
)

func TestParse(t *testing.T) {
	t.Run("date and time", func(t *testing.T) {
		got, err := deadline.Parse("10/01/2025", "9:00 AM")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("afternoon time", func(t *testing.T) {
		got, err := deadline.Parse("10/01/2025", "5:00 PM")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 17 {
			t.Errorf("expected hour 17, got %d", got.Hour())
		}
	})

	t.Run("empty time defaults to midnight", func(t *testing.T) {
		got, err := deadline.Parse("01/09/2025", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("expected start of day, got %v", got)
		}
	})

	t.Run("lowercase meridiem accepted", func(t *testing.T) {
		if _, err := deadline.Parse("10/01/2025", "9:00 am"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("bad date rejected", func(t *testing.T) {
		if _, err := deadline.Parse("2025-01-10", "9:00 AM"); err == nil {
			t.Error("expected error for ISO date")
		}
	})

	t.Run("bad time rejected", func(t *testing.T) {
		if _, err := deadline.Parse("10/01/2025", "25:00"); err == nil {
			t.Error("expected error for 24h time")
		}
	})
}

func TestFormatRoundTrip(t *testing.T) {
	instant := time.Date(2025, time.October, 1, 17, 0, 0, 0, time.UTC)

	if got := deadline.FormatDate(instant); got != "01/10/2025" {
		t.Errorf("FormatDate: got %q", got)
	}
	if got := deadline.FormatTime(instant); got != "5:00 PM" {
		t.Errorf("FormatTime: got %q", got)
	}

	back, err := deadline.Parse(deadline.FormatDate(instant), deadline.FormatTime(instant))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(instant) {
		t.Errorf("round trip mismatch: got %v, want %v", back, instant)
	}
}
