package timezone_test

import (
	"testing"
	"time"

	"innkeep/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}
}

func TestDaysBetween(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() failed: %v", err)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "plain utc range",
			start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			want:  5,
		},
		{
			name:  "same day",
			start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "one night",
			start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			// US clocks spring forward on 2026-03-08; the wall-clock span
			// is 23 hours short of 5 full days.
			name:  "spring forward transition",
			start: time.Date(2026, 3, 7, 0, 0, 0, 0, newYork),
			end:   time.Date(2026, 3, 12, 0, 0, 0, 0, newYork),
			want:  5,
		},
		{
			// US clocks fall back on 2026-11-01; the span is 25 hours long.
			name:  "fall back transition",
			start: time.Date(2026, 10, 30, 0, 0, 0, 0, newYork),
			end:   time.Date(2026, 11, 4, 0, 0, 0, 0, newYork),
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Errorf("ParseDate() returned wrong date: %v", parsed)
	}

	if _, err := timezone.ParseDate("15-03-2024"); err == nil {
		t.Error("ParseDate() should reject non ISO dates")
	}
}
