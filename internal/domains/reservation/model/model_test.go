package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/reservation/model"
)

func TestReservation_Period(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "five nights",
			start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			want:  5,
		},
		{
			// The stay spans the 2026-03-08 US spring-forward; the count
			// must still come out as full calendar days.
			name:  "stay across a dst transition",
			start: time.Date(2026, 3, 7, 0, 0, 0, 0, newYork),
			end:   time.Date(2026, 3, 12, 0, 0, 0, 0, newYork),
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := model.Reservation{StartDate: tt.start, EndDate: tt.end}

			assert.Equal(t, tt.want, reservation.Period())
		})
	}
}
