package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/validator"
)

type createReservationPayload struct {
	RoomID    string `json:"room_id"    validate:"required"`
	Kind      string `json:"kind"       validate:"required,oneof=regular special"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload",
			body: `{"room_id":"room-1","kind":"regular","start_date":"2024-06-01","end_date":"2024-06-04"}`,
		},
		{
			name:    "missing room",
			body:    `{"kind":"regular","start_date":"2024-06-01","end_date":"2024-06-04"}`,
			wantErr: "RoomID is required",
		},
		{
			name:    "bad kind",
			body:    `{"room_id":"room-1","kind":"standing","start_date":"2024-06-01","end_date":"2024-06-04"}`,
			wantErr: "Kind must be one of regular special",
		},
		{
			name:    "bad date format",
			body:    `{"room_id":"room-1","kind":"regular","start_date":"01-06-2024","end_date":"2024-06-04"}`,
			wantErr: "StartDate must be a date in YYYY-MM-DD format",
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createReservationPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2024-06-01", "dateonly"))
	assert.Error(t, validator.ValidateVar("June 1st", "dateonly"))
	assert.NoError(t, validator.ValidateVar("guest@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
