package dto_test

import (
	"testing"

	"innkeep/internal/domains/card/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateCreditCardRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber any
		want       string
		wantErr    string
	}{
		{
			name:       "valid number stored masked",
			cardNumber: "1234567812345678",
			want:       "****-****-****-5678",
		},
		{
			name:       "too short",
			cardNumber: "12345",
			wantErr:    "card number must be exactly 16 characters long",
		},
		{
			name:       "not a string",
			cardNumber: 1234567812345678,
			wantErr:    "card number must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateCreditCardRequest{
				CardOwner:  "Test Owner",
				CardNumber: tt.cardNumber,
			}

			card, err := req.ToModel("test-user-id")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, card.ID, "expected ID to be generated")
			assert.Equal(t, req.CardOwner, card.CardOwner)
			assert.Equal(t, tt.want, card.CardNumber)
			assert.Equal(t, "test-user-id", card.CreatedBy)
		})
	}
}
