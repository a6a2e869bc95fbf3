package fieldval_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/failure"
	"innkeep/shared/fieldval"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr string
	}{
		{
			name:  "valid 16 digit number",
			input: "1234567812345678",
			want:  "****-****-****-5678",
		},
		{
			name:  "all zeros",
			input: "0000000000000000",
			want:  "****-****-****-0000",
		},
		{
			name:    "too short",
			input:   "12345",
			wantErr: "card number must be exactly 16 characters long",
		},
		{
			name:    "too long",
			input:   "12345678123456789",
			wantErr: "card number must be exactly 16 characters long",
		},
		{
			name:    "non numeric",
			input:   "1234abcd12345678",
			wantErr: "card number must contain only digits",
		},
		{
			name:    "not a string",
			input:   1234567812345678,
			wantErr: "card number must be a string",
		},
		{
			name:    "digits with separators",
			input:   "1234-5678-1234-5678",
			wantErr: "card number must contain only digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fieldval.MaskCardNumber(tt.input)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, fieldval.IsMaskedCardNumber(got))
		})
	}
}

func TestNormalizeStudentID(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int
		wantErr bool
	}{
		{name: "plain int", input: 42, want: 42},
		{name: "int64", input: int64(7), want: 7},
		{name: "numeric string", input: "1203", want: 1203},
		{name: "numeric string with spaces", input: " 88 ", want: 88},
		{name: "integral float", input: float64(15), want: 15},
		{name: "zero", input: 0, want: 0},
		{name: "fractional float", input: 15.5, wantErr: true},
		{name: "non numeric string", input: "abc", wantErr: true},
		{name: "negative", input: -1, wantErr: true},
		{name: "negative string", input: "-12", wantErr: true},
		{name: "unsupported type", input: []int{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fieldval.NormalizeStudentID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
