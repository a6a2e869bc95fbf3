package dto_test

import (
	"testing"

	"innkeep/internal/domains/student/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateStudentRequest_ToModel(t *testing.T) {
	tests := []struct {
		name      string
		studentID any
		want      int
		wantErr   bool
	}{
		{name: "integer id", studentID: 42, want: 42},
		{name: "numeric string id", studentID: "1203", want: 1203},
		{name: "integral float from json decoding", studentID: float64(7), want: 7},
		{name: "non numeric string", studentID: "abc", wantErr: true},
		{name: "negative id", studentID: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateStudentRequest{
				Name:      "Test Student",
				StudentID: tt.studentID,
			}

			student, err := req.ToModel("test-user-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, student.ID, "expected ID to be generated")
			assert.Equal(t, req.Name, student.Name)
			assert.Equal(t, tt.want, student.StudentID)
			assert.Equal(t, "test-user-id", student.CreatedBy)
		})
	}
}
