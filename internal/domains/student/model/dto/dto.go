package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/student/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	"innkeep/shared/fieldval"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

// CreateStudentRequest takes the student id as raw JSON so numeric and
// textual forms both reach the coercion layer.
type CreateStudentRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	StudentID any    `json:"student_id" validate:"required"`
}

func (c *CreateStudentRequest) ToModel(user string) (model.Student, error) {
	studentID, err := fieldval.NormalizeStudentID(c.StudentID)
	if err != nil {
		return model.Student{}, err
	}

	return model.Student{
		ID:        uuid.NewString(),
		Name:      c.Name,
		StudentID: studentID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStudentRequest struct {
	Name      string `db:"name" json:"name"       validate:"omitempty,max=100"`
	StudentID any    `json:"student_id,omitempty"`
}

type StudentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID int    `json:"student_id"`
	gDto.Metadata
}

func (r *StudentResponse) FromModel(model model.Student) {
	r.ID = model.ID
	r.Name = model.Name
	r.StudentID = model.StudentID
	r.Metadata.FromModel(model.Metadata)
}

type GetStudentsResponse struct {
	Students  []StudentResponse `json:"students"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStudentsResponse) FromModels(models []model.Student, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Students = make([]StudentResponse, len(models))
	for i, mod := range models {
		r.Students[i].FromModel(mod)
	}
}
