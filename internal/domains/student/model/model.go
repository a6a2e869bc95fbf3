package model

import "innkeep/shared/model"

const (
	TableName  = "students"
	EntityName = "student"

	FieldID        = "id"
	FieldName      = "name"
	FieldStudentID = "student_id"
)

type Student struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	StudentID int    `db:"student_id"`
	model.Metadata
}
