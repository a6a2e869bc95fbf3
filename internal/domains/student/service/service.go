package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/student/model"
	"innkeep/internal/domains/student/model/dto"
	"innkeep/internal/domains/student/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/fieldval"
)

type Student interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (dto.StudentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStudentsResponse, error)
	Get(ctx context.Context, id string) (dto.StudentResponse, error)
	Update(ctx context.Context, req dto.UpdateStudentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Student
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Student, cfg *config.Config, otel otel.Otel) Student {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStudentRequest) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	student, err := req.ToModel(user)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, student); err != nil {
		log.Error().Err(err).Msg("failed to create student")

		return res, fmt.Errorf("failed to create student: %w", err)
	}

	res.FromModel(student)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStudentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count students")

		return res, fmt.Errorf("failed to count students: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get students")

		return res, fmt.Errorf("failed to get students: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	student, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get student")

		return res, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return res, failure.NotFound("student not found") // nolint:wrapcheck
	}

	res.FromModel(student)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStudentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if student exists")

		return fmt.Errorf("failed to check if student exists: %w", err)
	}

	if !exist {
		return failure.NotFound("student not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	// The student id bypasses TransformFields so the raw value can run
	// through the same coercion the create path uses.
	if req.StudentID != nil {
		studentID, err := fieldval.NormalizeStudentID(req.StudentID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		updatedFields[model.FieldStudentID] = studentID
	}

	if len(updatedFields) == 2 {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update student")

		return fmt.Errorf("failed to update student: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if student exists")

		return fmt.Errorf("failed to check if student exists: %w", err)
	}

	if !exist {
		return failure.NotFound("student not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete student")

		return fmt.Errorf("failed to delete student: %w", err)
	}

	return nil
}
