package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/card/model"
	"innkeep/internal/domains/card/model/dto"
	"innkeep/internal/domains/card/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

type CreditCard interface {
	Create(ctx context.Context, req dto.CreateCreditCardRequest) (dto.CreditCardResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCreditCardsResponse, error)
	Get(ctx context.Context, id string) (dto.CreditCardResponse, error)
	Update(ctx context.Context, req dto.UpdateCreditCardRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.CreditCard
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.CreditCard, cfg *config.Config, otel otel.Otel) CreditCard {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCreditCardRequest) (res dto.CreditCardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	card, err := req.ToModel(user)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, card); err != nil {
		log.Error().Err(err).Msg("failed to create credit card")

		return res, fmt.Errorf("failed to create credit card: %w", err)
	}

	res.FromModel(card)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCreditCardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count credit cards")

		return res, fmt.Errorf("failed to count credit cards: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get credit cards")

		return res, fmt.Errorf("failed to get credit cards: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CreditCardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	card, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get credit card")

		return res, fmt.Errorf("failed to get credit card: %w", err)
	}

	if card.ID == constant.Empty {
		return res, failure.NotFound("credit card not found") // nolint:wrapcheck
	}

	res.FromModel(card)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCreditCardRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if credit card exists")

		return fmt.Errorf("failed to check if credit card exists: %w", err)
	}

	if !exist {
		return failure.NotFound("credit card not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if len(updatedFields) == 2 {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update credit card")

		return fmt.Errorf("failed to update credit card: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if credit card exists")

		return fmt.Errorf("failed to check if credit card exists: %w", err)
	}

	if !exist {
		return failure.NotFound("credit card not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete credit card")

		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	return nil
}
