package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/character/model"
	"innkeep/internal/domains/character/model/dto"
	"innkeep/internal/domains/character/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

type Character interface {
	Create(ctx context.Context, req dto.CreateCharacterRequest) (dto.CharacterResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCharactersResponse, error)
	GetByClass(ctx context.Context, req gDto.QueryParams, class string) (dto.GetCharactersResponse, error)
	Get(ctx context.Context, id string) (dto.CharacterResponse, error)
	Update(ctx context.Context, req dto.UpdateCharacterRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Character
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Character, cfg *config.Config, otel otel.Otel) Character {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// checkClassAttributes enforces that a character carries every attribute
// its class requires.
func checkClassAttributes(character model.Character) error {
	required, ok := model.RequiredAttributes(character.Class)
	if !ok {
		return failure.BadRequestFromString(fmt.Sprintf("unknown character class: %s", character.Class)) // nolint:wrapcheck
	}

	for _, field := range required {
		value := character.Attribute(field)
		if value == nil || *value == constant.Empty {
			return failure.BadRequestFromString(fmt.Sprintf("class %s requires attribute %s", character.Class, field)) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCharacterRequest) (res dto.CharacterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	character := req.ToModel(user)

	if err = checkClassAttributes(character); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, character); err != nil {
		log.Error().Err(err).Msg("failed to create character")

		return res, fmt.Errorf("failed to create character: %w", err)
	}

	res.FromModel(character)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCharactersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count characters")

		return res, fmt.Errorf("failed to count characters: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get characters")

		return res, fmt.Errorf("failed to get characters: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetByClass(ctx context.Context, req gDto.QueryParams, class string) (res dto.GetCharactersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByClass")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, ok := model.RequiredAttributes(class); !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown character class: %s", class)) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClass,
				Operator: gDto.FilterOperatorEq,
				Value:    class,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CharacterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	character, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get character")

		return res, fmt.Errorf("failed to get character: %w", err)
	}

	if character.ID == constant.Empty {
		return res, failure.NotFound("character not found") // nolint:wrapcheck
	}

	res.FromModel(character)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCharacterRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	character, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get character")

		return fmt.Errorf("failed to get character: %w", err)
	}

	if character.ID == constant.Empty {
		return failure.NotFound("character not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if len(updatedFields) == 2 {
		// Only the metadata columns. Nothing to change.
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	applyUpdate(&character, req)

	if err = checkClassAttributes(character); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update character")

		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// applyUpdate overlays the request on the stored character so class
// requirements can be checked against the would-be final state.
func applyUpdate(character *model.Character, req dto.UpdateCharacterRequest) {
	if req.Name != constant.Empty {
		character.Name = req.Name
	}

	if req.Description != constant.Empty {
		character.Description = req.Description
	}

	overlay := map[string]*string{
		model.FieldElementalPower:         req.ElementalPower,
		model.FieldSpellbookType:          req.SpellbookType,
		model.FieldTimeMagicMastery:       req.TimeMagicMastery,
		model.FieldRaiseDeadAbility:       req.RaiseDeadAbility,
		model.FieldWeaponType:             req.WeaponType,
		model.FieldAssassinationTechnique: req.AssassinationTechnique,
		model.FieldVenomousStrikesMastery: req.VenomousStrikesMastery,
		model.FieldVenomousBiteAbility:    req.VenomousBiteAbility,
		model.FieldShadowstepAbility:      req.ShadowstepAbility,
		model.FieldDemonSlayingAbility:    req.DemonSlayingAbility,
		model.FieldVengeanceMastery:       req.VengeanceMastery,
		model.FieldRetributionAbility:     req.RetributionAbility,
		model.FieldFelbladeAbility:        req.FelbladeAbility,
	}

	assign := map[string]**string{
		model.FieldElementalPower:         &character.ElementalPower,
		model.FieldSpellbookType:          &character.SpellbookType,
		model.FieldTimeMagicMastery:       &character.TimeMagicMastery,
		model.FieldRaiseDeadAbility:       &character.RaiseDeadAbility,
		model.FieldWeaponType:             &character.WeaponType,
		model.FieldAssassinationTechnique: &character.AssassinationTechnique,
		model.FieldVenomousStrikesMastery: &character.VenomousStrikesMastery,
		model.FieldVenomousBiteAbility:    &character.VenomousBiteAbility,
		model.FieldShadowstepAbility:      &character.ShadowstepAbility,
		model.FieldDemonSlayingAbility:    &character.DemonSlayingAbility,
		model.FieldVengeanceMastery:       &character.VengeanceMastery,
		model.FieldRetributionAbility:     &character.RetributionAbility,
		model.FieldFelbladeAbility:        &character.FelbladeAbility,
	}

	for field, value := range overlay {
		if value != nil {
			*assign[field] = value
		}
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if character exists")

		return fmt.Errorf("failed to check if character exists: %w", err)
	}

	if !exist {
		return failure.NotFound("character not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete character")

		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
