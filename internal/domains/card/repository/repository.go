package repository

import (
	"context"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/card/model"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"
)

type CreditCard interface {
	Insert(ctx context.Context, model model.CreditCard) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CreditCard, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CreditCard, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CreditCard]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CreditCard {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CreditCard](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
