package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/internal/domains/destination/model"
	gDto "concierge/shared/dto"
	gRepo "concierge/shared/repository"
	"context"
)

type Destination interface {
	Insert(ctx context.Context, model model.Destination) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Destination, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Destination, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Destination]
}

func New(db *postgres.Connection, otel otel.Otel) Destination {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Destination](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
