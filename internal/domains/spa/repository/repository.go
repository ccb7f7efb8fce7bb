package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/internal/domains/spa/model"
	gDto "concierge/shared/dto"
	gRepo "concierge/shared/repository"
	"context"
)

type Treatment interface {
	Insert(ctx context.Context, model model.Treatment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Treatment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Treatment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type treatmentRepository struct {
	gRepo.Repository[model.Treatment]
}

type bookingRepository struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Treatment {
	return &treatmentRepository{
		Repository: gRepo.NewRepository[model.Treatment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewBooking(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingRepository{
		Repository: gRepo.NewRepository[model.Booking](model.BookingEntityName, model.BookingTableName, model.FieldID, db, otel),
	}
}
