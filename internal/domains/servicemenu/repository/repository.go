package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"washly/infras/otel"
	"washly/infras/postgres"
	"washly/internal/domains/servicemenu/model"
	gDto "washly/shared/dto"
	gRepo "washly/shared/repository"
)

type ServiceMenu interface {
	Insert(ctx context.Context, model model.ServiceMenu) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceMenu, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceMenu, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceMenu]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ServiceMenu {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceMenu](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
