package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"washly/infras/otel"
	"washly/infras/postgres"
	"washly/internal/domains/review/model"
	"washly/shared"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/logger"
	gRepo "washly/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	RatingSummary(ctx context.Context, washerID string) (model.RatingSummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RatingSummary rolls a washer's reviews up to the aggregate stored on the washer row.
func (repo *repositoryImpl) RatingSummary(ctx context.Context, washerID string) (model.RatingSummary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.RatingSummary")
	defer scope.End()

	filter := shared.FilterByID(washerID, model.FieldWasherID, model.TableName)
	where, args := repo.Repository.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(`SELECT
			COALESCE(AVG(reviews.rating), 0) AS average_rating,
			COUNT(reviews.id) AS total_reviews
		FROM reviews
		%s`, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var summary model.RatingSummary

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &summary, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to get rating summary: %w", err)
	}

	return summary, nil
}
