package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"washly/infras/otel"
	"washly/infras/postgres"
	"washly/internal/domains/booking/model"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	"washly/shared/logger"
	gRepo "washly/shared/repository"

	"github.com/lib/pq"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateGuarded(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error)
	GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
	StatsOverview(ctx context.Context, filter gDto.FilterGroup) (model.StatsOverview, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detail gRepo.Repository[model.BookingDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const uniqueViolationCode = "23505"

// Insert relies on the partial unique index over active bookings, so two
// concurrent creates for the same car resolve to a single winner.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	if err := repo.Repository.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return failure.Conflict("this car already has an active booking")
		}

		return err //nolint:wrapcheck
	}

	return nil
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error) {
	return repo.detail.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return repo.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.detail.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) StatsOverview(ctx context.Context, filter gDto.FilterGroup) (model.StatsOverview, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.StatsOverview")
	defer scope.End()

	where, args := repo.detail.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(`SELECT
			COUNT(bookings.id) AS total_bookings,
			COUNT(bookings.id) FILTER (WHERE bookings.status = '%s') AS completed_bookings,
			COUNT(bookings.id) FILTER (WHERE bookings.status = '%s') AS paid_bookings,
			COUNT(bookings.id) FILTER (WHERE bookings.status = '%s') AS cancelled_bookings,
			COALESCE(SUM(service_menus.price) FILTER (WHERE bookings.status IN ('%s', '%s')), 0) AS total_revenue
		FROM bookings
		LEFT JOIN service_menus ON service_menus.id = bookings.service_id
		LEFT JOIN washers ON washers.id = service_menus.washer_id
		%s`,
		model.StatusCompleted, model.StatusPaid, model.StatusCancelled,
		model.StatusCompleted, model.StatusPaid, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var stats model.StatsOverview

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &stats, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get booking stats: %w", err)
	}

	return stats, nil
}
