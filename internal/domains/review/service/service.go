package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"washly/config"
	"washly/infras/otel"
	bookingSvc "washly/internal/domains/booking/service"
	"washly/internal/domains/review/model"
	"washly/internal/domains/review/model/dto"
	"washly/internal/domains/review/repository"
	washerModel "washly/internal/domains/washer/model"
	washerRepo "washly/internal/domains/washer/repository"
	"washly/shared"
	"washly/shared/cache"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	"washly/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheGetAllReview = "review:gets"

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest, bookingID, userID string) (dto.ReviewResponse, error)
	GetByID(ctx context.Context, id string) (dto.ReviewResponse, error)
	GetByWasher(ctx context.Context, req gDto.QueryParams, washerID string) (dto.GetReviewsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetReviewsResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id, userID string) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo       repository.Review
	booking    bookingSvc.Booking
	washerRepo washerRepo.Washer
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Review,
	booking bookingSvc.Booking,
	washerRepo washerRepo.Washer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:       repo,
		booking:    booking,
		washerRepo: washerRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func reviewFilter(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest, bookingID, userID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	eligibility, err := s.booking.CanReview(ctx, bookingID, userID)
	if err != nil {
		return res, err
	}

	if !eligibility.CanReview {
		return res, failure.BadRequestFromString("you can only review your own paid bookings")
	}

	exists, err := s.repo.Exist(ctx, reviewFilter(model.FieldBookingID, bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return res, fmt.Errorf("failed to check if review exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("you have already reviewed this booking")
	}

	booking, err := s.booking.GetByID(ctx, bookingID, userID, constant.RoleUser)
	if err != nil {
		return res, err
	}

	if booking.WasherID == nil {
		return res, failure.NotFound("no washer is attached to this booking")
	}

	review := req.ToModel(bookingID, *booking.WasherID, userID)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	if err = s.refreshWasherRating(ctx, review.WasherID, userID); err != nil {
		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReview)

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return res, failure.NotFound("review not found")
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetByWasher(ctx context.Context, req gDto.QueryParams, washerID string) (dto.GetReviewsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByWasher")
	defer scope.End()

	return s.getAll(ctx, req, reviewFilter(model.FieldWasherID, washerID))
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetReviewsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()

	return s.getAll(ctx, req, reviewFilter(model.FieldUserID, userID))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id, userID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReviewRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return res, failure.NotFound("review not found")
	}

	if review.UserID != userID {
		return res, failure.Forbidden("this review does not belong to you")
	}

	updatedFields := shared.TransformFields(req, userID)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return res, fmt.Errorf("failed to update review: %w", err)
	}

	if err = s.refreshWasherRating(ctx, review.WasherID, userID); err != nil {
		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReview)

	if req.Rating != 0 {
		review.Rating = req.Rating
	}

	if req.Comment != nil {
		review.Comment = req.Comment
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return failure.NotFound("review not found")
	}

	if review.UserID != userID {
		return failure.Forbidden("this review does not belong to you")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	if err = s.refreshWasherRating(ctx, review.WasherID, userID); err != nil {
		return err
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReview)

	return nil
}

func (s *serviceImpl) getAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	reviews, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save reviews to cache")
	}

	return res, nil
}

// refreshWasherRating recomputes the stored aggregate from the surviving reviews.
func (s *serviceImpl) refreshWasherRating(ctx context.Context, washerID, userID string) error {
	summary, err := s.repo.RatingSummary(ctx, washerID)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		washerModel.FieldAverageRating: math.Round(summary.AverageRating*100) / 100,
		washerModel.FieldTotalReviews:  summary.TotalReviews,
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       userID,
	}

	filter := shared.FilterByID(washerID, washerModel.FieldID, washerModel.TableName)
	if err := s.washerRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("washer_id", washerID).Msg("failed to refresh washer rating")

		return fmt.Errorf("failed to refresh washer rating: %w", err)
	}

	return nil
}
