package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"washly/config"
	"washly/infras/otel/mocks"
	bookingDto "washly/internal/domains/booking/model/dto"
	bookingSvcMocks "washly/internal/domains/booking/service/mocks"
	reviewMocks "washly/internal/domains/review/mocks"
	"washly/internal/domains/review/model"
	"washly/internal/domains/review/model/dto"
	"washly/internal/domains/review/service"
	washerMocks "washly/internal/domains/washer/mocks"
	washerModel "washly/internal/domains/washer/model"
	cacheMocks "washly/shared/cache/mocks"
	gDto "washly/shared/dto"
	"washly/shared/failure"
)

type reviewTestMocks struct {
	repo       *reviewMocks.MockReview
	booking    *bookingSvcMocks.MockBooking
	washerRepo *washerMocks.MockWasher
	cache      *cacheMocks.MockRedisCache
}

func newReviewService(t *testing.T) (service.Review, reviewTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := reviewTestMocks{
		repo:       reviewMocks.NewMockReview(ctrl),
		booking:    bookingSvcMocks.NewMockBooking(ctrl),
		washerRepo: washerMocks.NewMockWasher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache behavior is not under test here.
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.booking, m.washerRepo, &config.Config{}, m.cache, mocks.NewOtel())

	return svc, m
}

const (
	reviewerID = "user-id-123"
	washerID   = "washer-id-123"
	bookingID  = "booking-id-123"
)

func storedReview() model.Review {
	comment := "Spotless work"

	return model.Review{
		ID:        "review-id-123",
		BookingID: bookingID,
		UserID:    reviewerID,
		WasherID:  washerID,
		Rating:    5,
		Comment:   &comment,
	}
}

func paidBookingDetail() bookingDto.BookingDetailResponse {
	id := washerID

	detail := bookingDto.BookingDetailResponse{}
	detail.WasherID = &id

	return detail
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	req := dto.CreateReviewRequest{Rating: 5}

	t.Run("successful review refreshes the washer rating", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.booking.EXPECT().
			CanReview(gomock.Any(), bookingID, reviewerID).
			Return(bookingDto.CanReviewResponse{CanReview: true}, nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.booking.EXPECT().
			GetByID(gomock.Any(), bookingID, reviewerID, "user").
			Return(paidBookingDetail(), nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().
			RatingSummary(gomock.Any(), washerID).
			Return(model.RatingSummary{AverageRating: 4.3333333, TotalReviews: 3}, nil)
		m.washerRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 4.33, fields[washerModel.FieldAverageRating])
				assert.Equal(t, 3, fields[washerModel.FieldTotalReviews])

				return nil
			})

		res, err := svc.Create(ctx, req, bookingID, reviewerID)

		assert.NoError(t, err)
		assert.Equal(t, bookingID, res.BookingID)
		assert.Equal(t, washerID, res.WasherID)
		assert.Equal(t, 5, res.Rating)
	})

	t.Run("booking is not reviewable", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.booking.EXPECT().
			CanReview(gomock.Any(), bookingID, reviewerID).
			Return(bookingDto.CanReviewResponse{CanReview: false}, nil)

		_, err := svc.Create(ctx, req, bookingID, reviewerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("booking was already reviewed", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.booking.EXPECT().
			CanReview(gomock.Any(), bookingID, reviewerID).
			Return(bookingDto.CanReviewResponse{CanReview: true}, nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(ctx, req, bookingID, reviewerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("no washer attached to the booking", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.booking.EXPECT().
			CanReview(gomock.Any(), bookingID, reviewerID).
			Return(bookingDto.CanReviewResponse{CanReview: true}, nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.booking.EXPECT().
			GetByID(gomock.Any(), bookingID, reviewerID, "user").
			Return(bookingDto.BookingDetailResponse{}, nil)

		_, err := svc.Create(ctx, req, bookingID, reviewerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("missing booking propagates", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.booking.EXPECT().
			CanReview(gomock.Any(), bookingID, reviewerID).
			Return(bookingDto.CanReviewResponse{}, failure.NotFound("booking not found"))

		_, err := svc.Create(ctx, req, bookingID, reviewerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReviewService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("existing review", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReview(), nil)

		res, err := svc.GetByID(ctx, "review-id-123")

		assert.NoError(t, err)
		assert.Equal(t, 5, res.Rating)
		assert.Equal(t, washerID, res.WasherID)
	})

	t.Run("review not found", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

		_, err := svc.GetByID(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReviewService_GetByWasher(t *testing.T) {
	ctx := context.Background()

	svc, m := newReviewService(t)

	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Review{storedReview()}, nil)

	res, err := svc.GetByWasher(ctx, gDto.QueryParams{Limit: 10}, washerID)

	assert.NoError(t, err)
	assert.Len(t, res.Reviews, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()

	req := dto.UpdateReviewRequest{Rating: 3}

	t.Run("owner updates the rating and the aggregate follows", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReview(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().
			RatingSummary(gomock.Any(), washerID).
			Return(model.RatingSummary{AverageRating: 3, TotalReviews: 1}, nil)
		m.washerRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Update(ctx, req, "review-id-123", reviewerID)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Rating)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReview(), nil)

		_, err := svc.Update(ctx, req, "review-id-123", "someone-else")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("empty update request", func(t *testing.T) {
		svc, _ := newReviewService(t)

		_, err := svc.Update(ctx, dto.UpdateReviewRequest{}, "review-id-123", reviewerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes and the aggregate follows", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReview(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().
			RatingSummary(gomock.Any(), washerID).
			Return(model.RatingSummary{AverageRating: 0, TotalReviews: 0}, nil)
		m.washerRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(ctx, "review-id-123", reviewerID)

		assert.NoError(t, err)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReview(), nil)

		err := svc.Delete(ctx, "review-id-123", "someone-else")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("review not found", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

		err := svc.Delete(ctx, "missing-id", reviewerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
