package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"washly/config"
	"washly/infras/otel/mocks"
	bookingMocks "washly/internal/domains/booking/mocks"
	"washly/internal/domains/booking/model"
	"washly/internal/domains/booking/model/dto"
	"washly/internal/domains/booking/service"
	carMocks "washly/internal/domains/car/mocks"
	carModel "washly/internal/domains/car/model"
	notificationMocks "washly/internal/domains/notification/service/mocks"
	menuMocks "washly/internal/domains/servicemenu/mocks"
	menuModel "washly/internal/domains/servicemenu/model"
	txModel "washly/internal/domains/transaction/model"
	txDto "washly/internal/domains/transaction/model/dto"
	txSvcMocks "washly/internal/domains/transaction/service/mocks"
	washerMocks "washly/internal/domains/washer/mocks"
	washerModel "washly/internal/domains/washer/model"
	cacheMocks "washly/shared/cache/mocks"
	"washly/shared/failure"
)

type bookingTestMocks struct {
	repo         *bookingMocks.MockBooking
	carRepo      *carMocks.MockCar
	menuRepo     *menuMocks.MockServiceMenu
	washerRepo   *washerMocks.MockWasher
	transaction  *txSvcMocks.MockTransaction
	notification *notificationMocks.MockNotification
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := bookingTestMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		carRepo:      carMocks.NewMockCar(ctrl),
		menuRepo:     menuMocks.NewMockServiceMenu(ctrl),
		washerRepo:   washerMocks.NewMockWasher(ctrl),
		transaction:  txSvcMocks.NewMockTransaction(ctrl),
		notification: notificationMocks.NewMockNotification(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache behavior is not under test here.
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.carRepo, m.menuRepo, m.washerRepo, m.transaction, m.notification, &config.Config{}, m.cache, mocks.NewOtel())

	return svc, m
}

const (
	ownerID      = "owner-id-123"
	washerUserID = "washer-user-123"
)

func ownedCar() carModel.Car {
	return carModel.Car{
		ID:          "car-id-123",
		UserID:      ownerID,
		Make:        "Toyota",
		Model:       "Corolla",
		PlateNumber: "ABC-123",
	}
}

func menuWithWasher() menuModel.ServiceMenu {
	washerID := "washer-id-123"

	return menuModel.ServiceMenu{
		ID:       "menu-id-123",
		WasherID: &washerID,
		Name:     "Premium Wash",
		Price:    150.0,
		IsActive: true,
	}
}

func approvedWasher() washerModel.Washer {
	return washerModel.Washer{
		ID:          "washer-id-123",
		UserID:      washerUserID,
		KYCStatus:   washerModel.KYCStatusApproved,
		IsAvailable: true,
	}
}

func assignedBooking() model.Booking {
	return model.Booking{
		ID:            "booking-id-123",
		UserID:        ownerID,
		CarID:         "car-id-123",
		ServiceID:     "menu-id-123",
		ScheduledTime: time.Now().Add(24 * time.Hour),
		Status:        model.StatusAssigned,
		PaymentStatus: model.PaymentStatusNone,
		Version:       1,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	validReq := dto.CreateBookingRequest{
		CarID:         "car-id-123",
		ServiceID:     "menu-id-123",
		ScheduledTime: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.carRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedCar(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		// Washer lookup for the notification.
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)
		m.notification.EXPECT().NotifyUser(gomock.Any(), washerUserID, gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(ctx, validReq, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusAssigned, res.Status)
		assert.Equal(t, model.PaymentStatusNone, res.PaymentStatus)
		assert.Equal(t, ownerID, res.UserID)
	})

	t.Run("car belongs to someone else", func(t *testing.T) {
		svc, m := newBookingService(t)

		car := ownedCar()
		car.UserID = "someone-else"

		m.carRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(car, nil)

		_, err := svc.Create(ctx, validReq, ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inactive service", func(t *testing.T) {
		svc, m := newBookingService(t)

		menu := menuWithWasher()
		menu.IsActive = false

		m.carRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedCar(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menu, nil)

		_, err := svc.Create(ctx, validReq, ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("car already has an active booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.carRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedCar(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(ctx, validReq, ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("concurrent create loses the unique index race", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.carRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedCar(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Conflict("this car already has an active booking"))

		_, err := svc.Create(ctx, validReq, ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("invalid scheduled time", func(t *testing.T) {
		svc, m := newBookingService(t)

		req := validReq
		req.ScheduledTime = "next tuesday"

		m.carRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedCar(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(ctx, req, ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_WasherAccept(t *testing.T) {
	ctx := context.Background()

	t.Run("successful acceptance", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.notification.EXPECT().NotifyUser(gomock.Any(), ownerID, gomock.Any(), gomock.Any()).Return(nil)

		err := svc.WasherAccept(ctx, "booking-id-123", washerUserID)

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.WasherAccept(ctx, "missing-id", washerUserID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("no washer attached to the service", func(t *testing.T) {
		svc, m := newBookingService(t)

		menu := menuWithWasher()
		menu.WasherID = nil

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menu, nil)

		err := svc.WasherAccept(ctx, "booking-id-123", washerUserID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("booking assigned to a different washer", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)

		err := svc.WasherAccept(ctx, "booking-id-123", "intruder-user-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("booking not awaiting a response", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)

		err := svc.WasherAccept(ctx, "booking-id-123", washerUserID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("concurrent modification", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := svc.WasherAccept(ctx, "booking-id-123", washerUserID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_WasherComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("successful completion", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusAccepted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.notification.EXPECT().NotifyUser(gomock.Any(), ownerID, gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.WasherComplete(ctx, "booking-id-123", washerUserID)

		assert.NoError(t, err)
		assert.Equal(t, "booking marked as completed", res.Message)
	})

	t.Run("not accepted yet is a no-op", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)

		res, err := svc.WasherComplete(ctx, "booking-id-123", washerUserID)

		assert.NoError(t, err)
		assert.Equal(t, "booking is not in an accepted state, nothing to do", res.Message)
	})
}

func TestBookingService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("successful approval starts a payment", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.transaction.EXPECT().
			Initialize(gomock.Any(), ownerID, booking.ServiceID).
			Return(txDto.InitializeTransactionResponse{
				Reference:   "ref-123",
				PaymentLink: "https://checkout.paystack.com/abc",
				Amount:      150.0,
			}, nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		res, err := svc.Approve(ctx, "booking-id-123", ownerID)

		assert.NoError(t, err)
		assert.Equal(t, "ref-123", res.Transaction.Reference)
		assert.NotNil(t, res.Booking.PaymentReference)
		assert.Equal(t, "ref-123", *res.Booking.PaymentReference)
	})

	t.Run("lost transition surfaces a conflict after the payment was initialized", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		m.transaction.EXPECT().
			Initialize(gomock.Any(), ownerID, booking.ServiceID).
			Return(txDto.InitializeTransactionResponse{Reference: "ref-123"}, nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Approve(ctx, "booking-id-123", ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("not the booking owner", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := svc.Approve(ctx, "booking-id-123", "someone-else")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("booking not completed yet", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)

		_, err := svc.Approve(ctx, "booking-id-123", ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	reference := "ref-123"

	completedBooking := func() model.Booking {
		booking := assignedBooking()
		booking.Status = model.StatusCompleted
		booking.PaymentReference = &reference

		return booking
	}

	t.Run("no booking for reference", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.VerifyPayment(ctx, reference)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("already paid is idempotent", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := completedBooking()
		booking.Status = model.StatusPaid
		booking.PaymentStatus = model.PaymentStatusAuthorized

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		res, err := svc.VerifyPayment(ctx, reference)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPaid, res.Status)
	})

	t.Run("unconfirmed payment is rejected", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completedBooking(), nil)
		m.transaction.EXPECT().
			Verify(gomock.Any(), reference).
			Return(txDto.VerifyTransactionResponse{
				Reference:     reference,
				Status:        txModel.StatusNotPaid,
				GatewayStatus: "failed",
			}, nil)

		_, err := svc.VerifyPayment(ctx, reference)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("confirmed payment settles the booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completedBooking(), nil)
		m.transaction.EXPECT().
			Verify(gomock.Any(), reference).
			Return(txDto.VerifyTransactionResponse{
				Reference:     reference,
				Status:        txModel.StatusPaid,
				GatewayStatus: txModel.GatewayStatusSuccess,
			}, nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.notification.EXPECT().NotifyUser(gomock.Any(), ownerID, gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.VerifyPayment(ctx, reference)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPaid, res.Status)
		assert.Equal(t, model.PaymentStatusAuthorized, res.PaymentStatus)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("successful cancellation", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.repo.EXPECT().UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.menuRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(menuWithWasher(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)
		m.notification.EXPECT().NotifyUser(gomock.Any(), washerUserID, gomock.Any(), gomock.Any()).Return(nil)
		m.notification.EXPECT().NotifyAdmins(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Cancel(ctx, "booking-id-123", ownerID)

		assert.NoError(t, err)
	})

	t.Run("not the booking owner", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)

		err := svc.Cancel(ctx, "booking-id-123", "someone-else")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("work already started", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusInProgress

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := svc.Cancel(ctx, "booking-id-123", ownerID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_AssignWasher(t *testing.T) {
	ctx := context.Background()

	t.Run("successful assignment", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedWasher(), nil)
		m.menuRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.notification.EXPECT().NotifyUser(gomock.Any(), washerUserID, gomock.Any(), gomock.Any()).Return(nil)

		err := svc.AssignWasher(ctx, "booking-id-123", "washer-id-123", "admin-id-123")

		assert.NoError(t, err)
	})

	t.Run("washer not approved", func(t *testing.T) {
		svc, m := newBookingService(t)

		washer := approvedWasher()
		washer.KYCStatus = washerModel.KYCStatusPending

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(washer, nil)

		err := svc.AssignWasher(ctx, "booking-id-123", "washer-id-123", "admin-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("washer not available", func(t *testing.T) {
		svc, m := newBookingService(t)

		washer := approvedWasher()
		washer.IsAvailable = false

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)
		m.washerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(washer, nil)

		err := svc.AssignWasher(ctx, "booking-id-123", "washer-id-123", "admin-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_GetByID(t *testing.T) {
	ctx := context.Background()

	detail := func() model.BookingDetail {
		washerUser := washerUserID
		booking := assignedBooking()

		return model.BookingDetail{
			ID:            booking.ID,
			UserID:        booking.UserID,
			CarID:         booking.CarID,
			ServiceID:     booking.ServiceID,
			ScheduledTime: booking.ScheduledTime,
			Status:        booking.Status,
			PaymentStatus: booking.PaymentStatus,
			Version:       booking.Version,
			WasherUserID:  &washerUser,
		}
	}

	t.Run("owner can view", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(detail(), nil)

		res, err := svc.GetByID(ctx, "booking-id-123", ownerID, "user")

		assert.NoError(t, err)
		assert.Equal(t, "booking-id-123", res.ID)
	})

	t.Run("assigned washer can view", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(detail(), nil)

		_, err := svc.GetByID(ctx, "booking-id-123", washerUserID, "washer")

		assert.NoError(t, err)
	})

	t.Run("admin can view", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(detail(), nil)

		_, err := svc.GetByID(ctx, "booking-id-123", "admin-id-123", "admin")

		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(detail(), nil)

		_, err := svc.GetByID(ctx, "booking-id-123", "stranger-id", "user")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_CanReview(t *testing.T) {
	ctx := context.Background()

	t.Run("paid booking by its owner", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := assignedBooking()
		booking.Status = model.StatusPaid
		booking.PaymentStatus = model.PaymentStatusAuthorized

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		res, err := svc.CanReview(ctx, "booking-id-123", ownerID)

		assert.NoError(t, err)
		assert.True(t, res.CanReview)
	})

	t.Run("unpaid booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignedBooking(), nil)

		res, err := svc.CanReview(ctx, "booking-id-123", ownerID)

		assert.NoError(t, err)
		assert.False(t, res.CanReview)
	})
}
