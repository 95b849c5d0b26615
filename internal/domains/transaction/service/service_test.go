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
	notificationMocks "washly/internal/domains/notification/service/mocks"
	menuMocks "washly/internal/domains/servicemenu/mocks"
	menuModel "washly/internal/domains/servicemenu/model"
	txMocks "washly/internal/domains/transaction/mocks"
	"washly/internal/domains/transaction/model"
	"washly/internal/domains/transaction/model/dto"
	"washly/internal/domains/transaction/service"
	userMocks "washly/internal/domains/user/mocks"
	userModel "washly/internal/domains/user/model"
	"washly/shared/failure"
)

type transactionMocks struct {
	repo         *txMocks.MockTransaction
	menuRepo     *menuMocks.MockServiceMenu
	userRepo     *userMocks.MockUser
	gateway      *txMocks.MockPaystack
	verifier     *txMocks.MockVerifier
	notification *notificationMocks.MockNotification
}

func newService(ctrl *gomock.Controller) (service.Transaction, transactionMocks) {
	m := transactionMocks{
		repo:         txMocks.NewMockTransaction(ctrl),
		menuRepo:     menuMocks.NewMockServiceMenu(ctrl),
		userRepo:     userMocks.NewMockUser(ctrl),
		gateway:      txMocks.NewMockPaystack(ctrl),
		verifier:     txMocks.NewMockVerifier(ctrl),
		notification: notificationMocks.NewMockNotification(ctrl),
	}

	svc := service.New(m.repo, m.menuRepo, m.userRepo, m.gateway, m.verifier, m.notification, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func activeMenu() menuModel.ServiceMenu {
	return menuModel.ServiceMenu{
		ID:       "menu-id-123",
		Name:     "Premium Wash",
		Price:    150.0,
		IsActive: true,
	}
}

func notPaidTransaction() model.Transaction {
	return model.Transaction{
		ID:                   "tx-id-123",
		TransactionReference: "ref-123",
		PaymentLink:          "https://checkout.paystack.com/abc",
		Status:               model.StatusNotPaid,
		Amount:               150.0,
		ServiceID:            "menu-id-123",
		Version:              1,
	}
}

func TestTransactionService_Initialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful initialization",
			setupMock: func() {
				m.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeMenu(), nil)

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-id-123", Email: "owner@example.com"}, nil)

				m.gateway.EXPECT().
					Initialize(gomock.Any(), gomock.Any()).
					Return(dto.PaystackInitializeData{
						AuthorizationURL: "https://checkout.paystack.com/abc",
						Reference:        "ref-123",
					}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.notification.EXPECT().
					NotifyUser(gomock.Any(), "user-id-123", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "service menu not found",
			setupMock: func() {
				m.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(menuModel.ServiceMenu{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "service menu inactive",
			setupMock: func() {
				menu := activeMenu()
				menu.IsActive = false

				m.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(menu, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "gateway unreachable",
			setupMock: func() {
				m.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeMenu(), nil)

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-id-123", Email: "owner@example.com"}, nil)

				m.gateway.EXPECT().
					Initialize(gomock.Any(), gomock.Any()).
					Return(dto.PaystackInitializeData{}, failure.ServiceUnavailable("payment gateway unreachable"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "notification failure does not fail the transaction",
			setupMock: func() {
				m.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeMenu(), nil)

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-id-123", Email: "owner@example.com"}, nil)

				m.gateway.EXPECT().
					Initialize(gomock.Any(), gomock.Any()).
					Return(dto.PaystackInitializeData{
						AuthorizationURL: "https://checkout.paystack.com/abc",
						Reference:        "ref-123",
					}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.notification.EXPECT().
					NotifyUser(gomock.Any(), "user-id-123", gomock.Any(), gomock.Any()).
					Return(errors.New("kafka is down"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Initialize(ctx, "user-id-123", "menu-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "ref-123", res.Reference)
			assert.Equal(t, "https://checkout.paystack.com/abc", res.PaymentLink)
			assert.Equal(t, 150.0, res.Amount)
		})
	}
}

func TestTransactionService_InitializeRoundsAmountToMinorUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	ctx := context.Background()

	menu := activeMenu()
	menu.Price = 19.99

	m.menuRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(menu, nil)

	m.userRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{ID: "user-id-123", Email: "owner@example.com"}, nil)

	var sent dto.PaystackInitializeRequest

	m.gateway.EXPECT().
		Initialize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.PaystackInitializeRequest) (dto.PaystackInitializeData, error) {
			sent = req

			return dto.PaystackInitializeData{
				AuthorizationURL: "https://checkout.paystack.com/abc",
				Reference:        "ref-123",
			}, nil
		})

	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	m.notification.EXPECT().
		NotifyUser(gomock.Any(), "user-id-123", gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Initialize(ctx, "user-id-123", "menu-id-123")

	assert.NoError(t, err)
	assert.Equal(t, "1999", sent.Amount)
}

func TestTransactionService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	ctx := context.Background()

	t.Run("transaction not found", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Transaction{}, nil)

		_, err := svc.Verify(ctx, "missing-ref")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("already paid is idempotent", func(t *testing.T) {
		paid := notPaidTransaction()
		paid.Status = model.StatusPaid
		gatewayStatus := model.GatewayStatusSuccess
		paid.TransactionStatus = &gatewayStatus

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(paid, nil)

		res, err := svc.Verify(ctx, "ref-123")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPaid, res.Status)
		assert.Equal(t, model.GatewayStatusSuccess, res.GatewayStatus)
	})

	t.Run("successful settlement", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(notPaidTransaction(), nil)

		m.gateway.EXPECT().
			Verify(gomock.Any(), "ref-123").
			Return(dto.PaystackVerifyData{
				Status:          model.GatewayStatusSuccess,
				Reference:       "ref-123",
				TransactionDate: "2026-08-28T10:00:00Z",
			}, nil)

		m.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		res, err := svc.Verify(ctx, "ref-123")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPaid, res.Status)
		assert.Equal(t, model.GatewayStatusSuccess, res.GatewayStatus)
	})

	t.Run("failed gateway status stays not paid", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(notPaidTransaction(), nil)

		m.gateway.EXPECT().
			Verify(gomock.Any(), "ref-123").
			Return(dto.PaystackVerifyData{
				Status:    "failed",
				Reference: "ref-123",
			}, nil)

		m.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		res, err := svc.Verify(ctx, "ref-123")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusNotPaid, res.Status)
		assert.Equal(t, "failed", res.GatewayStatus)
	})

	t.Run("concurrent modification returns conflict", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(notPaidTransaction(), nil)

		m.gateway.EXPECT().
			Verify(gomock.Any(), "ref-123").
			Return(dto.PaystackVerifyData{
				Status:    model.GatewayStatusSuccess,
				Reference: "ref-123",
			}, nil)

		m.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := svc.Verify(ctx, "ref-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestTransactionService_ApplyWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	ctx := context.Background()

	validPayload := []byte(`{"event":"charge.success","data":{"reference":"ref-123","status":"success","amount":15000,"paid_at":"2026-08-28T10:00:00Z"}}`)

	t.Run("invalid signature", func(t *testing.T) {
		m.verifier.EXPECT().
			Verify(validPayload, "bad-signature").
			Return(false)

		_, err := svc.ApplyWebhook(ctx, validPayload, "bad-signature")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed payload", func(t *testing.T) {
		payload := []byte("not-json")

		m.verifier.EXPECT().
			Verify(payload, "signature").
			Return(true)

		_, err := svc.ApplyWebhook(ctx, payload, "signature")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing reference", func(t *testing.T) {
		payload := []byte(`{"event":"charge.success","data":{"status":"success"}}`)

		m.verifier.EXPECT().
			Verify(payload, "signature").
			Return(true)

		_, err := svc.ApplyWebhook(ctx, payload, "signature")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown reference", func(t *testing.T) {
		m.verifier.EXPECT().
			Verify(validPayload, "signature").
			Return(true)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Transaction{}, nil)

		_, err := svc.ApplyWebhook(ctx, validPayload, "signature")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("duplicate delivery for paid transaction is a no-op", func(t *testing.T) {
		paid := notPaidTransaction()
		paid.Status = model.StatusPaid

		m.verifier.EXPECT().
			Verify(validPayload, "signature").
			Return(true)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(paid, nil)

		reference, err := svc.ApplyWebhook(ctx, validPayload, "signature")

		assert.NoError(t, err)
		assert.Equal(t, "ref-123", reference)
	})

	t.Run("successful settlement", func(t *testing.T) {
		m.verifier.EXPECT().
			Verify(validPayload, "signature").
			Return(true)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(notPaidTransaction(), nil)

		m.repo.EXPECT().
			UpdateGuarded(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		reference, err := svc.ApplyWebhook(ctx, validPayload, "signature")

		assert.NoError(t, err)
		assert.Equal(t, "ref-123", reference)
	})
}
