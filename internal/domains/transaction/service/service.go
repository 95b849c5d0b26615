package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"washly/config"
	"washly/infras/otel"
	notificationSvc "washly/internal/domains/notification/service"
	menuModel "washly/internal/domains/servicemenu/model"
	menuRepo "washly/internal/domains/servicemenu/repository"
	"washly/internal/domains/transaction/gateway"
	"washly/internal/domains/transaction/model"
	"washly/internal/domains/transaction/model/dto"
	"washly/internal/domains/transaction/repository"
	"washly/internal/domains/transaction/webhook"
	userModel "washly/internal/domains/user/model"
	userRepo "washly/internal/domains/user/repository"
	"washly/shared"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// Minor currency units per major unit, the gateway bills in the minor one.
	minorUnitsFactor = 100

	msgInvalidWebhook = "invalid webhook"

	senderGateway = "payment_gateway"
)

type Transaction interface {
	Initialize(ctx context.Context, userID, serviceID string) (dto.InitializeTransactionResponse, error)
	Verify(ctx context.Context, reference string) (dto.VerifyTransactionResponse, error)
	ApplyWebhook(ctx context.Context, payload []byte, signature string) (string, error)
	FindByReference(ctx context.Context, reference string) (dto.TransactionResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetTransactionsResponse, error)
}

type serviceImpl struct {
	repo         repository.Transaction
	menuRepo     menuRepo.ServiceMenu
	userRepo     userRepo.User
	gateway      gateway.Paystack
	verifier     webhook.Verifier
	notification notificationSvc.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Transaction,
	menuRepo menuRepo.ServiceMenu,
	userRepo userRepo.User,
	paystack gateway.Paystack,
	verifier webhook.Verifier,
	notification notificationSvc.Notification,
	cfg *config.Config,
	otel otel.Otel,
) Transaction {
	return &serviceImpl{
		repo:         repo,
		menuRepo:     menuRepo,
		userRepo:     userRepo,
		gateway:      paystack,
		verifier:     verifier,
		notification: notification,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Initialize(ctx context.Context, userID, serviceID string) (res dto.InitializeTransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Initialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	menu, err := s.menuRepo.Get(ctx, shared.FilterByID(serviceID, menuModel.FieldID, menuModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menu")

		return res, fmt.Errorf("failed to get service menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return res, failure.NotFound("service menu not found")
	}

	if !menu.IsActive {
		return res, failure.BadRequestFromString("service is no longer offered")
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found")
	}

	initReq := dto.PaystackInitializeRequest{
		Email:       user.Email,
		Amount:      strconv.FormatInt(int64(math.Round(menu.Price*minorUnitsFactor)), 10),
		CallbackURL: s.cfg.External.Paystack.CallbackURL,
		Metadata: dto.PaystackMetadata{
			CustomFields: []dto.PaystackCustomField{
				{
					DisplayName:  "Service",
					VariableName: "service_name",
					Value:        menu.Name,
				},
			},
		},
	}

	data, err := s.gateway.Initialize(ctx, initReq)
	if err != nil {
		return res, err
	}

	transaction := model.Transaction{
		ID:                   uuid.NewString(),
		TransactionReference: data.Reference,
		PaymentLink:          data.AuthorizationURL,
		Status:               model.StatusNotPaid,
		Amount:               menu.Price,
		ServiceID:            menu.ID,
		Version:              1,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if err = s.repo.Insert(ctx, transaction); err != nil {
		log.Error().Err(err).Msg("failed to insert transaction")

		return res, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if notifyErr := s.notification.NotifyUser(ctx, userID, "Payment initialized",
		fmt.Sprintf("A payment of %.2f for %s is awaiting completion.", menu.Price, menu.Name)); notifyErr != nil {
		log.Error().Err(notifyErr).Str("user_id", userID).Msg("failed to notify user about initialized payment")
	}

	res = dto.InitializeTransactionResponse{
		Reference:   transaction.TransactionReference,
		PaymentLink: transaction.PaymentLink,
		Amount:      transaction.Amount,
	}

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, reference string) (res dto.VerifyTransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	transaction, err := s.getByReference(ctx, reference)
	if err != nil {
		return res, err
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("transaction not found")
	}

	if transaction.Status == model.StatusPaid {
		res.FromSettled(transaction)

		return res, nil
	}

	data, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return res, err
	}

	settled, err := s.settle(ctx, transaction, data.Status, data.TransactionDate)
	if err != nil {
		return res, err
	}

	res.FromSettled(settled)

	return res, nil
}

// ApplyWebhook settles the referenced transaction and hands the reference back
// so callers can finalize whatever the payment was for.
func (s *serviceImpl) ApplyWebhook(ctx context.Context, payload []byte, signature string) (reference string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyWebhook")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.verifier.Verify(payload, signature) {
		log.Warn().Msg("webhook signature mismatch")

		return reference, failure.BadRequestFromString(msgInvalidWebhook)
	}

	var event dto.PaystackWebhookEvent
	if err = json.Unmarshal(payload, &event); err != nil {
		log.Warn().Err(err).Msg("webhook payload is not valid json")

		return reference, failure.BadRequestFromString(msgInvalidWebhook)
	}

	if event.Data.Reference == constant.Empty {
		return reference, failure.BadRequestFromString(msgInvalidWebhook)
	}

	transaction, err := s.getByReference(ctx, event.Data.Reference)
	if err != nil {
		return reference, err
	}

	if transaction.ID == constant.Empty {
		log.Warn().Str("reference", event.Data.Reference).Msg("webhook for unknown reference")

		return reference, failure.BadRequestFromString(msgInvalidWebhook)
	}

	if transaction.Status == model.StatusPaid {
		return event.Data.Reference, nil
	}

	if _, err = s.settle(ctx, transaction, event.Data.Status, event.Data.PaidAt); err != nil {
		return reference, err
	}

	return event.Data.Reference, nil
}

func (s *serviceImpl) FindByReference(ctx context.Context, reference string) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByReference")
	defer scope.End()
	defer scope.TraceIfError(err)

	transaction, err := s.getByReference(ctx, reference)
	if err != nil {
		return res, err
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("transaction not found")
	}

	res.FromModel(transaction)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	transactions, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(transactions, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) getByReference(ctx context.Context, reference string) (model.Transaction, error) {
	transaction, err := s.repo.Get(ctx, shared.FilterByID(reference, model.FieldTransactionReference, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return transaction, fmt.Errorf("failed to get transaction: %w", err)
	}

	return transaction, nil
}

// settle applies a gateway verdict through a version-guarded update so the
// callback and webhook paths can race without regressing a paid ledger entry.
func (s *serviceImpl) settle(ctx context.Context, transaction model.Transaction, gatewayStatus, transactionDate string) (model.Transaction, error) {
	status := model.StatusNotPaid
	if gatewayStatus == model.GatewayStatusSuccess {
		status = model.StatusPaid
	}

	updatedFields := map[string]any{
		model.FieldStatus:            status,
		model.FieldTransactionStatus: gatewayStatus,
		model.FieldVersion:           transaction.Version + 1,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     senderGateway,
	}
	if transactionDate != constant.Empty {
		updatedFields[model.FieldTransactionDate] = transactionDate
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    transaction.ID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldVersion,
				Operator: gDto.FilterOperatorEq,
				Value:    transaction.Version,
				Table:    model.TableName,
			},
		},
	}

	rows, err := s.repo.UpdateGuarded(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update transaction")

		return transaction, fmt.Errorf("failed to update transaction: %w", err)
	}

	if rows == 0 {
		return transaction, failure.Conflict("transaction was modified concurrently")
	}

	transaction.Status = status
	transaction.TransactionStatus = &gatewayStatus
	if transactionDate != constant.Empty {
		transaction.TransactionDate = &transactionDate
	}
	transaction.Version++

	return transaction, nil
}
