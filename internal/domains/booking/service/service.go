package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"washly/config"
	"washly/infras/otel"
	"washly/internal/domains/booking/model"
	"washly/internal/domains/booking/model/dto"
	"washly/internal/domains/booking/repository"
	carModel "washly/internal/domains/car/model"
	carRepo "washly/internal/domains/car/repository"
	notificationSvc "washly/internal/domains/notification/service"
	menuModel "washly/internal/domains/servicemenu/model"
	menuRepo "washly/internal/domains/servicemenu/repository"
	txModel "washly/internal/domains/transaction/model"
	transactionSvc "washly/internal/domains/transaction/service"
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

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	msgCompleted     = "booking marked as completed"
	msgNothingToDo   = "booking is not in an accepted state, nothing to do"
	msgModifiedRetry = "booking was modified concurrently"
)

// historyStatuses are the terminal states shown on a user's history page.
var historyStatuses = []string{model.StatusDeclined, model.StatusCompleted, model.StatusPaid, model.StatusCancelled}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.BookingResponse, error)
	WasherAccept(ctx context.Context, id, washerUserID string) error
	WasherDecline(ctx context.Context, id, washerUserID string) error
	WasherComplete(ctx context.Context, id, washerUserID string) (dto.CompleteBookingResponse, error)
	Approve(ctx context.Context, id, userID string) (dto.ApproveBookingResponse, error)
	VerifyPayment(ctx context.Context, reference string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id, userID string) error
	AssignWasher(ctx context.Context, id, washerID, adminID string) error
	GetByID(ctx context.Context, id, userID, role string) (dto.BookingDetailResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetBookingsResponse, error)
	GetWasherBookings(ctx context.Context, req gDto.QueryParams, washerUserID, status string) (dto.GetBookingsResponse, error)
	Search(ctx context.Context, req gDto.QueryParams, search dto.SearchBookingRequest) (dto.GetBookingsResponse, error)
	History(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetBookingsResponse, error)
	Stats(ctx context.Context) (dto.StatsOverviewResponse, error)
	Analytics(ctx context.Context, userID, role string) (dto.StatsOverviewResponse, error)
	CanReview(ctx context.Context, id, userID string) (dto.CanReviewResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	carRepo      carRepo.Car
	menuRepo     menuRepo.ServiceMenu
	washerRepo   washerRepo.Washer
	transaction  transactionSvc.Transaction
	notification notificationSvc.Notification
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	carRepo carRepo.Car,
	menuRepo menuRepo.ServiceMenu,
	washerRepo washerRepo.Washer,
	transaction transactionSvc.Transaction,
	notification notificationSvc.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		carRepo:      carRepo,
		menuRepo:     menuRepo,
		washerRepo:   washerRepo,
		transaction:  transaction,
		notification: notification,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func bookingFilter(field string, value any) gDto.Filter {
	return gDto.Filter{
		Field:    field,
		Operator: gDto.FilterOperatorEq,
		Value:    value,
		Table:    model.TableName,
	}
}

// transition applies a status change guarded by the booking's version so
// concurrent writers cannot clobber each other.
func (s *serviceImpl) transition(ctx context.Context, booking model.Booking, updatedFields map[string]any, actor string) error {
	updatedFields[model.FieldVersion] = booking.Version + 1
	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			bookingFilter(model.FieldID, booking.ID),
			bookingFilter(model.FieldVersion, booking.Version),
		},
	}

	rows, err := s.repo.UpdateGuarded(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if rows == 0 {
		return failure.Conflict(msgModifiedRetry)
	}

	s.invalidate(ctx, booking.ID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) notify(ctx context.Context, userID, title, message string) {
	if err := s.notification.NotifyUser(ctx, userID, title, message); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to dispatch booking notification")
	}
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// washerForService resolves the washer attached to a service menu. Both legs
// can be missing, callers get an explicit nil instead of a lazy traversal.
func (s *serviceImpl) washerForService(ctx context.Context, serviceID string) (*washerModel.Washer, error) {
	menu, err := s.menuRepo.Get(ctx, shared.FilterByID(serviceID, menuModel.FieldID, menuModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menu")

		return nil, fmt.Errorf("failed to get service menu: %w", err)
	}

	if menu.ID == constant.Empty || menu.WasherID == nil {
		return nil, nil
	}

	washer, err := s.washerRepo.Get(ctx, shared.FilterByID(*menu.WasherID, washerModel.FieldID, washerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get washer")

		return nil, fmt.Errorf("failed to get washer: %w", err)
	}

	if washer.ID == constant.Empty {
		return nil, nil
	}

	return &washer, nil
}

// washerGate loads a booking and checks the caller is the washer attached to
// its service.
func (s *serviceImpl) washerGate(ctx context.Context, id, washerUserID string) (model.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return booking, err
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	washer, err := s.washerForService(ctx, booking.ServiceID)
	if err != nil {
		return booking, err
	}

	if washer == nil {
		return booking, failure.Conflict("no washer is attached to this service")
	}

	if washer.UserID != washerUserID {
		return booking, failure.Forbidden("this booking is not assigned to you")
	}

	return booking, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	car, err := s.carRepo.Get(ctx, shared.FilterByID(req.CarID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty || car.UserID != userID {
		return res, failure.NotFound("car not found")
	}

	menu, err := s.menuRepo.Get(ctx, shared.FilterByID(req.ServiceID, menuModel.FieldID, menuModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service menu")

		return res, fmt.Errorf("failed to get service menu: %w", err)
	}

	if menu.ID == constant.Empty || !menu.IsActive {
		return res, failure.NotFound("service not found")
	}

	activeFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			bookingFilter(model.FieldCarID, req.CarID),
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses,
				Table:    model.TableName,
			},
		},
	}

	hasActive, err := s.repo.Exist(ctx, activeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check active bookings")

		return res, fmt.Errorf("failed to check active bookings: %w", err)
	}

	if hasActive {
		return res, failure.Conflict("this car already has an active booking")
	}

	booking, err := req.ToModel(userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid scheduled time: %v", err))
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, booking.ID)

	washer, err := s.washerForService(ctx, booking.ServiceID)
	if err == nil && washer != nil {
		s.notify(ctx, washer.UserID, "New booking request",
			fmt.Sprintf("A %s %s is scheduled for %s.", car.Make, car.Model, booking.ScheduledTime.Format(time.RFC3339)))
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) WasherAccept(ctx context.Context, id, washerUserID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WasherAccept")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.respond(ctx, id, washerUserID, model.StatusAccepted, model.WasherResponseAccepted,
		"Booking accepted", "Your washer accepted the booking.")
}

func (s *serviceImpl) WasherDecline(ctx context.Context, id, washerUserID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WasherDecline")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.respond(ctx, id, washerUserID, model.StatusDeclined, model.WasherResponseDeclined,
		"Booking declined", "Your washer declined the booking.")
}

func (s *serviceImpl) respond(ctx context.Context, id, washerUserID, status, response, title, message string) error {
	booking, err := s.washerGate(ctx, id, washerUserID)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusAssigned {
		return failure.Conflict("booking is not awaiting a washer response")
	}

	updatedFields := map[string]any{
		model.FieldStatus:         status,
		model.FieldWasherResponse: response,
	}

	if err = s.transition(ctx, booking, updatedFields, washerUserID); err != nil {
		return err
	}

	s.notify(ctx, booking.UserID, title, message)

	return nil
}

func (s *serviceImpl) WasherComplete(ctx context.Context, id, washerUserID string) (res dto.CompleteBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WasherComplete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.washerGate(ctx, id, washerUserID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusAccepted {
		res.Message = msgNothingToDo

		return res, nil
	}

	updatedFields := map[string]any{
		model.FieldStatus: model.StatusCompleted,
	}

	if err = s.transition(ctx, booking, updatedFields, washerUserID); err != nil {
		return res, err
	}

	s.notify(ctx, booking.UserID, "Wash completed", "Your wash is done. Approve it to proceed to payment.")

	res.Message = msgCompleted

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id, userID string) (res dto.ApproveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	if booking.UserID != userID {
		return res, failure.Forbidden("this booking does not belong to you")
	}

	if booking.Status != model.StatusCompleted {
		return res, failure.Conflict("booking is not completed yet")
	}

	transaction, err := s.transaction.Initialize(ctx, userID, booking.ServiceID)
	if err != nil {
		return res, err
	}

	updatedFields := map[string]any{
		model.FieldPaymentReference: transaction.Reference,
	}

	if err = s.transition(ctx, booking, updatedFields, userID); err != nil {
		// The gateway transaction already exists but no booking points at it.
		// Flag it so reconciliation can pick the orphan up.
		log.Warn().
			Str("booking_id", booking.ID).
			Str("reference", transaction.Reference).
			Msg("booking transition lost after transaction initialize, orphan reference needs reconciliation")

		return res, err
	}

	booking.PaymentReference = &transaction.Reference
	booking.Version++

	res.Booking.FromModel(booking)
	res.Transaction = transaction

	return res, nil
}

func (s *serviceImpl) VerifyPayment(ctx context.Context, reference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{bookingFilter(model.FieldPaymentReference, reference)},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	if booking.Status == model.StatusPaid {
		res.FromModel(booking)

		return res, nil
	}

	verification, err := s.transaction.Verify(ctx, reference)
	if err != nil {
		return res, err
	}

	if verification.GatewayStatus != txModel.GatewayStatusSuccess || verification.Status != txModel.StatusPaid {
		return res, failure.Unauthorized("payment has not been confirmed")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusPaid,
		model.FieldPaymentStatus: model.PaymentStatusAuthorized,
	}

	if err = s.transition(ctx, booking, updatedFields, booking.UserID); err != nil {
		return res, err
	}

	s.notify(ctx, booking.UserID, "Payment confirmed", "Your booking is fully paid. Thank you!")

	booking.Status = model.StatusPaid
	booking.PaymentStatus = model.PaymentStatusAuthorized
	booking.Version++

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.UserID != userID {
		return failure.Forbidden("this booking does not belong to you")
	}

	if booking.Status != model.StatusAssigned && booking.Status != model.StatusAccepted {
		return failure.Conflict("booking can no longer be cancelled")
	}

	updatedFields := map[string]any{
		model.FieldStatus: model.StatusCancelled,
	}

	if err = s.transition(ctx, booking, updatedFields, userID); err != nil {
		return err
	}

	washer, err := s.washerForService(ctx, booking.ServiceID)
	if err == nil && washer != nil {
		s.notify(ctx, washer.UserID, "Booking cancelled", "The customer cancelled the booking.")
	}

	if err := s.notification.NotifyAdmins(ctx, "Booking cancelled",
		fmt.Sprintf("Booking %s was cancelled by the customer.", booking.ID)); err != nil {
		log.Error().Err(err).Msg("failed to broadcast cancellation")
	}

	return nil
}

func (s *serviceImpl) AssignWasher(ctx context.Context, id, washerID, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignWasher")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	washer, err := s.washerRepo.Get(ctx, shared.FilterByID(washerID, washerModel.FieldID, washerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get washer")

		return fmt.Errorf("failed to get washer: %w", err)
	}

	if washer.ID == constant.Empty {
		return failure.NotFound("washer not found")
	}

	if washer.KYCStatus != washerModel.KYCStatusApproved || !washer.IsAvailable {
		return failure.BadRequestFromString("washer is not approved or not available")
	}

	updatedFields := map[string]any{
		menuModel.FieldWasherID:  washer.ID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: adminID,
	}

	menuFilter := shared.FilterByID(booking.ServiceID, menuModel.FieldID, menuModel.TableName)
	if err = s.menuRepo.Update(ctx, updatedFields, menuFilter); err != nil {
		log.Error().Err(err).Msg("failed to assign washer to service")

		return fmt.Errorf("failed to assign washer to service: %w", err)
	}

	s.invalidate(ctx, booking.ID)

	s.notify(ctx, washer.UserID, "New assignment", "You have been assigned a booking by an administrator.")

	return nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id, userID, role string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	var detail model.BookingDetail

	err = s.cache.Get(ctx, cacheKey, &detail)
	if err != nil {
		detail, err = s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if detail.ID != constant.Empty {
			if err := s.cache.Save(ctx, cacheKey, detail, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	isOwner := detail.UserID == userID
	isWasher := detail.WasherUserID != nil && *detail.WasherUserID == userID

	if role != constant.RoleAdmin && !isOwner && !isWasher {
		return res, failure.Forbidden("you are not allowed to view this booking")
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Joined listing, the sort column must be table qualified.
	if req.SortBy == constant.DefaultValueSortBy {
		req.SortBy = model.TableName + "." + constant.DefaultValueSortBy
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.repo.GetAllDetails(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetBookingsResponse, error) {
	filter := gDto.FilterGroup{
		Filters: []any{bookingFilter(model.FieldUserID, userID)},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) GetWasherBookings(ctx context.Context, req gDto.QueryParams, washerUserID, status string) (dto.GetBookingsResponse, error) {
	filters := []any{
		gDto.Filter{
			Field:    washerModel.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    washerUserID,
			Table:    washerModel.TableName,
			ArgName:  "washer_user_id",
		},
	}

	if status != constant.Empty {
		filters = append(filters, bookingFilter(model.FieldStatus, status))
	}

	return s.GetAll(ctx, req, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
}

func (s *serviceImpl) Search(ctx context.Context, req gDto.QueryParams, search dto.SearchBookingRequest) (dto.GetBookingsResponse, error) {
	filters := []any{}

	if search.Status != constant.Empty {
		filters = append(filters, bookingFilter(model.FieldStatus, search.Status))
	}

	if search.PaymentStatus != constant.Empty {
		filters = append(filters, bookingFilter(model.FieldPaymentStatus, search.PaymentStatus))
	}

	if search.UserID != constant.Empty {
		filters = append(filters, bookingFilter(model.FieldUserID, search.UserID))
	}

	if search.WasherID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    washerModel.FieldID,
			Operator: gDto.FilterOperatorEq,
			Value:    search.WasherID,
			Table:    washerModel.TableName,
			ArgName:  "search_washer_id",
		})
	}

	if search.StartDate != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldScheduledTime,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    search.StartDate,
			Table:    model.TableName,
			ArgName:  "start_date",
		})
	}

	if search.EndDate != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldScheduledTime,
			Operator: gDto.FilterOperatorLessEq,
			Value:    search.EndDate,
			Table:    model.TableName,
			ArgName:  "end_date",
		})
	}

	return s.GetAll(ctx, req, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
}

func (s *serviceImpl) History(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetBookingsResponse, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			bookingFilter(model.FieldUserID, userID),
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    historyStatuses,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	stats, err := s.repo.StatsOverview(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking stats")

		return res, fmt.Errorf("failed to get booking stats: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

func (s *serviceImpl) Analytics(ctx context.Context, userID, role string) (res dto.StatsOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Analytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	switch role {
	case constant.RoleAdmin:
	case constant.RoleWasher:
		filter = gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    washerModel.FieldUserID,
					Operator: gDto.FilterOperatorEq,
					Value:    userID,
					Table:    washerModel.TableName,
					ArgName:  "washer_user_id",
				},
			},
		}
	default:
		filter = gDto.FilterGroup{
			Filters: []any{bookingFilter(model.FieldUserID, userID)},
		}
	}

	stats, err := s.repo.StatsOverview(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking analytics")

		return res, fmt.Errorf("failed to get booking analytics: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

func (s *serviceImpl) CanReview(ctx context.Context, id, userID string) (res dto.CanReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CanReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	res.CanReview = booking.UserID == userID &&
		booking.Status == model.StatusPaid &&
		booking.PaymentStatus == model.PaymentStatusAuthorized

	return res, nil
}
