package booking

import (
	"net/http"
	"washly/infras/otel"
	"washly/internal/domains/booking/model"
	"washly/internal/domains/booking/model/dto"
	"washly/internal/domains/booking/service"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	"washly/shared/validator"
	"washly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Patch("/accept/{id}", handler.AcceptBooking)
		routerGroup.Patch("/decline/{id}", handler.DeclineBooking)
		routerGroup.Patch("/completed/{id}", handler.CompleteBooking)
		routerGroup.Patch("/approve/{id}", handler.ApproveBooking)
		routerGroup.Patch("/verify", handler.VerifyBookingPayment)
		routerGroup.Patch("/cancel/{id}", handler.CancelBooking)
		routerGroup.Patch("/assign/{id}", handler.AssignWasher)
		routerGroup.Get("/all", handler.GetBookings)
		routerGroup.Get("/myBooking", handler.GetMyBookings)
		routerGroup.Get("/washer/bookings", handler.GetWasherBookings)
		routerGroup.Get("/search", handler.SearchBookings)
		routerGroup.Get("/history", handler.GetBookingHistory)
		routerGroup.Get("/stats/overview", handler.GetBookingStats)
		routerGroup.Get("/analytics", handler.GetBookingAnalytics)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/can-review", handler.CanReviewBooking)
	})
}

func userFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return "", false
	}

	return userID, true
}

// CreateBooking books a wash for one of the caller's cars.
// @Summary Create a new booking
// @Description Book a wash service for a car owned by the caller.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/create [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// AcceptBooking lets the assigned washer accept a booking.
// @Summary Accept a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking accepted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/accept/{id} [patch]
// @Security BearerAuth
func (handler *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.WasherAccept(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking accepted by washer " + userID)

	response.WithMessage(w, http.StatusOK, "Booking accepted")
}

// DeclineBooking lets the assigned washer decline a booking.
// @Summary Decline a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking declined"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/decline/{id} [patch]
// @Security BearerAuth
func (handler *Handler) DeclineBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeclineBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.WasherDecline(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decline booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking declined by washer " + userID)

	response.WithMessage(w, http.StatusOK, "Booking declined")
}

// CompleteBooking lets the assigned washer mark a booking as completed.
// @Summary Complete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CompleteBookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/completed/{id} [patch]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.WasherComplete(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking completion processed by washer " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// ApproveBooking approves completed work and initializes payment.
// @Summary Approve a completed booking
// @Description Approve the completed wash and receive a payment link.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ApproveBookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/approve/{id} [patch]
// @Security BearerAuth
func (handler *Handler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Approve(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking approved by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyBookingPayment settles a booking against the payment gateway.
// @Summary Verify a booking payment
// @Description Confirm the payment referenced by the payload query parameter.
// @Tags Booking
// @Produce json
// @Param payload query string true "Transaction reference"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/verify [patch]
// @Security BearerAuth
func (handler *Handler) VerifyBookingPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyBookingPayment")
	defer scope.End()

	reference := r.URL.Query().Get("payload")
	if reference == "" {
		response.WithError(w, failure.BadRequestFromString("payload is required"))

		return
	}

	res, err := handler.service.VerifyPayment(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify booking payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking payment verified for reference " + reference)

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels a booking that has not been serviced yet.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/cancel/{id} [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled by user " + userID)

	response.WithMessage(w, http.StatusOK, "Booking cancelled")
}

// AssignWasher re-points the booking's service to another washer.
// @Summary Assign a washer to a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AssignWasherRequest true "Assign Washer Request"
// @Success 200 {object} response.Message "Washer assigned"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/assign/{id} [patch]
// @Security BearerAuth
func (handler *Handler) AssignWasher(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignWasher")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AssignWasherRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AssignWasher(ctx, id, req.WasherID, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign washer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Washer assigned by admin " + userID)

	response.WithMessage(w, http.StatusOK, "Washer assigned")
}

// GetBookings lists every booking with its joined details.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/all [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's bookings.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/bookings/myBooking [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetMine(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User bookings retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetWasherBookings lists bookings assigned to the calling washer.
// @Summary Get washer bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/bookings/washer/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetWasherBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWasherBookings")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

	bookings, err := handler.service.GetWasherBookings(ctx, queryParams, userID, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get washer bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Washer bookings retrieved successfully for washer " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// SearchBookings filters bookings across status, payment and schedule.
// @Summary Search bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Param user_id query string false "Filter by user"
// @Param washer_id query string false "Filter by washer"
// @Param start_date query string false "Scheduled from (RFC3339)"
// @Param end_date query string false "Scheduled until (RFC3339)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/search [get]
// @Security BearerAuth
func (handler *Handler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	search := dto.SearchBookingRequest{
		Status:        query.Get(model.FieldStatus),
		PaymentStatus: query.Get(model.FieldPaymentStatus),
		UserID:        query.Get(model.FieldUserID),
		WasherID:      query.Get("washer_id"),
		StartDate:     query.Get("start_date"),
		EndDate:       query.Get("end_date"),
	}

	bookings, err := handler.service.Search(ctx, queryParams, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings searched successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingHistory lists the caller's finished bookings.
// @Summary Get booking history
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/bookings/history [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.History(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking history retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingStats returns the admin dashboard aggregates.
// @Summary Get booking statistics
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.StatsOverviewResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/stats/overview [get]
// @Security BearerAuth
func (handler *Handler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetBookingAnalytics returns aggregates scoped to the caller's role.
// @Summary Get booking analytics
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.StatsOverviewResponse]
// @Failure 401 {object} response.Error
// @Router /v1/bookings/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetBookingAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingAnalytics")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	analytics, err := handler.service.Analytics(ctx, userID, role)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking analytics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking analytics retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, analytics)
}

// GetBookingByID retrieves one booking with its joined details.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.GetByID(ctx, id, userID, role)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CanReviewBooking reports whether the caller may review the booking.
// @Summary Check review eligibility
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CanReviewResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/can-review [get]
// @Security BearerAuth
func (handler *Handler) CanReviewBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CanReviewBooking")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.CanReview(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check review eligibility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review eligibility checked for booking " + id)

	response.WithJSON(w, http.StatusOK, res)
}
