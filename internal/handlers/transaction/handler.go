package transaction

import (
	"io"
	"net/http"
	"washly/infras/otel"
	bookingSvc "washly/internal/domains/booking/service"
	"washly/internal/domains/transaction/model/dto"
	"washly/internal/domains/transaction/service"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	"washly/shared/validator"
	"washly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transaction
	booking bookingSvc.Booking
	otel    otel.Otel
}

func New(service service.Transaction, booking bookingSvc.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		booking: booking,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transaction", func(routerGroup chi.Router) {
		routerGroup.Post("/initialize", handler.InitializeTransaction)
		routerGroup.Get("/callback", handler.PaymentCallback)
		routerGroup.Post("/webhook", handler.PaymentWebhook)
		routerGroup.Get("/", handler.GetTransactions)
	})
}

// InitializeTransaction starts a payment for a service.
// @Summary Initialize a transaction
// @Description Create a gateway transaction for a service and return the payment link.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body dto.InitializeTransactionRequest true "Initialize Transaction Request"
// @Success 201 {object} response.Data[dto.InitializeTransactionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/transaction/initialize [post]
// @Security BearerAuth
func (handler *Handler) InitializeTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitializeTransaction")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.InitializeTransactionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Initialize(ctx, userID, req.ServiceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initialize transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction initialized for user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// PaymentCallback is the gateway redirect target after checkout.
// @Summary Payment callback
// @Description Verify the transaction referenced by the redirect and settle the booking.
// @Tags Transaction
// @Produce json
// @Param reference query string true "Transaction reference"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/transaction/callback [get]
func (handler *Handler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaymentCallback")
	defer scope.End()

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		response.WithError(w, failure.BadRequestFromString("reference is required"))

		return
	}

	res, err := handler.booking.VerifyPayment(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to settle payment callback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment callback settled for reference " + reference)

	response.WithJSON(w, http.StatusOK, res)
}

// PaymentWebhook receives asynchronous settlement events from the gateway.
// @Summary Payment webhook
// @Description Apply a signed gateway event to the transaction ledger.
// @Tags Transaction
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Webhook processed"
// @Failure 400 {object} response.Error
// @Router /v1/transaction/webhook [post]
func (handler *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaymentWebhook")
	defer scope.End()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")

		response.WithError(w, failure.BadRequestFromString("invalid webhook"))

		return
	}

	signature := r.Header.Get(constant.RequestHeaderPaystackSignature)

	reference, err := handler.service.ApplyWebhook(ctx, payload, signature)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("webhook rejected")

		response.WithError(w, err)

		return
	}

	// Settle the booking behind the reference. The ledger entry is already
	// final, so a failure here must not turn the delivery into a retry loop.
	if _, err := handler.booking.VerifyPayment(ctx, reference); err != nil {
		log.Warn().Err(err).Str("reference", reference).Msg("failed to settle booking from webhook")
	}

	scope.AddEvent("Webhook processed")

	response.WithMessage(w, http.StatusOK, "Webhook processed")
}

// GetTransactions lists the full transaction ledger.
// @Summary Get all transactions
// @Tags Transaction
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/transaction [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	transactions, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}
