package transaction_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	otelMocks "washly/infras/otel/mocks"
	bookingDto "washly/internal/domains/booking/model/dto"
	bookingMocks "washly/internal/domains/booking/service/mocks"
	txMocks "washly/internal/domains/transaction/service/mocks"
	"washly/internal/handlers/transaction"
	"washly/shared/constant"
	"washly/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type webhookHandlerFixture struct {
	service *txMocks.MockTransaction
	booking *bookingMocks.MockBooking
	router  chi.Router
}

func newWebhookHandlerFixture(t *testing.T) webhookHandlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := txMocks.NewMockTransaction(ctrl)
	booking := bookingMocks.NewMockBooking(ctrl)

	handler := transaction.New(service, booking, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return webhookHandlerFixture{
		service: service,
		booking: booking,
		router:  router,
	}
}

func (f webhookHandlerFixture) post(body, signature string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/transaction/webhook", strings.NewReader(body))
	request.Header.Set(constant.RequestHeaderPaystackSignature, signature)

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	return recorder
}

func TestTransactionHandler_PaymentWebhook(t *testing.T) {
	payload := `{"event":"charge.success","data":{"reference":"ref-123","status":"success"}}`

	t.Run("successful event settles the booking behind the reference", func(t *testing.T) {
		fixture := newWebhookHandlerFixture(t)

		fixture.service.EXPECT().
			ApplyWebhook(gomock.Any(), []byte(payload), "sig").
			Return("ref-123", nil)

		fixture.booking.EXPECT().
			VerifyPayment(gomock.Any(), "ref-123").
			Return(bookingDto.BookingResponse{ID: "booking-1", Status: "paid"}, nil)

		recorder := fixture.post(payload, "sig")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("booking settlement failure still acknowledges the delivery", func(t *testing.T) {
		fixture := newWebhookHandlerFixture(t)

		fixture.service.EXPECT().
			ApplyWebhook(gomock.Any(), []byte(payload), "sig").
			Return("ref-123", nil)

		fixture.booking.EXPECT().
			VerifyPayment(gomock.Any(), "ref-123").
			Return(bookingDto.BookingResponse{}, failure.Unauthorized("payment has not been completed"))

		recorder := fixture.post(payload, "sig")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("rejected event never reaches the booking", func(t *testing.T) {
		fixture := newWebhookHandlerFixture(t)

		fixture.service.EXPECT().
			ApplyWebhook(gomock.Any(), []byte(payload), "bad-sig").
			Return("", failure.BadRequestFromString("invalid webhook"))

		recorder := fixture.post(payload, "bad-sig")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
