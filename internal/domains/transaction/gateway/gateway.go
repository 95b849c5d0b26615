package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"washly/config"
	"washly/infras/otel"
	"washly/internal/domains/transaction/model/dto"
	"washly/shared/constant"
	"washly/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL        = "https://api.paystack.co"
	defaultTimeoutSeconds = 10

	pathInitialize = "/transaction/initialize"
	pathVerify     = "/transaction/verify/"
)

// Paystack is the outbound payment gateway client. Every call carries the
// request context and the client's hard timeout.
type Paystack interface {
	Initialize(ctx context.Context, req dto.PaystackInitializeRequest) (dto.PaystackInitializeData, error)
	Verify(ctx context.Context, reference string) (dto.PaystackVerifyData, error)
}

type paystackImpl struct {
	client  *http.Client
	baseURL string
	secret  string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Paystack {
	baseURL := cfg.External.Paystack.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.External.Paystack.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &paystackImpl{
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL: baseURL,
		secret:  cfg.External.Paystack.SecretKey,
		otel:    otel,
	}
}

func (g *paystackImpl) Initialize(ctx context.Context, req dto.PaystackInitializeRequest) (data dto.PaystackInitializeData, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.Initialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(req)
	if err != nil {
		return data, failure.InternalError(fmt.Errorf("failed to marshal initialize request: %w", err))
	}

	var envelope dto.PaystackInitializeResponse
	if err = g.call(ctx, http.MethodPost, pathInitialize, bytes.NewReader(body), &envelope); err != nil {
		return data, err
	}

	if !envelope.Status {
		log.Error().Str("message", envelope.Message).Msg("paystack rejected initialize request")

		return data, failure.BadRequestFromString("payment gateway rejected the transaction")
	}

	return envelope.Data, nil
}

func (g *paystackImpl) Verify(ctx context.Context, reference string) (data dto.PaystackVerifyData, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	var envelope dto.PaystackVerifyResponse
	if err = g.call(ctx, http.MethodGet, pathVerify+reference, nil, &envelope); err != nil {
		return data, err
	}

	if !envelope.Status {
		log.Error().Str("message", envelope.Message).Msg("paystack rejected verify request")

		return data, failure.BadRequestFromString("payment gateway could not verify the transaction")
	}

	return envelope.Data, nil
}

func (g *paystackImpl) call(ctx context.Context, method, path string, body io.Reader, out any) error {
	request, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return failure.InternalError(fmt.Errorf("failed to build gateway request: %w", err))
	}

	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+g.secret)
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	response, err := g.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("payment gateway unreachable")

		return failure.ServiceUnavailable("payment gateway unreachable")
	}
	defer response.Body.Close()

	if err := classifyStatus(response.StatusCode); err != nil {
		log.Error().Int("status", response.StatusCode).Str("path", path).Msg("payment gateway returned error status")

		return err
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode gateway response")

		return failure.ServiceUnavailable("payment gateway returned a malformed response")
	}

	return nil
}

// classifyStatus maps gateway HTTP status codes onto the failure taxonomy:
// bad credentials are Unauthorized, other client errors BadRequest, anything
// on the gateway's side ServiceUnavailable.
func classifyStatus(code int) error {
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusUnauthorized:
		return failure.Unauthorized("payment gateway rejected credentials")
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return failure.BadRequestFromString("payment gateway rejected the request")
	default:
		return failure.ServiceUnavailable("payment gateway error")
	}
}
