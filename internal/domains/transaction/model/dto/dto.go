package dto

import (
	"washly/internal/domains/transaction/model"
	"washly/shared"
	gDto "washly/shared/dto"
)

// Paystack wire envelopes.

type PaystackInitializeRequest struct {
	Email       string           `json:"email"`
	Amount      string           `json:"amount"`
	CallbackURL string           `json:"callback_url,omitempty"`
	Metadata    PaystackMetadata `json:"metadata,omitempty"`
}

type PaystackMetadata struct {
	CustomFields []PaystackCustomField `json:"custom_fields,omitempty"`
}

type PaystackCustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

type PaystackInitializeResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    PaystackInitializeData `json:"data"`
}

type PaystackInitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type PaystackVerifyResponse struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    PaystackVerifyData `json:"data"`
}

type PaystackVerifyData struct {
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"`
	TransactionDate string `json:"transaction_date"`
	GatewayResponse string `json:"gateway_response"`
}

// PaystackWebhookEvent is the body Paystack posts to the webhook endpoint.
type PaystackWebhookEvent struct {
	Event string              `json:"event"`
	Data  PaystackWebhookData `json:"data"`
}

type PaystackWebhookData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	PaidAt    string `json:"paid_at"`
}

// Ledger responses.

type InitializeTransactionRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
}

type InitializeTransactionResponse struct {
	Reference   string  `json:"reference"`
	PaymentLink string  `json:"payment_link"`
	Amount      float64 `json:"amount"`
}

type VerifyTransactionResponse struct {
	Reference       string  `json:"reference"`
	Status          string  `json:"status"`
	GatewayStatus   string  `json:"gateway_status"`
	TransactionDate *string `json:"transaction_date,omitempty"`
	Amount          float64 `json:"amount"`
}

func (r *VerifyTransactionResponse) FromSettled(model model.Transaction) {
	r.Reference = model.TransactionReference
	r.Status = model.Status
	if model.TransactionStatus != nil {
		r.GatewayStatus = *model.TransactionStatus
	}
	r.TransactionDate = model.TransactionDate
	r.Amount = model.Amount
}

type TransactionResponse struct {
	ID                   string  `json:"id"`
	TransactionReference string  `json:"transaction_reference"`
	PaymentLink          string  `json:"payment_link"`
	TransactionStatus    *string `json:"transaction_status,omitempty"`
	Status               string  `json:"status"`
	TransactionDate      *string `json:"transaction_date,omitempty"`
	Amount               float64 `json:"amount"`
	ServiceID            string  `json:"service_id"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(model model.Transaction) {
	r.ID = model.ID
	r.TransactionReference = model.TransactionReference
	r.PaymentLink = model.PaymentLink
	r.TransactionStatus = model.TransactionStatus
	r.Status = model.Status
	r.TransactionDate = model.TransactionDate
	r.Amount = model.Amount
	r.ServiceID = model.ServiceID
	r.Metadata.FromModel(model.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}
