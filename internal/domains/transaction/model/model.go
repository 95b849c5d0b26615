package model

import "washly/shared/model"

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID                   = "id"
	FieldTransactionReference = "transaction_reference"
	FieldPaymentLink          = "payment_link"
	FieldTransactionStatus    = "transaction_status"
	FieldStatus               = "status"
	FieldTransactionDate      = "transaction_date"
	FieldAmount               = "amount"
	FieldServiceID            = "service_id"
	FieldVersion              = "version"
)

// Ledger settlement states. TransactionStatus keeps the raw gateway string,
// Status is the ledger's own verdict.
const (
	StatusPaid    = "paid"
	StatusNotPaid = "not_paid"

	GatewayStatusSuccess = "success"
)

type Transaction struct {
	ID                   string  `db:"id"`
	TransactionReference string  `db:"transaction_reference"`
	PaymentLink          string  `db:"payment_link"`
	TransactionStatus    *string `db:"transaction_status"`
	Status               string  `db:"status"`
	TransactionDate      *string `db:"transaction_date"`
	Amount               float64 `db:"amount"`
	ServiceID            string  `db:"service_id"`
	Version              int     `db:"version"`
	model.Metadata
}
