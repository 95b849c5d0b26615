package model

import "washly/shared/model"

const (
	TableName  = "washers"
	EntityName = "washer"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldKYCStatus     = "kyc_status"
	FieldIDPhotoURL    = "id_photo_url"
	FieldLatitude      = "latitude"
	FieldLongitude     = "longitude"
	FieldIsAvailable   = "is_available"
	FieldAverageRating = "average_rating"
	FieldTotalReviews  = "total_reviews"
)

const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

type Washer struct {
	ID            string   `db:"id"`
	UserID        string   `db:"user_id"`
	KYCStatus     string   `db:"kyc_status"`
	IDPhotoURL    *string  `db:"id_photo_url"`
	Latitude      *float64 `db:"latitude"`
	Longitude     *float64 `db:"longitude"`
	IsAvailable   bool     `db:"is_available"`
	AverageRating float64  `db:"average_rating"`
	TotalReviews  int      `db:"total_reviews"`
	model.Metadata
}
