package model

import "washly/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldUserID    = "user_id"
	FieldWasherID  = "washer_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

type Review struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	UserID    string  `db:"user_id"`
	WasherID  string  `db:"washer_id"`
	Rating    int     `db:"rating"`
	Comment   *string `db:"comment"`
	model.Metadata
}

// RatingSummary is the aggregate a washer's reviews roll up to.
type RatingSummary struct {
	AverageRating float64 `db:"average_rating"`
	TotalReviews  int     `db:"total_reviews"`
}
