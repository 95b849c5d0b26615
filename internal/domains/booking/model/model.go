package model

import (
	"time"
	"washly/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldCarID            = "car_id"
	FieldServiceID        = "service_id"
	FieldScheduledTime    = "scheduled_time"
	FieldStatus           = "status"
	FieldPaymentStatus    = "payment_status"
	FieldPaymentReference = "payment_reference"
	FieldLatitude         = "latitude"
	FieldLongitude        = "longitude"
	FieldWasherResponse   = "washer_response"
	FieldVersion          = "version"
)

const (
	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusAccepted   = "accepted"
	StatusDeclined   = "declined"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusPaid       = "paid"
	StatusCancelled  = "cancelled"

	PaymentStatusNone       = "none"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusFailed     = "failed"

	WasherResponseAccepted = "accepted"
	WasherResponseDeclined = "declined"
)

// ActiveStatuses are the states that keep a car occupied. A car may hold at
// most one booking in any of these states.
var ActiveStatuses = []string{StatusPending, StatusAssigned, StatusAccepted, StatusInProgress}

type Booking struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	CarID            string    `db:"car_id"`
	ServiceID        string    `db:"service_id"`
	ScheduledTime    time.Time `db:"scheduled_time"`
	Status           string    `db:"status"`
	PaymentStatus    string    `db:"payment_status"`
	PaymentReference *string   `db:"payment_reference"`
	Latitude         *float64  `db:"latitude"`
	Longitude        *float64  `db:"longitude"`
	WasherResponse   *string   `db:"washer_response"`
	Version          int       `db:"version"`
	model.Metadata
}

// BookingDetail is the read projection joined across the service, washer,
// owner and car tables. Washer columns are nullable, a service may have no
// washer attached.
type BookingDetail struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	CarID            string    `db:"car_id"`
	ServiceID        string    `db:"service_id"`
	ScheduledTime    time.Time `db:"scheduled_time"`
	Status           string    `db:"status"`
	PaymentStatus    string    `db:"payment_status"`
	PaymentReference *string   `db:"payment_reference"`
	Latitude         *float64  `db:"latitude"`
	Longitude        *float64  `db:"longitude"`
	WasherResponse   *string   `db:"washer_response"`
	Version          int       `db:"version"`
	ServiceName      *string   `db:"service_name"      table:"service_menus" column:"name"`
	ServicePrice     *float64  `db:"service_price"     table:"service_menus" column:"price"`
	WasherID         *string   `db:"washer_id"         table:"washers"       column:"id"`
	WasherUserID     *string   `db:"washer_user_id"    table:"washers"       column:"user_id"`
	WasherName       *string   `db:"washer_name"       table:"washer_users"  column:"full_name"`
	OwnerName        *string   `db:"owner_name"        table:"owners"        column:"full_name"`
	OwnerEmail       *string   `db:"owner_email"       table:"owners"        column:"email"`
	CarPlateNumber   *string   `db:"car_plate_number"  table:"cars"          column:"plate_number"`
	CarMake          *string   `db:"car_make"          table:"cars"          column:"make"`
	CarModel         *string   `db:"car_model"         table:"cars"          column:"model"`
	model.Metadata
}

func (BookingDetail) GetJoinQuery() string {
	return ` LEFT JOIN service_menus ON service_menus.id = bookings.service_id
		LEFT JOIN washers ON washers.id = service_menus.washer_id
		LEFT JOIN users AS washer_users ON washer_users.id = washers.user_id
		LEFT JOIN users AS owners ON owners.id = bookings.user_id
		LEFT JOIN cars ON cars.id = bookings.car_id `
}

// StatsOverview is the admin dashboard aggregate.
type StatsOverview struct {
	TotalBookings     int     `db:"total_bookings"`
	CompletedBookings int     `db:"completed_bookings"`
	PaidBookings      int     `db:"paid_bookings"`
	CancelledBookings int     `db:"cancelled_bookings"`
	TotalRevenue      float64 `db:"total_revenue"`
}
