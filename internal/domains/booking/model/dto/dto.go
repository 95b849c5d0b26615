package dto

import (
	"time"
	"washly/internal/domains/booking/model"
	txDto "washly/internal/domains/transaction/model/dto"
	"washly/shared"
	gDto "washly/shared/dto"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID         string   `json:"car_id"         validate:"required"`
	ServiceID     string   `json:"service_id"     validate:"required"`
	ScheduledTime string   `json:"scheduled_time" validate:"required"`
	Latitude      *float64 `json:"latitude"       validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude"      validate:"omitempty,longitude"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	scheduledTime, err := time.Parse(time.RFC3339, c.ScheduledTime)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		UserID:        user,
		CarID:         c.CarID,
		ServiceID:     c.ServiceID,
		ScheduledTime: scheduledTime,
		Status:        model.StatusAssigned,
		PaymentStatus: model.PaymentStatusNone,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		Version:       1,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type AssignWasherRequest struct {
	WasherID string `json:"washer_id" validate:"required,uuid"`
}

type SearchBookingRequest struct {
	Status        string `json:"status"         validate:"omitempty,oneof=pending assigned accepted declined in-progress completed paid cancelled"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=none authorized captured refunded failed"`
	UserID        string `json:"user_id"        validate:"omitempty,uuid"`
	WasherID      string `json:"washer_id"      validate:"omitempty,uuid"`
	StartDate     string `json:"start_date"     validate:"omitempty"`
	EndDate       string `json:"end_date"       validate:"omitempty"`
}

type BookingResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	CarID            string   `json:"car_id"`
	ServiceID        string   `json:"service_id"`
	ScheduledTime    string   `json:"scheduled_time"`
	Status           string   `json:"status"`
	PaymentStatus    string   `json:"payment_status"`
	PaymentReference *string  `json:"payment_reference,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	WasherResponse   *string  `json:"washer_response,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.CarID = model.CarID
	r.ServiceID = model.ServiceID
	r.ScheduledTime = model.ScheduledTime.Format(time.RFC3339)
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentReference = model.PaymentReference
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.WasherResponse = model.WasherResponse
	r.Metadata.FromModel(model.Metadata)
}

type BookingDetailResponse struct {
	BookingResponse
	ServiceName    *string  `json:"service_name,omitempty"`
	ServicePrice   *float64 `json:"service_price,omitempty"`
	WasherID       *string  `json:"washer_id,omitempty"`
	WasherName     *string  `json:"washer_name,omitempty"`
	OwnerName      *string  `json:"owner_name,omitempty"`
	OwnerEmail     *string  `json:"owner_email,omitempty"`
	CarPlateNumber *string  `json:"car_plate_number,omitempty"`
	CarMake        *string  `json:"car_make,omitempty"`
	CarModel       *string  `json:"car_model,omitempty"`
}

func (r *BookingDetailResponse) FromModel(detail model.BookingDetail) {
	r.ID = detail.ID
	r.UserID = detail.UserID
	r.CarID = detail.CarID
	r.ServiceID = detail.ServiceID
	r.ScheduledTime = detail.ScheduledTime.Format(time.RFC3339)
	r.Status = detail.Status
	r.PaymentStatus = detail.PaymentStatus
	r.PaymentReference = detail.PaymentReference
	r.Latitude = detail.Latitude
	r.Longitude = detail.Longitude
	r.WasherResponse = detail.WasherResponse
	r.Metadata.FromModel(detail.Metadata)
	r.ServiceName = detail.ServiceName
	r.ServicePrice = detail.ServicePrice
	r.WasherID = detail.WasherID
	r.WasherName = detail.WasherName
	r.OwnerName = detail.OwnerName
	r.OwnerEmail = detail.OwnerEmail
	r.CarPlateNumber = detail.CarPlateNumber
	r.CarMake = detail.CarMake
	r.CarModel = detail.CarModel
}

type GetBookingsResponse struct {
	Bookings  []BookingDetailResponse `json:"bookings"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingDetailResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ApproveBookingResponse struct {
	Booking     BookingResponse                     `json:"booking"`
	Transaction txDto.InitializeTransactionResponse `json:"transaction"`
}

type CompleteBookingResponse struct {
	Message string `json:"message"`
}

type CanReviewResponse struct {
	CanReview bool `json:"can_review"`
}

type StatsOverviewResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	PaidBookings      int     `json:"paid_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalRevenue      float64 `json:"total_revenue"`
}

func (r *StatsOverviewResponse) FromModel(stats model.StatsOverview) {
	r.TotalBookings = stats.TotalBookings
	r.CompletedBookings = stats.CompletedBookings
	r.PaidBookings = stats.PaidBookings
	r.CancelledBookings = stats.CancelledBookings
	r.TotalRevenue = stats.TotalRevenue

	if stats.TotalBookings > 0 {
		r.CompletionRate = float64(stats.CompletedBookings+stats.PaidBookings) / float64(stats.TotalBookings)
	}
}
