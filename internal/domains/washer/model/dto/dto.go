package dto

import (
	"washly/internal/domains/washer/model"
	"washly/shared"
	gDto "washly/shared/dto"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
)

type CreateWasherRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"  validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

func (c *CreateWasherRequest) ToModel(userID string) model.Washer {
	return model.Washer{
		ID:          uuid.NewString(),
		UserID:      userID,
		KYCStatus:   model.KYCStatusPending,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		IsAvailable: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateWasherRequest struct {
	Latitude    *float64 `json:"latitude,omitempty"     db:"latitude"     validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty"    db:"longitude"    validate:"omitempty,longitude"`
	IsAvailable *bool    `json:"is_available,omitempty" db:"is_available"`
}

type ReviewKYCRequest struct {
	KYCStatus string `json:"kyc_status" db:"kyc_status" validate:"required,oneof=approved rejected"`
}

type WasherResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	KYCStatus     string   `json:"kyc_status"`
	IDPhotoURL    *string  `json:"id_photo_url,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IsAvailable   bool     `json:"is_available"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	gDto.Metadata
}

func (r *WasherResponse) FromModel(model model.Washer) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.KYCStatus = model.KYCStatus
	r.IDPhotoURL = model.IDPhotoURL
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.IsAvailable = model.IsAvailable
	r.AverageRating = model.AverageRating
	r.TotalReviews = model.TotalReviews
	r.Metadata.FromModel(model.Metadata)
}

type UploadKYCPhotoResponse struct {
	URL string `json:"url"`
}

type GetWashersResponse struct {
	Washers   []WasherResponse `json:"washers"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetWashersResponse) FromModels(models []model.Washer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Washers = make([]WasherResponse, len(models))
	for i, mod := range models {
		r.Washers[i].FromModel(mod)
	}
}
