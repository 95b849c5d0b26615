package dto

import (
	"washly/internal/domains/car/model"
	"washly/shared"
	gDto "washly/shared/dto"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Make        string  `json:"make"         validate:"required,max=50"`
	Model       string  `json:"model"        validate:"required,max=50"`
	Color       string  `json:"color"        validate:"required,max=30"`
	PlateNumber string  `json:"plate_number" validate:"required,max=20"`
	Type        string  `json:"type"         validate:"required,max=30"`
	PictureURL  *string `json:"picture_url,omitempty"`
}

func (c *CreateCarRequest) ToModel(userID string) model.Car {
	return model.Car{
		ID:          uuid.NewString(),
		UserID:      userID,
		Make:        c.Make,
		Model:       c.Model,
		Color:       c.Color,
		PlateNumber: c.PlateNumber,
		Type:        c.Type,
		PictureURL:  c.PictureURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateCarRequest struct {
	Make        string  `json:"make"         db:"make"         validate:"omitempty,max=50"`
	Model       string  `json:"model"        db:"model"        validate:"omitempty,max=50"`
	Color       string  `json:"color"        db:"color"        validate:"omitempty,max=30"`
	PlateNumber string  `json:"plate_number" db:"plate_number" validate:"omitempty,max=20"`
	Type        string  `json:"type"         db:"type"         validate:"omitempty,max=30"`
	PictureURL  *string `json:"picture_url,omitempty" db:"picture_url"`
}

type CarResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Color       string  `json:"color"`
	PlateNumber string  `json:"plate_number"`
	Type        string  `json:"type"`
	PictureURL  *string `json:"picture_url,omitempty"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(model model.Car) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Make = model.Make
	r.Model = model.Model
	r.Color = model.Color
	r.PlateNumber = model.PlateNumber
	r.Type = model.Type
	r.PictureURL = model.PictureURL
	r.Metadata.FromModel(model.Metadata)
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(models []model.Car, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(models))
	for i, mod := range models {
		r.Cars[i].FromModel(mod)
	}
}
