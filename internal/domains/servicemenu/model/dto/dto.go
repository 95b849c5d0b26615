package dto

import (
	"washly/internal/domains/servicemenu/model"
	"washly/shared"
	gDto "washly/shared/dto"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceMenuRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (c *CreateServiceMenuRequest) ToModel(washerID, username string) model.ServiceMenu {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	var washer *string
	if washerID != "" {
		washer = &washerID
	}

	return model.ServiceMenu{
		ID:          uuid.NewString(),
		WasherID:    washer,
		Name:        c.Name,
		Price:       c.Price,
		Description: c.Description,
		IsActive:    isActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateServiceMenuRequest struct {
	Name        string   `json:"name"        db:"name"        validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty"       db:"price"       validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" db:"description"`
	IsActive    *bool    `json:"is_active,omitempty"   db:"is_active"`
}

type ServiceMenuResponse struct {
	ID          string  `json:"id"`
	WasherID    *string `json:"washer_id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	gDto.Metadata
}

func (r *ServiceMenuResponse) FromModel(model model.ServiceMenu) {
	r.ID = model.ID
	r.WasherID = model.WasherID
	r.Name = model.Name
	r.Price = model.Price
	r.Description = model.Description
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceMenusResponse struct {
	Services  []ServiceMenuResponse `json:"services"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetServiceMenusResponse) FromModels(models []model.ServiceMenu, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceMenuResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
