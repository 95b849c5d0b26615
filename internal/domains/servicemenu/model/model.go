package model

import "washly/shared/model"

const (
	TableName  = "service_menus"
	EntityName = "service_menu"

	FieldID          = "id"
	FieldWasherID    = "washer_id"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldIsActive    = "is_active"
)

type ServiceMenu struct {
	ID          string  `db:"id"`
	WasherID    *string `db:"washer_id"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	Description *string `db:"description"`
	IsActive    bool    `db:"is_active"`
	model.Metadata
}
