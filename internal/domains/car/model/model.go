package model

import "washly/shared/model"

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldMake        = "make"
	FieldModel       = "model"
	FieldColor       = "color"
	FieldPlateNumber = "plate_number"
	FieldType        = "type"
	FieldPictureURL  = "picture_url"
)

type Car struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	Make        string  `db:"make"`
	Model       string  `db:"model"`
	Color       string  `db:"color"`
	PlateNumber string  `db:"plate_number"`
	Type        string  `db:"type"`
	PictureURL  *string `db:"picture_url"`
	model.Metadata
}
