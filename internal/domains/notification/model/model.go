package model

import "washly/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldTitle   = "title"
	FieldMessage = "message"
	FieldStatus  = "status"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

type Notification struct {
	ID      string `db:"id"`
	UserID  string `db:"user_id"`
	Title   string `db:"title"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}
