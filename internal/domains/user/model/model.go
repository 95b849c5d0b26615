package model

import "washly/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldRole          = "role"
	FieldFullName      = "full_name"
	FieldPhoneNumber   = "phone_number"
	FieldProfileImage  = "profile_image"
	FieldAccountNumber = "account_number"
	FieldAccountName   = "account_name"
	FieldIsVerified    = "is_verified"
	FieldLastLogin     = "last_login"
	FieldActive        = "active"
)

type User struct {
	ID            string  `db:"id"`
	Email         string  `db:"email"`
	Password      string  `db:"password"`
	Role          string  `db:"role"`
	FullName      *string `db:"full_name"`
	PhoneNumber   *string `db:"phone_number"`
	ProfileImage  *string `db:"profile_image"`
	AccountNumber *string `db:"account_number"`
	AccountName   *string `db:"account_name"`
	IsVerified    bool    `db:"is_verified"`
	LastLogin     *string `db:"last_login"`
	Active        bool    `db:"active"`
	model.Metadata
}
