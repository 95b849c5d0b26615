package dto

import (
	"washly/internal/domains/user/model"
	"washly/shared"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email         string  `json:"email"                    validate:"required,email"`
	Password      string  `json:"password"                 validate:"required,min=8"`
	Role          string  `json:"role"                     validate:"omitempty,oneof=user washer admin"`
	FullName      *string `json:"full_name,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"   validate:"omitempty,max=20"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	AccountNumber *string `json:"account_number,omitempty" validate:"omitempty,max=20"`
	AccountName   *string `json:"account_name,omitempty"   validate:"omitempty,max=100"`
	IsVerified    *bool   `json:"is_verified,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return model.User{
		ID:            uuid.NewString(),
		Email:         r.Email,
		Password:      hashedPassword,
		Role:          role,
		FullName:      r.FullName,
		PhoneNumber:   r.PhoneNumber,
		ProfileImage:  r.ProfileImage,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		IsVerified:    isVerified,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	FullName      *string `json:"full_name,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	AccountName   *string `json:"account_name,omitempty"`
	IsVerified    bool    `json:"is_verified"`
	LastLogin     *string `json:"last_login,omitempty"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.PhoneNumber = model.PhoneNumber
	r.ProfileImage = model.ProfileImage
	r.AccountNumber = model.AccountNumber
	r.AccountName = model.AccountName
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role          *string `json:"role,omitempty"           db:"role"           validate:"omitempty,oneof=user washer admin"`
	FullName      *string `json:"full_name,omitempty"      db:"full_name"`
	PhoneNumber   *string `json:"phone_number,omitempty"   db:"phone_number"   validate:"omitempty,max=20"`
	ProfileImage  *string `json:"profile_image,omitempty"  db:"profile_image"`
	AccountNumber *string `json:"account_number,omitempty" db:"account_number" validate:"omitempty,max=20"`
	AccountName   *string `json:"account_name,omitempty"   db:"account_name"   validate:"omitempty,max=100"`
	IsVerified    *bool   `json:"is_verified,omitempty"    db:"is_verified"`
	Active        *bool   `json:"active,omitempty"         db:"active"`
}

type UpdateProfileRequest struct {
	FullName      *string `json:"full_name,omitempty"      db:"full_name"`
	PhoneNumber   *string `json:"phone_number,omitempty"   db:"phone_number"   validate:"omitempty,max=20"`
	ProfileImage  *string `json:"profile_image,omitempty"  db:"profile_image"`
	AccountNumber *string `json:"account_number,omitempty" db:"account_number" validate:"omitempty,max=20"`
	AccountName   *string `json:"account_name,omitempty"   db:"account_name"   validate:"omitempty,max=100"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
