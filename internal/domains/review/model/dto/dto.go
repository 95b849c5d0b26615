package dto

import (
	"washly/internal/domains/review/model"
	"washly/shared"
	gDto "washly/shared/dto"
	gModel "washly/shared/model"
	"washly/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int     `json:"rating"            validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,min=1,max=500"`
}

func (c *CreateReviewRequest) ToModel(bookingID, washerID, userID string) model.Review {
	return model.Review{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		UserID:    userID,
		WasherID:  washerID,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  int     `json:"rating"            db:"rating"  validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" db:"comment" validate:"omitempty,min=1,max=500"`
}

type ReviewResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	UserID    string  `json:"user_id"`
	WasherID  string  `json:"washer_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.UserID = model.UserID
	r.WasherID = model.WasherID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
