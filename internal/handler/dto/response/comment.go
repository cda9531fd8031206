package response

import (
	"time"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/comment"
)

type CommentResponse struct {
	ID            string    `json:"id"`
	NameSurname   string    `json:"nameSurname"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CommentDetail string    `json:"commentDetail"`
	Rating        int       `json:"rating"`
	CreatedDate   time.Time `json:"createdDate"`
	ProductID     string    `json:"productId"`
}

func FromComment(c comment.UserComment) CommentResponse {
	return CommentResponse{
		ID:            c.ID.String(),
		NameSurname:   c.NameSurname,
		Email:         c.Email,
		ImageURL:      c.ImageURL,
		CommentDetail: c.CommentDetail,
		Rating:        c.Rating,
		CreatedDate:   c.CreatedDate,
		ProductID:     c.ProductID,
	}
}

func FromComments(list []comment.UserComment) []CommentResponse {
	out := make([]CommentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromComment(c))
	}
	return out
}
