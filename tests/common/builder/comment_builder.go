//go:build unit

package builder

import (
	"time"

	domcomment "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/comment"
	reqdto "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/dto/request"
)

type CommentBuilder struct {
	NameSurname   string
	Email         string
	ImageURL      string
	CommentDetail string
	Rating        int
	ProductID     string
	CreatedDate   time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		NameSurname:   "Test Customer",
		Email:         "customer@example.com",
		ImageURL:      "",
		CommentDetail: "Great product!",
		Rating:        5,
		ProductID:     "p1",
		CreatedDate:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) WithRating(r int) *CommentBuilder {
	b.Rating = r
	return b
}

func (b *CommentBuilder) WithDetail(d string) *CommentBuilder {
	b.CommentDetail = d
	return b
}

func (b *CommentBuilder) BuildDomain() (domcomment.UserComment, error) {
	return domcomment.New(b.NameSurname, b.Email, b.ImageURL, b.CommentDetail, b.Rating, b.ProductID, b.CreatedDate)
}

func (b *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	return reqdto.CreateCommentRequest{
		NameSurname:   b.NameSurname,
		Email:         b.Email,
		ImageURL:      b.ImageURL,
		CommentDetail: b.CommentDetail,
		Rating:        b.Rating,
		ProductID:     b.ProductID,
	}
}
