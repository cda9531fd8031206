package comment

import (
	"strings"
	"time"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errs.New("author name is required")
	ErrEmailRequired   = errs.New("author email is required")
	ErrProductRequired = errs.New("product id is required")
	ErrInvalidRating   = errs.New("rating must be between 1 and 5")
	ErrDetailTooLong   = errs.New("comment detail exceeds maximum length")
)

// UserComment is a product comment as the comment service stores it.
// Validation happens here, in the constructor: the live channel trusts any
// UserComment it is handed and never re-validates.
type UserComment struct {
	ID            uuid.UUID `json:"id,omitempty"`
	NameSurname   string    `json:"nameSurname"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CommentDetail string    `json:"commentDetail"`
	Rating        int       `json:"rating"`
	CreatedDate   time.Time `json:"createdDate"`
	ProductID     string    `json:"productId"`
}

func New(nameSurname, email, imageURL, detail string, ratingValue int, productID string, now time.Time) (UserComment, error) {
	name := strings.TrimSpace(nameSurname)
	if name == "" {
		return UserComment{}, ErrNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return UserComment{}, ErrEmailRequired
	}
	if strings.TrimSpace(productID) == "" {
		return UserComment{}, ErrProductRequired
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return UserComment{}, err
	}
	d, err := NewDetail(detail)
	if err != nil {
		return UserComment{}, err
	}

	return UserComment{
		ID:            uuid.New(),
		NameSurname:   name,
		Email:         strings.TrimSpace(email),
		ImageURL:      strings.TrimSpace(imageURL),
		CommentDetail: d.String(),
		Rating:        rating.Value(),
		CreatedDate:   now.UTC(),
		ProductID:     productID,
	}, nil
}
