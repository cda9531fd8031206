package request

type CreateCommentRequest struct {
	NameSurname   string `json:"nameSurname" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	ImageURL      string `json:"imageUrl"`
	CommentDetail string `json:"commentDetail"`
	Rating        int    `json:"rating" binding:"required,gte=1,lte=5"`
	ProductID     string `json:"productId" binding:"required"`
}
