package comment

import "strings"

const (
	MinRating = 1
	MaxRating = 5

	MaxDetailLength = 1000
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Detail struct {
	text string
}

func NewDetail(s string) (Detail, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxDetailLength {
		return Detail{}, ErrDetailTooLong
	}
	return Detail{text: t}, nil
}

func (d Detail) String() string { return d.text }
