package photos

import (
	"errors"
	"time"
)

// ErrPhotoStorageDisabled is returned when an image upload is attempted
// without object storage configured.
var ErrPhotoStorageDisabled = errors.New("photo storage disabled")

type Photo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ImageURL  string    `json:"imageUrl"`
	Caption   *string   `json:"caption"`
	Timestamp time.Time `json:"timestamp"`
}
