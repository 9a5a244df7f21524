package media

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "image not found")
	ErrNotOwner      = apperror.New(http.StatusForbidden, "not the owner of this image")
	ErrNotAnImage    = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrNoThumbnail   = apperror.New(http.StatusNotFound, "no thumbnail for this image")
	ErrImageTooLarge = apperror.New(http.StatusBadRequest, "image exceeds the maximum allowed size")
)

// MaxImageSizeBytes caps portfolio uploads.
const MaxImageSizeBytes = 10 << 20

// Image is one provider portfolio photo. Storage paths are internal and
// never leave the backend; clients address images by ID.
type Image struct {
	ID            string
	ProviderID    string
	Caption       *string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// ImageURL returns the public URL serving the full-size image.
func ImageURL(id string) string {
	return "/portfolio/" + id + "/image"
}

// ThumbnailURL returns the public URL serving the image's thumbnail.
func ThumbnailURL(id string) string {
	return "/portfolio/" + id + "/thumbnail"
}
