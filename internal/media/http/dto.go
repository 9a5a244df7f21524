package http

import (
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/media"
)

type ImageResponse struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	Caption      *string   `json:"caption"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewImageResponse(img *media.Image) ImageResponse {
	resp := ImageResponse{
		ID:          img.ID,
		ProviderID:  img.ProviderID,
		Caption:     img.Caption,
		URL:         media.ImageURL(img.ID),
		ContentType: img.ContentType,
		Size:        img.Size,
		CreatedAt:   img.CreatedAt,
	}
	if img.ThumbnailPath != nil {
		u := media.ThumbnailURL(img.ID)
		resp.ThumbnailURL = &u
	}
	return resp
}
