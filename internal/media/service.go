package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/storage"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

const (
	thumbnailMaxWidth  = 400
	thumbnailMaxHeight = 400
)

type Service interface {
	Upload(ctx context.Context, userID, providerID string, header *multipart.FileHeader, caption *string) (*Image, error)
	ListByProvider(ctx context.Context, providerID string) ([]Image, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Image, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Image, error)
	Delete(ctx context.Context, id, userID string) error
}

type service struct {
	repo        Repository
	providerSvc provider.Service
	storage     storage.Storage
	images      *storage.ImageProcessor
	logger      *zap.Logger
}

func NewService(repo Repository, providerSvc provider.Service, store storage.Storage, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		providerSvc: providerSvc,
		storage:     store,
		images:      storage.NewImageProcessor(),
		logger:      logger,
	}
}

func (s *service) Upload(ctx context.Context, userID, providerID string, header *multipart.FileHeader, caption *string) (*Image, error) {
	p, err := s.providerSvc.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	if header.Size > MaxImageSizeBytes {
		return nil, ErrImageTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffered so the bytes can be read twice: once for the original, once
	// for the thumbnail. Portfolio images are small enough for this.
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}

	imageID := uuid.New().String()
	shard := imageID[:2]
	ext := strings.ToLower(filepath.Ext(header.Filename))
	storagePath := fmt.Sprintf("portfolio/%s/%s%s", shard, imageID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("save image failed: %w", err)
	}

	var thumbnailPath *string
	if thumb, err := s.images.Thumbnail(bytes.NewReader(content), thumbnailMaxWidth, thumbnailMaxHeight); err != nil {
		// A failed thumbnail never fails the upload.
		s.logger.Warn("thumbnail generation failed", zap.String("image_id", imageID), zap.Error(err))
	} else {
		tPath := fmt.Sprintf("portfolio/%s/%s_thumb.jpg", shard, imageID)
		if err := s.storage.Save(ctx, tPath, thumb); err != nil {
			s.logger.Warn("thumbnail save failed", zap.String("image_id", imageID), zap.Error(err))
		} else {
			thumbnailPath = &tPath
		}
	}

	img := &Image{
		ID:            imageID,
		ProviderID:    providerID,
		Caption:       caption,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, img); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}
	return img, nil
}

func (s *service) ListByProvider(ctx context.Context, providerID string) ([]Image, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, img.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve image failed: %w", err)
	}
	return stream, img, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if img.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *img.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail failed: %w", err)
	}
	return stream, img, nil
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p, err := s.providerSvc.GetByID(ctx, img.ProviderID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrNotOwner
	}

	if err := s.storage.Delete(ctx, img.StoragePath); err != nil {
		s.logger.Warn("image blob delete failed", zap.String("image_id", id), zap.Error(err))
	}
	if img.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *img.ThumbnailPath)
	}
	return s.repo.Delete(ctx, id)
}
