package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/pkg/apperror"
	"github.com/devfolio/devfolio/pkg/storage"
	"github.com/google/uuid"
)

// MaxUploadSize caps presigned uploads at 250 MiB.
const MaxUploadSize = 250 * 1024 * 1024

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
}

type UploadService interface {
	Presign(ctx context.Context, input dto.PresignRequest) (*dto.PresignResponse, error)
}

type uploadService struct {
	presigner storage.Presigner
	expiry    time.Duration
}

func NewUploadService(presigner storage.Presigner, expiry time.Duration) UploadService {
	if expiry <= 0 {
		expiry = 60 * time.Second
	}

	return &uploadService{
		presigner: presigner,
		expiry:    expiry,
	}
}

func (s *uploadService) Presign(ctx context.Context, input dto.PresignRequest) (*dto.PresignResponse, error) {
	if !allowedUploadTypes[input.ContentType] {
		return nil, apperror.New(400, "Unsupported file type", apperror.ErrInvalidInput)
	}
	if input.Size > MaxUploadSize {
		return nil, apperror.New(400, "File too large", apperror.ErrInvalidInput)
	}
	if s.presigner == nil {
		return nil, apperror.ErrInternal
	}

	key := fmt.Sprintf("uploads/%s-%s", uuid.NewString(), input.Filename)

	url, err := s.presigner.PresignUpload(ctx, key, input.ContentType, s.expiry)
	if err != nil {
		return nil, err
	}

	return &dto.PresignResponse{URL: url, Key: key}, nil
}
