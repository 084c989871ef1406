package handler

import (
	"net/http"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/devfolio/devfolio/pkg/apperror"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/devfolio/devfolio/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService service.UploadService
	limiter       *service.RateLimiter
}

func NewUploadHandler(uploadService service.UploadService, limiter *service.RateLimiter) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		limiter:       limiter,
	}
}

// Presign validates an upload request and returns a short-lived URL for a
// direct PUT to object storage. The URL expires 60 seconds after issuance,
// independent of any in-flight upload.
func (h *UploadHandler) Presign(c *gin.Context) {
	var input dto.PresignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			response.Error(c, err)
			return
		}
		if !allowed {
			response.Error(c, apperror.ErrRateLimitExceeded)
			return
		}
	}

	res, err := h.uploadService.Presign(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
