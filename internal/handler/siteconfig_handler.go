package handler

import (
	"net/http"

	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/devfolio/devfolio/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SiteConfigHandler struct {
	configService service.SiteConfigService
}

func NewSiteConfigHandler(configService service.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{
		configService: configService,
	}
}

func (h *SiteConfigHandler) GetSiteConfig(c *gin.Context) {
	config := h.configService.Get(c.Request.Context(), c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"config": config})
}

// SaveSiteConfig overwrites the whole document; there is no partial merge.
func (h *SiteConfigHandler) SaveSiteConfig(c *gin.Context) {
	var config model.SiteConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.configService.Save(c.Request.Context(), c.Param("userId"), config); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
