package middleware

import (
	"strings"

	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

const siteContextKey = "site_context"

// Reserved first segments that never name a user site.
var reservedSegments = map[string]bool{
	"admin":  true,
	"signup": true,
	"login":  true,
	"api":    true,
	"static": true,
}

// DeriveUserFromPath resolves which user's site a URL path addresses: the
// first path segment, unless it is reserved or absent.
func DeriveUserFromPath(path string) (string, bool) {
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		if reservedSegments[part] {
			return "", false
		}
		return part, true
	}

	return "", false
}

// SiteContext is the per-request view state shared by the public pages:
// whose site is being viewed and that user's configuration.
type SiteContext struct {
	CurrentUserID string
	Config        *model.SiteConfig
}

// SiteConfigContext derives the current user from the URL and loads their
// site configuration (defaults when absent). The admin flow bypasses this
// and sets the active user from the session instead.
func SiteConfigContext(configs service.SiteConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := SiteContext{}

		if userID, ok := DeriveUserFromPath(c.Request.URL.Path); ok {
			sc.CurrentUserID = userID
			sc.Config = configs.Get(c.Request.Context(), userID)
		} else {
			defaults := model.DefaultSiteConfig()
			sc.Config = &defaults
		}

		c.Set(siteContextKey, sc)
		c.Next()
	}
}

// GetSiteContext returns the context stored by SiteConfigContext, or a
// default-config context when the middleware did not run.
func GetSiteContext(c *gin.Context) SiteContext {
	if v, ok := c.Get(siteContextKey); ok {
		if sc, ok := v.(SiteContext); ok {
			return sc
		}
	}

	defaults := model.DefaultSiteConfig()
	return SiteContext{Config: &defaults}
}
