package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/devfolio/devfolio/internal/i18n"
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/render"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/devfolio/devfolio/internal/session"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates into the router.
func LoadTemplates(router *gin.Engine) {
	funcs := template.FuncMap{
		"t": func(lang i18n.Lang, key string) string {
			return i18n.T(lang, key)
		},
		"content": func(lang i18n.Lang, p *model.Project) template.HTML {
			return render.HTML(p.Content(string(lang)))
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)
}

// PageHandler renders the public pages and the admin dashboard shell. Pages
// read the site context resolved from the URL; the admin page takes its
// active user from the session cookie instead.
type PageHandler struct {
	userService    service.UserService
	projectService service.ProjectService
	configService  service.SiteConfigService
	authService    service.AuthService
}

func NewPageHandler(
	userService service.UserService,
	projectService service.ProjectService,
	configService service.SiteConfigService,
	authService service.AuthService,
) *PageHandler {
	return &PageHandler{
		userService:    userService,
		projectService: projectService,
		configService:  configService,
		authService:    authService,
	}
}

func (h *PageHandler) pageData(c *gin.Context) gin.H {
	sc := middleware.GetSiteContext(c)
	return gin.H{
		"Lang":   i18n.FromRequest(c),
		"UserID": sc.CurrentUserID,
		"Config": sc.Config,
	}
}

// Landing lists every registered portfolio.
func (h *PageHandler) Landing(c *gin.Context) {
	data := h.pageData(c)
	data["Users"] = h.userService.List(c.Request.Context())
	c.HTML(http.StatusOK, "landing.html", data)
}

// Home is a user's front page: hero, about, skills, featured projects.
func (h *PageHandler) Home(c *gin.Context) {
	data := h.pageData(c)
	projects := h.projectService.List(c.Request.Context(), c.Param("userId"))

	featured := make([]*model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	data["Featured"] = featured
	c.HTML(http.StatusOK, "home.html", data)
}

func (h *PageHandler) Projects(c *gin.Context) {
	data := h.pageData(c)
	data["Projects"] = h.projectService.List(c.Request.Context(), c.Param("userId"))
	c.HTML(http.StatusOK, "projects.html", data)
}

func (h *PageHandler) ProjectDetail(c *gin.Context) {
	data := h.pageData(c)

	project, err := h.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", data)
		return
	}

	data["Project"] = project
	c.HTML(http.StatusOK, "project_detail.html", data)
}

// Admin serves the dashboard when the session cookie re-verifies, otherwise
// the login form (or the signup form with ?mode=signup). State machine:
// loading -> {login, signup} -> dashboard.
func (h *PageHandler) Admin(c *gin.Context) {
	lang := i18n.FromRequest(c)

	if s, ok := session.Read(c); ok {
		user, err := h.authService.Verify(c.Request.Context(), s.UserID, s.Password)
		if err == nil {
			c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
				"Lang":     lang,
				"User":     user,
				"Config":   h.configService.Get(c.Request.Context(), user.ID),
				"Projects": h.projectService.List(c.Request.Context(), user.ID),
			})
			return
		}
		session.Clear(c)
	}

	mode := "login"
	if c.Query("mode") == "signup" {
		mode = "signup"
	}

	c.HTML(http.StatusOK, "admin_auth.html", gin.H{
		"Lang": lang,
		"Mode": mode,
	})
}
