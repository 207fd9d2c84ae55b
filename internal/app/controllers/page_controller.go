package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/campushub/eventhub/internal/middleware"
)

// PageController serves the browser shells. Rendering happens client-side;
// this layer only decides which shell a request may see.
type PageController struct {
	sessions   *middleware.SessionMiddleware
	staticPath string
}

// NewPageController creates a new PageController
func NewPageController(sessions *middleware.SessionMiddleware, staticPath string) *PageController {
	return &PageController{
		sessions:   sessions,
		staticPath: staticPath,
	}
}

// Index serves the app shell. The page guard has already redirected
// anonymous requests to /login.
func (c *PageController) Index(ctx *gin.Context) {
	ctx.File(filepath.Join(c.staticPath, "index.html"))
}

// Login serves the login shell, or skips to the app when a session is
// already active.
func (c *PageController) Login(ctx *gin.Context) {
	if c.sessions.HasSession(ctx) {
		ctx.Redirect(http.StatusFound, "/")
		return
	}
	ctx.File(filepath.Join(c.staticPath, "login.html"))
}
