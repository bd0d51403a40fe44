package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/shared/config"
	"resume-screening-backend/internal/shared/server/respond"
)

// registerSPAFallback serves the built frontend for non-API routes in
// production. Unknown /api paths always return a JSON 404; in development
// the frontend runs on its own dev server, so everything else 404s too.
func registerSPAFallback(r *gin.Engine, cfg config.Config) {
	serveSPA := cfg.IsProduction() && cfg.StaticDir != ""

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			respond.Error(c, http.StatusNotFound, "not_found", "Route not found")
			return
		}
		if !serveSPA || c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		if file, ok := staticFile(cfg.StaticDir, c.Request.URL.Path); ok {
			c.File(file)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})
}

// staticFile resolves an asset inside root, refusing paths that escape it.
func staticFile(root, urlPath string) (string, bool) {
	cleaned := filepath.Clean("/" + urlPath)
	full := filepath.Join(root, cleaned)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", false
	}
	if absFull != absRoot && !strings.HasPrefix(absFull, absRoot+string(filepath.Separator)) {
		return "", false
	}

	info, err := os.Stat(absFull)
	if err != nil || info.IsDir() {
		return "", false
	}
	return absFull, true
}
