package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/auth"
	"resume-screening-backend/internal/resumes"
	"resume-screening-backend/internal/sessions"
	"resume-screening-backend/internal/shared/config"
	"resume-screening-backend/internal/shared/server/middleware"
	"resume-screening-backend/internal/shared/server/respond"
	"resume-screening-backend/internal/users"
)

// Deps are the storage dependencies the router wires into handlers. The
// caller decides between Postgres and memory implementations.
type Deps struct {
	Users    users.Repo
	Resumes  resumes.Repo
	Sessions sessions.Store
}

// Allow bursts of credential attempts, then roughly one every two seconds
// per client IP.
var credentialRateLimit = middleware.RateLimitRule{Rate: 0.5, Burst: 10}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.SessionAuth(deps.Sessions),
	)

	authSvc := auth.NewService(deps.Users)
	authHandler := auth.NewHandler(authSvc, deps.Sessions, cfg.SessionTTL, cfg.IsProduction())
	resumeSvc := resumes.NewService(deps.Resumes)
	resumeHandler := resumes.NewHandler(resumeSvc)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	protected := api.Group("", middleware.RequireUser())

	limit := middleware.RateLimitPerIP(middleware.NewRateLimiter(nil), credentialRateLimit)
	authHandler.RegisterRoutes(api, protected, limit)
	resumeHandler.RegisterRoutes(protected)

	registerSPAFallback(r, cfg)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
