package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/api"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware

	Auth          *api.AuthHandler
	Bookings      *api.BookingHandler
	Rooms         *api.RoomHandler
	Usage         *api.UsageHandler
	Profiles      *api.ProfileHandler
	Announcements *api.AnnouncementHandler
	Notifications *api.NotificationHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	requireAuth := p.AuthMiddleware.RequireAuth()
	adminOnly := p.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: p.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(requireAuth)
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Rooms.List},
			{Method: http.MethodGet, Path: "/:room/bookings", Handler: p.Rooms.Schedule},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create},
			{Method: http.MethodGet, Path: "/me", Handler: p.Bookings.History},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Bookings.Cancel},
		})

		usage := apiGroup.Group("/usage")
		usage.Use(requireAuth)
		addRoutes(usage, []route{
			{Method: http.MethodGet, Path: "/me", Handler: p.Usage.Me},
		})

		profiles := apiGroup.Group("/profiles")
		profiles.Use(requireAuth)
		addRoutes(profiles, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Profiles.Directory},
			{Method: http.MethodPut, Path: "/me", Handler: p.Profiles.UpdateMe},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Profiles.Get},
		})

		announcements := apiGroup.Group("/announcements")
		announcements.Use(requireAuth)
		addRoutes(announcements, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Announcements.List},
			{Method: http.MethodPost, Path: "", Handler: p.Announcements.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Announcements.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Notifications.List},
			{Method: http.MethodPost, Path: "/read-all", Handler: p.Notifications.MarkAllRead},
			{Method: http.MethodPost, Path: "/:id/read", Handler: p.Notifications.MarkRead},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, adminOnly)
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: p.Bookings.AdminList},
			{Method: http.MethodGet, Path: "/usage", Handler: p.Usage.Overview},
			{Method: http.MethodGet, Path: "/profiles", Handler: p.Profiles.AdminList},
			{Method: http.MethodPatch, Path: "/profiles/:id", Handler: p.Profiles.AdminUpdate},
			{Method: http.MethodDelete, Path: "/profiles/:id", Handler: p.Profiles.AdminDelete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
