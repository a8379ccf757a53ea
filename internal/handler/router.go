package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kelurahan-booking/internal/handler/api"
	"kelurahan-booking/internal/handler/middleware"
	"kelurahan-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation   *api.ReservationHandler
	Room          *api.RoomHandler
	Guest         *api.GuestHandler
	Auth          *api.AuthHandler
	PasswordReset *api.PasswordResetHandler
	Assistant     *api.AssistantHandler
	Gateway       *api.GatewayHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodGet, Path: "/exists", Handler: h.Auth.Exists},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		password := apiGroup.Group("/admin/password")
		{
			addRoutes(password, []route{
				{Method: http.MethodPost, Path: "/send-otp", Handler: h.PasswordReset.SendOTP},
				{Method: http.MethodPost, Path: "/verify-otp", Handler: h.PasswordReset.VerifyOTP},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.PasswordReset.ResetPassword},
			})
		}

		// Reads and submission are open to visitors; amendments and
		// decisions belong to the administrator.
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/check", Handler: h.Reservation.CheckReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
			})

			reservationsAuth := reservations.Group("")
			reservationsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(reservationsAuth, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.AmendReservation},
				{Method: http.MethodPut, Path: "/:id/decide", Handler: h.Reservation.DecideReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.DeleteReservation},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
				{Method: http.MethodGet, Path: "/available", Handler: h.Room.ListAvailableRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
			})
		}

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Guest.ListGuests},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Guest.GetGuest},
				{Method: http.MethodPost, Path: "", Handler: h.Guest.CreateGuest},
			})

			guestsAuth := guests.Group("")
			guestsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(guestsAuth, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: h.Guest.UpdateGuest},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.DeleteGuest},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/assistant", Handler: h.Assistant.Ask},
			{Method: http.MethodGet, Path: "/wa/status", Handler: h.Gateway.Status},
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
