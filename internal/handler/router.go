package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lab-reservation/internal/handler/api"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// MetricsHandler serves the Prometheus exposition; nil disables the route.
type MetricsHandler http.Handler

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reservationHandler *api.ReservationHandler, metrics MetricsHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, reservationHandler, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, metrics MetricsHandler) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && metrics != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics))
	}

	if cfg.Server.SwaggerEnabled && gin.Mode() != gin.ReleaseMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
		})

		laboratories := apiGroup.Group("/laboratories")
		addRoutes(laboratories, []route{
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListByLaboratory},
			{Method: http.MethodGet, Path: "/:id/usage", Handler: reservationHandler.LaboratoryUsage},
		})

		devices := apiGroup.Group("/devices")
		addRoutes(devices, []route{
			{Method: http.MethodGet, Path: "/:id/usage", Handler: reservationHandler.DeviceUsage},
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
