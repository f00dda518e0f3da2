package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shifty-eyed/esp-ac-control/internal/logger"
	"github.com/shifty-eyed/esp-ac-control/internal/service"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Status stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerApplianceRoutes(api)
		h.registerScheduleRoutes(api)
		h.registerJournalRoutes(api)
		api.POST("/time/resync", h.requestResync)
	}
}

func (h *Handler) registerApplianceRoutes(api *gin.RouterGroup) {
	appliance := api.Group("/appliance")
	{
		appliance.GET("/status", h.getStatus)
		appliance.PUT("/on", h.turnOn)
		appliance.PUT("/off", h.turnOff)
	}
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	schedules := api.Group("/schedules")
	{
		schedules.GET("", h.listSchedules)
		// Body example: {"hour":7,"minute":30,"on":true}
		schedules.PUT("/:id", h.upsertSchedule)
		schedules.DELETE("/:id", h.removeSchedule)
	}
}

func (h *Handler) registerJournalRoutes(api *gin.RouterGroup) {
	journal := api.Group("/journal")
	{
		journal.GET("", h.listJournal)
		journal.DELETE("", h.clearJournal)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// notFound mirrors the appliance firmware's 404: list what is available.
func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "not found",
		"endpoints": []string{
			"GET /health",
			"GET /api/v1/appliance/status",
			"PUT /api/v1/appliance/on",
			"PUT /api/v1/appliance/off",
			"POST /api/v1/time/resync",
			"GET /api/v1/schedules",
			"PUT /api/v1/schedules/:id",
			"DELETE /api/v1/schedules/:id",
			"GET /api/v1/journal",
			"DELETE /api/v1/journal",
			"GET /ws",
		},
	})
}
