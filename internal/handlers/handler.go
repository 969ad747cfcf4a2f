package handlers

import (
	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdentity)
	{
		h.registerOvenRoutes(api)
		h.registerLogRoutes(api)
		h.registerConformanceRoutes(api)
	}
}

func (h *Handler) registerOvenRoutes(api *gin.RouterGroup) {
	o := api.Group("/oven")
	{
		o.POST("/reset", h.resetOven)
		o.POST("/tick", h.tickOven)
		o.POST("/start", h.startOven)
		o.POST("/stop", h.stopOven)
		o.POST("/door/open", h.openDoor)
		o.POST("/door/close", h.closeDoor)
		// Body example: {"seconds":90}
		o.POST("/time", h.setTime)
		o.GET("/state", h.getState)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	api.GET("/logs", h.getLogs)
}

func (h *Handler) registerConformanceRoutes(api *gin.RouterGroup) {
	conf := api.Group("/conformance")
	{
		conf.GET("/implementations", h.listImplementations)
		// Body example: {"implementation":"machine"}
		conf.POST("/run", h.runConformance)
		conf.GET("/runs", h.listRuns)
	}
}
