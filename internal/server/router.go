package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/application"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/health"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/middleware"
)

// ServiceName identifies this service in logs, health responses and events.
const ServiceName = "service-pets"

// RouterConfig holds what NewRouter needs to assemble the HTTP surface.
type RouterConfig struct {
	Logger        *zap.Logger
	PetService    *application.PetService
	AllowedOrigin string
	// Ready is consulted by /ready. Nil means always ready.
	Ready health.Pinger
}

// NewRouter builds the gin engine with global middleware, health probes and
// the pet routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(cfg.Logger))
	router.Use(middleware.LoggerMiddleware(cfg.Logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	router.Use(middleware.SecurityHeadersMiddleware())

	health.NewHandler(ServiceName, cfg.Ready).RegisterRoutes(router)
	handler.NewPetHandler(cfg.PetService).RegisterRoutes(&router.RouterGroup)

	return router
}
