package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	"github.com/BruksfildServices01/salon-api/internal/config"
	"github.com/BruksfildServices01/salon-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-api/internal/infra/repository"
	"github.com/BruksfildServices01/salon-api/internal/metrics"
	"github.com/BruksfildServices01/salon-api/internal/middleware"
	ucClient "github.com/BruksfildServices01/salon-api/internal/usecase/client"
	ucService "github.com/BruksfildServices01/salon-api/internal/usecase/service"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger *slog.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	m := metrics.New()
	expose := cfg.IsDevelopment()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(m),
		middleware.Recovery(logger, expose),
		middleware.ErrorHandler(logger, expose),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	validate := validators.New()

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucClient.NewListClients(clientRepo),
		ucClient.NewGetClient(clientRepo),
		ucClient.NewSearchClients(clientRepo),
		ucClient.NewGetClientHistory(clientRepo),
		ucClient.NewCreateClient(clientRepo, validate, auditDispatcher),
		ucClient.NewUpdateClient(clientRepo, validate, auditDispatcher),
		ucClient.NewDeleteClient(clientRepo, auditDispatcher),
	)

	serviceHandler := handlers.NewServiceHandler(
		ucService.NewListServices(serviceRepo),
		ucService.NewGetService(serviceRepo),
		ucService.NewPopularServices(serviceRepo),
		ucService.NewCreateService(serviceRepo, validate, auditDispatcher),
		ucService.NewUpdateService(serviceRepo, auditDispatcher),
		ucService.NewDeleteService(serviceRepo, auditDispatcher),
		ucService.NewActivateService(serviceRepo, auditDispatcher),
	)

	systemHandler := handlers.NewSystemHandler(db)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.NoRoute(systemHandler.NotFound)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", systemHandler.Health)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.GET("/search", clientHandler.Search)
			clients.GET("/:id", clientHandler.Get)
			clients.GET("/:id/history", clientHandler.History)
			clients.POST("", clientHandler.Create)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
		}

		// ------------------------------
		// SERVICES
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/popular", serviceHandler.Popular)
			services.GET("/:id", serviceHandler.Get)
			services.POST("", serviceHandler.Create)
			services.PUT("/:id", serviceHandler.Update)
			services.PATCH("/:id/activate", serviceHandler.Activate)
			services.DELETE("/:id", serviceHandler.Delete)
		}
	}
}
