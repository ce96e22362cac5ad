package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/config"
	"github.com/eventra/eventra-backend/database"
	"github.com/eventra/eventra-backend/internal/auditlog"
	"github.com/eventra/eventra-backend/internal/auth"
	"github.com/eventra/eventra-backend/internal/category"
	"github.com/eventra/eventra-backend/internal/event"
	"github.com/eventra/eventra-backend/internal/order"
	"github.com/eventra/eventra-backend/internal/reports"
	"github.com/eventra/eventra-backend/internal/ticket"
	"github.com/eventra/eventra-backend/middleware"
	"github.com/eventra/eventra-backend/utils"

	_ "github.com/eventra/eventra-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Initialize Audit Log Module ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	tokenStore := auth.NewRedisTokenStore(utils.RedisClient)
	authSvc := auth.NewService(authRepo, tokenStore, cfg)
	authHandler := auth.NewHandler(authSvc)

	// ========== Categories ==========
	categoryRepo := category.NewRepository(database.DB)
	categorySvc := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categorySvc)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, categoryRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	// ========== Ticket Tiers ==========
	ticketRepo := ticket.NewRepository(database.DB)
	ticketSvc := ticket.NewService(ticketRepo, auditSvc)
	ticketHandler := ticket.NewHandler(ticketSvc)

	// ========== Orders ==========
	orderRepo := order.NewRepository(database.DB)
	orderPublisher := order.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
	orderSvc := order.NewService(orderRepo, auditSvc, orderPublisher)
	orderHandler := order.NewHandler(orderSvc)

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo, reports.NewSalesExporter(), auditSvc)
	reportsHandler := reports.NewHandler(reportsSvc)

	// ========== Public Routes ==========
	api.GET("/home", eventHandler.Home)
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/category/:slug", eventHandler.ListEvents)
	api.GET("/events/:slug", eventHandler.GetEventBySlug)
	api.GET("/categories", categoryHandler.List)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// ========== Protected Routes ==========
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		protected.POST("/categories", categoryHandler.Create)

		protected.POST("/events", eventHandler.CreateEvent)
		protected.PUT("/events/:slug", eventHandler.UpdateEvent)
		protected.DELETE("/events/:slug", eventHandler.DeleteEvent)

		protected.POST("/events/:slug/tickets", ticketHandler.CreateTier)
		protected.PUT("/tickets/:id", ticketHandler.UpdateTier)
		protected.DELETE("/tickets/:id", ticketHandler.DeleteTier)

		protected.POST("/events/:slug/purchase", orderHandler.Purchase)
		protected.GET("/orders/:id/confirmation", orderHandler.Confirmation)
		protected.GET("/orders/:id/receipt", orderHandler.Receipt)
		protected.GET("/my-tickets", orderHandler.MyTickets)

		protected.GET("/my-events", eventHandler.MyEvents)
		protected.GET("/my-events/sales-report", reportsHandler.SalesReport)

		protected.GET("/audit-logs/my", auditHandler.GetMyLogs)
	}
}
