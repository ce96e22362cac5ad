package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/config"
	"github.com/eventra/eventra-backend/database"
	"github.com/eventra/eventra-backend/internal/auditlog"
	"github.com/eventra/eventra-backend/internal/auth"
	"github.com/eventra/eventra-backend/internal/category"
	"github.com/eventra/eventra-backend/internal/event"
	"github.com/eventra/eventra-backend/internal/order"
	"github.com/eventra/eventra-backend/internal/ticket"
	"github.com/eventra/eventra-backend/routes"
	"github.com/eventra/eventra-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis init failed: %v", err)
		log.Println("ℹ️ Continuing without Redis (rate limiting falls back to in-memory)")
	} else {
		log.Println("✅ Redis connected")
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&category.Category{},
		&event.Event{},
		&ticket.Ticket{},
		&order.Order{},
		&order.OrderItem{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173", "http://127.0.0.1:4173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "Cache-Control", "Pragma", "Expires"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("🎟  Event catalog: http://localhost:%s/api/v1/events\n", cfg.Port)
	fmt.Printf("📖 Swagger docs: http://localhost:%s/swagger/index.html\n", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
