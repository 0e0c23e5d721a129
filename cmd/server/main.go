package main

import (
	stdlog "log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/doantruongnsg/sobanhang/internal/auth"
	"github.com/doantruongnsg/sobanhang/internal/config"
	"github.com/doantruongnsg/sobanhang/internal/handlers"
	"github.com/doantruongnsg/sobanhang/internal/logger"
	"github.com/doantruongnsg/sobanhang/internal/metrics"
	"github.com/doantruongnsg/sobanhang/internal/middleware"
	"github.com/doantruongnsg/sobanhang/internal/models"
	"github.com/doantruongnsg/sobanhang/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Warning: No .env file found")
	}
	config.LoadConfig()
	cfg := config.AppConfig

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: "sobanhang",
	}); err != nil {
		panic(err)
	}
	log := logger.GetLogger()

	auth.SetSecret(cfg.Server.JWTSecret)

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open data store", zap.Error(err))
	}

	httpMetrics := metrics.NewHTTPMetrics("sobanhang")

	app, err := handlers.NewApp(st, httpMetrics)
	if err != nil {
		log.Fatal("Failed to load document", zap.Error(err))
	}
	log.Info("✅ Document loaded", zap.String("path", cfg.Storage.Path))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(logger.Middleware())
	r.Use(httpMetrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.GET("/metrics", gin.WrapH(metrics.GetPrometheusHandler()))
	r.POST("/login", app.Login)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// STAFF & ADMIN
		api.GET("/products", app.GetProducts)
		api.GET("/customers", app.GetCustomers)
		api.POST("/customers", app.AddCustomer)

		// POS session
		api.GET("/cart", app.GetCart)
		api.POST("/cart/items", app.AddToCart)
		api.PATCH("/cart/items/:sku", app.UpdateCartQty)
		api.DELETE("/cart/items/:sku", app.RemoveFromCart)
		api.DELETE("/cart", app.ClearCart)
		api.PUT("/cart/adjustments", app.SetAdjustments)
		api.POST("/cart/customer", app.AttachCustomer)
		api.DELETE("/cart/customer", app.DetachCustomer)
		api.POST("/checkout", app.Checkout)

		// Order history
		api.GET("/orders", app.GetOrders)
		api.POST("/orders/:id/toggle-payment", app.TogglePaymentStatus)
		api.POST("/orders/:id/mark-paid", app.MarkOrderPaid)
		api.GET("/orders/export", app.ExportOrders)

		// WAREHOUSE & ADMIN
		stock := api.Group("/")
		stock.Use(middleware.RequireRole(models.RoleAdmin, models.RoleWarehouse))
		{
			stock.POST("/products", app.AddProduct)
			stock.PUT("/products/:sku", app.UpdateProduct)
			stock.POST("/products/:sku/receive", app.ReceiveStock)
		}

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.DELETE("/products/:sku", app.DeleteProduct)
			admin.GET("/reports/dashboard", app.GetDashboard)
			admin.GET("/reports/finances", app.GetFinances)
			admin.GET("/expenses", app.GetExpenses)
			admin.POST("/expenses", app.AddExpense)
			admin.GET("/settings", app.GetSettings)
			admin.PUT("/settings", app.UpdateSettings)
			admin.POST("/ask", app.AskAI)
			admin.GET("/system/backup", app.GetBackup)
			admin.POST("/system/reset", app.ResetData)
		}
	}

	log.Info("🚀 Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server failed to start", zap.Error(err))
	}
}
