package main

import (
	"context"
	"time"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/analytics"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/auth"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/billing"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/config"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/db"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/extraction"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/feedback"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/history"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/llm"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/middleware"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/profile"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/storage"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/templates"
	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	logx.Init(cfg.AppEnv)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── DB ─────────────────────────
	pool := db.ConnectPostgres(cfg.DatabaseURL)
	defer pool.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background(), cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("R2 init failed")
	}

	// ───────────────────────── LLM ─────────────────────────
	llmClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pool)
	menuRepo := menu.NewPostgresRepository(pool)
	historyRepo := history.NewPostgresRepository(pool)
	billingRepo := billing.NewPostgresRepository(pool)
	feedbackRepo := feedback.NewPostgresRepository(pool)
	profileRepo := profile.NewPostgresRepository(pool)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	ledger := billing.NewLedger(userRepo)

	var gateway billing.PaymentGateway = billing.FakeGateway{}
	if cfg.PaymentAPIKey != "" && cfg.PaymentBaseURL != "" {
		gateway = billing.NewHTTPGateway(cfg.PaymentAPIKey, cfg.PaymentBaseURL)
	} else {
		logx.Warn().Msg("payment gateway not configured, using fake gateway")
	}
	billingService := billing.NewService(billingRepo, gateway, ledger)

	recorder := history.NewRecorder(historyRepo)
	menuService := menu.NewService(menuRepo, r2Client, ledger, recorder, llmClient)
	analyticsService := analytics.NewService(historyRepo)
	authService := auth.NewService(userRepo, cfg.AdminSecret)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	adminUserHandler := auth.NewAdminHandler(userRepo, menuRepo)
	menuHandler := menu.NewHandler(menuService)
	adminMenuHandler := menu.NewAdminHandler(menuRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)
	billingHandler := billing.NewHandler(billingService, ledger)
	templateHandler := templates.NewHandler()
	feedbackHandler := feedback.NewHandler(feedbackRepo)
	profileHandler := profile.NewHandler(profileRepo)
	aiHandler := llm.NewHandler(llmClient)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		me := authGroup.Group("/me")
		me.Use(middleware.AuthMiddleware())
		{
			me.GET("", authHandler.Me)
		}
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("/upload", menuHandler.Upload)
		menus.GET("", menuHandler.ListMine)
		menus.GET("/:id", menuHandler.Get)
		menus.PUT("/:id", menuHandler.Update)
		menus.DELETE("/:id", menuHandler.Delete)
		menus.POST("/:id/analyze", menuHandler.Analyze)
		menus.POST("/:id/approve", menuHandler.Approve)
		menus.POST("/:id/competitors", menuHandler.CompetitorAnalysis)
		menus.GET("/:id/export", menuHandler.Export)
	}

	// ───────────────────────── ANALYTICS ROUTES ─────────────────────────
	analyticsGroup := r.Group("/analytics")
	analyticsGroup.Use(middleware.AuthMiddleware())
	{
		analyticsGroup.GET("/summary", analyticsHandler.Summary)
		analyticsGroup.GET("/history", analyticsHandler.History)
		analyticsGroup.GET("/compare", analyticsHandler.Compare)
	}

	// ───────────────────────── BILLING ROUTES ─────────────────────────
	credits := r.Group("/credits")
	credits.Use(middleware.AuthMiddleware())
	{
		credits.GET("/packages", billingHandler.ListPackages)
		credits.GET("/balance", billingHandler.Balance)
		credits.POST("/checkout", billingHandler.CheckoutCredits)
		credits.GET("/status/:sessionId", billingHandler.SessionStatus)
	}

	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		subscriptions.GET("/plans", billingHandler.ListPlans)
		subscriptions.POST("/checkout", billingHandler.CheckoutSubscription)
		subscriptions.GET("/current", billingHandler.CurrentSubscription)
		subscriptions.GET("/status/:sessionId", billingHandler.SessionStatus)
		subscriptions.POST("/cancel", billingHandler.CancelSubscription)
	}

	// ───────────────────────── MISC AUTHENTICATED ROUTES ─────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/templates", templateHandler.List)
		authed.GET("/templates/:id", templateHandler.Get)
		authed.POST("/feedback", feedbackHandler.Submit)
		authed.GET("/profile", profileHandler.Get)
		authed.PUT("/profile", profileHandler.Upsert)
		authed.POST("/ai/generate-description", aiHandler.GenerateDescription)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/users", adminUserHandler.ListUsers)
		admin.DELETE("/users/:id", adminUserHandler.DeleteUser)
		admin.GET("/stats", adminUserHandler.Stats)
		admin.GET("/menus", adminMenuHandler.ListAll)
		admin.DELETE("/menus/:id", adminMenuHandler.Delete)
		admin.GET("/feedback", feedbackHandler.ListAll)
	}

	// ───────────────────────── EXTRACTION WORKER ─────────────────────────
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	extractionService := extraction.NewService(menuRepo, r2Client, llmClient)
	extraction.StartWorker(workerCtx, extractionService)

	// ───────────────────────── HEALTH + METRICS ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ───────────────────────── START ─────────────────────────
	logx.Info().Str("port", cfg.Port).Msg("API running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logx.Fatal().Err(err).Msg("server exited")
	}
}
