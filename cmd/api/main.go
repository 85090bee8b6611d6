package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/promobandhu/admin-backend/docs"
	"github.com/promobandhu/admin-backend/internal/domain/entities"
	httphandlers "github.com/promobandhu/admin-backend/internal/handlers/http"
	"github.com/promobandhu/admin-backend/internal/handlers/middleware"
	"github.com/promobandhu/admin-backend/internal/infrastructure/auth"
	"github.com/promobandhu/admin-backend/internal/infrastructure/config"
	"github.com/promobandhu/admin-backend/internal/infrastructure/i18n"
	"github.com/promobandhu/admin-backend/internal/infrastructure/logging"
	"github.com/promobandhu/admin-backend/internal/infrastructure/persistence/postgres"
	redisstore "github.com/promobandhu/admin-backend/internal/infrastructure/persistence/redis"
	"github.com/promobandhu/admin-backend/internal/services"
)

// @title PromoBandhu Admin API
// @version 1.0
// @description Backend administrativo do PromoBandhu: acesso (RBAC), equipe, planos, assinaturas e relatórios de SMS.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting promobandhu admin backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Conectar ao Redis (refresh tokens)
	tokenStore, err := redisstore.NewTokenStore(&cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		log.Fatal(err)
	}
	defer tokenStore.Close()

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	permRepo := postgres.NewPermissionRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	jobRoleRepo := postgres.NewJobRoleRepository(db)
	memberRepo := postgres.NewTeamMemberRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	planRepo := postgres.NewPlanRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	smsUsageRepo := postgres.NewSmsUsageRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	tokenManager := auth.NewTokenManager(&cfg.JWT)
	authService := services.NewAuthService(memberRepo, tokenManager, tokenStore, logger)
	accessService := services.NewAccessService(permRepo, groupRepo, jobRoleRepo, uow, logger)
	teamService := services.NewTeamService(memberRepo, jobRoleRepo, groupRepo, uow, logger)
	planService := services.NewPlanService(planRepo, logger)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, businessRepo, logger)
	reportService := services.NewReportService(businessRepo, smsUsageRepo)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	accessHandler := httphandlers.NewAccessHandler(accessService)
	teamHandler := httphandlers.NewTeamHandler(teamService)
	planHandler := httphandlers.NewPlanHandler(planService)
	subscriptionHandler := httphandlers.NewSubscriptionHandler(subscriptionService)
	reportHandler := httphandlers.NewReportHandler(reportService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	authMiddleware := middleware.NewAuthMiddleware(authService)

	admin := router.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)
		admin.POST("/logout", authHandler.Logout)

		// Rotas protegidas: bearer token + permissão efetiva
		access := admin.Group("/access", authMiddleware.RequireAuth())
		{
			access.GET("/permissions", authMiddleware.RequirePermission(entities.PermissionAccessView), accessHandler.ListPermissions)
			access.POST("/permissions", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.CreatePermission)
			access.DELETE("/permissions/:id", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.DeletePermission)

			access.GET("/groups", authMiddleware.RequirePermission(entities.PermissionAccessView), accessHandler.ListGroups)
			access.POST("/groups", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.CreateGroup)
			access.PATCH("/groups/:id", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.UpdateGroup)
			access.DELETE("/groups/:id", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.DeleteGroup)
			access.PUT("/groups/:id/permissions", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.SetGroupPermissions)

			access.GET("/job-role/list", authMiddleware.RequirePermission(entities.PermissionAccessView), accessHandler.ListJobRoles)
			access.POST("/job-role/create", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.CreateJobRole)
			access.PUT("/job-role/update/:id/groups", authMiddleware.RequirePermission(entities.PermissionAccessManage), accessHandler.SetJobRoleGroups)
		}

		team := admin.Group("/team", authMiddleware.RequireAuth())
		{
			team.GET("", authMiddleware.RequirePermission(entities.PermissionTeamView), teamHandler.ListTeamMembers)
			team.GET("/:id", authMiddleware.RequirePermission(entities.PermissionTeamView), teamHandler.GetTeamMember)
			team.POST("", authMiddleware.RequirePermission(entities.PermissionTeamManage), teamHandler.CreateTeamMember)
			team.PATCH("/:id", authMiddleware.RequirePermission(entities.PermissionTeamManage), teamHandler.UpdateTeamMember)
			team.DELETE("/:id", authMiddleware.RequirePermission(entities.PermissionTeamManage), teamHandler.DeleteTeamMember)
		}

		businesses := admin.Group("/businesses", authMiddleware.RequireAuth())
		{
			businesses.GET("", authMiddleware.RequirePermission(entities.PermissionBusinessView), reportHandler.ListBusinesses)
			businesses.GET("/:id", authMiddleware.RequirePermission(entities.PermissionBusinessView), reportHandler.GetBusiness)
		}

		plans := admin.Group("/plans", authMiddleware.RequireAuth())
		{
			plans.GET("", authMiddleware.RequirePermission(entities.PermissionPlanView), planHandler.ListPlans)
			plans.GET("/:id", authMiddleware.RequirePermission(entities.PermissionPlanView), planHandler.GetPlan)
			plans.POST("", authMiddleware.RequirePermission(entities.PermissionPlanManage), planHandler.CreatePlan)
			plans.PUT("/:id", authMiddleware.RequirePermission(entities.PermissionPlanManage), planHandler.UpdatePlan)
			plans.DELETE("/:id", authMiddleware.RequirePermission(entities.PermissionPlanManage), planHandler.DeletePlan)
		}

		subscriptions := admin.Group("/subscriptions", authMiddleware.RequireAuth())
		{
			subscriptions.GET("", authMiddleware.RequirePermission(entities.PermissionSubscriptionView), subscriptionHandler.ListSubscriptions)
			subscriptions.GET("/:id", authMiddleware.RequirePermission(entities.PermissionSubscriptionView), subscriptionHandler.GetSubscription)
			subscriptions.POST("", authMiddleware.RequirePermission(entities.PermissionSubscriptionManage), subscriptionHandler.CreateSubscription)
			subscriptions.PUT("/:id", authMiddleware.RequirePermission(entities.PermissionSubscriptionManage), subscriptionHandler.UpdateSubscription)
			subscriptions.POST("/:id/cancel", authMiddleware.RequirePermission(entities.PermissionSubscriptionManage), subscriptionHandler.CancelSubscription)
			subscriptions.DELETE("/:id", authMiddleware.RequirePermission(entities.PermissionSubscriptionManage), subscriptionHandler.DeleteSubscription)
		}

		sms := admin.Group("/sms/usage", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionSmsReportView))
		{
			sms.GET("/businesses", reportHandler.SmsUsageByBusiness)
			sms.GET("/monthly", reportHandler.SmsUsageMonthly)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		log.Fatal(err)
	}

	logger.Info("server stopped")
}
