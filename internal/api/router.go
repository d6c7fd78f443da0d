package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/studiobill/invoice-system/docs"
	"github.com/studiobill/invoice-system/internal/api/handler"
	"github.com/studiobill/invoice-system/internal/api/middleware"
	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
	"github.com/studiobill/invoice-system/internal/core/service"
	mongorepo "github.com/studiobill/invoice-system/internal/infrastructure/db/mongo"
	"github.com/studiobill/invoice-system/internal/infrastructure/report"
	"github.com/studiobill/invoice-system/internal/pkg/config"
	"github.com/studiobill/invoice-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The welcome enqueuer is injected by the caller because its worker pool
// has a lifecycle of its own (started and drained by main).
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, welcome ports.WelcomeEnqueuer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("api"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("invoicing"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	priceRepo := mongorepo.NewPriceRepository(db)
	workRepo := mongorepo.NewWorkEntryRepository(db)

	renderer := report.NewXLSXRenderer(cfg.Invoice.TemplatePath, cfg.Invoice.Currency)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
	userService := service.NewUserService(userRepo, welcome, logger.Component("users"))
	projectService := service.NewProjectService(projectRepo, logger.Component("projects"))
	priceService := service.NewPriceService(priceRepo, logger.Component("prices"))
	workService := service.NewWorkEntryService(workRepo, projectRepo, userRepo, priceRepo, logger.Component("work"))
	invoiceService := service.NewInvoiceService(projectRepo, workRepo, priceRepo, renderer, logger.Component("invoice"))

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	priceHandler := handler.NewPriceHandler(priceService)
	workHandler := handler.NewWorkHandler(workService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin), string(domain.RoleSuperAdmin))
	superOnly := middleware.RBAC(string(domain.RoleSuperAdmin))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", auth)

	v1.GET("/profile", userHandler.Profile)
	v1.GET("/team", userHandler.ListTeam, adminOnly)
	v1.POST("/team", userHandler.CreateMember, adminOnly)
	v1.PUT("/users/:id", userHandler.Update, superOnly)
	v1.DELETE("/users/:id", userHandler.Delete, superOnly)

	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/selectable", projectHandler.Selectable)
	v1.POST("/projects", projectHandler.Create, adminOnly)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Update, adminOnly)
	v1.DELETE("/projects/:id", projectHandler.Delete, adminOnly)
	v1.GET("/projects/:id/invoice", invoiceHandler.Generate, adminOnly)

	v1.GET("/prices", priceHandler.List)
	v1.POST("/prices", priceHandler.Create, adminOnly)
	v1.PUT("/prices/:id", priceHandler.Update, adminOnly)
	v1.DELETE("/prices/:id", priceHandler.Delete, adminOnly)

	v1.GET("/work-entries", workHandler.List)
	v1.POST("/work-entries", workHandler.Create)
	v1.GET("/dashboard", workHandler.Dashboard, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
