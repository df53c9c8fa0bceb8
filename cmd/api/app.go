package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/tuckshop/docs"
	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/adapter/api/route"
	"github.com/hugohenrick/tuckshop/internal/adapter/repository"
	"github.com/hugohenrick/tuckshop/internal/config"
	"github.com/hugohenrick/tuckshop/internal/infrastructure/database"
	"github.com/hugohenrick/tuckshop/internal/seed"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/auth"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	router *gin.Engine
	store  *repository.Store
	db     *database.PostgresDB
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{config: cfg, logger: log}

	backend, err := app.openBackend(ctx)
	if err != nil {
		return nil, err
	}
	app.store = repository.NewStore(backend)

	if cfg.SeedOnStart {
		if _, err := seed.EnsureInitialData(ctx, app.store, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecretKey, cfg.JWTExpiration)
	if err != nil {
		app.Close()
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	app.router = gin.New()
	app.router.Use(gin.Logger(), gin.Recovery(), cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	app.setupRoutes(jwtService)
	return app, nil
}

func (a *App) openBackend(ctx context.Context) (repository.Backend, error) {
	switch a.config.StorageDriver {
	case config.StorageRedis:
		a.logger.Info("Usando armazenamento Redis", "namespace", a.config.RedisNamespace)
		return repository.NewRedisBackend(ctx, a.config.RedisURL, a.config.RedisNamespace)

	case config.StoragePostgres:
		if err := database.RunMigrations(a.config.Postgres); err != nil {
			return nil, err
		}
		db, err := database.NewPostgresDB(ctx, a.config.Postgres)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar com o banco de dados: %w", err)
		}
		a.db = db
		a.logger.Info("Usando armazenamento PostgreSQL", "host", a.config.Postgres.Host)
		return repository.NewPostgresBackend(db), nil

	default:
		a.logger.Warn("Usando armazenamento em memória; os dados serão perdidos ao reiniciar")
		return repository.NewMemoryBackend(), nil
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(jwtService *auth.JWTService) {
	opts := []service.Option{
		service.WithClock(service.ClockIn(a.config.Location)),
		service.WithLogger(a.logger),
	}

	employees := service.NewEmployeeService(a.store, opts...)
	catalog := service.NewCatalogService(a.store, opts...)
	students := service.NewStudentService(a.store, opts...)
	checkout := service.NewCheckoutService(a.store, opts...)
	inventory := service.NewInventoryService(a.store, opts...)
	purchasing := service.NewPurchasingService(a.store, opts...)
	reports := service.NewReportService(a.store, opts...)
	settings := service.NewSettingsService(a.store, opts...)
	simulation := service.NewSimulationService(a.store, nil, opts...)
	authService := service.NewAuthService(employees, jwtService)

	docs.SwaggerInfo.BasePath = a.config.APIBasePath
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(a.config.APIBasePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
			"storage": a.config.StorageDriver,
		})
	})

	authRequired := auth.JWTAuthMiddleware(jwtService)

	route.SetupAuthRoutes(api, controller.NewAuthController(authService, employees, a.logger), authRequired)
	route.RegisterProductRoutes(api, controller.NewProductController(catalog, a.logger), authRequired)
	route.RegisterStudentRoutes(api, controller.NewStudentController(students, a.logger), authRequired)
	route.RegisterEmployeeRoutes(api, controller.NewEmployeeController(employees, a.logger), authRequired)

	reportController := controller.NewReportController(reports, a.config.Location, a.logger)
	route.RegisterSaleRoutes(api, controller.NewCheckoutController(checkout, a.logger), reportController, authRequired)
	route.RegisterInventoryRoutes(api,
		controller.NewInventoryController(inventory, a.logger),
		controller.NewPurchaseController(purchasing, a.logger),
		authRequired)
	route.RegisterReportRoutes(api, reportController, authRequired)
	route.RegisterSettingsRoutes(api, controller.NewSettingsController(settings, simulation, a.logger), authRequired)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error("Erro ao fechar armazenamento", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
