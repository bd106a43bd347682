// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/auth"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/application/usecase/export"
	"github.com/pocket-ledger/backend/internal/application/usecase/summary"
	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/infra/server/router"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/cache"
	"github.com/pocket-ledger/backend/internal/integration/delivery"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// Overrides lets tests swap collaborators with deterministic doubles. Nil
// fields fall back to the production implementations.
type Overrides struct {
	Clock      adapter.Clock
	Deliveries map[string]adapter.Delivery
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	return NewInjectorWithOverrides(cfg, db, redisClient, Overrides{})
}

// NewInjectorWithOverrides wires the dependency graph, honoring overrides.
func NewInjectorWithOverrides(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, overrides Overrides) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	personRepo := persistence.NewPersonRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	summaryCache := cache.NewSummaryCache(redisClient)
	suggestionService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	clock := overrides.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	deliveries := overrides.Deliveries
	if deliveries == nil {
		deliveries = map[string]adapter.Delivery{
			delivery.MethodDownload:   delivery.NewDownloadDelivery(),
			delivery.MethodFilesystem: delivery.NewFilesystemDelivery(cfg.Export.Directory),
		}
		if cfg.Email.ResendAPIKey != "" && cfg.Email.ToEmail != "" {
			deliveries[delivery.MethodEmail] = delivery.NewEmailDelivery(
				cfg.Email.ResendAPIKey,
				cfg.Email.FromName,
				cfg.Email.FromEmail,
				cfg.Email.ToEmail,
			)
		}
	}

	// Create auth use case
	loginUseCase := auth.NewLoginUserUseCase(
		cfg.Auth.Username,
		cfg.Auth.PasswordHash,
		passwordService,
		tokenService,
	)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, summaryCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo, summaryCache)

	// Create export use case
	exportTransactionsUseCase := export.NewExportTransactionsUseCase(
		transactionRepo,
		deliveries,
		clock,
		cfg.Export.Currency,
		cfg.Export.FilenamePrefix,
	)

	// Create summary use case
	getSummaryUseCase := summary.NewGetSummaryUseCase(transactionRepo, summaryCache)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listPeopleUseCase := category.NewListPeopleUseCase(personRepo)
	suggestCategoriesUseCase := category.NewSuggestCategoriesUseCase(transactionRepo, categoryRepo, suggestionService)

	// Create controllers
	healthController := controller.NewHealthController(
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	)

	authController := controller.NewAuthController(loginUseCase)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
	)

	exportController := controller.NewExportController(exportTransactionsUseCase)
	summaryController := controller.NewSummaryController(getSummaryUseCase)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		listPeopleUseCase,
		suggestCategoriesUseCase,
	)

	// Create middleware
	// Use a higher login rate limit in the test environment to avoid flakes
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		exportController,
		summaryController,
		categoryController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
