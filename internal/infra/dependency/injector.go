// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expenseflow/backend/config"
	"github.com/expenseflow/backend/internal/application/usecase/auth"
	"github.com/expenseflow/backend/internal/application/usecase/budget"
	"github.com/expenseflow/backend/internal/application/usecase/dashboard"
	"github.com/expenseflow/backend/internal/application/usecase/expense"
	"github.com/expenseflow/backend/internal/infra/server/router"
	"github.com/expenseflow/backend/internal/integration/adapters"
	"github.com/expenseflow/backend/internal/integration/cache"
	"github.com/expenseflow/backend/internal/integration/entrypoint/controller"
	"github.com/expenseflow/backend/internal/integration/entrypoint/middleware"
	"github.com/expenseflow/backend/internal/integration/notification"
	"github.com/expenseflow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	listCache := cache.NewRedisListCache(redisClient, cfg.Cache.TTL)
	notifier := notification.NewFeedNotifier(0)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService, listCache)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, listCache)
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo, listCache, notifier)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, listCache, notifier)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, listCache, notifier)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, listCache)
	addBudgetUseCase := budget.NewAddBudgetUseCase(budgetRepo, listCache, notifier)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, listCache, notifier)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, listCache, notifier)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(expenseRepo, listCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		addExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		addBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	notificationController := controller.NewNotificationController(notifier)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		budgetController,
		dashboardController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
