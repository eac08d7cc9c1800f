// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expenseflow/backend/internal/integration/entrypoint/controller"
	"github.com/expenseflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	expenseController      *controller.ExpenseController
	budgetController       *controller.BudgetController
	dashboardController    *controller.DashboardController
	notificationController *controller.NotificationController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	notificationController *controller.NotificationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		expenseController:      expenseController,
		budgetController:       budgetController,
		dashboardController:    dashboardController,
		notificationController: notificationController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			authRoutes := v1.Group("/auth")
			{
				authRoutes.POST("/register", r.authController.Register)
				authRoutes.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				authRoutes.POST("/refresh", r.authController.RefreshToken)
			}
			// Logout must succeed even without a valid token; the
			// caller's identity, when present, scopes cache invalidation.
			if r.authMiddleware != nil {
				authRoutes.POST("/logout", r.authMiddleware.AuthenticateOptional(), r.authController.Logout)
			} else {
				authRoutes.POST("/logout", r.authController.Logout)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}

		// Notification routes (require authentication)
		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
