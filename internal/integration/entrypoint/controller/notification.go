// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/entrypoint/dto"
	"github.com/expenseflow/backend/internal/integration/entrypoint/middleware"
	"github.com/expenseflow/backend/internal/integration/notification"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	notifier *notification.FeedNotifier
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(notifier *notification.FeedNotifier) *NotificationController {
	return &NotificationController{
		notifier: notifier,
	}
}

// List handles GET /notifications requests, returning the caller's retained
// notifications newest first.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notifications := c.notifier.Recent(userID)
	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}
