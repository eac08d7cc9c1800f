// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expenseflow/backend/internal/application/usecase/dashboard"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/entrypoint/dto"
	"github.com/expenseflow/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests. An optional `date`
// query parameter (YYYY-MM-DD) pins the reference day; it defaults to the
// current UTC day.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{UserID: userID}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.ReferenceDate = date
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}
