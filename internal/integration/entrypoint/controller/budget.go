// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/application/usecase/budget"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/entrypoint/dto"
	"github.com/expenseflow/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	addUseCase    *budget.AddBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	addUseCase *budget.AddBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetStartDate),
		})
		return
	}

	input := budget.AddBudgetInput{
		UserID:    userID,
		Amount:    decimal.NewFromFloat(req.Amount),
		Period:    req.Period,
		StartDate: startDate,
	}
	if req.Category != nil {
		category := entity.ExpenseCategory(*req.Category)
		input.Category = &category
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:      budgetID,
		UserID:        userID,
		ClearCategory: req.ClearCategory,
		Period:        req.Period,
	}

	if req.Category != nil {
		category := entity.ExpenseCategory(*req.Category)
		input.Category = &category
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBudgetStartDate),
			})
			return
		}
		input.StartDate = &startDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var bgtErr *domainerror.BudgetError
	if errors.As(err, &bgtErr) {
		ctx.JSON(getStatusCodeForBudgetError(bgtErr.Code), dto.ErrorResponse{
			Error: bgtErr.Message,
			Code:  string(bgtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetNotAuthorized:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetCategory,
		domainerror.ErrCodeInvalidBudgetStartDate,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
