// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/application/usecase/expense"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/entrypoint/dto"
	"github.com/expenseflow/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	addUseCase    *expense.AddExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	addUseCase *expense.AddExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	input := expense.AddExpenseInput{
		UserID:        userID,
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      entity.ExpenseCategory(req.Category),
		Description:   req.Description,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		ExpenseDate:   date,
		ExpenseTime:   req.Time,
		Tags:          req.Tags,
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
		Tags:      req.Tags,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Category != nil {
		category := entity.ExpenseCategory(*req.Category)
		input.Category = &category
	}
	if req.Description != nil {
		input.Description = req.Description
	}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidExpenseDate),
			})
			return
		}
		input.ExpenseDate = &date
	}
	if req.Time != nil {
		input.ExpenseTime = req.Time
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeExpenseNotAuthorized:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseCategory,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidExpenseTime,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
