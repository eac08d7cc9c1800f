// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expenseflow/backend/internal/application/usecase/dashboard"
)

// CategoryTotalResponse represents one category's monthly spend.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// DayTotalResponse represents one day in the trailing week series.
type DayTotalResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Total string `json:"total"`
}

// DashboardSummaryResponse represents the dashboard summary.
type DashboardSummaryResponse struct {
	ReferenceDate     string                  `json:"reference_date"`
	TodayTotal        string                  `json:"today_total"`
	MonthTotal        string                  `json:"month_total"`
	TransactionCount  int                     `json:"transaction_count"`
	AveragePerDay     string                  `json:"average_per_day"`
	CategoryBreakdown []CategoryTotalResponse `json:"category_breakdown"`
	TrailingWeek      []DayTotalResponse      `json:"trailing_week"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to its DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	breakdown := make([]CategoryTotalResponse, len(output.CategoryBreakdown))
	for i, ct := range output.CategoryBreakdown {
		breakdown[i] = CategoryTotalResponse{
			Category: string(ct.Category),
			Total:    ct.Total.String(),
		}
	}

	week := make([]DayTotalResponse, len(output.TrailingWeek))
	for i, day := range output.TrailingWeek {
		week[i] = DayTotalResponse{
			Date:  day.Date.Format("2006-01-02"),
			Label: day.Label,
			Total: day.Total.String(),
		}
	}

	return DashboardSummaryResponse{
		ReferenceDate:     output.ReferenceDate.Format("2006-01-02"),
		TodayTotal:        output.TodayTotal.String(),
		MonthTotal:        output.MonthTotal.String(),
		TransactionCount:  output.TransactionCount,
		AveragePerDay:     output.AveragePerDay.StringFixed(2),
		CategoryBreakdown: breakdown,
		TrailingWeek:      week,
	}
}
