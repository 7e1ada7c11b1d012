// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snehithlal/money-manager/internal/application/usecase/analytics"
	"github.com/snehithlal/money-manager/internal/domain/entity"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
	"github.com/snehithlal/money-manager/internal/integration/entrypoint/dto"
	"github.com/snehithlal/money-manager/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles summary endpoints.
type AnalyticsController struct {
	monthlyUseCase  *analytics.MonthlySummaryUseCase
	categoryUseCase *analytics.CategorySummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	monthlyUseCase *analytics.MonthlySummaryUseCase,
	categoryUseCase *analytics.CategorySummaryUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		monthlyUseCase:  monthlyUseCase,
		categoryUseCase: categoryUseCase,
	}
}

// MonthlySummary handles GET /analytics/monthly/:year/:month requests.
func (c *AnalyticsController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be a number",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be a number",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), analytics.MonthlySummaryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output.Summary))
}

// CategorySummary handles GET /analytics/categories requests.
func (c *AnalyticsController) CategorySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.CategorySummaryInput{
		UserID: userID,
	}
	if transactionType := ctx.Query("type"); transactionType != "" {
		txType := entity.TransactionType(transactionType)
		input.Type = &txType
	}

	output, err := c.categoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySummaryListResponse(output.Summaries))
}

// handleAnalyticsError maps analytics errors to HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
