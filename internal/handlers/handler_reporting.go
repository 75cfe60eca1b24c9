package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived dashboard data.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/balance-series", h.getBalanceSeries)
		reports.GET("/expense-breakdown", h.getExpenseBreakdown)
	}
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *reportingHandler) getBalanceSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.reportingService.BalanceSeries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balance series in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSeriesResponse(points))
}

func (h *reportingHandler) getExpenseBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.ExpenseBreakdown(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute expense breakdown in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute expense breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseBreakdownResponse(totals))
}
