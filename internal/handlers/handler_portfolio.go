package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/dto"
	"github.com/fleetpulse/fleet_billing_app/internal/middleware"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// portfolioHandler handles HTTP requests related to fleet-level aggregates.
type portfolioHandler struct {
	billingService    portssvc.BillingReaderSvc
	preferenceService portssvc.PreferenceSvcFacade
	breakdownLimit    int
}

// newPortfolioHandler creates a new portfolioHandler.
func newPortfolioHandler(bs portssvc.BillingReaderSvc, ps portssvc.PreferenceSvcFacade, breakdownLimit int) *portfolioHandler {
	return &portfolioHandler{
		billingService:    bs,
		preferenceService: ps,
		breakdownLimit:    breakdownLimit,
	}
}

// registerPortfolioRoutes registers routes related to fleet-level aggregates.
func registerPortfolioRoutes(rg *gin.RouterGroup, cfg *config.Config, billingService portssvc.BillingReaderSvc, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPortfolioHandler(billingService, preferenceService, cfg.BreakdownLimit)

	portfolio := rg.Group("/portfolio")
	{
		portfolio.GET("/summary", h.getSummary)
		portfolio.GET("/renewals", h.getRenewals)
	}
}

// getSummary godoc
// @Summary Get the portfolio summary
// @Description Aggregates the fleet into monthly burn, remaining value, renewal totals and ranked breakdowns in the display currency
// @Tags portfolio
// @Produce json
// @Param currency query string false "Display currency override (code, symbol or localized name)"
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 500 {object} map[string]string "Failed to summarize portfolio"
// @Router /portfolio/summary [get]
func (h *portfolioHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	displayCurrency := c.Query("currency")
	if displayCurrency == "" {
		displayCurrency = h.preferenceService.GetDisplayCurrency(c.Request.Context())
	}

	summary, err := h.billingService.Summarize(c.Request.Context(), displayCurrency, h.breakdownLimit)
	if err != nil {
		logger.Error("Failed to summarize portfolio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize portfolio"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary))
}

// getRenewals godoc
// @Summary Project upcoming renewals
// @Description Enumerates renewal events from now to the end of the requested window, converted to the display currency
// @Tags portfolio
// @Produce json
// @Param window query string false "Projection window: month or year" Enums(month, year) default(month)
// @Param currency query string false "Display currency override (code, symbol or localized name)"
// @Success 200 {object} dto.RenewalProjectionResponse
// @Failure 400 {object} map[string]string "Unknown window"
// @Failure 500 {object} map[string]string "Failed to project renewals"
// @Router /portfolio/renewals [get]
func (h *portfolioHandler) getRenewals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	displayCurrency := c.Query("currency")
	if displayCurrency == "" {
		displayCurrency = h.preferenceService.GetDisplayCurrency(c.Request.Context())
	}

	now := time.Now()
	var windowEnd time.Time
	switch window := c.DefaultQuery("window", "month"); window {
	case "month":
		windowEnd = domain.EndOfMonth(now)
	case "year":
		windowEnd = domain.EndOfYear(now)
	default:
		logger.Warn("Unknown renewal window requested", slog.String("window", window))
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be 'month' or 'year'"})
		return
	}

	proj, err := h.billingService.Renewals(c.Request.Context(), displayCurrency, now, windowEnd)
	if err != nil {
		logger.Error("Failed to project renewals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project renewals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRenewalProjectionResponse(proj, string(domain.ResolveCurrency(displayCurrency))))
}
