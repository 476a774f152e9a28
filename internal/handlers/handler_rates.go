package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/dto"
	"github.com/fleetpulse/fleet_billing_app/internal/middleware"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService       portssvc.RateSvcFacade
	conversionService portssvc.ConversionSvc
	defaultSource     string
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, cs portssvc.ConversionSvc, defaultSource string) *rateHandler {
	return &rateHandler{
		rateService:       rs,
		conversionService: cs,
		defaultSource:     defaultSource,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, cfg *config.Config, rateService portssvc.RateSvcFacade, conversionService portssvc.ConversionSvc) {
	h := newRateHandler(rateService, conversionService, cfg.RateSource)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.GET("/convert", h.convert)
		rates.DELETE("/cache", h.clearCache)
	}
}

// getRates godoc
// @Summary Get the current exchange-rate table
// @Description Returns the cached rate table for a provider, fetching upstream when the cache is stale
// @Tags rates
// @Produce json
// @Param source query string false "Rate provider name (defaults to the configured provider)"
// @Success 200 {object} dto.RateTableResponse
// @Failure 400 {object} map[string]string "Unknown rate provider"
// @Failure 503 {object} map[string]string "No rate table obtainable"
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	source := c.DefaultQuery("source", h.defaultSource)

	table, err := h.rateService.GetRates(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unknown rate source requested", slog.String("source", source))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get rate table", slog.String("source", source), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the cached rate table. Unresolvable currencies or missing rates return the amount unchanged.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency identifier (code, symbol or localized name)"
// @Param to query string true "Target currency identifier"
// @Param amount query number true "Amount to convert"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /rates/convert [get]
func (h *rateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Conversion degrades to identity when no table is obtainable.
	table, err := h.rateService.GetRates(c.Request.Context(), h.defaultSource)
	if err != nil {
		logger.Warn("No rate table for conversion, returning amount unchanged", slog.String("error", err.Error()))
		table = nil
	}

	converted := h.conversionService.Convert(*req.Amount, req.From, req.To, table)
	c.JSON(http.StatusOK, dto.ConvertResponse{
		From:      req.From,
		To:        req.To,
		Amount:    *req.Amount,
		Converted: converted,
	})
}

// clearCache godoc
// @Summary Drop cached rate tables
// @Description Drops the cached table for a provider, or every provider when none is given
// @Tags rates
// @Produce json
// @Param source query string false "Rate provider name"
// @Success 200 {object} map[string]string
// @Router /rates/cache [delete]
func (h *rateHandler) clearCache(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	source := c.Query("source")

	h.rateService.ClearCache(source)
	logger.Info("Rate cache cleared", slog.String("source", source))
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
