package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/dto"
	"github.com/fleetpulse/fleet_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler handles HTTP requests related to display preferences.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

// newPreferenceHandler creates a new preferenceHandler.
func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		preferenceService: ps,
	}
}

// registerPreferenceRoutes registers routes related to display preferences.
func registerPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preferenceService)

	preferences := rg.Group("/preferences")
	{
		preferences.GET("/currency", h.getDisplayCurrency)
		preferences.PUT("/currency", h.setDisplayCurrency)
	}
}

// getDisplayCurrency godoc
// @Summary Get the display currency
// @Description Returns the canonical display currency, falling back to the configured default when none is stored
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.DisplayCurrencyResponse
// @Router /preferences/currency [get]
func (h *preferenceHandler) getDisplayCurrency(c *gin.Context) {
	currency := h.preferenceService.GetDisplayCurrency(c.Request.Context())
	c.JSON(http.StatusOK, dto.DisplayCurrencyResponse{Currency: currency})
}

// setDisplayCurrency godoc
// @Summary Update the display currency
// @Description Resolves the given identifier (code, symbol or localized name) and stores it as the display currency
// @Tags preferences
// @Accept json
// @Produce json
// @Param preference body dto.UpdateDisplayCurrencyRequest true "Display currency"
// @Success 200 {object} dto.DisplayCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to store preference"
// @Router /preferences/currency [put]
func (h *preferenceHandler) setDisplayCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDisplayCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetDisplayCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.preferenceService.SetDisplayCurrency(c.Request.Context(), req.Currency); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting display currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to store display currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store preference"})
		}
		return
	}

	logger.Info("Display currency updated", slog.String("currency", req.Currency))
	c.JSON(http.StatusOK, dto.DisplayCurrencyResponse{Currency: h.preferenceService.GetDisplayCurrency(c.Request.Context())})
}
