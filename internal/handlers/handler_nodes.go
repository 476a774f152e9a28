package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/dto"
	"github.com/fleetpulse/fleet_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// nodeHandler handles HTTP requests related to the fleet billing view.
type nodeHandler struct {
	billingService    portssvc.BillingReaderSvc
	preferenceService portssvc.PreferenceSvcFacade
}

// newNodeHandler creates a new nodeHandler.
func newNodeHandler(bs portssvc.BillingReaderSvc, ps portssvc.PreferenceSvcFacade) *nodeHandler {
	return &nodeHandler{
		billingService:    bs,
		preferenceService: ps,
	}
}

// registerNodeRoutes registers routes related to the fleet billing view.
func registerNodeRoutes(rg *gin.RouterGroup, billingService portssvc.BillingReaderSvc, preferenceService portssvc.PreferenceSvcFacade) {
	h := newNodeHandler(billingService, preferenceService)

	nodes := rg.Group("/nodes")
	{
		nodes.GET("", h.listNodes)
	}
}

// listNodes godoc
// @Summary List nodes with computed billing figures
// @Description Returns every node with its formatted price label, remaining value and monthly burn in the display currency
// @Tags nodes
// @Produce json
// @Param currency query string false "Display currency override (code, symbol or localized name)"
// @Success 200 {array} dto.NodeBillingResponse
// @Failure 500 {object} map[string]string "Failed to list nodes"
// @Router /nodes [get]
func (h *nodeHandler) listNodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	displayCurrency := c.Query("currency")
	if displayCurrency == "" {
		displayCurrency = h.preferenceService.GetDisplayCurrency(c.Request.Context())
	}

	billings, err := h.billingService.DescribeNodes(c.Request.Context(), displayCurrency)
	if err != nil {
		logger.Error("Failed to describe nodes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list nodes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNodeBillingResponse(billings))
}
