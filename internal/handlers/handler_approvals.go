package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/middleware"
)

// approvalsHandler serves the merged pending-approvals feed.
type approvalsHandler struct {
	approvalsService portssvc.ApprovalsSvcFacade
}

func newApprovalsHandler(as portssvc.ApprovalsSvcFacade) *approvalsHandler {
	return &approvalsHandler{approvalsService: as}
}

// registerApprovalsRoutes registers the approvals endpoint.
func registerApprovalsRoutes(rg *gin.RouterGroup, approvalsService portssvc.ApprovalsSvcFacade) {
	h := newApprovalsHandler(approvalsService)
	rg.GET("/approvals", h.pendingApprovals)
}

// pendingApprovals godoc
// @Summary List pending approvals
// @Description Retrieves documents awaiting settlement across all kinds, newest first. A kind whose source fails is reported unavailable in the summary instead of failing the response.
// @Tags approvals
// @Produce  json
// @Success 200 {object} dto.PendingApprovalsResponse
// @Failure 500 {object} map[string]string "Failed to aggregate approvals"
// @Security BearerAuth
// @Router /approvals [get]
func (h *approvalsHandler) pendingApprovals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	feed, err := h.approvalsService.PendingApprovals(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to aggregate pending approvals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate approvals"})
		return
	}

	c.JSON(http.StatusOK, feed)
}
