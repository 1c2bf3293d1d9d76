package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/settleline/bizledger/internal/apperrors"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

// payrollHandler handles HTTP requests related to payroll runs.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers routes related to payroll runs.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll-runs")
	{
		payroll.POST("", h.createPayrollRun)
		payroll.GET("/:id", h.getPayrollRun)
		payroll.GET("", h.listPayrollRuns)
	}
}

// createPayrollRun godoc
// @Summary Create a new payroll run
// @Description Creates a PENDING payroll run
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   run body dto.CreatePayrollRunRequest true "Payroll run details"
// @Success 201 {object} dto.PayrollRunResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create payroll run"
// @Security BearerAuth
// @Router /payroll-runs [post]
func (h *payrollHandler) createPayrollRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayrollRun", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	run, err := h.payrollService.CreatePayrollRun(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create payroll run in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payroll run"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayrollRunResponse(run))
}

// getPayrollRun godoc
// @Summary Get a payroll run by ID
// @Description Retrieves details for a specific payroll run
// @Tags payroll
// @Produce  json
// @Param   id path string true "Payroll run ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} map[string]string "Payroll run not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payroll run"
// @Security BearerAuth
// @Router /payroll-runs/{id} [get]
func (h *payrollHandler) getPayrollRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	run, err := h.payrollService.GetPayrollRunByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payroll run not found"})
		} else {
			logger.Error("Failed to get payroll run from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payroll run"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// listPayrollRuns godoc
// @Summary List payroll runs
// @Description Retrieves a paginated list of the tenant's payroll runs
// @Tags payroll
// @Produce  json
// @Param   limit query int false "Max items to return" default(20)
// @Param   offset query int false "Items to skip" default(0)
// @Success 200 {array} dto.PayrollRunResponse
// @Failure 500 {object} map[string]string "Failed to list payroll runs"
// @Security BearerAuth
// @Router /payroll-runs [get]
func (h *payrollHandler) listPayrollRuns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	runs, err := h.payrollService.ListPayrollRuns(c.Request.Context(), tenantID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list payroll runs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payroll runs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayrollRunResponse(runs))
}
