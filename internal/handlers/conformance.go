package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"controlling_microwave/internal/conformance"

	"github.com/gin-gonic/gin"
)

const errRunConformance = "failed to run conformance suite"

// RunConformanceRequest selects the implementation to check.
type RunConformanceRequest struct {
	Implementation string `json:"implementation" binding:"required" example:"machine"`
}

// @Summary      List implementations
// @Tags         conformance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "implementations"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/conformance/implementations [get]
// @Security     BearerAuth
func (h *Handler) listImplementations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"implementations": h.services.Conformance.Implementations()})
}

// @Summary      Run conformance suite
// @Description  Runs the built-in suite against a fresh instance. A failing implementation is reported in the result, not as an HTTP error.
// @Tags         conformance
// @Accept       json
// @Produce      json
// @Param        body  body      RunConformanceRequest  true  "Implementation"
// @Success      200   {object}  models.ConformanceRun
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/conformance/run [post]
// @Security     BearerAuth
func (h *Handler) runConformance(c *gin.Context) {
	var req RunConformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	run, err := h.services.Conformance.RunConformance(c.Request.Context(), req.Implementation)
	if err != nil {
		if errors.Is(err, conformance.ErrUnknownImplementation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRunConformance, "conformance_run_failed", err,
			"implementation", req.Implementation)
		return
	}
	c.JSON(http.StatusOK, run)
}

// @Summary      List conformance runs
// @Description  Newest first.
// @Tags         conformance
// @Produce      json
// @Param        implementation  query  string  false  "Filter by implementation"  Enums(machine,flags,typed)
// @Param        limit           query  int     false  "Max rows (default 50, max 500)"
// @Success      200  {object}  map[string]interface{}  "count, runs"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/conformance/runs [get]
// @Security     BearerAuth
func (h *Handler) listRuns(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit'; use a non-negative integer"})
			return
		}
		limit = v
	}

	runs, err := h.services.Conformance.ListRuns(c.Request.Context(), c.Query("implementation"), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load runs", "conformance_runs_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(runs),
		"runs":  runs,
	})
}
