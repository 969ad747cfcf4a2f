package handlers

import (
	"errors"
	"net/http"

	"controlling_microwave/internal/oven"
	"controlling_microwave/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK      = "ok"
	statusApplied = "applied"

	errApplyOp         = "failed to apply operation"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// SetTimeRequest is the payload of POST /api/v1/oven/time.
type SetTimeRequest struct {
	// Cook time in ticks. 0 clears a programmed time.
	Seconds *uint `json:"seconds" binding:"required" example:"90"`
}

// OperationResponse is returned by every oven operation.
type OperationResponse struct {
	Status string      `json:"status" example:"applied"`
	Op     string      `json:"op" example:"start"`
	State  interface{} `json:"state"`
}

// apply runs one command and writes the resulting state. Operations that
// have no effect in the current state still succeed.
func (h *Handler) apply(c *gin.Context, cmd service.Command) {
	st, err := h.services.Oven.Do(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, oven.ErrUnknownOp) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errApplyOp, "oven_action_failed", err, "op", cmd.Op)
		return
	}
	c.JSON(http.StatusOK, OperationResponse{Status: statusApplied, Op: string(cmd.Op), State: st})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Reset oven
// @Description  Door closed, no time, magnetron off.
// @Tags         oven
// @Produce      json
// @Success      200  {object}  OperationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oven/reset [post]
// @Security     BearerAuth
func (h *Handler) resetOven(c *gin.Context) {
	h.apply(c, service.Command{Op: oven.OpReset})
}

// @Summary      Advance one tick
// @Description  Counts down while heating; inert otherwise.
// @Tags         oven
// @Produce      json
// @Success      200  {object}  OperationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oven/tick [post]
// @Security     BearerAuth
func (h *Handler) tickOven(c *gin.Context) {
	h.apply(c, service.Command{Op: oven.OpTick})
}

// @Summary      Press start
// @Description  Ignored with the door open. Starts 30 ticks with no time; adds 30 while heating.
// @Tags         oven
// @Produce      json
// @Success      200  {object}  OperationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oven/start [post]
// @Security     BearerAuth
func (h *Handler) startOven(c *gin.Context) {
	h.apply(c, service.Command{Op: oven.OpStart})
}

// @Summary      Press stop
// @Description  Stops heating keeping the time; a second stop clears it.
// @Tags         oven
// @Produce      json
// @Success      200  {object}  OperationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oven/stop [post]
// @Security     BearerAuth
func (h *Handler) stopOven(c *gin.Context) {
	h.apply(c, service.Command{Op: oven.OpStop})
}

// @Summary      Open door
// @Description  Turns the magnetron off immediately, keeping the time.
// @Tags         oven
// @Produce      json
// @Success      200  {object}  OperationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oven/door/open [post]
// @Security     BearerAuth
func (h *Handler) openDoor(c *gin.Context) {
	h.apply(c, service.Command{Op: oven.OpOpenDoor})
}

// @Summary      Close door
// @Description  Never starts the magnetron.
// @Tags         oven
// @Produce      json
// @Success      200  {object}  OperationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/oven/door/close [post]
// @Security     BearerAuth
func (h *Handler) closeDoor(c *gin.Context) {
	h.apply(c, service.Command{Op: oven.OpCloseDoor})
}

// @Summary      Set cook time
// @Description  Ignored while heating. 0 clears the time.
// @Tags         oven
// @Accept       json
// @Produce      json
// @Param        body  body      SetTimeRequest  true  "Cook time"
// @Success      200   {object}  OperationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/oven/time [post]
// @Security     BearerAuth
func (h *Handler) setTime(c *gin.Context) {
	var req SetTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.apply(c, service.Command{Op: oven.OpSetTime, Seconds: *req.Seconds})
}

// @Summary      Get oven state
// @Tags         oven
// @Produce      json
// @Success      200  {object}  models.OvenState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/oven/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "oven_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
