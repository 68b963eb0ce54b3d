package handlers

import (
	"errors"
	"net/http"

	"elevator_dispatch/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errRequestFloor    = "failed to register request"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// floorRequest is the car panel payload. Floor is a pointer so that 0 passes "required".
type floorRequest struct {
	Floor *int `json:"floor" binding:"required"`
}

// callRequest is the landing call payload.
type callRequest struct {
	Floor     *int   `json:"floor" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

// FloorRequestBody is an exported model for Swagger docs of the request payload.
type FloorRequestBody struct {
	// Destination floor
	Floor int `json:"floor" example:"7"`
}

// CallRequestBody is an exported model for Swagger docs of the call payload.
type CallRequestBody struct {
	// Floor the call was made from
	Floor int `json:"floor" example:"3"`
	// Requested travel direction. Allowed: UP, DOWN, BOTH
	Direction string `json:"direction" example:"DOWN"`
}

func respondWithResult(c *gin.Context, res service.RequestResult) {
	c.JSON(http.StatusOK, gin.H{
		"status": res.Outcome,
		"state":  res.State,
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Request a floor
// @Description  Car panel button. Out-of-range floors are answered with status "ignored".
// @Tags         elevator
// @Accept       json
// @Produce      json
// @Param        body  body   FloorRequestBody  true  "Destination floor"
// @Success      200   {object}  map[string]interface{}  "status (accepted|duplicate|current_floor|ignored), state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/elevator/requests [post]
// @Security     BearerAuth
func (h *Handler) requestFloor(c *gin.Context) {
	var req floorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.Elevator.RequestFloor(c.Request.Context(), *req.Floor)
	if err != nil {
		if errors.Is(err, service.ErrNotDispatcher) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRequestFloor, "elevator_request_failed", err, "floor", *req.Floor)
		return
	}
	respondWithResult(c, res)
}

// @Summary      Call the car to a floor
// @Description  Landing call button. The floor is scheduled like a car request and the call lamp for the direction is lit.
// @Tags         elevator
// @Accept       json
// @Produce      json
// @Param        body  body   CallRequestBody  true  "Landing call"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/elevator/calls [post]
// @Security     BearerAuth
func (h *Handler) callFloor(c *gin.Context) {
	var req callRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.Elevator.CallFloor(c.Request.Context(), *req.Floor, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotDispatcher):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		case service.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRequestFloor, "elevator_call_failed", err,
			"floor", *req.Floor, "direction", req.Direction)
		return
	}
	respondWithResult(c, res)
}

// @Summary      Get elevator state
// @Tags         elevator
// @Produce      json
// @Success      200  {object}  models.ElevatorState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/elevator/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "elevator_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
