package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusRequested = "requested"
	statusCleared   = "cleared"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Appliance status
// @Description  Live sensed state plus current time and valid schedules
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  models.StatusSnapshot
// @Router       /api/v1/appliance/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Appliance.Status(c.Request.Context()))
}

// drive runs one manual actuation and reports the outcome in the body.
// A FAILED outcome is still a 200: the retry budget ran out, nothing broke.
func (h *Handler) drive(c *gin.Context, desired bool) {
	outcome := h.services.Appliance.Drive(desired)
	if h.log != nil && outcome.Result == models.ResultFailed {
		h.log.Warnw("appliance_drive_failed", "desired", desired, "attempts", outcome.Attempts)
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"message": outcome.String(),
	})
}

// @Summary      Turn appliance on
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "outcome, message"
// @Router       /api/v1/appliance/on [put]
func (h *Handler) turnOn(c *gin.Context) {
	h.drive(c, true)
}

// @Summary      Turn appliance off
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "outcome, message"
// @Router       /api/v1/appliance/off [put]
func (h *Handler) turnOff(c *gin.Context) {
	h.drive(c, false)
}

// @Summary      Request time resync
// @Description  Fire-and-forget ping to the configured time service
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/time/resync [post]
func (h *Handler) requestResync(c *gin.Context) {
	if err := h.services.Appliance.RequestResync(); err != nil {
		h.logAndJSONError(c, http.StatusServiceUnavailable, err.Error(), "time_resync_unavailable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRequested})
}
