package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

const errInvalidBodyPref = "invalid body: "

// Request DTO for upserting a schedule slot.
// Range checks live in the schedule service so the offending field is
// always named the same way; the handler only insists the body parses and
// carries a boolean "on".
type scheduleRequest struct {
	Hour   int   `json:"hour"`
	Minute int   `json:"minute"`
	On     *bool `json:"on" binding:"required"` // pointer so "false" still binds
}

// UpsertScheduleRequest is an exported model for Swagger docs of the
// upsert payload.
type UpsertScheduleRequest struct {
	// Hour of day, 0..23
	Hour int `json:"hour" example:"7"`
	// Minute, 0..59
	Minute int `json:"minute" example:"30"`
	// Desired appliance state when the slot fires
	On bool `json:"on" example:"true"`
}

// parseSlotID reads the :id path parameter. A non-numeric id is reported
// the same way as an out-of-range one, through the service validation.
func parseSlotID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return -1, false
	}
	return id, true
}

// respondScheduleError maps the service error taxonomy to HTTP codes.
func (h *Handler) respondScheduleError(c *gin.Context, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to persist schedule", "schedule_persist_failed", err)
	}
}

// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, schedules"
// @Router       /api/v1/schedules [get]
func (h *Handler) listSchedules(c *gin.Context) {
	slots := h.services.Schedules.ListValid()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(slots),
		"schedules": slots,
	})
}

// @Summary      Upsert schedule slot
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        id    path   int                    true  "Slot id (0..15)"
// @Param        body  body   UpsertScheduleRequest  true  "Slot payload"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/schedules/{id} [put]
func (h *Handler) upsertSchedule(c *gin.Context) {
	id, ok := parseSlotID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid id: must be an integer",
			"field": "id",
		})
		return
	}

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Schedules.Upsert(ctx, id, req.Hour, req.Minute, *req.On); err != nil {
		h.respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Delete schedule slot
// @Tags         schedules
// @Produce      json
// @Param        id  path  int  true  "Slot id (0..15)"
// @Success      200  {object}  map[string]int
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/schedules/{id} [delete]
func (h *Handler) removeSchedule(c *gin.Context) {
	id, ok := parseSlotID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
		return
	}

	if err := h.services.Schedules.Remove(c.Request.Context(), id); err != nil {
		h.respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
