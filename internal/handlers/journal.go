package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List journal
// @Description  Audit entries oldest first
// @Tags         journal
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, entries"
// @Router       /api/v1/journal [get]
func (h *Handler) listJournal(c *gin.Context) {
	entries := h.services.Journal.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
		"lines":   lines,
	})
}

// @Summary      Clear journal
// @Tags         journal
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/journal [delete]
func (h *Handler) clearJournal(c *gin.Context) {
	h.services.Journal.Clear()
	c.JSON(http.StatusOK, gin.H{"status": statusCleared})
}
