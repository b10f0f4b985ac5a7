package analytics

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/history"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /analytics/summary
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// GET /analytics/history
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	snaps, err := h.service.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}
	if snaps == nil {
		snaps = []*history.Snapshot{}
	}
	c.JSON(http.StatusOK, snaps)
}

// --------------------------------------------------
// GET /analytics/compare?snapshot_ids=a,b,...
// --------------------------------------------------
func (h *Handler) Compare(c *gin.Context) {
	raw := c.Query("snapshot_ids")

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	cmp, err := h.service.Compare(c.Request.Context(), c.GetString("userID"), ids)
	if err != nil {
		if errors.Is(err, ErrTooFewSnapshots) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compare snapshots"})
		return
	}
	c.JSON(http.StatusOK, cmp)
}
