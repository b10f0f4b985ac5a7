package feedback

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type submitRequest struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
}

// --------------------------------------------------
// POST /feedback
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}
	if !ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	f := &Feedback{
		ID:        uuid.New().String(),
		UserID:    c.GetString("userID"),
		UserEmail: c.GetString("userEmail"),
		Category:  req.Category,
		Message:   strings.TrimSpace(req.Message),
		Rating:    req.Rating,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repo.Insert(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "feedback received", "id": f.ID})
}

// --------------------------------------------------
// GET /admin/feedback
// --------------------------------------------------
func (h *Handler) ListAll(c *gin.Context) {
	entries, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries, "total": len(entries)})
}
