package llm

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

type describeRequest struct {
	ItemName string `json:"item_name"`
	Cuisine  string `json:"cuisine"`
	Style    string `json:"style"`
}

// --------------------------------------------------
// POST /ai/generate-description
// --------------------------------------------------
func (h *Handler) GenerateDescription(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name is required"})
		return
	}
	if req.Style == "" {
		req.Style = DefaultDescriptionStyle
	}
	if !ValidDescriptionStyle(req.Style) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown style"})
		return
	}

	desc, err := h.client.GenerateDescription(
		c.Request.Context(), req.ItemName, req.Cuisine, req.Style,
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "description generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_name":   req.ItemName,
		"style":       req.Style,
		"description": desc,
	})
}
