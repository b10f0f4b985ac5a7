package profile

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type upsertRequest struct {
	RestaurantName string `json:"restaurant_name"`
	CuisineType    string `json:"cuisine_type"`
	Location       string `json:"location"`
	PriceRange     string `json:"price_range"`
	Description    string `json:"description"`
}

// --------------------------------------------------
// PUT /profile
// --------------------------------------------------
func (h *Handler) Upsert(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if strings.TrimSpace(req.RestaurantName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_name is required"})
		return
	}
	if !ValidPriceRange(req.PriceRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_range"})
		return
	}

	p := &Profile{
		UserID:         c.GetString("userID"),
		RestaurantName: strings.TrimSpace(req.RestaurantName),
		CuisineType:    req.CuisineType,
		Location:       req.Location,
		PriceRange:     req.PriceRange,
		Description:    req.Description,
		UpdatedAt:      time.Now().UTC(),
	}

	if err := h.repo.Upsert(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// GET /profile
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.GetByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}
