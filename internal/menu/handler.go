package menu

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /menus/upload
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetString("userID")

	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	job, err := h.service.Upload(
		c.Request.Context(),
		userID,
		file,
		header.Filename,
		c.PostForm("menu_name"),
	)
	if err != nil {
		if errors.Is(err, core.ErrInsufficientCredits) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// --------------------------------------------------
// GET /menus
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	jobs, err := h.service.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menus"})
		return
	}
	if jobs == nil {
		jobs = []*MenuJob{}
	}
	c.JSON(http.StatusOK, jobs)
}

// --------------------------------------------------
// GET /menus/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	job, err := h.service.Get(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// --------------------------------------------------
// PUT /menus/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		MenuName string `json:"menu_name"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.service.UpdateDetails(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.MenuName,
		req.Location,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// --------------------------------------------------
// DELETE /menus/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu deleted successfully"})
}

// --------------------------------------------------
// POST /menus/:id/analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	err := h.service.RequestAnalysis(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  StatusAnalyzing,
		"message": "Menu queued for analysis.",
	})
}

// --------------------------------------------------
// POST /menus/:id/approve
// --------------------------------------------------
func (h *Handler) Approve(c *gin.Context) {
	var reqs []ApprovalRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, snapshotID, err := h.service.ApprovePrices(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		reqs,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu":         job,
		"snapshot_id":  snapshotID,
		"total_profit": job.TotalProfit,
	})
}

// --------------------------------------------------
// POST /menus/:id/competitors
// --------------------------------------------------
func (h *Handler) CompetitorAnalysis(c *gin.Context) {
	job, err := h.service.AnalyzeCompetitors(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// --------------------------------------------------
// GET /menus/:id/export?format=json|csv
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	job, err := h.service.Get(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", job.MenuName+".csv"))

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{
			"name", "category", "current_price", "food_cost",
			"suggested_price", "approved_price", "profit_per_plate", "decision",
		})
		for _, item := range job.Items {
			approved := ""
			if item.ApprovedPrice != nil {
				approved = strconv.FormatFloat(*item.ApprovedPrice, 'f', 2, 64)
			}
			_ = w.Write([]string{
				item.Name,
				item.Category,
				strconv.FormatFloat(item.CurrentPrice, 'f', 2, 64),
				strconv.FormatFloat(item.FoodCost, 'f', 2, 64),
				strconv.FormatFloat(item.SuggestedPrice, 'f', 2, 64),
				approved,
				strconv.FormatFloat(item.ProfitPerPlate, 'f', 2, 64),
				string(item.PriceDecision),
			})
		}
		w.Flush()

	case "json":
		c.JSON(http.StatusOK, job)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format"})
	}
}
