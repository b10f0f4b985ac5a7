package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes cross-user job views for platform operators.
type AdminHandler struct {
	repo Repository
}

func NewAdminHandler(repo Repository) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// --------------------------------------------------
// GET /admin/menus
// --------------------------------------------------
func (h *AdminHandler) ListAll(c *gin.Context) {
	jobs, err := h.repo.ListAll(c.Request.Context())
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
// DELETE /admin/menus/:id
// --------------------------------------------------
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.repo.DeleteAny(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu deleted successfully"})
}
