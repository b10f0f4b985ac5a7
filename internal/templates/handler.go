package templates

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// --------------------------------------------------
// GET /templates
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": All()})
}

// --------------------------------------------------
// GET /templates/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	t, ok := Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}
