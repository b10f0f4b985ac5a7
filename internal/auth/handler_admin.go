package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JobStore is the slice of the menu repository the admin
// endpoints need for cascading deletes and platform stats.
type JobStore interface {
	Count(ctx context.Context) (int, error)
	DeleteAllByUser(ctx context.Context, userID string) error
}

type AdminHandler struct {
	repo UserRepository
	jobs JobStore
}

func NewAdminHandler(repo UserRepository, jobs JobStore) *AdminHandler {
	return &AdminHandler{repo: repo, jobs: jobs}
}

// --------------------------------------------------
// GET /admin/users
// --------------------------------------------------
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

// --------------------------------------------------
// DELETE /admin/users/:id
// --------------------------------------------------
// Removes the user and everything they own. Admins cannot
// delete their own account through this endpoint.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	targetID := c.Param("id")
	if targetID == c.GetString("userID") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.FindByID(ctx, targetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrUserNotFound.Error()})
		return
	}

	if err := h.jobs.DeleteAllByUser(ctx, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user menus"})
		return
	}
	if err := h.repo.Delete(ctx, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// --------------------------------------------------
// GET /admin/stats
// --------------------------------------------------
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	userCount, err := h.repo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	menuCount, err := h.jobs.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users": userCount,
		"total_menus": menuCount,
	})
}
