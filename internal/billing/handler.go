package billing

import (
	"errors"
	"net/http"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	ledger  core.CreditLedger
}

func NewHandler(service *Service, ledger core.CreditLedger) *Handler {
	return &Handler{service: service, ledger: ledger}
}

// --------------------------------------------------
// GET /credits/packages
// --------------------------------------------------
func (h *Handler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": CreditPackages()})
}

// --------------------------------------------------
// GET /credits/balance
// --------------------------------------------------
func (h *Handler) Balance(c *gin.Context) {
	balance, err := h.ledger.Balance(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"credits": balance})
}

type checkoutCreditsRequest struct {
	PackageID string `json:"package_id"`
}

// --------------------------------------------------
// POST /credits/checkout
// --------------------------------------------------
func (h *Handler) CheckoutCredits(c *gin.Context) {
	var req checkoutCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.service.CheckoutCredits(
		c.Request.Context(), c.GetString("userID"), req.PackageID,
	)
	if err != nil {
		if errors.Is(err, ErrUnknownPackage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "checkout failed"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// --------------------------------------------------
// GET /credits/status/:sessionId
// --------------------------------------------------
func (h *Handler) SessionStatus(c *gin.Context) {
	session, err := h.service.SessionStatus(
		c.Request.Context(), c.GetString("userID"), c.Param("sessionId"),
	)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "status check failed"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// --------------------------------------------------
// GET /subscriptions/plans
// --------------------------------------------------
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": Plans()})
}

type checkoutPlanRequest struct {
	PlanID string `json:"plan_id"`
}

// --------------------------------------------------
// POST /subscriptions/checkout
// --------------------------------------------------
func (h *Handler) CheckoutSubscription(c *gin.Context) {
	var req checkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.service.CheckoutSubscription(
		c.Request.Context(), c.GetString("userID"), req.PlanID,
	)
	if err != nil {
		if errors.Is(err, ErrUnknownPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "checkout failed"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// --------------------------------------------------
// GET /subscriptions/current
// --------------------------------------------------
func (h *Handler) CurrentSubscription(c *gin.Context) {
	sub, err := h.service.CurrentSubscription(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			c.JSON(http.StatusOK, gin.H{"subscription": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// --------------------------------------------------
// POST /subscriptions/cancel
// --------------------------------------------------
func (h *Handler) CancelSubscription(c *gin.Context) {
	err := h.service.CancelSubscription(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cancel failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription canceled"})
}
