package httpapi

import (
	"net/http"

	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListActionPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ActionPlans())
}

func (h Handlers) GetActionPlan(c *gin.Context) {
	p, ok := h.Store.GetActionPlan(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveActionPlan inserts (empty ID) or replaces a 5W2H plan. The link and
// follow-up history of an existing plan survive the replacement.
func (h Handlers) SaveActionPlan(c *gin.Context) {
	var p store.ActionPlan
	if err := c.ShouldBindJSON(&p); err != nil {
		badJSON(c)
		return
	}

	saved, err := h.Store.SaveActionPlan(p)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	status := http.StatusOK
	if p.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

type planStatusRequest struct {
	Status store.TaskStatus `json:"status"`
}

func (h Handlers) UpdateActionPlanStatus(c *gin.Context) {
	var req planStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badJSON(c)
		return
	}
	h.Store.UpdateActionPlanStatus(c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}

type followUpRequest struct {
	Content string `json:"content"`
}

// AddFollowUp appends a progress note authored by the caller.
func (h Handlers) AddFollowUp(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req followUpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		badJSON(c)
		return
	}

	fu, found := h.Store.AddFollowUp(c.Param("id"), u.ID, req.Content)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusCreated, fu)
}
