package httpapi

import (
	"net/http"

	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Policies())
}

func (h Handlers) GetPolicy(c *gin.Context) {
	p, ok := h.Store.GetPolicy(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type savePolicyRequest struct {
	Policy            store.Policy `json:"policy"`
	CreateNewVersion  bool         `json:"createNewVersion"`
	ChangeDescription string       `json:"changeDescription"`
}

// SavePolicy inserts or edits a policy document. The acting user becomes the
// change-history author; version bumps follow the caller's decision.
func (h Handlers) SavePolicy(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req savePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	saved, err := h.Store.SavePolicy(req.Policy, store.PolicySaveOptions{
		AuthorID:          u.ID,
		CreateNewVersion:  req.CreateNewVersion,
		ChangeDescription: req.ChangeDescription,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	status := http.StatusOK
	if req.Policy.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (h Handlers) DeletePolicy(c *gin.Context) {
	h.Store.DeletePolicy(c.Param("id"))
	c.Status(http.StatusNoContent)
}
