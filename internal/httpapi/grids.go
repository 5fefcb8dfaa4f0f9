package httpapi

import (
	"net/http"

	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListGrids(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Grids())
}

func (h Handlers) GetGrid(c *gin.Context) {
	g, ok := h.Store.GetGrid(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// SaveGrid inserts (empty ID) or replaces a checklist wholesale. Existing
// audits keep their frozen copy of the requirements either way.
func (h Handlers) SaveGrid(c *gin.Context) {
	var g store.AuditGrid
	if err := c.ShouldBindJSON(&g); err != nil {
		badJSON(c)
		return
	}

	saved, err := h.Store.SaveGrid(g)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	status := http.StatusOK
	if g.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (h Handlers) DeleteGrid(c *gin.Context) {
	if err := h.Store.DeleteGrid(c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
