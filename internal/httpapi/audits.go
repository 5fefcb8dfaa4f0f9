package httpapi

import (
	"errors"
	"net/http"

	"auditforce/internal/report"
	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListAudits(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Audits())
}

func (h Handlers) GetAudit(c *gin.Context) {
	a, ok := h.Store.GetAudit(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

type createAuditRequest struct {
	Title     string `json:"title"`
	Scope     string `json:"scope"`
	AuditorID string `json:"auditorId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GridID    string `json:"gridId"`
}

func (h Handlers) CreateAudit(c *gin.Context) {
	var req createAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	a, err := h.Store.AddAudit(store.NewAuditInput{
		Title:     req.Title,
		Scope:     req.Scope,
		AuditorID: req.AuditorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		GridID:    req.GridID,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

type auditStatusRequest struct {
	Status store.AuditStatus `json:"status"`
}

func (h Handlers) UpdateAuditStatus(c *gin.Context) {
	var req auditStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badJSON(c)
		return
	}
	h.Store.UpdateAuditStatus(c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}

type findingStatusRequest struct {
	Status store.FindingStatus `json:"status"`
}

func (h Handlers) UpdateFindingStatus(c *gin.Context) {
	var req findingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badJSON(c)
		return
	}
	h.Store.UpdateFindingStatus(c.Param("finding_id"), req.Status)
	c.Status(http.StatusNoContent)
}

type findingDescriptionRequest struct {
	Description string `json:"description"`
}

func (h Handlers) UpdateFindingDescription(c *gin.Context) {
	var req findingDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	h.Store.UpdateFindingDescription(c.Param("finding_id"), req.Description)
	c.Status(http.StatusNoContent)
}

type attachmentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

func (h Handlers) AddAttachment(c *gin.Context) {
	var req attachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		badJSON(c)
		return
	}

	att, ok := h.Store.AddAttachment(c.Param("finding_id"), req.Name, req.URL, req.Size)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "finding not found"})
		return
	}
	c.JSON(http.StatusCreated, att)
}

func (h Handlers) DeleteAttachment(c *gin.Context) {
	h.Store.DeleteAttachment(c.Param("finding_id"), c.Param("attachment_id"))
	c.Status(http.StatusNoContent)
}

// AuditReport renders the aggregated report projection for one audit.
func (h Handlers) AuditReport(c *gin.Context) {
	rep, err := report.BuildAuditReport(h.Store.Snapshot(), c.Param("id"))
	if err != nil {
		if errors.Is(err, report.ErrAuditNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, rep)
}
