package httpapi

import (
	"net/http"

	"auditforce/internal/calendar"
	"auditforce/internal/store"
	"auditforce/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListMeetings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Meetings())
}

// SaveMeeting inserts or edits a meeting. The caller becomes the organizer
// on creation; on edit the stored organizer always wins.
func (h Handlers) SaveMeeting(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	var m store.Meeting
	if err := c.ShouldBindJSON(&m); err != nil {
		badJSON(c)
		return
	}
	if m.ID == "" {
		m.OrganizerID = u.ID
	}

	saved, err := h.Store.SaveMeeting(m)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	status := http.StatusOK
	if m.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (h Handlers) DeleteMeeting(c *gin.Context) {
	h.Store.DeleteMeeting(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// MeetingInvite renders the meeting as a downloadable .ics invite.
func (h Handlers) MeetingInvite(c *gin.Context) {
	m, ok := h.Store.GetMeeting(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	inv := calendar.Invite{Meeting: m}
	if p, ok := h.Store.GetPolicy(m.PolicyID); ok {
		inv.PolicyTitle = p.Title
	}
	if org, ok := h.Store.GetUser(m.OrganizerID); ok {
		inv.Organizer = org
	}
	for _, id := range m.AttendeeIDs {
		if a, ok := h.Store.GetUser(id); ok {
			inv.Attendees = append(inv.Attendees, a)
		}
	}

	ics, err := calendar.Render(inv)
	if err != nil {
		logger.FromGin(c).Error("invite render failed", "meeting_id", m.ID, "err", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "meeting has malformed date or time"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="convite.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
