// Package calendar renders meeting invites as iCalendar payloads. Pure
// string building, no I/O.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"auditforce/internal/store"
)

const prodID = "-//AuditForce//Meetings//PT-BR"

// Invite is everything needed to render one VEVENT.
type Invite struct {
	Meeting     store.Meeting
	PolicyTitle string
	Organizer   store.User
	Attendees   []store.User
}

// Render produces the .ics document for the invite. Meeting date and times
// are interpreted as local wall-clock values, the same way the scheduling
// screens treat them.
func Render(inv Invite) (string, error) {
	start, err := parseWallClock(inv.Meeting.Date, inv.Meeting.StartTime)
	if err != nil {
		return "", fmt.Errorf("meeting start: %w", err)
	}
	end, err := parseWallClock(inv.Meeting.Date, inv.Meeting.EndTime)
	if err != nil {
		return "", fmt.Errorf("meeting end: %w", err)
	}

	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:" + prodID)
	writeLine("METHOD:REQUEST")
	writeLine("BEGIN:VEVENT")
	writeLine("UID:" + inv.Meeting.ID + "@auditforce")
	writeLine("DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z"))
	writeLine("DTSTART:" + start.Format("20060102T150405"))
	writeLine("DTEND:" + end.Format("20060102T150405"))
	writeLine("SUMMARY:" + escapeText(inv.Meeting.Title))
	if inv.PolicyTitle != "" {
		writeLine("DESCRIPTION:" + escapeText("Discussão da política: "+inv.PolicyTitle))
	}
	if inv.Organizer.ID != "" {
		writeLine(fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", escapeText(inv.Organizer.Name), inv.Organizer.Email))
	}
	for _, a := range inv.Attendees {
		writeLine(fmt.Sprintf("ATTENDEE;CN=%s;RSVP=TRUE:mailto:%s", escapeText(a.Name), a.Email))
	}
	writeLine("END:VEVENT")
	writeLine("END:VCALENDAR")
	return b.String(), nil
}

func parseWallClock(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

// escapeText applies RFC 5545 TEXT escaping.
func escapeText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
