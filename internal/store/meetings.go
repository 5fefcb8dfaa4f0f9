package store

import "fmt"

// SaveMeeting inserts or replaces a meeting.
//
// OrganizerID is fixed at creation: on edit the stored organizer always
// wins, whatever the incoming record carries. Attendees are notified on both
// schedule and reschedule.
func (s *Store) SaveMeeting(m Meeting) (Meeting, error) {
	if m.Title == "" || m.Date == "" {
		return Meeting{}, ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		if m.OrganizerID == "" {
			return Meeting{}, ErrInvalidArgument
		}
		m.ID = s.newID()
		s.meetings = append(cloneMeetings(s.meetings), m)
		s.notifyAttendeesLocked(m, fmt.Sprintf("Você foi convidado(a) para a reunião %q em %s.", m.Title, m.Date))
		return m, nil
	}

	for i := range s.meetings {
		if s.meetings[i].ID == m.ID {
			m.OrganizerID = s.meetings[i].OrganizerID
			meetings := cloneMeetings(s.meetings)
			meetings[i] = m
			s.meetings = meetings
			s.notifyAttendeesLocked(m, fmt.Sprintf("A reunião %q foi atualizada.", m.Title))
			return m, nil
		}
	}
	return Meeting{}, ErrNotFound
}

// DeleteMeeting cancels a meeting. Cancellation is a hard delete; each
// attendee gets a notification. Missing ID is a silent no-op.
func (s *Store) DeleteMeeting(meetingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meetings {
		if s.meetings[i].ID == meetingID {
			m := s.meetings[i]
			meetings := cloneMeetings(s.meetings)
			s.meetings = append(meetings[:i], meetings[i+1:]...)
			s.notifyAttendeesLocked(m, fmt.Sprintf("A reunião %q foi cancelada.", m.Title))
			return
		}
	}
}

// GetMeeting returns a meeting by ID.
func (s *Store) GetMeeting(id string) (Meeting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.meetings {
		if m.ID == id {
			one := cloneMeetings([]Meeting{m})
			return one[0], true
		}
	}
	return Meeting{}, false
}

// Meetings returns all meetings.
func (s *Store) Meetings() []Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMeetings(s.meetings)
}

func (s *Store) notifyAttendeesLocked(m Meeting, content string) {
	for _, uid := range m.AttendeeIDs {
		s.notifyLocked(uid, content)
	}
}
