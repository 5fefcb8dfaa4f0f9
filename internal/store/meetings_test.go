package store

import "testing"

func TestSaveMeeting_OrganizerImmutable(t *testing.T) {
	s := newTestStore(Snapshot{})

	m, err := s.SaveMeeting(Meeting{
		Title:       "Revisão da política",
		PolicyID:    "p1",
		OrganizerID: "u1",
		AttendeeIDs: []string{"u2", "u3"},
		Date:        "2024-07-01",
		StartTime:   "10:00",
		EndTime:     "11:00",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	edited := m
	edited.OrganizerID = "u9"
	edited.Title = "Revisão da política (remarcada)"
	got, err := s.SaveMeeting(edited)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.OrganizerID != "u1" {
		t.Fatalf("organizer must be fixed at creation, got %q", got.OrganizerID)
	}
}

func TestSaveMeeting_NotifiesAttendees(t *testing.T) {
	s := newTestStore(Snapshot{})

	_, err := s.SaveMeeting(Meeting{
		Title: "Kickoff", PolicyID: "p1", OrganizerID: "u1",
		AttendeeIDs: []string{"u2", "u3"}, Date: "2024-07-01", StartTime: "10:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.NotificationsFor("u2")) != 1 || len(s.NotificationsFor("u3")) != 1 {
		t.Fatalf("each attendee gets an invite notification")
	}
	if len(s.NotificationsFor("u1")) != 0 {
		t.Fatalf("organizer is not notified of their own meeting")
	}
}

func TestDeleteMeeting_HardDeleteWithCancellationNotices(t *testing.T) {
	s := newTestStore(Snapshot{})
	m, _ := s.SaveMeeting(Meeting{
		Title: "Kickoff", PolicyID: "p1", OrganizerID: "u1",
		AttendeeIDs: []string{"u2"}, Date: "2024-07-01", StartTime: "10:00", EndTime: "11:00",
	})

	s.DeleteMeeting(m.ID)
	if len(s.Meetings()) != 0 {
		t.Fatalf("expected meeting removed")
	}
	// Invite + cancellation.
	if got := len(s.NotificationsFor("u2")); got != 2 {
		t.Fatalf("expected cancellation notification, got %d total", got)
	}
}

func TestNotifications_MarkReadAndBulk(t *testing.T) {
	s := newTestStore(Snapshot{})
	s.SaveMeeting(Meeting{
		Title: "A", PolicyID: "p1", OrganizerID: "u1",
		AttendeeIDs: []string{"u2", "u3"}, Date: "2024-07-01", StartTime: "09:00", EndTime: "10:00",
	})
	s.SaveMeeting(Meeting{
		Title: "B", PolicyID: "p1", OrganizerID: "u1",
		AttendeeIDs: []string{"u2"}, Date: "2024-07-02", StartTime: "09:00", EndTime: "10:00",
	})

	u2 := s.NotificationsFor("u2")
	if len(u2) != 2 {
		t.Fatalf("expected 2 notifications for u2, got %d", len(u2))
	}

	s.MarkNotificationRead(u2[0].ID)
	u2 = s.NotificationsFor("u2")
	if !u2[0].Read || u2[1].Read {
		t.Fatalf("expected only the first notification read")
	}

	s.MarkAllNotificationsRead("u2")
	for _, n := range s.NotificationsFor("u2") {
		if !n.Read {
			t.Fatalf("expected all of u2's notifications read")
		}
	}
	for _, n := range s.NotificationsFor("u3") {
		if n.Read {
			t.Fatalf("bulk mark must be scoped to one user")
		}
	}
}
