package store

// notifyLocked appends a notification for one user. Callers must hold s.mu.
func (s *Store) notifyLocked(userID, content string) {
	if userID == "" {
		return
	}
	s.notifications = append(cloneNotifications(s.notifications), Notification{
		ID:        s.newID(),
		UserID:    userID,
		Content:   content,
		Read:      false,
		CreatedAt: s.clock().UTC(),
	})
}

// MarkNotificationRead flips the read flag on one notification. Missing ID
// is a silent no-op.
func (s *Store) MarkNotificationRead(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			notifications := cloneNotifications(s.notifications)
			notifications[i].Read = true
			s.notifications = notifications
			return
		}
	}
}

// MarkAllNotificationsRead flips the read flag on every notification of one
// user.
func (s *Store) MarkAllNotificationsRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := cloneNotifications(s.notifications)
	for i := range notifications {
		if notifications[i].UserID == userID {
			notifications[i].Read = true
		}
	}
	s.notifications = notifications
}

// NotificationsFor returns the notifications addressed to one user.
func (s *Store) NotificationsFor(userID string) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
