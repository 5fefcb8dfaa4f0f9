package store

import (
	"fmt"
	"strings"
)

// NewUserInput carries the caller-supplied fields for user creation.
// ID, status and the avatar placeholder are derived by the store.
type NewUserInput struct {
	Name      string
	Email     string
	Role      UserRole
	Password  string
	AvatarURL string
}

// AddUser inserts a user. The email must not be in use by any existing user,
// compared case-insensitively. When no avatar is supplied a placeholder is
// derived from the new ID.
func (s *Store) AddUser(in NewUserInput) (User, error) {
	if in.Name == "" || in.Email == "" || in.Role == "" {
		return User{}, ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(in.Email, "") {
		return User{}, ErrEmailInUse
	}

	u := User{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		AvatarURL: in.AvatarURL,
		Status:    PresenceOffline,
		Password:  in.Password,
	}
	if u.AvatarURL == "" {
		u.AvatarURL = avatarPlaceholder(u.ID)
	}
	s.users = append(s.users, u)
	return u, nil
}

// UpdateUserInput carries an edit to an existing user. Password is applied
// only when non-empty; an empty value keeps the stored one.
type UpdateUserInput struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	Password  string
	AvatarURL string
	Status    PresenceStatus
}

// UpdateUser replaces the user record by ID. A changed email must not
// collide with another user's. A missing ID is a silent no-op, matching the
// frontend data layer this store reproduces.
func (s *Store) UpdateUser(in UpdateUserInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return User{}, nil
	}

	if in.Email != "" && s.emailTakenLocked(in.Email, in.ID) {
		return User{}, ErrEmailInUse
	}

	u := s.users[idx]
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Role != "" {
		u.Role = in.Role
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if in.Status != "" {
		u.Status = in.Status
	}
	if in.Password != "" {
		u.Password = in.Password
	}

	users := cloneUsers(s.users)
	users[idx] = u
	s.users = users
	return u, nil
}

// Authenticate resolves a user by email (case-insensitive) and checks the
// password in plaintext, as the mock data layer specifies. An Administrator
// with no stored password may log in without one. Success flips the user's
// presence to Online.
func (s *Store) Authenticate(email, password string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		u := s.users[i]
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		passwordless := u.Role == RoleAdministrator && u.Password == ""
		if !passwordless && (u.Password == "" || u.Password != password) {
			break
		}
		u.Status = PresenceOnline
		users := cloneUsers(s.users)
		users[i] = u
		s.users = users
		return u, nil
	}
	return User{}, ErrInvalidCredentials
}

// Logout flips the user's presence to Offline. Missing ID is a no-op.
func (s *Store) Logout(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			users := cloneUsers(s.users)
			users[i].Status = PresenceOffline
			s.users = users
			return
		}
	}
}

// GetUser returns a user by ID.
func (s *Store) GetUser(id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Users returns all users.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUsers(s.users)
}

func (s *Store) emailTakenLocked(email, exceptUserID string) bool {
	for _, u := range s.users {
		if u.ID == exceptUserID {
			continue
		}
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func avatarPlaceholder(id string) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?u=%s", id)
}
