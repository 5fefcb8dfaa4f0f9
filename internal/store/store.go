package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the whole domain object graph and every mutation over it.
//
// Concurrency model: single writer. One mutex serializes all operations, so
// each mutation is atomic with respect to every other; there are no
// transactions and no partial failures. Reads hand out copies, never
// references into internal state.
//
// Construct one Store per process (or per test) with an explicit seed
// snapshot. There are no package-level singletons.
type Store struct {
	mu sync.Mutex

	users         []User
	grids         []AuditGrid
	audits        []Audit
	plans         []ActionPlan
	policies      []Policy
	meetings      []Meeting
	notifications []Notification

	auditSeq int

	// clock and newID are injectable for deterministic tests.
	clock func() time.Time
	newID func() string
}

// Snapshot is a point-in-time copy of the domain state. Projections
// (reports, chat context) operate on snapshots, never on live store state.
type Snapshot struct {
	Users         []User
	Grids         []AuditGrid
	Audits        []Audit
	ActionPlans   []ActionPlan
	Policies      []Policy
	Meetings      []Meeting
	Notifications []Notification
}

var (
	ErrNotFound           = errors.New("store: not found")
	ErrEmailInUse         = errors.New("store: email already in use")
	ErrGridNotFound       = errors.New("store: grid not found")
	ErrGridInUse          = errors.New("store: grid referenced by one or more audits")
	ErrInvalidPlanLink    = errors.New("store: action plan must link to exactly one finding or indicator")
	ErrInvalidCredentials = errors.New("store: invalid credentials")
	ErrInvalidArgument    = errors.New("store: invalid argument")
)

// New builds a store seeded with the given snapshot.
func New(seed Snapshot) *Store {
	s := &Store{
		clock: time.Now,
		newID: uuid.NewString,
	}
	s.users = cloneUsers(seed.Users)
	s.grids = cloneGrids(seed.Grids)
	s.audits = cloneAudits(seed.Audits)
	s.plans = clonePlans(seed.ActionPlans)
	s.policies = clonePolicies(seed.Policies)
	s.meetings = cloneMeetings(seed.Meetings)
	s.notifications = cloneNotifications(seed.Notifications)
	s.auditSeq = len(s.audits)
	return s
}

// WithClock overrides the store clock. Test hook.
func (s *Store) WithClock(clock func() time.Time) *Store {
	s.clock = clock
	return s
}

// WithIDGenerator overrides ID generation. Test hook.
func (s *Store) WithIDGenerator(newID func() string) *Store {
	s.newID = newID
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Users:         cloneUsers(s.users),
		Grids:         cloneGrids(s.grids),
		Audits:        cloneAudits(s.audits),
		ActionPlans:   clonePlans(s.plans),
		Policies:      clonePolicies(s.policies),
		Meetings:      cloneMeetings(s.meetings),
		Notifications: cloneNotifications(s.notifications),
	}
}

func (s *Store) nextAuditCode(now time.Time) string {
	s.auditSeq++
	return fmt.Sprintf("AUD-%d-%03d", now.Year(), s.auditSeq)
}

// --- deep copies ---
//
// Entities hold nested slices, so copying a slice of structs is not enough;
// each owning slice is cloned as well.

func cloneUsers(in []User) []User {
	out := make([]User, len(in))
	copy(out, in)
	return out
}

func cloneGrids(in []AuditGrid) []AuditGrid {
	out := make([]AuditGrid, len(in))
	for i, g := range in {
		g.Requirements = append([]AuditRequirement(nil), g.Requirements...)
		out[i] = g
	}
	return out
}

func cloneAudits(in []Audit) []Audit {
	out := make([]Audit, len(in))
	for i, a := range in {
		findings := make([]Finding, len(a.Findings))
		for j, f := range a.Findings {
			f.Attachments = append([]Attachment(nil), f.Attachments...)
			findings[j] = f
		}
		a.Findings = findings
		out[i] = a
	}
	return out
}

func clonePlans(in []ActionPlan) []ActionPlan {
	out := make([]ActionPlan, len(in))
	for i, p := range in {
		p.FollowUps = append([]FollowUp(nil), p.FollowUps...)
		if p.HowMuch != nil {
			v := *p.HowMuch
			p.HowMuch = &v
		}
		out[i] = p
	}
	return out
}

func clonePolicies(in []Policy) []Policy {
	out := make([]Policy, len(in))
	for i, p := range in {
		p.PerformanceIndicators = append([]PerformanceIndicator(nil), p.PerformanceIndicators...)
		p.ChangeHistory = append([]PolicyChange(nil), p.ChangeHistory...)
		out[i] = p
	}
	return out
}

func cloneMeetings(in []Meeting) []Meeting {
	out := make([]Meeting, len(in))
	for i, m := range in {
		m.AttendeeIDs = append([]string(nil), m.AttendeeIDs...)
		out[i] = m
	}
	return out
}

func cloneNotifications(in []Notification) []Notification {
	out := make([]Notification, len(in))
	copy(out, in)
	return out
}
