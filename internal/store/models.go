package store

import "time"

// Domain entities for the audit-management store.
//
// Status values keep the Portuguese labels used by the AuditForce frontend.
// They are part of the data contract; do not translate or rename them.

type UserRole string

const (
	RoleAuditor       UserRole = "Auditor"
	RoleManager       UserRole = "Manager"
	RoleEmployee      UserRole = "Employee"
	RoleAdministrator UserRole = "Administrator"
)

type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "Online"
	PresenceOffline PresenceStatus = "Offline"
)

// User is an application account.
//
// Invariants:
// - Email is unique across all users, compared case-insensitively.
// - Password is stored and compared in plaintext. This is the specified mock
//   behavior of the demo data layer, not a production credential store.
// - An Administrator with an empty Password may authenticate without one.
type User struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      UserRole       `json:"role"`
	AvatarURL string         `json:"avatarUrl"`
	Status    PresenceStatus `json:"status"`
	Password  string         `json:"-"`
}

// AuditRequirement is one checklist item inside a grid.
type AuditRequirement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Guidance    string `json:"guidance"`
}

// AuditGrid is a reusable checklist of requirements for a given scope.
// A grid cannot be deleted while any audit references it.
type AuditGrid struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Scope        string             `json:"scope"`
	Requirements []AuditRequirement `json:"requirements"`
}

type AuditStatus string

const (
	AuditStatusPlanning   AuditStatus = "Planejando"
	AuditStatusInProgress AuditStatus = "Em Execução"
	AuditStatusActionPlan AuditStatus = "Plano de Ação"
	AuditStatusDone       AuditStatus = "Concluído"
)

type FindingStatus string

const (
	FindingCompliant     FindingStatus = "Conforme"
	FindingNonCompliant  FindingStatus = "Não Conforme"
	FindingNotApplicable FindingStatus = "Não Aplicável"
)

// Attachment is evidence attached to a finding. The URL is an ephemeral
// content reference valid only for the process lifetime.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Finding is the recorded compliance result for one requirement within one
// specific audit. The requirement title is copied at audit creation and is
// not kept in sync with later grid edits.
type Finding struct {
	ID            string        `json:"id"`
	RequirementID string        `json:"requirementId"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        FindingStatus `json:"status"`
	Attachments   []Attachment  `json:"attachments"`
}

// Audit is one scheduled audit against a grid.
//
// Invariants:
// - Findings are materialized once at creation, one per grid requirement,
//   and the set membership never changes afterwards. Only a finding's
//   status, description and attachments mutate.
// - Status is set by the user; it is never derived from finding statuses.
type Audit struct {
	ID        string      `json:"id"`
	Code      string      `json:"code"`
	Title     string      `json:"title"`
	Scope     string      `json:"scope"`
	AuditorID string      `json:"auditorId"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Status    AuditStatus `json:"status"`
	GridID    string      `json:"gridId"`
	Findings  []Finding   `json:"findings"`
}

type TaskStatus string

const (
	TaskToDo       TaskStatus = "A Fazer"
	TaskInProgress TaskStatus = "Em Progresso"
	TaskDone       TaskStatus = "Concluído"
)

type PlanLinkKind string

const (
	LinkFinding   PlanLinkKind = "finding"
	LinkIndicator PlanLinkKind = "indicator"
)

// PlanLink ties an action plan to exactly one source: an audit finding or a
// policy performance indicator. Modeling it as a tagged pair makes the
// "exactly one" rule structural instead of two nullable fields.
type PlanLink struct {
	Kind     PlanLinkKind `json:"kind"`
	TargetID string       `json:"targetId"`
}

// FindingLink builds a link to an audit finding.
func FindingLink(findingID string) PlanLink {
	return PlanLink{Kind: LinkFinding, TargetID: findingID}
}

// IndicatorLink builds a link to a policy performance indicator.
func IndicatorLink(indicatorID string) PlanLink {
	return PlanLink{Kind: LinkIndicator, TargetID: indicatorID}
}

// Valid reports whether the link names a kind and a target.
func (l PlanLink) Valid() bool {
	return (l.Kind == LinkFinding || l.Kind == LinkIndicator) && l.TargetID != ""
}

// FollowUp is an append-only progress note on an action plan.
type FollowUp struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActionPlan is a 5W2H remediation task.
type ActionPlan struct {
	ID      string   `json:"id"`
	Link    PlanLink `json:"link"`
	What    string   `json:"what"`
	Why     string   `json:"why"`
	Where   string   `json:"where"`
	When    string   `json:"when"` // ISO date
	Who     string   `json:"who"`  // user ID of the responsible
	How     string   `json:"how"`
	HowMuch *float64 `json:"howMuch,omitempty"`

	Status    TaskStatus `json:"status"`
	FollowUps []FollowUp `json:"followUps"`
}

// PerformanceIndicator is a measurable objective attached to a policy.
type PerformanceIndicator struct {
	ID            string `json:"id"`
	Objective     string `json:"objective"`
	Department    string `json:"department"`
	ResponsibleID string `json:"responsibleId"`
	Goal          string `json:"goal"`
	ActualValue   string `json:"actualValue"`
}

// PolicyChange is one entry of a policy's change history.
type PolicyChange struct {
	Version     int       `json:"version"`
	AuthorID    string    `json:"authorId"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// Policy is a versioned governance document.
//
// Invariant: every substantive edit (title, category, status, content, any
// indicator field, or indicator set membership) produces exactly one change
// history entry. A save where nothing differs produces neither a history
// entry nor a version bump.
type Policy struct {
	ID                    string                 `json:"id"`
	Title                 string                 `json:"title"`
	Category              string                 `json:"category"`
	Status                string                 `json:"status"`
	Content               string                 `json:"content"`
	PerformanceIndicators []PerformanceIndicator `json:"performanceIndicators"`
	Version               int                    `json:"version"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
	ChangeHistory         []PolicyChange         `json:"changeHistory"`
}

// Meeting is a scheduled discussion about a policy.
// OrganizerID is fixed at creation and never changes on edit.
type Meeting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	PolicyID    string   `json:"policyId"`
	OrganizerID string   `json:"organizerId"`
	AttendeeIDs []string `json:"attendeeIds"`
	Date        string   `json:"date"` // ISO date
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
}

// Notification is a per-user message created as a side effect of policy,
// meeting and action-plan mutations. Only the read flag mutates.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
