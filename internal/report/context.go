package report

import (
	"encoding/json"

	"auditforce/internal/store"
)

// ChatContext is the slice of domain data a user is allowed to discuss with
// the assistant. Building it is the privacy boundary: the filtering below
// happens before anything is serialized and sent to the AI collaborator, so
// the model never sees data the user could not see.
type ChatContext struct {
	UserName    string             `json:"userName"`
	UserRole    store.UserRole     `json:"userRole"`
	Audits      []store.Audit      `json:"audits"`
	Grids       []store.AuditGrid  `json:"grids"`
	ActionPlans []store.ActionPlan `json:"actionPlans"`
}

// BuildChatContext filters a snapshot down to what one user may see:
//
//   - Audits where the user is the auditor. Administrators see every audit.
//   - Action plans linked to a finding of one of those audits. Plans linked
//     to policy indicators are not part of the assistant's scope.
//
// Grids are included whole; they are shared checklists, not per-user data.
func BuildChatContext(snap store.Snapshot, user store.User) ChatContext {
	out := ChatContext{
		UserName:    user.Name,
		UserRole:    user.Role,
		Grids:       snap.Grids,
		Audits:      []store.Audit{},
		ActionPlans: []store.ActionPlan{},
	}

	visibleFindings := map[string]bool{}
	for _, a := range snap.Audits {
		if a.AuditorID != user.ID && user.Role != store.RoleAdministrator {
			continue
		}
		out.Audits = append(out.Audits, a)
		for _, f := range a.Findings {
			visibleFindings[f.ID] = true
		}
	}

	for _, p := range snap.ActionPlans {
		if p.Link.Kind == store.LinkFinding && visibleFindings[p.Link.TargetID] {
			out.ActionPlans = append(out.ActionPlans, p)
		}
	}
	return out
}

// Serialize renders the context as JSON for prompt embedding.
func (c ChatContext) Serialize() (string, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
