// Package report holds the read-only projections over a store snapshot: the
// printable audit report and the access-filtered chat context. Everything
// here is a pure function; nothing mutates the store.
package report

import (
	"errors"

	"auditforce/internal/store"
)

var ErrAuditNotFound = errors.New("report: audit not found")

// StatusCount is one slice of the findings-by-status breakdown.
type StatusCount struct {
	Status  store.FindingStatus `json:"status"`
	Count   int                 `json:"count"`
	Percent float64             `json:"percent"`
}

// PlanSummary carries the 5W2H fields of a plan linked to a finding.
type PlanSummary struct {
	ID      string           `json:"id"`
	What    string           `json:"what"`
	Why     string           `json:"why"`
	Where   string           `json:"where"`
	When    string           `json:"when"`
	WhoID   string           `json:"whoId"`
	WhoName string           `json:"whoName"`
	How     string           `json:"how"`
	HowMuch *float64         `json:"howMuch,omitempty"`
	Status  store.TaskStatus `json:"status"`
}

// Row is one printable line of the report: a requirement, the recorded
// finding, and any remediation plans spawned from it.
type Row struct {
	RequirementTitle string              `json:"requirementTitle"`
	FindingStatus    store.FindingStatus `json:"findingStatus"`
	Description      string              `json:"description"`
	Attachments      int                 `json:"attachments"`
	Plans            []PlanSummary       `json:"plans"`
}

// AuditReport is the aggregated, flattened structure the report screen
// prints.
type AuditReport struct {
	AuditID     string            `json:"auditId"`
	Code        string            `json:"code"`
	Title       string            `json:"title"`
	Scope       string            `json:"scope"`
	GridTitle   string            `json:"gridTitle"`
	AuditorName string            `json:"auditorName"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Status      store.AuditStatus `json:"status"`

	TotalFindings int           `json:"totalFindings"`
	ByStatus      []StatusCount `json:"byStatus"`
	Rows          []Row         `json:"rows"`
}

// BuildAuditReport aggregates one audit from a snapshot: finding counts by
// status with a percentage breakdown, and one row per finding with the
// requirement title copied at audit creation and the linked action plans.
func BuildAuditReport(snap store.Snapshot, auditID string) (AuditReport, error) {
	var audit *store.Audit
	for i := range snap.Audits {
		if snap.Audits[i].ID == auditID {
			audit = &snap.Audits[i]
			break
		}
	}
	if audit == nil {
		return AuditReport{}, ErrAuditNotFound
	}

	out := AuditReport{
		AuditID:   audit.ID,
		Code:      audit.Code,
		Title:     audit.Title,
		Scope:     audit.Scope,
		StartDate: audit.StartDate,
		EndDate:   audit.EndDate,
		Status:    audit.Status,
	}

	for _, g := range snap.Grids {
		if g.ID == audit.GridID {
			out.GridTitle = g.Title
			break
		}
	}
	for _, u := range snap.Users {
		if u.ID == audit.AuditorID {
			out.AuditorName = u.Name
			break
		}
	}

	plansByFinding := make(map[string][]PlanSummary)
	for _, p := range snap.ActionPlans {
		if p.Link.Kind != store.LinkFinding {
			continue
		}
		plansByFinding[p.Link.TargetID] = append(plansByFinding[p.Link.TargetID], PlanSummary{
			ID:      p.ID,
			What:    p.What,
			Why:     p.Why,
			Where:   p.Where,
			When:    p.When,
			WhoID:   p.Who,
			WhoName: userName(snap.Users, p.Who),
			How:     p.How,
			HowMuch: p.HowMuch,
			Status:  p.Status,
		})
	}

	counts := map[store.FindingStatus]int{}
	for _, f := range audit.Findings {
		counts[f.Status]++
		out.Rows = append(out.Rows, Row{
			RequirementTitle: f.Title,
			FindingStatus:    f.Status,
			Description:      f.Description,
			Attachments:      len(f.Attachments),
			Plans:            plansByFinding[f.ID],
		})
	}

	out.TotalFindings = len(audit.Findings)
	for _, st := range []store.FindingStatus{store.FindingCompliant, store.FindingNonCompliant, store.FindingNotApplicable} {
		sc := StatusCount{Status: st, Count: counts[st]}
		if out.TotalFindings > 0 {
			sc.Percent = float64(sc.Count) * 100 / float64(out.TotalFindings)
		}
		out.ByStatus = append(out.ByStatus, sc)
	}
	return out, nil
}

func userName(users []store.User, id string) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}
