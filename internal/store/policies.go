package store

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// PolicySaveOptions controls how a changed policy edit is recorded.
// The decision between a new version and an in-place update is the caller's;
// the store only decides whether anything changed at all.
type PolicySaveOptions struct {
	AuthorID          string
	CreateNewVersion  bool
	ChangeDescription string
}

const policyCreatedDescription = "Criação do documento"

// SavePolicy inserts or edits a policy.
//
// Create (empty ID): version 1, a single history entry, indicators get fresh
// IDs when missing.
//
// Edit: the stored version is compared field by field — title, category,
// status, content, each indicator's objective/department/responsible/goal/
// actual value, and indicator set membership. When nothing differs the save
// is a no-op: no history entry, no version bump, no mutation. When something
// differs exactly one history entry is appended, and the version is bumped
// only when the caller asked for a new version.
func (s *Store) SavePolicy(p Policy, opts PolicySaveOptions) (Policy, error) {
	if p.Title == "" {
		return Policy{}, ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock().UTC()

	if p.ID == "" {
		p.ID = s.newID()
		for i := range p.PerformanceIndicators {
			if p.PerformanceIndicators[i].ID == "" {
				p.PerformanceIndicators[i].ID = s.newID()
			}
		}
		p.Version = 1
		p.CreatedAt = now
		p.UpdatedAt = now
		p.ChangeHistory = []PolicyChange{{
			Version:     1,
			AuthorID:    opts.AuthorID,
			Timestamp:   now,
			Description: policyCreatedDescription,
		}}
		s.policies = append(clonePolicies(s.policies), p)
		return p, nil
	}

	for i := range s.policies {
		if s.policies[i].ID != p.ID {
			continue
		}
		orig := s.policies[i]

		if !policyChanged(orig, p) {
			one := clonePolicies([]Policy{orig})
			return one[0], nil
		}

		for j := range p.PerformanceIndicators {
			if p.PerformanceIndicators[j].ID == "" {
				p.PerformanceIndicators[j].ID = s.newID()
			}
		}

		version := orig.Version
		if opts.CreateNewVersion {
			version++
		}

		desc := opts.ChangeDescription
		if desc == "" {
			desc = describePolicyChange(orig, p)
		}

		p.Version = version
		p.CreatedAt = orig.CreatedAt
		p.UpdatedAt = now
		p.ChangeHistory = append(append([]PolicyChange(nil), orig.ChangeHistory...), PolicyChange{
			Version:     version,
			AuthorID:    opts.AuthorID,
			Timestamp:   now,
			Description: desc,
		})

		policies := clonePolicies(s.policies)
		policies[i] = p
		s.policies = policies
		return p, nil
	}
	return Policy{}, ErrNotFound
}

// DeletePolicy removes a policy. Missing ID is a silent no-op.
func (s *Store) DeletePolicy(policyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.policies {
		if s.policies[i].ID == policyID {
			policies := clonePolicies(s.policies)
			s.policies = append(policies[:i], policies[i+1:]...)
			return
		}
	}
}

// GetPolicy returns a policy by ID.
func (s *Store) GetPolicy(id string) (Policy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.policies {
		if p.ID == id {
			one := clonePolicies([]Policy{p})
			return one[0], true
		}
	}
	return Policy{}, false
}

// Policies returns all policies.
func (s *Store) Policies() []Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePolicies(s.policies)
}

// policyChanged reports whether any substantive field differs between the
// stored policy and the incoming edit.
func policyChanged(orig, next Policy) bool {
	if orig.Title != next.Title ||
		orig.Category != next.Category ||
		orig.Status != next.Status ||
		orig.Content != next.Content {
		return true
	}
	if len(orig.PerformanceIndicators) != len(next.PerformanceIndicators) {
		return true
	}

	byID := make(map[string]PerformanceIndicator, len(orig.PerformanceIndicators))
	for _, ind := range orig.PerformanceIndicators {
		byID[ind.ID] = ind
	}
	for _, ind := range next.PerformanceIndicators {
		old, ok := byID[ind.ID]
		if !ok {
			// Replaced indicator (new or missing ID) counts as a change.
			return true
		}
		if old.Objective != ind.Objective ||
			old.Department != ind.Department ||
			old.ResponsibleID != ind.ResponsibleID ||
			old.Goal != ind.Goal ||
			old.ActualValue != ind.ActualValue {
			return true
		}
	}
	return false
}

// describePolicyChange builds a fallback history description when the caller
// supplies none. Content edits are summarized from a diff; everything else
// gets a generic field-change note.
func describePolicyChange(orig, next Policy) string {
	if orig.Content != next.Content {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(orig.Content, next.Content, false)
		var ins, del int
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				ins += len([]rune(d.Text))
			case diffmatchpatch.DiffDelete:
				del += len([]rune(d.Text))
			}
		}
		return fmt.Sprintf("Conteúdo alterado (+%d/-%d caracteres)", ins, del)
	}
	if len(orig.PerformanceIndicators) != len(next.PerformanceIndicators) {
		return "Indicadores de desempenho alterados"
	}
	return "Alterações nos campos do documento"
}
