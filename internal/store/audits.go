package store

// NewAuditInput carries the caller-supplied fields for audit creation.
// Code, status and the finding set are derived by the store.
type NewAuditInput struct {
	Title     string
	Scope     string
	AuditorID string
	StartDate string
	EndDate   string
	GridID    string
}

// AddAudit schedules an audit against a grid.
//
// The grid must exist; a dangling GridID is surfaced as ErrGridNotFound
// rather than silently ignored. One finding is materialized per requirement
// of the grid as it stands right now, defaulted to "Não Aplicável" with an
// empty description and no attachments. The requirement title is copied, so
// later grid edits do not touch this audit's findings.
func (s *Store) AddAudit(in NewAuditInput) (Audit, error) {
	if in.Title == "" || in.AuditorID == "" || in.GridID == "" {
		return Audit{}, ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var grid *AuditGrid
	for i := range s.grids {
		if s.grids[i].ID == in.GridID {
			grid = &s.grids[i]
			break
		}
	}
	if grid == nil {
		return Audit{}, ErrGridNotFound
	}

	now := s.clock().UTC()
	findings := make([]Finding, len(grid.Requirements))
	for i, req := range grid.Requirements {
		findings[i] = Finding{
			ID:            s.newID(),
			RequirementID: req.ID,
			Title:         req.Title,
			Description:   "",
			Status:        FindingNotApplicable,
			Attachments:   []Attachment{},
		}
	}

	a := Audit{
		ID:        s.newID(),
		Code:      s.nextAuditCode(now),
		Title:     in.Title,
		Scope:     in.Scope,
		AuditorID: in.AuditorID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    AuditStatusPlanning,
		GridID:    in.GridID,
		Findings:  findings,
	}
	s.audits = append(cloneAudits(s.audits), a)
	return a, nil
}

// UpdateAuditStatus sets the audit status directly. Audit status is always
// user-driven; it is never derived from finding statuses. Missing ID is a
// silent no-op.
func (s *Store) UpdateAuditStatus(auditID string, status AuditStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.audits {
		if s.audits[i].ID == auditID {
			audits := cloneAudits(s.audits)
			audits[i].Status = status
			s.audits = audits
			return
		}
	}
}

// UpdateFindingStatus sets the status of one finding, located across all
// audits. The owning audit's own status is left untouched. Missing finding
// is a silent no-op.
func (s *Store) UpdateFindingStatus(findingID string, status FindingStatus) {
	s.mutateFinding(findingID, func(f *Finding) {
		f.Status = status
	})
}

// UpdateFindingDescription sets the free-text description of one finding.
// Missing finding is a silent no-op.
func (s *Store) UpdateFindingDescription(findingID, description string) {
	s.mutateFinding(findingID, func(f *Finding) {
		f.Description = description
	})
}

// AddAttachment appends evidence to a finding. Missing finding is a silent
// no-op; the assigned attachment ID is returned otherwise.
func (s *Store) AddAttachment(findingID, name, url string, size int64) (Attachment, bool) {
	var att Attachment
	ok := s.mutateFinding(findingID, func(f *Finding) {
		att = Attachment{ID: s.newID(), Name: name, URL: url, Size: size}
		f.Attachments = append(append([]Attachment(nil), f.Attachments...), att)
	})
	return att, ok
}

// DeleteAttachment removes one attachment from a finding. Missing finding or
// attachment is a silent no-op.
func (s *Store) DeleteAttachment(findingID, attachmentID string) {
	s.mutateFinding(findingID, func(f *Finding) {
		kept := make([]Attachment, 0, len(f.Attachments))
		for _, a := range f.Attachments {
			if a.ID != attachmentID {
				kept = append(kept, a)
			}
		}
		f.Attachments = kept
	})
}

// GetAudit returns an audit by ID.
func (s *Store) GetAudit(id string) (Audit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.audits {
		if a.ID == id {
			one := cloneAudits([]Audit{a})
			return one[0], true
		}
	}
	return Audit{}, false
}

// Audits returns all audits.
func (s *Store) Audits() []Audit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAudits(s.audits)
}

// mutateFinding applies fn to the finding with the given ID under the store
// lock, using replace-by-id semantics on the owning audit. Returns false when
// no audit owns such a finding.
func (s *Store) mutateFinding(findingID string, fn func(*Finding)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.audits {
		for j := range s.audits[i].Findings {
			if s.audits[i].Findings[j].ID != findingID {
				continue
			}
			audits := cloneAudits(s.audits)
			fn(&audits[i].Findings[j])
			s.audits = audits
			return true
		}
	}
	return false
}
