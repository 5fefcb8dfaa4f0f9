package store

// SaveGrid inserts or replaces a grid.
//
// Insert (empty ID): the grid and each requirement get fresh IDs.
// Update: fields and the requirement list are replaced wholesale. Audits
// created earlier keep their finding snapshot; grid edits never propagate
// into existing audits.
func (s *Store) SaveGrid(g AuditGrid) (AuditGrid, error) {
	if g.Title == "" {
		return AuditGrid{}, ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = s.newID()
		reqs := make([]AuditRequirement, len(g.Requirements))
		for i, r := range g.Requirements {
			r.ID = s.newID()
			reqs[i] = r
		}
		g.Requirements = reqs
		s.grids = append(cloneGrids(s.grids), g)
		return g, nil
	}

	for i := range s.grids {
		if s.grids[i].ID == g.ID {
			for j := range g.Requirements {
				if g.Requirements[j].ID == "" {
					g.Requirements[j].ID = s.newID()
				}
			}
			grids := cloneGrids(s.grids)
			grids[i] = g
			s.grids = grids
			return g, nil
		}
	}
	return AuditGrid{}, ErrNotFound
}

// DeleteGrid removes a grid. Deletion is rejected while any audit references
// the grid; the referencing audits own finding snapshots taken from it and
// the grid remains their documentation of record.
func (s *Store) DeleteGrid(gridID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.audits {
		if a.GridID == gridID {
			return ErrGridInUse
		}
	}

	for i := range s.grids {
		if s.grids[i].ID == gridID {
			grids := cloneGrids(s.grids)
			s.grids = append(grids[:i], grids[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// GetGrid returns a grid by ID.
func (s *Store) GetGrid(id string) (AuditGrid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.grids {
		if g.ID == id {
			g.Requirements = append([]AuditRequirement(nil), g.Requirements...)
			return g, true
		}
	}
	return AuditGrid{}, false
}

// Grids returns all grids.
func (s *Store) Grids() []AuditGrid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGrids(s.grids)
}
