package store

import "fmt"

// SaveActionPlan inserts or replaces an action plan.
//
// On creation the plan must carry a valid link to exactly one finding or one
// performance indicator; the link is immutable afterwards. Follow-ups are
// owned by the store and survive a replace. The responsible user is notified
// on both create and update.
func (s *Store) SaveActionPlan(p ActionPlan) (ActionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		if !p.Link.Valid() {
			return ActionPlan{}, ErrInvalidPlanLink
		}
		p.ID = s.newID()
		if p.Status == "" {
			p.Status = TaskToDo
		}
		p.FollowUps = []FollowUp{}
		s.plans = append(clonePlans(s.plans), p)
		s.notifyLocked(p.Who, fmt.Sprintf("Você foi designado responsável pelo plano de ação: %s", p.What))
		return p, nil
	}

	for i := range s.plans {
		if s.plans[i].ID == p.ID {
			p.Link = s.plans[i].Link
			p.FollowUps = s.plans[i].FollowUps
			plans := clonePlans(s.plans)
			plans[i] = p
			s.plans = plans
			s.notifyLocked(p.Who, fmt.Sprintf("O plano de ação foi atualizado: %s", p.What))
			return p, nil
		}
	}
	return ActionPlan{}, ErrNotFound
}

// UpdateActionPlanStatus sets the plan status. This is the whole of the
// Kanban drag-and-drop transition; the drop target column is just the new
// status value. Missing ID is a silent no-op.
func (s *Store) UpdateActionPlanStatus(planID string, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == planID {
			plans := clonePlans(s.plans)
			plans[i].Status = status
			s.plans = plans
			return
		}
	}
}

// AddFollowUp appends a progress note to a plan. Follow-ups are append-only;
// there is no edit or delete. Missing plan is a silent no-op.
func (s *Store) AddFollowUp(planID, authorID, content string) (FollowUp, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == planID {
			fu := FollowUp{
				ID:        s.newID(),
				AuthorID:  authorID,
				Content:   content,
				CreatedAt: s.clock().UTC(),
			}
			plans := clonePlans(s.plans)
			plans[i].FollowUps = append(plans[i].FollowUps, fu)
			s.plans = plans
			return fu, true
		}
	}
	return FollowUp{}, false
}

// GetActionPlan returns a plan by ID.
func (s *Store) GetActionPlan(id string) (ActionPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.plans {
		if p.ID == id {
			one := clonePlans([]ActionPlan{p})
			return one[0], true
		}
	}
	return ActionPlan{}, false
}

// ActionPlans returns all plans.
func (s *Store) ActionPlans() []ActionPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlans(s.plans)
}
