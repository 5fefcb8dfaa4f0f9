package store

import "testing"

func seedPolicy() Policy {
	return Policy{
		Title:    "Política A",
		Category: "Qualidade",
		Status:   "Ativa",
		Content:  "Conteúdo original.",
		PerformanceIndicators: []PerformanceIndicator{
			{Objective: "Reduzir retrabalho", Department: "Operações", ResponsibleID: "u1", Goal: "5%", ActualValue: "8%"},
		},
	}
}

func TestSavePolicy_CreateStartsAtVersionOne(t *testing.T) {
	s := newTestStore(Snapshot{})

	p, err := s.SavePolicy(seedPolicy(), PolicySaveOptions{AuthorID: "u1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Version != 1 {
		t.Fatalf("expected version 1, got %d", p.Version)
	}
	if len(p.ChangeHistory) != 1 {
		t.Fatalf("expected a single creation history entry, got %d", len(p.ChangeHistory))
	}
	if p.ChangeHistory[0].AuthorID != "u1" || p.ChangeHistory[0].Version != 1 {
		t.Fatalf("unexpected history entry: %+v", p.ChangeHistory[0])
	}
	if p.PerformanceIndicators[0].ID == "" {
		t.Fatalf("indicators must receive ids on create")
	}
}

func TestSavePolicy_IdenticalEditIsNoOp(t *testing.T) {
	s := newTestStore(Snapshot{})
	p, _ := s.SavePolicy(seedPolicy(), PolicySaveOptions{AuthorID: "u1"})

	got, err := s.SavePolicy(p, PolicySaveOptions{AuthorID: "u2", CreateNewVersion: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Version != 1 || len(got.ChangeHistory) != 1 {
		t.Fatalf("identical save must not bump version or history, got v%d with %d entries",
			got.Version, len(got.ChangeHistory))
	}
}

func TestSavePolicy_NewVersionDecision(t *testing.T) {
	s := newTestStore(Snapshot{})
	p, _ := s.SavePolicy(seedPolicy(), PolicySaveOptions{AuthorID: "u1"})

	p.Title = "Política B"
	got, err := s.SavePolicy(p, PolicySaveOptions{AuthorID: "u1", CreateNewVersion: true, ChangeDescription: "Título revisado"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Version != 2 {
		t.Fatalf("expected version 2, got %d", got.Version)
	}
	if len(got.ChangeHistory) != 2 {
		t.Fatalf("expected exactly one new history entry, got %d total", len(got.ChangeHistory))
	}
	last := got.ChangeHistory[1]
	if last.Version != 2 || last.Description != "Título revisado" {
		t.Fatalf("unexpected history entry: %+v", last)
	}

	// Saving again with identical fields: still v2, still 2 entries.
	again, _ := s.SavePolicy(got, PolicySaveOptions{AuthorID: "u1", CreateNewVersion: true})
	if again.Version != 2 || len(again.ChangeHistory) != 2 {
		t.Fatalf("no-op follow-up save mutated the policy: v%d, %d entries",
			again.Version, len(again.ChangeHistory))
	}
}

func TestSavePolicy_InPlaceUpdateDecision(t *testing.T) {
	s := newTestStore(Snapshot{})
	p, _ := s.SavePolicy(seedPolicy(), PolicySaveOptions{AuthorID: "u1"})

	p.Content = "Conteúdo revisado."
	got, err := s.SavePolicy(p, PolicySaveOptions{AuthorID: "u1", CreateNewVersion: false})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Version != 1 {
		t.Fatalf("in-place update must keep the version, got %d", got.Version)
	}
	if len(got.ChangeHistory) != 2 {
		t.Fatalf("in-place update still records one history entry, got %d", len(got.ChangeHistory))
	}
	if got.ChangeHistory[1].Description == "" {
		t.Fatalf("expected a derived change description when none supplied")
	}
}

func TestSavePolicy_IndicatorChangesAreSubstantive(t *testing.T) {
	s := newTestStore(Snapshot{})
	p, _ := s.SavePolicy(seedPolicy(), PolicySaveOptions{AuthorID: "u1"})

	p.PerformanceIndicators[0].ActualValue = "6%"
	got, _ := s.SavePolicy(p, PolicySaveOptions{AuthorID: "u1", CreateNewVersion: true})
	if got.Version != 2 {
		t.Fatalf("indicator field change must count as a change, got v%d", got.Version)
	}

	// Adding an indicator is also a change.
	got.PerformanceIndicators = append(got.PerformanceIndicators,
		PerformanceIndicator{Objective: "Novo objetivo", Department: "RH", ResponsibleID: "u2", Goal: "10", ActualValue: "0"})
	got2, _ := s.SavePolicy(got, PolicySaveOptions{AuthorID: "u1", CreateNewVersion: false})
	if len(got2.ChangeHistory) != 3 {
		t.Fatalf("indicator set change must record history, got %d entries", len(got2.ChangeHistory))
	}
}

func TestDeletePolicy(t *testing.T) {
	s := newTestStore(Snapshot{})
	p, _ := s.SavePolicy(seedPolicy(), PolicySaveOptions{AuthorID: "u1"})

	s.DeletePolicy(p.ID)
	if len(s.Policies()) != 0 {
		t.Fatalf("expected policy removed")
	}
	// Unknown ID: silent no-op.
	s.DeletePolicy("ghost")
}
