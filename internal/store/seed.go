package store

import "time"

// DemoSeed returns the demo dataset the application ships with. The store is
// a mock data layer by design: state lives for the process lifetime only, so
// every boot starts from this snapshot.
func DemoSeed() Snapshot {
	howMuch := 1500.0
	return Snapshot{
		Users: []User{
			{ID: "user-1", Name: "Alice Admin", Email: "admin@example.com", Role: RoleAdministrator, AvatarURL: avatarPlaceholder("user-1"), Status: PresenceOffline, Password: "password"},
			{ID: "user-2", Name: "Bob Auditor", Email: "auditor@example.com", Role: RoleAuditor, AvatarURL: avatarPlaceholder("user-2"), Status: PresenceOffline, Password: "password"},
			{ID: "user-3", Name: "Charlie Manager", Email: "manager@example.com", Role: RoleManager, AvatarURL: avatarPlaceholder("user-3"), Status: PresenceOffline, Password: "password"},
			{ID: "user-4", Name: "Diana Employee", Email: "employee@example.com", Role: RoleEmployee, AvatarURL: avatarPlaceholder("user-4"), Status: PresenceOffline, Password: "password"},
		},
		Grids: []AuditGrid{
			{
				ID:          "grid-1",
				Title:       "Segurança da Informação ISO 27001",
				Description: "Verificação dos controles de segurança da informação.",
				Scope:       "TI",
				Requirements: []AuditRequirement{
					{ID: "req-1-1", Title: "A.5.1 - Políticas para segurança da informação", Description: "Garantir que as políticas de SI estão definidas, aprovadas e publicadas.", Guidance: "Verificar a existência e a data da última revisão do documento de política de segurança."},
					{ID: "req-1-2", Title: "A.6.1 - Organização da segurança da informação", Description: "Estabelecer um framework de gerenciamento para iniciar e controlar a implementação da SI.", Guidance: "Entrevistar o CISO e verificar a estrutura organizacional."},
					{ID: "req-1-3", Title: "A.8.1 - Classificação da informação", Description: "Assegurar que a informação receba um nível de proteção apropriado.", Guidance: "Verificar exemplos de documentos classificados como Confidencial, Interno, etc."},
				},
			},
			{
				ID:          "grid-2",
				Title:       "Qualidade ISO 9001",
				Description: "Verificação dos processos de gestão da qualidade.",
				Scope:       "Operações",
				Requirements: []AuditRequirement{
					{ID: "req-2-1", Title: "4.1 - Contexto da Organização", Description: "Entender a organização e seu contexto.", Guidance: "Analisar o planejamento estratégico e a análise SWOT."},
					{ID: "req-2-2", Title: "5.2 - Política da Qualidade", Description: "Estabelecer, implementar e manter uma política da qualidade.", Guidance: "Verificar se a política está comunicada e entendida na organização."},
				},
			},
		},
		Audits: []Audit{
			{
				ID:        "audit-1",
				Code:      "AUD-TI-2023-001",
				Title:     "Auditoria Interna de Segurança da Informação",
				Scope:     "Infraestrutura de TI e Desenvolvimento",
				AuditorID: "user-2",
				StartDate: "2023-10-01",
				EndDate:   "2023-10-15",
				Status:    AuditStatusDone,
				GridID:    "grid-1",
				Findings: []Finding{
					{ID: "find-1-1", RequirementID: "req-1-1", Title: "A.5.1 - Políticas para segurança da informação", Description: "Política de segurança da informação desatualizada. Última revisão em 2020.", Status: FindingNonCompliant, Attachments: []Attachment{}},
					{ID: "find-1-2", RequirementID: "req-1-2", Title: "A.6.1 - Organização da segurança da informação", Description: "Estrutura organizacional bem definida e comunicada.", Status: FindingCompliant, Attachments: []Attachment{}},
					{ID: "find-1-3", RequirementID: "req-1-3", Title: "A.8.1 - Classificação da informação", Description: "Procedimento de classificação de informação implementado e seguido.", Status: FindingCompliant, Attachments: []Attachment{}},
				},
			},
			{
				ID:        "audit-2",
				Code:      "AUD-OP-2024-001",
				Title:     "Auditoria de Processos de Qualidade",
				Scope:     "Linha de Produção A",
				AuditorID: "user-2",
				StartDate: "2024-03-01",
				EndDate:   "2024-03-10",
				Status:    AuditStatusInProgress,
				GridID:    "grid-2",
				Findings: []Finding{
					{ID: "find-2-1", RequirementID: "req-2-1", Title: "4.1 - Contexto da Organização", Description: "Análise de contexto realizada e documentada.", Status: FindingCompliant, Attachments: []Attachment{}},
					{ID: "find-2-2", RequirementID: "req-2-2", Title: "5.2 - Política da Qualidade", Description: "", Status: FindingNotApplicable, Attachments: []Attachment{}},
				},
			},
		},
		ActionPlans: []ActionPlan{
			{
				ID:        "plan-1",
				Link:      FindingLink("find-1-1"),
				What:      "Revisar e atualizar a Política de Segurança da Informação.",
				Why:       "Para alinhar com as novas regulamentações e melhores práticas do mercado.",
				Where:     "Departamento de TI e Compliance.",
				When:      "2023-11-30",
				Who:       "user-3",
				How:       "1. Formar grupo de trabalho. 2. Realizar benchmark. 3. Redigir nova versão. 4. Obter aprovação do comitê. 5. Publicar e comunicar.",
				HowMuch:   &howMuch,
				Status:    TaskDone,
				FollowUps: []FollowUp{},
			},
		},
		Policies: []Policy{
			{
				ID:       "policy-1",
				Title:    "Política de Segurança da Informação",
				Category: "Segurança",
				Status:   "Ativa",
				Content:  "Esta política estabelece as diretrizes de segurança da informação da organização.",
				PerformanceIndicators: []PerformanceIndicator{
					{ID: "ind-1-1", Objective: "Reduzir incidentes de segurança", Department: "TI", ResponsibleID: "user-3", Goal: "Menos de 5 incidentes por trimestre", ActualValue: "7"},
				},
				Version:   1,
				CreatedAt: time.Date(2023, 1, 10, 12, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2023, 1, 10, 12, 0, 0, 0, time.UTC),
				ChangeHistory: []PolicyChange{
					{Version: 1, AuthorID: "user-1", Timestamp: time.Date(2023, 1, 10, 12, 0, 0, 0, time.UTC), Description: policyCreatedDescription},
				},
			},
		},
	}
}
