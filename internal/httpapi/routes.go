package httpapi

import (
	"auditforce/internal/rbac"
	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

// Register wires the /v1 API surface. Keep this free of business logic.
func Register(r *gin.Engine, h Handlers, authMW gin.HandlerFunc) {
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/refresh", h.Refresh)

	v1 := r.Group("/v1")
	v1.Use(authMW)
	{
		v1.POST("/auth/logout", h.Logout)
		v1.GET("/me", h.Me)

		// User administration is Administrator-only; the empty allow list
		// passes nobody else through.
		users := v1.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/:id", h.GetUser)
			users.POST("", rbac.RequireAnyRole(), h.CreateUser)
			users.PUT("/:id", rbac.RequireAnyRole(), h.UpdateUser)
		}

		manage := rbac.RequireAnyRole(store.RoleAuditor, store.RoleManager)

		grids := v1.Group("/grids")
		{
			grids.GET("", h.ListGrids)
			grids.GET("/:id", h.GetGrid)
			grids.POST("", manage, h.SaveGrid)
			grids.DELETE("/:id", manage, h.DeleteGrid)
		}

		audits := v1.Group("/audits")
		{
			audits.GET("", h.ListAudits)
			audits.GET("/:id", h.GetAudit)
			audits.GET("/:id/report", h.AuditReport)
			audits.POST("", manage, h.CreateAudit)
			audits.PUT("/:id/status", h.UpdateAuditStatus)
		}

		findings := v1.Group("/findings")
		{
			findings.PUT("/:finding_id/status", h.UpdateFindingStatus)
			findings.PUT("/:finding_id/description", h.UpdateFindingDescription)
			findings.POST("/:finding_id/attachments", h.AddAttachment)
			findings.DELETE("/:finding_id/attachments/:attachment_id", h.DeleteAttachment)
		}

		plans := v1.Group("/plans")
		{
			plans.GET("", h.ListActionPlans)
			plans.GET("/:id", h.GetActionPlan)
			plans.POST("", h.SaveActionPlan)
			plans.PUT("/:id/status", h.UpdateActionPlanStatus)
			plans.POST("/:id/follow-ups", h.AddFollowUp)
		}

		policies := v1.Group("/policies")
		{
			policies.GET("", h.ListPolicies)
			policies.GET("/:id", h.GetPolicy)
			policies.POST("", h.SavePolicy)
			policies.DELETE("/:id", h.DeletePolicy)
		}

		meetings := v1.Group("/meetings")
		{
			meetings.GET("", h.ListMeetings)
			meetings.GET("/:id/invite.ics", h.MeetingInvite)
			meetings.POST("", h.SaveMeeting)
			meetings.DELETE("/:id", h.DeleteMeeting)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", h.ListNotifications)
			notifications.PUT("/:id/read", h.MarkNotificationRead)
			// Bulk mark-read; a static sibling of :id would conflict in gin's tree.
			notifications.PUT("", h.MarkAllNotificationsRead)
		}

		aiGroup := v1.Group("/ai")
		{
			aiGroup.POST("/recommendation", h.Recommend)
			aiGroup.POST("/chat", h.Chat)
		}
	}
}
