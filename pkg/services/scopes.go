package services

// Canonical permission codes. Permission rows are a global catalog; roles
// reference them per tenant.
const (
	ScopeCatalogView       = "catalog:view"
	ScopeCatalogEdit       = "catalog:edit"
	ScopeServicesView      = "services:view"
	ScopeServicesEdit      = "services:edit"
	ScopeAvailabilityEdit  = "availability:edit"
	ScopeConversationsView = "conversations:view"
	ScopeHandoffPerform    = "handoff:perform"
	ScopeOrdersView        = "orders:view"
	ScopeOrdersEdit        = "orders:edit"
	ScopeAppointmentsView  = "appointments:view"
	ScopeAppointmentsEdit  = "appointments:edit"
	ScopeAnalyticsView     = "analytics:view"
	ScopeFinanceView       = "finance:view"
	ScopeWithdrawInitiate  = "finance:withdraw:initiate"
	ScopeWithdrawApprove   = "finance:withdraw:approve"
	ScopeFinanceReconcile  = "finance:reconcile"
	ScopeIntegrationsEdit  = "integrations:manage"
	ScopeUsersManage       = "users:manage"
)

// AllScopes is the full permission catalog, seeded idempotently on tenant
// creation.
var AllScopes = []string{
	ScopeCatalogView, ScopeCatalogEdit,
	ScopeServicesView, ScopeServicesEdit,
	ScopeAvailabilityEdit,
	ScopeConversationsView, ScopeHandoffPerform,
	ScopeOrdersView, ScopeOrdersEdit,
	ScopeAppointmentsView, ScopeAppointmentsEdit,
	ScopeAnalyticsView,
	ScopeFinanceView, ScopeWithdrawInitiate, ScopeWithdrawApprove, ScopeFinanceReconcile,
	ScopeIntegrationsEdit,
	ScopeUsersManage,
}

// Seed role names created with every tenant.
const (
	RoleOwner          = "Owner"
	RoleAdmin          = "Admin"
	RoleFinanceAdmin   = "Finance Admin"
	RoleCatalogManager = "Catalog Manager"
	RoleSupportLead    = "Support Lead"
	RoleAnalyst        = "Analyst"
)

// seedRoleGrants maps each seed role to its permission codes. Owner holds
// everything; Admin everything except withdrawal approval, so no tenant
// starts with a single user able to both initiate and approve.
func seedRoleGrants() map[string][]string {
	admin := make([]string, 0, len(AllScopes)-1)
	for _, code := range AllScopes {
		if code != ScopeWithdrawApprove {
			admin = append(admin, code)
		}
	}
	return map[string][]string{
		RoleOwner: AllScopes,
		RoleAdmin: admin,
		RoleFinanceAdmin: {
			ScopeFinanceView, ScopeWithdrawInitiate, ScopeWithdrawApprove,
			ScopeFinanceReconcile, ScopeAnalyticsView,
		},
		RoleCatalogManager: {
			ScopeCatalogView, ScopeCatalogEdit,
			ScopeServicesView, ScopeServicesEdit, ScopeAvailabilityEdit,
		},
		RoleSupportLead: {
			ScopeConversationsView, ScopeHandoffPerform,
			ScopeOrdersView, ScopeAppointmentsView, ScopeAppointmentsEdit,
		},
		RoleAnalyst: {
			ScopeAnalyticsView, ScopeConversationsView, ScopeOrdersView, ScopeFinanceView,
		},
	}
}
