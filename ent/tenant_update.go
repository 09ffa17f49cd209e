// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/appointment"
	"github.com/sokochat/sokochat/ent/auditlog"
	"github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/ent/knowledgeentry"
	"github.com/sokochat/sokochat/ent/messagetemplate"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/product"
	"github.com/sokochat/sokochat/ent/role"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/ent/tenantsettings"
	"github.com/sokochat/sokochat/ent/tenantuser"
	"github.com/sokochat/sokochat/ent/withdrawal"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TenantUpdate) SetName(v string) *TenantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableName(v *string) *TenantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TenantUpdate) SetSlug(v string) *TenantUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableSlug(v *string) *TenantUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TenantUpdate) SetStatus(v tenant.Status) *TenantUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableStatus(v *tenant.Status) *TenantUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (_u *TenantUpdate) SetTrialEndsAt(v time.Time) *TenantUpdate {
	_u.mutation.SetTrialEndsAt(v)
	return _u
}

// SetNillableTrialEndsAt sets the "trial_ends_at" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableTrialEndsAt(v *time.Time) *TenantUpdate {
	if v != nil {
		_u.SetTrialEndsAt(*v)
	}
	return _u
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (_u *TenantUpdate) ClearTrialEndsAt() *TenantUpdate {
	_u.mutation.ClearTrialEndsAt()
	return _u
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (_u *TenantUpdate) SetSubscriptionTier(v string) *TenantUpdate {
	_u.mutation.SetSubscriptionTier(v)
	return _u
}

// SetNillableSubscriptionTier sets the "subscription_tier" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableSubscriptionTier(v *string) *TenantUpdate {
	if v != nil {
		_u.SetSubscriptionTier(*v)
	}
	return _u
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (_u *TenantUpdate) SetWhatsappNumber(v string) *TenantUpdate {
	_u.mutation.SetWhatsappNumber(v)
	return _u
}

// SetNillableWhatsappNumber sets the "whatsapp_number" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableWhatsappNumber(v *string) *TenantUpdate {
	if v != nil {
		_u.SetWhatsappNumber(*v)
	}
	return _u
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (_u *TenantUpdate) ClearWhatsappNumber() *TenantUpdate {
	_u.mutation.ClearWhatsappNumber()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *TenantUpdate) SetTimezone(v string) *TenantUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableTimezone(v *string) *TenantUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (_u *TenantUpdate) SetQuietHoursStart(v int) *TenantUpdate {
	_u.mutation.ResetQuietHoursStart()
	_u.mutation.SetQuietHoursStart(v)
	return _u
}

// SetNillableQuietHoursStart sets the "quiet_hours_start" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableQuietHoursStart(v *int) *TenantUpdate {
	if v != nil {
		_u.SetQuietHoursStart(*v)
	}
	return _u
}

// AddQuietHoursStart adds value to the "quiet_hours_start" field.
func (_u *TenantUpdate) AddQuietHoursStart(v int) *TenantUpdate {
	_u.mutation.AddQuietHoursStart(v)
	return _u
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (_u *TenantUpdate) SetQuietHoursEnd(v int) *TenantUpdate {
	_u.mutation.ResetQuietHoursEnd()
	_u.mutation.SetQuietHoursEnd(v)
	return _u
}

// SetNillableQuietHoursEnd sets the "quiet_hours_end" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableQuietHoursEnd(v *int) *TenantUpdate {
	if v != nil {
		_u.SetQuietHoursEnd(*v)
	}
	return _u
}

// AddQuietHoursEnd adds value to the "quiet_hours_end" field.
func (_u *TenantUpdate) AddQuietHoursEnd(v int) *TenantUpdate {
	_u.mutation.AddQuietHoursEnd(v)
	return _u
}

// SetAPIKeys sets the "api_keys" field.
func (_u *TenantUpdate) SetAPIKeys(v []schema.APIKey) *TenantUpdate {
	_u.mutation.SetAPIKeys(v)
	return _u
}

// AppendAPIKeys appends value to the "api_keys" field.
func (_u *TenantUpdate) AppendAPIKeys(v []schema.APIKey) *TenantUpdate {
	_u.mutation.AppendAPIKeys(v)
	return _u
}

// ClearAPIKeys clears the value of the "api_keys" field.
func (_u *TenantUpdate) ClearAPIKeys() *TenantUpdate {
	_u.mutation.ClearAPIKeys()
	return _u
}

// SetAllowedOrigins sets the "allowed_origins" field.
func (_u *TenantUpdate) SetAllowedOrigins(v []string) *TenantUpdate {
	_u.mutation.SetAllowedOrigins(v)
	return _u
}

// AppendAllowedOrigins appends value to the "allowed_origins" field.
func (_u *TenantUpdate) AppendAllowedOrigins(v []string) *TenantUpdate {
	_u.mutation.AppendAllowedOrigins(v)
	return _u
}

// ClearAllowedOrigins clears the value of the "allowed_origins" field.
func (_u *TenantUpdate) ClearAllowedOrigins() *TenantUpdate {
	_u.mutation.ClearAllowedOrigins()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdate) SetUpdatedAt(v time.Time) *TenantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TenantUpdate) SetDeletedAt(v time.Time) *TenantUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableDeletedAt(v *time.Time) *TenantUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TenantUpdate) ClearDeletedAt() *TenantUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetSettingsID sets the "settings" edge to the TenantSettings entity by ID.
func (_u *TenantUpdate) SetSettingsID(id string) *TenantUpdate {
	_u.mutation.SetSettingsID(id)
	return _u
}

// SetNillableSettingsID sets the "settings" edge to the TenantSettings entity by ID if the given value is not nil.
func (_u *TenantUpdate) SetNillableSettingsID(id *string) *TenantUpdate {
	if id != nil {
		_u = _u.SetSettingsID(*id)
	}
	return _u
}

// SetSettings sets the "settings" edge to the TenantSettings entity.
func (_u *TenantUpdate) SetSettings(v *TenantSettings) *TenantUpdate {
	return _u.SetSettingsID(v.ID)
}

// AddMembershipIDs adds the "memberships" edge to the TenantUser entity by IDs.
func (_u *TenantUpdate) AddMembershipIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the TenantUser entity.
func (_u *TenantUpdate) AddMemberships(v ...*TenantUser) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// AddRoleIDs adds the "roles" edge to the Role entity by IDs.
func (_u *TenantUpdate) AddRoleIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddRoleIDs(ids...)
	return _u
}

// AddRoles adds the "roles" edges to the Role entity.
func (_u *TenantUpdate) AddRoles(v ...*Role) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoleIDs(ids...)
}

// AddCustomerIDs adds the "customers" edge to the Customer entity by IDs.
func (_u *TenantUpdate) AddCustomerIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddCustomerIDs(ids...)
	return _u
}

// AddCustomers adds the "customers" edges to the Customer entity.
func (_u *TenantUpdate) AddCustomers(v ...*Customer) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCustomerIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *TenantUpdate) AddConversationIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *TenantUpdate) AddConversations(v ...*Conversation) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddProductIDs adds the "products" edge to the Product entity by IDs.
func (_u *TenantUpdate) AddProductIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddProductIDs(ids...)
	return _u
}

// AddProducts adds the "products" edges to the Product entity.
func (_u *TenantUpdate) AddProducts(v ...*Product) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProductIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeEntry entity by IDs.
func (_u *TenantUpdate) AddKnowledgeEntryIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddKnowledgeEntryIDs(ids...)
	return _u
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *TenantUpdate) AddKnowledgeEntries(v ...*KnowledgeEntry) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeEntryIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *TenantUpdate) AddOrderIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *TenantUpdate) AddOrders(v ...*Order) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// AddScheduledMessageIDs adds the "scheduled_messages" edge to the ScheduledMessage entity by IDs.
func (_u *TenantUpdate) AddScheduledMessageIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddScheduledMessageIDs(ids...)
	return _u
}

// AddScheduledMessages adds the "scheduled_messages" edges to the ScheduledMessage entity.
func (_u *TenantUpdate) AddScheduledMessages(v ...*ScheduledMessage) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledMessageIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by IDs.
func (_u *TenantUpdate) AddTemplateIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the MessageTemplate entity.
func (_u *TenantUpdate) AddTemplates(v ...*MessageTemplate) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *TenantUpdate) AddCampaignIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *TenantUpdate) AddCampaigns(v ...*Campaign) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *TenantUpdate) AddAppointmentIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *TenantUpdate) AddAppointments(v ...*Appointment) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddWithdrawalIDs adds the "withdrawals" edge to the Withdrawal entity by IDs.
func (_u *TenantUpdate) AddWithdrawalIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddWithdrawalIDs(ids...)
	return _u
}

// AddWithdrawals adds the "withdrawals" edges to the Withdrawal entity.
func (_u *TenantUpdate) AddWithdrawals(v ...*Withdrawal) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWithdrawalIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *TenantUpdate) AddAuditLogIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *TenantUpdate) AddAuditLogs(v ...*AuditLog) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdate) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearSettings clears the "settings" edge to the TenantSettings entity.
func (_u *TenantUpdate) ClearSettings() *TenantUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// ClearMemberships clears all "memberships" edges to the TenantUser entity.
func (_u *TenantUpdate) ClearMemberships() *TenantUpdate {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to TenantUser entities by IDs.
func (_u *TenantUpdate) RemoveMembershipIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to TenantUser entities.
func (_u *TenantUpdate) RemoveMemberships(v ...*TenantUser) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// ClearRoles clears all "roles" edges to the Role entity.
func (_u *TenantUpdate) ClearRoles() *TenantUpdate {
	_u.mutation.ClearRoles()
	return _u
}

// RemoveRoleIDs removes the "roles" edge to Role entities by IDs.
func (_u *TenantUpdate) RemoveRoleIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveRoleIDs(ids...)
	return _u
}

// RemoveRoles removes "roles" edges to Role entities.
func (_u *TenantUpdate) RemoveRoles(v ...*Role) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoleIDs(ids...)
}

// ClearCustomers clears all "customers" edges to the Customer entity.
func (_u *TenantUpdate) ClearCustomers() *TenantUpdate {
	_u.mutation.ClearCustomers()
	return _u
}

// RemoveCustomerIDs removes the "customers" edge to Customer entities by IDs.
func (_u *TenantUpdate) RemoveCustomerIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveCustomerIDs(ids...)
	return _u
}

// RemoveCustomers removes "customers" edges to Customer entities.
func (_u *TenantUpdate) RemoveCustomers(v ...*Customer) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCustomerIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *TenantUpdate) ClearConversations() *TenantUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *TenantUpdate) RemoveConversationIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *TenantUpdate) RemoveConversations(v ...*Conversation) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearProducts clears all "products" edges to the Product entity.
func (_u *TenantUpdate) ClearProducts() *TenantUpdate {
	_u.mutation.ClearProducts()
	return _u
}

// RemoveProductIDs removes the "products" edge to Product entities by IDs.
func (_u *TenantUpdate) RemoveProductIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveProductIDs(ids...)
	return _u
}

// RemoveProducts removes "products" edges to Product entities.
func (_u *TenantUpdate) RemoveProducts(v ...*Product) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProductIDs(ids...)
}

// ClearKnowledgeEntries clears all "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *TenantUpdate) ClearKnowledgeEntries() *TenantUpdate {
	_u.mutation.ClearKnowledgeEntries()
	return _u
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to KnowledgeEntry entities by IDs.
func (_u *TenantUpdate) RemoveKnowledgeEntryIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveKnowledgeEntryIDs(ids...)
	return _u
}

// RemoveKnowledgeEntries removes "knowledge_entries" edges to KnowledgeEntry entities.
func (_u *TenantUpdate) RemoveKnowledgeEntries(v ...*KnowledgeEntry) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeEntryIDs(ids...)
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *TenantUpdate) ClearOrders() *TenantUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *TenantUpdate) RemoveOrderIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *TenantUpdate) RemoveOrders(v ...*Order) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// ClearScheduledMessages clears all "scheduled_messages" edges to the ScheduledMessage entity.
func (_u *TenantUpdate) ClearScheduledMessages() *TenantUpdate {
	_u.mutation.ClearScheduledMessages()
	return _u
}

// RemoveScheduledMessageIDs removes the "scheduled_messages" edge to ScheduledMessage entities by IDs.
func (_u *TenantUpdate) RemoveScheduledMessageIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveScheduledMessageIDs(ids...)
	return _u
}

// RemoveScheduledMessages removes "scheduled_messages" edges to ScheduledMessage entities.
func (_u *TenantUpdate) RemoveScheduledMessages(v ...*ScheduledMessage) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledMessageIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the MessageTemplate entity.
func (_u *TenantUpdate) ClearTemplates() *TenantUpdate {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to MessageTemplate entities by IDs.
func (_u *TenantUpdate) RemoveTemplateIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to MessageTemplate entities.
func (_u *TenantUpdate) RemoveTemplates(v ...*MessageTemplate) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *TenantUpdate) ClearCampaigns() *TenantUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *TenantUpdate) RemoveCampaignIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *TenantUpdate) RemoveCampaigns(v ...*Campaign) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *TenantUpdate) ClearAppointments() *TenantUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *TenantUpdate) RemoveAppointmentIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *TenantUpdate) RemoveAppointments(v ...*Appointment) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearWithdrawals clears all "withdrawals" edges to the Withdrawal entity.
func (_u *TenantUpdate) ClearWithdrawals() *TenantUpdate {
	_u.mutation.ClearWithdrawals()
	return _u
}

// RemoveWithdrawalIDs removes the "withdrawals" edge to Withdrawal entities by IDs.
func (_u *TenantUpdate) RemoveWithdrawalIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveWithdrawalIDs(ids...)
	return _u
}

// RemoveWithdrawals removes "withdrawals" edges to Withdrawal entities.
func (_u *TenantUpdate) RemoveWithdrawals(v ...*Withdrawal) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWithdrawalIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *TenantUpdate) ClearAuditLogs() *TenantUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *TenantUpdate) RemoveAuditLogIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *TenantUpdate) RemoveAuditLogs(v ...*AuditLog) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tenant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tenant.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tenant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrialEndsAt(); ok {
		_spec.SetField(tenant.FieldTrialEndsAt, field.TypeTime, value)
	}
	if _u.mutation.TrialEndsAtCleared() {
		_spec.ClearField(tenant.FieldTrialEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SubscriptionTier(); ok {
		_spec.SetField(tenant.FieldSubscriptionTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhatsappNumber(); ok {
		_spec.SetField(tenant.FieldWhatsappNumber, field.TypeString, value)
	}
	if _u.mutation.WhatsappNumberCleared() {
		_spec.ClearField(tenant.FieldWhatsappNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(tenant.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuietHoursStart(); ok {
		_spec.SetField(tenant.FieldQuietHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursStart(); ok {
		_spec.AddField(tenant.FieldQuietHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuietHoursEnd(); ok {
		_spec.SetField(tenant.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursEnd(); ok {
		_spec.AddField(tenant.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIKeys(); ok {
		_spec.SetField(tenant.FieldAPIKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAPIKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tenant.FieldAPIKeys, value)
		})
	}
	if _u.mutation.APIKeysCleared() {
		_spec.ClearField(tenant.FieldAPIKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.AllowedOrigins(); ok {
		_spec.SetField(tenant.FieldAllowedOrigins, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedOrigins(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tenant.FieldAllowedOrigins, value)
		})
	}
	if _u.mutation.AllowedOriginsCleared() {
		_spec.ClearField(tenant.FieldAllowedOrigins, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tenant.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tenant.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SettingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.SettingsTable,
			Columns: []string{tenant.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.SettingsTable,
			Columns: []string{tenant.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MembershipsTable,
			Columns: []string{tenant.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantuser.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MembershipsTable,
			Columns: []string{tenant.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MembershipsTable,
			Columns: []string{tenant.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RolesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.RolesTable,
			Columns: []string{tenant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRolesIDs(); len(nodes) > 0 && !_u.mutation.RolesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.RolesTable,
			Columns: []string{tenant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RolesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.RolesTable,
			Columns: []string{tenant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CustomersTable,
			Columns: []string{tenant.CustomersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCustomersIDs(); len(nodes) > 0 && !_u.mutation.CustomersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CustomersTable,
			Columns: []string{tenant.CustomersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CustomersTable,
			Columns: []string{tenant.CustomersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ProductsTable,
			Columns: []string{tenant.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProductsIDs(); len(nodes) > 0 && !_u.mutation.ProductsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ProductsTable,
			Columns: []string{tenant.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ProductsTable,
			Columns: []string{tenant.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeEntriesTable,
			Columns: []string{tenant.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeEntriesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeEntriesTable,
			Columns: []string{tenant.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeEntriesTable,
			Columns: []string{tenant.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.OrdersTable,
			Columns: []string{tenant.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.OrdersTable,
			Columns: []string{tenant.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.OrdersTable,
			Columns: []string{tenant.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ScheduledMessagesTable,
			Columns: []string{tenant.ScheduledMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledMessagesIDs(); len(nodes) > 0 && !_u.mutation.ScheduledMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ScheduledMessagesTable,
			Columns: []string{tenant.ScheduledMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ScheduledMessagesTable,
			Columns: []string{tenant.ScheduledMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.TemplatesTable,
			Columns: []string{tenant.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.TemplatesTable,
			Columns: []string{tenant.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.TemplatesTable,
			Columns: []string{tenant.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CampaignsTable,
			Columns: []string{tenant.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CampaignsTable,
			Columns: []string{tenant.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CampaignsTable,
			Columns: []string{tenant.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AppointmentsTable,
			Columns: []string{tenant.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AppointmentsTable,
			Columns: []string{tenant.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AppointmentsTable,
			Columns: []string{tenant.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WithdrawalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WithdrawalsTable,
			Columns: []string{tenant.WithdrawalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWithdrawalsIDs(); len(nodes) > 0 && !_u.mutation.WithdrawalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WithdrawalsTable,
			Columns: []string{tenant.WithdrawalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WithdrawalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WithdrawalsTable,
			Columns: []string{tenant.WithdrawalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AuditLogsTable,
			Columns: []string{tenant.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AuditLogsTable,
			Columns: []string{tenant.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AuditLogsTable,
			Columns: []string{tenant.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetName sets the "name" field.
func (_u *TenantUpdateOne) SetName(v string) *TenantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableName(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TenantUpdateOne) SetSlug(v string) *TenantUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSlug(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TenantUpdateOne) SetStatus(v tenant.Status) *TenantUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableStatus(v *tenant.Status) *TenantUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (_u *TenantUpdateOne) SetTrialEndsAt(v time.Time) *TenantUpdateOne {
	_u.mutation.SetTrialEndsAt(v)
	return _u
}

// SetNillableTrialEndsAt sets the "trial_ends_at" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableTrialEndsAt(v *time.Time) *TenantUpdateOne {
	if v != nil {
		_u.SetTrialEndsAt(*v)
	}
	return _u
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (_u *TenantUpdateOne) ClearTrialEndsAt() *TenantUpdateOne {
	_u.mutation.ClearTrialEndsAt()
	return _u
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (_u *TenantUpdateOne) SetSubscriptionTier(v string) *TenantUpdateOne {
	_u.mutation.SetSubscriptionTier(v)
	return _u
}

// SetNillableSubscriptionTier sets the "subscription_tier" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSubscriptionTier(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetSubscriptionTier(*v)
	}
	return _u
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (_u *TenantUpdateOne) SetWhatsappNumber(v string) *TenantUpdateOne {
	_u.mutation.SetWhatsappNumber(v)
	return _u
}

// SetNillableWhatsappNumber sets the "whatsapp_number" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableWhatsappNumber(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetWhatsappNumber(*v)
	}
	return _u
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (_u *TenantUpdateOne) ClearWhatsappNumber() *TenantUpdateOne {
	_u.mutation.ClearWhatsappNumber()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *TenantUpdateOne) SetTimezone(v string) *TenantUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableTimezone(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (_u *TenantUpdateOne) SetQuietHoursStart(v int) *TenantUpdateOne {
	_u.mutation.ResetQuietHoursStart()
	_u.mutation.SetQuietHoursStart(v)
	return _u
}

// SetNillableQuietHoursStart sets the "quiet_hours_start" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableQuietHoursStart(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetQuietHoursStart(*v)
	}
	return _u
}

// AddQuietHoursStart adds value to the "quiet_hours_start" field.
func (_u *TenantUpdateOne) AddQuietHoursStart(v int) *TenantUpdateOne {
	_u.mutation.AddQuietHoursStart(v)
	return _u
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (_u *TenantUpdateOne) SetQuietHoursEnd(v int) *TenantUpdateOne {
	_u.mutation.ResetQuietHoursEnd()
	_u.mutation.SetQuietHoursEnd(v)
	return _u
}

// SetNillableQuietHoursEnd sets the "quiet_hours_end" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableQuietHoursEnd(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetQuietHoursEnd(*v)
	}
	return _u
}

// AddQuietHoursEnd adds value to the "quiet_hours_end" field.
func (_u *TenantUpdateOne) AddQuietHoursEnd(v int) *TenantUpdateOne {
	_u.mutation.AddQuietHoursEnd(v)
	return _u
}

// SetAPIKeys sets the "api_keys" field.
func (_u *TenantUpdateOne) SetAPIKeys(v []schema.APIKey) *TenantUpdateOne {
	_u.mutation.SetAPIKeys(v)
	return _u
}

// AppendAPIKeys appends value to the "api_keys" field.
func (_u *TenantUpdateOne) AppendAPIKeys(v []schema.APIKey) *TenantUpdateOne {
	_u.mutation.AppendAPIKeys(v)
	return _u
}

// ClearAPIKeys clears the value of the "api_keys" field.
func (_u *TenantUpdateOne) ClearAPIKeys() *TenantUpdateOne {
	_u.mutation.ClearAPIKeys()
	return _u
}

// SetAllowedOrigins sets the "allowed_origins" field.
func (_u *TenantUpdateOne) SetAllowedOrigins(v []string) *TenantUpdateOne {
	_u.mutation.SetAllowedOrigins(v)
	return _u
}

// AppendAllowedOrigins appends value to the "allowed_origins" field.
func (_u *TenantUpdateOne) AppendAllowedOrigins(v []string) *TenantUpdateOne {
	_u.mutation.AppendAllowedOrigins(v)
	return _u
}

// ClearAllowedOrigins clears the value of the "allowed_origins" field.
func (_u *TenantUpdateOne) ClearAllowedOrigins() *TenantUpdateOne {
	_u.mutation.ClearAllowedOrigins()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdateOne) SetUpdatedAt(v time.Time) *TenantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TenantUpdateOne) SetDeletedAt(v time.Time) *TenantUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableDeletedAt(v *time.Time) *TenantUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TenantUpdateOne) ClearDeletedAt() *TenantUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetSettingsID sets the "settings" edge to the TenantSettings entity by ID.
func (_u *TenantUpdateOne) SetSettingsID(id string) *TenantUpdateOne {
	_u.mutation.SetSettingsID(id)
	return _u
}

// SetNillableSettingsID sets the "settings" edge to the TenantSettings entity by ID if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSettingsID(id *string) *TenantUpdateOne {
	if id != nil {
		_u = _u.SetSettingsID(*id)
	}
	return _u
}

// SetSettings sets the "settings" edge to the TenantSettings entity.
func (_u *TenantUpdateOne) SetSettings(v *TenantSettings) *TenantUpdateOne {
	return _u.SetSettingsID(v.ID)
}

// AddMembershipIDs adds the "memberships" edge to the TenantUser entity by IDs.
func (_u *TenantUpdateOne) AddMembershipIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the TenantUser entity.
func (_u *TenantUpdateOne) AddMemberships(v ...*TenantUser) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// AddRoleIDs adds the "roles" edge to the Role entity by IDs.
func (_u *TenantUpdateOne) AddRoleIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddRoleIDs(ids...)
	return _u
}

// AddRoles adds the "roles" edges to the Role entity.
func (_u *TenantUpdateOne) AddRoles(v ...*Role) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoleIDs(ids...)
}

// AddCustomerIDs adds the "customers" edge to the Customer entity by IDs.
func (_u *TenantUpdateOne) AddCustomerIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddCustomerIDs(ids...)
	return _u
}

// AddCustomers adds the "customers" edges to the Customer entity.
func (_u *TenantUpdateOne) AddCustomers(v ...*Customer) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCustomerIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *TenantUpdateOne) AddConversationIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *TenantUpdateOne) AddConversations(v ...*Conversation) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddProductIDs adds the "products" edge to the Product entity by IDs.
func (_u *TenantUpdateOne) AddProductIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddProductIDs(ids...)
	return _u
}

// AddProducts adds the "products" edges to the Product entity.
func (_u *TenantUpdateOne) AddProducts(v ...*Product) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProductIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeEntry entity by IDs.
func (_u *TenantUpdateOne) AddKnowledgeEntryIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddKnowledgeEntryIDs(ids...)
	return _u
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *TenantUpdateOne) AddKnowledgeEntries(v ...*KnowledgeEntry) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeEntryIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *TenantUpdateOne) AddOrderIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *TenantUpdateOne) AddOrders(v ...*Order) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// AddScheduledMessageIDs adds the "scheduled_messages" edge to the ScheduledMessage entity by IDs.
func (_u *TenantUpdateOne) AddScheduledMessageIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddScheduledMessageIDs(ids...)
	return _u
}

// AddScheduledMessages adds the "scheduled_messages" edges to the ScheduledMessage entity.
func (_u *TenantUpdateOne) AddScheduledMessages(v ...*ScheduledMessage) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledMessageIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by IDs.
func (_u *TenantUpdateOne) AddTemplateIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the MessageTemplate entity.
func (_u *TenantUpdateOne) AddTemplates(v ...*MessageTemplate) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *TenantUpdateOne) AddCampaignIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *TenantUpdateOne) AddCampaigns(v ...*Campaign) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *TenantUpdateOne) AddAppointmentIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *TenantUpdateOne) AddAppointments(v ...*Appointment) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddWithdrawalIDs adds the "withdrawals" edge to the Withdrawal entity by IDs.
func (_u *TenantUpdateOne) AddWithdrawalIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddWithdrawalIDs(ids...)
	return _u
}

// AddWithdrawals adds the "withdrawals" edges to the Withdrawal entity.
func (_u *TenantUpdateOne) AddWithdrawals(v ...*Withdrawal) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWithdrawalIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *TenantUpdateOne) AddAuditLogIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *TenantUpdateOne) AddAuditLogs(v ...*AuditLog) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdateOne) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearSettings clears the "settings" edge to the TenantSettings entity.
func (_u *TenantUpdateOne) ClearSettings() *TenantUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// ClearMemberships clears all "memberships" edges to the TenantUser entity.
func (_u *TenantUpdateOne) ClearMemberships() *TenantUpdateOne {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to TenantUser entities by IDs.
func (_u *TenantUpdateOne) RemoveMembershipIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to TenantUser entities.
func (_u *TenantUpdateOne) RemoveMemberships(v ...*TenantUser) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// ClearRoles clears all "roles" edges to the Role entity.
func (_u *TenantUpdateOne) ClearRoles() *TenantUpdateOne {
	_u.mutation.ClearRoles()
	return _u
}

// RemoveRoleIDs removes the "roles" edge to Role entities by IDs.
func (_u *TenantUpdateOne) RemoveRoleIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveRoleIDs(ids...)
	return _u
}

// RemoveRoles removes "roles" edges to Role entities.
func (_u *TenantUpdateOne) RemoveRoles(v ...*Role) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoleIDs(ids...)
}

// ClearCustomers clears all "customers" edges to the Customer entity.
func (_u *TenantUpdateOne) ClearCustomers() *TenantUpdateOne {
	_u.mutation.ClearCustomers()
	return _u
}

// RemoveCustomerIDs removes the "customers" edge to Customer entities by IDs.
func (_u *TenantUpdateOne) RemoveCustomerIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveCustomerIDs(ids...)
	return _u
}

// RemoveCustomers removes "customers" edges to Customer entities.
func (_u *TenantUpdateOne) RemoveCustomers(v ...*Customer) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCustomerIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *TenantUpdateOne) ClearConversations() *TenantUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *TenantUpdateOne) RemoveConversationIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *TenantUpdateOne) RemoveConversations(v ...*Conversation) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearProducts clears all "products" edges to the Product entity.
func (_u *TenantUpdateOne) ClearProducts() *TenantUpdateOne {
	_u.mutation.ClearProducts()
	return _u
}

// RemoveProductIDs removes the "products" edge to Product entities by IDs.
func (_u *TenantUpdateOne) RemoveProductIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveProductIDs(ids...)
	return _u
}

// RemoveProducts removes "products" edges to Product entities.
func (_u *TenantUpdateOne) RemoveProducts(v ...*Product) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProductIDs(ids...)
}

// ClearKnowledgeEntries clears all "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *TenantUpdateOne) ClearKnowledgeEntries() *TenantUpdateOne {
	_u.mutation.ClearKnowledgeEntries()
	return _u
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to KnowledgeEntry entities by IDs.
func (_u *TenantUpdateOne) RemoveKnowledgeEntryIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveKnowledgeEntryIDs(ids...)
	return _u
}

// RemoveKnowledgeEntries removes "knowledge_entries" edges to KnowledgeEntry entities.
func (_u *TenantUpdateOne) RemoveKnowledgeEntries(v ...*KnowledgeEntry) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeEntryIDs(ids...)
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *TenantUpdateOne) ClearOrders() *TenantUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *TenantUpdateOne) RemoveOrderIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *TenantUpdateOne) RemoveOrders(v ...*Order) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// ClearScheduledMessages clears all "scheduled_messages" edges to the ScheduledMessage entity.
func (_u *TenantUpdateOne) ClearScheduledMessages() *TenantUpdateOne {
	_u.mutation.ClearScheduledMessages()
	return _u
}

// RemoveScheduledMessageIDs removes the "scheduled_messages" edge to ScheduledMessage entities by IDs.
func (_u *TenantUpdateOne) RemoveScheduledMessageIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveScheduledMessageIDs(ids...)
	return _u
}

// RemoveScheduledMessages removes "scheduled_messages" edges to ScheduledMessage entities.
func (_u *TenantUpdateOne) RemoveScheduledMessages(v ...*ScheduledMessage) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledMessageIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the MessageTemplate entity.
func (_u *TenantUpdateOne) ClearTemplates() *TenantUpdateOne {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to MessageTemplate entities by IDs.
func (_u *TenantUpdateOne) RemoveTemplateIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to MessageTemplate entities.
func (_u *TenantUpdateOne) RemoveTemplates(v ...*MessageTemplate) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *TenantUpdateOne) ClearCampaigns() *TenantUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *TenantUpdateOne) RemoveCampaignIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *TenantUpdateOne) RemoveCampaigns(v ...*Campaign) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *TenantUpdateOne) ClearAppointments() *TenantUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *TenantUpdateOne) RemoveAppointmentIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *TenantUpdateOne) RemoveAppointments(v ...*Appointment) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearWithdrawals clears all "withdrawals" edges to the Withdrawal entity.
func (_u *TenantUpdateOne) ClearWithdrawals() *TenantUpdateOne {
	_u.mutation.ClearWithdrawals()
	return _u
}

// RemoveWithdrawalIDs removes the "withdrawals" edge to Withdrawal entities by IDs.
func (_u *TenantUpdateOne) RemoveWithdrawalIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveWithdrawalIDs(ids...)
	return _u
}

// RemoveWithdrawals removes "withdrawals" edges to Withdrawal entities.
func (_u *TenantUpdateOne) RemoveWithdrawals(v ...*Withdrawal) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWithdrawalIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *TenantUpdateOne) ClearAuditLogs() *TenantUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *TenantUpdateOne) RemoveAuditLogIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *TenantUpdateOne) RemoveAuditLogs(v ...*AuditLog) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tenant entity.
func (_u *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tenant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tenant.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tenant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrialEndsAt(); ok {
		_spec.SetField(tenant.FieldTrialEndsAt, field.TypeTime, value)
	}
	if _u.mutation.TrialEndsAtCleared() {
		_spec.ClearField(tenant.FieldTrialEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SubscriptionTier(); ok {
		_spec.SetField(tenant.FieldSubscriptionTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhatsappNumber(); ok {
		_spec.SetField(tenant.FieldWhatsappNumber, field.TypeString, value)
	}
	if _u.mutation.WhatsappNumberCleared() {
		_spec.ClearField(tenant.FieldWhatsappNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(tenant.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuietHoursStart(); ok {
		_spec.SetField(tenant.FieldQuietHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursStart(); ok {
		_spec.AddField(tenant.FieldQuietHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuietHoursEnd(); ok {
		_spec.SetField(tenant.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursEnd(); ok {
		_spec.AddField(tenant.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIKeys(); ok {
		_spec.SetField(tenant.FieldAPIKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAPIKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tenant.FieldAPIKeys, value)
		})
	}
	if _u.mutation.APIKeysCleared() {
		_spec.ClearField(tenant.FieldAPIKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.AllowedOrigins(); ok {
		_spec.SetField(tenant.FieldAllowedOrigins, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedOrigins(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tenant.FieldAllowedOrigins, value)
		})
	}
	if _u.mutation.AllowedOriginsCleared() {
		_spec.ClearField(tenant.FieldAllowedOrigins, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tenant.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tenant.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SettingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.SettingsTable,
			Columns: []string{tenant.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.SettingsTable,
			Columns: []string{tenant.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MembershipsTable,
			Columns: []string{tenant.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantuser.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MembershipsTable,
			Columns: []string{tenant.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MembershipsTable,
			Columns: []string{tenant.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenantuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RolesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.RolesTable,
			Columns: []string{tenant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRolesIDs(); len(nodes) > 0 && !_u.mutation.RolesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.RolesTable,
			Columns: []string{tenant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RolesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.RolesTable,
			Columns: []string{tenant.RolesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CustomersTable,
			Columns: []string{tenant.CustomersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCustomersIDs(); len(nodes) > 0 && !_u.mutation.CustomersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CustomersTable,
			Columns: []string{tenant.CustomersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CustomersTable,
			Columns: []string{tenant.CustomersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ConversationsTable,
			Columns: []string{tenant.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ProductsTable,
			Columns: []string{tenant.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProductsIDs(); len(nodes) > 0 && !_u.mutation.ProductsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ProductsTable,
			Columns: []string{tenant.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ProductsTable,
			Columns: []string{tenant.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeEntriesTable,
			Columns: []string{tenant.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeEntriesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeEntriesTable,
			Columns: []string{tenant.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KnowledgeEntriesTable,
			Columns: []string{tenant.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.OrdersTable,
			Columns: []string{tenant.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.OrdersTable,
			Columns: []string{tenant.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.OrdersTable,
			Columns: []string{tenant.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ScheduledMessagesTable,
			Columns: []string{tenant.ScheduledMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledMessagesIDs(); len(nodes) > 0 && !_u.mutation.ScheduledMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ScheduledMessagesTable,
			Columns: []string{tenant.ScheduledMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.ScheduledMessagesTable,
			Columns: []string{tenant.ScheduledMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.TemplatesTable,
			Columns: []string{tenant.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.TemplatesTable,
			Columns: []string{tenant.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.TemplatesTable,
			Columns: []string{tenant.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CampaignsTable,
			Columns: []string{tenant.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CampaignsTable,
			Columns: []string{tenant.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CampaignsTable,
			Columns: []string{tenant.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AppointmentsTable,
			Columns: []string{tenant.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AppointmentsTable,
			Columns: []string{tenant.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AppointmentsTable,
			Columns: []string{tenant.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WithdrawalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WithdrawalsTable,
			Columns: []string{tenant.WithdrawalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWithdrawalsIDs(); len(nodes) > 0 && !_u.mutation.WithdrawalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WithdrawalsTable,
			Columns: []string{tenant.WithdrawalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WithdrawalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WithdrawalsTable,
			Columns: []string{tenant.WithdrawalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AuditLogsTable,
			Columns: []string{tenant.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AuditLogsTable,
			Columns: []string{tenant.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AuditLogsTable,
			Columns: []string{tenant.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tenant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
