// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/ent/tenantsettings"
)

// Tenant is the model entity for the Tenant schema.
type Tenant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// URL-safe identifier, unique across the platform
	Slug string `json:"slug,omitempty"`
	// Status holds the value of the "status" field.
	Status tenant.Status `json:"status,omitempty"`
	// TrialEndsAt holds the value of the "trial_ends_at" field.
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	// Tier code resolved against the tier registry
	SubscriptionTier string `json:"subscription_tier,omitempty"`
	// E.164 number customers message
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Minutes from local midnight; window may wrap
	QuietHoursStart int `json:"quiet_hours_start,omitempty"`
	// QuietHoursEnd holds the value of the "quiet_hours_end" field.
	QuietHoursEnd int `json:"quiet_hours_end,omitempty"`
	// APIKeys holds the value of the "api_keys" field.
	APIKeys []schema.APIKey `json:"api_keys,omitempty"`
	// AllowedOrigins holds the value of the "allowed_origins" field.
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantQuery when eager-loading is set.
	Edges        TenantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantEdges holds the relations/edges for other nodes in the graph.
type TenantEdges struct {
	// Settings holds the value of the settings edge.
	Settings *TenantSettings `json:"settings,omitempty"`
	// Memberships holds the value of the memberships edge.
	Memberships []*TenantUser `json:"memberships,omitempty"`
	// Roles holds the value of the roles edge.
	Roles []*Role `json:"roles,omitempty"`
	// Customers holds the value of the customers edge.
	Customers []*Customer `json:"customers,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// Products holds the value of the products edge.
	Products []*Product `json:"products,omitempty"`
	// KnowledgeEntries holds the value of the knowledge_entries edge.
	KnowledgeEntries []*KnowledgeEntry `json:"knowledge_entries,omitempty"`
	// Orders holds the value of the orders edge.
	Orders []*Order `json:"orders,omitempty"`
	// ScheduledMessages holds the value of the scheduled_messages edge.
	ScheduledMessages []*ScheduledMessage `json:"scheduled_messages,omitempty"`
	// Templates holds the value of the templates edge.
	Templates []*MessageTemplate `json:"templates,omitempty"`
	// Campaigns holds the value of the campaigns edge.
	Campaigns []*Campaign `json:"campaigns,omitempty"`
	// Appointments holds the value of the appointments edge.
	Appointments []*Appointment `json:"appointments,omitempty"`
	// Withdrawals holds the value of the withdrawals edge.
	Withdrawals []*Withdrawal `json:"withdrawals,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [14]bool
}

// SettingsOrErr returns the Settings value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TenantEdges) SettingsOrErr() (*TenantSettings, error) {
	if e.Settings != nil {
		return e.Settings, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenantsettings.Label}
	}
	return nil, &NotLoadedError{edge: "settings"}
}

// MembershipsOrErr returns the Memberships value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) MembershipsOrErr() ([]*TenantUser, error) {
	if e.loadedTypes[1] {
		return e.Memberships, nil
	}
	return nil, &NotLoadedError{edge: "memberships"}
}

// RolesOrErr returns the Roles value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) RolesOrErr() ([]*Role, error) {
	if e.loadedTypes[2] {
		return e.Roles, nil
	}
	return nil, &NotLoadedError{edge: "roles"}
}

// CustomersOrErr returns the Customers value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) CustomersOrErr() ([]*Customer, error) {
	if e.loadedTypes[3] {
		return e.Customers, nil
	}
	return nil, &NotLoadedError{edge: "customers"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[4] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// ProductsOrErr returns the Products value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) ProductsOrErr() ([]*Product, error) {
	if e.loadedTypes[5] {
		return e.Products, nil
	}
	return nil, &NotLoadedError{edge: "products"}
}

// KnowledgeEntriesOrErr returns the KnowledgeEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) KnowledgeEntriesOrErr() ([]*KnowledgeEntry, error) {
	if e.loadedTypes[6] {
		return e.KnowledgeEntries, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_entries"}
}

// OrdersOrErr returns the Orders value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) OrdersOrErr() ([]*Order, error) {
	if e.loadedTypes[7] {
		return e.Orders, nil
	}
	return nil, &NotLoadedError{edge: "orders"}
}

// ScheduledMessagesOrErr returns the ScheduledMessages value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) ScheduledMessagesOrErr() ([]*ScheduledMessage, error) {
	if e.loadedTypes[8] {
		return e.ScheduledMessages, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_messages"}
}

// TemplatesOrErr returns the Templates value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) TemplatesOrErr() ([]*MessageTemplate, error) {
	if e.loadedTypes[9] {
		return e.Templates, nil
	}
	return nil, &NotLoadedError{edge: "templates"}
}

// CampaignsOrErr returns the Campaigns value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) CampaignsOrErr() ([]*Campaign, error) {
	if e.loadedTypes[10] {
		return e.Campaigns, nil
	}
	return nil, &NotLoadedError{edge: "campaigns"}
}

// AppointmentsOrErr returns the Appointments value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AppointmentsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[11] {
		return e.Appointments, nil
	}
	return nil, &NotLoadedError{edge: "appointments"}
}

// WithdrawalsOrErr returns the Withdrawals value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) WithdrawalsOrErr() ([]*Withdrawal, error) {
	if e.loadedTypes[12] {
		return e.Withdrawals, nil
	}
	return nil, &NotLoadedError{edge: "withdrawals"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[13] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tenant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenant.FieldAPIKeys, tenant.FieldAllowedOrigins:
			values[i] = new([]byte)
		case tenant.FieldQuietHoursStart, tenant.FieldQuietHoursEnd:
			values[i] = new(sql.NullInt64)
		case tenant.FieldID, tenant.FieldName, tenant.FieldSlug, tenant.FieldStatus, tenant.FieldSubscriptionTier, tenant.FieldWhatsappNumber, tenant.FieldTimezone:
			values[i] = new(sql.NullString)
		case tenant.FieldTrialEndsAt, tenant.FieldCreatedAt, tenant.FieldUpdatedAt, tenant.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tenant fields.
func (_m *Tenant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tenant.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case tenant.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = tenant.Status(value.String)
			}
		case tenant.FieldTrialEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_ends_at", values[i])
			} else if value.Valid {
				_m.TrialEndsAt = new(time.Time)
				*_m.TrialEndsAt = value.Time
			}
		case tenant.FieldSubscriptionTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_tier", values[i])
			} else if value.Valid {
				_m.SubscriptionTier = value.String
			}
		case tenant.FieldWhatsappNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field whatsapp_number", values[i])
			} else if value.Valid {
				_m.WhatsappNumber = value.String
			}
		case tenant.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case tenant.FieldQuietHoursStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiet_hours_start", values[i])
			} else if value.Valid {
				_m.QuietHoursStart = int(value.Int64)
			}
		case tenant.FieldQuietHoursEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiet_hours_end", values[i])
			} else if value.Valid {
				_m.QuietHoursEnd = int(value.Int64)
			}
		case tenant.FieldAPIKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field api_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.APIKeys); err != nil {
					return fmt.Errorf("unmarshal field api_keys: %w", err)
				}
			}
		case tenant.FieldAllowedOrigins:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_origins", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedOrigins); err != nil {
					return fmt.Errorf("unmarshal field allowed_origins: %w", err)
				}
			}
		case tenant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tenant.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tenant.
// This includes values selected through modifiers, order, etc.
func (_m *Tenant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySettings queries the "settings" edge of the Tenant entity.
func (_m *Tenant) QuerySettings() *TenantSettingsQuery {
	return NewTenantClient(_m.config).QuerySettings(_m)
}

// QueryMemberships queries the "memberships" edge of the Tenant entity.
func (_m *Tenant) QueryMemberships() *TenantUserQuery {
	return NewTenantClient(_m.config).QueryMemberships(_m)
}

// QueryRoles queries the "roles" edge of the Tenant entity.
func (_m *Tenant) QueryRoles() *RoleQuery {
	return NewTenantClient(_m.config).QueryRoles(_m)
}

// QueryCustomers queries the "customers" edge of the Tenant entity.
func (_m *Tenant) QueryCustomers() *CustomerQuery {
	return NewTenantClient(_m.config).QueryCustomers(_m)
}

// QueryConversations queries the "conversations" edge of the Tenant entity.
func (_m *Tenant) QueryConversations() *ConversationQuery {
	return NewTenantClient(_m.config).QueryConversations(_m)
}

// QueryProducts queries the "products" edge of the Tenant entity.
func (_m *Tenant) QueryProducts() *ProductQuery {
	return NewTenantClient(_m.config).QueryProducts(_m)
}

// QueryKnowledgeEntries queries the "knowledge_entries" edge of the Tenant entity.
func (_m *Tenant) QueryKnowledgeEntries() *KnowledgeEntryQuery {
	return NewTenantClient(_m.config).QueryKnowledgeEntries(_m)
}

// QueryOrders queries the "orders" edge of the Tenant entity.
func (_m *Tenant) QueryOrders() *OrderQuery {
	return NewTenantClient(_m.config).QueryOrders(_m)
}

// QueryScheduledMessages queries the "scheduled_messages" edge of the Tenant entity.
func (_m *Tenant) QueryScheduledMessages() *ScheduledMessageQuery {
	return NewTenantClient(_m.config).QueryScheduledMessages(_m)
}

// QueryTemplates queries the "templates" edge of the Tenant entity.
func (_m *Tenant) QueryTemplates() *MessageTemplateQuery {
	return NewTenantClient(_m.config).QueryTemplates(_m)
}

// QueryCampaigns queries the "campaigns" edge of the Tenant entity.
func (_m *Tenant) QueryCampaigns() *CampaignQuery {
	return NewTenantClient(_m.config).QueryCampaigns(_m)
}

// QueryAppointments queries the "appointments" edge of the Tenant entity.
func (_m *Tenant) QueryAppointments() *AppointmentQuery {
	return NewTenantClient(_m.config).QueryAppointments(_m)
}

// QueryWithdrawals queries the "withdrawals" edge of the Tenant entity.
func (_m *Tenant) QueryWithdrawals() *WithdrawalQuery {
	return NewTenantClient(_m.config).QueryWithdrawals(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the Tenant entity.
func (_m *Tenant) QueryAuditLogs() *AuditLogQuery {
	return NewTenantClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this Tenant.
// Note that you need to call Tenant.Unwrap() before calling this method if this Tenant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tenant) Update() *TenantUpdateOne {
	return NewTenantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tenant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tenant) Unwrap() *Tenant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tenant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tenant) String() string {
	var builder strings.Builder
	builder.WriteString("Tenant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TrialEndsAt; v != nil {
		builder.WriteString("trial_ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("subscription_tier=")
	builder.WriteString(_m.SubscriptionTier)
	builder.WriteString(", ")
	builder.WriteString("whatsapp_number=")
	builder.WriteString(_m.WhatsappNumber)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("quiet_hours_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuietHoursStart))
	builder.WriteString(", ")
	builder.WriteString("quiet_hours_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuietHoursEnd))
	builder.WriteString(", ")
	builder.WriteString("api_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.APIKeys))
	builder.WriteString(", ")
	builder.WriteString("allowed_origins=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedOrigins))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tenants is a parsable slice of Tenant.
type Tenants []*Tenant
