// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sokochat/sokochat/ent/appointment"
	"github.com/sokochat/sokochat/ent/auditlog"
	"github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/conversationcontext"
	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/ent/knowledgeentry"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/messagetemplate"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/orderitem"
	"github.com/sokochat/sokochat/ent/outboxevent"
	"github.com/sokochat/sokochat/ent/paymentrequest"
	"github.com/sokochat/sokochat/ent/permission"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/product"
	"github.com/sokochat/sokochat/ent/productvariant"
	"github.com/sokochat/sokochat/ent/referencecontext"
	"github.com/sokochat/sokochat/ent/role"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/ent/tenantsettings"
	"github.com/sokochat/sokochat/ent/tenantuser"
	"github.com/sokochat/sokochat/ent/user"
	"github.com/sokochat/sokochat/ent/userpermission"
	"github.com/sokochat/sokochat/ent/withdrawal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment         = "Appointment"
	TypeAuditLog            = "AuditLog"
	TypeCampaign            = "Campaign"
	TypeCheckoutSession     = "CheckoutSession"
	TypeConversation        = "Conversation"
	TypeConversationContext = "ConversationContext"
	TypeCustomer            = "Customer"
	TypeKnowledgeEntry      = "KnowledgeEntry"
	TypeMessage             = "Message"
	TypeMessageTemplate     = "MessageTemplate"
	TypeOrder               = "Order"
	TypeOrderItem           = "OrderItem"
	TypeOutboxEvent         = "OutboxEvent"
	TypePaymentRequest      = "PaymentRequest"
	TypePermission          = "Permission"
	TypeProduct             = "Product"
	TypeProductVariant      = "ProductVariant"
	TypeReferenceContext    = "ReferenceContext"
	TypeRole                = "Role"
	TypeScheduledMessage    = "ScheduledMessage"
	TypeTenant              = "Tenant"
	TypeTenantSettings      = "TenantSettings"
	TypeTenantUser          = "TenantUser"
	TypeUser                = "User"
	TypeUserPermission      = "UserPermission"
	TypeWithdrawal          = "Withdrawal"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	service_name    *string
	starts_at       *time.Time
	status          *appointment.Status
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	tenant          *string
	clearedtenant   bool
	customer        *string
	clearedcustomer bool
	done            bool
	oldValue        func(context.Context) (*Appointment, error)
	predicates      []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id string) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AppointmentMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AppointmentMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AppointmentMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *AppointmentMutation) SetCustomerID(s string) {
	m.customer = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *AppointmentMutation) CustomerID() (r string, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *AppointmentMutation) ResetCustomerID() {
	m.customer = nil
}

// SetServiceName sets the "service_name" field.
func (m *AppointmentMutation) SetServiceName(s string) {
	m.service_name = &s
}

// ServiceName returns the value of the "service_name" field in the mutation.
func (m *AppointmentMutation) ServiceName() (r string, exists bool) {
	v := m.service_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceName returns the old "service_name" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldServiceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceName: %w", err)
	}
	return oldValue.ServiceName, nil
}

// ResetServiceName resets all changes to the "service_name" field.
func (m *AppointmentMutation) ResetServiceName() {
	m.service_name = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *AppointmentMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *AppointmentMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *AppointmentMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AppointmentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AppointmentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AppointmentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[appointment.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AppointmentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AppointmentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, appointment.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *AppointmentMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[appointment.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *AppointmentMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *AppointmentMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *AppointmentMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[appointment.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *AppointmentMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) CustomerIDs() (ids []string) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *AppointmentMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, appointment.FieldTenantID)
	}
	if m.customer != nil {
		fields = append(fields, appointment.FieldCustomerID)
	}
	if m.service_name != nil {
		fields = append(fields, appointment.FieldServiceName)
	}
	if m.starts_at != nil {
		fields = append(fields, appointment.FieldStartsAt)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, appointment.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldTenantID:
		return m.TenantID()
	case appointment.FieldCustomerID:
		return m.CustomerID()
	case appointment.FieldServiceName:
		return m.ServiceName()
	case appointment.FieldStartsAt:
		return m.StartsAt()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldTenantID:
		return m.OldTenantID(ctx)
	case appointment.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case appointment.FieldServiceName:
		return m.OldServiceName(ctx)
	case appointment.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case appointment.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case appointment.FieldServiceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceName(v)
		return nil
	case appointment.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldDeletedAt) {
		fields = append(fields, appointment.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldTenantID:
		m.ResetTenantID()
		return nil
	case appointment.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case appointment.FieldServiceName:
		m.ResetServiceName()
		return nil
	case appointment.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, appointment.EdgeTenant)
	}
	if m.customer != nil {
		edges = append(edges, appointment.EdgeCustomer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointment.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, appointment.EdgeTenant)
	}
	if m.clearedcustomer {
		edges = append(edges, appointment.EdgeCustomer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	switch name {
	case appointment.EdgeTenant:
		return m.clearedtenant
	case appointment.EdgeCustomer:
		return m.clearedcustomer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	switch name {
	case appointment.EdgeTenant:
		m.ClearTenant()
		return nil
	case appointment.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	switch name {
	case appointment.EdgeTenant:
		m.ResetTenant()
		return nil
	case appointment.EdgeCustomer:
		m.ResetCustomer()
		return nil
	}
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	actor_user_id *string
	action        *string
	target_type   *string
	target_id     *string
	before        *map[string]interface{}
	after         *map[string]interface{}
	request_id    *string
	ip            *string
	user_agent    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	tenant        *string
	clearedtenant bool
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AuditLogMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AuditLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AuditLogMutation) ResetTenantID() {
	m.tenant = nil
}

// SetActorUserID sets the "actor_user_id" field.
func (m *AuditLogMutation) SetActorUserID(s string) {
	m.actor_user_id = &s
}

// ActorUserID returns the value of the "actor_user_id" field in the mutation.
func (m *AuditLogMutation) ActorUserID() (r string, exists bool) {
	v := m.actor_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorUserID returns the old "actor_user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActorUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorUserID: %w", err)
	}
	return oldValue.ActorUserID, nil
}

// ClearActorUserID clears the value of the "actor_user_id" field.
func (m *AuditLogMutation) ClearActorUserID() {
	m.actor_user_id = nil
	m.clearedFields[auditlog.FieldActorUserID] = struct{}{}
}

// ActorUserIDCleared returns if the "actor_user_id" field was cleared in this mutation.
func (m *AuditLogMutation) ActorUserIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActorUserID]
	return ok
}

// ResetActorUserID resets all changes to the "actor_user_id" field.
func (m *AuditLogMutation) ResetActorUserID() {
	m.actor_user_id = nil
	delete(m.clearedFields, auditlog.FieldActorUserID)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetTargetType sets the "target_type" field.
func (m *AuditLogMutation) SetTargetType(s string) {
	m.target_type = &s
}

// TargetType returns the value of the "target_type" field in the mutation.
func (m *AuditLogMutation) TargetType() (r string, exists bool) {
	v := m.target_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetType returns the old "target_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTargetType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetType: %w", err)
	}
	return oldValue.TargetType, nil
}

// ResetTargetType resets all changes to the "target_type" field.
func (m *AuditLogMutation) ResetTargetType() {
	m.target_type = nil
}

// SetTargetID sets the "target_id" field.
func (m *AuditLogMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *AuditLogMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ClearTargetID clears the value of the "target_id" field.
func (m *AuditLogMutation) ClearTargetID() {
	m.target_id = nil
	m.clearedFields[auditlog.FieldTargetID] = struct{}{}
}

// TargetIDCleared returns if the "target_id" field was cleared in this mutation.
func (m *AuditLogMutation) TargetIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldTargetID]
	return ok
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *AuditLogMutation) ResetTargetID() {
	m.target_id = nil
	delete(m.clearedFields, auditlog.FieldTargetID)
}

// SetBefore sets the "before" field.
func (m *AuditLogMutation) SetBefore(value map[string]interface{}) {
	m.before = &value
}

// Before returns the value of the "before" field in the mutation.
func (m *AuditLogMutation) Before() (r map[string]interface{}, exists bool) {
	v := m.before
	if v == nil {
		return
	}
	return *v, true
}

// OldBefore returns the old "before" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldBefore(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBefore: %w", err)
	}
	return oldValue.Before, nil
}

// ClearBefore clears the value of the "before" field.
func (m *AuditLogMutation) ClearBefore() {
	m.before = nil
	m.clearedFields[auditlog.FieldBefore] = struct{}{}
}

// BeforeCleared returns if the "before" field was cleared in this mutation.
func (m *AuditLogMutation) BeforeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldBefore]
	return ok
}

// ResetBefore resets all changes to the "before" field.
func (m *AuditLogMutation) ResetBefore() {
	m.before = nil
	delete(m.clearedFields, auditlog.FieldBefore)
}

// SetAfter sets the "after" field.
func (m *AuditLogMutation) SetAfter(value map[string]interface{}) {
	m.after = &value
}

// After returns the value of the "after" field in the mutation.
func (m *AuditLogMutation) After() (r map[string]interface{}, exists bool) {
	v := m.after
	if v == nil {
		return
	}
	return *v, true
}

// OldAfter returns the old "after" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAfter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfter: %w", err)
	}
	return oldValue.After, nil
}

// ClearAfter clears the value of the "after" field.
func (m *AuditLogMutation) ClearAfter() {
	m.after = nil
	m.clearedFields[auditlog.FieldAfter] = struct{}{}
}

// AfterCleared returns if the "after" field was cleared in this mutation.
func (m *AuditLogMutation) AfterCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldAfter]
	return ok
}

// ResetAfter resets all changes to the "after" field.
func (m *AuditLogMutation) ResetAfter() {
	m.after = nil
	delete(m.clearedFields, auditlog.FieldAfter)
}

// SetRequestID sets the "request_id" field.
func (m *AuditLogMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AuditLogMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *AuditLogMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[auditlog.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *AuditLogMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AuditLogMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, auditlog.FieldRequestID)
}

// SetIP sets the "ip" field.
func (m *AuditLogMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *AuditLogMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *AuditLogMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[auditlog.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *AuditLogMutation) IPCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *AuditLogMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, auditlog.FieldIP)
}

// SetUserAgent sets the "user_agent" field.
func (m *AuditLogMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AuditLogMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AuditLogMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[auditlog.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AuditLogMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AuditLogMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, auditlog.FieldUserAgent)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *AuditLogMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[auditlog.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *AuditLogMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *AuditLogMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant != nil {
		fields = append(fields, auditlog.FieldTenantID)
	}
	if m.actor_user_id != nil {
		fields = append(fields, auditlog.FieldActorUserID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.target_type != nil {
		fields = append(fields, auditlog.FieldTargetType)
	}
	if m.target_id != nil {
		fields = append(fields, auditlog.FieldTargetID)
	}
	if m.before != nil {
		fields = append(fields, auditlog.FieldBefore)
	}
	if m.after != nil {
		fields = append(fields, auditlog.FieldAfter)
	}
	if m.request_id != nil {
		fields = append(fields, auditlog.FieldRequestID)
	}
	if m.ip != nil {
		fields = append(fields, auditlog.FieldIP)
	}
	if m.user_agent != nil {
		fields = append(fields, auditlog.FieldUserAgent)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldTenantID:
		return m.TenantID()
	case auditlog.FieldActorUserID:
		return m.ActorUserID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldTargetType:
		return m.TargetType()
	case auditlog.FieldTargetID:
		return m.TargetID()
	case auditlog.FieldBefore:
		return m.Before()
	case auditlog.FieldAfter:
		return m.After()
	case auditlog.FieldRequestID:
		return m.RequestID()
	case auditlog.FieldIP:
		return m.IP()
	case auditlog.FieldUserAgent:
		return m.UserAgent()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case auditlog.FieldActorUserID:
		return m.OldActorUserID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldTargetType:
		return m.OldTargetType(ctx)
	case auditlog.FieldTargetID:
		return m.OldTargetID(ctx)
	case auditlog.FieldBefore:
		return m.OldBefore(ctx)
	case auditlog.FieldAfter:
		return m.OldAfter(ctx)
	case auditlog.FieldRequestID:
		return m.OldRequestID(ctx)
	case auditlog.FieldIP:
		return m.OldIP(ctx)
	case auditlog.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case auditlog.FieldActorUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorUserID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldTargetType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetType(v)
		return nil
	case auditlog.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case auditlog.FieldBefore:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBefore(v)
		return nil
	case auditlog.FieldAfter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfter(v)
		return nil
	case auditlog.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case auditlog.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case auditlog.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldActorUserID) {
		fields = append(fields, auditlog.FieldActorUserID)
	}
	if m.FieldCleared(auditlog.FieldTargetID) {
		fields = append(fields, auditlog.FieldTargetID)
	}
	if m.FieldCleared(auditlog.FieldBefore) {
		fields = append(fields, auditlog.FieldBefore)
	}
	if m.FieldCleared(auditlog.FieldAfter) {
		fields = append(fields, auditlog.FieldAfter)
	}
	if m.FieldCleared(auditlog.FieldRequestID) {
		fields = append(fields, auditlog.FieldRequestID)
	}
	if m.FieldCleared(auditlog.FieldIP) {
		fields = append(fields, auditlog.FieldIP)
	}
	if m.FieldCleared(auditlog.FieldUserAgent) {
		fields = append(fields, auditlog.FieldUserAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldActorUserID:
		m.ClearActorUserID()
		return nil
	case auditlog.FieldTargetID:
		m.ClearTargetID()
		return nil
	case auditlog.FieldBefore:
		m.ClearBefore()
		return nil
	case auditlog.FieldAfter:
		m.ClearAfter()
		return nil
	case auditlog.FieldRequestID:
		m.ClearRequestID()
		return nil
	case auditlog.FieldIP:
		m.ClearIP()
		return nil
	case auditlog.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case auditlog.FieldActorUserID:
		m.ResetActorUserID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldTargetType:
		m.ResetTargetType()
		return nil
	case auditlog.FieldTargetID:
		m.ResetTargetID()
		return nil
	case auditlog.FieldBefore:
		m.ResetBefore()
		return nil
	case auditlog.FieldAfter:
		m.ResetAfter()
		return nil
	case auditlog.FieldRequestID:
		m.ResetRequestID()
		return nil
	case auditlog.FieldIP:
		m.ResetIP()
		return nil
	case auditlog.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, auditlog.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, auditlog.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	name                        *string
	targeting                   **schema.CampaignTargeting
	is_ab_test                  *bool
	variants                    *[]schema.CampaignVariant
	appendvariants              []schema.CampaignVariant
	content                     *string
	status                      *campaign.Status
	scheduled_at                *time.Time
	targeted_count              *int
	addtargeted_count           *int
	delivered_count             *int
	adddelivered_count          *int
	failed_count                *int
	addfailed_count             *int
	read_count                  *int
	addread_count               *int
	response_count              *int
	addresponse_count           *int
	conversion_count            *int
	addconversion_count         *int
	skipped_no_consent_count    *int
	addskipped_no_consent_count *int
	metadata                    *map[string]interface{}
	created_at                  *time.Time
	updated_at                  *time.Time
	deleted_at                  *time.Time
	clearedFields               map[string]struct{}
	tenant                      *string
	clearedtenant               bool
	done                        bool
	oldValue                    func(context.Context) (*Campaign, error)
	predicates                  []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CampaignMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CampaignMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CampaignMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetTargeting sets the "targeting" field.
func (m *CampaignMutation) SetTargeting(st *schema.CampaignTargeting) {
	m.targeting = &st
}

// Targeting returns the value of the "targeting" field in the mutation.
func (m *CampaignMutation) Targeting() (r *schema.CampaignTargeting, exists bool) {
	v := m.targeting
	if v == nil {
		return
	}
	return *v, true
}

// OldTargeting returns the old "targeting" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTargeting(ctx context.Context) (v *schema.CampaignTargeting, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargeting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargeting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargeting: %w", err)
	}
	return oldValue.Targeting, nil
}

// ClearTargeting clears the value of the "targeting" field.
func (m *CampaignMutation) ClearTargeting() {
	m.targeting = nil
	m.clearedFields[campaign.FieldTargeting] = struct{}{}
}

// TargetingCleared returns if the "targeting" field was cleared in this mutation.
func (m *CampaignMutation) TargetingCleared() bool {
	_, ok := m.clearedFields[campaign.FieldTargeting]
	return ok
}

// ResetTargeting resets all changes to the "targeting" field.
func (m *CampaignMutation) ResetTargeting() {
	m.targeting = nil
	delete(m.clearedFields, campaign.FieldTargeting)
}

// SetIsAbTest sets the "is_ab_test" field.
func (m *CampaignMutation) SetIsAbTest(b bool) {
	m.is_ab_test = &b
}

// IsAbTest returns the value of the "is_ab_test" field in the mutation.
func (m *CampaignMutation) IsAbTest() (r bool, exists bool) {
	v := m.is_ab_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAbTest returns the old "is_ab_test" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldIsAbTest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAbTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAbTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAbTest: %w", err)
	}
	return oldValue.IsAbTest, nil
}

// ResetIsAbTest resets all changes to the "is_ab_test" field.
func (m *CampaignMutation) ResetIsAbTest() {
	m.is_ab_test = nil
}

// SetVariants sets the "variants" field.
func (m *CampaignMutation) SetVariants(sv []schema.CampaignVariant) {
	m.variants = &sv
	m.appendvariants = nil
}

// Variants returns the value of the "variants" field in the mutation.
func (m *CampaignMutation) Variants() (r []schema.CampaignVariant, exists bool) {
	v := m.variants
	if v == nil {
		return
	}
	return *v, true
}

// OldVariants returns the old "variants" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldVariants(ctx context.Context) (v []schema.CampaignVariant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariants: %w", err)
	}
	return oldValue.Variants, nil
}

// AppendVariants adds sv to the "variants" field.
func (m *CampaignMutation) AppendVariants(sv []schema.CampaignVariant) {
	m.appendvariants = append(m.appendvariants, sv...)
}

// AppendedVariants returns the list of values that were appended to the "variants" field in this mutation.
func (m *CampaignMutation) AppendedVariants() ([]schema.CampaignVariant, bool) {
	if len(m.appendvariants) == 0 {
		return nil, false
	}
	return m.appendvariants, true
}

// ClearVariants clears the value of the "variants" field.
func (m *CampaignMutation) ClearVariants() {
	m.variants = nil
	m.appendvariants = nil
	m.clearedFields[campaign.FieldVariants] = struct{}{}
}

// VariantsCleared returns if the "variants" field was cleared in this mutation.
func (m *CampaignMutation) VariantsCleared() bool {
	_, ok := m.clearedFields[campaign.FieldVariants]
	return ok
}

// ResetVariants resets all changes to the "variants" field.
func (m *CampaignMutation) ResetVariants() {
	m.variants = nil
	m.appendvariants = nil
	delete(m.clearedFields, campaign.FieldVariants)
}

// SetContent sets the "content" field.
func (m *CampaignMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CampaignMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *CampaignMutation) ClearContent() {
	m.content = nil
	m.clearedFields[campaign.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *CampaignMutation) ContentCleared() bool {
	_, ok := m.clearedFields[campaign.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *CampaignMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, campaign.FieldContent)
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *CampaignMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *CampaignMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *CampaignMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[campaign.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *CampaignMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *CampaignMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, campaign.FieldScheduledAt)
}

// SetTargetedCount sets the "targeted_count" field.
func (m *CampaignMutation) SetTargetedCount(i int) {
	m.targeted_count = &i
	m.addtargeted_count = nil
}

// TargetedCount returns the value of the "targeted_count" field in the mutation.
func (m *CampaignMutation) TargetedCount() (r int, exists bool) {
	v := m.targeted_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetedCount returns the old "targeted_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTargetedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetedCount: %w", err)
	}
	return oldValue.TargetedCount, nil
}

// AddTargetedCount adds i to the "targeted_count" field.
func (m *CampaignMutation) AddTargetedCount(i int) {
	if m.addtargeted_count != nil {
		*m.addtargeted_count += i
	} else {
		m.addtargeted_count = &i
	}
}

// AddedTargetedCount returns the value that was added to the "targeted_count" field in this mutation.
func (m *CampaignMutation) AddedTargetedCount() (r int, exists bool) {
	v := m.addtargeted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetedCount resets all changes to the "targeted_count" field.
func (m *CampaignMutation) ResetTargetedCount() {
	m.targeted_count = nil
	m.addtargeted_count = nil
}

// SetDeliveredCount sets the "delivered_count" field.
func (m *CampaignMutation) SetDeliveredCount(i int) {
	m.delivered_count = &i
	m.adddelivered_count = nil
}

// DeliveredCount returns the value of the "delivered_count" field in the mutation.
func (m *CampaignMutation) DeliveredCount() (r int, exists bool) {
	v := m.delivered_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredCount returns the old "delivered_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDeliveredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredCount: %w", err)
	}
	return oldValue.DeliveredCount, nil
}

// AddDeliveredCount adds i to the "delivered_count" field.
func (m *CampaignMutation) AddDeliveredCount(i int) {
	if m.adddelivered_count != nil {
		*m.adddelivered_count += i
	} else {
		m.adddelivered_count = &i
	}
}

// AddedDeliveredCount returns the value that was added to the "delivered_count" field in this mutation.
func (m *CampaignMutation) AddedDeliveredCount() (r int, exists bool) {
	v := m.adddelivered_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveredCount resets all changes to the "delivered_count" field.
func (m *CampaignMutation) ResetDeliveredCount() {
	m.delivered_count = nil
	m.adddelivered_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *CampaignMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *CampaignMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *CampaignMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *CampaignMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *CampaignMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetReadCount sets the "read_count" field.
func (m *CampaignMutation) SetReadCount(i int) {
	m.read_count = &i
	m.addread_count = nil
}

// ReadCount returns the value of the "read_count" field in the mutation.
func (m *CampaignMutation) ReadCount() (r int, exists bool) {
	v := m.read_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReadCount returns the old "read_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldReadCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadCount: %w", err)
	}
	return oldValue.ReadCount, nil
}

// AddReadCount adds i to the "read_count" field.
func (m *CampaignMutation) AddReadCount(i int) {
	if m.addread_count != nil {
		*m.addread_count += i
	} else {
		m.addread_count = &i
	}
}

// AddedReadCount returns the value that was added to the "read_count" field in this mutation.
func (m *CampaignMutation) AddedReadCount() (r int, exists bool) {
	v := m.addread_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReadCount resets all changes to the "read_count" field.
func (m *CampaignMutation) ResetReadCount() {
	m.read_count = nil
	m.addread_count = nil
}

// SetResponseCount sets the "response_count" field.
func (m *CampaignMutation) SetResponseCount(i int) {
	m.response_count = &i
	m.addresponse_count = nil
}

// ResponseCount returns the value of the "response_count" field in the mutation.
func (m *CampaignMutation) ResponseCount() (r int, exists bool) {
	v := m.response_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseCount returns the old "response_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldResponseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseCount: %w", err)
	}
	return oldValue.ResponseCount, nil
}

// AddResponseCount adds i to the "response_count" field.
func (m *CampaignMutation) AddResponseCount(i int) {
	if m.addresponse_count != nil {
		*m.addresponse_count += i
	} else {
		m.addresponse_count = &i
	}
}

// AddedResponseCount returns the value that was added to the "response_count" field in this mutation.
func (m *CampaignMutation) AddedResponseCount() (r int, exists bool) {
	v := m.addresponse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseCount resets all changes to the "response_count" field.
func (m *CampaignMutation) ResetResponseCount() {
	m.response_count = nil
	m.addresponse_count = nil
}

// SetConversionCount sets the "conversion_count" field.
func (m *CampaignMutation) SetConversionCount(i int) {
	m.conversion_count = &i
	m.addconversion_count = nil
}

// ConversionCount returns the value of the "conversion_count" field in the mutation.
func (m *CampaignMutation) ConversionCount() (r int, exists bool) {
	v := m.conversion_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConversionCount returns the old "conversion_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldConversionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversionCount: %w", err)
	}
	return oldValue.ConversionCount, nil
}

// AddConversionCount adds i to the "conversion_count" field.
func (m *CampaignMutation) AddConversionCount(i int) {
	if m.addconversion_count != nil {
		*m.addconversion_count += i
	} else {
		m.addconversion_count = &i
	}
}

// AddedConversionCount returns the value that was added to the "conversion_count" field in this mutation.
func (m *CampaignMutation) AddedConversionCount() (r int, exists bool) {
	v := m.addconversion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConversionCount resets all changes to the "conversion_count" field.
func (m *CampaignMutation) ResetConversionCount() {
	m.conversion_count = nil
	m.addconversion_count = nil
}

// SetSkippedNoConsentCount sets the "skipped_no_consent_count" field.
func (m *CampaignMutation) SetSkippedNoConsentCount(i int) {
	m.skipped_no_consent_count = &i
	m.addskipped_no_consent_count = nil
}

// SkippedNoConsentCount returns the value of the "skipped_no_consent_count" field in the mutation.
func (m *CampaignMutation) SkippedNoConsentCount() (r int, exists bool) {
	v := m.skipped_no_consent_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedNoConsentCount returns the old "skipped_no_consent_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSkippedNoConsentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedNoConsentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedNoConsentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedNoConsentCount: %w", err)
	}
	return oldValue.SkippedNoConsentCount, nil
}

// AddSkippedNoConsentCount adds i to the "skipped_no_consent_count" field.
func (m *CampaignMutation) AddSkippedNoConsentCount(i int) {
	if m.addskipped_no_consent_count != nil {
		*m.addskipped_no_consent_count += i
	} else {
		m.addskipped_no_consent_count = &i
	}
}

// AddedSkippedNoConsentCount returns the value that was added to the "skipped_no_consent_count" field in this mutation.
func (m *CampaignMutation) AddedSkippedNoConsentCount() (r int, exists bool) {
	v := m.addskipped_no_consent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkippedNoConsentCount resets all changes to the "skipped_no_consent_count" field.
func (m *CampaignMutation) ResetSkippedNoConsentCount() {
	m.skipped_no_consent_count = nil
	m.addskipped_no_consent_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *CampaignMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CampaignMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CampaignMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[campaign.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CampaignMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[campaign.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CampaignMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, campaign.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CampaignMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CampaignMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CampaignMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[campaign.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CampaignMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CampaignMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, campaign.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *CampaignMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[campaign.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *CampaignMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *CampaignMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.tenant != nil {
		fields = append(fields, campaign.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.targeting != nil {
		fields = append(fields, campaign.FieldTargeting)
	}
	if m.is_ab_test != nil {
		fields = append(fields, campaign.FieldIsAbTest)
	}
	if m.variants != nil {
		fields = append(fields, campaign.FieldVariants)
	}
	if m.content != nil {
		fields = append(fields, campaign.FieldContent)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.scheduled_at != nil {
		fields = append(fields, campaign.FieldScheduledAt)
	}
	if m.targeted_count != nil {
		fields = append(fields, campaign.FieldTargetedCount)
	}
	if m.delivered_count != nil {
		fields = append(fields, campaign.FieldDeliveredCount)
	}
	if m.failed_count != nil {
		fields = append(fields, campaign.FieldFailedCount)
	}
	if m.read_count != nil {
		fields = append(fields, campaign.FieldReadCount)
	}
	if m.response_count != nil {
		fields = append(fields, campaign.FieldResponseCount)
	}
	if m.conversion_count != nil {
		fields = append(fields, campaign.FieldConversionCount)
	}
	if m.skipped_no_consent_count != nil {
		fields = append(fields, campaign.FieldSkippedNoConsentCount)
	}
	if m.metadata != nil {
		fields = append(fields, campaign.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, campaign.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTenantID:
		return m.TenantID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldTargeting:
		return m.Targeting()
	case campaign.FieldIsAbTest:
		return m.IsAbTest()
	case campaign.FieldVariants:
		return m.Variants()
	case campaign.FieldContent:
		return m.Content()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldScheduledAt:
		return m.ScheduledAt()
	case campaign.FieldTargetedCount:
		return m.TargetedCount()
	case campaign.FieldDeliveredCount:
		return m.DeliveredCount()
	case campaign.FieldFailedCount:
		return m.FailedCount()
	case campaign.FieldReadCount:
		return m.ReadCount()
	case campaign.FieldResponseCount:
		return m.ResponseCount()
	case campaign.FieldConversionCount:
		return m.ConversionCount()
	case campaign.FieldSkippedNoConsentCount:
		return m.SkippedNoConsentCount()
	case campaign.FieldMetadata:
		return m.Metadata()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	case campaign.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldTenantID:
		return m.OldTenantID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldTargeting:
		return m.OldTargeting(ctx)
	case campaign.FieldIsAbTest:
		return m.OldIsAbTest(ctx)
	case campaign.FieldVariants:
		return m.OldVariants(ctx)
	case campaign.FieldContent:
		return m.OldContent(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case campaign.FieldTargetedCount:
		return m.OldTargetedCount(ctx)
	case campaign.FieldDeliveredCount:
		return m.OldDeliveredCount(ctx)
	case campaign.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case campaign.FieldReadCount:
		return m.OldReadCount(ctx)
	case campaign.FieldResponseCount:
		return m.OldResponseCount(ctx)
	case campaign.FieldConversionCount:
		return m.OldConversionCount(ctx)
	case campaign.FieldSkippedNoConsentCount:
		return m.OldSkippedNoConsentCount(ctx)
	case campaign.FieldMetadata:
		return m.OldMetadata(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case campaign.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldTargeting:
		v, ok := value.(*schema.CampaignTargeting)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargeting(v)
		return nil
	case campaign.FieldIsAbTest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAbTest(v)
		return nil
	case campaign.FieldVariants:
		v, ok := value.([]schema.CampaignVariant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariants(v)
		return nil
	case campaign.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case campaign.FieldTargetedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetedCount(v)
		return nil
	case campaign.FieldDeliveredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredCount(v)
		return nil
	case campaign.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case campaign.FieldReadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadCount(v)
		return nil
	case campaign.FieldResponseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseCount(v)
		return nil
	case campaign.FieldConversionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversionCount(v)
		return nil
	case campaign.FieldSkippedNoConsentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedNoConsentCount(v)
		return nil
	case campaign.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case campaign.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addtargeted_count != nil {
		fields = append(fields, campaign.FieldTargetedCount)
	}
	if m.adddelivered_count != nil {
		fields = append(fields, campaign.FieldDeliveredCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, campaign.FieldFailedCount)
	}
	if m.addread_count != nil {
		fields = append(fields, campaign.FieldReadCount)
	}
	if m.addresponse_count != nil {
		fields = append(fields, campaign.FieldResponseCount)
	}
	if m.addconversion_count != nil {
		fields = append(fields, campaign.FieldConversionCount)
	}
	if m.addskipped_no_consent_count != nil {
		fields = append(fields, campaign.FieldSkippedNoConsentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTargetedCount:
		return m.AddedTargetedCount()
	case campaign.FieldDeliveredCount:
		return m.AddedDeliveredCount()
	case campaign.FieldFailedCount:
		return m.AddedFailedCount()
	case campaign.FieldReadCount:
		return m.AddedReadCount()
	case campaign.FieldResponseCount:
		return m.AddedResponseCount()
	case campaign.FieldConversionCount:
		return m.AddedConversionCount()
	case campaign.FieldSkippedNoConsentCount:
		return m.AddedSkippedNoConsentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTargetedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetedCount(v)
		return nil
	case campaign.FieldDeliveredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveredCount(v)
		return nil
	case campaign.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	case campaign.FieldReadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadCount(v)
		return nil
	case campaign.FieldResponseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseCount(v)
		return nil
	case campaign.FieldConversionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConversionCount(v)
		return nil
	case campaign.FieldSkippedNoConsentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkippedNoConsentCount(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldTargeting) {
		fields = append(fields, campaign.FieldTargeting)
	}
	if m.FieldCleared(campaign.FieldVariants) {
		fields = append(fields, campaign.FieldVariants)
	}
	if m.FieldCleared(campaign.FieldContent) {
		fields = append(fields, campaign.FieldContent)
	}
	if m.FieldCleared(campaign.FieldScheduledAt) {
		fields = append(fields, campaign.FieldScheduledAt)
	}
	if m.FieldCleared(campaign.FieldMetadata) {
		fields = append(fields, campaign.FieldMetadata)
	}
	if m.FieldCleared(campaign.FieldDeletedAt) {
		fields = append(fields, campaign.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldTargeting:
		m.ClearTargeting()
		return nil
	case campaign.FieldVariants:
		m.ClearVariants()
		return nil
	case campaign.FieldContent:
		m.ClearContent()
		return nil
	case campaign.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case campaign.FieldMetadata:
		m.ClearMetadata()
		return nil
	case campaign.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldTenantID:
		m.ResetTenantID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldTargeting:
		m.ResetTargeting()
		return nil
	case campaign.FieldIsAbTest:
		m.ResetIsAbTest()
		return nil
	case campaign.FieldVariants:
		m.ResetVariants()
		return nil
	case campaign.FieldContent:
		m.ResetContent()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case campaign.FieldTargetedCount:
		m.ResetTargetedCount()
		return nil
	case campaign.FieldDeliveredCount:
		m.ResetDeliveredCount()
		return nil
	case campaign.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case campaign.FieldReadCount:
		m.ResetReadCount()
		return nil
	case campaign.FieldResponseCount:
		m.ResetResponseCount()
		return nil
	case campaign.FieldConversionCount:
		m.ResetConversionCount()
		return nil
	case campaign.FieldSkippedNoConsentCount:
		m.ResetSkippedNoConsentCount()
		return nil
	case campaign.FieldMetadata:
		m.ResetMetadata()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case campaign.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, campaign.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, campaign.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	case campaign.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// CheckoutSessionMutation represents an operation that mutates the CheckoutSession nodes in the graph.
type CheckoutSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	state               *checkoutsession.State
	variant_id          *string
	quantity            *int
	addquantity         *int
	order_id            *string
	payment_request_id  *string
	message_count       *int
	addmessage_count    *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*CheckoutSession, error)
	predicates          []predicate.CheckoutSession
}

var _ ent.Mutation = (*CheckoutSessionMutation)(nil)

// checkoutsessionOption allows management of the mutation configuration using functional options.
type checkoutsessionOption func(*CheckoutSessionMutation)

// newCheckoutSessionMutation creates new mutation for the CheckoutSession entity.
func newCheckoutSessionMutation(c config, op Op, opts ...checkoutsessionOption) *CheckoutSessionMutation {
	m := &CheckoutSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckoutSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckoutSessionID sets the ID field of the mutation.
func withCheckoutSessionID(id string) checkoutsessionOption {
	return func(m *CheckoutSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckoutSession
		)
		m.oldValue = func(ctx context.Context) (*CheckoutSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckoutSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckoutSession sets the old CheckoutSession of the mutation.
func withCheckoutSession(node *CheckoutSession) checkoutsessionOption {
	return func(m *CheckoutSessionMutation) {
		m.oldValue = func(context.Context) (*CheckoutSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckoutSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckoutSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CheckoutSession entities.
func (m *CheckoutSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckoutSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckoutSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckoutSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CheckoutSessionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CheckoutSessionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CheckoutSessionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *CheckoutSessionMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *CheckoutSessionMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *CheckoutSessionMutation) ResetConversationID() {
	m.conversation = nil
}

// SetState sets the "state" field.
func (m *CheckoutSessionMutation) SetState(c checkoutsession.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CheckoutSessionMutation) State() (r checkoutsession.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldState(ctx context.Context) (v checkoutsession.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckoutSessionMutation) ResetState() {
	m.state = nil
}

// SetVariantID sets the "variant_id" field.
func (m *CheckoutSessionMutation) SetVariantID(s string) {
	m.variant_id = &s
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *CheckoutSessionMutation) VariantID() (r string, exists bool) {
	v := m.variant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldVariantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ClearVariantID clears the value of the "variant_id" field.
func (m *CheckoutSessionMutation) ClearVariantID() {
	m.variant_id = nil
	m.clearedFields[checkoutsession.FieldVariantID] = struct{}{}
}

// VariantIDCleared returns if the "variant_id" field was cleared in this mutation.
func (m *CheckoutSessionMutation) VariantIDCleared() bool {
	_, ok := m.clearedFields[checkoutsession.FieldVariantID]
	return ok
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *CheckoutSessionMutation) ResetVariantID() {
	m.variant_id = nil
	delete(m.clearedFields, checkoutsession.FieldVariantID)
}

// SetQuantity sets the "quantity" field.
func (m *CheckoutSessionMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *CheckoutSessionMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldQuantity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *CheckoutSessionMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *CheckoutSessionMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *CheckoutSessionMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[checkoutsession.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *CheckoutSessionMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[checkoutsession.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *CheckoutSessionMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, checkoutsession.FieldQuantity)
}

// SetOrderID sets the "order_id" field.
func (m *CheckoutSessionMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *CheckoutSessionMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldOrderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *CheckoutSessionMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[checkoutsession.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *CheckoutSessionMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[checkoutsession.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *CheckoutSessionMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, checkoutsession.FieldOrderID)
}

// SetPaymentRequestID sets the "payment_request_id" field.
func (m *CheckoutSessionMutation) SetPaymentRequestID(s string) {
	m.payment_request_id = &s
}

// PaymentRequestID returns the value of the "payment_request_id" field in the mutation.
func (m *CheckoutSessionMutation) PaymentRequestID() (r string, exists bool) {
	v := m.payment_request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentRequestID returns the old "payment_request_id" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldPaymentRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentRequestID: %w", err)
	}
	return oldValue.PaymentRequestID, nil
}

// ClearPaymentRequestID clears the value of the "payment_request_id" field.
func (m *CheckoutSessionMutation) ClearPaymentRequestID() {
	m.payment_request_id = nil
	m.clearedFields[checkoutsession.FieldPaymentRequestID] = struct{}{}
}

// PaymentRequestIDCleared returns if the "payment_request_id" field was cleared in this mutation.
func (m *CheckoutSessionMutation) PaymentRequestIDCleared() bool {
	_, ok := m.clearedFields[checkoutsession.FieldPaymentRequestID]
	return ok
}

// ResetPaymentRequestID resets all changes to the "payment_request_id" field.
func (m *CheckoutSessionMutation) ResetPaymentRequestID() {
	m.payment_request_id = nil
	delete(m.clearedFields, checkoutsession.FieldPaymentRequestID)
}

// SetMessageCount sets the "message_count" field.
func (m *CheckoutSessionMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *CheckoutSessionMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *CheckoutSessionMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *CheckoutSessionMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *CheckoutSessionMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckoutSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckoutSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckoutSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckoutSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckoutSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CheckoutSession entity.
// If the CheckoutSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckoutSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckoutSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *CheckoutSessionMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[checkoutsession.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *CheckoutSessionMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *CheckoutSessionMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *CheckoutSessionMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the CheckoutSessionMutation builder.
func (m *CheckoutSessionMutation) Where(ps ...predicate.CheckoutSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckoutSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckoutSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckoutSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckoutSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckoutSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckoutSession).
func (m *CheckoutSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckoutSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, checkoutsession.FieldTenantID)
	}
	if m.conversation != nil {
		fields = append(fields, checkoutsession.FieldConversationID)
	}
	if m.state != nil {
		fields = append(fields, checkoutsession.FieldState)
	}
	if m.variant_id != nil {
		fields = append(fields, checkoutsession.FieldVariantID)
	}
	if m.quantity != nil {
		fields = append(fields, checkoutsession.FieldQuantity)
	}
	if m.order_id != nil {
		fields = append(fields, checkoutsession.FieldOrderID)
	}
	if m.payment_request_id != nil {
		fields = append(fields, checkoutsession.FieldPaymentRequestID)
	}
	if m.message_count != nil {
		fields = append(fields, checkoutsession.FieldMessageCount)
	}
	if m.created_at != nil {
		fields = append(fields, checkoutsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, checkoutsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckoutSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkoutsession.FieldTenantID:
		return m.TenantID()
	case checkoutsession.FieldConversationID:
		return m.ConversationID()
	case checkoutsession.FieldState:
		return m.State()
	case checkoutsession.FieldVariantID:
		return m.VariantID()
	case checkoutsession.FieldQuantity:
		return m.Quantity()
	case checkoutsession.FieldOrderID:
		return m.OrderID()
	case checkoutsession.FieldPaymentRequestID:
		return m.PaymentRequestID()
	case checkoutsession.FieldMessageCount:
		return m.MessageCount()
	case checkoutsession.FieldCreatedAt:
		return m.CreatedAt()
	case checkoutsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckoutSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkoutsession.FieldTenantID:
		return m.OldTenantID(ctx)
	case checkoutsession.FieldConversationID:
		return m.OldConversationID(ctx)
	case checkoutsession.FieldState:
		return m.OldState(ctx)
	case checkoutsession.FieldVariantID:
		return m.OldVariantID(ctx)
	case checkoutsession.FieldQuantity:
		return m.OldQuantity(ctx)
	case checkoutsession.FieldOrderID:
		return m.OldOrderID(ctx)
	case checkoutsession.FieldPaymentRequestID:
		return m.OldPaymentRequestID(ctx)
	case checkoutsession.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case checkoutsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case checkoutsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CheckoutSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckoutSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkoutsession.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case checkoutsession.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case checkoutsession.FieldState:
		v, ok := value.(checkoutsession.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkoutsession.FieldVariantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case checkoutsession.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case checkoutsession.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case checkoutsession.FieldPaymentRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentRequestID(v)
		return nil
	case checkoutsession.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case checkoutsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case checkoutsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CheckoutSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckoutSessionMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, checkoutsession.FieldQuantity)
	}
	if m.addmessage_count != nil {
		fields = append(fields, checkoutsession.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckoutSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkoutsession.FieldQuantity:
		return m.AddedQuantity()
	case checkoutsession.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckoutSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkoutsession.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case checkoutsession.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown CheckoutSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckoutSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkoutsession.FieldVariantID) {
		fields = append(fields, checkoutsession.FieldVariantID)
	}
	if m.FieldCleared(checkoutsession.FieldQuantity) {
		fields = append(fields, checkoutsession.FieldQuantity)
	}
	if m.FieldCleared(checkoutsession.FieldOrderID) {
		fields = append(fields, checkoutsession.FieldOrderID)
	}
	if m.FieldCleared(checkoutsession.FieldPaymentRequestID) {
		fields = append(fields, checkoutsession.FieldPaymentRequestID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckoutSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckoutSessionMutation) ClearField(name string) error {
	switch name {
	case checkoutsession.FieldVariantID:
		m.ClearVariantID()
		return nil
	case checkoutsession.FieldQuantity:
		m.ClearQuantity()
		return nil
	case checkoutsession.FieldOrderID:
		m.ClearOrderID()
		return nil
	case checkoutsession.FieldPaymentRequestID:
		m.ClearPaymentRequestID()
		return nil
	}
	return fmt.Errorf("unknown CheckoutSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckoutSessionMutation) ResetField(name string) error {
	switch name {
	case checkoutsession.FieldTenantID:
		m.ResetTenantID()
		return nil
	case checkoutsession.FieldConversationID:
		m.ResetConversationID()
		return nil
	case checkoutsession.FieldState:
		m.ResetState()
		return nil
	case checkoutsession.FieldVariantID:
		m.ResetVariantID()
		return nil
	case checkoutsession.FieldQuantity:
		m.ResetQuantity()
		return nil
	case checkoutsession.FieldOrderID:
		m.ResetOrderID()
		return nil
	case checkoutsession.FieldPaymentRequestID:
		m.ResetPaymentRequestID()
		return nil
	case checkoutsession.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case checkoutsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case checkoutsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CheckoutSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckoutSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, checkoutsession.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckoutSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkoutsession.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckoutSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckoutSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckoutSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, checkoutsession.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckoutSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case checkoutsession.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckoutSessionMutation) ClearEdge(name string) error {
	switch name {
	case checkoutsession.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown CheckoutSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckoutSessionMutation) ResetEdge(name string) error {
	switch name {
	case checkoutsession.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown CheckoutSession edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	status                    *conversation.Status
	current_session_start     *time.Time
	session_message_count     *int
	addsession_message_count  *int
	last_message_at           *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	deleted_at                *time.Time
	clearedFields             map[string]struct{}
	tenant                    *string
	clearedtenant             bool
	customer                  *string
	clearedcustomer           bool
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	context                   *string
	clearedcontext            bool
	reference_contexts        map[string]struct{}
	removedreference_contexts map[string]struct{}
	clearedreference_contexts bool
	checkout_sessions         map[string]struct{}
	removedcheckout_sessions  map[string]struct{}
	clearedcheckout_sessions  bool
	done                      bool
	oldValue                  func(context.Context) (*Conversation, error)
	predicates                []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConversationMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConversationMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConversationMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *ConversationMutation) SetCustomerID(s string) {
	m.customer = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *ConversationMutation) CustomerID() (r string, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *ConversationMutation) ResetCustomerID() {
	m.customer = nil
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentSessionStart sets the "current_session_start" field.
func (m *ConversationMutation) SetCurrentSessionStart(t time.Time) {
	m.current_session_start = &t
}

// CurrentSessionStart returns the value of the "current_session_start" field in the mutation.
func (m *ConversationMutation) CurrentSessionStart() (r time.Time, exists bool) {
	v := m.current_session_start
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSessionStart returns the old "current_session_start" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCurrentSessionStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSessionStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSessionStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSessionStart: %w", err)
	}
	return oldValue.CurrentSessionStart, nil
}

// ClearCurrentSessionStart clears the value of the "current_session_start" field.
func (m *ConversationMutation) ClearCurrentSessionStart() {
	m.current_session_start = nil
	m.clearedFields[conversation.FieldCurrentSessionStart] = struct{}{}
}

// CurrentSessionStartCleared returns if the "current_session_start" field was cleared in this mutation.
func (m *ConversationMutation) CurrentSessionStartCleared() bool {
	_, ok := m.clearedFields[conversation.FieldCurrentSessionStart]
	return ok
}

// ResetCurrentSessionStart resets all changes to the "current_session_start" field.
func (m *ConversationMutation) ResetCurrentSessionStart() {
	m.current_session_start = nil
	delete(m.clearedFields, conversation.FieldCurrentSessionStart)
}

// SetSessionMessageCount sets the "session_message_count" field.
func (m *ConversationMutation) SetSessionMessageCount(i int) {
	m.session_message_count = &i
	m.addsession_message_count = nil
}

// SessionMessageCount returns the value of the "session_message_count" field in the mutation.
func (m *ConversationMutation) SessionMessageCount() (r int, exists bool) {
	v := m.session_message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMessageCount returns the old "session_message_count" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSessionMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMessageCount: %w", err)
	}
	return oldValue.SessionMessageCount, nil
}

// AddSessionMessageCount adds i to the "session_message_count" field.
func (m *ConversationMutation) AddSessionMessageCount(i int) {
	if m.addsession_message_count != nil {
		*m.addsession_message_count += i
	} else {
		m.addsession_message_count = &i
	}
}

// AddedSessionMessageCount returns the value that was added to the "session_message_count" field in this mutation.
func (m *ConversationMutation) AddedSessionMessageCount() (r int, exists bool) {
	v := m.addsession_message_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionMessageCount resets all changes to the "session_message_count" field.
func (m *ConversationMutation) ResetSessionMessageCount() {
	m.session_message_count = nil
	m.addsession_message_count = nil
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *ConversationMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *ConversationMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (m *ConversationMutation) ClearLastMessageAt() {
	m.last_message_at = nil
	m.clearedFields[conversation.FieldLastMessageAt] = struct{}{}
}

// LastMessageAtCleared returns if the "last_message_at" field was cleared in this mutation.
func (m *ConversationMutation) LastMessageAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastMessageAt]
	return ok
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *ConversationMutation) ResetLastMessageAt() {
	m.last_message_at = nil
	delete(m.clearedFields, conversation.FieldLastMessageAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ConversationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ConversationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ConversationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[conversation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ConversationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ConversationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, conversation.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *ConversationMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[conversation.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *ConversationMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *ConversationMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *ConversationMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[conversation.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *ConversationMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) CustomerIDs() (ids []string) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *ConversationMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// SetContextID sets the "context" edge to the ConversationContext entity by id.
func (m *ConversationMutation) SetContextID(id string) {
	m.context = &id
}

// ClearContext clears the "context" edge to the ConversationContext entity.
func (m *ConversationMutation) ClearContext() {
	m.clearedcontext = true
}

// ContextCleared reports if the "context" edge to the ConversationContext entity was cleared.
func (m *ConversationMutation) ContextCleared() bool {
	return m.clearedcontext
}

// ContextID returns the "context" edge ID in the mutation.
func (m *ConversationMutation) ContextID() (id string, exists bool) {
	if m.context != nil {
		return *m.context, true
	}
	return
}

// ContextIDs returns the "context" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContextID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) ContextIDs() (ids []string) {
	if id := m.context; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContext resets all changes to the "context" edge.
func (m *ConversationMutation) ResetContext() {
	m.context = nil
	m.clearedcontext = false
}

// AddReferenceContextIDs adds the "reference_contexts" edge to the ReferenceContext entity by ids.
func (m *ConversationMutation) AddReferenceContextIDs(ids ...string) {
	if m.reference_contexts == nil {
		m.reference_contexts = make(map[string]struct{})
	}
	for i := range ids {
		m.reference_contexts[ids[i]] = struct{}{}
	}
}

// ClearReferenceContexts clears the "reference_contexts" edge to the ReferenceContext entity.
func (m *ConversationMutation) ClearReferenceContexts() {
	m.clearedreference_contexts = true
}

// ReferenceContextsCleared reports if the "reference_contexts" edge to the ReferenceContext entity was cleared.
func (m *ConversationMutation) ReferenceContextsCleared() bool {
	return m.clearedreference_contexts
}

// RemoveReferenceContextIDs removes the "reference_contexts" edge to the ReferenceContext entity by IDs.
func (m *ConversationMutation) RemoveReferenceContextIDs(ids ...string) {
	if m.removedreference_contexts == nil {
		m.removedreference_contexts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reference_contexts, ids[i])
		m.removedreference_contexts[ids[i]] = struct{}{}
	}
}

// RemovedReferenceContexts returns the removed IDs of the "reference_contexts" edge to the ReferenceContext entity.
func (m *ConversationMutation) RemovedReferenceContextsIDs() (ids []string) {
	for id := range m.removedreference_contexts {
		ids = append(ids, id)
	}
	return
}

// ReferenceContextsIDs returns the "reference_contexts" edge IDs in the mutation.
func (m *ConversationMutation) ReferenceContextsIDs() (ids []string) {
	for id := range m.reference_contexts {
		ids = append(ids, id)
	}
	return
}

// ResetReferenceContexts resets all changes to the "reference_contexts" edge.
func (m *ConversationMutation) ResetReferenceContexts() {
	m.reference_contexts = nil
	m.clearedreference_contexts = false
	m.removedreference_contexts = nil
}

// AddCheckoutSessionIDs adds the "checkout_sessions" edge to the CheckoutSession entity by ids.
func (m *ConversationMutation) AddCheckoutSessionIDs(ids ...string) {
	if m.checkout_sessions == nil {
		m.checkout_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.checkout_sessions[ids[i]] = struct{}{}
	}
}

// ClearCheckoutSessions clears the "checkout_sessions" edge to the CheckoutSession entity.
func (m *ConversationMutation) ClearCheckoutSessions() {
	m.clearedcheckout_sessions = true
}

// CheckoutSessionsCleared reports if the "checkout_sessions" edge to the CheckoutSession entity was cleared.
func (m *ConversationMutation) CheckoutSessionsCleared() bool {
	return m.clearedcheckout_sessions
}

// RemoveCheckoutSessionIDs removes the "checkout_sessions" edge to the CheckoutSession entity by IDs.
func (m *ConversationMutation) RemoveCheckoutSessionIDs(ids ...string) {
	if m.removedcheckout_sessions == nil {
		m.removedcheckout_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkout_sessions, ids[i])
		m.removedcheckout_sessions[ids[i]] = struct{}{}
	}
}

// RemovedCheckoutSessions returns the removed IDs of the "checkout_sessions" edge to the CheckoutSession entity.
func (m *ConversationMutation) RemovedCheckoutSessionsIDs() (ids []string) {
	for id := range m.removedcheckout_sessions {
		ids = append(ids, id)
	}
	return
}

// CheckoutSessionsIDs returns the "checkout_sessions" edge IDs in the mutation.
func (m *ConversationMutation) CheckoutSessionsIDs() (ids []string) {
	for id := range m.checkout_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetCheckoutSessions resets all changes to the "checkout_sessions" edge.
func (m *ConversationMutation) ResetCheckoutSessions() {
	m.checkout_sessions = nil
	m.clearedcheckout_sessions = false
	m.removedcheckout_sessions = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant != nil {
		fields = append(fields, conversation.FieldTenantID)
	}
	if m.customer != nil {
		fields = append(fields, conversation.FieldCustomerID)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.current_session_start != nil {
		fields = append(fields, conversation.FieldCurrentSessionStart)
	}
	if m.session_message_count != nil {
		fields = append(fields, conversation.FieldSessionMessageCount)
	}
	if m.last_message_at != nil {
		fields = append(fields, conversation.FieldLastMessageAt)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, conversation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTenantID:
		return m.TenantID()
	case conversation.FieldCustomerID:
		return m.CustomerID()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldCurrentSessionStart:
		return m.CurrentSessionStart()
	case conversation.FieldSessionMessageCount:
		return m.SessionMessageCount()
	case conversation.FieldLastMessageAt:
		return m.LastMessageAt()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	case conversation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldTenantID:
		return m.OldTenantID(ctx)
	case conversation.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldCurrentSessionStart:
		return m.OldCurrentSessionStart(ctx)
	case conversation.FieldSessionMessageCount:
		return m.OldSessionMessageCount(ctx)
	case conversation.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case conversation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case conversation.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldCurrentSessionStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSessionStart(v)
		return nil
	case conversation.FieldSessionMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMessageCount(v)
		return nil
	case conversation.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case conversation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addsession_message_count != nil {
		fields = append(fields, conversation.FieldSessionMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldSessionMessageCount:
		return m.AddedSessionMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldSessionMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldCurrentSessionStart) {
		fields = append(fields, conversation.FieldCurrentSessionStart)
	}
	if m.FieldCleared(conversation.FieldLastMessageAt) {
		fields = append(fields, conversation.FieldLastMessageAt)
	}
	if m.FieldCleared(conversation.FieldDeletedAt) {
		fields = append(fields, conversation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldCurrentSessionStart:
		m.ClearCurrentSessionStart()
		return nil
	case conversation.FieldLastMessageAt:
		m.ClearLastMessageAt()
		return nil
	case conversation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldTenantID:
		m.ResetTenantID()
		return nil
	case conversation.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldCurrentSessionStart:
		m.ResetCurrentSessionStart()
		return nil
	case conversation.FieldSessionMessageCount:
		m.ResetSessionMessageCount()
		return nil
	case conversation.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case conversation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.tenant != nil {
		edges = append(edges, conversation.EdgeTenant)
	}
	if m.customer != nil {
		edges = append(edges, conversation.EdgeCustomer)
	}
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.context != nil {
		edges = append(edges, conversation.EdgeContext)
	}
	if m.reference_contexts != nil {
		edges = append(edges, conversation.EdgeReferenceContexts)
	}
	if m.checkout_sessions != nil {
		edges = append(edges, conversation.EdgeCheckoutSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeContext:
		if id := m.context; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeReferenceContexts:
		ids := make([]ent.Value, 0, len(m.reference_contexts))
		for id := range m.reference_contexts {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeCheckoutSessions:
		ids := make([]ent.Value, 0, len(m.checkout_sessions))
		for id := range m.checkout_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.removedreference_contexts != nil {
		edges = append(edges, conversation.EdgeReferenceContexts)
	}
	if m.removedcheckout_sessions != nil {
		edges = append(edges, conversation.EdgeCheckoutSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeReferenceContexts:
		ids := make([]ent.Value, 0, len(m.removedreference_contexts))
		for id := range m.removedreference_contexts {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeCheckoutSessions:
		ids := make([]ent.Value, 0, len(m.removedcheckout_sessions))
		for id := range m.removedcheckout_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedtenant {
		edges = append(edges, conversation.EdgeTenant)
	}
	if m.clearedcustomer {
		edges = append(edges, conversation.EdgeCustomer)
	}
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedcontext {
		edges = append(edges, conversation.EdgeContext)
	}
	if m.clearedreference_contexts {
		edges = append(edges, conversation.EdgeReferenceContexts)
	}
	if m.clearedcheckout_sessions {
		edges = append(edges, conversation.EdgeCheckoutSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeTenant:
		return m.clearedtenant
	case conversation.EdgeCustomer:
		return m.clearedcustomer
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgeContext:
		return m.clearedcontext
	case conversation.EdgeReferenceContexts:
		return m.clearedreference_contexts
	case conversation.EdgeCheckoutSessions:
		return m.clearedcheckout_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeTenant:
		m.ClearTenant()
		return nil
	case conversation.EdgeCustomer:
		m.ClearCustomer()
		return nil
	case conversation.EdgeContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeTenant:
		m.ResetTenant()
		return nil
	case conversation.EdgeCustomer:
		m.ResetCustomer()
		return nil
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgeContext:
		m.ResetContext()
		return nil
	case conversation.EdgeReferenceContexts:
		m.ResetReferenceContexts()
		return nil
	case conversation.EdgeCheckoutSessions:
		m.ResetCheckoutSessions()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// ConversationContextMutation represents an operation that mutates the ConversationContext nodes in the graph.
type ConversationContextMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	last_customer_message   *string
	last_bot_message        *string
	checkout_state          *conversationcontext.CheckoutState
	selected_variant_id     *string
	selected_quantity       *int
	addselected_quantity    *int
	locked_language         *string
	low_confidence_turns    *int
	addlow_confidence_turns *int
	metadata                *map[string]interface{}
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	conversation            *string
	clearedconversation     bool
	done                    bool
	oldValue                func(context.Context) (*ConversationContext, error)
	predicates              []predicate.ConversationContext
}

var _ ent.Mutation = (*ConversationContextMutation)(nil)

// conversationcontextOption allows management of the mutation configuration using functional options.
type conversationcontextOption func(*ConversationContextMutation)

// newConversationContextMutation creates new mutation for the ConversationContext entity.
func newConversationContextMutation(c config, op Op, opts ...conversationcontextOption) *ConversationContextMutation {
	m := &ConversationContextMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationContextID sets the ID field of the mutation.
func withConversationContextID(id string) conversationcontextOption {
	return func(m *ConversationContextMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationContext
		)
		m.oldValue = func(ctx context.Context) (*ConversationContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationContext sets the old ConversationContext of the mutation.
func withConversationContext(node *ConversationContext) conversationcontextOption {
	return func(m *ConversationContextMutation) {
		m.oldValue = func(context.Context) (*ConversationContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationContext entities.
func (m *ConversationContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConversationContextMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConversationContextMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConversationContextMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *ConversationContextMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ConversationContextMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ConversationContextMutation) ResetConversationID() {
	m.conversation = nil
}

// SetLastCustomerMessage sets the "last_customer_message" field.
func (m *ConversationContextMutation) SetLastCustomerMessage(s string) {
	m.last_customer_message = &s
}

// LastCustomerMessage returns the value of the "last_customer_message" field in the mutation.
func (m *ConversationContextMutation) LastCustomerMessage() (r string, exists bool) {
	v := m.last_customer_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCustomerMessage returns the old "last_customer_message" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldLastCustomerMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCustomerMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCustomerMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCustomerMessage: %w", err)
	}
	return oldValue.LastCustomerMessage, nil
}

// ClearLastCustomerMessage clears the value of the "last_customer_message" field.
func (m *ConversationContextMutation) ClearLastCustomerMessage() {
	m.last_customer_message = nil
	m.clearedFields[conversationcontext.FieldLastCustomerMessage] = struct{}{}
}

// LastCustomerMessageCleared returns if the "last_customer_message" field was cleared in this mutation.
func (m *ConversationContextMutation) LastCustomerMessageCleared() bool {
	_, ok := m.clearedFields[conversationcontext.FieldLastCustomerMessage]
	return ok
}

// ResetLastCustomerMessage resets all changes to the "last_customer_message" field.
func (m *ConversationContextMutation) ResetLastCustomerMessage() {
	m.last_customer_message = nil
	delete(m.clearedFields, conversationcontext.FieldLastCustomerMessage)
}

// SetLastBotMessage sets the "last_bot_message" field.
func (m *ConversationContextMutation) SetLastBotMessage(s string) {
	m.last_bot_message = &s
}

// LastBotMessage returns the value of the "last_bot_message" field in the mutation.
func (m *ConversationContextMutation) LastBotMessage() (r string, exists bool) {
	v := m.last_bot_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBotMessage returns the old "last_bot_message" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldLastBotMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBotMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBotMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBotMessage: %w", err)
	}
	return oldValue.LastBotMessage, nil
}

// ClearLastBotMessage clears the value of the "last_bot_message" field.
func (m *ConversationContextMutation) ClearLastBotMessage() {
	m.last_bot_message = nil
	m.clearedFields[conversationcontext.FieldLastBotMessage] = struct{}{}
}

// LastBotMessageCleared returns if the "last_bot_message" field was cleared in this mutation.
func (m *ConversationContextMutation) LastBotMessageCleared() bool {
	_, ok := m.clearedFields[conversationcontext.FieldLastBotMessage]
	return ok
}

// ResetLastBotMessage resets all changes to the "last_bot_message" field.
func (m *ConversationContextMutation) ResetLastBotMessage() {
	m.last_bot_message = nil
	delete(m.clearedFields, conversationcontext.FieldLastBotMessage)
}

// SetCheckoutState sets the "checkout_state" field.
func (m *ConversationContextMutation) SetCheckoutState(cs conversationcontext.CheckoutState) {
	m.checkout_state = &cs
}

// CheckoutState returns the value of the "checkout_state" field in the mutation.
func (m *ConversationContextMutation) CheckoutState() (r conversationcontext.CheckoutState, exists bool) {
	v := m.checkout_state
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckoutState returns the old "checkout_state" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldCheckoutState(ctx context.Context) (v conversationcontext.CheckoutState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckoutState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckoutState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckoutState: %w", err)
	}
	return oldValue.CheckoutState, nil
}

// ResetCheckoutState resets all changes to the "checkout_state" field.
func (m *ConversationContextMutation) ResetCheckoutState() {
	m.checkout_state = nil
}

// SetSelectedVariantID sets the "selected_variant_id" field.
func (m *ConversationContextMutation) SetSelectedVariantID(s string) {
	m.selected_variant_id = &s
}

// SelectedVariantID returns the value of the "selected_variant_id" field in the mutation.
func (m *ConversationContextMutation) SelectedVariantID() (r string, exists bool) {
	v := m.selected_variant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedVariantID returns the old "selected_variant_id" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldSelectedVariantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedVariantID: %w", err)
	}
	return oldValue.SelectedVariantID, nil
}

// ClearSelectedVariantID clears the value of the "selected_variant_id" field.
func (m *ConversationContextMutation) ClearSelectedVariantID() {
	m.selected_variant_id = nil
	m.clearedFields[conversationcontext.FieldSelectedVariantID] = struct{}{}
}

// SelectedVariantIDCleared returns if the "selected_variant_id" field was cleared in this mutation.
func (m *ConversationContextMutation) SelectedVariantIDCleared() bool {
	_, ok := m.clearedFields[conversationcontext.FieldSelectedVariantID]
	return ok
}

// ResetSelectedVariantID resets all changes to the "selected_variant_id" field.
func (m *ConversationContextMutation) ResetSelectedVariantID() {
	m.selected_variant_id = nil
	delete(m.clearedFields, conversationcontext.FieldSelectedVariantID)
}

// SetSelectedQuantity sets the "selected_quantity" field.
func (m *ConversationContextMutation) SetSelectedQuantity(i int) {
	m.selected_quantity = &i
	m.addselected_quantity = nil
}

// SelectedQuantity returns the value of the "selected_quantity" field in the mutation.
func (m *ConversationContextMutation) SelectedQuantity() (r int, exists bool) {
	v := m.selected_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedQuantity returns the old "selected_quantity" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldSelectedQuantity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedQuantity: %w", err)
	}
	return oldValue.SelectedQuantity, nil
}

// AddSelectedQuantity adds i to the "selected_quantity" field.
func (m *ConversationContextMutation) AddSelectedQuantity(i int) {
	if m.addselected_quantity != nil {
		*m.addselected_quantity += i
	} else {
		m.addselected_quantity = &i
	}
}

// AddedSelectedQuantity returns the value that was added to the "selected_quantity" field in this mutation.
func (m *ConversationContextMutation) AddedSelectedQuantity() (r int, exists bool) {
	v := m.addselected_quantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearSelectedQuantity clears the value of the "selected_quantity" field.
func (m *ConversationContextMutation) ClearSelectedQuantity() {
	m.selected_quantity = nil
	m.addselected_quantity = nil
	m.clearedFields[conversationcontext.FieldSelectedQuantity] = struct{}{}
}

// SelectedQuantityCleared returns if the "selected_quantity" field was cleared in this mutation.
func (m *ConversationContextMutation) SelectedQuantityCleared() bool {
	_, ok := m.clearedFields[conversationcontext.FieldSelectedQuantity]
	return ok
}

// ResetSelectedQuantity resets all changes to the "selected_quantity" field.
func (m *ConversationContextMutation) ResetSelectedQuantity() {
	m.selected_quantity = nil
	m.addselected_quantity = nil
	delete(m.clearedFields, conversationcontext.FieldSelectedQuantity)
}

// SetLockedLanguage sets the "locked_language" field.
func (m *ConversationContextMutation) SetLockedLanguage(s string) {
	m.locked_language = &s
}

// LockedLanguage returns the value of the "locked_language" field in the mutation.
func (m *ConversationContextMutation) LockedLanguage() (r string, exists bool) {
	v := m.locked_language
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedLanguage returns the old "locked_language" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldLockedLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedLanguage: %w", err)
	}
	return oldValue.LockedLanguage, nil
}

// ClearLockedLanguage clears the value of the "locked_language" field.
func (m *ConversationContextMutation) ClearLockedLanguage() {
	m.locked_language = nil
	m.clearedFields[conversationcontext.FieldLockedLanguage] = struct{}{}
}

// LockedLanguageCleared returns if the "locked_language" field was cleared in this mutation.
func (m *ConversationContextMutation) LockedLanguageCleared() bool {
	_, ok := m.clearedFields[conversationcontext.FieldLockedLanguage]
	return ok
}

// ResetLockedLanguage resets all changes to the "locked_language" field.
func (m *ConversationContextMutation) ResetLockedLanguage() {
	m.locked_language = nil
	delete(m.clearedFields, conversationcontext.FieldLockedLanguage)
}

// SetLowConfidenceTurns sets the "low_confidence_turns" field.
func (m *ConversationContextMutation) SetLowConfidenceTurns(i int) {
	m.low_confidence_turns = &i
	m.addlow_confidence_turns = nil
}

// LowConfidenceTurns returns the value of the "low_confidence_turns" field in the mutation.
func (m *ConversationContextMutation) LowConfidenceTurns() (r int, exists bool) {
	v := m.low_confidence_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldLowConfidenceTurns returns the old "low_confidence_turns" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldLowConfidenceTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowConfidenceTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowConfidenceTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowConfidenceTurns: %w", err)
	}
	return oldValue.LowConfidenceTurns, nil
}

// AddLowConfidenceTurns adds i to the "low_confidence_turns" field.
func (m *ConversationContextMutation) AddLowConfidenceTurns(i int) {
	if m.addlow_confidence_turns != nil {
		*m.addlow_confidence_turns += i
	} else {
		m.addlow_confidence_turns = &i
	}
}

// AddedLowConfidenceTurns returns the value that was added to the "low_confidence_turns" field in this mutation.
func (m *ConversationContextMutation) AddedLowConfidenceTurns() (r int, exists bool) {
	v := m.addlow_confidence_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowConfidenceTurns resets all changes to the "low_confidence_turns" field.
func (m *ConversationContextMutation) ResetLowConfidenceTurns() {
	m.low_confidence_turns = nil
	m.addlow_confidence_turns = nil
}

// SetMetadata sets the "metadata" field.
func (m *ConversationContextMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ConversationContextMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ConversationContextMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[conversationcontext.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ConversationContextMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[conversationcontext.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ConversationContextMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, conversationcontext.FieldMetadata)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationContextMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationContextMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConversationContext entity.
// If the ConversationContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationContextMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationContextMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *ConversationContextMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[conversationcontext.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *ConversationContextMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ConversationContextMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ConversationContextMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the ConversationContextMutation builder.
func (m *ConversationContextMutation) Where(ps ...predicate.ConversationContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationContext).
func (m *ConversationContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationContextMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, conversationcontext.FieldTenantID)
	}
	if m.conversation != nil {
		fields = append(fields, conversationcontext.FieldConversationID)
	}
	if m.last_customer_message != nil {
		fields = append(fields, conversationcontext.FieldLastCustomerMessage)
	}
	if m.last_bot_message != nil {
		fields = append(fields, conversationcontext.FieldLastBotMessage)
	}
	if m.checkout_state != nil {
		fields = append(fields, conversationcontext.FieldCheckoutState)
	}
	if m.selected_variant_id != nil {
		fields = append(fields, conversationcontext.FieldSelectedVariantID)
	}
	if m.selected_quantity != nil {
		fields = append(fields, conversationcontext.FieldSelectedQuantity)
	}
	if m.locked_language != nil {
		fields = append(fields, conversationcontext.FieldLockedLanguage)
	}
	if m.low_confidence_turns != nil {
		fields = append(fields, conversationcontext.FieldLowConfidenceTurns)
	}
	if m.metadata != nil {
		fields = append(fields, conversationcontext.FieldMetadata)
	}
	if m.updated_at != nil {
		fields = append(fields, conversationcontext.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationcontext.FieldTenantID:
		return m.TenantID()
	case conversationcontext.FieldConversationID:
		return m.ConversationID()
	case conversationcontext.FieldLastCustomerMessage:
		return m.LastCustomerMessage()
	case conversationcontext.FieldLastBotMessage:
		return m.LastBotMessage()
	case conversationcontext.FieldCheckoutState:
		return m.CheckoutState()
	case conversationcontext.FieldSelectedVariantID:
		return m.SelectedVariantID()
	case conversationcontext.FieldSelectedQuantity:
		return m.SelectedQuantity()
	case conversationcontext.FieldLockedLanguage:
		return m.LockedLanguage()
	case conversationcontext.FieldLowConfidenceTurns:
		return m.LowConfidenceTurns()
	case conversationcontext.FieldMetadata:
		return m.Metadata()
	case conversationcontext.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationcontext.FieldTenantID:
		return m.OldTenantID(ctx)
	case conversationcontext.FieldConversationID:
		return m.OldConversationID(ctx)
	case conversationcontext.FieldLastCustomerMessage:
		return m.OldLastCustomerMessage(ctx)
	case conversationcontext.FieldLastBotMessage:
		return m.OldLastBotMessage(ctx)
	case conversationcontext.FieldCheckoutState:
		return m.OldCheckoutState(ctx)
	case conversationcontext.FieldSelectedVariantID:
		return m.OldSelectedVariantID(ctx)
	case conversationcontext.FieldSelectedQuantity:
		return m.OldSelectedQuantity(ctx)
	case conversationcontext.FieldLockedLanguage:
		return m.OldLockedLanguage(ctx)
	case conversationcontext.FieldLowConfidenceTurns:
		return m.OldLowConfidenceTurns(ctx)
	case conversationcontext.FieldMetadata:
		return m.OldMetadata(ctx)
	case conversationcontext.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationcontext.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case conversationcontext.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case conversationcontext.FieldLastCustomerMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCustomerMessage(v)
		return nil
	case conversationcontext.FieldLastBotMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBotMessage(v)
		return nil
	case conversationcontext.FieldCheckoutState:
		v, ok := value.(conversationcontext.CheckoutState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckoutState(v)
		return nil
	case conversationcontext.FieldSelectedVariantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedVariantID(v)
		return nil
	case conversationcontext.FieldSelectedQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedQuantity(v)
		return nil
	case conversationcontext.FieldLockedLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedLanguage(v)
		return nil
	case conversationcontext.FieldLowConfidenceTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowConfidenceTurns(v)
		return nil
	case conversationcontext.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case conversationcontext.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationContextMutation) AddedFields() []string {
	var fields []string
	if m.addselected_quantity != nil {
		fields = append(fields, conversationcontext.FieldSelectedQuantity)
	}
	if m.addlow_confidence_turns != nil {
		fields = append(fields, conversationcontext.FieldLowConfidenceTurns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationContextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversationcontext.FieldSelectedQuantity:
		return m.AddedSelectedQuantity()
	case conversationcontext.FieldLowConfidenceTurns:
		return m.AddedLowConfidenceTurns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversationcontext.FieldSelectedQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectedQuantity(v)
		return nil
	case conversationcontext.FieldLowConfidenceTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowConfidenceTurns(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationcontext.FieldLastCustomerMessage) {
		fields = append(fields, conversationcontext.FieldLastCustomerMessage)
	}
	if m.FieldCleared(conversationcontext.FieldLastBotMessage) {
		fields = append(fields, conversationcontext.FieldLastBotMessage)
	}
	if m.FieldCleared(conversationcontext.FieldSelectedVariantID) {
		fields = append(fields, conversationcontext.FieldSelectedVariantID)
	}
	if m.FieldCleared(conversationcontext.FieldSelectedQuantity) {
		fields = append(fields, conversationcontext.FieldSelectedQuantity)
	}
	if m.FieldCleared(conversationcontext.FieldLockedLanguage) {
		fields = append(fields, conversationcontext.FieldLockedLanguage)
	}
	if m.FieldCleared(conversationcontext.FieldMetadata) {
		fields = append(fields, conversationcontext.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationContextMutation) ClearField(name string) error {
	switch name {
	case conversationcontext.FieldLastCustomerMessage:
		m.ClearLastCustomerMessage()
		return nil
	case conversationcontext.FieldLastBotMessage:
		m.ClearLastBotMessage()
		return nil
	case conversationcontext.FieldSelectedVariantID:
		m.ClearSelectedVariantID()
		return nil
	case conversationcontext.FieldSelectedQuantity:
		m.ClearSelectedQuantity()
		return nil
	case conversationcontext.FieldLockedLanguage:
		m.ClearLockedLanguage()
		return nil
	case conversationcontext.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ConversationContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationContextMutation) ResetField(name string) error {
	switch name {
	case conversationcontext.FieldTenantID:
		m.ResetTenantID()
		return nil
	case conversationcontext.FieldConversationID:
		m.ResetConversationID()
		return nil
	case conversationcontext.FieldLastCustomerMessage:
		m.ResetLastCustomerMessage()
		return nil
	case conversationcontext.FieldLastBotMessage:
		m.ResetLastBotMessage()
		return nil
	case conversationcontext.FieldCheckoutState:
		m.ResetCheckoutState()
		return nil
	case conversationcontext.FieldSelectedVariantID:
		m.ResetSelectedVariantID()
		return nil
	case conversationcontext.FieldSelectedQuantity:
		m.ResetSelectedQuantity()
		return nil
	case conversationcontext.FieldLockedLanguage:
		m.ResetLockedLanguage()
		return nil
	case conversationcontext.FieldLowConfidenceTurns:
		m.ResetLowConfidenceTurns()
		return nil
	case conversationcontext.FieldMetadata:
		m.ResetMetadata()
		return nil
	case conversationcontext.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, conversationcontext.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationcontext.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, conversationcontext.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationContextMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationcontext.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationContextMutation) ClearEdge(name string) error {
	switch name {
	case conversationcontext.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ConversationContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationContextMutation) ResetEdge(name string) error {
	switch name {
	case conversationcontext.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown ConversationContext edge %s", name)
}

// CustomerMutation represents an operation that mutates the Customer nodes in the graph.
type CustomerMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	phone_e164             *string
	display_name           *string
	tags                   *[]string
	appendtags             []string
	language               *string
	timezone               *string
	promotional_messages   *bool
	reminder_messages      *bool
	transactional_messages *bool
	last_activity_at       *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	deleted_at             *time.Time
	clearedFields          map[string]struct{}
	tenant                 *string
	clearedtenant          bool
	conversations          map[string]struct{}
	removedconversations   map[string]struct{}
	clearedconversations   bool
	orders                 map[string]struct{}
	removedorders          map[string]struct{}
	clearedorders          bool
	appointments           map[string]struct{}
	removedappointments    map[string]struct{}
	clearedappointments    bool
	done                   bool
	oldValue               func(context.Context) (*Customer, error)
	predicates             []predicate.Customer
}

var _ ent.Mutation = (*CustomerMutation)(nil)

// customerOption allows management of the mutation configuration using functional options.
type customerOption func(*CustomerMutation)

// newCustomerMutation creates new mutation for the Customer entity.
func newCustomerMutation(c config, op Op, opts ...customerOption) *CustomerMutation {
	m := &CustomerMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomerID sets the ID field of the mutation.
func withCustomerID(id string) customerOption {
	return func(m *CustomerMutation) {
		var (
			err   error
			once  sync.Once
			value *Customer
		)
		m.oldValue = func(ctx context.Context) (*Customer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Customer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomer sets the old Customer of the mutation.
func withCustomer(node *Customer) customerOption {
	return func(m *CustomerMutation) {
		m.oldValue = func(context.Context) (*Customer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Customer entities.
func (m *CustomerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Customer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CustomerMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CustomerMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CustomerMutation) ResetTenantID() {
	m.tenant = nil
}

// SetPhoneE164 sets the "phone_e164" field.
func (m *CustomerMutation) SetPhoneE164(s string) {
	m.phone_e164 = &s
}

// PhoneE164 returns the value of the "phone_e164" field in the mutation.
func (m *CustomerMutation) PhoneE164() (r string, exists bool) {
	v := m.phone_e164
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneE164 returns the old "phone_e164" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldPhoneE164(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneE164 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneE164 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneE164: %w", err)
	}
	return oldValue.PhoneE164, nil
}

// ResetPhoneE164 resets all changes to the "phone_e164" field.
func (m *CustomerMutation) ResetPhoneE164() {
	m.phone_e164 = nil
}

// SetDisplayName sets the "display_name" field.
func (m *CustomerMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *CustomerMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *CustomerMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[customer.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *CustomerMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[customer.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *CustomerMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, customer.FieldDisplayName)
}

// SetTags sets the "tags" field.
func (m *CustomerMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *CustomerMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *CustomerMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *CustomerMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *CustomerMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[customer.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *CustomerMutation) TagsCleared() bool {
	_, ok := m.clearedFields[customer.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *CustomerMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, customer.FieldTags)
}

// SetLanguage sets the "language" field.
func (m *CustomerMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *CustomerMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *CustomerMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[customer.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *CustomerMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[customer.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *CustomerMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, customer.FieldLanguage)
}

// SetTimezone sets the "timezone" field.
func (m *CustomerMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *CustomerMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *CustomerMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[customer.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *CustomerMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[customer.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *CustomerMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, customer.FieldTimezone)
}

// SetPromotionalMessages sets the "promotional_messages" field.
func (m *CustomerMutation) SetPromotionalMessages(b bool) {
	m.promotional_messages = &b
}

// PromotionalMessages returns the value of the "promotional_messages" field in the mutation.
func (m *CustomerMutation) PromotionalMessages() (r bool, exists bool) {
	v := m.promotional_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldPromotionalMessages returns the old "promotional_messages" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldPromotionalMessages(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromotionalMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromotionalMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromotionalMessages: %w", err)
	}
	return oldValue.PromotionalMessages, nil
}

// ResetPromotionalMessages resets all changes to the "promotional_messages" field.
func (m *CustomerMutation) ResetPromotionalMessages() {
	m.promotional_messages = nil
}

// SetReminderMessages sets the "reminder_messages" field.
func (m *CustomerMutation) SetReminderMessages(b bool) {
	m.reminder_messages = &b
}

// ReminderMessages returns the value of the "reminder_messages" field in the mutation.
func (m *CustomerMutation) ReminderMessages() (r bool, exists bool) {
	v := m.reminder_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderMessages returns the old "reminder_messages" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldReminderMessages(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderMessages: %w", err)
	}
	return oldValue.ReminderMessages, nil
}

// ResetReminderMessages resets all changes to the "reminder_messages" field.
func (m *CustomerMutation) ResetReminderMessages() {
	m.reminder_messages = nil
}

// SetTransactionalMessages sets the "transactional_messages" field.
func (m *CustomerMutation) SetTransactionalMessages(b bool) {
	m.transactional_messages = &b
}

// TransactionalMessages returns the value of the "transactional_messages" field in the mutation.
func (m *CustomerMutation) TransactionalMessages() (r bool, exists bool) {
	v := m.transactional_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionalMessages returns the old "transactional_messages" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldTransactionalMessages(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionalMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionalMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionalMessages: %w", err)
	}
	return oldValue.TransactionalMessages, nil
}

// ResetTransactionalMessages resets all changes to the "transactional_messages" field.
func (m *CustomerMutation) ResetTransactionalMessages() {
	m.transactional_messages = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *CustomerMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *CustomerMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *CustomerMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[customer.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *CustomerMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[customer.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *CustomerMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, customer.FieldLastActivityAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CustomerMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CustomerMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CustomerMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[customer.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CustomerMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[customer.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CustomerMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, customer.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *CustomerMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[customer.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *CustomerMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *CustomerMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *CustomerMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *CustomerMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *CustomerMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *CustomerMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *CustomerMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *CustomerMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *CustomerMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *CustomerMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// AddOrderIDs adds the "orders" edge to the Order entity by ids.
func (m *CustomerMutation) AddOrderIDs(ids ...string) {
	if m.orders == nil {
		m.orders = make(map[string]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the Order entity.
func (m *CustomerMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the Order entity was cleared.
func (m *CustomerMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the Order entity by IDs.
func (m *CustomerMutation) RemoveOrderIDs(ids ...string) {
	if m.removedorders == nil {
		m.removedorders = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the Order entity.
func (m *CustomerMutation) RemovedOrdersIDs() (ids []string) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *CustomerMutation) OrdersIDs() (ids []string) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *CustomerMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by ids.
func (m *CustomerMutation) AddAppointmentIDs(ids ...string) {
	if m.appointments == nil {
		m.appointments = make(map[string]struct{})
	}
	for i := range ids {
		m.appointments[ids[i]] = struct{}{}
	}
}

// ClearAppointments clears the "appointments" edge to the Appointment entity.
func (m *CustomerMutation) ClearAppointments() {
	m.clearedappointments = true
}

// AppointmentsCleared reports if the "appointments" edge to the Appointment entity was cleared.
func (m *CustomerMutation) AppointmentsCleared() bool {
	return m.clearedappointments
}

// RemoveAppointmentIDs removes the "appointments" edge to the Appointment entity by IDs.
func (m *CustomerMutation) RemoveAppointmentIDs(ids ...string) {
	if m.removedappointments == nil {
		m.removedappointments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.appointments, ids[i])
		m.removedappointments[ids[i]] = struct{}{}
	}
}

// RemovedAppointments returns the removed IDs of the "appointments" edge to the Appointment entity.
func (m *CustomerMutation) RemovedAppointmentsIDs() (ids []string) {
	for id := range m.removedappointments {
		ids = append(ids, id)
	}
	return
}

// AppointmentsIDs returns the "appointments" edge IDs in the mutation.
func (m *CustomerMutation) AppointmentsIDs() (ids []string) {
	for id := range m.appointments {
		ids = append(ids, id)
	}
	return
}

// ResetAppointments resets all changes to the "appointments" edge.
func (m *CustomerMutation) ResetAppointments() {
	m.appointments = nil
	m.clearedappointments = false
	m.removedappointments = nil
}

// Where appends a list predicates to the CustomerMutation builder.
func (m *CustomerMutation) Where(ps ...predicate.Customer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Customer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Customer).
func (m *CustomerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomerMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant != nil {
		fields = append(fields, customer.FieldTenantID)
	}
	if m.phone_e164 != nil {
		fields = append(fields, customer.FieldPhoneE164)
	}
	if m.display_name != nil {
		fields = append(fields, customer.FieldDisplayName)
	}
	if m.tags != nil {
		fields = append(fields, customer.FieldTags)
	}
	if m.language != nil {
		fields = append(fields, customer.FieldLanguage)
	}
	if m.timezone != nil {
		fields = append(fields, customer.FieldTimezone)
	}
	if m.promotional_messages != nil {
		fields = append(fields, customer.FieldPromotionalMessages)
	}
	if m.reminder_messages != nil {
		fields = append(fields, customer.FieldReminderMessages)
	}
	if m.transactional_messages != nil {
		fields = append(fields, customer.FieldTransactionalMessages)
	}
	if m.last_activity_at != nil {
		fields = append(fields, customer.FieldLastActivityAt)
	}
	if m.created_at != nil {
		fields = append(fields, customer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customer.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, customer.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customer.FieldTenantID:
		return m.TenantID()
	case customer.FieldPhoneE164:
		return m.PhoneE164()
	case customer.FieldDisplayName:
		return m.DisplayName()
	case customer.FieldTags:
		return m.Tags()
	case customer.FieldLanguage:
		return m.Language()
	case customer.FieldTimezone:
		return m.Timezone()
	case customer.FieldPromotionalMessages:
		return m.PromotionalMessages()
	case customer.FieldReminderMessages:
		return m.ReminderMessages()
	case customer.FieldTransactionalMessages:
		return m.TransactionalMessages()
	case customer.FieldLastActivityAt:
		return m.LastActivityAt()
	case customer.FieldCreatedAt:
		return m.CreatedAt()
	case customer.FieldUpdatedAt:
		return m.UpdatedAt()
	case customer.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customer.FieldTenantID:
		return m.OldTenantID(ctx)
	case customer.FieldPhoneE164:
		return m.OldPhoneE164(ctx)
	case customer.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case customer.FieldTags:
		return m.OldTags(ctx)
	case customer.FieldLanguage:
		return m.OldLanguage(ctx)
	case customer.FieldTimezone:
		return m.OldTimezone(ctx)
	case customer.FieldPromotionalMessages:
		return m.OldPromotionalMessages(ctx)
	case customer.FieldReminderMessages:
		return m.OldReminderMessages(ctx)
	case customer.FieldTransactionalMessages:
		return m.OldTransactionalMessages(ctx)
	case customer.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case customer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case customer.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Customer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customer.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case customer.FieldPhoneE164:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneE164(v)
		return nil
	case customer.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case customer.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case customer.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case customer.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case customer.FieldPromotionalMessages:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromotionalMessages(v)
		return nil
	case customer.FieldReminderMessages:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderMessages(v)
		return nil
	case customer.FieldTransactionalMessages:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionalMessages(v)
		return nil
	case customer.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case customer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case customer.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customer.FieldDisplayName) {
		fields = append(fields, customer.FieldDisplayName)
	}
	if m.FieldCleared(customer.FieldTags) {
		fields = append(fields, customer.FieldTags)
	}
	if m.FieldCleared(customer.FieldLanguage) {
		fields = append(fields, customer.FieldLanguage)
	}
	if m.FieldCleared(customer.FieldTimezone) {
		fields = append(fields, customer.FieldTimezone)
	}
	if m.FieldCleared(customer.FieldLastActivityAt) {
		fields = append(fields, customer.FieldLastActivityAt)
	}
	if m.FieldCleared(customer.FieldDeletedAt) {
		fields = append(fields, customer.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomerMutation) ClearField(name string) error {
	switch name {
	case customer.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case customer.FieldTags:
		m.ClearTags()
		return nil
	case customer.FieldLanguage:
		m.ClearLanguage()
		return nil
	case customer.FieldTimezone:
		m.ClearTimezone()
		return nil
	case customer.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	case customer.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Customer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomerMutation) ResetField(name string) error {
	switch name {
	case customer.FieldTenantID:
		m.ResetTenantID()
		return nil
	case customer.FieldPhoneE164:
		m.ResetPhoneE164()
		return nil
	case customer.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case customer.FieldTags:
		m.ResetTags()
		return nil
	case customer.FieldLanguage:
		m.ResetLanguage()
		return nil
	case customer.FieldTimezone:
		m.ResetTimezone()
		return nil
	case customer.FieldPromotionalMessages:
		m.ResetPromotionalMessages()
		return nil
	case customer.FieldReminderMessages:
		m.ResetReminderMessages()
		return nil
	case customer.FieldTransactionalMessages:
		m.ResetTransactionalMessages()
		return nil
	case customer.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case customer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case customer.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomerMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.tenant != nil {
		edges = append(edges, customer.EdgeTenant)
	}
	if m.conversations != nil {
		edges = append(edges, customer.EdgeConversations)
	}
	if m.orders != nil {
		edges = append(edges, customer.EdgeOrders)
	}
	if m.appointments != nil {
		edges = append(edges, customer.EdgeAppointments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case customer.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	case customer.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	case customer.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.appointments))
		for id := range m.appointments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedconversations != nil {
		edges = append(edges, customer.EdgeConversations)
	}
	if m.removedorders != nil {
		edges = append(edges, customer.EdgeOrders)
	}
	if m.removedappointments != nil {
		edges = append(edges, customer.EdgeAppointments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	case customer.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	case customer.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.removedappointments))
		for id := range m.removedappointments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtenant {
		edges = append(edges, customer.EdgeTenant)
	}
	if m.clearedconversations {
		edges = append(edges, customer.EdgeConversations)
	}
	if m.clearedorders {
		edges = append(edges, customer.EdgeOrders)
	}
	if m.clearedappointments {
		edges = append(edges, customer.EdgeAppointments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomerMutation) EdgeCleared(name string) bool {
	switch name {
	case customer.EdgeTenant:
		return m.clearedtenant
	case customer.EdgeConversations:
		return m.clearedconversations
	case customer.EdgeOrders:
		return m.clearedorders
	case customer.EdgeAppointments:
		return m.clearedappointments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomerMutation) ClearEdge(name string) error {
	switch name {
	case customer.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Customer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomerMutation) ResetEdge(name string) error {
	switch name {
	case customer.EdgeTenant:
		m.ResetTenant()
		return nil
	case customer.EdgeConversations:
		m.ResetConversations()
		return nil
	case customer.EdgeOrders:
		m.ResetOrders()
		return nil
	case customer.EdgeAppointments:
		m.ResetAppointments()
		return nil
	}
	return fmt.Errorf("unknown Customer edge %s", name)
}

// KnowledgeEntryMutation represents an operation that mutates the KnowledgeEntry nodes in the graph.
type KnowledgeEntryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	body            *string
	tags            *[]string
	appendtags      []string
	vector_point_id *string
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	tenant          *string
	clearedtenant   bool
	done            bool
	oldValue        func(context.Context) (*KnowledgeEntry, error)
	predicates      []predicate.KnowledgeEntry
}

var _ ent.Mutation = (*KnowledgeEntryMutation)(nil)

// knowledgeentryOption allows management of the mutation configuration using functional options.
type knowledgeentryOption func(*KnowledgeEntryMutation)

// newKnowledgeEntryMutation creates new mutation for the KnowledgeEntry entity.
func newKnowledgeEntryMutation(c config, op Op, opts ...knowledgeentryOption) *KnowledgeEntryMutation {
	m := &KnowledgeEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeEntryID sets the ID field of the mutation.
func withKnowledgeEntryID(id string) knowledgeentryOption {
	return func(m *KnowledgeEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeEntry
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeEntry sets the old KnowledgeEntry of the mutation.
func withKnowledgeEntry(node *KnowledgeEntry) knowledgeentryOption {
	return func(m *KnowledgeEntryMutation) {
		m.oldValue = func(context.Context) (*KnowledgeEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeEntry entities.
func (m *KnowledgeEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *KnowledgeEntryMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *KnowledgeEntryMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *KnowledgeEntryMutation) ResetTenantID() {
	m.tenant = nil
}

// SetTitle sets the "title" field.
func (m *KnowledgeEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KnowledgeEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *KnowledgeEntryMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *KnowledgeEntryMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *KnowledgeEntryMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *KnowledgeEntryMutation) ResetBody() {
	m.body = nil
}

// SetTags sets the "tags" field.
func (m *KnowledgeEntryMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *KnowledgeEntryMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *KnowledgeEntryMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *KnowledgeEntryMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *KnowledgeEntryMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[knowledgeentry.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *KnowledgeEntryMutation) TagsCleared() bool {
	_, ok := m.clearedFields[knowledgeentry.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *KnowledgeEntryMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, knowledgeentry.FieldTags)
}

// SetVectorPointID sets the "vector_point_id" field.
func (m *KnowledgeEntryMutation) SetVectorPointID(s string) {
	m.vector_point_id = &s
}

// VectorPointID returns the value of the "vector_point_id" field in the mutation.
func (m *KnowledgeEntryMutation) VectorPointID() (r string, exists bool) {
	v := m.vector_point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVectorPointID returns the old "vector_point_id" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldVectorPointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVectorPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVectorPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVectorPointID: %w", err)
	}
	return oldValue.VectorPointID, nil
}

// ClearVectorPointID clears the value of the "vector_point_id" field.
func (m *KnowledgeEntryMutation) ClearVectorPointID() {
	m.vector_point_id = nil
	m.clearedFields[knowledgeentry.FieldVectorPointID] = struct{}{}
}

// VectorPointIDCleared returns if the "vector_point_id" field was cleared in this mutation.
func (m *KnowledgeEntryMutation) VectorPointIDCleared() bool {
	_, ok := m.clearedFields[knowledgeentry.FieldVectorPointID]
	return ok
}

// ResetVectorPointID resets all changes to the "vector_point_id" field.
func (m *KnowledgeEntryMutation) ResetVectorPointID() {
	m.vector_point_id = nil
	delete(m.clearedFields, knowledgeentry.FieldVectorPointID)
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnowledgeEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnowledgeEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnowledgeEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *KnowledgeEntryMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *KnowledgeEntryMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *KnowledgeEntryMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[knowledgeentry.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *KnowledgeEntryMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[knowledgeentry.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *KnowledgeEntryMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, knowledgeentry.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *KnowledgeEntryMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[knowledgeentry.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *KnowledgeEntryMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *KnowledgeEntryMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *KnowledgeEntryMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the KnowledgeEntryMutation builder.
func (m *KnowledgeEntryMutation) Where(ps ...predicate.KnowledgeEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeEntry).
func (m *KnowledgeEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, knowledgeentry.FieldTenantID)
	}
	if m.title != nil {
		fields = append(fields, knowledgeentry.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, knowledgeentry.FieldBody)
	}
	if m.tags != nil {
		fields = append(fields, knowledgeentry.FieldTags)
	}
	if m.vector_point_id != nil {
		fields = append(fields, knowledgeentry.FieldVectorPointID)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgeentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowledgeentry.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, knowledgeentry.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeentry.FieldTenantID:
		return m.TenantID()
	case knowledgeentry.FieldTitle:
		return m.Title()
	case knowledgeentry.FieldBody:
		return m.Body()
	case knowledgeentry.FieldTags:
		return m.Tags()
	case knowledgeentry.FieldVectorPointID:
		return m.VectorPointID()
	case knowledgeentry.FieldCreatedAt:
		return m.CreatedAt()
	case knowledgeentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case knowledgeentry.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeentry.FieldTenantID:
		return m.OldTenantID(ctx)
	case knowledgeentry.FieldTitle:
		return m.OldTitle(ctx)
	case knowledgeentry.FieldBody:
		return m.OldBody(ctx)
	case knowledgeentry.FieldTags:
		return m.OldTags(ctx)
	case knowledgeentry.FieldVectorPointID:
		return m.OldVectorPointID(ctx)
	case knowledgeentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowledgeentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case knowledgeentry.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeentry.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case knowledgeentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case knowledgeentry.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case knowledgeentry.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case knowledgeentry.FieldVectorPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVectorPointID(v)
		return nil
	case knowledgeentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowledgeentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case knowledgeentry.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgeentry.FieldTags) {
		fields = append(fields, knowledgeentry.FieldTags)
	}
	if m.FieldCleared(knowledgeentry.FieldVectorPointID) {
		fields = append(fields, knowledgeentry.FieldVectorPointID)
	}
	if m.FieldCleared(knowledgeentry.FieldDeletedAt) {
		fields = append(fields, knowledgeentry.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeEntryMutation) ClearField(name string) error {
	switch name {
	case knowledgeentry.FieldTags:
		m.ClearTags()
		return nil
	case knowledgeentry.FieldVectorPointID:
		m.ClearVectorPointID()
		return nil
	case knowledgeentry.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeEntryMutation) ResetField(name string) error {
	switch name {
	case knowledgeentry.FieldTenantID:
		m.ResetTenantID()
		return nil
	case knowledgeentry.FieldTitle:
		m.ResetTitle()
		return nil
	case knowledgeentry.FieldBody:
		m.ResetBody()
		return nil
	case knowledgeentry.FieldTags:
		m.ResetTags()
		return nil
	case knowledgeentry.FieldVectorPointID:
		m.ResetVectorPointID()
		return nil
	case knowledgeentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowledgeentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case knowledgeentry.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, knowledgeentry.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgeentry.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, knowledgeentry.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgeentry.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeEntryMutation) ClearEdge(name string) error {
	switch name {
	case knowledgeentry.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeEntryMutation) ResetEdge(name string) error {
	switch name {
	case knowledgeentry.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	direction           *message.Direction
	message_type        *message.MessageType
	content             *string
	provider_message_id *string
	status              *message.Status
	failure_reason      *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *MessageMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *MessageMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *MessageMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetDirection sets the "direction" field.
func (m *MessageMutation) SetDirection(value message.Direction) {
	m.direction = &value
}

// Direction returns the value of the "direction" field in the mutation.
func (m *MessageMutation) Direction() (r message.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDirection(ctx context.Context) (v message.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *MessageMutation) ResetDirection() {
	m.direction = nil
}

// SetMessageType sets the "message_type" field.
func (m *MessageMutation) SetMessageType(mt message.MessageType) {
	m.message_type = &mt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *MessageMutation) MessageType() (r message.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageType(ctx context.Context) (v message.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *MessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetProviderMessageID sets the "provider_message_id" field.
func (m *MessageMutation) SetProviderMessageID(s string) {
	m.provider_message_id = &s
}

// ProviderMessageID returns the value of the "provider_message_id" field in the mutation.
func (m *MessageMutation) ProviderMessageID() (r string, exists bool) {
	v := m.provider_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMessageID returns the old "provider_message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldProviderMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMessageID: %w", err)
	}
	return oldValue.ProviderMessageID, nil
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (m *MessageMutation) ClearProviderMessageID() {
	m.provider_message_id = nil
	m.clearedFields[message.FieldProviderMessageID] = struct{}{}
}

// ProviderMessageIDCleared returns if the "provider_message_id" field was cleared in this mutation.
func (m *MessageMutation) ProviderMessageIDCleared() bool {
	_, ok := m.clearedFields[message.FieldProviderMessageID]
	return ok
}

// ResetProviderMessageID resets all changes to the "provider_message_id" field.
func (m *MessageMutation) ResetProviderMessageID() {
	m.provider_message_id = nil
	delete(m.clearedFields, message.FieldProviderMessageID)
}

// SetStatus sets the "status" field.
func (m *MessageMutation) SetStatus(value message.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageMutation) Status() (r message.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldStatus(ctx context.Context) (v message.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageMutation) ResetStatus() {
	m.status = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *MessageMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *MessageMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *MessageMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[message.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *MessageMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[message.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *MessageMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, message.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, message.FieldTenantID)
	}
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.direction != nil {
		fields = append(fields, message.FieldDirection)
	}
	if m.message_type != nil {
		fields = append(fields, message.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.provider_message_id != nil {
		fields = append(fields, message.FieldProviderMessageID)
	}
	if m.status != nil {
		fields = append(fields, message.FieldStatus)
	}
	if m.failure_reason != nil {
		fields = append(fields, message.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldTenantID:
		return m.TenantID()
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldDirection:
		return m.Direction()
	case message.FieldMessageType:
		return m.MessageType()
	case message.FieldContent:
		return m.Content()
	case message.FieldProviderMessageID:
		return m.ProviderMessageID()
	case message.FieldStatus:
		return m.Status()
	case message.FieldFailureReason:
		return m.FailureReason()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldTenantID:
		return m.OldTenantID(ctx)
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldDirection:
		return m.OldDirection(ctx)
	case message.FieldMessageType:
		return m.OldMessageType(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldProviderMessageID:
		return m.OldProviderMessageID(ctx)
	case message.FieldStatus:
		return m.OldStatus(ctx)
	case message.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldDirection:
		v, ok := value.(message.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case message.FieldMessageType:
		v, ok := value.(message.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldProviderMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMessageID(v)
		return nil
	case message.FieldStatus:
		v, ok := value.(message.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case message.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldProviderMessageID) {
		fields = append(fields, message.FieldProviderMessageID)
	}
	if m.FieldCleared(message.FieldFailureReason) {
		fields = append(fields, message.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldProviderMessageID:
		m.ClearProviderMessageID()
		return nil
	case message.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldTenantID:
		m.ResetTenantID()
		return nil
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldDirection:
		m.ResetDirection()
		return nil
	case message.FieldMessageType:
		m.ResetMessageType()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldProviderMessageID:
		m.ResetProviderMessageID()
		return nil
	case message.FieldStatus:
		m.ResetStatus()
		return nil
	case message.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MessageTemplateMutation represents an operation that mutates the MessageTemplate nodes in the graph.
type MessageTemplateMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	content        *string
	usage_count    *int
	addusage_count *int
	created_at     *time.Time
	updated_at     *time.Time
	deleted_at     *time.Time
	clearedFields  map[string]struct{}
	tenant         *string
	clearedtenant  bool
	done           bool
	oldValue       func(context.Context) (*MessageTemplate, error)
	predicates     []predicate.MessageTemplate
}

var _ ent.Mutation = (*MessageTemplateMutation)(nil)

// messagetemplateOption allows management of the mutation configuration using functional options.
type messagetemplateOption func(*MessageTemplateMutation)

// newMessageTemplateMutation creates new mutation for the MessageTemplate entity.
func newMessageTemplateMutation(c config, op Op, opts ...messagetemplateOption) *MessageTemplateMutation {
	m := &MessageTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageTemplateID sets the ID field of the mutation.
func withMessageTemplateID(id string) messagetemplateOption {
	return func(m *MessageTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageTemplate
		)
		m.oldValue = func(ctx context.Context) (*MessageTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageTemplate sets the old MessageTemplate of the mutation.
func withMessageTemplate(node *MessageTemplate) messagetemplateOption {
	return func(m *MessageTemplateMutation) {
		m.oldValue = func(context.Context) (*MessageTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageTemplate entities.
func (m *MessageTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *MessageTemplateMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *MessageTemplateMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *MessageTemplateMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *MessageTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MessageTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MessageTemplateMutation) ResetName() {
	m.name = nil
}

// SetContent sets the "content" field.
func (m *MessageTemplateMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageTemplateMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageTemplateMutation) ResetContent() {
	m.content = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *MessageTemplateMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *MessageTemplateMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *MessageTemplateMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *MessageTemplateMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *MessageTemplateMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MessageTemplateMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MessageTemplateMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MessageTemplateMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[messagetemplate.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MessageTemplateMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[messagetemplate.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MessageTemplateMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, messagetemplate.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *MessageTemplateMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[messagetemplate.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *MessageTemplateMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *MessageTemplateMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *MessageTemplateMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the MessageTemplateMutation builder.
func (m *MessageTemplateMutation) Where(ps ...predicate.MessageTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageTemplate).
func (m *MessageTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageTemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, messagetemplate.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, messagetemplate.FieldName)
	}
	if m.content != nil {
		fields = append(fields, messagetemplate.FieldContent)
	}
	if m.usage_count != nil {
		fields = append(fields, messagetemplate.FieldUsageCount)
	}
	if m.created_at != nil {
		fields = append(fields, messagetemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, messagetemplate.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, messagetemplate.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagetemplate.FieldTenantID:
		return m.TenantID()
	case messagetemplate.FieldName:
		return m.Name()
	case messagetemplate.FieldContent:
		return m.Content()
	case messagetemplate.FieldUsageCount:
		return m.UsageCount()
	case messagetemplate.FieldCreatedAt:
		return m.CreatedAt()
	case messagetemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	case messagetemplate.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagetemplate.FieldTenantID:
		return m.OldTenantID(ctx)
	case messagetemplate.FieldName:
		return m.OldName(ctx)
	case messagetemplate.FieldContent:
		return m.OldContent(ctx)
	case messagetemplate.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case messagetemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case messagetemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case messagetemplate.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagetemplate.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case messagetemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case messagetemplate.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case messagetemplate.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case messagetemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case messagetemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case messagetemplate.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, messagetemplate.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case messagetemplate.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case messagetemplate.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messagetemplate.FieldDeletedAt) {
		fields = append(fields, messagetemplate.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageTemplateMutation) ClearField(name string) error {
	switch name {
	case messagetemplate.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageTemplateMutation) ResetField(name string) error {
	switch name {
	case messagetemplate.FieldTenantID:
		m.ResetTenantID()
		return nil
	case messagetemplate.FieldName:
		m.ResetName()
		return nil
	case messagetemplate.FieldContent:
		m.ResetContent()
		return nil
	case messagetemplate.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case messagetemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case messagetemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case messagetemplate.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, messagetemplate.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagetemplate.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, messagetemplate.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case messagetemplate.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageTemplateMutation) ClearEdge(name string) error {
	switch name {
	case messagetemplate.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageTemplateMutation) ResetEdge(name string) error {
	switch name {
	case messagetemplate.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	status                  *order.Status
	total_cents             *int
	addtotal_cents          *int
	currency                *string
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	tenant                  *string
	clearedtenant           bool
	customer                *string
	clearedcustomer         bool
	items                   map[string]struct{}
	removeditems            map[string]struct{}
	cleareditems            bool
	payment_requests        map[string]struct{}
	removedpayment_requests map[string]struct{}
	clearedpayment_requests bool
	done                    bool
	oldValue                func(context.Context) (*Order, error)
	predicates              []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id string) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OrderMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OrderMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OrderMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *OrderMutation) SetCustomerID(s string) {
	m.customer = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *OrderMutation) CustomerID() (r string, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *OrderMutation) ResetCustomerID() {
	m.customer = nil
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(o order.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r order.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v order.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetTotalCents sets the "total_cents" field.
func (m *OrderMutation) SetTotalCents(i int) {
	m.total_cents = &i
	m.addtotal_cents = nil
}

// TotalCents returns the value of the "total_cents" field in the mutation.
func (m *OrderMutation) TotalCents() (r int, exists bool) {
	v := m.total_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCents returns the old "total_cents" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCents: %w", err)
	}
	return oldValue.TotalCents, nil
}

// AddTotalCents adds i to the "total_cents" field.
func (m *OrderMutation) AddTotalCents(i int) {
	if m.addtotal_cents != nil {
		*m.addtotal_cents += i
	} else {
		m.addtotal_cents = &i
	}
}

// AddedTotalCents returns the value that was added to the "total_cents" field in this mutation.
func (m *OrderMutation) AddedTotalCents() (r int, exists bool) {
	v := m.addtotal_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCents resets all changes to the "total_cents" field.
func (m *OrderMutation) ResetTotalCents() {
	m.total_cents = nil
	m.addtotal_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *OrderMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *OrderMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *OrderMutation) ResetCurrency() {
	m.currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *OrderMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *OrderMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *OrderMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[order.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *OrderMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[order.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *OrderMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, order.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *OrderMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[order.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *OrderMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *OrderMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *OrderMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *OrderMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[order.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *OrderMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *OrderMutation) CustomerIDs() (ids []string) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *OrderMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *OrderMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *OrderMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *OrderMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *OrderMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *OrderMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *OrderMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *OrderMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddPaymentRequestIDs adds the "payment_requests" edge to the PaymentRequest entity by ids.
func (m *OrderMutation) AddPaymentRequestIDs(ids ...string) {
	if m.payment_requests == nil {
		m.payment_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.payment_requests[ids[i]] = struct{}{}
	}
}

// ClearPaymentRequests clears the "payment_requests" edge to the PaymentRequest entity.
func (m *OrderMutation) ClearPaymentRequests() {
	m.clearedpayment_requests = true
}

// PaymentRequestsCleared reports if the "payment_requests" edge to the PaymentRequest entity was cleared.
func (m *OrderMutation) PaymentRequestsCleared() bool {
	return m.clearedpayment_requests
}

// RemovePaymentRequestIDs removes the "payment_requests" edge to the PaymentRequest entity by IDs.
func (m *OrderMutation) RemovePaymentRequestIDs(ids ...string) {
	if m.removedpayment_requests == nil {
		m.removedpayment_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.payment_requests, ids[i])
		m.removedpayment_requests[ids[i]] = struct{}{}
	}
}

// RemovedPaymentRequests returns the removed IDs of the "payment_requests" edge to the PaymentRequest entity.
func (m *OrderMutation) RemovedPaymentRequestsIDs() (ids []string) {
	for id := range m.removedpayment_requests {
		ids = append(ids, id)
	}
	return
}

// PaymentRequestsIDs returns the "payment_requests" edge IDs in the mutation.
func (m *OrderMutation) PaymentRequestsIDs() (ids []string) {
	for id := range m.payment_requests {
		ids = append(ids, id)
	}
	return
}

// ResetPaymentRequests resets all changes to the "payment_requests" edge.
func (m *OrderMutation) ResetPaymentRequests() {
	m.payment_requests = nil
	m.clearedpayment_requests = false
	m.removedpayment_requests = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, order.FieldTenantID)
	}
	if m.customer != nil {
		fields = append(fields, order.FieldCustomerID)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.total_cents != nil {
		fields = append(fields, order.FieldTotalCents)
	}
	if m.currency != nil {
		fields = append(fields, order.FieldCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, order.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldTenantID:
		return m.TenantID()
	case order.FieldCustomerID:
		return m.CustomerID()
	case order.FieldStatus:
		return m.Status()
	case order.FieldTotalCents:
		return m.TotalCents()
	case order.FieldCurrency:
		return m.Currency()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	case order.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldTenantID:
		return m.OldTenantID(ctx)
	case order.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldTotalCents:
		return m.OldTotalCents(ctx)
	case order.FieldCurrency:
		return m.OldCurrency(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case order.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case order.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(order.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldTotalCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCents(v)
		return nil
	case order.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case order.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_cents != nil {
		fields = append(fields, order.FieldTotalCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldTotalCents:
		return m.AddedTotalCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldTotalCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCents(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldDeletedAt) {
		fields = append(fields, order.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldTenantID:
		m.ResetTenantID()
		return nil
	case order.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldTotalCents:
		m.ResetTotalCents()
		return nil
	case order.FieldCurrency:
		m.ResetCurrency()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case order.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.tenant != nil {
		edges = append(edges, order.EdgeTenant)
	}
	if m.customer != nil {
		edges = append(edges, order.EdgeCustomer)
	}
	if m.items != nil {
		edges = append(edges, order.EdgeItems)
	}
	if m.payment_requests != nil {
		edges = append(edges, order.EdgePaymentRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case order.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case order.EdgePaymentRequests:
		ids := make([]ent.Value, 0, len(m.payment_requests))
		for id := range m.payment_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeditems != nil {
		edges = append(edges, order.EdgeItems)
	}
	if m.removedpayment_requests != nil {
		edges = append(edges, order.EdgePaymentRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case order.EdgePaymentRequests:
		ids := make([]ent.Value, 0, len(m.removedpayment_requests))
		for id := range m.removedpayment_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtenant {
		edges = append(edges, order.EdgeTenant)
	}
	if m.clearedcustomer {
		edges = append(edges, order.EdgeCustomer)
	}
	if m.cleareditems {
		edges = append(edges, order.EdgeItems)
	}
	if m.clearedpayment_requests {
		edges = append(edges, order.EdgePaymentRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeTenant:
		return m.clearedtenant
	case order.EdgeCustomer:
		return m.clearedcustomer
	case order.EdgeItems:
		return m.cleareditems
	case order.EdgePaymentRequests:
		return m.clearedpayment_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	case order.EdgeTenant:
		m.ClearTenant()
		return nil
	case order.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeTenant:
		m.ResetTenant()
		return nil
	case order.EdgeCustomer:
		m.ResetCustomer()
		return nil
	case order.EdgeItems:
		m.ResetItems()
		return nil
	case order.EdgePaymentRequests:
		m.ResetPaymentRequests()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	variant_id          *string
	quantity            *int
	addquantity         *int
	unit_price_cents    *int
	addunit_price_cents *int
	subtotal_cents      *int
	addsubtotal_cents   *int
	clearedFields       map[string]struct{}
	_order              *string
	cleared_order       bool
	done                bool
	oldValue            func(context.Context) (*OrderItem, error)
	predicates          []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id string) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OrderItemMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OrderItemMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OrderItemMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetOrderID sets the "order_id" field.
func (m *OrderItemMutation) SetOrderID(s string) {
	m._order = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderItemMutation) OrderID() (r string, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderItemMutation) ResetOrderID() {
	m._order = nil
}

// SetVariantID sets the "variant_id" field.
func (m *OrderItemMutation) SetVariantID(s string) {
	m.variant_id = &s
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *OrderItemMutation) VariantID() (r string, exists bool) {
	v := m.variant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldVariantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *OrderItemMutation) ResetVariantID() {
	m.variant_id = nil
}

// SetQuantity sets the "quantity" field.
func (m *OrderItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPriceCents sets the "unit_price_cents" field.
func (m *OrderItemMutation) SetUnitPriceCents(i int) {
	m.unit_price_cents = &i
	m.addunit_price_cents = nil
}

// UnitPriceCents returns the value of the "unit_price_cents" field in the mutation.
func (m *OrderItemMutation) UnitPriceCents() (r int, exists bool) {
	v := m.unit_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPriceCents returns the old "unit_price_cents" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldUnitPriceCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPriceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPriceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPriceCents: %w", err)
	}
	return oldValue.UnitPriceCents, nil
}

// AddUnitPriceCents adds i to the "unit_price_cents" field.
func (m *OrderItemMutation) AddUnitPriceCents(i int) {
	if m.addunit_price_cents != nil {
		*m.addunit_price_cents += i
	} else {
		m.addunit_price_cents = &i
	}
}

// AddedUnitPriceCents returns the value that was added to the "unit_price_cents" field in this mutation.
func (m *OrderItemMutation) AddedUnitPriceCents() (r int, exists bool) {
	v := m.addunit_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPriceCents resets all changes to the "unit_price_cents" field.
func (m *OrderItemMutation) ResetUnitPriceCents() {
	m.unit_price_cents = nil
	m.addunit_price_cents = nil
}

// SetSubtotalCents sets the "subtotal_cents" field.
func (m *OrderItemMutation) SetSubtotalCents(i int) {
	m.subtotal_cents = &i
	m.addsubtotal_cents = nil
}

// SubtotalCents returns the value of the "subtotal_cents" field in the mutation.
func (m *OrderItemMutation) SubtotalCents() (r int, exists bool) {
	v := m.subtotal_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotalCents returns the old "subtotal_cents" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldSubtotalCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotalCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotalCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotalCents: %w", err)
	}
	return oldValue.SubtotalCents, nil
}

// AddSubtotalCents adds i to the "subtotal_cents" field.
func (m *OrderItemMutation) AddSubtotalCents(i int) {
	if m.addsubtotal_cents != nil {
		*m.addsubtotal_cents += i
	} else {
		m.addsubtotal_cents = &i
	}
}

// AddedSubtotalCents returns the value that was added to the "subtotal_cents" field in this mutation.
func (m *OrderItemMutation) AddedSubtotalCents() (r int, exists bool) {
	v := m.addsubtotal_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotalCents resets all changes to the "subtotal_cents" field.
func (m *OrderItemMutation) ResetSubtotalCents() {
	m.subtotal_cents = nil
	m.addsubtotal_cents = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderItemMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderitem.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderItemMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderItemMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, orderitem.FieldTenantID)
	}
	if m._order != nil {
		fields = append(fields, orderitem.FieldOrderID)
	}
	if m.variant_id != nil {
		fields = append(fields, orderitem.FieldVariantID)
	}
	if m.quantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.unit_price_cents != nil {
		fields = append(fields, orderitem.FieldUnitPriceCents)
	}
	if m.subtotal_cents != nil {
		fields = append(fields, orderitem.FieldSubtotalCents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldTenantID:
		return m.TenantID()
	case orderitem.FieldOrderID:
		return m.OrderID()
	case orderitem.FieldVariantID:
		return m.VariantID()
	case orderitem.FieldQuantity:
		return m.Quantity()
	case orderitem.FieldUnitPriceCents:
		return m.UnitPriceCents()
	case orderitem.FieldSubtotalCents:
		return m.SubtotalCents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldTenantID:
		return m.OldTenantID(ctx)
	case orderitem.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderitem.FieldVariantID:
		return m.OldVariantID(ctx)
	case orderitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case orderitem.FieldUnitPriceCents:
		return m.OldUnitPriceCents(ctx)
	case orderitem.FieldSubtotalCents:
		return m.OldSubtotalCents(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case orderitem.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderitem.FieldVariantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case orderitem.FieldUnitPriceCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPriceCents(v)
		return nil
	case orderitem.FieldSubtotalCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotalCents(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.addunit_price_cents != nil {
		fields = append(fields, orderitem.FieldUnitPriceCents)
	}
	if m.addsubtotal_cents != nil {
		fields = append(fields, orderitem.FieldSubtotalCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldQuantity:
		return m.AddedQuantity()
	case orderitem.FieldUnitPriceCents:
		return m.AddedUnitPriceCents()
	case orderitem.FieldSubtotalCents:
		return m.AddedSubtotalCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case orderitem.FieldUnitPriceCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPriceCents(v)
		return nil
	case orderitem.FieldSubtotalCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotalCents(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldTenantID:
		m.ResetTenantID()
		return nil
	case orderitem.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderitem.FieldVariantID:
		m.ResetVariantID()
		return nil
	case orderitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case orderitem.FieldUnitPriceCents:
		m.ResetUnitPriceCents()
		return nil
	case orderitem.FieldSubtotalCents:
		m.ResetSubtotalCents()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}

// OutboxEventMutation represents an operation that mutates the OutboxEvent nodes in the graph.
type OutboxEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tenant_id     *string
	topic         *string
	payload       *map[string]interface{}
	created_at    *time.Time
	handled_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OutboxEvent, error)
	predicates    []predicate.OutboxEvent
}

var _ ent.Mutation = (*OutboxEventMutation)(nil)

// outboxeventOption allows management of the mutation configuration using functional options.
type outboxeventOption func(*OutboxEventMutation)

// newOutboxEventMutation creates new mutation for the OutboxEvent entity.
func newOutboxEventMutation(c config, op Op, opts ...outboxeventOption) *OutboxEventMutation {
	m := &OutboxEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxEventID sets the ID field of the mutation.
func withOutboxEventID(id int) outboxeventOption {
	return func(m *OutboxEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxEvent
		)
		m.oldValue = func(ctx context.Context) (*OutboxEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxEvent sets the old OutboxEvent of the mutation.
func withOutboxEvent(node *OutboxEvent) outboxeventOption {
	return func(m *OutboxEventMutation) {
		m.oldValue = func(context.Context) (*OutboxEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OutboxEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OutboxEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OutboxEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetTopic sets the "topic" field.
func (m *OutboxEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *OutboxEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *OutboxEventMutation) ResetTopic() {
	m.topic = nil
}

// SetPayload sets the "payload" field.
func (m *OutboxEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboxEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboxEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetHandledAt sets the "handled_at" field.
func (m *OutboxEventMutation) SetHandledAt(t time.Time) {
	m.handled_at = &t
}

// HandledAt returns the value of the "handled_at" field in the mutation.
func (m *OutboxEventMutation) HandledAt() (r time.Time, exists bool) {
	v := m.handled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHandledAt returns the old "handled_at" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldHandledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandledAt: %w", err)
	}
	return oldValue.HandledAt, nil
}

// ClearHandledAt clears the value of the "handled_at" field.
func (m *OutboxEventMutation) ClearHandledAt() {
	m.handled_at = nil
	m.clearedFields[outboxevent.FieldHandledAt] = struct{}{}
}

// HandledAtCleared returns if the "handled_at" field was cleared in this mutation.
func (m *OutboxEventMutation) HandledAtCleared() bool {
	_, ok := m.clearedFields[outboxevent.FieldHandledAt]
	return ok
}

// ResetHandledAt resets all changes to the "handled_at" field.
func (m *OutboxEventMutation) ResetHandledAt() {
	m.handled_at = nil
	delete(m.clearedFields, outboxevent.FieldHandledAt)
}

// Where appends a list predicates to the OutboxEventMutation builder.
func (m *OutboxEventMutation) Where(ps ...predicate.OutboxEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxEvent).
func (m *OutboxEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, outboxevent.FieldTenantID)
	}
	if m.topic != nil {
		fields = append(fields, outboxevent.FieldTopic)
	}
	if m.payload != nil {
		fields = append(fields, outboxevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, outboxevent.FieldCreatedAt)
	}
	if m.handled_at != nil {
		fields = append(fields, outboxevent.FieldHandledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxevent.FieldTenantID:
		return m.TenantID()
	case outboxevent.FieldTopic:
		return m.Topic()
	case outboxevent.FieldPayload:
		return m.Payload()
	case outboxevent.FieldCreatedAt:
		return m.CreatedAt()
	case outboxevent.FieldHandledAt:
		return m.HandledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case outboxevent.FieldTopic:
		return m.OldTopic(ctx)
	case outboxevent.FieldPayload:
		return m.OldPayload(ctx)
	case outboxevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case outboxevent.FieldHandledAt:
		return m.OldHandledAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case outboxevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case outboxevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboxevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case outboxevent.FieldHandledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandledAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OutboxEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboxevent.FieldHandledAt) {
		fields = append(fields, outboxevent.FieldHandledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxEventMutation) ClearField(name string) error {
	switch name {
	case outboxevent.FieldHandledAt:
		m.ClearHandledAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxEventMutation) ResetField(name string) error {
	switch name {
	case outboxevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case outboxevent.FieldTopic:
		m.ResetTopic()
		return nil
	case outboxevent.FieldPayload:
		m.ResetPayload()
		return nil
	case outboxevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case outboxevent.FieldHandledAt:
		m.ResetHandledAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutboxEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutboxEvent edge %s", name)
}

// PaymentRequestMutation represents an operation that mutates the PaymentRequest nodes in the graph.
type PaymentRequestMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	status          *paymentrequest.Status
	provider        *string
	provider_ref    *string
	amount_cents    *int
	addamount_cents *int
	currency        *string
	failure_reason  *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	_order          *string
	cleared_order   bool
	done            bool
	oldValue        func(context.Context) (*PaymentRequest, error)
	predicates      []predicate.PaymentRequest
}

var _ ent.Mutation = (*PaymentRequestMutation)(nil)

// paymentrequestOption allows management of the mutation configuration using functional options.
type paymentrequestOption func(*PaymentRequestMutation)

// newPaymentRequestMutation creates new mutation for the PaymentRequest entity.
func newPaymentRequestMutation(c config, op Op, opts ...paymentrequestOption) *PaymentRequestMutation {
	m := &PaymentRequestMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentRequestID sets the ID field of the mutation.
func withPaymentRequestID(id string) paymentrequestOption {
	return func(m *PaymentRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentRequest
		)
		m.oldValue = func(ctx context.Context) (*PaymentRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentRequest sets the old PaymentRequest of the mutation.
func withPaymentRequest(node *PaymentRequest) paymentrequestOption {
	return func(m *PaymentRequestMutation) {
		m.oldValue = func(context.Context) (*PaymentRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentRequest entities.
func (m *PaymentRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PaymentRequestMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PaymentRequestMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PaymentRequestMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetOrderID sets the "order_id" field.
func (m *PaymentRequestMutation) SetOrderID(s string) {
	m._order = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *PaymentRequestMutation) OrderID() (r string, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *PaymentRequestMutation) ResetOrderID() {
	m._order = nil
}

// SetStatus sets the "status" field.
func (m *PaymentRequestMutation) SetStatus(pa paymentrequest.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentRequestMutation) Status() (r paymentrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldStatus(ctx context.Context) (v paymentrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentRequestMutation) ResetStatus() {
	m.status = nil
}

// SetProvider sets the "provider" field.
func (m *PaymentRequestMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *PaymentRequestMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *PaymentRequestMutation) ResetProvider() {
	m.provider = nil
}

// SetProviderRef sets the "provider_ref" field.
func (m *PaymentRequestMutation) SetProviderRef(s string) {
	m.provider_ref = &s
}

// ProviderRef returns the value of the "provider_ref" field in the mutation.
func (m *PaymentRequestMutation) ProviderRef() (r string, exists bool) {
	v := m.provider_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderRef returns the old "provider_ref" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldProviderRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderRef: %w", err)
	}
	return oldValue.ProviderRef, nil
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (m *PaymentRequestMutation) ClearProviderRef() {
	m.provider_ref = nil
	m.clearedFields[paymentrequest.FieldProviderRef] = struct{}{}
}

// ProviderRefCleared returns if the "provider_ref" field was cleared in this mutation.
func (m *PaymentRequestMutation) ProviderRefCleared() bool {
	_, ok := m.clearedFields[paymentrequest.FieldProviderRef]
	return ok
}

// ResetProviderRef resets all changes to the "provider_ref" field.
func (m *PaymentRequestMutation) ResetProviderRef() {
	m.provider_ref = nil
	delete(m.clearedFields, paymentrequest.FieldProviderRef)
}

// SetAmountCents sets the "amount_cents" field.
func (m *PaymentRequestMutation) SetAmountCents(i int) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *PaymentRequestMutation) AmountCents() (r int, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldAmountCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *PaymentRequestMutation) AddAmountCents(i int) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *PaymentRequestMutation) AddedAmountCents() (r int, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *PaymentRequestMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *PaymentRequestMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *PaymentRequestMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *PaymentRequestMutation) ResetCurrency() {
	m.currency = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *PaymentRequestMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *PaymentRequestMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *PaymentRequestMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[paymentrequest.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *PaymentRequestMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[paymentrequest.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *PaymentRequestMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, paymentrequest.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaymentRequest entity.
// If the PaymentRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *PaymentRequestMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[paymentrequest.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *PaymentRequestMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *PaymentRequestMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *PaymentRequestMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the PaymentRequestMutation builder.
func (m *PaymentRequestMutation) Where(ps ...predicate.PaymentRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentRequest).
func (m *PaymentRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentRequestMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, paymentrequest.FieldTenantID)
	}
	if m._order != nil {
		fields = append(fields, paymentrequest.FieldOrderID)
	}
	if m.status != nil {
		fields = append(fields, paymentrequest.FieldStatus)
	}
	if m.provider != nil {
		fields = append(fields, paymentrequest.FieldProvider)
	}
	if m.provider_ref != nil {
		fields = append(fields, paymentrequest.FieldProviderRef)
	}
	if m.amount_cents != nil {
		fields = append(fields, paymentrequest.FieldAmountCents)
	}
	if m.currency != nil {
		fields = append(fields, paymentrequest.FieldCurrency)
	}
	if m.failure_reason != nil {
		fields = append(fields, paymentrequest.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, paymentrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paymentrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentrequest.FieldTenantID:
		return m.TenantID()
	case paymentrequest.FieldOrderID:
		return m.OrderID()
	case paymentrequest.FieldStatus:
		return m.Status()
	case paymentrequest.FieldProvider:
		return m.Provider()
	case paymentrequest.FieldProviderRef:
		return m.ProviderRef()
	case paymentrequest.FieldAmountCents:
		return m.AmountCents()
	case paymentrequest.FieldCurrency:
		return m.Currency()
	case paymentrequest.FieldFailureReason:
		return m.FailureReason()
	case paymentrequest.FieldCreatedAt:
		return m.CreatedAt()
	case paymentrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentrequest.FieldTenantID:
		return m.OldTenantID(ctx)
	case paymentrequest.FieldOrderID:
		return m.OldOrderID(ctx)
	case paymentrequest.FieldStatus:
		return m.OldStatus(ctx)
	case paymentrequest.FieldProvider:
		return m.OldProvider(ctx)
	case paymentrequest.FieldProviderRef:
		return m.OldProviderRef(ctx)
	case paymentrequest.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case paymentrequest.FieldCurrency:
		return m.OldCurrency(ctx)
	case paymentrequest.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case paymentrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paymentrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentrequest.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case paymentrequest.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case paymentrequest.FieldStatus:
		v, ok := value.(paymentrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case paymentrequest.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case paymentrequest.FieldProviderRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderRef(v)
		return nil
	case paymentrequest.FieldAmountCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case paymentrequest.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case paymentrequest.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case paymentrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paymentrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentRequestMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, paymentrequest.FieldAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentrequest.FieldAmountCents:
		return m.AddedAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentrequest.FieldAmountCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentrequest.FieldProviderRef) {
		fields = append(fields, paymentrequest.FieldProviderRef)
	}
	if m.FieldCleared(paymentrequest.FieldFailureReason) {
		fields = append(fields, paymentrequest.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentRequestMutation) ClearField(name string) error {
	switch name {
	case paymentrequest.FieldProviderRef:
		m.ClearProviderRef()
		return nil
	case paymentrequest.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown PaymentRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentRequestMutation) ResetField(name string) error {
	switch name {
	case paymentrequest.FieldTenantID:
		m.ResetTenantID()
		return nil
	case paymentrequest.FieldOrderID:
		m.ResetOrderID()
		return nil
	case paymentrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case paymentrequest.FieldProvider:
		m.ResetProvider()
		return nil
	case paymentrequest.FieldProviderRef:
		m.ResetProviderRef()
		return nil
	case paymentrequest.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case paymentrequest.FieldCurrency:
		m.ResetCurrency()
		return nil
	case paymentrequest.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case paymentrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paymentrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaymentRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, paymentrequest.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paymentrequest.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, paymentrequest.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case paymentrequest.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentRequestMutation) ClearEdge(name string) error {
	switch name {
	case paymentrequest.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown PaymentRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentRequestMutation) ResetEdge(name string) error {
	switch name {
	case paymentrequest.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown PaymentRequest edge %s", name)
}

// PermissionMutation represents an operation that mutates the Permission nodes in the graph.
type PermissionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	code          *string
	description   *string
	clearedFields map[string]struct{}
	roles         map[string]struct{}
	removedroles  map[string]struct{}
	clearedroles  bool
	done          bool
	oldValue      func(context.Context) (*Permission, error)
	predicates    []predicate.Permission
}

var _ ent.Mutation = (*PermissionMutation)(nil)

// permissionOption allows management of the mutation configuration using functional options.
type permissionOption func(*PermissionMutation)

// newPermissionMutation creates new mutation for the Permission entity.
func newPermissionMutation(c config, op Op, opts ...permissionOption) *PermissionMutation {
	m := &PermissionMutation{
		config:        c,
		op:            op,
		typ:           TypePermission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPermissionID sets the ID field of the mutation.
func withPermissionID(id string) permissionOption {
	return func(m *PermissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Permission
		)
		m.oldValue = func(ctx context.Context) (*Permission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Permission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPermission sets the old Permission of the mutation.
func withPermission(node *Permission) permissionOption {
	return func(m *PermissionMutation) {
		m.oldValue = func(context.Context) (*Permission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PermissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PermissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Permission entities.
func (m *PermissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PermissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PermissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Permission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *PermissionMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *PermissionMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *PermissionMutation) ResetCode() {
	m.code = nil
}

// SetDescription sets the "description" field.
func (m *PermissionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PermissionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Permission entity.
// If the Permission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PermissionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[permission.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PermissionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[permission.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PermissionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, permission.FieldDescription)
}

// AddRoleIDs adds the "roles" edge to the Role entity by ids.
func (m *PermissionMutation) AddRoleIDs(ids ...string) {
	if m.roles == nil {
		m.roles = make(map[string]struct{})
	}
	for i := range ids {
		m.roles[ids[i]] = struct{}{}
	}
}

// ClearRoles clears the "roles" edge to the Role entity.
func (m *PermissionMutation) ClearRoles() {
	m.clearedroles = true
}

// RolesCleared reports if the "roles" edge to the Role entity was cleared.
func (m *PermissionMutation) RolesCleared() bool {
	return m.clearedroles
}

// RemoveRoleIDs removes the "roles" edge to the Role entity by IDs.
func (m *PermissionMutation) RemoveRoleIDs(ids ...string) {
	if m.removedroles == nil {
		m.removedroles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.roles, ids[i])
		m.removedroles[ids[i]] = struct{}{}
	}
}

// RemovedRoles returns the removed IDs of the "roles" edge to the Role entity.
func (m *PermissionMutation) RemovedRolesIDs() (ids []string) {
	for id := range m.removedroles {
		ids = append(ids, id)
	}
	return
}

// RolesIDs returns the "roles" edge IDs in the mutation.
func (m *PermissionMutation) RolesIDs() (ids []string) {
	for id := range m.roles {
		ids = append(ids, id)
	}
	return
}

// ResetRoles resets all changes to the "roles" edge.
func (m *PermissionMutation) ResetRoles() {
	m.roles = nil
	m.clearedroles = false
	m.removedroles = nil
}

// Where appends a list predicates to the PermissionMutation builder.
func (m *PermissionMutation) Where(ps ...predicate.Permission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PermissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PermissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Permission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PermissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PermissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Permission).
func (m *PermissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PermissionMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.code != nil {
		fields = append(fields, permission.FieldCode)
	}
	if m.description != nil {
		fields = append(fields, permission.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PermissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case permission.FieldCode:
		return m.Code()
	case permission.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PermissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case permission.FieldCode:
		return m.OldCode(ctx)
	case permission.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Permission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case permission.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case permission.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Permission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PermissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PermissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Permission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PermissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(permission.FieldDescription) {
		fields = append(fields, permission.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PermissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PermissionMutation) ClearField(name string) error {
	switch name {
	case permission.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Permission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PermissionMutation) ResetField(name string) error {
	switch name {
	case permission.FieldCode:
		m.ResetCode()
		return nil
	case permission.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Permission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PermissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.roles != nil {
		edges = append(edges, permission.EdgeRoles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PermissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case permission.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.roles))
		for id := range m.roles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PermissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedroles != nil {
		edges = append(edges, permission.EdgeRoles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PermissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case permission.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.removedroles))
		for id := range m.removedroles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PermissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedroles {
		edges = append(edges, permission.EdgeRoles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PermissionMutation) EdgeCleared(name string) bool {
	switch name {
	case permission.EdgeRoles:
		return m.clearedroles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PermissionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Permission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PermissionMutation) ResetEdge(name string) error {
	switch name {
	case permission.EdgeRoles:
		m.ResetRoles()
		return nil
	}
	return fmt.Errorf("unknown Permission edge %s", name)
}

// ProductMutation represents an operation that mutates the Product nodes in the graph.
type ProductMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	description     *string
	tags            *[]string
	appendtags      []string
	active          *bool
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	tenant          *string
	clearedtenant   bool
	variants        map[string]struct{}
	removedvariants map[string]struct{}
	clearedvariants bool
	done            bool
	oldValue        func(context.Context) (*Product, error)
	predicates      []predicate.Product
}

var _ ent.Mutation = (*ProductMutation)(nil)

// productOption allows management of the mutation configuration using functional options.
type productOption func(*ProductMutation)

// newProductMutation creates new mutation for the Product entity.
func newProductMutation(c config, op Op, opts ...productOption) *ProductMutation {
	m := &ProductMutation{
		config:        c,
		op:            op,
		typ:           TypeProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductID sets the ID field of the mutation.
func withProductID(id string) productOption {
	return func(m *ProductMutation) {
		var (
			err   error
			once  sync.Once
			value *Product
		)
		m.oldValue = func(ctx context.Context) (*Product, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Product.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProduct sets the old Product of the mutation.
func withProduct(node *Product) productOption {
	return func(m *ProductMutation) {
		m.oldValue = func(context.Context) (*Product, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Product entities.
func (m *ProductMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Product.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProductMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProductMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProductMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *ProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProductMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProductMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProductMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProductMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[product.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProductMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[product.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProductMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, product.FieldDescription)
}

// SetTags sets the "tags" field.
func (m *ProductMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ProductMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ProductMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ProductMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ProductMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[product.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ProductMutation) TagsCleared() bool {
	_, ok := m.clearedFields[product.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ProductMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, product.FieldTags)
}

// SetActive sets the "active" field.
func (m *ProductMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ProductMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ProductMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProductMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProductMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProductMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[product.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProductMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[product.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProductMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, product.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *ProductMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[product.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *ProductMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *ProductMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *ProductMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddVariantIDs adds the "variants" edge to the ProductVariant entity by ids.
func (m *ProductMutation) AddVariantIDs(ids ...string) {
	if m.variants == nil {
		m.variants = make(map[string]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the ProductVariant entity.
func (m *ProductMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the ProductVariant entity was cleared.
func (m *ProductMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the ProductVariant entity by IDs.
func (m *ProductMutation) RemoveVariantIDs(ids ...string) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the ProductVariant entity.
func (m *ProductMutation) RemovedVariantsIDs() (ids []string) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *ProductMutation) VariantsIDs() (ids []string) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *ProductMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// Where appends a list predicates to the ProductMutation builder.
func (m *ProductMutation) Where(ps ...predicate.Product) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Product, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Product).
func (m *ProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, product.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, product.FieldName)
	}
	if m.description != nil {
		fields = append(fields, product.FieldDescription)
	}
	if m.tags != nil {
		fields = append(fields, product.FieldTags)
	}
	if m.active != nil {
		fields = append(fields, product.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, product.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, product.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, product.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case product.FieldTenantID:
		return m.TenantID()
	case product.FieldName:
		return m.Name()
	case product.FieldDescription:
		return m.Description()
	case product.FieldTags:
		return m.Tags()
	case product.FieldActive:
		return m.Active()
	case product.FieldCreatedAt:
		return m.CreatedAt()
	case product.FieldUpdatedAt:
		return m.UpdatedAt()
	case product.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case product.FieldTenantID:
		return m.OldTenantID(ctx)
	case product.FieldName:
		return m.OldName(ctx)
	case product.FieldDescription:
		return m.OldDescription(ctx)
	case product.FieldTags:
		return m.OldTags(ctx)
	case product.FieldActive:
		return m.OldActive(ctx)
	case product.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case product.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case product.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Product field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case product.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case product.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case product.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case product.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case product.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case product.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case product.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case product.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Product numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(product.FieldDescription) {
		fields = append(fields, product.FieldDescription)
	}
	if m.FieldCleared(product.FieldTags) {
		fields = append(fields, product.FieldTags)
	}
	if m.FieldCleared(product.FieldDeletedAt) {
		fields = append(fields, product.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductMutation) ClearField(name string) error {
	switch name {
	case product.FieldDescription:
		m.ClearDescription()
		return nil
	case product.FieldTags:
		m.ClearTags()
		return nil
	case product.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Product nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductMutation) ResetField(name string) error {
	switch name {
	case product.FieldTenantID:
		m.ResetTenantID()
		return nil
	case product.FieldName:
		m.ResetName()
		return nil
	case product.FieldDescription:
		m.ResetDescription()
		return nil
	case product.FieldTags:
		m.ResetTags()
		return nil
	case product.FieldActive:
		m.ResetActive()
		return nil
	case product.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case product.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case product.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, product.EdgeTenant)
	}
	if m.variants != nil {
		edges = append(edges, product.EdgeVariants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case product.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvariants != nil {
		edges = append(edges, product.EdgeVariants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, product.EdgeTenant)
	}
	if m.clearedvariants {
		edges = append(edges, product.EdgeVariants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductMutation) EdgeCleared(name string) bool {
	switch name {
	case product.EdgeTenant:
		return m.clearedtenant
	case product.EdgeVariants:
		return m.clearedvariants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductMutation) ClearEdge(name string) error {
	switch name {
	case product.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Product unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductMutation) ResetEdge(name string) error {
	switch name {
	case product.EdgeTenant:
		m.ResetTenant()
		return nil
	case product.EdgeVariants:
		m.ResetVariants()
		return nil
	}
	return fmt.Errorf("unknown Product edge %s", name)
}

// ProductVariantMutation represents an operation that mutates the ProductVariant nodes in the graph.
type ProductVariantMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	label          *string
	price_cents    *int
	addprice_cents *int
	currency       *string
	stock          *int
	addstock       *int
	attributes     *map[string]string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	product        *string
	clearedproduct bool
	done           bool
	oldValue       func(context.Context) (*ProductVariant, error)
	predicates     []predicate.ProductVariant
}

var _ ent.Mutation = (*ProductVariantMutation)(nil)

// productvariantOption allows management of the mutation configuration using functional options.
type productvariantOption func(*ProductVariantMutation)

// newProductVariantMutation creates new mutation for the ProductVariant entity.
func newProductVariantMutation(c config, op Op, opts ...productvariantOption) *ProductVariantMutation {
	m := &ProductVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeProductVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductVariantID sets the ID field of the mutation.
func withProductVariantID(id string) productvariantOption {
	return func(m *ProductVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductVariant
		)
		m.oldValue = func(ctx context.Context) (*ProductVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductVariant sets the old ProductVariant of the mutation.
func withProductVariant(node *ProductVariant) productvariantOption {
	return func(m *ProductVariantMutation) {
		m.oldValue = func(context.Context) (*ProductVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductVariant entities.
func (m *ProductVariantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductVariantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductVariantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProductVariantMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProductVariantMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProductVariantMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProductID sets the "product_id" field.
func (m *ProductVariantMutation) SetProductID(s string) {
	m.product = &s
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *ProductVariantMutation) ProductID() (r string, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldProductID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ResetProductID resets all changes to the "product_id" field.
func (m *ProductVariantMutation) ResetProductID() {
	m.product = nil
}

// SetLabel sets the "label" field.
func (m *ProductVariantMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ProductVariantMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *ProductVariantMutation) ResetLabel() {
	m.label = nil
}

// SetPriceCents sets the "price_cents" field.
func (m *ProductVariantMutation) SetPriceCents(i int) {
	m.price_cents = &i
	m.addprice_cents = nil
}

// PriceCents returns the value of the "price_cents" field in the mutation.
func (m *ProductVariantMutation) PriceCents() (r int, exists bool) {
	v := m.price_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceCents returns the old "price_cents" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldPriceCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceCents: %w", err)
	}
	return oldValue.PriceCents, nil
}

// AddPriceCents adds i to the "price_cents" field.
func (m *ProductVariantMutation) AddPriceCents(i int) {
	if m.addprice_cents != nil {
		*m.addprice_cents += i
	} else {
		m.addprice_cents = &i
	}
}

// AddedPriceCents returns the value that was added to the "price_cents" field in this mutation.
func (m *ProductVariantMutation) AddedPriceCents() (r int, exists bool) {
	v := m.addprice_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriceCents resets all changes to the "price_cents" field.
func (m *ProductVariantMutation) ResetPriceCents() {
	m.price_cents = nil
	m.addprice_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *ProductVariantMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ProductVariantMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ProductVariantMutation) ResetCurrency() {
	m.currency = nil
}

// SetStock sets the "stock" field.
func (m *ProductVariantMutation) SetStock(i int) {
	m.stock = &i
	m.addstock = nil
}

// Stock returns the value of the "stock" field in the mutation.
func (m *ProductVariantMutation) Stock() (r int, exists bool) {
	v := m.stock
	if v == nil {
		return
	}
	return *v, true
}

// OldStock returns the old "stock" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldStock(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStock: %w", err)
	}
	return oldValue.Stock, nil
}

// AddStock adds i to the "stock" field.
func (m *ProductVariantMutation) AddStock(i int) {
	if m.addstock != nil {
		*m.addstock += i
	} else {
		m.addstock = &i
	}
}

// AddedStock returns the value that was added to the "stock" field in this mutation.
func (m *ProductVariantMutation) AddedStock() (r int, exists bool) {
	v := m.addstock
	if v == nil {
		return
	}
	return *v, true
}

// ResetStock resets all changes to the "stock" field.
func (m *ProductVariantMutation) ResetStock() {
	m.stock = nil
	m.addstock = nil
}

// SetAttributes sets the "attributes" field.
func (m *ProductVariantMutation) SetAttributes(value map[string]string) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *ProductVariantMutation) Attributes() (r map[string]string, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldAttributes(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ClearAttributes clears the value of the "attributes" field.
func (m *ProductVariantMutation) ClearAttributes() {
	m.attributes = nil
	m.clearedFields[productvariant.FieldAttributes] = struct{}{}
}

// AttributesCleared returns if the "attributes" field was cleared in this mutation.
func (m *ProductVariantMutation) AttributesCleared() bool {
	_, ok := m.clearedFields[productvariant.FieldAttributes]
	return ok
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *ProductVariantMutation) ResetAttributes() {
	m.attributes = nil
	delete(m.clearedFields, productvariant.FieldAttributes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductVariantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductVariantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductVariantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductVariantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductVariantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProductVariant entity.
// If the ProductVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductVariantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductVariantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *ProductVariantMutation) ClearProduct() {
	m.clearedproduct = true
	m.clearedFields[productvariant.FieldProductID] = struct{}{}
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *ProductVariantMutation) ProductCleared() bool {
	return m.clearedproduct
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *ProductVariantMutation) ProductIDs() (ids []string) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *ProductVariantMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// Where appends a list predicates to the ProductVariantMutation builder.
func (m *ProductVariantMutation) Where(ps ...predicate.ProductVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductVariant).
func (m *ProductVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductVariantMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, productvariant.FieldTenantID)
	}
	if m.product != nil {
		fields = append(fields, productvariant.FieldProductID)
	}
	if m.label != nil {
		fields = append(fields, productvariant.FieldLabel)
	}
	if m.price_cents != nil {
		fields = append(fields, productvariant.FieldPriceCents)
	}
	if m.currency != nil {
		fields = append(fields, productvariant.FieldCurrency)
	}
	if m.stock != nil {
		fields = append(fields, productvariant.FieldStock)
	}
	if m.attributes != nil {
		fields = append(fields, productvariant.FieldAttributes)
	}
	if m.created_at != nil {
		fields = append(fields, productvariant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, productvariant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productvariant.FieldTenantID:
		return m.TenantID()
	case productvariant.FieldProductID:
		return m.ProductID()
	case productvariant.FieldLabel:
		return m.Label()
	case productvariant.FieldPriceCents:
		return m.PriceCents()
	case productvariant.FieldCurrency:
		return m.Currency()
	case productvariant.FieldStock:
		return m.Stock()
	case productvariant.FieldAttributes:
		return m.Attributes()
	case productvariant.FieldCreatedAt:
		return m.CreatedAt()
	case productvariant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productvariant.FieldTenantID:
		return m.OldTenantID(ctx)
	case productvariant.FieldProductID:
		return m.OldProductID(ctx)
	case productvariant.FieldLabel:
		return m.OldLabel(ctx)
	case productvariant.FieldPriceCents:
		return m.OldPriceCents(ctx)
	case productvariant.FieldCurrency:
		return m.OldCurrency(ctx)
	case productvariant.FieldStock:
		return m.OldStock(ctx)
	case productvariant.FieldAttributes:
		return m.OldAttributes(ctx)
	case productvariant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case productvariant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProductVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productvariant.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case productvariant.FieldProductID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case productvariant.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case productvariant.FieldPriceCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceCents(v)
		return nil
	case productvariant.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case productvariant.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStock(v)
		return nil
	case productvariant.FieldAttributes:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case productvariant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case productvariant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProductVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductVariantMutation) AddedFields() []string {
	var fields []string
	if m.addprice_cents != nil {
		fields = append(fields, productvariant.FieldPriceCents)
	}
	if m.addstock != nil {
		fields = append(fields, productvariant.FieldStock)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductVariantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case productvariant.FieldPriceCents:
		return m.AddedPriceCents()
	case productvariant.FieldStock:
		return m.AddedStock()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case productvariant.FieldPriceCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceCents(v)
		return nil
	case productvariant.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStock(v)
		return nil
	}
	return fmt.Errorf("unknown ProductVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productvariant.FieldAttributes) {
		fields = append(fields, productvariant.FieldAttributes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductVariantMutation) ClearField(name string) error {
	switch name {
	case productvariant.FieldAttributes:
		m.ClearAttributes()
		return nil
	}
	return fmt.Errorf("unknown ProductVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductVariantMutation) ResetField(name string) error {
	switch name {
	case productvariant.FieldTenantID:
		m.ResetTenantID()
		return nil
	case productvariant.FieldProductID:
		m.ResetProductID()
		return nil
	case productvariant.FieldLabel:
		m.ResetLabel()
		return nil
	case productvariant.FieldPriceCents:
		m.ResetPriceCents()
		return nil
	case productvariant.FieldCurrency:
		m.ResetCurrency()
		return nil
	case productvariant.FieldStock:
		m.ResetStock()
		return nil
	case productvariant.FieldAttributes:
		m.ResetAttributes()
		return nil
	case productvariant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case productvariant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.product != nil {
		edges = append(edges, productvariant.EdgeProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductVariantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case productvariant.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductVariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproduct {
		edges = append(edges, productvariant.EdgeProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductVariantMutation) EdgeCleared(name string) bool {
	switch name {
	case productvariant.EdgeProduct:
		return m.clearedproduct
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductVariantMutation) ClearEdge(name string) error {
	switch name {
	case productvariant.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown ProductVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductVariantMutation) ResetEdge(name string) error {
	switch name {
	case productvariant.EdgeProduct:
		m.ResetProduct()
		return nil
	}
	return fmt.Errorf("unknown ProductVariant edge %s", name)
}

// ReferenceContextMutation represents an operation that mutates the ReferenceContext nodes in the graph.
type ReferenceContextMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	list_type           *string
	items               *[]schema.ReferenceItem
	appenditems         []schema.ReferenceItem
	expires_at          *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*ReferenceContext, error)
	predicates          []predicate.ReferenceContext
}

var _ ent.Mutation = (*ReferenceContextMutation)(nil)

// referencecontextOption allows management of the mutation configuration using functional options.
type referencecontextOption func(*ReferenceContextMutation)

// newReferenceContextMutation creates new mutation for the ReferenceContext entity.
func newReferenceContextMutation(c config, op Op, opts ...referencecontextOption) *ReferenceContextMutation {
	m := &ReferenceContextMutation{
		config:        c,
		op:            op,
		typ:           TypeReferenceContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferenceContextID sets the ID field of the mutation.
func withReferenceContextID(id string) referencecontextOption {
	return func(m *ReferenceContextMutation) {
		var (
			err   error
			once  sync.Once
			value *ReferenceContext
		)
		m.oldValue = func(ctx context.Context) (*ReferenceContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReferenceContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferenceContext sets the old ReferenceContext of the mutation.
func withReferenceContext(node *ReferenceContext) referencecontextOption {
	return func(m *ReferenceContextMutation) {
		m.oldValue = func(context.Context) (*ReferenceContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferenceContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferenceContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReferenceContext entities.
func (m *ReferenceContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferenceContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferenceContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReferenceContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ReferenceContextMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ReferenceContextMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ReferenceContext entity.
// If the ReferenceContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceContextMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ReferenceContextMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *ReferenceContextMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ReferenceContextMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ReferenceContext entity.
// If the ReferenceContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceContextMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ReferenceContextMutation) ResetConversationID() {
	m.conversation = nil
}

// SetListType sets the "list_type" field.
func (m *ReferenceContextMutation) SetListType(s string) {
	m.list_type = &s
}

// ListType returns the value of the "list_type" field in the mutation.
func (m *ReferenceContextMutation) ListType() (r string, exists bool) {
	v := m.list_type
	if v == nil {
		return
	}
	return *v, true
}

// OldListType returns the old "list_type" field's value of the ReferenceContext entity.
// If the ReferenceContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceContextMutation) OldListType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListType: %w", err)
	}
	return oldValue.ListType, nil
}

// ResetListType resets all changes to the "list_type" field.
func (m *ReferenceContextMutation) ResetListType() {
	m.list_type = nil
}

// SetItems sets the "items" field.
func (m *ReferenceContextMutation) SetItems(si []schema.ReferenceItem) {
	m.items = &si
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *ReferenceContextMutation) Items() (r []schema.ReferenceItem, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the ReferenceContext entity.
// If the ReferenceContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceContextMutation) OldItems(ctx context.Context) (v []schema.ReferenceItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds si to the "items" field.
func (m *ReferenceContextMutation) AppendItems(si []schema.ReferenceItem) {
	m.appenditems = append(m.appenditems, si...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *ReferenceContextMutation) AppendedItems() ([]schema.ReferenceItem, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *ReferenceContextMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ReferenceContextMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ReferenceContextMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ReferenceContext entity.
// If the ReferenceContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceContextMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ReferenceContextMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferenceContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferenceContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReferenceContext entity.
// If the ReferenceContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferenceContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *ReferenceContextMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[referencecontext.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *ReferenceContextMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ReferenceContextMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ReferenceContextMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the ReferenceContextMutation builder.
func (m *ReferenceContextMutation) Where(ps ...predicate.ReferenceContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferenceContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferenceContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReferenceContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferenceContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferenceContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReferenceContext).
func (m *ReferenceContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferenceContextMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, referencecontext.FieldTenantID)
	}
	if m.conversation != nil {
		fields = append(fields, referencecontext.FieldConversationID)
	}
	if m.list_type != nil {
		fields = append(fields, referencecontext.FieldListType)
	}
	if m.items != nil {
		fields = append(fields, referencecontext.FieldItems)
	}
	if m.expires_at != nil {
		fields = append(fields, referencecontext.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, referencecontext.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferenceContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referencecontext.FieldTenantID:
		return m.TenantID()
	case referencecontext.FieldConversationID:
		return m.ConversationID()
	case referencecontext.FieldListType:
		return m.ListType()
	case referencecontext.FieldItems:
		return m.Items()
	case referencecontext.FieldExpiresAt:
		return m.ExpiresAt()
	case referencecontext.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferenceContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referencecontext.FieldTenantID:
		return m.OldTenantID(ctx)
	case referencecontext.FieldConversationID:
		return m.OldConversationID(ctx)
	case referencecontext.FieldListType:
		return m.OldListType(ctx)
	case referencecontext.FieldItems:
		return m.OldItems(ctx)
	case referencecontext.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case referencecontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReferenceContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferenceContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referencecontext.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case referencecontext.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case referencecontext.FieldListType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListType(v)
		return nil
	case referencecontext.FieldItems:
		v, ok := value.([]schema.ReferenceItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case referencecontext.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case referencecontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReferenceContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferenceContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferenceContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferenceContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReferenceContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferenceContextMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferenceContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferenceContextMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReferenceContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferenceContextMutation) ResetField(name string) error {
	switch name {
	case referencecontext.FieldTenantID:
		m.ResetTenantID()
		return nil
	case referencecontext.FieldConversationID:
		m.ResetConversationID()
		return nil
	case referencecontext.FieldListType:
		m.ResetListType()
		return nil
	case referencecontext.FieldItems:
		m.ResetItems()
		return nil
	case referencecontext.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case referencecontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReferenceContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferenceContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, referencecontext.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferenceContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case referencecontext.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferenceContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferenceContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferenceContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, referencecontext.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferenceContextMutation) EdgeCleared(name string) bool {
	switch name {
	case referencecontext.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferenceContextMutation) ClearEdge(name string) error {
	switch name {
	case referencecontext.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ReferenceContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferenceContextMutation) ResetEdge(name string) error {
	switch name {
	case referencecontext.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown ReferenceContext edge %s", name)
}

// RoleMutation represents an operation that mutates the Role nodes in the graph.
type RoleMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	is_system          *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	tenant             *string
	clearedtenant      bool
	permissions        map[string]struct{}
	removedpermissions map[string]struct{}
	clearedpermissions bool
	members            map[string]struct{}
	removedmembers     map[string]struct{}
	clearedmembers     bool
	done               bool
	oldValue           func(context.Context) (*Role, error)
	predicates         []predicate.Role
}

var _ ent.Mutation = (*RoleMutation)(nil)

// roleOption allows management of the mutation configuration using functional options.
type roleOption func(*RoleMutation)

// newRoleMutation creates new mutation for the Role entity.
func newRoleMutation(c config, op Op, opts ...roleOption) *RoleMutation {
	m := &RoleMutation{
		config:        c,
		op:            op,
		typ:           TypeRole,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoleID sets the ID field of the mutation.
func withRoleID(id string) roleOption {
	return func(m *RoleMutation) {
		var (
			err   error
			once  sync.Once
			value *Role
		)
		m.oldValue = func(ctx context.Context) (*Role, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Role.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRole sets the old Role of the mutation.
func withRole(node *Role) roleOption {
	return func(m *RoleMutation) {
		m.oldValue = func(context.Context) (*Role, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Role entities.
func (m *RoleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Role.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RoleMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RoleMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RoleMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *RoleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoleMutation) ResetName() {
	m.name = nil
}

// SetIsSystem sets the "is_system" field.
func (m *RoleMutation) SetIsSystem(b bool) {
	m.is_system = &b
}

// IsSystem returns the value of the "is_system" field in the mutation.
func (m *RoleMutation) IsSystem() (r bool, exists bool) {
	v := m.is_system
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSystem returns the old "is_system" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldIsSystem(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSystem: %w", err)
	}
	return oldValue.IsSystem, nil
}

// ResetIsSystem resets all changes to the "is_system" field.
func (m *RoleMutation) ResetIsSystem() {
	m.is_system = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *RoleMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[role.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *RoleMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *RoleMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *RoleMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddPermissionIDs adds the "permissions" edge to the Permission entity by ids.
func (m *RoleMutation) AddPermissionIDs(ids ...string) {
	if m.permissions == nil {
		m.permissions = make(map[string]struct{})
	}
	for i := range ids {
		m.permissions[ids[i]] = struct{}{}
	}
}

// ClearPermissions clears the "permissions" edge to the Permission entity.
func (m *RoleMutation) ClearPermissions() {
	m.clearedpermissions = true
}

// PermissionsCleared reports if the "permissions" edge to the Permission entity was cleared.
func (m *RoleMutation) PermissionsCleared() bool {
	return m.clearedpermissions
}

// RemovePermissionIDs removes the "permissions" edge to the Permission entity by IDs.
func (m *RoleMutation) RemovePermissionIDs(ids ...string) {
	if m.removedpermissions == nil {
		m.removedpermissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.permissions, ids[i])
		m.removedpermissions[ids[i]] = struct{}{}
	}
}

// RemovedPermissions returns the removed IDs of the "permissions" edge to the Permission entity.
func (m *RoleMutation) RemovedPermissionsIDs() (ids []string) {
	for id := range m.removedpermissions {
		ids = append(ids, id)
	}
	return
}

// PermissionsIDs returns the "permissions" edge IDs in the mutation.
func (m *RoleMutation) PermissionsIDs() (ids []string) {
	for id := range m.permissions {
		ids = append(ids, id)
	}
	return
}

// ResetPermissions resets all changes to the "permissions" edge.
func (m *RoleMutation) ResetPermissions() {
	m.permissions = nil
	m.clearedpermissions = false
	m.removedpermissions = nil
}

// AddMemberIDs adds the "members" edge to the TenantUser entity by ids.
func (m *RoleMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the TenantUser entity.
func (m *RoleMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the TenantUser entity was cleared.
func (m *RoleMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the TenantUser entity by IDs.
func (m *RoleMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the TenantUser entity.
func (m *RoleMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *RoleMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *RoleMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the RoleMutation builder.
func (m *RoleMutation) Where(ps ...predicate.Role) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Role, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Role).
func (m *RoleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoleMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant != nil {
		fields = append(fields, role.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, role.FieldName)
	}
	if m.is_system != nil {
		fields = append(fields, role.FieldIsSystem)
	}
	if m.created_at != nil {
		fields = append(fields, role.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case role.FieldTenantID:
		return m.TenantID()
	case role.FieldName:
		return m.Name()
	case role.FieldIsSystem:
		return m.IsSystem()
	case role.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case role.FieldTenantID:
		return m.OldTenantID(ctx)
	case role.FieldName:
		return m.OldName(ctx)
	case role.FieldIsSystem:
		return m.OldIsSystem(ctx)
	case role.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Role field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case role.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case role.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case role.FieldIsSystem:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSystem(v)
		return nil
	case role.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Role numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Role nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoleMutation) ResetField(name string) error {
	switch name {
	case role.FieldTenantID:
		m.ResetTenantID()
		return nil
	case role.FieldName:
		m.ResetName()
		return nil
	case role.FieldIsSystem:
		m.ResetIsSystem()
		return nil
	case role.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tenant != nil {
		edges = append(edges, role.EdgeTenant)
	}
	if m.permissions != nil {
		edges = append(edges, role.EdgePermissions)
	}
	if m.members != nil {
		edges = append(edges, role.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case role.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case role.EdgePermissions:
		ids := make([]ent.Value, 0, len(m.permissions))
		for id := range m.permissions {
			ids = append(ids, id)
		}
		return ids
	case role.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpermissions != nil {
		edges = append(edges, role.EdgePermissions)
	}
	if m.removedmembers != nil {
		edges = append(edges, role.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case role.EdgePermissions:
		ids := make([]ent.Value, 0, len(m.removedpermissions))
		for id := range m.removedpermissions {
			ids = append(ids, id)
		}
		return ids
	case role.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtenant {
		edges = append(edges, role.EdgeTenant)
	}
	if m.clearedpermissions {
		edges = append(edges, role.EdgePermissions)
	}
	if m.clearedmembers {
		edges = append(edges, role.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoleMutation) EdgeCleared(name string) bool {
	switch name {
	case role.EdgeTenant:
		return m.clearedtenant
	case role.EdgePermissions:
		return m.clearedpermissions
	case role.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoleMutation) ClearEdge(name string) error {
	switch name {
	case role.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Role unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoleMutation) ResetEdge(name string) error {
	switch name {
	case role.EdgeTenant:
		m.ResetTenant()
		return nil
	case role.EdgePermissions:
		m.ResetPermissions()
		return nil
	case role.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown Role edge %s", name)
}

// ScheduledMessageMutation represents an operation that mutates the ScheduledMessage nodes in the graph.
type ScheduledMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	customer_id        *string
	recipient_criteria *map[string]interface{}
	content            *string
	template_id        *string
	template_context   *map[string]string
	message_type       *scheduledmessage.MessageType
	scheduled_at       *time.Time
	status             *scheduledmessage.Status
	sent_message_id    *string
	failure_reason     *string
	appointment_id     *string
	claimed_by         *string
	claimed_at         *time.Time
	metadata           *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	tenant             *string
	clearedtenant      bool
	done               bool
	oldValue           func(context.Context) (*ScheduledMessage, error)
	predicates         []predicate.ScheduledMessage
}

var _ ent.Mutation = (*ScheduledMessageMutation)(nil)

// scheduledmessageOption allows management of the mutation configuration using functional options.
type scheduledmessageOption func(*ScheduledMessageMutation)

// newScheduledMessageMutation creates new mutation for the ScheduledMessage entity.
func newScheduledMessageMutation(c config, op Op, opts ...scheduledmessageOption) *ScheduledMessageMutation {
	m := &ScheduledMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledMessageID sets the ID field of the mutation.
func withScheduledMessageID(id string) scheduledmessageOption {
	return func(m *ScheduledMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledMessage
		)
		m.oldValue = func(ctx context.Context) (*ScheduledMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledMessage sets the old ScheduledMessage of the mutation.
func withScheduledMessage(node *ScheduledMessage) scheduledmessageOption {
	return func(m *ScheduledMessageMutation) {
		m.oldValue = func(context.Context) (*ScheduledMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledMessage entities.
func (m *ScheduledMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ScheduledMessageMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ScheduledMessageMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ScheduledMessageMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *ScheduledMessageMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *ScheduledMessageMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ClearCustomerID clears the value of the "customer_id" field.
func (m *ScheduledMessageMutation) ClearCustomerID() {
	m.customer_id = nil
	m.clearedFields[scheduledmessage.FieldCustomerID] = struct{}{}
}

// CustomerIDCleared returns if the "customer_id" field was cleared in this mutation.
func (m *ScheduledMessageMutation) CustomerIDCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldCustomerID]
	return ok
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *ScheduledMessageMutation) ResetCustomerID() {
	m.customer_id = nil
	delete(m.clearedFields, scheduledmessage.FieldCustomerID)
}

// SetRecipientCriteria sets the "recipient_criteria" field.
func (m *ScheduledMessageMutation) SetRecipientCriteria(value map[string]interface{}) {
	m.recipient_criteria = &value
}

// RecipientCriteria returns the value of the "recipient_criteria" field in the mutation.
func (m *ScheduledMessageMutation) RecipientCriteria() (r map[string]interface{}, exists bool) {
	v := m.recipient_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientCriteria returns the old "recipient_criteria" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldRecipientCriteria(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientCriteria: %w", err)
	}
	return oldValue.RecipientCriteria, nil
}

// ClearRecipientCriteria clears the value of the "recipient_criteria" field.
func (m *ScheduledMessageMutation) ClearRecipientCriteria() {
	m.recipient_criteria = nil
	m.clearedFields[scheduledmessage.FieldRecipientCriteria] = struct{}{}
}

// RecipientCriteriaCleared returns if the "recipient_criteria" field was cleared in this mutation.
func (m *ScheduledMessageMutation) RecipientCriteriaCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldRecipientCriteria]
	return ok
}

// ResetRecipientCriteria resets all changes to the "recipient_criteria" field.
func (m *ScheduledMessageMutation) ResetRecipientCriteria() {
	m.recipient_criteria = nil
	delete(m.clearedFields, scheduledmessage.FieldRecipientCriteria)
}

// SetContent sets the "content" field.
func (m *ScheduledMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ScheduledMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *ScheduledMessageMutation) ClearContent() {
	m.content = nil
	m.clearedFields[scheduledmessage.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *ScheduledMessageMutation) ContentCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *ScheduledMessageMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, scheduledmessage.FieldContent)
}

// SetTemplateID sets the "template_id" field.
func (m *ScheduledMessageMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ScheduledMessageMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldTemplateID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *ScheduledMessageMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[scheduledmessage.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *ScheduledMessageMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ScheduledMessageMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, scheduledmessage.FieldTemplateID)
}

// SetTemplateContext sets the "template_context" field.
func (m *ScheduledMessageMutation) SetTemplateContext(value map[string]string) {
	m.template_context = &value
}

// TemplateContext returns the value of the "template_context" field in the mutation.
func (m *ScheduledMessageMutation) TemplateContext() (r map[string]string, exists bool) {
	v := m.template_context
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateContext returns the old "template_context" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldTemplateContext(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateContext: %w", err)
	}
	return oldValue.TemplateContext, nil
}

// ClearTemplateContext clears the value of the "template_context" field.
func (m *ScheduledMessageMutation) ClearTemplateContext() {
	m.template_context = nil
	m.clearedFields[scheduledmessage.FieldTemplateContext] = struct{}{}
}

// TemplateContextCleared returns if the "template_context" field was cleared in this mutation.
func (m *ScheduledMessageMutation) TemplateContextCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldTemplateContext]
	return ok
}

// ResetTemplateContext resets all changes to the "template_context" field.
func (m *ScheduledMessageMutation) ResetTemplateContext() {
	m.template_context = nil
	delete(m.clearedFields, scheduledmessage.FieldTemplateContext)
}

// SetMessageType sets the "message_type" field.
func (m *ScheduledMessageMutation) SetMessageType(st scheduledmessage.MessageType) {
	m.message_type = &st
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *ScheduledMessageMutation) MessageType() (r scheduledmessage.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldMessageType(ctx context.Context) (v scheduledmessage.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *ScheduledMessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *ScheduledMessageMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *ScheduledMessageMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *ScheduledMessageMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledMessageMutation) SetStatus(s scheduledmessage.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledMessageMutation) Status() (r scheduledmessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldStatus(ctx context.Context) (v scheduledmessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledMessageMutation) ResetStatus() {
	m.status = nil
}

// SetSentMessageID sets the "sent_message_id" field.
func (m *ScheduledMessageMutation) SetSentMessageID(s string) {
	m.sent_message_id = &s
}

// SentMessageID returns the value of the "sent_message_id" field in the mutation.
func (m *ScheduledMessageMutation) SentMessageID() (r string, exists bool) {
	v := m.sent_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSentMessageID returns the old "sent_message_id" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldSentMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentMessageID: %w", err)
	}
	return oldValue.SentMessageID, nil
}

// ClearSentMessageID clears the value of the "sent_message_id" field.
func (m *ScheduledMessageMutation) ClearSentMessageID() {
	m.sent_message_id = nil
	m.clearedFields[scheduledmessage.FieldSentMessageID] = struct{}{}
}

// SentMessageIDCleared returns if the "sent_message_id" field was cleared in this mutation.
func (m *ScheduledMessageMutation) SentMessageIDCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldSentMessageID]
	return ok
}

// ResetSentMessageID resets all changes to the "sent_message_id" field.
func (m *ScheduledMessageMutation) ResetSentMessageID() {
	m.sent_message_id = nil
	delete(m.clearedFields, scheduledmessage.FieldSentMessageID)
}

// SetFailureReason sets the "failure_reason" field.
func (m *ScheduledMessageMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *ScheduledMessageMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *ScheduledMessageMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[scheduledmessage.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *ScheduledMessageMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *ScheduledMessageMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, scheduledmessage.FieldFailureReason)
}

// SetAppointmentID sets the "appointment_id" field.
func (m *ScheduledMessageMutation) SetAppointmentID(s string) {
	m.appointment_id = &s
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *ScheduledMessageMutation) AppointmentID() (r string, exists bool) {
	v := m.appointment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldAppointmentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (m *ScheduledMessageMutation) ClearAppointmentID() {
	m.appointment_id = nil
	m.clearedFields[scheduledmessage.FieldAppointmentID] = struct{}{}
}

// AppointmentIDCleared returns if the "appointment_id" field was cleared in this mutation.
func (m *ScheduledMessageMutation) AppointmentIDCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldAppointmentID]
	return ok
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *ScheduledMessageMutation) ResetAppointmentID() {
	m.appointment_id = nil
	delete(m.clearedFields, scheduledmessage.FieldAppointmentID)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *ScheduledMessageMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *ScheduledMessageMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *ScheduledMessageMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[scheduledmessage.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *ScheduledMessageMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *ScheduledMessageMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, scheduledmessage.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *ScheduledMessageMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *ScheduledMessageMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *ScheduledMessageMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[scheduledmessage.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *ScheduledMessageMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *ScheduledMessageMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, scheduledmessage.FieldClaimedAt)
}

// SetMetadata sets the "metadata" field.
func (m *ScheduledMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ScheduledMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ScheduledMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[scheduledmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ScheduledMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[scheduledmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ScheduledMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, scheduledmessage.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduledMessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduledMessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduledMessage entity.
// If the ScheduledMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledMessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduledMessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *ScheduledMessageMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[scheduledmessage.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *ScheduledMessageMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *ScheduledMessageMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *ScheduledMessageMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the ScheduledMessageMutation builder.
func (m *ScheduledMessageMutation) Where(ps ...predicate.ScheduledMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledMessage).
func (m *ScheduledMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledMessageMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant != nil {
		fields = append(fields, scheduledmessage.FieldTenantID)
	}
	if m.customer_id != nil {
		fields = append(fields, scheduledmessage.FieldCustomerID)
	}
	if m.recipient_criteria != nil {
		fields = append(fields, scheduledmessage.FieldRecipientCriteria)
	}
	if m.content != nil {
		fields = append(fields, scheduledmessage.FieldContent)
	}
	if m.template_id != nil {
		fields = append(fields, scheduledmessage.FieldTemplateID)
	}
	if m.template_context != nil {
		fields = append(fields, scheduledmessage.FieldTemplateContext)
	}
	if m.message_type != nil {
		fields = append(fields, scheduledmessage.FieldMessageType)
	}
	if m.scheduled_at != nil {
		fields = append(fields, scheduledmessage.FieldScheduledAt)
	}
	if m.status != nil {
		fields = append(fields, scheduledmessage.FieldStatus)
	}
	if m.sent_message_id != nil {
		fields = append(fields, scheduledmessage.FieldSentMessageID)
	}
	if m.failure_reason != nil {
		fields = append(fields, scheduledmessage.FieldFailureReason)
	}
	if m.appointment_id != nil {
		fields = append(fields, scheduledmessage.FieldAppointmentID)
	}
	if m.claimed_by != nil {
		fields = append(fields, scheduledmessage.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, scheduledmessage.FieldClaimedAt)
	}
	if m.metadata != nil {
		fields = append(fields, scheduledmessage.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledmessage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduledmessage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledmessage.FieldTenantID:
		return m.TenantID()
	case scheduledmessage.FieldCustomerID:
		return m.CustomerID()
	case scheduledmessage.FieldRecipientCriteria:
		return m.RecipientCriteria()
	case scheduledmessage.FieldContent:
		return m.Content()
	case scheduledmessage.FieldTemplateID:
		return m.TemplateID()
	case scheduledmessage.FieldTemplateContext:
		return m.TemplateContext()
	case scheduledmessage.FieldMessageType:
		return m.MessageType()
	case scheduledmessage.FieldScheduledAt:
		return m.ScheduledAt()
	case scheduledmessage.FieldStatus:
		return m.Status()
	case scheduledmessage.FieldSentMessageID:
		return m.SentMessageID()
	case scheduledmessage.FieldFailureReason:
		return m.FailureReason()
	case scheduledmessage.FieldAppointmentID:
		return m.AppointmentID()
	case scheduledmessage.FieldClaimedBy:
		return m.ClaimedBy()
	case scheduledmessage.FieldClaimedAt:
		return m.ClaimedAt()
	case scheduledmessage.FieldMetadata:
		return m.Metadata()
	case scheduledmessage.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledmessage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledmessage.FieldTenantID:
		return m.OldTenantID(ctx)
	case scheduledmessage.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case scheduledmessage.FieldRecipientCriteria:
		return m.OldRecipientCriteria(ctx)
	case scheduledmessage.FieldContent:
		return m.OldContent(ctx)
	case scheduledmessage.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case scheduledmessage.FieldTemplateContext:
		return m.OldTemplateContext(ctx)
	case scheduledmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case scheduledmessage.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case scheduledmessage.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledmessage.FieldSentMessageID:
		return m.OldSentMessageID(ctx)
	case scheduledmessage.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case scheduledmessage.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case scheduledmessage.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case scheduledmessage.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case scheduledmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case scheduledmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledmessage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledmessage.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case scheduledmessage.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case scheduledmessage.FieldRecipientCriteria:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientCriteria(v)
		return nil
	case scheduledmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case scheduledmessage.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case scheduledmessage.FieldTemplateContext:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateContext(v)
		return nil
	case scheduledmessage.FieldMessageType:
		v, ok := value.(scheduledmessage.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case scheduledmessage.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case scheduledmessage.FieldStatus:
		v, ok := value.(scheduledmessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledmessage.FieldSentMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentMessageID(v)
		return nil
	case scheduledmessage.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case scheduledmessage.FieldAppointmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case scheduledmessage.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case scheduledmessage.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case scheduledmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case scheduledmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledmessage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledmessage.FieldCustomerID) {
		fields = append(fields, scheduledmessage.FieldCustomerID)
	}
	if m.FieldCleared(scheduledmessage.FieldRecipientCriteria) {
		fields = append(fields, scheduledmessage.FieldRecipientCriteria)
	}
	if m.FieldCleared(scheduledmessage.FieldContent) {
		fields = append(fields, scheduledmessage.FieldContent)
	}
	if m.FieldCleared(scheduledmessage.FieldTemplateID) {
		fields = append(fields, scheduledmessage.FieldTemplateID)
	}
	if m.FieldCleared(scheduledmessage.FieldTemplateContext) {
		fields = append(fields, scheduledmessage.FieldTemplateContext)
	}
	if m.FieldCleared(scheduledmessage.FieldSentMessageID) {
		fields = append(fields, scheduledmessage.FieldSentMessageID)
	}
	if m.FieldCleared(scheduledmessage.FieldFailureReason) {
		fields = append(fields, scheduledmessage.FieldFailureReason)
	}
	if m.FieldCleared(scheduledmessage.FieldAppointmentID) {
		fields = append(fields, scheduledmessage.FieldAppointmentID)
	}
	if m.FieldCleared(scheduledmessage.FieldClaimedBy) {
		fields = append(fields, scheduledmessage.FieldClaimedBy)
	}
	if m.FieldCleared(scheduledmessage.FieldClaimedAt) {
		fields = append(fields, scheduledmessage.FieldClaimedAt)
	}
	if m.FieldCleared(scheduledmessage.FieldMetadata) {
		fields = append(fields, scheduledmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledMessageMutation) ClearField(name string) error {
	switch name {
	case scheduledmessage.FieldCustomerID:
		m.ClearCustomerID()
		return nil
	case scheduledmessage.FieldRecipientCriteria:
		m.ClearRecipientCriteria()
		return nil
	case scheduledmessage.FieldContent:
		m.ClearContent()
		return nil
	case scheduledmessage.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case scheduledmessage.FieldTemplateContext:
		m.ClearTemplateContext()
		return nil
	case scheduledmessage.FieldSentMessageID:
		m.ClearSentMessageID()
		return nil
	case scheduledmessage.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case scheduledmessage.FieldAppointmentID:
		m.ClearAppointmentID()
		return nil
	case scheduledmessage.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case scheduledmessage.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case scheduledmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ScheduledMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledMessageMutation) ResetField(name string) error {
	switch name {
	case scheduledmessage.FieldTenantID:
		m.ResetTenantID()
		return nil
	case scheduledmessage.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case scheduledmessage.FieldRecipientCriteria:
		m.ResetRecipientCriteria()
		return nil
	case scheduledmessage.FieldContent:
		m.ResetContent()
		return nil
	case scheduledmessage.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case scheduledmessage.FieldTemplateContext:
		m.ResetTemplateContext()
		return nil
	case scheduledmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case scheduledmessage.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case scheduledmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledmessage.FieldSentMessageID:
		m.ResetSentMessageID()
		return nil
	case scheduledmessage.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case scheduledmessage.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case scheduledmessage.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case scheduledmessage.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case scheduledmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case scheduledmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledmessage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, scheduledmessage.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledmessage.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, scheduledmessage.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledmessage.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledMessageMutation) ClearEdge(name string) error {
	switch name {
	case scheduledmessage.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown ScheduledMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledMessageMutation) ResetEdge(name string) error {
	switch name {
	case scheduledmessage.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown ScheduledMessage edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	slug                      *string
	status                    *tenant.Status
	trial_ends_at             *time.Time
	subscription_tier         *string
	whatsapp_number           *string
	timezone                  *string
	quiet_hours_start         *int
	addquiet_hours_start      *int
	quiet_hours_end           *int
	addquiet_hours_end        *int
	api_keys                  *[]schema.APIKey
	appendapi_keys            []schema.APIKey
	allowed_origins           *[]string
	appendallowed_origins     []string
	created_at                *time.Time
	updated_at                *time.Time
	deleted_at                *time.Time
	clearedFields             map[string]struct{}
	settings                  *string
	clearedsettings           bool
	memberships               map[string]struct{}
	removedmemberships        map[string]struct{}
	clearedmemberships        bool
	roles                     map[string]struct{}
	removedroles              map[string]struct{}
	clearedroles              bool
	customers                 map[string]struct{}
	removedcustomers          map[string]struct{}
	clearedcustomers          bool
	conversations             map[string]struct{}
	removedconversations      map[string]struct{}
	clearedconversations      bool
	products                  map[string]struct{}
	removedproducts           map[string]struct{}
	clearedproducts           bool
	knowledge_entries         map[string]struct{}
	removedknowledge_entries  map[string]struct{}
	clearedknowledge_entries  bool
	orders                    map[string]struct{}
	removedorders             map[string]struct{}
	clearedorders             bool
	scheduled_messages        map[string]struct{}
	removedscheduled_messages map[string]struct{}
	clearedscheduled_messages bool
	templates                 map[string]struct{}
	removedtemplates          map[string]struct{}
	clearedtemplates          bool
	campaigns                 map[string]struct{}
	removedcampaigns          map[string]struct{}
	clearedcampaigns          bool
	appointments              map[string]struct{}
	removedappointments       map[string]struct{}
	clearedappointments       bool
	withdrawals               map[string]struct{}
	removedwithdrawals        map[string]struct{}
	clearedwithdrawals        bool
	audit_logs                map[string]struct{}
	removedaudit_logs         map[string]struct{}
	clearedaudit_logs         bool
	done                      bool
	oldValue                  func(context.Context) (*Tenant, error)
	predicates                []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *TenantMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TenantMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TenantMutation) ResetSlug() {
	m.slug = nil
}

// SetStatus sets the "status" field.
func (m *TenantMutation) SetStatus(t tenant.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TenantMutation) Status() (r tenant.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldStatus(ctx context.Context) (v tenant.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TenantMutation) ResetStatus() {
	m.status = nil
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (m *TenantMutation) SetTrialEndsAt(t time.Time) {
	m.trial_ends_at = &t
}

// TrialEndsAt returns the value of the "trial_ends_at" field in the mutation.
func (m *TenantMutation) TrialEndsAt() (r time.Time, exists bool) {
	v := m.trial_ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialEndsAt returns the old "trial_ends_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldTrialEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialEndsAt: %w", err)
	}
	return oldValue.TrialEndsAt, nil
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (m *TenantMutation) ClearTrialEndsAt() {
	m.trial_ends_at = nil
	m.clearedFields[tenant.FieldTrialEndsAt] = struct{}{}
}

// TrialEndsAtCleared returns if the "trial_ends_at" field was cleared in this mutation.
func (m *TenantMutation) TrialEndsAtCleared() bool {
	_, ok := m.clearedFields[tenant.FieldTrialEndsAt]
	return ok
}

// ResetTrialEndsAt resets all changes to the "trial_ends_at" field.
func (m *TenantMutation) ResetTrialEndsAt() {
	m.trial_ends_at = nil
	delete(m.clearedFields, tenant.FieldTrialEndsAt)
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (m *TenantMutation) SetSubscriptionTier(s string) {
	m.subscription_tier = &s
}

// SubscriptionTier returns the value of the "subscription_tier" field in the mutation.
func (m *TenantMutation) SubscriptionTier() (r string, exists bool) {
	v := m.subscription_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionTier returns the old "subscription_tier" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSubscriptionTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionTier: %w", err)
	}
	return oldValue.SubscriptionTier, nil
}

// ResetSubscriptionTier resets all changes to the "subscription_tier" field.
func (m *TenantMutation) ResetSubscriptionTier() {
	m.subscription_tier = nil
}

// SetWhatsappNumber sets the "whatsapp_number" field.
func (m *TenantMutation) SetWhatsappNumber(s string) {
	m.whatsapp_number = &s
}

// WhatsappNumber returns the value of the "whatsapp_number" field in the mutation.
func (m *TenantMutation) WhatsappNumber() (r string, exists bool) {
	v := m.whatsapp_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatsappNumber returns the old "whatsapp_number" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldWhatsappNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatsappNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatsappNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatsappNumber: %w", err)
	}
	return oldValue.WhatsappNumber, nil
}

// ClearWhatsappNumber clears the value of the "whatsapp_number" field.
func (m *TenantMutation) ClearWhatsappNumber() {
	m.whatsapp_number = nil
	m.clearedFields[tenant.FieldWhatsappNumber] = struct{}{}
}

// WhatsappNumberCleared returns if the "whatsapp_number" field was cleared in this mutation.
func (m *TenantMutation) WhatsappNumberCleared() bool {
	_, ok := m.clearedFields[tenant.FieldWhatsappNumber]
	return ok
}

// ResetWhatsappNumber resets all changes to the "whatsapp_number" field.
func (m *TenantMutation) ResetWhatsappNumber() {
	m.whatsapp_number = nil
	delete(m.clearedFields, tenant.FieldWhatsappNumber)
}

// SetTimezone sets the "timezone" field.
func (m *TenantMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *TenantMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *TenantMutation) ResetTimezone() {
	m.timezone = nil
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (m *TenantMutation) SetQuietHoursStart(i int) {
	m.quiet_hours_start = &i
	m.addquiet_hours_start = nil
}

// QuietHoursStart returns the value of the "quiet_hours_start" field in the mutation.
func (m *TenantMutation) QuietHoursStart() (r int, exists bool) {
	v := m.quiet_hours_start
	if v == nil {
		return
	}
	return *v, true
}

// OldQuietHoursStart returns the old "quiet_hours_start" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldQuietHoursStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuietHoursStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuietHoursStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuietHoursStart: %w", err)
	}
	return oldValue.QuietHoursStart, nil
}

// AddQuietHoursStart adds i to the "quiet_hours_start" field.
func (m *TenantMutation) AddQuietHoursStart(i int) {
	if m.addquiet_hours_start != nil {
		*m.addquiet_hours_start += i
	} else {
		m.addquiet_hours_start = &i
	}
}

// AddedQuietHoursStart returns the value that was added to the "quiet_hours_start" field in this mutation.
func (m *TenantMutation) AddedQuietHoursStart() (r int, exists bool) {
	v := m.addquiet_hours_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuietHoursStart resets all changes to the "quiet_hours_start" field.
func (m *TenantMutation) ResetQuietHoursStart() {
	m.quiet_hours_start = nil
	m.addquiet_hours_start = nil
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (m *TenantMutation) SetQuietHoursEnd(i int) {
	m.quiet_hours_end = &i
	m.addquiet_hours_end = nil
}

// QuietHoursEnd returns the value of the "quiet_hours_end" field in the mutation.
func (m *TenantMutation) QuietHoursEnd() (r int, exists bool) {
	v := m.quiet_hours_end
	if v == nil {
		return
	}
	return *v, true
}

// OldQuietHoursEnd returns the old "quiet_hours_end" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldQuietHoursEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuietHoursEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuietHoursEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuietHoursEnd: %w", err)
	}
	return oldValue.QuietHoursEnd, nil
}

// AddQuietHoursEnd adds i to the "quiet_hours_end" field.
func (m *TenantMutation) AddQuietHoursEnd(i int) {
	if m.addquiet_hours_end != nil {
		*m.addquiet_hours_end += i
	} else {
		m.addquiet_hours_end = &i
	}
}

// AddedQuietHoursEnd returns the value that was added to the "quiet_hours_end" field in this mutation.
func (m *TenantMutation) AddedQuietHoursEnd() (r int, exists bool) {
	v := m.addquiet_hours_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuietHoursEnd resets all changes to the "quiet_hours_end" field.
func (m *TenantMutation) ResetQuietHoursEnd() {
	m.quiet_hours_end = nil
	m.addquiet_hours_end = nil
}

// SetAPIKeys sets the "api_keys" field.
func (m *TenantMutation) SetAPIKeys(sk []schema.APIKey) {
	m.api_keys = &sk
	m.appendapi_keys = nil
}

// APIKeys returns the value of the "api_keys" field in the mutation.
func (m *TenantMutation) APIKeys() (r []schema.APIKey, exists bool) {
	v := m.api_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeys returns the old "api_keys" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldAPIKeys(ctx context.Context) (v []schema.APIKey, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeys: %w", err)
	}
	return oldValue.APIKeys, nil
}

// AppendAPIKeys adds sk to the "api_keys" field.
func (m *TenantMutation) AppendAPIKeys(sk []schema.APIKey) {
	m.appendapi_keys = append(m.appendapi_keys, sk...)
}

// AppendedAPIKeys returns the list of values that were appended to the "api_keys" field in this mutation.
func (m *TenantMutation) AppendedAPIKeys() ([]schema.APIKey, bool) {
	if len(m.appendapi_keys) == 0 {
		return nil, false
	}
	return m.appendapi_keys, true
}

// ClearAPIKeys clears the value of the "api_keys" field.
func (m *TenantMutation) ClearAPIKeys() {
	m.api_keys = nil
	m.appendapi_keys = nil
	m.clearedFields[tenant.FieldAPIKeys] = struct{}{}
}

// APIKeysCleared returns if the "api_keys" field was cleared in this mutation.
func (m *TenantMutation) APIKeysCleared() bool {
	_, ok := m.clearedFields[tenant.FieldAPIKeys]
	return ok
}

// ResetAPIKeys resets all changes to the "api_keys" field.
func (m *TenantMutation) ResetAPIKeys() {
	m.api_keys = nil
	m.appendapi_keys = nil
	delete(m.clearedFields, tenant.FieldAPIKeys)
}

// SetAllowedOrigins sets the "allowed_origins" field.
func (m *TenantMutation) SetAllowedOrigins(s []string) {
	m.allowed_origins = &s
	m.appendallowed_origins = nil
}

// AllowedOrigins returns the value of the "allowed_origins" field in the mutation.
func (m *TenantMutation) AllowedOrigins() (r []string, exists bool) {
	v := m.allowed_origins
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedOrigins returns the old "allowed_origins" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldAllowedOrigins(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedOrigins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedOrigins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedOrigins: %w", err)
	}
	return oldValue.AllowedOrigins, nil
}

// AppendAllowedOrigins adds s to the "allowed_origins" field.
func (m *TenantMutation) AppendAllowedOrigins(s []string) {
	m.appendallowed_origins = append(m.appendallowed_origins, s...)
}

// AppendedAllowedOrigins returns the list of values that were appended to the "allowed_origins" field in this mutation.
func (m *TenantMutation) AppendedAllowedOrigins() ([]string, bool) {
	if len(m.appendallowed_origins) == 0 {
		return nil, false
	}
	return m.appendallowed_origins, true
}

// ClearAllowedOrigins clears the value of the "allowed_origins" field.
func (m *TenantMutation) ClearAllowedOrigins() {
	m.allowed_origins = nil
	m.appendallowed_origins = nil
	m.clearedFields[tenant.FieldAllowedOrigins] = struct{}{}
}

// AllowedOriginsCleared returns if the "allowed_origins" field was cleared in this mutation.
func (m *TenantMutation) AllowedOriginsCleared() bool {
	_, ok := m.clearedFields[tenant.FieldAllowedOrigins]
	return ok
}

// ResetAllowedOrigins resets all changes to the "allowed_origins" field.
func (m *TenantMutation) ResetAllowedOrigins() {
	m.allowed_origins = nil
	m.appendallowed_origins = nil
	delete(m.clearedFields, tenant.FieldAllowedOrigins)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TenantMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TenantMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TenantMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[tenant.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TenantMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[tenant.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TenantMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, tenant.FieldDeletedAt)
}

// SetSettingsID sets the "settings" edge to the TenantSettings entity by id.
func (m *TenantMutation) SetSettingsID(id string) {
	m.settings = &id
}

// ClearSettings clears the "settings" edge to the TenantSettings entity.
func (m *TenantMutation) ClearSettings() {
	m.clearedsettings = true
}

// SettingsCleared reports if the "settings" edge to the TenantSettings entity was cleared.
func (m *TenantMutation) SettingsCleared() bool {
	return m.clearedsettings
}

// SettingsID returns the "settings" edge ID in the mutation.
func (m *TenantMutation) SettingsID() (id string, exists bool) {
	if m.settings != nil {
		return *m.settings, true
	}
	return
}

// SettingsIDs returns the "settings" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SettingsID instead. It exists only for internal usage by the builders.
func (m *TenantMutation) SettingsIDs() (ids []string) {
	if id := m.settings; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSettings resets all changes to the "settings" edge.
func (m *TenantMutation) ResetSettings() {
	m.settings = nil
	m.clearedsettings = false
}

// AddMembershipIDs adds the "memberships" edge to the TenantUser entity by ids.
func (m *TenantMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the TenantUser entity.
func (m *TenantMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the TenantUser entity was cleared.
func (m *TenantMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the TenantUser entity by IDs.
func (m *TenantMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the TenantUser entity.
func (m *TenantMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *TenantMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *TenantMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// AddRoleIDs adds the "roles" edge to the Role entity by ids.
func (m *TenantMutation) AddRoleIDs(ids ...string) {
	if m.roles == nil {
		m.roles = make(map[string]struct{})
	}
	for i := range ids {
		m.roles[ids[i]] = struct{}{}
	}
}

// ClearRoles clears the "roles" edge to the Role entity.
func (m *TenantMutation) ClearRoles() {
	m.clearedroles = true
}

// RolesCleared reports if the "roles" edge to the Role entity was cleared.
func (m *TenantMutation) RolesCleared() bool {
	return m.clearedroles
}

// RemoveRoleIDs removes the "roles" edge to the Role entity by IDs.
func (m *TenantMutation) RemoveRoleIDs(ids ...string) {
	if m.removedroles == nil {
		m.removedroles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.roles, ids[i])
		m.removedroles[ids[i]] = struct{}{}
	}
}

// RemovedRoles returns the removed IDs of the "roles" edge to the Role entity.
func (m *TenantMutation) RemovedRolesIDs() (ids []string) {
	for id := range m.removedroles {
		ids = append(ids, id)
	}
	return
}

// RolesIDs returns the "roles" edge IDs in the mutation.
func (m *TenantMutation) RolesIDs() (ids []string) {
	for id := range m.roles {
		ids = append(ids, id)
	}
	return
}

// ResetRoles resets all changes to the "roles" edge.
func (m *TenantMutation) ResetRoles() {
	m.roles = nil
	m.clearedroles = false
	m.removedroles = nil
}

// AddCustomerIDs adds the "customers" edge to the Customer entity by ids.
func (m *TenantMutation) AddCustomerIDs(ids ...string) {
	if m.customers == nil {
		m.customers = make(map[string]struct{})
	}
	for i := range ids {
		m.customers[ids[i]] = struct{}{}
	}
}

// ClearCustomers clears the "customers" edge to the Customer entity.
func (m *TenantMutation) ClearCustomers() {
	m.clearedcustomers = true
}

// CustomersCleared reports if the "customers" edge to the Customer entity was cleared.
func (m *TenantMutation) CustomersCleared() bool {
	return m.clearedcustomers
}

// RemoveCustomerIDs removes the "customers" edge to the Customer entity by IDs.
func (m *TenantMutation) RemoveCustomerIDs(ids ...string) {
	if m.removedcustomers == nil {
		m.removedcustomers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.customers, ids[i])
		m.removedcustomers[ids[i]] = struct{}{}
	}
}

// RemovedCustomers returns the removed IDs of the "customers" edge to the Customer entity.
func (m *TenantMutation) RemovedCustomersIDs() (ids []string) {
	for id := range m.removedcustomers {
		ids = append(ids, id)
	}
	return
}

// CustomersIDs returns the "customers" edge IDs in the mutation.
func (m *TenantMutation) CustomersIDs() (ids []string) {
	for id := range m.customers {
		ids = append(ids, id)
	}
	return
}

// ResetCustomers resets all changes to the "customers" edge.
func (m *TenantMutation) ResetCustomers() {
	m.customers = nil
	m.clearedcustomers = false
	m.removedcustomers = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *TenantMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *TenantMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *TenantMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *TenantMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *TenantMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *TenantMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *TenantMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// AddProductIDs adds the "products" edge to the Product entity by ids.
func (m *TenantMutation) AddProductIDs(ids ...string) {
	if m.products == nil {
		m.products = make(map[string]struct{})
	}
	for i := range ids {
		m.products[ids[i]] = struct{}{}
	}
}

// ClearProducts clears the "products" edge to the Product entity.
func (m *TenantMutation) ClearProducts() {
	m.clearedproducts = true
}

// ProductsCleared reports if the "products" edge to the Product entity was cleared.
func (m *TenantMutation) ProductsCleared() bool {
	return m.clearedproducts
}

// RemoveProductIDs removes the "products" edge to the Product entity by IDs.
func (m *TenantMutation) RemoveProductIDs(ids ...string) {
	if m.removedproducts == nil {
		m.removedproducts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.products, ids[i])
		m.removedproducts[ids[i]] = struct{}{}
	}
}

// RemovedProducts returns the removed IDs of the "products" edge to the Product entity.
func (m *TenantMutation) RemovedProductsIDs() (ids []string) {
	for id := range m.removedproducts {
		ids = append(ids, id)
	}
	return
}

// ProductsIDs returns the "products" edge IDs in the mutation.
func (m *TenantMutation) ProductsIDs() (ids []string) {
	for id := range m.products {
		ids = append(ids, id)
	}
	return
}

// ResetProducts resets all changes to the "products" edge.
func (m *TenantMutation) ResetProducts() {
	m.products = nil
	m.clearedproducts = false
	m.removedproducts = nil
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeEntry entity by ids.
func (m *TenantMutation) AddKnowledgeEntryIDs(ids ...string) {
	if m.knowledge_entries == nil {
		m.knowledge_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge_entries[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeEntries clears the "knowledge_entries" edge to the KnowledgeEntry entity.
func (m *TenantMutation) ClearKnowledgeEntries() {
	m.clearedknowledge_entries = true
}

// KnowledgeEntriesCleared reports if the "knowledge_entries" edge to the KnowledgeEntry entity was cleared.
func (m *TenantMutation) KnowledgeEntriesCleared() bool {
	return m.clearedknowledge_entries
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to the KnowledgeEntry entity by IDs.
func (m *TenantMutation) RemoveKnowledgeEntryIDs(ids ...string) {
	if m.removedknowledge_entries == nil {
		m.removedknowledge_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge_entries, ids[i])
		m.removedknowledge_entries[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeEntries returns the removed IDs of the "knowledge_entries" edge to the KnowledgeEntry entity.
func (m *TenantMutation) RemovedKnowledgeEntriesIDs() (ids []string) {
	for id := range m.removedknowledge_entries {
		ids = append(ids, id)
	}
	return
}

// KnowledgeEntriesIDs returns the "knowledge_entries" edge IDs in the mutation.
func (m *TenantMutation) KnowledgeEntriesIDs() (ids []string) {
	for id := range m.knowledge_entries {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeEntries resets all changes to the "knowledge_entries" edge.
func (m *TenantMutation) ResetKnowledgeEntries() {
	m.knowledge_entries = nil
	m.clearedknowledge_entries = false
	m.removedknowledge_entries = nil
}

// AddOrderIDs adds the "orders" edge to the Order entity by ids.
func (m *TenantMutation) AddOrderIDs(ids ...string) {
	if m.orders == nil {
		m.orders = make(map[string]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the Order entity.
func (m *TenantMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the Order entity was cleared.
func (m *TenantMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the Order entity by IDs.
func (m *TenantMutation) RemoveOrderIDs(ids ...string) {
	if m.removedorders == nil {
		m.removedorders = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the Order entity.
func (m *TenantMutation) RemovedOrdersIDs() (ids []string) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *TenantMutation) OrdersIDs() (ids []string) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *TenantMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// AddScheduledMessageIDs adds the "scheduled_messages" edge to the ScheduledMessage entity by ids.
func (m *TenantMutation) AddScheduledMessageIDs(ids ...string) {
	if m.scheduled_messages == nil {
		m.scheduled_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.scheduled_messages[ids[i]] = struct{}{}
	}
}

// ClearScheduledMessages clears the "scheduled_messages" edge to the ScheduledMessage entity.
func (m *TenantMutation) ClearScheduledMessages() {
	m.clearedscheduled_messages = true
}

// ScheduledMessagesCleared reports if the "scheduled_messages" edge to the ScheduledMessage entity was cleared.
func (m *TenantMutation) ScheduledMessagesCleared() bool {
	return m.clearedscheduled_messages
}

// RemoveScheduledMessageIDs removes the "scheduled_messages" edge to the ScheduledMessage entity by IDs.
func (m *TenantMutation) RemoveScheduledMessageIDs(ids ...string) {
	if m.removedscheduled_messages == nil {
		m.removedscheduled_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scheduled_messages, ids[i])
		m.removedscheduled_messages[ids[i]] = struct{}{}
	}
}

// RemovedScheduledMessages returns the removed IDs of the "scheduled_messages" edge to the ScheduledMessage entity.
func (m *TenantMutation) RemovedScheduledMessagesIDs() (ids []string) {
	for id := range m.removedscheduled_messages {
		ids = append(ids, id)
	}
	return
}

// ScheduledMessagesIDs returns the "scheduled_messages" edge IDs in the mutation.
func (m *TenantMutation) ScheduledMessagesIDs() (ids []string) {
	for id := range m.scheduled_messages {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledMessages resets all changes to the "scheduled_messages" edge.
func (m *TenantMutation) ResetScheduledMessages() {
	m.scheduled_messages = nil
	m.clearedscheduled_messages = false
	m.removedscheduled_messages = nil
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by ids.
func (m *TenantMutation) AddTemplateIDs(ids ...string) {
	if m.templates == nil {
		m.templates = make(map[string]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the MessageTemplate entity.
func (m *TenantMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the MessageTemplate entity was cleared.
func (m *TenantMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the MessageTemplate entity by IDs.
func (m *TenantMutation) RemoveTemplateIDs(ids ...string) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the MessageTemplate entity.
func (m *TenantMutation) RemovedTemplatesIDs() (ids []string) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *TenantMutation) TemplatesIDs() (ids []string) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *TenantMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *TenantMutation) AddCampaignIDs(ids ...string) {
	if m.campaigns == nil {
		m.campaigns = make(map[string]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *TenantMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *TenantMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *TenantMutation) RemoveCampaignIDs(ids ...string) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *TenantMutation) RemovedCampaignsIDs() (ids []string) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *TenantMutation) CampaignsIDs() (ids []string) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *TenantMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by ids.
func (m *TenantMutation) AddAppointmentIDs(ids ...string) {
	if m.appointments == nil {
		m.appointments = make(map[string]struct{})
	}
	for i := range ids {
		m.appointments[ids[i]] = struct{}{}
	}
}

// ClearAppointments clears the "appointments" edge to the Appointment entity.
func (m *TenantMutation) ClearAppointments() {
	m.clearedappointments = true
}

// AppointmentsCleared reports if the "appointments" edge to the Appointment entity was cleared.
func (m *TenantMutation) AppointmentsCleared() bool {
	return m.clearedappointments
}

// RemoveAppointmentIDs removes the "appointments" edge to the Appointment entity by IDs.
func (m *TenantMutation) RemoveAppointmentIDs(ids ...string) {
	if m.removedappointments == nil {
		m.removedappointments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.appointments, ids[i])
		m.removedappointments[ids[i]] = struct{}{}
	}
}

// RemovedAppointments returns the removed IDs of the "appointments" edge to the Appointment entity.
func (m *TenantMutation) RemovedAppointmentsIDs() (ids []string) {
	for id := range m.removedappointments {
		ids = append(ids, id)
	}
	return
}

// AppointmentsIDs returns the "appointments" edge IDs in the mutation.
func (m *TenantMutation) AppointmentsIDs() (ids []string) {
	for id := range m.appointments {
		ids = append(ids, id)
	}
	return
}

// ResetAppointments resets all changes to the "appointments" edge.
func (m *TenantMutation) ResetAppointments() {
	m.appointments = nil
	m.clearedappointments = false
	m.removedappointments = nil
}

// AddWithdrawalIDs adds the "withdrawals" edge to the Withdrawal entity by ids.
func (m *TenantMutation) AddWithdrawalIDs(ids ...string) {
	if m.withdrawals == nil {
		m.withdrawals = make(map[string]struct{})
	}
	for i := range ids {
		m.withdrawals[ids[i]] = struct{}{}
	}
}

// ClearWithdrawals clears the "withdrawals" edge to the Withdrawal entity.
func (m *TenantMutation) ClearWithdrawals() {
	m.clearedwithdrawals = true
}

// WithdrawalsCleared reports if the "withdrawals" edge to the Withdrawal entity was cleared.
func (m *TenantMutation) WithdrawalsCleared() bool {
	return m.clearedwithdrawals
}

// RemoveWithdrawalIDs removes the "withdrawals" edge to the Withdrawal entity by IDs.
func (m *TenantMutation) RemoveWithdrawalIDs(ids ...string) {
	if m.removedwithdrawals == nil {
		m.removedwithdrawals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.withdrawals, ids[i])
		m.removedwithdrawals[ids[i]] = struct{}{}
	}
}

// RemovedWithdrawals returns the removed IDs of the "withdrawals" edge to the Withdrawal entity.
func (m *TenantMutation) RemovedWithdrawalsIDs() (ids []string) {
	for id := range m.removedwithdrawals {
		ids = append(ids, id)
	}
	return
}

// WithdrawalsIDs returns the "withdrawals" edge IDs in the mutation.
func (m *TenantMutation) WithdrawalsIDs() (ids []string) {
	for id := range m.withdrawals {
		ids = append(ids, id)
	}
	return
}

// ResetWithdrawals resets all changes to the "withdrawals" edge.
func (m *TenantMutation) ResetWithdrawals() {
	m.withdrawals = nil
	m.clearedwithdrawals = false
	m.removedwithdrawals = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *TenantMutation) AddAuditLogIDs(ids ...string) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *TenantMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *TenantMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *TenantMutation) RemoveAuditLogIDs(ids ...string) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *TenantMutation) RemovedAuditLogsIDs() (ids []string) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *TenantMutation) AuditLogsIDs() (ids []string) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *TenantMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, tenant.FieldSlug)
	}
	if m.status != nil {
		fields = append(fields, tenant.FieldStatus)
	}
	if m.trial_ends_at != nil {
		fields = append(fields, tenant.FieldTrialEndsAt)
	}
	if m.subscription_tier != nil {
		fields = append(fields, tenant.FieldSubscriptionTier)
	}
	if m.whatsapp_number != nil {
		fields = append(fields, tenant.FieldWhatsappNumber)
	}
	if m.timezone != nil {
		fields = append(fields, tenant.FieldTimezone)
	}
	if m.quiet_hours_start != nil {
		fields = append(fields, tenant.FieldQuietHoursStart)
	}
	if m.quiet_hours_end != nil {
		fields = append(fields, tenant.FieldQuietHoursEnd)
	}
	if m.api_keys != nil {
		fields = append(fields, tenant.FieldAPIKeys)
	}
	if m.allowed_origins != nil {
		fields = append(fields, tenant.FieldAllowedOrigins)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, tenant.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldSlug:
		return m.Slug()
	case tenant.FieldStatus:
		return m.Status()
	case tenant.FieldTrialEndsAt:
		return m.TrialEndsAt()
	case tenant.FieldSubscriptionTier:
		return m.SubscriptionTier()
	case tenant.FieldWhatsappNumber:
		return m.WhatsappNumber()
	case tenant.FieldTimezone:
		return m.Timezone()
	case tenant.FieldQuietHoursStart:
		return m.QuietHoursStart()
	case tenant.FieldQuietHoursEnd:
		return m.QuietHoursEnd()
	case tenant.FieldAPIKeys:
		return m.APIKeys()
	case tenant.FieldAllowedOrigins:
		return m.AllowedOrigins()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	case tenant.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldSlug:
		return m.OldSlug(ctx)
	case tenant.FieldStatus:
		return m.OldStatus(ctx)
	case tenant.FieldTrialEndsAt:
		return m.OldTrialEndsAt(ctx)
	case tenant.FieldSubscriptionTier:
		return m.OldSubscriptionTier(ctx)
	case tenant.FieldWhatsappNumber:
		return m.OldWhatsappNumber(ctx)
	case tenant.FieldTimezone:
		return m.OldTimezone(ctx)
	case tenant.FieldQuietHoursStart:
		return m.OldQuietHoursStart(ctx)
	case tenant.FieldQuietHoursEnd:
		return m.OldQuietHoursEnd(ctx)
	case tenant.FieldAPIKeys:
		return m.OldAPIKeys(ctx)
	case tenant.FieldAllowedOrigins:
		return m.OldAllowedOrigins(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tenant.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case tenant.FieldStatus:
		v, ok := value.(tenant.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tenant.FieldTrialEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialEndsAt(v)
		return nil
	case tenant.FieldSubscriptionTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionTier(v)
		return nil
	case tenant.FieldWhatsappNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatsappNumber(v)
		return nil
	case tenant.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case tenant.FieldQuietHoursStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuietHoursStart(v)
		return nil
	case tenant.FieldQuietHoursEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuietHoursEnd(v)
		return nil
	case tenant.FieldAPIKeys:
		v, ok := value.([]schema.APIKey)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeys(v)
		return nil
	case tenant.FieldAllowedOrigins:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedOrigins(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tenant.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	var fields []string
	if m.addquiet_hours_start != nil {
		fields = append(fields, tenant.FieldQuietHoursStart)
	}
	if m.addquiet_hours_end != nil {
		fields = append(fields, tenant.FieldQuietHoursEnd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldQuietHoursStart:
		return m.AddedQuietHoursStart()
	case tenant.FieldQuietHoursEnd:
		return m.AddedQuietHoursEnd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldQuietHoursStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuietHoursStart(v)
		return nil
	case tenant.FieldQuietHoursEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuietHoursEnd(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldTrialEndsAt) {
		fields = append(fields, tenant.FieldTrialEndsAt)
	}
	if m.FieldCleared(tenant.FieldWhatsappNumber) {
		fields = append(fields, tenant.FieldWhatsappNumber)
	}
	if m.FieldCleared(tenant.FieldAPIKeys) {
		fields = append(fields, tenant.FieldAPIKeys)
	}
	if m.FieldCleared(tenant.FieldAllowedOrigins) {
		fields = append(fields, tenant.FieldAllowedOrigins)
	}
	if m.FieldCleared(tenant.FieldDeletedAt) {
		fields = append(fields, tenant.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldTrialEndsAt:
		m.ClearTrialEndsAt()
		return nil
	case tenant.FieldWhatsappNumber:
		m.ClearWhatsappNumber()
		return nil
	case tenant.FieldAPIKeys:
		m.ClearAPIKeys()
		return nil
	case tenant.FieldAllowedOrigins:
		m.ClearAllowedOrigins()
		return nil
	case tenant.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldSlug:
		m.ResetSlug()
		return nil
	case tenant.FieldStatus:
		m.ResetStatus()
		return nil
	case tenant.FieldTrialEndsAt:
		m.ResetTrialEndsAt()
		return nil
	case tenant.FieldSubscriptionTier:
		m.ResetSubscriptionTier()
		return nil
	case tenant.FieldWhatsappNumber:
		m.ResetWhatsappNumber()
		return nil
	case tenant.FieldTimezone:
		m.ResetTimezone()
		return nil
	case tenant.FieldQuietHoursStart:
		m.ResetQuietHoursStart()
		return nil
	case tenant.FieldQuietHoursEnd:
		m.ResetQuietHoursEnd()
		return nil
	case tenant.FieldAPIKeys:
		m.ResetAPIKeys()
		return nil
	case tenant.FieldAllowedOrigins:
		m.ResetAllowedOrigins()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tenant.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 14)
	if m.settings != nil {
		edges = append(edges, tenant.EdgeSettings)
	}
	if m.memberships != nil {
		edges = append(edges, tenant.EdgeMemberships)
	}
	if m.roles != nil {
		edges = append(edges, tenant.EdgeRoles)
	}
	if m.customers != nil {
		edges = append(edges, tenant.EdgeCustomers)
	}
	if m.conversations != nil {
		edges = append(edges, tenant.EdgeConversations)
	}
	if m.products != nil {
		edges = append(edges, tenant.EdgeProducts)
	}
	if m.knowledge_entries != nil {
		edges = append(edges, tenant.EdgeKnowledgeEntries)
	}
	if m.orders != nil {
		edges = append(edges, tenant.EdgeOrders)
	}
	if m.scheduled_messages != nil {
		edges = append(edges, tenant.EdgeScheduledMessages)
	}
	if m.templates != nil {
		edges = append(edges, tenant.EdgeTemplates)
	}
	if m.campaigns != nil {
		edges = append(edges, tenant.EdgeCampaigns)
	}
	if m.appointments != nil {
		edges = append(edges, tenant.EdgeAppointments)
	}
	if m.withdrawals != nil {
		edges = append(edges, tenant.EdgeWithdrawals)
	}
	if m.audit_logs != nil {
		edges = append(edges, tenant.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeSettings:
		if id := m.settings; id != nil {
			return []ent.Value{*id}
		}
	case tenant.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.roles))
		for id := range m.roles {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeCustomers:
		ids := make([]ent.Value, 0, len(m.customers))
		for id := range m.customers {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeProducts:
		ids := make([]ent.Value, 0, len(m.products))
		for id := range m.products {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeKnowledgeEntries:
		ids := make([]ent.Value, 0, len(m.knowledge_entries))
		for id := range m.knowledge_entries {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeScheduledMessages:
		ids := make([]ent.Value, 0, len(m.scheduled_messages))
		for id := range m.scheduled_messages {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.appointments))
		for id := range m.appointments {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeWithdrawals:
		ids := make([]ent.Value, 0, len(m.withdrawals))
		for id := range m.withdrawals {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 14)
	if m.removedmemberships != nil {
		edges = append(edges, tenant.EdgeMemberships)
	}
	if m.removedroles != nil {
		edges = append(edges, tenant.EdgeRoles)
	}
	if m.removedcustomers != nil {
		edges = append(edges, tenant.EdgeCustomers)
	}
	if m.removedconversations != nil {
		edges = append(edges, tenant.EdgeConversations)
	}
	if m.removedproducts != nil {
		edges = append(edges, tenant.EdgeProducts)
	}
	if m.removedknowledge_entries != nil {
		edges = append(edges, tenant.EdgeKnowledgeEntries)
	}
	if m.removedorders != nil {
		edges = append(edges, tenant.EdgeOrders)
	}
	if m.removedscheduled_messages != nil {
		edges = append(edges, tenant.EdgeScheduledMessages)
	}
	if m.removedtemplates != nil {
		edges = append(edges, tenant.EdgeTemplates)
	}
	if m.removedcampaigns != nil {
		edges = append(edges, tenant.EdgeCampaigns)
	}
	if m.removedappointments != nil {
		edges = append(edges, tenant.EdgeAppointments)
	}
	if m.removedwithdrawals != nil {
		edges = append(edges, tenant.EdgeWithdrawals)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, tenant.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.removedroles))
		for id := range m.removedroles {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeCustomers:
		ids := make([]ent.Value, 0, len(m.removedcustomers))
		for id := range m.removedcustomers {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeProducts:
		ids := make([]ent.Value, 0, len(m.removedproducts))
		for id := range m.removedproducts {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeKnowledgeEntries:
		ids := make([]ent.Value, 0, len(m.removedknowledge_entries))
		for id := range m.removedknowledge_entries {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeScheduledMessages:
		ids := make([]ent.Value, 0, len(m.removedscheduled_messages))
		for id := range m.removedscheduled_messages {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeAppointments:
		ids := make([]ent.Value, 0, len(m.removedappointments))
		for id := range m.removedappointments {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeWithdrawals:
		ids := make([]ent.Value, 0, len(m.removedwithdrawals))
		for id := range m.removedwithdrawals {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 14)
	if m.clearedsettings {
		edges = append(edges, tenant.EdgeSettings)
	}
	if m.clearedmemberships {
		edges = append(edges, tenant.EdgeMemberships)
	}
	if m.clearedroles {
		edges = append(edges, tenant.EdgeRoles)
	}
	if m.clearedcustomers {
		edges = append(edges, tenant.EdgeCustomers)
	}
	if m.clearedconversations {
		edges = append(edges, tenant.EdgeConversations)
	}
	if m.clearedproducts {
		edges = append(edges, tenant.EdgeProducts)
	}
	if m.clearedknowledge_entries {
		edges = append(edges, tenant.EdgeKnowledgeEntries)
	}
	if m.clearedorders {
		edges = append(edges, tenant.EdgeOrders)
	}
	if m.clearedscheduled_messages {
		edges = append(edges, tenant.EdgeScheduledMessages)
	}
	if m.clearedtemplates {
		edges = append(edges, tenant.EdgeTemplates)
	}
	if m.clearedcampaigns {
		edges = append(edges, tenant.EdgeCampaigns)
	}
	if m.clearedappointments {
		edges = append(edges, tenant.EdgeAppointments)
	}
	if m.clearedwithdrawals {
		edges = append(edges, tenant.EdgeWithdrawals)
	}
	if m.clearedaudit_logs {
		edges = append(edges, tenant.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeSettings:
		return m.clearedsettings
	case tenant.EdgeMemberships:
		return m.clearedmemberships
	case tenant.EdgeRoles:
		return m.clearedroles
	case tenant.EdgeCustomers:
		return m.clearedcustomers
	case tenant.EdgeConversations:
		return m.clearedconversations
	case tenant.EdgeProducts:
		return m.clearedproducts
	case tenant.EdgeKnowledgeEntries:
		return m.clearedknowledge_entries
	case tenant.EdgeOrders:
		return m.clearedorders
	case tenant.EdgeScheduledMessages:
		return m.clearedscheduled_messages
	case tenant.EdgeTemplates:
		return m.clearedtemplates
	case tenant.EdgeCampaigns:
		return m.clearedcampaigns
	case tenant.EdgeAppointments:
		return m.clearedappointments
	case tenant.EdgeWithdrawals:
		return m.clearedwithdrawals
	case tenant.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	case tenant.EdgeSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeSettings:
		m.ResetSettings()
		return nil
	case tenant.EdgeMemberships:
		m.ResetMemberships()
		return nil
	case tenant.EdgeRoles:
		m.ResetRoles()
		return nil
	case tenant.EdgeCustomers:
		m.ResetCustomers()
		return nil
	case tenant.EdgeConversations:
		m.ResetConversations()
		return nil
	case tenant.EdgeProducts:
		m.ResetProducts()
		return nil
	case tenant.EdgeKnowledgeEntries:
		m.ResetKnowledgeEntries()
		return nil
	case tenant.EdgeOrders:
		m.ResetOrders()
		return nil
	case tenant.EdgeScheduledMessages:
		m.ResetScheduledMessages()
		return nil
	case tenant.EdgeTemplates:
		m.ResetTemplates()
		return nil
	case tenant.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	case tenant.EdgeAppointments:
		m.ResetAppointments()
		return nil
	case tenant.EdgeWithdrawals:
		m.ResetWithdrawals()
		return nil
	case tenant.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// TenantSettingsMutation represents an operation that mutates the TenantSettings nodes in the graph.
type TenantSettingsMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	telephony_credentials    *[]byte
	commerce_credentials     *[]byte
	llm_credentials          *[]byte
	payment_credentials      *[]byte
	store_url                *string
	feature_flags            *map[string]bool
	business_hours           *map[string]schema.DayWindow
	notification_preferences *map[string]bool
	branding                 **schema.Branding
	onboarding_steps         *map[string]bool
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	tenant                   *string
	clearedtenant            bool
	done                     bool
	oldValue                 func(context.Context) (*TenantSettings, error)
	predicates               []predicate.TenantSettings
}

var _ ent.Mutation = (*TenantSettingsMutation)(nil)

// tenantsettingsOption allows management of the mutation configuration using functional options.
type tenantsettingsOption func(*TenantSettingsMutation)

// newTenantSettingsMutation creates new mutation for the TenantSettings entity.
func newTenantSettingsMutation(c config, op Op, opts ...tenantsettingsOption) *TenantSettingsMutation {
	m := &TenantSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantSettingsID sets the ID field of the mutation.
func withTenantSettingsID(id string) tenantsettingsOption {
	return func(m *TenantSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantSettings
		)
		m.oldValue = func(ctx context.Context) (*TenantSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantSettings sets the old TenantSettings of the mutation.
func withTenantSettings(node *TenantSettings) tenantsettingsOption {
	return func(m *TenantSettingsMutation) {
		m.oldValue = func(context.Context) (*TenantSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantSettings entities.
func (m *TenantSettingsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantSettingsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantSettingsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantSettingsMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantSettingsMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantSettingsMutation) ResetTenantID() {
	m.tenant = nil
}

// SetTelephonyCredentials sets the "telephony_credentials" field.
func (m *TenantSettingsMutation) SetTelephonyCredentials(b []byte) {
	m.telephony_credentials = &b
}

// TelephonyCredentials returns the value of the "telephony_credentials" field in the mutation.
func (m *TenantSettingsMutation) TelephonyCredentials() (r []byte, exists bool) {
	v := m.telephony_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldTelephonyCredentials returns the old "telephony_credentials" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldTelephonyCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelephonyCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelephonyCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelephonyCredentials: %w", err)
	}
	return oldValue.TelephonyCredentials, nil
}

// ClearTelephonyCredentials clears the value of the "telephony_credentials" field.
func (m *TenantSettingsMutation) ClearTelephonyCredentials() {
	m.telephony_credentials = nil
	m.clearedFields[tenantsettings.FieldTelephonyCredentials] = struct{}{}
}

// TelephonyCredentialsCleared returns if the "telephony_credentials" field was cleared in this mutation.
func (m *TenantSettingsMutation) TelephonyCredentialsCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldTelephonyCredentials]
	return ok
}

// ResetTelephonyCredentials resets all changes to the "telephony_credentials" field.
func (m *TenantSettingsMutation) ResetTelephonyCredentials() {
	m.telephony_credentials = nil
	delete(m.clearedFields, tenantsettings.FieldTelephonyCredentials)
}

// SetCommerceCredentials sets the "commerce_credentials" field.
func (m *TenantSettingsMutation) SetCommerceCredentials(b []byte) {
	m.commerce_credentials = &b
}

// CommerceCredentials returns the value of the "commerce_credentials" field in the mutation.
func (m *TenantSettingsMutation) CommerceCredentials() (r []byte, exists bool) {
	v := m.commerce_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldCommerceCredentials returns the old "commerce_credentials" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldCommerceCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommerceCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommerceCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommerceCredentials: %w", err)
	}
	return oldValue.CommerceCredentials, nil
}

// ClearCommerceCredentials clears the value of the "commerce_credentials" field.
func (m *TenantSettingsMutation) ClearCommerceCredentials() {
	m.commerce_credentials = nil
	m.clearedFields[tenantsettings.FieldCommerceCredentials] = struct{}{}
}

// CommerceCredentialsCleared returns if the "commerce_credentials" field was cleared in this mutation.
func (m *TenantSettingsMutation) CommerceCredentialsCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldCommerceCredentials]
	return ok
}

// ResetCommerceCredentials resets all changes to the "commerce_credentials" field.
func (m *TenantSettingsMutation) ResetCommerceCredentials() {
	m.commerce_credentials = nil
	delete(m.clearedFields, tenantsettings.FieldCommerceCredentials)
}

// SetLlmCredentials sets the "llm_credentials" field.
func (m *TenantSettingsMutation) SetLlmCredentials(b []byte) {
	m.llm_credentials = &b
}

// LlmCredentials returns the value of the "llm_credentials" field in the mutation.
func (m *TenantSettingsMutation) LlmCredentials() (r []byte, exists bool) {
	v := m.llm_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmCredentials returns the old "llm_credentials" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldLlmCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmCredentials: %w", err)
	}
	return oldValue.LlmCredentials, nil
}

// ClearLlmCredentials clears the value of the "llm_credentials" field.
func (m *TenantSettingsMutation) ClearLlmCredentials() {
	m.llm_credentials = nil
	m.clearedFields[tenantsettings.FieldLlmCredentials] = struct{}{}
}

// LlmCredentialsCleared returns if the "llm_credentials" field was cleared in this mutation.
func (m *TenantSettingsMutation) LlmCredentialsCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldLlmCredentials]
	return ok
}

// ResetLlmCredentials resets all changes to the "llm_credentials" field.
func (m *TenantSettingsMutation) ResetLlmCredentials() {
	m.llm_credentials = nil
	delete(m.clearedFields, tenantsettings.FieldLlmCredentials)
}

// SetPaymentCredentials sets the "payment_credentials" field.
func (m *TenantSettingsMutation) SetPaymentCredentials(b []byte) {
	m.payment_credentials = &b
}

// PaymentCredentials returns the value of the "payment_credentials" field in the mutation.
func (m *TenantSettingsMutation) PaymentCredentials() (r []byte, exists bool) {
	v := m.payment_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentCredentials returns the old "payment_credentials" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldPaymentCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentCredentials: %w", err)
	}
	return oldValue.PaymentCredentials, nil
}

// ClearPaymentCredentials clears the value of the "payment_credentials" field.
func (m *TenantSettingsMutation) ClearPaymentCredentials() {
	m.payment_credentials = nil
	m.clearedFields[tenantsettings.FieldPaymentCredentials] = struct{}{}
}

// PaymentCredentialsCleared returns if the "payment_credentials" field was cleared in this mutation.
func (m *TenantSettingsMutation) PaymentCredentialsCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldPaymentCredentials]
	return ok
}

// ResetPaymentCredentials resets all changes to the "payment_credentials" field.
func (m *TenantSettingsMutation) ResetPaymentCredentials() {
	m.payment_credentials = nil
	delete(m.clearedFields, tenantsettings.FieldPaymentCredentials)
}

// SetStoreURL sets the "store_url" field.
func (m *TenantSettingsMutation) SetStoreURL(s string) {
	m.store_url = &s
}

// StoreURL returns the value of the "store_url" field in the mutation.
func (m *TenantSettingsMutation) StoreURL() (r string, exists bool) {
	v := m.store_url
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreURL returns the old "store_url" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldStoreURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreURL: %w", err)
	}
	return oldValue.StoreURL, nil
}

// ClearStoreURL clears the value of the "store_url" field.
func (m *TenantSettingsMutation) ClearStoreURL() {
	m.store_url = nil
	m.clearedFields[tenantsettings.FieldStoreURL] = struct{}{}
}

// StoreURLCleared returns if the "store_url" field was cleared in this mutation.
func (m *TenantSettingsMutation) StoreURLCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldStoreURL]
	return ok
}

// ResetStoreURL resets all changes to the "store_url" field.
func (m *TenantSettingsMutation) ResetStoreURL() {
	m.store_url = nil
	delete(m.clearedFields, tenantsettings.FieldStoreURL)
}

// SetFeatureFlags sets the "feature_flags" field.
func (m *TenantSettingsMutation) SetFeatureFlags(value map[string]bool) {
	m.feature_flags = &value
}

// FeatureFlags returns the value of the "feature_flags" field in the mutation.
func (m *TenantSettingsMutation) FeatureFlags() (r map[string]bool, exists bool) {
	v := m.feature_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureFlags returns the old "feature_flags" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldFeatureFlags(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureFlags: %w", err)
	}
	return oldValue.FeatureFlags, nil
}

// ClearFeatureFlags clears the value of the "feature_flags" field.
func (m *TenantSettingsMutation) ClearFeatureFlags() {
	m.feature_flags = nil
	m.clearedFields[tenantsettings.FieldFeatureFlags] = struct{}{}
}

// FeatureFlagsCleared returns if the "feature_flags" field was cleared in this mutation.
func (m *TenantSettingsMutation) FeatureFlagsCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldFeatureFlags]
	return ok
}

// ResetFeatureFlags resets all changes to the "feature_flags" field.
func (m *TenantSettingsMutation) ResetFeatureFlags() {
	m.feature_flags = nil
	delete(m.clearedFields, tenantsettings.FieldFeatureFlags)
}

// SetBusinessHours sets the "business_hours" field.
func (m *TenantSettingsMutation) SetBusinessHours(mw map[string]schema.DayWindow) {
	m.business_hours = &mw
}

// BusinessHours returns the value of the "business_hours" field in the mutation.
func (m *TenantSettingsMutation) BusinessHours() (r map[string]schema.DayWindow, exists bool) {
	v := m.business_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessHours returns the old "business_hours" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldBusinessHours(ctx context.Context) (v map[string]schema.DayWindow, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessHours: %w", err)
	}
	return oldValue.BusinessHours, nil
}

// ClearBusinessHours clears the value of the "business_hours" field.
func (m *TenantSettingsMutation) ClearBusinessHours() {
	m.business_hours = nil
	m.clearedFields[tenantsettings.FieldBusinessHours] = struct{}{}
}

// BusinessHoursCleared returns if the "business_hours" field was cleared in this mutation.
func (m *TenantSettingsMutation) BusinessHoursCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldBusinessHours]
	return ok
}

// ResetBusinessHours resets all changes to the "business_hours" field.
func (m *TenantSettingsMutation) ResetBusinessHours() {
	m.business_hours = nil
	delete(m.clearedFields, tenantsettings.FieldBusinessHours)
}

// SetNotificationPreferences sets the "notification_preferences" field.
func (m *TenantSettingsMutation) SetNotificationPreferences(value map[string]bool) {
	m.notification_preferences = &value
}

// NotificationPreferences returns the value of the "notification_preferences" field in the mutation.
func (m *TenantSettingsMutation) NotificationPreferences() (r map[string]bool, exists bool) {
	v := m.notification_preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationPreferences returns the old "notification_preferences" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldNotificationPreferences(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationPreferences: %w", err)
	}
	return oldValue.NotificationPreferences, nil
}

// ClearNotificationPreferences clears the value of the "notification_preferences" field.
func (m *TenantSettingsMutation) ClearNotificationPreferences() {
	m.notification_preferences = nil
	m.clearedFields[tenantsettings.FieldNotificationPreferences] = struct{}{}
}

// NotificationPreferencesCleared returns if the "notification_preferences" field was cleared in this mutation.
func (m *TenantSettingsMutation) NotificationPreferencesCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldNotificationPreferences]
	return ok
}

// ResetNotificationPreferences resets all changes to the "notification_preferences" field.
func (m *TenantSettingsMutation) ResetNotificationPreferences() {
	m.notification_preferences = nil
	delete(m.clearedFields, tenantsettings.FieldNotificationPreferences)
}

// SetBranding sets the "branding" field.
func (m *TenantSettingsMutation) SetBranding(s *schema.Branding) {
	m.branding = &s
}

// Branding returns the value of the "branding" field in the mutation.
func (m *TenantSettingsMutation) Branding() (r *schema.Branding, exists bool) {
	v := m.branding
	if v == nil {
		return
	}
	return *v, true
}

// OldBranding returns the old "branding" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldBranding(ctx context.Context) (v *schema.Branding, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranding: %w", err)
	}
	return oldValue.Branding, nil
}

// ClearBranding clears the value of the "branding" field.
func (m *TenantSettingsMutation) ClearBranding() {
	m.branding = nil
	m.clearedFields[tenantsettings.FieldBranding] = struct{}{}
}

// BrandingCleared returns if the "branding" field was cleared in this mutation.
func (m *TenantSettingsMutation) BrandingCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldBranding]
	return ok
}

// ResetBranding resets all changes to the "branding" field.
func (m *TenantSettingsMutation) ResetBranding() {
	m.branding = nil
	delete(m.clearedFields, tenantsettings.FieldBranding)
}

// SetOnboardingSteps sets the "onboarding_steps" field.
func (m *TenantSettingsMutation) SetOnboardingSteps(value map[string]bool) {
	m.onboarding_steps = &value
}

// OnboardingSteps returns the value of the "onboarding_steps" field in the mutation.
func (m *TenantSettingsMutation) OnboardingSteps() (r map[string]bool, exists bool) {
	v := m.onboarding_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldOnboardingSteps returns the old "onboarding_steps" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldOnboardingSteps(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnboardingSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnboardingSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnboardingSteps: %w", err)
	}
	return oldValue.OnboardingSteps, nil
}

// ClearOnboardingSteps clears the value of the "onboarding_steps" field.
func (m *TenantSettingsMutation) ClearOnboardingSteps() {
	m.onboarding_steps = nil
	m.clearedFields[tenantsettings.FieldOnboardingSteps] = struct{}{}
}

// OnboardingStepsCleared returns if the "onboarding_steps" field was cleared in this mutation.
func (m *TenantSettingsMutation) OnboardingStepsCleared() bool {
	_, ok := m.clearedFields[tenantsettings.FieldOnboardingSteps]
	return ok
}

// ResetOnboardingSteps resets all changes to the "onboarding_steps" field.
func (m *TenantSettingsMutation) ResetOnboardingSteps() {
	m.onboarding_steps = nil
	delete(m.clearedFields, tenantsettings.FieldOnboardingSteps)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantSettingsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantSettingsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantSettingsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantSettings entity.
// If the TenantSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *TenantSettingsMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[tenantsettings.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *TenantSettingsMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *TenantSettingsMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *TenantSettingsMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the TenantSettingsMutation builder.
func (m *TenantSettingsMutation) Where(ps ...predicate.TenantSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantSettings).
func (m *TenantSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantSettingsMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant != nil {
		fields = append(fields, tenantsettings.FieldTenantID)
	}
	if m.telephony_credentials != nil {
		fields = append(fields, tenantsettings.FieldTelephonyCredentials)
	}
	if m.commerce_credentials != nil {
		fields = append(fields, tenantsettings.FieldCommerceCredentials)
	}
	if m.llm_credentials != nil {
		fields = append(fields, tenantsettings.FieldLlmCredentials)
	}
	if m.payment_credentials != nil {
		fields = append(fields, tenantsettings.FieldPaymentCredentials)
	}
	if m.store_url != nil {
		fields = append(fields, tenantsettings.FieldStoreURL)
	}
	if m.feature_flags != nil {
		fields = append(fields, tenantsettings.FieldFeatureFlags)
	}
	if m.business_hours != nil {
		fields = append(fields, tenantsettings.FieldBusinessHours)
	}
	if m.notification_preferences != nil {
		fields = append(fields, tenantsettings.FieldNotificationPreferences)
	}
	if m.branding != nil {
		fields = append(fields, tenantsettings.FieldBranding)
	}
	if m.onboarding_steps != nil {
		fields = append(fields, tenantsettings.FieldOnboardingSteps)
	}
	if m.created_at != nil {
		fields = append(fields, tenantsettings.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantsettings.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantsettings.FieldTenantID:
		return m.TenantID()
	case tenantsettings.FieldTelephonyCredentials:
		return m.TelephonyCredentials()
	case tenantsettings.FieldCommerceCredentials:
		return m.CommerceCredentials()
	case tenantsettings.FieldLlmCredentials:
		return m.LlmCredentials()
	case tenantsettings.FieldPaymentCredentials:
		return m.PaymentCredentials()
	case tenantsettings.FieldStoreURL:
		return m.StoreURL()
	case tenantsettings.FieldFeatureFlags:
		return m.FeatureFlags()
	case tenantsettings.FieldBusinessHours:
		return m.BusinessHours()
	case tenantsettings.FieldNotificationPreferences:
		return m.NotificationPreferences()
	case tenantsettings.FieldBranding:
		return m.Branding()
	case tenantsettings.FieldOnboardingSteps:
		return m.OnboardingSteps()
	case tenantsettings.FieldCreatedAt:
		return m.CreatedAt()
	case tenantsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantsettings.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantsettings.FieldTelephonyCredentials:
		return m.OldTelephonyCredentials(ctx)
	case tenantsettings.FieldCommerceCredentials:
		return m.OldCommerceCredentials(ctx)
	case tenantsettings.FieldLlmCredentials:
		return m.OldLlmCredentials(ctx)
	case tenantsettings.FieldPaymentCredentials:
		return m.OldPaymentCredentials(ctx)
	case tenantsettings.FieldStoreURL:
		return m.OldStoreURL(ctx)
	case tenantsettings.FieldFeatureFlags:
		return m.OldFeatureFlags(ctx)
	case tenantsettings.FieldBusinessHours:
		return m.OldBusinessHours(ctx)
	case tenantsettings.FieldNotificationPreferences:
		return m.OldNotificationPreferences(ctx)
	case tenantsettings.FieldBranding:
		return m.OldBranding(ctx)
	case tenantsettings.FieldOnboardingSteps:
		return m.OldOnboardingSteps(ctx)
	case tenantsettings.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantsettings.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantsettings.FieldTelephonyCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelephonyCredentials(v)
		return nil
	case tenantsettings.FieldCommerceCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommerceCredentials(v)
		return nil
	case tenantsettings.FieldLlmCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmCredentials(v)
		return nil
	case tenantsettings.FieldPaymentCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentCredentials(v)
		return nil
	case tenantsettings.FieldStoreURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreURL(v)
		return nil
	case tenantsettings.FieldFeatureFlags:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureFlags(v)
		return nil
	case tenantsettings.FieldBusinessHours:
		v, ok := value.(map[string]schema.DayWindow)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessHours(v)
		return nil
	case tenantsettings.FieldNotificationPreferences:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationPreferences(v)
		return nil
	case tenantsettings.FieldBranding:
		v, ok := value.(*schema.Branding)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranding(v)
		return nil
	case tenantsettings.FieldOnboardingSteps:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnboardingSteps(v)
		return nil
	case tenantsettings.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantSettingsMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantSettingsMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TenantSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenantsettings.FieldTelephonyCredentials) {
		fields = append(fields, tenantsettings.FieldTelephonyCredentials)
	}
	if m.FieldCleared(tenantsettings.FieldCommerceCredentials) {
		fields = append(fields, tenantsettings.FieldCommerceCredentials)
	}
	if m.FieldCleared(tenantsettings.FieldLlmCredentials) {
		fields = append(fields, tenantsettings.FieldLlmCredentials)
	}
	if m.FieldCleared(tenantsettings.FieldPaymentCredentials) {
		fields = append(fields, tenantsettings.FieldPaymentCredentials)
	}
	if m.FieldCleared(tenantsettings.FieldStoreURL) {
		fields = append(fields, tenantsettings.FieldStoreURL)
	}
	if m.FieldCleared(tenantsettings.FieldFeatureFlags) {
		fields = append(fields, tenantsettings.FieldFeatureFlags)
	}
	if m.FieldCleared(tenantsettings.FieldBusinessHours) {
		fields = append(fields, tenantsettings.FieldBusinessHours)
	}
	if m.FieldCleared(tenantsettings.FieldNotificationPreferences) {
		fields = append(fields, tenantsettings.FieldNotificationPreferences)
	}
	if m.FieldCleared(tenantsettings.FieldBranding) {
		fields = append(fields, tenantsettings.FieldBranding)
	}
	if m.FieldCleared(tenantsettings.FieldOnboardingSteps) {
		fields = append(fields, tenantsettings.FieldOnboardingSteps)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantSettingsMutation) ClearField(name string) error {
	switch name {
	case tenantsettings.FieldTelephonyCredentials:
		m.ClearTelephonyCredentials()
		return nil
	case tenantsettings.FieldCommerceCredentials:
		m.ClearCommerceCredentials()
		return nil
	case tenantsettings.FieldLlmCredentials:
		m.ClearLlmCredentials()
		return nil
	case tenantsettings.FieldPaymentCredentials:
		m.ClearPaymentCredentials()
		return nil
	case tenantsettings.FieldStoreURL:
		m.ClearStoreURL()
		return nil
	case tenantsettings.FieldFeatureFlags:
		m.ClearFeatureFlags()
		return nil
	case tenantsettings.FieldBusinessHours:
		m.ClearBusinessHours()
		return nil
	case tenantsettings.FieldNotificationPreferences:
		m.ClearNotificationPreferences()
		return nil
	case tenantsettings.FieldBranding:
		m.ClearBranding()
		return nil
	case tenantsettings.FieldOnboardingSteps:
		m.ClearOnboardingSteps()
		return nil
	}
	return fmt.Errorf("unknown TenantSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantSettingsMutation) ResetField(name string) error {
	switch name {
	case tenantsettings.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantsettings.FieldTelephonyCredentials:
		m.ResetTelephonyCredentials()
		return nil
	case tenantsettings.FieldCommerceCredentials:
		m.ResetCommerceCredentials()
		return nil
	case tenantsettings.FieldLlmCredentials:
		m.ResetLlmCredentials()
		return nil
	case tenantsettings.FieldPaymentCredentials:
		m.ResetPaymentCredentials()
		return nil
	case tenantsettings.FieldStoreURL:
		m.ResetStoreURL()
		return nil
	case tenantsettings.FieldFeatureFlags:
		m.ResetFeatureFlags()
		return nil
	case tenantsettings.FieldBusinessHours:
		m.ResetBusinessHours()
		return nil
	case tenantsettings.FieldNotificationPreferences:
		m.ResetNotificationPreferences()
		return nil
	case tenantsettings.FieldBranding:
		m.ResetBranding()
		return nil
	case tenantsettings.FieldOnboardingSteps:
		m.ResetOnboardingSteps()
		return nil
	case tenantsettings.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, tenantsettings.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantSettingsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenantsettings.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, tenantsettings.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantSettingsMutation) EdgeCleared(name string) bool {
	switch name {
	case tenantsettings.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantSettingsMutation) ClearEdge(name string) error {
	switch name {
	case tenantsettings.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown TenantSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantSettingsMutation) ResetEdge(name string) error {
	switch name {
	case tenantsettings.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown TenantSettings edge %s", name)
}

// TenantUserMutation represents an operation that mutates the TenantUser nodes in the graph.
type TenantUserMutation struct {
	config
	op                Op
	typ               string
	id                *string
	invitation_status *tenantuser.InvitationStatus
	last_seen_at      *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	tenant            *string
	clearedtenant     bool
	user              *string
	cleareduser       bool
	roles             map[string]struct{}
	removedroles      map[string]struct{}
	clearedroles      bool
	done              bool
	oldValue          func(context.Context) (*TenantUser, error)
	predicates        []predicate.TenantUser
}

var _ ent.Mutation = (*TenantUserMutation)(nil)

// tenantuserOption allows management of the mutation configuration using functional options.
type tenantuserOption func(*TenantUserMutation)

// newTenantUserMutation creates new mutation for the TenantUser entity.
func newTenantUserMutation(c config, op Op, opts ...tenantuserOption) *TenantUserMutation {
	m := &TenantUserMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantUserID sets the ID field of the mutation.
func withTenantUserID(id string) tenantuserOption {
	return func(m *TenantUserMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantUser
		)
		m.oldValue = func(ctx context.Context) (*TenantUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantUser sets the old TenantUser of the mutation.
func withTenantUser(node *TenantUser) tenantuserOption {
	return func(m *TenantUserMutation) {
		m.oldValue = func(context.Context) (*TenantUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantUser entities.
func (m *TenantUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantUserMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantUserMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantUser entity.
// If the TenantUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantUserMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantUserMutation) ResetTenantID() {
	m.tenant = nil
}

// SetUserID sets the "user_id" field.
func (m *TenantUserMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TenantUserMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TenantUser entity.
// If the TenantUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantUserMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TenantUserMutation) ResetUserID() {
	m.user = nil
}

// SetInvitationStatus sets the "invitation_status" field.
func (m *TenantUserMutation) SetInvitationStatus(ts tenantuser.InvitationStatus) {
	m.invitation_status = &ts
}

// InvitationStatus returns the value of the "invitation_status" field in the mutation.
func (m *TenantUserMutation) InvitationStatus() (r tenantuser.InvitationStatus, exists bool) {
	v := m.invitation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldInvitationStatus returns the old "invitation_status" field's value of the TenantUser entity.
// If the TenantUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantUserMutation) OldInvitationStatus(ctx context.Context) (v tenantuser.InvitationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvitationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvitationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvitationStatus: %w", err)
	}
	return oldValue.InvitationStatus, nil
}

// ResetInvitationStatus resets all changes to the "invitation_status" field.
func (m *TenantUserMutation) ResetInvitationStatus() {
	m.invitation_status = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *TenantUserMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *TenantUserMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the TenantUser entity.
// If the TenantUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantUserMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *TenantUserMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[tenantuser.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *TenantUserMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[tenantuser.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *TenantUserMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, tenantuser.FieldLastSeenAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantUser entity.
// If the TenantUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantUserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantUserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantUser entity.
// If the TenantUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantUserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantUserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *TenantUserMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[tenantuser.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *TenantUserMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *TenantUserMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *TenantUserMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *TenantUserMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[tenantuser.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TenantUserMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TenantUserMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TenantUserMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddRoleIDs adds the "roles" edge to the Role entity by ids.
func (m *TenantUserMutation) AddRoleIDs(ids ...string) {
	if m.roles == nil {
		m.roles = make(map[string]struct{})
	}
	for i := range ids {
		m.roles[ids[i]] = struct{}{}
	}
}

// ClearRoles clears the "roles" edge to the Role entity.
func (m *TenantUserMutation) ClearRoles() {
	m.clearedroles = true
}

// RolesCleared reports if the "roles" edge to the Role entity was cleared.
func (m *TenantUserMutation) RolesCleared() bool {
	return m.clearedroles
}

// RemoveRoleIDs removes the "roles" edge to the Role entity by IDs.
func (m *TenantUserMutation) RemoveRoleIDs(ids ...string) {
	if m.removedroles == nil {
		m.removedroles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.roles, ids[i])
		m.removedroles[ids[i]] = struct{}{}
	}
}

// RemovedRoles returns the removed IDs of the "roles" edge to the Role entity.
func (m *TenantUserMutation) RemovedRolesIDs() (ids []string) {
	for id := range m.removedroles {
		ids = append(ids, id)
	}
	return
}

// RolesIDs returns the "roles" edge IDs in the mutation.
func (m *TenantUserMutation) RolesIDs() (ids []string) {
	for id := range m.roles {
		ids = append(ids, id)
	}
	return
}

// ResetRoles resets all changes to the "roles" edge.
func (m *TenantUserMutation) ResetRoles() {
	m.roles = nil
	m.clearedroles = false
	m.removedroles = nil
}

// Where appends a list predicates to the TenantUserMutation builder.
func (m *TenantUserMutation) Where(ps ...predicate.TenantUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantUser).
func (m *TenantUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantUserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant != nil {
		fields = append(fields, tenantuser.FieldTenantID)
	}
	if m.user != nil {
		fields = append(fields, tenantuser.FieldUserID)
	}
	if m.invitation_status != nil {
		fields = append(fields, tenantuser.FieldInvitationStatus)
	}
	if m.last_seen_at != nil {
		fields = append(fields, tenantuser.FieldLastSeenAt)
	}
	if m.created_at != nil {
		fields = append(fields, tenantuser.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantuser.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantuser.FieldTenantID:
		return m.TenantID()
	case tenantuser.FieldUserID:
		return m.UserID()
	case tenantuser.FieldInvitationStatus:
		return m.InvitationStatus()
	case tenantuser.FieldLastSeenAt:
		return m.LastSeenAt()
	case tenantuser.FieldCreatedAt:
		return m.CreatedAt()
	case tenantuser.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantuser.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantuser.FieldUserID:
		return m.OldUserID(ctx)
	case tenantuser.FieldInvitationStatus:
		return m.OldInvitationStatus(ctx)
	case tenantuser.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case tenantuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantuser.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantuser.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantuser.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case tenantuser.FieldInvitationStatus:
		v, ok := value.(tenantuser.InvitationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvitationStatus(v)
		return nil
	case tenantuser.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case tenantuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantuser.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TenantUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantUserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenantuser.FieldLastSeenAt) {
		fields = append(fields, tenantuser.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantUserMutation) ClearField(name string) error {
	switch name {
	case tenantuser.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown TenantUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantUserMutation) ResetField(name string) error {
	switch name {
	case tenantuser.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantuser.FieldUserID:
		m.ResetUserID()
		return nil
	case tenantuser.FieldInvitationStatus:
		m.ResetInvitationStatus()
		return nil
	case tenantuser.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case tenantuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantuser.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tenant != nil {
		edges = append(edges, tenantuser.EdgeTenant)
	}
	if m.user != nil {
		edges = append(edges, tenantuser.EdgeUser)
	}
	if m.roles != nil {
		edges = append(edges, tenantuser.EdgeRoles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantUserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenantuser.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case tenantuser.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case tenantuser.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.roles))
		for id := range m.roles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedroles != nil {
		edges = append(edges, tenantuser.EdgeRoles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantUserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenantuser.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.removedroles))
		for id := range m.removedroles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtenant {
		edges = append(edges, tenantuser.EdgeTenant)
	}
	if m.cleareduser {
		edges = append(edges, tenantuser.EdgeUser)
	}
	if m.clearedroles {
		edges = append(edges, tenantuser.EdgeRoles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantUserMutation) EdgeCleared(name string) bool {
	switch name {
	case tenantuser.EdgeTenant:
		return m.clearedtenant
	case tenantuser.EdgeUser:
		return m.cleareduser
	case tenantuser.EdgeRoles:
		return m.clearedroles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantUserMutation) ClearEdge(name string) error {
	switch name {
	case tenantuser.EdgeTenant:
		m.ClearTenant()
		return nil
	case tenantuser.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown TenantUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantUserMutation) ResetEdge(name string) error {
	switch name {
	case tenantuser.EdgeTenant:
		m.ResetTenant()
		return nil
	case tenantuser.EdgeUser:
		m.ResetUser()
		return nil
	case tenantuser.EdgeRoles:
		m.ResetRoles()
		return nil
	}
	return fmt.Errorf("unknown TenantUser edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	email                       *string
	password_hash               *string
	email_verified              *bool
	is_superuser                *bool
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	memberships                 map[string]struct{}
	removedmemberships          map[string]struct{}
	clearedmemberships          bool
	permission_overrides        map[string]struct{}
	removedpermission_overrides map[string]struct{}
	clearedpermission_overrides bool
	done                        bool
	oldValue                    func(context.Context) (*User, error)
	predicates                  []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetIsSuperuser sets the "is_superuser" field.
func (m *UserMutation) SetIsSuperuser(b bool) {
	m.is_superuser = &b
}

// IsSuperuser returns the value of the "is_superuser" field in the mutation.
func (m *UserMutation) IsSuperuser() (r bool, exists bool) {
	v := m.is_superuser
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuperuser returns the old "is_superuser" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsSuperuser(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuperuser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuperuser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuperuser: %w", err)
	}
	return oldValue.IsSuperuser, nil
}

// ResetIsSuperuser resets all changes to the "is_superuser" field.
func (m *UserMutation) ResetIsSuperuser() {
	m.is_superuser = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMembershipIDs adds the "memberships" edge to the TenantUser entity by ids.
func (m *UserMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the TenantUser entity.
func (m *UserMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the TenantUser entity was cleared.
func (m *UserMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the TenantUser entity by IDs.
func (m *UserMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the TenantUser entity.
func (m *UserMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *UserMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *UserMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// AddPermissionOverrideIDs adds the "permission_overrides" edge to the UserPermission entity by ids.
func (m *UserMutation) AddPermissionOverrideIDs(ids ...string) {
	if m.permission_overrides == nil {
		m.permission_overrides = make(map[string]struct{})
	}
	for i := range ids {
		m.permission_overrides[ids[i]] = struct{}{}
	}
}

// ClearPermissionOverrides clears the "permission_overrides" edge to the UserPermission entity.
func (m *UserMutation) ClearPermissionOverrides() {
	m.clearedpermission_overrides = true
}

// PermissionOverridesCleared reports if the "permission_overrides" edge to the UserPermission entity was cleared.
func (m *UserMutation) PermissionOverridesCleared() bool {
	return m.clearedpermission_overrides
}

// RemovePermissionOverrideIDs removes the "permission_overrides" edge to the UserPermission entity by IDs.
func (m *UserMutation) RemovePermissionOverrideIDs(ids ...string) {
	if m.removedpermission_overrides == nil {
		m.removedpermission_overrides = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.permission_overrides, ids[i])
		m.removedpermission_overrides[ids[i]] = struct{}{}
	}
}

// RemovedPermissionOverrides returns the removed IDs of the "permission_overrides" edge to the UserPermission entity.
func (m *UserMutation) RemovedPermissionOverridesIDs() (ids []string) {
	for id := range m.removedpermission_overrides {
		ids = append(ids, id)
	}
	return
}

// PermissionOverridesIDs returns the "permission_overrides" edge IDs in the mutation.
func (m *UserMutation) PermissionOverridesIDs() (ids []string) {
	for id := range m.permission_overrides {
		ids = append(ids, id)
	}
	return
}

// ResetPermissionOverrides resets all changes to the "permission_overrides" edge.
func (m *UserMutation) ResetPermissionOverrides() {
	m.permission_overrides = nil
	m.clearedpermission_overrides = false
	m.removedpermission_overrides = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.is_superuser != nil {
		fields = append(fields, user.FieldIsSuperuser)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldIsSuperuser:
		return m.IsSuperuser()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldIsSuperuser:
		return m.OldIsSuperuser(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldIsSuperuser:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuperuser(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldIsSuperuser:
		m.ResetIsSuperuser()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.memberships != nil {
		edges = append(edges, user.EdgeMemberships)
	}
	if m.permission_overrides != nil {
		edges = append(edges, user.EdgePermissionOverrides)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePermissionOverrides:
		ids := make([]ent.Value, 0, len(m.permission_overrides))
		for id := range m.permission_overrides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmemberships != nil {
		edges = append(edges, user.EdgeMemberships)
	}
	if m.removedpermission_overrides != nil {
		edges = append(edges, user.EdgePermissionOverrides)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePermissionOverrides:
		ids := make([]ent.Value, 0, len(m.removedpermission_overrides))
		for id := range m.removedpermission_overrides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmemberships {
		edges = append(edges, user.EdgeMemberships)
	}
	if m.clearedpermission_overrides {
		edges = append(edges, user.EdgePermissionOverrides)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeMemberships:
		return m.clearedmemberships
	case user.EdgePermissionOverrides:
		return m.clearedpermission_overrides
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeMemberships:
		m.ResetMemberships()
		return nil
	case user.EdgePermissionOverrides:
		m.ResetPermissionOverrides()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserPermissionMutation represents an operation that mutates the UserPermission nodes in the graph.
type UserPermissionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	permission_code *string
	granted         *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	user            *string
	cleareduser     bool
	done            bool
	oldValue        func(context.Context) (*UserPermission, error)
	predicates      []predicate.UserPermission
}

var _ ent.Mutation = (*UserPermissionMutation)(nil)

// userpermissionOption allows management of the mutation configuration using functional options.
type userpermissionOption func(*UserPermissionMutation)

// newUserPermissionMutation creates new mutation for the UserPermission entity.
func newUserPermissionMutation(c config, op Op, opts ...userpermissionOption) *UserPermissionMutation {
	m := &UserPermissionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserPermission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserPermissionID sets the ID field of the mutation.
func withUserPermissionID(id string) userpermissionOption {
	return func(m *UserPermissionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserPermission
		)
		m.oldValue = func(ctx context.Context) (*UserPermission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserPermission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserPermission sets the old UserPermission of the mutation.
func withUserPermission(node *UserPermission) userpermissionOption {
	return func(m *UserPermissionMutation) {
		m.oldValue = func(context.Context) (*UserPermission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserPermissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserPermissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserPermission entities.
func (m *UserPermissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserPermissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserPermissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserPermission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UserPermissionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UserPermissionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the UserPermission entity.
// If the UserPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPermissionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UserPermissionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UserPermissionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserPermissionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserPermission entity.
// If the UserPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPermissionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserPermissionMutation) ResetUserID() {
	m.user = nil
}

// SetPermissionCode sets the "permission_code" field.
func (m *UserPermissionMutation) SetPermissionCode(s string) {
	m.permission_code = &s
}

// PermissionCode returns the value of the "permission_code" field in the mutation.
func (m *UserPermissionMutation) PermissionCode() (r string, exists bool) {
	v := m.permission_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionCode returns the old "permission_code" field's value of the UserPermission entity.
// If the UserPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPermissionMutation) OldPermissionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionCode: %w", err)
	}
	return oldValue.PermissionCode, nil
}

// ResetPermissionCode resets all changes to the "permission_code" field.
func (m *UserPermissionMutation) ResetPermissionCode() {
	m.permission_code = nil
}

// SetGranted sets the "granted" field.
func (m *UserPermissionMutation) SetGranted(b bool) {
	m.granted = &b
}

// Granted returns the value of the "granted" field in the mutation.
func (m *UserPermissionMutation) Granted() (r bool, exists bool) {
	v := m.granted
	if v == nil {
		return
	}
	return *v, true
}

// OldGranted returns the old "granted" field's value of the UserPermission entity.
// If the UserPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPermissionMutation) OldGranted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGranted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGranted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGranted: %w", err)
	}
	return oldValue.Granted, nil
}

// ResetGranted resets all changes to the "granted" field.
func (m *UserPermissionMutation) ResetGranted() {
	m.granted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserPermissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserPermissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserPermission entity.
// If the UserPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPermissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserPermissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserPermissionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[userpermission.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserPermissionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserPermissionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserPermissionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserPermissionMutation builder.
func (m *UserPermissionMutation) Where(ps ...predicate.UserPermission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserPermissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserPermissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserPermission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserPermissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserPermissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserPermission).
func (m *UserPermissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserPermissionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, userpermission.FieldTenantID)
	}
	if m.user != nil {
		fields = append(fields, userpermission.FieldUserID)
	}
	if m.permission_code != nil {
		fields = append(fields, userpermission.FieldPermissionCode)
	}
	if m.granted != nil {
		fields = append(fields, userpermission.FieldGranted)
	}
	if m.created_at != nil {
		fields = append(fields, userpermission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserPermissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userpermission.FieldTenantID:
		return m.TenantID()
	case userpermission.FieldUserID:
		return m.UserID()
	case userpermission.FieldPermissionCode:
		return m.PermissionCode()
	case userpermission.FieldGranted:
		return m.Granted()
	case userpermission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserPermissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userpermission.FieldTenantID:
		return m.OldTenantID(ctx)
	case userpermission.FieldUserID:
		return m.OldUserID(ctx)
	case userpermission.FieldPermissionCode:
		return m.OldPermissionCode(ctx)
	case userpermission.FieldGranted:
		return m.OldGranted(ctx)
	case userpermission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserPermission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserPermissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userpermission.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case userpermission.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userpermission.FieldPermissionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionCode(v)
		return nil
	case userpermission.FieldGranted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGranted(v)
		return nil
	case userpermission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserPermission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserPermissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserPermissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserPermissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserPermission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserPermissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserPermissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserPermissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserPermission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserPermissionMutation) ResetField(name string) error {
	switch name {
	case userpermission.FieldTenantID:
		m.ResetTenantID()
		return nil
	case userpermission.FieldUserID:
		m.ResetUserID()
		return nil
	case userpermission.FieldPermissionCode:
		m.ResetPermissionCode()
		return nil
	case userpermission.FieldGranted:
		m.ResetGranted()
		return nil
	case userpermission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserPermission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserPermissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, userpermission.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserPermissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userpermission.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserPermissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserPermissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserPermissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, userpermission.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserPermissionMutation) EdgeCleared(name string) bool {
	switch name {
	case userpermission.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserPermissionMutation) ClearEdge(name string) error {
	switch name {
	case userpermission.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserPermission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserPermissionMutation) ResetEdge(name string) error {
	switch name {
	case userpermission.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserPermission edge %s", name)
}

// WithdrawalMutation represents an operation that mutates the Withdrawal nodes in the graph.
type WithdrawalMutation struct {
	config
	op              Op
	typ             string
	id              *string
	amount_cents    *int
	addamount_cents *int
	currency        *string
	status          *withdrawal.Status
	created_by      *string
	approved_by     *string
	approved_at     *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	tenant          *string
	clearedtenant   bool
	done            bool
	oldValue        func(context.Context) (*Withdrawal, error)
	predicates      []predicate.Withdrawal
}

var _ ent.Mutation = (*WithdrawalMutation)(nil)

// withdrawalOption allows management of the mutation configuration using functional options.
type withdrawalOption func(*WithdrawalMutation)

// newWithdrawalMutation creates new mutation for the Withdrawal entity.
func newWithdrawalMutation(c config, op Op, opts ...withdrawalOption) *WithdrawalMutation {
	m := &WithdrawalMutation{
		config:        c,
		op:            op,
		typ:           TypeWithdrawal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWithdrawalID sets the ID field of the mutation.
func withWithdrawalID(id string) withdrawalOption {
	return func(m *WithdrawalMutation) {
		var (
			err   error
			once  sync.Once
			value *Withdrawal
		)
		m.oldValue = func(ctx context.Context) (*Withdrawal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Withdrawal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWithdrawal sets the old Withdrawal of the mutation.
func withWithdrawal(node *Withdrawal) withdrawalOption {
	return func(m *WithdrawalMutation) {
		m.oldValue = func(context.Context) (*Withdrawal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WithdrawalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WithdrawalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Withdrawal entities.
func (m *WithdrawalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WithdrawalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WithdrawalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Withdrawal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *WithdrawalMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *WithdrawalMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *WithdrawalMutation) ResetTenantID() {
	m.tenant = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *WithdrawalMutation) SetAmountCents(i int) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *WithdrawalMutation) AmountCents() (r int, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldAmountCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *WithdrawalMutation) AddAmountCents(i int) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *WithdrawalMutation) AddedAmountCents() (r int, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *WithdrawalMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *WithdrawalMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *WithdrawalMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *WithdrawalMutation) ResetCurrency() {
	m.currency = nil
}

// SetStatus sets the "status" field.
func (m *WithdrawalMutation) SetStatus(w withdrawal.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WithdrawalMutation) Status() (r withdrawal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldStatus(ctx context.Context) (v withdrawal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WithdrawalMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *WithdrawalMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *WithdrawalMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *WithdrawalMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *WithdrawalMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *WithdrawalMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *WithdrawalMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[withdrawal.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *WithdrawalMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[withdrawal.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *WithdrawalMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, withdrawal.FieldApprovedBy)
}

// SetApprovedAt sets the "approved_at" field.
func (m *WithdrawalMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *WithdrawalMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *WithdrawalMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[withdrawal.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *WithdrawalMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[withdrawal.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *WithdrawalMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, withdrawal.FieldApprovedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WithdrawalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WithdrawalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WithdrawalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WithdrawalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WithdrawalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Withdrawal entity.
// If the Withdrawal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WithdrawalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WithdrawalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *WithdrawalMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[withdrawal.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *WithdrawalMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *WithdrawalMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *WithdrawalMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the WithdrawalMutation builder.
func (m *WithdrawalMutation) Where(ps ...predicate.Withdrawal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WithdrawalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WithdrawalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Withdrawal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WithdrawalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WithdrawalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Withdrawal).
func (m *WithdrawalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WithdrawalMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant != nil {
		fields = append(fields, withdrawal.FieldTenantID)
	}
	if m.amount_cents != nil {
		fields = append(fields, withdrawal.FieldAmountCents)
	}
	if m.currency != nil {
		fields = append(fields, withdrawal.FieldCurrency)
	}
	if m.status != nil {
		fields = append(fields, withdrawal.FieldStatus)
	}
	if m.created_by != nil {
		fields = append(fields, withdrawal.FieldCreatedBy)
	}
	if m.approved_by != nil {
		fields = append(fields, withdrawal.FieldApprovedBy)
	}
	if m.approved_at != nil {
		fields = append(fields, withdrawal.FieldApprovedAt)
	}
	if m.created_at != nil {
		fields = append(fields, withdrawal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, withdrawal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WithdrawalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case withdrawal.FieldTenantID:
		return m.TenantID()
	case withdrawal.FieldAmountCents:
		return m.AmountCents()
	case withdrawal.FieldCurrency:
		return m.Currency()
	case withdrawal.FieldStatus:
		return m.Status()
	case withdrawal.FieldCreatedBy:
		return m.CreatedBy()
	case withdrawal.FieldApprovedBy:
		return m.ApprovedBy()
	case withdrawal.FieldApprovedAt:
		return m.ApprovedAt()
	case withdrawal.FieldCreatedAt:
		return m.CreatedAt()
	case withdrawal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WithdrawalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case withdrawal.FieldTenantID:
		return m.OldTenantID(ctx)
	case withdrawal.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case withdrawal.FieldCurrency:
		return m.OldCurrency(ctx)
	case withdrawal.FieldStatus:
		return m.OldStatus(ctx)
	case withdrawal.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case withdrawal.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case withdrawal.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case withdrawal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case withdrawal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Withdrawal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WithdrawalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case withdrawal.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case withdrawal.FieldAmountCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case withdrawal.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case withdrawal.FieldStatus:
		v, ok := value.(withdrawal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case withdrawal.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case withdrawal.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case withdrawal.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case withdrawal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case withdrawal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Withdrawal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WithdrawalMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, withdrawal.FieldAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WithdrawalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case withdrawal.FieldAmountCents:
		return m.AddedAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WithdrawalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case withdrawal.FieldAmountCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown Withdrawal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WithdrawalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(withdrawal.FieldApprovedBy) {
		fields = append(fields, withdrawal.FieldApprovedBy)
	}
	if m.FieldCleared(withdrawal.FieldApprovedAt) {
		fields = append(fields, withdrawal.FieldApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WithdrawalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WithdrawalMutation) ClearField(name string) error {
	switch name {
	case withdrawal.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case withdrawal.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown Withdrawal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WithdrawalMutation) ResetField(name string) error {
	switch name {
	case withdrawal.FieldTenantID:
		m.ResetTenantID()
		return nil
	case withdrawal.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case withdrawal.FieldCurrency:
		m.ResetCurrency()
		return nil
	case withdrawal.FieldStatus:
		m.ResetStatus()
		return nil
	case withdrawal.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case withdrawal.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case withdrawal.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case withdrawal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case withdrawal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Withdrawal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WithdrawalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, withdrawal.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WithdrawalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case withdrawal.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WithdrawalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WithdrawalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WithdrawalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, withdrawal.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WithdrawalMutation) EdgeCleared(name string) bool {
	switch name {
	case withdrawal.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WithdrawalMutation) ClearEdge(name string) error {
	switch name {
	case withdrawal.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Withdrawal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WithdrawalMutation) ResetEdge(name string) error {
	switch name {
	case withdrawal.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown Withdrawal edge %s", name)
}
