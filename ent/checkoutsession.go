// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/ent/conversation"
)

// CheckoutSession is the model entity for the CheckoutSession schema.
type CheckoutSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// State holds the value of the "state" field.
	State checkoutsession.State `json:"state,omitempty"`
	// VariantID holds the value of the "variant_id" field.
	VariantID *string `json:"variant_id,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity *int `json:"quantity,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID *string `json:"order_id,omitempty"`
	// PaymentRequestID holds the value of the "payment_request_id" field.
	PaymentRequestID *string `json:"payment_request_id,omitempty"`
	// Outbound messages since leaving browsing
	MessageCount int `json:"message_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckoutSessionQuery when eager-loading is set.
	Edges        CheckoutSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckoutSessionEdges holds the relations/edges for other nodes in the graph.
type CheckoutSessionEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckoutSessionEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckoutSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkoutsession.FieldQuantity, checkoutsession.FieldMessageCount:
			values[i] = new(sql.NullInt64)
		case checkoutsession.FieldID, checkoutsession.FieldTenantID, checkoutsession.FieldConversationID, checkoutsession.FieldState, checkoutsession.FieldVariantID, checkoutsession.FieldOrderID, checkoutsession.FieldPaymentRequestID:
			values[i] = new(sql.NullString)
		case checkoutsession.FieldCreatedAt, checkoutsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckoutSession fields.
func (_m *CheckoutSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkoutsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkoutsession.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case checkoutsession.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case checkoutsession.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = checkoutsession.State(value.String)
			}
		case checkoutsession.FieldVariantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant_id", values[i])
			} else if value.Valid {
				_m.VariantID = new(string)
				*_m.VariantID = value.String
			}
		case checkoutsession.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = new(int)
				*_m.Quantity = int(value.Int64)
			}
		case checkoutsession.FieldOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = new(string)
				*_m.OrderID = value.String
			}
		case checkoutsession.FieldPaymentRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_request_id", values[i])
			} else if value.Valid {
				_m.PaymentRequestID = new(string)
				*_m.PaymentRequestID = value.String
			}
		case checkoutsession.FieldMessageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_count", values[i])
			} else if value.Valid {
				_m.MessageCount = int(value.Int64)
			}
		case checkoutsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checkoutsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckoutSession.
// This includes values selected through modifiers, order, etc.
func (_m *CheckoutSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the CheckoutSession entity.
func (_m *CheckoutSession) QueryConversation() *ConversationQuery {
	return NewCheckoutSessionClient(_m.config).QueryConversation(_m)
}

// Update returns a builder for updating this CheckoutSession.
// Note that you need to call CheckoutSession.Unwrap() before calling this method if this CheckoutSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckoutSession) Update() *CheckoutSessionUpdateOne {
	return NewCheckoutSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckoutSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckoutSession) Unwrap() *CheckoutSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckoutSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckoutSession) String() string {
	var builder strings.Builder
	builder.WriteString("CheckoutSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.VariantID; v != nil {
		builder.WriteString("variant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Quantity; v != nil {
		builder.WriteString("quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OrderID; v != nil {
		builder.WriteString("order_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentRequestID; v != nil {
		builder.WriteString("payment_request_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CheckoutSessions is a parsable slice of CheckoutSession.
type CheckoutSessions []*CheckoutSession
