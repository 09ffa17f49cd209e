// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/conversationcontext"
)

// ConversationContext is the model entity for the ConversationContext schema.
type ConversationContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// LastCustomerMessage holds the value of the "last_customer_message" field.
	LastCustomerMessage string `json:"last_customer_message,omitempty"`
	// LastBotMessage holds the value of the "last_bot_message" field.
	LastBotMessage string `json:"last_bot_message,omitempty"`
	// CheckoutState holds the value of the "checkout_state" field.
	CheckoutState conversationcontext.CheckoutState `json:"checkout_state,omitempty"`
	// SelectedVariantID holds the value of the "selected_variant_id" field.
	SelectedVariantID *string `json:"selected_variant_id,omitempty"`
	// SelectedQuantity holds the value of the "selected_quantity" field.
	SelectedQuantity *int `json:"selected_quantity,omitempty"`
	// Response language; updated only when the customer switches
	LockedLanguage string `json:"locked_language,omitempty"`
	// LowConfidenceTurns holds the value of the "low_confidence_turns" field.
	LowConfidenceTurns int `json:"low_confidence_turns,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationContextQuery when eager-loading is set.
	Edges        ConversationContextEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationContextEdges holds the relations/edges for other nodes in the graph.
type ConversationContextEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationContextEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversationContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversationcontext.FieldMetadata:
			values[i] = new([]byte)
		case conversationcontext.FieldSelectedQuantity, conversationcontext.FieldLowConfidenceTurns:
			values[i] = new(sql.NullInt64)
		case conversationcontext.FieldID, conversationcontext.FieldTenantID, conversationcontext.FieldConversationID, conversationcontext.FieldLastCustomerMessage, conversationcontext.FieldLastBotMessage, conversationcontext.FieldCheckoutState, conversationcontext.FieldSelectedVariantID, conversationcontext.FieldLockedLanguage:
			values[i] = new(sql.NullString)
		case conversationcontext.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversationContext fields.
func (_m *ConversationContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversationcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversationcontext.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case conversationcontext.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case conversationcontext.FieldLastCustomerMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_customer_message", values[i])
			} else if value.Valid {
				_m.LastCustomerMessage = value.String
			}
		case conversationcontext.FieldLastBotMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_bot_message", values[i])
			} else if value.Valid {
				_m.LastBotMessage = value.String
			}
		case conversationcontext.FieldCheckoutState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkout_state", values[i])
			} else if value.Valid {
				_m.CheckoutState = conversationcontext.CheckoutState(value.String)
			}
		case conversationcontext.FieldSelectedVariantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_variant_id", values[i])
			} else if value.Valid {
				_m.SelectedVariantID = new(string)
				*_m.SelectedVariantID = value.String
			}
		case conversationcontext.FieldSelectedQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selected_quantity", values[i])
			} else if value.Valid {
				_m.SelectedQuantity = new(int)
				*_m.SelectedQuantity = int(value.Int64)
			}
		case conversationcontext.FieldLockedLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locked_language", values[i])
			} else if value.Valid {
				_m.LockedLanguage = value.String
			}
		case conversationcontext.FieldLowConfidenceTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field low_confidence_turns", values[i])
			} else if value.Valid {
				_m.LowConfidenceTurns = int(value.Int64)
			}
		case conversationcontext.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case conversationcontext.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ConversationContext.
// This includes values selected through modifiers, order, etc.
func (_m *ConversationContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the ConversationContext entity.
func (_m *ConversationContext) QueryConversation() *ConversationQuery {
	return NewConversationContextClient(_m.config).QueryConversation(_m)
}

// Update returns a builder for updating this ConversationContext.
// Note that you need to call ConversationContext.Unwrap() before calling this method if this ConversationContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversationContext) Update() *ConversationContextUpdateOne {
	return NewConversationContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversationContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversationContext) Unwrap() *ConversationContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversationContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversationContext) String() string {
	var builder strings.Builder
	builder.WriteString("ConversationContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("last_customer_message=")
	builder.WriteString(_m.LastCustomerMessage)
	builder.WriteString(", ")
	builder.WriteString("last_bot_message=")
	builder.WriteString(_m.LastBotMessage)
	builder.WriteString(", ")
	builder.WriteString("checkout_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckoutState))
	builder.WriteString(", ")
	if v := _m.SelectedVariantID; v != nil {
		builder.WriteString("selected_variant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SelectedQuantity; v != nil {
		builder.WriteString("selected_quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("locked_language=")
	builder.WriteString(_m.LockedLanguage)
	builder.WriteString(", ")
	builder.WriteString("low_confidence_turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowConfidenceTurns))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConversationContexts is a parsable slice of ConversationContext.
type ConversationContexts []*ConversationContext
