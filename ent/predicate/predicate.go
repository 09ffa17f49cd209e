// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CheckoutSession is the predicate function for checkoutsession builders.
type CheckoutSession func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationContext is the predicate function for conversationcontext builders.
type ConversationContext func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// KnowledgeEntry is the predicate function for knowledgeentry builders.
type KnowledgeEntry func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageTemplate is the predicate function for messagetemplate builders.
type MessageTemplate func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// OutboxEvent is the predicate function for outboxevent builders.
type OutboxEvent func(*sql.Selector)

// PaymentRequest is the predicate function for paymentrequest builders.
type PaymentRequest func(*sql.Selector)

// Permission is the predicate function for permission builders.
type Permission func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// ProductVariant is the predicate function for productvariant builders.
type ProductVariant func(*sql.Selector)

// ReferenceContext is the predicate function for referencecontext builders.
type ReferenceContext func(*sql.Selector)

// Role is the predicate function for role builders.
type Role func(*sql.Selector)

// ScheduledMessage is the predicate function for scheduledmessage builders.
type ScheduledMessage func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// TenantSettings is the predicate function for tenantsettings builders.
type TenantSettings func(*sql.Selector)

// TenantUser is the predicate function for tenantuser builders.
type TenantUser func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserPermission is the predicate function for userpermission builders.
type UserPermission func(*sql.Selector)

// Withdrawal is the predicate function for withdrawal builders.
type Withdrawal func(*sql.Selector)
