// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "appointment_id", Type: field.TypeString, Unique: true},
		{Name: "service_name", Type: field.TypeString},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "canceled", "completed"}, Default: "scheduled"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_customers_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[7]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_tenants_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_tenant_id_starts_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[2]},
			},
			{
				Name:    "appointment_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[3]},
			},
			{
				Name:    "appointment_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_log_id", Type: field.TypeString, Unique: true},
		{Name: "actor_user_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "target_type", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString, Nullable: true},
		{Name: "before", Type: field.TypeJSON, Nullable: true},
		{Name: "after", Type: field.TypeJSON, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_tenants_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[11]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[11], AuditLogsColumns[10]},
			},
			{
				Name:    "auditlog_tenant_id_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[11], AuditLogsColumns[2]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "targeting", Type: field.TypeJSON, Nullable: true},
		{Name: "is_ab_test", Type: field.TypeBool, Default: false},
		{Name: "variants", Type: field.TypeJSON, Nullable: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "scheduled", "sending", "completed", "canceled"}, Default: "draft"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "targeted_count", Type: field.TypeInt, Default: 0},
		{Name: "delivered_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "read_count", Type: field.TypeInt, Default: 0},
		{Name: "response_count", Type: field.TypeInt, Default: 0},
		{Name: "conversion_count", Type: field.TypeInt, Default: 0},
		{Name: "skipped_no_consent_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_tenants_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[19]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[19], CampaignsColumns[6]},
			},
			{
				Name:    "campaign_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[18]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// CheckoutSessionsColumns holds the columns for the "checkout_sessions" table.
	CheckoutSessionsColumns = []*schema.Column{
		{Name: "checkout_session_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"browsing", "product_selected", "quantity_confirmed", "payment_method_selected", "payment_initiated", "paid", "failed", "closed"}, Default: "browsing"},
		{Name: "variant_id", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeInt, Nullable: true},
		{Name: "order_id", Type: field.TypeString, Nullable: true},
		{Name: "payment_request_id", Type: field.TypeString, Nullable: true},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// CheckoutSessionsTable holds the schema information for the "checkout_sessions" table.
	CheckoutSessionsTable = &schema.Table{
		Name:       "checkout_sessions",
		Columns:    CheckoutSessionsColumns,
		PrimaryKey: []*schema.Column{CheckoutSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkout_sessions_conversations_checkout_sessions",
				Columns:    []*schema.Column{CheckoutSessionsColumns[10]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkoutsession_conversation_id_state",
				Unique:  false,
				Columns: []*schema.Column{CheckoutSessionsColumns[10], CheckoutSessionsColumns[2]},
			},
			{
				Name:    "checkoutsession_tenant_id_state",
				Unique:  false,
				Columns: []*schema.Column{CheckoutSessionsColumns[1], CheckoutSessionsColumns[2]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "bot", "handoff", "closed", "dormant"}, Default: "bot"},
		{Name: "current_session_start", Type: field.TypeTime, Nullable: true},
		{Name: "session_message_count", Type: field.TypeInt, Default: 0},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_customers_conversations",
				Columns:    []*schema.Column{ConversationsColumns[8]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "conversations_tenants_conversations",
				Columns:    []*schema.Column{ConversationsColumns[9]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_tenant_id_customer_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[9], ConversationsColumns[8]},
			},
			{
				Name:    "conversation_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[9], ConversationsColumns[1]},
			},
			{
				Name:    "conversation_status_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[4]},
			},
			{
				Name:    "conversation_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ConversationContextsColumns holds the columns for the "conversation_contexts" table.
	ConversationContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "last_customer_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_bot_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "checkout_state", Type: field.TypeEnum, Enums: []string{"browsing", "product_selected", "quantity_confirmed", "payment_method_selected", "payment_initiated", "paid", "failed", "closed"}, Default: "browsing"},
		{Name: "selected_variant_id", Type: field.TypeString, Nullable: true},
		{Name: "selected_quantity", Type: field.TypeInt, Nullable: true},
		{Name: "locked_language", Type: field.TypeString, Nullable: true},
		{Name: "low_confidence_turns", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
	}
	// ConversationContextsTable holds the schema information for the "conversation_contexts" table.
	ConversationContextsTable = &schema.Table{
		Name:       "conversation_contexts",
		Columns:    ConversationContextsColumns,
		PrimaryKey: []*schema.Column{ConversationContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_contexts_conversations_context",
				Columns:    []*schema.Column{ConversationContextsColumns[11]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "customer_id", Type: field.TypeString, Unique: true},
		{Name: "phone_e164", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "promotional_messages", Type: field.TypeBool, Default: false},
		{Name: "reminder_messages", Type: field.TypeBool, Default: true},
		{Name: "transactional_messages", Type: field.TypeBool, Default: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "customers_tenants_customers",
				Columns:    []*schema.Column{CustomersColumns[13]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "customer_tenant_id_phone_e164",
				Unique:  true,
				Columns: []*schema.Column{CustomersColumns[13], CustomersColumns[1]},
			},
			{
				Name:    "customer_tenant_id_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[13], CustomersColumns[9]},
			},
			{
				Name:    "customer_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// KnowledgeEntriesColumns holds the columns for the "knowledge_entries" table.
	KnowledgeEntriesColumns = []*schema.Column{
		{Name: "knowledge_entry_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "vector_point_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// KnowledgeEntriesTable holds the schema information for the "knowledge_entries" table.
	KnowledgeEntriesTable = &schema.Table{
		Name:       "knowledge_entries",
		Columns:    KnowledgeEntriesColumns,
		PrimaryKey: []*schema.Column{KnowledgeEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_entries_tenants_knowledge_entries",
				Columns:    []*schema.Column{KnowledgeEntriesColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeentry_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeEntriesColumns[8]},
			},
			{
				Name:    "knowledgeentry_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeEntriesColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound"}},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"customer_inbound", "manual_outbound", "automated_transactional", "reminder", "re_engagement", "fallback", "campaign"}, Default: "customer_inbound"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "provider_message_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "sent", "delivered", "read", "failed"}, Default: "queued"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[8]},
			},
			{
				Name:    "message_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[8]},
			},
			{
				Name:    "message_tenant_id_provider_message_id",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "provider_message_id IS NOT NULL",
				},
			},
			{
				Name:    "message_tenant_id_message_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[3], MessagesColumns[8]},
			},
		},
	}
	// MessageTemplatesColumns holds the columns for the "message_templates" table.
	MessageTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// MessageTemplatesTable holds the schema information for the "message_templates" table.
	MessageTemplatesTable = &schema.Table{
		Name:       "message_templates",
		Columns:    MessageTemplatesColumns,
		PrimaryKey: []*schema.Column{MessageTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_templates_tenants_templates",
				Columns:    []*schema.Column{MessageTemplatesColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messagetemplate_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{MessageTemplatesColumns[7], MessageTemplatesColumns[1]},
			},
			{
				Name:    "messagetemplate_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{MessageTemplatesColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "order_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending_payment", "paid", "fulfilled", "canceled"}, Default: "draft"},
		{Name: "total_cents", Type: field.TypeInt},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orders_customers_orders",
				Columns:    []*schema.Column{OrdersColumns[7]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "orders_tenants_orders",
				Columns:    []*schema.Column{OrdersColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "order_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[8], OrdersColumns[1]},
			},
			{
				Name:    "order_tenant_id_customer_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[8], OrdersColumns[7]},
			},
			{
				Name:    "order_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "order_item_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "variant_id", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price_cents", Type: field.TypeInt},
		{Name: "subtotal_cents", Type: field.TypeInt},
		{Name: "order_id", Type: field.TypeString},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[6]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderitem_order_id",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[6]},
			},
		},
	}
	// OutboxEventsColumns holds the columns for the "outbox_events" table.
	OutboxEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "handled_at", Type: field.TypeTime, Nullable: true},
	}
	// OutboxEventsTable holds the schema information for the "outbox_events" table.
	OutboxEventsTable = &schema.Table{
		Name:       "outbox_events",
		Columns:    OutboxEventsColumns,
		PrimaryKey: []*schema.Column{OutboxEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxevent_handled_at_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEventsColumns[5], OutboxEventsColumns[4]},
			},
			{
				Name:    "outboxevent_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{OutboxEventsColumns[1]},
			},
		},
	}
	// PaymentRequestsColumns holds the columns for the "payment_requests" table.
	PaymentRequestsColumns = []*schema.Column{
		{Name: "payment_request_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "initiated", "succeeded", "failed", "expired"}, Default: "pending"},
		{Name: "provider", Type: field.TypeString},
		{Name: "provider_ref", Type: field.TypeString, Nullable: true},
		{Name: "amount_cents", Type: field.TypeInt},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeString},
	}
	// PaymentRequestsTable holds the schema information for the "payment_requests" table.
	PaymentRequestsTable = &schema.Table{
		Name:       "payment_requests",
		Columns:    PaymentRequestsColumns,
		PrimaryKey: []*schema.Column{PaymentRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payment_requests_orders_payment_requests",
				Columns:    []*schema.Column{PaymentRequestsColumns[10]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paymentrequest_order_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentRequestsColumns[10]},
			},
			{
				Name:    "paymentrequest_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{PaymentRequestsColumns[1], PaymentRequestsColumns[2]},
			},
			{
				Name:    "paymentrequest_provider_provider_ref",
				Unique:  false,
				Columns: []*schema.Column{PaymentRequestsColumns[3], PaymentRequestsColumns[4]},
			},
		},
	}
	// PermissionsColumns holds the columns for the "permissions" table.
	PermissionsColumns = []*schema.Column{
		{Name: "permission_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// PermissionsTable holds the schema information for the "permissions" table.
	PermissionsTable = &schema.Table{
		Name:       "permissions",
		Columns:    PermissionsColumns,
		PrimaryKey: []*schema.Column{PermissionsColumns[0]},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "product_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_tenants_products",
				Columns:    []*schema.Column{ProductsColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_tenant_id_active",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[8], ProductsColumns[4]},
			},
			{
				Name:    "product_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ProductVariantsColumns holds the columns for the "product_variants" table.
	ProductVariantsColumns = []*schema.Column{
		{Name: "variant_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "price_cents", Type: field.TypeInt},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "stock", Type: field.TypeInt, Default: 0},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeString},
	}
	// ProductVariantsTable holds the schema information for the "product_variants" table.
	ProductVariantsTable = &schema.Table{
		Name:       "product_variants",
		Columns:    ProductVariantsColumns,
		PrimaryKey: []*schema.Column{ProductVariantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "product_variants_products_variants",
				Columns:    []*schema.Column{ProductVariantsColumns[9]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "productvariant_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ProductVariantsColumns[1]},
			},
			{
				Name:    "productvariant_product_id",
				Unique:  false,
				Columns: []*schema.Column{ProductVariantsColumns[9]},
			},
		},
	}
	// ReferenceContextsColumns holds the columns for the "reference_contexts" table.
	ReferenceContextsColumns = []*schema.Column{
		{Name: "reference_context_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "list_type", Type: field.TypeString},
		{Name: "items", Type: field.TypeJSON},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ReferenceContextsTable holds the schema information for the "reference_contexts" table.
	ReferenceContextsTable = &schema.Table{
		Name:       "reference_contexts",
		Columns:    ReferenceContextsColumns,
		PrimaryKey: []*schema.Column{ReferenceContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reference_contexts_conversations_reference_contexts",
				Columns:    []*schema.Column{ReferenceContextsColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "referencecontext_conversation_id_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ReferenceContextsColumns[6], ReferenceContextsColumns[4]},
			},
			{
				Name:    "referencecontext_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ReferenceContextsColumns[4]},
			},
		},
	}
	// RolesColumns holds the columns for the "roles" table.
	RolesColumns = []*schema.Column{
		{Name: "role_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "is_system", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// RolesTable holds the schema information for the "roles" table.
	RolesTable = &schema.Table{
		Name:       "roles",
		Columns:    RolesColumns,
		PrimaryKey: []*schema.Column{RolesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "roles_tenants_roles",
				Columns:    []*schema.Column{RolesColumns[4]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "role_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{RolesColumns[4], RolesColumns[1]},
			},
		},
	}
	// ScheduledMessagesColumns holds the columns for the "scheduled_messages" table.
	ScheduledMessagesColumns = []*schema.Column{
		{Name: "scheduled_message_id", Type: field.TypeString, Unique: true},
		{Name: "customer_id", Type: field.TypeString, Nullable: true},
		{Name: "recipient_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "template_id", Type: field.TypeString, Nullable: true},
		{Name: "template_context", Type: field.TypeJSON, Nullable: true},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"customer_inbound", "manual_outbound", "automated_transactional", "reminder", "re_engagement", "fallback", "campaign"}, Default: "manual_outbound"},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed", "canceled"}, Default: "pending"},
		{Name: "sent_message_id", Type: field.TypeString, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "appointment_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// ScheduledMessagesTable holds the schema information for the "scheduled_messages" table.
	ScheduledMessagesTable = &schema.Table{
		Name:       "scheduled_messages",
		Columns:    ScheduledMessagesColumns,
		PrimaryKey: []*schema.Column{ScheduledMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_messages_tenants_scheduled_messages",
				Columns:    []*schema.Column{ScheduledMessagesColumns[17]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledmessage_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[8], ScheduledMessagesColumns[7]},
			},
			{
				Name:    "scheduledmessage_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[17], ScheduledMessagesColumns[8]},
			},
			{
				Name:    "scheduledmessage_appointment_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[11], ScheduledMessagesColumns[8]},
			},
			{
				Name:    "scheduledmessage_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledMessagesColumns[8], ScheduledMessagesColumns[13]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"trial", "active", "trial_expired", "suspended", "canceled"}, Default: "trial"},
		{Name: "trial_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "subscription_tier", Type: field.TypeString, Default: "starter"},
		{Name: "whatsapp_number", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "quiet_hours_start", Type: field.TypeInt, Default: 1320},
		{Name: "quiet_hours_end", Type: field.TypeInt, Default: 480},
		{Name: "api_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "allowed_origins", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_status",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[3]},
			},
			{
				Name:    "tenant_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TenantSettingsColumns holds the columns for the "tenant_settings" table.
	TenantSettingsColumns = []*schema.Column{
		{Name: "settings_id", Type: field.TypeString, Unique: true},
		{Name: "telephony_credentials", Type: field.TypeBytes, Nullable: true},
		{Name: "commerce_credentials", Type: field.TypeBytes, Nullable: true},
		{Name: "llm_credentials", Type: field.TypeBytes, Nullable: true},
		{Name: "payment_credentials", Type: field.TypeBytes, Nullable: true},
		{Name: "store_url", Type: field.TypeString, Nullable: true},
		{Name: "feature_flags", Type: field.TypeJSON, Nullable: true},
		{Name: "business_hours", Type: field.TypeJSON, Nullable: true},
		{Name: "notification_preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "branding", Type: field.TypeJSON, Nullable: true},
		{Name: "onboarding_steps", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
	}
	// TenantSettingsTable holds the schema information for the "tenant_settings" table.
	TenantSettingsTable = &schema.Table{
		Name:       "tenant_settings",
		Columns:    TenantSettingsColumns,
		PrimaryKey: []*schema.Column{TenantSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tenant_settings_tenants_settings",
				Columns:    []*schema.Column{TenantSettingsColumns[13]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TenantUsersColumns holds the columns for the "tenant_users" table.
	TenantUsersColumns = []*schema.Column{
		{Name: "tenant_user_id", Type: field.TypeString, Unique: true},
		{Name: "invitation_status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "revoked"}, Default: "pending"},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// TenantUsersTable holds the schema information for the "tenant_users" table.
	TenantUsersTable = &schema.Table{
		Name:       "tenant_users",
		Columns:    TenantUsersColumns,
		PrimaryKey: []*schema.Column{TenantUsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tenant_users_tenants_memberships",
				Columns:    []*schema.Column{TenantUsersColumns[5]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tenant_users_users_memberships",
				Columns:    []*schema.Column{TenantUsersColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tenantuser_tenant_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TenantUsersColumns[5], TenantUsersColumns[6]},
			},
			{
				Name:    "tenantuser_user_id",
				Unique:  false,
				Columns: []*schema.Column{TenantUsersColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "is_superuser", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserPermissionsColumns holds the columns for the "user_permissions" table.
	UserPermissionsColumns = []*schema.Column{
		{Name: "user_permission_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "permission_code", Type: field.TypeString},
		{Name: "granted", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// UserPermissionsTable holds the schema information for the "user_permissions" table.
	UserPermissionsTable = &schema.Table{
		Name:       "user_permissions",
		Columns:    UserPermissionsColumns,
		PrimaryKey: []*schema.Column{UserPermissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_permissions_users_permission_overrides",
				Columns:    []*schema.Column{UserPermissionsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userpermission_tenant_id_user_id_permission_code",
				Unique:  true,
				Columns: []*schema.Column{UserPermissionsColumns[1], UserPermissionsColumns[5], UserPermissionsColumns[2]},
			},
		},
	}
	// WithdrawalsColumns holds the columns for the "withdrawals" table.
	WithdrawalsColumns = []*schema.Column{
		{Name: "withdrawal_id", Type: field.TypeString, Unique: true},
		{Name: "amount_cents", Type: field.TypeInt},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "paid"}, Default: "pending"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// WithdrawalsTable holds the schema information for the "withdrawals" table.
	WithdrawalsTable = &schema.Table{
		Name:       "withdrawals",
		Columns:    WithdrawalsColumns,
		PrimaryKey: []*schema.Column{WithdrawalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "withdrawals_tenants_withdrawals",
				Columns:    []*schema.Column{WithdrawalsColumns[9]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "withdrawal_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{WithdrawalsColumns[9], WithdrawalsColumns[3]},
			},
		},
	}
	// RolePermissionsColumns holds the columns for the "role_permissions" table.
	RolePermissionsColumns = []*schema.Column{
		{Name: "role_id", Type: field.TypeString},
		{Name: "permission_id", Type: field.TypeString},
	}
	// RolePermissionsTable holds the schema information for the "role_permissions" table.
	RolePermissionsTable = &schema.Table{
		Name:       "role_permissions",
		Columns:    RolePermissionsColumns,
		PrimaryKey: []*schema.Column{RolePermissionsColumns[0], RolePermissionsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "role_permissions_role_id",
				Columns:    []*schema.Column{RolePermissionsColumns[0]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "role_permissions_permission_id",
				Columns:    []*schema.Column{RolePermissionsColumns[1]},
				RefColumns: []*schema.Column{PermissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TenantUserRolesColumns holds the columns for the "tenant_user_roles" table.
	TenantUserRolesColumns = []*schema.Column{
		{Name: "tenant_user_id", Type: field.TypeString},
		{Name: "role_id", Type: field.TypeString},
	}
	// TenantUserRolesTable holds the schema information for the "tenant_user_roles" table.
	TenantUserRolesTable = &schema.Table{
		Name:       "tenant_user_roles",
		Columns:    TenantUserRolesColumns,
		PrimaryKey: []*schema.Column{TenantUserRolesColumns[0], TenantUserRolesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tenant_user_roles_tenant_user_id",
				Columns:    []*schema.Column{TenantUserRolesColumns[0]},
				RefColumns: []*schema.Column{TenantUsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tenant_user_roles_role_id",
				Columns:    []*schema.Column{TenantUserRolesColumns[1]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AuditLogsTable,
		CampaignsTable,
		CheckoutSessionsTable,
		ConversationsTable,
		ConversationContextsTable,
		CustomersTable,
		KnowledgeEntriesTable,
		MessagesTable,
		MessageTemplatesTable,
		OrdersTable,
		OrderItemsTable,
		OutboxEventsTable,
		PaymentRequestsTable,
		PermissionsTable,
		ProductsTable,
		ProductVariantsTable,
		ReferenceContextsTable,
		RolesTable,
		ScheduledMessagesTable,
		TenantsTable,
		TenantSettingsTable,
		TenantUsersTable,
		UsersTable,
		UserPermissionsTable,
		WithdrawalsTable,
		RolePermissionsTable,
		TenantUserRolesTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = CustomersTable
	AppointmentsTable.ForeignKeys[1].RefTable = TenantsTable
	AuditLogsTable.ForeignKeys[0].RefTable = TenantsTable
	CampaignsTable.ForeignKeys[0].RefTable = TenantsTable
	CheckoutSessionsTable.ForeignKeys[0].RefTable = ConversationsTable
	ConversationsTable.ForeignKeys[0].RefTable = CustomersTable
	ConversationsTable.ForeignKeys[1].RefTable = TenantsTable
	ConversationContextsTable.ForeignKeys[0].RefTable = ConversationsTable
	CustomersTable.ForeignKeys[0].RefTable = TenantsTable
	KnowledgeEntriesTable.ForeignKeys[0].RefTable = TenantsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	MessageTemplatesTable.ForeignKeys[0].RefTable = TenantsTable
	OrdersTable.ForeignKeys[0].RefTable = CustomersTable
	OrdersTable.ForeignKeys[1].RefTable = TenantsTable
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	PaymentRequestsTable.ForeignKeys[0].RefTable = OrdersTable
	ProductsTable.ForeignKeys[0].RefTable = TenantsTable
	ProductVariantsTable.ForeignKeys[0].RefTable = ProductsTable
	ReferenceContextsTable.ForeignKeys[0].RefTable = ConversationsTable
	RolesTable.ForeignKeys[0].RefTable = TenantsTable
	ScheduledMessagesTable.ForeignKeys[0].RefTable = TenantsTable
	TenantSettingsTable.ForeignKeys[0].RefTable = TenantsTable
	TenantUsersTable.ForeignKeys[0].RefTable = TenantsTable
	TenantUsersTable.ForeignKeys[1].RefTable = UsersTable
	UserPermissionsTable.ForeignKeys[0].RefTable = UsersTable
	WithdrawalsTable.ForeignKeys[0].RefTable = TenantsTable
	RolePermissionsTable.ForeignKeys[0].RefTable = RolesTable
	RolePermissionsTable.ForeignKeys[1].RefTable = PermissionsTable
	TenantUserRolesTable.ForeignKeys[0].RefTable = TenantUsersTable
	TenantUserRolesTable.ForeignKeys[1].RefTable = RolesTable
}
