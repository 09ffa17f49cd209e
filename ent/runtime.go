// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentFields[6].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentFields[7].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[11].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescIsAbTest is the schema descriptor for is_ab_test field.
	campaignDescIsAbTest := campaignFields[4].Descriptor()
	// campaign.DefaultIsAbTest holds the default value on creation for the is_ab_test field.
	campaign.DefaultIsAbTest = campaignDescIsAbTest.Default.(bool)
	// campaignDescTargetedCount is the schema descriptor for targeted_count field.
	campaignDescTargetedCount := campaignFields[9].Descriptor()
	// campaign.DefaultTargetedCount holds the default value on creation for the targeted_count field.
	campaign.DefaultTargetedCount = campaignDescTargetedCount.Default.(int)
	// campaignDescDeliveredCount is the schema descriptor for delivered_count field.
	campaignDescDeliveredCount := campaignFields[10].Descriptor()
	// campaign.DefaultDeliveredCount holds the default value on creation for the delivered_count field.
	campaign.DefaultDeliveredCount = campaignDescDeliveredCount.Default.(int)
	// campaignDescFailedCount is the schema descriptor for failed_count field.
	campaignDescFailedCount := campaignFields[11].Descriptor()
	// campaign.DefaultFailedCount holds the default value on creation for the failed_count field.
	campaign.DefaultFailedCount = campaignDescFailedCount.Default.(int)
	// campaignDescReadCount is the schema descriptor for read_count field.
	campaignDescReadCount := campaignFields[12].Descriptor()
	// campaign.DefaultReadCount holds the default value on creation for the read_count field.
	campaign.DefaultReadCount = campaignDescReadCount.Default.(int)
	// campaignDescResponseCount is the schema descriptor for response_count field.
	campaignDescResponseCount := campaignFields[13].Descriptor()
	// campaign.DefaultResponseCount holds the default value on creation for the response_count field.
	campaign.DefaultResponseCount = campaignDescResponseCount.Default.(int)
	// campaignDescConversionCount is the schema descriptor for conversion_count field.
	campaignDescConversionCount := campaignFields[14].Descriptor()
	// campaign.DefaultConversionCount holds the default value on creation for the conversion_count field.
	campaign.DefaultConversionCount = campaignDescConversionCount.Default.(int)
	// campaignDescSkippedNoConsentCount is the schema descriptor for skipped_no_consent_count field.
	campaignDescSkippedNoConsentCount := campaignFields[15].Descriptor()
	// campaign.DefaultSkippedNoConsentCount holds the default value on creation for the skipped_no_consent_count field.
	campaign.DefaultSkippedNoConsentCount = campaignDescSkippedNoConsentCount.Default.(int)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[17].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[18].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	checkoutsessionFields := schema.CheckoutSession{}.Fields()
	_ = checkoutsessionFields
	// checkoutsessionDescMessageCount is the schema descriptor for message_count field.
	checkoutsessionDescMessageCount := checkoutsessionFields[8].Descriptor()
	// checkoutsession.DefaultMessageCount holds the default value on creation for the message_count field.
	checkoutsession.DefaultMessageCount = checkoutsessionDescMessageCount.Default.(int)
	// checkoutsessionDescCreatedAt is the schema descriptor for created_at field.
	checkoutsessionDescCreatedAt := checkoutsessionFields[9].Descriptor()
	// checkoutsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkoutsession.DefaultCreatedAt = checkoutsessionDescCreatedAt.Default.(func() time.Time)
	// checkoutsessionDescUpdatedAt is the schema descriptor for updated_at field.
	checkoutsessionDescUpdatedAt := checkoutsessionFields[10].Descriptor()
	// checkoutsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkoutsession.DefaultUpdatedAt = checkoutsessionDescUpdatedAt.Default.(func() time.Time)
	// checkoutsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkoutsession.UpdateDefaultUpdatedAt = checkoutsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescSessionMessageCount is the schema descriptor for session_message_count field.
	conversationDescSessionMessageCount := conversationFields[5].Descriptor()
	// conversation.DefaultSessionMessageCount holds the default value on creation for the session_message_count field.
	conversation.DefaultSessionMessageCount = conversationDescSessionMessageCount.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[7].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[8].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationcontextFields := schema.ConversationContext{}.Fields()
	_ = conversationcontextFields
	// conversationcontextDescLowConfidenceTurns is the schema descriptor for low_confidence_turns field.
	conversationcontextDescLowConfidenceTurns := conversationcontextFields[9].Descriptor()
	// conversationcontext.DefaultLowConfidenceTurns holds the default value on creation for the low_confidence_turns field.
	conversationcontext.DefaultLowConfidenceTurns = conversationcontextDescLowConfidenceTurns.Default.(int)
	// conversationcontextDescUpdatedAt is the schema descriptor for updated_at field.
	conversationcontextDescUpdatedAt := conversationcontextFields[11].Descriptor()
	// conversationcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversationcontext.DefaultUpdatedAt = conversationcontextDescUpdatedAt.Default.(func() time.Time)
	// conversationcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversationcontext.UpdateDefaultUpdatedAt = conversationcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescPromotionalMessages is the schema descriptor for promotional_messages field.
	customerDescPromotionalMessages := customerFields[7].Descriptor()
	// customer.DefaultPromotionalMessages holds the default value on creation for the promotional_messages field.
	customer.DefaultPromotionalMessages = customerDescPromotionalMessages.Default.(bool)
	// customerDescReminderMessages is the schema descriptor for reminder_messages field.
	customerDescReminderMessages := customerFields[8].Descriptor()
	// customer.DefaultReminderMessages holds the default value on creation for the reminder_messages field.
	customer.DefaultReminderMessages = customerDescReminderMessages.Default.(bool)
	// customerDescTransactionalMessages is the schema descriptor for transactional_messages field.
	customerDescTransactionalMessages := customerFields[9].Descriptor()
	// customer.DefaultTransactionalMessages holds the default value on creation for the transactional_messages field.
	customer.DefaultTransactionalMessages = customerDescTransactionalMessages.Default.(bool)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[11].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[12].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	knowledgeentryFields := schema.KnowledgeEntry{}.Fields()
	_ = knowledgeentryFields
	// knowledgeentryDescCreatedAt is the schema descriptor for created_at field.
	knowledgeentryDescCreatedAt := knowledgeentryFields[6].Descriptor()
	// knowledgeentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeentry.DefaultCreatedAt = knowledgeentryDescCreatedAt.Default.(func() time.Time)
	// knowledgeentryDescUpdatedAt is the schema descriptor for updated_at field.
	knowledgeentryDescUpdatedAt := knowledgeentryFields[7].Descriptor()
	// knowledgeentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowledgeentry.DefaultUpdatedAt = knowledgeentryDescUpdatedAt.Default.(func() time.Time)
	// knowledgeentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowledgeentry.UpdateDefaultUpdatedAt = knowledgeentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[9].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	messagetemplateFields := schema.MessageTemplate{}.Fields()
	_ = messagetemplateFields
	// messagetemplateDescUsageCount is the schema descriptor for usage_count field.
	messagetemplateDescUsageCount := messagetemplateFields[4].Descriptor()
	// messagetemplate.DefaultUsageCount holds the default value on creation for the usage_count field.
	messagetemplate.DefaultUsageCount = messagetemplateDescUsageCount.Default.(int)
	// messagetemplateDescCreatedAt is the schema descriptor for created_at field.
	messagetemplateDescCreatedAt := messagetemplateFields[5].Descriptor()
	// messagetemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagetemplate.DefaultCreatedAt = messagetemplateDescCreatedAt.Default.(func() time.Time)
	// messagetemplateDescUpdatedAt is the schema descriptor for updated_at field.
	messagetemplateDescUpdatedAt := messagetemplateFields[6].Descriptor()
	// messagetemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	messagetemplate.DefaultUpdatedAt = messagetemplateDescUpdatedAt.Default.(func() time.Time)
	// messagetemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	messagetemplate.UpdateDefaultUpdatedAt = messagetemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescTotalCents is the schema descriptor for total_cents field.
	orderDescTotalCents := orderFields[4].Descriptor()
	// order.TotalCentsValidator is a validator for the "total_cents" field. It is called by the builders before save.
	order.TotalCentsValidator = orderDescTotalCents.Validators[0].(func(int) error)
	// orderDescCurrency is the schema descriptor for currency field.
	orderDescCurrency := orderFields[5].Descriptor()
	// order.DefaultCurrency holds the default value on creation for the currency field.
	order.DefaultCurrency = orderDescCurrency.Default.(string)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[6].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[7].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[4].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescUnitPriceCents is the schema descriptor for unit_price_cents field.
	orderitemDescUnitPriceCents := orderitemFields[5].Descriptor()
	// orderitem.UnitPriceCentsValidator is a validator for the "unit_price_cents" field. It is called by the builders before save.
	orderitem.UnitPriceCentsValidator = orderitemDescUnitPriceCents.Validators[0].(func(int) error)
	// orderitemDescSubtotalCents is the schema descriptor for subtotal_cents field.
	orderitemDescSubtotalCents := orderitemFields[6].Descriptor()
	// orderitem.SubtotalCentsValidator is a validator for the "subtotal_cents" field. It is called by the builders before save.
	orderitem.SubtotalCentsValidator = orderitemDescSubtotalCents.Validators[0].(func(int) error)
	outboxeventFields := schema.OutboxEvent{}.Fields()
	_ = outboxeventFields
	// outboxeventDescCreatedAt is the schema descriptor for created_at field.
	outboxeventDescCreatedAt := outboxeventFields[3].Descriptor()
	// outboxevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxevent.DefaultCreatedAt = outboxeventDescCreatedAt.Default.(func() time.Time)
	paymentrequestFields := schema.PaymentRequest{}.Fields()
	_ = paymentrequestFields
	// paymentrequestDescAmountCents is the schema descriptor for amount_cents field.
	paymentrequestDescAmountCents := paymentrequestFields[6].Descriptor()
	// paymentrequest.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	paymentrequest.AmountCentsValidator = paymentrequestDescAmountCents.Validators[0].(func(int) error)
	// paymentrequestDescCurrency is the schema descriptor for currency field.
	paymentrequestDescCurrency := paymentrequestFields[7].Descriptor()
	// paymentrequest.DefaultCurrency holds the default value on creation for the currency field.
	paymentrequest.DefaultCurrency = paymentrequestDescCurrency.Default.(string)
	// paymentrequestDescCreatedAt is the schema descriptor for created_at field.
	paymentrequestDescCreatedAt := paymentrequestFields[9].Descriptor()
	// paymentrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentrequest.DefaultCreatedAt = paymentrequestDescCreatedAt.Default.(func() time.Time)
	// paymentrequestDescUpdatedAt is the schema descriptor for updated_at field.
	paymentrequestDescUpdatedAt := paymentrequestFields[10].Descriptor()
	// paymentrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentrequest.DefaultUpdatedAt = paymentrequestDescUpdatedAt.Default.(func() time.Time)
	// paymentrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentrequest.UpdateDefaultUpdatedAt = paymentrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescActive is the schema descriptor for active field.
	productDescActive := productFields[5].Descriptor()
	// product.DefaultActive holds the default value on creation for the active field.
	product.DefaultActive = productDescActive.Default.(bool)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[6].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[7].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	productvariantFields := schema.ProductVariant{}.Fields()
	_ = productvariantFields
	// productvariantDescPriceCents is the schema descriptor for price_cents field.
	productvariantDescPriceCents := productvariantFields[4].Descriptor()
	// productvariant.PriceCentsValidator is a validator for the "price_cents" field. It is called by the builders before save.
	productvariant.PriceCentsValidator = productvariantDescPriceCents.Validators[0].(func(int) error)
	// productvariantDescCurrency is the schema descriptor for currency field.
	productvariantDescCurrency := productvariantFields[5].Descriptor()
	// productvariant.DefaultCurrency holds the default value on creation for the currency field.
	productvariant.DefaultCurrency = productvariantDescCurrency.Default.(string)
	// productvariantDescStock is the schema descriptor for stock field.
	productvariantDescStock := productvariantFields[6].Descriptor()
	// productvariant.DefaultStock holds the default value on creation for the stock field.
	productvariant.DefaultStock = productvariantDescStock.Default.(int)
	// productvariantDescCreatedAt is the schema descriptor for created_at field.
	productvariantDescCreatedAt := productvariantFields[8].Descriptor()
	// productvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	productvariant.DefaultCreatedAt = productvariantDescCreatedAt.Default.(func() time.Time)
	// productvariantDescUpdatedAt is the schema descriptor for updated_at field.
	productvariantDescUpdatedAt := productvariantFields[9].Descriptor()
	// productvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	productvariant.DefaultUpdatedAt = productvariantDescUpdatedAt.Default.(func() time.Time)
	// productvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	productvariant.UpdateDefaultUpdatedAt = productvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
	referencecontextFields := schema.ReferenceContext{}.Fields()
	_ = referencecontextFields
	// referencecontextDescCreatedAt is the schema descriptor for created_at field.
	referencecontextDescCreatedAt := referencecontextFields[6].Descriptor()
	// referencecontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	referencecontext.DefaultCreatedAt = referencecontextDescCreatedAt.Default.(func() time.Time)
	roleFields := schema.Role{}.Fields()
	_ = roleFields
	// roleDescIsSystem is the schema descriptor for is_system field.
	roleDescIsSystem := roleFields[3].Descriptor()
	// role.DefaultIsSystem holds the default value on creation for the is_system field.
	role.DefaultIsSystem = roleDescIsSystem.Default.(bool)
	// roleDescCreatedAt is the schema descriptor for created_at field.
	roleDescCreatedAt := roleFields[4].Descriptor()
	// role.DefaultCreatedAt holds the default value on creation for the created_at field.
	role.DefaultCreatedAt = roleDescCreatedAt.Default.(func() time.Time)
	scheduledmessageFields := schema.ScheduledMessage{}.Fields()
	_ = scheduledmessageFields
	// scheduledmessageDescCreatedAt is the schema descriptor for created_at field.
	scheduledmessageDescCreatedAt := scheduledmessageFields[16].Descriptor()
	// scheduledmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledmessage.DefaultCreatedAt = scheduledmessageDescCreatedAt.Default.(func() time.Time)
	// scheduledmessageDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledmessageDescUpdatedAt := scheduledmessageFields[17].Descriptor()
	// scheduledmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledmessage.DefaultUpdatedAt = scheduledmessageDescUpdatedAt.Default.(func() time.Time)
	// scheduledmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledmessage.UpdateDefaultUpdatedAt = scheduledmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescSubscriptionTier is the schema descriptor for subscription_tier field.
	tenantDescSubscriptionTier := tenantFields[5].Descriptor()
	// tenant.DefaultSubscriptionTier holds the default value on creation for the subscription_tier field.
	tenant.DefaultSubscriptionTier = tenantDescSubscriptionTier.Default.(string)
	// tenantDescTimezone is the schema descriptor for timezone field.
	tenantDescTimezone := tenantFields[7].Descriptor()
	// tenant.DefaultTimezone holds the default value on creation for the timezone field.
	tenant.DefaultTimezone = tenantDescTimezone.Default.(string)
	// tenantDescQuietHoursStart is the schema descriptor for quiet_hours_start field.
	tenantDescQuietHoursStart := tenantFields[8].Descriptor()
	// tenant.DefaultQuietHoursStart holds the default value on creation for the quiet_hours_start field.
	tenant.DefaultQuietHoursStart = tenantDescQuietHoursStart.Default.(int)
	// tenantDescQuietHoursEnd is the schema descriptor for quiet_hours_end field.
	tenantDescQuietHoursEnd := tenantFields[9].Descriptor()
	// tenant.DefaultQuietHoursEnd holds the default value on creation for the quiet_hours_end field.
	tenant.DefaultQuietHoursEnd = tenantDescQuietHoursEnd.Default.(int)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[12].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[13].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantsettingsFields := schema.TenantSettings{}.Fields()
	_ = tenantsettingsFields
	// tenantsettingsDescCreatedAt is the schema descriptor for created_at field.
	tenantsettingsDescCreatedAt := tenantsettingsFields[12].Descriptor()
	// tenantsettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantsettings.DefaultCreatedAt = tenantsettingsDescCreatedAt.Default.(func() time.Time)
	// tenantsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	tenantsettingsDescUpdatedAt := tenantsettingsFields[13].Descriptor()
	// tenantsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantsettings.DefaultUpdatedAt = tenantsettingsDescUpdatedAt.Default.(func() time.Time)
	// tenantsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantsettings.UpdateDefaultUpdatedAt = tenantsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantuserFields := schema.TenantUser{}.Fields()
	_ = tenantuserFields
	// tenantuserDescCreatedAt is the schema descriptor for created_at field.
	tenantuserDescCreatedAt := tenantuserFields[5].Descriptor()
	// tenantuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantuser.DefaultCreatedAt = tenantuserDescCreatedAt.Default.(func() time.Time)
	// tenantuserDescUpdatedAt is the schema descriptor for updated_at field.
	tenantuserDescUpdatedAt := tenantuserFields[6].Descriptor()
	// tenantuser.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantuser.DefaultUpdatedAt = tenantuserDescUpdatedAt.Default.(func() time.Time)
	// tenantuser.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantuser.UpdateDefaultUpdatedAt = tenantuserDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[3].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescIsSuperuser is the schema descriptor for is_superuser field.
	userDescIsSuperuser := userFields[4].Descriptor()
	// user.DefaultIsSuperuser holds the default value on creation for the is_superuser field.
	user.DefaultIsSuperuser = userDescIsSuperuser.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	userpermissionFields := schema.UserPermission{}.Fields()
	_ = userpermissionFields
	// userpermissionDescCreatedAt is the schema descriptor for created_at field.
	userpermissionDescCreatedAt := userpermissionFields[5].Descriptor()
	// userpermission.DefaultCreatedAt holds the default value on creation for the created_at field.
	userpermission.DefaultCreatedAt = userpermissionDescCreatedAt.Default.(func() time.Time)
	withdrawalFields := schema.Withdrawal{}.Fields()
	_ = withdrawalFields
	// withdrawalDescAmountCents is the schema descriptor for amount_cents field.
	withdrawalDescAmountCents := withdrawalFields[2].Descriptor()
	// withdrawal.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	withdrawal.AmountCentsValidator = withdrawalDescAmountCents.Validators[0].(func(int) error)
	// withdrawalDescCurrency is the schema descriptor for currency field.
	withdrawalDescCurrency := withdrawalFields[3].Descriptor()
	// withdrawal.DefaultCurrency holds the default value on creation for the currency field.
	withdrawal.DefaultCurrency = withdrawalDescCurrency.Default.(string)
	// withdrawalDescCreatedAt is the schema descriptor for created_at field.
	withdrawalDescCreatedAt := withdrawalFields[8].Descriptor()
	// withdrawal.DefaultCreatedAt holds the default value on creation for the created_at field.
	withdrawal.DefaultCreatedAt = withdrawalDescCreatedAt.Default.(func() time.Time)
	// withdrawalDescUpdatedAt is the schema descriptor for updated_at field.
	withdrawalDescUpdatedAt := withdrawalFields[9].Descriptor()
	// withdrawal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	withdrawal.DefaultUpdatedAt = withdrawalDescUpdatedAt.Default.(func() time.Time)
	// withdrawal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	withdrawal.UpdateDefaultUpdatedAt = withdrawalDescUpdatedAt.UpdateDefault.(func() time.Time)
}
