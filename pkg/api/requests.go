package api

import (
	"time"

	"github.com/sokochat/sokochat/ent/schema"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTenantRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
}

type sendMessageRequest struct {
	CustomerID      string            `json:"customer_id"`
	Content         string            `json:"content"`
	TemplateID      string            `json:"template_id"`
	TemplateContext map[string]string `json:"template_context"`
}

type scheduleMessageRequest struct {
	sendMessageRequest
	ScheduledAt time.Time `json:"scheduled_at"`
}

type templateRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type createCampaignRequest struct {
	Name        string                    `json:"name"`
	Content     string                    `json:"content"`
	IsABTest    bool                      `json:"is_ab_test"`
	Variants    []schema.CampaignVariant  `json:"variants"`
	Targeting   *schema.CampaignTargeting `json:"targeting"`
	ScheduledAt *time.Time                `json:"scheduled_at"`
}

type withdrawRequest struct {
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type integrationRequest map[string]string

type productVariantRequest struct {
	Label      string            `json:"label"`
	PriceCents int               `json:"price_cents"`
	Currency   string            `json:"currency"`
	Stock      int               `json:"stock"`
	Attributes map[string]string `json:"attributes"`
}

type createProductRequest struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Tags        []string                `json:"tags"`
	Variants    []productVariantRequest `json:"variants"`
}

type setStockRequest struct {
	Stock int `json:"stock"`
}

type knowledgeEntryRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

type createCustomerRequest struct {
	PhoneE164   string   `json:"phone_e164"`
	DisplayName string   `json:"display_name"`
	Language    string   `json:"language"`
	Timezone    string   `json:"timezone"`
	Tags        []string `json:"tags"`
}

type consentRequest struct {
	Promotional *bool `json:"promotional_messages"`
	Reminder    *bool `json:"reminder_messages"`
}

type createAppointmentRequest struct {
	CustomerID  string    `json:"customer_id"`
	ServiceName string    `json:"service_name"`
	StartsAt    time.Time `json:"starts_at"`
}
