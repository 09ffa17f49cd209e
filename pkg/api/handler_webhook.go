package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/telephony"
)

// webhookIngestTimeout bounds the async ingest work done after the 200 ack.
const webhookIngestTimeout = 30 * time.Second

// twilioWebhookHandler handles POST /v1/webhooks/twilio/. The tenant is
// identified by the tenant query parameter baked into the webhook URL each
// tenant registers with the provider. Invalid signatures get 401 and never
// reach the harmonizer.
func (s *Server) twilioWebhookHandler(c *echo.Context) error {
	tenantID := c.QueryParam("tenant")
	if tenantID == "" {
		return newAPIError(http.StatusBadRequest, CodeValidationFailed, "tenant query parameter required")
	}

	ctx := c.Request().Context()
	creds, err := s.settings.TelephonyCredentials(ctx, tenantID)
	if err != nil {
		// Do not reveal whether the tenant exists to an unauthenticated caller.
		return newAPIError(http.StatusUnauthorized, CodeAuthenticationRequired, "signature verification failed")
	}

	if err := c.Request().ParseForm(); err != nil {
		return newAPIError(http.StatusBadRequest, CodeValidationFailed, "invalid form payload")
	}
	params := c.Request().PostForm

	requestURL := strings.TrimSuffix(s.publicBaseURL(), "/") + c.Request().URL.RequestURI()
	signature := c.Request().Header.Get("X-Twilio-Signature")
	if !telephony.ValidateSignature(creds.AuthToken, requestURL, params, signature) {
		return newAPIError(http.StatusUnauthorized, CodeAuthenticationRequired, "signature verification failed")
	}

	msg := harmonizer.BufferedMessage{
		ProviderMessageID: params.Get("MessageSid"),
		TenantID:          tenantID,
		Text:              params.Get("Body"),
		MediaURL:          params.Get("MediaUrl0"),
		ReceivedAt:        time.Now(),
	}
	phone := strings.TrimPrefix(params.Get("From"), "whatsapp:")

	// Ack fast; the buffer work happens off the request path. Idempotency is
	// keyed by provider message id, so a provider retry after a crash here is
	// safe.
	go s.ingestInbound(tenantID, phone, msg)

	return c.JSON(http.StatusOK, &WebhookAck{Status: "received"})
}

// ingestInbound resolves the customer and conversation for an inbound
// message and hands it to the harmonizer.
func (s *Server) ingestInbound(tenantID, phone string, msg harmonizer.BufferedMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), webhookIngestTimeout)
	defer cancel()

	cust, err := s.customers.GetOrCreateByPhone(ctx, tenantID, phone)
	if err != nil {
		slog.Error("inbound webhook: failed to resolve customer",
			"tenant_id", tenantID, "error", err)
		return
	}
	conv, err := s.conversations.GetOrCreate(ctx, tenantID, cust.ID)
	if err != nil {
		slog.Error("inbound webhook: failed to resolve conversation",
			"tenant_id", tenantID, "customer_id", cust.ID, "error", err)
		return
	}
	msg.CustomerID = cust.ID

	disposition, err := s.harmonizer.Ingest(ctx, conv.ID, msg, s.midCheckout(ctx, conv.ID))
	if err != nil {
		slog.Error("inbound webhook: ingest failed",
			"conversation_id", conv.ID, "error", err)
		return
	}
	slog.Debug("inbound message ingested",
		"conversation_id", conv.ID, "disposition", disposition)
}

// midCheckout reports whether the conversation has a checkout session in a
// payment-critical state. Such replies bypass the burst buffer.
func (s *Server) midCheckout(ctx context.Context, conversationID string) bool {
	exists, err := s.db.CheckoutSession.Query().
		Where(
			checkoutsession.ConversationID(conversationID),
			checkoutsession.StateIn(
				checkoutsession.StatePaymentMethodSelected,
				checkoutsession.StatePaymentInitiated,
			),
		).
		Exist(ctx)
	if err != nil {
		return false
	}
	return exists
}

// paymentWebhookHandler handles POST /v1/webhooks/payments/:provider/.
// The signed timestamp is checked against the configured tolerance; invalid
// or stale signatures are logged and dropped with 401.
func (s *Server) paymentWebhookHandler(c *echo.Context) error {
	tenantID := c.QueryParam("tenant")
	if tenantID == "" {
		return newAPIError(http.StatusBadRequest, CodeValidationFailed, "tenant query parameter required")
	}

	ctx := c.Request().Context()
	creds, err := s.settings.PaymentCredentials(ctx, tenantID)
	if err != nil {
		return newAPIError(http.StatusUnauthorized, CodeAuthenticationRequired, "signature verification failed")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return newAPIError(http.StatusBadRequest, CodeValidationFailed, "failed to read body")
	}

	cb, err := payments.VerifyCallback(creds.WebhookSecret, body,
		c.Request().Header.Get(payments.SignatureHeader), s.webhookTolerance(), time.Now())
	if err != nil {
		slog.Warn("payment callback rejected",
			"tenant_id", tenantID,
			"provider", c.Param("provider"),
			"error", err)
		return newAPIError(http.StatusUnauthorized, CodeAuthenticationRequired, "signature verification failed")
	}

	// Scope the callback to the tenant whose secret verified the signature;
	// request ids from other tenants must read as unknown.
	if err := s.checkout.HandleCallback(ctx, tenantID, *cb); err != nil {
		if errors.Is(err, checkout.ErrUnknownPaymentRequest) {
			return newAPIError(http.StatusNotFound, CodeNotFound, "unknown payment request")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &WebhookAck{Status: "processed"})
}

func (s *Server) publicBaseURL() string {
	if s.cfg != nil && s.cfg.System != nil {
		return s.cfg.System.PublicBaseURL
	}
	return ""
}

func (s *Server) webhookTolerance() time.Duration {
	if s.cfg != nil && s.cfg.System != nil {
		return s.cfg.System.WebhookTolerance
	}
	return 5 * time.Minute
}
