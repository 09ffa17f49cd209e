package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/campaign"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/database"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/scheduler"
	"github.com/sokochat/sokochat/pkg/services"
)

// CredentialProber checks integration credentials against the external
// provider before they are stored. A nil prober skips the check.
type CredentialProber interface {
	Probe(ctx context.Context, provider string, payload map[string]string) error
}

// Deps bundles everything the HTTP layer fronts.
type Deps struct {
	Auth          *services.AuthService
	Tenants       *services.TenantService
	Scopes        *services.ScopeService
	Audit         *services.AuditService
	Customers     *services.CustomerService
	Conversations *services.ConversationService
	Messages      *services.MessageService
	Templates     *services.TemplateService
	Appointments  *services.AppointmentService
	Withdrawals   *services.WithdrawalService
	Orders        *services.OrderService
	Settings      *services.SettingsService
	Catalog       *services.CatalogService

	Campaigns  *campaign.Engine
	Harmonizer *harmonizer.Harmonizer
	Checkout   *checkout.Machine
	WorkerPool *scheduler.WorkerPool
	Prober     CredentialProber
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	db         *database.Client

	auth          *services.AuthService
	tenants       *services.TenantService
	scopes        *services.ScopeService
	audit         *services.AuditService
	customers     *services.CustomerService
	conversations *services.ConversationService
	messages      *services.MessageService
	templates     *services.TemplateService
	appointments  *services.AppointmentService
	withdrawals   *services.WithdrawalService
	orders        *services.OrderService
	settings      *services.SettingsService
	catalog       *services.CatalogService

	campaigns  *campaign.Engine
	harmonizer *harmonizer.Harmonizer
	checkout   *checkout.Machine
	workerPool *scheduler.WorkerPool
	prober     CredentialProber
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, db *database.Client, deps Deps) *Server {
	s := &Server{
		echo: echo.New(),
		cfg:  cfg,
		db:   db,

		auth:          deps.Auth,
		tenants:       deps.Tenants,
		scopes:        deps.Scopes,
		audit:         deps.Audit,
		customers:     deps.Customers,
		conversations: deps.Conversations,
		messages:      deps.Messages,
		templates:     deps.Templates,
		appointments:  deps.Appointments,
		withdrawals:   deps.Withdrawals,
		orders:        deps.Orders,
		settings:      deps.Settings,
		catalog:       deps.Catalog,

		campaigns:  deps.Campaigns,
		harmonizer: deps.Harmonizer,
		checkout:   deps.Checkout,
		workerPool: deps.WorkerPool,
		prober:     deps.Prober,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.Use(
		errorEnvelope(),
		recovery(),
		requestID(),
		requestLogger(),
		securityHeaders(),
		s.cors(),
	)

	e.GET("/health", s.healthHandler)
	e.GET("/version", s.versionHandler)

	// Unauthenticated: login/register and provider webhooks. Webhooks carry
	// their own signature verification instead of bearer auth.
	e.POST("/v1/auth/register", s.registerHandler)
	e.POST("/v1/auth/login", s.loginHandler)
	e.POST("/v1/webhooks/twilio/", s.twilioWebhookHandler)
	e.POST("/v1/webhooks/payments/:provider/", s.paymentWebhookHandler)

	// Self-service: bearer token only, no tenant context.
	self := e.Group("/v1", s.authenticate())
	self.POST("/tenants", s.createTenantHandler)
	self.GET("/tenants", s.listTenantsHandler)

	// Platform operators.
	platform := e.Group("/v1/platform", s.authenticate(), s.requireSuperuser())
	platform.GET("/tenants", s.platformListTenantsHandler)
	platform.POST("/tenants/:id/suspend", s.platformSuspendTenantHandler)
	platform.POST("/tenants/:id/activate", s.platformActivateTenantHandler)

	// Tenant-scoped: bearer token plus tenant headers, per-route scopes.
	t := e.Group("/v1", s.authenticate(), s.requireTenant())

	t.POST("/messages/send", s.sendMessageHandler, requireScopes(services.ScopeConversationsView))
	t.POST("/messages/schedule", s.scheduleMessageHandler, requireScopes(services.ScopeConversationsView))
	t.GET("/messages/rate-limit-status", s.rateLimitStatusHandler, requireScopes(services.ScopeAnalyticsView))
	t.GET("/messages/conversations", s.listConversationsHandler, requireScopes(services.ScopeConversationsView))
	t.GET("/messages/conversations/:id/messages", s.conversationMessagesHandler, requireScopes(services.ScopeConversationsView))
	t.POST("/messages/conversations/:id/handoff", s.handoffHandler, requireScopes(services.ScopeHandoffPerform))
	t.POST("/messages/conversations/:id/release", s.releaseHandler, requireScopes(services.ScopeHandoffPerform))

	t.GET("/catalog/products", s.listProductsHandler, requireScopes(services.ScopeCatalogView))
	t.POST("/catalog/products", s.createProductHandler, requireScopes(services.ScopeCatalogEdit))
	t.GET("/catalog/products/:id", s.getProductHandler, requireScopes(services.ScopeCatalogView))
	t.POST("/catalog/products/:id/archive", s.archiveProductHandler, requireScopes(services.ScopeCatalogEdit))
	t.PATCH("/catalog/variants/:id/stock", s.setStockHandler, requireScopes(services.ScopeCatalogEdit))
	t.GET("/catalog/knowledge", s.listKnowledgeHandler, requireScopes(services.ScopeCatalogView))
	t.POST("/catalog/knowledge", s.createKnowledgeHandler, requireScopes(services.ScopeCatalogEdit))
	t.DELETE("/catalog/knowledge/:id", s.deleteKnowledgeHandler, requireScopes(services.ScopeCatalogEdit))

	t.GET("/templates", s.listTemplatesHandler, requireScopes(services.ScopeConversationsView))
	t.POST("/templates", s.createTemplateHandler, requireScopes(services.ScopeCatalogEdit))

	t.GET("/campaigns", s.listCampaignsHandler, requireScopes(services.ScopeAnalyticsView))
	t.POST("/campaigns", s.createCampaignHandler, requireScopes(services.ScopeCatalogEdit))
	t.POST("/campaigns/:id/execute", s.executeCampaignHandler, requireScopes(services.ScopeCatalogEdit))
	t.GET("/campaigns/:id/report", s.campaignReportHandler, requireScopes(services.ScopeAnalyticsView))

	t.POST("/wallet/withdraw", s.withdrawHandler, requireScopes(services.ScopeWithdrawInitiate))
	t.POST("/wallet/withdrawals/:id/approve", s.approveWithdrawalHandler, requireScopes(services.ScopeWithdrawApprove))
	t.GET("/wallet/withdrawals", s.listWithdrawalsHandler, requireScopes(services.ScopeFinanceView))

	t.PUT("/settings/integrations/:provider", s.updateIntegrationHandler, requireScopes(services.ScopeIntegrationsEdit))
	t.GET("/settings/integrations", s.listIntegrationsHandler, requireScopes(services.ScopeIntegrationsEdit))
	t.GET("/settings/onboarding", s.onboardingHandler)

	t.GET("/customers", s.listCustomersHandler, requireScopes(services.ScopeConversationsView))
	t.POST("/customers", s.createCustomerHandler, requireScopes(services.ScopeConversationsView))
	t.PATCH("/customers/:id/consent", s.updateConsentHandler, requireScopes(services.ScopeConversationsView))

	t.GET("/appointments", s.listAppointmentsHandler, requireScopes(services.ScopeAppointmentsView))
	t.POST("/appointments", s.createAppointmentHandler, requireScopes(services.ScopeAppointmentsEdit))
	t.POST("/appointments/:id/cancel", s.cancelAppointmentHandler, requireScopes(services.ScopeAppointmentsEdit))

	t.GET("/orders", s.listOrdersHandler, requireScopes(services.ScopeOrdersView))
	t.POST("/orders/:id/paid", s.markOrderPaidHandler, requireScopes(services.ScopeOrdersEdit))
	t.POST("/orders/:id/fulfill", s.markOrderFulfilledHandler, requireScopes(services.ScopeOrdersEdit))
	t.POST("/orders/:id/cancel", s.cancelOrderHandler, requireScopes(services.ScopeOrdersEdit))
}

// Start runs the server until Shutdown is called. It blocks.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
