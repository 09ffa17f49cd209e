package agent

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/auditlog"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	entconversation "github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/conversationcontext"
	"github.com/sokochat/sokochat/ent/message"
	entorder "github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/grounding"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/llm"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/refcontext"
	testdb "github.com/sokochat/sokochat/test/database"
)

type stubCompleter struct {
	mu    sync.Mutex
	resp  *llm.Response
	err   error
	calls []llm.Request
}

func (s *stubCompleter) Execute(_ context.Context, _ []string, req llm.Request) (*llm.Response, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, "", s.err
	}
	return s.resp, "stub", nil
}

type stubAgentDispatcher struct {
	mu    sync.Mutex
	calls []dispatch.Input
}

func (s *stubAgentDispatcher) Send(_ context.Context, in dispatch.Input) (*dispatch.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in)
	return &dispatch.Result{Outcome: dispatch.OutcomeSent, Message: &ent.Message{ID: uuid.NewString()}}, nil
}

// recordingNotifier captures the checkout machine's own outbound messages.
type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) SendTransactional(_ context.Context, _, _, _, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return nil
}

type stubInitiator struct{}

func (stubInitiator) Initiate(context.Context, payments.Credentials, payments.InitiateInput) (*payments.InitiateResult, error) {
	return &payments.InitiateResult{ProviderRef: "ref-1", Instructions: "Enter your PIN to confirm."}, nil
}

type stubPayCreds struct{}

func (stubPayCreds) PaymentCredentials(context.Context, string) (payments.Credentials, error) {
	return payments.Credentials{APIKey: "k"}, nil
}

type stubAttributor struct {
	mu    sync.Mutex
	calls int
}

func (s *stubAttributor) AttributeResponse(context.Context, string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil
}

func agentTestConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{Language: "en"},
		System:   &config.SystemConfig{PublicBaseURL: "http://localhost:8080"},
		Agent:    config.DefaultAgentConfig(),
		FailoverChainRegistry: config.NewFailoverChainRegistry(map[string]*config.FailoverChainConfig{
			"default": {
				Providers:    []string{"stub"},
				Complexities: []config.Complexity{config.ComplexitySimple, config.ComplexityStandard, config.ComplexityComplex},
			},
		}),
	}
}

type agentWorld struct {
	tenantID   string
	customerID string
	convID     string
	variantID  string

	orc        *Orchestrator
	completer  *stubCompleter
	dispatcher *stubAgentDispatcher
	notifier   *recordingNotifier
	refs       *refcontext.Manager
	attributor *stubAttributor
}

func newAgentWorld(t *testing.T, client *ent.Client) *agentWorld {
	t.Helper()
	ctx := context.Background()
	cfg := agentTestConfig()

	tenantID := uuid.NewString()
	_, err := client.Tenant.Create().
		SetID(tenantID).
		SetName("Duka la Mitumba").
		SetSlug("duka-" + tenantID[:8]).
		Save(ctx)
	require.NoError(t, err)

	customerID := uuid.NewString()
	_, err = client.Customer.Create().
		SetID(customerID).
		SetTenantID(tenantID).
		SetPhoneE164("+254700000001").
		SetDisplayName("Amina").
		Save(ctx)
	require.NoError(t, err)

	convID := uuid.NewString()
	_, err = client.Conversation.Create().
		SetID(convID).
		SetTenantID(tenantID).
		SetCustomerID(customerID).
		Save(ctx)
	require.NoError(t, err)

	_, variantID := seedProduct(t, client, tenantID, "Kitenge Dress", []string{"dresses"}, 250000, 5)

	completer := &stubCompleter{resp: &llm.Response{Text: "We open at 9 in the morning.", InputTokens: 40, OutputTokens: 12}}
	dispatcher := &stubAgentDispatcher{}
	notifier := &recordingNotifier{}
	refs := refcontext.NewManager(client, cfg.Agent.ReferenceTTL)
	attributor := &stubAttributor{}

	orc := NewOrchestrator(client, cfg, Deps{
		Locker:     NewMemoryLocker(),
		Retriever:  NewRetriever(client, cfg.Agent.Retrieval, nil),
		References: refs,
		Validator:  grounding.NewValidator(cfg.Agent),
		Router:     llm.NewRouter(cfg),
		Completer:  completer,
		Checkout:   checkout.NewMachine(client, stubInitiator{}, notifier),
		Dispatcher: dispatcher,
		Payments:   stubPayCreds{},
		Campaigns:  attributor,
	})
	orc.sleep = func(context.Context, time.Duration) error { return nil }

	return &agentWorld{
		tenantID:   tenantID,
		customerID: customerID,
		convID:     convID,
		variantID:  variantID,
		orc:        orc,
		completer:  completer,
		dispatcher: dispatcher,
		notifier:   notifier,
		refs:       refs,
		attributor: attributor,
	}
}

func (w *agentWorld) turn(text string) harmonizer.Turn {
	return harmonizer.Turn{
		ConversationID: w.convID,
		TenantID:       w.tenantID,
		CustomerID:     w.customerID,
		Messages: []harmonizer.BufferedMessage{{
			ProviderMessageID: uuid.NewString(),
			TenantID:          w.tenantID,
			CustomerID:        w.customerID,
			Text:              text,
			ReceivedAt:        time.Now(),
		}},
		CombinedText: text,
	}
}

func TestOrchestrator_GenericTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	ctx := context.Background()

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("what time do you open?")))

	require.Len(t, w.completer.calls, 1)
	require.Len(t, w.dispatcher.calls, 1)
	out := w.dispatcher.calls[0]
	assert.Equal(t, message.MessageTypeAutomatedTransactional, out.MessageType)
	assert.Equal(t, "We open at 9 in the morning.", out.Content)

	inbound, err := client.Message.Query().
		Where(message.ConversationID(w.convID), message.DirectionEQ(message.DirectionInbound)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, inbound, 1)
	assert.Equal(t, "what time do you open?", inbound[0].Content)

	ctxRow, err := client.ConversationContext.Query().
		Where(conversationcontext.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", ctxRow.LockedLanguage)
	assert.Equal(t, "what time do you open?", ctxRow.LastCustomerMessage)

	cust, err := client.Customer.Get(ctx, w.customerID)
	require.NoError(t, err)
	assert.NotNil(t, cust.LastActivityAt)
	assert.Equal(t, 1, w.attributor.calls)
}

func TestOrchestrator_DuplicateInboundNotStoredTwice(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	ctx := context.Background()

	turn := w.turn("hello there")
	require.NoError(t, w.orc.HandleTurn(ctx, turn))
	require.NoError(t, w.orc.HandleTurn(ctx, turn))

	count, err := client.Message.Query().
		Where(
			message.ConversationID(w.convID),
			message.DirectionEQ(message.DirectionInbound),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOrchestrator_BrowseListsAndRegistersReferences(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	ctx := context.Background()

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("do you have dresses?")))

	assert.Empty(t, w.completer.calls, "catalog listings never go through the model")
	require.Len(t, w.dispatcher.calls, 1)
	reply := w.dispatcher.calls[0].Content
	assert.Contains(t, reply, "1. Kitenge Dress")
	assert.Contains(t, reply, "KES 2500")

	lists, err := w.refs.Live(ctx, w.convID, time.Now())
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].Items, 1)
	assert.Equal(t, w.variantID, lists[0].Items[0].ID)
}

func TestOrchestrator_CheckoutFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	ctx := context.Background()

	// Show the list, then select item 1.
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("do you have dresses?")))
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("1")))

	sess, err := client.CheckoutSession.Query().
		Where(checkoutsession.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StateProductSelected, sess.State)
	require.NotNil(t, sess.VariantID)
	assert.Equal(t, w.variantID, *sess.VariantID)
	require.NotEmpty(t, w.notifier.texts)
	assert.Contains(t, w.notifier.texts[len(w.notifier.texts)-1], "How many")

	// The context row mirrors the checkout stage for the next turn.
	ctxRow, err := client.ConversationContext.Query().
		Where(conversationcontext.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, conversationcontext.CheckoutStateProductSelected, ctxRow.CheckoutState)

	// Quantity, then payment.
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("2")))
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("pay")))

	sess, err = client.CheckoutSession.Query().
		Where(checkoutsession.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StatePaymentInitiated, sess.State)

	order, err := client.Order.Query().
		Where(entorder.TenantID(w.tenantID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entorder.StatusPendingPayment, order.Status)
	assert.Equal(t, 500000, order.TotalCents, "total is server-side price times quantity")

	variant, err := client.ProductVariant.Get(ctx, w.variantID)
	require.NoError(t, err)
	assert.Equal(t, 3, variant.Stock)
}

func TestOrchestrator_PayRetryAfterFailureCallback(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	ctx := context.Background()

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("do you have dresses?")))
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("1")))
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("2")))
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("pay")))

	sess, err := client.CheckoutSession.Query().
		Where(checkoutsession.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, checkoutsession.StatePaymentInitiated, sess.State)
	firstOrder := *sess.OrderID

	require.NoError(t, w.orc.deps.Checkout.HandleCallback(ctx, w.tenantID, payments.Callback{
		PaymentRequestID: *sess.PaymentRequestID,
		Status:           payments.CallbackFailed,
		FailureReason:    "insufficient funds",
		EventID:          "evt_1",
	}))

	// The failure message offered a retry; PAY takes it.
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("pay")))

	sess, err = client.CheckoutSession.Query().
		Where(checkoutsession.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, checkoutsession.StatePaymentInitiated, sess.State)
	require.NotNil(t, sess.OrderID)
	assert.NotEqual(t, firstOrder, *sess.OrderID, "the retry creates a fresh order")

	canceled, err := client.Order.Query().
		Where(entorder.StatusEQ(entorder.StatusCanceled)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, canceled)
	pending, err := client.Order.Query().
		Where(entorder.StatusEQ(entorder.StatusPendingPayment)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestOrchestrator_ProviderOutageFallsBack(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	w.completer.err = llm.ErrAllProvidersFailed
	ctx := context.Background()

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("tell me about your return policy")))

	require.Len(t, w.dispatcher.calls, 1)
	out := w.dispatcher.calls[0]
	assert.Equal(t, message.MessageTypeFallback, out.MessageType)
	assert.Equal(t, config.DefaultAgentConfig().Fallback, out.Content)

	conv, err := client.Conversation.Get(ctx, w.convID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StatusHandoff, conv.Status)

	audits, err := client.AuditLog.Query().
		Where(auditlog.Action("conversation.handoff")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)
}

func TestOrchestrator_LowConfidenceHandoff(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	low := 0.1
	w.completer.resp = &llm.Response{Text: "Maybe, I think so.", Confidence: &low}
	ctx := context.Background()

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("can you alter a gown for me?")))
	conv, err := client.Conversation.Get(ctx, w.convID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StatusBot, conv.Status, "one low-confidence turn is not enough")

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("so is that something you do?")))
	conv, err = client.Conversation.Get(ctx, w.convID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StatusHandoff, conv.Status)

	last := w.dispatcher.calls[len(w.dispatcher.calls)-1]
	assert.Contains(t, last.Content, "connecting you with the team")

	// A human owns the conversation now; the agent stays quiet.
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("hello?")))
	assert.Len(t, w.dispatcher.calls, 2)
}

func TestOrchestrator_PanicDegradesToFallback(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	w.orc.deps.Retriever = nil // forces a nil dereference mid-pipeline
	ctx := context.Background()

	err := w.orc.HandleTurn(ctx, w.turn("hi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	require.Len(t, w.dispatcher.calls, 1)
	assert.Equal(t, message.MessageTypeFallback, w.dispatcher.calls[0].MessageType)

	conv, dbErr := client.Conversation.Get(ctx, w.convID)
	require.NoError(t, dbErr)
	assert.Equal(t, entconversation.StatusHandoff, conv.Status)
}

func TestOrchestrator_LanguageLockPersists(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newAgentWorld(t, client)
	w.completer.resp = &llm.Response{Text: "Karibu sana!"}
	ctx := context.Background()

	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("habari yako, duka liko wapi?")))

	ctxRow, err := client.ConversationContext.Query().
		Where(conversationcontext.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sw", ctxRow.LockedLanguage)

	// A clear switch to English updates the lock.
	require.NoError(t, w.orc.HandleTurn(ctx, w.turn("sorry, could we continue in English please?")))
	ctxRow, err = client.ConversationContext.Query().
		Where(conversationcontext.ConversationID(w.convID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", ctxRow.LockedLanguage)
}
