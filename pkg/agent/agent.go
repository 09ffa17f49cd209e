// Package agent orchestrates one conversational turn: it serializes turns
// per conversation, detects the response language, builds a retrieval-backed
// context pack, resolves list references, infers the customer's intent,
// drives the checkout machine or calls the LLM, grounds the draft, and
// dispatches the reply. A panic inside a turn degrades to a courtesy
// fallback and a human handoff, never a dropped conversation.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/conversationcontext"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenantsettings"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/grounding"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/llm"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/refcontext"
)

const (
	// lockWaitInterval and lockWaitMax bound how long a turn waits for an
	// in-flight turn on the same conversation to finish.
	lockWaitInterval = 250 * time.Millisecond
	lockWaitMax      = 30 * time.Second

	// sessionGap is the inactivity gap that starts a new session.
	sessionGap = 24 * time.Hour
)

// Completer walks a failover chain for one completion. Implemented by
// llm.Manager.
type Completer interface {
	Execute(ctx context.Context, chain []string, req llm.Request) (*llm.Response, string, error)
}

// MessageDispatcher sends the turn's outbound reply.
type MessageDispatcher interface {
	Send(ctx context.Context, in dispatch.Input) (*dispatch.Result, error)
}

// PaymentCredentials resolves a tenant's decrypted payment credentials.
type PaymentCredentials interface {
	PaymentCredentials(ctx context.Context, tenantID string) (payments.Credentials, error)
}

// ResponseAttributor credits inbound replies to recent campaign sends.
// Implemented by the campaign engine.
type ResponseAttributor interface {
	AttributeResponse(ctx context.Context, tenantID, customerID string) error
}

// Deps are the orchestrator's collaborators. Payments and Campaigns are
// optional.
type Deps struct {
	Locker     ConversationLocker
	Retriever  *Retriever
	References *refcontext.Manager
	Validator  *grounding.Validator
	Router     *llm.Router
	Completer  Completer
	Checkout   *checkout.Machine
	Dispatcher MessageDispatcher
	Payments   PaymentCredentials
	Campaigns  ResponseAttributor
}

// Orchestrator implements harmonizer.TurnHandler.
type Orchestrator struct {
	client *ent.Client
	cfg    *config.Config
	deps   Deps

	// overridable in tests
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewOrchestrator creates the turn orchestrator.
func NewOrchestrator(client *ent.Client, cfg *config.Config, deps Deps) *Orchestrator {
	if client == nil {
		panic("agent.NewOrchestrator: client is required")
	}
	return &Orchestrator{
		client: client,
		cfg:    cfg,
		deps:   deps,
		sleep:  sleepCtx,
		now:    time.Now,
	}
}

var _ harmonizer.TurnHandler = (*Orchestrator)(nil)

// turnState is everything loaded up front for one turn.
type turnState struct {
	conv       *ent.Conversation
	tenant     *ent.Tenant
	branding   *schema.Branding
	customer   *ent.Customer
	ctxRow     *ent.ConversationContext
	lists      []refcontext.List
	hadExpired bool
}

// HandleTurn processes one harmonized turn under the conversation lock.
// A turn arriving while another is in flight waits for it, preserving
// arrival order within the conversation.
func (o *Orchestrator) HandleTurn(ctx context.Context, turn harmonizer.Turn) error {
	release, err := o.acquireLock(ctx, turn.ConversationID)
	if err != nil {
		return err
	}
	defer release(ctx)

	return o.runTurn(ctx, turn)
}

func (o *Orchestrator) acquireLock(ctx context.Context, conversationID string) (func(context.Context), error) {
	deadline := o.now().Add(lockWaitMax)
	for {
		release, ok, err := o.deps.Locker.TryAcquire(ctx, conversationID)
		if err != nil {
			return nil, err
		}
		if ok {
			return release, nil
		}
		if o.now().After(deadline) {
			return nil, fmt.Errorf("conversation %s: timed out waiting for the in-flight turn", conversationID)
		}
		if err := o.sleep(ctx, lockWaitInterval); err != nil {
			return nil, err
		}
	}
}

// runTurn executes the pipeline. Panics are recovered into the fallback
// path: the customer gets a courtesy message and the conversation flips to
// handoff.
func (o *Orchestrator) runTurn(ctx context.Context, turn harmonizer.Turn) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("turn pipeline panicked",
				"conversation_id", turn.ConversationID,
				"tenant_id", turn.TenantID,
				"panic", r)
			o.failSafe(ctx, turn)
			err = fmt.Errorf("turn pipeline panicked: %v", r)
		}
	}()

	now := o.now()
	state, err := o.loadState(ctx, turn)
	if err != nil {
		return err
	}

	// Session history reflects the conversation as of before this turn; the
	// turn text itself goes into the prompt separately.
	history, summary, err := o.sessionContext(ctx, state.conv, now)
	if err != nil {
		return err
	}
	if err := o.recordInbound(ctx, turn, now); err != nil {
		return err
	}

	// A human owns the conversation; the agent stays quiet.
	if state.conv.Status == conversation.StatusHandoff || state.conv.Status == conversation.StatusClosed {
		slog.Debug("skipping agent turn, conversation not bot-managed",
			"conversation_id", turn.ConversationID, "status", state.conv.Status)
		return o.persistQuietTurn(ctx, turn, state, now)
	}

	lang := o.resolveLanguage(state.ctxRow, turn.CombinedText)

	ret, err := o.deps.Retriever.Retrieve(ctx, turn.TenantID, turn.CombinedText)
	if err != nil {
		return err
	}

	resolution := refcontext.Resolve(turn.CombinedText, state.lists, state.hadExpired)
	intent := inferIntent(turn.CombinedText, resolution, state.ctxRow.CheckoutState)

	res, err := o.handle(ctx, turn, state, ret, resolution, intent, lang, history, summary)
	if err != nil {
		return err
	}

	reply := res.reply
	if reply != "" {
		reply, _ = o.deps.Validator.Validate(reply, turn.CombinedText, ret.Pack)
	}

	lowConfidence := res.viaLLM && res.confidence != nil && *res.confidence < o.cfg.Agent.ConfidenceThreshold
	lowTurns := 0
	if lowConfidence {
		lowTurns = state.ctxRow.LowConfidenceTurns + 1
	}
	handoff := res.handoff || (lowConfidence && lowTurns >= o.cfg.Agent.LowConfidenceHandoffAfter)
	if handoff && !res.handoff {
		reply = strings.TrimSpace(reply + "\n" + handoffNotice(lang))
	}

	if reply != "" {
		msgType := message.MessageTypeAutomatedTransactional
		if res.handoff {
			msgType = message.MessageTypeFallback
		}
		if _, err := o.deps.Dispatcher.Send(ctx, dispatch.Input{
			TenantID:       turn.TenantID,
			ConversationID: turn.ConversationID,
			CustomerID:     turn.CustomerID,
			MessageType:    msgType,
			Content:        reply,
		}); err != nil {
			return fmt.Errorf("failed to dispatch turn reply: %w", err)
		}
	}

	if len(res.listItems) > 0 {
		if _, err := o.deps.References.Register(ctx, turn.TenantID, turn.ConversationID, res.listType, res.listItems); err != nil {
			slog.Error("failed to register reference list",
				"conversation_id", turn.ConversationID, "error", err)
		}
	}

	if err := o.persistTurn(ctx, turn, state, now, lang, reply, lowTurns, handoff); err != nil {
		return err
	}

	slog.Info("turn completed",
		"conversation_id", turn.ConversationID,
		"tenant_id", turn.TenantID,
		"intent", intent,
		"language", lang,
		"provider", res.provider,
		"input_tokens", res.inputTokens,
		"output_tokens", res.outputTokens,
		"cost_estimate", res.costEstimate,
		"handoff", handoff)
	return nil
}

// loadState loads the rows every turn needs, creating the context row on
// first contact.
func (o *Orchestrator) loadState(ctx context.Context, turn harmonizer.Turn) (*turnState, error) {
	conv, err := o.client.Conversation.Get(ctx, turn.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	tn, err := o.client.Tenant.Get(ctx, turn.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	cust, err := o.client.Customer.Get(ctx, turn.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	var branding *schema.Branding
	settings, err := o.client.TenantSettings.Query().
		Where(tenantsettings.TenantID(turn.TenantID)).
		Only(ctx)
	if err == nil {
		branding = settings.Branding
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	ctxRow, err := o.client.ConversationContext.Query().
		Where(conversationcontext.ConversationID(turn.ConversationID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		ctxRow, err = o.client.ConversationContext.Create().
			SetID(uuid.New().String()).
			SetTenantID(turn.TenantID).
			SetConversationID(turn.ConversationID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation context: %w", err)
	}

	now := o.now()
	lists, err := o.deps.References.Live(ctx, turn.ConversationID, now)
	if err != nil {
		return nil, err
	}
	hadExpired := false
	if len(lists) == 0 {
		hadExpired, err = o.deps.References.HadRecentLists(ctx, turn.ConversationID, now)
		if err != nil {
			return nil, err
		}
	}

	return &turnState{
		conv:       conv,
		tenant:     tn,
		branding:   branding,
		customer:   cust,
		ctxRow:     ctxRow,
		lists:      lists,
		hadExpired: hadExpired,
	}, nil
}

// resolveLanguage applies the conversation's language lock: a locked
// language holds until the customer clearly switches.
func (o *Orchestrator) resolveLanguage(ctxRow *ent.ConversationContext, text string) string {
	detected := detectLanguage(text)
	locked := ctxRow.LockedLanguage

	if locked == "" {
		if detected != "" {
			return detected
		}
		if o.cfg.Defaults != nil && o.cfg.Defaults.Language != "" {
			return o.cfg.Defaults.Language
		}
		return languageEnglish
	}
	if detected != "" && detected != locked {
		return detected
	}
	return locked
}

// sessionContext returns the current session's recent messages (oldest
// first) and a one-line summary of prior sessions. A gap of sessionGap or
// more means this turn opens a fresh session with no carried history.
func (o *Orchestrator) sessionContext(ctx context.Context, conv *ent.Conversation, now time.Time) ([]*ent.Message, string, error) {
	newSession := conv.LastMessageAt == nil || now.Sub(*conv.LastMessageAt) >= sessionGap

	if newSession {
		total, err := o.client.Message.Query().
			Where(message.ConversationID(conv.ID)).
			Count(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to count prior messages: %w", err)
		}
		if total == 0 {
			return nil, "", nil
		}
		return nil, fmt.Sprintf("Returning customer: %d messages in earlier sessions.", total), nil
	}

	q := o.client.Message.Query().Where(message.ConversationID(conv.ID))
	if conv.CurrentSessionStart != nil {
		q = q.Where(message.CreatedAtGTE(*conv.CurrentSessionStart))
	}
	recent, err := q.
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(o.cfg.Agent.HistoryWindow).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load session history: %w", err)
	}
	// Oldest first for the prompt.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	summary := ""
	if conv.CurrentSessionStart != nil {
		prior, err := o.client.Message.Query().
			Where(
				message.ConversationID(conv.ID),
				message.CreatedAtLT(*conv.CurrentSessionStart),
			).
			Count(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to count prior messages: %w", err)
		}
		if prior > 0 {
			summary = fmt.Sprintf("Returning customer: %d messages in earlier sessions.", prior)
		}
	}
	return recent, summary, nil
}

// recordInbound writes one Message row per buffered inbound (idempotent on
// provider message id) and advances the conversation's session bookkeeping.
func (o *Orchestrator) recordInbound(ctx context.Context, turn harmonizer.Turn, now time.Time) error {
	stored := 0
	for _, m := range turn.Messages {
		exists, err := o.client.Message.Query().
			Where(
				message.TenantID(turn.TenantID),
				message.ProviderMessageID(m.ProviderMessageID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check inbound message: %w", err)
		}
		if exists {
			continue
		}
		if _, err := o.client.Message.Create().
			SetID(uuid.New().String()).
			SetTenantID(turn.TenantID).
			SetConversationID(turn.ConversationID).
			SetDirection(message.DirectionInbound).
			SetMessageType(message.MessageTypeCustomerInbound).
			SetContent(m.Text).
			SetProviderMessageID(m.ProviderMessageID).
			SetStatus(message.StatusDelivered).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to store inbound message: %w", err)
		}
		stored++
	}

	conv, err := o.client.Conversation.Get(ctx, turn.ConversationID)
	if err != nil {
		return fmt.Errorf("failed to reload conversation: %w", err)
	}
	update := conv.Update().SetLastMessageAt(now)
	if conv.CurrentSessionStart == nil || conv.LastMessageAt == nil || now.Sub(*conv.LastMessageAt) >= sessionGap {
		update.SetCurrentSessionStart(now).SetSessionMessageCount(stored)
	} else {
		update.AddSessionMessageCount(stored)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update conversation session: %w", err)
	}
	return nil
}

// persistQuietTurn records activity for turns the agent does not answer.
func (o *Orchestrator) persistQuietTurn(ctx context.Context, turn harmonizer.Turn, state *turnState, now time.Time) error {
	if err := state.ctxRow.Update().
		SetLastCustomerMessage(turn.CombinedText).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update conversation context: %w", err)
	}
	return o.touchCustomer(ctx, turn, now)
}

// persistTurn writes the turn's durable state: conversation context,
// checkout-state mirror, customer activity, handoff status, and campaign
// attribution.
func (o *Orchestrator) persistTurn(ctx context.Context, turn harmonizer.Turn, state *turnState, now time.Time, lang, reply string, lowTurns int, handoff bool) error {
	update := state.ctxRow.Update().
		SetLastCustomerMessage(turn.CombinedText).
		SetLockedLanguage(lang).
		SetLowConfidenceTurns(lowTurns)
	if reply != "" {
		update.SetLastBotMessage(reply)
	}

	// Mirror the live checkout session so intent inference sees the current
	// stage next turn.
	sess, err := o.client.CheckoutSession.Query().
		Where(checkoutsession.ConversationID(turn.ConversationID)).
		Order(ent.Desc(checkoutsession.FieldCreatedAt)).
		First(ctx)
	switch {
	case err == nil:
		update.SetCheckoutState(conversationcontext.CheckoutState(sess.State))
		if sess.VariantID != nil {
			update.SetSelectedVariantID(*sess.VariantID)
		}
		if sess.Quantity != nil {
			update.SetSelectedQuantity(*sess.Quantity)
		}
	case !ent.IsNotFound(err):
		return fmt.Errorf("failed to load checkout session: %w", err)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update conversation context: %w", err)
	}

	if handoff {
		if err := state.conv.Update().
			SetStatus(conversation.StatusHandoff).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to flag conversation for handoff: %w", err)
		}
		o.auditHandoff(ctx, turn)
	} else if state.conv.Status == conversation.StatusDormant {
		if err := state.conv.Update().
			SetStatus(conversation.StatusBot).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to reopen dormant conversation: %w", err)
		}
	}

	if err := o.touchCustomer(ctx, turn, now); err != nil {
		return err
	}

	if o.deps.Campaigns != nil {
		if err := o.deps.Campaigns.AttributeResponse(ctx, turn.TenantID, turn.CustomerID); err != nil {
			slog.Error("failed to attribute campaign response",
				"tenant_id", turn.TenantID, "customer_id", turn.CustomerID, "error", err)
		}
	}
	return nil
}

func (o *Orchestrator) touchCustomer(ctx context.Context, turn harmonizer.Turn, now time.Time) error {
	if err := o.client.Customer.UpdateOneID(turn.CustomerID).
		SetLastActivityAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update customer activity: %w", err)
	}
	return nil
}

// auditHandoff records the handoff decision. Best-effort: audit failures
// never abort the turn.
func (o *Orchestrator) auditHandoff(ctx context.Context, turn harmonizer.Turn) {
	if err := o.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(turn.TenantID).
		SetActorUserID("agent").
		SetAction("conversation.handoff").
		SetTargetType("conversation").
		SetTargetID(turn.ConversationID).
		Exec(ctx); err != nil {
		slog.Error("failed to write handoff audit entry",
			"conversation_id", turn.ConversationID, "error", err)
	}
}

// failSafe is the panic path: a courtesy message to the customer and a
// handoff flag, each best-effort.
func (o *Orchestrator) failSafe(ctx context.Context, turn harmonizer.Turn) {
	if _, err := o.deps.Dispatcher.Send(ctx, dispatch.Input{
		TenantID:       turn.TenantID,
		ConversationID: turn.ConversationID,
		CustomerID:     turn.CustomerID,
		MessageType:    message.MessageTypeFallback,
		Content:        o.fallbackText(),
	}); err != nil {
		slog.Error("failed to send fallback message",
			"conversation_id", turn.ConversationID, "error", err)
	}

	if err := o.client.Conversation.UpdateOneID(turn.ConversationID).
		SetStatus(conversation.StatusHandoff).
		Exec(ctx); err != nil {
		slog.Error("failed to flag conversation for handoff",
			"conversation_id", turn.ConversationID, "error", err)
	}
	o.auditHandoff(ctx, turn)
}

func (o *Orchestrator) fallbackText() string {
	if o.cfg.Agent != nil && o.cfg.Agent.Fallback != "" {
		return o.cfg.Agent.Fallback
	}
	return config.DefaultAgentConfig().Fallback
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
