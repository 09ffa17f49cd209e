package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/llm"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/refcontext"
)

// defaultPaymentProvider is the payment rail used when the customer does not
// name one.
const defaultPaymentProvider = "mpesa"

// turnResult is what one handler produced. reply is empty when the checkout
// machine already messaged the customer itself.
type turnResult struct {
	reply     string
	listItems []refcontext.Item
	listType  string

	viaLLM       bool
	confidence   *float64
	provider     string
	inputTokens  int
	outputTokens int
	costEstimate float64

	// handoff forces a human handoff regardless of confidence (provider
	// outage, unconfigured payments).
	handoff bool
}

// handle routes the turn to its handler. Reference-resolution failures win
// over intent: a reference the customer meant but we cannot bind needs a
// clarification, not a guess.
func (o *Orchestrator) handle(ctx context.Context, turn harmonizer.Turn, state *turnState, ret *Retrieval, resolution refcontext.Resolution, intent Intent, lang string, history []*ent.Message, summary string) (*turnResult, error) {
	// A bare number while a product is selected answers the open quantity
	// question; it never re-binds against the list.
	if intent != IntentQuantity {
		switch resolution.Outcome {
		case refcontext.OutcomeAmbiguous:
			return &turnResult{reply: localize(lang, msgAmbiguous)}, nil
		case refcontext.OutcomeNoLiveList, refcontext.OutcomeNoMatch:
			return &turnResult{reply: localize(lang, msgSpecify)}, nil
		}
	}
	// OutcomeExpired deliberately falls through: stale lists make this a new
	// inquiry, never a silent selection.

	switch intent {
	case IntentSelect:
		return o.handleSelect(ctx, turn, resolution, lang)
	case IntentQuantity:
		return o.handleQuantity(ctx, turn, lang)
	case IntentPay:
		return o.handlePay(ctx, turn, state, lang)
	case IntentBrowse:
		return o.handleBrowse(ctx, turn, state, ret, lang, history, summary)
	default:
		return o.handleGeneric(ctx, turn, state, ret, lang, history, summary)
	}
}

func (o *Orchestrator) handleSelect(ctx context.Context, turn harmonizer.Turn, resolution refcontext.Resolution, lang string) (*turnResult, error) {
	sess, err := o.deps.Checkout.Session(ctx, turn.TenantID, turn.ConversationID)
	if err != nil {
		return nil, err
	}
	if _, err := o.deps.Checkout.SelectProduct(ctx, sess, turn.CustomerID, resolution.Item.ID); err != nil {
		switch {
		case errors.Is(err, checkout.ErrOutOfStock):
			return &turnResult{reply: localize(lang, msgOutOfStock)}, nil
		case errors.Is(err, checkout.ErrInvalidTransition):
			return &turnResult{reply: localize(lang, msgMidCheckout)}, nil
		default:
			return nil, err
		}
	}
	// The machine asked for the quantity itself.
	return &turnResult{}, nil
}

func (o *Orchestrator) handleQuantity(ctx context.Context, turn harmonizer.Turn, lang string) (*turnResult, error) {
	qty, ok := parseQuantity(strings.ToLower(turn.CombinedText))
	if !ok {
		return &turnResult{reply: localize(lang, msgAskQuantity)}, nil
	}
	sess, err := o.deps.Checkout.Session(ctx, turn.TenantID, turn.ConversationID)
	if err != nil {
		return nil, err
	}
	if _, err := o.deps.Checkout.ConfirmQuantity(ctx, sess, turn.CustomerID, qty); err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidQuantity):
			return &turnResult{reply: localize(lang, msgInvalidQuantity)}, nil
		case errors.Is(err, checkout.ErrInvalidTransition):
			return &turnResult{reply: localize(lang, msgPickFirst)}, nil
		default:
			return nil, err
		}
	}
	return &turnResult{}, nil
}

func (o *Orchestrator) handlePay(ctx context.Context, turn harmonizer.Turn, state *turnState, lang string) (*turnResult, error) {
	sess, err := o.deps.Checkout.Session(ctx, turn.TenantID, turn.ConversationID)
	if err != nil {
		return nil, err
	}

	switch sess.State {
	case checkoutsession.StateQuantityConfirmed, checkoutsession.StatePaymentMethodSelected:
		// proceed below
	case checkoutsession.StateFailed:
		// The failure message offered a retry; the variant and quantity were
		// retained, so reopen and run the payment flow again.
		sess, err = o.deps.Checkout.ReopenFailed(ctx, sess)
		if err != nil {
			if errors.Is(err, checkout.ErrInvalidTransition) {
				return &turnResult{reply: localize(lang, msgPickFirst)}, nil
			}
			return nil, err
		}
	case checkoutsession.StateProductSelected:
		return &turnResult{reply: localize(lang, msgAskQuantity)}, nil
	case checkoutsession.StatePaymentInitiated:
		return &turnResult{reply: localize(lang, msgPaymentPending)}, nil
	default:
		return &turnResult{reply: localize(lang, msgPickFirst)}, nil
	}

	if o.deps.Payments == nil {
		return &turnResult{reply: localize(lang, msgPayUnavailable), handoff: true}, nil
	}
	creds, err := o.deps.Payments.PaymentCredentials(ctx, turn.TenantID)
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			return &turnResult{reply: localize(lang, msgPayUnavailable), handoff: true}, nil
		}
		return nil, err
	}

	// A session already holding an order (stranded by an earlier initiation
	// error) goes straight to initiation.
	if sess.State == checkoutsession.StateQuantityConfirmed {
		sess, err = o.deps.Checkout.SelectPaymentMethod(ctx, sess, turn.CustomerID, defaultPaymentProvider)
		if err != nil {
			if errors.Is(err, checkout.ErrInvalidQuantity) {
				return &turnResult{reply: localize(lang, msgInvalidQuantity)}, nil
			}
			return nil, err
		}
	}

	callbackURL := fmt.Sprintf("%s/v1/webhooks/payments/%s/",
		strings.TrimRight(o.cfg.System.PublicBaseURL, "/"), defaultPaymentProvider)
	if _, err := o.deps.Checkout.InitiatePayment(ctx, sess, turn.CustomerID,
		state.customer.PhoneE164, defaultPaymentProvider, callbackURL, creds); err != nil {
		return nil, err
	}
	// The machine sent the initiation (or failure) message itself.
	return &turnResult{}, nil
}

// handleBrowse lists matching catalog items. The enumeration is rendered
// from the database, never the model, so every line is grounded by
// construction. No match falls back to the LLM.
func (o *Orchestrator) handleBrowse(ctx context.Context, turn harmonizer.Turn, state *turnState, ret *Retrieval, lang string, history []*ent.Message, summary string) (*turnResult, error) {
	if len(ret.Candidates) == 0 {
		return o.handleGeneric(ctx, turn, state, ret, lang, history, summary)
	}

	limit := o.cfg.Agent.MaxListItems
	if limit <= 0 || limit > len(ret.Candidates) {
		limit = len(ret.Candidates)
	}

	res := &turnResult{listType: "products"}
	lines := []string{localize(lang, msgBrowseIntro)}
	for i, c := range ret.Candidates[:limit] {
		label := strings.TrimSpace(c.ProductName + " " + c.Variant.Label)
		lines = append(lines, fmt.Sprintf("%d. %s — %s", i+1, label,
			formatPrice(c.Variant.PriceCents, c.Variant.Currency)))
		res.listItems = append(res.listItems, refcontext.Item{
			ID:         c.Variant.ID,
			Label:      label,
			PriceCents: c.Variant.PriceCents,
			Attributes: c.Variant.Attributes,
		})
	}
	lines = append(lines, localize(lang, msgBrowseOutro))
	res.reply = strings.Join(lines, "\n")
	return res, nil
}

func (o *Orchestrator) handleGeneric(ctx context.Context, turn harmonizer.Turn, state *turnState, ret *Retrieval, lang string, history []*ent.Message, summary string) (*turnResult, error) {
	msgs := buildPrompt(state.tenant, state.branding, lang, ret, summary, history, turn.CombinedText)

	complexity := llm.EstimateComplexity(turn.CombinedText, ret.Runes())
	chain, err := o.deps.Router.SelectChain("", complexity)
	if err != nil {
		slog.Error("failed to select provider chain",
			"tenant_id", turn.TenantID, "complexity", complexity, "error", err)
		return &turnResult{reply: o.fallbackText(), handoff: true}, nil
	}

	resp, provider, err := o.deps.Completer.Execute(ctx, chain, llm.Request{Messages: msgs})
	if err != nil {
		slog.Error("turn completion failed, degrading to fallback",
			"tenant_id", turn.TenantID, "conversation_id", turn.ConversationID, "error", err)
		return &turnResult{reply: o.fallbackText(), handoff: true}, nil
	}

	return &turnResult{
		reply:        resp.Text,
		viaLLM:       true,
		confidence:   resp.Confidence,
		provider:     provider,
		inputTokens:  resp.InputTokens,
		outputTokens: resp.OutputTokens,
		costEstimate: resp.CostEstimate,
	}, nil
}

func formatPrice(cents int, currency string) string {
	if cents%100 == 0 {
		return fmt.Sprintf("%s %d", currency, cents/100)
	}
	return fmt.Sprintf("%s %d.%02d", currency, cents/100, cents%100)
}

// Customer-facing lines, English and Swahili.
type replyKey int

const (
	msgAmbiguous replyKey = iota
	msgSpecify
	msgOutOfStock
	msgMidCheckout
	msgAskQuantity
	msgInvalidQuantity
	msgPickFirst
	msgPaymentPending
	msgPayUnavailable
	msgBrowseIntro
	msgBrowseOutro
	msgHandoffNotice
)

var replies = map[string]map[replyKey]string{
	languageEnglish: {
		msgAmbiguous:       "I want to be sure I pick the right one — which number do you mean?",
		msgSpecify:         "Could you tell me which item you mean? You can also ask to see what's available.",
		msgOutOfStock:      "That one is out of stock right now. Would you like to see similar items?",
		msgMidCheckout:     "You already have an order in progress. Reply PAY to pay, or tell me what to change.",
		msgAskQuantity:     "How many would you like?",
		msgInvalidQuantity: "We don't have that many in stock. How many would you like?",
		msgPickFirst:       "Let's pick an item first — tell me what you're looking for.",
		msgPaymentPending:  "Your payment is already in progress. You'll get a confirmation shortly.",
		msgPayUnavailable:  "Payments aren't set up here yet. The team will follow up to complete your order.",
		msgBrowseIntro:     "Here's what we have:",
		msgBrowseOutro:     "Reply with a number to order.",
		msgHandoffNotice:   "I'm connecting you with the team — someone will be with you shortly.",
	},
	languageSwahili: {
		msgAmbiguous:       "Nataka kuchagua sahihi — unamaanisha namba gani?",
		msgSpecify:         "Tafadhali niambie bidhaa unayomaanisha, au uliza kuona zilizopo.",
		msgOutOfStock:      "Hiyo imeisha kwa sasa. Ungependa kuona zingine zinazofanana?",
		msgMidCheckout:     "Tayari una oda inayoendelea. Jibu PAY kulipa, au niambie nibadilishe nini.",
		msgAskQuantity:     "Ungependa ngapi?",
		msgInvalidQuantity: "Hatuna idadi hiyo kwa sasa. Ungependa ngapi?",
		msgPickFirst:       "Kwanza tuchague bidhaa — niambie unatafuta nini.",
		msgPaymentPending:  "Malipo yako yanaendelea. Utapata uthibitisho hivi karibuni.",
		msgPayUnavailable:  "Malipo bado hayajawekwa hapa. Timu yetu itawasiliana nawe kukamilisha oda.",
		msgBrowseIntro:     "Hizi ndizo tulizo nazo:",
		msgBrowseOutro:     "Jibu kwa namba kuagiza.",
		msgHandoffNotice:   "Nakuunganisha na timu yetu — mtu atakusaidia hivi punde.",
	},
}

func localize(lang string, key replyKey) string {
	if byKey, ok := replies[lang]; ok {
		if text, ok := byKey[key]; ok {
			return text
		}
	}
	return replies[languageEnglish][key]
}

func handoffNotice(lang string) string { return localize(lang, msgHandoffNotice) }
