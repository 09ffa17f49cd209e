package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sokochat/sokochat/ent/conversationcontext"
	"github.com/sokochat/sokochat/pkg/refcontext"
)

// Intent is the handler decision for one turn.
type Intent string

const (
	// IntentBrowse lists matching catalog items.
	IntentBrowse Intent = "browse"
	// IntentSelect binds a reference to a variant and drives the checkout.
	IntentSelect Intent = "select"
	// IntentQuantity confirms how many of the selected variant.
	IntentQuantity Intent = "quantity"
	// IntentPay starts the payment for a confirmed quantity.
	IntentPay Intent = "pay"
	// IntentGeneric answers with the LLM.
	IntentGeneric Intent = "generic"
)

var browsePhrases = []string{
	"show me", "do you have", "do you sell", "looking for", "what do you have",
	"i want to see", "i need", "any ", "price of", "how much",
	"unauza", "mnauza", "nataka", "ninataka", "naomba", "bei ya", "iko",
}

var payPhrases = []string{
	"pay", "payment", "mpesa", "m-pesa", "lipa", "nitalipa", "checkout",
	"buy it", "i'll buy", "nalipa",
}

var quantityRe = regexp.MustCompile(`(?i)^\s*(?:nataka\s+|i(?:'ll| will)? take\s+|give me\s+)?(\d{1,3})\s*(?:pcs|pieces|of them)?\s*[.!]?\s*$`)

var quantityWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"moja": 1, "mbili": 2, "tatu": 3, "nne": 4, "tano": 5,
}

// inferIntent decides the turn's handler from the inbound text, the
// reference resolution, and the conversation's checkout state. Checkout
// stages take priority: a bare number while a product is selected is a
// quantity, not a list reference.
func inferIntent(text string, resolution refcontext.Resolution, checkoutState conversationcontext.CheckoutState) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))

	if checkoutState == conversationcontext.CheckoutStateProductSelected {
		if _, ok := parseQuantity(lower); ok {
			return IntentQuantity
		}
	}

	for _, p := range payPhrases {
		if strings.Contains(lower, p) {
			return IntentPay
		}
	}

	if resolution.Outcome == refcontext.OutcomeResolved {
		return IntentSelect
	}

	for _, p := range browsePhrases {
		if strings.Contains(lower, p) {
			return IntentBrowse
		}
	}
	return IntentGeneric
}

// parseQuantity extracts a small positive integer ("3", "take 2", "mbili").
func parseQuantity(lower string) (int, bool) {
	if m := quantityRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return n, true
		}
		return 0, false
	}
	for _, w := range strings.Fields(strings.Trim(lower, ".!?")) {
		if n, ok := quantityWords[strings.Trim(w, ".,!?")]; ok {
			return n, true
		}
	}
	return 0, false
}
