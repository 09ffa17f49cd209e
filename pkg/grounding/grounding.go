// Package grounding validates outbound agent responses before dispatch:
// factual claims are checked against the turn's catalog and knowledge
// context, disclaimer and echo phrasing is stripped, and hard length limits
// are enforced. Every transformation is recorded for observability.
package grounding

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/sokochat/sokochat/pkg/config"
)

// CatalogFact is one verifiable catalog row in the turn's context pack.
type CatalogFact struct {
	Name       string
	PriceCents int
	Currency   string
	InStock    bool
}

// ContextPack is the verified material available to this turn: the catalog
// rows and knowledge entries that were retrieved for it.
type ContextPack struct {
	Catalog   []CatalogFact
	Knowledge []string
}

// TransformKind labels one validator transformation.
type TransformKind string

const (
	TransformUnverifiedPrice        TransformKind = "unverified_price"
	TransformUnverifiedAvailability TransformKind = "unverified_availability"
	TransformDisclaimerRemoved      TransformKind = "disclaimer_removed"
	TransformEchoRemoved            TransformKind = "echo_removed"
	TransformSentenceCap            TransformKind = "sentence_cap"
	TransformListCap                TransformKind = "list_cap"
)

// Transformation records one change the validator made.
type Transformation struct {
	Kind     TransformKind
	Original string
	Detail   string
}

// Report is the validation outcome attached to the turn.
type Report struct {
	Transformations  []Transformation
	UnrenderedTokens []string
}

// Changed reports whether the validator altered the draft.
func (r *Report) Changed() bool { return len(r.Transformations) > 0 }

// Validator checks and rewrites outbound responses.
type Validator struct {
	cfg          *config.GroundingConfig
	maxListItems int
}

// NewValidator creates a Validator from the agent configuration.
func NewValidator(agentCfg *config.AgentConfig) *Validator {
	return &Validator{cfg: agentCfg.Grounding, maxListItems: agentCfg.MaxListItems}
}

var (
	// Amounts with a currency marker: "KES 2,500", "Ksh2500", "$25.00",
	// "2500 shillings", "2,500/=".
	priceRe = regexp.MustCompile(`(?i)(?:(?:kes|ksh|tzs|ugx|usd|\$)\s*([\d,]+(?:\.\d{1,2})?))|(?:([\d,]+(?:\.\d{1,2})?)\s*(?:shillings|bob|/=))`)

	availableRe   = regexp.MustCompile(`(?i)\b(?:in stock|available|we have)\b`)
	unavailableRe = regexp.MustCompile(`(?i)\b(?:out of stock|sold out|unavailable)\b`)

	tokenRe = regexp.MustCompile(`\{\{\s*[\w.]+\s*\}\}`)

	listItemRe = regexp.MustCompile(`^\s*(?:\d{1,2}[.)]|[-*•])\s+`)

	sentenceSplitRe = regexp.MustCompile(`(?s)[^.!?\n]+[.!?]*\s*`)
)

// Validate rewrites the draft so every surviving claim is backed by the
// context pack, and returns the rewritten text with the report.
// List lines are treated as atomic units so enumerations keep their layout;
// prose goes through the sentence pipeline.
func (v *Validator) Validate(draft, customerInput string, pack ContextPack) (string, Report) {
	var report Report

	text := v.capListItems(draft, &report)

	var out []string
	prose := 0
	for _, line := range strings.Split(text, "\n") {
		if listItemRe.MatchString(line) {
			switch {
			case !v.pricesVerified(line, pack):
				report.add(TransformUnverifiedPrice, line, "price not found in catalog or knowledge")
			case !v.availabilityVerified(line, pack):
				report.add(TransformUnverifiedAvailability, line, "availability contradicts catalog")
			default:
				out = append(out, line)
			}
			continue
		}

		var kept []string
		for _, sentence := range splitSentences(line) {
			switch {
			case v.matchesDisclaimer(sentence):
				report.add(TransformDisclaimerRemoved, sentence, "")
			case v.matchesEcho(sentence, customerInput):
				report.add(TransformEchoRemoved, sentence, "")
			case !v.pricesVerified(sentence, pack):
				report.add(TransformUnverifiedPrice, sentence, "price not found in catalog or knowledge")
				kept = append(kept, v.cfg.Deferral)
				prose++
			case !v.availabilityVerified(sentence, pack):
				report.add(TransformUnverifiedAvailability, sentence, "availability contradicts catalog")
				kept = append(kept, v.cfg.Deferral)
				prose++
			default:
				if v.cfg.MaxSentences > 0 && prose >= v.cfg.MaxSentences {
					report.add(TransformSentenceCap, sentence, fmt.Sprintf("beyond sentence cap %d", v.cfg.MaxSentences))
					continue
				}
				kept = append(kept, strings.TrimSpace(sentence))
				prose++
			}
		}
		if len(kept) > 0 || strings.TrimSpace(line) == "" {
			out = append(out, strings.Join(kept, " "))
		}
	}

	result := strings.TrimSpace(strings.Join(out, "\n"))
	if result == "" {
		result = v.cfg.Deferral
	}

	report.UnrenderedTokens = tokenRe.FindAllString(result, -1)

	for _, tr := range report.Transformations {
		slog.Info("grounding transformation",
			"kind", tr.Kind,
			"detail", tr.Detail,
			"original", tr.Original)
	}
	if len(report.UnrenderedTokens) > 0 {
		slog.Warn("unrendered template tokens in outbound response", "tokens", report.UnrenderedTokens)
	}

	return result, report
}

func (r *Report) add(kind TransformKind, original, detail string) {
	r.Transformations = append(r.Transformations, Transformation{
		Kind:     kind,
		Original: strings.TrimSpace(original),
		Detail:   detail,
	})
}

func (v *Validator) matchesDisclaimer(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, phrase := range v.cfg.DisclaimerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// matchesEcho catches sentences that lead with a configured echo phrase or
// that are a near-verbatim copy of the customer's input.
func (v *Validator) matchesEcho(sentence, customerInput string) bool {
	lower := strings.ToLower(strings.TrimSpace(sentence))
	for _, phrase := range v.cfg.EchoPhrases {
		if strings.HasPrefix(lower, phrase) {
			return true
		}
	}
	normInput := normalize(customerInput)
	if len(normInput) >= 15 && strings.Contains(normalize(sentence), normInput) {
		return true
	}
	return false
}

// pricesVerified checks every money amount in the sentence against catalog
// prices and amounts quoted in knowledge entries.
func (v *Validator) pricesVerified(sentence string, pack ContextPack) bool {
	matches := priceRe.FindAllStringSubmatch(sentence, -1)
	if len(matches) == 0 {
		return true
	}
	for _, m := range matches {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if !amountVerified(raw, pack) {
			return false
		}
	}
	return true
}

func amountVerified(raw string, pack ContextPack) bool {
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return false
	}
	cents := int(value*100 + 0.5)
	for _, fact := range pack.Catalog {
		if fact.PriceCents == cents {
			return true
		}
	}
	// An amount quoted verbatim in a knowledge entry counts as verified
	// (delivery fees, deposit amounts, and similar).
	plain := strings.ReplaceAll(raw, ",", "")
	for _, entry := range pack.Knowledge {
		normalized := strings.ReplaceAll(entry, ",", "")
		if strings.Contains(normalized, plain) {
			return true
		}
	}
	return false
}

// availabilityVerified rejects sentences that state availability for a named
// catalog product when the catalog says otherwise. Sentences that mention no
// catalog product are left alone.
func (v *Validator) availabilityVerified(sentence string, pack ContextPack) bool {
	claimsAvailable := availableRe.MatchString(sentence)
	claimsUnavailable := unavailableRe.MatchString(sentence)
	if !claimsAvailable && !claimsUnavailable {
		return true
	}
	lower := strings.ToLower(sentence)
	for _, fact := range pack.Catalog {
		if fact.Name == "" || !strings.Contains(lower, strings.ToLower(fact.Name)) {
			continue
		}
		if claimsUnavailable && fact.InStock {
			return false
		}
		if claimsAvailable && !claimsUnavailable && !fact.InStock {
			return false
		}
	}
	return true
}

// capListItems truncates enumerated/bulleted blocks to the item cap.
func (v *Validator) capListItems(text string, report *Report) string {
	if v.maxListItems <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	items := 0
	dropped := 0
	for _, line := range lines {
		if listItemRe.MatchString(line) {
			items++
			if items > v.maxListItems {
				dropped++
				continue
			}
		} else if strings.TrimSpace(line) != "" {
			items = 0
		}
		kept = append(kept, line)
	}
	if dropped > 0 {
		report.add(TransformListCap, "", fmt.Sprintf("dropped %d list items beyond cap %d", dropped, v.maxListItems))
	}
	return strings.Join(kept, "\n")
}

func splitSentences(text string) []string {
	flat := strings.ReplaceAll(text, "\n", " ")
	raw := sentenceSplitRe.FindAllString(flat, -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

var nonAlnumRe = regexp.MustCompile(`[^\p{L}\d]+`)

func normalize(s string) string {
	return strings.Trim(nonAlnumRe.ReplaceAllString(strings.ToLower(s), " "), " ")
}
