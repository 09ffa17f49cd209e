package agent

import (
	"fmt"
	"strings"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/pkg/llm"
)

// buildPrompt assembles the LLM request for a generic turn: the tenant's
// persona and guardrails, the retrieved facts, the session history, and the
// harmonized customer input.
func buildPrompt(tenant *ent.Tenant, branding *schema.Branding, language string, ret *Retrieval, summary string, history []*ent.Message, turnText string) []llm.Message {
	var sys strings.Builder

	persona := tenant.Name
	tone := "friendly and concise"
	if branding != nil {
		if branding.PersonaName != "" {
			persona = branding.PersonaName
		}
		if branding.Tone != "" {
			tone = branding.Tone
		}
	}
	fmt.Fprintf(&sys, "You are %s, the WhatsApp assistant for %s. Be %s.\n", persona, tenant.Name, tone)

	switch language {
	case languageSwahili:
		sys.WriteString("Reply in Swahili.\n")
	default:
		sys.WriteString("Reply in English.\n")
	}

	if branding != nil && len(branding.Capabilities) > 0 {
		fmt.Fprintf(&sys, "You can help with: %s.\n", strings.Join(branding.Capabilities, ", "))
	}
	if branding != nil && len(branding.Disallowed) > 0 {
		fmt.Fprintf(&sys, "Never do the following: %s.\n", strings.Join(branding.Disallowed, ", "))
	}

	sys.WriteString("Only state prices and availability listed below. If something is not listed, say you will check.\n")

	if len(ret.Pack.Catalog) > 0 {
		sys.WriteString("\nCatalog:\n")
		for _, fact := range ret.Pack.Catalog {
			stock := "in stock"
			if !fact.InStock {
				stock = "out of stock"
			}
			fmt.Fprintf(&sys, "- %s: %s %d (%s)\n", fact.Name, fact.Currency, fact.PriceCents/100, stock)
		}
	}
	if len(ret.Pack.Knowledge) > 0 {
		sys.WriteString("\nBusiness information:\n")
		for _, entry := range ret.Pack.Knowledge {
			fmt.Fprintf(&sys, "- %s\n", entry)
		}
	}
	if summary != "" {
		fmt.Fprintf(&sys, "\n%s\n", summary)
	}

	msgs := []llm.Message{{Role: llm.RoleSystem, Content: sys.String()}}
	for _, m := range history {
		role := llm.RoleUser
		if m.Direction == message.DirectionOutbound {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: turnText})
	return msgs
}
