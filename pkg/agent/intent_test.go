package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sokochat/sokochat/ent/conversationcontext"
	"github.com/sokochat/sokochat/pkg/refcontext"
)

func TestInferIntent(t *testing.T) {
	resolved := refcontext.Resolution{Outcome: refcontext.OutcomeResolved, Item: &refcontext.Item{ID: "v1"}}
	none := refcontext.Resolution{Outcome: refcontext.OutcomeNotReference}

	tests := []struct {
		name       string
		text       string
		resolution refcontext.Resolution
		state      conversationcontext.CheckoutState
		want       Intent
	}{
		{"resolved reference selects", "1", resolved, conversationcontext.CheckoutStateBrowsing, IntentSelect},
		{"bare number mid-checkout is a quantity", "2", none, conversationcontext.CheckoutStateProductSelected, IntentQuantity},
		{"word quantity mid-checkout", "nataka mbili", none, conversationcontext.CheckoutStateProductSelected, IntentQuantity},
		{"pay keyword", "I'll pay with mpesa", none, conversationcontext.CheckoutStateQuantityConfirmed, IntentPay},
		{"swahili pay", "nitalipa sasa", none, conversationcontext.CheckoutStateQuantityConfirmed, IntentPay},
		{"browse english", "do you have dresses?", none, conversationcontext.CheckoutStateBrowsing, IntentBrowse},
		{"browse swahili", "mnauza viatu?", none, conversationcontext.CheckoutStateBrowsing, IntentBrowse},
		{"generic question", "where is your shop located?", none, conversationcontext.CheckoutStateBrowsing, IntentGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferIntent(tt.text, tt.resolution, tt.state))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"2", 2, true},
		{"i'll take 3", 3, true},
		{"give me 10 pcs", 10, true},
		{"two", 2, true},
		{"tatu", 3, true},
		{"0", 0, false},
		{"a lot", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseQuantity(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
