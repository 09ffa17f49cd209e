package grounding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/config"
)

func newTestValidator() *Validator {
	return NewValidator(config.DefaultAgentConfig())
}

func dressPack() ContextPack {
	return ContextPack{
		Catalog: []CatalogFact{
			{Name: "Blue Dress", PriceCents: 250000, Currency: "KES", InStock: true},
			{Name: "Red Dress", PriceCents: 180000, Currency: "KES", InStock: false},
		},
		Knowledge: []string{"Delivery within Nairobi costs KES 300."},
	}
}

func TestValidate_VerifiedClaimsPassThrough(t *testing.T) {
	v := newTestValidator()

	draft := "The Blue Dress costs KES 2,500 and it is in stock."
	out, report := v.Validate(draft, "how much is the blue dress", dressPack())

	assert.Equal(t, draft, out)
	assert.False(t, report.Changed())
}

func TestValidate_UnverifiedPriceReplacedWithDeferral(t *testing.T) {
	v := newTestValidator()

	out, report := v.Validate("The Blue Dress costs KES 9,999.", "price?", dressPack())

	assert.Contains(t, out, "Let me check on that")
	assert.NotContains(t, out, "9,999")
	require.Len(t, report.Transformations, 1)
	assert.Equal(t, TransformUnverifiedPrice, report.Transformations[0].Kind)
}

func TestValidate_KnowledgeBackedAmountIsVerified(t *testing.T) {
	v := newTestValidator()

	draft := "Delivery costs KES 300 within Nairobi."
	out, report := v.Validate(draft, "delivery fee?", dressPack())

	assert.Equal(t, draft, out)
	assert.False(t, report.Changed())
}

func TestValidate_AvailabilityContradiction(t *testing.T) {
	v := newTestValidator()

	t.Run("claims available but out of stock", func(t *testing.T) {
		out, report := v.Validate("The Red Dress is available right now.", "", dressPack())
		assert.Contains(t, out, "Let me check on that")
		require.Len(t, report.Transformations, 1)
		assert.Equal(t, TransformUnverifiedAvailability, report.Transformations[0].Kind)
	})

	t.Run("claims sold out but in stock", func(t *testing.T) {
		out, _ := v.Validate("The Blue Dress is sold out.", "", dressPack())
		assert.Contains(t, out, "Let me check on that")
	})

	t.Run("availability of unknown product is left alone", func(t *testing.T) {
		draft := "Gift wrapping is available on request."
		out, report := v.Validate(draft, "", dressPack())
		assert.Equal(t, draft, out)
		assert.False(t, report.Changed())
	})
}

func TestValidate_DisclaimerRemoved(t *testing.T) {
	v := newTestValidator()

	out, report := v.Validate(
		"As an AI, I cannot guarantee this. The Blue Dress costs KES 2,500.",
		"", dressPack())

	assert.Equal(t, "The Blue Dress costs KES 2,500.", out)
	require.NotEmpty(t, report.Transformations)
	assert.Equal(t, TransformDisclaimerRemoved, report.Transformations[0].Kind)
}

func TestValidate_EchoRemoved(t *testing.T) {
	v := newTestValidator()

	t.Run("echo phrase lead-in", func(t *testing.T) {
		out, report := v.Validate(
			"You said you want a dress. The Blue Dress costs KES 2,500.",
			"I want a dress", dressPack())
		assert.Equal(t, "The Blue Dress costs KES 2,500.", out)
		assert.Equal(t, TransformEchoRemoved, report.Transformations[0].Kind)
	})

	t.Run("near verbatim repetition", func(t *testing.T) {
		input := "do you deliver to Kilimani on Saturdays"
		out, report := v.Validate(
			"Do you deliver to Kilimani on Saturdays? Yes we do.",
			input, dressPack())
		assert.Equal(t, "Yes we do.", out)
		assert.Equal(t, TransformEchoRemoved, report.Transformations[0].Kind)
	})
}

func TestValidate_SentenceCap(t *testing.T) {
	v := newTestValidator()

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("This is a filler sentence. ")
	}
	out, report := v.Validate(b.String(), "", ContextPack{})

	assert.Equal(t, 8, strings.Count(out, "."), "capped at the configured sentence limit")
	var capped bool
	for _, tr := range report.Transformations {
		if tr.Kind == TransformSentenceCap {
			capped = true
		}
	}
	assert.True(t, capped)
}

func TestValidate_ListCap(t *testing.T) {
	v := newTestValidator()

	draft := strings.Join([]string{
		"Here are our dresses:",
		"1. Blue Dress - KES 2,500",
		"2. Red Dress - KES 1,800",
		"3. Option three",
		"4. Option four",
		"5. Option five",
		"6. Option six",
		"7. Option seven",
	}, "\n")

	out, report := v.Validate(draft, "", dressPack())

	assert.Contains(t, out, "5. Option five")
	assert.NotContains(t, out, "6. Option six")
	assert.NotContains(t, out, "7. Option seven")
	var capped bool
	for _, tr := range report.Transformations {
		if tr.Kind == TransformListCap {
			capped = true
		}
	}
	assert.True(t, capped)
}

func TestValidate_ListItemWithUnverifiedPriceDropped(t *testing.T) {
	v := newTestValidator()

	draft := "Here are our dresses:\n1. Blue Dress - KES 2,500\n2. Red Dress - KES 9,999"
	out, report := v.Validate(draft, "", dressPack())

	assert.Contains(t, out, "1. Blue Dress - KES 2,500")
	assert.NotContains(t, out, "9,999")
	require.Len(t, report.Transformations, 1)
	assert.Equal(t, TransformUnverifiedPrice, report.Transformations[0].Kind)
}

func TestValidate_UnrenderedTokensFlagged(t *testing.T) {
	v := newTestValidator()

	_, report := v.Validate("Hello {{customer_name}}, welcome back.", "", ContextPack{})

	require.Len(t, report.UnrenderedTokens, 1)
	assert.Equal(t, "{{customer_name}}", report.UnrenderedTokens[0])
}

func TestValidate_EmptyResultFallsBackToDeferral(t *testing.T) {
	v := newTestValidator()

	out, _ := v.Validate("As an AI, I cannot guarantee anything.", "", ContextPack{})
	assert.Equal(t, "Let me check on that and get back to you.", out)
}
