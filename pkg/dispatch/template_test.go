package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{
		"customer_name": "Amina",
		"business_name": "Duka la Mitumba",
	}

	out := RenderTemplate("Habari {{customer_name}}, karibu {{ business_name }}!", vars)
	assert.Equal(t, "Habari Amina, karibu Duka la Mitumba!", out)
}

func TestRenderTemplate_UnknownTokenLeftAsMarker(t *testing.T) {
	out := RenderTemplate("Hi {{customer_name}}, your order {{order_id}} shipped", map[string]string{
		"customer_name": "Amina",
	})
	assert.Equal(t, "Hi Amina, your order {{order_id}} shipped", out)
	assert.Equal(t, []string{"order_id"}, UnrenderedTokens(out))
}

func TestUnrenderedTokens_DeduplicatesInOrder(t *testing.T) {
	tokens := UnrenderedTokens("{{a}} {{b}} {{a}}")
	assert.Equal(t, []string{"a", "b"}, tokens)
	assert.Empty(t, UnrenderedTokens("no markers here"))
}
