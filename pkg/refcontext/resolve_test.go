package refcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productList() List {
	return List{
		ID:       "list-1",
		ListType: "products",
		Items: []Item{
			{ID: "p1", Label: "Blue Dress", PriceCents: 250000, Attributes: map[string]string{"color": "blue"}},
			{ID: "p2", Label: "Red Dress", PriceCents: 180000, Attributes: map[string]string{"color": "red"}},
			{ID: "p3", Label: "Green Scarf", PriceCents: 90000, Attributes: map[string]string{"color": "green"}},
		},
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
}

func TestResolve_Numeric(t *testing.T) {
	lists := []List{productList()}

	for _, input := range []string{"2", " 2 ", "2.", "2)", "#2", "number 2", "option 2"} {
		res := Resolve(input, lists, false)
		require.Equal(t, OutcomeResolved, res.Outcome, "input %q", input)
		assert.Equal(t, "p2", res.Item.ID, "input %q", input)
	}
}

func TestResolve_Ordinal(t *testing.T) {
	lists := []List{productList()}

	tests := map[string]string{
		"first":          "p1",
		"the second one": "p2",
		"third":          "p3",
		"last":           "p3",
		"ya pili":        "p2",
	}
	for input, want := range tests {
		res := Resolve(input, lists, false)
		require.Equal(t, OutcomeResolved, res.Outcome, "input %q", input)
		assert.Equal(t, want, res.Item.ID, "input %q", input)
	}
}

func TestResolve_NumericOutOfRange(t *testing.T) {
	res := Resolve("7", []List{productList()}, false)
	assert.Equal(t, OutcomeNoMatch, res.Outcome)
}

func TestResolve_NumericPicksMostRecentCompatibleList(t *testing.T) {
	// The newest list has two items; index 3 only fits the older list.
	newest := List{
		ID:       "list-2",
		ListType: "options",
		Items: []Item{
			{ID: "o1", Label: "Pickup"},
			{ID: "o2", Label: "Delivery"},
		},
	}
	lists := []List{newest, productList()}

	res := Resolve("2", lists, false)
	require.Equal(t, OutcomeResolved, res.Outcome)
	assert.Equal(t, "o2", res.Item.ID, "index within newest list binds there")

	res = Resolve("3", lists, false)
	require.Equal(t, OutcomeResolved, res.Outcome)
	assert.Equal(t, "p3", res.Item.ID, "index falls through to the older compatible list")
}

func TestResolve_Demonstrative(t *testing.T) {
	single := List{ID: "list-1", ListType: "products", Items: []Item{{ID: "p1", Label: "Blue Dress"}}}

	t.Run("single list single item", func(t *testing.T) {
		for _, input := range []string{"this one", "that one", "I'll take this one", "this"} {
			res := Resolve(input, []List{single}, false)
			require.Equal(t, OutcomeResolved, res.Outcome, "input %q", input)
			assert.Equal(t, "p1", res.Item.ID)
		}
	})

	t.Run("multiple items is ambiguous", func(t *testing.T) {
		res := Resolve("this one", []List{productList()}, false)
		assert.Equal(t, OutcomeAmbiguous, res.Outcome)
	})

	t.Run("multiple live lists is ambiguous", func(t *testing.T) {
		res := Resolve("that one", []List{single, productList()}, false)
		assert.Equal(t, OutcomeAmbiguous, res.Outcome)
	})
}

func TestResolve_Descriptive(t *testing.T) {
	lists := []List{productList()}

	t.Run("attribute match", func(t *testing.T) {
		res := Resolve("the blue one", lists, false)
		require.Equal(t, OutcomeResolved, res.Outcome)
		assert.Equal(t, "p1", res.Item.ID)
	})

	t.Run("cheapest", func(t *testing.T) {
		res := Resolve("I want the cheapest one", lists, false)
		require.Equal(t, OutcomeResolved, res.Outcome)
		assert.Equal(t, "p3", res.Item.ID)
	})

	t.Run("most expensive", func(t *testing.T) {
		res := Resolve("the most expensive one please", lists, false)
		require.Equal(t, OutcomeResolved, res.Outcome)
		assert.Equal(t, "p1", res.Item.ID)
	})

	t.Run("no match", func(t *testing.T) {
		res := Resolve("the purple one", lists, false)
		assert.Equal(t, OutcomeNoMatch, res.Outcome)
	})

	t.Run("ambiguous across items", func(t *testing.T) {
		ambiguous := productList()
		ambiguous.Items[1].Attributes["color"] = "blue"
		res := Resolve("the blue one", []List{ambiguous}, false)
		assert.Equal(t, OutcomeAmbiguous, res.Outcome)
	})
}

func TestResolve_NotAReference(t *testing.T) {
	lists := []List{productList()}

	for _, input := range []string{
		"do you deliver to Kilimani?",
		"hello",
		"what time do you open",
	} {
		res := Resolve(input, lists, false)
		assert.Equal(t, OutcomeNotReference, res.Outcome, "input %q", input)
	}
}

func TestResolve_NoLiveLists(t *testing.T) {
	t.Run("never had a list", func(t *testing.T) {
		res := Resolve("2", nil, false)
		assert.Equal(t, OutcomeNoLiveList, res.Outcome)
	})

	t.Run("lists expired", func(t *testing.T) {
		res := Resolve("2", nil, true)
		assert.Equal(t, OutcomeExpired, res.Outcome)
	})
}
