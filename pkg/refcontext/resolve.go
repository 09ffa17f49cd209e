package refcontext

import (
	"regexp"
	"strconv"
	"strings"
)

// Outcome classifies a resolution attempt.
type Outcome string

const (
	// OutcomeResolved means the input bound to exactly one item.
	OutcomeResolved Outcome = "resolved"
	// OutcomeNotReference means the input does not look like a list
	// reference; the caller treats it as an ordinary inquiry.
	OutcomeNotReference Outcome = "not_reference"
	// OutcomeNoLiveList means the input references a list but none is live
	// and none expired recently; ask the customer to specify.
	OutcomeNoLiveList Outcome = "no_live_list"
	// OutcomeExpired means the referenced lists have expired; treat the
	// input as a new inquiry rather than resolving against stale state.
	OutcomeExpired Outcome = "expired"
	// OutcomeAmbiguous means the input matched more than one candidate;
	// ask the customer to disambiguate.
	OutcomeAmbiguous Outcome = "ambiguous"
	// OutcomeNoMatch means the input is a reference but nothing in the live
	// lists satisfies it.
	OutcomeNoMatch Outcome = "no_match"
)

// Resolution is the result of resolving one inbound message against the
// conversation's live lists.
type Resolution struct {
	Outcome Outcome
	Item    *Item
	List    *List
}

var (
	numericRe       = regexp.MustCompile(`^\s*(?:number\s+|option\s+|#)?(\d{1,2})\s*[.)]?\s*$`)
	demonstrativeRe = regexp.MustCompile(`(?i)^\s*(?:i(?:'ll| will)? take\s+)?(?:this|that)(?:\s+one)?\s*[.!]?\s*$`)
	descriptiveRe   = regexp.MustCompile(`(?i)\bthe\s+([\p{L}\d]+(?:\s+[\p{L}\d]+)?)\s+one\b`)
)

var ordinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	// Swahili ordinals customers commonly use.
	"kwanza": 1, "pili": 2, "tatu": 3, "nne": 4, "tano": 5,
}

var superlatives = map[string]bool{
	"cheapest": true, "cheaper": true, "priciest": true, "most expensive": true,
}

// Resolve binds the inbound text to an item from the live lists, newest
// first. hadExpired distinguishes recently-expired lists from never having
// shown one.
func Resolve(input string, lists []List, hadExpired bool) Resolution {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	index, isIndexed := parseIndex(lower)
	isDemonstrative := demonstrativeRe.MatchString(trimmed)
	descriptor, isDescriptive := parseDescriptor(lower)

	if !isIndexed && !isDemonstrative && !isDescriptive {
		return Resolution{Outcome: OutcomeNotReference}
	}

	if len(lists) == 0 {
		if hadExpired {
			return Resolution{Outcome: OutcomeExpired}
		}
		return Resolution{Outcome: OutcomeNoLiveList}
	}

	switch {
	case isIndexed:
		return resolveIndex(index, lists)
	case isDemonstrative:
		return resolveDemonstrative(lists)
	default:
		return resolveDescriptive(descriptor, lists)
	}
}

// parseIndex handles numeric ("2", "#2", "2.") and ordinal ("second",
// "last") references. Returns -1 for "last".
func parseIndex(lower string) (int, bool) {
	if m := numericRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			return n, true
		}
		return 0, false
	}

	words := strings.Fields(strings.Trim(lower, ".!?"))
	for _, w := range words {
		w = strings.Trim(w, ".,!?")
		if n, ok := ordinals[w]; ok {
			return n, true
		}
		if w == "last" || w == "mwisho" {
			return -1, true
		}
	}
	return 0, false
}

func parseDescriptor(lower string) (string, bool) {
	for phrase := range superlatives {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	if m := descriptiveRe.FindStringSubmatch(lower); m != nil {
		return strings.ToLower(m[1]), true
	}
	return "", false
}

// resolveIndex selects by 1-based position in the most recent list that has
// enough items. index -1 means the last item of the newest list.
func resolveIndex(index int, lists []List) Resolution {
	if index == -1 {
		list := lists[0]
		item := list.Items[len(list.Items)-1]
		return Resolution{Outcome: OutcomeResolved, Item: &item, List: &list}
	}
	for _, list := range lists {
		if index <= len(list.Items) {
			item := list.Items[index-1]
			l := list
			return Resolution{Outcome: OutcomeResolved, Item: &item, List: &l}
		}
	}
	return Resolution{Outcome: OutcomeNoMatch}
}

// resolveDemonstrative binds "this one" / "that one" only when it is
// unambiguous: a single live list with a single item.
func resolveDemonstrative(lists []List) Resolution {
	if len(lists) > 1 {
		return Resolution{Outcome: OutcomeAmbiguous}
	}
	list := lists[0]
	if len(list.Items) != 1 {
		return Resolution{Outcome: OutcomeAmbiguous, List: &list}
	}
	item := list.Items[0]
	return Resolution{Outcome: OutcomeResolved, Item: &item, List: &list}
}

// resolveDescriptive matches the descriptor against item attributes and
// labels across all live lists, or picks by price for superlatives.
func resolveDescriptive(descriptor string, lists []List) Resolution {
	if superlatives[descriptor] {
		return resolveByPrice(descriptor, lists[0])
	}

	var matches []Resolution
	for i := range lists {
		list := lists[i]
		for j := range list.Items {
			item := list.Items[j]
			if itemMatches(item, descriptor) {
				matches = append(matches, Resolution{Outcome: OutcomeResolved, Item: &item, List: &list})
			}
		}
	}

	switch len(matches) {
	case 0:
		return Resolution{Outcome: OutcomeNoMatch}
	case 1:
		return matches[0]
	default:
		return Resolution{Outcome: OutcomeAmbiguous}
	}
}

func resolveByPrice(descriptor string, list List) Resolution {
	priced := make([]Item, 0, len(list.Items))
	for _, item := range list.Items {
		if item.PriceCents > 0 {
			priced = append(priced, item)
		}
	}
	if len(priced) == 0 {
		return Resolution{Outcome: OutcomeNoMatch}
	}

	best := priced[0]
	wantCheapest := descriptor == "cheapest" || descriptor == "cheaper"
	for _, item := range priced[1:] {
		if wantCheapest && item.PriceCents < best.PriceCents {
			best = item
		}
		if !wantCheapest && item.PriceCents > best.PriceCents {
			best = item
		}
	}
	return Resolution{Outcome: OutcomeResolved, Item: &best, List: &list}
}

func itemMatches(item Item, descriptor string) bool {
	if strings.Contains(strings.ToLower(item.Label), descriptor) {
		return true
	}
	for _, v := range item.Attributes {
		if strings.EqualFold(v, descriptor) || strings.Contains(strings.ToLower(v), descriptor) {
			return true
		}
	}
	return false
}
