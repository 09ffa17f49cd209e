package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sokochat/sokochat/pkg/config"
)

// Complexity estimation thresholds. Turn text plus retrieved context below
// simpleMaxRunes with a single short sentence routes to the economical chain;
// anything above complexMinRunes, or with several questions, routes to the
// capable chain.
const (
	simpleMaxRunes  = 120
	complexMinRunes = 1500
)

// simplePhrases are turn openers that never need a capable model regardless
// of the rest of the text.
var simplePhrases = []string{
	"yes", "no", "ok", "okay", "thanks", "thank you", "hi", "hello", "hey",
	"sawa", "asante", "habari", "ndiyo", "hapana",
}

// EstimateComplexity classifies a turn from the customer text and the size of
// the retrieved context that will accompany it.
func EstimateComplexity(turnText string, contextRunes int) config.Complexity {
	trimmed := strings.TrimSpace(strings.ToLower(turnText))
	for _, p := range simplePhrases {
		if trimmed == p || strings.TrimRight(trimmed, "!.") == p {
			return config.ComplexitySimple
		}
	}

	total := utf8.RuneCountInString(turnText) + contextRunes
	questions := strings.Count(turnText, "?")

	switch {
	case total >= complexMinRunes || questions >= 3:
		return config.ComplexityComplex
	case total <= simpleMaxRunes && questions <= 1:
		return config.ComplexitySimple
	default:
		return config.ComplexityStandard
	}
}

// Router resolves the failover chain for a turn: a tenant's preferred chain
// wins when set and known, then complexity routing, then the configured
// default chain.
type Router struct {
	cfg *config.Config
}

// NewRouter creates a Router over the loaded configuration.
func NewRouter(cfg *config.Config) *Router {
	return &Router{cfg: cfg}
}

// SelectChain returns the ordered provider names to try for the turn.
// preferredChain is the tenant's configured chain name, empty when unset.
func (r *Router) SelectChain(preferredChain string, complexity config.Complexity) ([]string, error) {
	if preferredChain != "" {
		if chain, err := r.cfg.GetFailoverChain(preferredChain); err == nil {
			return chain.Providers, nil
		}
		// Unknown preferred chain falls through to complexity routing rather
		// than failing the turn.
	}

	if chain, err := r.cfg.GetChainByComplexity(complexity); err == nil {
		return chain.Providers, nil
	}

	if name := r.cfg.Defaults.FailoverChain; name != "" {
		chain, err := r.cfg.GetFailoverChain(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default failover chain: %w", err)
		}
		return chain.Providers, nil
	}

	return nil, fmt.Errorf("%w for complexity %s and no default chain", config.ErrFailoverChainNotFound, complexity)
}
