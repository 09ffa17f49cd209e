package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/knowledgeentry"
	"github.com/sokochat/sokochat/ent/product"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/grounding"
)

// Candidate is one sellable variant retrieved for the turn.
type Candidate struct {
	ProductName string
	Variant     *ent.ProductVariant
	score       int
}

// Retrieval is the turn's retrieved material: ranked catalog candidates, the
// knowledge entries that matched, and the grounding pack derived from both.
type Retrieval struct {
	Candidates []Candidate
	Knowledge  []*ent.KnowledgeEntry
	Pack       grounding.ContextPack
}

// Runes is the retrieved-context size used for complexity routing.
func (r *Retrieval) Runes() int {
	n := 0
	for _, c := range r.Candidates {
		n += utf8.RuneCountInString(c.ProductName) + utf8.RuneCountInString(c.Variant.Label)
	}
	for _, k := range r.Knowledge {
		n += utf8.RuneCountInString(k.Body)
	}
	return n
}

// Retriever matches the tenant's catalog and knowledge base against the
// inbound text. Database token matching always runs; the semantic index, when
// configured, widens the candidate set but its failure never fails the turn.
type Retriever struct {
	client *ent.Client
	cfg    *config.RetrievalConfig
	vector VectorSearcher
}

// NewRetriever creates a Retriever. vector may be nil.
func NewRetriever(client *ent.Client, cfg *config.RetrievalConfig, vector VectorSearcher) *Retriever {
	return &Retriever{client: client, cfg: cfg, vector: vector}
}

// Retrieve builds the turn's retrieval for the query text.
func (r *Retriever) Retrieve(ctx context.Context, tenantID, query string) (*Retrieval, error) {
	tokens := queryTokens(query)

	candidates, err := r.matchCatalog(ctx, tenantID, tokens)
	if err != nil {
		return nil, err
	}
	knowledge, err := r.matchKnowledge(ctx, tenantID, tokens)
	if err != nil {
		return nil, err
	}

	if r.cfg.VectorEnabled && r.vector != nil {
		hits, err := r.vector.Search(ctx, tenantID, query, r.cfg.TopK, r.cfg.MinScore)
		if err != nil {
			slog.Warn("semantic retrieval failed, using database matches only",
				"tenant_id", tenantID, "error", err)
		} else {
			candidates, knowledge = r.mergeHits(ctx, tenantID, hits, candidates, knowledge)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if len(candidates) > r.cfg.TopK {
		candidates = candidates[:r.cfg.TopK]
	}
	if len(knowledge) > r.cfg.TopK {
		knowledge = knowledge[:r.cfg.TopK]
	}

	ret := &Retrieval{Candidates: candidates, Knowledge: knowledge}
	for _, c := range candidates {
		ret.Pack.Catalog = append(ret.Pack.Catalog, grounding.CatalogFact{
			Name:       c.ProductName,
			PriceCents: c.Variant.PriceCents,
			Currency:   c.Variant.Currency,
			InStock:    c.Variant.Stock > 0,
		})
	}
	for _, k := range knowledge {
		ret.Pack.Knowledge = append(ret.Pack.Knowledge, k.Body)
	}
	return ret, nil
}

// matchCatalog scores active products by token overlap with name,
// description, and tags, and expands matches into their variants.
func (r *Retriever) matchCatalog(ctx context.Context, tenantID string, tokens []string) ([]Candidate, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	products, err := r.client.Product.Query().
		Where(
			product.TenantID(tenantID),
			product.Active(true),
			product.DeletedAtIsNil(),
		).
		WithVariants().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var out []Candidate
	for _, p := range products {
		score := scoreProduct(p, tokens)
		if score == 0 {
			continue
		}
		for _, v := range p.Edges.Variants {
			out = append(out, Candidate{ProductName: p.Name, Variant: v, score: score})
		}
	}
	return out, nil
}

func scoreProduct(p *ent.Product, tokens []string) int {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	score := 0
	for _, t := range tokens {
		if strings.Contains(name, t) {
			score += 3
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), t) {
				score += 2
			}
		}
		if strings.Contains(desc, t) {
			score++
		}
	}
	return score
}

func (r *Retriever) matchKnowledge(ctx context.Context, tenantID string, tokens []string) ([]*ent.KnowledgeEntry, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	entries, err := r.client.KnowledgeEntry.Query().
		Where(
			knowledgeentry.TenantID(tenantID),
			knowledgeentry.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}

	type scored struct {
		entry *ent.KnowledgeEntry
		score int
	}
	var matched []scored
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		body := strings.ToLower(e.Body)
		score := 0
		for _, t := range tokens {
			if strings.Contains(title, t) {
				score += 2
			}
			if strings.Contains(body, t) {
				score++
			}
		}
		if score > 0 {
			matched = append(matched, scored{entry: e, score: score})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].score > matched[j].score })

	out := make([]*ent.KnowledgeEntry, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.entry)
	}
	return out, nil
}

// mergeHits folds semantic hits into the database matches, loading rows the
// token pass missed.
func (r *Retriever) mergeHits(ctx context.Context, tenantID string, hits []VectorHit, candidates []Candidate, knowledge []*ent.KnowledgeEntry) ([]Candidate, []*ent.KnowledgeEntry) {
	haveProduct := make(map[string]bool)
	for _, c := range candidates {
		haveProduct[c.Variant.ProductID] = true
	}
	haveKnowledge := make(map[string]bool)
	for _, k := range knowledge {
		haveKnowledge[k.ID] = true
	}

	for _, hit := range hits {
		switch hit.Kind {
		case "product":
			if haveProduct[hit.RefID] {
				continue
			}
			p, err := r.client.Product.Query().
				Where(
					product.ID(hit.RefID),
					product.TenantID(tenantID),
					product.Active(true),
					product.DeletedAtIsNil(),
				).
				WithVariants().
				Only(ctx)
			if err != nil {
				continue
			}
			for _, v := range p.Edges.Variants {
				candidates = append(candidates, Candidate{ProductName: p.Name, Variant: v, score: int(hit.Score * 10)})
			}
			haveProduct[hit.RefID] = true
		case "knowledge":
			if haveKnowledge[hit.RefID] {
				continue
			}
			e, err := r.client.KnowledgeEntry.Query().
				Where(
					knowledgeentry.ID(hit.RefID),
					knowledgeentry.TenantID(tenantID),
					knowledgeentry.DeletedAtIsNil(),
				).
				Only(ctx)
			if err != nil {
				continue
			}
			knowledge = append(knowledge, e)
		}
	}
	return candidates, knowledge
}

var queryStopwords = map[string]bool{
	"the": true, "and": true, "you": true, "have": true, "for": true,
	"can": true, "what": true, "how": true, "much": true, "any": true,
	"nataka": true, "ninataka": true, "naomba": true, "iko": true,
}

// queryTokens extracts match tokens of three or more letters.
func queryTokens(query string) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		f = strings.Trim(f, ".,!?\"'()")
		if len(f) < 3 || queryStopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
