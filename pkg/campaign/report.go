package campaign

import (
	"context"
	"math"
)

// VariantReport is the per-arm engagement summary.
type VariantReport struct {
	Name         string  `json:"name"`
	Assigned     int     `json:"assigned"`
	Delivered    int     `json:"delivered"`
	Responses    int     `json:"responses"`
	ResponseRate float64 `json:"response_rate"`
}

// Report is the campaign result summary. For exactly two variants it carries
// the outcome of a two-proportion z-test on response rates.
type Report struct {
	CampaignID       string          `json:"campaign_id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	Targeted         int             `json:"targeted"`
	Delivered        int             `json:"delivered"`
	Failed           int             `json:"failed"`
	Read             int             `json:"read"`
	Responses        int             `json:"responses"`
	Conversions      int             `json:"conversions"`
	SkippedNoConsent int             `json:"skipped_no_consent"`
	Variants         []VariantReport `json:"variants,omitempty"`

	// A/B outcome (two arms only)
	Winner      string  `json:"winner,omitempty"`
	Significant bool    `json:"significant"`
	ZScore      float64 `json:"z_score,omitempty"`
	PValue      float64 `json:"p_value,omitempty"`
}

// Report builds the campaign summary, including the A/B winner when the
// test has exactly two arms, both arms meet the minimum sample size, and
// the difference clears the configured significance level.
func (e *Engine) Report(ctx context.Context, tenantID, campaignID string) (*Report, error) {
	c, err := e.get(ctx, tenantID, campaignID)
	if err != nil {
		return nil, err
	}

	r := &Report{
		CampaignID:       c.ID,
		Name:             c.Name,
		Status:           string(c.Status),
		Targeted:         c.TargetedCount,
		Delivered:        c.DeliveredCount,
		Failed:           c.FailedCount,
		Read:             c.ReadCount,
		Responses:        c.ResponseCount,
		Conversions:      c.ConversionCount,
		SkippedNoConsent: c.SkippedNoConsentCount,
	}

	if !c.IsAbTest {
		return r, nil
	}

	for _, v := range c.Variants {
		vr := VariantReport{Name: v.Name}
		if stats := variantStatsFor(c.Metadata, v.Name); stats != nil {
			vr.Assigned = toInt(stats["assigned"])
			vr.Delivered = toInt(stats["delivered"])
			vr.Responses = toInt(stats["responses"])
		}
		if vr.Delivered > 0 {
			vr.ResponseRate = float64(vr.Responses) / float64(vr.Delivered)
		}
		r.Variants = append(r.Variants, vr)
	}

	if len(r.Variants) == 2 {
		e.applyZTest(r)
	}
	return r, nil
}

// applyZTest runs the normal-approximation two-proportion test on response
// rates and declares a winner when significant.
func (e *Engine) applyZTest(r *Report) {
	a, b := r.Variants[0], r.Variants[1]
	if a.Delivered < e.cfg.Campaign.MinSamplePerVariant || b.Delivered < e.cfg.Campaign.MinSamplePerVariant {
		return
	}

	z, p, ok := twoProportionZTest(a.Responses, a.Delivered, b.Responses, b.Delivered)
	if !ok {
		return
	}
	r.ZScore = z
	r.PValue = p

	if p < e.cfg.Campaign.SignificanceLevel {
		r.Significant = true
		if a.ResponseRate >= b.ResponseRate {
			r.Winner = a.Name
		} else {
			r.Winner = b.Name
		}
	}
}

// twoProportionZTest returns the z statistic and two-sided p-value for
// H0: p1 == p2 under the pooled normal approximation.
func twoProportionZTest(x1, n1, x2, n2 int) (z, p float64, ok bool) {
	if n1 == 0 || n2 == 0 {
		return 0, 0, false
	}
	p1 := float64(x1) / float64(n1)
	p2 := float64(x2) / float64(n2)
	pooled := float64(x1+x2) / float64(n1+n2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return 0, 0, false
	}
	z = (p1 - p2) / se
	p = math.Erfc(math.Abs(z) / math.Sqrt2)
	return z, p, true
}

// variantStatsFor reads per-variant stats from metadata, tolerating both
// the in-memory and JSON-roundtripped map shapes.
func variantStatsFor(meta map[string]interface{}, name string) map[string]interface{} {
	if meta == nil {
		return nil
	}
	switch stats := meta["variant_stats"].(type) {
	case map[string]interface{}:
		if vs, ok := stats[name].(map[string]interface{}); ok {
			return vs
		}
	case map[string]map[string]int:
		if vs, ok := stats[name]; ok {
			out := make(map[string]interface{}, len(vs))
			for k, v := range vs {
				out[k] = v
			}
			return out
		}
	}
	return nil
}
