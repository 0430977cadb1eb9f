package analytics

import "sort"

// Tier is a coarse popularity bucket assigned from total sales alone.
type Tier string

const (
	TierA Tier = "A" // >= 500
	TierB Tier = "B" // 200-499
	TierC Tier = "C" // 100-199
	TierD Tier = "D" // 50-99
	TierE Tier = "E" // < 50
)

// AssignTier maps a product's total to its bucket. Exhaustive and
// mutually exclusive over the threshold boundaries.
func AssignTier(total float64) Tier {
	switch {
	case total >= 500:
		return TierA
	case total >= 200:
		return TierB
	case total >= 100:
		return TierC
	case total >= 50:
		return TierD
	default:
		return TierE
	}
}

// TierGroups is the partition of all normalized product names into the
// ordered buckets A..E.
type TierGroups struct {
	A []string `json:"a"`
	B []string `json:"b"`
	C []string `json:"c"`
	D []string `json:"d"`
	E []string `json:"e"`
}

// GroupTiers buckets every product by its final total. Members are
// sorted by name so repeated runs render identically.
func GroupTiers(sales map[string]*ProductSalesRecord) TierGroups {
	var tiers TierGroups
	for name, rec := range sales {
		switch AssignTier(rec.Total) {
		case TierA:
			tiers.A = append(tiers.A, name)
		case TierB:
			tiers.B = append(tiers.B, name)
		case TierC:
			tiers.C = append(tiers.C, name)
		case TierD:
			tiers.D = append(tiers.D, name)
		case TierE:
			tiers.E = append(tiers.E, name)
		}
	}
	for _, bucket := range [][]string{tiers.A, tiers.B, tiers.C, tiers.D, tiers.E} {
		sort.Strings(bucket)
	}
	return tiers
}

// Members returns the bucket for a tier.
func (t TierGroups) Members(tier Tier) []string {
	switch tier {
	case TierA:
		return t.A
	case TierB:
		return t.B
	case TierC:
		return t.C
	case TierD:
		return t.D
	case TierE:
		return t.E
	}
	return nil
}
