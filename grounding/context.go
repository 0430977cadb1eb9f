// Package grounding renders the aggregated sales analytics into the
// deterministic text block that grounds the generative model, and
// composes it with the user's question into the final prompt.
package grounding

import (
	"fmt"
	"sort"
	"strings"

	"bakehouse/analytics"
	"bakehouse/branchgroups"
)

// Ranking sorts by total descending; ties fall back to the normalized
// name so repeated builds over the same data render identically.
func rankedNames(sales map[string]*analytics.ProductSalesRecord) []string {
	names := make([]string, 0, len(sales))
	for name := range sales {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := sales[names[i]], sales[names[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return names[i] < names[j]
	})
	return names
}

func displayNames(members []string, sales map[string]*analytics.ProductSalesRecord) string {
	if len(members) == 0 {
		return "(none)"
	}
	out := make([]string, 0, len(members))
	for _, name := range members {
		if rec, ok := sales[name]; ok {
			out = append(out, rec.Identity.DisplayName)
		}
	}
	return strings.Join(out, ", ")
}

func writeBranchSection(b *strings.Builder, label string, branches []string, byBranch map[string]float64) {
	fmt.Fprintf(b, "  %s branches:\n", label)
	written := 0
	for _, branch := range branches {
		amount, ok := byBranch[branch]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "    %s: %.2f\n", branch, amount)
		written++
	}
	if written == 0 {
		b.WriteString("    (no sales)\n")
	}
}

// restrictionSentence renders the rule a tag encodes. The text comes
// straight from the tag table so it can never drift from the filter the
// aggregator applies.
func restrictionSentence(displayName string, tag analytics.RestrictionTag) string {
	switch tag {
	case analytics.OnlyNext:
		return fmt.Sprintf("%q is sold only at next branches; it is not sold at coffemania branches.", displayName)
	case analytics.OnlyCoffemania:
		return fmt.Sprintf("%q is sold only at coffemania branches; it is not sold at next branches.", displayName)
	}
	return ""
}

// BuildContext serializes the aggregated analytics into the grounding
// text block: ranking, tiers, per-product breakdown, branch rosters and
// the restriction rules. Output is deterministic for a given input.
func BuildContext(sales map[string]*analytics.ProductSalesRecord, tiers analytics.TierGroups, reg *branchgroups.Registry) string {
	var b strings.Builder
	ranked := rankedNames(sales)
	nextBranches := reg.All(branchgroups.GroupNext)
	coffemaniaBranches := reg.All(branchgroups.GroupCoffemania)

	b.WriteString("SALES DATA\n\n")

	b.WriteString("Product ranking by total sales:\n")
	for i, name := range ranked {
		rec := sales[name]
		fmt.Fprintf(&b, "[%02d] %s: %.2f\n", i+1, rec.Identity.DisplayName, rec.Total)
	}

	b.WriteString("\nPopularity tiers:\n")
	fmt.Fprintf(&b, "Tier A (500 and above): %s\n", displayNames(tiers.A, sales))
	fmt.Fprintf(&b, "Tier B (200-499): %s\n", displayNames(tiers.B, sales))
	fmt.Fprintf(&b, "Tier C (100-199): %s\n", displayNames(tiers.C, sales))
	fmt.Fprintf(&b, "Tier D (50-99): %s\n", displayNames(tiers.D, sales))
	fmt.Fprintf(&b, "Tier E (below 50): %s\n", displayNames(tiers.E, sales))

	b.WriteString("\nPer-product breakdown:\n")
	for _, name := range ranked {
		rec := sales[name]
		fmt.Fprintf(&b, "%s (category %s):\n", rec.Identity.DisplayName, rec.Identity.Category)
		fmt.Fprintf(&b, "  total: %.2f\n", rec.Total)
		fmt.Fprintf(&b, "  group next: %.2f\n", rec.ByGroup.Next)
		fmt.Fprintf(&b, "  group coffemania: %.2f\n", rec.ByGroup.Coffemania)
		writeBranchSection(&b, "next", nextBranches, rec.ByBranch)
		writeBranchSection(&b, "coffemania", coffemaniaBranches, rec.ByBranch)
		fmt.Fprintf(&b, "  best day: %s (%.2f at %s)\n", rec.Trends.MaxDay.Date, rec.Trends.MaxDay.Amount, rec.Trends.MaxDay.Branch)
		fmt.Fprintf(&b, "  worst day: %s (%.2f at %s)\n", rec.Trends.MinDay.Date, rec.Trends.MinDay.Amount, rec.Trends.MinDay.Branch)
		fmt.Fprintf(&b, "  daily average: %.2f\n", rec.Trends.Average)
		fmt.Fprintf(&b, "  growth: %.2f%%\n", rec.Trends.GrowthPercent)
	}

	b.WriteString("\nBranch roster:\n")
	fmt.Fprintf(&b, "next: %s\n", strings.Join(nextBranches, ", "))
	fmt.Fprintf(&b, "coffemania: %s\n", strings.Join(coffemaniaBranches, ", "))

	b.WriteString("\nSales restrictions:\n")
	wrote := false
	for _, name := range ranked {
		rec := sales[name]
		for _, tag := range rec.Identity.Restrictions {
			if sentence := restrictionSentence(rec.Identity.DisplayName, tag); sentence != "" {
				b.WriteString(sentence + "\n")
				wrote = true
			}
		}
	}
	if !wrote {
		b.WriteString("(none)\n")
	}

	return b.String()
}
