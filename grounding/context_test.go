package grounding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bakehouse/analytics"
	"bakehouse/branchgroups"
	"bakehouse/models"
)

func testRegistry() *branchgroups.Registry {
	return branchgroups.Build([]models.Branch{
		{Name: "Arbat", Type: "next"},
		{Name: "Lubyanka", Type: "coffemania"},
	})
}

func testSales() (map[string]*analytics.ProductSalesRecord, analytics.TierGroups) {
	doc := models.OrderDocument{
		"2024-01-01": {
			"Arbat":    {"Eclair": "300", "Cookie": "20"},
			"Lubyanka": {"Eclair": "250"},
		},
		"2024-01-15": {
			"Arbat": {"ChocolateOnly": "40"},
		},
	}
	return analytics.Aggregate(doc, testRegistry())
}

func TestBuildContextRankingOrderAndFormat(t *testing.T) {
	sales, tiers := testSales()
	context := BuildContext(sales, tiers, testRegistry())

	// Eclair (550) outsells the rest and leads the ranking.
	assert.Contains(t, context, "[01] Eclair: 550.00")

	rankEclair := strings.Index(context, "[01] Eclair")
	rankChocolate := strings.Index(context, "[02] ChocolateOnly")
	rankCookie := strings.Index(context, "[03] Cookie")
	if rankEclair == -1 || rankChocolate == -1 || rankCookie == -1 {
		t.Fatalf("missing ranking lines in context:\n%s", context)
	}
	if !(rankEclair < rankChocolate && rankChocolate < rankCookie) {
		t.Fatalf("ranking lines out of order in context:\n%s", context)
	}
}

func TestBuildContextDeterministic(t *testing.T) {
	sales, tiers := testSales()
	reg := testRegistry()

	first := BuildContext(sales, tiers, reg)
	for i := 0; i < 5; i++ {
		if next := BuildContext(sales, tiers, reg); next != first {
			t.Fatalf("context changed between identical builds")
		}
	}
}

func TestBuildContextSections(t *testing.T) {
	sales, tiers := testSales()
	context := BuildContext(sales, tiers, testRegistry())

	assert.Contains(t, context, "Tier A (500 and above): Eclair")
	assert.Contains(t, context, "group next: 300.00")
	assert.Contains(t, context, "group coffemania: 250.00")
	assert.Contains(t, context, "next: Arbat")
	assert.Contains(t, context, "coffemania: Lubyanka")
	assert.Contains(t, context, "daily average:")
	assert.Contains(t, context, "growth:")
}

func TestBuildContextRestrictionsRenderedFromTags(t *testing.T) {
	sales, tiers := testSales()
	context := BuildContext(sales, tiers, testRegistry())

	assert.Contains(t, context, `"ChocolateOnly" is sold only at next branches`)
	assert.NotContains(t, context, `"Eclair" is sold only`)
}

func TestBuildContextEmptyData(t *testing.T) {
	context := BuildContext(map[string]*analytics.ProductSalesRecord{}, analytics.TierGroups{}, testRegistry())

	assert.Contains(t, context, "Tier A (500 and above): (none)")
	assert.Contains(t, context, "(none)")
}
