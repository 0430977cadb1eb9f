package analytics

import (
	"math"
	"sort"
	"time"

	"bakehouse/branchgroups"
	"bakehouse/models"
)

// DailySalesPoint is one contribution event. Insertion order is not
// meaningful; consumers re-sort by date when needed.
type DailySalesPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Branch string  `json:"branch"`
}

// GroupTotals splits a product's total between the two branch groups.
// A branch outside both groups contributes to the product total and its
// branch bucket but to neither group, so Next+Coffemania can fall short
// of Total.
type GroupTotals struct {
	Next       float64 `json:"next"`
	Coffemania float64 `json:"coffemania"`
}

// Trends summarizes the daily series of one product.
type Trends struct {
	MaxDay        DailySalesPoint `json:"maxDay"`
	MinDay        DailySalesPoint `json:"minDay"`
	Average       float64         `json:"average"`
	GrowthPercent float64         `json:"growthPercent"`
}

// ProductSalesRecord is the aggregated view of one product over the
// queried window.
type ProductSalesRecord struct {
	Identity ProductIdentity    `json:"identity"`
	Total    float64            `json:"total"`
	ByBranch map[string]float64 `json:"byBranch"`
	ByGroup  GroupTotals        `json:"byGroup"`
	Daily    []DailySalesPoint  `json:"daily"`
	Trends   Trends             `json:"trends"`
}

func newRecord(displayName string) *ProductSalesRecord {
	return &ProductSalesRecord{
		Identity: NewProductIdentity(displayName),
		ByBranch: make(map[string]float64),
		Trends:   Trends{MinDay: DailySalesPoint{Amount: math.Inf(1)}},
	}
}

// allowsGroup applies the restriction hard filter: a restricted product
// only accepts contributions from its permitted group, everything else
// is dropped before any counter is touched.
func (rec *ProductSalesRecord) allowsGroup(g branchgroups.Group) bool {
	if rec.Identity.HasRestriction(OnlyNext) && g != branchgroups.GroupNext {
		return false
	}
	if rec.Identity.HasRestriction(OnlyCoffemania) && g != branchgroups.GroupCoffemania {
		return false
	}
	return true
}

// Order dates arrive either ISO or in the day-first form the order
// screens use.
var dayFormats = []string{"2006-01-02", "02.01.2006"}

func parseDay(date string) time.Time {
	for _, format := range dayFormats {
		if t, err := time.Parse(format, date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// updateExtremes maintains the running max and min. Ties on amount go
// to the later date for the max and the earlier date for the min; the
// +Inf sentinel on MinDay lets the first point always qualify.
func (rec *ProductSalesRecord) updateExtremes(point DailySalesPoint) {
	day := parseDay(point.Date)
	if point.Amount > rec.Trends.MaxDay.Amount ||
		(point.Amount == rec.Trends.MaxDay.Amount && day.After(parseDay(rec.Trends.MaxDay.Date))) {
		rec.Trends.MaxDay = point
	}
	if point.Amount < rec.Trends.MinDay.Amount ||
		(point.Amount == rec.Trends.MinDay.Amount && day.Before(parseDay(rec.Trends.MinDay.Date))) {
		rec.Trends.MinDay = point
	}
}

// finalize sorts the daily series chronologically and fills in average
// and growth. Growth needs at least two points; it is defined as 0 when
// the series is shorter or when the first point's amount is 0, so the
// calculation never divides by zero.
func (rec *ProductSalesRecord) finalize() {
	if len(rec.Daily) == 0 {
		rec.Trends.MinDay = DailySalesPoint{}
		return
	}
	sort.SliceStable(rec.Daily, func(i, j int) bool {
		return parseDay(rec.Daily[i].Date).Before(parseDay(rec.Daily[j].Date))
	})
	var sum float64
	for _, p := range rec.Daily {
		sum += p.Amount
	}
	rec.Trends.Average = sum / float64(len(rec.Daily))
	if len(rec.Daily) > 1 {
		first := rec.Daily[0]
		last := rec.Daily[len(rec.Daily)-1]
		if first.Amount != 0 {
			rec.Trends.GrowthPercent = (last.Amount - first.Amount) / first.Amount * 100
		}
	}
}

// Aggregate consumes the raw order ledger and produces the per-product
// sales records plus the tier partition. It is a total function:
// malformed quantities and unknown branches are skipped, never raised,
// and a fully malformed document yields empty results.
func Aggregate(doc models.OrderDocument, reg *branchgroups.Registry) (map[string]*ProductSalesRecord, TierGroups) {
	sales := make(map[string]*ProductSalesRecord)

	for date, byBranch := range doc {
		for branch, byProduct := range byBranch {
			group := reg.Membership(branch)
			for product, rawQty := range byProduct {
				key := NormalizeProductName(product)
				rec, ok := sales[key]
				if !ok {
					rec = newRecord(product)
					sales[key] = rec
				}

				qty, ok := ParseQuantity(rawQty)
				if !ok {
					continue
				}
				if !rec.allowsGroup(group) {
					continue
				}

				rec.Total += qty
				rec.ByBranch[branch] += qty
				switch group {
				case branchgroups.GroupNext:
					rec.ByGroup.Next += qty
				case branchgroups.GroupCoffemania:
					rec.ByGroup.Coffemania += qty
				}

				point := DailySalesPoint{Date: date, Amount: qty, Branch: branch}
				rec.Daily = append(rec.Daily, point)
				rec.updateExtremes(point)
			}
		}
	}

	for _, rec := range sales {
		rec.finalize()
	}

	return sales, GroupTiers(sales)
}
