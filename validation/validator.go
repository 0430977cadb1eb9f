// Package validation runs plausibility heuristics over the generative
// model's free-text answer. The result is a soft signal only: it never
// blocks the message, and every sub-check fails open.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"bakehouse/analytics"
	"bakehouse/branchgroups"
	"bakehouse/grounding"
	"bakehouse/models"
)

// numberTolerance is the absolute slack allowed between a figure quoted
// in the answer and any numeric fact in the aggregated data.
const numberTolerance = 0.1

var (
	decimalPattern     = regexp.MustCompile(`\d+[.,]\d{2}`)
	percentPattern     = regexp.MustCompile(`-?\d+[.,]\d{2}%`)
	groupPhrasePattern = regexp.MustCompile(`(?i)(next|coffemania)\s+(branch|branches|store|stores|location|locations)`)
)

// Validator checks a model answer against the aggregated sales data.
// The branch registry backs the branch-comparison heuristic.
type Validator struct {
	Groups *branchgroups.Registry
}

// Validate applies the hard minimum-window gate and then ORs the four
// heuristics: an answer counts as plausible when any single one of them
// is satisfied. The permissive OR composition is deliberate; it trades
// missed rejections for fewer false rejections of good answers.
func (v *Validator) Validate(response string, sales map[string]*analytics.ProductSalesRecord, dr models.DateRange) bool {
	if dr.Days() < grounding.MinGroundingDays {
		return false
	}
	return failOpen(func() bool { return v.checkNumberAccuracy(response, sales) }) ||
		failOpen(func() bool { return v.checkPercentages(response) }) ||
		failOpen(func() bool { return v.checkBranchComparison(response) }) ||
		failOpen(func() bool { return v.checkRestrictions(response, sales) })
}

// failOpen converts any internal panic in a sub-check into a pass,
// keeping the validator total over arbitrary model output.
func failOpen(check func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = true
		}
	}()
	return check()
}

// checkNumberAccuracy extracts every two-decimal figure from the answer
// and passes when at least one of them sits within tolerance of any
// numeric fact across all products: totals, group buckets, branch
// buckets or daily amounts. The check is intentionally not scoped to
// the product a sentence is about. No figures in the answer is a pass.
func (v *Validator) checkNumberAccuracy(response string, sales map[string]*analytics.ProductSalesRecord) bool {
	matches := decimalPattern.FindAllString(response, -1)
	if len(matches) == 0 {
		return true
	}

	var facts []float64
	for _, rec := range sales {
		facts = append(facts, rec.Total, rec.ByGroup.Next, rec.ByGroup.Coffemania)
		for _, amount := range rec.ByBranch {
			facts = append(facts, amount)
		}
		for _, point := range rec.Daily {
			facts = append(facts, point.Amount)
		}
	}

	for _, match := range matches {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
		if err != nil {
			continue
		}
		for _, fact := range facts {
			if math.Abs(value-fact) <= numberTolerance {
				return true
			}
		}
	}
	return false
}

// checkPercentages extracts two-decimal percentages (the same shape the
// number check looks for) and passes when every one of them lies in
// [-100, 1000]. Integer or one-decimal percentages are not extracted,
// so an answer containing only those passes vacuously.
func (v *Validator) checkPercentages(response string) bool {
	matches := percentPattern.FindAllString(response, -1)
	for _, match := range matches {
		raw := strings.ReplaceAll(strings.TrimSuffix(match, "%"), ",", ".")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if value < -100 || value > 1000 {
			return false
		}
	}
	return true
}

// checkBranchComparison inspects how the answer talks about the two
// groups. Pairing a named next branch with a named coffemania branch is
// a pass; a generic group reference ("next branches") requires both
// group keywords to appear; anything more ambiguous passes by default.
func (v *Validator) checkBranchComparison(response string) bool {
	lower := strings.ToLower(response)
	mentionsNext := strings.Contains(lower, branchgroups.TypeNext)
	mentionsCoffemania := strings.Contains(lower, branchgroups.TypeCoffemania)
	if !mentionsNext && !mentionsCoffemania {
		return true
	}

	namesNextBranch := false
	for _, branch := range v.Groups.All(branchgroups.GroupNext) {
		if strings.Contains(lower, strings.ToLower(branch)) {
			namesNextBranch = true
			break
		}
	}
	namesCoffemaniaBranch := false
	for _, branch := range v.Groups.All(branchgroups.GroupCoffemania) {
		if strings.Contains(lower, strings.ToLower(branch)) {
			namesCoffemaniaBranch = true
			break
		}
	}
	if namesNextBranch && namesCoffemaniaBranch {
		return true
	}

	if groupPhrasePattern.MatchString(response) {
		return mentionsNext && mentionsCoffemania
	}
	return true
}

// checkRestrictions fails when the answer mentions a group-exclusive
// product alongside the opposite group's keyword without flagging it as
// "not sold" there.
func (v *Validator) checkRestrictions(response string, sales map[string]*analytics.ProductSalesRecord) bool {
	lower := strings.ToLower(response)
	flagged := strings.Contains(lower, "not sold")

	for _, rec := range sales {
		name := strings.ToLower(rec.Identity.DisplayName)
		if name == "" || !strings.Contains(lower, name) {
			continue
		}
		if rec.Identity.HasRestriction(analytics.OnlyNext) &&
			strings.Contains(lower, branchgroups.TypeCoffemania) && !flagged {
			return false
		}
		if rec.Identity.HasRestriction(analytics.OnlyCoffemania) &&
			strings.Contains(lower, branchgroups.TypeNext) && !flagged {
			return false
		}
	}
	return true
}
