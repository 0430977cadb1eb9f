package grounding

import (
	"fmt"
	"strings"
	"time"

	"bakehouse/models"
)

// MinGroundingDays is the minimum analysis window embedded in a prompt.
// Shorter queries are widened so the model always sees enough history.
const MinGroundingDays = 30

// formattingInstructions is the protocol contract the model is asked to
// honor. The validator is the only enforcement mechanism for it, and a
// heuristic one.
const formattingInstructions = `Answer rules:
- Refer to a product's rank with the notation [NN] from the ranking above.
- Write every number with exactly two decimal digits and do not round values.
- Keep figures for next branches and coffemania branches strictly separate; never blend the two groups unless the question asks for the overall total.
- If the answer involves a group-exclusive product, say explicitly that it is not sold at the other group's branches.`

// BuildPrompt composes the grounding context, the user question and the
// analysis period into one prompt. When the requested range spans fewer
// than MinGroundingDays calendar days, StartDate is pulled back to
// EndDate minus 30 days; the caller's range is adjusted in place and
// must be treated as authoritative for display afterwards.
func BuildPrompt(context, question string, dr *models.DateRange) (string, models.DateRange) {
	if dr.Days() < MinGroundingDays {
		if end, err := time.Parse("2006-01-02", dr.EndDate); err == nil {
			dr.StartDate = end.AddDate(0, 0, -MinGroundingDays).Format("2006-01-02")
		}
	}

	var b strings.Builder
	b.WriteString(context)
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n")
	fmt.Fprintf(&b, "\nAnalysis period: %s to %s (%d days)\n", dr.StartDate, dr.EndDate, dr.Days())
	b.WriteString("\n")
	b.WriteString(formattingInstructions)
	b.WriteString("\n")

	return b.String(), *dr
}
