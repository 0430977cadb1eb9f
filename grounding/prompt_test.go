package grounding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bakehouse/models"
)

func TestBuildPromptWidensShortRange(t *testing.T) {
	dr := models.DateRange{StartDate: "2024-03-10", EndDate: "2024-03-15"}
	_, effective := BuildPrompt("ctx", "question", &dr)

	assert.Equal(t, "2024-02-14", effective.StartDate)
	assert.Equal(t, "2024-03-15", effective.EndDate)
	assert.Equal(t, 30, effective.Days())

	// The caller's range is adjusted in place.
	assert.Equal(t, effective, dr)
}

func TestBuildPromptKeepsWideRange(t *testing.T) {
	dr := models.DateRange{StartDate: "2024-01-01", EndDate: "2024-03-15"}
	_, effective := BuildPrompt("ctx", "question", &dr)

	assert.Equal(t, "2024-01-01", effective.StartDate)
	assert.GreaterOrEqual(t, effective.Days(), MinGroundingDays)
}

func TestBuildPromptAlwaysMeetsMinimumWindow(t *testing.T) {
	ranges := []models.DateRange{
		{StartDate: "2024-03-15", EndDate: "2024-03-15"},
		{StartDate: "2024-03-14", EndDate: "2024-03-15"},
		{StartDate: "2023-01-01", EndDate: "2024-03-15"},
	}
	for _, dr := range ranges {
		_, effective := BuildPrompt("ctx", "q", &dr)
		if effective.Days() < MinGroundingDays {
			t.Fatalf("effective range %+v spans %d days; want >= %d", effective, effective.Days(), MinGroundingDays)
		}
	}
}

func TestBuildPromptComposition(t *testing.T) {
	dr := models.DateRange{StartDate: "2024-01-01", EndDate: "2024-03-15"}
	prompt, _ := BuildPrompt("SALES DATA BLOCK", "Which product sold best?", &dr)

	ctxIdx := strings.Index(prompt, "SALES DATA BLOCK")
	questionIdx := strings.Index(prompt, "Question: Which product sold best?")
	periodIdx := strings.Index(prompt, "Analysis period: 2024-01-01 to 2024-03-15 (74 days)")
	rulesIdx := strings.Index(prompt, "Answer rules:")

	if ctxIdx == -1 || questionIdx == -1 || periodIdx == -1 || rulesIdx == -1 {
		t.Fatalf("prompt is missing a section:\n%s", prompt)
	}
	if !(ctxIdx < questionIdx && questionIdx < periodIdx && periodIdx < rulesIdx) {
		t.Fatalf("prompt sections out of order:\n%s", prompt)
	}

	assert.Contains(t, prompt, "[NN]")
	assert.Contains(t, prompt, "two decimal digits")
	assert.Contains(t, prompt, "not sold")
}
