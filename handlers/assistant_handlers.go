package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"bakehouse/analytics"
	"bakehouse/grounding"
	"bakehouse/models"
	"bakehouse/store"
	"bakehouse/validation"
)

// fallbackReply is shown when the model call fails or returns nothing.
// No retry happens here.
const fallbackReply = "Sorry, I could not prepare an answer right now. Please try again in a moment."

// HandleAskAssistant runs the full grounded-answer pipeline: fetch the
// raw orders for the window, aggregate, render the grounding context,
// compose the prompt, call the model, then score the answer with the
// plausibility heuristics. The validity flag is a soft signal; the
// answer is returned either way.
// POST /api/v1/assistant/ask
func HandleAskAssistant(c *fiber.Ctx) error {
	var req models.AssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "question is required"})
	}

	dr := models.DateRange{StartDate: req.StartDate, EndDate: req.EndDate}
	if dr.StartDate == "" || dr.EndDate == "" {
		now := time.Now()
		dr.EndDate = now.Format("2006-01-02")
		dr.StartDate = now.AddDate(0, 0, -grounding.MinGroundingDays).Format("2006-01-02")
	}

	log.Printf("🤖 [ASSISTANT] Question: %q, period %s to %s", req.Question, dr.StartDate, dr.EndDate)

	doc, err := store.FetchOrders(c.Context(), dr)
	if err != nil {
		log.Printf("❌ [ASSISTANT] Order fetch failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales data"})
	}

	reg := BranchRegistry.Current()
	sales, tiers := analytics.Aggregate(doc, reg)

	groundingContext := grounding.BuildContext(sales, tiers, reg)
	prompt, effective := grounding.BuildPrompt(groundingContext, req.Question, &dr)

	answer, err := generateText(c.Context(), prompt)
	if err != nil {
		log.Printf("❌ [ASSISTANT] Generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate answer",
			"data": models.AssistantMessage{
				ID:        uuid.NewString(),
				Role:      "assistant",
				Content:   fallbackReply,
				Timestamp: time.Now(),
			},
		})
	}

	validator := validation.Validator{Groups: reg}
	valid := validator.Validate(answer, sales, effective)
	if !valid {
		log.Printf("⚠️ [ASSISTANT] Answer failed plausibility checks, returning it anyway")
	}

	return c.JSON(fiber.Map{"status": "success", "data": models.AssistantResponse{
		Message: models.AssistantMessage{
			ID:        uuid.NewString(),
			Role:      "assistant",
			Content:   answer,
			Timestamp: time.Now(),
		},
		Valid:  valid,
		Period: effective,
	}})
}

// generateText sends the prompt to Gemini and returns the model's text.
// An empty candidate list is treated as an error, not retried.
func generateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no content")
	}

	answer := fmt.Sprint(resp.Candidates[0].Content.Parts[0])
	if answer == "" {
		return "", fmt.Errorf("model returned an empty answer")
	}
	return answer, nil
}
