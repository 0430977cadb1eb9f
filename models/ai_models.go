package models

import "time"

// AssistantRequest defines the structure for requests to the sales assistant.
type AssistantRequest struct {
	Question  string `json:"question"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AssistantMessage is the chat message shape the mobile app renders.
type AssistantMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// AssistantResponse pairs the generated message with the plausibility
// flag from the validator. Valid is a soft signal only; the UI may show
// a warning icon but never suppresses the message.
type AssistantResponse struct {
	Message AssistantMessage `json:"message"`
	Valid   bool             `json:"valid"`
	Period  DateRange        `json:"period"`
}
