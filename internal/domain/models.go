package domain

import "time"

// Invocation is one chat command extracted from an incoming message.
// It lives only for the duration of handling.
type Invocation struct {
	ID        string
	Platform  string
	Command   string
	Author    string
	Args      string
	Timestamp time.Time
}

// Sampling holds the fixed generation parameters bound to a command.
type Sampling struct {
	Model            string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	PresencePenalty  float64
	FrequencyPenalty float64
}

// CompletionRequest pairs a persona prompt with the user's text.
type CompletionRequest struct {
	Persona  string
	Prompt   string
	Sampling Sampling
}

// CompletionResponse represents the text generated for a request.
type CompletionResponse struct {
	ID         string
	Model      string
	Content    string
	Usage      Usage
	FinishTime time.Time
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
