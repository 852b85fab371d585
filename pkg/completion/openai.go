package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/logger"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"

	defaultModel       = "gpt-3.5-turbo"
	defaultTemperature = 0.9
	defaultMaxTokens   = 200
)

// OpenAIClient calls the OpenAI chat-completions API
type OpenAIClient struct {
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	endpoint    string
	client      *http.Client
	logger      logger.Logger
}

// NewOpenAIClient creates a new OpenAI client. An empty apiKey is
// accepted here and reported per request, so a misconfigured deployment
// still boots and surfaces a 500 instead of crashing.
func NewOpenAIClient(apiKey, model string, log logger.Logger) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}

	return &OpenAIClient{
		apiKey:      apiKey,
		model:       model,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
		endpoint:    openAIEndpoint,
		client:      &http.Client{},
		logger:      log,
	}
}

// chatMessage represents a message in the chat-completions request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int         `json:"index"`
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the system prompt and user message to OpenAI and
// returns the reply text. Upstream error payloads are logged here and
// never included in the returned error.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("Failed to serialize completion request", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		c.logger.Error("Failed to create completion request", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Info("Sending completion request",
		"model", c.model,
		"max_tokens", c.maxTokens)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Completion API call failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read completion response", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		// The provider payload stays in the server log only
		c.logger.Error("Completion API returned an error",
			"status", resp.Status,
			"body", string(respBody))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var apiResp chatCompletionResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		c.logger.Error("Failed to decode completion response", "error", err, "body", string(respBody))
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		c.logger.Error("Empty completion from API", "body", string(respBody))
		return "", ErrEmptyCompletion
	}

	c.logger.Info("Completion generated",
		"model", apiResp.Model,
		"prompt_tokens", apiResp.Usage.PromptTokens,
		"completion_tokens", apiResp.Usage.CompletionTokens)

	return apiResp.Choices[0].Message.Content, nil
}
