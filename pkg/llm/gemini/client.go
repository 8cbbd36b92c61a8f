package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/iterator"
	"google.golang.org/genai"

	"rawdago/pkg/config"
	"rawdago/pkg/llm"
	"rawdago/pkg/model"
	"rawdago/pkg/tracker"
)

const providerName = "gemini"

// bilingualSchema is the fixed output shape for every tool: one Arabic
// field and one French field, both required.
var bilingualSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"arabic": {
			Type:        genai.TypeString,
			Description: "The generated content, in Arabic.",
		},
		"french": {
			Type:        genai.TypeString,
			Description: "The generated content, in French.",
		},
	},
	Required: []string{"arabic", "french"},
}

// Client implements llm.Provider for Google Gemini.
type Client struct {
	genaiClient *genai.Client
	modelName   string
	logPath     string
	tracker     *tracker.Tracker
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, cfg config.LLMConfig, logPath string, t *tracker.Tracker) (*Client, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("no API key configured (set llm.key or GEMINI_API_KEY)")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	c := &Client{
		genaiClient: client,
		modelName:   cfg.Model,
		logPath:     logPath,
		tracker:     t,
	}
	if c.modelName == "" {
		c.modelName = "gemini-2.5-flash"
	}

	if err := c.validateModel(ctx); err != nil {
		slog.Warn("Gemini model validation failed (proceeding anyway)", "error", err)
		// Startup proceeds even if the API is flaky or rate-limited; a
		// truly invalid key or model fails on the first generation call.
	}

	return c, nil
}

// GenerateBilingual sends a prompt and parses the schema-constrained
// JSON response into a bilingual text pair.
func (c *Client) GenerateBilingual(ctx context.Context, name, prompt string) (*model.BilingualText, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   bilingualSchema,
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), cfg)
	if err != nil {
		c.logPrompt(name, prompt, fmt.Sprintf("ERROR: %v", err))
		if c.tracker != nil {
			c.tracker.TrackAPIFailure(providerName)
		}
		return nil, fmt.Errorf("generate content error: %w", err)
	}

	text, err := getResponseText(resp)
	if err != nil {
		c.logPrompt(name, prompt, fmt.Sprintf("EMPTY: %v", err))
		if c.tracker != nil {
			c.tracker.TrackAPIZero(providerName)
		}
		return nil, llm.ErrEmptyResult
	}

	cleaned := cleanJSONBlock(text)
	c.logPrompt(name, prompt, cleaned)

	var result model.BilingualText
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		if c.tracker != nil {
			c.tracker.TrackAPIFailure(providerName)
		}
		return nil, fmt.Errorf("failed to unmarshal JSON response: %w. Response: %s", err, cleaned)
	}

	if result.Arabic == "" || result.French == "" {
		if c.tracker != nil {
			c.tracker.TrackAPIZero(providerName)
		}
		return nil, llm.ErrEmptyResult
	}

	if c.tracker != nil {
		c.tracker.TrackAPISuccess(providerName)
	}
	return &result, nil
}

// HealthCheck verifies the configured model is reachable with this key.
func (c *Client) HealthCheck(ctx context.Context) error {
	name := c.modelName
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}
	if _, err := c.genaiClient.Models.Get(ctx, name, nil); err != nil {
		return fmt.Errorf("gemini health check failed: %w", err)
	}
	return nil
}

// validateModel checks if the configured model is available for the API key.
func (c *Client) validateModel(ctx context.Context) error {
	name := c.modelName
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}

	_, err := c.genaiClient.Models.Get(ctx, name, nil)
	if err == nil {
		slog.Debug("Gemini model validation success", "model", c.modelName)
		return nil
	}

	slog.Warn("Gemini model validation failed, fetching available models...", "model", c.modelName, "error", err)

	iter, listErr := c.genaiClient.Models.List(ctx, nil)
	if listErr != nil {
		slog.Warn("Failed to list models for recovery", "error", listErr)
		return nil // Proceed anyway
	}

	var availableModels []string
	for {
		resp, nextErr := iter.Next(ctx)
		if nextErr == iterator.Done {
			break
		}
		if nextErr != nil {
			break
		}
		if strings.Contains(strings.ToLower(resp.Name), "gemini") {
			availableModels = append(availableModels, resp.Name)
		}
	}

	slog.Error("Configured model not found", "configured", c.modelName)
	for _, m := range availableModels {
		slog.Error("available model: " + m)
	}

	return nil // Proceed anyway (lazy validation on generation)
}

func getResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	if resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("candidate has no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("candidate has no text parts")
	}
	return sb.String(), nil
}

// cleanJSONBlock strips markdown fences some models wrap around JSON
// even in schema mode.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
