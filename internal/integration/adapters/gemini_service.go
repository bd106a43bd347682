package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// GeminiService implements the adapter.CategorySuggestionService using
// Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest analyzes uncategorized transactions and returns category suggestions.
func (s *GeminiService) Suggest(
	ctx context.Context,
	transactions []*entity.Transaction,
	categories []*entity.Category,
) ([]*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(transactions, categories)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	results, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return results, nil
}

// buildPrompt creates the categorization prompt.
func (s *GeminiService) buildPrompt(transactions []*entity.Transaction, categories []*entity.Category) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal finance transactions. Analyze the uncategorized transactions below and suggest a category for each one.

RULES:
- Prefer an existing category when it fits well
- Only propose a new category name when nothing existing fits
- Base the suggestion on the payee, notes and tags
- One suggestion per transaction

EXISTING CATEGORIES:
`)

	if len(categories) > 0 {
		for _, cat := range categories {
			sb.WriteString(fmt.Sprintf("- Name: %s, Type: %s\n", cat.Name, cat.Type))
		}
	} else {
		sb.WriteString("(none)\n")
	}

	sb.WriteString("\nTRANSACTIONS TO CATEGORIZE:\n")
	for _, txn := range transactions {
		sb.WriteString(fmt.Sprintf("- ID: %s, Payee: %q, Notes: %q, Tags: %q, Amount: %s, Type: %s\n",
			txn.ID, txn.Payee, txn.Notes, txn.Tags.ExportJoin(), txn.Amount.String(), txn.Type))
	}

	sb.WriteString(`
Respond with a JSON array of suggestions. Each suggestion must have:
{
  "transaction_id": "uuid of the transaction",
  "category_name": "suggested category name",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	TransactionID string  `json:"transaction_id"`
	CategoryName  string  `json:"category_name"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into category suggestions.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestions []geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	results := make([]*adapter.CategorySuggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		txID, err := uuid.Parse(sg.TransactionID)
		if err != nil {
			continue // Skip invalid IDs
		}
		if sg.CategoryName == "" {
			continue
		}

		results = append(results, &adapter.CategorySuggestion{
			TransactionID: txID,
			CategoryName:  sg.CategoryName,
			Confidence:    sg.Confidence,
			Reasoning:     sg.Reasoning,
		})
	}

	return results, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.CategorySuggestionService = (*GeminiService)(nil)
