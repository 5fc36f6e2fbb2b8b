package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/stylemind-ai/stylemind-backend-go/config"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"google.golang.org/api/option"
)

const stylistModel = "gemini-2.5-flash"

// datasetContextLimit caps how much of the catalog JSON is inlined into
// the prompt so requests stay under the model's context budget.
const datasetContextLimit = 12000

const styleSystemPrompt = `You are StyleMind AI, a professional fashion stylist and personal style consultant. You provide expert fashion advice, outfit recommendations, and style guidance. Your responses should be:

1. Personalized and considerate of individual body types, lifestyles, and budgets
2. Fashion-forward yet practical and achievable
3. Inclusive and body-positive
4. Detailed with specific product suggestions when appropriate
5. Encouraging and confidence-boosting

Always maintain a warm, encouraging, and professional tone. Ask clarifying questions when needed and provide actionable advice.`

// ChatTurn is one prior message of a stylist conversation.
type ChatTurn struct {
	Sender  string `json:"sender"` // "user" or anything else for the model
	Content string `json:"content"`
}

// StylistClient wraps the Gemini SDK for the stylist endpoints. A client
// is created per request so no chat state leaks between users.
type StylistClient struct {
	client *genai.Client
}

func NewStylistClient(ctx context.Context) (*StylistClient, error) {
	apiKey := config.GetEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &StylistClient{client: client}, nil
}

func (s *StylistClient) Close() error {
	return s.client.Close()
}

// FashionAdvice sends the user's prompt plus the catalog dataset context to
// the model inside a chat session seeded with the conversation history.
func (s *StylistClient) FashionAdvice(ctx context.Context, message string, history []ChatTurn, dataset string) (string, error) {
	model := s.client.GenerativeModel(stylistModel)

	cs := model.StartChat()
	cs.History = []*genai.Content{
		{Role: "user", Parts: []genai.Part{genai.Text("System instructions")}},
		{Role: "model", Parts: []genai.Part{genai.Text(styleSystemPrompt)}},
	}
	for _, turn := range history {
		role := "model"
		if turn.Sender == "user" {
			role = "user"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(BuildAdviceContext(dataset, message)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return CleanModelJSON(text), nil
}

// StyleProfile turns a completed assessment into a structured style
// profile. When the model's output is not parseable JSON, a structured
// fallback built from the assessment is returned instead.
func (s *StylistClient) StyleProfile(ctx context.Context, assessment *models.Assessment) (map[string]interface{}, error) {
	model := s.client.GenerativeModel(stylistModel)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildStyleProfilePrompt(assessment)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var profile map[string]interface{}
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &profile); err != nil {
		return FallbackStyleProfile(assessment, text), nil
	}
	return profile, nil
}

// OutfitSummary names the outfit an alternatives request starts from.
type OutfitSummary struct {
	Name        string `json:"name"`
	Occasion    string `json:"occasion"`
	Description string `json:"description"`
}

// StylePreferences carries the optional user preferences that steer
// alternative suggestions.
type StylePreferences struct {
	FavoriteColors   []string `json:"favoriteColors"`
	BodyType         string   `json:"bodyType"`
	StylePreferences []string `json:"stylePreferences"`
	Budget           string   `json:"budget"`
}

// OutfitAnalysis asks the model for a structured read of the selected
// items: style category, occasion, season, formality, tips, palette
// and total price.
func (s *StylistClient) OutfitAnalysis(ctx context.Context, items []interface{}) (map[string]interface{}, error) {
	model := s.client.GenerativeModel(stylistModel)

	prompt, err := BuildOutfitAnalysisPrompt(items)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var analysis map[string]interface{}
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &analysis); err != nil {
		return nil, fmt.Errorf("unparseable analysis response: %w", err)
	}
	return analysis, nil
}

// OutfitAlternatives asks the model for 3-4 restyled versions of an
// outfit. When the model answers in prose, a generic fallback list is
// returned instead of an error.
func (s *StylistClient) OutfitAlternatives(ctx context.Context, outfit OutfitSummary, prefs StylePreferences) ([]map[string]interface{}, error) {
	model := s.client.GenerativeModel(stylistModel)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildOutfitAlternativesPrompt(outfit, prefs)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var alternatives []map[string]interface{}
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &alternatives); err != nil {
		return FallbackAlternatives(outfit), nil
	}
	return alternatives, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("unexpected response format (empty content)")
	}
	return b.String(), nil
}

// BuildAdviceContext assembles the per-message prompt: catalog dataset,
// recommendation rules and the user's question.
func BuildAdviceContext(dataset, prompt string) string {
	if len(dataset) > datasetContextLimit {
		dataset = dataset[:datasetContextLimit]
	}
	return fmt.Sprintf(`You are StyleMind AI, a professional stylist.
You have access to the following dataset of fashion items (JSON):
%s
Follow these rules:
1. Respond in JSON only (no markdown).
2. Show max 4 items per category.
3. Only recommend from dataset.
4. If prompt asks specific item (like jeans), only return that type.

User prompt: %s
`, dataset, prompt)
}

// BuildStyleProfilePrompt renders the structured style-profile request
// from the user's assessment answers.
func BuildStyleProfilePrompt(a *models.Assessment) string {
	if a == nil {
		a = &models.Assessment{}
	}
	return fmt.Sprintf(`As StyleMind AI, analyze this comprehensive style assessment and create a personalized style profile:

ASSESSMENT DATA:
- Lifestyle scenarios: %s
- Body type: %s
- Favorite colors: %s
- Colors to avoid: %s
- Liked outfit styles: %s
- Disliked outfit styles: %s
- Budget range: %s
- Shopping frequency: %s
- Style priorities: %s

Please provide a JSON response with the following structure:
{
  "styleArchetype": {
    "name": "A creative style archetype name",
    "description": "2-3 sentences describing their style personality",
    "traits": ["4 key style traits"],
    "motto": "An inspiring style motto"
  },
  "detailedAnalysis": "A comprehensive paragraph analyzing their style preferences and providing insights",
  "colorPalette": {
    "primary": ["3-4 primary colors that work best"],
    "accent": ["2-3 accent colors"],
    "neutral": ["2-3 neutral base colors"]
  },
  "outfitRecommendations": [
    {
      "title": "Outfit name",
      "occasion": "When to wear it",
      "description": "Why it works for them",
      "items": ["List of 4-5 specific clothing items"],
      "stylingTips": "How to style and accessorize"
    }
  ],
  "shoppingGuide": {
    "keyPieces": ["5-6 essential items to invest in"],
    "avoidItems": ["Items that won't work well"],
    "budgetTips": "Specific advice for their budget range"
  },
  "bodyTypeAdvice": "Specific styling advice for their body type (if provided)"
}

Make it personal, actionable, and encouraging. Focus on their specific preferences and lifestyle needs.`,
		orDefault(strings.Join(a.SelectedImages, ", "), "Not specified"),
		orDefault(a.SelectedBodyType, "Not specified"),
		orDefault(strings.Join(a.SelectedColors.Favorites, ", "), "None specified"),
		orDefault(strings.Join(a.SelectedColors.Avoid, ", "), "None specified"),
		orDefault(strings.Join(a.LikedOutfits, ", "), "Not specified"),
		orDefault(strings.Join(a.DislikedOutfits, ", "), "Not specified"),
		orDefault(a.BudgetData.Budget, "Not specified"),
		orDefault(a.BudgetData.Frequency, "Not specified"),
		orDefault(strings.Join(a.BudgetData.Priorities, ", "), "Not specified"),
	)
}

// BuildOutfitAnalysisPrompt renders the structured outfit-analysis
// request for the selected items.
func BuildOutfitAnalysisPrompt(items []interface{}) (string, error) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize outfit items: %w", err)
	}
	return fmt.Sprintf(`You are StyleMind AI, a professional fashion stylist.

Analyze the following selected outfit items. Some categories may be null.

Items:
%s

Return structured JSON ONLY with this schema:
{
  "styleCategory": "string",
  "occasion": "string",
  "season": "string",
  "formalityLevel": "1-10",
  "stylingTips": ["tip1", "tip2", "tip3"],
  "colorPalette": ["#hex1", "#hex2", "#hex3"],
  "totalPrice": number
}

Rules:
- Use item names, descriptions, and categories to decide style, occasion, season.
- If some categories are missing, still generate the best possible analysis.
- Sum prices of the listed items for totalPrice.
`, data), nil
}

// BuildOutfitAlternativesPrompt renders the alternatives request from
// the outfit and the user's preferences.
func BuildOutfitAlternativesPrompt(outfit OutfitSummary, prefs StylePreferences) string {
	return fmt.Sprintf(`As StyleMind AI, suggest 3-4 alternative versions of this outfit:

ORIGINAL OUTFIT:
- Name: %s
- Occasion: %s
- Description: %s

USER PREFERENCES:
- Favorite colors: %s
- Body type: %s
- Style preferences: %s
- Budget: %s

Please provide alternative styling approaches that:
1. Maintain the same occasion appropriateness
2. Offer different aesthetic approaches (casual vs dressy, conservative vs bold, etc.)
3. Consider seasonal variations
4. Include budget-friendly options

Return as JSON array:
[
  {
    "name": "Alternative outfit name",
    "description": "How this version differs and why it works",
    "items": ["List of specific clothing items"],
    "priceRange": "Budget estimate (e.g., $50-100, $100-200, etc.)",
    "stylingTips": "Key styling advice"
  }
]`,
		orDefault(outfit.Name, "Not specified"),
		orDefault(outfit.Occasion, "Not specified"),
		orDefault(outfit.Description, "No description provided"),
		orDefault(strings.Join(prefs.FavoriteColors, ", "), "Not specified"),
		orDefault(prefs.BodyType, "Not specified"),
		orDefault(strings.Join(prefs.StylePreferences, ", "), "Not specified"),
		orDefault(prefs.Budget, "Not specified"),
	)
}

// FallbackAlternatives is returned when the model answered alternatives
// in prose instead of JSON.
func FallbackAlternatives(outfit OutfitSummary) []map[string]interface{} {
	name := orDefault(outfit.Name, "This look")
	return []map[string]interface{}{
		{
			"name":        name + " - Casual Alternative",
			"description": "A more relaxed take on the original look",
			"items":       []string{"Comfortable pieces", "Casual footwear", "Minimal accessories"},
			"priceRange":  "$50-100",
			"stylingTips": "Focus on comfort while maintaining style",
		},
		{
			"name":        name + " - Elevated Version",
			"description": "A more formal interpretation of the look",
			"items":       []string{"Tailored pieces", "Dress shoes", "Statement accessories"},
			"priceRange":  "$100-200",
			"stylingTips": "Invest in fit and finishing touches",
		},
	}
}

// CleanModelJSON strips the markdown code fences models wrap JSON in.
func CleanModelJSON(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// FallbackStyleProfile builds a usable profile when the model answered
// in prose instead of JSON.
func FallbackStyleProfile(a *models.Assessment, text string) map[string]interface{} {
	primary := []string{"Navy", "White", "Charcoal"}
	if a != nil && len(a.SelectedColors.Favorites) > 0 {
		primary = a.SelectedColors.Favorites
	}
	return map[string]interface{}{
		"styleArchetype": map[string]interface{}{
			"name":        "Your Unique Style",
			"description": "Based on your assessment, you have a distinctive and personal style approach that combines practicality with individual expression.",
			"traits":      []string{"Individual", "Practical", "Confident", "Versatile"},
			"motto":       "Style is a way to say who you are without having to speak",
		},
		"detailedAnalysis": text,
		"colorPalette": map[string]interface{}{
			"primary": primary,
			"accent":  []string{"Rust", "Olive"},
			"neutral": []string{"Beige", "Grey"},
		},
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
