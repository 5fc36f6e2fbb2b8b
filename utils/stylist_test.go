package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stylemind-ai/stylemind-backend-go/models"
)

func TestBuildAdviceContext(t *testing.T) {
	got := BuildAdviceContext(`[{"name":"Navy Tee"}]`, "suggest a casual office outfit")

	assert.Contains(t, got, `[{"name":"Navy Tee"}]`)
	assert.Contains(t, got, "User prompt: suggest a casual office outfit")
	assert.Contains(t, got, "Show max 4 items per category")
}

func TestBuildAdviceContextTruncatesDataset(t *testing.T) {
	dataset := strings.Repeat("x", datasetContextLimit+5000)
	got := BuildAdviceContext(dataset, "hi")

	assert.Less(t, len(got), len(dataset))
	assert.Contains(t, got, "User prompt: hi")
}

func TestBuildStyleProfilePrompt(t *testing.T) {
	a := &models.Assessment{
		SelectedImages:   []string{"boardroom", "weekend-brunch"},
		SelectedBodyType: "pear",
		SelectedColors: models.ColorPreferences{
			Favorites: []string{"navy", "cream"},
			Avoid:     []string{"neon green"},
		},
		LikedOutfits: []string{"minimalist-chic"},
		BudgetData:   models.BudgetData{Budget: "budget-friendly", Frequency: "monthly"},
	}

	got := BuildStyleProfilePrompt(a)
	assert.Contains(t, got, "boardroom, weekend-brunch")
	assert.Contains(t, got, "Body type: pear")
	assert.Contains(t, got, "navy, cream")
	assert.Contains(t, got, "neon green")
	assert.Contains(t, got, "budget-friendly")
	assert.Contains(t, got, `"styleArchetype"`)
}

func TestBuildStyleProfilePromptDefaults(t *testing.T) {
	got := BuildStyleProfilePrompt(nil)
	assert.Contains(t, got, "Lifestyle scenarios: Not specified")
	assert.Contains(t, got, "Favorite colors: None specified")
}

func TestBuildOutfitAnalysisPrompt(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"name": "Navy Tee", "category": "tops", "price": 25.0},
		map[string]interface{}{"name": "Slim Chinos", "category": "bottoms", "price": 60.0},
	}

	got, err := BuildOutfitAnalysisPrompt(items)
	assert.NoError(t, err)
	assert.Contains(t, got, "Navy Tee")
	assert.Contains(t, got, "Slim Chinos")
	assert.Contains(t, got, `"styleCategory"`)
	assert.Contains(t, got, `"totalPrice"`)
}

func TestBuildOutfitAlternativesPrompt(t *testing.T) {
	got := BuildOutfitAlternativesPrompt(
		OutfitSummary{Name: "Office Monochrome", Occasion: "work"},
		StylePreferences{FavoriteColors: []string{"navy", "cream"}, Budget: "$100-200"},
	)

	assert.Contains(t, got, "Name: Office Monochrome")
	assert.Contains(t, got, "Occasion: work")
	assert.Contains(t, got, "Description: No description provided")
	assert.Contains(t, got, "Favorite colors: navy, cream")
	assert.Contains(t, got, "Budget: $100-200")
	assert.Contains(t, got, "Body type: Not specified")
}

func TestFallbackAlternatives(t *testing.T) {
	alts := FallbackAlternatives(OutfitSummary{Name: "Date Night"})
	assert.Len(t, alts, 2)
	assert.Equal(t, "Date Night - Casual Alternative", alts[0]["name"])
	assert.Equal(t, "Date Night - Elevated Version", alts[1]["name"])
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  plain text  ", "plain text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanModelJSON(tt.in))
	}
}

func TestFallbackStyleProfile(t *testing.T) {
	a := &models.Assessment{
		SelectedColors: models.ColorPreferences{Favorites: []string{"rust", "sage"}},
	}
	profile := FallbackStyleProfile(a, "free-form analysis")

	assert.Equal(t, "free-form analysis", profile["detailedAnalysis"])
	palette := profile["colorPalette"].(map[string]interface{})
	assert.Equal(t, []string{"rust", "sage"}, palette["primary"])

	// Without favorites the palette falls back to neutrals.
	profile = FallbackStyleProfile(nil, "text")
	palette = profile["colorPalette"].(map[string]interface{})
	assert.NotEmpty(t, palette["primary"])
}
