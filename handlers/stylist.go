package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"github.com/stylemind-ai/stylemind-backend-go/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Outbound AI calls get explicit deadlines so a stuck provider cannot
// pin request handlers.
const (
	chatTimeout    = 30 * time.Second
	profileTimeout = 60 * time.Second
)

// datasetItemLimit bounds how many catalog items are serialized into the
// model's context.
const datasetItemLimit = 200

type StylistChatRequest struct {
	Message string           `json:"message"`
	History []utils.ChatTurn `json:"history"`
}

// StylistChat proxies a chat message to the Gemini stylist. The chat
// session is rebuilt from the supplied history on every call; nothing is
// shared between requests or users.
func StylistChat(c echo.Context) error {
	var req StylistChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "message is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), chatTimeout)
	defer cancel()

	dataset, err := catalogDataset(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error while loading catalog"})
	}

	client, err := utils.NewStylistClient(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Stylist service unavailable"})
	}
	defer client.Close()

	reply, err := client.FashionAdvice(ctx, req.Message, req.History, dataset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to get fashion advice"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "reply": reply})
}

// GenerateStyleProfile builds an AI style profile from the caller's
// stored assessment and persists it on the user document.
func GenerateStyleProfile(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(c.Request().Context(), profileTimeout)
	defer cancel()

	var user models.User
	err := database.DB.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
	}

	if user.AssessmentData.IsEmpty() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Complete the style assessment first"})
	}

	client, err := utils.NewStylistClient(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Stylist service unavailable"})
	}
	defer client.Close()

	profile, err := client.StyleProfile(ctx, user.AssessmentData)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to generate style profile"})
	}

	_, err = database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"aiStyleProfile": profile, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "aiStyleProfile": profile})
}

type AnalyzeOutfitRequest struct {
	Tops        map[string]interface{} `json:"tops"`
	Bottoms     map[string]interface{} `json:"bottoms"`
	Shoes       map[string]interface{} `json:"shoes"`
	Accessories map[string]interface{} `json:"accessories"`
}

// selectedItems collects the non-null categories in panel order.
func (r AnalyzeOutfitRequest) selectedItems() []interface{} {
	var items []interface{}
	for _, item := range []map[string]interface{}{r.Tops, r.Bottoms, r.Shoes, r.Accessories} {
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

// AnalyzeOutfit runs an AI analysis over the items picked in the outfit
// panel. Categories left unpicked are simply omitted from the prompt.
func AnalyzeOutfit(c echo.Context) error {
	var req AnalyzeOutfitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	items := req.selectedItems()
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "No items selected. Please choose at least one product."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), chatTimeout)
	defer cancel()

	client, err := utils.NewStylistClient(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Stylist service unavailable"})
	}
	defer client.Close()

	analysis, err := client.OutfitAnalysis(ctx, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to analyze outfit"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "analysis": analysis})
}

type SuggestAlternativesRequest struct {
	Outfit      utils.OutfitSummary    `json:"outfit"`
	Preferences utils.StylePreferences `json:"preferences"`
}

// SuggestAlternatives returns restyled versions of an outfit tuned to
// the caller's preferences.
func SuggestAlternatives(c echo.Context) error {
	var req SuggestAlternativesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}
	if req.Outfit.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "outfit.name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), chatTimeout)
	defer cancel()

	client, err := utils.NewStylistClient(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Stylist service unavailable"})
	}
	defer client.Close()

	alternatives, err := client.OutfitAlternatives(ctx, req.Outfit, req.Preferences)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to suggest alternatives"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "alternatives": alternatives})
}

// catalogDataset serializes a slice of the catalog for prompt context.
func catalogDataset(ctx context.Context) (string, error) {
	cursor, err := database.DB.Collection("clothes").Find(ctx, bson.M{},
		options.Find().SetLimit(datasetItemLimit))
	if err != nil {
		return "", err
	}
	defer cursor.Close(ctx)

	items := []models.ClothingItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return "", err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
