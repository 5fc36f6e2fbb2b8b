package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddOutfitRequest struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Season   string   `json:"season"`
	Price    *float64 `json:"price"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}

// AddOutfit creates a wardrobe item owned by the caller.
func AddOutfit(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req AddOutfitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	if req.Name == "" || req.Category == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "name, category and price are required"})
	}
	if !models.ValidOutfitCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid category"})
	}
	if *req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Price must not be negative"})
	}
	if req.Color != "" && !models.ValidHexColor(req.Color) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid color code"})
	}

	season := models.SeasonAllSeason
	if req.Season != "" {
		if !models.ValidSeason(req.Season) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid season"})
		}
		season = models.Season(req.Season)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	outfit := models.Outfit{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Name:      req.Name,
		Brand:     req.Brand,
		Category:  models.OutfitCategory(req.Category),
		Color:     req.Color,
		Season:    season,
		Price:     *req.Price,
		Tags:      tags,
		Image:     req.Image,
		AddedAt:   time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := database.DB.Collection("outfits").InsertOne(c.Request().Context(), outfit); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server Error"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Outfit added successfully",
		"data":    outfit,
	})
}

// GetOutfits lists the caller's wardrobe.
func GetOutfits(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)
	ctx := c.Request().Context()

	cursor, err := database.DB.Collection("outfits").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server Error"})
	}
	defer cursor.Close(ctx)

	outfits := []models.Outfit{}
	if err := cursor.All(ctx, &outfits); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server Error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "data": outfits})
}
