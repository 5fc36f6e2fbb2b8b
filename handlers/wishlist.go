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

// WishlistProduct is the denormalized product payload the client sends
// when saving an item. The id may arrive as either "id" or "_id".
type WishlistProduct struct {
	ID          string  `json:"id"`
	AltID       string  `json:"_id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}

// ProductID resolves the id field, whichever key the client used.
func (p *WishlistProduct) ProductID() (primitive.ObjectID, error) {
	id := p.ID
	if id == "" {
		id = p.AltID
	}
	return primitive.ObjectIDFromHex(id)
}

type SaveOutfitRequest struct {
	Product      WishlistProduct `json:"product"`
	IsWishlisted bool            `json:"isWishlisted"`
}

// SaveOutfit adds or removes a product snapshot from the caller's saved
// list. Adds are guarded on the product id so repeated saves never
// duplicate an entry; removes pull every entry with a matching id.
func SaveOutfit(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req SaveOutfitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	productID, err := req.Product.ProductID()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid product data"})
	}

	collection := database.DB.Collection("users")
	ctx := c.Request().Context()

	if req.IsWishlisted {
		snapshot := models.SavedOutfit{
			ID:          productID,
			Name:        req.Product.Name,
			Brand:       req.Product.Brand,
			Category:    req.Product.Category,
			Subcategory: req.Product.Subcategory,
			ImageURL:    req.Product.ImageURL,
			Price:       req.Product.Price,
		}
		// Push only when no entry with this id exists yet.
		result, err := collection.UpdateOne(ctx,
			bson.M{"_id": userID, "savedOutfits._id": bson.M{"$ne": productID}},
			bson.M{
				"$push": bson.M{"savedOutfits": snapshot},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
		}
		if result.MatchedCount == 0 {
			// Either the user is gone or the entry already exists; only the
			// former is an error.
			if err := collection.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
				return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
			}
		}
	} else {
		result, err := collection.UpdateOne(ctx,
			bson.M{"_id": userID},
			bson.M{
				"$pull": bson.M{"savedOutfits": bson.M{"_id": productID}},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
		}
		if result.MatchedCount == 0 {
			return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
		}
	}

	var user models.User
	if err := collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "savedOutfits": user.SavedOutfits})
}

// FetchFavorite returns the caller's saved product snapshots.
func FetchFavorite(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var user models.User
	err := database.DB.Collection("users").FindOne(
		c.Request().Context(),
		bson.M{"_id": userID},
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "product": user.SavedOutfits})
}
