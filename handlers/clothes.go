package handlers

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CatalogQuery is the parsed filter/sort/pagination state of a shopping
// catalog request. Comma-separated filter values are OR-ed within a
// field; fields are AND-ed against each other.
type CatalogQuery struct {
	Categories []string
	Brands     []string
	Occasions  []string
	Names      []string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string
	Page       int
	Limit      int
}

// ParseCatalogQuery reads the supported query parameters, coercing page
// and limit into sane bounds (page >= 1, limit in [1, 100], default 20).
func ParseCatalogQuery(values url.Values) CatalogQuery {
	q := CatalogQuery{
		Categories: splitCSV(values.Get("category")),
		Brands:     splitCSV(values.Get("brand")),
		Occasions:  splitCSV(values.Get("occasion")),
		Names:      splitCSV(values.Get("names")),
		Sort:       values.Get("sort"),
		Page:       1,
		Limit:      defaultPageLimit,
	}

	if v := values.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinPrice = &f
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MaxPrice = &f
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			q.Page = n
		}
	}
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			q.Limit = n
		}
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	return q
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Filter builds the Mongo filter document. Each present field
// contributes one condition; price bounds are inclusive.
func (q CatalogQuery) Filter() bson.M {
	filter := bson.M{}
	if len(q.Categories) > 0 {
		filter["category"] = bson.M{"$in": q.Categories}
	}
	if len(q.Brands) > 0 {
		filter["brand"] = bson.M{"$in": q.Brands}
	}
	if len(q.Occasions) > 0 {
		filter["occasion"] = bson.M{"$in": q.Occasions}
	}
	if len(q.Names) > 0 {
		filter["name"] = bson.M{"$in": q.Names}
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}

// SortSpec maps the three recognized sort keys to a Mongo sort document.
// Unrecognized keys return nil: results come back in natural collection
// order, which is not a stable contract.
func (q CatalogQuery) SortSpec() bson.D {
	switch q.Sort {
	case "price-low":
		return bson.D{{Key: "price", Value: 1}}
	case "price-high":
		return bson.D{{Key: "price", Value: -1}}
	case "newest":
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return nil
}

// Skip returns the number of documents before the requested page.
func (q CatalogQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// TotalPages computes ceil(totalCount / limit).
func (q CatalogQuery) TotalPages(totalCount int64) int64 {
	return int64(math.Ceil(float64(totalCount) / float64(q.Limit)))
}

// HasMore reports whether pages beyond the current one exist.
func (q CatalogQuery) HasMore(totalCount int64) bool {
	return int64(q.Page) < q.TotalPages(totalCount)
}

type AddClothingItemRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Brand       string   `json:"brand"`
	Occasion    string   `json:"occasion"`
	ImageURL    string   `json:"imageUrl"`
	Price       *float64 `json:"price"`
	Link        string   `json:"link"`
	Favorite    bool     `json:"favorite"`
}

// AddClothingItem creates a catalog item.
func AddClothingItem(c echo.Context) error {
	var req AddClothingItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	if req.Name == "" || req.Category == "" || req.Subcategory == "" || req.Brand == "" ||
		req.Occasion == "" || req.ImageURL == "" || req.Link == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "All fields except favorite are required"})
	}
	if !models.ValidItemCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category"})
	}
	if *req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Price must not be negative"})
	}

	item := models.ClothingItem{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Category:    models.ItemCategory(req.Category),
		Subcategory: req.Subcategory,
		Brand:       req.Brand,
		Occasion:    req.Occasion,
		ImageURL:    req.ImageURL,
		Price:       *req.Price,
		Link:        req.Link,
		Favorite:    req.Favorite,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := database.DB.Collection("clothes").InsertOne(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while adding clothing item"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Clothing item added successfully",
		"data":    item,
	})
}

// GetAllClothingItems returns the unfiltered catalog.
func GetAllClothingItems(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := database.DB.Collection("clothes").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching clothing items"})
	}
	defer cursor.Close(ctx)

	items := []models.ClothingItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching clothing items"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

// GetClothingItemsForShopping serves the filtered, sorted and paginated
// shopping view of the catalog.
func GetClothingItemsForShopping(c echo.Context) error {
	ctx := c.Request().Context()
	q := ParseCatalogQuery(c.QueryParams())
	filter := q.Filter()

	collection := database.DB.Collection("clothes")

	findOpts := options.Find().SetSkip(q.Skip()).SetLimit(int64(q.Limit))
	if sort := q.SortSpec(); sort != nil {
		findOpts.SetSort(sort)
	}

	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Server error while fetching clothing items",
		})
	}
	defer cursor.Close(ctx)

	items := []models.ClothingItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Server error while fetching clothing items",
		})
	}

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Server error while fetching clothing items",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"count":       len(items),
		"totalCount":  totalCount,
		"totalPages":  q.TotalPages(totalCount),
		"currentPage": q.Page,
		"hasMore":     q.HasMore(totalCount),
		"data":        items,
	})
}

// GetClothingItemByID fetches one catalog item.
func GetClothingItemByID(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid item ID"})
	}

	var item models.ClothingItem
	err = database.DB.Collection("clothes").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Clothing item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching clothing item"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": item})
}

type ToggleFavoriteRequest struct {
	ItemID string `json:"itemId"`
}

// ToggleFavorite flips an item's favorite flag with a single pipeline
// update, then reconciles the caller's saved list: the snapshot is added
// when the item became favorited and pulled when it did not. Both sides
// are conditional single-document updates, so concurrent toggles cannot
// half-apply.
func ToggleFavorite(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req ToggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	itemID, err := primitive.ObjectIDFromHex(req.ItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid item ID"})
	}

	ctx := c.Request().Context()
	users := database.DB.Collection("users")
	clothes := database.DB.Collection("clothes")

	if err := users.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User or item not found"})
	}

	var item models.ClothingItem
	err = clothes.FindOneAndUpdate(ctx,
		bson.M{"_id": itemID},
		mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"favorite":  bson.M{"$not": "$favorite"},
				"updatedAt": "$$NOW",
			}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User or item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}

	if item.Favorite {
		_, err = users.UpdateOne(ctx,
			bson.M{"_id": userID, "savedOutfits._id": bson.M{"$ne": item.ID}},
			bson.M{
				"$push": bson.M{"savedOutfits": item.Snapshot()},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
	} else {
		_, err = users.UpdateOne(ctx,
			bson.M{"_id": userID},
			bson.M{
				"$pull": bson.M{"savedOutfits": bson.M{"_id": item.ID}},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}

	var user models.User
	if err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}

	message := "Removed from favorites"
	if item.Favorite {
		message = "Added to favorites"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      message,
		"favorite":     item.Favorite,
		"savedOutfits": user.SavedOutfits,
	})
}
