package handlers

import (
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recommendationCount is how many similar items a recommendation
// request returns at most.
const recommendationCount = 5

// itemTerms lower-cases and splits the descriptive fields an item is
// compared on. Name is deliberately excluded: two items of the same
// brand and occasion should rank close even with unrelated names.
func itemTerms(item models.ClothingItem) []string {
	combined := strings.Join([]string{string(item.Category), item.Brand, item.Occasion}, " ")
	return strings.Fields(strings.ToLower(combined))
}

// tfidfVectors weighs each document's terms by frequency, discounted
// by how many documents share the term, and l2-normalizes the result
// so dot products are cosine similarities.
func tfidfVectors(docs [][]string) []map[string]float64 {
	df := map[string]int{}
	for _, doc := range docs {
		seen := map[string]bool{}
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	n := float64(len(docs))
	vectors := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		vec := map[string]float64{}
		for _, term := range doc {
			vec[term]++
		}
		var norm float64
		for term, tf := range vec {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			vec[term] = tf * idf
			norm += vec[term] * vec[term]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a {
		dot += w * b[term]
	}
	return dot
}

// SimilarItems ranks the catalog against the item with the given id by
// cosine similarity of category, brand and occasion, and returns the
// top k other items. Ties keep catalog order. The second return value
// is false when the id is not in the slice.
func SimilarItems(items []models.ClothingItem, targetID primitive.ObjectID, k int) ([]models.ClothingItem, bool) {
	target := -1
	docs := make([][]string, len(items))
	for i, item := range items {
		docs[i] = itemTerms(item)
		if item.ID == targetID {
			target = i
		}
	}
	if target < 0 {
		return nil, false
	}

	vectors := tfidfVectors(docs)
	indexes := make([]int, 0, len(items)-1)
	for i := range items {
		if i != target {
			indexes = append(indexes, i)
		}
	}
	scores := make([]float64, len(items))
	for _, i := range indexes {
		scores[i] = cosine(vectors[target], vectors[i])
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return scores[indexes[a]] > scores[indexes[b]]
	})

	if k > len(indexes) {
		k = len(indexes)
	}
	recs := make([]models.ClothingItem, 0, k)
	for _, i := range indexes[:k] {
		recs = append(recs, items[i])
	}
	return recs, true
}

// RecommendSimilarItems returns up to five catalog items most similar
// to the one in the path, judged by category, brand and occasion.
func RecommendSimilarItems(c echo.Context) error {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid item ID"})
	}

	ctx := c.Request().Context()
	cursor, err := database.DB.Collection("clothes").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching recommendations"})
	}
	defer cursor.Close(ctx)

	items := []models.ClothingItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching recommendations"})
	}

	recs, found := SimilarItems(items, itemID, recommendationCount)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Clothing item not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"recommendations": recs})
}
