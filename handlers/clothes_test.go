package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCatalogQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, q CatalogQuery)
	}{
		{
			name:  "defaults",
			query: "",
			check: func(t *testing.T, q CatalogQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, defaultPageLimit, q.Limit)
				assert.Nil(t, q.MinPrice)
				assert.Nil(t, q.MaxPrice)
				assert.Empty(t, q.Categories)
			},
		},
		{
			name:  "comma separated sets",
			query: "category=tops,shoes&brand=Zara&occasion=casual,formal,party",
			check: func(t *testing.T, q CatalogQuery) {
				assert.Equal(t, []string{"tops", "shoes"}, q.Categories)
				assert.Equal(t, []string{"Zara"}, q.Brands)
				assert.Equal(t, []string{"casual", "formal", "party"}, q.Occasions)
			},
		},
		{
			name:  "price bounds",
			query: "minPrice=20&maxPrice=100",
			check: func(t *testing.T, q CatalogQuery) {
				require.NotNil(t, q.MinPrice)
				require.NotNil(t, q.MaxPrice)
				assert.Equal(t, 20.0, *q.MinPrice)
				assert.Equal(t, 100.0, *q.MaxPrice)
			},
		},
		{
			name:  "non numeric page and limit fall back",
			query: "page=abc&limit=xyz",
			check: func(t *testing.T, q CatalogQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, defaultPageLimit, q.Limit)
			},
		},
		{
			name:  "limit is clamped",
			query: "limit=100000",
			check: func(t *testing.T, q CatalogQuery) {
				assert.Equal(t, maxPageLimit, q.Limit)
			},
		},
		{
			name:  "zero and negative values fall back",
			query: "page=0&limit=-5",
			check: func(t *testing.T, q CatalogQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, defaultPageLimit, q.Limit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			tt.check(t, ParseCatalogQuery(values))
		})
	}
}

func TestCatalogQueryFilter(t *testing.T) {
	t.Run("empty query matches everything", func(t *testing.T) {
		q := ParseCatalogQuery(url.Values{})
		assert.Empty(t, q.Filter())
	})

	t.Run("fields are combined", func(t *testing.T) {
		values, _ := url.ParseQuery("category=tops,shoes&minPrice=20&maxPrice=100")
		filter := ParseCatalogQuery(values).Filter()

		assert.Equal(t, bson.M{"$in": []string{"tops", "shoes"}}, filter["category"])
		assert.Equal(t, bson.M{"$gte": 20.0, "$lte": 100.0}, filter["price"])
		assert.NotContains(t, filter, "brand")
		assert.NotContains(t, filter, "occasion")
	})

	t.Run("min only", func(t *testing.T) {
		values, _ := url.ParseQuery("minPrice=50")
		filter := ParseCatalogQuery(values).Filter()
		assert.Equal(t, bson.M{"$gte": 50.0}, filter["price"])
	})

	t.Run("max only", func(t *testing.T) {
		values, _ := url.ParseQuery("maxPrice=50")
		filter := ParseCatalogQuery(values).Filter()
		assert.Equal(t, bson.M{"$lte": 50.0}, filter["price"])
	})

	t.Run("names filter", func(t *testing.T) {
		values, _ := url.ParseQuery("names=Navy Tee,White Sneakers")
		filter := ParseCatalogQuery(values).Filter()
		assert.Equal(t, bson.M{"$in": []string{"Navy Tee", "White Sneakers"}}, filter["name"])
	})
}

func TestCatalogQuerySortSpec(t *testing.T) {
	tests := []struct {
		sort string
		want bson.D
	}{
		{"price-low", bson.D{{Key: "price", Value: 1}}},
		{"price-high", bson.D{{Key: "price", Value: -1}}},
		{"newest", bson.D{{Key: "createdAt", Value: -1}}},
		{"", nil},
		{"alphabetical", nil},
	}

	for _, tt := range tests {
		q := CatalogQuery{Sort: tt.sort}
		assert.Equal(t, tt.want, q.SortSpec(), "sort=%q", tt.sort)
	}
}

func TestCatalogQueryPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalCount int64
		wantPages  int64
		wantMore   bool
		wantSkip   int64
	}{
		{"empty result", 1, 20, 0, 0, false, 0},
		{"exact fit", 1, 20, 20, 1, false, 0},
		{"remainder adds a page", 1, 20, 21, 2, true, 0},
		{"last page", 2, 20, 21, 2, false, 20},
		{"single item pages", 3, 1, 5, 5, true, 2},
		{"beyond the end", 9, 20, 21, 2, false, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := CatalogQuery{Page: tt.page, Limit: tt.limit}
			assert.Equal(t, tt.wantPages, q.TotalPages(tt.totalCount))
			assert.Equal(t, tt.wantMore, q.HasMore(tt.totalCount))
			assert.Equal(t, tt.wantSkip, q.Skip())
		})
	}
}

// Mirrors the documented shopping scenario: 5 items, a tops/shoes filter
// with a 20-100 price window, cheapest first, two per page.
func TestCatalogQueryShoppingScenario(t *testing.T) {
	values, err := url.ParseQuery("category=tops,shoes&minPrice=20&maxPrice=100&sort=price-low&page=1&limit=2")
	require.NoError(t, err)
	q := ParseCatalogQuery(values)

	filter := q.Filter()
	assert.Equal(t, bson.M{"$in": []string{"tops", "shoes"}}, filter["category"])
	assert.Equal(t, bson.M{"$gte": 20.0, "$lte": 100.0}, filter["price"])
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, q.SortSpec())

	// 3 of the 5 fixture items match (tops@30, shoes@50, tops@90).
	const totalCount = 3
	assert.EqualValues(t, 2, q.TotalPages(totalCount))
	assert.True(t, q.HasMore(totalCount))

	q.Page = 2
	assert.False(t, q.HasMore(totalCount))
}

func TestAddClothingItemValidation(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"category":"tops","subcategory":"t-shirt","brand":"Zara","occasion":"casual","imageUrl":"http://img","price":10,"link":"http://shop"}`},
		{"missing price", `{"name":"Tee","category":"tops","subcategory":"t-shirt","brand":"Zara","occasion":"casual","imageUrl":"http://img","link":"http://shop"}`},
		{"missing link", `{"name":"Tee","category":"tops","subcategory":"t-shirt","brand":"Zara","occasion":"casual","imageUrl":"http://img","price":10}`},
		{"invalid category", `{"name":"Tee","category":"hats","subcategory":"t-shirt","brand":"Zara","occasion":"casual","imageUrl":"http://img","price":10,"link":"http://shop"}`},
		{"negative price", `{"name":"Tee","category":"tops","subcategory":"t-shirt","brand":"Zara","occasion":"casual","imageUrl":"http://img","price":-1,"link":"http://shop"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/clothes/add", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, AddClothingItem(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestToggleFavoriteRejectsBadItemID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/clothes/wishlist", strings.NewReader(`{"itemId":"not-an-object-id"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", primitive.NewObjectID())

	require.NoError(t, ToggleFavorite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
