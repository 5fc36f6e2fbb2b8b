package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stylemind-ai/stylemind-backend-go/config"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	categories = []models.ItemCategory{
		models.CategoryTops, models.CategoryBottoms, models.CategoryShoes, models.CategoryAccessories,
	}

	subcategories = map[models.ItemCategory][]string{
		models.CategoryTops:        {"t-shirt", "blouse", "sweater", "shirt", "tank-top"},
		models.CategoryBottoms:     {"jeans", "chinos", "skirt", "shorts", "trousers"},
		models.CategoryShoes:       {"sneakers", "boots", "heels", "loafers", "sandals"},
		models.CategoryAccessories: {"bag", "belt", "scarf", "hat", "jewelry"},
	}

	brands = []string{
		"Zara", "H&M", "Uniqlo", "Mango", "Levi's", "Nike", "Adidas",
		"COS", "Everlane", "Massimo Dutti",
	}

	occasions = []string{"casual", "formal", "business", "party", "athletic", "vacation"}
)

func main() {
	count := flag.Int("count", 100, "number of catalog items to insert")
	drop := flag.Bool("drop", false, "drop the clothes collection first")
	flag.Parse()

	config.LoadEnv()
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := database.DB.Collection("clothes")
	if *drop {
		if err := collection.Drop(ctx); err != nil {
			log.Fatal("Failed to drop collection:", err)
		}
		log.Println("Dropped clothes collection")
	}

	gofakeit.Seed(time.Now().UnixNano())

	docs := make([]interface{}, 0, *count)
	for i := 0; i < *count; i++ {
		docs = append(docs, fakeItem())
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatal("Failed to insert items:", err)
	}
	log.Printf("Inserted %d catalog items", len(result.InsertedIDs))

	total, _ := collection.CountDocuments(ctx, bson.M{})
	log.Printf("Catalog now holds %d items", total)
}

func fakeItem() models.ClothingItem {
	category := categories[gofakeit.Number(0, len(categories)-1)]
	subs := subcategories[category]
	subcategory := subs[gofakeit.Number(0, len(subs)-1)]
	brand := brands[gofakeit.Number(0, len(brands)-1)]

	name := fmt.Sprintf("%s %s %s",
		brand,
		gofakeit.AdjectiveDescriptive(),
		subcategory,
	)

	// createdAt is spread backwards so the "newest" sort has something to do.
	created := time.Now().Add(-time.Duration(gofakeit.Number(0, 90*24)) * time.Hour)

	return models.ClothingItem{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Category:    category,
		Subcategory: subcategory,
		Brand:       brand,
		Occasion:    occasions[gofakeit.Number(0, len(occasions)-1)],
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/800", gofakeit.UUID()),
		Price:       gofakeit.Price(10, 300),
		Link:        gofakeit.URL(),
		Favorite:    false,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}
