package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemCategory string

const (
	CategoryTops        ItemCategory = "tops"
	CategoryBottoms     ItemCategory = "bottoms"
	CategoryShoes       ItemCategory = "shoes"
	CategoryAccessories ItemCategory = "accessories"
)

// ValidItemCategory reports whether the category is one of the catalog enums.
func ValidItemCategory(c string) bool {
	switch ItemCategory(c) {
	case CategoryTops, CategoryBottoms, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

type ClothingItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    ItemCategory       `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory" json:"subcategory"`
	Brand       string             `bson:"brand" json:"brand"`
	Occasion    string             `bson:"occasion" json:"occasion"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Price       float64            `bson:"price" json:"price"`
	Link        string             `bson:"link" json:"link"`
	Favorite    bool               `bson:"favorite" json:"favorite"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Snapshot returns the denormalized copy of the item stored on user documents.
func (i *ClothingItem) Snapshot() SavedOutfit {
	return SavedOutfit{
		ID:          i.ID,
		Name:        i.Name,
		Brand:       i.Brand,
		Category:    string(i.Category),
		Subcategory: i.Subcategory,
		ImageURL:    i.ImageURL,
		Price:       i.Price,
	}
}
