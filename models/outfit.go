package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OutfitCategory string

const (
	OutfitTops        OutfitCategory = "tops"
	OutfitBottoms     OutfitCategory = "bottoms"
	OutfitOuterwear   OutfitCategory = "outerwear"
	OutfitShoes       OutfitCategory = "shoes"
	OutfitAccessories OutfitCategory = "accessories"
	OutfitOthers      OutfitCategory = "others"
)

type Season string

const (
	SeasonSummer    Season = "summer"
	SeasonWinter    Season = "winter"
	SeasonSpring    Season = "spring"
	SeasonFall      Season = "fall"
	SeasonAllSeason Season = "all-season"
)

var hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

func ValidOutfitCategory(c string) bool {
	switch OutfitCategory(c) {
	case OutfitTops, OutfitBottoms, OutfitOuterwear, OutfitShoes, OutfitAccessories, OutfitOthers:
		return true
	}
	return false
}

func ValidSeason(s string) bool {
	switch Season(s) {
	case SeasonSummer, SeasonWinter, SeasonSpring, SeasonFall, SeasonAllSeason:
		return true
	}
	return false
}

// ValidHexColor accepts #rgb and #rrggbb color codes.
func ValidHexColor(c string) bool {
	return hexColorRe.MatchString(c)
}

// Outfit is a wardrobe item owned by a single user.
type Outfit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Brand     string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Category  OutfitCategory     `bson:"category" json:"category"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"` // hex color code, e.g. "#1e3a8a"
	Season    Season             `bson:"season" json:"season"`
	Price     float64            `bson:"price" json:"price"`
	Tags      []string           `bson:"tags" json:"tags"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
