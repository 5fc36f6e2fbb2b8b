package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// ColorPreferences captures the color section of the style assessment.
type ColorPreferences struct {
	Favorites []string `bson:"favorites" json:"favorites"`
	Maybe     []string `bson:"maybe" json:"maybe"`
	Avoid     []string `bson:"avoid" json:"avoid"`
}

// BudgetData captures budget and shopping behavior answers.
type BudgetData struct {
	Budget        string   `bson:"budget" json:"budget"`
	Frequency     string   `bson:"frequency" json:"frequency"`
	Priorities    []string `bson:"priorities" json:"priorities"`
	MonthlyBudget float64  `bson:"monthlyBudget" json:"monthlyBudget"`
}

// Assessment is the style-quiz sub-document stored on the user.
type Assessment struct {
	SelectedImages   []string         `bson:"selectedImages" json:"selectedImages"`
	SelectedBodyType string           `bson:"selectedBodyType" json:"selectedBodyType"`
	SelectedColors   ColorPreferences `bson:"selectedColors" json:"selectedColors"`
	LikedOutfits     []string         `bson:"likedOutfits" json:"likedOutfits"`
	DislikedOutfits  []string         `bson:"dislikedOutfits" json:"dislikedOutfits"`
	BudgetData       BudgetData       `bson:"budgetData" json:"budgetData"`
}

// IsEmpty reports whether the user has actually completed any part of
// the assessment. Empty assessments are reported back as null so the
// client re-runs the wizard instead of rendering blank results.
func (a *Assessment) IsEmpty() bool {
	if a == nil {
		return true
	}
	return len(a.SelectedImages) == 0 &&
		a.SelectedBodyType == "" &&
		len(a.SelectedColors.Favorites) == 0 &&
		len(a.LikedOutfits) == 0 &&
		a.BudgetData.Budget == ""
}

// SavedOutfit is a denormalized snapshot of a catalog item kept on the
// user document for the wishlist views.
type SavedOutfit struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Subcategory string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Price       float64            `bson:"price" json:"price"`
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"` // "-" means don't include in JSON
	Avatar         string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	AssessmentData *Assessment        `bson:"assessmentData,omitempty" json:"assessmentData,omitempty"`
	AIStyleProfile bson.M             `bson:"aiStyleProfile,omitempty" json:"aiStyleProfile,omitempty"`
	SavedOutfits   []SavedOutfit      `bson:"savedOutfits" json:"savedOutfits"`
	Role           UserRole           `bson:"role" json:"role"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
