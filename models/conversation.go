package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LastMessage holds the preview line shown in the chat sidebar.
type LastMessage struct {
	Preview   string    `bson:"preview" json:"preview"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ConversationEntry is one logical chat session inside a user's
// conversation document.
type ConversationEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Icon             string             `bson:"icon" json:"icon"` // e.g. "Briefcase", "Heart"
	LastMessage      LastMessage        `bson:"lastMessage" json:"lastMessage"`
	OutfitThumbnails []string           `bson:"outfitThumbnails" json:"outfitThumbnails"`
}

// Conversation aggregates all chat sessions of one user in a single
// document. UserID is a plain string, matching how the client sends it.
type Conversation struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       string              `bson:"userId" json:"userId"`
	Conversation []ConversationEntry `bson:"conversation" json:"conversation"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
