package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateConversationRequest struct {
	UserID       string                     `json:"userId"`
	Conversation []models.ConversationEntry `json:"conversation"`
}

// CreateConversation appends chat sessions to the user's conversation
// document, creating it on first use. Entries without a timestamp get
// the current time.
func CreateConversation(c echo.Context) error {
	var req CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId is required"})
	}

	now := time.Now()
	entries := make([]models.ConversationEntry, 0, len(req.Conversation))
	for _, entry := range req.Conversation {
		if entry.ID.IsZero() {
			entry.ID = primitive.NewObjectID()
		}
		if entry.LastMessage.Timestamp.IsZero() {
			entry.LastMessage.Timestamp = now
		}
		if entry.OutfitThumbnails == nil {
			entry.OutfitThumbnails = []string{}
		}
		entries = append(entries, entry)
	}

	// Upsert keeps the append atomic: concurrent first appends for the
	// same user land in one document.
	var doc models.Conversation
	err := database.DB.Collection("conversations").FindOneAndUpdate(
		c.Request().Context(),
		bson.M{"userId": req.UserID},
		bson.M{
			"$push":        bson.M{"conversation": bson.M{"$each": entries}},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while creating conversation"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"data":    doc,
		"message": "Conversation(s) created/added successfully",
	})
}

// GetConversationsByUserID lists all conversation documents whose userId
// matches the path parameter.
func GetConversationsByUserID(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId parameter is required"})
	}

	ctx := c.Request().Context()
	cursor, err := database.DB.Collection("conversations").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching conversations"})
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error while fetching conversations"})
	}

	return c.JSON(http.StatusOK, conversations)
}

type DeleteConversationRequest struct {
	ConversationID string `json:"conversationId"`
}

// deleteConversationFilter matches the user's document only while it
// still contains the entry being deleted.
func deleteConversationFilter(userID string, convID primitive.ObjectID) bson.M {
	return bson.M{
		"userId":           userID,
		"conversation._id": convID,
	}
}

// DeleteConversation pulls one entry, matched by its sub-document id,
// out of the caller's conversation document. Other entries keep their
// relative order.
func DeleteConversation(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req DeleteConversationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}
	if req.ConversationID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId and conversationId are required"})
	}

	convID, err := primitive.ObjectIDFromHex(req.ConversationID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid conversation ID"})
	}

	ctx := c.Request().Context()
	collection := database.DB.Collection("conversations")

	// The filter requires the entry to still be present. ModifiedCount
	// cannot tell a no-op pull apart from a real one once updatedAt is
	// also $set, so absence has to be detected by MatchedCount instead.
	result, err := collection.UpdateOne(ctx,
		deleteConversationFilter(userID.Hex(), convID),
		bson.M{
			"$pull": bson.M{"conversation": bson.M{"_id": convID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
	if result.MatchedCount == 0 {
		if err := collection.FindOne(ctx, bson.M{"userId": userID.Hex()}).Err(); err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "No conversations found for this user"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Conversation not found"})
	}

	var doc models.Conversation
	if err := collection.FindOne(ctx, bson.M{"userId": userID.Hex()}).Decode(&doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Conversation deleted successfully",
		"remaining": doc.Conversation,
	})
}
