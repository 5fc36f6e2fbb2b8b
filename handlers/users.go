package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/mail"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stylemind-ai/stylemind-backend-go/config"
	"github.com/stylemind-ai/stylemind-backend-go/database"
	"github.com/stylemind-ai/stylemind-backend-go/models"
	"github.com/stylemind-ai/stylemind-backend-go/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser creates a new user account.
func RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Please enter all required fields"})
	}
	if !isValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid email format"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Password must be at least 6 characters"})
	}

	collection := database.DB.Collection("users")
	ctx := c.Request().Context()

	email := utils.NormalizeEmail(req.Email)
	if err := collection.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to process password"})
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        email,
		Password:     string(hashedPassword),
		SavedOutfits: []models.SavedOutfit{},
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := collection.InsertOne(ctx, user); err != nil {
		// Unique index on email catches the race between the lookup and insert.
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to create user"})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// Helper function to validate email format
func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser verifies credentials and sets the httpOnly token cookie.
func LoginUser(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Please enter all required fields"})
	}

	var user models.User
	err := database.DB.Collection("users").FindOne(
		c.Request().Context(),
		bson.M{"email": utils.NormalizeEmail(req.Email)},
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid credentials"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Token generation failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     utils.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(utils.TokenTTL().Seconds()),
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"user": map[string]interface{}{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"avatar":         user.Avatar,
			"assessmentData": user.AssessmentData,
		},
	})
}

// LogoutUser clears the token cookie. Succeeds even without a token.
func LogoutUser(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     utils.TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Logged out successfully"})
}

// GetProfile returns the caller's profile, password excluded.
func GetProfile(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var user models.User
	err := database.DB.Collection("users").FindOne(
		c.Request().Context(),
		bson.M{"_id": userID},
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// UpdateProfile updates the caller's name and, when a multipart avatar
// file is attached, stores it under the upload directory.
func UpdateProfile(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	updateFields := bson.M{"updatedAt": time.Now()}
	if name := c.FormValue("name"); name != "" {
		updateFields["name"] = name
	}

	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		filename, err := saveAvatar(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to save avatar"})
		}
		updateFields["avatar"] = filename
	}

	var user models.User
	err := database.DB.Collection("users").FindOneAndUpdate(
		c.Request().Context(),
		bson.M{"_id": userID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func saveAvatar(file *multipart.FileHeader) (string, error) {
	uploadDir := config.GetEnv("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

type AssessmentRequest struct {
	AssessmentData *models.Assessment `json:"assessmentData"`
}

// UpdateAssessment stores the style-quiz answers on the user document.
func UpdateAssessment(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req AssessmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	var user models.User
	err := database.DB.Collection("users").FindOneAndUpdate(
		c.Request().Context(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"assessmentData": req.AssessmentData, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Assessment saved successfully",
		"user":    user,
	})
}

// GetAssessment returns the stored assessment, or null when the user
// never completed one.
func GetAssessment(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var user models.User
	err := database.DB.Collection("users").FindOne(
		c.Request().Context(),
		bson.M{"_id": userID},
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
	}

	if user.AssessmentData.IsEmpty() {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "assessmentData": nil})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "assessmentData": user.AssessmentData})
}

// FetchUserID echoes the user id decoded from the token cookie.
func FetchUserID(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)
	return c.JSON(http.StatusOK, map[string]string{"userId": userID.Hex()})
}

type AIStyleRequest struct {
	AIStyleProfile bson.M `json:"aiStyleProfile"`
}

// UpdateAIStyle stores the opaque AI style profile blob.
func UpdateAIStyle(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req AIStyleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid request format"})
	}

	_, err := database.DB.Collection("users").UpdateOne(
		c.Request().Context(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"aiStyleProfile": req.AIStyleProfile, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "AI style profile saved successfully"})
}

// GetAIStyle returns the stored AI style profile blob.
func GetAIStyle(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var user models.User
	err := database.DB.Collection("users").FindOne(
		c.Request().Context(),
		bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"aiStyleProfile": 1}),
	).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"success": false, "message": "User not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "aiStyleProfile": user.AIStyleProfile})
}
