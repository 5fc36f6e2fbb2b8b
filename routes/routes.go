package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stylemind-ai/stylemind-backend-go/config"
	"github.com/stylemind-ai/stylemind-backend-go/handlers"
	customMiddleware "github.com/stylemind-ai/stylemind-backend-go/middleware"
)

// SetupRoutes wires every endpoint onto the Echo instance.
func SetupRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the API"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Uploaded avatars are served statically.
	e.Static("/uploads", config.GetEnv("UPLOAD_DIR", "uploads"))

	// Auth & profile
	auth := e.Group("/api/auth")
	auth.POST("/register", handlers.RegisterUser)
	auth.POST("/login", handlers.LoginUser)
	auth.GET("/logout", handlers.LogoutUser)
	auth.GET("/profile", handlers.GetProfile, customMiddleware.AuthMiddleware)
	auth.PUT("/update-profile", handlers.UpdateProfile, customMiddleware.AuthMiddleware)
	auth.PUT("/assessment", handlers.UpdateAssessment, customMiddleware.AuthMiddleware)
	auth.GET("/get-assessment", handlers.GetAssessment, customMiddleware.AuthMiddleware)
	auth.GET("/fetch-user-id", handlers.FetchUserID, customMiddleware.AuthMiddleware)
	auth.GET("/ai-style", handlers.GetAIStyle, customMiddleware.AuthMiddleware)
	auth.PUT("/ai-style", handlers.UpdateAIStyle, customMiddleware.AuthMiddleware)
	auth.POST("/wishlist", handlers.SaveOutfit, customMiddleware.AuthMiddleware)
	auth.GET("/wishlist", handlers.FetchFavorite, customMiddleware.AuthMiddleware)

	// Catalog
	clothes := e.Group("/api/clothes")
	clothes.POST("/add", handlers.AddClothingItem)
	clothes.GET("", handlers.GetAllClothingItems)
	clothes.GET("/get", handlers.GetClothingItemsForShopping)
	clothes.POST("/wishlist", handlers.ToggleFavorite, customMiddleware.AuthMiddleware)
	clothes.GET("/:id/recommend", handlers.RecommendSimilarItems)
	clothes.GET("/:id", handlers.GetClothingItemByID)

	// Conversation history
	conversations := e.Group("/api/conversations")
	conversations.POST("", handlers.CreateConversation)
	conversations.POST("/delete", handlers.DeleteConversation, customMiddleware.AuthMiddleware)
	conversations.GET("/:userId", handlers.GetConversationsByUserID)

	// Wardrobe ("wadrope" kept for client compatibility)
	wardrobe := e.Group("/api/wadrope", customMiddleware.AuthMiddleware)
	wardrobe.POST("/add", handlers.AddOutfit)
	wardrobe.GET("", handlers.GetOutfits)

	// AI stylist proxy
	stylist := e.Group("/api/stylist", customMiddleware.AuthMiddleware)
	stylist.POST("/chat", handlers.StylistChat)
	stylist.POST("/style-profile", handlers.GenerateStyleProfile)
	stylist.POST("/analyze-outfit", handlers.AnalyzeOutfit)
	stylist.POST("/alternatives", handlers.SuggestAlternatives)
}
