package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"innkeeper/config"
	"innkeeper/handlers"
	"innkeeper/middleware"
	"innkeeper/utils"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/chat/:sessionID", hb.ChatHandler)
	r.POST("/reset/:sessionID", hb.ResetSessionHandler)
	r.POST("/confirm/:sessionID", hb.ConfirmBookingHandler)
}

// RegisterCatalogRoutes registers the hotel catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/hotels", hb.ListHotelsHandler)
}

// RegisterMediaRoutes registers audio playback and voice transcription.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/audio/:filename", hb.GetAudioHandler)
	r.POST("/stt", hb.STTHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Innkeeper"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
}
