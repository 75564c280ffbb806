package routes

import (
	"net/http"
	"time"

	"evermore/handlers"
	"evermore/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user and auth endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		// Registration is public only for the bootstrap user; once anyone
		// exists the service requires an admin caller, so the token is
		// parsed when present.
		api.POST("/register", middleware.OptionalJWTAuthMiddleware(), hb.Auth.RegisterUserHandler)
		api.POST("/login", hb.Auth.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.GetCurrentUserHandler)
		api.POST("/revoke", hb.Auth.RevokeTokenHandler)
		api.DELETE("/:id", hb.User.DeleteUserHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.User.GetAllUsersHandler)
	}
}

// RegisterAnniversaryRoutes registers anniversary CRUD and the
// single-anniversary force-send endpoint.
func RegisterAnniversaryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/anniversaries")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Anniversaries.CreateAnniversaryHandler)
		api.GET("", hb.Anniversaries.GetAnniversariesHandler)
		api.GET("/:id", hb.Anniversaries.GetAnniversaryHandler)
		api.PUT("/:id", hb.Anniversaries.UpdateAnniversaryHandler)
		api.DELETE("/:id", hb.Anniversaries.DeleteAnniversaryHandler)
		api.POST("/:id/remind", hb.Reminders.SendAnniversaryReminderHandler)
	}
}

// RegisterMemoryRoutes registers memory CRUD and image endpoints.
func RegisterMemoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/memories")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Memories.CreateMemoryHandler)
		api.GET("", hb.Memories.GetMemoriesHandler)
		api.GET("/:id", hb.Memories.GetMemoryHandler)
		api.PUT("/:id", hb.Memories.UpdateMemoryHandler)
		api.DELETE("/:id", hb.Memories.DeleteMemoryHandler)
		api.POST("/:id/images", hb.Memories.UploadImageHandler)
		api.DELETE("/:id/images/:fileID", hb.Memories.RemoveImageHandler)
	}

	// Image retrieval is addressed by blob id, outside the memory group.
	r.GET("/api/images/:fileID", middleware.JWTAuthMiddleware(), hb.Storage.GetImageHandler)
}

// RegisterReminderRoutes registers the scheduler endpoint and the manual
// test-window endpoint.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/cron/daily-reminders", middleware.CronSecretMiddleware(), hb.Reminders.DailyRemindersHandler)

	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/test", hb.Reminders.TestRemindersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Evermore"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAnniversaryRoutes(r, hb)
	RegisterMemoryRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterHealthRoute(r)
}
