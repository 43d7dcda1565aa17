package main

import (
	"os"
	"time"

	"fansite-app/config"
	"fansite-app/database"
	assetsapi "fansite-app/internal/api/assets"
	"fansite-app/internal/api/auth"
	videosapi "fansite-app/internal/api/videos"
	routes "fansite-app/internal/app/http"
	"fansite-app/internal/infra/storage"
	"fansite-app/internal/infra/youtube"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()
	auth.SeedAdmin()

	videosapi.Fetcher = youtube.NewClient(config.YOUTUBE_API_KEY)
	assetsapi.Store = storage.NewDisk(config.UPLOAD_DIR, config.PUBLIC_BASE_URL)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", config.UPLOAD_DIR)

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
