package routes

import (
	adminapi "fansite-app/internal/api/admin"
	assetsapi "fansite-app/internal/api/assets"
	authapi "fansite-app/internal/api/auth"
	castapi "fansite-app/internal/api/cast"
	episodesapi "fansite-app/internal/api/episodes"
	locationsapi "fansite-app/internal/api/locations"
	mascotsapi "fansite-app/internal/api/mascots"
	seasonsapi "fansite-app/internal/api/seasons"
	videosapi "fansite-app/internal/api/videos"
	"fansite-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public site reads
	r.GET("/seasons", seasonsapi.ListSeasons)
	r.GET("/seasons/:slug", seasonsapi.GetSeason)
	r.GET("/seasons/:slug/cast", seasonsapi.GetCast)
	r.GET("/seasons/:slug/videos", seasonsapi.GetVideos)
	r.GET("/seasons/:slug/ratings", seasonsapi.GetRatings)
	r.GET("/seasons/:slug/episodes", seasonsapi.GetEpisodes)
	r.GET("/seasons/:slug/images", seasonsapi.GetImages)
	r.GET("/seasons/:slug/locations", seasonsapi.GetLocations)

	r.GET("/cast", castapi.ListMembers)
	r.GET("/cast/:id", castapi.GetMember)

	r.GET("/mascots/:slug", mascotsapi.GetMascot)
	r.GET("/mascots/:slug/gallery", mascotsapi.GetGallery)
	r.GET("/season-mascots", mascotsapi.ListSeasonMascots)

	r.GET("/locations", locationsapi.ListMappable)
	r.GET("/platforms", assetsapi.ListPlatforms)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Admin back-office
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.GET("/stats", adminapi.GetDashboardStats)
	admin.GET("/tables/:table", adminapi.BrowseTable)
	admin.POST("/change-password", authapi.ChangePassword)

	admin.PUT("/seasons/:slug", seasonsapi.UpdateSeason)
	admin.POST("/ratings", seasonsapi.AddRating)
	admin.DELETE("/ratings/:id", seasonsapi.DeleteRating)

	admin.POST("/episodes", episodesapi.UpsertEpisode)
	admin.DELETE("/episodes/:id", episodesapi.DeleteEpisode)
	admin.PUT("/episodes/:id/videos", videosapi.LinkVideosHandler)
	admin.POST("/games", episodesapi.UpsertGame)
	admin.DELETE("/games/:id", episodesapi.DeleteGame)

	admin.GET("/videos", videosapi.ListAllVideos)
	admin.POST("/videos", videosapi.AddVideoHandler)
	admin.POST("/videos/fetch", videosapi.FetchYoutubeInfo)
	admin.POST("/videos/import", videosapi.ImportVideosHandler)
	admin.POST("/videos/sync", videosapi.SyncAllVideosHandler)
	admin.POST("/videos/:id/sync", videosapi.SyncVideoHandler)
	admin.PUT("/videos/:id", videosapi.UpdateVideoType)
	admin.DELETE("/videos/:id", videosapi.DeleteVideo)

	admin.POST("/cast", castapi.AddMember)
	admin.PUT("/cast/:id", castapi.UpdateMember)
	admin.DELETE("/cast/:id", castapi.DeleteMember)
	admin.POST("/cast/:id/images", castapi.AddCastImage)
	admin.DELETE("/cast-images/:id", castapi.DeleteCastImage)
	admin.POST("/season-cast", castapi.AddSeasonCast)
	admin.PUT("/season-cast/:id", castapi.UpdateSeasonCast)
	admin.DELETE("/season-cast/:id", castapi.DeleteSeasonCast)

	admin.POST("/locations", locationsapi.UpsertLocation)
	admin.DELETE("/locations/:id", locationsapi.DeleteLocation)

	admin.PUT("/season-mascots", mascotsapi.UpsertSeasonMascot)
	admin.POST("/mascot-gallery", mascotsapi.AddGalleryImage)
	admin.DELETE("/mascot-gallery/:id", mascotsapi.DeleteGalleryImage)

	admin.POST("/images", assetsapi.AddSeasonImage)
	admin.DELETE("/images/:id", assetsapi.DeleteSeasonImage)
	admin.POST("/platforms", assetsapi.AddPlatform)
	admin.DELETE("/platforms/:id", assetsapi.DeletePlatform)
	admin.POST("/upload", assetsapi.UploadImage)
}
