package database

import (
	"fmt"
	"log"
	"os"

	"fansite-app/internal/domain/assets"
	"fansite-app/internal/domain/cast"
	"fansite-app/internal/domain/catalog"
	"fansite-app/internal/domain/mascots"
	"fansite-app/internal/domain/users"
	"fansite-app/internal/domain/videos"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Shared with the test
// fixtures, which run it against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// admin accounts
		&users.User{},

		// catalog
		&catalog.Season{},
		&catalog.Episode{},
		&catalog.Game{},
		&catalog.Rating{},
		&catalog.Location{},

		// cast
		&cast.CastMember{},
		&cast.CastImage{},
		&cast.SeasonCast{},

		// videos
		&videos.SeasonVideo{},

		// mascots
		&mascots.Mascot{},
		&mascots.SeasonMascot{},
		&mascots.MascotGalleryImage{},

		// assets
		&assets.SeasonImage{},
		&assets.SocialPlatform{},
	)
}
