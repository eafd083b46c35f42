// Command migrate adds the email verification columns to the users
// table for databases initialized before those columns existed. Each
// column is probed first, so the tool is additive, order-independent
// and safe to run repeatedly. Databases created by the server's
// auto-migration already have both columns and need no changes.
package main

import (
	"log"

	"github.com/spf13/viper"

	"store2070/internal/database"
	"store2070/internal/models"
)

func main() {
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "sql_app.db")
	viper.AutomaticEnv()

	db, err := database.Open(database.Config{
		Driver: viper.GetString("DATABASE_DRIVER"),
		DSN:    viper.GetString("DATABASE_DSN"),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrator := db.Migrator()
	for _, field := range []string{"EmailVerified", "VerificationToken"} {
		if migrator.HasColumn(&models.User{}, field) {
			log.Printf("Column for %s already present, skipping", field)
			continue
		}
		log.Printf("Adding column for %s...", field)
		if err := migrator.AddColumn(&models.User{}, field); err != nil {
			log.Fatalf("Failed to add column for %s: %v", field, err)
		}
	}

	log.Println("Database migration complete.")
}
