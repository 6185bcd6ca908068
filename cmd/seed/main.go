// Command seed populates the database with demo data for local development.
package main

import (
	"flag"
	"log"

	"codehub/internal/config"
	"codehub/internal/database"
	"codehub/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 5, "number of demo users to create")
	clean := flag.Bool("clean", false, "truncate existing data before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{NumUsers: *numUsers, ShouldClean: *clean}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
