// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"recipeas/internal/config"
	"recipeas/internal/database"
	"recipeas/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	extra := flag.Int("extra", 0, "number of random users to create beyond the demo cast")
	password := flag.String("password", "", "password for all seeded accounts (default \"friends\")")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{ExtraUsers: *extra, Password: *password}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
