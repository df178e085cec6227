// Command main runs the database seeder for Warbler.
package main

import (
	"flag"
	"log"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numMessages := flag.Int("messages", 300, "Number of messages to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding (dev only)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d messages, clean=%v\n", *numUsers, *numMessages, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumMessages: *numMessages,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
