// Command main runs the database seeder for the skill bartering platform.
package main

import (
	"flag"
	"log"

	"github.com/chandanraj-03/skill-bartering-system/internal/config"
	"github.com/chandanraj-03/skill-bartering-system/internal/database"
	"github.com/chandanraj-03/skill-bartering-system/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 0, "Number of users to create (overrides profile)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	profilePath := flag.String("profile", "", "Path to a YAML seed profile")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	profile := seed.DefaultProfile()
	if *profilePath != "" {
		profile, err = seed.LoadProfile(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load seed profile: %v", err)
		}
	}
	if *numUsers > 0 {
		profile.Users = *numUsers
	}

	s := seed.NewSeeder(database.DB, seed.Options{EmailDomains: cfg.EmailDomains()})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.SeedCommunity(profile); err != nil {
		log.Fatalf("Community seeding failed: %v", err)
	}
	if profile.Groups > 0 {
		if err := s.SeedGroups(profile.Groups); err != nil {
			log.Fatalf("Group seeding failed: %v", err)
		}
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Printf("All test users have the password: %s", seed.DefaultPassword)
}
