// Command seed populates the database with generated demo data.
package main

import (
	"flag"
	"log"

	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	numGroups := flag.Int("groups", defaults.Groups, "Number of groups to create")
	numPosts := flag.Int("posts", defaults.Posts, "Number of posts to create")
	numComments := flag.Int("comments", defaults.Comments, "Number of comments to create")
	numFollows := flag.Int("follows", defaults.Follows, "Number of follow edges to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	opts := seed.Options{
		Users:    *numUsers,
		Groups:   *numGroups,
		Posts:    *numPosts,
		Comments: *numComments,
		Follows:  *numFollows,
		MaxDays:  defaults.MaxDays,
	}
	if err := s.Run(opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users, %d groups, %d posts", opts.Users, opts.Groups, opts.Posts)
}
