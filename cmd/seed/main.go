package main

import (
	"flag"
	"time"

	"commentboard/internal/db"
	"commentboard/internal/repository"
	"commentboard/internal/seed"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	path := flag.String("file", "comments.json", "path to the seed document")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info("[seed] no .env file found, reading env vars from system")
	}

	db.Init()

	comments, err := seed.Load(*path, time.Now())
	if err != nil {
		log.Fatalf("[seed] failed to load %s: %v", *path, err)
	}
	if len(comments) == 0 {
		log.Infof("[seed] no comments found in %s, nothing to do", *path)
		return
	}

	repo := repository.NewGormRepo(db.DB)
	if err := repo.Reseed(comments); err != nil {
		log.Fatalf("[seed] reseed failed, rolled back: %v", err)
	}
	log.Infof("[seed] seeded %d comments from %s", len(comments), *path)
}
