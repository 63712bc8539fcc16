package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	creaturerepo "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature"
)

// Upgrades stored creatures to the current schema version.
//
//	go run ./scripts/migrate-creatures.go file tamagotchi.json
//	REDIS_URL=redis://localhost:6379 go run ./scripts/migrate-creatures.go redis
//
// Set DRY_RUN=1 to report without writing.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate-creatures file <path> | redis")
	}
	dryRun := os.Getenv("DRY_RUN") != ""

	switch os.Args[1] {
	case "file":
		if len(os.Args) < 3 {
			log.Fatal("usage: migrate-creatures file <path>")
		}
		migrateFile(os.Args[2], dryRun)
	case "redis":
		migrateRedis(dryRun)
	default:
		log.Fatalf("unknown target %q", os.Args[1])
	}
}

// migrateFile relies on the file store upgrading legacy documents on load and
// writing them back on the next flush
func migrateFile(path string, dryRun bool) {
	ctx := context.Background()

	repo, err := creaturerepo.NewFile(&creaturerepo.FileConfig{Path: path})
	if err != nil {
		log.Fatal("Failed to open data file:", err)
	}

	list, err := repo.List(ctx, creaturerepo.ListInput{})
	if err != nil {
		log.Fatal("Failed to list creatures:", err)
	}
	fmt.Printf("Loaded %d creatures from %s\n", len(list.Creatures), path)

	if dryRun {
		fmt.Println("Dry run, nothing written")
		return
	}

	out, err := repo.Flush(ctx, creaturerepo.FlushInput{})
	if err != nil {
		log.Fatal("Failed to write data file:", err)
	}
	if out.Written {
		fmt.Printf("✓ Rewrote %s at schema version %d\n", path, tamagotchi.SchemaVersion)
	} else {
		fmt.Println("File already current")
	}
}

func migrateRedis(dryRun bool) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	fmt.Println("Connected to Redis:", redisURL)

	var checked, migrated, broken int
	iter := client.Scan(ctx, 0, "creature:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == "creature:index" {
			continue
		}
		checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		c, err := tamagotchi.DecodeRecord(data)
		if err != nil {
			fmt.Printf("✗ Unreadable record %s: %v\n", key, err)
			broken++
			continue
		}
		if c.UserID == "" {
			c.UserID = strings.TrimPrefix(key, "creature:")
		}

		upgraded, err := tamagotchi.EncodeRecord(c)
		if err != nil {
			fmt.Printf("✗ Failed to encode %s: %v\n", key, err)
			broken++
			continue
		}
		if bytes.Equal(data, upgraded) {
			continue
		}

		migrated++
		fmt.Printf("→ %s needs migration\n", key)
		if dryRun {
			continue
		}

		pipe := client.TxPipeline()
		pipe.Set(ctx, key, upgraded, 0)
		pipe.SAdd(ctx, "creature:index", c.UserID)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Fatalf("Failed to write %s: %v", key, err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records: %d migrated, %d unreadable\n", checked, migrated, broken)
	if dryRun && migrated > 0 {
		fmt.Println("Dry run, nothing written")
	}
}
