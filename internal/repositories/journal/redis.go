package journal

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/tamagotchi-api/internal/redis"
)

const journalKeyPrefix = "journal:"

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis journal repository
type RedisConfig struct {
	Client redisclient.Client
	// IDGen defaults to prefixed UUIDs
	IDGen idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed journal repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("jrn")
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  gen,
	}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	entry := *input.Entry
	if entry.ID == "" {
		entry.ID = r.idGen.Generate()
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal journal entry")
	}

	key := journalKeyPrefix + entry.UserID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, tamagotchi.JournalLimit-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append journal entry")
	}

	return &AppendOutput{Entry: &entry}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	limit := effectiveLimit(input.Limit)
	items, err := r.client.LRange(ctx, journalKeyPrefix+input.UserID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read journal")
	}

	entries := make([]*tamagotchi.JournalEntry, 0, len(items))
	for _, item := range items {
		var entry tamagotchi.JournalEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			slog.WarnContext(ctx, "skipping unreadable journal entry",
				"user_id", input.UserID,
				"error", err.Error())
			continue
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	removed, err := r.client.Del(ctx, journalKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear journal")
	}

	return &ClearOutput{Cleared: removed > 0}, nil
}
