package creature

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	redisclient "github.com/KirkDiggler/tamagotchi-api/internal/redis"
)

const (
	creatureKeyPrefix = "creature:"
	creatureIndexKey  = "creature:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis creature repository
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed creature repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	result, err := r.client.Get(ctx, creatureKeyPrefix+input.UserID).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no creature for user %s", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	c, err := tamagotchi.DecodeRecord(result)
	if err != nil {
		slog.ErrorContext(ctx, "stored creature record is unreadable",
			"user_id", input.UserID,
			"error", err.Error())
		return nil, err
	}

	return &GetOutput{Creature: c}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := tamagotchi.EncodeRecord(input.Creature)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, creatureKeyPrefix+input.Creature.UserID, data, 0)
	pipe.SAdd(ctx, creatureIndexKey, input.Creature.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save creature")
	}

	return &SaveOutput{Creature: input.Creature}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	userIDs, err := r.client.SMembers(ctx, creatureIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read creature index")
	}

	slog.DebugContext(ctx, "listing creatures from index",
		"count", len(userIDs))

	creatures := make([]*tamagotchi.Creature, 0, len(userIDs))
	for _, id := range userIDs {
		out, err := r.Get(ctx, GetInput{UserID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "creature not found, cleaning up index",
					"user_id", id)
				r.client.SRem(ctx, creatureIndexKey, id)
				continue
			}
			if errors.GetCode(err) == errors.CodeDataLoss {
				// one bad record must not hide the whole leaderboard
				continue
			}
			return nil, errors.Wrapf(err, "failed to get creature %s", id)
		}
		creatures = append(creatures, out.Creature)
	}

	return &ListOutput{Creatures: creatures}, nil
}

func (r *redisRepository) Flush(_ context.Context, _ FlushInput) (*FlushOutput, error) {
	return &FlushOutput{}, nil
}
