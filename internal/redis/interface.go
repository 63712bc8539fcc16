package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every store depends on.
// redis.UniversalClient is embedded so miniredis-backed clients satisfy it in tests.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil
