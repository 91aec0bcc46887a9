// Package redis wraps the go-redis client so snapshot repositories can be
// tested against miniredis or a mock.
package redis

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DB              int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance.
// The endpoint may be a host:port pair or a redis:// / rediss:// URL.
// Redis connects lazily, so no network traffic happens here.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if strings.HasPrefix(endpoint, "redis://") || strings.HasPrefix(endpoint, "rediss://") {
		return newClientFromURL(endpoint, opts)
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// newClientFromURL parses a redis URL and layers pool settings from opts on top
func newClientFromURL(rawURL string, opts *Options) (Client, error) {
	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, errors.New("redis: invalid URL: " + err.Error())
	}

	if opts != nil {
		if opts.PoolSize > 0 {
			redisOpts.PoolSize = opts.PoolSize
		}
		if opts.MinIdleConns > 0 {
			redisOpts.MinIdleConns = opts.MinIdleConns
		}
		if opts.MaxRetries != 0 {
			redisOpts.MaxRetries = opts.MaxRetries
		}
	}

	return redis.NewClient(redisOpts), nil
}
