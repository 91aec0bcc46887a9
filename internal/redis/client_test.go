package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charm-tracker/internal/redis"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	testCases := []struct {
		name     string
		endpoint string
		opts     *redis.Options
		wantErr  string
	}{
		{name: "host and port", endpoint: mr.Addr()},
		{name: "url", endpoint: "redis://" + mr.Addr() + "/0", opts: &redis.Options{PoolSize: 2}},
		{name: "empty endpoint", endpoint: "", wantErr: "endpoint is required"},
		{name: "bad url", endpoint: "redis://" + mr.Addr() + "/notadb", wantErr: "invalid URL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := redis.NewClient(tc.endpoint, tc.opts)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			defer func() { _ = client.Close() }()
			assert.NoError(t, client.Ping(context.Background()).Err())
		})
	}
}
