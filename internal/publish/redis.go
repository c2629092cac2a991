// Package publish mirrors engine state snapshots onto a Redis channel so
// external displays (lobby screens, operator consoles) can follow the game
// without holding an HTTP connection.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

const publishTimeout = 2 * time.Second

// Publisher pushes state snapshots to a Redis pub/sub channel
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher connects to Redis and verifies connectivity
func NewPublisher(address, password, channel string) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Publisher{
		client:  client,
		channel: channel,
	}, nil
}

// Publish sends one snapshot as JSON. Failures are logged, not returned: the
// game loop must never stall on a slow or absent subscriber.
func (p *Publisher) Publish(snapshot models.Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.Warn("failed to marshal snapshot for redis", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		slog.Warn("failed to publish snapshot", "channel", p.channel, "error", err)
	}
}

// HealthCheck verifies Redis connectivity
func (p *Publisher) HealthCheck(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (p *Publisher) Close() error {
	return p.client.Close()
}
