package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Broker publishes event payloads on Redis pub/sub channels.
type Broker struct {
	client redis.UniversalClient
	prefix string
}

// NewBroker returns a Broker that prepends prefix to every channel name.
func NewBroker(client redis.UniversalClient, prefix string) *Broker {
	return &Broker{client: client, prefix: prefix}
}

func (b *Broker) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := b.client.Publish(ctx, b.prefix+channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish on %s: %w", b.prefix+channel, err)
	}
	return nil
}

func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
