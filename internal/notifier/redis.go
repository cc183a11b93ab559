package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes hire events to a per-user pub/sub channel. A push
// gateway subscribed to the user's channel forwards the event to connected
// clients; users with no subscriber simply miss the message.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a notifier backed by the given Redis instance.
func NewRedisNotifier(addr, password string) *RedisNotifier {
	return &RedisNotifier{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Channel returns the pub/sub channel name for a user.
func Channel(userID string) string {
	return "notify:user:" + userID
}

// NotifyHired publishes the event as JSON to the user's channel.
func (n *RedisNotifier) NotifyHired(ctx context.Context, userID string, event HiredEvent) error {
	envelope := struct {
		Event   string     `json:"event"`
		Payload HiredEvent `json:"payload"`
	}{Event: "hired", Payload: event}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("notifier: marshal hired event: %w", err)
	}
	if err := n.client.Publish(ctx, Channel(userID), data).Err(); err != nil {
		return fmt.Errorf("notifier: publish to %s: %w", Channel(userID), err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
