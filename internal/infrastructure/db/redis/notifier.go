package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/studiobill/invoice-system/internal/core/ports"
)

// welcomeQueue is consumed by the external mailer.
const welcomeQueue = "notifications:welcome"

// Notifier publishes welcome notifications onto a Redis list. Delivery to
// the member is somebody else's job; this side channel is best-effort by
// contract.
type Notifier struct {
	client *redis.Client
}

func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

// SendWelcome pushes the notification payload onto the welcome queue.
func (n *Notifier) SendWelcome(ctx context.Context, w ports.WelcomeNotification) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal welcome notification: %w", err)
	}
	if err := n.client.LPush(ctx, welcomeQueue, payload).Err(); err != nil {
		return fmt.Errorf("enqueue welcome notification: %w", err)
	}
	return nil
}
