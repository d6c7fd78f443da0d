package ports

import "context"

// WelcomeNotification is the payload for the best-effort welcome side
// channel. TempPassword is the generated initial password the external
// mailer relays to the new member.
type WelcomeNotification struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	TempPassword string `json:"temp_password"`
}

// Notifier delivers a welcome notification to the external channel.
type Notifier interface {
	SendWelcome(ctx context.Context, n WelcomeNotification) error
}

// WelcomeEnqueuer hands a notification to the asynchronous dispatcher.
// Enqueue never blocks the caller on delivery and never reports delivery
// failure: the parent operation must not depend on it.
type WelcomeEnqueuer interface {
	Enqueue(n WelcomeNotification)
}
