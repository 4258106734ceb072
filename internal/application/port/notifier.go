package port

import (
	"context"
	"time"
)

// ActionShortcutsUpdated is broadcast after every override write.
const ActionShortcutsUpdated = "shortcutsUpdated"

// UpdateEvent is a best-effort notification sent to every active consumer.
type UpdateEvent struct {
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// UpdateNotifier broadcasts update events. Delivery is not guaranteed;
// consumers must tolerate missed events.
type UpdateNotifier interface {
	Broadcast(ctx context.Context, event UpdateEvent)
}

// UpdateSubscriber hands out event streams. The returned cancel func
// unsubscribes and closes the channel.
type UpdateSubscriber interface {
	Subscribe() (<-chan UpdateEvent, func())
}
