package notifier

import (
	"context"

	model "gig-market/internal/models"
	"gig-market/utils"
)

// HiredEvent is the payload delivered to a freelancer when their bid wins.
type HiredEvent struct {
	Message string `json:"message"`
	Gig     struct {
		GigID       string `json:"gig_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"gig"`
	BidID string `json:"bid_id"`
}

// NewHiredEvent builds the event for a hired bid.
func NewHiredEvent(gig model.Gig, bidID string) HiredEvent {
	evt := HiredEvent{
		Message: "You have been hired for " + gig.Title + "!",
		BidID:   bidID,
	}
	evt.Gig.GigID = gig.GigID
	evt.Gig.Title = gig.Title
	evt.Gig.Description = gig.Description
	return evt
}

// Notifier delivers hire events to a specific user. Delivery is best-effort
// and at-most-once; callers must not treat an error as fatal.
type Notifier interface {
	NotifyHired(ctx context.Context, userID string, event HiredEvent) error
}

// LogNotifier writes events to the application log. It is the fallback sink
// when no push channel is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyHired logs the event.
func (n *LogNotifier) NotifyHired(_ context.Context, userID string, event HiredEvent) error {
	utils.Info("hired notification", map[string]any{
		"user_id": userID,
		"gig_id":  event.Gig.GigID,
		"bid_id":  event.BidID,
		"message": event.Message,
	})
	return nil
}
