package leadRepo

import (
	"context"

	"rockgrip/models"
)

// Collection names for the two lead store backends. The Firestore name
// matches the collection the marketing site has always written to.
const (
	FirestoreLeadCollection         = "joinRequests"
	FirestoreNotificationCollection = "salesNotifications"
	MongoLeadCollection             = "join_requests"
	MongoNotificationCollection     = "sales_notifications"
)

// LeadRepository is the document-store interface for captured leads.
// Create performs exactly one write; there is no update or delete path.
type LeadRepository interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
	List(ctx context.Context, limit int) ([]models.Lead, error)
	RecordNotification(ctx context.Context, n models.SalesNotification) error
	Ping(ctx context.Context) error
}
