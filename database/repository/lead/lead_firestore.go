package leadRepo

import (
	"context"
	"fmt"
	"time"

	"rockgrip/database"
	"rockgrip/models"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

type firestoreLeadRepo struct {
	client *firestore.Client
}

// NewFirestoreLeadRepo returns a LeadRepository backed by Firestore.
func NewFirestoreLeadRepo() LeadRepository {
	return &firestoreLeadRepo{client: database.FirestoreClient}
}

// Create inserts a new lead document and returns its ID.
func (r *firestoreLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(FirestoreLeadCollection).Doc(lead.ID).Create(ctx, lead)
	if err != nil {
		return "", fmt.Errorf("firestore create: %w", err)
	}
	return lead.ID, nil
}

// List returns the most recent leads, newest first.
func (r *firestoreLeadRepo) List(ctx context.Context, limit int) ([]models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	iter := r.client.Collection(FirestoreLeadCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var leads []models.Lead
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list: %w", err)
		}
		var lead models.Lead
		if err := doc.DataTo(&lead); err != nil {
			return nil, fmt.Errorf("firestore decode: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// RecordNotification stores a back-office alert document.
func (r *firestoreLeadRepo) RecordNotification(ctx context.Context, n models.SalesNotification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := r.client.Collection(FirestoreNotificationCollection).Doc(n.ID).Create(ctx, n)
	if err != nil {
		return fmt.Errorf("firestore notification: %w", err)
	}
	return nil
}

// Ping checks that the backing store answers a trivial read.
func (r *firestoreLeadRepo) Ping(ctx context.Context) error {
	iter := r.client.Collection(FirestoreLeadCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
