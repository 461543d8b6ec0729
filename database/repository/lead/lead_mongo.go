package leadRepo

import (
	"context"
	"fmt"
	"time"

	"rockgrip/database"
	"rockgrip/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoLeadRepo struct {
	coll      *mongo.Collection
	notifColl *mongo.Collection
}

// NewMongoLeadRepo returns a LeadRepository backed by MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("rockgrip")
	return &mongoLeadRepo{
		coll:      db.Collection(MongoLeadCollection),
		notifColl: db.Collection(MongoNotificationCollection),
	}
}

// Create inserts a new lead document and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return "", fmt.Errorf("mongo insert: %w", err)
	}
	return lead.ID, nil
}

// List returns the most recent leads, newest first.
func (r *mongoLeadRepo) List(ctx context.Context, limit int) ([]models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return leads, nil
}

// RecordNotification stores a back-office alert document.
func (r *mongoLeadRepo) RecordNotification(ctx context.Context, n models.SalesNotification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if _, err := r.notifColl.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("mongo notification: %w", err)
	}
	return nil
}

// Ping checks the underlying connection.
func (r *mongoLeadRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
