package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

const activityCollection = "activity_log"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	col *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(activityCollection)}
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

// InsertActivity persists one entry to the activity_log collection.
func (r *ActivityRepository) InsertActivity(ctx context.Context, entry *domain.ActivityEntry) error {
	_, err := r.col.InsertOne(ctx, activityDocument(entry, time.Now().UTC()))
	return err
}

// activityDocument is the stored shape of entry. user_id is omitted for
// anonymous actors such as a signin with an unknown email.
func activityDocument(entry *domain.ActivityEntry, recordedAt time.Time) bson.M {
	doc := bson.M{
		"action":      string(entry.Action),
		"description": entry.Description,
		"ip_address":  entry.IPAddress,
		"timestamp":   entry.Timestamp.UTC(),
		"recorded_at": recordedAt,
	}
	if entry.UserID != 0 {
		doc["user_id"] = int64(entry.UserID)
	}
	return doc
}

// EnsureIndexes creates necessary indexes on the activity_log collection.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
