package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

const collectionAuditLogs = "audit_logs"

// AuditLogRepository is append-only by construction: it exposes no update or
// delete operation, keeping the trail immutable.
type AuditLogRepository struct {
	col *mongo.Collection
}

func NewAuditLogRepository(db *mongo.Database) *AuditLogRepository {
	return &AuditLogRepository{col: db.Collection(collectionAuditLogs)}
}

type mongoAuditLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EntityType  string             `bson:"entity_type"`
	EntityID    string             `bson:"entity_id"`
	Target      *domain.EntityRef  `bson:"target,omitempty"`
	Action      string             `bson:"action"`
	PerformedBy *domain.Actor      `bson:"performed_by,omitempty"`
	Description string             `bson:"description"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (r *AuditLogRepository) Insert(ctx context.Context, entry *domain.AuditLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditLog{
		EntityType:  string(entry.EntityType),
		EntityID:    entry.EntityID,
		Target:      entry.Target,
		Action:      entry.Action,
		PerformedBy: entry.PerformedBy,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) FindByEntity(ctx context.Context, entityID string) ([]domain.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"entity_id": entityID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit logs: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.AuditLog
	for cur.Next(ctx) {
		var m mongoAuditLog
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode audit log: %w", err)
		}
		out = append(out, domain.AuditLog{
			ID:          m.ID.Hex(),
			EntityType:  domain.AuditEntity(m.EntityType),
			EntityID:    m.EntityID,
			Target:      m.Target,
			Action:      m.Action,
			PerformedBy: m.PerformedBy,
			Description: m.Description,
			Timestamp:   m.Timestamp,
		})
	}
	return out, cur.Err()
}

// EnsureIndexes creates the index serving per-entity history reads.
func (r *AuditLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "entity_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
