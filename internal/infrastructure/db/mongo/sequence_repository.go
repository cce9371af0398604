package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionSequences = "sequences"

// SequenceRepository hands out monotonically increasing reference numbers
// via findOneAndUpdate with $inc, so concurrent allocations against the same
// counter can never return the same value.
type SequenceRepository struct {
	col *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{col: db.Collection(collectionSequences)}
}

func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Value int64 `bson:"value"`
	}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Value, nil
}

// Seed raises the counter to at least floor. $max never lowers the stored
// value, so seeding after allocations have happened is harmless.
func (r *SequenceRepository) Seed(ctx context.Context, name string, floor int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"value": floor}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed sequence %q: %w", name, err)
	}
	return nil
}
