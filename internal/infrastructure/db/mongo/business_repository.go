package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

const collectionBusinesses = "businesses"

type BusinessRepository struct {
	col *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{col: db.Collection(collectionBusinesses)}
}

type mongoBusiness struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Type         string             `bson:"type"`
	NameOrNumber string             `bson:"name_or_number"`
	Address      *domain.Address    `bson:"address,omitempty"`
	ContactID    string             `bson:"contact_id,omitempty"`
	BSID         string             `bson:"bsid"`
}

func (m mongoBusiness) toDomain() *domain.Business {
	return &domain.Business{
		ID:           m.ID.Hex(),
		Type:         domain.BusinessType(m.Type),
		NameOrNumber: m.NameOrNumber,
		Address:      m.Address,
		ContactID:    m.ContactID,
		BSID:         m.BSID,
	}
}

func (r *BusinessRepository) Insert(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBusiness{
		Type:         string(b.Type),
		NameOrNumber: b.NameOrNumber,
		Address:      b.Address,
		ContactID:    b.ContactID,
		BSID:         b.BSID,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBusinessNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoBusiness
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return m.toDomain(), nil
}

func (r *BusinessRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Business, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find businesses: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Business
	for cur.Next(ctx) {
		var m mongoBusiness
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode business: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

func (r *BusinessRepository) List(ctx context.Context, filter ports.ListBusinessesFilter) ([]*domain.Business, int64, error) {
	query := bson.M{}
	if filter.Type != domain.BusinessUnknown && filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexEscape(filter.Search), Options: "i"}
		or := bson.A{
			bson.M{"name_or_number": re},
			bson.M{"bsid": re},
		}
		// Matches found on the contact side widen the result set.
		if len(filter.ContactIDs) > 0 {
			or = append(or, bson.M{"contact_id": bson.M{"$in": filter.ContactIDs}})
		}
		query["$or"] = or
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count businesses: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name_or_number", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list businesses: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Business
	for cur.Next(ctx) {
		var m mongoBusiness
		if err := cur.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode business: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, total, cur.Err()
}

// EnsureIndexes creates the indexes backing business search and lookups.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name_or_number", Value: 1}}},
		{Keys: bson.D{{Key: "contact_id", Value: 1}}},
		{Keys: bson.D{{Key: "bsid", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
