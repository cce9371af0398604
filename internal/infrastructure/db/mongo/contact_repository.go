package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

const collectionContacts = "contacts"

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

type mongoContact struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	FirstName   string              `bson:"first_name"`
	LastName    string              `bson:"last_name"`
	Alias       string              `bson:"alias,omitempty"`
	Designation string              `bson:"designation"`
	Mode        string              `bson:"mode"`
	Phones      []domain.PhoneEntry `bson:"phones,omitempty"`
	Emails      []domain.EmailEntry `bson:"emails,omitempty"`
	Notes       string              `bson:"notes,omitempty"`
}

func (m mongoContact) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:          m.ID.Hex(),
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Alias:       m.Alias,
		Designation: m.Designation,
		Mode:        domain.ContactMode(m.Mode),
		Phones:      m.Phones,
		Emails:      m.Emails,
		Notes:       m.Notes,
	}
}

func (r *ContactRepository) Insert(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoContact{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Alias:       c.Alias,
		Designation: c.Designation,
		Mode:        string(c.Mode),
		Phones:      c.Phones,
		Emails:      c.Emails,
		Notes:       c.Notes,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoContact
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return m.toDomain(), nil
}

// SearchIDs matches the term against names, aliases, phone numbers and email
// addresses, returning only ids. Business search feeds these into its own
// contact_id filter.
func (r *ContactRepository) SearchIDs(ctx context.Context, term string) ([]string, error) {
	if term == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	re := primitive.Regex{Pattern: regexEscape(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"first_name": re},
		bson.M{"last_name": re},
		bson.M{"alias": re},
		bson.M{"phones.value": re},
		bson.M{"emails.value": re},
	}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var m mongoContact
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		ids = append(ids, m.ID.Hex())
	}
	return ids, cur.Err()
}
