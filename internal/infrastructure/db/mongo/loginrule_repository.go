package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

const collectionLoginRules = "login_rules"

type LoginRuleRepository struct {
	col *mongo.Collection
}

func NewLoginRuleRepository(db *mongo.Database) *LoginRuleRepository {
	return &LoginRuleRepository{col: db.Collection(collectionLoginRules)}
}

type mongoLoginRule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Restriction string             `bson:"restriction"`
	FromDate    *time.Time         `bson:"from_date,omitempty"`
	ToDate      *time.Time         `bson:"to_date,omitempty"`
}

func (m mongoLoginRule) toDomain() domain.LoginRule {
	return domain.LoginRule{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		Restriction: domain.Restriction(m.Restriction),
		FromDate:    m.FromDate,
		ToDate:      m.ToDate,
	}
}

func (r *LoginRuleRepository) Insert(ctx context.Context, rule *domain.LoginRule) (*domain.LoginRule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLoginRule{
		UserID:      rule.UserID,
		Restriction: string(rule.Restriction),
		FromDate:    rule.FromDate,
		ToDate:      rule.ToDate,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert login rule: %w", err)
	}

	created := *rule
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *LoginRuleRepository) Update(ctx context.Context, rule *domain.LoginRule) error {
	oid, err := primitive.ObjectIDFromHex(rule.ID)
	if err != nil {
		return domain.ErrRuleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"user_id":     rule.UserID,
		"restriction": string(rule.Restriction),
		"from_date":   rule.FromDate,
		"to_date":     rule.ToDate,
	}})
	if err != nil {
		return fmt.Errorf("update login rule: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *LoginRuleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRuleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete login rule: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *LoginRuleRepository) FindByID(ctx context.Context, id string) (*domain.LoginRule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRuleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoLoginRule
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRuleNotFound
		}
		return nil, fmt.Errorf("find login rule: %w", err)
	}
	rule := m.toDomain()
	return &rule, nil
}

func (r *LoginRuleRepository) FindAll(ctx context.Context) ([]domain.LoginRule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{})
}

func (r *LoginRuleRepository) FindByUser(ctx context.Context, userID string) ([]domain.LoginRule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *LoginRuleRepository) find(ctx context.Context, filter bson.M) ([]domain.LoginRule, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find login rules: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.LoginRule
	for cur.Next(ctx) {
		var m mongoLoginRule
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode login rule: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the index used by per-user restriction lookups on
// every login attempt.
func (r *LoginRuleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
