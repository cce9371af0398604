package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

const collectionQuotes = "quotes"

type QuoteRepository struct {
	col *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{col: db.Collection(collectionQuotes)}
}

// Monetary values are stored as decimal strings, never floats, so amounts
// round-trip exactly. QSIDNum carries the parsed reference number alongside
// the formatted QSID, letting queries order numerically past Q-999.
type mongoQuote struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID         string             `bson:"business_id,omitempty"`
	Date               time.Time          `bson:"date"`
	FirstResponseTeam  string             `bson:"first_response_team"`
	Services           []mongoServiceLine `bson:"services"`
	DiscountPercentage string             `bson:"discount_percentage"`
	VATPercentage      string             `bson:"vat_percentage"`
	Subtotal           string             `bson:"subtotal"`
	VATAmount          string             `bson:"vat_amount"`
	Total              string             `bson:"total"`
	QSID               string             `bson:"qsid"`
	QSIDNum            int64              `bson:"qsid_num"`
}

type mongoServiceLine struct {
	Service     string `bson:"service"`
	Description string `bson:"description,omitempty"`
	Amount      string `bson:"amount"`
}

func (m mongoQuote) toDomain() (*domain.Quote, error) {
	q := &domain.Quote{
		ID:                m.ID.Hex(),
		BusinessID:        m.BusinessID,
		Date:              m.Date,
		FirstResponseTeam: m.FirstResponseTeam,
		QSID:              m.QSID,
	}

	var err error
	if q.DiscountPercentage, err = decimal.NewFromString(m.DiscountPercentage); err != nil {
		return nil, fmt.Errorf("quote %s: discount_percentage: %w", m.QSID, err)
	}
	if q.VATPercentage, err = decimal.NewFromString(m.VATPercentage); err != nil {
		return nil, fmt.Errorf("quote %s: vat_percentage: %w", m.QSID, err)
	}
	if q.Subtotal, err = decimal.NewFromString(m.Subtotal); err != nil {
		return nil, fmt.Errorf("quote %s: subtotal: %w", m.QSID, err)
	}
	if q.VATAmount, err = decimal.NewFromString(m.VATAmount); err != nil {
		return nil, fmt.Errorf("quote %s: vat_amount: %w", m.QSID, err)
	}
	if q.Total, err = decimal.NewFromString(m.Total); err != nil {
		return nil, fmt.Errorf("quote %s: total: %w", m.QSID, err)
	}

	q.Services = make([]domain.ServiceLine, len(m.Services))
	for i, l := range m.Services {
		amount, err := decimal.NewFromString(l.Amount)
		if err != nil {
			return nil, fmt.Errorf("quote %s: line %d amount: %w", m.QSID, i, err)
		}
		q.Services[i] = domain.ServiceLine{
			Service:     domain.QuoteService(l.Service),
			Description: l.Description,
			Amount:      amount,
		}
	}
	return q, nil
}

func (r *QuoteRepository) Insert(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	lines := make([]mongoServiceLine, len(q.Services))
	for i, l := range q.Services {
		lines[i] = mongoServiceLine{
			Service:     string(l.Service),
			Description: l.Description,
			Amount:      l.Amount.String(),
		}
	}

	doc := mongoQuote{
		BusinessID:         q.BusinessID,
		Date:               q.Date,
		FirstResponseTeam:  q.FirstResponseTeam,
		Services:           lines,
		DiscountPercentage: q.DiscountPercentage.String(),
		VATPercentage:      q.VATPercentage.String(),
		Subtotal:           q.Subtotal.String(),
		VATAmount:          q.VATAmount.String(),
		Total:              q.Total.String(),
		QSID:               q.QSID,
		QSIDNum:            domain.ParseSeqID(domain.QSIDPrefix, q.QSID),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}

	created := *q
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *QuoteRepository) List(ctx context.Context, filter ports.ListQuotesFilter) ([]*domain.Quote, int64, error) {
	query := bson.M{}
	if filter.Team != "" {
		query["first_response_team"] = filter.Team
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "qsid_num", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Quote
	for cur.Next(ctx) {
		var m mongoQuote
		if err := cur.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode quote: %w", err)
		}
		q, err := m.toDomain()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, q)
	}
	return out, total, cur.Err()
}

// MaxQSIDNumber reads the highest stored reference number, using the
// numeric qsid_num field rather than the formatted string.
func (r *QuoteRepository) MaxQSIDNumber(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "qsid_num", Value: -1}}).
		SetProjection(bson.M{"qsid_num": 1})

	var m struct {
		QSIDNum int64 `bson:"qsid_num"`
	}
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("max qsid: %w", err)
	}
	return m.QSIDNum, nil
}

// EnsureIndexes creates the indexes backing quote listing and the startup
// counter seed.
func (r *QuoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "qsid_num", Value: -1}}},
		{Keys: bson.D{{Key: "first_response_team", Value: 1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
