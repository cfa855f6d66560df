package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

const collectionHoldings = "holdings"

type HoldingRepository struct {
	col *mongo.Collection
}

func NewHoldingRepository(db *mongo.Database) *HoldingRepository {
	return &HoldingRepository{col: db.Collection(collectionHoldings)}
}

type mongoHolding struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	AccountID           string             `bson:"account_id"`
	Symbol              string             `bson:"symbol"`
	Exchange            string             `bson:"exchange"`
	Sector              string             `bson:"sector"`
	IsShariaCompliant   bool               `bson:"is_sharia_compliant"`
	Quantity            float64            `bson:"quantity"`
	AveragePrice        float64            `bson:"average_price"`
	CurrentPrice        float64            `bson:"current_price"`
	NetChangePercent    float64            `bson:"net_change_percent"`
	DayChangePercent    float64            `bson:"day_change_percent"`
	AnnualDividendYield float64            `bson:"annual_dividend_yield"`
	PurchaseDate        time.Time          `bson:"purchase_date"`
	LastUpdated         time.Time          `bson:"last_updated"`
}

func (m mongoHolding) toDomain() domain.Holding {
	return domain.Holding{
		ID:                  m.ID.Hex(),
		AccountID:           m.AccountID,
		Symbol:              m.Symbol,
		Exchange:            domain.Exchange(m.Exchange),
		Sector:              m.Sector,
		IsShariaCompliant:   m.IsShariaCompliant,
		Quantity:            m.Quantity,
		AveragePrice:        m.AveragePrice,
		CurrentPrice:        m.CurrentPrice,
		NetChangePercent:    m.NetChangePercent,
		DayChangePercent:    m.DayChangePercent,
		AnnualDividendYield: m.AnnualDividendYield,
		PurchaseDate:        m.PurchaseDate.UTC(),
		LastUpdated:         m.LastUpdated.UTC(),
	}
}

// Create inserts a new holding document. The unique account/symbol index
// surfaces duplicates as domain.ErrDuplicateHolding.
func (r *HoldingRepository) Create(ctx context.Context, h *domain.Holding) (*domain.Holding, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	doc := mongoHolding{
		AccountID:           h.AccountID,
		Symbol:              h.Symbol,
		Exchange:            string(h.Exchange),
		Sector:              h.Sector,
		IsShariaCompliant:   h.IsShariaCompliant,
		Quantity:            h.Quantity,
		AveragePrice:        h.AveragePrice,
		CurrentPrice:        h.CurrentPrice,
		NetChangePercent:    h.NetChangePercent,
		DayChangePercent:    h.DayChangePercent,
		AnnualDividendYield: h.AnnualDividendYield,
		PurchaseDate:        h.PurchaseDate,
		LastUpdated:         h.LastUpdated,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateHolding
		}
		return nil, fmt.Errorf("insert holding: %w", err)
	}

	created := *h
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListByAccount returns all holdings for one account, newest purchase first.
func (r *HoldingRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Holding, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "purchase_date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoHolding
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode holdings: %w", err)
	}

	holdings := make([]domain.Holding, 0, len(docs))
	for _, d := range docs {
		holdings = append(holdings, d.toDomain())
	}
	return holdings, nil
}

// EnsureIndexes creates the indexes on the holdings collection.
func (r *HoldingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "account_id", Value: 1}, {Key: "symbol", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "exchange", Value: 1}}},
		{Keys: bson.D{{Key: "sector", Value: 1}}},
		{Keys: bson.D{{Key: "is_sharia_compliant", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
