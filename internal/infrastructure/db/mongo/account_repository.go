package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

const collectionAccounts = "users"

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type mongoAccount struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Email             string             `bson:"email"`
	Username          string             `bson:"username"`
	PasswordHash      string             `bson:"password_hash,omitempty"`
	Phone             string             `bson:"phone,omitempty"`
	IsShariaCompliant bool               `bson:"is_sharia_compliant"`
	Status            string             `bson:"status"`
	CreatedAt         int64              `bson:"created_at"`
	UpdatedAt         int64              `bson:"updated_at"`
}

func (m mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:                m.ID.Hex(),
		Email:             m.Email,
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		Phone:             m.Phone,
		IsShariaCompliant: m.IsShariaCompliant,
		Status:            domain.AccountStatus(m.Status),
		CreatedAt:         unixToTime(m.CreatedAt),
		UpdatedAt:         unixToTime(m.UpdatedAt),
	}
}

// Create inserts a new account document. Duplicate emails surface as
// domain.ErrAccountExists via the unique index.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	doc := mongoAccount{
		Email:             account.Email,
		Username:          account.Username,
		PasswordHash:      account.PasswordHash,
		Phone:             account.Phone,
		IsShariaCompliant: account.IsShariaCompliant,
		Status:            string(account.Status),
		CreatedAt:         account.CreatedAt.Unix(),
		UpdatedAt:         account.UpdatedAt.Unix(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail returns the account including its password hash; used only by
// the login flow for the one-way comparison.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return ma.toDomain(), nil
}

// FindByID resolves an account for an authenticated request. The projection
// excludes the password hash so it can never leak past this boundary.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})

	var ma mongoAccount
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return ma.toDomain(), nil
}

// EnsureIndexes creates the unique email index on the users collection.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
