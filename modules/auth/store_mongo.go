package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const accountsCollection = "users"

// MongoStore is the MongoDB-backed credential store.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a store over the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(accountsCollection)}
}

// EnsureIndexes creates the uniqueness indexes the store relies on: a unique
// index on email and a sparse unique index on googleId (sparse so that any
// number of accounts may have no Google identity).
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create account indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*Account, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStore) FindByEmailOrGoogleID(ctx context.Context, email, googleID string) (*Account, error) {
	return s.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"googleId": googleID},
	}})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (*Account, error) {
	var account Account
	if err := s.col.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

// Create inserts a new account. A uniqueness violation on email or googleId is
// translated into the corresponding domain error so a lost check-then-create
// race is indistinguishable from an upfront duplicate check.
func (s *MongoStore) Create(ctx context.Context, account *Account) error {
	if _, err := s.col.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKeyError(err)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, account *Account) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": account.ID}, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKeyError(err)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *MongoStore) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": at, "updatedAt": at}},
	)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// duplicateKeyError maps a duplicate-key write failure to the violated index.
func duplicateKeyError(err error) error {
	if strings.Contains(err.Error(), "googleId") {
		return ErrGoogleIDLinked
	}
	return ErrEmailAlreadyExists
}
