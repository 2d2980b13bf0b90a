package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// userDoc is the stored shape of a user; the ObjectID round-trips into
// the domain model's string ID.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	FullName     string             `bson:"full_name,omitempty"`
	Role         string             `bson:"role"`
	PasswordHash string             `bson:"hashed_password"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		FullName:     d.FullName,
		Role:         d.Role,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// UserRepository persists users in the users collection.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// EmailExists reports whether a user with the email is already stored.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query user: %w", err)
	}
	return true, nil
}

// Create inserts a user and fills in its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	result, err := r.db.Collection(usersCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// GetByEmail returns the user with the email, or nil when none exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return doc.toDomain(), nil
}

// GetByID returns the user with the hex ObjectID, or nil when none
// exists or the ID does not parse.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDoc
	err = r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return doc.toDomain(), nil
}
