package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"needmeet/database"
	"needmeet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new ProviderRepository backed by the
// "providers" collection.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.DB().Collection("providers")
	ensureProviderIndexes(coll)
	return &MongoProviderRepo{coll: coll}
}

func ensureProviderIndexes(coll *mongo.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("provider_id_idx")},
		{Keys: bson.D{{Key: "services", Value: 1}}, Options: options.Index().SetName("provider_services_idx")},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		fmt.Printf("Warning: failed to create provider indexes: %v\n", err)
	}
}

func (r *MongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) GetByServiceType(ctx context.Context, service string) ([]models.Provider, error) {
	filter := bson.M{
		"services": bson.M{"$regex": regexp.QuoteMeta(service), "$options": "i"},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find providers for service %s: %w", service, err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check provider existence: %w", err)
	}
	return count > 0, nil
}

func (r *MongoProviderRepo) UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *MongoProviderRepo) SetReviews(ctx context.Context, id string, reviews []models.Review, rating float64, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"reviews":   reviews,
		"rating":    rating,
		"updatedAt": updatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reviews for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}

// AddReporter uses $addToSet so a user id is recorded at most once regardless
// of how many times it reports the provider.
func (r *MongoProviderRepo) AddReporter(ctx context.Context, id, userID string) ([]string, error) {
	update := bson.M{"$addToSet": bson.M{"reportedBy": userID}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"reportedBy": 1})

	var provider models.Provider
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to report provider %s: %w", id, err)
	}
	return provider.ReportedBy, nil
}

func (r *MongoProviderRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count providers: %w", err)
	}
	return count, nil
}
