package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"needmeet/database"
	"needmeet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by the
// "bookings" collection. Indexes on userId, providerId and date support the
// listing filters.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	ensureBookingIndexes(coll)
	return &MongoBookingRepo{coll: coll}
}

func ensureBookingIndexes(coll *mongo.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("booking_id_idx")},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("booking_user_idx")},
		{Keys: bson.D{{Key: "providerId", Value: 1}}, Options: options.Index().SetName("booking_provider_idx")},
		{Keys: bson.D{{Key: "date", Value: -1}}, Options: options.Index().SetName("booking_date_idx")},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		// The index may already exist; proceed either way.
		fmt.Printf("Warning: failed to create booking indexes: %v\n", err)
	}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": updatedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *MongoBookingRepo) List(ctx context.Context, filter BookingFilter, skip, limit int64) ([]models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filterDocument(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filterDocument(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func filterDocument(filter BookingFilter) bson.M {
	doc := bson.M{}
	if filter.Status != "" {
		doc["status"] = filter.Status
	}
	if filter.UserID != "" {
		doc["userId"] = filter.UserID
	}
	if filter.ProviderID != "" {
		doc["providerId"] = filter.ProviderID
	}
	return doc
}
