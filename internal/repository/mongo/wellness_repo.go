package mongo

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const wellnessCollectionName = "wellness"

// mongoWellnessRepository implements repository.WellnessRepository
type mongoWellnessRepository struct {
	collection *mongo.Collection
}

func NewMongoWellnessRepository(db *mongo.Database) repository.WellnessRepository {
	return &mongoWellnessRepository{
		collection: db.Collection(wellnessCollectionName),
	}
}

// Upsert writes the questionnaire of (userId, date), replacing a previous one.
func (r *mongoWellnessRepository) Upsert(ctx context.Context, entry *domain.WellnessEntry) error {
	if entry.UserID == primitive.NilObjectID || entry.Date == "" {
		return errors.New("wellness entry requires userId and date")
	}
	entry.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": entry.UserID, "date": entry.Date}
	update := bson.M{
		"$set": bson.M{
			"sleep":      entry.Sleep,
			"motivation": entry.Motivation,
			"nutrition":  entry.Nutrition,
			"hydration":  entry.Hydration,
			"fatigue":    entry.Fatigue,
			"stress":     entry.Stress,
			"pain":       entry.Pain,
			"painZones":  entry.PainZones,
			"updatedAt":  entry.UpdatedAt,
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}

	var saved domain.WellnessEntry
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return err
	}
	entry.ID = saved.ID
	return nil
}

func (r *mongoWellnessRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WellnessEntry, error) {
	var entry domain.WellnessEntry
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *mongoWellnessRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WellnessEntry, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *mongoWellnessRepository) ListByDate(ctx context.Context, date string) ([]domain.WellnessEntry, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *mongoWellnessRepository) find(ctx context.Context, filter bson.M) ([]domain.WellnessEntry, error) {
	var entries []domain.WellnessEntry
	// YYYY-MM-DD strings sort chronologically
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureWellnessIndexes creates necessary indexes. Call during startup.
func EnsureWellnessIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// One questionnaire per athlete and day
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("collection %s: %w", collection.Name(), err)
	}
	return nil
}
