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

const rmCollectionName = "rms"

type mongoRMRepository struct {
	collection *mongo.Collection
}

func NewMongoRMRepository(db *mongo.Database) repository.RMRepository {
	return &mongoRMRepository{
		collection: db.Collection(rmCollectionName),
	}
}

// Upsert replaces the record of (userId, kind, name). Concurrent writers race; the last one wins.
func (r *mongoRMRepository) Upsert(ctx context.Context, record *domain.RMRecord) error {
	if record.UserID == primitive.NilObjectID || record.Name == "" || record.Kind == "" {
		return errors.New("rm record requires userId, kind and name")
	}
	record.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": record.UserID, "kind": record.Kind, "name": record.Name}
	update := bson.M{
		"$set": bson.M{
			"value":        record.Value,
			"test":         record.Test,
			"autoAdjusted": record.AutoAdjusted,
			"lastRpe":      record.LastRPE,
			"lastWeight":   record.LastWeight,
			"lastReps":     record.LastReps,
			"history":      record.History,
			"updatedAt":    record.UpdatedAt,
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}

	var saved domain.RMRecord
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return err
	}
	record.ID = saved.ID
	return nil
}

func (r *mongoRMRepository) Get(ctx context.Context, userID primitive.ObjectID, kind domain.RMKind, name string) (*domain.RMRecord, error) {
	var record domain.RMRecord
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "kind": kind, "name": name}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *mongoRMRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, kind domain.RMKind) (map[string]domain.RMRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "kind": kind})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make(map[string]domain.RMRecord)
	for cursor.Next(ctx) {
		var rec domain.RMRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		records[rec.Name] = rec
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoRMRepository) Delete(ctx context.Context, userID primitive.ObjectID, kind domain.RMKind, name string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "kind": kind, "name": name})
	if err != nil {
		return fmt.Errorf("%w: %s", repository.ErrDeleteFailed, err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRMIndexes creates necessary indexes for the rms collection.
func EnsureRMIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "kind", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("collection %s: %w", collection.Name(), err)
	}
	return nil
}
