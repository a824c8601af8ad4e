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

const sessionCollectionName = "sessions"

type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new session. Progress always starts empty.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session.Date == "" || session.CreatedBy == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("session date and creator are required")
	}
	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.Progress = nil

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Update replaces the programming fields of a session. Progress is left untouched.
func (r *mongoSessionRepository) Update(ctx context.Context, session *domain.WorkoutSession) error {
	session.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":             session.Title,
			"date":              session.Date,
			"target":            session.Target,
			"type":              session.Type,
			"blocks":            session.Blocks,
			"estimatedDuration": session.EstimatedDuration,
			"updatedAt":         session.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": session.ID}, update)
	if err != nil {
		return fmt.Errorf("%w: %s", repository.ErrUpdateFailed, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %s", repository.ErrDeleteFailed, err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepository) ListAll(ctx context.Context) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{})
}

// ListForAthlete returns sessions targeted at the athlete directly or at their group.
func (r *mongoSessionRepository) ListForAthlete(ctx context.Context, userID string, groupID string) ([]domain.WorkoutSession, error) {
	or := bson.A{bson.M{"target.userId": userID}}
	if groupID != "" {
		// A session with a user target belongs to that user only
		or = append(or, bson.M{
			"target.groupId": groupID,
			"target.userId":  bson.M{"$exists": false},
		})
	}
	return r.find(ctx, bson.M{"$or": or})
}

// ListCompletedBy returns the sessions carrying a completion timestamp for the user.
func (r *mongoSessionRepository) ListCompletedBy(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{progressPath(userID, "completedAt"): bson.M{"$exists": true}})
}

func (r *mongoSessionRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutSession, error) {
	var sessions []domain.WorkoutSession
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SetStarted records when the athlete started the session.
func (r *mongoSessionRepository) SetStarted(ctx context.Context, id primitive.ObjectID, userID string, at time.Time) error {
	return r.setProgress(ctx, bson.M{"_id": id}, bson.M{progressPath(userID, "startedAt"): at.UTC()})
}

// SetFeedback stores the feedback of one exercise, replacing a previous one for the same key.
func (r *mongoSessionRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, userID string, key domain.FeedbackKey, fb domain.Feedback) error {
	return r.setProgress(ctx, notCompleted(id, userID), bson.M{progressPath(userID, "feedback", key.String()): fb})
}

// SetCompleted records when the athlete ended the session. Only the first call matches.
func (r *mongoSessionRepository) SetCompleted(ctx context.Context, id primitive.ObjectID, userID string, at time.Time) error {
	return r.setProgress(ctx, notCompleted(id, userID), bson.M{progressPath(userID, "completedAt"): at.UTC()})
}

func notCompleted(id primitive.ObjectID, userID string) bson.M {
	filter := bson.M{"_id": id}
	filter[progressPath(userID, "completedAt")] = bson.M{"$exists": false}
	return filter
}

func (r *mongoSessionRepository) setProgress(ctx context.Context, filter bson.M, fields bson.M) error {
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("%w: %s", repository.ErrUpdateFailed, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}
	if len(filter) == 1 {
		return repository.ErrNotFound
	}
	// the guard or the id did not match
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": filter["_id"]})
	if err != nil {
		return fmt.Errorf("%w: %s", repository.ErrUpdateFailed, err)
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return repository.ErrConflict
}

func progressPath(userID string, parts ...string) string {
	path := "progress." + userID
	for _, p := range parts {
		path += "." + p
	}
	return path
}

// EnsureSessionIndexes creates necessary indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "target.userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "target.groupId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetSparse(true),
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
