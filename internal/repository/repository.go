package repository

import (
	"alcyxob/athlete-tracker/internal/domain" // Import our defined domain models
	"context"                                  // Standard for request-scoped deadlines, cancellation signals, etc.
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
	ErrConflict     = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error
	SetGroup(ctx context.Context, id primitive.ObjectID, groupID string) error
}

// WellnessRepository stores one questionnaire per (user, date).
type WellnessRepository interface {
	// Upsert replaces the entry for (entry.UserID, entry.Date) or creates it.
	Upsert(ctx context.Context, entry *domain.WellnessEntry) error
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WellnessEntry, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WellnessEntry, error) // ordered by date
	ListByDate(ctx context.Context, date string) ([]domain.WellnessEntry, error)
}

// SessionRepository defines the interface for workout sessions and per-athlete progress.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	// Update replaces the programming (title, date, target, type, blocks, duration), never the progress.
	Update(ctx context.Context, session *domain.WorkoutSession) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListAll(ctx context.Context) ([]domain.WorkoutSession, error)                                    // ordered by date
	ListForAthlete(ctx context.Context, userID string, groupID string) ([]domain.WorkoutSession, error) // ordered by date
	// ListCompletedBy returns every session the user completed, whatever its current target. Ordered by date.
	ListCompletedBy(ctx context.Context, userID string) ([]domain.WorkoutSession, error)

	SetStarted(ctx context.Context, id primitive.ObjectID, userID string, at time.Time) error
	// SetFeedback and SetCompleted fail with ErrConflict once the user's progress is completed.
	SetFeedback(ctx context.Context, id primitive.ObjectID, userID string, key domain.FeedbackKey, fb domain.Feedback) error
	SetCompleted(ctx context.Context, id primitive.ObjectID, userID string, at time.Time) error
}

// RMRepository stores RM records keyed by (user, kind, name). Writes are last-write-wins.
type RMRepository interface {
	Upsert(ctx context.Context, record *domain.RMRecord) error
	Get(ctx context.Context, userID primitive.ObjectID, kind domain.RMKind, name string) (*domain.RMRecord, error)
	// ListByUser returns the athlete's records keyed by name, per kind.
	ListByUser(ctx context.Context, userID primitive.ObjectID, kind domain.RMKind) (map[string]domain.RMRecord, error)
	Delete(ctx context.Context, userID primitive.ObjectID, kind domain.RMKind, name string) error
}

// WeightRepository is an append-only log of body weight.
type WeightRepository interface {
	Add(ctx context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error)
	Latest(ctx context.Context, userID primitive.ObjectID) (*domain.WeightEntry, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) // ordered by date
}

// ReportRepository defines the interface for exported report metadata.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Report, error)
	ListByAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Report, error) // newest first
}
