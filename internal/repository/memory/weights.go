package memory

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type weightRepo struct {
	mu      sync.RWMutex
	entries []domain.WeightEntry // insertion order
}

func NewWeightRepository() repository.WeightRepository {
	return &weightRepo{}
}

func (r *weightRepo) Add(_ context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = primitive.NewObjectID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *weightRepo) Latest(_ context.Context, userID primitive.ObjectID) (*domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.WeightEntry
	for i := range r.entries {
		e := r.entries[i]
		if e.UserID != userID {
			continue
		}
		if latest == nil || !e.CreatedAt.Before(latest.CreatedAt) {
			latest = &e
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

func (r *weightRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []domain.WeightEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	slices.SortStableFunc(entries, func(a, b domain.WeightEntry) int {
		return cmp.Or(
			strings.Compare(a.Date, b.Date),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
	return entries, nil
}
