package memory

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type wellnessKey struct {
	userID primitive.ObjectID
	date   string
}

type wellnessRepo struct {
	mu      sync.RWMutex
	entries map[wellnessKey]domain.WellnessEntry
}

func NewWellnessRepository() repository.WellnessRepository {
	return &wellnessRepo{
		entries: make(map[wellnessKey]domain.WellnessEntry),
	}
}

func (r *wellnessRepo) Upsert(_ context.Context, entry *domain.WellnessEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := wellnessKey{entry.UserID, entry.Date}
	if prev, ok := r.entries[key]; ok {
		entry.ID = prev.ID
	} else {
		entry.ID = primitive.NewObjectID()
	}
	entry.UpdatedAt = time.Now().UTC()
	stored := *entry
	stored.PainZones = maps.Clone(entry.PainZones)
	r.entries[key] = stored
	return nil
}

func (r *wellnessRepo) GetByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*domain.WellnessEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[wellnessKey{userID, date}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *wellnessRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]domain.WellnessEntry, error) {
	return r.filter(func(e domain.WellnessEntry) bool { return e.UserID == userID }), nil
}

func (r *wellnessRepo) ListByDate(_ context.Context, date string) ([]domain.WellnessEntry, error) {
	return r.filter(func(e domain.WellnessEntry) bool { return e.Date == date }), nil
}

func (r *wellnessRepo) filter(keep func(e domain.WellnessEntry) bool) []domain.WellnessEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []domain.WellnessEntry
	for _, e := range r.entries {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b domain.WellnessEntry) int {
		return strings.Compare(a.Date, b.Date)
	})
	return entries
}
