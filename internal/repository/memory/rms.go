package memory

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type rmKey struct {
	userID primitive.ObjectID
	kind   domain.RMKind
	name   string
}

type rmRepo struct {
	mu      sync.RWMutex
	records map[rmKey]domain.RMRecord
}

func NewRMRepository() repository.RMRepository {
	return &rmRepo{
		records: make(map[rmKey]domain.RMRecord),
	}
}

func (r *rmRepo) Upsert(_ context.Context, record *domain.RMRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rmKey{record.UserID, record.Kind, record.Name}
	if prev, ok := r.records[key]; ok {
		record.ID = prev.ID
	} else {
		record.ID = primitive.NewObjectID()
	}
	record.UpdatedAt = time.Now().UTC()
	stored := *record
	stored.History = slices.Clone(record.History)
	r.records[key] = stored
	return nil
}

func (r *rmRepo) Get(_ context.Context, userID primitive.ObjectID, kind domain.RMKind, name string) (*domain.RMRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[rmKey{userID, kind, name}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	rec.History = slices.Clone(rec.History)
	return &rec, nil
}

func (r *rmRepo) ListByUser(_ context.Context, userID primitive.ObjectID, kind domain.RMKind) (map[string]domain.RMRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make(map[string]domain.RMRecord)
	for k, rec := range r.records {
		if k.userID == userID && k.kind == kind {
			rec.History = slices.Clone(rec.History)
			records[k.name] = rec
		}
	}
	return records, nil
}

func (r *rmRepo) Delete(_ context.Context, userID primitive.ObjectID, kind domain.RMKind, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rmKey{userID, kind, name}
	if _, ok := r.records[key]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, key)
	return nil
}
