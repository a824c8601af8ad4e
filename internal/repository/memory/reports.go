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

type reportRepo struct {
	mu      sync.RWMutex
	reports []domain.Report
}

func NewReportRepository() repository.ReportRepository {
	return &reportRepo{}
}

func (r *reportRepo) Create(_ context.Context, report *domain.Report) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now().UTC()
	r.reports = append(r.reports, *report)
	return report.ID, nil
}

func (r *reportRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rep := range r.reports {
		if rep.ID == id {
			return &rep, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *reportRepo) ListByAthlete(_ context.Context, athleteID primitive.ObjectID) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reports []domain.Report
	for _, rep := range r.reports {
		if rep.AthleteID == athleteID {
			reports = append(reports, rep)
		}
	}
	// newest first; insertion order breaks ties
	slices.Reverse(reports)
	return reports, nil
}
