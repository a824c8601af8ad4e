package service

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBodyWeight bounds a plausible body weight, kg.
const MaxBodyWeight = 400.0

var ErrWeightRateLimited = errors.New("body weight can only be updated once every 7 days")

type WeightService interface {
	// Record appends a body weight measure, at most one per rolling 7 days.
	Record(ctx context.Context, userID primitive.ObjectID, kg float64) (*domain.WeightEntry, error)
	History(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error)
}

type weightService struct {
	weightRepo repository.WeightRepository
	metrics    *metrics.Manager
	clock      Clock
}

func NewWeightService(weightRepo repository.WeightRepository, metricsManager *metrics.Manager, clock Clock) WeightService {
	return &weightService{
		weightRepo: weightRepo,
		metrics:    metricsManager,
		clock:      clock,
	}
}

func (s *weightService) Record(ctx context.Context, userID primitive.ObjectID, kg float64) (*domain.WeightEntry, error) {
	if kg <= 0 || kg > MaxBodyWeight {
		return nil, fmt.Errorf("%w: weight must be between 0 and %.0f kg", ErrValidationFailed, MaxBodyWeight)
	}

	now := s.clock()
	latest, err := s.weightRepo.Latest(ctx, userID)
	switch {
	case err == nil:
		next := latest.CreatedAt.Add(domain.WeightUpdateInterval)
		if now.Before(next) {
			s.metrics.CounterWeightRateLimited.Inc()
			return nil, fmt.Errorf("%w: next update allowed from %s", ErrWeightRateLimited, next.UTC().Format("2006-01-02 15:04"))
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	entry := &domain.WeightEntry{
		UserID:    userID,
		Date:      domain.FormatDate(now.UTC()),
		Kg:        kg,
		CreatedAt: now.UTC(),
	}
	id, err := s.weightRepo.Add(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("save weight: %w", err)
	}
	entry.ID = id
	log.WithFields(log.Fields{"user": userID.Hex(), "kg": kg}).Debug("body weight recorded")
	return entry, nil
}

func (s *weightService) History(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) {
	entries, err := s.weightRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.WeightEntry{}
	}
	return entries, nil
}
