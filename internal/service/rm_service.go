package service

import (
	"alcyxob/athlete-tracker/internal/analytics"
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxVMA bounds a plausible maximal aerobic speed, km/h.
const MaxVMA = 30.0

var (
	ErrRMNotFound   = errors.New("rm record not found")
	ErrReservedName = errors.New("rm name is reserved")
)

// RMList is everything an athlete has recorded: weight RMs by name and the VMA.
type RMList struct {
	Weights []domain.RMRecord `json:"weights"`
	VMA     *domain.RMRecord  `json:"vma"`
}

type RMService interface {
	// SaveManual stores a weight RM estimated from a test set with the Epley formula.
	SaveManual(ctx context.Context, userID primitive.ObjectID, name string, weight float64, reps int) (*domain.RMRecord, error)
	// SaveVMA records a new maximal aerobic speed and appends it to the bounded history.
	SaveVMA(ctx context.Context, userID primitive.ObjectID, speed float64) (*domain.RMRecord, error)
	List(ctx context.Context, userID primitive.ObjectID) (*RMList, error)
	// Delete removes a weight RM by name, or the VMA record when name is "vma".
	Delete(ctx context.Context, userID primitive.ObjectID, name string) error
}

type rmService struct {
	rmRepo repository.RMRepository
	clock  Clock
}

func NewRMService(rmRepo repository.RMRepository, clock Clock) RMService {
	return &rmService{
		rmRepo: rmRepo,
		clock:  clock,
	}
}

func (s *rmService) SaveManual(ctx context.Context, userID primitive.ObjectID, name string, weight float64, reps int) (*domain.RMRecord, error) {
	name = domain.NormalizeRMName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	if name == domain.VMAName {
		return nil, ErrReservedName
	}
	value, ok := analytics.Predict1RM(weight, reps)
	if !ok {
		return nil, fmt.Errorf("%w: weight must be positive and reps at least 1", ErrValidationFailed)
	}

	// a manual save replaces any previous record of that name, auto-adjusted or not
	record := &domain.RMRecord{
		UserID:       userID,
		Kind:         domain.RMWeight,
		Name:         name,
		Value:        value,
		Test:         &domain.RMTest{Weight: weight, Reps: reps},
		AutoAdjusted: false,
	}
	if err := s.rmRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("save rm: %w", err)
	}
	log.WithFields(log.Fields{"user": userID.Hex(), "rm": name, "value": value}).Debug("manual rm saved")
	return record, nil
}

func (s *rmService) SaveVMA(ctx context.Context, userID primitive.ObjectID, speed float64) (*domain.RMRecord, error) {
	if speed <= 0 || speed > MaxVMA {
		return nil, fmt.Errorf("%w: vma must be between 0 and %.0f km/h", ErrValidationFailed, MaxVMA)
	}

	record, err := s.rmRepo.Get(ctx, userID, domain.RMSpeed, domain.VMAName)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		record = &domain.RMRecord{UserID: userID, Kind: domain.RMSpeed, Name: domain.VMAName}
	case err != nil:
		return nil, err
	}
	record.Value = speed
	record.History = domain.AppendSpeedSample(record.History, domain.SpeedSample{Value: speed, Date: s.clock.today()})

	if err := s.rmRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("save vma: %w", err)
	}
	return record, nil
}

func (s *rmService) List(ctx context.Context, userID primitive.ObjectID) (*RMList, error) {
	weights, err := s.rmRepo.ListByUser(ctx, userID, domain.RMWeight)
	if err != nil {
		return nil, err
	}
	list := &RMList{Weights: make([]domain.RMRecord, 0, len(weights))}
	for _, rec := range weights {
		list.Weights = append(list.Weights, rec)
	}
	slices.SortFunc(list.Weights, func(a, b domain.RMRecord) int {
		return strings.Compare(a.Name, b.Name)
	})

	vma, err := s.rmRepo.Get(ctx, userID, domain.RMSpeed, domain.VMAName)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	list.VMA = vma
	return list, nil
}

func (s *rmService) Delete(ctx context.Context, userID primitive.ObjectID, name string) error {
	name = domain.NormalizeRMName(name)
	kind := domain.RMWeight
	if name == domain.VMAName {
		kind = domain.RMSpeed
	}
	if err := s.rmRepo.Delete(ctx, userID, kind, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRMNotFound
		}
		return err
	}
	return nil
}
