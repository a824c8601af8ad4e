package service

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/multierr"
)

// WellnessInput is the questionnaire as submitted by the athlete.
type WellnessInput struct {
	Sleep      int
	Motivation int
	Nutrition  int
	Hydration  int
	Fatigue    int
	Stress     int
	Pain       int
	PainZones  map[string]int
}

// AthleteWellness pairs an athlete with their questionnaire of a given day, nil if not filled.
type AthleteWellness struct {
	Athlete domain.User           `json:"athlete"`
	Entry   *domain.WellnessEntry `json:"entry"`
}

type WellnessService interface {
	// SubmitToday creates or replaces the athlete's questionnaire for the current date.
	SubmitToday(ctx context.Context, userID primitive.ObjectID, in WellnessInput) (*domain.WellnessEntry, error)
	MyHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WellnessEntry, error)
	ForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.WellnessEntry, error)
	// ByDate lists every athlete with their entry of date, so admins see who has not answered.
	ByDate(ctx context.Context, date string) ([]AthleteWellness, error)
}

type wellnessService struct {
	wellnessRepo repository.WellnessRepository
	userRepo     repository.UserRepository
	clock        Clock
}

func NewWellnessService(wellnessRepo repository.WellnessRepository, userRepo repository.UserRepository, clock Clock) WellnessService {
	return &wellnessService{
		wellnessRepo: wellnessRepo,
		userRepo:     userRepo,
		clock:        clock,
	}
}

func (s *wellnessService) SubmitToday(ctx context.Context, userID primitive.ObjectID, in WellnessInput) (*domain.WellnessEntry, error) {
	zones, err := validateWellness(in)
	if err != nil {
		return nil, err
	}

	entry := &domain.WellnessEntry{
		UserID:     userID,
		Date:       s.clock.today(),
		Sleep:      in.Sleep,
		Motivation: in.Motivation,
		Nutrition:  in.Nutrition,
		Hydration:  in.Hydration,
		Fatigue:    in.Fatigue,
		Stress:     in.Stress,
		Pain:       in.Pain,
		PainZones:  zones,
	}
	if err := s.wellnessRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("save wellness: %w", err)
	}

	log.WithFields(log.Fields{"user": userID.Hex(), "date": entry.Date}).Debug("wellness saved")
	return entry, nil
}

func (s *wellnessService) MyHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WellnessEntry, error) {
	entries, err := s.wellnessRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.WellnessEntry{}
	}
	return entries, nil
}

func (s *wellnessService) ForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.WellnessEntry, error) {
	if _, err := loadAthlete(ctx, s.userRepo, athleteID); err != nil {
		return nil, err
	}
	return s.MyHistory(ctx, athleteID)
}

func (s *wellnessService) ByDate(ctx context.Context, date string) ([]AthleteWellness, error) {
	if date == "" {
		date = s.clock.today()
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidationFailed)
	}

	athletes, err := s.userRepo.ListByRole(ctx, domain.RoleAthlete)
	if err != nil {
		return nil, err
	}
	entries, err := s.wellnessRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	byUser := make(map[primitive.ObjectID]domain.WellnessEntry, len(entries))
	for _, e := range entries {
		byUser[e.UserID] = e
	}

	overview := make([]AthleteWellness, 0, len(athletes))
	for _, a := range athletes {
		a.PasswordHash = ""
		row := AthleteWellness{Athlete: a}
		if e, ok := byUser[a.ID]; ok {
			row.Entry = &e
		}
		overview = append(overview, row)
	}
	return overview, nil
}

func validateWellness(in WellnessInput) (map[string]int, error) {
	ratings := []struct {
		name  string
		value int
	}{
		{"sleep", in.Sleep},
		{"motivation", in.Motivation},
		{"nutrition", in.Nutrition},
		{"hydration", in.Hydration},
		{"fatigue", in.Fatigue},
		{"stress", in.Stress},
		{"pain", in.Pain},
	}
	var errs []error
	for _, r := range ratings {
		if r.value < 0 || r.value > domain.MaxRating {
			errs = append(errs, fmt.Errorf("%s must be between 0 and %d", r.name, domain.MaxRating))
		}
	}

	var zones map[string]int
	if len(in.PainZones) > 0 {
		zones = make(map[string]int, len(in.PainZones))
		for zone, intensity := range in.PainZones {
			zone = strings.ToLower(strings.TrimSpace(zone))
			if zone == "" {
				errs = append(errs, errors.New("pain zone name cannot be empty"))
				continue
			}
			if intensity < 0 || intensity > domain.MaxRating {
				errs = append(errs, fmt.Errorf("pain zone %s must be between 0 and %d", zone, domain.MaxRating))
				continue
			}
			zones[zone] = intensity
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, multierr.Combine(errs...))
	}
	return zones, nil
}
