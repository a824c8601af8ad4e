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
)

var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrCannotChangeOwnRole = errors.New("cannot change your own role")
)

// UserService covers profiles, athlete groups and role management.
type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	ListAthletes(ctx context.Context) ([]domain.User, error)
	// AssignGroup puts an athlete in a training group; an empty group removes them from it.
	AssignGroup(ctx context.Context, athleteID primitive.ObjectID, groupID string) (*domain.User, error)
	// SetRole is reserved to super-admins, enforced by the route.
	SetRole(ctx context.Context, actorID, userID primitive.ObjectID, role domain.Role) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    AnalyticsCache
	clock    Clock
}

func NewUserService(userRepo repository.UserRepository, cache AnalyticsCache, clock Clock) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cache,
		clock:    clock,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	return loadUser(ctx, s.userRepo, userID)
}

func (s *userService) ListAthletes(ctx context.Context) ([]domain.User, error) {
	athletes, err := s.userRepo.ListByRole(ctx, domain.RoleAthlete)
	if err != nil {
		return nil, err
	}
	for i := range athletes {
		athletes[i].PasswordHash = ""
	}
	if athletes == nil {
		athletes = []domain.User{}
	}
	return athletes, nil
}

func (s *userService) AssignGroup(ctx context.Context, athleteID primitive.ObjectID, groupID string) (*domain.User, error) {
	groupID = strings.TrimSpace(groupID)
	if _, err := loadAthlete(ctx, s.userRepo, athleteID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetGroup(ctx, athleteID, groupID); err != nil {
		return nil, fmt.Errorf("set group: %w", err)
	}
	// monitoring rows carry the group
	s.cache.InvalidateUser(athleteID.Hex(), s.clock.today())
	log.WithFields(log.Fields{"athlete": athleteID.Hex(), "group": groupID}).Info("athlete group changed")
	return loadUser(ctx, s.userRepo, athleteID)
}

func (s *userService) SetRole(ctx context.Context, actorID, userID primitive.ObjectID, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if actorID == userID {
		return nil, ErrCannotChangeOwnRole
	}
	if _, err := loadUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	log.WithFields(log.Fields{"user": userID.Hex(), "role": role, "by": actorID.Hex()}).Info("role changed")
	return loadUser(ctx, s.userRepo, userID)
}
