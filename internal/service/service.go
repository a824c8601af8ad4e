package service

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions shared by several services ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotAthlete       = errors.New("user is not an athlete")
)

// Clock returns the current instant. "Today" for every dated record is its UTC calendar date.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

func (c Clock) today() string {
	return domain.FormatDate(c().UTC())
}

// loadUser maps a missing user to ErrUserNotFound.
func loadUser(ctx context.Context, users repository.UserRepository, id primitive.ObjectID) (*domain.User, error) {
	user, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// loadAthlete is loadUser restricted to the athlete role.
func loadAthlete(ctx context.Context, users repository.UserRepository, id primitive.ObjectID) (*domain.User, error) {
	user, err := loadUser(ctx, users, id)
	if err != nil {
		return nil, err
	}
	if !user.IsAthlete() {
		return nil, ErrNotAthlete
	}
	return user, nil
}
