package service_test

import (
	"alcyxob/athlete-tracker/internal/cache"
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/repository"
	"alcyxob/athlete-tracker/internal/repository/memory"
	"alcyxob/athlete-tracker/internal/service"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

const (
	testDashboardWindow  = 90
	testMonitoringWindow = 60
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *testClock) Today() string {
	return domain.FormatDate(c.Now())
}

// DaysAgo is the calendar date n days before today.
func (c *testClock) DaysAgo(n int) string {
	return domain.FormatDate(c.Now().AddDate(0, 0, -n))
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *fakeStorage) PutObject(_ context.Context, objectKey string, contentType string, body io.Reader, size int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return io.ErrShortWrite
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey] = bytes.Clone(data)
	s.types[objectKey] = contentType
	return nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/" + objectKey + "?signed=1", nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey)
	return nil
}

func (s *fakeStorage) Object(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return string(data), ok
}

type env struct {
	clock   *testClock
	metrics *metrics.Manager
	cache   *cache.AnalyticsCache
	storage *fakeStorage

	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	rmRepo       repository.RMRepository
	wellnessRepo repository.WellnessRepository
	weightRepo   repository.WeightRepository
	reportRepo   repository.ReportRepository

	auth      service.AuthService
	users     service.UserService
	wellness  service.WellnessService
	sessions  service.SessionService
	rms       service.RMService
	weights   service.WeightService
	analytics service.AnalyticsService
	reports   service.ReportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		clock:        newTestClock(time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)),
		metrics:      metrics.NewTestManager(),
		cache:        cache.NewAnalyticsCache(1, time.Hour),
		storage:      newFakeStorage(),
		userRepo:     memory.NewUserRepository(),
		sessionRepo:  memory.NewSessionRepository(),
		rmRepo:       memory.NewRMRepository(),
		wellnessRepo: memory.NewWellnessRepository(),
		weightRepo:   memory.NewWeightRepository(),
		reportRepo:   memory.NewReportRepository(),
	}
	clock := service.Clock(e.clock.Now)

	e.auth = service.NewAuthService(e.userRepo, "test-secret", time.Hour)
	e.users = service.NewUserService(e.userRepo, e.cache, clock)
	e.wellness = service.NewWellnessService(e.wellnessRepo, e.userRepo, clock)
	e.sessions = service.NewSessionService(e.sessionRepo, e.userRepo, e.rmRepo, e.cache, e.metrics, clock)
	e.rms = service.NewRMService(e.rmRepo, clock)
	e.weights = service.NewWeightService(e.weightRepo, e.metrics, clock)
	e.analytics = service.NewAnalyticsService(e.sessionRepo, e.userRepo, e.cache, e.metrics, clock, testDashboardWindow, testMonitoringWindow)
	e.reports = service.NewReportService(e.reportRepo, e.analytics, e.storage, e.metrics, time.Minute)
	return e
}

func (e *env) newUser(t *testing.T, role domain.Role, group string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         gofakeit.Name(),
		Email:        strings.ToLower(gofakeit.Email()),
		PasswordHash: "not-a-real-hash",
		Role:         role,
		GroupID:      group,
	}
	id, err := e.userRepo.Create(context.Background(), user)
	require.NoError(t, err)
	user.ID = id
	return user
}

func (e *env) athlete(t *testing.T, group string) *domain.User {
	return e.newUser(t, domain.RoleAthlete, group)
}

func (e *env) admin(t *testing.T) *domain.User {
	return e.newUser(t, domain.RoleAdmin, "")
}

func ptr[T any](v T) *T {
	return &v
}

func strengthExercise(name, reference string, percent float64) domain.Exercise {
	return domain.Exercise{
		Name: name,
		Strength: &domain.StrengthParams{
			Series:      4,
			Reps:        3,
			PercentRM:   percent,
			RMReference: reference,
		},
	}
}

func strengthInput(date string, target domain.Target, exercises ...domain.Exercise) service.SessionInput {
	return service.SessionInput{
		Title:             "Strength " + date,
		Date:              date,
		Target:            target,
		Type:              domain.SessionStrength,
		Blocks:            []domain.Block{{Name: "Main", Exercises: exercises}},
		EstimatedDuration: 60,
	}
}

func individual(user *domain.User) domain.Target {
	return domain.Target{UserID: user.ID.Hex()}
}

// completeSession programs a one exercise session on date for the athlete and runs it with rpe.
func (e *env) completeSession(t *testing.T, admin, athlete *domain.User, date string, rpe float64) *domain.WorkoutSession {
	t.Helper()
	ctx := context.Background()
	session, err := e.sessions.Create(ctx, admin.ID, strengthInput(date, individual(athlete), strengthExercise("Row", "", 0)))
	require.NoError(t, err)
	_, err = e.sessions.Start(ctx, athlete.ID, session.ID)
	require.NoError(t, err)
	_, err = e.sessions.RecordFeedback(ctx, athlete.ID, session.ID, domain.FeedbackKey{}, service.FeedbackInput{RPE: ptr(rpe)})
	require.NoError(t, err)
	_, err = e.sessions.End(ctx, athlete.ID, session.ID)
	require.NoError(t, err)
	return session
}
