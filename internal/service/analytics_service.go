package service

import (
	"alcyxob/athlete-tracker/internal/analytics"
	"alcyxob/athlete-tracker/internal/cache"
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/repository"
	"alcyxob/athlete-tracker/internal/tracing"
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
)

// Dashboard is an athlete's current workload and ratio history.
// ACWR and Band are nil while there is not enough data.
type Dashboard struct {
	Date       string             `json:"date"`
	Workload   analytics.Workload `json:"workload"`
	ACWR       *float64           `json:"acwr"`
	Band       *analytics.Band    `json:"band"`
	WindowDays int                `json:"windowDays"`
	History    []analytics.Point  `json:"history"`
}

// AthleteMonitoring is one row of the admin monitoring view.
type AthleteMonitoring struct {
	AthleteID primitive.ObjectID `json:"athleteId"`
	Name      string             `json:"name"`
	GroupID   string             `json:"groupId,omitempty"`
	ACWR      *float64           `json:"acwr"`
	Band      *analytics.Band    `json:"band"`
	// Latest is the most recent day with a ratio inside the window.
	Latest  *analytics.Point  `json:"latest"`
	History []analytics.Point `json:"history"`
}

type Monitoring struct {
	Date       string              `json:"date"`
	WindowDays int                 `json:"windowDays"`
	Athletes   []AthleteMonitoring `json:"athletes"`
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, userID primitive.ObjectID) (*Dashboard, error)
	Monitoring(ctx context.Context) (*Monitoring, error)
	// History computes the ratio history of an athlete over days ending today, uncached.
	History(ctx context.Context, athleteID primitive.ObjectID, days int) ([]analytics.Point, error)
}

type analyticsService struct {
	sessionRepo      repository.SessionRepository
	userRepo         repository.UserRepository
	cache            AnalyticsCache
	metrics          *metrics.Manager
	clock            Clock
	dashboardWindow  int
	monitoringWindow int
}

func NewAnalyticsService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	cache AnalyticsCache,
	metricsManager *metrics.Manager,
	clock Clock,
	dashboardWindow, monitoringWindow int,
) AnalyticsService {
	return &analyticsService{
		sessionRepo:      sessionRepo,
		userRepo:         userRepo,
		cache:            cache,
		metrics:          metricsManager,
		clock:            clock,
		dashboardWindow:  dashboardWindow,
		monitoringWindow: monitoringWindow,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context, userID primitive.ObjectID) (dashboard *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.dashboard")
	defer func() { tracing.EndSpan(span, err) }()

	now := s.clock()
	uid := userID.Hex()
	key := cache.DashboardKey(uid, domain.FormatDate(now))

	dashboard = &Dashboard{}
	if s.cache.Get(key, dashboard) {
		s.metrics.CounterCacheHits.WithLabelValues(cache.ViewDashboard).Inc()
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return dashboard, nil
	}
	s.metrics.CounterCacheMisses.WithLabelValues(cache.ViewDashboard).Inc()

	if _, err = loadUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	// completion decides membership: a later group or target change keeps past load
	sessions, err := s.sessionRepo.ListCompletedBy(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	defer func(begin time.Time) {
		s.metrics.HistAnalyticsDuration.WithLabelValues(cache.ViewDashboard).Observe(time.Since(begin).Seconds())
	}(time.Now())

	workload := analytics.WorkloadOn(sessions, uid, now)
	dashboard = &Dashboard{
		Date:       workload.Date,
		Workload:   workload,
		WindowDays: s.dashboardWindow,
		History:    analytics.History(sessions, uid, now, s.dashboardWindow),
	}
	dashboard.ACWR, dashboard.Band = ratioAndBand(workload.Ratio, workload.OK)

	s.cache.Set(key, dashboard)
	return dashboard, nil
}

func (s *analyticsService) Monitoring(ctx context.Context) (monitoring *Monitoring, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.monitoring")
	defer func() { tracing.EndSpan(span, err) }()

	now := s.clock()
	key := cache.MonitoringKey(domain.FormatDate(now))

	monitoring = &Monitoring{}
	if s.cache.Get(key, monitoring) {
		s.metrics.CounterCacheHits.WithLabelValues(cache.ViewMonitoring).Inc()
		return monitoring, nil
	}
	s.metrics.CounterCacheMisses.WithLabelValues(cache.ViewMonitoring).Inc()

	athletes, err := s.userRepo.ListByRole(ctx, domain.RoleAthlete)
	if err != nil {
		return nil, err
	}
	// one snapshot for everybody; each athlete only has load in sessions they completed
	sessions, err := s.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	span.SetAttributes(attribute.Int("athletes", len(athletes)), attribute.Int("sessions", len(sessions)))

	defer func(begin time.Time) {
		s.metrics.HistAnalyticsDuration.WithLabelValues(cache.ViewMonitoring).Observe(time.Since(begin).Seconds())
	}(time.Now())

	monitoring = &Monitoring{
		Date:       domain.FormatDate(now),
		WindowDays: s.monitoringWindow,
		Athletes:   make([]AthleteMonitoring, 0, len(athletes)),
	}
	for _, a := range athletes {
		uid := a.ID.Hex()
		ratio, ok := analytics.ACWR(sessions, uid, now)
		row := AthleteMonitoring{
			AthleteID: a.ID,
			Name:      a.Name,
			GroupID:   a.GroupID,
			History:   analytics.History(sessions, uid, now, s.monitoringWindow),
		}
		row.ACWR, row.Band = ratioAndBand(ratio, ok)
		if n := len(row.History); n > 0 {
			latest := row.History[n-1]
			row.Latest = &latest
		}
		monitoring.Athletes = append(monitoring.Athletes, row)
	}

	s.cache.Set(key, monitoring)
	log.WithField("athletes", len(monitoring.Athletes)).Debug("monitoring view computed")
	return monitoring, nil
}

func (s *analyticsService) History(ctx context.Context, athleteID primitive.ObjectID, days int) ([]analytics.Point, error) {
	if _, err := loadAthlete(ctx, s.userRepo, athleteID); err != nil {
		return nil, err
	}
	uid := athleteID.Hex()
	sessions, err := s.sessionRepo.ListCompletedBy(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	return analytics.History(sessions, uid, s.clock(), days), nil
}

func ratioAndBand(ratio float64, ok bool) (*float64, *analytics.Band) {
	if !ok {
		return nil, nil
	}
	band := analytics.Classify(ratio)
	return &ratio, &band
}
