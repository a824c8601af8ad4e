package service

import (
	"alcyxob/athlete-tracker/internal/analytics"
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/repository"
	"alcyxob/athlete-tracker/internal/tracing"
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionAccessDenied     = errors.New("session is not assigned to this athlete")
	ErrSessionNotStarted       = errors.New("session has not been started")
	ErrSessionAlreadyCompleted = errors.New("session already completed")
	ErrInvalidFeedbackKey      = errors.New("feedback key does not address an exercise of this session")
)

// AnalyticsCache is the result cache shared by the session and analytics services.
type AnalyticsCache interface {
	Get(key string, v any) bool
	Set(key string, v any)
	InvalidateUser(userID, date string)
	Clear()
}

// SessionInput is the programming of a session as written by an admin.
type SessionInput struct {
	Title             string
	Date              string
	Target            domain.Target
	Type              domain.SessionType
	Blocks            []domain.Block
	EstimatedDuration int
}

// FeedbackInput is what the athlete reports for one exercise.
type FeedbackInput struct {
	RPE            *float64
	ActualWeight   float64
	ActualReps     int
	ActualDistance float64
	Notes          string
}

// ExerciseTarget is the load prescribed to the athlete for one exercise, resolved against their RMs.
type ExerciseTarget struct {
	Key         domain.FeedbackKey `json:"key"`
	Exercise    string             `json:"exercise"`
	TargetKg    *float64           `json:"targetKg,omitempty"`
	TargetSpeed *float64           `json:"targetSpeed,omitempty"` // km/h
}

// SessionDetail is the athlete's view of a session.
type SessionDetail struct {
	Session  *domain.WorkoutSession `json:"session"`
	Progress domain.UserProgress    `json:"progress"`
	Targets  []ExerciseTarget       `json:"targets"`
	// Warnings lists RM references the athlete has no record for.
	Warnings []string `json:"warnings"`
}

// RMAdjustment reports an RM written by the post-session auto-adjustment.
type RMAdjustment struct {
	Name      string   `json:"name"`
	Previous  *float64 `json:"previous,omitempty"`
	Predicted float64  `json:"predicted"`
	Value     float64  `json:"value"`
	Weight    float64  `json:"weight"`
	Reps      int      `json:"reps"`
	RPE       float64  `json:"rpe"`
}

// EndResult is returned when an athlete ends a session.
type EndResult struct {
	Session     *domain.WorkoutSession `json:"session"`
	Adjustments []RMAdjustment         `json:"adjustments"`
}

type SessionService interface {
	// Admin programming
	Create(ctx context.Context, adminID primitive.ObjectID, in SessionInput) (*domain.WorkoutSession, error)
	Update(ctx context.Context, sessionID primitive.ObjectID, in SessionInput) (*domain.WorkoutSession, error)
	Delete(ctx context.Context, sessionID primitive.ObjectID) error
	ListAll(ctx context.Context) ([]domain.WorkoutSession, error)
	Get(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error)

	// Athlete progress. Returned sessions only carry the caller's own progress.
	ListMine(ctx context.Context, athleteID primitive.ObjectID) ([]domain.WorkoutSession, error)
	Detail(ctx context.Context, athleteID, sessionID primitive.ObjectID) (*SessionDetail, error)
	Start(ctx context.Context, athleteID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error)
	RecordFeedback(ctx context.Context, athleteID, sessionID primitive.ObjectID, key domain.FeedbackKey, in FeedbackInput) (*domain.WorkoutSession, error)
	// End completes the session for the athlete and, for strength sessions, auto-adjusts the referenced RMs.
	End(ctx context.Context, athleteID, sessionID primitive.ObjectID) (*EndResult, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	rmRepo      repository.RMRepository
	cache       AnalyticsCache
	metrics     *metrics.Manager
	clock       Clock
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	rmRepo repository.RMRepository,
	cache AnalyticsCache,
	metricsManager *metrics.Manager,
	clock Clock,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		rmRepo:      rmRepo,
		cache:       cache,
		metrics:     metricsManager,
		clock:       clock,
	}
}

// === Admin programming ===

func (s *sessionService) Create(ctx context.Context, adminID primitive.ObjectID, in SessionInput) (*domain.WorkoutSession, error) {
	if err := validateSession(in); err != nil {
		return nil, err
	}
	session := &domain.WorkoutSession{
		Title:             strings.TrimSpace(in.Title),
		Date:              in.Date,
		Target:            in.Target,
		Type:              in.Type,
		Blocks:            in.Blocks,
		EstimatedDuration: in.EstimatedDuration,
		CreatedBy:         adminID,
	}
	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.ID = id

	log.WithFields(log.Fields{"session": id.Hex(), "date": session.Date, "type": session.Type}).Info("session created")
	return session, nil
}

func (s *sessionService) Update(ctx context.Context, sessionID primitive.ObjectID, in SessionInput) (*domain.WorkoutSession, error) {
	if err := validateSession(in); err != nil {
		return nil, err
	}
	session, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Title = strings.TrimSpace(in.Title)
	session.Date = in.Date
	session.Target = in.Target
	session.Type = in.Type
	session.Blocks = in.Blocks
	session.EstimatedDuration = in.EstimatedDuration

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}
	// a new date or duration moves completed load between days for every assignee
	s.cache.Clear()
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionID primitive.ObjectID) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	s.cache.Clear()
	log.WithField("session", sessionID.Hex()).Info("session deleted")
	return nil
}

func (s *sessionService) ListAll(ctx context.Context) ([]domain.WorkoutSession, error) {
	sessions, err := s.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	return sessions, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.get(ctx, sessionID)
}

// === Athlete progress ===

func (s *sessionService) ListMine(ctx context.Context, athleteID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	user, err := loadUser(ctx, s.userRepo, athleteID)
	if err != nil {
		return nil, err
	}
	uid := athleteID.Hex()
	sessions, err := s.sessionRepo.ListForAthlete(ctx, uid, user.GroupID)
	if err != nil {
		return nil, err
	}
	mine := make([]domain.WorkoutSession, 0, len(sessions))
	for i := range sessions {
		mine = append(mine, *viewFor(&sessions[i], uid))
	}
	return mine, nil
}

func (s *sessionService) Detail(ctx context.Context, athleteID, sessionID primitive.ObjectID) (*SessionDetail, error) {
	session, err := s.assigned(ctx, athleteID, sessionID)
	if err != nil {
		return nil, err
	}
	uid := athleteID.Hex()
	progress, _ := session.ProgressOf(uid)

	weights, err := s.rmRepo.ListByUser(ctx, athleteID, domain.RMWeight)
	if err != nil {
		return nil, fmt.Errorf("load rms: %w", err)
	}
	var vma *domain.RMRecord
	if session.Type == domain.SessionEndurance {
		vma, err = s.rmRepo.Get(ctx, athleteID, domain.RMSpeed, domain.VMAName)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load vma: %w", err)
		}
	}

	detail := &SessionDetail{
		Session:  viewFor(session, uid),
		Progress: progress,
		Targets:  []ExerciseTarget{},
		Warnings: []string{},
	}
	unknown := make(map[string]bool)
	for b, block := range session.Blocks {
		for e, ex := range block.Exercises {
			target := ExerciseTarget{Key: domain.FeedbackKey{Block: b, Exercise: e}, Exercise: ex.Name}
			switch {
			case ex.Strength != nil && ex.Strength.PercentRM > 0 && ex.Strength.RMReference != "":
				kg, err := analytics.TargetLoad(ex.Strength.PercentRM, ex.Strength.RMReference, weights)
				if errors.Is(err, analytics.ErrUnknownReference) {
					ref := domain.NormalizeRMName(ex.Strength.RMReference)
					if !unknown[ref] {
						unknown[ref] = true
						detail.Warnings = append(detail.Warnings, fmt.Sprintf("no RM recorded for %q", ref))
					}
					continue
				}
				target.TargetKg = &kg
			case ex.Endurance != nil && ex.Endurance.PercentVMA > 0 && vma != nil:
				speed := math.Round(vma.Value*ex.Endurance.PercentVMA/100*10) / 10
				target.TargetSpeed = &speed
			default:
				continue
			}
			detail.Targets = append(detail.Targets, target)
		}
	}
	if session.Type == domain.SessionEndurance && vma == nil {
		detail.Warnings = append(detail.Warnings, "no VMA recorded")
	}
	return detail, nil
}

func (s *sessionService) Start(ctx context.Context, athleteID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.assigned(ctx, athleteID, sessionID)
	if err != nil {
		return nil, err
	}
	uid := athleteID.Hex()
	progress, _ := session.ProgressOf(uid)
	if progress.Completed() {
		return nil, ErrSessionAlreadyCompleted
	}
	// starting twice keeps the first start time
	if progress.StartedAt == nil {
		if err := s.sessionRepo.SetStarted(ctx, sessionID, uid, s.clock()); err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
	}
	return s.reload(ctx, sessionID, uid)
}

func (s *sessionService) RecordFeedback(ctx context.Context, athleteID, sessionID primitive.ObjectID, key domain.FeedbackKey, in FeedbackInput) (*domain.WorkoutSession, error) {
	session, err := s.assigned(ctx, athleteID, sessionID)
	if err != nil {
		return nil, err
	}
	uid := athleteID.Hex()
	progress, _ := session.ProgressOf(uid)
	if progress.Completed() {
		return nil, ErrSessionAlreadyCompleted
	}
	if !progress.InProgress() {
		return nil, ErrSessionNotStarted
	}
	if _, ok := session.Exercise(key); !ok {
		return nil, ErrInvalidFeedbackKey
	}
	if err := validateFeedback(in); err != nil {
		return nil, err
	}

	fb := domain.Feedback{
		RPE:            in.RPE,
		ActualWeight:   in.ActualWeight,
		ActualReps:     in.ActualReps,
		ActualDistance: in.ActualDistance,
		Notes:          strings.TrimSpace(in.Notes),
	}
	if err := s.sessionRepo.SetFeedback(ctx, sessionID, uid, key, fb); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrSessionAlreadyCompleted
		}
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	s.cache.InvalidateUser(uid, s.clock.today())
	return s.reload(ctx, sessionID, uid)
}

func (s *sessionService) End(ctx context.Context, athleteID, sessionID primitive.ObjectID) (result *EndResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessionService.end")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("session", sessionID.Hex()))

	session, err := s.assigned(ctx, athleteID, sessionID)
	if err != nil {
		return nil, err
	}
	uid := athleteID.Hex()
	progress, _ := session.ProgressOf(uid)
	if progress.Completed() {
		return nil, ErrSessionAlreadyCompleted
	}
	if !progress.InProgress() {
		return nil, ErrSessionNotStarted
	}

	// only the call that sets the completion goes on to adjust RMs
	if err = s.sessionRepo.SetCompleted(ctx, sessionID, uid, s.clock()); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrSessionAlreadyCompleted
		}
		return nil, fmt.Errorf("end session: %w", err)
	}
	s.metrics.CounterSessionsCompleted.Inc()
	s.cache.InvalidateUser(uid, s.clock.today())

	// feedback is frozen from here on
	completed, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress, _ = completed.ProgressOf(uid)

	result = &EndResult{Session: viewFor(completed, uid), Adjustments: []RMAdjustment{}}
	if completed.Type == domain.SessionStrength {
		result.Adjustments = s.adjustRMs(ctx, athleteID, completed, progress.Feedback)
		span.SetAttributes(attribute.Int("rm_adjustments", len(result.Adjustments)))
	}

	log.WithFields(log.Fields{
		"session":     sessionID.Hex(),
		"athlete":     uid,
		"adjustments": len(result.Adjustments),
	}).Info("session completed")
	return result, nil
}

// rmCandidate is the best prediction found for one RM reference.
type rmCandidate struct {
	name      string
	predicted float64
	weight    float64
	reps      int
	rpe       float64
}

// adjustRMs reconciles every RM referenced by the session's strength exercises with the best
// RPE based prediction among the athlete's feedback. Feedback outside the RPE table is skipped.
// A failed write is logged and does not undo the completion.
func (s *sessionService) adjustRMs(ctx context.Context, athleteID primitive.ObjectID, session *domain.WorkoutSession, feedback map[domain.FeedbackKey]domain.Feedback) []RMAdjustment {
	keys := make([]domain.FeedbackKey, 0, len(feedback))
	for k := range feedback {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b domain.FeedbackKey) int {
		return cmp.Or(cmp.Compare(a.Block, b.Block), cmp.Compare(a.Exercise, b.Exercise))
	})

	best := make(map[string]rmCandidate)
	var order []string
	for _, key := range keys {
		fb := feedback[key]
		ex, ok := session.Exercise(key)
		if !ok || ex.Strength == nil || ex.Strength.RMReference == "" || fb.RPE == nil {
			continue
		}
		predicted, ok := analytics.PredictFromRPE(fb.ActualWeight, fb.ActualReps, *fb.RPE)
		if !ok {
			continue
		}
		name := domain.NormalizeRMName(ex.Strength.RMReference)
		prev, seen := best[name]
		if !seen {
			order = append(order, name)
		}
		if !seen || predicted > prev.predicted {
			best[name] = rmCandidate{name: name, predicted: predicted, weight: fb.ActualWeight, reps: fb.ActualReps, rpe: *fb.RPE}
		}
	}

	adjustments := make([]RMAdjustment, 0, len(order))
	for _, name := range order {
		c := best[name]
		adj, err := s.applyAdjustment(ctx, athleteID, c)
		if err != nil {
			s.metrics.CounterRMAdjustments.WithLabelValues("failed").Inc()
			log.WithError(err).WithFields(log.Fields{"athlete": athleteID.Hex(), "rm": name}).Error("rm auto-adjustment failed")
			continue
		}
		s.metrics.CounterRMAdjustments.WithLabelValues("adjusted").Inc()
		adjustments = append(adjustments, adj)
	}
	return adjustments
}

// applyAdjustment is a read-modify-write without a guard: when two sessions end concurrently
// for the same RM, the last write wins.
func (s *sessionService) applyAdjustment(ctx context.Context, athleteID primitive.ObjectID, c rmCandidate) (RMAdjustment, error) {
	record, err := s.rmRepo.Get(ctx, athleteID, domain.RMWeight, c.name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		record = &domain.RMRecord{UserID: athleteID, Kind: domain.RMWeight, Name: c.name}
	case err != nil:
		return RMAdjustment{}, err
	}

	var previous *float64
	if record.ID != primitive.NilObjectID {
		v := record.Value
		previous = &v
	}

	record.Value = analytics.Reconcile(c.predicted, previous)
	record.AutoAdjusted = true
	record.LastWeight = &c.weight
	record.LastReps = &c.reps
	record.LastRPE = &c.rpe
	if err := s.rmRepo.Upsert(ctx, record); err != nil {
		return RMAdjustment{}, err
	}

	return RMAdjustment{
		Name:      c.name,
		Previous:  previous,
		Predicted: c.predicted,
		Value:     record.Value,
		Weight:    c.weight,
		Reps:      c.reps,
		RPE:       c.rpe,
	}, nil
}

// === helpers ===

func (s *sessionService) get(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// assigned loads a session and checks that it targets the athlete or their group.
func (s *sessionService) assigned(ctx context.Context, athleteID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	user, err := loadUser(ctx, s.userRepo, athleteID)
	if err != nil {
		return nil, err
	}
	session, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Target.Includes(athleteID.Hex(), user.GroupID) {
		return nil, ErrSessionAccessDenied
	}
	return session, nil
}

func (s *sessionService) reload(ctx context.Context, sessionID primitive.ObjectID, uid string) (*domain.WorkoutSession, error) {
	session, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return viewFor(session, uid), nil
}

// viewFor strips the progress of every other athlete.
func viewFor(session *domain.WorkoutSession, uid string) *domain.WorkoutSession {
	view := *session
	view.Progress = nil
	if p, ok := session.Progress[uid]; ok {
		view.Progress = map[string]domain.UserProgress{uid: p}
	}
	return &view
}

func validateSession(in SessionInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidationFailed)
	}
	if _, err := domain.ParseDate(in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidationFailed)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown session type %q", ErrValidationFailed, in.Type)
	}
	if (in.Target.GroupID == "") == (in.Target.UserID == "") {
		return fmt.Errorf("%w: target must be exactly one of group or user", ErrValidationFailed)
	}
	if in.Target.UserID != "" && !primitive.IsValidObjectID(in.Target.UserID) {
		return fmt.Errorf("%w: target user is not a valid id", ErrValidationFailed)
	}
	if in.EstimatedDuration < 0 {
		return fmt.Errorf("%w: estimated duration cannot be negative", ErrValidationFailed)
	}
	for b, block := range in.Blocks {
		for e, ex := range block.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return fmt.Errorf("%w: exercise %d-%d has no name", ErrValidationFailed, b, e)
			}
			if ex.Type() != in.Type {
				return fmt.Errorf("%w: exercise %d-%d must carry only %s parameters", ErrValidationFailed, b, e, in.Type)
			}
			if ex.Strength != nil && (ex.Strength.PercentRM < 0 || ex.Strength.PercentRM > 150) {
				return fmt.Errorf("%w: exercise %d-%d has an invalid %%RM", ErrValidationFailed, b, e)
			}
		}
	}
	return nil
}

func validateFeedback(in FeedbackInput) error {
	if in.RPE == nil {
		return fmt.Errorf("%w: rpe is required", ErrValidationFailed)
	}
	rpe := *in.RPE
	if rpe < 0 || rpe > 10 || rpe*2 != math.Trunc(rpe*2) {
		return fmt.Errorf("%w: rpe must be between 0 and 10 in half points", ErrValidationFailed)
	}
	if in.ActualWeight < 0 || in.ActualReps < 0 || in.ActualDistance < 0 {
		return fmt.Errorf("%w: actual values cannot be negative", ErrValidationFailed)
	}
	return nil
}
