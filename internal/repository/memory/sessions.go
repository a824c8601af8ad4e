package memory

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/repository"
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[primitive.ObjectID]domain.WorkoutSession
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepo{
		sessions: make(map[primitive.ObjectID]domain.WorkoutSession),
	}
}

func (r *sessionRepo) Create(_ context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.Progress = nil
	r.sessions[session.ID] = cloneSession(*session)
	return session.ID, nil
}

func (r *sessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s = cloneSession(s)
	return &s, nil
}

func (r *sessionRepo) Update(_ context.Context, session *domain.WorkoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.sessions[session.ID]
	if !ok {
		return repository.ErrNotFound
	}
	session.UpdatedAt = time.Now().UTC()
	updated := cloneSession(*session)
	updated.Progress = prev.Progress
	updated.CreatedBy = prev.CreatedBy
	updated.CreatedAt = prev.CreatedAt
	r.sessions[session.ID] = updated
	return nil
}

func (r *sessionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepo) ListAll(_ context.Context) ([]domain.WorkoutSession, error) {
	return r.filter(func(domain.WorkoutSession) bool { return true }), nil
}

func (r *sessionRepo) ListForAthlete(_ context.Context, userID string, groupID string) ([]domain.WorkoutSession, error) {
	return r.filter(func(s domain.WorkoutSession) bool {
		return s.Target.Includes(userID, groupID)
	}), nil
}

func (r *sessionRepo) ListCompletedBy(_ context.Context, userID string) ([]domain.WorkoutSession, error) {
	return r.filter(func(s domain.WorkoutSession) bool {
		p, ok := s.Progress[userID]
		return ok && p.Completed()
	}), nil
}

func (r *sessionRepo) filter(keep func(s domain.WorkoutSession) bool) []domain.WorkoutSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sessions []domain.WorkoutSession
	for _, s := range r.sessions {
		if keep(s) {
			sessions = append(sessions, cloneSession(s))
		}
	}
	slices.SortFunc(sessions, func(a, b domain.WorkoutSession) int {
		return cmp.Or(
			strings.Compare(a.Date, b.Date),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
	return sessions
}

func (r *sessionRepo) SetStarted(_ context.Context, id primitive.ObjectID, userID string, at time.Time) error {
	return r.updateProgress(id, userID, false, func(p *domain.UserProgress) {
		at := at.UTC()
		p.StartedAt = &at
	})
}

func (r *sessionRepo) SetFeedback(_ context.Context, id primitive.ObjectID, userID string, key domain.FeedbackKey, fb domain.Feedback) error {
	return r.updateProgress(id, userID, true, func(p *domain.UserProgress) {
		if p.Feedback == nil {
			p.Feedback = make(map[domain.FeedbackKey]domain.Feedback)
		}
		p.Feedback[key] = fb
	})
}

func (r *sessionRepo) SetCompleted(_ context.Context, id primitive.ObjectID, userID string, at time.Time) error {
	return r.updateProgress(id, userID, true, func(p *domain.UserProgress) {
		at := at.UTC()
		p.CompletedAt = &at
	})
}

// updateProgress applies fn under the write lock. With open set, completed progress is left alone.
func (r *sessionRepo) updateProgress(id primitive.ObjectID, userID string, open bool, fn func(p *domain.UserProgress)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	p := s.Progress[userID]
	if open && p.Completed() {
		return repository.ErrConflict
	}
	if s.Progress == nil {
		s.Progress = make(map[string]domain.UserProgress)
	}
	p.Feedback = maps.Clone(p.Feedback)
	fn(&p)
	s.Progress[userID] = p
	r.sessions[id] = s
	return nil
}

// cloneSession copies the maps and slices of a session so callers never share state with the store.
func cloneSession(s domain.WorkoutSession) domain.WorkoutSession {
	s.Blocks = slices.Clone(s.Blocks)
	for i := range s.Blocks {
		s.Blocks[i].Exercises = slices.Clone(s.Blocks[i].Exercises)
	}
	if s.Progress != nil {
		progress := make(map[string]domain.UserProgress, len(s.Progress))
		for uid, p := range s.Progress {
			p.Feedback = maps.Clone(p.Feedback)
			progress[uid] = p
		}
		s.Progress = progress
	}
	return s
}
