package analytics_test

import (
	"time"

	"alcyxob/athlete-tracker/internal/domain"
)

const athlete = "64b000000000000000000001"

func ptr[T any](v T) *T {
	return &v
}

// completedSession builds a session on date, completed by athlete, with one
// feedback entry per RPE.
func completedSession(date time.Time, duration int, rpes ...float64) domain.WorkoutSession {
	s := domain.WorkoutSession{
		Title:             "session " + domain.FormatDate(date),
		Date:              domain.FormatDate(date),
		Type:              domain.SessionSprint,
		EstimatedDuration: duration,
	}
	done := date.Add(time.Hour)
	fb := make(map[domain.FeedbackKey]domain.Feedback)
	for i, rpe := range rpes {
		fb[domain.FeedbackKey{Block: 0, Exercise: i}] = domain.Feedback{RPE: ptr(rpe)}
	}
	s.Progress = map[string]domain.UserProgress{
		athlete: {StartedAt: &date, CompletedAt: &done, Feedback: fb},
	}
	return s
}

// dailySessions returns one completed session per day for n days ending on end.
func dailySessions(end time.Time, n int, rpe float64) []domain.WorkoutSession {
	var sessions []domain.WorkoutSession
	for i := n - 1; i >= 0; i-- {
		sessions = append(sessions, completedSession(end.AddDate(0, 0, -i), 60, rpe))
	}
	return sessions
}
