package analytics

import "alcyxob/athlete-tracker/internal/domain"

// Load returns the session load of one athlete: mean reported RPE times the
// estimated duration in minutes. A session without any RPE from the athlete
// contributes 0. An RPE of 0 is a real value and is averaged in.
func Load(session *domain.WorkoutSession, userID string) float64 {
	progress, ok := session.ProgressOf(userID)
	if !ok || len(progress.Feedback) == 0 {
		return 0
	}

	var sum float64
	var n int
	for _, fb := range progress.Feedback {
		if fb.RPE == nil {
			continue
		}
		sum += *fb.RPE
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * session.Duration()
}
