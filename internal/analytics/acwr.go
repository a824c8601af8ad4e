package analytics

import (
	"iter"
	"math"
	"slices"
	"time"

	"alcyxob/athlete-tracker/internal/domain"
)

const (
	AcuteWindowDays   = 7
	ChronicWindowDays = 28
	// MinChronicSessions is the number of completed sessions the chronic
	// window needs before a ratio is reported.
	MinChronicSessions = 10
	// chronicWeeks converts the 28-day sum to a weekly equivalent.
	chronicWeeks = ChronicWindowDays / AcuteWindowDays
)

// Workload is the acute/chronic picture of one athlete on one day.
type Workload struct {
	Date            string  `json:"date"`
	Acute           float64 `json:"acute"`
	Chronic         float64 `json:"chronic"` // weekly equivalent
	AcuteSessions   int     `json:"acuteSessions"`
	ChronicSessions int     `json:"chronicSessions"`
	// Ratio is valid only when OK is true.
	Ratio float64 `json:"ratio"`
	OK    bool    `json:"ok"`
}

// Point is one day of the ACWR time series.
type Point struct {
	Date  string  `json:"date"`
	Ratio float64 `json:"acwr"`
}

// dailyLoad is the completed load and session count of one calendar day.
type dailyLoad struct {
	load  float64
	count int
}

// bucketByDay sums the athlete's completed session loads per civil day.
// Sessions with an unparsable date are ignored.
func bucketByDay(sessions []domain.WorkoutSession, userID string) map[int64]dailyLoad {
	days := make(map[int64]dailyLoad)
	for i := range sessions {
		s := &sessions[i]
		if !s.CompletedBy(userID) {
			continue
		}
		date, err := domain.ParseDate(s.Date)
		if err != nil {
			continue
		}
		day := domain.CivilDay(date)
		d := days[day]
		d.load += Load(s, userID)
		d.count++
		days[day] = d
	}
	return days
}

// workloadAt evaluates both windows ending on ref (day 0 inclusive, day N exclusive).
func workloadAt(days map[int64]dailyLoad, ref int64) Workload {
	var w Workload
	for diff := int64(0); diff < ChronicWindowDays; diff++ {
		d, ok := days[ref-diff]
		if !ok {
			continue
		}
		if diff < AcuteWindowDays {
			w.Acute += d.load
			w.AcuteSessions += d.count
		}
		w.Chronic += d.load
		w.ChronicSessions += d.count
	}
	w.Chronic /= chronicWeeks

	if w.ChronicSessions < MinChronicSessions || w.Chronic == 0 {
		return w
	}
	w.Ratio = round(w.Acute/w.Chronic, 2)
	w.OK = true
	return w
}

// WorkloadOn computes acute and chronic load for the athlete on the calendar date of ref.
func WorkloadOn(sessions []domain.WorkoutSession, userID string, ref time.Time) Workload {
	w := workloadAt(bucketByDay(sessions, userID), domain.CivilDay(ref))
	w.Date = domain.FormatDate(ref)
	return w
}

// ACWR returns the acute:chronic workload ratio on the calendar date of ref.
// ok is false when the chronic window holds fewer than MinChronicSessions
// completed sessions or the chronic load is zero.
func ACWR(sessions []domain.WorkoutSession, userID string, ref time.Time) (ratio float64, ok bool) {
	w := WorkloadOn(sessions, userID, ref)
	return w.Ratio, w.OK
}

// HistorySeq yields the ratio for each of the days calendar days ending on
// end, oldest first, skipping days without enough data. The sequence can be
// iterated any number of times.
func HistorySeq(sessions []domain.WorkoutSession, userID string, end time.Time, days int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if days <= 0 {
			return
		}
		buckets := bucketByDay(sessions, userID)
		last := domain.CivilDay(end)
		for day := last - int64(days) + 1; day <= last; day++ {
			w := workloadAt(buckets, day)
			if !w.OK {
				continue
			}
			date := time.Unix(day*86400, 0).UTC()
			if !yield(Point{Date: domain.FormatDate(date), Ratio: w.Ratio}) {
				return
			}
		}
	}
}

// History collects HistorySeq into a slice. It is never nil.
func History(sessions []domain.WorkoutSession, userID string, end time.Time, days int) []Point {
	points := slices.Collect(HistorySeq(sessions, userID, end, days))
	if points == nil {
		points = []Point{}
	}
	return points
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
