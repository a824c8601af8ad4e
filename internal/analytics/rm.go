package analytics

import (
	"errors"
	"math"

	"alcyxob/athlete-tracker/internal/domain"
)

// ErrUnknownReference means an exercise points at an RM record the athlete does not have.
var ErrUnknownReference = errors.New("unknown rm reference")

// MaxAdjustmentPercent bounds how far a single session can move a stored RM.
const MaxAdjustmentPercent = 10.0

const (
	minTableRPE = 8.0
	maxTableRPE = 10.0
	maxTableRep = 6
)

// rpeTable holds the percentage of 1RM for a set of reps at a given RPE.
// Rows are reps 1..6, columns RPE 7, 7.5, ... 10.
var rpeTable = [maxTableRep][7]float64{
	{89.2, 90.7, 92.2, 93.9, 95.5, 97.8, 100.0},
	{86.3, 87.8, 89.2, 90.7, 92.2, 93.9, 95.5},
	{83.7, 85.0, 86.3, 87.8, 89.2, 90.7, 92.2},
	{81.1, 82.4, 83.7, 85.0, 86.3, 87.8, 89.2},
	{78.6, 79.9, 81.1, 82.4, 83.7, 85.0, 86.3},
	{76.2, 77.4, 78.6, 79.9, 81.1, 82.4, 83.7},
}

// Predict1RM estimates a one-rep max from a tested set with the Epley formula.
func Predict1RM(weight float64, reps int) (float64, bool) {
	if weight <= 0 || reps < 1 {
		return 0, false
	}
	if reps == 1 {
		return weight, true
	}
	return round(weight*(1+float64(reps)/30), 1), true
}

// RPEPercent returns the %1RM the table assigns to reps at rpe. Only RPE 8
// and above is trusted; within that range rpe is rounded to the nearest half point.
func RPEPercent(reps int, rpe float64) (float64, bool) {
	if reps < 1 || reps > maxTableRep {
		return 0, false
	}
	if rpe < minTableRPE || rpe > maxTableRPE {
		return 0, false
	}
	rpe = math.Round(rpe*2) / 2
	col := int((rpe - 7) * 2)
	return rpeTable[reps-1][col], true
}

// PredictFromRPE estimates a one-rep max from a working set and its RPE.
func PredictFromRPE(weight float64, reps int, rpe float64) (float64, bool) {
	if weight <= 0 {
		return 0, false
	}
	pct, ok := RPEPercent(reps, rpe)
	if !ok {
		return 0, false
	}
	return round(weight/(pct/100), 1), true
}

// Reconcile decides the RM to store after a prediction. Without a current
// value the prediction is adopted; otherwise the change is capped at
// MaxAdjustmentPercent either way.
func Reconcile(predicted float64, current *float64) float64 {
	if current == nil || *current <= 0 {
		return round(predicted, 1)
	}
	cur := *current
	change := (predicted - cur) / cur * 100
	switch {
	case change > MaxAdjustmentPercent:
		return round(cur*(1+MaxAdjustmentPercent/100), 1)
	case change < -MaxAdjustmentPercent:
		return round(cur*(1-MaxAdjustmentPercent/100), 1)
	default:
		return round(predicted, 1)
	}
}

// TargetLoad resolves a %RM prescription against the athlete's weight RMs,
// keyed by normalized name. The result is rounded to 0.5 kg.
func TargetLoad(percent float64, reference string, rms map[string]domain.RMRecord) (float64, error) {
	rec, ok := rms[domain.NormalizeRMName(reference)]
	if !ok || rec.Kind != domain.RMWeight {
		return 0, ErrUnknownReference
	}
	return math.Round(rec.Value*percent/100*2) / 2, nil
}
