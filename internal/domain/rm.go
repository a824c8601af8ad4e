package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RMKind tags what an RM record measures.
type RMKind string

const (
	// RMWeight is a one-rep max in kilograms.
	RMWeight RMKind = "weight"
	// RMSpeed is a maximal aerobic speed (VMA) in km/h.
	RMSpeed RMKind = "speed"
)

// VMAName is the natural key of the speed record.
const VMAName = "vma"

// MaxSpeedHistory bounds the history kept on a speed record.
const MaxSpeedHistory = 20

// RMRecord is a per-athlete max, keyed by (user, kind, normalized name).
type RMRecord struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Kind   RMKind             `bson:"kind" json:"kind"`
	Name   string             `bson:"name" json:"name"`
	Value  float64            `bson:"value" json:"value"` // kg for RMWeight, km/h for RMSpeed

	// Weight kind only.
	Test         *RMTest  `bson:"test,omitempty" json:"test,omitempty"`
	AutoAdjusted bool     `bson:"autoAdjusted" json:"autoAdjusted"`
	LastRPE      *float64 `bson:"lastRpe,omitempty" json:"lastRpe,omitempty"`
	LastWeight   *float64 `bson:"lastWeight,omitempty" json:"lastWeight,omitempty"`
	LastReps     *int     `bson:"lastReps,omitempty" json:"lastReps,omitempty"`

	// Speed kind only, oldest first.
	History []SpeedSample `bson:"history,omitempty" json:"history,omitempty"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RMTest is the manual test a weight RM was derived from.
type RMTest struct {
	Weight float64 `bson:"weight" json:"weight"`
	Reps   int     `bson:"reps" json:"reps"`
}

type SpeedSample struct {
	Value float64 `bson:"value" json:"value"`
	Date  string  `bson:"date" json:"date"`
}

// NormalizeRMName turns a display name into the natural key of an RM record.
func NormalizeRMName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AppendSpeedSample appends s and keeps only the MaxSpeedHistory most recent samples.
func AppendSpeedSample(history []SpeedSample, s SpeedSample) []SpeedSample {
	history = append(history, s)
	if over := len(history) - MaxSpeedHistory; over > 0 {
		history = append([]SpeedSample(nil), history[over:]...)
	}
	return history
}
