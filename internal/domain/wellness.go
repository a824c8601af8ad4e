package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRating is the upper bound of every wellness score and pain intensity.
const MaxRating = 10

// WellnessEntry is the daily questionnaire of an athlete. There is at most one per (user, date).
type WellnessEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	Sleep      int                `bson:"sleep" json:"sleep"`
	Motivation int                `bson:"motivation" json:"motivation"`
	Nutrition  int                `bson:"nutrition" json:"nutrition"`
	Hydration  int                `bson:"hydration" json:"hydration"`
	Fatigue    int                `bson:"fatigue" json:"fatigue"`
	Stress     int                `bson:"stress" json:"stress"`
	Pain       int                `bson:"pain" json:"pain"`
	// PainZones maps a body zone identifier (e.g. "left-knee") to an intensity 0-10.
	PainZones map[string]int `bson:"painZones,omitempty" json:"painZones,omitempty"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Ratings returns the seven questionnaire scores in a fixed order.
func (w *WellnessEntry) Ratings() []int {
	return []int{w.Sleep, w.Motivation, w.Nutrition, w.Hydration, w.Fatigue, w.Stress, w.Pain}
}
