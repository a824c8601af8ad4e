package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightUpdateInterval is the minimum time between two body weight entries.
const WeightUpdateInterval = 7 * 24 * time.Hour

// WeightEntry is one append-only body weight measurement.
type WeightEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Date      string             `bson:"date" json:"date"`
	Kg        float64            `bson:"kg" json:"kg"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
