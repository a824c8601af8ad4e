package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report stores metadata about an exported workload report.
// The CSV itself lives in object storage.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID   primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"`
	Days        int                `bson:"days" json:"days"`
	Points      int                `bson:"points" json:"points"` // number of days with a ratio
	Size        int64              `bson:"size" json:"size"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
