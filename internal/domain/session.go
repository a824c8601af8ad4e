package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionType selects the exercise schema used by every block of a session.
type SessionType string

const (
	SessionStrength  SessionType = "strength"
	SessionSprint    SessionType = "sprint"
	SessionEndurance SessionType = "endurance"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionStrength, SessionSprint, SessionEndurance:
		return true
	}
	return false
}

// DefaultSessionDuration is used when a session has no estimated duration (minutes).
const DefaultSessionDuration = 60

// Target is who a session is assigned to: a whole group or one athlete.
type Target struct {
	GroupID string `bson:"groupId,omitempty" json:"groupId,omitempty"`
	UserID  string `bson:"userId,omitempty" json:"userId,omitempty"`
}

// Includes reports whether the athlete (by hex id and group) is assigned to the session.
func (t Target) Includes(userID, groupID string) bool {
	if t.UserID != "" {
		return t.UserID == userID
	}
	return t.GroupID != "" && t.GroupID == groupID
}

// WorkoutSession is a scheduled training session with independent progress per athlete.
type WorkoutSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Target    Target             `bson:"target" json:"target"`
	Type      SessionType        `bson:"type" json:"type"`
	Blocks    []Block            `bson:"blocks" json:"blocks"`
	// EstimatedDuration in minutes, DefaultSessionDuration when unset.
	EstimatedDuration int                     `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"`
	Progress          map[string]UserProgress `bson:"progress,omitempty" json:"progress,omitempty"` // keyed by user id hex
	CreatedBy         primitive.ObjectID      `bson:"createdBy" json:"createdBy"`
	CreatedAt         time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// Duration returns the estimated duration in minutes, falling back to the default.
func (s *WorkoutSession) Duration() float64 {
	if s.EstimatedDuration <= 0 {
		return DefaultSessionDuration
	}
	return float64(s.EstimatedDuration)
}

// ProgressOf returns the progress of one athlete, if any.
func (s *WorkoutSession) ProgressOf(userID string) (UserProgress, bool) {
	p, ok := s.Progress[userID]
	return p, ok
}

// CompletedBy is true once the athlete has ended the session.
func (s *WorkoutSession) CompletedBy(userID string) bool {
	p, ok := s.Progress[userID]
	return ok && p.Completed()
}

// Exercise looks up the exercise addressed by a feedback key.
func (s *WorkoutSession) Exercise(key FeedbackKey) (Exercise, bool) {
	if key.Block < 0 || key.Block >= len(s.Blocks) {
		return Exercise{}, false
	}
	exercises := s.Blocks[key.Block].Exercises
	if key.Exercise < 0 || key.Exercise >= len(exercises) {
		return Exercise{}, false
	}
	return exercises[key.Exercise], true
}

// Block is a named group of exercises, owned by its session.
type Block struct {
	Name      string     `bson:"name" json:"name"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// Exercise holds exactly one parameter set, matching the session type.
type Exercise struct {
	Name      string           `bson:"name" json:"name"`
	Strength  *StrengthParams  `bson:"strength,omitempty" json:"strength,omitempty"`
	Sprint    *SprintParams    `bson:"sprint,omitempty" json:"sprint,omitempty"`
	Endurance *EnduranceParams `bson:"endurance,omitempty" json:"endurance,omitempty"`
}

// Type returns the schema the exercise was written for, or "" when none or several are set.
func (e Exercise) Type() SessionType {
	var t SessionType
	n := 0
	if e.Strength != nil {
		t, n = SessionStrength, n+1
	}
	if e.Sprint != nil {
		t, n = SessionSprint, n+1
	}
	if e.Endurance != nil {
		t, n = SessionEndurance, n+1
	}
	if n != 1 {
		return ""
	}
	return t
}

type StrengthParams struct {
	Series    int     `bson:"series" json:"series"`
	Reps      int     `bson:"reps" json:"reps"`
	Tempo     string  `bson:"tempo,omitempty" json:"tempo,omitempty"`
	Rest      int     `bson:"rest,omitempty" json:"rest,omitempty"` // seconds
	PercentRM float64 `bson:"percentRm,omitempty" json:"percentRm,omitempty"`
	// RMReference names the RM record the target percentage applies to.
	RMReference string `bson:"rmReference,omitempty" json:"rmReference,omitempty"`
}

type SprintParams struct {
	Distance  int    `bson:"distance" json:"distance"` // meters
	Reps      int    `bson:"reps" json:"reps"`
	Sets      int    `bson:"sets" json:"sets"`
	Recovery  int    `bson:"recovery,omitempty" json:"recovery,omitempty"` // seconds
	Intensity string `bson:"intensity,omitempty" json:"intensity,omitempty"`
}

type EnduranceParams struct {
	PercentVMA   float64 `bson:"percentVma" json:"percentVma"`
	EffortTime   int     `bson:"effortTime" json:"effortTime"`     // seconds
	RecoveryTime int     `bson:"recoveryTime" json:"recoveryTime"` // seconds
	Reps         int     `bson:"reps" json:"reps"`
	GroundWork   bool    `bson:"groundWork" json:"groundWork"`
}

// UserProgress is one athlete's state on a session.
type UserProgress struct {
	StartedAt   *time.Time               `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	CompletedAt *time.Time               `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Feedback    map[FeedbackKey]Feedback `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

func (p UserProgress) InProgress() bool {
	return p.StartedAt != nil && p.CompletedAt == nil
}

// Completed derives solely from the presence of a completion timestamp.
func (p UserProgress) Completed() bool {
	return p.CompletedAt != nil
}

// FeedbackKey addresses an exercise inside a session by position.
type FeedbackKey struct {
	Block    int
	Exercise int
}

func (k FeedbackKey) String() string {
	return strconv.Itoa(k.Block) + "-" + strconv.Itoa(k.Exercise)
}

// MarshalText encodes the key as "block-exercise" for JSON and BSON map keys.
func (k FeedbackKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FeedbackKey) UnmarshalText(text []byte) error {
	parsed, err := ParseFeedbackKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseFeedbackKey parses the "block-exercise" wire form.
func ParseFeedbackKey(s string) (FeedbackKey, error) {
	b, e, ok := strings.Cut(s, "-")
	if !ok {
		return FeedbackKey{}, fmt.Errorf("feedback key %q: missing separator", s)
	}
	block, err := strconv.Atoi(b)
	if err != nil || block < 0 {
		return FeedbackKey{}, fmt.Errorf("feedback key %q: invalid block index", s)
	}
	exercise, err := strconv.Atoi(e)
	if err != nil || exercise < 0 {
		return FeedbackKey{}, fmt.Errorf("feedback key %q: invalid exercise index", s)
	}
	return FeedbackKey{Block: block, Exercise: exercise}, nil
}

// Feedback is what an athlete reports for one exercise.
// RPE is on the Foster scale (0-10, half points); nil means not reported.
type Feedback struct {
	RPE            *float64 `bson:"rpe,omitempty" json:"rpe,omitempty"`
	ActualWeight   float64  `bson:"actualWeight,omitempty" json:"actualWeight,omitempty"`
	ActualReps     int      `bson:"actualReps,omitempty" json:"actualReps,omitempty"`
	ActualDistance float64  `bson:"actualDistance,omitempty" json:"actualDistance,omitempty"`
	Notes          string   `bson:"notes,omitempty" json:"notes,omitempty"`
}
