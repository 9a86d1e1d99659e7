package entity

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryAerobic  CategoryType = "AEROBIC"
	CategoryStrength CategoryType = "STRENGTH"
)

type WorkoutStatus string

const (
	StatusDrafted WorkoutStatus = "DRAFTED"
	StatusDone    WorkoutStatus = "DONE"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type ExerciseCategory struct {
	ID     uuid.UUID    `json:"id"`
	UserID uuid.UUID    `json:"uid"`
	Name   string       `json:"name"`
	Type   CategoryType `json:"type"`
}

type Exercise struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"uid"`
	CategoryID uuid.UUID    `json:"category_id"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type Workout struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"uid"`
	Name        string        `json:"name"`
	Status      WorkoutStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// WorkoutExercise is one exercise occurrence inside a workout, carrying its
// ordered sets. ExerciseName and Type are joined from the exercise catalog.
type WorkoutExercise struct {
	ID            int64        `json:"id"`
	WorkoutID     uuid.UUID    `json:"workout_id"`
	ExerciseID    uuid.UUID    `json:"exercise_id"`
	ExerciseName  string       `json:"exercise_name"`
	Type          CategoryType `json:"type"`
	ExerciseIndex int          `json:"exercise_index"`
	Notes         string       `json:"notes,omitempty"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	Sets          []WorkoutSet `json:"sets"`
}

type WorkoutSet struct {
	ID       int64   `json:"id"`
	SetIndex int     `json:"set_index"`
	Mins     float64 `json:"mins"`
	Distance float64 `json:"distance"`
	Kcal     float64 `json:"kcal"`
	Lbs      float64 `json:"lbs"`
	Reps     int     `json:"reps"`
}

// SetDraft is the client-supplied shape of one set; fields irrelevant to the
// exercise type stay zero.
type SetDraft struct {
	Mins     float64 `json:"mins"`
	Distance float64 `json:"distance"`
	Kcal     float64 `json:"kcal"`
	Lbs      float64 `json:"lbs"`
	Reps     int     `json:"reps"`
}

// ExerciseDraft is one element of the desired exercise list handed to the
// reconciliation engine. Position in the list becomes exercise_index.
type ExerciseDraft struct {
	ExerciseID uuid.UUID  `json:"exercise_id"`
	Notes      string     `json:"notes,omitempty"`
	Sets       []SetDraft `json:"sets"`
}

// ExerciseSession is one completed occurrence of an exercise, used for
// history views and for seeding new sessions.
type ExerciseSession struct {
	WorkoutID   uuid.UUID    `json:"workout_id"`
	WorkoutName string       `json:"workout_name"`
	Notes       string       `json:"notes,omitempty"`
	CompletedAt time.Time    `json:"completed_at"`
	Sets        []WorkoutSet `json:"sets"`
}

type TemplateExercise struct {
	ExerciseID    uuid.UUID `json:"exercise_id"`
	ExerciseName  string    `json:"exercise_name"`
	ExerciseIndex int       `json:"exercise_index"`
}

type WorkoutTemplate struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"uid"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	Exercises []TemplateExercise `json:"exercises"`
}

type ExerciseOverview struct {
	Exercise
	LastSession *ExerciseSession `json:"last_session,omitempty"`
}

type CategoryWithExercises struct {
	ExerciseCategory
	Exercises []ExerciseOverview `json:"exercises"`
}
