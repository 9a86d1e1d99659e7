package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/veldrin/ironlog/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type CatalogRepositoryI interface {
	// Creates new exercise category. Name is unique per owner
	CreateCategory(ctx context.Context, category *entity.ExerciseCategory) (uuid.UUID, error)
	// Lists categories owned by user
	GetCategoriesByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.ExerciseCategory, error)
	// Creates new exercise inside a category
	CreateExercise(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error)
	// Searches exercise with given id, category type joined in
	GetExerciseByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// Lists all exercises owned by user, category type joined in
	GetExercisesByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Exercise, error)
	// Renames exercise with id
	UpdateExerciseName(ctx context.Context, id uuid.UUID, name string) error
}

type WorkoutsRepositoryI interface {
	// Creates new drafted workout, returns its id
	Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error)
	// Searches workout with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	// Provides the workout's exercises with their sets, ordered by indices
	GetComposition(ctx context.Context, workoutID uuid.UUID) ([]*entity.WorkoutExercise, error)
	// Lists workouts owned by user, newest first, keyset-paginated
	List(ctx context.Context, uid uuid.UUID, cursor *Cursor, limit int) ([]*entity.Workout, *Cursor, error)
	// Renames workout with id
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	// Deletes workout together with its exercises and sets
	Delete(ctx context.Context, id uuid.UUID) error
	// Replaces the workout's whole exercise/set composition in one transaction.
	// Only exercises owned by uid may appear in the desired list. With finalize
	// the workout transitions to DONE and completion times are stamped with
	// now. Returns ErrWorkoutCompleted when the workout is DONE.
	Replace(ctx context.Context, workoutID, uid uuid.UUID, desired []entity.ExerciseDraft, finalize bool, now time.Time) error
	// Appends exercises with no sets, used when instantiating templates and
	// when repeating a past workout. Only exercises owned by uid are accepted
	SeedExercises(ctx context.Context, workoutID, uid uuid.UUID, exerciseIDs []uuid.UUID) error
	// Returns the most recent completed occurrence of the exercise across the
	// owner's workouts, nil when the exercise was never completed
	LastSession(ctx context.Context, exerciseID, uid uuid.UUID) (*entity.ExerciseSession, error)
	// Lists completed occurrences of the exercise, most recent first
	History(ctx context.Context, exerciseID, uid uuid.UUID, limit int) ([]*entity.ExerciseSession, error)
}

type TemplatesRepositoryI interface {
	// Creates template with its exercise list in one transaction
	Create(ctx context.Context, template *entity.WorkoutTemplate) (uuid.UUID, error)
	// Searches template with given id, exercise list included
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutTemplate, error)
	// Lists templates owned by user
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutTemplate, error)
	// Deletes template with id
	Delete(ctx context.Context, id uuid.UUID) error
}

// Cursor marks the last seen workout for keyset pagination.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
