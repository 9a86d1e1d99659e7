package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/veldrin/ironlog/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateCategoryRequest struct {
	Name string              `validate:"required,min=1,max=100"`
	Type entity.CategoryType `validate:"required,oneof=AEROBIC STRENGTH"`
}

type CreateExerciseRequest struct {
	CategoryID uuid.UUID `validate:"required"`
	Name       string    `validate:"required,min=1,max=150"`
}

type CreateTemplateRequest struct {
	Name        string      `validate:"required,min=1,max=100"`
	ExerciseIDs []uuid.UUID `validate:"required,min=1"`
}

type PaginationOpts struct {
	Limit  int
	Cursor string
}

// SeedResult carries the suggested blank sets for a fresh session plus the
// last completed session offered as quick-fill values.
type SeedResult struct {
	Sets        []entity.SetDraft       `json:"sets"`
	LastSession *entity.ExerciseSession `json:"last_session,omitempty"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CatalogServiceI interface {
	CreateCategory(ctx context.Context, uid uuid.UUID, req *CreateCategoryRequest) (*entity.ExerciseCategory, error)
	CreateExercise(ctx context.Context, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error)
	RenameExercise(ctx context.Context, exerciseID, uid uuid.UUID, name string) (*entity.Exercise, error)
	// All categories of the user with their exercises and each exercise's
	// last completed session
	AllByCategory(ctx context.Context, uid uuid.UUID) ([]*entity.CategoryWithExercises, error)
	ExerciseHistory(ctx context.Context, exerciseID, uid uuid.UUID, limit int) ([]*entity.ExerciseSession, error)
	// Suggested set list for adding the exercise to a session. Sets already
	// entered in the caller's draft are kept and only padded with blanks
	SeedExercise(ctx context.Context, exerciseID, uid uuid.UUID, entered []entity.SetDraft) (*SeedResult, error)
}

type WorkoutServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, name string) (*entity.Workout, error)
	Get(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, error)
	// Workout together with its full exercise/set composition
	GetSession(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, []*entity.WorkoutExercise, error)
	List(ctx context.Context, uid uuid.UUID, opts PaginationOpts) ([]*entity.Workout, string, error)
	Rename(ctx context.Context, workoutID, uid uuid.UUID, name string) (*entity.Workout, error)
	Delete(ctx context.Context, workoutID, uid uuid.UUID) error
	// Autosave path: replaces the composition unless the workout is DONE, in
	// which case it reports applied=false without error
	PartialSave(ctx context.Context, workoutID, uid uuid.UUID, desired []entity.ExerciseDraft) (bool, error)
	// Finalize path: replaces the composition and completes the workout;
	// errors with ErrWorkoutCompleted when it is DONE already
	GetItDone(ctx context.Context, workoutID, uid uuid.UUID, desired []entity.ExerciseDraft) (*entity.Workout, error)
	StartFromTemplate(ctx context.Context, templateID, uid uuid.UUID) (*entity.Workout, error)
	// Creates a fresh drafted workout carrying the exercise list of a past
	// one, sets not included
	DoItAgain(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, error)
}

type TemplateServiceI interface {
	All(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutTemplate, error)
	Create(ctx context.Context, uid uuid.UUID, req *CreateTemplateRequest) (*entity.WorkoutTemplate, error)
	Delete(ctx context.Context, templateID, uid uuid.UUID) error
}
