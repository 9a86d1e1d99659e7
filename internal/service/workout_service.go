package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/repository"
	"github.com/veldrin/ironlog/pkg/entity"
)

type WorkoutService struct {
	workoutsRepo  repository.WorkoutsRepositoryI
	templatesRepo repository.TemplatesRepositoryI
}

func NewWorkoutService(workoutsRepo repository.WorkoutsRepositoryI, templatesRepo repository.TemplatesRepositoryI) *WorkoutService {
	if workoutsRepo == nil || templatesRepo == nil {
		log.Fatal("on workout service provided nil repos")
	}
	return &WorkoutService{
		workoutsRepo:  workoutsRepo,
		templatesRepo: templatesRepo,
	}
}

func (ws *WorkoutService) Create(ctx context.Context, uid uuid.UUID, name string) (*entity.Workout, error) {
	if name == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("workout name is empty"))
	}
	id, err := ws.workoutsRepo.Create(ctx, &entity.Workout{
		UserID: uid,
		Name:   name,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return ws.ownedWorkout(ctx, id, uid)
}

func (ws *WorkoutService) Get(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, error) {
	return ws.ownedWorkout(ctx, workoutID, uid)
}

func (ws *WorkoutService) GetSession(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, []*entity.WorkoutExercise, error) {
	workout, err := ws.ownedWorkout(ctx, workoutID, uid)
	if err != nil {
		return nil, nil, err
	}
	composition, err := ws.workoutsRepo.GetComposition(ctx, workoutID)
	if err != nil {
		return nil, nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, composition, nil
}

func (ws *WorkoutService) List(ctx context.Context, uid uuid.UUID, opts PaginationOpts) ([]*entity.Workout, string, error) {
	cursor, err := repository.DecodeCursor(opts.Cursor)
	if err != nil {
		return nil, "", errors.Join(errorvalues.ErrValidation, err)
	}
	workouts, next, err := ws.workoutsRepo.List(ctx, uid, cursor, opts.Limit)
	if err != nil {
		return nil, "", errors.New("workouts repository error: " + err.Error())
	}
	return workouts, repository.EncodeCursor(next), nil
}

func (ws *WorkoutService) Rename(ctx context.Context, workoutID, uid uuid.UUID, name string) (*entity.Workout, error) {
	workout, err := ws.ownedWorkout(ctx, workoutID, uid)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("workout name is empty"))
	}
	err = ws.workoutsRepo.UpdateName(ctx, workoutID, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	workout.Name = name
	return workout, nil
}

func (ws *WorkoutService) Delete(ctx context.Context, workoutID, uid uuid.UUID) error {
	if _, err := ws.ownedWorkout(ctx, workoutID, uid); err != nil {
		return err
	}
	err := ws.workoutsRepo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	return nil
}

// PartialSave is the autosave path. A workout that is already DONE makes the
// call a harmless no-op (applied=false), including the race where finalize
// lands between our ownership check and the replace transaction.
func (ws *WorkoutService) PartialSave(ctx context.Context, workoutID, uid uuid.UUID, desired []entity.ExerciseDraft) (bool, error) {
	workout, err := ws.ownedWorkout(ctx, workoutID, uid)
	if err != nil {
		return false, err
	}
	if workout.Status == entity.StatusDone {
		return false, nil
	}
	err = ws.workoutsRepo.Replace(ctx, workoutID, uid, desired, false, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutCompleted):
			return false, nil
		case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrExerciseNotFound):
			return false, err
		}
		return false, errors.New("workouts repository error: " + err.Error())
	}
	return true, nil
}

// GetItDone commits the session: the composition is replaced one last time
// and the workout transitions to DONE. Completing a completed workout is an
// error the user should see.
func (ws *WorkoutService) GetItDone(ctx context.Context, workoutID, uid uuid.UUID, desired []entity.ExerciseDraft) (*entity.Workout, error) {
	workout, err := ws.ownedWorkout(ctx, workoutID, uid)
	if err != nil {
		return nil, err
	}
	if workout.Status == entity.StatusDone {
		return nil, errorvalues.ErrWorkoutCompleted
	}
	err = ws.workoutsRepo.Replace(ctx, workoutID, uid, desired, true, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutCompleted),
			errors.Is(err, errorvalues.ErrWorkoutNotFound),
			errors.Is(err, errorvalues.ErrExerciseNotFound):
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return ws.ownedWorkout(ctx, workoutID, uid)
}

func (ws *WorkoutService) StartFromTemplate(ctx context.Context, templateID, uid uuid.UUID) (*entity.Workout, error) {
	template, err := ws.templatesRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	if template.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	exerciseIDs := make([]uuid.UUID, 0, len(template.Exercises))
	for _, ex := range template.Exercises {
		exerciseIDs = append(exerciseIDs, ex.ExerciseID)
	}
	return ws.startWith(ctx, uid, template.Name, exerciseIDs)
}

func (ws *WorkoutService) DoItAgain(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, error) {
	source, err := ws.ownedWorkout(ctx, workoutID, uid)
	if err != nil {
		return nil, err
	}
	composition, err := ws.workoutsRepo.GetComposition(ctx, workoutID)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	exerciseIDs := make([]uuid.UUID, 0, len(composition))
	for _, ex := range composition {
		exerciseIDs = append(exerciseIDs, ex.ExerciseID)
	}
	return ws.startWith(ctx, uid, source.Name, exerciseIDs)
}

func (ws *WorkoutService) startWith(ctx context.Context, uid uuid.UUID, name string, exerciseIDs []uuid.UUID) (*entity.Workout, error) {
	id, err := ws.workoutsRepo.Create(ctx, &entity.Workout{
		UserID: uid,
		Name:   name,
	})
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	if len(exerciseIDs) > 0 {
		if err = ws.workoutsRepo.SeedExercises(ctx, id, uid, exerciseIDs); err != nil {
			if errors.Is(err, errorvalues.ErrExerciseNotFound) {
				return nil, err
			}
			return nil, errors.New("workouts repository error: " + err.Error())
		}
	}
	return ws.ownedWorkout(ctx, id, uid)
}

func (ws *WorkoutService) ownedWorkout(ctx context.Context, workoutID, uid uuid.UUID) (*entity.Workout, error) {
	workout, err := ws.workoutsRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	if workout.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return workout, nil
}
