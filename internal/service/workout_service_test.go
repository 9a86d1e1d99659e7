package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/repository"
	"github.com/veldrin/ironlog/internal/repository/mocks"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/pkg/entity"
)

func TestPartialSave(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)

	serv := service.NewWorkoutService(workoutsRepo, templatesRepo)
	workoutID := uuid.New()
	userID := uuid.New()
	desired := []entity.ExerciseDraft{
		{ExerciseID: uuid.New(), Sets: []entity.SetDraft{{Lbs: 135, Reps: 10}}},
	}
	drafted := entity.Workout{ID: workoutID, UserID: userID, Name: "push", Status: entity.StatusDrafted}
	done := entity.Workout{ID: workoutID, UserID: userID, Name: "push", Status: entity.StatusDone}
	testCases := []struct {
		Desc         string
		Error        error
		Applied      bool
		MockPrepFunc func()
	}{
		{
			Desc:    "applied on drafted workout",
			Error:   nil,
			Applied: true,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&drafted, nil)
				workoutsRepo.EXPECT().Replace(gomock.Any(), workoutID, userID, desired, false, gomock.Any()).Return(nil)
			},
		},
		{
			Desc:    "no-op on completed workout",
			Error:   nil,
			Applied: false,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&done, nil)
			},
		},
		{
			Desc:    "no-op when finalize wins the race",
			Error:   nil,
			Applied: false,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&drafted, nil)
				workoutsRepo.EXPECT().Replace(gomock.Any(), workoutID, userID, desired, false, gomock.Any()).Return(errorvalues.ErrWorkoutCompleted)
			},
		},
		{
			Desc:  "error on foreign workout",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&entity.Workout{
					ID:     workoutID,
					UserID: uuid.New(),
					Status: entity.StatusDrafted,
				}, nil)
			},
		},
		{
			Desc:  "error on unexist workout",
			Error: errorvalues.ErrWorkoutNotFound,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(nil, errorvalues.ErrWorkoutNotFound)
			},
		},
		{
			Desc:  "error on unknown or foreign exercise in composition",
			Error: errorvalues.ErrExerciseNotFound,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&drafted, nil)
				workoutsRepo.EXPECT().Replace(gomock.Any(), workoutID, userID, desired, false, gomock.Any()).Return(errorvalues.ErrExerciseNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			applied, err := serv.PartialSave(context.Background(), workoutID, userID, desired)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Applied, applied)
		})
	}
}

func TestGetItDone(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)

	serv := service.NewWorkoutService(workoutsRepo, templatesRepo)
	workoutID := uuid.New()
	userID := uuid.New()
	desired := []entity.ExerciseDraft{
		{ExerciseID: uuid.New(), Sets: []entity.SetDraft{{Mins: 30}}},
	}
	drafted := entity.Workout{ID: workoutID, UserID: userID, Name: "run", Status: entity.StatusDrafted}
	t.Run("finalized", func(t *testing.T) {
		completedAt := time.Now()
		finished := entity.Workout{ID: workoutID, UserID: userID, Name: "run", Status: entity.StatusDone, CompletedAt: &completedAt}
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&drafted, nil)
		workoutsRepo.EXPECT().Replace(gomock.Any(), workoutID, userID, desired, true, gomock.Any()).Return(nil)
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&finished, nil)
		workout, err := serv.GetItDone(context.Background(), workoutID, userID, desired)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusDone, workout.Status)
		assert.NotNil(t, workout.CompletedAt)
	})
	t.Run("error finalizing twice", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&entity.Workout{
			ID:     workoutID,
			UserID: userID,
			Status: entity.StatusDone,
		}, nil)
		_, err := serv.GetItDone(context.Background(), workoutID, userID, desired)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutCompleted)
	})
	t.Run("error when finalize races another finalize", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&drafted, nil)
		workoutsRepo.EXPECT().Replace(gomock.Any(), workoutID, userID, desired, true, gomock.Any()).Return(errorvalues.ErrWorkoutCompleted)
		_, err := serv.GetItDone(context.Background(), workoutID, userID, desired)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutCompleted)
	})
	t.Run("error on foreign workout", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&entity.Workout{
			ID:     workoutID,
			UserID: uuid.New(),
			Status: entity.StatusDrafted,
		}, nil)
		_, err := serv.GetItDone(context.Background(), workoutID, userID, desired)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestListWorkouts(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)

	serv := service.NewWorkoutService(workoutsRepo, templatesRepo)
	userID := uuid.New()
	t.Run("full page returns next token", func(t *testing.T) {
		last := &entity.Workout{ID: uuid.New(), UserID: userID, Name: "pull", CreatedAt: time.Now()}
		workoutsRepo.EXPECT().List(gomock.Any(), userID, gomock.Nil(), 2).Return(
			[]*entity.Workout{{ID: uuid.New(), UserID: userID}, last},
			&repository.Cursor{CreatedAt: last.CreatedAt, ID: last.ID},
			nil,
		)
		workouts, next, err := serv.List(context.Background(), userID, service.PaginationOpts{Limit: 2})
		assert.NoError(t, err)
		assert.Len(t, workouts, 2)
		assert.NotEmpty(t, next)

		decoded, err := repository.DecodeCursor(next)
		assert.NoError(t, err)
		assert.Equal(t, last.ID, decoded.ID)
	})
	t.Run("short page returns no token", func(t *testing.T) {
		workoutsRepo.EXPECT().List(gomock.Any(), userID, gomock.Nil(), 10).Return(
			[]*entity.Workout{{ID: uuid.New(), UserID: userID}}, nil, nil,
		)
		workouts, next, err := serv.List(context.Background(), userID, service.PaginationOpts{Limit: 10})
		assert.NoError(t, err)
		assert.Len(t, workouts, 1)
		assert.Empty(t, next)
	})
	t.Run("error on malformed token", func(t *testing.T) {
		_, _, err := serv.List(context.Background(), userID, service.PaginationOpts{Limit: 10, Cursor: "garbage!!!"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestStartFromTemplate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)

	serv := service.NewWorkoutService(workoutsRepo, templatesRepo)
	templateID := uuid.New()
	userID := uuid.New()
	workoutID := uuid.New()
	squatID := uuid.New()
	rowingID := uuid.New()
	template := entity.WorkoutTemplate{
		ID:     templateID,
		UserID: userID,
		Name:   "push day",
		Exercises: []entity.TemplateExercise{
			{ExerciseID: squatID, ExerciseIndex: 0},
			{ExerciseID: rowingID, ExerciseIndex: 1},
		},
	}
	t.Run("started with seeded exercises in template order", func(t *testing.T) {
		templatesRepo.EXPECT().GetByID(gomock.Any(), templateID).Return(&template, nil)
		workoutsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(workoutID, nil)
		workoutsRepo.EXPECT().SeedExercises(gomock.Any(), workoutID, userID, []uuid.UUID{squatID, rowingID}).Return(nil)
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&entity.Workout{
			ID:     workoutID,
			UserID: userID,
			Name:   template.Name,
			Status: entity.StatusDrafted,
		}, nil)
		workout, err := serv.StartFromTemplate(context.Background(), templateID, userID)
		assert.NoError(t, err)
		assert.Equal(t, template.Name, workout.Name)
		assert.Equal(t, entity.StatusDrafted, workout.Status)
	})
	t.Run("error on foreign template", func(t *testing.T) {
		templatesRepo.EXPECT().GetByID(gomock.Any(), templateID).Return(&entity.WorkoutTemplate{
			ID:     templateID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.StartFromTemplate(context.Background(), templateID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error on unexist template", func(t *testing.T) {
		templatesRepo.EXPECT().GetByID(gomock.Any(), templateID).Return(nil, errorvalues.ErrTemplateNotFound)
		_, err := serv.StartFromTemplate(context.Background(), templateID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrTemplateNotFound)
	})
}

func TestDoItAgain(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)

	serv := service.NewWorkoutService(workoutsRepo, templatesRepo)
	sourceID := uuid.New()
	newID := uuid.New()
	userID := uuid.New()
	squatID := uuid.New()
	rowingID := uuid.New()
	source := entity.Workout{ID: sourceID, UserID: userID, Name: "leg day", Status: entity.StatusDone}
	t.Run("repeats exercises without sets", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), sourceID).Return(&source, nil)
		workoutsRepo.EXPECT().GetComposition(gomock.Any(), sourceID).Return([]*entity.WorkoutExercise{
			{ExerciseID: squatID, ExerciseIndex: 0, Sets: []entity.WorkoutSet{{Lbs: 225, Reps: 5}}},
			{ExerciseID: rowingID, ExerciseIndex: 1},
		}, nil)
		workoutsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil)
		workoutsRepo.EXPECT().SeedExercises(gomock.Any(), newID, userID, []uuid.UUID{squatID, rowingID}).Return(nil)
		workoutsRepo.EXPECT().GetByID(gomock.Any(), newID).Return(&entity.Workout{
			ID:     newID,
			UserID: userID,
			Name:   source.Name,
			Status: entity.StatusDrafted,
		}, nil)
		workout, err := serv.DoItAgain(context.Background(), sourceID, userID)
		assert.NoError(t, err)
		assert.Equal(t, newID, workout.ID)
		assert.Equal(t, entity.StatusDrafted, workout.Status)
	})
	t.Run("error on foreign workout", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), sourceID).Return(&entity.Workout{
			ID:     sourceID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.DoItAgain(context.Background(), sourceID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestRenameWorkout(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)

	serv := service.NewWorkoutService(workoutsRepo, templatesRepo)
	workoutID := uuid.New()
	userID := uuid.New()
	t.Run("renamed", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&entity.Workout{
			ID:     workoutID,
			UserID: userID,
			Name:   "old",
		}, nil)
		workoutsRepo.EXPECT().UpdateName(gomock.Any(), workoutID, "new").Return(nil)
		workout, err := serv.Rename(context.Background(), workoutID, userID, "new")
		assert.NoError(t, err)
		assert.Equal(t, "new", workout.Name)
	})
	t.Run("error on empty name", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(&entity.Workout{
			ID:     workoutID,
			UserID: userID,
			Name:   "old",
		}, nil)
		_, err := serv.Rename(context.Background(), workoutID, userID, "")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("db error", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByID(gomock.Any(), workoutID).Return(nil, errors.New("db error"))
		_, err := serv.Rename(context.Background(), workoutID, userID, "new")
		assert.Error(t, err)
	})
}
