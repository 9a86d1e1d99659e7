package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/repository/mocks"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/pkg/entity"
)

func TestSeedSets(t *testing.T) {
	threeSets := &entity.ExerciseSession{
		Sets: []entity.WorkoutSet{
			{SetIndex: 0, Lbs: 225, Reps: 5},
			{SetIndex: 1, Lbs: 225, Reps: 5},
			{SetIndex: 2, Lbs: 235, Reps: 3},
		},
	}
	oneSet := &entity.ExerciseSession{
		Sets: []entity.WorkoutSet{{SetIndex: 0, Mins: 25}},
	}
	t.Run("aerobic always gets one blank set", func(t *testing.T) {
		assert.Len(t, service.SeedSets(entity.CategoryAerobic, nil), 1)
		assert.Len(t, service.SeedSets(entity.CategoryAerobic, threeSets), 1)
	})
	t.Run("strength mirrors last session's set count", func(t *testing.T) {
		sets := service.SeedSets(entity.CategoryStrength, threeSets)
		assert.Len(t, sets, 3)
		assert.Equal(t, entity.SetDraft{}, sets[0])
	})
	t.Run("strength without history gets one blank set", func(t *testing.T) {
		assert.Len(t, service.SeedSets(entity.CategoryStrength, nil), 1)
		assert.Len(t, service.SeedSets(entity.CategoryStrength, oneSet), 1)
	})
}

func TestPadSets(t *testing.T) {
	entered := []entity.SetDraft{{Lbs: 135, Reps: 10}, {Lbs: 155, Reps: 8}}
	t.Run("pads up to target with blanks", func(t *testing.T) {
		padded := service.PadSets(entered, 4)
		assert.Len(t, padded, 4)
		assert.Equal(t, 135.0, padded[0].Lbs)
		assert.Equal(t, entity.SetDraft{}, padded[3])
	})
	t.Run("never truncates entered sets", func(t *testing.T) {
		assert.Len(t, service.PadSets(entered, 1), 2)
	})
}

func TestSeedExercise(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)

	serv := service.NewCatalogService(catalogRepo, workoutsRepo)
	exerciseID := uuid.New()
	userID := uuid.New()
	strength := entity.Exercise{
		ID:     exerciseID,
		UserID: userID,
		Name:   "back squat",
		Type:   entity.CategoryStrength,
	}
	t.Run("strength with history mirrors set count and offers last session", func(t *testing.T) {
		last := &entity.ExerciseSession{
			WorkoutID: uuid.New(),
			Sets: []entity.WorkoutSet{
				{SetIndex: 0, Lbs: 225, Reps: 5},
				{SetIndex: 1, Lbs: 235, Reps: 3},
			},
		}
		catalogRepo.EXPECT().GetExerciseByID(gomock.Any(), exerciseID).Return(&strength, nil)
		workoutsRepo.EXPECT().LastSession(gomock.Any(), exerciseID, userID).Return(last, nil)
		seed, err := serv.SeedExercise(context.Background(), exerciseID, userID, nil)
		assert.NoError(t, err)
		assert.Len(t, seed.Sets, 2)
		assert.Equal(t, last, seed.LastSession)
	})
	t.Run("no history yields a single blank set", func(t *testing.T) {
		catalogRepo.EXPECT().GetExerciseByID(gomock.Any(), exerciseID).Return(&strength, nil)
		workoutsRepo.EXPECT().LastSession(gomock.Any(), exerciseID, userID).Return(nil, nil)
		seed, err := serv.SeedExercise(context.Background(), exerciseID, userID, nil)
		assert.NoError(t, err)
		assert.Len(t, seed.Sets, 1)
		assert.Nil(t, seed.LastSession)
	})
	t.Run("entered sets survive and only blanks are appended", func(t *testing.T) {
		last := &entity.ExerciseSession{
			WorkoutID: uuid.New(),
			Sets: []entity.WorkoutSet{
				{SetIndex: 0, Lbs: 225, Reps: 5},
				{SetIndex: 1, Lbs: 225, Reps: 5},
				{SetIndex: 2, Lbs: 235, Reps: 3},
			},
		}
		catalogRepo.EXPECT().GetExerciseByID(gomock.Any(), exerciseID).Return(&strength, nil)
		workoutsRepo.EXPECT().LastSession(gomock.Any(), exerciseID, userID).Return(last, nil)
		seed, err := serv.SeedExercise(context.Background(), exerciseID, userID, []entity.SetDraft{{Lbs: 245, Reps: 1}})
		assert.NoError(t, err)
		assert.Len(t, seed.Sets, 3)
		assert.Equal(t, 245.0, seed.Sets[0].Lbs)
		assert.Equal(t, entity.SetDraft{}, seed.Sets[1])
	})
	t.Run("more entered sets than history keeps them all", func(t *testing.T) {
		last := &entity.ExerciseSession{
			WorkoutID: uuid.New(),
			Sets:      []entity.WorkoutSet{{SetIndex: 0, Lbs: 225, Reps: 5}},
		}
		entered := []entity.SetDraft{{Lbs: 135, Reps: 10}, {Lbs: 155, Reps: 8}}
		catalogRepo.EXPECT().GetExerciseByID(gomock.Any(), exerciseID).Return(&strength, nil)
		workoutsRepo.EXPECT().LastSession(gomock.Any(), exerciseID, userID).Return(last, nil)
		seed, err := serv.SeedExercise(context.Background(), exerciseID, userID, entered)
		assert.NoError(t, err)
		assert.Len(t, seed.Sets, 2)
		assert.Equal(t, entered, seed.Sets)
	})
	t.Run("error on foreign exercise", func(t *testing.T) {
		catalogRepo.EXPECT().GetExerciseByID(gomock.Any(), exerciseID).Return(&entity.Exercise{
			ID:     exerciseID,
			UserID: uuid.New(),
			Type:   entity.CategoryStrength,
		}, nil)
		_, err := serv.SeedExercise(context.Background(), exerciseID, userID, nil)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
