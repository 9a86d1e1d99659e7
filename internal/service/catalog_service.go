package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/repository"
	"github.com/veldrin/ironlog/pkg/entity"
)

type CatalogService struct {
	catalogRepo  repository.CatalogRepositoryI
	workoutsRepo repository.WorkoutsRepositoryI
}

func NewCatalogService(catalogRepo repository.CatalogRepositoryI, workoutsRepo repository.WorkoutsRepositoryI) *CatalogService {
	if catalogRepo == nil || workoutsRepo == nil {
		log.Fatal("on catalog service provided nil repos")
	}
	return &CatalogService{
		catalogRepo:  catalogRepo,
		workoutsRepo: workoutsRepo,
	}
}

func (cs *CatalogService) CreateCategory(ctx context.Context, uid uuid.UUID, req *CreateCategoryRequest) (*entity.ExerciseCategory, error) {
	if err := validateStruct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := error(errorvalues.ErrValidation)
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	category := entity.ExerciseCategory{
		UserID: uid,
		Name:   req.Name,
		Type:   req.Type,
	}
	id, err := cs.catalogRepo.CreateCategory(ctx, &category)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCategoryExists):
			return nil, err
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	category.ID = id
	return &category, nil
}

func (cs *CatalogService) CreateExercise(ctx context.Context, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := error(errorvalues.ErrValidation)
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	id, err := cs.catalogRepo.CreateExercise(ctx, &entity.Exercise{
		UserID:     uid,
		CategoryID: req.CategoryID,
		Name:       req.Name,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	exercise, err := cs.catalogRepo.GetExerciseByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	return exercise, nil
}

func (cs *CatalogService) RenameExercise(ctx context.Context, exerciseID, uid uuid.UUID, name string) (*entity.Exercise, error) {
	exercise, err := cs.ownedExercise(ctx, exerciseID, uid)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("exercise name is empty"))
	}
	err = cs.catalogRepo.UpdateExerciseName(ctx, exerciseID, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	exercise.Name = name
	return exercise, nil
}

// AllByCategory assembles the user's whole catalog: categories, their
// exercises and each exercise's most recent completed session.
func (cs *CatalogService) AllByCategory(ctx context.Context, uid uuid.UUID) ([]*entity.CategoryWithExercises, error) {
	categories, err := cs.catalogRepo.GetCategoriesByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	exercises, err := cs.catalogRepo.GetExercisesByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	byCategory := make(map[uuid.UUID]*entity.CategoryWithExercises, len(categories))
	result := make([]*entity.CategoryWithExercises, 0, len(categories))
	for _, c := range categories {
		cwe := entity.CategoryWithExercises{
			ExerciseCategory: *c,
			Exercises:        make([]entity.ExerciseOverview, 0),
		}
		byCategory[c.ID] = &cwe
		result = append(result, &cwe)
	}
	for _, e := range exercises {
		cwe, ok := byCategory[e.CategoryID]
		if !ok {
			continue
		}
		last, err := cs.workoutsRepo.LastSession(ctx, e.ID, uid)
		if err != nil {
			return nil, errors.New("workouts repository error: " + err.Error())
		}
		cwe.Exercises = append(cwe.Exercises, entity.ExerciseOverview{
			Exercise:    *e,
			LastSession: last,
		})
	}
	return result, nil
}

func (cs *CatalogService) ExerciseHistory(ctx context.Context, exerciseID, uid uuid.UUID, limit int) ([]*entity.ExerciseSession, error) {
	if _, err := cs.ownedExercise(ctx, exerciseID, uid); err != nil {
		return nil, err
	}
	sessions, err := cs.workoutsRepo.History(ctx, exerciseID, uid, limit)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return sessions, nil
}

// SeedExercise proposes the set list for adding the exercise to a session:
// one blank set for aerobic exercises, the last session's set count for
// strength. Sets the caller already entered stay in place; blanks are only
// appended on top of them, never cut.
func (cs *CatalogService) SeedExercise(ctx context.Context, exerciseID, uid uuid.UUID, entered []entity.SetDraft) (*SeedResult, error) {
	exercise, err := cs.ownedExercise(ctx, exerciseID, uid)
	if err != nil {
		return nil, err
	}
	last, err := cs.workoutsRepo.LastSession(ctx, exerciseID, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return &SeedResult{
		Sets:        PadSets(entered, len(SeedSets(exercise.Type, last))),
		LastSession: last,
	}, nil
}

func (cs *CatalogService) ownedExercise(ctx context.Context, exerciseID, uid uuid.UUID) (*entity.Exercise, error) {
	exercise, err := cs.catalogRepo.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	if exercise.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return exercise, nil
}
