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

type TemplateService struct {
	templatesRepo repository.TemplatesRepositoryI
}

func NewTemplateService(templatesRepo repository.TemplatesRepositoryI) *TemplateService {
	if templatesRepo == nil {
		log.Fatal("on template service provided nil repo")
	}
	return &TemplateService{
		templatesRepo: templatesRepo,
	}
}

func (ts *TemplateService) All(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutTemplate, error) {
	templates, err := ts.templatesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return templates, nil
}

func (ts *TemplateService) Create(ctx context.Context, uid uuid.UUID, req *CreateTemplateRequest) (*entity.WorkoutTemplate, error) {
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
	template := entity.WorkoutTemplate{
		UserID: uid,
		Name:   req.Name,
	}
	for _, exerciseID := range req.ExerciseIDs {
		template.Exercises = append(template.Exercises, entity.TemplateExercise{ExerciseID: exerciseID})
	}
	id, err := ts.templatesRepo.Create(ctx, &template)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	created, err := ts.templatesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return created, nil
}

func (ts *TemplateService) Delete(ctx context.Context, templateID, uid uuid.UUID) error {
	template, err := ts.templatesRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return errors.New("templates repository error: " + err.Error())
	}
	if template.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ts.templatesRepo.Delete(ctx, templateID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return errors.New("templates repository error: " + err.Error())
	}
	return nil
}
