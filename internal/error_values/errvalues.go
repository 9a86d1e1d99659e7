package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrWrongOwner    = errors.New("entity has different owner")
	ErrOwnerNotFound = errors.New("owner doesn't exists")

	ErrCategoryExists   = errors.New("category with such name already exists")
	ErrCategoryNotFound = errors.New("category doesn't exists")
	ErrExerciseNotFound = errors.New("exercise doesn't exists")

	ErrWorkoutNotFound  = errors.New("workout doesn't exists")
	ErrWorkoutCompleted = errors.New("workout is already completed")
	ErrTemplateNotFound = errors.New("template doesn't exists")
)
