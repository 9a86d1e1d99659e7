package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/pkg/entity"
	"github.com/veldrin/ironlog/pkg/httputil"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateExerciseRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type SeedExerciseRequest struct {
	Sets []entity.SetDraft `json:"sets"`
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get categories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	categories, err := s.catalogService.AllByCategory(ctx, uid)
	if err != nil {
		logger.Error("getting categories error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting categories", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"categories": categories})
	logger.Info("categories provided")
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create category error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateCategoryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create category error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	category, err := s.catalogService.CreateCategory(ctx, uid, &service.CreateCategoryRequest{
		Name: req.Name,
		Type: entity.CategoryType(req.Type),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCategoryExists):
			logger.Error("create category error: duplicate name")
			httputil.WriteErrorResponse(w, http.StatusConflict, "category with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create category error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create category error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create category error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating category", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, category)
	logger.Info("category created")
}

func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateExerciseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		logger.Error("create exercise error: invalid category id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.catalogService.CreateExercise(ctx, uid, &service.CreateExerciseRequest{
		CategoryID: categoryID,
		Name:       req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCategoryNotFound):
			logger.Error("create exercise error: unexist category")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create exercise error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("create exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, exercise)
	logger.Info("exercise created")
}

func (s *Server) RenameExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("rename exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("rename exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	var req RenameRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("rename exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.catalogService.RenameExercise(ctx, id, uid, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("rename exercise error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("rename exercise error: invalid name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("rename exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while renaming exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
	logger.Info("exercise renamed")
}

func (s *Server) GetExerciseHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("exercise history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("exercise history error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	sessions, err := s.catalogService.ExerciseHistory(ctx, id, uid, limit)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("exercise history error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("exercise history error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting history", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"sessions": sessions})
	logger.Info("exercise history provided")
}

func (s *Server) SeedExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("exercise seed error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("exercise seed error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	// body is optional: an empty one means the draft holds no sets yet
	var req SeedExerciseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("exercise seed error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	seed, err := s.catalogService.SeedExercise(ctx, id, uid, req.Sets)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("exercise seed error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("exercise seed error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while seeding exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, seed)
	logger.Info("exercise seed provided")
}
