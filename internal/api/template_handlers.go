package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/pkg/httputil"
)

type CreateTemplateRequest struct {
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exercise_ids"`
}

func (s *Server) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get templates error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	templates, err := s.templateService.All(ctx, uid)
	if err != nil {
		logger.Error("getting templates error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting templates", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"templates": templates})
	logger.Info("templates provided")
}

func (s *Server) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create template error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTemplateRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create template error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	exerciseIDs := make([]uuid.UUID, 0, len(req.ExerciseIDs))
	for _, raw := range req.ExerciseIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("create template error: invalid exercise id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id", nil)
			return
		}
		exerciseIDs = append(exerciseIDs, id)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	template, err := s.templateService.Create(ctx, uid, &service.CreateTemplateRequest{
		Name:        req.Name,
		ExerciseIDs: exerciseIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create template error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("create template error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create template error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create template error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating template", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, template)
	logger.Info("template created")
}

func (s *Server) StartTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start template error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("start template error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.StartFromTemplate(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTemplateNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("start template error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("start template error: unexist exercise in template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("start template error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting template", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout started from template")
}

func (s *Server) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("template deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("template deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.templateService.Delete(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTemplateNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("template deletion error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
		default:
			logger.Error("template deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting template", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("template deleted")
}
