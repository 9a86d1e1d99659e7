package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/veldrin/ironlog/internal/draft"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/pkg/entity"
	"github.com/veldrin/ironlog/pkg/httputil"
)

type CreateWorkoutRequest struct {
	Name string `json:"name"`
}

type SaveWorkoutRequest struct {
	Exercises []entity.ExerciseDraft `json:"exercises"`
}

type SaveDraftRequest struct {
	UpdatedAt time.Time              `json:"updated_at"`
	Exercises []entity.ExerciseDraft `json:"exercises"`
}

type GetWorkoutsResponse struct {
	Workouts   []*entity.Workout `json:"workouts"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type SessionResponse struct {
	Workout   *entity.Workout           `json:"workout"`
	Exercises []*entity.WorkoutExercise `json:"exercises"`
	Draft     *draft.Snapshot           `json:"draft,omitempty"`
	Source    string                    `json:"source"`
}

func (s *Server) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.Create(ctx, uid, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create workout error: invalid name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout created")
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	workouts, next, err := s.workoutService.List(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Cursor: r.URL.Query().Get("cursor"),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("get workouts error: malformed cursor")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid cursor", nil)
			return
		}
		logger.Error("getting workouts list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
		Workouts:   workouts,
		NextCursor: next,
	})
	logger.Info("workouts provided")
}

func (s *Server) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.Get(ctx, id, uid)
	if err != nil {
		s.writeWorkoutError(w, logger, "get workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout provided")
}

func (s *Server) RenameWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("rename workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("rename workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req RenameRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("rename workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.Rename(ctx, id, uid, req.Name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("rename workout error: invalid name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		s.writeWorkoutError(w, logger, "rename workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout renamed")
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.workoutService.Delete(ctx, id, uid)
	if err != nil {
		s.writeWorkoutError(w, logger, "workout deletion", err)
		return
	}
	s.drafts.Drop(uid, id)
	httputil.WriteNoContent(w)
	logger.Info("workout deleted")
}

// SaveWorkout is the autosave endpoint: the request carries the full desired
// composition and fully replaces the stored one. Saving into a completed
// workout answers applied=false instead of failing, so a stale autosave
// retry after finalize stays harmless.
func (s *Server) SaveWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout save error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout save error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req SaveWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("workout save error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	applied, err := s.workoutService.PartialSave(ctx, id, uid, req.Exercises)
	if err != nil {
		s.writeWorkoutError(w, logger, "workout save", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"applied": applied})
	logger.Info("workout saved", slog.Bool("applied", applied))
}

func (s *Server) FinishWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout finish error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout finish error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req SaveWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("workout finish error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.GetItDone(ctx, id, uid, req.Exercises)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutCompleted) {
			logger.Error("workout finish error: already completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "workout is already completed", nil)
			return
		}
		s.writeWorkoutError(w, logger, "workout finish", err)
		return
	}
	s.drafts.Drop(uid, id)
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout completed")
}

// GetSession returns the workout with its full composition. For a drafted
// workout a stored client draft is weighed in: when the draft is strictly
// fresher than the server state it is attached and source flips to local.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	workout, composition, err := s.workoutService.GetSession(ctx, id, uid)
	if err != nil {
		s.writeWorkoutError(w, logger, "get session", err)
		return
	}
	resp := SessionResponse{
		Workout:   workout,
		Exercises: composition,
		Source:    "server",
	}
	if workout.Status == entity.StatusDrafted {
		local, err := s.drafts.Load(uid, id)
		if err != nil {
			logger.Error("get session error: draft cache failure", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading draft", nil)
			return
		}
		server := &draft.Snapshot{
			UpdatedAt: workout.UpdatedAt,
			Exercises: compositionDrafts(composition),
		}
		if resolved := draft.Resolve(local, server); resolved == local && local != nil {
			resp.Draft = local
			resp.Source = "local"
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("session provided", slog.String("source", resp.Source))
}

func (s *Server) SaveDraft(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("draft save error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("draft save error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req SaveDraftRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.UpdatedAt.IsZero() {
		logger.Error("draft save error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if _, err = s.workoutService.Get(ctx, id, uid); err != nil {
		s.writeWorkoutError(w, logger, "draft save", err)
		return
	}
	err = s.drafts.Save(uid, id, &draft.Snapshot{
		UpdatedAt: req.UpdatedAt,
		Exercises: req.Exercises,
	})
	if err != nil {
		logger.Error("draft save error: cache failure", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving draft", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("draft saved")
}

func (s *Server) RepeatWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout repeat error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout repeat error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.DoItAgain(ctx, id, uid)
	if err != nil {
		s.writeWorkoutError(w, logger, "workout repeat", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout repeated")
}

func (s *Server) writeWorkoutError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: unexist workout")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrExerciseNotFound):
		logger.Error(op + " error: unexist exercise in composition")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func compositionDrafts(composition []*entity.WorkoutExercise) []entity.ExerciseDraft {
	drafts := make([]entity.ExerciseDraft, 0, len(composition))
	for _, ex := range composition {
		d := entity.ExerciseDraft{
			ExerciseID: ex.ExerciseID,
			Notes:      ex.Notes,
		}
		for _, set := range ex.Sets {
			d.Sets = append(d.Sets, entity.SetDraft{
				Mins:     set.Mins,
				Distance: set.Distance,
				Kcal:     set.Kcal,
				Lbs:      set.Lbs,
				Reps:     set.Reps,
			})
		}
		drafts = append(drafts, d)
	}
	return drafts
}
