package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veldrin/ironlog/internal/api"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/internal/service/mocks"
	"github.com/veldrin/ironlog/pkg/entity"
)

func TestGetCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				cService.EXPECT().AllByCategory(gomock.Any(), userID).Return([]*entity.CategoryWithExercises{
					{
						ExerciseCategory: entity.ExerciseCategory{
							ID:     uuid.New(),
							UserID: userID,
							Name:   "legs",
							Type:   entity.CategoryStrength,
						},
					},
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().AllByCategory(gomock.Any(), userID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetCategories(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.CreateCategoryRequest{
		Name: "legs",
		Type: "STRENGTH",
	})
	require.NoError(t, err)
	categoryID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().CreateCategory(gomock.Any(), userID, &service.CreateCategoryRequest{
					Name: "legs",
					Type: entity.CategoryStrength,
				}).Return(&entity.ExerciseCategory{
					ID:     categoryID,
					UserID: userID,
					Name:   "legs",
					Type:   entity.CategoryStrength,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().CreateCategory(gomock.Any(), userID, gomock.Any()).
					Return(nil, errorvalues.ErrCategoryExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().CreateCategory(gomock.Any(), userID, gomock.Any()).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("invalid category type")))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().CreateCategory(gomock.Any(), userID, gomock.Any()).
					Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/categories", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateCategory(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCreateExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	categoryID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.CreateExerciseRequest{
		CategoryID: categoryID.String(),
		Name:       "back squat",
	})
	require.NoError(t, err)
	badCategory, err := sonic.ConfigDefault.Marshal(api.CreateExerciseRequest{
		CategoryID: "not-an-id",
		Name:       "back squat",
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().CreateExercise(gomock.Any(), userID, &service.CreateExerciseRequest{
					CategoryID: categoryID,
					Name:       "back squat",
				}).Return(&entity.Exercise{
					ID:         uuid.New(),
					UserID:     userID,
					CategoryID: categoryID,
					Name:       "back squat",
					Type:       entity.CategoryStrength,
					CreatedAt:  time.Now(),
					UpdatedAt:  time.Now(),
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().CreateExercise(gomock.Any(), userID, gomock.Any()).
					Return(nil, errorvalues.ErrCategoryNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader(badCategory),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateExercise(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRenameExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	exerciseID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.RenameRequest{Name: "front squat"})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				cService.EXPECT().RenameExercise(gomock.Any(), exerciseID, userID, "front squat").
					Return(&entity.Exercise{
						ID:     exerciseID,
						UserID: userID,
						Name:   "front squat",
						Type:   entity.CategoryStrength,
					}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().RenameExercise(gomock.Any(), exerciseID, userID, "front squat").
					Return(nil, errorvalues.ErrWrongOwner)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().RenameExercise(gomock.Any(), exerciseID, userID, "front squat").
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("exercise name is empty")))
			},
			Body: bytes.NewReader(body),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/exercises/"+exerciseID.String(), tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", exerciseID.String())
		serv.RenameExercise(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetExerciseHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	exerciseID := uuid.New()
	sessions := []*entity.ExerciseSession{
		{WorkoutID: uuid.New(), WorkoutName: "leg day", CompletedAt: time.Now()},
		{WorkoutID: uuid.New(), WorkoutName: "leg day", CompletedAt: time.Now().Add(-time.Hour)},
	}
	testCases := []struct {
		ExpectedCode int
		Limit        string
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			Limit:        "7",
			MockPrepFunc: func() {
				cService.EXPECT().ExerciseHistory(gomock.Any(), exerciseID, userID, 7).Return(sessions, nil)
			},
		},
		{
			// absent limit falls back to the default
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				cService.EXPECT().ExerciseHistory(gomock.Any(), exerciseID, userID, 10).Return(sessions, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().ExerciseHistory(gomock.Any(), exerciseID, userID, 10).
					Return(nil, errorvalues.ErrExerciseNotFound)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/"+exerciseID.String()+"/history", nil)
		if tc.Limit != "" {
			q := r.URL.Query()
			q.Add("limit", tc.Limit)
			r.URL.RawQuery = q.Encode()
		}
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", exerciseID.String())
		serv.GetExerciseHistory(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestSeedExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	exerciseID := uuid.New()
	t.Run("seed provided without a body", func(t *testing.T) {
		cService.EXPECT().SeedExercise(gomock.Any(), exerciseID, userID, gomock.Nil()).Return(&service.SeedResult{
			Sets: []entity.SetDraft{{}, {}, {}},
			LastSession: &entity.ExerciseSession{
				WorkoutID:   uuid.New(),
				CompletedAt: time.Now(),
				Sets:        []entity.WorkoutSet{{Lbs: 225, Reps: 5}},
			},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/"+exerciseID.String()+"/seed", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", exerciseID.String())
		serv.SeedExercise(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var seed service.SeedResult
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&seed)
		require.NoError(t, err)
		assert.Len(t, seed.Sets, 3)
		assert.NotNil(t, seed.LastSession)
	})
	t.Run("entered sets reach the service and come back padded", func(t *testing.T) {
		entered := []entity.SetDraft{{Lbs: 245, Reps: 1}}
		cService.EXPECT().SeedExercise(gomock.Any(), exerciseID, userID, entered).Return(&service.SeedResult{
			Sets: []entity.SetDraft{{Lbs: 245, Reps: 1}, {}, {}},
		}, nil)
		body, err := sonic.Marshal(api.SeedExerciseRequest{Sets: entered})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/"+exerciseID.String()+"/seed", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", exerciseID.String())
		serv.SeedExercise(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var seed service.SeedResult
		err = sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&seed)
		require.NoError(t, err)
		assert.Len(t, seed.Sets, 3)
		assert.Equal(t, 245.0, seed.Sets[0].Lbs)
	})
	t.Run("unexist exercise", func(t *testing.T) {
		cService.EXPECT().SeedExercise(gomock.Any(), exerciseID, userID, gomock.Nil()).
			Return(nil, errorvalues.ErrExerciseNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/"+exerciseID.String()+"/seed", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", exerciseID.String())
		serv.SeedExercise(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("corrupted body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/"+exerciseID.String()+"/seed", bytes.NewReader([]byte("{corrupted")))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", exerciseID.String())
		serv.SeedExercise(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid id in path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/not-an-id/seed", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", "not-an-id")
		serv.SeedExercise(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}
