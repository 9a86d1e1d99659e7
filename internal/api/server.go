package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veldrin/ironlog/internal/draft"
	"github.com/veldrin/ironlog/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	catalogService  service.CatalogServiceI
	workoutService  service.WorkoutServiceI
	templateService service.TemplateServiceI
	jwtService      JWTServiceI
	drafts          *draft.Cache
}

type ServicesList struct {
	UserService     service.UserServiceI
	CatalogService  service.CatalogServiceI
	WorkoutService  service.WorkoutServiceI
	TemplateService service.TemplateServiceI
	JwtService      JWTServiceI
	Drafts          *draft.Cache
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		catalogService:  servicesOptions.CatalogService,
		workoutService:  servicesOptions.WorkoutService,
		templateService: servicesOptions.TemplateService,
		jwtService:      servicesOptions.JwtService,
		drafts:          servicesOptions.Drafts,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
				r.Delete("/account", s.DeleteAccount)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.GetCategories)
				r.Post("/", s.CreateCategory)
			})
			r.Route("/exercises", func(r chi.Router) {
				r.Post("/", s.CreateExercise)
				r.Patch("/{id}", s.RenameExercise)
				r.Get("/{id}/history", s.GetExerciseHistory)
				r.Post("/{id}/seed", s.SeedExercise)
			})
			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", s.GetWorkouts)
				r.Post("/", s.CreateWorkout)
				r.Get("/{id}", s.GetWorkout)
				r.Patch("/{id}", s.RenameWorkout)
				r.Delete("/{id}", s.DeleteWorkout)
				r.Put("/{id}/save", s.SaveWorkout)
				r.Post("/{id}/done", s.FinishWorkout)
				r.Get("/{id}/session", s.GetSession)
				r.Put("/{id}/draft", s.SaveDraft)
				r.Post("/{id}/again", s.RepeatWorkout)
			})
			r.Route("/templates", func(r chi.Router) {
				r.Get("/", s.GetTemplates)
				r.Post("/", s.CreateTemplate)
				r.Post("/{id}/start", s.StartTemplate)
				r.Delete("/{id}", s.DeleteTemplate)
			})
		})
	})
	return http.ListenAndServe(address, s.mx)
}
