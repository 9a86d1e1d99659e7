// @title Ironlog API
// @description API for personal workout tracker "Ironlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/veldrin/ironlog/internal/api"
	"github.com/veldrin/ironlog/internal/draft"
	"github.com/veldrin/ironlog/internal/repository"
	"github.com/veldrin/ironlog/internal/service"
	"github.com/veldrin/ironlog/pkg/cleanup"
	"github.com/veldrin/ironlog/pkg/config"
	jwtservice "github.com/veldrin/ironlog/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	catalogRepo := repository.NewCatalogRepo(&dbCfg)
	workoutsRepo := repository.NewWorkoutsRepo(&dbCfg)
	templatesRepo := repository.NewTemplatesRepo(&dbCfg)

	jwtTTL, err := time.ParseDuration(cfg.GetStringDefault("JWT_TTL", "12h"))
	if err != nil {
		log.Fatal("invalid JWT_TTL value: " + err.Error())
	}
	draftCacheSize, err := strconv.Atoi(cfg.GetStringDefault("DRAFT_CACHE_SIZE_BYTES", "10485760"))
	if err != nil {
		log.Fatal("invalid DRAFT_CACHE_SIZE_BYTES value: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo),
		CatalogService:  service.NewCatalogService(catalogRepo, workoutsRepo),
		WorkoutService:  service.NewWorkoutService(workoutsRepo, templatesRepo),
		TemplateService: service.NewTemplateService(templatesRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), jwtTTL),
		Drafts:          draft.New(draftCacheSize),
	})

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		cleanup.CleanUp()
		os.Exit(0)
	}()

	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
