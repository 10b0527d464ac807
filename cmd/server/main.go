package main

import (
	"log"
	"net/http"

	_ "gymhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"gymhub/internal/auth"
	"gymhub/internal/cache"
	"gymhub/internal/config"
	"gymhub/internal/db"
	"gymhub/internal/handler"
	"gymhub/internal/model"
	"gymhub/internal/repository"
	"gymhub/internal/router"
	"gymhub/internal/service"
)

// @title GymHub API
// @version 1.0
// @description Gym management API with member signup, trainer-managed plans, progress tracking and once-per-day attendance.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.Trainer{},
		&model.WorkoutPlan{},
		&model.DietPlan{},
		&model.Progress{},
		&model.Attendance{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(gormDB)
	trainerRepo := repository.NewTrainerRepository(gormDB)
	workoutRepo := repository.NewWorkoutPlanRepository(gormDB)
	dietRepo := repository.NewDietPlanRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)

	// Initialize auth components
	tokens := auth.NewTokenService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessExpiry, cfg.RefreshExpiry)

	// Initialize services
	authService := service.NewAuthService(memberRepo, trainerRepo, tokens, cacheClient)
	memberService := service.NewMemberService(memberRepo, workoutRepo, dietRepo, attendanceRepo, progressRepo, cacheClient)
	trainerService := service.NewTrainerService(memberRepo, workoutRepo, dietRepo, progressRepo, cacheClient)
	attendanceService := service.NewAttendanceService(memberRepo, attendanceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	trainerHandler := handler.NewTrainerHandler(trainerService, attendanceService)

	// Register routes
	router.Register(e, tokens, authHandler, memberHandler, trainerHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
