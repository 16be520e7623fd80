package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/config"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/handlers"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/middleware"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/repository"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	accountRepo := repository.NewAccountRepository(db)
	planRepo := repository.NewPlanRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	rosterService := services.NewRosterService(db, studentRepo)
	workoutService := services.NewWorkoutService(db, workoutRepo, studentRepo)

	authHandler := handlers.NewAuthHandler(accountRepo, planRepo, studentRepo, cfg.JWTSecret)
	planHandler := handlers.NewPlanHandler(accountRepo, planRepo)
	studentHandler := handlers.NewStudentHandler(rosterService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	studentViewHandler := handlers.NewStudentViewHandler(workoutService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	// The access code is the whole credential here; no auth middleware.
	api.Get("/student-view/:code", studentViewHandler.Get)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	authProtected.Get("/plans", planHandler.ListPlans)
	authProtected.Post("/accounts/:id/plan", planHandler.ChangePlan)

	students := authProtected.Group("/students")
	students.Post("", studentHandler.CreateStudent)
	students.Get("", studentHandler.ListStudents)
	students.Delete("/:id", studentHandler.DeleteStudent)

	workouts := authProtected.Group("/workouts")
	workouts.Post("", workoutHandler.CreateWorkout)
	workouts.Get("", workoutHandler.ListWorkouts)
	workouts.Get("/:id", workoutHandler.GetWorkout)
	workouts.Delete("/:id", workoutHandler.DeleteWorkout)

	return registerDocsRoutes(app, cfg)
}
