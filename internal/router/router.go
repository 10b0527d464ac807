package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gymhub/internal/auth"
	"gymhub/internal/handler"
	"gymhub/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	trainerHandler *handler.TrainerHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/trainer/login", authHandler.TrainerLogin)
	api.POST("/auth/refresh", authHandler.Refresh)

	authenticate := middleware.Authenticate(tokens)

	// Member routes: valid access token + member role
	member := api.Group("/member", authenticate, middleware.RequireRole(auth.RoleMember))
	member.GET("/profile", memberHandler.GetProfile)
	member.GET("/my/workout", memberHandler.GetWorkoutPlans)
	member.GET("/my/diet", memberHandler.GetDietPlans)
	member.GET("/my/attendance", memberHandler.GetAttendance)
	member.GET("/my/progress", memberHandler.GetProgress)

	// Trainer routes: valid access token + trainer role
	trainer := api.Group("/trainer", authenticate, middleware.RequireRole(auth.RoleTrainer))
	trainer.GET("/members", trainerHandler.ListMembers)
	trainer.PUT("/members/:id/workout", trainerHandler.AssignWorkoutPlan)
	trainer.PUT("/members/:id/diet", trainerHandler.AssignDietPlan)
	trainer.PUT("/members/:id/progress", trainerHandler.RecordProgress)
	trainer.POST("/members/:id/attendance", trainerHandler.MarkAttendance)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
