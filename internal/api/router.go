package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orgstack/employee-management/internal/api/handler"
	"github.com/orgstack/employee-management/internal/api/middleware"
	"github.com/orgstack/employee-management/internal/core/service"
	mongodb "github.com/orgstack/employee-management/internal/infrastructure/db/mongo"
	redisdb "github.com/orgstack/employee-management/internal/infrastructure/db/redis"
)

// Options carries the external dependencies the router wires together.
type Options struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	AuthCacheTTL time.Duration
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_mgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	deptRepo := mongodb.NewDepartmentRepository(opts.Mongo)
	empRepo := mongodb.NewEmployeeRepository(opts.Mongo)

	userService := service.NewUserService(userRepo, opts.Logger)
	deptService := service.NewDepartmentService(deptRepo, opts.Logger)
	empService := service.NewEmployeeService(empRepo, deptRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	deptHandler := handler.NewDepartmentHandler(deptService)
	empHandler := handler.NewEmployeeHandler(empService)

	credCache := redisdb.NewCredentialCache(opts.Redis, opts.AuthCacheTTL)
	authn := middleware.BasicAuth(userRepo, credCache)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	apiGroup := e.Group("/api", authn)

	depts := apiGroup.Group("/departments")
	depts.GET("", deptHandler.List, middleware.Require(middleware.OpDepartmentRead))
	depts.GET("/:id", deptHandler.Get, middleware.Require(middleware.OpDepartmentRead))
	depts.POST("", deptHandler.Create, middleware.Require(middleware.OpDepartmentWrite))
	depts.PUT("/:id", deptHandler.Update, middleware.Require(middleware.OpDepartmentWrite))
	depts.DELETE("/:id", deptHandler.Delete, middleware.Require(middleware.OpDepartmentWrite))

	emps := apiGroup.Group("/employees", middleware.Require(middleware.OpEmployeeManage))
	emps.GET("", empHandler.List)
	emps.GET("/:id", empHandler.Get)
	emps.GET("/by-department/:departmentId", empHandler.ListByDepartment)
	emps.POST("", empHandler.Create)
	emps.PUT("/:id", empHandler.Update)
	emps.DELETE("/:id", empHandler.Delete)

	users := apiGroup.Group("/users", middleware.Require(middleware.OpUserManage))
	users.GET("", userHandler.List)
	users.PUT("/:id/role", userHandler.UpdateRole)

	return e
}
