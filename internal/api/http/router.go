package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/http/handlers"
	"github.com/spec-kit/attendance-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Departments     *handlers.DepartmentsHandler
	Staff           *handlers.StaffHandler
	Attendance      *handlers.AttendanceHandler
	AdminMiddleware *auth.AdminMiddleware
}

// RegisterRoutes wires HTTP routes. Check-in and check-out stay open for
// the kiosk flow; everything administrative sits behind the admin token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Check)

	api.Post("/auth/login", cfg.Auth.Login)
	api.Post("/auth/password/change", cfg.AdminMiddleware.Handle, cfg.Auth.ChangePassword)

	api.Get("/departments", cfg.Departments.List)
	api.Get("/departments/:id", cfg.Departments.Get)
	api.Post("/departments", cfg.AdminMiddleware.Handle, cfg.Departments.Create)
	api.Put("/departments/:id", cfg.AdminMiddleware.Handle, cfg.Departments.Update)

	api.Get("/staff", cfg.Staff.List)
	api.Get("/staff/:staffId", cfg.Staff.Get)
	api.Post("/staff", cfg.AdminMiddleware.Handle, cfg.Staff.Create)
	api.Put("/staff/:staffId", cfg.AdminMiddleware.Handle, cfg.Staff.Update)

	api.Get("/attendance", cfg.Attendance.ListAll)
	api.Get("/attendance/date/:date", cfg.Attendance.GetByDate)
	api.Get("/attendance/range", cfg.Attendance.GetRange)
	api.Post("/attendance/checkin", cfg.Attendance.CheckIn)
	api.Post("/attendance/checkout", cfg.Attendance.CheckOut)
	api.Post("/attendance/manual", cfg.AdminMiddleware.Handle, cfg.Attendance.CreateManualEntry)
	api.Post("/attendance/bulk-checkin", cfg.AdminMiddleware.Handle, cfg.Attendance.BulkCheckIn)
}
