package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskaroo/taskaroo/internal/models"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	registerHabitTrackerRoutes(app, handler)
	registerDemoRoutes(app, handler)
}

func registerHabitTrackerRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)

	records := api.Group("/daily-records", handler.AuthRequired)
	records.Get("", handler.GetDailyRecords)
	records.Post("", handler.UpsertDailyRecord)
}

func registerDemoRoutes(app *fiber.App, handler *Handler) {
	v1 := app.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", handler.RegisterV1)
	auth.Post("/login", handler.LoginV1)

	users := v1.Group("/users", handler.AuthRequired)
	users.Get("/user-feature", handler.RequireRoles(models.RoleUser, models.RoleAdmin), handler.UserFeature)
	users.Get("/admin-feature", handler.RequireRoles(models.RoleAdmin), handler.AdminFeature)

	admin := v1.Group("/admin", handler.AuthRequired, handler.RequireRoles(models.RoleAdmin))
	admin.Get("/reports", handler.AdminReports)

	superadmin := v1.Group("/superadmin", handler.AuthRequired, handler.RequireRoles(models.RoleSuperAdmin))
	superadmin.Get("/superadminstats", handler.SuperAdminStats)
}
