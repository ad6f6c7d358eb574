package api

import (
	"regexp"
	"time"

	"github.com/taskaroo/taskaroo/internal/db"
	"github.com/taskaroo/taskaroo/internal/services"
	"gorm.io/gorm"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories  *db.Repositories
	authService   *services.AuthService
	habitService  *services.HabitService
	recordService *services.RecordService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.recordService = services.NewRecordService(handler.repositories.DailyRecords, handler.repositories.Habits)
	return handler
}
