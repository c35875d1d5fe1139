// file: internals/features/school/calendar/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarCtl "sekolahku_backend/internals/features/school/calendar/controller"
)

func CalendarPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := calendarCtl.NewCalendarController(db, nil)

	api.Get("/calendar/class-days", ctl.ListClassDays)
	api.Get("/calendar/class-days/today", ctl.GetToday)
}

func CalendarAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := calendarCtl.NewCalendarController(db, nil)

	api.Post("/calendar/class-days", ctl.CreateClassDays)
}
