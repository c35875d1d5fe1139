// file: internals/features/school/timetable/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableCtl "sekolahku_backend/internals/features/school/timetable/controller"
)

func TimetableAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := timetableCtl.NewTimetableController(db, nil)

	api.Post("/timetable/periods", ctl.UpsertPeriod)
	api.Post("/timetable/weekly", ctl.CreateWeekly)
}
