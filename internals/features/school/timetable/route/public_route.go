// file: internals/features/school/timetable/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableCtl "sekolahku_backend/internals/features/school/timetable/controller"
)

func TimetablePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := timetableCtl.NewTimetableController(db, nil)

	api.Get("/timetable/periods", ctl.ListPeriods)
	api.Get("/timetable/resolve", ctl.ResolveAt)
	api.Get("/timetable/weekly", ctl.ListWeekly)
}
