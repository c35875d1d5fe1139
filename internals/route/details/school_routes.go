// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarRoute "sekolahku_backend/internals/features/school/calendar/route"
	mastersRoute "sekolahku_backend/internals/features/school/masters/route"
	timetableRoute "sekolahku_backend/internals/features/school/timetable/route"
)

func SchoolPublicRoutes(api fiber.Router, db *gorm.DB) {
	mastersRoute.MastersPublicRoutes(api, db)
	timetableRoute.TimetablePublicRoutes(api, db)
	calendarRoute.CalendarPublicRoutes(api, db)
}

func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	mastersRoute.MastersAdminRoutes(api, db)
	timetableRoute.TimetableAdminRoutes(api, db)
	calendarRoute.CalendarAdminRoutes(api, db)
}
