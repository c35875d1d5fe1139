// file: internals/features/school/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "sekolahku_backend/internals/features/school/attendance/controller"
	middlewares "sekolahku_backend/internals/middlewares"
)

func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db, nil)

	api.Post("/attendance", ctl.CheckInOut)
	api.Post("/camera-logs", middlewares.CameraIngestRateLimiter(), ctl.IngestCameraLog)
}

// AttendanceLogsRoutes dipasang di balik gate sesi halaman logs.
func AttendanceLogsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db, nil)

	api.Get("/entries", ctl.ListEntryLogs)
	api.Get("/camera", ctl.ListCameraLogs)
}
