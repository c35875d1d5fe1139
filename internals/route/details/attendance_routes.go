// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceUserRoutes(api, db)
}
